package animators

import (
	"math"
	"testing"
)

// testTransitionConfig 返回时长 1 秒的测试配置，进度值即秒数，便于手算
func testTransitionConfig() TransitionConfig {
	return TransitionConfig{
		Duration: 1.0,
		Phases:   DefaultTransitionPhases(),
	}
}

// stateAt 构造一个新动画器并一次推进到指定进度，返回该时刻的状态
func stateAt(progress float64) TransitionState {
	a := NewBiographyTransitionAnimator(testTransitionConfig())
	a.Start("p1", Vec3{}, TransitionCallbacks{})
	if progress > 0 {
		a.Update(progress)
	}
	return a.State()
}

// TestTransitionAnimator_StartFiresImmediateCallbacks 测试 Start 的同步回调
// OnCameraZoomStart 与 OnParticleBurstStart 必须在任何 Update 之前触发
func TestTransitionAnimator_StartFiresImmediateCallbacks(t *testing.T) {
	a := NewBiographyTransitionAnimator(testTransitionConfig())

	zoomStarts := 0
	burstStarts := 0
	a.Start("p1", Vec3{X: 1, Y: 2, Z: 3}, TransitionCallbacks{
		OnCameraZoomStart:    func() { zoomStarts++ },
		OnParticleBurstStart: func() { burstStarts++ },
	})

	if zoomStarts != 1 {
		t.Errorf("OnCameraZoomStart 触发 %d 次，期望 1 次（Start 内同步）", zoomStarts)
	}
	if burstStarts != 1 {
		t.Errorf("OnParticleBurstStart 触发 %d 次，期望 1 次（Start 内同步）", burstStarts)
	}

	// 粒子迸发只有 Start 这一个触发点，越过 GlowIntensifyEnd 不重复触发
	a.Update(0.5)
	if burstStarts != 1 {
		t.Errorf("越过阶段边界后 OnParticleBurstStart 触发 %d 次，期望仍为 1 次", burstStarts)
	}

	if a.PersonID() != "p1" {
		t.Errorf("PersonID = %q，期望 p1", a.PersonID())
	}
	pos := a.NodePosition()
	if pos.X != 1 || pos.Y != 2 || pos.Z != 3 {
		t.Errorf("NodePosition = %+v，期望 {1 2 3}", pos)
	}
}

// TestTransitionAnimator_ExactlyOnceCallbacks 测试回调恰好一次与顺序保证
func TestTransitionAnimator_ExactlyOnceCallbacks(t *testing.T) {
	t.Run("单次巨大dt", func(t *testing.T) {
		a := NewBiographyTransitionAnimator(testTransitionConfig())

		var order []string
		a.Start("p1", Vec3{}, TransitionCallbacks{
			OnCameraZoomStart:    func() { order = append(order, "zoomStart") },
			OnCameraZoomComplete: func() { order = append(order, "zoomComplete") },
			OnParticleBurstStart: func() { order = append(order, "burstStart") },
			OnComplete:           func() { order = append(order, "complete") },
		})

		// 一帧直接跨过所有阶段边界
		a.Update(1000)
		a.Update(1000)

		expected := []string{"zoomStart", "burstStart", "zoomComplete", "complete"}
		if len(order) != len(expected) {
			t.Fatalf("回调序列 = %v，期望 %v", order, expected)
		}
		for i := range expected {
			if order[i] != expected[i] {
				t.Fatalf("回调序列 = %v，期望 %v", order, expected)
			}
		}
	})

	t.Run("多次小步dt", func(t *testing.T) {
		a := NewBiographyTransitionAnimator(testTransitionConfig())

		zoomCompletes := 0
		completes := 0
		a.Start("p1", Vec3{}, TransitionCallbacks{
			OnCameraZoomComplete: func() { zoomCompletes++ },
			OnComplete:           func() { completes++ },
		})

		for i := 0; i < 300; i++ {
			a.Update(0.005)
		}

		if zoomCompletes != 1 {
			t.Errorf("OnCameraZoomComplete 触发 %d 次，期望 1 次", zoomCompletes)
		}
		if completes != 1 {
			t.Errorf("OnComplete 触发 %d 次，期望 1 次", completes)
		}
	})
}

// TestTransitionAnimator_MonotonicProgress 测试进度单调不减且不超过 1
func TestTransitionAnimator_MonotonicProgress(t *testing.T) {
	a := NewBiographyTransitionAnimator(testTransitionConfig())
	a.Start("p1", Vec3{}, TransitionCallbacks{})

	prev := a.Progress()
	for i := 0; i < 150; i++ {
		a.Update(0.01)
		p := a.Progress()
		if p < prev {
			t.Fatalf("进度出现回退: %v → %v", prev, p)
		}
		if p > 1 {
			t.Fatalf("进度超过 1: %v", p)
		}
		prev = p
	}
}

// TestTransitionAnimator_PhaseFormulas 测试各阶段的精确插值公式
// 这些数值是上层依赖的视觉契约，必须逐项复现
func TestTransitionAnimator_PhaseFormulas(t *testing.T) {
	tests := []struct {
		name      string
		progress  float64
		glow      float64
		scale     float64
		opacity   float64
		intensity float64
		spread    float64
		visible   bool
	}{
		{"阶段1起点", 0, 1, 1, 1, 0, 0, true},
		{"阶段1中段", 0.15, 1, 1, 1, 0, 0, true},
		{"阶段2起点", 0.3, 1, 1, 1, 0, 0, true},
		{"阶段3起点", 0.4, 5, 1.1, 1, 0, 0, true},
		{"阶段4起点", 0.7, 2, 0.2, 0.5, 1, 5, true},
		{"阶段5起点", 0.9, 0, 0, 0, 0, 10, false},
		{"完成", 1.0, 0, 0, 0, 0, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateAt(tt.progress)

			checks := []struct {
				field    string
				got      float64
				expected float64
			}{
				{"GhostGlowIntensity", s.GhostGlowIntensity, tt.glow},
				{"GhostScale", s.GhostScale, tt.scale},
				{"GhostOpacity", s.GhostOpacity, tt.opacity},
				{"ParticleIntensity", s.ParticleIntensity, tt.intensity},
				{"ParticleSpread", s.ParticleSpread, tt.spread},
			}
			for _, c := range checks {
				if math.Abs(c.got-c.expected) > 0.001 {
					t.Errorf("进度 %v 时 %s = %v，期望 %v", tt.progress, c.field, c.got, c.expected)
				}
			}
			if s.GhostVisible != tt.visible {
				t.Errorf("进度 %v 时 GhostVisible = %v，期望 %v", tt.progress, s.GhostVisible, tt.visible)
			}
		})
	}
}

// TestTransitionAnimator_PhaseContinuity 测试阶段边界两侧状态连续
// 边界处不允许出现公式之外的跳变
func TestTransitionAnimator_PhaseContinuity(t *testing.T) {
	const epsilon = 0.0001
	boundaries := []float64{0.3, 0.4, 0.7}

	for _, boundary := range boundaries {
		below := stateAt(boundary - epsilon)
		above := stateAt(boundary + epsilon)

		if math.Abs(below.GhostGlowIntensity-above.GhostGlowIntensity) > 0.01 {
			t.Errorf("边界 %v 处光晕跳变: %v → %v", boundary, below.GhostGlowIntensity, above.GhostGlowIntensity)
		}
		if math.Abs(below.GhostScale-above.GhostScale) > 0.01 {
			t.Errorf("边界 %v 处缩放跳变: %v → %v", boundary, below.GhostScale, above.GhostScale)
		}
		if math.Abs(below.GhostOpacity-above.GhostOpacity) > 0.01 {
			t.Errorf("边界 %v 处不透明度跳变: %v → %v", boundary, below.GhostOpacity, above.GhostOpacity)
		}
	}

	// GlowIntensifyEnd 两侧光晕都应约等于峰值 5
	if s := stateAt(0.4 - epsilon); math.Abs(s.GhostGlowIntensity-5) > 0.01 {
		t.Errorf("边界前光晕 = %v，期望 ≈5", s.GhostGlowIntensity)
	}
	if s := stateAt(0.4 + epsilon); math.Abs(s.GhostGlowIntensity-5) > 0.01 {
		t.Errorf("边界后光晕 = %v，期望 ≈5", s.GhostGlowIntensity)
	}
}

// TestTransitionAnimator_GhostVisibility 测试虚影的隐藏时机
// 虚影在阶段 4 局部进度超过 0.8 时隐藏（默认阶段表下为总进度 0.86）
func TestTransitionAnimator_GhostVisibility(t *testing.T) {
	if s := stateAt(0); !s.GhostVisible {
		t.Error("进度 0 时虚影应可见")
	}
	if s := stateAt(0.75); !s.GhostVisible {
		t.Error("进度 0.75 时虚影应可见")
	}
	if s := stateAt(0.87); s.GhostVisible {
		t.Error("进度 0.87 时虚影应已隐藏（局部进度 0.85 > 0.8）")
	}
	if s := stateAt(0.95); s.GhostVisible {
		t.Error("进度 0.95 时虚影应已隐藏")
	}
}

// TestTransitionAnimator_CameraZoomComplete 测试镜头推进完成标志
func TestTransitionAnimator_CameraZoomComplete(t *testing.T) {
	if s := stateAt(0.2); s.CameraZoomComplete {
		t.Error("镜头推进阶段内 CameraZoomComplete 应为 false")
	}
	if s := stateAt(0.3); !s.CameraZoomComplete {
		t.Error("越过 CameraZoomEnd 后 CameraZoomComplete 应为 true")
	}
}

// TestTransitionAnimator_Cancel 测试取消的幂等性与回调抑制
func TestTransitionAnimator_Cancel(t *testing.T) {
	a := NewBiographyTransitionAnimator(testTransitionConfig())

	zoomCompletes := 0
	completes := 0
	a.Start("p1", Vec3{X: 1}, TransitionCallbacks{
		OnCameraZoomComplete: func() { zoomCompletes++ },
		OnComplete:           func() { completes++ },
	})

	a.Update(0.1)
	a.Cancel()
	a.Cancel() // 幂等

	if a.IsAnimating() {
		t.Error("取消后 IsAnimating 应为 false")
	}
	if a.PersonID() != "" {
		t.Errorf("取消后 PersonID = %q，期望空", a.PersonID())
	}

	// 取消后的 Update 不触发任何回调
	a.Update(100)
	if zoomCompletes != 0 || completes != 0 {
		t.Errorf("取消后回调触发 zoomComplete=%d complete=%d，期望均为 0", zoomCompletes, completes)
	}

	// 取消后可以直接重新 Start
	a.Start("p2", Vec3{}, TransitionCallbacks{})
	if !a.IsAnimating() {
		t.Error("取消后重新 Start 应正常进入动画状态")
	}
}

// TestTransitionAnimator_ReentrantStart 测试回调内重入 Start
func TestTransitionAnimator_ReentrantStart(t *testing.T) {
	a := NewBiographyTransitionAnimator(testTransitionConfig())

	oldCompletes := 0
	a.Start("p1", Vec3{}, TransitionCallbacks{
		OnCameraZoomComplete: func() {
			// 镜头推进结束时切换到另一个人物
			a.Start("p2", Vec3{}, TransitionCallbacks{})
		},
		OnComplete: func() { oldCompletes++ },
	})

	// 一帧跨过所有边界：zoomComplete 回调重入后，旧周期的 OnComplete 不得触发
	a.Update(1000)

	if oldCompletes != 0 {
		t.Error("被重入替换的周期不应再触发 OnComplete")
	}
	if a.PersonID() != "p2" {
		t.Errorf("重入后 PersonID = %q，期望 p2", a.PersonID())
	}
	if math.Abs(a.Progress()) > 0.001 {
		t.Errorf("重入后进度 = %v，期望 0", a.Progress())
	}
}

// TestTransitionAnimator_IdleUpdate 测试未启动时 Update 为安全空操作
func TestTransitionAnimator_IdleUpdate(t *testing.T) {
	a := NewBiographyTransitionAnimator(testTransitionConfig())

	a.Update(1.0)
	if a.IsAnimating() {
		t.Error("未启动的动画器不应进入动画状态")
	}

	s := a.State()
	if s.GhostVisible {
		t.Error("空闲状态虚影应不可见")
	}
	if math.Abs(s.ParticleSpread-10) > 0.001 {
		t.Errorf("空闲状态扩散半径 = %v，期望钉在 10", s.ParticleSpread)
	}
}

// TestTransitionPhases_Validate 测试阶段边界校验
func TestTransitionPhases_Validate(t *testing.T) {
	tests := []struct {
		name    string
		phases  TransitionPhases
		wantErr bool
	}{
		{"默认边界", DefaultTransitionPhases(), false},
		{"自定义合法边界", TransitionPhases{0.1, 0.2, 0.5, 0.8}, false},
		{"非严格递增", TransitionPhases{0.3, 0.3, 0.7, 0.9}, true},
		{"乱序", TransitionPhases{0.4, 0.3, 0.7, 0.9}, true},
		{"越上界", TransitionPhases{0.3, 0.4, 0.7, 1.0}, true},
		{"零边界", TransitionPhases{0, 0.4, 0.7, 0.9}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.phases.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v，wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

// TestTransitionAnimator_InvalidConfigFallback 测试无效配置回退为默认值
func TestTransitionAnimator_InvalidConfigFallback(t *testing.T) {
	a := NewBiographyTransitionAnimator(TransitionConfig{
		Duration: -1,
		Phases:   TransitionPhases{0.9, 0.4, 0.3, 0.1},
	})

	completes := 0
	a.Start("p1", Vec3{}, TransitionCallbacks{OnComplete: func() { completes++ }})

	// 默认时长 2 秒：1 秒后应仍在进行中
	a.Update(1.0)
	if !a.IsAnimating() {
		t.Error("默认时长下 1 秒后动画应仍在进行")
	}
	a.Update(1.0)
	if completes != 1 {
		t.Errorf("OnComplete 触发 %d 次，期望 1 次", completes)
	}
}
