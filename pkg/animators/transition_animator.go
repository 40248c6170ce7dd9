package animators

import (
	"fmt"

	"github.com/gonewx/constellation/pkg/utils"
)

// 第四阶段（粒子淡出）中虚影隐藏的局部进度阈值
const ghostHideLocalProgress = 0.8

// Vec3 三维坐标
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// TransitionPhases 五阶段变形动画的阶段边界（总进度的比例）
//
// 五个阶段依次为：
//  1. [0, CameraZoomEnd)           镜头推进，节点保持原样
//  2. [CameraZoomEnd, GlowIntensifyEnd)  光晕渐强、节点微胀
//  3. [GlowIntensifyEnd, ShrinkEnd)      收缩坍缩、粒子迸发
//  4. [ShrinkEnd, ParticleFadeEnd)       粒子扩散淡出、虚影消失
//  5. [ParticleFadeEnd, 1]               收尾保持
//
// 不变量：边界在 (0, 1) 内严格递增。
type TransitionPhases struct {
	CameraZoomEnd    float64 `yaml:"cameraZoomEnd"`
	GlowIntensifyEnd float64 `yaml:"glowIntensifyEnd"`
	ShrinkEnd        float64 `yaml:"shrinkEnd"`
	ParticleFadeEnd  float64 `yaml:"particleFadeEnd"`
}

// DefaultTransitionPhases 返回默认阶段边界
func DefaultTransitionPhases() TransitionPhases {
	return TransitionPhases{
		CameraZoomEnd:    0.3,
		GlowIntensifyEnd: 0.4,
		ShrinkEnd:        0.7,
		ParticleFadeEnd:  0.9,
	}
}

// Validate 检查阶段边界是否在 (0, 1) 内严格递增
func (p TransitionPhases) Validate() error {
	bounds := []float64{p.CameraZoomEnd, p.GlowIntensifyEnd, p.ShrinkEnd, p.ParticleFadeEnd}
	prev := 0.0
	for i, b := range bounds {
		if b <= prev || b >= 1 {
			return fmt.Errorf("阶段边界必须在 (0, 1) 内严格递增: 第 %d 个边界为 %v", i+1, b)
		}
		prev = b
	}
	return nil
}

// TransitionConfig 变形动画配置，构造后不可变
type TransitionConfig struct {
	// Duration 动画总时长（秒）
	Duration float64

	// Phases 阶段边界
	Phases TransitionPhases
}

// DefaultTransitionConfig 返回默认的变形动画配置
func DefaultTransitionConfig() TransitionConfig {
	return TransitionConfig{
		Duration: 2.0,
		Phases:   DefaultTransitionPhases(),
	}
}

// TransitionCallbacks 变形动画的生命周期回调，均可为 nil
//
// OnCameraZoomStart 与 OnParticleBurstStart 在 Start() 内同步触发
// （两个效果与进度 0 并发开始，不等待阶段边界）；
// OnCameraZoomComplete 在进度越过 CameraZoomEnd 时触发；
// OnComplete 在进度到达 1 时触发。每个回调每周期恰好触发一次。
type TransitionCallbacks struct {
	OnCameraZoomStart    func()
	OnCameraZoomComplete func()
	OnParticleBurstStart func()
	OnComplete           func()
}

// TransitionState 变形动画在某一时刻的完整插值状态
// 渲染层每帧读取该结构体并映射到可渲染属性上。
type TransitionState struct {
	// GhostGlowIntensity 虚影光晕强度（1 = 正常，峰值 5）
	GhostGlowIntensity float64

	// GhostScale 虚影缩放（1 = 原始大小）
	GhostScale float64

	// GhostOpacity 虚影不透明度 [0, 1]
	GhostOpacity float64

	// ParticleIntensity 粒子强度 [0, 1]
	ParticleIntensity float64

	// ParticleSpread 粒子扩散半径系数（峰值 10）
	ParticleSpread float64

	// CameraZoomComplete 镜头推进阶段是否已结束
	CameraZoomComplete bool

	// GhostVisible 虚影是否可见
	GhostVisible bool
}

// BiographyTransitionAnimator 驱动单个人物节点的五阶段变形动画
//
// 与 PathPulseAnimator 同构：显式进度累积 + 阶段划分 + 缓动插值，
// 由外部每帧调用 Update(dt) 推进，通过 State() 查询完整插值状态。
// 各阶段的插值公式为手工调校的视觉契约，上层依赖其精确数值做同步
// （例如 UI 等待 OnComplete 后才刷新数据）。
type BiographyTransitionAnimator struct {
	config TransitionConfig

	personID string
	position Vec3
	progress float64

	callbacks TransitionCallbacks

	zoomStartFired    bool
	zoomCompleteFired bool
	burstStartFired   bool
	completeFired     bool

	// cycle 语义同 PathPulseAnimator：回调内重入 Start 时放弃本轮剩余处理
	cycle uint64
}

// NewBiographyTransitionAnimator 创建变形动画器
// 阶段边界无效时回退为默认值。
func NewBiographyTransitionAnimator(config TransitionConfig) *BiographyTransitionAnimator {
	if config.Duration <= 0 {
		config.Duration = DefaultTransitionConfig().Duration
	}
	if err := config.Phases.Validate(); err != nil {
		config.Phases = DefaultTransitionPhases()
	}
	return &BiographyTransitionAnimator{
		config:        config,
		completeFired: true,
	}
}

// Start 启动针对指定人物节点的变形动画
//
// 进度归零、一次性标志复位后，OnCameraZoomStart 与 OnParticleBurstStart
// 立即同步触发（在任何 Update 之前）——镜头推进与粒子预热和动画同时开始。
func (a *BiographyTransitionAnimator) Start(personID string, position Vec3, callbacks TransitionCallbacks) {
	a.cycle++

	a.personID = personID
	a.position = position
	a.progress = 0
	a.callbacks = callbacks

	a.zoomStartFired = false
	a.zoomCompleteFired = false
	a.burstStartFired = false
	a.completeFired = false

	a.zoomStartFired = true
	if callbacks.OnCameraZoomStart != nil {
		callbacks.OnCameraZoomStart()
	}
	// 粒子迸发在启动时即标记已触发，阶段边界处不再重复触发
	a.burstStartFired = true
	if callbacks.OnParticleBurstStart != nil {
		callbacks.OnParticleBurstStart()
	}
}

// Update 推进动画时间
//
// dt 允许任意大；越过的每个阶段边界的回调都按顺序各触发一次。
// 未设置目标或已完成时为安全空操作。
func (a *BiographyTransitionAnimator) Update(dt float64) {
	if !a.IsAnimating() {
		return
	}

	cycle := a.cycle

	a.progress += dt / a.config.Duration
	if a.progress > 1 {
		a.progress = 1
	}

	if a.progress >= a.config.Phases.CameraZoomEnd && !a.zoomCompleteFired {
		a.zoomCompleteFired = true
		if cb := a.callbacks.OnCameraZoomComplete; cb != nil {
			cb()
			if a.cycle != cycle {
				return
			}
		}
	}

	if a.progress >= 1 && !a.completeFired {
		a.completeFired = true
		if cb := a.callbacks.OnComplete; cb != nil {
			cb()
		}
	}
}

// State 返回当前进度下的完整插值状态
// 五个阶段的分段公式见 TransitionPhases 的说明；相邻阶段在边界处连续。
func (a *BiographyTransitionAnimator) State() TransitionState {
	p := a.progress
	phases := a.config.Phases

	state := TransitionState{
		CameraZoomComplete: p >= phases.CameraZoomEnd,
	}

	switch {
	case a.personID == "" || p >= 1:
		// 收尾/空闲：虚影完全消失，扩散半径钉在峰值
		state.ParticleSpread = 10
		state.GhostVisible = false

	case p < phases.CameraZoomEnd:
		// 阶段 1：镜头推进，节点保持原样
		state.GhostGlowIntensity = 1
		state.GhostScale = 1
		state.GhostOpacity = 1
		state.GhostVisible = true

	case p < phases.GlowIntensifyEnd:
		// 阶段 2：光晕渐强 1→5，微胀 1→1.1
		t := (p - phases.CameraZoomEnd) / (phases.GlowIntensifyEnd - phases.CameraZoomEnd)
		e := utils.EaseOutCubic(t)
		state.GhostGlowIntensity = 1 + 4*e
		state.GhostScale = 1 + 0.1*e
		state.GhostOpacity = 1
		state.GhostVisible = true

	case p < phases.ShrinkEnd:
		// 阶段 3：收缩坍缩，粒子迸发
		t := (p - phases.GlowIntensifyEnd) / (phases.ShrinkEnd - phases.GlowIntensifyEnd)
		e := utils.EaseInCubic(t)
		state.GhostGlowIntensity = 5 - 3*e
		state.GhostScale = 1.1 - 0.9*e
		state.GhostOpacity = 1 - 0.5*e
		state.ParticleIntensity = e
		state.ParticleSpread = 5 * e
		state.GhostVisible = true

	case p < phases.ParticleFadeEnd:
		// 阶段 4：粒子扩散淡出，虚影彻底消失
		t := (p - phases.ShrinkEnd) / (phases.ParticleFadeEnd - phases.ShrinkEnd)
		e := utils.EaseOutQuart(t)
		state.GhostGlowIntensity = 2 * (1 - e)
		state.GhostScale = 0.2 * (1 - e)
		state.GhostOpacity = 0.5 * (1 - e)
		state.ParticleIntensity = 1 - e
		state.ParticleSpread = 5 + 5*e
		state.GhostVisible = t <= ghostHideLocalProgress

	default:
		// 阶段 5：收尾保持
		state.ParticleSpread = 10
		state.GhostVisible = false
	}

	return state
}

// IsAnimating 返回动画是否仍在进行
func (a *BiographyTransitionAnimator) IsAnimating() bool {
	return a.personID != "" && a.progress < 1
}

// Cancel 立即终止动画，不触发任何未触发的回调
// 清除目标与回调引用。幂等，取消后可直接再次 Start。
func (a *BiographyTransitionAnimator) Cancel() {
	a.cycle++
	a.personID = ""
	a.position = Vec3{}
	a.progress = 1
	a.callbacks = TransitionCallbacks{}
	a.zoomStartFired = true
	a.zoomCompleteFired = true
	a.burstStartFired = true
	a.completeFired = true
}

// PersonID 返回当前目标人物 ID，空闲时为空字符串
func (a *BiographyTransitionAnimator) PersonID() string {
	return a.personID
}

// NodePosition 返回目标节点位置的副本
func (a *BiographyTransitionAnimator) NodePosition() Vec3 {
	return a.position
}

// Progress 返回当前进度 [0, 1]
func (a *BiographyTransitionAnimator) Progress() float64 {
	return a.progress
}
