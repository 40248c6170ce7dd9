// 传记变形动画验证工具
//
// 在控制台逐帧打印变形动画的五个阶段状态，用于校对相位边界和插值公式。
// 用法示例：
//
//	go run ./cmd/verify_transition -duration 2.0 -step 0.1
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gonewx/constellation/pkg/animators"
	"github.com/gonewx/constellation/pkg/config"
)

func main() {
	animationFile := flag.String("animation", "", "动画配置文件路径（为空使用默认值）")
	duration := flag.Float64("duration", 0, "覆盖动画总时长（秒），0 表示使用配置值")
	step := flag.Float64("step", 0.1, "模拟步长（秒）")
	flag.Parse()

	transitionConfig := animators.DefaultTransitionConfig()
	if *animationFile != "" {
		animConfig, err := config.LoadAnimationConfig(*animationFile)
		if err != nil {
			log.Fatal("动画配置加载失败:", err)
		}
		transitionConfig = animConfig.ToTransitionConfig()
	}
	if *duration > 0 {
		transitionConfig.Duration = *duration
	}

	fmt.Println("=== 传记变形验证 ===")
	fmt.Printf("时长 %.2fs，相位边界 %.2f / %.2f / %.2f / %.2f\n\n",
		transitionConfig.Duration,
		transitionConfig.Phases.CameraZoomEnd,
		transitionConfig.Phases.GlowIntensifyEnd,
		transitionConfig.Phases.ShrinkEnd,
		transitionConfig.Phases.ParticleFadeEnd)

	animator := animators.NewBiographyTransitionAnimator(transitionConfig)
	animator.Start("demo", animators.Vec3{}, animators.TransitionCallbacks{
		OnCameraZoomStart:    func() { fmt.Println("  ✅ 镜头推近开始") },
		OnCameraZoomComplete: func() { fmt.Println("  ✅ 镜头推近完成") },
		OnParticleBurstStart: func() { fmt.Println("  ✅ 粒子迸发开始") },
		OnComplete:           func() { fmt.Println("  ✅ 变形完成") },
	})

	elapsed := 0.0
	for animator.IsAnimating() {
		animator.Update(*step)
		elapsed += *step

		state := animator.State()
		visible := "可见"
		if !state.GhostVisible {
			visible = "隐藏"
		}
		fmt.Printf("t=%5.2fs 进度 %.3f 光晕 %.3f 缩放 %.3f 不透明 %.3f 粒子 %.3f/%.3f 虚影%s\n",
			elapsed, animator.Progress(),
			state.GhostGlowIntensity, state.GhostScale, state.GhostOpacity,
			state.ParticleIntensity, state.ParticleSpread, visible)
	}

	fmt.Printf("\n📊 总耗时 %.2fs\n", elapsed)
}
