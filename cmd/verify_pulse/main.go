// 路径脉冲动画验证工具
//
// 在控制台逐帧打印脉冲行进过程，用于不启动图形界面时校对时序和强度。
// 用法示例：
//
//	go run ./cmd/verify_pulse -family data/family.yaml -from grandpa_zhang -to child_zhang
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/gonewx/constellation/internal/familytree"
	"github.com/gonewx/constellation/pkg/animators"
	"github.com/gonewx/constellation/pkg/config"
)

func main() {
	familyFile := flag.String("family", "data/family.yaml", "家谱数据文件路径")
	animationFile := flag.String("animation", "", "动画配置文件路径（为空使用默认值）")
	from := flag.String("from", "", "脉冲起点人物 ID")
	to := flag.String("to", "", "脉冲终点人物 ID")
	step := flag.Float64("step", 0.05, "模拟步长（秒）")
	flag.Parse()

	if *from == "" || *to == "" {
		log.Fatal("必须指定 -from 和 -to")
	}

	graph, err := familytree.LoadGraph(*familyFile)
	if err != nil {
		log.Fatal("家谱数据加载失败:", err)
	}

	pulseConfig := animators.DefaultPathPulseConfig()
	if *animationFile != "" {
		animConfig, err := config.LoadAnimationConfig(*animationFile)
		if err != nil {
			log.Fatal("动画配置加载失败:", err)
		}
		pulseConfig = animConfig.ToPulseConfig()
	}

	path := graph.FindPath(*from, *to)
	if path == nil {
		log.Fatalf("%s 与 %s 之间没有血缘路径", *from, *to)
	}

	fmt.Println("=== 路径脉冲验证 ===")
	fmt.Printf("路径: %s（%d 个节点）\n", strings.Join(path, " → "), len(path))
	fmt.Printf("配置: 单跳 %.2fs，时长范围 [%.2f, %.2f]s，缓动 %s，呼吸 %.2fs\n\n",
		pulseConfig.HopDuration, pulseConfig.MinDuration, pulseConfig.MaxDuration,
		pulseConfig.Easing, pulseConfig.BreathingDuration)

	animator := animators.NewPathPulseAnimator(pulseConfig)
	animator.Start(path,
		func() { fmt.Println("  ✅ 前沿到达终点") },
		func() { fmt.Println("  ✅ 动画完成") },
	)

	elapsed := 0.0
	for animator.IsAnimating() {
		animator.Update(*step)
		elapsed += *step

		if pos := animator.PulsePosition(); pos != nil {
			fmt.Printf("t=%5.2fs 进度 %.3f 边 %d (%s→%s) 边内 %.3f\n",
				elapsed, pos.TotalProgress, pos.EdgeIndex, pos.SourceID, pos.TargetID, pos.EdgeProgress)
			continue
		}
		if animator.IsBreathing() {
			fmt.Printf("t=%5.2fs 呼吸强度 %.3f\n", elapsed, animator.BreathingIntensity())
		}
	}

	fmt.Printf("\n📊 总耗时 %.2fs\n", elapsed)
}
