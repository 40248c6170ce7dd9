// 数据文件校验工具
//
// 检查家谱数据和动画配置能否通过加载层的全部校验，
// 在不启动查看器的情况下快速定位数据错误：
//
//	go run ./tools
package main

import (
	"fmt"
	"os"

	"github.com/gonewx/constellation/internal/familytree"
	"github.com/gonewx/constellation/pkg/config"
)

func main() {
	failed := false

	graph, err := familytree.LoadGraph("data/family.yaml")
	if err != nil {
		fmt.Printf("❌ 家谱数据校验失败: %v\n", err)
		failed = true
	} else {
		fmt.Printf("✅ 家谱数据格式正确\n")
		fmt.Printf("✅ 人物数量: %d，血缘连线数量: %d\n", len(graph.People), len(graph.Links()))

		// 孤立节点不报错，但值得提醒
		isolated := 0
		for _, p := range graph.People {
			if len(graph.Neighbors(p.ID)) == 0 {
				fmt.Printf("⚠️  %s（%s）没有任何血缘连线\n", p.Name, p.ID)
				isolated++
			}
		}
		if isolated == 0 {
			fmt.Printf("✅ 所有人物都有血缘连线\n")
		}
	}

	animConfig, err := config.LoadAnimationConfig("assets/config/animation.yaml")
	if err != nil {
		fmt.Printf("❌ 动画配置校验失败: %v\n", err)
		failed = true
	} else {
		fmt.Printf("✅ 动画配置格式正确\n")
		fmt.Printf("✅ 脉冲缓动: %s，变形时长: %.2fs\n",
			animConfig.Pulse.Easing, animConfig.Transition.Duration)
	}

	if failed {
		os.Exit(1)
	}
}
