package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/constellation/pkg/app"
	"github.com/gonewx/constellation/pkg/config"
	"github.com/gonewx/constellation/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	familyFile := flag.String("family", "data/family.yaml", "家谱数据文件路径")
	animationFile := flag.String("animation", "assets/config/animation.yaml", "动画配置文件路径")
	flag.Parse()

	// 初始化嵌入资源（assetsFS 和 dataFS 在 embed.go 中声明）
	// 磁盘文件缺失时加载层会退回嵌入副本
	embedded.Init(assetsFS, dataFS)

	viewer, err := app.NewApp(app.Config{
		Verbose:       *verbose,
		FamilyFile:    *familyFile,
		AnimationFile: *animationFile,
	})
	if err != nil {
		// 非 verbose 模式下 NewApp 已丢弃日志输出，恢复后再报错
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("家谱星座")

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
