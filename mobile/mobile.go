//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 手动构建：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -o build/android/constellation.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Constellation.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/constellation/pkg/app"
	"github.com/gonewx/constellation/pkg/embedded"
)

func init() {
	// 初始化嵌入资源（assetsFS 和 dataFS 在 embed.go 中声明）
	// 移动端没有工作目录概念，加载层会自动退回嵌入资源
	embedded.Init(assetsFS, dataFS)

	viewer, err := app.NewApp(app.Config{
		Verbose:       false,
		FamilyFile:    "data/family.yaml",
		AnimationFile: "assets/config/animation.yaml",
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	mobile.SetGame(viewer)
}
