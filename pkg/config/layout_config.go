package config

// Constellation 视图布局配置常量

const (
	// ScreenWidth 逻辑屏幕宽度（像素）
	ScreenWidth = 1024

	// ScreenHeight 逻辑屏幕高度（像素）
	ScreenHeight = 768

	// StarRadius 人物节点的基础半径（像素）
	StarRadius float64 = 10

	// StarGlowRadiusScale 光晕半径相对节点半径的放大倍数
	StarGlowRadiusScale float64 = 2.5

	// GenerationSpacingY 相邻世代行之间的垂直间距（像素）
	GenerationSpacingY float64 = 120

	// SiblingSpacingX 同一世代内相邻节点的水平间距（像素）
	SiblingSpacingX float64 = 140

	// ConstellationMarginTop 最早世代距屏幕顶部的边距（像素）
	ConstellationMarginTop float64 = 80

	// LinkBaseAlpha 血缘连线的基础不透明度（无脉冲时）
	LinkBaseAlpha float64 = 0.25

	// BurstParticleCount 变形动画粒子迸发的粒子数量
	BurstParticleCount = 24

	// BurstParticleBaseSpeed 迸发粒子的基础速度（像素/秒）
	BurstParticleBaseSpeed float64 = 60
)
