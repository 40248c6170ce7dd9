package components

// GhostComponent 传记变形动画中的人物虚影
// TransitionSystem 每帧把动画器的插值状态拷贝到这里，
// 渲染系统只读取组件，不直接接触动画器。
type GhostComponent struct {
	// PersonID 变形目标人物 ID
	PersonID string

	// GlowIntensity 虚影光晕强度（1 = 正常，峰值 5）
	GlowIntensity float64

	// Scale 虚影缩放（1 = 原始大小）
	Scale float64

	// Opacity 虚影不透明度 [0, 1]
	Opacity float64

	// Visible 虚影是否可见
	Visible bool
}
