package components

// GlowComponent 节点的脉冲光晕状态
// PulseSystem 每帧根据动画器的强度查询结果更新，渲染系统读取绘制。
type GlowComponent struct {
	// Intensity 当前光晕强度（0 = 无光晕，1 = 最亮）
	Intensity float64
}
