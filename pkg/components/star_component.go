package components

// StarComponent 星座中的人物节点
// 每个家谱人物对应一颗星，PersonID 即脉冲路径使用的节点 ID。
type StarComponent struct {
	// PersonID 人物唯一标识
	PersonID string

	// Name 显示名称
	Name string

	// Generation 世代行号（0 = 最早一代）
	Generation int

	// Radius 节点基础半径（像素）
	Radius float64
}
