package components

// LinkComponent 两个人物节点之间的血缘连线
type LinkComponent struct {
	// ParentID 父代人物 ID
	ParentID string

	// ChildID 子代人物 ID
	ChildID string

	// Key 方向无关的查找键（与动画器 AllEdgeIntensities 的键一致）
	Key string
}
