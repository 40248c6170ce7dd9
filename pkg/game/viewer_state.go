package game

// ViewerState 星座视图的共享状态
//
// 由应用层创建并显式传给需要它的系统（单一所有者，不使用包级可变
// 变量做跨系统协调）。变形动画期间的延迟刷新也通过这里协调：
// UI 层在动画进行中把刷新动作挂到 PendingRefresh，动画完成时统一执行。
type ViewerState struct {
	// SelectedPersonID 当前选中的人物节点 ID（空 = 未选中）
	SelectedPersonID string

	// PulseSourceID 脉冲起点人物 ID（空 = 尚未指定）
	PulseSourceID string

	// TransitionInProgress 传记变形动画是否正在播放
	TransitionInProgress bool

	// PendingRefresh 变形动画完成后要执行的延迟刷新动作（可为 nil）
	PendingRefresh func()
}

// NewViewerState 创建视图状态
func NewViewerState() *ViewerState {
	return &ViewerState{}
}

// RequestRefresh 请求刷新视图数据
//
// 变形动画进行中时动作被挂起，动画完成后由 FlushPendingRefresh 执行；
// 否则立即执行。后一次请求覆盖前一次未执行的挂起动作。
func (vs *ViewerState) RequestRefresh(refresh func()) {
	if refresh == nil {
		return
	}
	if vs.TransitionInProgress {
		vs.PendingRefresh = refresh
		return
	}
	refresh()
}

// FlushPendingRefresh 执行并清除挂起的刷新动作
// 应在变形动画完成（OnComplete）后调用。
func (vs *ViewerState) FlushPendingRefresh() {
	if vs.PendingRefresh == nil {
		return
	}
	refresh := vs.PendingRefresh
	vs.PendingRefresh = nil
	refresh()
}
