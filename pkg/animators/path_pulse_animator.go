package animators

import (
	"math"
	"sort"
	"strings"

	"github.com/gonewx/constellation/pkg/utils"
)

// 呼吸曲线的分段边界（呼吸进度的比例）
const (
	breathingRiseEnd = 0.25 // 上升段结束：0.5 → 1.0
	breathingHoldEnd = 0.4  // 保持段结束：维持 1.0
)

// PathPulseConfig 路径脉冲动画的时长与形状配置
// 构造后不可变，同一配置可驱动任意多个动画周期。
type PathPulseConfig struct {
	// HopDuration 单跳（一条边）的基准时长（秒）
	HopDuration float64

	// MinDuration 总时长下限（秒），防止短路径一闪而过
	MinDuration float64

	// MaxDuration 总时长上限（秒），防止长路径拖沓
	MaxDuration float64

	// Easing 行进阶段的缓动曲线
	Easing utils.EasingType

	// PulseWidth 光晕拖尾宽度（占路径长度的比例）
	// 例如 0.3 表示拖尾覆盖 30% 的路径
	PulseWidth float64

	// BreathingDuration 到达后终点节点的呼吸时长（秒）
	// <= 0 时跳过呼吸阶段，到达即完成
	BreathingDuration float64
}

// DefaultPathPulseConfig 返回默认的脉冲配置
func DefaultPathPulseConfig() PathPulseConfig {
	return PathPulseConfig{
		HopDuration:       0.25,
		MinDuration:       0.5,
		MaxDuration:       3.0,
		Easing:            utils.EasingEaseInOutCubic,
		PulseWidth:        0.3,
		BreathingDuration: 2.0,
	}
}

// PulsePosition 描述脉冲前沿当前所在的边
type PulsePosition struct {
	// EdgeIndex 前沿所在边的下标（0 表示 path[0]→path[1]）
	EdgeIndex int

	// EdgeProgress 前沿在该边内的进度 [0, 1)
	EdgeProgress float64

	// TotalProgress 整体行进进度 [0, 1]
	TotalProgress float64

	// SourceID 该边的起点节点
	SourceID string

	// TargetID 该边的终点节点
	TargetID string
}

// EdgePulseDetail 描述前沿附近一条边的渲染细节
// 供逐顶点渐变渲染使用：Key 与 Reversed 共同决定渐变方向。
type EdgePulseDetail struct {
	// SourceID 路径行进方向上的边起点
	SourceID string

	// TargetID 路径行进方向上的边终点
	TargetID string

	// Key 方向无关的查找键（两端 ID 按字典序排序后拼接）
	Key string

	// Reversed 路径行进方向与 Key 的规范方向相反时为 true
	Reversed bool

	// PulseProgressRelativeToEdge 前沿相对该边起点的带符号距离（边长单位）
	// 0 表示前沿恰在边起点，1 表示恰在边终点，负值表示尚未到达
	PulseProgressRelativeToEdge float64
}

// PathPulseAnimator 模拟一束光脉冲沿节点路径逐跳行进
//
// 工作流程：
//  1. Start(path, ...) 启动一个动画周期，路径在周期内不可变
//  2. 外部驱动每帧调用 Update(dt) 推进进度
//  3. 渲染层通过 NodePulseIntensity / EdgePulseIntensity 等查询方法
//     读取各实体的光晕强度
//  4. 行进完成后进入可选的"呼吸"阶段，终点节点做一次有机的明暗起伏
//
// 退化输入（路径长度 < 2）不会报错，而是同步触发回调并立即完成。
type PathPulseAnimator struct {
	config PathPulseConfig

	path      []string
	indexByID map[string]int
	duration  float64

	progress          float64
	breathing         bool
	breathingProgress float64

	arrivalFired  bool
	completeFired bool

	onArrival  func()
	onComplete func()

	// cycle 每次 Start/Cancel 递增
	// Update 在触发回调前后比对该值，回调内重新 Start 时放弃本轮剩余处理
	cycle uint64
}

// NewPathPulseAnimator 创建路径脉冲动画器
func NewPathPulseAnimator(config PathPulseConfig) *PathPulseAnimator {
	return &PathPulseAnimator{
		config:        config,
		arrivalFired:  true,
		completeFired: true,
	}
}

// Start 启动一个新的动画周期，静默替换任何进行中的动画
//
// 参数：
//   - path: 节点 ID 的有序序列；长度 < 2 时视为退化路径，
//     onArrival 和 onComplete 在 Start 返回前同步触发，不保留动画状态
//   - onArrival: 前沿到达终点时触发（可为 nil）
//   - onComplete: 整个动画（含呼吸阶段）结束时触发（可为 nil）
func (a *PathPulseAnimator) Start(path []string, onArrival, onComplete func()) {
	a.cycle++

	if len(path) < 2 {
		a.reset()
		if onArrival != nil {
			onArrival()
		}
		if onComplete != nil {
			onComplete()
		}
		return
	}

	a.path = make([]string, len(path))
	copy(a.path, path)

	a.indexByID = make(map[string]int, len(a.path))
	for i, id := range a.path {
		a.indexByID[id] = i
	}

	hops := float64(len(a.path) - 1)
	a.duration = utils.Clamp(a.config.HopDuration*hops, a.config.MinDuration, a.config.MaxDuration)

	a.progress = 0
	a.breathing = false
	a.breathingProgress = 0
	a.arrivalFired = false
	a.completeFired = false
	a.onArrival = onArrival
	a.onComplete = onComplete
}

// reset 清空动画状态，回到空闲
func (a *PathPulseAnimator) reset() {
	a.path = nil
	a.indexByID = nil
	a.duration = 0
	a.progress = 1
	a.breathing = false
	a.breathingProgress = 0
	a.arrivalFired = true
	a.completeFired = true
	a.onArrival = nil
	a.onComplete = nil
}

// Update 推进动画时间
//
// dt 为上一帧以来经过的秒数，允许任意大（例如页面从后台恢复）。
// 跨越多个阶段边界时，所有生命周期回调仍按顺序、各触发恰好一次。
// 空闲或已完成时为安全空操作。
func (a *PathPulseAnimator) Update(dt float64) {
	if !a.IsAnimating() {
		return
	}

	cycle := a.cycle

	if !a.breathing {
		a.progress += dt / a.duration
		if a.progress < 1 {
			return
		}
		a.progress = 1

		if !a.arrivalFired {
			a.arrivalFired = true
			if cb := a.onArrival; cb != nil {
				cb()
				// 回调里重新 Start 时，本周期状态已被替换
				if a.cycle != cycle {
					return
				}
			}
		}

		if a.config.BreathingDuration <= 0 {
			a.fireComplete()
			return
		}

		a.breathing = true
		a.breathingProgress = 0
		return
	}

	a.breathingProgress += dt / a.config.BreathingDuration
	if a.breathingProgress < 1 {
		return
	}
	a.breathingProgress = 1
	a.fireComplete()
}

// fireComplete 触发 onComplete（恰好一次）
func (a *PathPulseAnimator) fireComplete() {
	if a.completeFired {
		return
	}
	a.completeFired = true
	if cb := a.onComplete; cb != nil {
		cb()
	}
}

// Cancel 立即终止动画，不触发任何未触发的回调
// 幂等：重复调用是安全的空操作。取消后可直接再次 Start。
func (a *PathPulseAnimator) Cancel() {
	a.cycle++
	a.reset()
}

// IsAnimating 返回动画是否仍在进行（行进或呼吸阶段未结束）
func (a *PathPulseAnimator) IsAnimating() bool {
	if len(a.path) < 2 {
		return false
	}
	if a.progress < 1 {
		return true
	}
	return a.breathing && a.breathingProgress < 1
}

// IsBreathing 仅在呼吸子阶段返回 true
func (a *PathPulseAnimator) IsBreathing() bool {
	return a.breathing && a.breathingProgress < 1
}

// Progress 返回行进阶段的进度 [0, 1]
func (a *PathPulseAnimator) Progress() float64 {
	return a.progress
}

// BreathingIntensity 返回呼吸阶段终点节点的光晕强度
//
// 三段有机曲线：
//   - [0, 0.25): 三次方缓出，0.5 → 1.0
//   - [0.25, 0.4): 保持 1.0
//   - [0.4, 1.0): 三次方缓入缓出，1.0 → 0
//
// 非呼吸阶段或呼吸已结束时返回 0。
func (a *PathPulseAnimator) BreathingIntensity() float64 {
	if !a.IsBreathing() {
		return 0
	}

	p := a.breathingProgress
	switch {
	case p < breathingRiseEnd:
		t := p / breathingRiseEnd
		return 0.5 + 0.5*utils.EaseOutCubic(t)
	case p < breathingHoldEnd:
		return 1.0
	default:
		t := (p - breathingHoldEnd) / (1 - breathingHoldEnd)
		return 1.0 - utils.EaseInOutCubic(t)
	}
}

// frontPosition 返回脉冲前沿的连续位置（节点下标单位，0 ~ len-1）
func (a *PathPulseAnimator) frontPosition() float64 {
	eased := utils.EasingFunc(a.config.Easing)(a.progress)
	return eased * float64(len(a.path)-1)
}

// falloffSpan 返回光晕拖尾的跨度（节点下标单位）
func (a *PathPulseAnimator) falloffSpan() float64 {
	return a.config.PulseWidth * float64(len(a.path)-1)
}

// cosineFalloff 余弦衰减：距离 0 时强度 1，距离超过 span 时为 0
func cosineFalloff(distance, span float64) float64 {
	if distance < 0 {
		return 0
	}
	if span <= 0 {
		// 拖尾宽度为 0 时只有前沿本身发光
		if distance == 0 {
			return 1
		}
		return 0
	}
	normalized := distance / span
	if normalized >= 1 {
		return 0
	}
	return math.Cos(normalized * math.Pi / 2)
}

// NodePulseIntensity 返回指定节点的当前光晕强度 [0, 1]
//
// 行进阶段：前沿到达或越过该节点下标后才发光（因果顺序——
// 脉冲未走完通向节点的边之前，该节点必须保持黑暗），
// 强度从前沿处的 1 按余弦衰减到拖尾末端的 0。
// 呼吸阶段：仅路径终点节点按呼吸曲线发光，其余节点为 0。
// 节点不在路径上或动画未进行时返回 0。
func (a *PathPulseAnimator) NodePulseIntensity(nodeID string) float64 {
	if !a.IsAnimating() {
		return 0
	}

	index, ok := a.indexByID[nodeID]
	if !ok {
		return 0
	}

	if a.breathing {
		if index == len(a.path)-1 {
			return a.BreathingIntensity()
		}
		return 0
	}

	front := a.frontPosition()
	if front < float64(index) {
		return 0
	}
	return cosineFalloff(front-float64(index), a.falloffSpan())
}

// EdgePulseIntensity 返回一条边的当前光晕强度 [0, 1]
//
// 仅当两个节点在路径上相邻（下标差恰为 1，方向不限）且
// 未处于呼吸阶段时非零。衰减以边的中点下标到前沿的距离计算。
func (a *PathPulseAnimator) EdgePulseIntensity(sourceID, targetID string) float64 {
	if !a.IsAnimating() || a.breathing {
		return 0
	}

	si, ok := a.indexByID[sourceID]
	if !ok {
		return 0
	}
	ti, ok := a.indexByID[targetID]
	if !ok {
		return 0
	}

	diff := si - ti
	if diff != 1 && diff != -1 {
		return 0
	}

	midpoint := math.Min(float64(si), float64(ti)) + 0.5
	front := a.frontPosition()
	if front < midpoint {
		return 0
	}
	return cosineFalloff(front-midpoint, a.falloffSpan())
}

// AllNodeIntensities 返回所有强度非零节点的批量映射
// 呼吸阶段最多只含终点节点一项。
func (a *PathPulseAnimator) AllNodeIntensities() map[string]float64 {
	result := make(map[string]float64)
	if !a.IsAnimating() {
		return result
	}

	for _, id := range a.path {
		if intensity := a.NodePulseIntensity(id); intensity > 0 {
			result[id] = intensity
		}
	}
	return result
}

// AllEdgeIntensities 返回所有强度非零边的批量映射
// 键为两端 ID 按字典序排序后拼接（见 EdgeKey），
// 与路径行进方向无关，保证渲染层查找键一致。
func (a *PathPulseAnimator) AllEdgeIntensities() map[string]float64 {
	result := make(map[string]float64)
	if !a.IsAnimating() || a.breathing {
		return result
	}

	for i := 0; i < len(a.path)-1; i++ {
		intensity := a.EdgePulseIntensity(a.path[i], a.path[i+1])
		if intensity > 0 {
			result[EdgeKey(a.path[i], a.path[i+1])] = intensity
		}
	}
	return result
}

// PulsePosition 返回脉冲前沿当前所在边的精确描述
// 空闲、呼吸阶段或行进已结束时返回 nil。
func (a *PathPulseAnimator) PulsePosition() *PulsePosition {
	if !a.IsAnimating() || a.breathing {
		return nil
	}

	front := a.frontPosition()
	edgeIndex := int(front)
	if edgeIndex > len(a.path)-2 {
		edgeIndex = len(a.path) - 2
	}

	return &PulsePosition{
		EdgeIndex:     edgeIndex,
		EdgeProgress:  front - float64(edgeIndex),
		TotalProgress: a.progress,
		SourceID:      a.path[edgeIndex],
		TargetID:      a.path[edgeIndex+1],
	}
}

// EdgePulseDetails 返回前沿附近每条边的渲染细节
//
// pulseWidth 为纳入范围的宽度（边长单位），<= 0 时使用默认值 1.0。
// 仅包含前沿相对距离落在 [-pulseWidth, 1+pulseWidth] 内的边。
// 空闲或呼吸阶段返回 nil。
func (a *PathPulseAnimator) EdgePulseDetails(pulseWidth float64) []EdgePulseDetail {
	if !a.IsAnimating() || a.breathing {
		return nil
	}

	if pulseWidth <= 0 {
		pulseWidth = 1.0
	}

	front := a.frontPosition()
	var details []EdgePulseDetail
	for i := 0; i < len(a.path)-1; i++ {
		relative := front - float64(i)
		if relative < -pulseWidth || relative > 1+pulseWidth {
			continue
		}

		source, target := a.path[i], a.path[i+1]
		details = append(details, EdgePulseDetail{
			SourceID:                    source,
			TargetID:                    target,
			Key:                         EdgeKey(source, target),
			Reversed:                    source > target,
			PulseProgressRelativeToEdge: relative,
		})
	}
	return details
}

// EdgeKey 生成方向无关的边查找键
// 两端 ID 按字典序排序后以 "|" 拼接，无论遍历方向如何键都一致。
func EdgeKey(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}
