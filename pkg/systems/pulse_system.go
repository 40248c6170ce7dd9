package systems

import (
	"log"

	"github.com/gonewx/constellation/internal/familytree"
	"github.com/gonewx/constellation/pkg/animators"
	"github.com/gonewx/constellation/pkg/components"
	"github.com/gonewx/constellation/pkg/ecs"
	"github.com/gonewx/constellation/pkg/events"
	"github.com/gonewx/constellation/pkg/game"
)

// reducedMotionSpeedScale 低动态模式下的额外速度倍率
const reducedMotionSpeedScale = 2.0

// PulseSystem 血缘脉冲系统
//
// 负责在两个人物之间寻找血缘路径并驱动脉冲动画器，
// 每帧把动画器的节点/连线强度写入对应实体的 GlowComponent，
// 渲染系统只读组件，不直接接触动画器。
type PulseSystem struct {
	entityManager *ecs.EntityManager
	animator      *animators.PathPulseAnimator
	graph         *familytree.Graph
	eventBus      *events.Bus
	settings      *game.SettingsManager
}

// NewPulseSystem 创建血缘脉冲系统
func NewPulseSystem(
	em *ecs.EntityManager,
	animator *animators.PathPulseAnimator,
	graph *familytree.Graph,
	eventBus *events.Bus,
	settings *game.SettingsManager,
) *PulseSystem {
	return &PulseSystem{
		entityManager: em,
		animator:      animator,
		graph:         graph,
		eventBus:      eventBus,
		settings:      settings,
	}
}

// StartLineagePulse 在两个人物之间播放血缘脉冲
//
// 返回：
//   - bool: 是否找到血缘路径并启动了动画
func (ps *PulseSystem) StartLineagePulse(fromID, toID string) bool {
	path := ps.graph.FindPath(fromID, toID)
	if path == nil {
		log.Printf("[PulseSystem] %s 与 %s 之间没有血缘路径", fromID, toID)
		return false
	}

	log.Printf("[PulseSystem] 启动血缘脉冲: %s → %s（%d 个节点）", fromID, toID, len(path))

	ps.animator.Start(path,
		func() {
			ps.eventBus.Publish(events.Event{Type: events.EventPulseArrived, PersonID: toID})
		},
		func() {
			ps.eventBus.Publish(events.Event{Type: events.EventPulseCompleted, PersonID: toID})
		},
	)
	return true
}

// Cancel 取消正在播放的脉冲并熄灭所有光晕
func (ps *PulseSystem) Cancel() {
	ps.animator.Cancel()
	ps.clearGlow()
}

// IsAnimating 脉冲是否正在播放
func (ps *PulseSystem) IsAnimating() bool {
	return ps.animator.IsAnimating()
}

// Update 推进脉冲动画并同步光晕组件
func (ps *PulseSystem) Update(dt float64) {
	if !ps.animator.IsAnimating() {
		return
	}

	ps.animator.Update(dt * ps.speedScale())
	ps.syncGlow()
}

// speedScale 返回用户设置决定的速度倍率
func (ps *PulseSystem) speedScale() float64 {
	if ps.settings == nil {
		return 1.0
	}
	scale := ps.settings.Settings().PulseSpeedScale
	if ps.settings.Settings().ReducedMotion {
		scale *= reducedMotionSpeedScale
	}
	return scale
}

// syncGlow 把动画器当前强度写入星点和连线的 GlowComponent
func (ps *PulseSystem) syncGlow() {
	nodeIntensities := ps.animator.AllNodeIntensities()
	edgeIntensities := ps.animator.AllEdgeIntensities()

	for _, id := range ecs.EntitiesWith[*components.StarComponent](ps.entityManager) {
		star, _ := ecs.GetComponent[*components.StarComponent](ps.entityManager, id)
		glow, ok := ecs.GetComponent[*components.GlowComponent](ps.entityManager, id)
		if !ok {
			continue
		}
		glow.Intensity = nodeIntensities[star.PersonID]
	}

	for _, id := range ecs.EntitiesWith[*components.LinkComponent](ps.entityManager) {
		link, _ := ecs.GetComponent[*components.LinkComponent](ps.entityManager, id)
		glow, ok := ecs.GetComponent[*components.GlowComponent](ps.entityManager, id)
		if !ok {
			continue
		}
		glow.Intensity = edgeIntensities[link.Key]
	}
}

// clearGlow 熄灭所有星点和连线的光晕
func (ps *PulseSystem) clearGlow() {
	for _, id := range ecs.EntitiesWith[*components.GlowComponent](ps.entityManager) {
		glow, _ := ecs.GetComponent[*components.GlowComponent](ps.entityManager, id)
		glow.Intensity = 0
	}
}
