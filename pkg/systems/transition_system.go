package systems

import (
	"log"
	"math"

	"github.com/gonewx/constellation/pkg/animators"
	"github.com/gonewx/constellation/pkg/components"
	"github.com/gonewx/constellation/pkg/config"
	"github.com/gonewx/constellation/pkg/ecs"
	"github.com/gonewx/constellation/pkg/events"
	"github.com/gonewx/constellation/pkg/game"
)

// TransitionSystem 传记变形系统
//
// 监听 EventTransitionRequested，把选中的人物节点变形为传记视图：
// 驱动变形动画器，并把插值状态每帧同步到虚影实体（GhostComponent）。
// 粒子迸发阶段一次性生成 BurstParticleComponent 实体，由 ParticleSystem
// 负责定位和回收。
type TransitionSystem struct {
	entityManager *ecs.EntityManager
	animator      *animators.BiographyTransitionAnimator
	constellation *ConstellationSystem
	eventBus      *events.Bus
	viewerState   *game.ViewerState
	settings      *game.SettingsManager

	// ghostEntity 当前变形虚影实体，0 表示没有进行中的变形
	ghostEntity ecs.EntityID
}

// NewTransitionSystem 创建传记变形系统并订阅变形请求事件
func NewTransitionSystem(
	em *ecs.EntityManager,
	animator *animators.BiographyTransitionAnimator,
	constellation *ConstellationSystem,
	eventBus *events.Bus,
	viewerState *game.ViewerState,
	settings *game.SettingsManager,
) *TransitionSystem {
	ts := &TransitionSystem{
		entityManager: em,
		animator:      animator,
		constellation: constellation,
		eventBus:      eventBus,
		viewerState:   viewerState,
		settings:      settings,
	}

	eventBus.Subscribe(events.EventTransitionRequested, func(e events.Event) {
		ts.StartTransition(e.PersonID)
	})

	return ts
}

// StartTransition 对指定人物节点播放变形动画
//
// 人物不存在或已有变形进行中时忽略请求。
func (ts *TransitionSystem) StartTransition(personID string) {
	if ts.animator.IsAnimating() {
		log.Printf("[TransitionSystem] 变形进行中，忽略对 %s 的请求", personID)
		return
	}

	x, y, ok := ts.constellation.PositionOf(personID)
	if !ok {
		log.Printf("[TransitionSystem] 未知人物 %s，忽略变形请求", personID)
		return
	}

	ts.viewerState.TransitionInProgress = true
	ts.spawnGhost(personID)

	ts.animator.Start(personID, animators.Vec3{X: x, Y: y}, animators.TransitionCallbacks{
		OnCameraZoomStart: func() {
			log.Printf("[TransitionSystem] 镜头推近开始: %s", personID)
		},
		OnParticleBurstStart: func() {
			ts.spawnBurstParticles(x, y)
		},
		OnComplete: func() {
			ts.finish(personID)
		},
	})
}

// Update 推进变形动画并同步虚影状态
func (ts *TransitionSystem) Update(dt float64) {
	if !ts.animator.IsAnimating() {
		return
	}

	if ts.settings != nil && ts.settings.Settings().ReducedMotion {
		dt *= reducedMotionSpeedScale
	}
	ts.animator.Update(dt)
	ts.syncGhost()

	// 播放结束后回收虚影和粒子
	if !ts.animator.IsAnimating() {
		ts.removeGhost()
		ts.removeParticles()
	}
}

// Cancel 取消变形：回收虚影和粒子，恢复视图状态
func (ts *TransitionSystem) Cancel() {
	ts.animator.Cancel()
	ts.removeGhost()
	ts.removeParticles()
	ts.viewerState.TransitionInProgress = false
}

// IsAnimating 变形是否正在播放
func (ts *TransitionSystem) IsAnimating() bool {
	return ts.animator.IsAnimating()
}

// State 返回动画器的当前插值状态（供粒子系统读取）
func (ts *TransitionSystem) State() animators.TransitionState {
	return ts.animator.State()
}

// spawnGhost 为变形目标创建虚影实体
func (ts *TransitionSystem) spawnGhost(personID string) {
	ts.removeGhost()

	x, y, _ := ts.constellation.PositionOf(personID)
	id := ts.entityManager.CreateEntity()
	ecs.AddComponent(ts.entityManager, id, &components.GhostComponent{
		PersonID:      personID,
		GlowIntensity: 1,
		Scale:         1,
		Opacity:       1,
		Visible:       true,
	})
	ecs.AddComponent(ts.entityManager, id, &components.PositionComponent{X: x, Y: y})
	ts.ghostEntity = id
}

// syncGhost 把动画器状态拷贝到虚影组件
func (ts *TransitionSystem) syncGhost() {
	if ts.ghostEntity == 0 {
		return
	}
	ghost, ok := ecs.GetComponent[*components.GhostComponent](ts.entityManager, ts.ghostEntity)
	if !ok {
		return
	}

	state := ts.animator.State()
	ghost.GlowIntensity = state.GhostGlowIntensity
	ghost.Scale = state.GhostScale
	ghost.Opacity = state.GhostOpacity
	ghost.Visible = state.GhostVisible
}

// spawnBurstParticles 生成环形迸发的粒子实体
// 粒子速度沿圆周均匀分布，Seed 用于在渲染时错开每个粒子的大小。
func (ts *TransitionSystem) spawnBurstParticles(originX, originY float64) {
	if ts.settings != nil && !ts.settings.Settings().ParticlesEnabled {
		return
	}

	count := config.BurstParticleCount
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		id := ts.entityManager.CreateEntity()
		ecs.AddComponent(ts.entityManager, id, &components.BurstParticleComponent{
			VelocityX: math.Cos(angle) * config.BurstParticleBaseSpeed,
			VelocityY: math.Sin(angle) * config.BurstParticleBaseSpeed,
			OriginX:   originX,
			OriginY:   originY,
			Seed:      float64(i) / float64(count),
		})
		ecs.AddComponent(ts.entityManager, id, &components.PositionComponent{X: originX, Y: originY})
	}
}

// finish 变形完成：发布事件并执行挂起的视图刷新
func (ts *TransitionSystem) finish(personID string) {
	ts.syncGhost()
	ts.viewerState.TransitionInProgress = false
	ts.viewerState.FlushPendingRefresh()
	ts.eventBus.Publish(events.Event{Type: events.EventTransitionCompleted, PersonID: personID})
	log.Printf("[TransitionSystem] 变形完成: %s", personID)
}

// removeGhost 回收虚影实体
func (ts *TransitionSystem) removeGhost() {
	if ts.ghostEntity == 0 {
		return
	}
	ts.entityManager.DestroyEntity(ts.ghostEntity)
	ts.ghostEntity = 0
}

// removeParticles 回收所有迸发粒子实体
func (ts *TransitionSystem) removeParticles() {
	for _, id := range ecs.EntitiesWith[*components.BurstParticleComponent](ts.entityManager) {
		ts.entityManager.DestroyEntity(id)
	}
}
