package systems

import (
	"github.com/gonewx/constellation/pkg/components"
	"github.com/gonewx/constellation/pkg/ecs"
)

// ParticleSystem 迸发粒子系统
//
// 粒子位置不做逐帧积分，而是由变形动画器的 ParticleSpread 直接决定：
// position = origin + velocity × spread。
// 这保证粒子扩散与变形进度严格同步，取消或重播时不会残留漂移误差。
type ParticleSystem struct {
	entityManager *ecs.EntityManager
	transition    *TransitionSystem
}

// NewParticleSystem 创建迸发粒子系统
func NewParticleSystem(em *ecs.EntityManager, transition *TransitionSystem) *ParticleSystem {
	return &ParticleSystem{
		entityManager: em,
		transition:    transition,
	}
}

// Update 根据变形进度定位粒子
func (ps *ParticleSystem) Update(dt float64) {
	particles := ecs.EntitiesWith[*components.BurstParticleComponent](ps.entityManager)
	if len(particles) == 0 {
		return
	}

	state := ps.transition.State()

	for _, id := range particles {
		particle, _ := ecs.GetComponent[*components.BurstParticleComponent](ps.entityManager, id)
		pos, ok := ecs.GetComponent[*components.PositionComponent](ps.entityManager, id)
		if !ok {
			continue
		}
		pos.X = particle.OriginX + particle.VelocityX*state.ParticleSpread
		pos.Y = particle.OriginY + particle.VelocityY*state.ParticleSpread
	}
}
