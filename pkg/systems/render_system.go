package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/constellation/pkg/components"
	"github.com/gonewx/constellation/pkg/config"
	"github.com/gonewx/constellation/pkg/ecs"
	"github.com/gonewx/constellation/pkg/utils"
)

// 星座配色
var (
	backgroundColor = color.RGBA{R: 8, G: 10, B: 24, A: 255}
	starColor       = color.RGBA{R: 220, G: 228, B: 255, A: 255}
	glowColor       = color.RGBA{R: 120, G: 180, B: 255, A: 255}
	linkColor       = color.RGBA{R: 140, G: 160, B: 220, A: 255}
	ghostColor      = color.RGBA{R: 255, G: 230, B: 160, A: 255}
	particleColor   = color.RGBA{R: 255, G: 210, B: 120, A: 255}
)

// RenderSystem 星座渲染系统
//
// 只读取组件状态绘制：连线按光晕强度提亮，星点叠加脉冲光晕，
// 变形虚影和迸发粒子按动画器同步过来的组件状态绘制。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	constellation *ConstellationSystem
	transition    *TransitionSystem
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, constellation *ConstellationSystem, transition *TransitionSystem) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		constellation: constellation,
		transition:    transition,
	}
}

// Draw 绘制一帧星座视图
func (rs *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	rs.drawLinks(screen)
	rs.drawStars(screen)
	rs.drawParticles(screen)
	rs.drawGhost(screen)
}

// drawLinks 绘制血缘连线，脉冲经过的连线提亮
func (rs *RenderSystem) drawLinks(screen *ebiten.Image) {
	for _, id := range ecs.EntitiesWith[*components.LinkComponent](rs.entityManager) {
		link, _ := ecs.GetComponent[*components.LinkComponent](rs.entityManager, id)

		x1, y1, ok1 := rs.constellation.PositionOf(link.ParentID)
		x2, y2, ok2 := rs.constellation.PositionOf(link.ChildID)
		if !ok1 || !ok2 {
			continue
		}

		alpha := config.LinkBaseAlpha
		width := float32(1.0)
		if glow, ok := ecs.GetComponent[*components.GlowComponent](rs.entityManager, id); ok && glow.Intensity > 0 {
			alpha += (1 - config.LinkBaseAlpha) * glow.Intensity
			width = float32(1.0 + 2.0*glow.Intensity)
		}

		vector.StrokeLine(screen,
			float32(x1), float32(y1), float32(x2), float32(y2),
			width, scaleAlpha(linkColor, alpha), true)
	}
}

// drawStars 绘制人物星点及其脉冲光晕
func (rs *RenderSystem) drawStars(screen *ebiten.Image) {
	for _, id := range ecs.EntitiesWith[*components.StarComponent](rs.entityManager) {
		star, _ := ecs.GetComponent[*components.StarComponent](rs.entityManager, id)
		pos, ok := ecs.GetComponent[*components.PositionComponent](rs.entityManager, id)
		if !ok {
			continue
		}

		// 脉冲光晕在星点下层，半径随强度扩大
		if glow, ok := ecs.GetComponent[*components.GlowComponent](rs.entityManager, id); ok && glow.Intensity > 0 {
			haloRadius := star.Radius * (1 + (config.StarGlowRadiusScale-1)*glow.Intensity)
			vector.DrawFilledCircle(screen,
				float32(pos.X), float32(pos.Y), float32(haloRadius),
				scaleAlpha(glowColor, 0.5*glow.Intensity), true)
		}

		vector.DrawFilledCircle(screen,
			float32(pos.X), float32(pos.Y), float32(star.Radius),
			starColor, true)

		ebitenutil.DebugPrintAt(screen, star.Name,
			int(pos.X)-len(star.Name)*3, int(pos.Y)+int(star.Radius)+4)
	}
}

// drawGhost 绘制传记变形中的人物虚影
func (rs *RenderSystem) drawGhost(screen *ebiten.Image) {
	for _, id := range ecs.EntitiesWith[*components.GhostComponent](rs.entityManager) {
		ghost, _ := ecs.GetComponent[*components.GhostComponent](rs.entityManager, id)
		pos, ok := ecs.GetComponent[*components.PositionComponent](rs.entityManager, id)
		if !ok || !ghost.Visible {
			continue
		}

		// 光晕亮度峰值为 5，归一化到 [0, 1] 再映射透明度
		haloAlpha := utils.Clamp01(ghost.GlowIntensity/5) * 0.6
		haloRadius := config.StarRadius * ghost.Scale * config.StarGlowRadiusScale
		vector.DrawFilledCircle(screen,
			float32(pos.X), float32(pos.Y), float32(haloRadius),
			scaleAlpha(ghostColor, haloAlpha), true)

		vector.DrawFilledCircle(screen,
			float32(pos.X), float32(pos.Y), float32(config.StarRadius*ghost.Scale),
			scaleAlpha(ghostColor, ghost.Opacity), true)
	}
}

// drawParticles 绘制迸发粒子，亮度由变形动画器的粒子强度控制
func (rs *RenderSystem) drawParticles(screen *ebiten.Image) {
	particles := ecs.EntitiesWith[*components.BurstParticleComponent](rs.entityManager)
	if len(particles) == 0 {
		return
	}

	intensity := rs.transition.State().ParticleIntensity
	if intensity <= 0 {
		return
	}

	for _, id := range particles {
		particle, _ := ecs.GetComponent[*components.BurstParticleComponent](rs.entityManager, id)
		pos, ok := ecs.GetComponent[*components.PositionComponent](rs.entityManager, id)
		if !ok {
			continue
		}

		// Seed 错开粒子大小，避免整齐划一
		radius := 1.5 + 1.5*particle.Seed
		vector.DrawFilledCircle(screen,
			float32(pos.X), float32(pos.Y), float32(radius),
			scaleAlpha(particleColor, intensity), true)
	}
}

// scaleAlpha 按系数缩放颜色透明度（预乘 alpha）
func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := utils.Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
