package components

// BurstParticleComponent 变形动画迸发出的单个粒子
//
// 粒子在 OnParticleBurstStart 时成批生成，位置沿速度方向扩散，
// 亮度与扩散半径由变形动画器的 ParticleIntensity / ParticleSpread
// 统一缩放，动画完成后由 ParticleSystem 回收。
type BurstParticleComponent struct {
	// VelocityX, VelocityY 基础速度（像素/秒），扩散系数为 1 时的速度
	VelocityX float64
	VelocityY float64

	// OriginX, OriginY 迸发原点（虚影所在位置）
	OriginX float64
	OriginY float64

	// Seed 每粒子随机相位 [0, 1)，用于错开大小和亮度
	Seed float64
}
