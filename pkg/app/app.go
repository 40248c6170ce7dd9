// Package app 提供星座查看器的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：加载家谱数据和动画配置、
// 组装 ECS 实体与各个系统，并实现 ebiten.Game 接口驱动渲染循环。
package app

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/constellation/internal/familytree"
	"github.com/gonewx/constellation/pkg/animators"
	"github.com/gonewx/constellation/pkg/config"
	"github.com/gonewx/constellation/pkg/ecs"
	"github.com/gonewx/constellation/pkg/embedded"
	"github.com/gonewx/constellation/pkg/events"
	"github.com/gonewx/constellation/pkg/game"
	"github.com/gonewx/constellation/pkg/systems"
)

// tickDuration 固定逻辑帧步长（秒），ebiten 默认 60 TPS
const tickDuration = 1.0 / 60.0

// readResource 优先读取磁盘文件，失败时退回嵌入资源
// 桌面端开发时直接改磁盘文件即可生效，发布包和移动端则使用嵌入副本。
func readResource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if embedded.IsInitialized() {
		if embeddedData, embErr := embedded.ReadFile(path); embErr == nil {
			log.Printf("[App] 磁盘文件 %s 不可用，使用嵌入资源", path)
			return embeddedData, nil
		}
	}
	return nil, err
}

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// FamilyFile 家谱数据文件路径
	FamilyFile string
	// AnimationFile 动画配置文件路径，为空则使用内置默认值
	AnimationFile string
}

// App 是星座查看器的核心包装器，实现 ebiten.Game 接口
type App struct {
	entityManager *ecs.EntityManager
	eventBus      *events.Bus
	viewerState   *game.ViewerState
	settings      *game.SettingsManager

	constellation *systems.ConstellationSystem
	pulse         *systems.PulseSystem
	transition    *systems.TransitionSystem
	particles     *systems.ParticleSystem
	render        *systems.RenderSystem
}

// NewApp 创建并初始化星座查看器
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	familyData, err := readResource(cfg.FamilyFile)
	if err != nil {
		return nil, fmt.Errorf("家谱数据加载失败: %w", err)
	}
	graph, err := familytree.ParseGraph(familyData)
	if err != nil {
		return nil, fmt.Errorf("家谱数据无效: %w", err)
	}
	log.Printf("[App] 家谱加载完成: %d 人", len(graph.People))

	pulseConfig := animators.DefaultPathPulseConfig()
	transitionConfig := animators.DefaultTransitionConfig()
	if cfg.AnimationFile != "" {
		animData, err := readResource(cfg.AnimationFile)
		if err != nil {
			return nil, fmt.Errorf("动画配置加载失败: %w", err)
		}
		animConfig, err := config.ParseAnimationConfig(animData)
		if err != nil {
			return nil, fmt.Errorf("动画配置无效: %w", err)
		}
		pulseConfig = animConfig.ToPulseConfig()
		transitionConfig = animConfig.ToTransitionConfig()
		log.Printf("[App] 动画配置加载完成: %s", cfg.AnimationFile)
	}

	// gdata 打开失败时降级为仅内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: "constellation"})
	if err != nil {
		log.Printf("[App] Warning: 设置存储不可用: %v（使用内存设置）", err)
		gdataManager = nil
	}
	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}

	em := ecs.NewEntityManager()
	bus := events.NewBus()
	viewerState := game.NewViewerState()

	constellation := systems.NewConstellationSystem(em, graph)
	pulse := systems.NewPulseSystem(em, animators.NewPathPulseAnimator(pulseConfig), graph, bus, settings)
	transition := systems.NewTransitionSystem(em, animators.NewBiographyTransitionAnimator(transitionConfig), constellation, bus, viewerState, settings)
	particles := systems.NewParticleSystem(em, transition)
	render := systems.NewRenderSystem(em, constellation, transition)

	// 脉冲到达终点后自动开始该人物的传记变形
	bus.Subscribe(events.EventPulseArrived, func(e events.Event) {
		bus.Publish(events.Event{Type: events.EventTransitionRequested, PersonID: e.PersonID})
	})

	return &App{
		entityManager: em,
		eventBus:      bus,
		viewerState:   viewerState,
		settings:      settings,
		constellation: constellation,
		pulse:         pulse,
		transition:    transition,
		particles:     particles,
		render:        render,
	}, nil
}

// Update 处理输入并推进所有系统
func (a *App) Update() error {
	a.handleInput()

	a.pulse.Update(tickDuration)
	a.transition.Update(tickDuration)
	a.particles.Update(tickDuration)
	a.entityManager.RemoveMarkedEntities()

	return nil
}

// handleInput 处理鼠标点击和快捷键
//
// 交互约定：
//   - 第一次点击选中脉冲起点，第二次点击另一颗星触发血缘脉冲
//   - B 键对当前选中人物直接播放传记变形
//   - Escape 取消所有进行中的动画并清除选中
func (a *App) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.pulse.Cancel()
		a.transition.Cancel()
		a.viewerState.SelectedPersonID = ""
		a.viewerState.PulseSourceID = ""
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyB) && a.viewerState.SelectedPersonID != "" {
		a.eventBus.Publish(events.Event{
			Type:     events.EventTransitionRequested,
			PersonID: a.viewerState.SelectedPersonID,
		})
		return
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}

	x, y := ebiten.CursorPosition()
	personID := a.constellation.StarAt(float64(x), float64(y))
	if personID == "" {
		return
	}

	if a.viewerState.PulseSourceID == "" || a.viewerState.PulseSourceID == personID {
		a.viewerState.PulseSourceID = personID
		a.viewerState.SelectedPersonID = personID
		log.Printf("[App] 选中脉冲起点: %s", personID)
		return
	}

	a.viewerState.SelectedPersonID = personID
	if a.pulse.StartLineagePulse(a.viewerState.PulseSourceID, personID) {
		a.viewerState.PulseSourceID = ""
	}
}

// Draw 绘制星座视图和操作提示
func (a *App) Draw(screen *ebiten.Image) {
	a.render.Draw(screen)

	hint := "点击两颗星播放血缘脉冲 | B: 传记变形 | Esc: 取消"
	if a.viewerState.PulseSourceID != "" {
		hint = fmt.Sprintf("起点: %s，点击另一颗星 | Esc: 取消", a.viewerState.PulseSourceID)
	}
	ebitenutil.DebugPrint(screen, hint)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Settings 返回设置管理器（供外层调整查看选项）
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}
