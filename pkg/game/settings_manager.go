package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ViewerSettings 星座视图的全局查看设置
// 注意：这些设置是全局的，不绑定到特定家谱文件
type ViewerSettings struct {
	// PulseSpeedScale 脉冲动画速度倍率（1.0 = 配置原速）
	PulseSpeedScale float64 `yaml:"pulseSpeedScale"`

	// ParticlesEnabled 是否播放变形动画的粒子迸发
	ParticlesEnabled bool `yaml:"particlesEnabled"`

	// ReducedMotion 低动态模式：跳过呼吸阶段并缩短变形动画
	ReducedMotion bool `yaml:"reducedMotion"`
}

// DefaultViewerSettings 返回默认设置
func DefaultViewerSettings() *ViewerSettings {
	return &ViewerSettings{
		PulseSpeedScale:  1.0,
		ParticlesEnabled: true,
		ReducedMotion:    false,
	}
}

// SettingsManager 设置管理器
// 负责查看设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager  // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ViewerSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "viewer"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultViewerSettings(),
	}

	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或设置不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultViewerSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultViewerSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultViewerSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded ViewerSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultViewerSettings()
		return fmt.Errorf("failed to parse settings: %w", err)
	}

	// 防御性修正：速度倍率必须为正
	if loaded.PulseSpeedScale <= 0 {
		loaded.PulseSpeedScale = 1.0
	}

	sm.settings = &loaded
	return nil
}

// Save 把当前设置写入 gdata
// 降级模式（gdataManager 为 nil）下静默跳过。
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Settings 返回当前设置（调用方不应长期持有该指针）
func (sm *SettingsManager) Settings() *ViewerSettings {
	return sm.settings
}

// SetPulseSpeedScale 设置脉冲速度倍率并立即保存
func (sm *SettingsManager) SetPulseSpeedScale(scale float64) error {
	if scale <= 0 {
		return fmt.Errorf("pulse speed scale must be positive, got %v", scale)
	}
	sm.settings.PulseSpeedScale = scale
	return sm.Save()
}

// SetParticlesEnabled 设置粒子开关并立即保存
func (sm *SettingsManager) SetParticlesEnabled(enabled bool) error {
	sm.settings.ParticlesEnabled = enabled
	return sm.Save()
}

// SetReducedMotion 设置低动态模式并立即保存
func (sm *SettingsManager) SetReducedMotion(enabled bool) error {
	sm.settings.ReducedMotion = enabled
	return sm.Save()
}
