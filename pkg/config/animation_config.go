package config

import (
	"fmt"
	"os"

	"github.com/gonewx/constellation/pkg/animators"
	"github.com/gonewx/constellation/pkg/utils"
	"gopkg.in/yaml.v3"
)

// PulseConfigYAML 路径脉冲动画的 YAML 配置
type PulseConfigYAML struct {
	HopDuration       float64 `yaml:"hopDuration"`       // 单跳基准时长（秒）
	MinDuration       float64 `yaml:"minDuration"`       // 总时长下限（秒）
	MaxDuration       float64 `yaml:"maxDuration"`       // 总时长上限（秒）
	Easing            string  `yaml:"easing"`            // 缓动曲线名称（见 utils.EasingType）
	PulseWidth        float64 `yaml:"pulseWidth"`        // 光晕拖尾宽度（路径长度比例）
	BreathingDuration float64 `yaml:"breathingDuration"` // 到达后的呼吸时长（秒），0 表示禁用
}

// TransitionConfigYAML 变形动画的 YAML 配置
type TransitionConfigYAML struct {
	Duration float64                    `yaml:"duration"` // 总时长（秒）
	Phases   animators.TransitionPhases `yaml:"phases"`   // 阶段边界
}

// AnimationConfig 动画引擎的顶层配置文件结构
// 对应 assets/config/animation.yaml
type AnimationConfig struct {
	Pulse      PulseConfigYAML      `yaml:"pulse"`
	Transition TransitionConfigYAML `yaml:"transition"`
}

// LoadAnimationConfig 从 YAML 文件加载动画配置
//
// 参数：
//
//	filepath - 配置文件路径（相对或绝对路径）
//
// 返回：
//
//	*AnimationConfig - 解析后的配置对象（缺失字段已填入默认值）
//	error - 文件读取、解析或校验失败时返回错误
func LoadAnimationConfig(filepath string) (*AnimationConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read animation config file %s: %w", filepath, err)
	}

	cfg, err := ParseAnimationConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid animation config in %s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseAnimationConfig 解析动画配置的 YAML 字节流
// 供加载层在磁盘文件和嵌入资源之间复用同一套解析逻辑。
func ParseAnimationConfig(data []byte) (*AnimationConfig, error) {
	var cfg AnimationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse animation config YAML: %w", err)
	}

	applyAnimationDefaults(&cfg)

	if err := validateAnimationConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyAnimationDefaults 为缺失的可选字段填入默认值
// 保证旧配置文件（或空文件）可正常加载
func applyAnimationDefaults(cfg *AnimationConfig) {
	pulseDefaults := animators.DefaultPathPulseConfig()
	if cfg.Pulse.HopDuration <= 0 {
		cfg.Pulse.HopDuration = pulseDefaults.HopDuration
	}
	if cfg.Pulse.MinDuration <= 0 {
		cfg.Pulse.MinDuration = pulseDefaults.MinDuration
	}
	if cfg.Pulse.MaxDuration <= 0 {
		cfg.Pulse.MaxDuration = pulseDefaults.MaxDuration
	}
	if cfg.Pulse.Easing == "" {
		cfg.Pulse.Easing = string(pulseDefaults.Easing)
	}
	if cfg.Pulse.PulseWidth <= 0 {
		cfg.Pulse.PulseWidth = pulseDefaults.PulseWidth
	}
	// BreathingDuration 为 0 是合法配置（禁用呼吸），不设默认值

	transitionDefaults := animators.DefaultTransitionConfig()
	if cfg.Transition.Duration <= 0 {
		cfg.Transition.Duration = transitionDefaults.Duration
	}
	zero := animators.TransitionPhases{}
	if cfg.Transition.Phases == zero {
		cfg.Transition.Phases = transitionDefaults.Phases
	}
}

// validateAnimationConfig 校验配置的数值约束
func validateAnimationConfig(cfg *AnimationConfig) error {
	if cfg.Pulse.MinDuration > cfg.Pulse.MaxDuration {
		return fmt.Errorf("pulse.minDuration (%v) 不能大于 pulse.maxDuration (%v)",
			cfg.Pulse.MinDuration, cfg.Pulse.MaxDuration)
	}
	if !utils.IsValidEasing(utils.EasingType(cfg.Pulse.Easing)) {
		return fmt.Errorf("未知的缓动曲线名称: %q", cfg.Pulse.Easing)
	}
	if cfg.Pulse.BreathingDuration < 0 {
		return fmt.Errorf("pulse.breathingDuration 不能为负: %v", cfg.Pulse.BreathingDuration)
	}
	if err := cfg.Transition.Phases.Validate(); err != nil {
		return fmt.Errorf("transition.phases 无效: %w", err)
	}
	return nil
}

// ToPulseConfig 转换为动画器使用的配置结构
func (c *AnimationConfig) ToPulseConfig() animators.PathPulseConfig {
	return animators.PathPulseConfig{
		HopDuration:       c.Pulse.HopDuration,
		MinDuration:       c.Pulse.MinDuration,
		MaxDuration:       c.Pulse.MaxDuration,
		Easing:            utils.EasingType(c.Pulse.Easing),
		PulseWidth:        c.Pulse.PulseWidth,
		BreathingDuration: c.Pulse.BreathingDuration,
	}
}

// ToTransitionConfig 转换为动画器使用的配置结构
func (c *AnimationConfig) ToTransitionConfig() animators.TransitionConfig {
	return animators.TransitionConfig{
		Duration: c.Transition.Duration,
		Phases:   c.Transition.Phases,
	}
}
