package utils

// EasingType 缓动曲线的命名标识
//
// 使用字符串常量而非函数闭包，使缓动选择可以直接出现在 YAML 配置中，
// 也便于比较和日志输出。未知的名称一律回退为线性缓动。
type EasingType string

const (
	// EasingLinear 线性
	EasingLinear EasingType = "linear"

	// EasingEaseInOutCubic 三次方缓入缓出
	EasingEaseInOutCubic EasingType = "easeInOutCubic"

	// EasingEaseOutCubic 三次方缓出
	EasingEaseOutCubic EasingType = "easeOutCubic"

	// EasingEaseInCubic 三次方缓入
	EasingEaseInCubic EasingType = "easeInCubic"

	// EasingEaseOutQuart 四次方缓出
	EasingEaseOutQuart EasingType = "easeOutQuart"
)

// EasingFunc 根据命名标识返回对应的缓动函数
// 未知标识返回 EaseLinear
func EasingFunc(t EasingType) func(float64) float64 {
	switch t {
	case EasingEaseInOutCubic:
		return EaseInOutCubic
	case EasingEaseOutCubic:
		return EaseOutCubic
	case EasingEaseInCubic:
		return EaseInCubic
	case EasingEaseOutQuart:
		return EaseOutQuart
	case EasingLinear:
		return EaseLinear
	default:
		return EaseLinear
	}
}

// IsValidEasing 检查命名标识是否为已知缓动曲线
func IsValidEasing(t EasingType) bool {
	switch t {
	case EasingLinear, EasingEaseInOutCubic, EasingEaseOutCubic,
		EasingEaseInCubic, EasingEaseOutQuart:
		return true
	}
	return false
}
