package utils

import (
	"fmt"
	"math"
)

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EasingFunc maps linear progress to eased progress.
type EasingFunc func(t float64) float64

// Easing names accepted by EasingByName and the navbar config.
const (
	EasingAccelerateDecelerate = "accelerateDecelerate"
	EasingLinear               = "linear"
	EasingInOutCubic           = "inOutCubic"
	EasingOutCubic             = "outCubic"
)

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseAccelerateDecelerate 余弦缓入缓出
// 特点：起止缓慢、中段最快，曲线关于 (0.5, 0.5) 对称
// 公式：f(t) = cos((t+1)π)/2 + 0.5
func EaseAccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EasingByName resolves a configured easing name.
// An empty name selects EaseAccelerateDecelerate.
func EasingByName(name string) (EasingFunc, error) {
	switch name {
	case "", EasingAccelerateDecelerate:
		return EaseAccelerateDecelerate, nil
	case EasingLinear:
		return EaseLinear, nil
	case EasingInOutCubic:
		return EaseInOutCubic, nil
	case EasingOutCubic:
		return EaseOutCubic, nil
	}
	return nil, fmt.Errorf("unknown easing %q", name)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi] 范围内
// lo > hi 时返回 lo
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
