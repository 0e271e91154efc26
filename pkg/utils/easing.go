package utils

import "math"

// 缓动函数：输入进度 t ∈ [0, 1]，返回值 ∈ [0, 1]
// 超出范围的 t 会先被限制到 [0, 1]

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// EaseOutCubic 三次方缓出：开始快，结束慢
// f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
