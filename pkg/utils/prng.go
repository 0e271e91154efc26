package utils

import (
	"math/rand"
	"time"
)

// RandomSource 游戏逻辑使用的随机数来源
// 测试中可以替换为固定序列
type RandomSource interface {
	// Float64 返回 [0.0, 1.0) 的随机数
	Float64() float64
	// Intn 返回 [0, n) 的随机整数
	Intn(n int) int
}

// PRNG 可设定种子的随机数生成器，保证同一种子下的游戏过程可复现
type PRNG struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNG 创建随机数生成器；seed 为 0 时使用当前时间
func NewPRNG(seed int64) *PRNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNG{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed 实际使用的种子
func (p *PRNG) Seed() int64 {
	return p.seed
}

func (p *PRNG) Float64() float64 {
	return p.rng.Float64()
}

func (p *PRNG) Intn(n int) int {
	return p.rng.Intn(n)
}

// Uniform 返回 [min, max] 区间的均匀分布随机数
func Uniform(src RandomSource, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + src.Float64()*(max-min)
}

// Chance 以概率 p 返回 true，p 会被限制在 [0, 1]
func Chance(src RandomSource, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Float64() < p
}
