package components

import "image/color"

// ExplosionComponent 爆炸特效
// 球被消灭时生成小爆炸，游戏结束时在画面中心生成大爆炸
type ExplosionComponent struct {
	StartRadius float64    // 初始半径（世界单位）
	EndRadius   float64    // 结束半径（世界单位）
	Color       color.RGBA // 特效颜色
}
