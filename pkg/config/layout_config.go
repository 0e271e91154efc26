package config

import (
	"image/color"

	"github.com/decker502/spheresmash/pkg/components"
)

// 布局配置常量
// 逻辑屏幕尺寸与世界坐标的换算关系，以及各 UI 元素的颜色

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 960

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 640

	// PixelsPerUnit 世界单位到像素的比例
	// 960x640 对应世界坐标 X[-12,12] Y[-8,8]
	PixelsPerUnit = 40.0

	// ScoreTextX / ScoreTextY 游戏中分数的位置（屏幕坐标，左上角）
	ScoreTextX = 16
	ScoreTextY = 12

	// TitleFontSize 标题字号
	TitleFontSize = 56.0
	// BodyFontSize 正文字号
	BodyFontSize = 24.0
)

// MenuButtonLayout 菜单按钮布局（相对屏幕比例，中心点 + 尺寸）
type MenuButtonLayout struct {
	RelX, RelY float64
	RelW, RelH float64
}

var (
	// PrimaryButton "Play"/"Play Again" 按钮
	PrimaryButton = MenuButtonLayout{RelX: 0.55, RelY: 0.6, RelW: 0.25, RelH: 0.15}
	// SecondaryButton "Instructions" 按钮，教程界面的 "Play" 也在这里
	SecondaryButton = MenuButtonLayout{RelX: 0.55, RelY: 0.8, RelW: 0.25, RelH: 0.15}
)

// 颜色
var (
	BackgroundColor    = color.RGBA{R: 18, G: 18, B: 28, A: 255}
	PlayFieldColor     = color.RGBA{R: 28, G: 30, B: 44, A: 255}
	WallColor          = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	LineColor          = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	LineWarnColor      = color.RGBA{R: 255, G: 140, B: 40, A: 255}
	TextColor          = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	ButtonColor        = color.RGBA{R: 60, G: 90, B: 150, A: 230}
	ButtonHoverColor   = color.RGBA{R: 80, G: 120, B: 190, A: 240}
	ButtonTextColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	IndicatorColor     = color.RGBA{R: 255, G: 170, B: 40, A: 255}
	WildSphereColor    = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	NukeSphereColor    = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	ExplosionColor     = color.RGBA{R: 255, G: 200, B: 80, A: 255}
	BigExplosionColor  = color.RGBA{R: 255, G: 90, B: 30, A: 255}
	SelectorSpokeColor = color.RGBA{R: 255, G: 255, B: 255, A: 200}

	// SphereColors 普通球颜色，按 ColorIndex 排列（蓝、绿、红、黄）
	SphereColors = []color.RGBA{
		{R: 50, G: 100, B: 255, A: 255},
		{R: 50, G: 200, B: 80, A: 255},
		{R: 230, G: 50, B: 50, A: 255},
		{R: 250, G: 215, B: 0, A: 255},
	}
)

// 特效参数
const (
	SphereExplosionLifetime = 0.4 // 小爆炸持续时间（秒）
	GameOverExplosionLife   = 2.0 // 游戏结束大爆炸持续时间（秒）
	GameOverExplosionRadius = 9.0 // 大爆炸最终半径（世界单位）
)

// KindColor 球的填充颜色
func KindColor(kind components.SphereKind) color.RGBA {
	switch kind.Powerup {
	case components.PowerupWild:
		return WildSphereColor
	case components.PowerupNuke:
		return NukeSphereColor
	}
	if int(kind.Color) >= 0 && int(kind.Color) < len(SphereColors) {
		return SphereColors[kind.Color]
	}
	return TextColor
}
