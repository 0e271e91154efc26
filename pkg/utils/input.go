// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerPress 一次按下事件（屏幕坐标）
type PointerPress struct {
	X, Y    int
	IsTouch bool
}

// AppendJustPressed 收集本帧所有刚按下的触摸点和鼠标左键
// 多点触摸时每个触摸点都是独立事件
func AppendJustPressed(presses []PointerPress) []PointerPress {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		presses = append(presses, PointerPress{X: x, Y: y, IsTouch: true})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		presses = append(presses, PointerPress{X: x, Y: y})
	}

	return presses
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标），用于按钮悬停
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}
