package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the game with its own update and rendering logic.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	// A non-nil error stops the game loop.
	Update(deltaTime float64) error

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，场景在程序退出前释放资源或落盘
//
// 实现此接口的场景会在以下时机被调用 Close()：
//   - 游戏窗口关闭
//   - 按下退出键
type Closer interface {
	Close() error
}
