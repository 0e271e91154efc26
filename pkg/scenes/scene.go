package scenes

import (
	"github.com/decker502/spheresmash/pkg/game"
)

// Scene is a type alias for game.Scene so callers only need this package.
type Scene = game.Scene

var (
	_ Scene       = (*GameScene)(nil)
	_ game.Closer = (*GameScene)(nil)
)
