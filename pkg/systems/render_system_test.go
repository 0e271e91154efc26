package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/spheresmash/pkg/components"
	"github.com/decker502/spheresmash/pkg/config"
	"github.com/decker502/spheresmash/pkg/game"
)

func TestExplosionStyle(t *testing.T) {
	exp := &components.ExplosionComponent{StartRadius: 1, EndRadius: 3, Color: color.RGBA{R: 200, G: 100, B: 50, A: 255}}

	tests := []struct {
		name       string
		current    float64
		wantRadius float64
		wantAlpha  uint8
	}{
		{"开始", 0, 1, 255},
		{"结束", 2, 3, 0},
		{"超时", 5, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			life := &components.LifetimeComponent{MaxLifetime: 2, CurrentLifetime: tt.current}
			radius, clr := explosionStyle(exp, life)
			if radius != tt.wantRadius {
				t.Errorf("radius: got %v, want %v", radius, tt.wantRadius)
			}
			if clr.A != tt.wantAlpha {
				t.Errorf("alpha: got %d, want %d", clr.A, tt.wantAlpha)
			}
		})
	}
}

func TestExplosionGrowsFastFirst(t *testing.T) {
	exp := &components.ExplosionComponent{StartRadius: 0, EndRadius: 1, Color: config.ExplosionColor}
	radius, _ := explosionStyle(exp, &components.LifetimeComponent{MaxLifetime: 1, CurrentLifetime: 0.5})

	if radius <= 0.5 {
		t.Errorf("Ease-out explosion should pass the midpoint early, got %v", radius)
	}
}

func TestFadeClamps(t *testing.T) {
	c := color.RGBA{R: 100, G: 100, B: 100, A: 200}

	if got := fade(c, 2); got != c {
		t.Errorf("fade(2) = %v, want %v", got, c)
	}
	if got := fade(c, -1); got != (color.RGBA{}) {
		t.Errorf("fade(-1) = %v, want transparent", got)
	}
}

func TestLineColor(t *testing.T) {
	state := game.NewRoundState(4)
	if lineColor(state) != config.LineColor {
		t.Error("Line should use the base color outside Playing")
	}

	state.Phase = game.PhasePlaying
	if lineColor(state) != config.LineColor {
		t.Error("Line should use the base color when nothing is over it")
	}

	state.TimeOverLine = 0.01
	if lineColor(state) != config.LineWarnColor {
		t.Error("Line should flash to the warning color")
	}
	state.TimeOverLine = 0.1
	if lineColor(state) != config.LineColor {
		t.Error("Line should flash back to the base color")
	}
}

func TestTextAnchorsCoverMenuTexts(t *testing.T) {
	for _, id := range game.AllTextIDs {
		if id == game.TextScore {
			continue
		}
		if _, ok := textAnchors[id]; !ok {
			t.Errorf("No anchor for text %q", id)
		}
	}
}
