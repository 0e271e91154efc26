package config

import (
	"testing"

	"github.com/decker502/spheresmash/pkg/components"
)

func TestKindColor(t *testing.T) {
	tests := []struct {
		name string
		kind components.SphereKind
		want interface{}
	}{
		{"蓝", components.NormalKind(components.ColorBlue), SphereColors[0]},
		{"黄", components.NormalKind(components.ColorYellow), SphereColors[3]},
		{"万能", components.PowerupKind(components.PowerupWild), WildSphereColor},
		{"核弹", components.PowerupKind(components.PowerupNuke), NukeSphereColor},
		{"越界颜色", components.NormalKind(components.ColorIndex(9)), TextColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindColor(tt.kind); got != tt.want {
				t.Errorf("KindColor(%s) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

// TestSphereColorsMatchSelectors 每个选择器都有对应的颜色
func TestSphereColorsMatchSelectors(t *testing.T) {
	if len(SphereColors) != components.MaxColors {
		t.Errorf("SphereColors has %d entries, want %d", len(SphereColors), components.MaxColors)
	}
}

// TestPlayFieldFitsScreen 默认场地和选择器都在逻辑屏幕内
func TestPlayFieldFitsScreen(t *testing.T) {
	cfg := DefaultGameConfig()
	halfW := GameWindowWidth / 2 / PixelsPerUnit
	halfH := GameWindowHeight / 2 / PixelsPerUnit

	if cfg.Physics.WallMinX < -halfW || cfg.Physics.WallMaxX > halfW {
		t.Errorf("Walls [%v, %v] exceed screen half width %v", cfg.Physics.WallMinX, cfg.Physics.WallMaxX, halfW)
	}
	if cfg.Physics.FloorY < -halfH {
		t.Errorf("Floor %v below screen bottom %v", cfg.Physics.FloorY, -halfH)
	}
	for i, sel := range cfg.Selectors {
		if sel.X-cfg.Rules.SelectorRadius < -halfW || sel.Y+cfg.Rules.SelectorRadius > halfH {
			t.Errorf("Selector %d at (%v, %v) is off screen", i, sel.X, sel.Y)
		}
	}
}

func TestMenuButtonsDoNotOverlap(t *testing.T) {
	p, s := PrimaryButton, SecondaryButton
	if p.RelY+p.RelH/2 > s.RelY-s.RelH/2 {
		t.Errorf("Primary button bottom %v overlaps secondary top %v", p.RelY+p.RelH/2, s.RelY-s.RelH/2)
	}
	for _, b := range []MenuButtonLayout{p, s} {
		if b.RelX-b.RelW/2 < 0 || b.RelX+b.RelW/2 > 1 || b.RelY+b.RelH/2 > 1 {
			t.Errorf("Button %+v extends past the screen", b)
		}
	}
}
