package entities

import (
	"image/color"
	"testing"

	"github.com/decker502/spheresmash/pkg/components"
	"github.com/decker502/spheresmash/pkg/ecs"
)

func TestNewExplosionEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	red := color.RGBA{R: 255, A: 255}

	id, err := NewExplosionEntity(em, 2, -1, 0.6, 1.2, red, 0.4)
	if err != nil {
		t.Fatalf("NewExplosionEntity() error: %v", err)
	}

	exp, ok := ecs.GetComponent[*components.ExplosionComponent](em, id)
	if !ok {
		t.Fatal("Explosion entity should have ExplosionComponent")
	}
	if exp.StartRadius != 0.6 || exp.EndRadius != 1.2 || exp.Color != red {
		t.Errorf("Explosion: got %+v", exp)
	}

	life, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !ok || life.MaxLifetime != 0.4 || life.IsExpired {
		t.Errorf("Lifetime: got %+v", life)
	}

	if ecs.HasComponent[*components.SphereComponent](em, id) {
		t.Error("Explosion should not be a sphere")
	}
}

func TestNewExplosionEntityInvalidLifetime(t *testing.T) {
	if _, err := NewExplosionEntity(ecs.NewEntityManager(), 0, 0, 0, 1, color.RGBA{}, 0); err == nil {
		t.Error("Expected error for zero lifetime")
	}
}
