package systems

import (
	"testing"

	"github.com/decker502/spheresmash/pkg/components"
	"github.com/decker502/spheresmash/pkg/ecs"
)

func TestLifetimeUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 0.4})

	system.Update(0.25)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if lifetime.CurrentLifetime != 0.25 {
		t.Errorf("Expected CurrentLifetime=0.25, got %f", lifetime.CurrentLifetime)
	}
	if lifetime.IsExpired {
		t.Error("Entity should not be expired yet")
	}
}

// TestLifetimeExpiration 过期后在 RemoveMarkedEntities 时删除
func TestLifetimeExpiration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 0.4})

	system.Update(0.5)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !lifetime.IsExpired {
		t.Error("Entity should be expired")
	}
	if !em.Exists(id) {
		t.Error("Entity should survive until RemoveMarkedEntities")
	}

	// 再次更新不会重复标记
	system.Update(0.5)

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Expired entity should be removed")
	}
}
