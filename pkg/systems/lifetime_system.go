package systems

import (
	"github.com/decker502/spheresmash/pkg/components"
	"github.com/decker502/spheresmash/pkg/ecs"
)

// LifetimeSystem 到期的实体标记为待删除（爆炸特效的延迟销毁）
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{entityManager: em}
}

// Update 推进生命周期；实际删除发生在 RemoveMarkedEntities
func (s *LifetimeSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok || lifetime.IsExpired {
			continue
		}

		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
			s.entityManager.DestroyEntity(id)
		}
	}
}
