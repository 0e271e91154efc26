package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/spheresmash/pkg/components"
	"github.com/decker502/spheresmash/pkg/ecs"
)

// NewExplosionEntity 创建爆炸特效实体
// 半径从 startRadius 扩散到 endRadius，lifetime 秒后由 LifetimeSystem 清理
func NewExplosionEntity(em *ecs.EntityManager, x, y, startRadius, endRadius float64, c color.RGBA, lifetime float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if lifetime <= 0 {
		return 0, fmt.Errorf("explosion lifetime must be > 0, got %v", lifetime)
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.ExplosionComponent{
		StartRadius: startRadius,
		EndRadius:   endRadius,
		Color:       c,
	})
	em.AddComponent(entityID, &components.LifetimeComponent{MaxLifetime: lifetime})

	return entityID, nil
}
