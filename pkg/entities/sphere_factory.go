package entities

import (
	"fmt"

	"github.com/decker502/spheresmash/pkg/components"
	"github.com/decker502/spheresmash/pkg/config"
	"github.com/decker502/spheresmash/pkg/ecs"
)

// NewSphereEntity 创建下落的球实体
//
// 参数:
//   - em: 实体管理器
//   - kind: 球的种类（普通颜色或道具）
//   - x, y: 生成位置（世界坐标）
//   - impulseX: 生成时施加的水平冲量
//   - cfg: 游戏配置（半径、质量、保护时间、冲量换算系数）
//
// 返回:
//   - ecs.EntityID: 新实体ID
//   - error: em 或 cfg 为 nil 时返回错误
func NewSphereEntity(em *ecs.EntityManager, kind components.SphereKind, x, y, impulseX float64, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, components.NewSphereComponent(kind, cfg.Rules.SafeTime))
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})

	// 冲量在一个固定物理步长内作用：Δv = J * step / m
	em.AddComponent(entityID, &components.VelocityComponent{
		VX: impulseX * cfg.Physics.ImpulseScale / cfg.Physics.SphereMass,
	})
	em.AddComponent(entityID, &components.BodyComponent{
		Radius: cfg.Rules.SphereRadius,
		Mass:   cfg.Physics.SphereMass,
	})

	return entityID, nil
}
