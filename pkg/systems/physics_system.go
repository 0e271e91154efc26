package systems

import (
	"math"

	"github.com/decker502/spheresmash/pkg/components"
	"github.com/decker502/spheresmash/pkg/config"
	"github.com/decker502/spheresmash/pkg/ecs"
)

// 每帧碰撞求解的迭代次数，球堆叠时需要多次迭代才稳定
const collisionIterations = 4

// PhysicsSystem 处理球的下落与碰撞
//
// 职责：
//   - 重力积分（半隐式欧拉）
//   - 左右墙与地面的约束与反弹
//   - 球与球之间的圆形碰撞（位置修正 + 冲量）
type PhysicsSystem struct {
	em  *ecs.EntityManager
	cfg *config.PhysicsConfig
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(em *ecs.EntityManager, cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{em: em, cfg: cfg}
}

// body 一次更新中使用的刚体视图
type body struct {
	pos  *components.PositionComponent
	vel  *components.VelocityComponent
	body *components.BodyComponent
}

// Update 推进物理模拟
func (ps *PhysicsSystem) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}

	ids := ecs.GetEntitiesWith3[*components.PositionComponent, *components.VelocityComponent, *components.BodyComponent](ps.em)
	bodies := make([]body, 0, len(ids))
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](ps.em, id)
		b, _ := ecs.GetComponent[*components.BodyComponent](ps.em, id)
		bodies = append(bodies, body{pos: pos, vel: vel, body: b})
	}

	for _, b := range bodies {
		b.vel.VY += ps.cfg.Gravity * deltaTime
		b.pos.X += b.vel.VX * deltaTime
		b.pos.Y += b.vel.VY * deltaTime
	}

	for iter := 0; iter < collisionIterations; iter++ {
		for i := 0; i < len(bodies); i++ {
			for j := i + 1; j < len(bodies); j++ {
				ps.resolvePair(bodies[i], bodies[j])
			}
		}
		for _, b := range bodies {
			ps.constrainToBounds(b)
		}
	}
}

// constrainToBounds 墙与地面约束
func (ps *PhysicsSystem) constrainToBounds(b body) {
	r := b.body.Radius
	e := ps.cfg.Restitution

	if b.pos.X-r < ps.cfg.WallMinX {
		b.pos.X = ps.cfg.WallMinX + r
		if b.vel.VX < 0 {
			b.vel.VX = -b.vel.VX * e
		}
	}
	if b.pos.X+r > ps.cfg.WallMaxX {
		b.pos.X = ps.cfg.WallMaxX - r
		if b.vel.VX > 0 {
			b.vel.VX = -b.vel.VX * e
		}
	}
	if b.pos.Y-r < ps.cfg.FloorY {
		b.pos.Y = ps.cfg.FloorY + r
		if b.vel.VY < 0 {
			b.vel.VY = -b.vel.VY * e
		}
	}
}

// resolvePair 两球重叠时沿法线分开，并在相互靠近时施加冲量
func (ps *PhysicsSystem) resolvePair(a, b body) {
	dx := b.pos.X - a.pos.X
	dy := b.pos.Y - a.pos.Y
	minDist := a.body.Radius + b.body.Radius
	distSq := dx*dx + dy*dy
	if distSq >= minDist*minDist {
		return
	}

	dist := math.Sqrt(distSq)
	nx, ny := 0.0, 1.0
	if dist > 1e-9 {
		nx, ny = dx/dist, dy/dist
	}

	invA := 1 / a.body.Mass
	invB := 1 / b.body.Mass
	invSum := invA + invB

	overlap := minDist - dist
	a.pos.X -= nx * overlap * invA / invSum
	a.pos.Y -= ny * overlap * invA / invSum
	b.pos.X += nx * overlap * invB / invSum
	b.pos.Y += ny * overlap * invB / invSum

	// 法向相对速度，>0 表示正在分离
	vn := (b.vel.VX-a.vel.VX)*nx + (b.vel.VY-a.vel.VY)*ny
	if vn >= 0 {
		return
	}
	j := -(1 + ps.cfg.Restitution) * vn / invSum
	a.vel.VX -= j * nx * invA
	a.vel.VY -= j * ny * invA
	b.vel.VX += j * nx * invB
	b.vel.VY += j * ny * invB
}
