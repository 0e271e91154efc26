package systems

import (
	"log"
	"math"

	"github.com/decker502/spheresmash/pkg/components"
	"github.com/decker502/spheresmash/pkg/config"
	"github.com/decker502/spheresmash/pkg/ecs"
	"github.com/decker502/spheresmash/pkg/entities"
	"github.com/decker502/spheresmash/pkg/game"
)

// PointerEvent 一次按下事件（世界坐标）
// 每个触摸点或鼠标点击对应一个事件，来源与输入设备无关
type PointerEvent struct {
	X, Y float64
}

// InputSystem 输入判定系统
//
// 对每个事件按创建顺序的倒序扫描存活的球（新生成的球优先），
// 命中判定：事件与球心的距离 < SphereRadius * TouchFudgeFactor。
//
// 规则（按顺序匹配）：
//  1. 核弹生效且命中普通球：消灭该球 +1，再消灭所有同色球（每个 +1），
//     核弹失效，终止本事件的扫描
//  2. 命中道具球：万能叠加时长 / 核弹置位，点亮全部指示器，消灭该球（不得分）
//  3. 命中同色球或万能生效：消灭 +1
//  4. 其他情况不受影响，继续扫描
//
// 扫描结束后，若没有道具生效，再检查颜色选择器。
type InputSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	state         *game.RoundState
	audio         game.AudioSink
}

// NewInputSystem 创建输入判定系统
func NewInputSystem(em *ecs.EntityManager, cfg *config.GameConfig, state *game.RoundState, audio game.AudioSink) *InputSystem {
	return &InputSystem{
		entityManager: em,
		config:        cfg,
		state:         state,
		audio:         audio,
	}
}

// Update 依次处理本帧的全部事件
func (s *InputSystem) Update(events []PointerEvent) {
	for _, ev := range events {
		s.Resolve(ev)
	}
}

// Resolve 处理单个事件
func (s *InputSystem) Resolve(ev PointerEvent) {
	hitRadius := s.config.HitRadius()
	spheres := ecs.GetEntitiesWith2[*components.SphereComponent, *components.PositionComponent](s.entityManager)

	for i := len(spheres) - 1; i >= 0; i-- {
		id := spheres[i]
		sphere, ok := ecs.GetComponent[*components.SphereComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if math.Hypot(ev.X-pos.X, ev.Y-pos.Y) >= hitRadius {
			continue
		}

		kind := sphere.Kind
		switch {
		case s.state.NukeActive && !kind.IsPowerup():
			s.destroySphere(id, kind, pos)
			s.state.AddScore(1)
			s.nuke(kind.Color)
			s.state.NukeActive = false
			if !s.state.WildActive() {
				s.state.ResetIndicatorsToSelection()
			}
			return

		case kind.IsPowerup():
			switch kind.Powerup {
			case components.PowerupWild:
				s.state.WildCountdown += s.config.Rules.WildBonus
			case components.PowerupNuke:
				s.state.NukeActive = true
			}
			s.state.SetAllIndicators(true)
			s.destroySphere(id, kind, pos)
			log.Printf("[InputSystem] Picked up %s powerup", kind.Powerup)

		case kind.Matches(s.state.SelectedColor) || s.state.WildActive():
			s.destroySphere(id, kind, pos)
			s.state.AddScore(1)
		}
	}

	if !s.state.NukeActive && !s.state.WildActive() {
		s.checkSelectors(ev)
	}
}

// nuke 消灭所有同色普通球，每个 +1
func (s *InputSystem) nuke(color components.ColorIndex) {
	spheres := ecs.GetEntitiesWith2[*components.SphereComponent, *components.PositionComponent](s.entityManager)
	destroyed := 0
	for i := len(spheres) - 1; i >= 0; i-- {
		id := spheres[i]
		sphere, _ := ecs.GetComponent[*components.SphereComponent](s.entityManager, id)
		if !sphere.Kind.Matches(color) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		s.destroySphere(id, sphere.Kind, pos)
		s.state.AddScore(1)
		destroyed++
	}
	log.Printf("[InputSystem] Nuke destroyed %d extra %s spheres", destroyed, color)
}

// checkSelectors 颜色选择器命中检测
func (s *InputSystem) checkSelectors(ev PointerEvent) {
	for i, sel := range s.config.Selectors {
		if math.Hypot(ev.X-sel.X, ev.Y-sel.Y) >= s.config.Rules.SelectorRadius {
			continue
		}
		if s.audio != nil {
			s.audio.PlaySound(game.CueColorChange)
		}
		s.state.SelectColor(components.ColorIndex(i))
	}
}

// destroySphere 立即移除球并在原位置留下爆炸特效
func (s *InputSystem) destroySphere(id ecs.EntityID, kind components.SphereKind, pos *components.PositionComponent) {
	radius := s.config.Rules.SphereRadius
	if _, err := entities.NewExplosionEntity(s.entityManager, pos.X, pos.Y, radius, radius*2,
		config.KindColor(kind), config.SphereExplosionLifetime); err != nil {
		log.Printf("[InputSystem] Warning: failed to create explosion: %v", err)
	}
	s.entityManager.RemoveEntity(id)
}
