package systems

import (
	"github.com/decker502/spheresmash/pkg/components"
	"github.com/decker502/spheresmash/pkg/config"
	"github.com/decker502/spheresmash/pkg/ecs"
	"github.com/decker502/spheresmash/pkg/game"
)

// GameOverSystem 越线检测
//
// 球越线：已过保护期，且 y + 半径 > 警戒线 + 线宽/2。
// 任意球越线时累计时间，超过 GameOverTime 判负；
// 没有球越线时累计时间清零并停止警报。
type GameOverSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	state         *game.RoundState
	audio         game.AudioSink
}

// NewGameOverSystem 创建越线检测系统
func NewGameOverSystem(em *ecs.EntityManager, cfg *config.GameConfig, state *game.RoundState, audio game.AudioSink) *GameOverSystem {
	return &GameOverSystem{
		entityManager: em,
		config:        cfg,
		state:         state,
		audio:         audio,
	}
}

// LineTop 警戒线上沿
func (s *GameOverSystem) LineTop() float64 {
	return s.config.Rules.LineY + s.config.Rules.LineThickness/2
}

// IsOverLine 单个球是否越线
func (s *GameOverSystem) IsOverLine(sphere *components.SphereComponent, pos *components.PositionComponent) bool {
	return !sphere.IsSafe() && pos.Y+s.config.Rules.SphereRadius > s.LineTop()
}

// AnyOverLine 是否有任意球越线
func (s *GameOverSystem) AnyOverLine() bool {
	for _, id := range ecs.GetEntitiesWith2[*components.SphereComponent, *components.PositionComponent](s.entityManager) {
		sphere, _ := ecs.GetComponent[*components.SphereComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if s.IsOverLine(sphere, pos) {
			return true
		}
	}
	return false
}

// Update 返回 true 表示应进入 GameOver
func (s *GameOverSystem) Update(deltaTime float64) bool {
	if !s.AnyOverLine() {
		s.state.TimeOverLine = 0
		if s.audio != nil && s.audio.IsPlaying(game.CueWarning) {
			s.audio.StopSound(game.CueWarning)
		}
		return false
	}

	if s.state.TimeOverLine == 0 && s.audio != nil {
		s.audio.PlaySound(game.CueWarning)
	}
	s.state.TimeOverLine += deltaTime

	return s.state.TimeOverLine > s.config.Rules.GameOverTime
}
