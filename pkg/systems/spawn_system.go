package systems

import (
	"fmt"

	"github.com/decker502/spheresmash/pkg/components"
	"github.com/decker502/spheresmash/pkg/config"
	"github.com/decker502/spheresmash/pkg/ecs"
	"github.com/decker502/spheresmash/pkg/entities"
	"github.com/decker502/spheresmash/pkg/game"
	"github.com/decker502/spheresmash/pkg/utils"
)

// SpawnRequest 一次生成的结果：种类、位置与水平冲量
type SpawnRequest struct {
	Kind     components.SphereKind
	X, Y     float64
	ImpulseX float64
}

// SpawnSystem 生成系统
//
// 每隔 AttemptInterval 秒做一次伯努利试验，成功概率随时间线性增长。
// 成功后再以 PowerupProbability 决定生成道具球还是普通球，
// 具体种类在对应集合中均匀选取。
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	state         *game.RoundState
	rng           utils.RandomSource

	colors   []components.ColorIndex
	powerups []components.PowerupType
}

// NewSpawnSystem 创建生成系统
// 配置中的颜色/道具名称在此解析一次
func NewSpawnSystem(em *ecs.EntityManager, cfg *config.GameConfig, state *game.RoundState, rng utils.RandomSource) (*SpawnSystem, error) {
	colors, err := cfg.ColorIndices()
	if err != nil {
		return nil, err
	}
	powerups, err := cfg.PowerupTypes()
	if err != nil {
		return nil, err
	}

	return &SpawnSystem{
		entityManager: em,
		config:        cfg,
		state:         state,
		rng:           rng,
		colors:        colors,
		powerups:      powerups,
	}, nil
}

// GrowProbability 线性增长；ProbabilityCap > 0 时不超过上限
func (s *SpawnSystem) GrowProbability(p, deltaTime float64) float64 {
	p += s.config.Spawn.ProbabilityGrowth * deltaTime
	if limit := s.config.Spawn.ProbabilityCap; limit > 0 && p > limit {
		p = limit
	}
	return p
}

// TrySpawn 推进尝试倒计时，到期时按概率 p 决定是否生成
func (s *SpawnSystem) TrySpawn(deltaTime, p float64) (SpawnRequest, bool) {
	s.state.SpawnAttemptCountdown -= deltaTime
	if s.state.SpawnAttemptCountdown > 0 {
		return SpawnRequest{}, false
	}
	s.state.SpawnAttemptCountdown = s.config.Spawn.AttemptInterval

	if !utils.Chance(s.rng, p) {
		return SpawnRequest{}, false
	}

	var kind components.SphereKind
	if len(s.powerups) > 0 && utils.Chance(s.rng, s.config.Spawn.PowerupProbability) {
		kind = components.PowerupKind(s.powerups[s.rng.Intn(len(s.powerups))])
	} else {
		kind = components.NormalKind(s.colors[s.rng.Intn(len(s.colors))])
	}

	sc := s.config.Spawn
	return SpawnRequest{
		Kind:     kind,
		X:        utils.Uniform(s.rng, sc.BandMinX, sc.BandMaxX),
		Y:        sc.Height,
		ImpulseX: utils.Uniform(s.rng, -sc.ImpulseRange, sc.ImpulseRange),
	}, true
}

// Update 每帧调用一次（仅 Playing 状态）
// 返回新生成的实体ID，没有生成时为 0
func (s *SpawnSystem) Update(deltaTime float64) (ecs.EntityID, error) {
	s.state.SpawnProbability = s.GrowProbability(s.state.SpawnProbability, deltaTime)

	req, ok := s.TrySpawn(deltaTime, s.state.SpawnProbability)
	if !ok {
		return 0, nil
	}

	id, err := entities.NewSphereEntity(s.entityManager, req.Kind, req.X, req.Y, req.ImpulseX, s.config)
	if err != nil {
		return 0, fmt.Errorf("spawn %s sphere: %w", req.Kind, err)
	}
	return id, nil
}
