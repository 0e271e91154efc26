package systems

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/decker502/spheresmash/pkg/components"
	"github.com/decker502/spheresmash/pkg/config"
	"github.com/decker502/spheresmash/pkg/ecs"
	"github.com/decker502/spheresmash/pkg/entities"
	"github.com/decker502/spheresmash/pkg/game"
	"github.com/decker502/spheresmash/pkg/utils"
)

// 屏幕文字
const (
	TitleText        = "Sphere Smash"
	GameOverText     = "Game Over"
	InstructionsText = "Tap the spheres that match your selected color.\n" +
		"Change color with the buttons on the left.\n" +
		"Don't let spheres stay above the red line!\n\n" +
		"White sphere: any color scores for a while.\n" +
		"Black sphere: the next sphere you tap destroys every sphere of its color."
)

// ErrHighScoreSave 进入 GameOver 时最高分写入失败；回合状态已经切换完成
var ErrHighScoreSave = errors.New("save high score")

// RoundSystem 回合状态机
//
// 状态：FirstEntry → Playing → GameOver → Playing ...
// Tutorial 可以从 FirstEntry 或 GameOver 菜单进入，开始游戏后回到 Playing。
//
// Playing 每帧的顺序：
//  1. 旋转颜色选择器（视觉）
//  2. 万能道具倒计时
//  3. 球的保护倒计时
//  4. 生成
//  5. 处理本帧输入
//  6. 越线检测
type RoundSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	state         *game.RoundState
	audio         game.AudioSink
	highScores    game.HighScoreStore
	text          game.TextSurface

	spawn    *SpawnSystem
	input    *InputSystem
	gameOver *GameOverSystem

	shownScore int
}

// NewRoundSystem 创建回合状态机，初始状态为 FirstEntry
//
// 配置无效时返回 config.ErrInvalidConfig，拒绝进入游戏。
func NewRoundSystem(
	em *ecs.EntityManager,
	cfg *config.GameConfig,
	rng utils.RandomSource,
	audio game.AudioSink,
	highScores game.HighScoreStore,
	text game.TextSurface,
) (*RoundSystem, error) {
	if em == nil || cfg == nil || rng == nil {
		return nil, errors.New("round system: entity manager, config and random source are required")
	}
	if audio == nil || highScores == nil || text == nil {
		return nil, errors.New("round system: audio, high score store and text surface are required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	state := game.NewRoundState(cfg.ColorCount())
	spawn, err := NewSpawnSystem(em, cfg, state, rng)
	if err != nil {
		return nil, err
	}

	rs := &RoundSystem{
		entityManager: em,
		config:        cfg,
		state:         state,
		audio:         audio,
		highScores:    highScores,
		text:          text,
		spawn:         spawn,
		input:         NewInputSystem(em, cfg, state, audio),
		gameOver:      NewGameOverSystem(em, cfg, state, audio),
	}

	game.HideAllText(text)
	text.ShowText(game.TextTitle, TitleText)
	return rs, nil
}

// State 当前回合状态（只读使用）
func (rs *RoundSystem) State() *game.RoundState {
	return rs.state
}

// StartGame 开始新一局；Playing 中调用会被忽略
func (rs *RoundSystem) StartGame() bool {
	if rs.state.Phase == game.PhasePlaying {
		return false
	}

	rs.clearSpheres()
	rs.state.Reset(rs.config.Spawn.BaseProbability, rs.config.Spawn.AttemptInterval)
	rs.shownScore = 0

	if !rs.audio.IsPlaying(game.CueMusic) {
		rs.audio.PlaySound(game.CueMusic)
	}

	game.HideAllText(rs.text)
	rs.text.ShowText(game.TextScore, "0")

	log.Printf("[RoundSystem] Round started")
	return true
}

// StartTutorial 进入说明画面；只能从菜单进入
func (rs *RoundSystem) StartTutorial() bool {
	if rs.state.Phase == game.PhasePlaying {
		return false
	}

	rs.state.Phase = game.PhaseTutorial
	game.HideAllText(rs.text)
	rs.text.ShowText(game.TextInstructions, InstructionsText)
	return true
}

// Update 推进一帧
// events 为本帧的全部按下事件（世界坐标），只在 Playing 状态下处理
func (rs *RoundSystem) Update(deltaTime float64, events []PointerEvent) error {
	switch rs.state.Phase {
	case game.PhasePlaying:
		return rs.updatePlaying(deltaTime, events)
	case game.PhaseGameOver:
		if rs.state.GameOverMenuCountdown > 0 {
			rs.state.GameOverMenuCountdown -= deltaTime
			if rs.state.GameOverMenuCountdown < 0 {
				rs.state.GameOverMenuCountdown = 0
			}
		}
	}
	return nil
}

func (rs *RoundSystem) updatePlaying(deltaTime float64, events []PointerEvent) error {
	rs.state.Elapsed += deltaTime

	rs.rotateSelectors(deltaTime)
	rs.updateWild(deltaTime)

	for _, id := range ecs.GetEntitiesWith1[*components.SphereComponent](rs.entityManager) {
		sphere, _ := ecs.GetComponent[*components.SphereComponent](rs.entityManager, id)
		sphere.Tick(deltaTime)
	}

	if _, err := rs.spawn.Update(deltaTime); err != nil {
		return err
	}

	rs.input.Update(events)
	if rs.state.Score != rs.shownScore {
		rs.shownScore = rs.state.Score
		rs.text.ShowText(game.TextScore, strconv.Itoa(rs.state.Score))
	}

	if rs.gameOver.Update(deltaTime) {
		return rs.enterGameOver()
	}
	return nil
}

// rotateSelectors 选中的选择器旋转；道具生效时全部旋转
func (rs *RoundSystem) rotateSelectors(deltaTime float64) {
	all := rs.state.PowerupActive()
	for i := 0; i < rs.state.ColorCount; i++ {
		if all || i == int(rs.state.SelectedColor) {
			rs.state.SelectorAngles[i] += rs.config.Rules.SelectorSpinSpeed * deltaTime
			if rs.state.SelectorAngles[i] >= 360 {
				rs.state.SelectorAngles[i] -= 360
			}
		}
	}
}

// updateWild 万能道具到期时，若核弹未生效则只保留当前颜色的指示器
func (rs *RoundSystem) updateWild(deltaTime float64) {
	if rs.state.WildCountdown <= 0 {
		return
	}
	rs.state.WildCountdown -= deltaTime
	if rs.state.WildCountdown > 0 {
		return
	}
	rs.state.WildCountdown = 0
	if !rs.state.NukeActive {
		rs.state.ResetIndicatorsToSelection()
	}
}

// enterGameOver 进入 GameOver：大爆炸、清场、比较最高分、延迟菜单
func (rs *RoundSystem) enterGameOver() error {
	rs.state.Phase = game.PhaseGameOver

	if _, err := entities.NewExplosionEntity(rs.entityManager, 0, 0, 0, config.GameOverExplosionRadius,
		config.BigExplosionColor, config.GameOverExplosionLife); err != nil {
		log.Printf("[RoundSystem] Warning: failed to create game over explosion: %v", err)
	}
	rs.audio.StopSound(game.CueWarning)
	rs.audio.PlaySound(game.CueExplosion)

	rs.clearSpheres()
	rs.state.SetAllIndicators(false)
	rs.state.NukeActive = false
	rs.state.WildCountdown = 0
	rs.state.TimeOverLine = 0

	score := rs.state.Score
	rs.state.FinalScore = score
	rs.state.NewHighScore = score > rs.highScores.HighScore()

	var saveErr error
	if rs.state.NewHighScore {
		if err := rs.highScores.SetHighScore(score); err != nil {
			saveErr = fmt.Errorf("%w %d: %w", ErrHighScoreSave, score, err)
		}
	}
	rs.state.HighScore = rs.highScores.HighScore()
	rs.state.GameOverMenuCountdown = rs.config.Rules.GameOverMenuDelay

	game.HideAllText(rs.text)
	rs.text.ShowText(game.TextGameOver, GameOverText)
	rs.text.ShowText(game.TextGameOverScore, "Your score: "+strconv.Itoa(score))
	rs.text.ShowText(game.TextGameOverHighScore, "High score: "+strconv.Itoa(rs.state.HighScore))

	log.Printf("[RoundSystem] Game over: score=%d high=%d elapsed=%.1fs", score, rs.state.HighScore, rs.state.Elapsed)
	return saveErr
}

// clearSpheres 立即移除所有球（爆炸等特效保留）
func (rs *RoundSystem) clearSpheres() {
	for _, id := range ecs.GetEntitiesWith1[*components.SphereComponent](rs.entityManager) {
		rs.entityManager.RemoveEntity(id)
	}
}
