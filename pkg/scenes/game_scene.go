package scenes

import (
	"errors"
	"log"

	"github.com/decker502/spheresmash/pkg/config"
	"github.com/decker502/spheresmash/pkg/ecs"
	"github.com/decker502/spheresmash/pkg/game"
	"github.com/decker502/spheresmash/pkg/systems"
	"github.com/decker502/spheresmash/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 菜单文字
const (
	LabelPlay         = "Play"
	LabelPlayAgain    = "Play Again"
	LabelInstructions = "Instructions"
)

type menuAction int

const (
	actionStartGame menuAction = iota
	actionTutorial
)

// menuItem 菜单按钮及其动作
type menuItem struct {
	button systems.MenuButton
	action menuAction
}

// GameSceneDeps 创建 GameScene 需要的协作者
type GameSceneDeps struct {
	Config     *config.GameConfig
	Random     utils.RandomSource
	Audio      game.AudioSink
	HighScores game.HighScoreStore
	// Resources 为 nil 时不创建渲染系统（无界面运行，例如测试）
	Resources *game.ResourceManager
}

// GameScene 唯一的游戏场景
//
// 持有 ECS 世界和全部系统，每帧：
//  1. 收集本帧的按下事件
//  2. Playing 时转换为世界坐标交给 RoundSystem；其他状态下作为菜单点击
//  3. 物理、生命周期
//  4. 清理标记删除的实体
type GameScene struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	audio         game.AudioSink
	text          *game.TextBoard
	viewport      utils.Viewport

	round    *systems.RoundSystem
	physics  *systems.PhysicsSystem
	lifetime *systems.LifetimeSystem
	render   *systems.RenderSystem

	pollInput func([]utils.PointerPress) []utils.PointerPress
	presses   []utils.PointerPress
	events    []systems.PointerEvent
}

// NewGameScene 创建游戏场景，初始状态为标题菜单
func NewGameScene(deps GameSceneDeps) (*GameScene, error) {
	if deps.Config == nil {
		return nil, errors.New("game scene: config is required")
	}

	em := ecs.NewEntityManager()
	board := game.NewTextBoard()
	viewport := utils.Viewport{
		Width:         config.GameWindowWidth,
		Height:        config.GameWindowHeight,
		PixelsPerUnit: config.PixelsPerUnit,
	}

	round, err := systems.NewRoundSystem(em, deps.Config, deps.Random, deps.Audio, deps.HighScores, board)
	if err != nil {
		return nil, err
	}

	scene := &GameScene{
		entityManager: em,
		config:        deps.Config,
		audio:         deps.Audio,
		text:          board,
		viewport:      viewport,
		round:         round,
		physics:       systems.NewPhysicsSystem(em, &deps.Config.Physics),
		lifetime:      systems.NewLifetimeSystem(em),
		pollInput:     utils.AppendJustPressed,
	}

	if deps.Resources != nil {
		scene.render, err = systems.NewRenderSystem(em, deps.Config, round.State(), board, viewport, deps.Resources)
		if err != nil {
			return nil, err
		}
	}

	log.Printf("[GameScene] Created (%d selectors)", deps.Config.ColorCount())
	return scene, nil
}

// Round 回合状态机
func (s *GameScene) Round() *systems.RoundSystem {
	return s.round
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) error {
	s.presses = s.pollInput(s.presses[:0])

	var err error
	if s.round.State().Phase == game.PhasePlaying {
		s.events = s.events[:0]
		for _, p := range s.presses {
			x, y := s.viewport.ScreenToWorld(float64(p.X), float64(p.Y))
			s.events = append(s.events, systems.PointerEvent{X: x, Y: y})
		}
		s.physics.Update(deltaTime)
		err = s.round.Update(deltaTime, s.events)
	} else {
		err = s.round.Update(deltaTime, nil)
		for _, p := range s.presses {
			if s.handleMenuPress(float64(p.X), float64(p.Y)) {
				break
			}
		}
	}

	s.lifetime.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()

	// 最高分写盘失败不影响继续游戏
	if errors.Is(err, systems.ErrHighScoreSave) {
		log.Printf("[GameScene] Warning: %v", err)
		return nil
	}
	return err
}

// menuItems 当前状态下可以点击的菜单按钮
func (s *GameScene) menuItems() []menuItem {
	state := s.round.State()
	if !state.MenuInteractive() {
		return nil
	}

	switch state.Phase {
	case game.PhaseFirstEntry:
		return []menuItem{
			{button: systems.MenuButton{Layout: config.PrimaryButton, Label: LabelPlay}, action: actionStartGame},
			{button: systems.MenuButton{Layout: config.SecondaryButton, Label: LabelInstructions}, action: actionTutorial},
		}
	case game.PhaseGameOver:
		return []menuItem{
			{button: systems.MenuButton{Layout: config.PrimaryButton, Label: LabelPlayAgain}, action: actionStartGame},
			{button: systems.MenuButton{Layout: config.SecondaryButton, Label: LabelInstructions}, action: actionTutorial},
		}
	case game.PhaseTutorial:
		return []menuItem{
			{button: systems.MenuButton{Layout: config.SecondaryButton, Label: LabelPlay}, action: actionStartGame},
		}
	}
	return nil
}

// handleMenuPress 屏幕坐标的点击落在按钮上时执行对应动作
func (s *GameScene) handleMenuPress(x, y float64) bool {
	for _, item := range s.menuItems() {
		l := item.button.Layout
		bx, by, bw, bh := s.viewport.RelativeRect(l.RelX, l.RelY, l.RelW, l.RelH)
		if !utils.PointInRect(x, y, bx, by, bw, bh) {
			continue
		}

		switch item.action {
		case actionStartGame:
			return s.round.StartGame()
		case actionTutorial:
			return s.round.StartTutorial()
		}
	}
	return false
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	if s.render == nil {
		return
	}

	items := s.menuItems()
	buttons := make([]systems.MenuButton, 0, len(items))
	px, py := utils.GetPointerPosition()
	for _, item := range items {
		b := item.button
		x, y, w, h := s.viewport.RelativeRect(b.Layout.RelX, b.Layout.RelY, b.Layout.RelW, b.Layout.RelH)
		b.Hovered = utils.PointInRect(float64(px), float64(py), x, y, w, h)
		buttons = append(buttons, b)
	}

	s.render.Draw(screen, buttons)
}

// Close 离开场景时停止所有循环音效
func (s *GameScene) Close() error {
	s.audio.StopSound(game.CueWarning)
	s.audio.StopSound(game.CueMusic)
	return nil
}
