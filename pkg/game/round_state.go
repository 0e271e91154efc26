package game

import (
	"fmt"

	"github.com/decker502/spheresmash/pkg/components"
)

// Phase 顶层游戏状态
type Phase int

const (
	// PhaseFirstEntry 启动后的标题/菜单
	PhaseFirstEntry Phase = iota
	// PhasePlaying 游戏进行中
	PhasePlaying
	// PhaseGameOver 游戏结束画面
	PhaseGameOver
	// PhaseTutorial 说明画面
	PhaseTutorial
)

func (p Phase) String() string {
	switch p {
	case PhaseFirstEntry:
		return "FirstEntry"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	case PhaseTutorial:
		return "Tutorial"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// RoundState 一局游戏的全部可变状态
//
// 由 RoundSystem 独占持有；其他系统通过构造参数拿到同一个指针。
// 不变量：
//   - Score 只增不减
//   - SelectedColor ∈ [0, ColorCount)
//   - WildCountdown、TimeOverLine 非负
//   - 进入 Playing 时通过 Reset 重置
type RoundState struct {
	Phase Phase

	ColorCount    int                  // 颜色选择器数量
	SelectedColor components.ColorIndex // 当前选择的颜色
	Score         int

	SpawnProbability      float64 // 当前生成概率
	SpawnAttemptCountdown float64 // 距下一次生成尝试的时间

	WildCountdown float64 // >0 表示万能道具生效中
	NukeActive    bool    // 核弹道具是否待触发

	TimeOverLine float64 // 连续越线时间

	GameOverMenuCountdown float64 // 结束画面菜单可交互前的倒计时

	// 颜色指示器（选择器旁的火焰），道具生效时全部点亮
	Indicators [components.MaxColors]bool
	// 选择器旋转角度（度），纯视觉
	SelectorAngles [components.MaxColors]float64

	Elapsed      float64 // 本局进行时间
	FinalScore   int     // 进入 GameOver 时的分数快照
	HighScore    int     // 进入 GameOver 时的最高分快照
	NewHighScore bool    // 本局是否刷新了最高分
}

// NewRoundState 创建初始状态（FirstEntry）
func NewRoundState(colorCount int) *RoundState {
	return &RoundState{
		Phase:      PhaseFirstEntry,
		ColorCount: colorCount,
	}
}

// Reset 开始新一局：分数归零、概率回到初始值、所有计时器清零、选择颜色0
func (rs *RoundState) Reset(baseProbability, attemptInterval float64) {
	rs.Phase = PhasePlaying
	rs.Score = 0
	rs.SelectedColor = 0
	rs.SpawnProbability = baseProbability
	rs.SpawnAttemptCountdown = attemptInterval
	rs.WildCountdown = 0
	rs.NukeActive = false
	rs.TimeOverLine = 0
	rs.GameOverMenuCountdown = 0
	rs.Elapsed = 0
	rs.FinalScore = 0
	rs.NewHighScore = false
	rs.SetAllIndicators(false)
	rs.Indicators[0] = true
}

// AddScore 加分，负数被忽略
func (rs *RoundState) AddScore(points int) {
	if points > 0 {
		rs.Score += points
	}
}

// WildActive 万能道具是否生效
func (rs *RoundState) WildActive() bool {
	return rs.WildCountdown > 0
}

// PowerupActive 是否有任意道具生效
func (rs *RoundState) PowerupActive() bool {
	return rs.NukeActive || rs.WildActive()
}

// SetAllIndicators 点亮或熄灭全部指示器
func (rs *RoundState) SetAllIndicators(on bool) {
	for i := range rs.Indicators {
		rs.Indicators[i] = on && i < rs.ColorCount
	}
}

// ResetIndicatorsToSelection 只保留当前颜色的指示器
func (rs *RoundState) ResetIndicatorsToSelection() {
	for i := range rs.Indicators {
		rs.Indicators[i] = i == int(rs.SelectedColor)
	}
}

// SelectColor 切换当前颜色，越界时返回 false
func (rs *RoundState) SelectColor(color components.ColorIndex) bool {
	if color < 0 || int(color) >= rs.ColorCount {
		return false
	}
	rs.Indicators[rs.SelectedColor] = false
	rs.SelectedColor = color
	rs.Indicators[color] = true
	return true
}

// MenuInteractive 结束画面的菜单是否可以点击
func (rs *RoundState) MenuInteractive() bool {
	switch rs.Phase {
	case PhaseFirstEntry, PhaseTutorial:
		return true
	case PhaseGameOver:
		return rs.GameOverMenuCountdown <= 0
	default:
		return false
	}
}
