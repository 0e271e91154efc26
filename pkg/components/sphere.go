package components

import "fmt"

// ColorIndex 普通球的颜色序号，同时也是颜色选择器的序号
type ColorIndex int

const (
	ColorBlue ColorIndex = iota
	ColorGreen
	ColorRed
	ColorYellow
)

// MaxColors 颜色选择器的最大数量（左侧面板上的按钮数）
const MaxColors = 4

// String 返回颜色名称
func (c ColorIndex) String() string {
	switch c {
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}

// PowerupType 道具球类型
type PowerupType int

const (
	// PowerupNone 表示普通颜色球
	PowerupNone PowerupType = iota
	// PowerupWild 万能：一段时间内任意颜色都可以得分
	PowerupWild
	// PowerupNuke 核弹：下一次点击普通球时消灭同色所有球
	PowerupNuke
)

// String 返回道具名称
func (p PowerupType) String() string {
	switch p {
	case PowerupNone:
		return "none"
	case PowerupWild:
		return "wild"
	case PowerupNuke:
		return "nuke"
	default:
		return fmt.Sprintf("powerup(%d)", int(p))
	}
}

// SphereKind 球的种类：Normal(color) 或 Powerup(Wild|Nuke)
// 零值是蓝色普通球
type SphereKind struct {
	Color   ColorIndex  // 仅当 Powerup == PowerupNone 时有意义
	Powerup PowerupType // 非 PowerupNone 时为道具球
}

// NormalKind 构造普通颜色球
func NormalKind(color ColorIndex) SphereKind {
	return SphereKind{Color: color, Powerup: PowerupNone}
}

// PowerupKind 构造道具球
func PowerupKind(p PowerupType) SphereKind {
	return SphereKind{Powerup: p}
}

// IsPowerup 是否为道具球
func (k SphereKind) IsPowerup() bool {
	return k.Powerup != PowerupNone
}

// Matches 两个普通球是否同色；道具球永远不匹配
func (k SphereKind) Matches(color ColorIndex) bool {
	return !k.IsPowerup() && k.Color == color
}

func (k SphereKind) String() string {
	if k.IsPowerup() {
		return k.Powerup.String()
	}
	return k.Color.String()
}

// SphereComponent 标记实体为下落的球
//
// SafeCountdown 是生成后的保护倒计时：倒计时归零之前，
// 该球不参与越线判定。倒计时只减不增。
type SphereComponent struct {
	Kind          SphereKind
	SafeCountdown float64 // 剩余保护时间（秒）
}

// NewSphereComponent 创建带保护倒计时的球组件
func NewSphereComponent(kind SphereKind, safeTime float64) *SphereComponent {
	if safeTime < 0 {
		safeTime = 0
	}
	return &SphereComponent{Kind: kind, SafeCountdown: safeTime}
}

// Tick 推进保护倒计时，最小为 0
func (s *SphereComponent) Tick(deltaTime float64) {
	if s.SafeCountdown <= 0 {
		return
	}
	s.SafeCountdown -= deltaTime
	if s.SafeCountdown < 0 {
		s.SafeCountdown = 0
	}
}

// IsSafe 保护期内返回 true
func (s *SphereComponent) IsSafe() bool {
	return s.SafeCountdown > 0
}
