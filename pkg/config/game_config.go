package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/decker502/spheresmash/pkg/components"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置校验失败时返回（用 errors.Is 判断）
var ErrInvalidConfig = errors.New("invalid game config")

// SpawnConfig 生成规则
type SpawnConfig struct {
	AttemptInterval    float64  `yaml:"attemptInterval"`    // 尝试生成的间隔（秒）
	BaseProbability    float64  `yaml:"baseProbability"`    // 每次尝试成功的初始概率
	ProbabilityGrowth  float64  `yaml:"probabilityGrowth"`  // 概率每秒增长量
	ProbabilityCap     float64  `yaml:"probabilityCap"`     // 概率上限，0 表示不设上限
	PowerupProbability float64  `yaml:"powerupProbability"` // 生成道具球而不是普通球的概率
	BandMinX           float64  `yaml:"bandMinX"`           // 生成X范围下限
	BandMaxX           float64  `yaml:"bandMaxX"`           // 生成X范围上限
	Height             float64  `yaml:"height"`             // 生成高度
	ImpulseRange       float64  `yaml:"impulseRange"`       // 水平冲量范围 [-r, r]
	Colors             []string `yaml:"colors"`             // 可生成的普通颜色
	Powerups           []string `yaml:"powerups"`           // 可生成的道具
}

// RulesConfig 规则与判定参数
type RulesConfig struct {
	GameOverTime      float64 `yaml:"gameOverTime"`      // 越线持续多久判负（秒）
	TouchFudgeFactor  float64 `yaml:"touchFudgeFactor"`  // 点击半径放大系数（>=1）
	WildBonus         float64 `yaml:"wildBonus"`         // 每个万能道具增加的时长（秒）
	SafeTime          float64 `yaml:"safeTime"`          // 新球不参与越线判定的时间（秒）
	SphereRadius      float64 `yaml:"sphereRadius"`      // 球半径
	LineY             float64 `yaml:"lineY"`             // 警戒线中心的Y坐标
	LineThickness     float64 `yaml:"lineThickness"`     // 警戒线厚度
	SelectorRadius    float64 `yaml:"selectorRadius"`    // 颜色选择器点击半径
	GameOverMenuDelay float64 `yaml:"gameOverMenuDelay"` // 结束后菜单可交互前的延迟（秒）
	SelectorSpinSpeed float64 `yaml:"selectorSpinSpeed"` // 选择器旋转速度（度/秒）
}

// PhysicsConfig 物理参数（外部协作者使用，不影响核心规则）
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`      // 重力加速度（负数向下）
	ImpulseScale float64 `yaml:"impulseScale"` // 冲量转速度的系数（固定物理步长）
	Restitution  float64 `yaml:"restitution"`  // 反弹系数
	WallMinX     float64 `yaml:"wallMinX"`     // 左墙内侧X
	WallMaxX     float64 `yaml:"wallMaxX"`     // 右墙内侧X
	FloorY       float64 `yaml:"floorY"`       // 地面Y
	SphereMass   float64 `yaml:"sphereMass"`   // 球质量
}

// SelectorConfig 颜色选择器在世界坐标中的位置
type SelectorConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// GameConfig 全部可调参数，加载后只读
type GameConfig struct {
	Spawn     SpawnConfig      `yaml:"spawn"`
	Rules     RulesConfig      `yaml:"rules"`
	Physics   PhysicsConfig    `yaml:"physics"`
	Selectors []SelectorConfig `yaml:"selectors"`
}

// DefaultGameConfig 返回原版调校的默认参数
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Spawn: SpawnConfig{
			AttemptInterval:    0.05,
			BaseProbability:    0.2,
			ProbabilityGrowth:  0.005,
			ProbabilityCap:     0,
			PowerupProbability: 0.08,
			BandMinX:           -5.9,
			BandMaxX:           5.9,
			Height:             6.0,
			ImpulseRange:       300.0,
			Colors:             []string{"blue", "green", "red", "yellow"},
			Powerups:           []string{"wild", "nuke"},
		},
		Rules: RulesConfig{
			GameOverTime:      3.0,
			TouchFudgeFactor:  1.25,
			WildBonus:         5.0,
			SafeTime:          2.0,
			SphereRadius:      0.625,
			LineY:             3.0,
			LineThickness:     0.1,
			SelectorRadius:    0.75,
			GameOverMenuDelay: 2.0,
			SelectorSpinSpeed: 15.0,
		},
		Physics: PhysicsConfig{
			Gravity:      -9.81,
			ImpulseScale: 0.02,
			Restitution:  0.2,
			WallMinX:     -6.55,
			WallMaxX:     6.55,
			FloorY:       -7.5,
			SphereMass:   1.0,
		},
		Selectors: []SelectorConfig{
			{X: -9.0, Y: 3.0},
			{X: -9.0, Y: 1.0},
			{X: -9.0, Y: -1.0},
			{X: -9.0, Y: -3.0},
		},
	}
}

// LoadGameConfig 从 YAML 文件加载配置
// 文件中缺省的字段沿用默认值
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 数据并校验
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ColorIndices 返回可生成的普通颜色序号
func (c *GameConfig) ColorIndices() ([]components.ColorIndex, error) {
	result := make([]components.ColorIndex, 0, len(c.Spawn.Colors))
	for _, name := range c.Spawn.Colors {
		idx, err := ParseColor(name)
		if err != nil {
			return nil, err
		}
		result = append(result, idx)
	}
	return result, nil
}

// PowerupTypes 返回可生成的道具类型
func (c *GameConfig) PowerupTypes() ([]components.PowerupType, error) {
	result := make([]components.PowerupType, 0, len(c.Spawn.Powerups))
	for _, name := range c.Spawn.Powerups {
		p, err := ParsePowerup(name)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

// ColorCount 颜色选择器数量
func (c *GameConfig) ColorCount() int {
	return len(c.Selectors)
}

// HitRadius 点击判定半径
func (c *GameConfig) HitRadius() float64 {
	return c.Rules.SphereRadius * c.Rules.TouchFudgeFactor
}

// ParseColor 颜色名转序号
func ParseColor(name string) (components.ColorIndex, error) {
	for i := components.ColorIndex(0); i < components.MaxColors; i++ {
		if i.String() == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown color %q", ErrInvalidConfig, name)
}

// ParsePowerup 道具名转类型
func ParsePowerup(name string) (components.PowerupType, error) {
	switch name {
	case components.PowerupWild.String():
		return components.PowerupWild, nil
	case components.PowerupNuke.String():
		return components.PowerupNuke, nil
	}
	return components.PowerupNone, fmt.Errorf("%w: unknown powerup %q", ErrInvalidConfig, name)
}

// Validate 验证配置的有效性
// 任何错误都会阻止进入游戏状态
func (c *GameConfig) Validate() error {
	s := c.Spawn
	if s.AttemptInterval <= 0 {
		return fmt.Errorf("%w: spawn.attemptInterval must be > 0, got %v", ErrInvalidConfig, s.AttemptInterval)
	}
	if s.BaseProbability < 0 || s.BaseProbability > 1 {
		return fmt.Errorf("%w: spawn.baseProbability must be in [0,1], got %v", ErrInvalidConfig, s.BaseProbability)
	}
	if s.ProbabilityGrowth < 0 {
		return fmt.Errorf("%w: spawn.probabilityGrowth must be >= 0, got %v", ErrInvalidConfig, s.ProbabilityGrowth)
	}
	if s.ProbabilityCap < 0 {
		return fmt.Errorf("%w: spawn.probabilityCap must be >= 0, got %v", ErrInvalidConfig, s.ProbabilityCap)
	}
	if s.ProbabilityCap > 0 && s.ProbabilityCap < s.BaseProbability {
		return fmt.Errorf("%w: spawn.probabilityCap %v is below baseProbability %v", ErrInvalidConfig, s.ProbabilityCap, s.BaseProbability)
	}
	if s.PowerupProbability < 0 || s.PowerupProbability > 1 {
		return fmt.Errorf("%w: spawn.powerupProbability must be in [0,1], got %v", ErrInvalidConfig, s.PowerupProbability)
	}
	if s.BandMaxX < s.BandMinX {
		return fmt.Errorf("%w: spawn band is empty: [%v, %v]", ErrInvalidConfig, s.BandMinX, s.BandMaxX)
	}
	if s.ImpulseRange < 0 {
		return fmt.Errorf("%w: spawn.impulseRange must be >= 0, got %v", ErrInvalidConfig, s.ImpulseRange)
	}
	if len(s.Colors) == 0 {
		return fmt.Errorf("%w: spawn.colors cannot be empty", ErrInvalidConfig)
	}
	if len(s.Powerups) == 0 && s.PowerupProbability > 0 {
		return fmt.Errorf("%w: spawn.powerups cannot be empty when powerupProbability > 0", ErrInvalidConfig)
	}

	colors, err := c.ColorIndices()
	if err != nil {
		return err
	}
	if _, err := c.PowerupTypes(); err != nil {
		return err
	}

	if len(c.Selectors) == 0 || len(c.Selectors) > components.MaxColors {
		return fmt.Errorf("%w: selectors must have 1..%d entries, got %d", ErrInvalidConfig, components.MaxColors, len(c.Selectors))
	}
	for _, color := range colors {
		if int(color) >= len(c.Selectors) {
			return fmt.Errorf("%w: color %s has no selector", ErrInvalidConfig, color)
		}
	}

	r := c.Rules
	if r.GameOverTime <= 0 {
		return fmt.Errorf("%w: rules.gameOverTime must be > 0, got %v", ErrInvalidConfig, r.GameOverTime)
	}
	if r.TouchFudgeFactor < 1 {
		return fmt.Errorf("%w: rules.touchFudgeFactor must be >= 1, got %v", ErrInvalidConfig, r.TouchFudgeFactor)
	}
	if r.WildBonus < 0 {
		return fmt.Errorf("%w: rules.wildBonus must be >= 0, got %v", ErrInvalidConfig, r.WildBonus)
	}
	if r.SafeTime < 0 {
		return fmt.Errorf("%w: rules.safeTime must be >= 0, got %v", ErrInvalidConfig, r.SafeTime)
	}
	if r.SphereRadius <= 0 {
		return fmt.Errorf("%w: rules.sphereRadius must be > 0, got %v", ErrInvalidConfig, r.SphereRadius)
	}
	if r.LineThickness < 0 {
		return fmt.Errorf("%w: rules.lineThickness must be >= 0, got %v", ErrInvalidConfig, r.LineThickness)
	}
	if r.SelectorRadius <= 0 {
		return fmt.Errorf("%w: rules.selectorRadius must be > 0, got %v", ErrInvalidConfig, r.SelectorRadius)
	}
	if r.GameOverMenuDelay < 0 {
		return fmt.Errorf("%w: rules.gameOverMenuDelay must be >= 0, got %v", ErrInvalidConfig, r.GameOverMenuDelay)
	}

	p := c.Physics
	if p.WallMaxX <= p.WallMinX {
		return fmt.Errorf("%w: physics walls are inverted: [%v, %v]", ErrInvalidConfig, p.WallMinX, p.WallMaxX)
	}
	if p.SphereMass <= 0 {
		return fmt.Errorf("%w: physics.sphereMass must be > 0, got %v", ErrInvalidConfig, p.SphereMass)
	}

	return nil
}
