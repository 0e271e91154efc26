package systems

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/decker502/spheresmash/pkg/components"
	"github.com/decker502/spheresmash/pkg/config"
	"github.com/decker502/spheresmash/pkg/ecs"
	"github.com/decker502/spheresmash/pkg/game"
	"github.com/decker502/spheresmash/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 渲染参数（像素）
const (
	wallThicknessPx     = 12.0
	selectorSpokeCount  = 3
	selectorSpokeWidth  = 3.0
	indicatorRingWidth  = 4.0
	indicatorRingMargin = 8.0
	sphereOutlineWidth  = 2.0
	lineFlashRate       = 6.0 // 警戒线每秒闪烁次数
	buttonBorderWidth   = 2.0
	textMaxWidthRatio   = 0.7 // 居中文字的最大宽度（相对屏幕宽度）
)

// 文字锚点（相对屏幕比例）
var textAnchors = map[game.TextID][2]float64{
	game.TextTitle:             {0.55, 0.3},
	game.TextInstructions:      {0.55, 0.12},
	game.TextGameOver:          {0.55, 0.2},
	game.TextGameOverScore:     {0.55, 0.33},
	game.TextGameOverHighScore: {0.55, 0.41},
}

// MenuButton 菜单按钮：布局 + 文字
type MenuButton struct {
	Layout  config.MenuButtonLayout
	Label   string
	Hovered bool
}

// RenderSystem 绘制整个画面
//
// 绘制顺序（从底到顶）：
//
//	背景 → 场地/墙 → 警戒线 → 颜色选择器 → 球 → 爆炸 → 文字 → 菜单按钮
//
// 所有世界坐标经 Viewport 转换为屏幕坐标。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	state         *game.RoundState
	text          *game.TextBoard
	viewport      utils.Viewport

	titleFace *text.GoTextFace
	bodyFace  *text.GoTextFace
}

// NewRenderSystem 创建渲染系统并加载字体
func NewRenderSystem(
	em *ecs.EntityManager,
	cfg *config.GameConfig,
	state *game.RoundState,
	board *game.TextBoard,
	viewport utils.Viewport,
	rm *game.ResourceManager,
) (*RenderSystem, error) {
	titleFace, err := rm.Font(game.FontBold, config.TitleFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load title font: %w", err)
	}
	bodyFace, err := rm.Font(game.FontRegular, config.BodyFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load body font: %w", err)
	}

	return &RenderSystem{
		entityManager: em,
		config:        cfg,
		state:         state,
		text:          board,
		viewport:      viewport,
		titleFace:     titleFace,
		bodyFace:      bodyFace,
	}, nil
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image, buttons []MenuButton) {
	screen.Fill(config.BackgroundColor)

	s.drawField(screen)
	s.drawLine(screen)
	s.drawSelectors(screen)
	s.drawSpheres(screen)
	s.drawExplosions(screen)
	s.drawTexts(screen)
	s.drawButtons(screen, buttons)
}

// drawField 场地背景和左右墙
func (s *RenderSystem) drawField(screen *ebiten.Image) {
	p := s.config.Physics
	left, _ := s.viewport.WorldToScreen(p.WallMinX, 0)
	right, floor := s.viewport.WorldToScreen(p.WallMaxX, p.FloorY)

	vector.DrawFilledRect(screen, float32(left), 0, float32(right-left), float32(floor), config.PlayFieldColor, false)
	vector.DrawFilledRect(screen, float32(left-wallThicknessPx), 0, wallThicknessPx, float32(floor+wallThicknessPx), config.WallColor, false)
	vector.DrawFilledRect(screen, float32(right), 0, wallThicknessPx, float32(floor+wallThicknessPx), config.WallColor, false)
	vector.DrawFilledRect(screen, float32(left), float32(floor), float32(right-left), wallThicknessPx, config.WallColor, false)
}

// drawLine 警戒线，有球越线时闪烁
func (s *RenderSystem) drawLine(screen *ebiten.Image) {
	r := s.config.Rules
	p := s.config.Physics
	left, top := s.viewport.WorldToScreen(p.WallMinX, r.LineY+r.LineThickness/2)
	right, _ := s.viewport.WorldToScreen(p.WallMaxX, 0)
	thickness := math.Max(s.viewport.WorldLength(r.LineThickness), 1)

	vector.DrawFilledRect(screen, float32(left), float32(top), float32(right-left), float32(thickness), lineColor(s.state), false)
}

// lineColor 越线计时中按 lineFlashRate 在两种颜色间切换
func lineColor(state *game.RoundState) color.RGBA {
	if state.Phase != game.PhasePlaying || state.TimeOverLine <= 0 {
		return config.LineColor
	}
	if int(state.TimeOverLine*lineFlashRate*2)%2 == 0 {
		return config.LineWarnColor
	}
	return config.LineColor
}

// drawSelectors 颜色选择器、旋转的辐条和指示器光环
func (s *RenderSystem) drawSelectors(screen *ebiten.Image) {
	radius := s.viewport.WorldLength(s.config.Rules.SelectorRadius)

	for i, sel := range s.config.Selectors {
		cx, cy := s.viewport.WorldToScreen(sel.X, sel.Y)
		fill := config.KindColor(components.NormalKind(components.ColorIndex(i)))

		if i < len(s.state.Indicators) && s.state.Indicators[i] {
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(radius+indicatorRingMargin),
				indicatorRingWidth, config.IndicatorColor, true)
		}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), fill, true)

		angle := 0.0
		if i < len(s.state.SelectorAngles) {
			angle = s.state.SelectorAngles[i]
		}
		for k := 0; k < selectorSpokeCount; k++ {
			theta := (angle + float64(k)*360/selectorSpokeCount) * math.Pi / 180
			x1 := cx + math.Cos(theta)*radius*0.8
			y1 := cy - math.Sin(theta)*radius*0.8
			vector.StrokeLine(screen, float32(cx), float32(cy), float32(x1), float32(y1),
				selectorSpokeWidth, config.SelectorSpokeColor, true)
		}
	}
}

// drawSpheres 所有球；道具球带描边
func (s *RenderSystem) drawSpheres(screen *ebiten.Image) {
	radius := float32(s.viewport.WorldLength(s.config.Rules.SphereRadius))

	for _, id := range ecs.GetEntitiesWith2[*components.SphereComponent, *components.PositionComponent](s.entityManager) {
		sphere, _ := ecs.GetComponent[*components.SphereComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		x, y := s.viewport.WorldToScreen(pos.X, pos.Y)

		vector.DrawFilledCircle(screen, float32(x), float32(y), radius, config.KindColor(sphere.Kind), true)
		switch sphere.Kind.Powerup {
		case components.PowerupWild:
			vector.StrokeCircle(screen, float32(x), float32(y), radius, sphereOutlineWidth, config.IndicatorColor, true)
		case components.PowerupNuke:
			vector.StrokeCircle(screen, float32(x), float32(y), radius, sphereOutlineWidth, config.LineColor, true)
		}
	}
}

// drawExplosions 爆炸：半径按缓出曲线扩张，同时淡出
func (s *RenderSystem) drawExplosions(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith3[*components.ExplosionComponent, *components.LifetimeComponent, *components.PositionComponent](s.entityManager) {
		exp, _ := ecs.GetComponent[*components.ExplosionComponent](s.entityManager, id)
		life, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if life.IsExpired {
			continue
		}

		radius, clr := explosionStyle(exp, life)
		x, y := s.viewport.WorldToScreen(pos.X, pos.Y)
		r := s.viewport.WorldLength(radius)
		if r <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), clr, true)
	}
}

// explosionStyle 按生命周期进度计算半径（世界单位）和颜色
func explosionStyle(exp *components.ExplosionComponent, life *components.LifetimeComponent) (float64, color.RGBA) {
	t := life.Progress()
	radius := utils.Lerp(exp.StartRadius, exp.EndRadius, utils.EaseOutCubic(t))
	return radius, fade(exp.Color, 1-t)
}

// fade 按比例缩放预乘 alpha 颜色
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// drawTexts 绘制文字板上所有可见的文字
func (s *RenderSystem) drawTexts(screen *ebiten.Image) {
	for _, id := range s.text.VisibleIDs() {
		content, _ := s.text.Get(id)

		if id == game.TextScore {
			op := &text.DrawOptions{}
			op.GeoM.Translate(config.ScoreTextX, config.ScoreTextY)
			op.ColorScale.ScaleWithColor(config.TextColor)
			text.Draw(screen, content, s.bodyFace, op)
			continue
		}

		anchor, ok := textAnchors[id]
		if !ok {
			continue
		}
		face := s.bodyFace
		if id == game.TextTitle || id == game.TextGameOver {
			face = s.titleFace
		}
		maxWidth := textMaxWidthRatio * float64(s.viewport.Width)
		content = strings.Join(utils.WrapText(content, maxWidth, utils.FaceMeasure(face)), "\n")
		s.drawCenteredText(screen, content, anchor[0]*float64(s.viewport.Width), anchor[1]*float64(s.viewport.Height), face, config.TextColor)
	}
}

// drawCenteredText 水平居中绘制（支持多行）
func (s *RenderSystem) drawCenteredText(screen *ebiten.Image, str string, centerX, topY float64, face *text.GoTextFace, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX, topY)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.LineSpacing = face.Size * 1.4
	text.Draw(screen, str, face, op)
}

// drawButtons 菜单按钮：底色 + 边框 + 居中文字
func (s *RenderSystem) drawButtons(screen *ebiten.Image, buttons []MenuButton) {
	for _, b := range buttons {
		x, y, w, h := s.viewport.RelativeRect(b.Layout.RelX, b.Layout.RelY, b.Layout.RelW, b.Layout.RelH)
		fill := config.ButtonColor
		if b.Hovered {
			fill = config.ButtonHoverColor
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fill, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), buttonBorderWidth, config.ButtonTextColor, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+w/2, y+h/2)
		op.ColorScale.ScaleWithColor(config.ButtonTextColor)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, b.Label, s.bodyFace, op)
	}
}
