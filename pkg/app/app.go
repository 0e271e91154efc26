// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/spheresmash/pkg/config"
	"github.com/decker502/spheresmash/pkg/embedded"
	"github.com/decker502/spheresmash/pkg/game"
	"github.com/decker502/spheresmash/pkg/scenes"
	"github.com/decker502/spheresmash/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "spheresmash"

// EmbeddedConfigPath 嵌入的默认配置
const EmbeddedConfigPath = "data/config.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// ConfigPath 外部配置文件路径，为空时使用嵌入的配置
	ConfigPath string
	// Fullscreen 以全屏启动（会写入设置）
	Fullscreen bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	// 存储不可用时降级为内存模式
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage dir: %v", err)
	}
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, progress will not be saved: %v", err)
		gdataManager = nil
	}

	settingsManager := game.NewSettingsManager(gdataManager)
	if cfg.Fullscreen {
		settingsManager.SetFullscreen(true)
	}
	ebiten.SetFullscreen(settingsManager.Settings().Fullscreen)

	highScores, err := game.NewHighScoreManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: %v (high score starts from 0)", err)
		highScores, _ = game.NewHighScoreManager(nil)
	}

	rng := utils.NewPRNG(cfg.Seed)
	log.Printf("[App] Random seed: %d", rng.Seed())

	audioContext := audio.NewContext(game.SynthSampleRate)
	audioManager, err := game.NewAudioManager(audioContext, settingsManager, rng.Seed())
	if err != nil {
		return nil, fmt.Errorf("音频初始化失败: %w", err)
	}

	resourceManager, err := game.NewResourceManager()
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	scene, err := scenes.NewGameScene(scenes.GameSceneDeps{
		Config:     gameConfig,
		Random:     rng,
		Audio:      audioManager,
		HighScores: highScores,
		Resources:  resourceManager,
	})
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		audioManager:    audioManager,
		verbose:         cfg.Verbose,
	}, nil
}

// loadGameConfig 按优先级加载配置：外部文件 → 嵌入文件 → 内置默认值
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		log.Printf("[Config] Loading %s", path)
		return config.LoadGameConfig(path)
	}

	data, err := embedded.ReadFile(EmbeddedConfigPath)
	if errors.Is(err, embedded.ErrNotInitialized) {
		log.Printf("[Config] No embedded resources, using defaults")
		cfg := config.DefaultGameConfig()
		return cfg, cfg.Validate()
	}
	if err != nil {
		return nil, err
	}
	return config.ParseGameConfig(data)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if !utils.IsMobile() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			log.Printf("[App] Escape pressed, quitting")
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
			a.toggleFullscreen()
		}
	}

	// M 静音切换
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		muted := a.settingsManager.ToggleMute()
		a.audioManager.ApplySettings()
		a.saveSettings()
		log.Printf("[App] Muted: %v", muted)
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	return a.sceneManager.Update(deltaTime)
}

// toggleFullscreen F11 切换全屏并记住选择
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settingsManager.SetFullscreen(false)
	} else {
		ebiten.SetFullscreen(true)
		a.settingsManager.SetFullscreen(true)
	}
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 退出前关闭场景并保存设置
func (a *App) Close() error {
	err := a.sceneManager.Close()
	a.saveSettings()
	return err
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
