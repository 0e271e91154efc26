package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AudioSettings 音频设置
type AudioSettings struct {
	MusicVolume  float64 `yaml:"musicVolume"`  // 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"`
	SoundEnabled bool    `yaml:"soundEnabled"`
}

// Settings 玩家偏好（与最高分分开保存）
type Settings struct {
	Audio      AudioSettings `yaml:"audio"`
	Fullscreen bool          `yaml:"fullscreen"` // 上次退出时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() Settings {
	return Settings{
		Audio: AudioSettings{
			MusicVolume:  0.5,
			SoundVolume:  0.8,
			MusicEnabled: true,
			SoundEnabled: true,
		},
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "prefs"
)

// SettingsManager 设置管理器
// gdataManager 为 nil 时只在内存中保存，Save 不报错
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     Settings
}

// NewSettingsManager 创建设置管理器
// 读取失败不是致命错误：记录日志后使用默认值
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 读取设置，缺失字段保留默认值
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()

	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	loaded.Audio.MusicVolume = clampVolume(loaded.Audio.MusicVolume)
	loaded.Audio.SoundVolume = clampVolume(loaded.Audio.SoundVolume)
	sm.settings = loaded
	return nil
}

// Save 写入 gdata
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Settings 返回当前设置副本
func (sm *SettingsManager) Settings() Settings {
	return sm.settings
}

// SetMusicVolume 仅修改内存，需调用 Save 持久化
func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.Audio.MusicVolume = clampVolume(volume)
}

func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.Audio.SoundVolume = clampVolume(volume)
}

// ToggleMute 同时切换音乐和音效，返回切换后是否静音
func (sm *SettingsManager) ToggleMute() bool {
	muted := sm.settings.Audio.MusicEnabled || sm.settings.Audio.SoundEnabled
	sm.settings.Audio.MusicEnabled = !muted
	sm.settings.Audio.SoundEnabled = !muted
	return muted
}

func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
