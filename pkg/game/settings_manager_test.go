package game

import (
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Audio.MusicVolume != 0.5 {
		t.Errorf("MusicVolume: got %v, want 0.5", s.Audio.MusicVolume)
	}
	if s.Audio.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", s.Audio.SoundVolume)
	}
	if !s.Audio.MusicEnabled || !s.Audio.SoundEnabled {
		t.Error("Audio should be enabled by default")
	}
	if s.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestSettingsManagerNilGdata 降级模式
func TestSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetMusicVolume(0.3)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if got := sm.Settings().Audio.MusicVolume; got != 0.3 {
		t.Errorf("MusicVolume: got %v, want 0.3", got)
	}
}

func TestClampVolume(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{3, 1},
	}

	for _, tt := range tests {
		if got := clampVolume(tt.in); got != tt.want {
			t.Errorf("clampVolume(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToggleMute(t *testing.T) {
	sm := NewSettingsManager(nil)

	if muted := sm.ToggleMute(); !muted {
		t.Error("First toggle should mute")
	}
	if a := sm.Settings().Audio; a.MusicEnabled || a.SoundEnabled {
		t.Errorf("Audio should be disabled after mute: %+v", a)
	}

	if muted := sm.ToggleMute(); muted {
		t.Error("Second toggle should unmute")
	}
	if a := sm.Settings().Audio; !a.MusicEnabled || !a.SoundEnabled {
		t.Errorf("Audio should be enabled after unmute: %+v", a)
	}
}

// TestSettingsPersistence 保存后重新加载
func TestSettingsPersistence(t *testing.T) {
	manager := createTestGdataManager(t, "settings")

	sm := NewSettingsManager(manager)
	sm.SetSoundVolume(0.25)
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewSettingsManager(manager)
	s := reloaded.Settings()
	if s.Audio.SoundVolume != 0.25 {
		t.Errorf("SoundVolume: got %v, want 0.25", s.Audio.SoundVolume)
	}
	if !s.Fullscreen {
		t.Error("Fullscreen should persist")
	}
	if s.Audio.MusicVolume != 0.5 {
		t.Errorf("MusicVolume should keep default: got %v", s.Audio.MusicVolume)
	}
}

// TestSettingsPartialYAML 缺失字段使用默认值，越界音量被限制
func TestSettingsPartialYAML(t *testing.T) {
	manager := createTestGdataManager(t, "partial")

	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("audio:\n  soundVolume: 4\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	s := NewSettingsManager(manager).Settings()
	if s.Audio.SoundVolume != 1 {
		t.Errorf("SoundVolume: got %v, want 1", s.Audio.SoundVolume)
	}
	if !s.Audio.MusicEnabled {
		t.Error("MusicEnabled should keep default true")
	}
}

// TestSettingsCorruptedFallsBack 损坏数据回退到默认
func TestSettingsCorruptedFallsBack(t *testing.T) {
	manager := createTestGdataManager(t, "corrupt_settings")

	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("audio: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	if s := NewSettingsManager(manager).Settings(); s != DefaultSettings() {
		t.Errorf("Settings: got %+v, want defaults", s)
	}
}
