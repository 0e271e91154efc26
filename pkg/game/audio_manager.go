package game

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器，实现 AudioSink
//
// 职责：
//   - 启动时合成全部音效并创建播放器
//   - 按 SettingsManager 的音量和开关播放
//   - CueMusic 循环播放，重复调用 PlaySound 不会从头开始
//
// context 为 nil 时所有调用都是空操作（测试或无音频设备时）。
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager
	players         map[SoundCue]*audio.Player
}

// NewAudioManager 创建音频管理器并预先合成全部音效
//
// 参数：
//   - ctx: ebiten 音频上下文，采样率需为 SynthSampleRate，可为 nil
//   - sm: 设置管理器，可为 nil（使用默认设置）
//   - seed: 噪声音效的随机种子
func NewAudioManager(ctx *audio.Context, sm *SettingsManager, seed int64) (*AudioManager, error) {
	am := &AudioManager{
		context:         ctx,
		settingsManager: sm,
		players:         make(map[SoundCue]*audio.Player),
	}
	if ctx == nil {
		log.Printf("[AudioManager] No audio context, running muted")
		return am, nil
	}
	if ctx.SampleRate() != SynthSampleRate {
		return nil, fmt.Errorf("audio context sample rate %d, want %d", ctx.SampleRate(), SynthSampleRate)
	}

	for _, cue := range AllCues {
		pcm, err := SynthesizeCue(cue, seed)
		if err != nil {
			return nil, err
		}

		var player *audio.Player
		if cue == CueMusic {
			loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
			player, err = ctx.NewPlayer(loop)
			if err != nil {
				return nil, fmt.Errorf("create music player: %w", err)
			}
		} else {
			player = ctx.NewPlayerFromBytes(pcm)
		}
		am.players[cue] = player
	}

	log.Printf("[AudioManager] Synthesized %d sound cues", len(am.players))
	return am, nil
}

// PlaySound 播放音效
func (am *AudioManager) PlaySound(cue SoundCue) {
	player, ok := am.players[cue]
	if !ok {
		return
	}

	settings := am.settings()
	if cue == CueMusic {
		if !settings.MusicEnabled || player.IsPlaying() {
			return
		}
		player.SetVolume(settings.MusicVolume)
		player.Play()
		return
	}

	if !settings.SoundEnabled {
		return
	}
	player.SetVolume(settings.SoundVolume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: failed to rewind %s: %v", cue, err)
	}
	player.Play()
}

// StopSound 停止音效
func (am *AudioManager) StopSound(cue SoundCue) {
	player, ok := am.players[cue]
	if !ok {
		return
	}
	player.Pause()
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: failed to rewind %s: %v", cue, err)
	}
}

// IsPlaying 音效是否正在播放
func (am *AudioManager) IsPlaying(cue SoundCue) bool {
	player, ok := am.players[cue]
	return ok && player.IsPlaying()
}

// ApplySettings 设置变化后同步音乐音量与开关
func (am *AudioManager) ApplySettings() {
	player, ok := am.players[CueMusic]
	if !ok {
		return
	}
	settings := am.settings()
	if !settings.MusicEnabled {
		player.Pause()
		return
	}
	player.SetVolume(settings.MusicVolume)
}

func (am *AudioManager) settings() AudioSettings {
	if am.settingsManager == nil {
		return DefaultSettings().Audio
	}
	return am.settingsManager.Settings().Audio
}
