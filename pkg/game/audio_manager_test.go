package game

import "testing"

// TestAudioManagerMuted 没有音频上下文时全部为空操作
func TestAudioManagerMuted(t *testing.T) {
	am, err := NewAudioManager(nil, NewSettingsManager(nil), 1)
	if err != nil {
		t.Fatalf("NewAudioManager(nil) error: %v", err)
	}

	for _, cue := range AllCues {
		am.PlaySound(cue)
		if am.IsPlaying(cue) {
			t.Errorf("%s should not be playing without an audio context", cue)
		}
		am.StopSound(cue)
	}
	am.ApplySettings()
}

// TestAudioManagerImplementsSink 编译期检查
func TestAudioManagerImplementsSink(t *testing.T) {
	var _ AudioSink = (*AudioManager)(nil)
}
