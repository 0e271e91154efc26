package game

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 在临时 HOME 下创建 gdata Manager
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	manager, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("spheresmash_test_%s_%d", testName, time.Now().UnixNano()),
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

// TestHighScoreManagerNilGdata 降级模式：只在内存中保存
func TestHighScoreManagerNilGdata(t *testing.T) {
	hm, err := NewHighScoreManager(nil)
	if err != nil {
		t.Fatalf("NewHighScoreManager(nil) error: %v", err)
	}

	if hm.HighScore() != 0 {
		t.Errorf("Initial high score: got %d, want 0", hm.HighScore())
	}

	if err := hm.SetHighScore(42); err != nil {
		t.Fatalf("SetHighScore() error: %v", err)
	}
	if hm.HighScore() != 42 {
		t.Errorf("High score: got %d, want 42", hm.HighScore())
	}
}

// TestHighScoreOnlyIncreases 较低分数不覆盖最高分
func TestHighScoreOnlyIncreases(t *testing.T) {
	hm, _ := NewHighScoreManager(nil)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	hm.now = func() time.Time { return fixed }

	_ = hm.SetHighScore(30)
	_ = hm.SetHighScore(12)

	rec := hm.Record()
	if rec.Score != 30 {
		t.Errorf("Score: got %d, want 30", rec.Score)
	}
	if rec.Rounds != 2 {
		t.Errorf("Rounds: got %d, want 2", rec.Rounds)
	}
	if !rec.AchievedAt.Equal(fixed) {
		t.Errorf("AchievedAt: got %v, want %v", rec.AchievedAt, fixed)
	}
}

// TestHighScorePersistsAcrossManagers 写入后新实例可以读到
func TestHighScorePersistsAcrossManagers(t *testing.T) {
	manager := createTestGdataManager(t, "persist")

	hm1, err := NewHighScoreManager(manager)
	if err != nil {
		t.Fatalf("NewHighScoreManager() error: %v", err)
	}
	if err := hm1.SetHighScore(77); err != nil {
		t.Fatalf("SetHighScore() error: %v", err)
	}

	hm2, err := NewHighScoreManager(manager)
	if err != nil {
		t.Fatalf("NewHighScoreManager() on reload error: %v", err)
	}
	if hm2.HighScore() != 77 {
		t.Errorf("Reloaded high score: got %d, want 77", hm2.HighScore())
	}
	if hm2.Record().Rounds != 1 {
		t.Errorf("Reloaded rounds: got %d, want 1", hm2.Record().Rounds)
	}
}

// TestHighScoreCorruptedData 存档损坏时返回错误
func TestHighScoreCorruptedData(t *testing.T) {
	manager := createTestGdataManager(t, "corrupt")

	if err := manager.SaveObjectProp(highScoreObject, highScoreProperty, []byte("score: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	if _, err := NewHighScoreManager(manager); err == nil {
		t.Error("Expected error for corrupted high score data")
	}
}
