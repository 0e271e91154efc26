package game

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// HighScoreRecord 持久化的最高分记录
type HighScoreRecord struct {
	Score      int       `yaml:"score"`      // 最高分
	AchievedAt time.Time `yaml:"achievedAt"` // 达成时间
	Rounds     int       `yaml:"rounds"`     // 累计提交次数
}

// 存储路径常量
const (
	highScoreObject   = "highscore"
	highScoreProperty = "best"
)

// HighScoreManager 最高分管理器
//
// 职责：
//   - 启动时从 gdata 读取最高分
//   - 每局结束时比较并写回
//
// gdataManager 为 nil 时进入降级模式：最高分只保存在内存中。
type HighScoreManager struct {
	gdataManager *gdata.Manager
	record       HighScoreRecord
	now          func() time.Time
}

// NewHighScoreManager 创建最高分管理器并加载已有记录
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
//
// 返回：
//   - *HighScoreManager: 管理器实例
//   - error: 存档存在但无法解析时返回错误
func NewHighScoreManager(gdataManager *gdata.Manager) (*HighScoreManager, error) {
	hm := &HighScoreManager{
		gdataManager: gdataManager,
		now:          time.Now,
	}

	if err := hm.Load(); err != nil {
		return nil, err
	}

	return hm, nil
}

// Load 从 gdata 加载最高分记录
func (hm *HighScoreManager) Load() error {
	if hm.gdataManager == nil {
		return nil
	}

	if !hm.gdataManager.ObjectPropExists(highScoreObject, highScoreProperty) {
		return nil
	}

	data, err := hm.gdataManager.LoadObjectProp(highScoreObject, highScoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load high score: %w", err)
	}

	var record HighScoreRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to unmarshal high score: %w", err)
	}
	if record.Score < 0 {
		record.Score = 0
	}

	hm.record = record
	log.Printf("[HighScoreManager] Loaded high score %d", record.Score)
	return nil
}

// HighScore 当前最高分
func (hm *HighScoreManager) HighScore() int {
	return hm.record.Score
}

// Record 返回记录副本
func (hm *HighScoreManager) Record() HighScoreRecord {
	return hm.record
}

// SetHighScore 写入新的最高分
// 只有大于当前记录时才更新；无论是否更新，局数都会累加
func (hm *HighScoreManager) SetHighScore(score int) error {
	hm.record.Rounds++
	if score > hm.record.Score {
		hm.record.Score = score
		hm.record.AchievedAt = hm.now()
		log.Printf("[HighScoreManager] New high score: %d", score)
	}
	return hm.save()
}

// save 序列化并写入 gdata
func (hm *HighScoreManager) save() error {
	if hm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&hm.record)
	if err != nil {
		return fmt.Errorf("failed to marshal high score: %w", err)
	}

	if err := hm.gdataManager.SaveObjectProp(highScoreObject, highScoreProperty, data); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}

	return nil
}
