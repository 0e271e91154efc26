package game

// 核心玩法与外部协作者（音频、存储、文字显示）之间的窄接口。
// 核心系统只依赖这些接口，测试中可以替换为内存实现。

// SoundCue 音效标识
type SoundCue string

const (
	// CueWarning 有球越过警戒线时播放
	CueWarning SoundCue = "warning"
	// CueColorChange 切换颜色时播放
	CueColorChange SoundCue = "color_change"
	// CueMusic 背景音乐（循环）
	CueMusic SoundCue = "music"
	// CueExplosion 游戏结束爆炸
	CueExplosion SoundCue = "explosion"
)

// AllCues 全部音效，供预加载使用
var AllCues = []SoundCue{CueWarning, CueColorChange, CueMusic, CueExplosion}

// AudioSink 音频输出
type AudioSink interface {
	// PlaySound 播放音效；对 CueMusic 而言，已在播放时不会重新开始
	PlaySound(cue SoundCue)
	// StopSound 停止音效
	StopSound(cue SoundCue)
	// IsPlaying 音效是否正在播放
	IsPlaying(cue SoundCue) bool
}

// HighScoreStore 最高分持久化
type HighScoreStore interface {
	HighScore() int
	SetHighScore(score int) error
}

// TextID 屏幕文字标识
type TextID string

const (
	TextScore             TextID = "score"
	TextTitle             TextID = "title"
	TextInstructions      TextID = "instructions"
	TextGameOver          TextID = "game_over"
	TextGameOverScore     TextID = "game_over_score"
	TextGameOverHighScore TextID = "game_over_high_score"
)

// AllTextIDs 所有文字，用于一次性隐藏
var AllTextIDs = []TextID{
	TextScore,
	TextTitle,
	TextInstructions,
	TextGameOver,
	TextGameOverScore,
	TextGameOverHighScore,
}

// TextSurface 屏幕文字
type TextSurface interface {
	ShowText(id TextID, content string)
	Hide(id TextID)
}

// HideAllText 隐藏全部文字
func HideAllText(ts TextSurface) {
	for _, id := range AllTextIDs {
		ts.Hide(id)
	}
}
