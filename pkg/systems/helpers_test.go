package systems

import (
	"github.com/decker502/spheresmash/pkg/components"
	"github.com/decker502/spheresmash/pkg/config"
	"github.com/decker502/spheresmash/pkg/ecs"
	"github.com/decker502/spheresmash/pkg/entities"
	"github.com/decker502/spheresmash/pkg/game"
)

// scriptedRandom 按顺序返回预设的 Float64 值，用完后重复最后一个
// Intn 使用同一序列：int(v * n)
type scriptedRandom struct {
	values []float64
	next   int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.values) == 0 {
		return 0.999
	}
	i := r.next
	if i >= len(r.values) {
		i = len(r.values) - 1
	}
	r.next++
	return r.values[i]
}

func (r *scriptedRandom) Intn(n int) int {
	v := int(r.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// neverSpawn 试验永远失败的随机源
func neverSpawn() *scriptedRandom {
	return &scriptedRandom{values: []float64{0.999}}
}

// recordingAudio 记录播放/停止次数的 AudioSink
type recordingAudio struct {
	plays   map[game.SoundCue]int
	stops   map[game.SoundCue]int
	playing map[game.SoundCue]bool
}

func newRecordingAudio() *recordingAudio {
	return &recordingAudio{
		plays:   make(map[game.SoundCue]int),
		stops:   make(map[game.SoundCue]int),
		playing: make(map[game.SoundCue]bool),
	}
}

func (a *recordingAudio) PlaySound(cue game.SoundCue) {
	a.plays[cue]++
	a.playing[cue] = true
}

func (a *recordingAudio) StopSound(cue game.SoundCue) {
	a.stops[cue]++
	a.playing[cue] = false
}

func (a *recordingAudio) IsPlaying(cue game.SoundCue) bool {
	return a.playing[cue]
}

// memoryHighScore 内存中的最高分存储
type memoryHighScore struct {
	best   int
	writes int
	err    error
}

func (m *memoryHighScore) HighScore() int { return m.best }

func (m *memoryHighScore) SetHighScore(score int) error {
	if m.err != nil {
		return m.err
	}
	m.writes++
	if score > m.best {
		m.best = score
	}
	return nil
}

// addSphere 在指定位置放置一个球；safe 为 false 时立即参与越线判定
func addSphere(em *ecs.EntityManager, cfg *config.GameConfig, kind components.SphereKind, x, y float64, safe bool) ecs.EntityID {
	id, err := entities.NewSphereEntity(em, kind, x, y, 0, cfg)
	if err != nil {
		panic(err)
	}
	if !safe {
		sphere, _ := ecs.GetComponent[*components.SphereComponent](em, id)
		sphere.SafeCountdown = 0
	}
	return id
}

// countSpheres 当前存活的球数量
func countSpheres(em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[*components.SphereComponent](em))
}

// countSpheresOfColor 指定颜色的普通球数量
func countSpheresOfColor(em *ecs.EntityManager, color components.ColorIndex) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.SphereComponent](em) {
		sphere, _ := ecs.GetComponent[*components.SphereComponent](em, id)
		if sphere.Kind.Matches(color) {
			n++
		}
	}
	return n
}

// newPlayingState 已进入 Playing 的状态
func newPlayingState(cfg *config.GameConfig) *game.RoundState {
	state := game.NewRoundState(cfg.ColorCount())
	state.Reset(cfg.Spawn.BaseProbability, cfg.Spawn.AttemptInterval)
	return state
}
