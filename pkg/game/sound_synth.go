package game

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// 所有音效都在启动时合成，不依赖音频文件。
// 合成结果是 16 位小端立体声 PCM，可直接交给 ebiten audio 播放。

// SynthSampleRate 合成与播放使用的采样率
const SynthSampleRate = 48000

// 单个音效的最长时长，防止异常的 Streamer 无限输出
const maxCueDuration = 10 * time.Second

// waveShape 振荡器波形
type waveShape int

const (
	waveSine waveShape = iota
	waveSquare
	waveTriangle
	waveNoise
)

// tone 定长振荡器
type tone struct {
	freq   float64
	phase  float64
	total  int
	played int
	shape  waveShape
	rate   beep.SampleRate
	rng    *rand.Rand
}

func newTone(freq float64, d time.Duration, shape waveShape, rate beep.SampleRate, rng *rand.Rand) *tone {
	return &tone{freq: freq, total: rate.N(d), shape: shape, rate: rate, rng: rng}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.played >= t.total {
			return i, i > 0
		}

		var v float64
		switch t.shape {
		case waveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			v = -1
			if t.phase < 0.5 {
				v = 1
			}
		case waveTriangle:
			v = 4*math.Abs(t.phase-0.5) - 1
		case waveNoise:
			v = t.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.played++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// decayEnvelope 线性起音 + 指数衰减
type decayEnvelope struct {
	src      beep.Streamer
	position int
	attack   int
	tau      float64 // 衰减时间常数（采样数）
}

func newDecayEnvelope(src beep.Streamer, attack, tau time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decayEnvelope{
		src:    src,
		attack: rate.N(attack),
		tau:    math.Max(1, float64(rate.N(tau))),
	}
}

func (e *decayEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.src.Stream(samples)
	for i := 0; i < n; i++ {
		var g float64
		if e.position < e.attack {
			g = float64(e.position) / float64(e.attack)
		} else {
			g = math.Exp(-float64(e.position-e.attack) / e.tau)
		}
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *decayEnvelope) Err() error { return e.src.Err() }

// gain 线性音量转为 effects.Volume（以 2 为底）
func gain(s beep.Streamer, linear float64) beep.Streamer {
	if linear <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(linear)}
}

// note 带包络的单音
func note(freq float64, d time.Duration, shape waveShape, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return newDecayEnvelope(newTone(freq, d, shape, rate, rng), 5*time.Millisecond, d/3, rate)
}

// cueWarning 两声交替的方波警报
func cueWarning(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	const beepLen = 120 * time.Millisecond
	return gain(beep.Seq(
		note(880, beepLen, waveSquare, rate, rng),
		note(660, beepLen, waveSquare, rate, rng),
		note(880, beepLen, waveSquare, rate, rng),
		note(660, beepLen, waveSquare, rate, rng),
	), 0.35)
}

// cueColorChange 短促的上行双音
func cueColorChange(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return gain(beep.Seq(
		note(659.25, 50*time.Millisecond, waveSine, rate, rng),
		note(987.77, 70*time.Millisecond, waveSine, rate, rng),
	), 0.6)
}

// cueExplosion 噪声叠加低频三角波
func cueExplosion(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	const length = 1200 * time.Millisecond
	noise := newDecayEnvelope(newTone(0, length, waveNoise, rate, rng), 10*time.Millisecond, 300*time.Millisecond, rate)
	rumble := newDecayEnvelope(newTone(55, length, waveTriangle, rate, rng), 20*time.Millisecond, 500*time.Millisecond, rate)
	return beep.Mix(gain(noise, 0.6), gain(rumble, 0.5))
}

// 背景音乐的琶音（A 小调），每个音 250ms
var musicPattern = []float64{
	220.00, 261.63, 329.63, 261.63,
	174.61, 220.00, 261.63, 220.00,
	196.00, 246.94, 293.66, 246.94,
	164.81, 207.65, 246.94, 329.63,
}

// cueMusic 一小节可以无缝循环的琶音
func cueMusic(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	const step = 250 * time.Millisecond
	melody := make([]beep.Streamer, 0, len(musicPattern))
	bass := make([]beep.Streamer, 0, len(musicPattern)/4)
	for i, freq := range musicPattern {
		melody = append(melody, note(freq, step, waveTriangle, rate, rng))
		if i%4 == 0 {
			bass = append(bass, note(freq/2, 4*step, waveSine, rate, rng))
		}
	}
	return gain(beep.Mix(gain(beep.Seq(melody...), 0.5), gain(beep.Seq(bass...), 0.4)), 0.5)
}

// cueStreamer 根据标识构造音效
func cueStreamer(cue SoundCue, rate beep.SampleRate, rng *rand.Rand) (beep.Streamer, error) {
	switch cue {
	case CueWarning:
		return cueWarning(rate, rng), nil
	case CueColorChange:
		return cueColorChange(rate, rng), nil
	case CueExplosion:
		return cueExplosion(rate, rng), nil
	case CueMusic:
		return cueMusic(rate, rng), nil
	default:
		return nil, fmt.Errorf("unknown sound cue %q", cue)
	}
}

// SynthesizeCue 合成音效并返回 16 位小端立体声 PCM
func SynthesizeCue(cue SoundCue, seed int64) ([]byte, error) {
	rate := beep.SampleRate(SynthSampleRate)
	s, err := cueStreamer(cue, rate, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	return renderPCM(s, rate.N(maxCueDuration))
}

// renderPCM 拉取 Streamer 直到耗尽或达到 maxSamples
func renderPCM(s beep.Streamer, maxSamples int) ([]byte, error) {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4*len(buf))
	frame := make([]byte, 4)
	total := 0

	for total < maxSamples {
		want := len(buf)
		if rest := maxSamples - total; rest < want {
			want = rest
		}
		n, ok := s.Stream(buf[:want])
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame...)
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	return out, nil
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}
