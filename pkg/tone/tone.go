// Package tone synthesizes the short pitched blip played when a menu item
// is selected. The terminal host plays it through the beep speaker and the
// desktop host through ebiten's audio context.
package tone

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	// SampleRate 两个宿主共用的采样率
	SampleRate = beep.SampleRate(48000)

	// Duration 提示音长度
	Duration = 90 * time.Millisecond

	// Volume 提示音音量 (0..1)
	Volume = 0.25
)

// 五声音阶，按菜单项序号取音高
var pentatonic = []float64{523.25, 587.33, 659.25, 783.99, 880.00}

// Frequency returns the pitch played when item index is selected.
// Indices past the scale continue an octave higher.
func Frequency(index int) float64 {
	if index < 0 {
		index = 0
	}
	octave := index / len(pentatonic)
	return pentatonic[index%len(pentatonic)] * math.Pow(2, float64(octave))
}

// ForIndex returns the selection tone for item index at the default
// length, volume and rate.
func ForIndex(index int) beep.Streamer {
	return New(Frequency(index), Duration, Volume, SampleRate)
}

// New builds a sine tone of the given length with a linear release,
// scaled to vol (0..1). Frequencies the rate cannot carry yield silence.
func New(freq float64, d time.Duration, vol float64, rate beep.SampleRate) beep.Streamer {
	n := rate.N(d)
	osc, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(n)
	}
	t := &release{streamer: beep.Take(n, osc), total: n}
	if vol <= 0 {
		return &effects.Volume{Streamer: t, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: t, Base: 2, Volume: math.Log2(vol)}
}

// release 在 total 个采样内把音量线性降到 0
type release struct {
	streamer beep.Streamer
	position int
	total    int
}

func (r *release) Stream(samples [][2]float64) (int, bool) {
	n, ok := r.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 0.0
		if r.position < r.total {
			gain = float64(r.total-r.position) / float64(r.total)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		r.position++
	}
	return n, ok
}

func (r *release) Err() error { return r.streamer.Err() }

// PCM drains s into 16-bit little-endian interleaved stereo, the format
// ebiten's audio players take.
func PCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(smp[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(smp[1])))
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
