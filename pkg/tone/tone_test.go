package tone

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestFrequency(t *testing.T) {
	tests := []struct {
		index int
		want  float64
	}{
		{-1, 523.25},
		{0, 523.25},
		{4, 880.00},
		{5, 1046.5},
		{7, 659.25 * 2},
	}
	for _, tt := range tests {
		if got := Frequency(tt.index); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Frequency(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

// drain 读完整个 streamer，返回采样数和绝对值最大的采样
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] != smp[1] {
				t.Fatalf("channels differ: %v", smp)
			}
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestNewLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	n, peak := drain(t, New(440, 50*time.Millisecond, 1, rate))

	if want := rate.N(50 * time.Millisecond); n != want {
		t.Errorf("samples = %d, want %d", n, want)
	}
	if peak <= 0 || peak > 1 {
		t.Errorf("peak = %v, want (0, 1]", peak)
	}
}

func TestNewVolume(t *testing.T) {
	rate := beep.SampleRate(8000)
	_, loud := drain(t, New(440, 50*time.Millisecond, 1, rate))
	_, quiet := drain(t, New(440, 50*time.Millisecond, 0.25, rate))
	_, silent := drain(t, New(440, 50*time.Millisecond, 0, rate))

	if math.Abs(quiet-loud*0.25) > 1e-6 {
		t.Errorf("quarter volume peak = %v, loud = %v", quiet, loud)
	}
	if silent != 0 {
		t.Errorf("silent peak = %v", silent)
	}
}

func TestReleaseEnvelope(t *testing.T) {
	constant := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	r := &release{streamer: constant, total: 4}
	buf := make([][2]float64, 6)
	r.Stream(buf)

	want := []float64{1, 0.75, 0.5, 0.25, 0, 0}
	for i, w := range want {
		if buf[i][0] != w {
			t.Errorf("sample %d = %v, want %v", i, buf[i][0], w)
		}
	}
}

func TestNewUnplayableFrequency(t *testing.T) {
	rate := beep.SampleRate(8000)
	n, peak := drain(t, New(6000, 10*time.Millisecond, 1, rate))
	if n != rate.N(10*time.Millisecond) || peak != 0 {
		t.Errorf("samples = %d peak = %v, want silence", n, peak)
	}
}

func TestPCM(t *testing.T) {
	rate := beep.SampleRate(8000)
	n := rate.N(10 * time.Millisecond)
	pcm := PCM(New(440, 10*time.Millisecond, 1, rate))

	// 每个采样 2 声道 × 2 字节
	if len(pcm) != n*4 {
		t.Fatalf("len(pcm) = %d, want %d", len(pcm), n*4)
	}
}

func TestToInt16Clamps(t *testing.T) {
	tests := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{1, math.MaxInt16},
		{2, math.MaxInt16},
		{-2, -math.MaxInt16},
	}
	for _, tt := range tests {
		if got := toInt16(tt.in); got != tt.want {
			t.Errorf("toInt16(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestForIndex(t *testing.T) {
	n, peak := drain(t, ForIndex(2))
	if n != SampleRate.N(Duration) {
		t.Errorf("samples = %d", n)
	}
	if peak > Volume {
		t.Errorf("peak %v exceeds volume %v", peak, Volume)
	}
}
