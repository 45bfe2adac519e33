package termhost

import (
	"sync"
	"time"

	"github.com/gonewx/flownav/pkg/tone"
	"github.com/gopxl/beep/speaker"
)

// ToneManager plays the selection tone through the beep speaker. Audio is
// optional: every method is a no-op until Initialize succeeds.
type ToneManager struct {
	mu          sync.Mutex
	initialized bool
}

// NewToneManager creates an uninitialized tone manager.
func NewToneManager() *ToneManager {
	return &ToneManager{}
}

// Initialize opens the speaker.
func (tm *ToneManager) Initialize() error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.initialized {
		return nil
	}
	if err := speaker.Init(tone.SampleRate, tone.SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	tm.initialized = true
	return nil
}

// Enabled reports whether the speaker is open.
func (tm *ToneManager) Enabled() bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return tm.initialized
}

// PlaySelect plays the tone for item index.
func (tm *ToneManager) PlaySelect(index int) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if !tm.initialized {
		return
	}
	speaker.Play(tone.ForIndex(index))
}

// Cleanup closes the speaker.
func (tm *ToneManager) Cleanup() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if !tm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	tm.initialized = false
}
