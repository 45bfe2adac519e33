package anim

import (
	"time"

	"github.com/gonewx/flownav/pkg/utils"
)

// Tween interpolates From → To over Duration starting at Start.
// A nil Ease means linear.
type Tween struct {
	From     float64
	To       float64
	Start    time.Duration
	Duration time.Duration
	Ease     utils.EasingFunc
}

// Progress returns the linear progress at now, clamped to [0, 1].
// A zero duration tween is complete as soon as now reaches Start.
func (tw Tween) Progress(now time.Duration) float64 {
	if now <= tw.Start {
		if tw.Duration <= 0 && now == tw.Start {
			return 1
		}
		return 0
	}
	if tw.Duration <= 0 {
		return 1
	}
	return utils.Clamp(float64(now-tw.Start)/float64(tw.Duration), 0, 1)
}

// ValueAt returns the eased value at now. The end points are exact: the
// tween yields From before it starts and To once it has finished.
func (tw Tween) ValueAt(now time.Duration) float64 {
	p := tw.Progress(now)
	switch p {
	case 0:
		return tw.From
	case 1:
		return tw.To
	}
	if tw.Ease != nil {
		p = tw.Ease(p)
	}
	return utils.Lerp(tw.From, tw.To, p)
}

// Done reports whether the tween has reached its end value.
func (tw Tween) Done(now time.Duration) bool {
	return tw.Progress(now) >= 1
}

// End returns the time the tween finishes.
func (tw Tween) End() time.Duration {
	return tw.Start + tw.Duration
}
