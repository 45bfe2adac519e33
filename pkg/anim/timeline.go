package anim

import (
	"sort"
	"time"
)

// CancelToken gates every continuation of one animation session.
// Once cancelled it never becomes valid again.
type CancelToken struct {
	cancelled bool
}

// NewCancelToken returns a live token.
func NewCancelToken() *CancelToken {
	return &CancelToken{}
}

// Cancel invalidates the token. Calling it twice is harmless.
func (t *CancelToken) Cancel() {
	t.cancelled = true
}

// Valid reports whether continuations guarded by t may still run.
// A nil token is never valid.
func (t *CancelToken) Valid() bool {
	return t != nil && !t.cancelled
}

// Task is a delayed action relative to the timeline's start.
// The action receives the task's scheduled time, not the tick time, so
// chained work stays anchored to the timeline.
type Task struct {
	Delay  time.Duration
	Action func(at time.Duration)
	fired  bool
}

// Timeline holds the ordered delayed tasks of one session under a single
// cancel token.
type Timeline struct {
	start time.Duration
	token *CancelToken
	tasks []*Task
}

// NewTimeline creates a timeline anchored at start and guarded by token.
func NewTimeline(start time.Duration, token *CancelToken) *Timeline {
	return &Timeline{start: start, token: token}
}

// Start returns the anchor time.
func (tl *Timeline) Start() time.Duration {
	return tl.start
}

// Token returns the guarding token.
func (tl *Timeline) Token() *CancelToken {
	return tl.token
}

// Schedule adds an action to run delay after the timeline start. Tasks with
// equal delays run in the order they were scheduled.
func (tl *Timeline) Schedule(delay time.Duration, action func(at time.Duration)) {
	tl.tasks = append(tl.tasks, &Task{Delay: delay, Action: action})
	sort.SliceStable(tl.tasks, func(i, j int) bool {
		return tl.tasks[i].Delay < tl.tasks[j].Delay
	})
}

// Advance runs every due task in order and returns how many ran. Nothing
// runs once the token is cancelled, including tasks that became due in the
// same tick. A task may cancel the token to stop the rest.
func (tl *Timeline) Advance(now time.Duration) int {
	ran := 0
	// 按索引遍历：任务执行期间可能追加新任务
	for i := 0; i < len(tl.tasks); i++ {
		task := tl.tasks[i]
		if !tl.token.Valid() {
			break
		}
		if task.fired {
			continue
		}
		at := tl.start + task.Delay
		if now < at {
			break
		}
		task.fired = true
		ran++
		if task.Action != nil {
			task.Action(at)
		}
	}
	return ran
}

// Pending returns the number of tasks that have not run. A cancelled
// timeline has nothing pending.
func (tl *Timeline) Pending() int {
	if !tl.token.Valid() {
		return 0
	}
	n := 0
	for _, task := range tl.tasks {
		if !task.fired {
			n++
		}
	}
	return n
}

// Cancel invalidates the timeline's token.
func (tl *Timeline) Cancel() {
	tl.token.Cancel()
}
