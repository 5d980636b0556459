package timeline

import (
	"fmt"
	"math"

	"github.com/npillmayer/kinetype/engine/glyph"
)

// State is the lifecycle state of a timeline.
type State int

// Timeline states. Completed and Cancelled are final.
const (
	Pending State = iota
	Running
	Repeating
	Completed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Repeating:
		return "repeating"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Step is the result of advancing a timeline.
type Step struct {
	Mutated   bool // glyphs have been written or hooks have been called
	Completed bool // this step completed the timeline
}

// Timeline is a group of segments on a common, local time base.
//
// A timeline starts after Delay seconds. One cycle lasts until the last
// segment ends; cycles repeat Repeat more times (-1 = forever), running
// backwards every other cycle if Yoyo is set.
//
// Timelines are driven by Advance (or Seek). They do not start goroutines
// and are not safe for concurrent use.
type Timeline struct {
	Delay   float64
	Repeat  int
	Yoyo    bool
	OnFrame func() // called by the scheduler after every mutating step

	set      *glyph.Set
	segments []*Segment
	elapsed  float64
	state    State
}

// New creates an empty timeline operating on a glyph set.
func New(set *glyph.Set) *Timeline {
	return &Timeline{set: set}
}

// Add places a segment at its start time seg.At.
func (tl *Timeline) Add(seg *Segment) *Timeline {
	tl.segments = append(tl.segments, seg)
	return tl
}

// Append places a segment directly after the most recently added segment,
// shifted by `gap` seconds.
func (tl *Timeline) Append(seg *Segment, gap float64) *Timeline {
	if n := len(tl.segments); n > 0 {
		seg.At = tl.segments[n-1].End() + gap
	} else {
		seg.At = gap
	}
	return tl.Add(seg)
}

// Segments returns the segments of the timeline.
func (tl *Timeline) Segments() []*Segment {
	return tl.segments
}

// Set returns the glyph set the timeline operates on.
func (tl *Timeline) Set() *glyph.Set {
	return tl.set
}

// Duration returns the length of one cycle. It is +Inf if any segment
// repeats forever.
func (tl *Timeline) Duration() float64 {
	d := 0.0
	for _, seg := range tl.segments {
		d = math.Max(d, seg.End())
	}
	return d
}

// Total returns the length of all cycles, excluding the delay.
func (tl *Timeline) Total() float64 {
	d := tl.Duration()
	if d == 0 {
		return 0
	}
	if tl.Repeat < 0 {
		return math.Inf(1)
	}
	return d * float64(tl.Repeat+1)
}

// State returns the lifecycle state.
func (tl *Timeline) State() State {
	return tl.state
}

// Done is true for completed or cancelled timelines.
func (tl *Timeline) Done() bool {
	return tl.state == Completed || tl.state == Cancelled
}

// Elapsed returns the time since the timeline has been created, including
// the delay.
func (tl *Timeline) Elapsed() float64 {
	return tl.elapsed
}

// Cancel stops the timeline immediately. No glyph will be written and no
// hook will be called afterwards. Cancelling a finished timeline has no
// effect.
func (tl *Timeline) Cancel() {
	if !tl.Done() {
		tl.state = Cancelled
	}
}

// Advance moves the timeline forward by dt seconds.
func (tl *Timeline) Advance(dt float64) Step {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	return tl.Seek(tl.elapsed + dt)
}

// Seek moves the timeline to time t (including the delay). Seeking backwards
// re-renders glyph values but never calls hooks.
func (tl *Timeline) Seek(t float64) Step {
	if tl.Done() {
		return Step{}
	}
	forward := t >= tl.elapsed
	tl.elapsed = t
	local := t - tl.Delay
	if local < 0 {
		return Step{}
	}
	d, total := tl.Duration(), tl.Total()
	finished := local >= total
	cycle, ct := 0, local
	switch {
	case d == 0:
		ct, finished = 0, true
	case !math.IsInf(d, 1):
		if finished {
			cycle, ct = tl.Repeat, d
		} else {
			cycle = int(math.Floor(local / d))
			ct = local - float64(cycle)*d
		}
		if tl.Yoyo && cycle%2 == 1 {
			ct = d - ct
		}
	}
	backward := tl.Yoyo && cycle%2 == 1
	step := Step{}
	n := len(tl.segments)
	for k := 0; k < n; k++ {
		seg := tl.segments[k]
		if backward {
			seg = tl.segments[n-1-k]
		}
		m, err := seg.render(tl.set, ct-seg.At, forward && !backward)
		if err != nil {
			tracer().Infof("timeline stops: %v", err)
			tl.state = Cancelled
			return Step{}
		}
		step.Mutated = step.Mutated || m
		if tl.state == Cancelled { // a hook cancelled us
			return Step{}
		}
	}
	if finished {
		tl.state = Completed
		step.Completed = true
	} else if cycle > 0 {
		tl.state = Repeating
	} else {
		tl.state = Running
	}
	return step
}
