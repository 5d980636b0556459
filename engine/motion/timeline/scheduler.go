package timeline

// Scheduler advances a set of timelines in lockstep. It is ticked
// explicitly, either by Loop or by tests.
//
// The scheduler is not safe for concurrent use.
type Scheduler struct {
	timelines []*Timeline
	now       float64
}

// NewScheduler creates a scheduler without timelines.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add hands timelines to the scheduler. They start on the next tick.
func (s *Scheduler) Add(tls ...*Timeline) {
	for _, tl := range tls {
		if tl != nil && !tl.Done() {
			s.timelines = append(s.timelines, tl)
		}
	}
}

// Tick advances every timeline by dt seconds, in the order they have been
// added. The frame observer of each timeline which mutated glyphs is called
// once. Finished timelines are dropped. Tick returns the number of frame
// notifications.
func (s *Scheduler) Tick(dt float64) int {
	if dt < 0 {
		dt = 0
	}
	s.now += dt
	frames := 0
	active := s.timelines
	for _, tl := range active {
		step := tl.Advance(dt)
		if step.Mutated && tl.OnFrame != nil {
			frames++
			tl.OnFrame()
		}
	}
	live := s.timelines[:0]
	for _, tl := range s.timelines {
		if !tl.Done() {
			live = append(live, tl)
		}
	}
	for i := len(live); i < len(s.timelines); i++ {
		s.timelines[i] = nil
	}
	s.timelines = live
	return frames
}

// Active returns the number of unfinished timelines.
func (s *Scheduler) Active() int {
	n := 0
	for _, tl := range s.timelines {
		if !tl.Done() {
			n++
		}
	}
	return n
}

// Now returns the accumulated tick time.
func (s *Scheduler) Now() float64 {
	return s.now
}

// CancelAll cancels and drops every timeline.
func (s *Scheduler) CancelAll() {
	for _, tl := range s.timelines {
		tl.Cancel()
	}
	s.timelines = nil
}
