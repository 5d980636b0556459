/*
Package timeline interpolates glyph fields over time.

A Segment interpolates a set of fields of a group of glyphs, with an easing
curve, optional repeats and yoyo. Segments are placed on a Timeline, which
has a delay of its own and may repeat as a whole. Timelines are driven by a
Scheduler:

	sched := timeline.NewScheduler()
	sched.Add(tl)
	for sched.Active() > 0 {
	    sched.Tick(1.0 / 60)
	}

In production the scheduler is ticked by Loop; tests tick it directly or
use a ManualClock.

Segments capture the live start values of their glyphs when they are
rendered for the first time, not when they are created. Values at the start
and end of a segment are written exactly, without interpolation error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package timeline

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'kinetype.motion'
func tracer() tracing.Trace {
	return tracing.Select("kinetype.motion")
}
