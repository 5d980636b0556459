/*
Package catalog holds the animation procedures of kinetype.

Every animation is identified by a Kind. Kinds are grouped into entrance
effects (glyphs start perturbed and move to their rest pose, staggered by
index), grouped entrances (lines or words), emphasis effects oscillating
around the rest pose, stochastic effects, effects changing the displayed
characters, exit effects and the ripple effect Echo. Unknown identifiers
resolve to Default, a small pop-in.

Starting an animation writes its initial state to the glyph set and returns
a Run, holding the timelines which perform it:

	cat := catalog.New(nil)
	set.ResetLive()
	run := cat.Run("FlyIn", set, redraw)
	sched.Add(run.Timelines...)

Random perturbations are drawn from a Rand given to New, which allows tests
to make them reproducible.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package catalog

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'kinetype.motion'
func tracer() tracing.Trace {
	return tracing.Select("kinetype.motion")
}
