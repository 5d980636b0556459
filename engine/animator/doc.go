/*
Package animator is the trigger API of kinetype.

A host creates an Animator for its drawing surface and calls
ApplyAnimation whenever text, animation or font change:

	anim := animator.New(surface, texture, animator.ConfigFrom(conf))
	anim.ApplyAnimation("Hello", "FlyIn", "Arial")
	go anim.Loop(ctx, timeline.SystemClock{}, nil)

Every call of ApplyAnimation starts a new layout generation. The animation
run of the previous generation is cancelled first, and its glyphs are
retired, so that no timeline of an older generation is able to change the
glyphs of a newer one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package animator

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'kinetype.animator'
func tracer() tracing.Trace {
	return tracing.Select("kinetype.animator")
}
