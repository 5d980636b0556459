/*
Package ggsurface is a host for the kinetype compositor, drawing with gg
(github.com/gogpu/gg) to an in-memory image.

Surface implements compositor.Surface, FrameTexture implements
compositor.Texture and writes a PNG file for every redraw.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ggsurface

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'kinetype.render'
func tracer() tracing.Trace {
	return tracing.Select("kinetype.render")
}
