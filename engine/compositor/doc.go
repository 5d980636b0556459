/*
Package compositor paints glyphs onto a host provided surface.

The host owns a Surface and a Texture. After every redraw the compositor
marks the texture, which signals the host to upload the surface contents
(e.g. to a 3D scene or to an image file).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compositor

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'kinetype.render'
func tracer() tracing.Trace {
	return tracing.Select("kinetype.render")
}
