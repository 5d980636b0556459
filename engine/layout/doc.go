/*
Package layout turns a string into positioned glyphs.

Layout does no shaping, kerning or bidi. Every character
is measured on its own with the font's measurement primitive, and lines are
filled word by word from a fixed origin.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'kinetype.layout'
func tracer() tracing.Trace {
	return tracing.Select("kinetype.layout")
}
