/*
Package fontregistry manages a registry for loaded fonts.

Fonts are registered under their family name ("Arial", "Times New Roman").
Asking the registry for a typecase of an unknown family never fails
completely: the registry hands out a typecase of the fallback font and
reports the missing family as an error with code core.EMISSING.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'kinetype.font'
func tracer() tracing.Trace {
	return tracing.Select("kinetype.font")
}
