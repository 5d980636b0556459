/*
Package glyph holds the glyphs of an animated text.

A glyph has a rest pose, determined by layout, and a live pose, which
animations change over time. Glyphs of one layout pass live in a Set;
animations refer to glyphs by their index into a set.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyph
