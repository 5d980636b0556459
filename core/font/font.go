/*
Package font is for typeface and font handling.

We stick to the nomenclature of typesetting:

* A "scalable font" is a variant of a typeface with a certain weight,
slant, etc.  An example is "Helvetica regular".

* A "typecase" is a scaled font, i.e. a font in a certain size.
An example is "Helvetica regular 60px".

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

Typecases measure text. Glyph layout asks a typecase for the advance of a
word or of a single character; no kerning or shaping is applied.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import (
	"fmt"
	"os"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// tracer traces with key 'kinetype.font'
func tracer() tracing.Trace {
	return tracing.Select("kinetype.font")
}

// ScalableFont is a loaded font file, not yet bound to a size.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// Descriptor describes a font found on the host or in a font list.
type Descriptor struct {
	Family   string
	Path     string
	Variants []string
}

// TypeCase is a scalable font prepared for a given size (in pixels at 72 DPI).
//
// x/image faces are not safe for concurrent use, so a TypeCase serializes
// measurement.
type TypeCase struct {
	sync.Mutex
	scalableFontParent *ScalableFont
	face               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               float64
}

// Size limits for typecases.
const (
	MinSize     = 1.0
	MaxSize     = 500.0
	DefaultSize = 60.0
)

// LoadOpenTypeFont loads a font from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses an OpenType or TrueType font from raw bytes.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// PrepareCase creates a typecase of size `fontsize`. Sizes outside of
// [MinSize…MaxSize] are replaced by DefaultSize.
func (sf *ScalableFont) PrepareCase(fontsize float64) (*TypeCase, error) {
	typecase := &TypeCase{scalableFontParent: sf}
	if fontsize < MinSize || fontsize > MaxSize {
		tracer().Errorf("font size must be %g < size < %g, is %g (set to %g)",
			MinSize, MaxSize, fontsize, DefaultSize)
		fontsize = DefaultSize
	}
	options := &opentype.FaceOptions{
		Size:    fontsize,
		DPI:     72, // 1pt = 1px
		Hinting: xfont.HintingNone,
	}
	f, err := opentype.NewFace(sf.SFNT, options)
	if err != nil {
		return nil, fmt.Errorf("cannot prepare %s at %.2f: %w", sf.Fontname, fontsize, err)
	}
	typecase.face = f
	typecase.size = fontsize
	return typecase, nil
}

// ScalableFontParent returns the font this typecase has been derived from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// PtSize returns the size of the typecase.
func (tc *TypeCase) PtSize() float64 {
	return tc.size
}

// Advance measures the horizontal advance of s, in pixels.
func (tc *TypeCase) Advance(s string) float64 {
	if tc == nil || tc.face == nil || s == "" {
		return 0
	}
	tc.Lock()
	defer tc.Unlock()
	return fixedToFloat(xfont.MeasureString(tc.face, s))
}

// Ascent returns the distance from the top of a line to its baseline.
func (tc *TypeCase) Ascent() float64 {
	if tc == nil || tc.face == nil {
		return 0
	}
	tc.Lock()
	defer tc.Unlock()
	return fixedToFloat(tc.face.Metrics().Ascent)
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else failes.
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}
