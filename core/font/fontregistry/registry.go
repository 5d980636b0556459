package fontregistry

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/kinetype/core"
	"github.com/npillmayer/kinetype/core/font"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
)

// Registry holds loaded fonts and the typecases derived from them.
// Fonts are keyed by their normalized family name.
type Registry struct {
	sync.Mutex
	fonts     map[string]*font.ScalableFont
	typecases map[string]*font.TypeCase
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// loaded fonts and typecases.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		fonts:     make(map[string]*font.ScalableFont),
		typecases: make(map[string]*font.TypeCase),
	}
}

// StoreFont pushes a font into the registry if it isn't contained yet.
// A font already stored under `name` is not overridden.
func (fr *Registry) StoreFont(name string, f *font.ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	key := NormalizeFontname(name)
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[key]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, key)
		fr.fonts[key] = f
	}
}

// Contains is true if a font has been stored under `name`.
func (fr *Registry) Contains(name string) bool {
	fr.Lock()
	defer fr.Unlock()
	_, ok := fr.fonts[NormalizeFontname(name)]
	return ok
}

// TypeCase returns a typecase of font `name` with a given size.
// Typecases are cached.
//
// If no font has been stored under `name`, TypeCase derives a typecase from
// the fallback font and returns it together with an EMISSING error. The
// typecase returned is never nil.
func (fr *Registry) TypeCase(name string, size float64) (*font.TypeCase, error) {
	key := NormalizeFontname(name)
	tracer().Debugf("registry searches for font %s at %.2f", key, size)
	fr.Lock()
	defer fr.Unlock()
	if t, ok := fr.typecases[withSize(key, size)]; ok {
		return t, nil
	}
	if f, ok := fr.fonts[key]; ok {
		t, err := f.PrepareCase(size)
		if err == nil {
			tracer().Infof("font registry has font %s, caches at %.2f", key, size)
			fr.typecases[withSize(key, size)] = t
			return t, nil
		}
		tracer().Errorf("font %s unusable: %v", key, err)
	}
	err := core.Error(core.EMISSING, "font %q not available, using fallback font", name)
	return fr.fallbackCase(size), err
}

func (fr *Registry) fallbackCase(size float64) *font.TypeCase {
	tname := withSize("fallback", size)
	if t, ok := fr.typecases[tname]; ok {
		return t
	}
	t, err := font.FallbackFont().PrepareCase(size)
	if err != nil {
		panic(fmt.Sprintf("fallback font cannot be prepared: %v", err)) // Go Sans parses
	}
	tracer().Infof("font registry caches fallback font at %.2f", size)
	fr.typecases[tname] = t
	return t
}

// LogFontList dumps the list of known fonts and typecases to the trace
// (log-level Info).
func (fr *Registry) LogFontList() {
	fr.Lock()
	defer fr.Unlock()
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	defer tracer().SetTraceLevel(level)
	keys := make([]string, 0, len(fr.typecases))
	for k := range fr.typecases {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	tracer().Infof("--- registered fonts ---")
	for k, v := range fr.fonts {
		tracer().Infof("font [%s] = %v", k, v.Fontname)
	}
	for _, k := range keys {
		tracer().Infof("typecase [%s] = %v", k, fr.typecases[k].ScalableFontParent().Fontname)
	}
	tracer().Infof("------------------------")
}

// Unquote strips surrounding single or double quotes and white space from a
// font family name, as host font lists tend to quote names containing blanks.
func Unquote(fname string) string {
	fname = strings.TrimSpace(fname)
	for len(fname) >= 2 {
		first, last := fname[0], fname[len(fname)-1]
		if (first == '"' || first == '\'') && first == last {
			fname = strings.TrimSpace(fname[1 : len(fname)-1])
			continue
		}
		break
	}
	return fname
}

// NormalizeFontname creates a registry key from a family name or a font
// file name: "Times New Roman" and "times_new_roman.ttf" yield the same key.
func NormalizeFontname(fname string) string {
	fname = Unquote(fname)
	fname = path.Base(fname)
	switch strings.ToLower(path.Ext(fname)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		fname = fname[:len(fname)-len(path.Ext(fname))]
	}
	fname = strings.ToLower(fname)
	fname = strings.Join(strings.FieldsFunc(fname, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), "_")
	return fname
}

func withSize(fname string, size float64) string {
	return fmt.Sprintf("%s-%.2f", fname, size)
}

// GuessStyleAndWeight tries to guess a font's style and weight from the
// font's file name.
func GuessStyleAndWeight(fontfilename string) (xfont.Style, xfont.Weight) {
	fontfilename = path.Base(fontfilename)
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	if s := strings.Split(fontfilename, "-"); len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			return xfont.StyleNormal, xfont.WeightLight
		case "normal", "medium", "regular", "r":
			return xfont.StyleNormal, xfont.WeightNormal
		case "bold", "b":
			return xfont.StyleNormal, xfont.WeightBold
		case "xbold", "black":
			return xfont.StyleNormal, xfont.WeightExtraBold
		}
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(fontfilename, "italic") || strings.Contains(fontfilename, "oblique") {
		style = xfont.StyleItalic
	}
	if strings.Contains(fontfilename, "light") {
		weight = xfont.WeightLight
	}
	if strings.Contains(fontfilename, "bold") {
		weight = xfont.WeightBold
	}
	return style, weight
}

// MatchConfidence expresses the confidence level of font matching.
type MatchConfidence int

// Confidence levels.
const (
	NoConfidence      MatchConfidence = 0
	LowConfidence     MatchConfidence = 2
	HighConfidence    MatchConfidence = 3
	PerfectConfidence MatchConfidence = 4
)

// ClosestMatch scans a list of font descriptors for a family named `family`
// and returns the variant closest to a regular, normal-weight face.
// Family names are compared after normalization. If no variant matches,
// confidence is NoConfidence.
func ClosestMatch(fdescs []font.Descriptor, family string) (match font.Descriptor,
	variant string, confidence MatchConfidence) {
	//
	key := NormalizeFontname(family)
	for _, fdesc := range fdescs {
		if NormalizeFontname(fdesc.Family) != key {
			continue
		}
		if len(fdesc.Variants) == 0 && confidence == NoConfidence {
			match, confidence = fdesc, LowConfidence
			continue
		}
		for _, v := range fdesc.Variants {
			if c := MatchRegular(v); c > confidence {
				confidence, variant, match = c, v, fdesc
			}
		}
	}
	return
}

// MatchRegular rates how well a variant name denotes an upright regular face.
func MatchRegular(variantName string) MatchConfidence {
	variantName = strings.ToLower(variantName)
	switch variantName {
	case "regular", "400", "normal", "r", "roman", "book", "":
		return PerfectConfidence
	case "medium", "500", "text":
		return HighConfidence
	}
	style, weight := GuessStyleAndWeight("x-" + variantName)
	if style == xfont.StyleNormal && weight == xfont.WeightNormal {
		return LowConfidence
	}
	if style == xfont.StyleNormal {
		return LowConfidence / 2
	}
	return NoConfidence
}
