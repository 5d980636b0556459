package animator

import (
	"strconv"

	"github.com/npillmayer/kinetype/engine/compositor"
	"github.com/npillmayer/kinetype/engine/layout"
	"github.com/npillmayer/schuko"
)

// Config holds the settings of an animator.
type Config struct {
	FontSize   float64       // pixel size of glyphs at scale 1
	Layout     layout.Params // layout constants
	FPS        int           // frame rate of Loop
	Color      string        // glyph color
	Background string        // surface background color, used by hosts
	Text       string        // initial text
	Animation  string        // initial animation
	Font       string        // initial font family
}

// DefaultConfig returns the standard settings.
func DefaultConfig() Config {
	return Config{
		FontSize:   60,
		Layout:     layout.DefaultParams(),
		FPS:        60,
		Color:      "#00ffcc",
		Background: "#111111",
		Text:       "Hello",
		Animation:  "FlyIn",
		Font:       "Arial",
	}
}

// ConfigFrom reads settings from a configuration, with keys
//
//	kinetype.fontsize    kinetype.lineheight  kinetype.origin.x
//	kinetype.origin.y    kinetype.margin      kinetype.fps
//	kinetype.color       kinetype.background  kinetype.text
//	kinetype.animation   kinetype.font
//
// Keys not set, or set to unusable values, keep their default.
func ConfigFrom(conf schuko.Configuration) Config {
	c := DefaultConfig()
	if conf == nil {
		return c
	}
	number(conf, "kinetype.fontsize", &c.FontSize)
	number(conf, "kinetype.lineheight", &c.Layout.LineHeight)
	number(conf, "kinetype.origin.x", &c.Layout.OriginX)
	number(conf, "kinetype.origin.y", &c.Layout.OriginY)
	number(conf, "kinetype.margin", &c.Layout.Margin)
	var fps float64
	if number(conf, "kinetype.fps", &fps) && fps >= 1 {
		c.FPS = int(fps)
	}
	str(conf, "kinetype.color", &c.Color)
	str(conf, "kinetype.background", &c.Background)
	str(conf, "kinetype.text", &c.Text)
	str(conf, "kinetype.animation", &c.Animation)
	str(conf, "kinetype.font", &c.Font)
	if c.FontSize <= 0 {
		c.FontSize = DefaultConfig().FontSize
	}
	return c
}

// CompositorOptions returns the drawing constants for a compositor.
func (c Config) CompositorOptions() compositor.Options {
	opts := compositor.DefaultOptions()
	opts.Color = c.Color
	opts.GlyphScale = c.FontSize
	return opts
}

func number(conf schuko.Configuration, key string, v *float64) bool {
	if !conf.IsSet(key) {
		return false
	}
	f, err := strconv.ParseFloat(conf.GetString(key), 64)
	if err != nil {
		tracer().Errorf("configuration key %s: %v", key, err)
		return false
	}
	*v = f
	return true
}

func str(conf schuko.Configuration, key string, v *string) {
	if conf.IsSet(key) {
		if s := conf.GetString(key); s != "" {
			*v = s
		}
	}
}
