/*
Command kinetype is an interactive shell for kinetic text animations.

It lays out a text, animates it with one of the animations of the catalog
and renders the frames offscreen. Frames may be written to a directory as
numbered PNG files:

	kinetype > text Hello\nWorld
	kinetype > anim WaveFromLeft
	kinetype > play 2 /tmp/frames

Settings are read from a NestedText configuration file 'kinetype.nt' at
the usual configuration locations, and may be overridden by flags.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/knadh/koanf"
	"github.com/npillmayer/kinetype/backend/gfx/ggsurface"
	"github.com/npillmayer/kinetype/engine/animator"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'kinetype.cli'
func tracer() tracing.Trace {
	return tracing.Select("kinetype.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tconf := traceConfig()
	if err := trace2go.ConfigureRoot(tconf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	width := flag.Int("width", 800, "Width of the drawing surface")
	height := flag.Int("height", 400, "Height of the drawing surface")
	fontname := flag.String("font", "", "Font family to use")
	anim := flag.String("anim", "", "Animation to start with")
	text := flag.String("text", "", "Text to animate")
	flag.Parse()
	pterm.Info.Println("Welcome to kinetype") // colored welcome message
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)

	// application configuration
	conf := koanfadapter.New(koanf.New("."), "kinetype", []string{"nt"})
	conf.InitDefaults()
	override(conf, "kinetype.font", *fontname)
	override(conf, "kinetype.animation", *anim)
	override(conf, "kinetype.text", *text)
	settings := animator.ConfigFrom(conf)

	// offscreen surface and animator
	surface, err := ggsurface.New(*width, *height, settings.Background)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	defer surface.Close()
	texture := ggsurface.NewFrameTexture(surface, "")
	intp := NewIntp(animator.New(surface, texture, settings), texture, conf)

	// set up REPL
	repl, err := readline.New("kinetype > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	if err := intp.anim.Replay(); err != nil {
		pterm.Error.Println(err.Error())
	}
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                             // go into interactive mode
}

// traceLevels holds the initial trace level of every tracer key in use.
var traceLevels = map[string]string{
	"kinetype.cli":       "Info",
	"kinetype.animator":  "Error",
	"kinetype.motion":    "Error",
	"kinetype.render":    "Error",
	"kinetype.layout":    "Error",
	"kinetype.font":      "Error",
	"kinetype.resources": "Error",
}

func traceConfig() testconfig.Conf {
	conf := testconfig.Conf{"tracing.adapter": "go"}
	for key, level := range traceLevels {
		conf["trace."+key] = level
	}
	return conf
}

func override(conf *koanfadapter.KConf, key, value string) {
	if value != "" {
		conf.Set(key, value)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
