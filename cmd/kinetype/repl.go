package main

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/npillmayer/kinetype/backend/gfx/ggsurface"
	"github.com/npillmayer/kinetype/core"
	"github.com/npillmayer/kinetype/core/locate/resources"
	"github.com/npillmayer/kinetype/engine/animator"
	"github.com/npillmayer/kinetype/engine/motion/catalog"
	"github.com/npillmayer/schuko"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	anim    *animator.Animator
	texture *ggsurface.FrameTexture
	conf    schuko.Configuration
	text    string // pending settings, effective with 'apply'
	kind    string
	family  string
}

// NewIntp creates an interpreter for an animator drawing to texture.
func NewIntp(anim *animator.Animator, texture *ggsurface.FrameTexture, conf schuko.Configuration) *Intp {
	text, kind, family := anim.Settings()
	return &Intp{
		anim:    anim,
		texture: texture,
		conf:    conf,
		text:    text,
		kind:    kind,
		family:  family,
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			tracer().Debugf("%v", err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Command is a single line of user input.
type Command struct {
	code int
	args []string
}

const (
	QUIT int = iota
	HELP
	TEXT
	ANIM
	FONT
	APPLY
	FONTS
	LIST
	PLAY
	STATE
)

var commandCodes = map[string]int{
	"quit":  QUIT,
	"exit":  QUIT,
	"help":  HELP,
	"text":  TEXT,
	"anim":  ANIM,
	"font":  FONT,
	"apply": APPLY,
	"fonts": FONTS,
	"list":  LIST,
	"play":  PLAY,
	"state": STATE,
}

func parseCommand(line string) (*Command, error) {
	line = strings.TrimSpace(line)
	word, rest, _ := strings.Cut(line, " ")
	code, ok := commandCodes[strings.ToLower(word)]
	if !ok {
		return nil, fmt.Errorf("unknown command %q, try 'help'", word)
	}
	cmd := &Command{code: code}
	rest = strings.TrimSpace(rest)
	switch code {
	case TEXT, FONT: // argument may contain blanks
		if rest == "" {
			return nil, fmt.Errorf("command %q needs an argument", word)
		}
		cmd.args = []string{rest}
	case ANIM:
		if rest == "" {
			return nil, fmt.Errorf("command %q needs an argument", word)
		}
		cmd.args = strings.Fields(rest)
	default:
		cmd.args = strings.Fields(rest)
	}
	tracer().Debugf("command %s %v", word, cmd.args)
	return cmd, nil
}

// unescape replaces the escape sequence '\n' by a newline.
func unescape(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

func (intp *Intp) execute(cmd *Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		topic := ""
		if len(cmd.args) > 0 {
			topic = cmd.args[0]
		}
		help(topic)
	case TEXT:
		intp.text = unescape(cmd.args[0])
		return false, intp.apply()
	case ANIM:
		id := cmd.args[0]
		if _, ok := catalog.Parse(id); !ok {
			suggestions := intp.anim.Catalog().Suggest(id)
			for _, s := range suggestions {
				if strings.EqualFold(s, id) {
					suggestions = []string{s}
					break
				}
			}
			if len(suggestions) != 1 {
				return false, core.Error(core.EINVALID, "unknown animation %q, candidates are %v",
					id, suggestions)
			}
			id = suggestions[0]
		}
		intp.kind = id
		return false, intp.apply()
	case FONT:
		intp.family = cmd.args[0]
		return false, intp.apply()
	case APPLY:
		return false, intp.apply()
	case FONTS:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		names := resources.FontNames(ctx, resources.ListFonts(intp.conf))
		pterm.Info.Printf("%d font families\n", len(names))
		for _, name := range names {
			fmt.Println(name)
		}
		if len(names) > 0 && !slices.Contains(names, intp.family) {
			intp.family = names[0]
			pterm.Info.Printf("font %q selected, 'apply' to use it\n", intp.family)
		}
	case LIST:
		prefix := ""
		if len(cmd.args) > 0 {
			prefix = cmd.args[0]
		}
		intp.list(prefix)
	case PLAY:
		return false, intp.play(cmd.args)
	case STATE:
		intp.state()
	}
	return false, nil
}

// apply starts the pending settings. A missing font is reported, but does
// not stop the animation.
func (intp *Intp) apply() error {
	err := intp.anim.ApplyAnimation(intp.text, intp.kind, intp.family)
	if core.Is(err, core.EMISSING) {
		pterm.Warning.Printf("font %q not available, using fallback font\n", intp.family)
		return nil
	}
	return err
}

func (intp *Intp) list(prefix string) {
	var ids []string
	if prefix == "" {
		ids = catalog.Names()
	} else {
		ids = intp.anim.Catalog().Suggest(prefix)
	}
	data := pterm.TableData{{"Animation", "Group", "Menu"}}
	for _, id := range ids {
		k, _ := catalog.Parse(id)
		data = append(data, []string{id, k.Group().String(), k.Label()})
	}
	if len(data) == 1 {
		pterm.Info.Printf("no animation starts with %q\n", prefix)
		return
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// play advances the animation for a number of seconds at the configured frame
// rate, independent of wall clock time. If a directory is given, every frame
// with an update is written to it.
func (intp *Intp) play(args []string) error {
	if len(args) == 0 {
		return core.Error(core.EINVALID, "usage: play <seconds> [dir]")
	}
	secs, err := strconv.ParseFloat(args[0], 64)
	if err != nil || secs <= 0 {
		return core.Error(core.EINVALID, "not a duration: %q", args[0])
	}
	dir := ""
	if len(args) > 1 {
		dir = args[1]
	}
	if err := intp.texture.SetDir(dir); err != nil {
		return err
	}
	fps := intp.anim.Config().FPS
	ticks := int(secs * float64(fps))
	written := intp.texture.Frames()
	for i := 0; i < ticks; i++ {
		intp.anim.Tick(1 / float64(fps))
		if _, err := intp.texture.Flush(); err != nil {
			return err
		}
	}
	pterm.Info.Printf("played %d ticks, %d frames written, %d timelines active\n",
		ticks, intp.texture.Frames()-written, intp.anim.Active())
	return nil
}

func (intp *Intp) state() {
	data := pterm.TableData{{"#", "Char", "x", "y", "Scale", "Rot", "Opacity"}}
	for i, g := range intp.anim.Glyphs() {
		data = append(data, []string{
			strconv.Itoa(i), g.Char,
			ff(g.X), ff(g.Y), ff(g.Scale), ff(g.Rot), ff(g.Opacity),
		})
	}
	pterm.Info.Printf("generation %d, %s\n", intp.anim.Generation(), intp.anim.Kind())
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func ff(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func help(topic string) {
	switch topic {
	case "anim":
		pterm.Info.Println("anim <id>: select and start an animation")
		pterm.Println("   Unambiguous prefixes are completed, e.g. 'anim wave'.")
		pterm.Println("   'list' shows the animations available.")
	case "play":
		pterm.Info.Println("play <seconds> [dir]: advance the animation")
		pterm.Println("   Frames are computed at the configured frame rate.")
		pterm.Println("   If dir is given, frames are written as PNG files.")
	default:
		pterm.Info.Println("Commands:")
		pterm.Println("   text <string>          set the text; '\\n' breaks lines")
		pterm.Println("   anim <id>              select an animation")
		pterm.Println("   font <name>            select a font family")
		pterm.Println("   apply                  restart the current animation")
		pterm.Println("   fonts                  list the font families of the host")
		pterm.Println("   list [prefix]          list animations")
		pterm.Println("   play <seconds> [dir]   advance the animation, writing frames")
		pterm.Println("   state                  print the current glyphs")
		pterm.Println("   help [topic]           this message, or help on anim|play")
		pterm.Println("   quit                   leave kinetype")
	}
}
