package resources

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/kinetype/core"
	"github.com/npillmayer/kinetype/core/font"
	"github.com/npillmayer/kinetype/core/font/fontregistry"
	"github.com/npillmayer/schuko"
	"github.com/pkg/errors"
)

// DefaultFontNames are substituted whenever the host does not deliver a
// usable font list.
var DefaultFontNames = []string{"Arial", "Times New Roman", "Courier New"}

// FontListPromise is returned by ListFonts.
type FontListPromise interface {
	Fonts() ([]font.Descriptor, error)
	Await(ctx context.Context) ([]font.Descriptor, error)
}

type fontList struct {
	await func(ctx context.Context) ([]font.Descriptor, error)
}

func (l fontList) Fonts() ([]font.Descriptor, error) {
	return l.await(context.Background())
}

func (l fontList) Await(ctx context.Context) ([]font.Descriptor, error) {
	return l.await(ctx)
}

// ListFonts enumerates the fonts installed on the host, asynchronously.
//
// If configuration key 'kinetype.fontconfig' points to an fc-list binary,
// its output is parsed. Otherwise the platform's font directories are
// scanned and families are guessed from file names.
func ListFonts(conf schuko.Configuration) FontListPromise {
	var fcpath string
	if conf != nil {
		fcpath = conf.GetString("kinetype.fontconfig")
	}
	return listWith(func() ([]font.Descriptor, error) {
		if fcpath != "" {
			descs, err := runFontConfig(fcpath)
			if err == nil {
				return descs, nil
			}
			core.UserError(err)
		}
		return DescriptorsFromPaths(findfont.List()), nil
	})
}

func listWith(enumerate func() ([]font.Descriptor, error)) FontListPromise {
	type listPlusErr struct {
		descs []font.Descriptor
		err   error
	}
	ch := make(chan listPlusErr, 1)
	go func() {
		defer close(ch)
		descs, err := enumerate()
		ch <- listPlusErr{descs, err}
	}()
	return fontList{
		await: func(ctx context.Context) ([]font.Descriptor, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.descs, r.err
			}
		},
	}
}

// FontNames awaits a font list and returns the distinct, unquoted family
// names, sorted. On error or for an empty list, DefaultFontNames is returned.
func FontNames(ctx context.Context, promise FontListPromise) []string {
	descs, err := promise.Await(ctx)
	if err != nil {
		tracer().Errorf("cannot list host fonts: %v", err)
		return append([]string(nil), DefaultFontNames...)
	}
	seen := make(map[string]bool)
	var names []string
	for _, d := range descs {
		name := fontregistry.Unquote(d.Family)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	if len(names) == 0 {
		tracer().Infof("host delivered no fonts, using defaults")
		return append([]string(nil), DefaultFontNames...)
	}
	sort.Strings(names)
	return names
}

// DescriptorsFromPaths groups font files into families. The family is
// guessed from the file name: "DejaVuSans-Bold.ttf" belongs to family
// "DejaVuSans" with variant "bold".
func DescriptorsFromPaths(paths []string) []font.Descriptor {
	var descs []font.Descriptor
	for _, p := range paths {
		base := filepath.Base(p)
		base = strings.TrimSuffix(base, filepath.Ext(base))
		family, variant := base, "regular"
		if dash := strings.LastIndex(base, "-"); dash > 0 {
			family, variant = base[:dash], strings.ToLower(base[dash+1:])
		}
		family = strings.ReplaceAll(family, "_", " ")
		descs = append(descs, font.Descriptor{
			Family:   family,
			Path:     p,
			Variants: []string{variant},
		})
	}
	return descs
}

func runFontConfig(fcpath string) ([]font.Descriptor, error) {
	if !filepath.IsAbs(fcpath) {
		return nil, core.Error(core.EINVALID,
			"fontconfig binary fc-list must point to absolute path: %s", fcpath)
	}
	var out bytes.Buffer
	fccmd := exec.Command(fcpath)
	fccmd.Stdout = &out
	if err := fccmd.Run(); err != nil {
		return nil, core.WrapError(errors.Wrap(err, "fc-list"), core.EINVALID,
			"fontconfig binary cannot be run: %s", fcpath)
	}
	return ParseFontConfigList(&out)
}

// ParseFontConfigList parses the output of fontconfig's fc-list, i.e. lines
// of the form
//
//	/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf: DejaVu Sans:style=Bold
//
// Font collections (TTC) are skipped.
func ParseFontConfigList(r io.Reader) ([]font.Descriptor, error) {
	var descs []font.Descriptor
	scanner := bufio.NewScanner(r)
	ttc := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) < 2 {
			continue
		}
		fontpath := strings.TrimSpace(fields[0])
		if strings.HasSuffix(strings.ToLower(fontpath), ".ttc") {
			ttc++
			continue
		}
		family := strings.TrimSpace(fields[1])
		if comma := strings.Index(family, ","); comma >= 0 {
			family = family[:comma] // fc-list lists localized aliases
		}
		family = strings.TrimPrefix(family, ".")
		desc := font.Descriptor{Family: family, Path: fontpath}
		if len(fields) > 2 {
			desc.Variants = []string{fontConfigVariant(fields[2])}
		}
		descs = append(descs, desc)
	}
	if err := scanner.Err(); err != nil {
		return descs, errors.Wrap(err, "reading fontconfig font list")
	}
	if ttc > 0 {
		tracer().Infof("skipping %d platform fonts: TTC not supported", ttc)
	}
	return descs, nil
}

func fontConfigVariant(style string) string {
	style = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(style), "style="))
	switch {
	case strings.Contains(style, "regular"), strings.Contains(style, "book"),
		strings.Contains(style, "text"):
		return "regular"
	case strings.Contains(style, "italic"), strings.Contains(style, "oblique"):
		return "italic"
	case strings.Contains(style, "light"):
		return "light"
	case strings.Contains(style, "bold"), strings.Contains(style, "black"):
		return "bold"
	}
	return style
}
