package resources

import (
	"context"
	"fmt"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/kinetype/core"
	"github.com/npillmayer/kinetype/core/font"
	"github.com/npillmayer/kinetype/core/font/fontregistry"
	"github.com/pkg/errors"
)

// NotFound returns an application error for a missing font.
func NotFound(name string, cause error) error {
	if cause == nil {
		cause = fmt.Errorf("resource missing: %v", name)
	}
	return core.WrapError(cause, core.EMISSING, "font not found: %s, using fallback font", name)
}

// --- Fonts -----------------------------------------------------------------

type fontPlusErr struct {
	font *font.TypeCase
	err  error
}

// TypeCasePromise is returned by ResolveTypeCase. Calls to TypeCase or Await
// block until resolution has completed.
type TypeCasePromise interface {
	TypeCase() (*font.TypeCase, error)
	Await(ctx context.Context) (*font.TypeCase, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*font.TypeCase, error)
}

func (loader fontLoader) TypeCase() (*font.TypeCase, error) {
	return loader.await(context.Background())
}

func (loader fontLoader) Await(ctx context.Context) (*font.TypeCase, error) {
	return loader.await(ctx)
}

// ResolveTypeCase resolves a typecase for a font family at a given size.
// Families already loaded are taken from the global font registry. Other
// families are searched for as system fonts and stored in the registry.
//
// If the family cannot be found, the promise delivers a typecase of the
// fallback font together with an error of code core.EMISSING. The typecase
// delivered is non-nil unless the context is cancelled.
func ResolveTypeCase(name string, size float64) TypeCasePromise {
	return resolveWith(fontregistry.GlobalRegistry(), findfont.Find, name, size)
}

type finderFunc func(fileName string) (string, error)

func resolveWith(reg *fontregistry.Registry, find finderFunc, name string, size float64) TypeCasePromise {
	name = fontregistry.Unquote(name)
	ch := make(chan fontPlusErr, 1)
	go func(ch chan<- fontPlusErr) {
		defer close(ch)
		result := fontPlusErr{}
		if name != "" && !reg.Contains(name) {
			if f, err := loadSystemFont(find, name); err == nil {
				f.Fontname = name
				reg.StoreFont(name, f)
			} else {
				tracer().Infof("%v", err)
				result.font, _ = reg.TypeCase(name, size)
				result.err = NotFound(name, err)
				ch <- result
				return
			}
		}
		result.font, result.err = reg.TypeCase(name, size)
		ch <- result
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*font.TypeCase, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}

// loadSystemFont searches the host's font directories for a family. Font
// files rarely carry blanks, so "Times New Roman" is also searched for as
// "Times_New_Roman" and "TimesNewRoman".
func loadSystemFont(find finderFunc, name string) (*font.ScalableFont, error) {
	candidates := []string{name}
	if strings.Contains(name, " ") {
		candidates = append(candidates,
			strings.ReplaceAll(name, " ", "_"),
			strings.ReplaceAll(name, " ", ""))
	}
	var lastErr error
	for _, c := range candidates {
		fpath, err := find(c)
		if err != nil || fpath == "" {
			lastErr = err
			continue
		}
		tracer().Debugf("%s is a system font at %s", name, fpath)
		f, err := font.LoadOpenTypeFont(fpath)
		if err != nil {
			return nil, errors.Wrapf(err, "system font %s unreadable", fpath)
		}
		return f, nil
	}
	if lastErr == nil {
		lastErr = errors.New("no font file")
	}
	return nil, errors.Wrapf(lastErr, "font %q not found on host", name)
}
