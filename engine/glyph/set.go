package glyph

import (
	"sort"

	"github.com/npillmayer/kinetype/core"
)

// WordGap is the horizontal distance between neighbouring glyphs above which
// a new word starts.
const WordGap = 30.0

// Set is the arena of glyphs produced by one layout pass. Timelines address
// glyphs by index into a set.
//
// Each set carries a generation number. Once a set has been retired (because
// a new layout pass replaced it) all writes to it are rejected with an error
// of code core.ESTALE.
//
// Sets are not safe for concurrent use; clients serialize access.
type Set struct {
	glyphs     []Glyph
	generation uint64
	retired    bool
}

// NewSet creates a set for generation gen, taking ownership of glyphs.
func NewSet(glyphs []Glyph, gen uint64) *Set {
	return &Set{glyphs: glyphs, generation: gen}
}

// Len returns the number of glyphs. A nil set is empty.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.glyphs)
}

// Generation returns the generation number of the set.
func (s *Set) Generation() uint64 {
	return s.generation
}

// Retire marks the set as replaced. Retiring is final.
func (s *Set) Retire() {
	s.retired = true
}

// Retired is true if the set has been replaced by a newer generation.
func (s *Set) Retired() bool {
	return s.retired
}

// At returns a copy of glyph i.
func (s *Set) At(i int) Glyph {
	return s.glyphs[i]
}

// Glyphs returns a copy of all glyphs, shadows included.
func (s *Set) Glyphs() []Glyph {
	if s == nil {
		return nil
	}
	c := make([]Glyph, len(s.glyphs))
	copy(c, s.glyphs)
	for i := range c {
		if c[i].Shadow != nil {
			sh := *c[i].Shadow
			c[i].Shadow = &sh
		}
	}
	return c
}

// Each calls f for every glyph in layout order. f must not keep the pointer.
func (s *Set) Each(f func(i int, g *Glyph)) {
	if s == nil {
		return
	}
	for i := range s.glyphs {
		f(i, &s.glyphs[i])
	}
}

// Update applies f to glyph i. f may change the live pose only; changes to
// the rest pose (BaseChar and the Base… fields) are discarded.
func (s *Set) Update(i int, f func(g *Glyph)) error {
	if s.retired {
		return core.Error(core.ESTALE, "glyph generation %d has been retired", s.generation)
	}
	if i < 0 || i >= len(s.glyphs) {
		return core.Error(core.EINVALID, "glyph index %d out of range [0…%d)", i, len(s.glyphs))
	}
	g := &s.glyphs[i]
	rest := g.restPose()
	f(g)
	g.setRestPose(rest)
	return nil
}

// Put writes a live field of glyph i.
func (s *Set) Put(i int, f Field, v float64) error {
	return s.Update(i, func(g *Glyph) { g.Put(f, v) })
}

// SetChar changes the displayed character of glyph i.
func (s *Set) SetChar(i int, ch string) error {
	return s.Update(i, func(g *Glyph) { g.Char = ch })
}

// ResetLive resets the live pose of every glyph to identity.
// It does nothing for a retired set.
func (s *Set) ResetLive() {
	if s == nil || s.retired {
		return
	}
	for i := range s.glyphs {
		s.glyphs[i].ResetLive()
	}
}

// Lines groups glyph indices by BaseY, top to bottom. Within a line glyphs
// keep layout order.
func (s *Set) Lines() [][]int {
	if s.Len() == 0 {
		return nil
	}
	byY := make(map[float64][]int)
	var ys []float64
	for i, g := range s.glyphs {
		if _, ok := byY[g.BaseY]; !ok {
			ys = append(ys, g.BaseY)
		}
		byY[g.BaseY] = append(byY[g.BaseY], i)
	}
	sort.Float64s(ys)
	lines := make([][]int, len(ys))
	for k, y := range ys {
		lines[k] = byY[y]
	}
	return lines
}

// Words partitions glyph indices into words. A new word starts wherever
// the gap between the rest x-positions of a glyph and its predecessor
// exceeds WordGap.
// A line break yields a negative gap and therefore does not start a word.
func (s *Set) Words() [][]int {
	if s.Len() == 0 {
		return nil
	}
	xs := make([]float64, len(s.glyphs))
	for i, g := range s.glyphs {
		xs[i] = g.BaseX
	}
	return PartitionWords(xs)
}

// PartitionWords splits a sequence of x-positions into runs of indices,
// cutting where a gap exceeds WordGap.
func PartitionWords(xs []float64) [][]int {
	if len(xs) == 0 {
		return nil
	}
	words := [][]int{{0}}
	for i := 1; i < len(xs); i++ {
		if xs[i]-xs[i-1] > WordGap {
			words = append(words, []int{i})
			continue
		}
		w := len(words) - 1
		words[w] = append(words[w], i)
	}
	return words
}
