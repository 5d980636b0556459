package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/derekparker/trie"
)

// Kind is an animation procedure of the catalog.
type Kind int

// Animation kinds, in menu order. Default is used for unknown identifiers.
const (
	Default Kind = iota
	FlyIn
	Bounce
	Rotate
	Fade
	Scale
	WaveFromLeft
	Scramble
	LetterFlip
	Collision
	MaskedLines
	SplitTextEffect
	Pan
	Slide
	Drift
	Pop
	Tumble
	Stomp
	Roll
	Typewriter
	CharReveal
	WordReveal
	Pulse
	Breathe
	Jitter
	Shake
	Flicker
	Echo
	FadeOut
	SlideOut
	Shrink
	MaskWipeOut
	NeonGlow
	kindCount
)

var kindIDs = [kindCount]string{
	"Default", "FlyIn", "Bounce", "Rotate", "Fade", "Scale", "WaveFromLeft", "Scramble",
	"LetterFlip", "Collision", "MaskedLines", "SplitTextEffect", "Pan", "Slide", "Drift",
	"Pop", "Tumble", "Stomp", "Roll", "Typewriter", "CharReveal", "WordReveal", "Pulse",
	"Breathe", "Jitter", "Shake", "Flicker", "Echo", "FadeOut", "SlideOut", "Shrink",
	"MaskWipeOut", "NeonGlow",
}

var kindLabels = map[Kind]string{
	WaveFromLeft:    "Wave",
	LetterFlip:      "Letter Flip",
	MaskedLines:     "Masked Lines",
	SplitTextEffect: "Revert",
	FlyIn:           "Fly In",
	CharReveal:      "Character Reveal",
	WordReveal:      "Word Reveal",
	FadeOut:         "Fade Out",
	SlideOut:        "Slide Out",
	MaskWipeOut:     "Mask Wipe Out",
	NeonGlow:        "Neon Glow",
}

// String returns the identifier of a kind.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindIDs[k]
}

// Label returns a human readable name of a kind, as shown in menus.
func (k Kind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return k.String()
}

// Group classifies kinds by their effect.
type Group int

// Groups of kinds.
const (
	Entrance Group = iota
	GroupedEntrance
	Emphasis
	Stochastic
	CharMutating
	Exit
	Ripple
	Fallback
)

var groupNames = [...]string{"entrance", "grouped entrance", "emphasis", "stochastic",
	"char mutating", "exit", "ripple", "fallback"}

func (g Group) String() string {
	if g < 0 || int(g) >= len(groupNames) {
		return fmt.Sprintf("Group(%d)", int(g))
	}
	return groupNames[g]
}

// Group returns the group a kind belongs to.
func (k Kind) Group() Group {
	switch k {
	case MaskedLines, WordReveal:
		return GroupedEntrance
	case Breathe, Pulse, NeonGlow, WaveFromLeft, LetterFlip:
		return Emphasis
	case Jitter, Shake, Flicker:
		return Stochastic
	case Scramble, Typewriter:
		return CharMutating
	case FadeOut, SlideOut, Shrink, MaskWipeOut:
		return Exit
	case Echo:
		return Ripple
	case Default:
		return Fallback
	}
	return Entrance
}

// Parse looks up a kind by its identifier. Identifiers are case sensitive.
func Parse(id string) (Kind, bool) {
	for k := Default + 1; k < kindCount; k++ {
		if kindIDs[k] == id {
			return k, true
		}
	}
	return Default, false
}

// Names returns the identifiers of all selectable kinds in menu order.
// Default is not selectable.
func Names() []string {
	names := make([]string, 0, kindCount-1)
	for k := Default + 1; k < kindCount; k++ {
		names = append(names, kindIDs[k])
	}
	return names
}

// Kinds returns all selectable kinds in menu order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := Default + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// --- Prefix search ---------------------------------------------------------

func newNameTrie() *trie.Trie {
	t := trie.New()
	for k := Default + 1; k < kindCount; k++ {
		t.Add(strings.ToLower(kindIDs[k]), k)
	}
	return t
}

func suggest(t *trie.Trie, prefix string) []string {
	keys := t.PrefixSearch(strings.ToLower(prefix))
	kinds := make([]Kind, 0, len(keys))
	for _, key := range keys {
		if node, ok := t.Find(key); ok {
			kinds = append(kinds, node.Meta().(Kind))
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
