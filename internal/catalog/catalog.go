package catalog

import (
	"fmt"
	"strings"
)

// Module identifies one assessment module.
type Module string

const (
	Strengths  Module = "strengths"
	Gifts      Module = "gifts"
	Vocational Module = "vocational"
	Freetext   Module = "freetext"
)

// Modules lists every module in the order a user takes them.
var Modules = []Module{Strengths, Gifts, Vocational, Freetext}

// ScoredModules lists the modules that produce numeric domain scores.
var ScoredModules = []Module{Strengths, Gifts, Vocational}

// ParseModule converts a string into a Module, rejecting unknown names.
func ParseModule(s string) (Module, error) {
	m := Module(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("unknown module %q", s)
	}
	return m, nil
}

// Valid reports whether m is one of the four known modules.
func (m Module) Valid() bool {
	switch m {
	case Strengths, Gifts, Vocational, Freetext:
		return true
	}
	return false
}

// Scored reports whether m produces domain scores.
func (m Module) Scored() bool {
	return m == Strengths || m == Gifts || m == Vocational
}

// ModuleInfo is the display metadata for a module.
type ModuleInfo struct {
	Module        Module `json:"module"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	EstimatedTime string `json:"estimatedTime"`
}

var moduleInfo = map[Module]ModuleInfo{
	Strengths: {
		Module:        Strengths,
		Title:         "Created Strengths",
		Description:   "Understand your natural wiring and energy patterns",
		EstimatedTime: "15-20 minutes",
	},
	Gifts: {
		Module:        Gifts,
		Title:         "Spirit-Given Gifts",
		Description:   "Discern evidence of spiritual gifts at work",
		EstimatedTime: "10-15 minutes",
	},
	Vocational: {
		Module:        Vocational,
		Title:         "Vocational Direction",
		Description:   "Notice which kinds of futures draw you",
		EstimatedTime: "8-12 minutes",
	},
	Freetext: {
		Module:        Freetext,
		Title:         "Additional Reflections",
		Description:   "Share what structure cannot capture",
		EstimatedTime: "10-15 minutes",
	},
}

// Info returns the display metadata for m.
func (m Module) Info() ModuleInfo {
	return moduleInfo[m]
}

// Entry is the scoring view of a catalog item: a stable identifier plus the
// question-id prefix that maps answers onto it.
type Entry struct {
	ID     string
	Prefix string
	Name   string
}

// catalogIndex holds the precomputed lookups for one scored module.
type catalogIndex struct {
	entries  []Entry
	byPrefix map[string]Entry
	byID     map[string]Entry
}

func buildIndex(entries []Entry) *catalogIndex {
	idx := &catalogIndex{
		entries:  entries,
		byPrefix: make(map[string]Entry, len(entries)),
		byID:     make(map[string]Entry, len(entries)),
	}
	for _, e := range entries {
		idx.byPrefix[e.Prefix] = e
		idx.byID[e.ID] = e
	}
	return idx
}

var indices map[Module]*catalogIndex

func init() {
	strengthEntries := make([]Entry, len(strengths))
	for i, s := range strengths {
		strengthEntries[i] = Entry{ID: s.ID, Prefix: s.Prefix, Name: s.Name}
	}
	giftEntries := make([]Entry, len(gifts))
	for i, g := range gifts {
		giftEntries[i] = Entry{ID: g.ID, Prefix: g.Prefix, Name: g.Name}
	}
	directionEntries := make([]Entry, len(directions))
	for i, d := range directions {
		directionEntries[i] = Entry{ID: d.ID, Prefix: d.Prefix, Name: d.Name}
	}

	indices = map[Module]*catalogIndex{
		Strengths:  buildIndex(strengthEntries),
		Gifts:      buildIndex(giftEntries),
		Vocational: buildIndex(directionEntries),
	}
}

// Entries returns the catalog entries of a scored module in declaration
// order. The returned slice must not be modified. Freetext has no entries.
func Entries(m Module) []Entry {
	idx, ok := indices[m]
	if !ok {
		return nil
	}
	return idx.entries
}

// Resolve maps a question-id prefix to its catalog entry for module m.
func Resolve(m Module, prefix string) (Entry, bool) {
	idx, ok := indices[m]
	if !ok {
		return Entry{}, false
	}
	e, ok := idx.byPrefix[prefix]
	return e, ok
}

// Lookup finds a catalog entry by its identifier.
func Lookup(m Module, id string) (Entry, bool) {
	idx, ok := indices[m]
	if !ok {
		return Entry{}, false
	}
	e, ok := idx.byID[id]
	return e, ok
}
