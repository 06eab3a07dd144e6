package script

import (
	"sort"

	"github.com/hupe1980/dialogmesh/core"
)

// Options configures a Bank.
type Options struct {
	Catalog []core.QuestionScript
}

// Bank is the static scripted-question catalog, loaded once at construction
// and immutable afterwards. Safe for concurrent use.
type Bank struct {
	catalog []core.QuestionScript
	byID    map[string]core.QuestionScript
}

// NewBank builds a Bank from the default catalog or an injected one. Entries
// with a duplicate ID keep the first occurrence.
func NewBank(optFns ...func(o *Options)) *Bank {
	opts := Options{Catalog: DefaultCatalog()}
	for _, fn := range optFns {
		fn(&opts)
	}

	b := &Bank{byID: make(map[string]core.QuestionScript, len(opts.Catalog))}
	for _, q := range opts.Catalog {
		if _, exists := b.byID[q.ID]; exists {
			continue
		}
		b.byID[q.ID] = q
		b.catalog = append(b.catalog, q)
	}
	return b
}

// Get returns the script with the given ID, if present.
func (b *Bank) Get(id string) (core.QuestionScript, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// Query returns all scripts for the stage that apply to the audience (either
// tagged with it directly or with the wildcard), sorted by Order ascending.
func (b *Bank) Query(stage core.Stage, audience core.Audience) []core.QuestionScript {
	var result []core.QuestionScript
	for _, q := range b.catalog {
		if q.Stage == stage && q.AppliesTo(audience) {
			result = append(result, q)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Order < result[j].Order })
	return result
}

// Available returns the Query result minus any script already asked.
func (b *Bank) Available(stage core.Stage, audience core.Audience, asked []string) []core.QuestionScript {
	askedSet := make(map[string]bool, len(asked))
	for _, id := range asked {
		askedSet[id] = true
	}
	var result []core.QuestionScript
	for _, q := range b.Query(stage, audience) {
		if !askedSet[q.ID] {
			result = append(result, q)
		}
	}
	return result
}

// Size returns the number of scripts in the catalog.
func (b *Bank) Size() int { return len(b.catalog) }
