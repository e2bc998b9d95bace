// Package termdict implements the read-only term dictionary (§3.8, §4.8):
// a minimal-perfect-hash lookup from term text to a dense term id, plus a
// prefix index for enumerating the terms that share a leading prefix.
package termdict

import (
	"errors"
	"sort"

	boomphf "github.com/dgryski/go-boomphf"
	iradix "github.com/hashicorp/go-immutable-radix"
	"github.com/zeebo/xxh3"
)

// TermID is a dense, zero-based identifier assigned at Build time.
type TermID = uint32

var ErrDuplicateTerm = errors.New("termdict: duplicate term")

// gamma is go-boomphf's load factor; 2.0 is the library's own
// middle-ground default between table size and build/query speed.
const gamma = 2.0

// Dictionary maps term text to TermID via a minimal perfect hash, and
// indexes the same terms in a radix tree for prefix enumeration.
type Dictionary struct {
	terms []string // index == TermID, sorted
	mph   *boomphf.H
	slots []TermID
	radix *iradix.Tree
}

// Build constructs a Dictionary from an arbitrary (not necessarily
// sorted, not necessarily unique) set of term strings observed during
// indexing.
func Build(terms []string) (*Dictionary, error) {
	uniq := make([]string, len(terms))
	copy(uniq, terms)
	sort.Strings(uniq)
	uniq = dedupe(uniq)

	keys := make([]uint64, len(uniq))
	for i, t := range uniq {
		keys[i] = xxh3.HashString(t)
	}

	d := &Dictionary{terms: uniq}
	if len(uniq) > 0 {
		d.mph = boomphf.New(gamma, keys)
		d.slots = make([]TermID, len(uniq)+1)
		for i, k := range keys {
			slot := d.mph.Query(k)
			d.slots[slot] = TermID(i)
		}
	}

	tree := iradix.New()
	for i, t := range uniq {
		tree, _, _ = tree.Insert([]byte(t), TermID(i))
	}
	d.radix = tree
	return d, nil
}

func dedupe(sorted []string) []string {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, s := range sorted[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}

// Lookup returns the dense id for term, or false if term was never
// observed at Build time. The minimal perfect hash only guarantees
// collision-free placement for the *trained* key set, so every query
// re-verifies the candidate slot's stored term text.
func (d *Dictionary) Lookup(term string) (TermID, bool) {
	if d.mph == nil {
		return 0, false
	}
	key := xxh3.HashString(term)
	slot := d.mph.Query(key)
	if slot < 1 || int(slot) > len(d.terms) {
		return 0, false
	}
	id := d.slots[slot]
	if d.terms[id] != term {
		return 0, false
	}
	return id, true
}

// PrefixIDs returns every TermID whose term text starts with prefix, in
// sorted term order.
func (d *Dictionary) PrefixIDs(prefix string) []TermID {
	var out []TermID
	d.radix.Root().WalkPrefix([]byte(prefix), func(k []byte, v interface{}) bool {
		out = append(out, v.(TermID))
		return false
	})
	return out
}

// Term returns the term text for id.
func (d *Dictionary) Term(id TermID) (string, bool) {
	if int(id) >= len(d.terms) {
		return "", false
	}
	return d.terms[id], true
}

// Len returns the number of distinct terms in the dictionary.
func (d *Dictionary) Len() int { return len(d.terms) }
