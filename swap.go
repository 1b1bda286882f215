package ltsc

import (
	"sort"

	"github.com/tidwall/btree"
)

// replacement records that a body position is consumed by length tokens and
// rewritten to meta.
type replacement struct {
	length int
	meta   Token
}

// swapResult bundles the outputs of performSwap (component E, §4.E).
type swapResult struct {
	replacements map[int]replacement
	dictionary   *DictionaryMap
	metaTokens   []Token
}

// occupancy tracks the half-open windows already claimed by an earlier
// candidate in swap's iteration order. It is backed by a btree.Map keyed by
// interval end (exclusive), mirroring the disjoint-interval map technique
// used elsewhere in the retrieved corpus for overlap queries over spans;
// since every stored interval is pairwise disjoint by construction, the
// smallest end greater than a query's start is the only candidate that can
// possibly overlap it.
type occupancy struct {
	tree btree.Map[int, int] // key: end (exclusive), value: start
}

func (o *occupancy) overlaps(start, end int) bool {
	iter := o.tree.Iter()
	if !iter.Seek(start + 1) {
		return false
	}
	return iter.Value() < end
}

func (o *occupancy) occupy(start, end int) {
	o.tree.Set(end, start)
}

// performSwap materialises the rewrite: for each candidate in iteration
// order, it filters positions down to those whose window is still entirely
// unoccupied, re-checks the compressibility predicate on the survivor count,
// and — if it still clears — allocates a meta-token, records the dictionary
// entry, and occupies the surviving windows.
func performSwap(candidates []Candidate, cfg Config, working TokenSeq) swapResult {
	occ := &occupancy{}
	replacements := make(map[int]replacement)
	dict := NewDictionaryMap()
	var metaTokens []Token

	pool := newMetaTokenPool(cfg, working)
	extra := cfg.lengthExtraCost()

	for _, c := range candidates {
		available := make([]int, 0, len(c.Positions))
		for _, pos := range c.Positions {
			end := pos + c.Length
			if !occ.overlaps(pos, end) {
				available = append(available, pos)
			}
		}
		if !isCompressible(c.Length, len(available), extra) {
			continue
		}

		meta, ok := pool.pop()
		if !ok {
			break
		}

		dict.Set(meta, append(TokenSeq(nil), c.Subsequence...))
		metaTokens = append(metaTokens, meta)
		for _, pos := range available {
			occ.occupy(pos, pos+c.Length)
			replacements[pos] = replacement{length: c.Length, meta: meta}
		}
	}

	return swapResult{replacements: replacements, dictionary: dict, metaTokens: metaTokens}
}

// regroupCandidates rebuilds an ordered candidate list from selection's
// chosen occurrences, grouping by subsequence in first-encountered order.
// Swap needs candidates (one subsequence, many positions) rather than the
// flat occurrence list selection produces; regrouping preserves the order
// selection effectively imposed (§4.E: "selection effectively orders them").
func regroupCandidates(selected []Occurrence) []Candidate {
	order := make([]string, 0, len(selected))
	byKey := make(map[string]*Candidate, len(selected))

	for _, occ := range selected {
		key := subsequenceKey(occ.Subsequence)
		c, ok := byKey[key]
		if !ok {
			c = &Candidate{Subsequence: occ.Subsequence, Length: occ.Length, Priority: occ.Priority}
			byKey[key] = c
			order = append(order, key)
		}
		c.Positions = append(c.Positions, occ.Start)
	}

	out := make([]Candidate, 0, len(order))
	for _, key := range order {
		c := byKey[key]
		sort.Ints(c.Positions)
		out = append(out, *c)
	}
	return out
}
