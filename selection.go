package ltsc

import "sort"

// buildOccurrences expands each candidate into one Occurrence per position.
func buildOccurrences(candidates []Candidate) []Occurrence {
	total := 0
	for _, c := range candidates {
		total += len(c.Positions)
	}
	occurrences := make([]Occurrence, 0, total)
	for _, c := range candidates {
		for _, pos := range c.Positions {
			occurrences = append(occurrences, Occurrence{
				Start:       pos,
				Length:      c.Length,
				Subsequence: c.Subsequence,
				Priority:    c.Priority,
			})
		}
	}
	return occurrences
}

// selectOccurrences runs the configured occurrence-selection strategy
// (component C, §4.C) and applies the mandatory post-filter that re-checks
// the compressibility predicate against the actually-selected per-subsequence
// count.
func selectOccurrences(candidates []Candidate, cfg Config) ([]Occurrence, error) {
	occurrences := buildOccurrences(candidates)

	var selected []Occurrence
	switch cfg.SelectionMode {
	case SelectionGreedy, "":
		selected = selectGreedy(occurrences)
	case SelectionOptimal:
		selected = selectOptimal(occurrences)
	case SelectionBeam:
		selected = selectBeam(occurrences, cfg.BeamWidth)
	default:
		return nil, &ConfigError{Field: "SelectionMode", Reason: "unknown selection mode: " + string(cfg.SelectionMode)}
	}

	return postFilterCompressibility(selected, cfg), nil
}

// selectGreedy sorts occurrences by (-priority, start, length) and sweeps,
// accepting any occurrence that starts at or after the current free point.
func selectGreedy(occurrences []Occurrence) []Occurrence {
	sorted := append([]Occurrence(nil), occurrences...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.Length < b.Length
	})

	selected := make([]Occurrence, 0, len(sorted))
	nextFree := -1
	for _, occ := range sorted {
		if occ.Start >= nextFree {
			selected = append(selected, occ)
			nextFree = occ.end()
		}
	}
	return selected
}

// selectOptimal solves weighted interval scheduling via dynamic programming,
// using per-occurrence weight (length-1+priority) as an approximation of net
// body savings (the one-time header cost is accounted for separately by the
// post-filter).
func selectOptimal(occurrences []Occurrence) []Occurrence {
	if len(occurrences) == 0 {
		return nil
	}
	occs := append([]Occurrence(nil), occurrences...)
	sort.SliceStable(occs, func(i, j int) bool {
		ei, ej := occs[i].end(), occs[j].end()
		if ei != ej {
			return ei < ej
		}
		return occs[i].Start < occs[j].Start
	})

	n := len(occs)
	ends := make([]int, n)
	for i, o := range occs {
		ends[i] = o.end()
	}

	p := make([]int, n)
	for i := range occs {
		lo, hi, idx := 0, i-1, -1
		for lo <= hi {
			mid := (lo + hi) / 2
			if ends[mid] <= occs[i].Start {
				idx = mid
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
		p[i] = idx
	}

	dp := make([]int, n)
	choose := make([]bool, n)
	for i, o := range occs {
		weight := o.Length - 1 + o.Priority
		take := weight
		if p[i] >= 0 {
			take += dp[p[i]]
		}
		skip := 0
		if i > 0 {
			skip = dp[i-1]
		}
		if take > skip {
			dp[i] = take
			choose[i] = true
		} else {
			dp[i] = skip
		}
	}

	var selected []Occurrence
	for i := n - 1; i >= 0; {
		if choose[i] {
			selected = append(selected, occs[i])
			i = p[i]
		} else {
			i--
		}
	}
	for l, r := 0, len(selected)-1; l < r; l, r = l+1, r-1 {
		selected[l], selected[r] = selected[r], selected[l]
	}
	return selected
}

// beamState is one retained partial solution during beam selection.
type beamState struct {
	score   int
	lastEnd int
	picks   []Occurrence
}

// selectBeam keeps at most width states, ranked by score descending and,
// on ties, by smaller lastEnd (more future flexibility).
func selectBeam(occurrences []Occurrence, width int) []Occurrence {
	if len(occurrences) == 0 {
		return nil
	}
	if width < 1 {
		width = 1
	}
	occs := append([]Occurrence(nil), occurrences...)
	sort.SliceStable(occs, func(i, j int) bool {
		if occs[i].Start != occs[j].Start {
			return occs[i].Start < occs[j].Start
		}
		return occs[i].Length < occs[j].Length
	})

	states := []beamState{{score: 0, lastEnd: -1}}
	for _, occ := range occs {
		next := make([]beamState, 0, len(states)*2)
		for _, s := range states {
			next = append(next, s) // skip branch
			if occ.Start >= s.lastEnd {
				picks := append(append([]Occurrence(nil), s.picks...), occ)
				next = append(next, beamState{
					score:   s.score + occ.Length - 1 + occ.Priority,
					lastEnd: occ.end(),
					picks:   picks,
				})
			}
		}
		sort.SliceStable(next, func(i, j int) bool {
			if next[i].score != next[j].score {
				return next[i].score > next[j].score
			}
			return next[i].lastEnd < next[j].lastEnd
		})
		if len(next) > width {
			next = next[:width]
		}
		states = next
	}

	best := states[0]
	for _, s := range states[1:] {
		if s.score > best.score {
			best = s
		}
	}
	return best.picks
}

// postFilterCompressibility groups the selected occurrences by subsequence
// and drops any group whose actually-selected count no longer clears the
// compressibility predicate: selection can reduce a candidate's effective
// multiplicity below break-even.
func postFilterCompressibility(occurrences []Occurrence, cfg Config) []Occurrence {
	groups := make(map[string][]Occurrence, len(occurrences))
	order := make([]string, 0, len(occurrences))
	for _, occ := range occurrences {
		key := subsequenceKey(occ.Subsequence)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], occ)
	}

	extra := cfg.lengthExtraCost()
	filtered := make([]Occurrence, 0, len(occurrences))
	for _, key := range order {
		group := groups[key]
		if isCompressible(group[0].Length, len(group), extra) {
			filtered = append(filtered, group...)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Start < filtered[j].Start })
	return filtered
}
