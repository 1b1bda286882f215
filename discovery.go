package ltsc

import (
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// discoverCandidates enumerates every contiguous subsequence that occurs at
// least twice in tokens, with a non-overlapping occurrence count satisfying
// the compressibility predicate (component B, §4.B). Lengths are processed
// from cfg.MaxSubsequenceLength down to 2; within a length, candidates are
// emitted in first-encountered order.
func discoverCandidates(tokens TokenSeq, cfg Config) []Candidate {
	n := len(tokens)
	maxLen := cfg.MaxSubsequenceLength
	if maxLen > n {
		maxLen = n
	}
	if maxLen < 2 {
		return nil
	}

	lengths := make([]int, 0, maxLen-1)
	for l := maxLen; l >= 2; l-- {
		lengths = append(lengths, l)
	}

	var perLength [][]Candidate
	if cfg.ParallelDiscovery {
		perLength = discoverParallel(tokens, lengths, cfg)
	} else {
		perLength = make([][]Candidate, len(lengths))
		for i, l := range lengths {
			perLength[i] = discoverForLength(tokens, l, cfg)
		}
	}

	total := 0
	for _, cs := range perLength {
		total += len(cs)
	}
	result := make([]Candidate, 0, total)
	for _, cs := range perLength {
		result = append(result, cs...)
	}
	return result
}

// discoverParallel runs discoverForLength once per candidate length under an
// errgroup, as permitted by §5's "optional intra-discovery parallelism
// across distinct lengths". Each goroutine only reads the shared tokens
// slice and writes to its own output slot, so the merged set matches the
// sequential algorithm's contents even though wall-clock order may differ.
func discoverParallel(tokens TokenSeq, lengths []int, cfg Config) [][]Candidate {
	out := make([][]Candidate, len(lengths))
	var g errgroup.Group
	for i, length := range lengths {
		i, length := i, length
		g.Go(func() error {
			out[i] = discoverForLength(tokens, length, cfg)
			return nil
		})
	}
	_ = g.Wait() // discoverForLength is pure and cannot fail
	return out
}

// discoverForLength finds every distinct length-ℓ subsequence of tokens that
// clears the compressibility predicate once its occurrences are reduced to
// a maximum non-overlapping set.
func discoverForLength(tokens TokenSeq, length int, cfg Config) []Candidate {
	n := len(tokens)
	limit := n - length + 1
	if limit <= 0 {
		return nil
	}

	positions := make(map[string][]int, limit)
	order := make([]string, 0, limit)
	subseqByKey := make(map[string]TokenSeq, limit)

	for idx := 0; idx < limit; idx++ {
		window := tokens[idx : idx+length]
		key := subsequenceKey(window)
		if _, seen := positions[key]; !seen {
			order = append(order, key)
			subseqByKey[key] = append(TokenSeq(nil), window...)
		}
		positions[key] = append(positions[key], idx)
	}

	extra := cfg.lengthExtraCost()
	candidates := make([]Candidate, 0, len(order))
	for _, key := range order {
		nonOverlap := nonOverlappingPositions(positions[key], length)
		if isCompressible(length, len(nonOverlap), extra) {
			candidates = append(candidates, Candidate{
				Subsequence: subseqByKey[key],
				Length:      length,
				Positions:   nonOverlap,
			})
		}
	}
	return candidates
}

// nonOverlappingPositions greedily retains the maximum-cardinality
// non-overlapping subset of ascending start positions for a fixed length.
func nonOverlappingPositions(positions []int, length int) []int {
	selected := make([]int, 0, len(positions))
	nextFree := -1
	for _, pos := range positions {
		if pos >= nextFree {
			selected = append(selected, pos)
			nextFree = pos + length
		}
	}
	return selected
}

// isCompressible is the compressibility predicate: ℓ·k > 1 + ℓ + extra + k.
func isCompressible(length, count, extra int) bool {
	return length*count > 1+length+extra+count
}

// subsequenceKey renders seq as a netstring-style map key (length-prefixed
// per token) so that no two distinct token sequences can collide, even when
// individual tokens contain arbitrary separator-like characters.
func subsequenceKey(seq TokenSeq) string {
	var b strings.Builder
	for _, t := range seq {
		b.WriteString(strconv.Itoa(len(t)))
		b.WriteByte(':')
		b.WriteString(string(t))
	}
	return b.String()
}
