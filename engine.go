package ltsc

// passResult is the outcome of a single discovery→selection→swap pass over a
// working sequence.
type passResult struct {
	working    TokenSeq
	dictionary *DictionaryMap
	metaTokens []Token
	changed    bool
}

// Engine orchestrates components B through E (and, via the caller, F):
// discovery, selection, and swap, optionally repeated hierarchically so that
// a meta-token emitted by one pass can itself participate in a later pass's
// subsequences (§4.G).
type Engine struct {
	cfg Config
}

// NewEngine builds an Engine bound to cfg. cfg is assumed already validated.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Run executes the hierarchical compression loop starting from tokens, with
// any externally supplied preferred candidates folded into the first pass's
// discovered set (§4.B: an external collaborator may inject Candidates with
// a Priority bonus ahead of organically discovered ones).
//
// The loop halts on whichever of the four stop conditions is hit first:
// hierarchical compression disabled, HierarchicalMaxDepth reached, a pass
// that performs no swaps, or the working sequence no longer shrinking.
func (e *Engine) Run(tokens TokenSeq, preferred []Candidate) ([]passResult, error) {
	var passes []passResult
	working := tokens
	prevLen := len(working)

	maxDepth := 1
	if e.cfg.HierarchicalEnabled {
		maxDepth = e.cfg.HierarchicalMaxDepth
		if maxDepth < 1 {
			maxDepth = 1
		}
	}

	for depth := 0; depth < maxDepth; depth++ {
		candidates := discoverCandidates(working, e.cfg)
		if depth == 0 && len(preferred) > 0 {
			candidates = append(append([]Candidate(nil), preferred...), candidates...)
		}
		if len(candidates) == 0 {
			break
		}

		selected, err := selectOccurrences(candidates, e.cfg)
		if err != nil {
			return passes, err
		}
		if len(selected) == 0 {
			break
		}

		grouped := regroupCandidates(selected)
		sr := performSwap(grouped, e.cfg, working)
		if len(sr.metaTokens) == 0 {
			break
		}

		next := applyReplacements(working, sr.replacements)
		passes = append(passes, passResult{
			working:    next,
			dictionary: sr.dictionary,
			metaTokens: sr.metaTokens,
			changed:    true,
		})

		if len(next) >= prevLen {
			break
		}
		prevLen = len(next)
		working = next

		if !e.cfg.HierarchicalEnabled {
			break
		}
	}

	return passes, nil
}

// applyReplacements rewrites working by splicing in one meta-token per
// replaced window and copying through every position untouched by swap.
func applyReplacements(working TokenSeq, replacements map[int]replacement) TokenSeq {
	out := make(TokenSeq, 0, len(working))
	i := 0
	for i < len(working) {
		if r, ok := replacements[i]; ok {
			out = append(out, r.meta)
			i += r.length
			continue
		}
		out = append(out, working[i])
		i++
	}
	return out
}
