package ltsc

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// parseDictionaryRegion consumes the bracketed dictionary region at the
// front of frame and returns the populated DictionaryMap plus the index at
// which the body region begins.
func parseDictionaryRegion(frame TokenSeq, cfg Config) (*DictionaryMap, int, error) {
	if len(frame) == 0 || frame[0] != Token(cfg.DictStartToken) {
		return nil, 0, newFrameError(KindMalformedFrame, 0, "", "frame does not begin with dictionary start delimiter")
	}

	dict := NewDictionaryMap()
	i := 1
	for {
		if i >= len(frame) {
			return nil, 0, newFrameError(KindMalformedFrame, i, "", "dictionary region missing end delimiter")
		}
		if frame[i] == Token(cfg.DictEndToken) {
			return dict, i + 1, nil
		}

		meta := frame[i]
		if !IsMetaToken(meta, cfg) {
			return nil, i, newFrameError(KindMissingMetaHeader, i, meta, "expected meta-token header")
		}
		if dict.Has(meta) {
			return nil, i, newFrameError(KindDuplicateMeta, i, meta, "meta-token already defined")
		}
		i++

		var expansion TokenSeq
		if cfg.DictLengthEnabled {
			if i >= len(frame) {
				return nil, i, newFrameError(KindMissingLengthToken, i, meta, "entry truncated before length token")
			}
			n, ok := parseLengthToken(frame[i], cfg)
			if !ok {
				return nil, i, newFrameError(KindMissingLengthToken, i, frame[i], "expected length-framing token")
			}
			i++
			if n <= 0 {
				return nil, i, newFrameError(KindEmptyEntry, i, meta, "dictionary entry must expand to at least one token")
			}
			if i+n > len(frame) {
				return nil, i, newFrameError(KindTruncatedEntry, i, meta, "entry truncated before declared length reached")
			}
			expansion = append(TokenSeq(nil), frame[i:i+n]...)
			i += n
		} else {
			start := i
			for i < len(frame) && frame[i] != Token(cfg.DictEndToken) && !IsMetaToken(frame[i], cfg) {
				i++
			}
			if i == start {
				return nil, i, newFrameError(KindEmptyEntry, start, meta, "dictionary entry must expand to at least one token")
			}
			expansion = append(TokenSeq(nil), frame[start:i]...)
		}

		dict.Set(meta, expansion)
	}
}

// expander performs memoized, cycle-safe expansion of meta-tokens back into
// their original token runs (component H, §4.H). Finished expansions are
// cached in a bounded LRU so that a meta-token referenced from many body
// positions, or nested inside several other entries, is only expanded once.
type expander struct {
	dict     *DictionaryMap
	cfg      Config
	cache    *lru.Cache[Token, TokenSeq]
	visiting map[Token]bool
}

func newExpander(dict *DictionaryMap, cfg Config) (*expander, error) {
	capacity := dict.Len()
	if capacity < 1 {
		capacity = 1
	}
	if capacity > 4096 {
		capacity = 4096
	}
	cache, err := lru.New[Token, TokenSeq](capacity)
	if err != nil {
		return nil, err
	}
	return &expander{dict: dict, cfg: cfg, cache: cache, visiting: make(map[Token]bool)}, nil
}

// expandFrame is one level of the explicit expansion stack: seq is the
// sequence being expanded (the body, or a dictionary entry's expansion),
// idx the next unprocessed position in seq, acc the tokens produced so far,
// and metaKey the dictionary key this frame is expanding on behalf of (empty
// for the top-level body frame).
type expandFrame struct {
	seq     TokenSeq
	idx     int
	acc     TokenSeq
	metaKey Token
	hasKey  bool
}

// expand fully expands seq using an explicit stack rather than recursion, so
// that deeply nested hierarchical dictionaries cannot exhaust the Go call
// stack. A token in progress that is re-entered before it finishes is a
// cyclic dictionary reference.
func (e *expander) expand(seq TokenSeq) (TokenSeq, error) {
	stack := []*expandFrame{{seq: seq}}

	for {
		top := stack[len(stack)-1]

		if top.idx >= len(top.seq) {
			result := top.acc
			stack = stack[:len(stack)-1]

			if top.hasKey {
				e.cache.Add(top.metaKey, result)
				delete(e.visiting, top.metaKey)
			}
			if len(stack) == 0 {
				return result, nil
			}
			parent := stack[len(stack)-1]
			parent.acc = append(parent.acc, result...)
			parent.idx++
			continue
		}

		t := top.seq[top.idx]
		if !IsMetaToken(t, e.cfg) {
			top.acc = append(top.acc, t)
			top.idx++
			continue
		}
		if cached, ok := e.cache.Get(t); ok {
			top.acc = append(top.acc, cached...)
			top.idx++
			continue
		}
		if e.visiting[t] {
			return nil, newFrameError(KindCyclicDictionary, -1, t, "cyclic dictionary reference")
		}
		expansion, ok := e.dict.Get(t)
		if !ok {
			return nil, newFrameError(KindMissingMetaHeader, -1, t, "meta-token has no dictionary entry")
		}

		e.visiting[t] = true
		stack = append(stack, &expandFrame{seq: expansion, metaKey: t, hasKey: true})
	}
}

// decompressWithConfig implements full decoding: parse the dictionary
// region, then expand every meta-token in the body back to its original run.
func decompressWithConfig(frame TokenSeq, cfg Config) (TokenSeq, error) {
	if len(frame) == 0 {
		return nil, nil
	}

	dict, bodyStart, err := parseDictionaryRegion(frame, cfg)
	if err != nil {
		return nil, err
	}
	body := frame[bodyStart:]

	exp, err := newExpander(dict, cfg)
	if err != nil {
		return nil, err
	}
	return exp.expand(body)
}
