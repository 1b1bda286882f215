package ltsc

// buildDictionaryTokens renders dict as the bracketed dictionary region
// (component F, §4.F): DictStartToken, then for each entry in insertion
// order its meta-token header, an optional length-framing token, the
// expansion tokens themselves, and finally DictEndToken.
//
// Length framing (the default) makes entry boundaries unambiguous even when
// an expansion itself contains meta-tokens introduced by an earlier
// hierarchical pass. Without it, a decoder must fall back to treating the
// next meta-pattern token as the start of the following entry, which is
// exact for flat dictionaries but can misparse an expansion that legitimately
// embeds another meta-token — a known limitation of the non-length-framed
// mode, not of this encoder.
func buildDictionaryTokens(dict *DictionaryMap, cfg Config) TokenSeq {
	out := TokenSeq{Token(cfg.DictStartToken)}
	dict.Each(func(meta Token, expansion TokenSeq) {
		out = append(out, meta)
		if cfg.DictLengthEnabled {
			out = append(out, lengthToken(len(expansion), cfg))
		}
		out = append(out, expansion...)
	})
	out = append(out, Token(cfg.DictEndToken))
	return out
}

// buildBodyTokens is the identity framing step for the body region: the
// final working sequence (after every swap pass) is emitted verbatim,
// following the dictionary region in the frame.
func buildBodyTokens(working TokenSeq) TokenSeq {
	return append(TokenSeq(nil), working...)
}

// buildFrame concatenates the dictionary and body regions into the full
// output sequence described by CompressionResult.Frame.
func buildFrame(dict *DictionaryMap, working TokenSeq, cfg Config) TokenSeq {
	frame := buildDictionaryTokens(dict, cfg)
	return append(frame, buildBodyTokens(working)...)
}
