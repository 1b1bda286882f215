package ltsc

// Compress rewrites tokens into a lossless compressed frame using cfg
// (component G plus F, §4). When nothing compresses, the frame is the input
// behind an empty dictionary region, two tokens longer than the input. An
// empty input compresses to an empty dictionary region with an empty body.
func Compress(tokens TokenSeq, opts ...Option) (*CompressionResult, error) {
	cfg := NewConfig(opts...)
	return CompressWithPreferredCandidates(tokens, nil, cfg)
}

// CompressWithPreferredCandidates behaves like Compress but folds externally
// supplied Candidates (e.g. from an AST-pattern oracle) into the first
// discovery pass ahead of organically discovered ones, per §4.B.
func CompressWithPreferredCandidates(tokens TokenSeq, preferred []Candidate, cfg Config) (*CompressionResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := RequireNoReservedTokens(tokens, cfg); err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		frame := buildDictionaryTokens(NewDictionaryMap(), cfg)
		return &CompressionResult{
			Frame:            frame,
			DictionaryTokens: frame,
			BodyTokens:       nil,
			DictionaryMap:    NewDictionaryMap(),
			OriginalLength:   0,
			CompressedLength: len(frame),
		}, nil
	}

	engine := NewEngine(cfg)
	passes, err := engine.Run(tokens, preferred)
	if err != nil {
		return nil, err
	}

	working := tokens
	dict := NewDictionaryMap()
	var metaTokens []Token
	for _, p := range passes {
		working = p.working
		for _, k := range p.dictionary.Keys() {
			v, _ := p.dictionary.Get(k)
			dict.Set(k, v)
		}
		metaTokens = append(metaTokens, p.metaTokens...)
	}

	dictTokens := buildDictionaryTokens(dict, cfg)
	bodyTokens := buildBodyTokens(working)
	frame := append(append(TokenSeq(nil), dictTokens...), bodyTokens...)

	result := &CompressionResult{
		Frame:            frame,
		DictionaryTokens: dictTokens,
		BodyTokens:       bodyTokens,
		DictionaryMap:    dict,
		MetaTokensUsed:   metaTokens,
		OriginalLength:   len(tokens),
		CompressedLength: len(frame),
	}

	if cfg.Verify {
		roundTrip, err := decompressWithConfig(frame, cfg)
		if err != nil {
			return nil, err
		}
		if verr := verifyRoundTrip(tokens, roundTrip); verr != nil {
			return nil, verr
		}
	}

	return result, nil
}

// verifyRoundTrip compares original against decoded token-by-token,
// returning a *VerificationError describing the first mismatch (or a length
// mismatch) found.
func verifyRoundTrip(original, decoded TokenSeq) error {
	if len(original) != len(decoded) {
		return &VerificationError{Index: -1}
	}
	for i := range original {
		if original[i] != decoded[i] {
			return &VerificationError{Index: i, Want: original[i], Got: decoded[i]}
		}
	}
	return nil
}

// Decompress restores the original token sequence from frame using cfg
// (component H, §4.H). cfg must match the Config used to produce frame.
func Decompress(frame TokenSeq, opts ...Option) (TokenSeq, error) {
	cfg := NewConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return decompressWithConfig(frame, cfg)
}

// DecompressWithStaticDictionary behaves like Decompress but first merges a
// caller-supplied static dictionary prelude additively with the frame's
// embedded dictionary (Design Notes §9's static-dictionary-prelude
// extension). A key present in both is a StaticDictionaryCollisionError.
func DecompressWithStaticDictionary(frame TokenSeq, static *DictionaryMap, opts ...Option) (TokenSeq, error) {
	cfg := NewConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(frame) == 0 {
		return nil, nil
	}

	embedded, bodyStart, err := parseDictionaryRegion(frame, cfg)
	if err != nil {
		return nil, err
	}

	merged := NewDictionaryMap()
	if static != nil {
		static.Each(func(meta Token, expansion TokenSeq) {
			merged.Set(meta, expansion)
		})
	}
	for _, k := range embedded.Keys() {
		if merged.Has(k) {
			return nil, &StaticDictionaryCollisionError{Token: k}
		}
		v, _ := embedded.Get(k)
		merged.Set(k, v)
	}

	exp, err := newExpander(merged, cfg)
	if err != nil {
		return nil, err
	}
	return exp.expand(frame[bodyStart:])
}
