package ltsc

import "testing"

func roundTrip(t *testing.T, tokens TokenSeq, opts ...Option) {
	t.Helper()
	result, err := Compress(tokens, opts...)
	if err != nil {
		t.Fatalf("Compress error: %v", err)
	}
	got, err := Decompress(result.Frame, opts...)
	if err != nil {
		t.Fatalf("Decompress error: %v", err)
	}
	if len(got) != len(tokens) {
		t.Fatalf("round-trip length mismatch: got %d, want %d (%v vs %v)", len(got), len(tokens), got, tokens)
	}
	for i := range tokens {
		if got[i] != tokens[i] {
			t.Fatalf("round-trip mismatch at %d: got %q, want %q", i, got[i], tokens[i])
		}
	}
}

func TestCompressDecompressRoundTripRepeatedRun(t *testing.T) {
	tokens := seq("a", "b", "c", "x", "a", "b", "c", "y", "a", "b", "c")
	roundTrip(t, tokens, WithMaxSubsequenceLength(3))
}

func TestCompressDecompressRoundTripEmptyInput(t *testing.T) {
	roundTrip(t, TokenSeq{})
}

func TestDecompressEmptyFrameReturnsEmptySequence(t *testing.T) {
	got, err := Decompress(TokenSeq{})
	if err != nil {
		t.Fatalf("Decompress(empty frame) returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Decompress(empty frame) = %v, want empty sequence", got)
	}
}

func TestDecompressWithStaticDictionaryEmptyFrameReturnsEmptySequence(t *testing.T) {
	got, err := DecompressWithStaticDictionary(TokenSeq{}, NewDictionaryMap())
	if err != nil {
		t.Fatalf("DecompressWithStaticDictionary(empty frame) returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("DecompressWithStaticDictionary(empty frame) = %v, want empty sequence", got)
	}
}

func TestCompressDecompressRoundTripIncompressible(t *testing.T) {
	roundTrip(t, seq("a", "b", "c", "d", "e"))
}

func TestCompressDecompressRoundTripHierarchical(t *testing.T) {
	// Four copies of a 4-token run plus distinct noise, with hierarchical
	// passes enabled: the first pass replaces part of each run with one
	// meta-token, and the round trip must hold across every pass taken.
	tokens := seq(
		"p", "q", "r", "s", "n1",
		"p", "q", "r", "s", "n2",
		"p", "q", "r", "s", "n3",
		"p", "q", "r", "s", "n4",
	)
	roundTrip(t, tokens, WithMaxSubsequenceLength(4), WithHierarchical(true, 3))
}

func TestCompressRejectsReservedTokens(t *testing.T) {
	cfg := NewConfig()
	_, err := Compress(TokenSeq{Token(cfg.DictStartToken)})
	if err == nil {
		t.Fatalf("expected error for reserved token in input")
	}
	if _, ok := err.(*ReservedTokenError); !ok {
		t.Fatalf("expected *ReservedTokenError, got %T", err)
	}
}

func TestCompressWithVerifySucceedsOnValidRoundTrip(t *testing.T) {
	tokens := seq("a", "b", "c", "x", "a", "b", "c")
	_, err := Compress(tokens, WithMaxSubsequenceLength(3), WithVerify(true))
	if err != nil {
		t.Fatalf("Compress with Verify returned error: %v", err)
	}
}

func TestCompressWithPreferredCandidatesUsesBonusPriority(t *testing.T) {
	tokens := seq("a", "b", "x1", "a", "b", "x2", "a", "b", "x3", "a", "b", "x4")
	cfg := NewConfig(WithMaxSubsequenceLength(2), WithDictLengthFraming(false, "", ""))
	preferred := []Candidate{
		{Subsequence: seq("a", "b"), Length: 2, Positions: []int{0, 3, 6, 9}, Priority: 100},
	}

	result, err := CompressWithPreferredCandidates(tokens, preferred, cfg)
	if err != nil {
		t.Fatalf("CompressWithPreferredCandidates error: %v", err)
	}
	if result.DictionaryMap.Len() == 0 {
		t.Fatalf("expected at least one dictionary entry, got none")
	}
}

func TestDecompressWithStaticDictionaryMergesAdditively(t *testing.T) {
	cfg := NewConfig()
	static := NewDictionaryMap()
	static.Set("<MT_static>", seq("s", "t"))

	embedded := NewDictionaryMap()
	embedded.Set("<MT_0>", seq("a", "b"))
	frame := buildFrame(embedded, seq("<MT_static>", "<MT_0>"), cfg)

	got, err := DecompressWithStaticDictionary(frame, static)
	if err != nil {
		t.Fatalf("DecompressWithStaticDictionary error: %v", err)
	}
	want := seq("s", "t", "a", "b")
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDecompressWithStaticDictionaryCollision(t *testing.T) {
	cfg := NewConfig()
	static := NewDictionaryMap()
	static.Set("<MT_0>", seq("s", "t"))

	embedded := NewDictionaryMap()
	embedded.Set("<MT_0>", seq("a", "b"))
	frame := buildFrame(embedded, seq("<MT_0>"), cfg)

	_, err := DecompressWithStaticDictionary(frame, static)
	if err == nil {
		t.Fatalf("expected StaticDictionaryCollisionError")
	}
	if _, ok := err.(*StaticDictionaryCollisionError); !ok {
		t.Fatalf("expected *StaticDictionaryCollisionError, got %T", err)
	}
}
