package ltsc

import "testing"

func TestBuildDictionaryTokensWithLengthFraming(t *testing.T) {
	cfg := NewConfig()
	dict := NewDictionaryMap()
	dict.Set("<MT_0>", seq("a", "b", "c"))

	got := buildDictionaryTokens(dict, cfg)
	want := TokenSeq{
		Token(cfg.DictStartToken),
		"<MT_0>", lengthToken(3, cfg), "a", "b", "c",
		Token(cfg.DictEndToken),
	}
	if len(got) != len(want) {
		t.Fatalf("buildDictionaryTokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildFrameConcatenatesRegions(t *testing.T) {
	cfg := NewConfig()
	dict := NewDictionaryMap()
	dict.Set("<MT_0>", seq("a", "b"))
	working := seq("<MT_0>", "z")

	frame := buildFrame(dict, working, cfg)
	if frame[len(frame)-1] != "z" {
		t.Errorf("expected body to be the final tokens, frame = %v", frame)
	}
	if frame[0] != Token(cfg.DictStartToken) {
		t.Errorf("expected frame to start with dictionary delimiter, got %q", frame[0])
	}
}
