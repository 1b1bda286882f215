package ltsc

import "testing"

func TestEngineRunShrinksRepeatedSequence(t *testing.T) {
	tokens := seq("a", "b", "c", "x", "a", "b", "c", "y", "a", "b", "c")
	cfg := NewConfig(WithMaxSubsequenceLength(3))
	engine := NewEngine(cfg)

	passes, err := engine.Run(tokens, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(passes) == 0 {
		t.Fatalf("expected at least one pass for a compressible sequence")
	}
	last := passes[len(passes)-1]
	if len(last.working) >= len(tokens) {
		t.Errorf("working sequence did not shrink: %d >= %d", len(last.working), len(tokens))
	}
}

func TestEngineRunNoOpOnIncompressibleSequence(t *testing.T) {
	tokens := seq("a", "b", "c", "d", "e")
	cfg := NewConfig()
	engine := NewEngine(cfg)

	passes, err := engine.Run(tokens, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(passes) != 0 {
		t.Fatalf("expected no passes for an incompressible sequence, got %+v", passes)
	}
}

func TestEngineRunRespectsHierarchicalDisabled(t *testing.T) {
	tokens := seq("a", "b", "c", "x", "a", "b", "c", "y", "a", "b", "c")
	cfg := NewConfig(WithMaxSubsequenceLength(3), WithHierarchical(false, 5))
	engine := NewEngine(cfg)

	passes, err := engine.Run(tokens, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(passes) > 1 {
		t.Fatalf("expected at most one pass with hierarchical compression disabled, got %d", len(passes))
	}
}

func TestApplyReplacementsSplicesSingleMetaToken(t *testing.T) {
	working := seq("a", "b", "c", "x", "a", "b", "c")
	replacements := map[int]replacement{
		0: {length: 3, meta: "<MT_0>"},
		4: {length: 3, meta: "<MT_0>"},
	}
	got := applyReplacements(working, replacements)
	want := seq("<MT_0>", "x", "<MT_0>")
	if len(got) != len(want) {
		t.Fatalf("applyReplacements = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
