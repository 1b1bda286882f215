package ltsc

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.MaxSubsequenceLength != 6 {
		t.Fatalf("MaxSubsequenceLength = %d, want 6", cfg.MaxSubsequenceLength)
	}
	if cfg.SelectionMode != SelectionGreedy {
		t.Fatalf("SelectionMode = %q, want %q", cfg.SelectionMode, SelectionGreedy)
	}
	if err := cfg.validate(); err != nil {
		t.Fatalf("defaults should validate, got %v", err)
	}
}

func TestConfigOptionsOverrideDefaults(t *testing.T) {
	cfg := NewConfig(
		WithMaxSubsequenceLength(3),
		WithSelectionMode(SelectionBeam),
		WithBeamWidth(2),
		WithRNGSeed(7),
		WithVerify(true),
	)
	if cfg.MaxSubsequenceLength != 3 {
		t.Errorf("MaxSubsequenceLength = %d, want 3", cfg.MaxSubsequenceLength)
	}
	if cfg.SelectionMode != SelectionBeam {
		t.Errorf("SelectionMode = %q, want beam", cfg.SelectionMode)
	}
	if !cfg.HasRNGSeed || cfg.RNGSeed != 7 {
		t.Errorf("RNGSeed not recorded: %+v", cfg)
	}
	if !cfg.Verify {
		t.Errorf("Verify = false, want true")
	}
}

func TestConfigValidateRejectsBadFields(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"too-short max length", []Option{WithMaxSubsequenceLength(1)}},
		{"zero pool size", []Option{WithMetaTokenPoolSize(0)}},
		{"zero hierarchical depth", []Option{WithHierarchical(true, 0)}},
		{"beam width zero with beam mode", []Option{WithSelectionMode(SelectionBeam), WithBeamWidth(0)}},
		{"empty meta prefix", []Option{WithMetaTokenFence("", ">")}},
		{"equal dict delimiters", []Option{WithDictDelimiters("<X>", "<X>")}},
		{"unknown selection mode", []Option{WithSelectionMode("bogus")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(tt.opts...)
			if err := cfg.validate(); err == nil {
				t.Fatalf("expected validation error, got nil")
			}
		})
	}
}
