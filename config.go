// Package ltsc implements a Lossless Token Sequence Compressor: it rewrites
// a finite sequence of opaque, hashable tokens into a shorter equivalent
// sequence by discovering repeated contiguous subsequences, assigning each
// to a synthetic meta-token, and prefixing the output with a dictionary that
// lets a decoder restore the exact original sequence.
package ltsc

// SelectionMode names an occurrence-selection strategy (component C).
type SelectionMode string

const (
	// SelectionGreedy sweeps occurrences sorted by (-priority, start, length).
	SelectionGreedy SelectionMode = "greedy"
	// SelectionOptimal runs weighted interval scheduling via dynamic programming.
	SelectionOptimal SelectionMode = "optimal"
	// SelectionBeam runs a bounded-width beam search.
	SelectionBeam SelectionMode = "beam"
)

// Config is an immutable compression/decompression configuration record.
// Build one with NewConfig and functional Option values; a Config is safe
// to share across concurrent compress/decompress calls (component A).
type Config struct {
	MaxSubsequenceLength int

	MetaTokenPrefix  string
	MetaTokenSuffix  string
	MetaTokenPoolSize int

	DictStartToken string
	DictEndToken   string

	DictLengthEnabled bool
	DictLengthPrefix  string
	DictLengthSuffix  string

	HierarchicalEnabled  bool
	HierarchicalMaxDepth int

	SelectionMode SelectionMode
	BeamWidth     int

	RNGSeed    int64
	HasRNGSeed bool

	Verify bool

	// ParallelDiscovery enables the optional intra-discovery parallelism
	// across candidate lengths permitted by the concurrency model (§5).
	ParallelDiscovery bool
}

// Option configures a Config.
type Option func(*Config)

// WithMaxSubsequenceLength sets the inclusive upper bound on candidate length.
func WithMaxSubsequenceLength(n int) Option {
	return func(c *Config) { c.MaxSubsequenceLength = n }
}

// WithMetaTokenFence sets the prefix/suffix fence for synthetic meta-tokens.
func WithMetaTokenFence(prefix, suffix string) Option {
	return func(c *Config) {
		c.MetaTokenPrefix = prefix
		c.MetaTokenSuffix = suffix
	}
}

// WithMetaTokenPoolSize caps the number of distinct meta-tokens per compression.
func WithMetaTokenPoolSize(n int) Option {
	return func(c *Config) { c.MetaTokenPoolSize = n }
}

// WithDictDelimiters sets the dictionary start/end frame delimiters.
func WithDictDelimiters(start, end string) Option {
	return func(c *Config) {
		c.DictStartToken = start
		c.DictEndToken = end
	}
}

// WithDictLengthFraming toggles length-prefixed dictionary entries and sets
// the length-token fence used when enabled.
func WithDictLengthFraming(enabled bool, prefix, suffix string) Option {
	return func(c *Config) {
		c.DictLengthEnabled = enabled
		c.DictLengthPrefix = prefix
		c.DictLengthSuffix = suffix
	}
}

// WithHierarchical toggles multi-pass compression and sets the max depth.
func WithHierarchical(enabled bool, maxDepth int) Option {
	return func(c *Config) {
		c.HierarchicalEnabled = enabled
		c.HierarchicalMaxDepth = maxDepth
	}
}

// WithSelectionMode chooses the occurrence-selection strategy.
func WithSelectionMode(mode SelectionMode) Option {
	return func(c *Config) { c.SelectionMode = mode }
}

// WithBeamWidth sets the state-retention cap for beam selection.
func WithBeamWidth(n int) Option {
	return func(c *Config) { c.BeamWidth = n }
}

// WithRNGSeed seeds the meta-token pool shuffle deterministically.
func WithRNGSeed(seed int64) Option {
	return func(c *Config) {
		c.RNGSeed = seed
		c.HasRNGSeed = true
	}
}

// WithVerify enables compress-time round-trip verification.
func WithVerify(v bool) Option {
	return func(c *Config) { c.Verify = v }
}

// WithParallelDiscovery enables fanning discovery out across candidate
// lengths on an errgroup, as permitted by the concurrency model.
func WithParallelDiscovery(v bool) Option {
	return func(c *Config) { c.ParallelDiscovery = v }
}

// defaultConfig returns the §3 defaults.
func defaultConfig() Config {
	return Config{
		MaxSubsequenceLength: 6,
		MetaTokenPrefix:      "<MT_",
		MetaTokenSuffix:      ">",
		MetaTokenPoolSize:    512,
		DictStartToken:       "<Dict>",
		DictEndToken:         "</Dict>",
		DictLengthEnabled:    true,
		DictLengthPrefix:     "<Len:",
		DictLengthSuffix:     ">",
		HierarchicalEnabled:  true,
		HierarchicalMaxDepth: 3,
		SelectionMode:        SelectionGreedy,
		BeamWidth:            4,
	}
}

// NewConfig builds a Config from the §3 defaults plus the given options.
func NewConfig(opts ...Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// validate checks the invariants a Config must satisfy before use,
// returning a *ConfigError describing the first violation found.
func (c Config) validate() error {
	switch {
	case c.MaxSubsequenceLength < 2:
		return &ConfigError{Field: "MaxSubsequenceLength", Reason: "must be >= 2"}
	case c.MetaTokenPoolSize < 1:
		return &ConfigError{Field: "MetaTokenPoolSize", Reason: "must be >= 1"}
	case c.HierarchicalMaxDepth < 1:
		return &ConfigError{Field: "HierarchicalMaxDepth", Reason: "must be >= 1"}
	case c.BeamWidth < 1 && c.SelectionMode == SelectionBeam:
		return &ConfigError{Field: "BeamWidth", Reason: "must be >= 1"}
	case c.MetaTokenPrefix == "":
		return &ConfigError{Field: "MetaTokenPrefix", Reason: "must be non-empty"}
	case c.MetaTokenSuffix == "":
		return &ConfigError{Field: "MetaTokenSuffix", Reason: "must be non-empty"}
	case c.DictStartToken == "" || c.DictEndToken == "":
		return &ConfigError{Field: "DictStartToken/DictEndToken", Reason: "must be non-empty"}
	case c.DictStartToken == c.DictEndToken:
		return &ConfigError{Field: "DictStartToken/DictEndToken", Reason: "must differ"}
	case c.DictLengthEnabled && (c.DictLengthPrefix == "" || c.DictLengthSuffix == ""):
		return &ConfigError{Field: "DictLengthPrefix/DictLengthSuffix", Reason: "must be non-empty when length framing is enabled"}
	}
	switch c.SelectionMode {
	case SelectionGreedy, SelectionOptimal, SelectionBeam:
	default:
		return &ConfigError{Field: "SelectionMode", Reason: "unknown selection mode: " + string(c.SelectionMode)}
	}
	return nil
}

// lengthExtraCost returns the "extra" term of the compressibility predicate:
// 1 when length-framing is enabled, else 0.
func (c Config) lengthExtraCost() int {
	if c.DictLengthEnabled {
		return 1
	}
	return 0
}
