package ltsc

// Candidate is a repeatable subsequence plus its non-overlapping start
// positions (§3). Priority is a tie-breaking score; external collaborators
// (e.g. an AST-pattern oracle) may inject Candidates with a positive bonus.
type Candidate struct {
	Subsequence TokenSeq
	Length      int
	Positions   []int
	Priority    int
}

// Occurrence is a single concrete placement of a candidate's subsequence in
// the working sequence (§3). Two occurrences overlap iff their half-open
// index ranges intersect.
type Occurrence struct {
	Start       int
	Length      int
	Subsequence TokenSeq
	Priority    int
}

func (o Occurrence) end() int { return o.Start + o.Length }

func overlaps(a, b Occurrence) bool {
	return a.Start < b.end() && b.Start < a.end()
}

// DictionaryMap is an insertion-ordered mapping from meta-token to its
// expansion tuple (§3). Keys are unique; iteration order is emission order.
type DictionaryMap struct {
	keys    []Token
	entries map[Token]TokenSeq
}

// NewDictionaryMap returns an empty, ready-to-use DictionaryMap.
func NewDictionaryMap() *DictionaryMap {
	return &DictionaryMap{entries: make(map[Token]TokenSeq)}
}

// Set inserts or overwrites the expansion for meta, preserving meta's
// original insertion position if already present.
func (d *DictionaryMap) Set(meta Token, expansion TokenSeq) {
	if _, ok := d.entries[meta]; !ok {
		d.keys = append(d.keys, meta)
	}
	d.entries[meta] = expansion
}

// Get returns the expansion for meta and whether it is present.
func (d *DictionaryMap) Get(meta Token) (TokenSeq, bool) {
	v, ok := d.entries[meta]
	return v, ok
}

// Has reports whether meta is a defined key.
func (d *DictionaryMap) Has(meta Token) bool {
	_, ok := d.entries[meta]
	return ok
}

// Len returns the number of dictionary entries.
func (d *DictionaryMap) Len() int { return len(d.keys) }

// Keys returns the dictionary keys in insertion order. The returned slice
// must not be mutated by the caller.
func (d *DictionaryMap) Keys() []Token { return d.keys }

// Each calls fn for every entry in insertion order.
func (d *DictionaryMap) Each(fn func(meta Token, expansion TokenSeq)) {
	for _, k := range d.keys {
		fn(k, d.entries[k])
	}
}

// CompressionResult bundles the outputs of a single Compress call (§3).
type CompressionResult struct {
	Frame            TokenSeq
	DictionaryTokens TokenSeq
	BodyTokens       TokenSeq
	DictionaryMap    *DictionaryMap
	MetaTokensUsed   []Token
	OriginalLength   int
	CompressedLength int
}
