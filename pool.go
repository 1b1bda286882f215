package ltsc

import "strconv"

// lcgPRNG is a deterministic linear congruential generator. It uses the same
// multiplier and increment as the compressor's cross-platform shuffle PRNG
// (Knuth's MMIX constants), adapted to shuffle meta-token candidates
// instead of string indices.
type lcgPRNG struct {
	state uint64
}

func newLCGPRNG(seed uint64) *lcgPRNG {
	return &lcgPRNG{state: seed}
}

func (p *lcgPRNG) next() uint64 {
	p.state = p.state*6364136223846793005 + 1442695040888963407
	return p.state
}

func (p *lcgPRNG) uint64n(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return p.next() % n
}

// shuffle performs an in-place Fisher-Yates shuffle.
func (p *lcgPRNG) shuffle(s []Token) {
	for i := len(s) - 1; i > 0; i-- {
		j := int(p.uint64n(uint64(i + 1)))
		s[i], s[j] = s[j], s[i]
	}
}

// defaultPoolSeed is used when Config.RNGSeed is unset. It matches the
// teacher's default deterministic shuffle seed.
const defaultPoolSeed = 42

// metaTokenPool is the deterministic generator of fresh meta-token
// identifiers (component D, §4.D). Each distinct subsequence consumes
// exactly one meta-token via pop().
type metaTokenPool struct {
	tokens []Token
	pos    int
}

// newMetaTokenPool builds the pool: prefix+i+suffix for i in
// [0, MetaTokenPoolSize), excluding any token already present in working,
// shuffled deterministically by cfg.RNGSeed.
func newMetaTokenPool(cfg Config, working TokenSeq) *metaTokenPool {
	existing := make(map[Token]bool, len(working))
	for _, t := range working {
		existing[t] = true
	}

	tokens := make([]Token, 0, cfg.MetaTokenPoolSize)
	for i := 0; i < cfg.MetaTokenPoolSize; i++ {
		t := Token(cfg.MetaTokenPrefix + strconv.Itoa(i) + cfg.MetaTokenSuffix)
		if existing[t] {
			continue
		}
		tokens = append(tokens, t)
	}

	seed := uint64(defaultPoolSeed)
	if cfg.HasRNGSeed {
		seed = uint64(cfg.RNGSeed)
	}
	newLCGPRNG(seed).shuffle(tokens)

	return &metaTokenPool{tokens: tokens}
}

// pop allocates the next meta-token, or ok=false if the pool is exhausted.
func (p *metaTokenPool) pop() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	t := p.tokens[p.pos]
	p.pos++
	return t, true
}
