package ltsc

import (
	"strconv"
	"strings"
)

// Token is the canonical concrete token form (§3 Data Model: "strings are
// the canonical concrete form"). The compressor never inspects a token's
// contents except to test equality, compute a hash (via Go's native string
// comparison/hashing in maps), and — for meta/length tokens only — to
// recognise the configured synthetic fence.
type Token string

// TokenSeq is an ordered, finite, random-access sequence of tokens.
type TokenSeq []Token

// IsMetaToken reports whether t matches cfg's meta-token fence.
func IsMetaToken(t Token, cfg Config) bool {
	s := string(t)
	return strings.HasPrefix(s, cfg.MetaTokenPrefix) && strings.HasSuffix(s, cfg.MetaTokenSuffix) &&
		len(s) > len(cfg.MetaTokenPrefix)+len(cfg.MetaTokenSuffix)
}

// isLengthToken reports whether t matches cfg's length-token fence.
func isLengthToken(t Token, cfg Config) bool {
	if !cfg.DictLengthEnabled {
		return false
	}
	s := string(t)
	return strings.HasPrefix(s, cfg.DictLengthPrefix) && strings.HasSuffix(s, cfg.DictLengthSuffix) &&
		len(s) > len(cfg.DictLengthPrefix)+len(cfg.DictLengthSuffix)-1
}

// RequireNoReservedTokens fails with a *ReservedTokenError on the first
// token in seq that collides with a delimiter, meta-token, or (when
// length-framing is enabled) length-token pattern.
func RequireNoReservedTokens(seq TokenSeq, cfg Config) error {
	for i, t := range seq {
		switch {
		case t == Token(cfg.DictStartToken):
			return &ReservedTokenError{Index: i, Token: t, Reason: "matches dictionary start delimiter"}
		case t == Token(cfg.DictEndToken):
			return &ReservedTokenError{Index: i, Token: t, Reason: "matches dictionary end delimiter"}
		case IsMetaToken(t, cfg):
			return &ReservedTokenError{Index: i, Token: t, Reason: "matches meta-token pattern"}
		case isLengthToken(t, cfg):
			return &ReservedTokenError{Index: i, Token: t, Reason: "matches length-token pattern"}
		}
	}
	return nil
}

// lengthToken renders the length-framing token for a dictionary entry of
// the given expansion length.
func lengthToken(n int, cfg Config) Token {
	return Token(cfg.DictLengthPrefix + strconv.Itoa(n) + cfg.DictLengthSuffix)
}

// parseLengthToken parses a length-framing token back into its integer
// value, or ok=false if t does not match the length-token fence.
func parseLengthToken(t Token, cfg Config) (int, bool) {
	if !isLengthToken(t, cfg) {
		return 0, false
	}
	s := string(t)
	body := s[len(cfg.DictLengthPrefix) : len(s)-len(cfg.DictLengthSuffix)]
	n, err := strconv.Atoi(body)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
