package ltsc

import "fmt"

// ErrorKind names one of the §7 error taxonomy entries.
type ErrorKind string

const (
	KindReservedToken       ErrorKind = "ReservedTokenError"
	KindConfig              ErrorKind = "ConfigError"
	KindMalformedFrame      ErrorKind = "MalformedFrameError"
	KindMissingMetaHeader   ErrorKind = "MissingMetaHeaderError"
	KindMissingLengthToken  ErrorKind = "MissingLengthTokenError"
	KindDuplicateMeta       ErrorKind = "DuplicateMetaError"
	KindTruncatedEntry      ErrorKind = "TruncatedEntryError"
	KindEmptyEntry          ErrorKind = "EmptyEntryError"
	KindCyclicDictionary    ErrorKind = "CyclicDictionaryError"
	KindVerification        ErrorKind = "VerificationError"
	KindStaticDictCollision ErrorKind = "StaticDictionaryCollisionError"
)

// ReservedTokenError reports that the input sequence contains a token
// reserved for framing (a delimiter, meta-token, or length-token pattern).
type ReservedTokenError struct {
	Index  int
	Token  Token
	Reason string
}

func (e *ReservedTokenError) Error() string {
	return fmt.Sprintf("ltsc: reserved token at index %d (%q): %s", e.Index, e.Token, e.Reason)
}

func (e *ReservedTokenError) Kind() ErrorKind { return KindReservedToken }

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("ltsc: invalid config field %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Kind() ErrorKind { return KindConfig }

// FrameError reports a malformed or inconsistent compressed frame
// encountered while decoding. Index, when >= 0, is the position within the
// frame (or dictionary region) where the problem was detected.
type FrameError struct {
	ErrKind ErrorKind
	Index   int
	Token   Token
	Detail  string
}

func (e *FrameError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("ltsc: %s at index %d (%q): %s", e.ErrKind, e.Index, e.Token, e.Detail)
	}
	return fmt.Sprintf("ltsc: %s: %s", e.ErrKind, e.Detail)
}

func (e *FrameError) Kind() ErrorKind { return e.ErrKind }

func newFrameError(kind ErrorKind, index int, tok Token, detail string) *FrameError {
	return &FrameError{ErrKind: kind, Index: index, Token: tok, Detail: detail}
}

// VerificationError reports that compress's round-trip self-check (Config.Verify)
// found the decoded output did not match the original input.
type VerificationError struct {
	Index int // first mismatching index, or -1 if lengths differ
	Want  Token
	Got   Token
}

func (e *VerificationError) Error() string {
	if e.Index < 0 {
		return "ltsc: verification failed: round-trip length mismatch"
	}
	return fmt.Sprintf("ltsc: verification failed at index %d: want %q, got %q", e.Index, e.Want, e.Got)
}

func (e *VerificationError) Kind() ErrorKind { return KindVerification }

// StaticDictionaryCollisionError reports that a static dictionary prelude
// shares a meta-token key with the frame's embedded dictionary.
type StaticDictionaryCollisionError struct {
	Token Token
}

func (e *StaticDictionaryCollisionError) Error() string {
	return fmt.Sprintf("ltsc: static dictionary key collides with embedded dictionary: %q", e.Token)
}

func (e *StaticDictionaryCollisionError) Kind() ErrorKind { return KindStaticDictCollision }
