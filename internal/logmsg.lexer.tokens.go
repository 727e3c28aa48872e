package internal

import "fmt"

// Span is a half-open byte range [Start, End) in the template source
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span
func (s Span) Len() int {
	return s.End - s.Start
}

// Token represents a lexical token produced by the lexer
type Token struct {
	Type  TokenType // The type of token
	Value string    // Unescaped text for TEXT and NAME tokens, the raw delimiter otherwise
	Span  Span      // Source range
}

// String returns a human-readable representation of the token
func (t Token) String() string {
	if t.Value == "" {
		return fmt.Sprintf("Token{%s @ %d}", t.Type, t.Span.Start)
	}
	return fmt.Sprintf("Token{%s: %q @ %d}", t.Type, t.Value, t.Span.Start)
}

// IsEOF returns true if this is an end-of-file token
func (t Token) IsEOF() bool {
	return t.Type == TokenTypeEOF
}

// IsFieldOpen returns true for any of the three replacement field openers
func (t Token) IsFieldOpen() bool {
	switch t.Type {
	case TokenTypeBegin, TokenTypeBeginStringify, TokenTypeBeginSerialize:
		return true
	default:
		return false
	}
}

// NewToken creates a new token with the given type, value, and span
func NewToken(tokenType TokenType, value string, start, end int) Token {
	return Token{
		Type:  tokenType,
		Value: value,
		Span:  Span{Start: start, End: end},
	}
}

// NewEOFToken creates an EOF token at the given offset
func NewEOFToken(offset int) Token {
	return Token{
		Type: TokenTypeEOF,
		Span: Span{Start: offset, End: offset},
	}
}
