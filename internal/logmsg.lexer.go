package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Lexer tokenizes template source into a token stream.
//
// It runs in two modes. In LITERAL mode doubled braces collapse to a single
// literal brace and an unescaped '{' opens a replacement field. In FIELD mode
// every structural character is its own token and nothing is ever escaped;
// the closing '}' switches back to LITERAL mode.
type Lexer struct {
	source string
	pos    int // Current byte position
	mode   LexMode
	logger *zap.Logger
}

// NewLexer creates a new lexer
func NewLexer(source string, logger *zap.Logger) *Lexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgLexerCreated, zap.Int(LogFieldSource, len(source)))
	return &Lexer{
		source: source,
		pos:    0,
		mode:   LexModeLiteral,
		logger: logger,
	}
}

// Tokenize processes the source and returns a token stream terminated by EOF.
// Every byte of input belongs to some token, so tokenization cannot fail;
// grammar violations are reported by the parser.
func (l *Lexer) Tokenize() []Token {
	l.logger.Debug(LogMsgTokenizerStart)
	var tokens []Token

	for !l.isAtEnd() {
		if l.mode == LexModeField {
			tokens = append(tokens, l.scanField())
		} else {
			tokens = append(tokens, l.scanLiteral())
		}
	}

	tokens = append(tokens, NewEOFToken(l.pos))
	l.logger.Debug(LogMsgTokenizerEnd, zap.Int(LogFieldTokens, len(tokens)))
	return tokens
}

// Mode returns the current lexer mode
func (l *Lexer) Mode() LexMode {
	return l.mode
}

// scanLiteral scans a literal run, or a field opener / stray closer when the
// run is empty.
func (l *Lexer) scanLiteral() Token {
	start := l.pos
	var sb strings.Builder

	for !l.isAtEnd() {
		ch := l.peek()
		if ch == CharOpenBrace || ch == CharCloseBrace {
			if l.peekAt(1) == ch {
				// Doubled delimiter: keep one of them
				sb.WriteByte(ch)
				l.pos += 2
				continue
			}
			break
		}
		sb.WriteByte(ch)
		l.pos++
	}

	if sb.Len() > 0 {
		return NewToken(TokenTypeText, sb.String(), start, l.pos)
	}

	ch := l.advance()
	if ch == CharCloseBrace {
		return NewToken(TokenTypeEnd, string(ch), start, l.pos)
	}

	// Open brace, possibly carrying a modifier
	l.mode = LexModeField
	switch l.peek() {
	case CharAt:
		l.advance()
		return NewToken(TokenTypeBeginSerialize, l.source[start:l.pos], start, l.pos)
	case CharDollar:
		l.advance()
		return NewToken(TokenTypeBeginStringify, l.source[start:l.pos], start, l.pos)
	default:
		return NewToken(TokenTypeBegin, string(ch), start, l.pos)
	}
}

// scanField scans one token inside a replacement field
func (l *Lexer) scanField() Token {
	start := l.pos
	for !l.isAtEnd() && !isFieldStructural(l.peek()) {
		l.pos++
	}
	if l.pos > start {
		return NewToken(TokenTypeName, l.source[start:l.pos], start, l.pos)
	}

	ch := l.advance()
	value := string(ch)
	switch ch {
	case CharOpenBrace:
		return NewToken(TokenTypeBegin, value, start, l.pos)
	case CharCloseBrace:
		l.mode = LexModeLiteral
		return NewToken(TokenTypeEnd, value, start, l.pos)
	case CharDot:
		return NewToken(TokenTypeDot, value, start, l.pos)
	case CharOpenSquare:
		return NewToken(TokenTypeOpenSquare, value, start, l.pos)
	case CharCloseSquare:
		return NewToken(TokenTypeCloseSquare, value, start, l.pos)
	case CharDollar:
		return NewToken(TokenTypeDollar, value, start, l.pos)
	case CharAt:
		return NewToken(TokenTypeAt, value, start, l.pos)
	case CharComma:
		return NewToken(TokenTypeComma, value, start, l.pos)
	default:
		return NewToken(TokenTypeColon, value, start, l.pos)
	}
}

// Helper methods

// isAtEnd returns true if we've reached the end of source
func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

// peek returns the current character without advancing
func (l *Lexer) peek() byte {
	return l.peekAt(0)
}

// peekAt returns the character n bytes ahead, or 0 past the end
func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.source) {
		return 0
	}
	return l.source[l.pos+n]
}

// advance consumes and returns the current character
func (l *Lexer) advance() byte {
	if l.isAtEnd() {
		return 0
	}
	ch := l.source[l.pos]
	l.pos++
	return ch
}

func isFieldStructural(ch byte) bool {
	switch ch {
	case CharOpenBrace, CharCloseBrace, CharDot, CharOpenSquare, CharCloseSquare,
		CharDollar, CharAt, CharComma, CharColon:
		return true
	default:
		return false
	}
}
