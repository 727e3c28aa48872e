package internal

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// Parser produces an ordered node list from a token stream by recursive descent
type Parser struct {
	tokens []Token
	source string // Original source for diagnostics
	pos    int
	logger *zap.Logger
}

// NewParser creates a new parser for the given token stream
func NewParser(tokens []Token, source string, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgParserCreated, zap.Int(LogFieldTokens, len(tokens)))
	return &Parser{
		tokens: tokens,
		source: source,
		pos:    0,
		logger: logger,
	}
}

// Parse consumes the whole token stream. Any grammar violation aborts the
// parse with a *SyntaxError.
func (p *Parser) Parse() ([]Node, error) {
	p.logger.Debug(LogMsgParserStart)

	var nodes []Node
	for !p.isAtEnd() {
		node, err := p.parseOnePart()
		if err != nil {
			if serr, ok := err.(*SyntaxError); ok {
				p.logger.Debug(LogMsgParseFailed,
					zap.String(LogFieldKind, string(serr.Kind)),
					zap.Int(LogFieldOffset, serr.Position.Offset))
			}
			return nil, err
		}
		nodes = append(nodes, node)
	}

	p.logger.Debug(LogMsgParserEnd, zap.Int(LogFieldNodes, len(nodes)))
	return nodes, nil
}

// parseOnePart parses a literal run or a complete replacement field
func (p *Parser) parseOnePart() (Node, error) {
	tok := p.advance()

	switch tok.Type {
	case TokenTypeText:
		return &TextNode{Text: tok.Value, Span: tok.Span}, nil
	case TokenTypeBegin, TokenTypeBeginStringify, TokenTypeBeginSerialize:
		return p.parseReplacementField(tok)
	case TokenTypeEnd:
		return nil, p.newError(ErrorKindStrayEndReplacement, tok.Span.Start, ErrMsgSingleCloseBrace)
	default:
		return nil, p.newError(ErrorKindUnexpectedToken, tok.Span.Start,
			fmt.Sprintf(ErrMsgUnexpectedTokenFmt, tok.Value))
	}
}

// parseReplacementField parses everything after a field opener up to and
// including the closing '}'.
func (p *Parser) parseReplacementField(open Token) (Node, error) {
	var segments []Segment

	for {
		tok := p.advance()

		switch tok.Type {
		case TokenTypeEOF:
			return nil, p.newUnterminatedError()

		case TokenTypeEnd:
			return &PathNode{
				Segments:  segments,
				Serialize: open.Type != TokenTypeBeginStringify,
				Span:      Span{Start: open.Span.Start, End: tok.Span.End},
			}, nil

		case TokenTypeName:
			if len(segments) == 0 {
				node, err := p.parsePositional(open, tok)
				if err != nil {
					return nil, err
				}
				if node != nil {
					return node, nil
				}
			}
			name := strings.TrimSpace(tok.Value)
			if name == StringValueEmpty {
				continue
			}
			if len(segments) > 0 {
				return nil, p.newError(ErrorKindUnexpectedToken, trimmedStart(tok), ErrMsgExpectedPathContinue)
			}
			segments = append(segments, KeySegment(name))

		case TokenTypeOpenSquare:
			index, err := p.parseArrayIndex()
			if err != nil {
				return nil, err
			}
			segments = append(segments, IndexSegment(index))

		case TokenTypeDot:
			name, err := p.parsePropertyName()
			if err != nil {
				return nil, err
			}
			segments = append(segments, KeySegment(name))

		case TokenTypeCloseSquare:
			return nil, p.newError(ErrorKindUnexpectedClosingBracket, tok.Span.Start, ErrMsgSingleCloseSquare)

		case TokenTypeDollar, TokenTypeAt:
			return nil, p.newError(ErrorKindMisplacedModifier, tok.Span.Start,
				fmt.Sprintf(ErrMsgMisplacedModifierFmt, tok.Value))

		default:
			return nil, p.newError(ErrorKindUnexpectedToken, tok.Span.Start,
				fmt.Sprintf(ErrMsgInvalidInFieldFmt, tok.Value))
		}
	}
}

// parsePositional checks whether the first name token of a field is a
// positional index. It returns a nil node when the token should be treated
// as a property name instead.
//
// A token that starts like an integer but does not parse as one is an error
// rather than a property name, while any other token silently becomes a key.
func (p *Parser) parsePositional(open, tok Token) (Node, error) {
	text := strings.TrimSpace(tok.Value)
	if text == StringValueEmpty {
		return nil, nil
	}

	index, err := strconv.Atoi(text)
	if err != nil {
		if strings.IndexByte(IntegerLeadChars, text[0]) >= 0 {
			return nil, p.newError(ErrorKindAmbiguousLeadingDigit, trimmedStart(tok), ErrMsgInvalidPositional)
		}
		return nil, nil
	}

	closeTok := p.advance()
	if closeTok.IsEOF() {
		return nil, p.newUnterminatedError()
	}
	if closeTok.Type != TokenTypeEnd {
		return nil, p.newError(ErrorKindTrailingPositional, closeTok.Span.Start, ErrMsgExpectedCloseBrace)
	}

	return &PositionalNode{
		Index:     index,
		Serialize: open.Type == TokenTypeBeginSerialize,
		Span:      Span{Start: open.Span.Start, End: closeTok.Span.End},
	}, nil
}

// parsePropertyName parses the name following a '.'
func (p *Parser) parsePropertyName() (string, error) {
	tok := p.advance()
	if tok.IsEOF() {
		return StringValueEmpty, p.newUnterminatedError()
	}
	if tok.Type != TokenTypeName {
		return StringValueEmpty, p.newError(ErrorKindEmptyPropertyName, tok.Span.Start, ErrMsgExpectedPropertyName)
	}
	name := strings.TrimSpace(tok.Value)
	if name == StringValueEmpty {
		return StringValueEmpty, p.newError(ErrorKindEmptyPropertyName, tok.Span.Start, ErrMsgExpectedPropertyName)
	}
	return name, nil
}

// parseArrayIndex parses the integer and closing ']' following a '['
func (p *Parser) parseArrayIndex() (int, error) {
	tok := p.advance()
	if tok.IsEOF() {
		return 0, p.newUnterminatedError()
	}
	if tok.Type != TokenTypeName {
		return 0, p.newError(ErrorKindInvalidIndexLiteral, tok.Span.Start, ErrMsgExpectedArrayIndex)
	}
	text := strings.TrimSpace(tok.Value)
	if text == StringValueEmpty {
		return 0, p.newError(ErrorKindInvalidIndexLiteral, tok.Span.Start, ErrMsgExpectedArrayIndex)
	}
	index, err := strconv.Atoi(text)
	if err != nil {
		return 0, p.newError(ErrorKindInvalidIndexLiteral, trimmedStart(tok), ErrMsgInvalidArrayIndex)
	}

	closeTok := p.advance()
	if closeTok.IsEOF() {
		return 0, p.newUnterminatedError()
	}
	if closeTok.Type != TokenTypeCloseSquare {
		return 0, p.newError(ErrorKindInvalidIndexLiteral, closeTok.Span.Start, ErrMsgExpectedCloseSquare)
	}
	return index, nil
}

// Helper methods

// current returns the current token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return NewEOFToken(len(p.source))
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token
func (p *Parser) advance() Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// isAtEnd returns true if we've reached EOF
func (p *Parser) isAtEnd() bool {
	return p.current().IsEOF()
}

// trimmedStart returns the offset of the first non-space byte of a name token
func trimmedStart(tok Token) int {
	return tok.Span.Start + len(tok.Value) - len(strings.TrimLeftFunc(tok.Value, unicode.IsSpace))
}

// Error helpers

func (p *Parser) newError(kind ErrorKind, offset int, message string) error {
	return &SyntaxError{
		Kind:     kind,
		Message:  message,
		Position: LocateOffset(p.source, offset),
		Source:   p.source,
	}
}

func (p *Parser) newUnterminatedError() error {
	return p.newError(ErrorKindUnterminatedField, len(p.source), ErrMsgExpectedFieldEnd)
}

// SyntaxError represents a grammar violation with its source position
type SyntaxError struct {
	Kind     ErrorKind
	Message  string
	Position Position
	Source   string
}

// Error renders the message together with the offending line and a caret
func (e *SyntaxError) Error() string {
	return FormatDiagnostic(e.Source, e.Position.Offset, e.Message)
}

// Parse is a convenience that tokenizes and parses source in one step
func Parse(source string, logger *zap.Logger) ([]Node, error) {
	tokens := NewLexer(source, logger).Tokenize()
	return NewParser(tokens, source, logger).Parse()
}
