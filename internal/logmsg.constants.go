package internal

// TokenType represents the type of a lexical token
type TokenType string

// Token type constants
const (
	TokenTypeText           TokenType = "TEXT"
	TokenTypeName           TokenType = "NAME"
	TokenTypeBegin          TokenType = "BEGIN"
	TokenTypeBeginStringify TokenType = "BEGIN_STRINGIFY"
	TokenTypeBeginSerialize TokenType = "BEGIN_SERIALIZE"
	TokenTypeEnd            TokenType = "END"
	TokenTypeDot            TokenType = "DOT"
	TokenTypeOpenSquare     TokenType = "OPEN_SQUARE"
	TokenTypeCloseSquare    TokenType = "CLOSE_SQUARE"
	TokenTypeDollar         TokenType = "DOLLAR"
	TokenTypeAt             TokenType = "AT"
	TokenTypeComma          TokenType = "COMMA"
	TokenTypeColon          TokenType = "COLON"
	TokenTypeEOF            TokenType = "EOF"
)

// LexMode is the lexer state
type LexMode int

// Lexer modes
const (
	LexModeLiteral LexMode = iota
	LexModeField
)

// Lexer mode names for debugging
const (
	LexModeNameLiteral = "LITERAL"
	LexModeNameField   = "FIELD"
)

// String returns the mode name
func (m LexMode) String() string {
	if m == LexModeField {
		return LexModeNameField
	}
	return LexModeNameLiteral
}

// Character constants
const (
	CharOpenBrace   = '{'
	CharCloseBrace  = '}'
	CharDot         = '.'
	CharOpenSquare  = '['
	CharCloseSquare = ']'
	CharDollar      = '$'
	CharAt          = '@'
	CharComma       = ','
	CharColon       = ':'
	CharNewline     = '\n'
	CharCarriageRet = '\r'
	CharSpace       = ' '
	CharCaret       = '^'
)

// Characters a positional index may start with
const IntegerLeadChars = "+-0123456789"

// ErrorKind classifies a template syntax error
type ErrorKind string

// Syntax error kinds
const (
	ErrorKindUnterminatedField        ErrorKind = "UnterminatedField"
	ErrorKindUnexpectedClosingBracket ErrorKind = "UnexpectedClosingBracket"
	ErrorKindStrayEndReplacement      ErrorKind = "StrayEndReplacement"
	ErrorKindInvalidIndexLiteral      ErrorKind = "InvalidIndexLiteral"
	ErrorKindEmptyPropertyName        ErrorKind = "EmptyPropertyName"
	ErrorKindAmbiguousLeadingDigit    ErrorKind = "AmbiguousLeadingDigit"
	ErrorKindMisplacedModifier        ErrorKind = "MisplacedModifier"
	ErrorKindTrailingPositional       ErrorKind = "TrailingContentAfterPositionalIndex"
	ErrorKindUnexpectedToken          ErrorKind = "UnexpectedToken"
)

// Syntax error message constants
const (
	ErrMsgSingleCloseBrace     = "single '}' encountered in format string"
	ErrMsgSingleCloseSquare    = "single ']' encountered in replacement field"
	ErrMsgExpectedFieldEnd     = "expected '}' before end of string"
	ErrMsgExpectedCloseBrace   = "expected '}'"
	ErrMsgExpectedPathContinue = "expected '.', '[' or '}'"
	ErrMsgExpectedPropertyName = "expected property name"
	ErrMsgExpectedArrayIndex   = "expected array index"
	ErrMsgInvalidArrayIndex    = "invalid array index"
	ErrMsgExpectedCloseSquare  = "expected ']'"
	ErrMsgInvalidPositional    = "invalid positional index"
	ErrMsgMisplacedModifierFmt = "modifier '%s' must immediately follow '{'"
	ErrMsgInvalidInFieldFmt    = "invalid '%s' in replacement field"
	ErrMsgUnexpectedTokenFmt   = "unexpected token: %s"
)

// Diagnostic format constants
const (
	DiagFmtHeader = "at index %d, line %d: %s"
	DiagSeparator = "\n\n"
	DiagNewline   = "\n"
)

// Log message constants
const (
	LogMsgLexerCreated   = "lexer created"
	LogMsgTokenizerStart = "starting tokenization"
	LogMsgTokenizerEnd   = "tokenization complete"
	LogMsgParserCreated  = "parser created"
	LogMsgParserStart    = "starting parse"
	LogMsgParserEnd      = "parse complete"
	LogMsgParseFailed    = "parse failed"
)

// Log field names
const (
	LogFieldSource = "source_length"
	LogFieldTokens = "token_count"
	LogFieldNodes  = "node_count"
	LogFieldKind   = "kind"
	LogFieldOffset = "offset"
)

// StringValueEmpty is the empty string
const StringValueEmpty = ""
