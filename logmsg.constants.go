package logmsg

// Version is the library version reported by the CLI
const Version = "0.4.0"

// FallbackStrategy selects what the renderer substitutes for a reference
// that cannot be resolved.
type FallbackStrategy int

const (
	// FallbackKeepRaw substitutes the raw field source, e.g. "{5}"
	FallbackKeepRaw FallbackStrategy = iota
	// FallbackNull substitutes nil
	FallbackNull
	// FallbackEmpty substitutes the empty string
	FallbackEmpty
	// FallbackLog logs a warning and keeps the raw field source
	FallbackLog
	// FallbackError aborts rendering with a not-found error
	FallbackError
)

// Fallback strategy names used by configuration and the CLI
const (
	FallbackNameKeepRaw = "keepraw"
	FallbackNameNull    = "null"
	FallbackNameEmpty   = "empty"
	FallbackNameLog     = "log"
	FallbackNameError   = "error"
)

// String returns the string representation of the fallback strategy
func (s FallbackStrategy) String() string {
	switch s {
	case FallbackNull:
		return FallbackNameNull
	case FallbackEmpty:
		return FallbackNameEmpty
	case FallbackLog:
		return FallbackNameLog
	case FallbackError:
		return FallbackNameError
	default:
		return FallbackNameKeepRaw
	}
}

// ParseFallbackStrategy converts a name to a FallbackStrategy.
// Unknown names map to FallbackKeepRaw.
func ParseFallbackStrategy(s string) FallbackStrategy {
	switch s {
	case FallbackNameNull:
		return FallbackNull
	case FallbackNameEmpty:
		return FallbackEmpty
	case FallbackNameLog:
		return FallbackLog
	case FallbackNameError:
		return FallbackError
	default:
		return FallbackKeepRaw
	}
}

// IsValidFallbackStrategy checks if a string names a fallback strategy
func IsValidFallbackStrategy(s string) bool {
	switch s {
	case FallbackNameKeepRaw, FallbackNameNull, FallbackNameEmpty,
		FallbackNameLog, FallbackNameError:
		return true
	default:
		return false
	}
}

// Default configuration values
const (
	DefaultCacheMaxEntries = 512
	DefaultJSONIndent      = ""
)

// Placeholder convention names
const (
	PlaceholderNamePrintf  = "printf"
	PlaceholderNameSLF4J   = "slf4j"
	PlaceholderNameIndexed = "indexed"
)

// Placeholder tokens
const (
	PlaceholderPrintf      = "%v"
	PlaceholderSLF4J       = "{}"
	PlaceholderIndexedFmt  = "{%d}"
	PrintfPercent          = "%"
	PrintfEscapedPercent   = "%%"
	SLF4JEscape            = `\`
	IndexedOpen            = "{"
	IndexedClose           = "}"
	IndexedEscapedOpen     = "{{"
	IndexedEscapedClose    = "}}"
	StructuredSerializeErr = "!(serialize %T: %v)"
)

// Serializer names
const (
	SerializerNameJSON   = "json"
	SerializerNameYAML   = "yaml"
	SerializerNameString = "string"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyKind    = "kind"
	MetaKeyOffset  = "offset"
	MetaKeyLine    = "line"
	MetaKeyColumn  = "column"
	MetaKeySource  = "source"
	MetaKeyRaw     = "raw"
	MetaKeySegment = "segment"
	MetaKeyOption  = "option"
)

// Log message constants
const (
	LogMsgCompileStart   = "compiling template"
	LogMsgCompileFailed  = "template compilation failed"
	LogMsgCompileDone    = "template compiled"
	LogMsgRenderDone     = "template rendered"
	LogMsgFallbackMiss   = "unresolved template reference"
	LogMsgAccessorPanic  = "accessor panicked"
	LogMsgEngineCreated  = "engine created"
	LogMsgFormatFallback = "template not compilable, using source verbatim"
)

// Log field names
const (
	LogFieldSource  = "source"
	LogFieldParts   = "part_count"
	LogFieldMisses  = "miss_count"
	LogFieldKind    = "kind"
	LogFieldRaw     = "raw"
	LogFieldSegment = "segment"
	LogFieldPanic   = "panic"
	LogFieldCache   = "cache_size"
	LogFieldError   = "error"
)

// String constants
const (
	StringValueEmpty = ""
	StringNewline    = "\n"
)
