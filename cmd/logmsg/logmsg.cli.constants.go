package main

// Command names
const (
	CmdNameRender   = "render"
	CmdNameValidate = "validate"
	CmdNameParts    = "parts"
	CmdNameVersion  = "version"
)

// Flag names - long form
const (
	FlagTemplate    = "template"
	FlagArg         = "arg"
	FlagData        = "data"
	FlagDataFile    = "data-file"
	FlagMode        = "mode"
	FlagSerializer  = "serializer"
	FlagPlaceholder = "placeholder"
	FlagFallback    = "fallback"
	FlagFormat      = "format"
	FlagVerbose     = "verbose"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagArgShort      = "a"
	FlagDataShort     = "d"
	FlagDataFileShort = "f"
	FlagModeShort     = "m"
	FlagFormatShort   = "F"
	FlagVerboseShort  = "v"
)

// Render modes
const (
	ModeGeneric    = "generic"
	ModeLogger     = "logger"
	ModeStructured = "structured"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Flag default values
const (
	FlagDefaultMode        = ModeGeneric
	FlagDefaultSerializer  = "json"
	FlagDefaultPlaceholder = "printf"
	FlagDefaultFallback    = "keepraw"
	FlagDefaultFormat      = OutputFormatText
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgMissingTemplate    = "template source required: pass it inline or with --template"
	ErrMsgTemplateTwice      = "template given both inline and with --template"
	ErrMsgReadFileFailed     = "failed to read file"
	ErrMsgReadStdinFailed    = "failed to read from stdin"
	ErrMsgInvalidData        = "invalid JSON or YAML data"
	ErrMsgDataTwice          = "use only one of --data and --data-file"
	ErrMsgInvalidMode        = "invalid render mode"
	ErrMsgInvalidFallback    = "invalid fallback strategy"
	ErrMsgInvalidFormat      = "invalid output format"
	ErrMsgRenderFailed       = "template rendering failed"
	ErrMsgCompileFailed      = "template compilation failed"
	ErrMsgEncodeOutputFailed = "failed to encode output"
)

// CLI metadata
const (
	CLIName        = "logmsg"
	CLIDescription = "Compile and render log message templates"
	CLILong        = `logmsg compiles log message templates and renders them against
positional arguments and tree data.

Fields:
    {0} {-1}        positional arguments, negative indexes count from the end
    {user.name}     tree data path, serialized (JSON by default)
    {$user.name}    tree data path, formatted as is
    {@0}            positional argument, serialized
    {{ }}           literal braces`
)

// Help text
const (
	HelpRenderShort = "Render a template"
	HelpRenderLong  = `Render a template against positional arguments and tree data.

The template is the first argument or is read with --template ("-" for stdin).
Tree data is JSON or YAML, inline with --data or from --data-file.`
	HelpRenderExample = `  logmsg render 'user {$name} from {0}' --arg 10.0.0.1 --data '{"name": "ann"}'
  logmsg render -t template.txt -f data.yaml --mode logger --placeholder slf4j
  echo '{bag.prices[0]}' | logmsg render -t - -d 'bag: {prices: [9.5]}'`

	HelpValidateShort = "Check a template for syntax errors"
	HelpValidateLong  = `Compile a template and report the first syntax error with its position.`

	HelpPartsShort = "Show the compiled parts of a template as YAML"

	HelpVersionShort = "Show version information"

	HelpFlagTemplate    = `template file ("-" for stdin)`
	HelpFlagArg         = "positional argument (repeatable)"
	HelpFlagData        = "tree data as JSON or YAML"
	HelpFlagDataFile    = "file holding tree data as JSON or YAML"
	HelpFlagMode        = "output mode: generic, logger or structured"
	HelpFlagSerializer  = "serializer for serialized fields: json, yaml or string"
	HelpFlagPlaceholder = "placeholder convention for logger mode: printf, slf4j or indexed"
	HelpFlagFallback    = "fallback for unresolved references: keepraw, null, empty, log or error"
	HelpFlagFormat      = "output format: text or json"
	HelpFlagVerbose     = "log compiler and renderer activity to stderr"
)

// Output templates
const (
	ValidationTextSuccess = "Template is valid"
	VersionTextTemplate   = "%s version %s\nGo: %s\n"
	LoggerArgFormat       = "  [%d] %v\n"
)

// Structured output keys
const (
	PartKindLiteral    = "literal"
	PartKindPositional = "positional"
	PartKindTreeData   = "tree_data"
)

// File permission constant
const (
	FilePermissions = 0644
)
