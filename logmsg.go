// Package logmsg compiles log message templates and renders them against
// positional arguments and structured tree data.
//
// A template is literal text with replacement fields in braces:
//
//	user {name} bought {0} items for {$cart.total}
//
// # Template Syntax
//
// Doubled braces are escapes: "{{" renders "{" and "}}" renders "}".
//
// A field whose body is a signed integer refers to a positional argument:
//
//	{0}   first argument
//	{-1}  last argument (negative indexes count from the end)
//	{@0}  first argument, serialized
//
// Any other body is a path into the tree data:
//
//	{}               the tree data root
//	{user.name}      key lookups
//	{items[0].id}    list indexes
//	{$user}          the value itself, not serialized
//
// Positional references are passed through as-is unless prefixed with '@';
// tree data references are serialized unless prefixed with '$'.
//
// # Basic Usage
//
//	tmpl := logmsg.MustCompile("user {name} logged in from {0}")
//	text := tmpl.Format([]any{"10.0.0.1"}, map[string]any{"name": "alice"})
//	// text: user "alice" logged in from 10.0.0.1
//
// For logger integration the renderer produces a printf-style format with an
// argument list, where serialized values are lazy and only encoded when the
// logger actually formats the line:
//
//	msg, _ := logmsg.NewRenderer().Render(tmpl, logmsg.RenderContext{Args: args, Data: data})
//	sugar.Infof(msg.Format(), msg.Args()...)
//
// # Failure Handling
//
// Compile errors are fatal and carry the kind, byte offset, line and column
// of the problem; CompileErrorDiagnostic renders the offending line with a
// caret. References that cannot be resolved at render time never fail by
// default; they keep their raw source text, e.g. "{5}". See FallbackStrategy
// for the alternatives.
package logmsg

import (
	"go.uber.org/zap"
)

// Compile compiles a template source. The only option consulted is
// WithLogger.
func Compile(source string, opts ...Option) (*Template, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}
	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return compile(source, logger)
}

// MustCompile compiles a template and panics if there's an error.
func MustCompile(source string, opts ...Option) *Template {
	tmpl, err := Compile(source, opts...)
	if err != nil {
		panic(err)
	}
	return tmpl
}
