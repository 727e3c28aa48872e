package logmsg

import (
	"fmt"
	"strings"

	"github.com/itsatony/go-cuserr"
	"go.uber.org/zap"
)

// RenderContext carries the two data sources of a render. A nil Args means
// no positional arguments were supplied, which is distinct from an empty
// list only in the miss kind reported. Data may be any value; maps, slices
// and the Sequence and Mapping interfaces are navigated natively.
type RenderContext struct {
	Args []any
	Data any
}

// Renderer turns compiled templates into messages. It is immutable and safe
// for concurrent use.
type Renderer struct {
	navigator    *Navigator
	serializer   Serializer
	placeholders PlaceholderConvention
	fallback     FallbackPolicy
	logger       *zap.Logger
}

// NewRenderer creates a renderer. Consulted options: WithLogger,
// WithSerializer, WithPlaceholderConvention, WithFallbackStrategy,
// WithFallbackPolicy, WithPropertyAccessor and WithItemAccessor.
func NewRenderer(opts ...Option) *Renderer {
	return newRenderer(newEngineConfig(opts))
}

func newRenderer(config *engineConfig) *Renderer {
	return &Renderer{
		navigator:    NewNavigator(config.properties, config.items, config.logger),
		serializer:   config.serializer,
		placeholders: config.placeholders,
		fallback:     config.fallback,
		logger:       config.logger,
	}
}

// Navigator returns the navigator used to resolve references
func (r *Renderer) Navigator() *Navigator {
	return r.navigator
}

// Render resolves every reference of t against rc. It only fails when the
// fallback policy refuses a miss.
func (r *Renderer) Render(t *Template, rc RenderContext) (*Message, error) {
	if t == nil {
		return nil, cuserr.NewValidationError(ErrCodeRender, ErrMsgNilTemplate)
	}

	var format, loggerFormat strings.Builder
	args := make([]any, 0, len(t.parts))
	var misses []Miss

	for i, part := range t.parts {
		var res Resolution
		var serialize bool

		switch p := part.(type) {
		case Literal:
			format.WriteString(strings.ReplaceAll(p.Text, PrintfPercent, PrintfEscapedPercent))
			loggerFormat.WriteString(r.placeholders.EscapeLiteral(p.Text, t.slotAt(i+1)))
			continue
		case PositionalRef:
			res = r.navigator.ResolvePositional(rc.Args, p.Index)
			serialize = p.Serialize
		case TreeDataRef:
			res = r.navigator.ResolvePath(rc.Data, p.Path)
			serialize = p.Serialize
		}

		value, miss, err := r.value(t, part, res, serialize)
		if err != nil {
			return nil, err
		}
		if miss != nil {
			misses = append(misses, *miss)
		}

		format.WriteString(PlaceholderPrintf)
		loggerFormat.WriteString(r.placeholders.Placeholder(len(args)))
		args = append(args, value)
	}

	r.logger.Debug(LogMsgRenderDone,
		zap.Int(LogFieldParts, len(t.parts)),
		zap.Int(LogFieldMisses, len(misses)))

	return &Message{
		format:       format.String(),
		loggerFormat: loggerFormat.String(),
		args:         args,
		data:         rc.Data,
		serializer:   r.serializer,
		misses:       misses,
	}, nil
}

// value produces the argument for a reference, applying the fallback
// policy on a miss.
func (r *Renderer) value(t *Template, part Part, res Resolution, serialize bool) (any, *Miss, error) {
	if res.Found {
		if serialize {
			return NewStructured(res.Value, r.serializer), nil, nil
		}
		return res.Value, nil, nil
	}

	miss := Miss{
		Kind:    res.Miss,
		Part:    part,
		Raw:     t.Raw(part),
		Segment: res.Segment,
	}
	sub, err := r.fallback.Substitute(miss)
	if err != nil {
		return nil, nil, err
	}
	if serialize && !sub.Verbatim {
		return NewStructured(sub.Value, r.serializer), &miss, nil
	}
	return sub.Value, &miss, nil
}

// Message is a rendered template. It offers a printf-style format with its
// argument list, the same arguments under the renderer's placeholder
// convention, and the fully materialized text. Serialized arguments are
// *Structured holders and stay unencoded until formatted.
type Message struct {
	format       string
	loggerFormat string
	args         []any
	data         any
	serializer   Serializer
	misses       []Miss
}

// Format returns the printf format, with literal '%' escaped
func (m *Message) Format() string {
	return m.format
}

// Args returns the arguments for Format and LoggerFormat
func (m *Message) Args() []any {
	return m.args
}

// LoggerFormat returns the format under the renderer's placeholder
// convention
func (m *Message) LoggerFormat() string {
	return m.loggerFormat
}

// LoggerArgs returns the arguments for LoggerFormat. They are the same
// values as Args.
func (m *Message) LoggerArgs() []any {
	return m.args
}

// String materializes the message text
func (m *Message) String() string {
	if len(m.args) == 0 {
		return strings.ReplaceAll(m.format, PrintfEscapedPercent, PrintfPercent)
	}
	return fmt.Sprintf(m.format, m.args...)
}

// Structured returns a lazy holder over the whole tree data, for loggers
// that attach structured context next to the text.
func (m *Message) Structured() *Structured {
	return NewStructured(m.data, m.serializer)
}

// Data returns the tree data the message was rendered with
func (m *Message) Data() any {
	return m.data
}

// Misses returns the references the fallback policy handled
func (m *Message) Misses() []Miss {
	return m.misses
}
