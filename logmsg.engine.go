package logmsg

import (
	"go.uber.org/zap"
)

// Engine bundles a template cache and a renderer so callers can render
// straight from template sources, as a logging frontend does.
type Engine struct {
	config   *engineConfig
	cache    *TemplateCache // nil when caching is disabled
	renderer *Renderer
	logger   *zap.Logger
}

// New creates a new Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := newEngineConfig(opts)
	if config.cacheSize < 0 {
		return nil, NewConfigError(ErrMsgInvalidCacheSize, LogFieldCache)
	}

	var cache *TemplateCache
	if config.cacheSize > 0 {
		cache = NewTemplateCache(config.cacheSize)
	}

	config.logger.Debug(LogMsgEngineCreated, zap.Int(LogFieldCache, config.cacheSize))

	return &Engine{
		config:   config,
		cache:    cache,
		renderer: newRenderer(config),
		logger:   config.logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Compile compiles source, consulting the cache first
func (e *Engine) Compile(source string) (*Template, error) {
	if e.cache == nil {
		return compile(source, e.logger)
	}
	return e.cache.GetOrCompile(source, e.compile)
}

func (e *Engine) compile(source string) (*Template, error) {
	return compile(source, e.logger)
}

// Render compiles source and renders it against rc
func (e *Engine) Render(source string, rc RenderContext) (*Message, error) {
	tmpl, err := e.Compile(source)
	if err != nil {
		return nil, err
	}
	return e.renderer.Render(tmpl, rc)
}

// Format renders source to text and never fails. A source that does not
// compile, or a render refused by the fallback policy, yields the source
// unchanged and a warning on the engine logger.
func (e *Engine) Format(source string, args []any, data any) string {
	msg, err := e.Render(source, RenderContext{Args: args, Data: data})
	if err != nil {
		e.logger.Warn(LogMsgFormatFallback,
			zap.String(LogFieldSource, source),
			zap.Error(err))
		return source
	}
	return msg.String()
}

// Renderer returns the engine's renderer
func (e *Engine) Renderer() *Renderer {
	return e.renderer
}

// CacheStats returns the template cache statistics. They are zero when
// caching is disabled.
func (e *Engine) CacheStats() CacheStats {
	if e.cache == nil {
		return CacheStats{}
	}
	return e.cache.Stats()
}

// ClearCache drops every cached template
func (e *Engine) ClearCache() {
	if e.cache != nil {
		e.cache.Clear()
	}
}
