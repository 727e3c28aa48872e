package logmsg

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring Compile, NewRenderer and New.
type Option func(*engineConfig)

// engineConfig holds the internal configuration shared by the compiler,
// the renderer and the engine.
type engineConfig struct {
	logger           *zap.Logger
	serializer       Serializer
	placeholders     PlaceholderConvention
	fallbackStrategy FallbackStrategy
	fallback         FallbackPolicy
	properties       PropertyAccessor
	items            ItemAccessor
	cacheSize        int
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		logger:           nil,
		serializer:       JSONSerializer{},
		placeholders:     PrintfConvention{},
		fallbackStrategy: FallbackKeepRaw,
		fallback:         nil,
		properties:       nil,
		items:            nil,
		cacheSize:        DefaultCacheMaxEntries,
	}
}

// newEngineConfig applies opts over the defaults
func newEngineConfig(opts []Option) *engineConfig {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}
	if config.logger == nil {
		config.logger = zap.NewNop()
	}
	if config.fallback == nil {
		config.fallback = NewFallbackPolicy(config.fallbackStrategy, config.logger)
	}
	return config
}

// WithLogger sets the logger.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithSerializer sets the serializer used for serialized references.
// Default: JSONSerializer{}
func WithSerializer(serializer Serializer) Option {
	return func(c *engineConfig) {
		if serializer != nil {
			c.serializer = serializer
		}
	}
}

// WithPlaceholderConvention sets the convention of the logger-native output.
// Default: PrintfConvention{}
func WithPlaceholderConvention(convention PlaceholderConvention) Option {
	return func(c *engineConfig) {
		if convention != nil {
			c.placeholders = convention
		}
	}
}

// WithFallbackStrategy selects one of the built-in fallback policies.
// Default: FallbackKeepRaw
func WithFallbackStrategy(strategy FallbackStrategy) Option {
	return func(c *engineConfig) {
		c.fallbackStrategy = strategy
	}
}

// WithFallbackPolicy sets a custom fallback policy. It takes precedence
// over WithFallbackStrategy.
func WithFallbackPolicy(policy FallbackPolicy) Option {
	return func(c *engineConfig) {
		c.fallback = policy
	}
}

// WithPropertyAccessor sets the accessor consulted for keys on values that
// are not maps.
func WithPropertyAccessor(accessor PropertyAccessor) Option {
	return func(c *engineConfig) {
		c.properties = accessor
	}
}

// WithItemAccessor sets the accessor consulted for indexes on values that
// are not lists.
func WithItemAccessor(accessor ItemAccessor) Option {
	return func(c *engineConfig) {
		c.items = accessor
	}
}

// WithCacheSize sets the maximum number of compiled templates an Engine
// keeps. Use 0 to disable caching.
// Default: 512
func WithCacheSize(size int) Option {
	return func(c *engineConfig) {
		c.cacheSize = size
	}
}
