package sbd

import "log/slog"

// Option configures a Splitter.
type Option func(*config)

type config struct {
	specialCases bool
	logger       *slog.Logger
}

func defaultConfig() config {
	return config{
		specialCases: true,
		logger:       slog.Default(),
	}
}

// WithoutSpecialCases disables the URL/ellipsis/"Ph.D." scan stage, leaving
// only the global substitution rules active. With the stage disabled, every
// period of an ellipsis run is treated as a candidate sentence end and URL
// paths may be split mid-address.
func WithoutSpecialCases() Option {
	return func(c *config) {
		c.specialCases = false
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
