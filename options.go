package roadsafe

import "time"

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	username string
	password string

	readinessTimeout time.Duration
	seedDemoData     bool
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithUsername sets the database username (ACL auth).
func WithUsername(username string) Option {
	return optionFunc(func(c *clientConfig) {
		c.username = username
	})
}

// WithReadinessTimeout bounds the startup wait for the database.
// Default: 10s.
func WithReadinessTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.readinessTimeout = d
	})
}

// WithDemoData seeds the built-in demo interventions when the store is empty.
// Seeding failures are swallowed; an unreachable store surfaces on first use.
func WithDemoData() Option {
	return optionFunc(func(c *clientConfig) {
		c.seedDemoData = true
	})
}
