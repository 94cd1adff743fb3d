package pipeline

import "time"

// Config controls concurrency and retry behavior.
type Config struct {
	// MaxInFlight bounds how many generation calls run simultaneously.
	MaxInFlight int

	// MaxAttempts is the retry ceiling for transient failures.
	// Each job makes at most this many external calls.
	MaxAttempts int

	// InitialWait is the backoff before the first retry.
	InitialWait time.Duration

	// MaxWait caps the backoff between retries.
	MaxWait time.Duration

	// Multiplier grows the backoff after each failed attempt.
	Multiplier float64

	// QueueSize bounds how many submitted jobs can wait for a worker.
	QueueSize int

	// EventBuffer sizes the completion notification channel.
	EventBuffer int
}

// DefaultConfig returns the recommended pipeline settings.
func DefaultConfig() Config {
	return Config{
		MaxInFlight: 3,
		MaxAttempts: 3,
		InitialWait: 1 * time.Second,
		MaxWait:     10 * time.Second,
		Multiplier:  2.0,
		QueueSize:   128,
		EventBuffer: 64,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxInFlight <= 0 {
		c.MaxInFlight = d.MaxInFlight
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = d.MaxAttempts
	}
	if c.InitialWait <= 0 {
		c.InitialWait = d.InitialWait
	}
	if c.MaxWait <= 0 {
		c.MaxWait = d.MaxWait
	}
	if c.Multiplier <= 1 {
		c.Multiplier = d.Multiplier
	}
	if c.QueueSize <= 0 {
		c.QueueSize = d.QueueSize
	}
	if c.EventBuffer <= 0 {
		c.EventBuffer = d.EventBuffer
	}
	return c
}
