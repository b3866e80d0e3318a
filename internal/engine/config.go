package engine

import "time"

// Config holds all engine configuration, injected from main.
type Config struct {
	MaxResumeChars       int // resume text longer than this is truncated before scoring
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
}

var cfg Config

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
}
