// Package config reads settings from environment variables.
package config

import (
	"os"
	"time"
)

// Value of key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Value of key parsed as a Go duration ("250ms", "2s"). Unset, empty
// or unparseable values yield the fallback.
func GetDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
