package config

import "log"

// The server refuses to start without real secrets. Running an admin area on
// a placeholder signing key or password hash is worse than not running.

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}

func MustNonEmptyBytes(value []byte, envName string) {
	if len(value) == 0 {
		log.Fatalf("missing required env %s", envName)
	}
}
