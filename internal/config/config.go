package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// defaultSeedInventory is the stock loaded when SEED_INVENTORY is unset.
const defaultSeedInventory = `{"apple": 29, "bread": 12, "milk": 5}`

type Config struct {
	Port           string
	LogLevel       string
	SeedInventory  map[string]int
	RequestTimeout time.Duration
}

// Load reads configuration from the environment, applying defaults for
// anything unset. A malformed or negative seed inventory is a startup
// error rather than a silent fallback: the ledger guarantees stock
// never goes below zero, so it must not start there either.
func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	requestTimeout := 15 * time.Second
	if rt := os.Getenv("REQUEST_TIMEOUT_SECONDS"); rt != "" {
		if n, err := strconv.Atoi(rt); err == nil && n > 0 {
			requestTimeout = time.Duration(n) * time.Second
		}
	}

	seedJSON := os.Getenv("SEED_INVENTORY")
	if seedJSON == "" {
		seedJSON = defaultSeedInventory
	}

	seed := make(map[string]int)
	if err := json.Unmarshal([]byte(seedJSON), &seed); err != nil {
		return nil, fmt.Errorf("parse SEED_INVENTORY: %w", err)
	}
	for item, qty := range seed {
		if item == "" {
			return nil, fmt.Errorf("SEED_INVENTORY contains an empty item name")
		}
		if qty < 0 {
			return nil, fmt.Errorf("SEED_INVENTORY item %q has negative quantity %d", item, qty)
		}
	}

	return &Config{
		Port:           port,
		LogLevel:       logLevel,
		SeedInventory:  seed,
		RequestTimeout: requestTimeout,
	}, nil
}
