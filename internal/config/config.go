// Package config loads JSON configuration files into caller-supplied structs.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads the JSON file at path and decodes it into cfg.
//
// Example:
//
//	type Defaults struct {
//		LogLevel string `json:"log_level"`
//	}
//	var d Defaults
//	if err := config.Load("./configs/mmusim.json", &d); err != nil {
//		log.Fatal(err)
//	}
func Load[T any](path string, cfg *T) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening config %s: %w", path, err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		return fmt.Errorf("decoding config %s: %w", path, err)
	}
	return nil
}
