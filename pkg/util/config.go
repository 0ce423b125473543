// pkg/util/config.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads the YAML file at filepath over a copy of defaults, so
// that keys absent from the file keep their default values. Unknown keys
// are an error. Note that the copy of defaults is shallow.
func LoadConfig[T any](filepath string, defaults T) (*T, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseConfig(data, defaults)
}

// ParseConfig is the in-memory equivalent of LoadConfig.
func ParseConfig[T any](data []byte, defaults T) (*T, error) {
	config := defaults

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	return &config, nil
}
