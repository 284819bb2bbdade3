// Package testkit loads expectation fixtures: a .leo input with one
// statement or program per test, next to a YAML .out file holding the
// expected rendered diagnostics.
package testkit

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ExpectationFile is one parsed .out fixture.
type ExpectationFile struct {
	Namespace   string   `yaml:"namespace"`
	Expectation string   `yaml:"expectation"`
	Outputs     []string `yaml:"outputs"`
}

// ShouldFail reports whether the fixture expects diagnostics.
func (e *ExpectationFile) ShouldFail() bool {
	return e.Expectation == "Fail"
}

// LoadExpectations reads and parses a YAML expectation file.
func LoadExpectations(path string) (*ExpectationFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out ExpectationFile
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse expectations %s: %w", path, err)
	}
	if out.Namespace == "" {
		return nil, fmt.Errorf("expectations %s: missing namespace", path)
	}
	return &out, nil
}

// LoadInputLines reads a .leo fixture and returns its non-empty lines, one
// test case per line.
func LoadInputLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
