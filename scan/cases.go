package scan

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v2"
)

//go:embed cases.yaml
var casesYAML []byte

// Case is one row of the conformance table: a primitive, a mode, an input
// and the outcome expected of it.
type Case struct {
	Name      string  `yaml:"name"`
	Primitive string  `yaml:"primitive"` // e.g. alpha0
	Mode      string  `yaml:"mode"`      // complete or streaming
	Input     string  `yaml:"input"`
	Outcome   Outcome `yaml:"outcome"`
	Match     string  `yaml:"match"`
	Rest      string  `yaml:"rest"`
}

// Cases returns the built-in conformance table.
func Cases() ([]Case, error) {
	return ParseCases(casesYAML)
}

// ParseCases decodes a conformance table from YAML.
func ParseCases(data []byte) ([]Case, error) {
	var cases []Case
	if err := yaml.UnmarshalStrict(data, &cases); err != nil {
		return nil, fmt.Errorf("parsing cases: %w", err)
	}
	return cases, nil
}

// Check runs the case and reports how the result differs from what the
// case expects. On success the match followed by the rest must also
// rebuild the input exactly.
func (c Case) Check() error {
	mode, err := ParseMode(c.Mode)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	p, err := Lookup(c.Primitive, mode)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	got := Apply(p, c.Input)
	if got.Outcome != c.Outcome {
		return fmt.Errorf("%s: %s(%q) gave %s, expected %s", c.Name, c.Primitive, c.Input, got.Outcome, c.Outcome)
	}
	if got.Outcome != Success {
		return nil
	}
	if got.Match != c.Match || got.Rest != c.Rest {
		return fmt.Errorf("%s: %s(%q) gave (%q, %q), expected (%q, %q)", c.Name, c.Primitive, c.Input, got.Rest, got.Match, c.Rest, c.Match)
	}
	if got.Match+got.Rest != c.Input {
		return fmt.Errorf("%s: %q + %q does not rebuild %q", c.Name, got.Match, got.Rest, c.Input)
	}
	return nil
}

// Encode renders v as YAML.
func Encode(v interface{}) (string, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
