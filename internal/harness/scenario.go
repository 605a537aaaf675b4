package harness

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/derr/internal/measure"
)

// Scenario defines a calculation scenario: named quantities, a sequence of
// steps that combine them, and assertions over the results.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Units maps display symbols to unit text, e.g. J: "kg m^2 s^-2".
	Units map[string]string `yaml:"units,omitempty"`

	// Quantities are defined before any step runs, in order.
	Quantities []Quantity `yaml:"quantities"`

	// Steps are evaluated in order. A step may use results of earlier steps.
	Steps []Step `yaml:"steps"`

	// Assertions compare quantities and results after all steps ran.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Quantity is a named measurement.
type Quantity struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
	Error float64 `yaml:"error"`

	// Unit is a declared symbol or unit text. Empty means dimensionless.
	Unit string `yaml:"unit,omitempty"`

	// SigFigs overrides the display precision. Zero keeps the default.
	SigFigs int `yaml:"sigfigs,omitempty"`
}

// Step is one operation: Left Op Right, optionally stored as As.
type Step struct {
	Op     string  `yaml:"op"`
	Left   string  `yaml:"left"`
	Right  string  `yaml:"right"`
	As     string  `yaml:"as,omitempty"`
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect checks a step's outcome. Unset fields are not checked.
type Expect struct {
	Value *float64 `yaml:"value,omitempty"`
	Error *float64 `yaml:"error,omitempty"`

	// Tolerance is the absolute tolerance for Value and Error.
	// Zero means DefaultTolerance.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	// Dimensions is the expected dimension string, e.g. "L T^-1".
	Dimensions string `yaml:"dimensions,omitempty"`

	// Show is the expected Show text.
	Show string `yaml:"show,omitempty"`

	// Fails expects the step to fail. Code optionally pins the error code.
	Fails bool   `yaml:"fails,omitempty"`
	Code  string `yaml:"code,omitempty"`
}

// DefaultTolerance applies when an Expect sets no tolerance.
const DefaultTolerance = 1e-9

// Assertion compares two operands with a named predicate.
type Assertion struct {
	// Type is a predicate name, e.g. "overlaps" or "greater_or_equal".
	Type  string `yaml:"type"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`

	// Want is the expected result. Required.
	Want *bool `yaml:"want"`
}

// ErrInvalidScenario is wrapped by every validation failure.
var ErrInvalidScenario = errors.New("invalid scenario")

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 && len(s.Assertions) == 0 {
		return fmt.Errorf("at least one step or assertion is required")
	}

	for sym, text := range s.Units {
		if sym == "" || text == "" {
			return fmt.Errorf("units: symbol and unit text are required")
		}
	}

	seen := map[string]bool{}
	for i, q := range s.Quantities {
		if q.Name == "" {
			return fmt.Errorf("quantities[%d]: name is required", i)
		}
		if seen[q.Name] {
			return fmt.Errorf("quantities[%d]: duplicate name %q", i, q.Name)
		}
		seen[q.Name] = true
		if q.SigFigs < 0 {
			return fmt.Errorf("quantities[%d]: sigfigs must be >= 1", i)
		}
	}

	for i, step := range s.Steps {
		if step.Op == "" {
			return fmt.Errorf("steps[%d]: op is required", i)
		}
		if step.Left == "" || step.Right == "" {
			return fmt.Errorf("steps[%d]: left and right are required", i)
		}
		if e := step.Expect; e != nil {
			if e.Tolerance < 0 {
				return fmt.Errorf("steps[%d].expect: tolerance must be >= 0", i)
			}
			if e.Code != "" && !e.Fails {
				return fmt.Errorf("steps[%d].expect: code requires fails: true", i)
			}
		}
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a); err != nil {
			return err
		}
	}

	return nil
}

func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}
	if _, err := measure.ParsePredicate(a.Type); err != nil {
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	if a.Left == "" || a.Right == "" {
		return fmt.Errorf("assertions[%d]: left and right are required", index)
	}
	if a.Want == nil {
		return fmt.Errorf("assertions[%d]: want is required", index)
	}
	return nil
}
