package anylogic

import "fmt"

// Inputs is a mutable set of named simulation inputs, instantiated from an
// experiment's defaults and adjusted by caller overrides before a run.
type Inputs struct {
	values []InputValue
}

// NewInputsFromExperiment copies the default inputs of the named experiment
// on the given version.
func NewInputsFromExperiment(version *Version, experimentName string) (*Inputs, error) {
	for _, exp := range version.Experiments {
		if exp.Name != experimentName {
			continue
		}
		values := make([]InputValue, len(exp.Inputs))
		copy(values, exp.Inputs)
		return &Inputs{values: values}, nil
	}
	return nil, fmt.Errorf("%w: %q on version %s", ErrExperimentNotFound, experimentName, version.ID)
}

// Set replaces the value of a named input. Unknown names are ErrInputNotFound.
func (in *Inputs) Set(name string, value any) error {
	for i := range in.values {
		if in.values[i].Name == name {
			in.values[i].Value = value
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInputNotFound, name)
}

// Get returns the current value of a named input.
func (in *Inputs) Get(name string) (any, error) {
	for i := range in.values {
		if in.values[i].Name == name {
			return in.values[i].Value, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInputNotFound, name)
}

// Array returns the input set in the wire format expected by run submission.
func (in *Inputs) Array() []InputValue {
	values := make([]InputValue, len(in.values))
	copy(values, in.values)
	return values
}
