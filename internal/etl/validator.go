package etl

import (
	"errors"
	"fmt"
)

var ErrUnknownTable = errors.New("unknown converter")

type Validator struct {
	Known []string
}

func NewValidator(known []string) *Validator {
	return &Validator{Known: known}
}

// ValidateNames checks every requested table name against the known set.
func (v *Validator) ValidateNames(names []string) error {
	known := make(map[string]bool, len(v.Known))
	for _, k := range v.Known {
		known[k] = true
	}
	for _, name := range names {
		if !known[name] {
			return fmt.Errorf("%w: %s", ErrUnknownTable, name)
		}
	}
	return nil
}
