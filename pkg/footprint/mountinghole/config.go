package mountinghole

import (
	"math"

	"github.com/matzehuels/footgen/pkg/errors"
)

// Config is one mounting-hole parameter set. Pad and Screw are optional
// diameters: a nil Pad means a bare hole without annular ring, a nil Screw
// defaults to twice the drill.
type Config struct {
	Drill  float64
	Pad    *float64
	Screw  *float64
	Labels []string
}

// Diameter returns a pointer to d, for the optional Config fields.
func Diameter(d float64) *float64 { return &d }

// HasPad reports whether the hole has an annular ring.
func (c Config) HasPad() bool { return c.Pad != nil }

// ScrewDiameter returns the screw-head diameter, defaulting to 2x drill.
func (c Config) ScrewDiameter() float64 {
	if c.Screw != nil {
		return *c.Screw
	}
	return 2.0 * c.Drill
}

// RingDiameter returns the pad diameter, or the drill when there is no ring.
func (c Config) RingDiameter() float64 {
	if c.Pad != nil {
		return *c.Pad
	}
	return c.Drill
}

// Validate rejects physically impossible holes: diameters that are not
// positive finite numbers and rings smaller than their drill.
func (c Config) Validate() error {
	if !validDiameter(c.Drill) {
		return errors.New(errors.ErrCodeInvalidGeometry, "drill diameter must be positive, got %g", c.Drill)
	}
	if c.Pad != nil {
		if !validDiameter(*c.Pad) {
			return errors.New(errors.ErrCodeInvalidGeometry, "pad diameter must be positive, got %g", *c.Pad)
		}
		if *c.Pad < c.Drill {
			return errors.New(errors.ErrCodeInvalidGeometry, "pad diameter %g smaller than drill %g", *c.Pad, c.Drill)
		}
	}
	if c.Screw != nil && !validDiameter(*c.Screw) {
		return errors.New(errors.ErrCodeInvalidGeometry, "screw diameter must be positive, got %g", *c.Screw)
	}
	for _, l := range c.Labels {
		if err := errors.ValidateLabel(l); err != nil {
			return err
		}
	}
	return nil
}

// validDiameter is false for NaN as well as for zero, negative and infinite
// values.
func validDiameter(d float64) bool {
	return d > 0 && !math.IsInf(d, 0)
}
