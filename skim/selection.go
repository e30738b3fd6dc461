package skim

import "math"

// SelectionPolicy defines how a measured value is compared against a
// configured threshold. Discrete criteria (charge sign) use PolicyEqual,
// one-sided bounds use the limit policies, and magnitude bounds use the
// absolute variants.
type SelectionPolicy int

const (
	PolicyEqual SelectionPolicy = iota
	PolicyLowerLimit
	PolicyUpperLimit
	PolicyAbsUpperLimit
	PolicyAbsLowerLimit
)

// String returns the YAML/CLI name of the policy.
func (p SelectionPolicy) String() string {
	switch p {
	case PolicyEqual:
		return "equal"
	case PolicyLowerLimit:
		return "lower-limit"
	case PolicyUpperLimit:
		return "upper-limit"
	case PolicyAbsUpperLimit:
		return "abs-upper-limit"
	case PolicyAbsLowerLimit:
		return "abs-lower-limit"
	default:
		return "unknown"
	}
}

// Satisfied evaluates a single threshold under the policy.
func (p SelectionPolicy) Satisfied(value, threshold float64) bool {
	switch p {
	case PolicyEqual:
		return value == threshold
	case PolicyLowerLimit:
		return value > threshold
	case PolicyUpperLimit:
		return value < threshold
	case PolicyAbsUpperLimit:
		return math.Abs(value) < threshold
	case PolicyAbsLowerLimit:
		return math.Abs(value) > threshold
	default:
		return false
	}
}

// CutVariantSet holds the ordered list of alternative thresholds configured
// for one selection criterion, together with the comparison policy shared by
// all of them. The variant order is the bit order inside the packed cut
// container, so it must stay stable once events are being processed.
type CutVariantSet struct {
	Values []float64
	Policy SelectionPolicy
}

// NVariants returns the number of configured thresholds, which is also the
// bit width the criterion occupies inside a cut container.
func (s CutVariantSet) NVariants() int { return len(s.Values) }

// Mask evaluates value against every variant and returns one bit per
// satisfied threshold; bit i corresponds to Values[i]. Bits above
// NVariants()-1 are always zero.
func (s CutVariantSet) Mask(value float64) uint64 {
	var mask uint64
	for i, threshold := range s.Values {
		if s.Policy.Satisfied(value, threshold) {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// Loosest returns the least restrictive configured threshold under the
// policy: the smallest value for floor-type policies and the largest for
// ceiling-type ones. Not meaningful for PolicyEqual, where looseness is
// set membership (see MinimalPass).
func (s CutVariantSet) Loosest() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	loosest := s.Values[0]
	for _, v := range s.Values[1:] {
		switch s.Policy {
		case PolicyLowerLimit, PolicyAbsLowerLimit:
			if v < loosest {
				loosest = v
			}
		case PolicyUpperLimit, PolicyAbsUpperLimit:
			if v > loosest {
				loosest = v
			}
		}
	}
	return loosest
}

// MinimalPass checks the value against only the loosest variant. It is the
// cheap pre-filter run before the full per-variant encoding; a value passing
// any variant also passes MinimalPass (looseness monotonicity).
func (s CutVariantSet) MinimalPass(value float64) bool {
	if len(s.Values) == 0 {
		return true
	}
	if s.Policy == PolicyEqual {
		for _, v := range s.Values {
			if value == v {
				return true
			}
		}
		return false
	}
	return s.Policy.Satisfied(value, s.Loosest())
}
