// File: policy.go
// Role: Policy enum and label parsing, spec §6.
package appalloc

import "fmt"

// Policy selects how an app picks among its cached candidate paths each
// round it proposes an allocation.
type Policy int

const (
	Random Policy = iota
	SPF
	BestFit
	RandomFeas
	SPFFeas
	BestFitFeas
)

var policyLabels = map[string]Policy{
	"random":      Random,
	"spf":         SPF,
	"bestfit":     BestFit,
	"randomfeas":  RandomFeas,
	"spffeas":     SPFFeas,
	"bestfitfeas": BestFitFeas,
}

var policyNames = map[Policy]string{
	Random:      "random",
	SPF:         "spf",
	BestFit:     "bestfit",
	RandomFeas:  "randomfeas",
	SPFFeas:     "spffeas",
	BestFitFeas: "bestfitfeas",
}

// ParsePolicy parses one of the six case-sensitive lowercase labels
// into a Policy. Unknown labels fail with ErrInvalidArgument listing
// the legal values.
func ParsePolicy(label string) (Policy, error) {
	p, ok := policyLabels[label]
	if !ok {
		return 0, fmt.Errorf("%w: unknown policy %q, legal values: random, spf, bestfit, randomfeas, spffeas, bestfitfeas", ErrInvalidArgument, label)
	}

	return p, nil
}

// String returns the canonical label for p, or "" if p is out of range.
func (p Policy) String() string {
	return policyNames[p]
}

func (p Policy) valid() bool {
	_, ok := policyNames[p]
	return ok
}

// feasOnly reports whether p is one of the *Feas variants, which
// restrict path selection to currently feasible cached paths before
// applying the base policy (spec §9 Open Question (c)).
func (p Policy) feasOnly() bool {
	switch p {
	case RandomFeas, SPFFeas, BestFitFeas:
		return true
	default:
		return false
	}
}

// base returns the underlying selection criterion shared by p and its
// *Feas counterpart, if any.
func (p Policy) base() Policy {
	switch p {
	case RandomFeas:
		return Random
	case SPFFeas:
		return SPF
	case BestFitFeas:
		return BestFit
	default:
		return p
	}
}
