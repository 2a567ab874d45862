package quadrature

import (
	"fmt"
	"strings"

	"github.com/leonjayakusuma/NumIntViz/signal"
)

// Rule enumerates the fixed-node rules, the ones parameterised by a number
// of equal width subintervals.
type Rule int

const (
	RiemannLeftRule Rule = iota
	RiemannRightRule
	RiemannMidRule
	TrapezoidRule
	SimpsonRule
)

// Rules lists every fixed-node rule in display order.
var Rules = []Rule{RiemannLeftRule, RiemannRightRule, RiemannMidRule, TrapezoidRule, SimpsonRule}

// String returns the display name of the rule.
func (r Rule) String() string {
	switch r {
	case RiemannLeftRule:
		return "Riemann Left"
	case RiemannRightRule:
		return "Riemann Right"
	case RiemannMidRule:
		return "Riemann Mid"
	case TrapezoidRule:
		return "Trapezoidal"
	case SimpsonRule:
		return "Simpson"
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// Valid reports whether r is one of Rules.
func (r Rule) Valid() bool {
	return r >= RiemannLeftRule && r <= SimpsonRule
}

// MarshalText implements encoding.TextMarshaler.
func (r Rule) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRule, int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rule) UnmarshalText(text []byte) error {
	parsed, err := ParseRule(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

var ruleNames = map[string]Rule{
	"riemannleft":  RiemannLeftRule,
	"left":         RiemannLeftRule,
	"riemannright": RiemannRightRule,
	"right":        RiemannRightRule,
	"riemannmid":   RiemannMidRule,
	"mid":          RiemannMidRule,
	"midpoint":     RiemannMidRule,
	"trapezoidal":  TrapezoidRule,
	"trapezoid":    TrapezoidRule,
	"simpson":      SimpsonRule,
}

// ParseRule maps a rule name to a Rule. Case, blanks, '-' and '_' are
// ignored so "Riemann Left", "riemann-left" and "RIEMANN_LEFT" all name the
// same rule.
func ParseRule(name string) (Rule, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(name))
	if rule, ok := ruleNames[key]; ok {
		return rule, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRule, name)
}

// Fixed applies rule to f over [a, b] with n subintervals.
func Fixed(rule Rule, f signal.Signal, a, b float64, n int) (Result, error) {
	switch rule {
	case RiemannLeftRule:
		return RiemannLeft(f, a, b, n), nil
	case RiemannRightRule:
		return RiemannRight(f, a, b, n), nil
	case RiemannMidRule:
		return RiemannMid(f, a, b, n), nil
	case TrapezoidRule:
		return Trapezoid(f, a, b, n), nil
	case SimpsonRule:
		return Simpson(f, a, b, n), nil
	}
	return Result{}, fmt.Errorf("%w: %v", ErrUnknownRule, rule)
}
