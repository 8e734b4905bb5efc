package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

// Cardinality bounds how often a substatement kind may occur under its
// parent. Max < 0 means unbounded.
type Cardinality struct {
	Min int
	Max int
}

// SubstatementPolicy validates the substatement composition of one
// statement kind. Kinds without a rule are unconstrained.
type SubstatementPolicy struct {
	parent types.StatementKind
	rules  map[types.StatementKind]Cardinality
	order  []types.StatementKind
}

func NewSubstatementPolicy(parent types.StatementKind) *SubstatementPolicy {
	return &SubstatementPolicy{
		parent: parent,
		rules:  map[types.StatementKind]Cardinality{},
	}
}

func (p *SubstatementPolicy) rule(kind types.StatementKind, c Cardinality) *SubstatementPolicy {
	if _, ok := p.rules[kind]; !ok {
		p.order = append(p.order, kind)
	}
	p.rules[kind] = c
	return p
}

// Mandatory requires exactly one substatement of the given kind.
func (p *SubstatementPolicy) Mandatory(kind types.StatementKind) *SubstatementPolicy {
	return p.rule(kind, Cardinality{Min: 1, Max: 1})
}

// Optional allows at most one substatement of the given kind.
func (p *SubstatementPolicy) Optional(kind types.StatementKind) *SubstatementPolicy {
	return p.rule(kind, Cardinality{Min: 0, Max: 1})
}

// Any allows the kind without bounds. Useful to document expected
// substatements explicitly.
func (p *SubstatementPolicy) Any(kind types.StatementKind) *SubstatementPolicy {
	return p.rule(kind, Cardinality{Min: 0, Max: -1})
}

// Validate checks observed substatement counts against the rules.
func (p *SubstatementPolicy) Validate(counts map[types.StatementKind]int, ref types.SourceRef) error {
	var violations []string
	for _, kind := range p.order {
		rule := p.rules[kind]
		count := counts[kind]
		if count < rule.Min {
			violations = append(violations, fmt.Sprintf("%s requires at least %d %q substatement(s), found %d", p.parent, rule.Min, kind, count))
		}
		if rule.Max >= 0 && count > rule.Max {
			violations = append(violations, fmt.Sprintf("%s allows at most %d %q substatement(s), found %d", p.parent, rule.Max, kind, count))
		}
	}
	if len(violations) == 0 {
		return nil
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s: %s", ref, strings.Join(violations, "; ")))
}
