package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/hashsdn/hashsdn-yangtools/internal/ports"
	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

type visitState int

const (
	unvisited visitState = iota
	visiting
	visited
)

// Sort returns the graph's modules in dependency order: for every edge
// A imports B, B precedes A. Ties among independent modules follow
// registration order, so identical input always yields the same
// sequence. A cyclic import chain fails with the cycle's members.
func (g *DependencyGraph) Sort() ([]ports.ModuleLike, error) {
	states := map[*graphNode]visitState{}
	var order []ports.ModuleLike
	var stack []types.ModuleIdentity

	var visit func(node *graphNode) error
	visit = func(node *graphNode) error {
		switch states[node] {
		case visited:
			return nil
		case visiting:
			return cycleError(stack, node.identity)
		}
		states[node] = visiting
		stack = append(stack, node.identity)
		for _, edge := range node.edges {
			if err := visit(edge); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		states[node] = visited
		order = append(order, node.module)
		return nil
	}

	for _, node := range g.nodeOrder {
		if err := visit(node); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// cycleError reports the cycle members from the point the repeated
// node first appears on the visit stack.
func cycleError(stack []types.ModuleIdentity, repeated types.ModuleIdentity) error {
	start := 0
	for i, id := range stack {
		if id == repeated {
			start = i
			break
		}
	}
	members := make([]string, 0, len(stack)-start+1)
	for _, id := range stack[start:] {
		members = append(members, id.String())
	}
	members = append(members, repeated.String())
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("cyclic module dependency: %s", strings.Join(members, " -> ")))
}
