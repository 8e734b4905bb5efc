package adapters

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"github.com/hashsdn/hashsdn-yangtools/internal/ports"
	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

// YAMLSourceAdapter loads module sources from YAML files. A source
// document is one statement: a mapping with a single kind key carrying
// the argument, plus an optional "body" sequence of nested statements.
//
//	module: example-box
//	body:
//	  - namespace: urn:example:box
//	  - prefix: box
//	  - import: example-base
//	    body:
//	      - prefix: base
type YAMLSourceAdapter struct{}

func NewYAMLSourceAdapter() YAMLSourceAdapter {
	return YAMLSourceAdapter{}
}

func (a YAMLSourceAdapter) Load(path string) (ports.ModuleSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("module source not found").
			WithCause(err)
	}
	source, err := a.Parse(data)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid module source %s", path)).
			WithCause(err)
	}
	return source, nil
}

// Parse decodes one module source document.
func (a YAMLSourceAdapter) Parse(data []byte) (ports.ModuleSource, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("module source must be a single YAML document")
	}
	root, err := parseStatement(doc.Content[0])
	if err != nil {
		return nil, err
	}
	if root.Kind != types.KindModule && root.Kind != types.KindSubmodule {
		return nil, fmt.Errorf("top-level statement must be module or submodule, got %q", root.Kind)
	}
	return &builderSource{root: root}, nil
}

func parseStatement(node *yaml.Node) (types.Statement, error) {
	if node.Kind != yaml.MappingNode {
		return types.Statement{}, fmt.Errorf("line %d: statement must be a mapping", node.Line)
	}
	var stmt types.Statement
	sawKind := false
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		value := node.Content[i+1]
		if key.Value == "body" {
			if value.Kind != yaml.SequenceNode {
				return types.Statement{}, fmt.Errorf("line %d: body must be a sequence", value.Line)
			}
			for _, item := range value.Content {
				child, err := parseStatement(item)
				if err != nil {
					return types.Statement{}, err
				}
				stmt.Children = append(stmt.Children, child)
			}
			continue
		}
		if sawKind {
			return types.Statement{}, fmt.Errorf("line %d: statement declares more than one kind (%q and %q)", key.Line, stmt.Kind, key.Value)
		}
		if value.Kind != yaml.ScalarNode {
			return types.Statement{}, fmt.Errorf("line %d: statement argument must be a scalar", value.Line)
		}
		sawKind = true
		stmt.Kind = types.StatementKind(key.Value)
		stmt.Argument = value.Value
	}
	if !sawKind {
		return types.Statement{}, fmt.Errorf("line %d: statement declares no kind", node.Line)
	}
	return stmt, nil
}

// builderSource is the in-progress variant of the module capability:
// identity and edges are derived from the declared statement tree.
type builderSource struct {
	root types.Statement
}

func (s *builderSource) Identity() types.ModuleIdentity {
	return types.ModuleIdentity{
		Name:     s.root.Argument,
		Revision: newestRevision(s.root),
	}
}

func (s *builderSource) Namespace() string {
	for _, child := range s.root.Children {
		if child.Kind == types.KindNamespace {
			return child.Argument
		}
	}
	return ""
}

func (s *builderSource) Imports() []types.ImportDescriptor {
	return collectEdges(s.root)
}

func (s *builderSource) Root() (types.Statement, error) {
	return s.root, nil
}

// newestRevision picks the latest declared revision; the fixed date
// layout makes lexical comparison chronological.
func newestRevision(root types.Statement) types.Revision {
	newest := types.RevisionUnspecified
	for _, child := range root.Children {
		if child.Kind != types.KindRevision {
			continue
		}
		if rev := types.Revision(child.Argument); rev > newest {
			newest = rev
		}
	}
	return newest
}

// collectEdges derives the dependency edges from import and include
// substatements. belongs-to is deliberately not an edge: the parent
// module includes the submodule already, and an edge both ways would
// read as a cycle. The belongs-to reference resolves through the
// inference engine instead.
func collectEdges(root types.Statement) []types.ImportDescriptor {
	var edges []types.ImportDescriptor
	for _, child := range root.Children {
		switch child.Kind {
		case types.KindImport, types.KindInclude:
			edge := types.ImportDescriptor{Module: child.Argument}
			for _, sub := range child.Children {
				if sub.Kind == types.KindRevisionDate {
					edge.Revision = types.Revision(sub.Argument)
				}
			}
			edges = append(edges, edge)
		}
	}
	return edges
}
