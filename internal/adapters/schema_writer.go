package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

// SchemaWriterAdapter serializes a compiled schema context to a YAML
// file, modules in processing order.
type SchemaWriterAdapter struct{}

func NewSchemaWriterAdapter() SchemaWriterAdapter {
	return SchemaWriterAdapter{}
}

type schemaDoc struct {
	Modules []moduleDoc `yaml:"modules"`
}

type moduleDoc struct {
	Name     string    `yaml:"name"`
	Revision string    `yaml:"revision,omitempty"`
	Body     []stmtDoc `yaml:"body,omitempty"`
}

type stmtDoc struct {
	Kind     string    `yaml:"kind"`
	Argument string    `yaml:"argument,omitempty"`
	Body     []stmtDoc `yaml:"body,omitempty"`
}

func (a SchemaWriterAdapter) Write(path string, schema *types.SchemaContext) error {
	doc := schemaDoc{}
	for _, id := range schema.Order {
		effective := schema.Modules[id]
		mod := moduleDoc{Name: id.Name}
		if id.Revision.Specified() {
			mod.Revision = string(id.Revision)
		}
		for _, child := range effective.Children {
			mod.Body = append(mod.Body, toStmtDoc(child))
		}
		doc.Modules = append(doc.Modules, mod)
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to serialize schema context").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write schema file").
			WithCause(err)
	}
	return nil
}

func toStmtDoc(stmt *types.EffectiveStatement) stmtDoc {
	doc := stmtDoc{Kind: string(stmt.Kind), Argument: stmt.Argument}
	for _, child := range stmt.Children {
		doc.Body = append(doc.Body, toStmtDoc(child))
	}
	return doc
}
