package docmodel

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/hierdoc/go-hierdoc/ir"
)

// queryEnv is the per-node environment a query predicate sees.
type queryEnv struct {
	Kind  string `expr:"kind"`
	Name  string `expr:"name"`
	Value any    `expr:"value"`
	Path  string `expr:"path"`
	Depth int    `expr:"depth"`
}

// Query evaluates a boolean expression against every node and returns the
// paths of the matches in pre-order. The expression sees kind, name,
// value, path and depth, e.g.:
//
//	kind == "scalar" && name == "port"
//	depth <= 2 && value == true
func (m *Model) Query(src string) ([]string, error) {
	if m.root == nil {
		return nil, ErrNotLoaded
	}
	prg, err := expr.Compile(src, expr.Env(queryEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile query: %w", err)
	}
	var matches []string
	walkErr := m.root.Walk(0, func(n *ir.Node, depth int) error {
		env := queryEnv{
			Kind:  n.Kind.String(),
			Name:  n.Name,
			Value: n.Value.Interface(),
			Path:  m.index.Path(n),
			Depth: depth,
		}
		res, err := expr.Run(prg, env)
		if err != nil {
			return err
		}
		if ok, _ := res.(bool); ok {
			matches = append(matches, env.Path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return matches, nil
}
