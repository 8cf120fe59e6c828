package docmodel

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/hierdoc/go-hierdoc/handler"
	"github.com/hierdoc/go-hierdoc/ir"
)

// PatchJSON applies an RFC 6902 patch to a JSON document: the tree is
// serialized, patched, and re-parsed through the JSON handler. The model
// is untouched when any step fails.
func (m *Model) PatchJSON(patch []byte) error {
	if m.root == nil {
		return ErrNotLoaded
	}
	if m.format != handler.JSON {
		return fmt.Errorf("json patch requires a json document, have %s", m.format)
	}
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("decode patch: %w", err)
	}
	cur, err := m.Serialize()
	if err != nil {
		return err
	}
	out, err := ops.Apply([]byte(cur))
	if err != nil {
		return fmt.Errorf("apply patch: %w", err)
	}
	h, err := m.reg.Resolve(handler.JSON)
	if err != nil {
		return err
	}
	root, err := h.Parse(string(out))
	if err != nil {
		return err
	}
	m.root = root
	m.index = ir.BuildIndex(root)
	return m.resync()
}
