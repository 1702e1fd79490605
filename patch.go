package memjson

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/memjson/parse"
)

// Patch applies an RFC 6902 JSON patch to the document, in place. The
// document is serialized, patched, and re-parsed into its own pool;
// on a patch or re-parse error the original tree is untouched.
func Patch(doc *Document, patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("decode patch: %w", err)
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return fmt.Errorf("apply patch: %w", err)
	}
	var next Document
	next.pool = doc.pool
	if err := parse.Parse(doc.pool, &next.root, out); err != nil {
		return err
	}
	doc.root.SetNull(doc.pool)
	doc.root = next.root
	return nil
}
