package memjson

import (
	"bytes"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a human-readable diff of two documents' pretty
// encodings, empty when they encode identically.
func Diff(a, b *Document) (string, error) {
	var ab, bb bytes.Buffer
	if err := a.Encode(&ab); err != nil {
		return "", err
	}
	if err := b.Encode(&bb); err != nil {
		return "", err
	}
	if ab.String() == bb.String() {
		return "", nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(ab.String(), bb.String(), false)
	return diffCfg.DiffPrettyText(diffs), nil
}
