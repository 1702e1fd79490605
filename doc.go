// Package memjson is a pooled in-memory JSON document engine for
// memory-constrained programs. A Document stores an arbitrarily
// nested value tree in a single slot pool with interned, reference
// counted strings, instead of per-node heap allocation.
//
// The core model lives in the variant package (tagged-union values,
// slot-linked collections) backed by the pool package; parse and
// encode move documents to and from JSON text; gomap bridges Go
// values and YAML; eval runs expressions against documents. This
// package ties them together behind Document.
//
// Documents assume a single mutator and are not safe for concurrent
// use.
package memjson
