// Package store wraps the persistence backend behind a small key-value
// adapter: each logical collection is one serialized value, replaced wholesale
// on every write. Reads are fail-soft by design; a missing or corrupt value
// degrades to an empty collection instead of surfacing an error.
package store

import (
	"encoding/json"
	"errors"
	"reflect"
)

// Collection keys. Each maps to a single serialized value in the backend.
const (
	PostsCollection    = "posts"
	CommentsCollection = "comments"
)

// AdminFlag is the advisory gate recording whether the current session is
// treated as privileged. It has no server-verified backing and is not a
// security boundary.
const AdminFlag = "admin"

// ErrUnavailable is reported when no persistence backend is reachable. All
// operations on an unavailable store are no-ops that return this error.
var ErrUnavailable = errors.New("store unavailable")

// Store is the key-value adapter over the persistence backend. Load decodes a
// collection into records (a pointer to a slice) and must never fail on
// absent or unparseable state; SaveAll replaces the whole collection
// atomically from the caller's perspective.
type Store interface {
	Load(collection string, records any) error
	SaveAll(collection string, records any) error
	LoadFlag(name string) bool
	SaveFlag(name string, value bool) error
}

// schemaVersion is written into every persisted envelope. Older datasets had
// no version field; carrying one lets a future format change detect old state.
const schemaVersion = 1

type envelope struct {
	Version int             `json:"v"`
	Records json.RawMessage `json:"records"`
}

// encodeCollection wraps records in the versioned envelope.
func encodeCollection(records any) ([]byte, error) {
	raw, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Version: schemaVersion, Records: raw})
}

// decodeCollection accepts both the versioned envelope and the legacy bare
// array format. Decoding is all-or-nothing: corrupt input leaves records
// untouched, so a partially parseable value never plants phantom entries that
// the next write would persist.
func decodeCollection(data []byte, records any) {
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Records != nil {
		if decodeInto(env.Records, records) {
			return
		}
	}
	// Legacy layout: the value is the array itself.
	decodeInto(data, records)
}

// decodeInto unmarshals data into records only if the whole value parses.
// json.Unmarshal writes elements as it goes, so a failure partway through
// would otherwise leave half-decoded entries behind.
func decodeInto(data []byte, records any) bool {
	rv := reflect.ValueOf(records)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return false
	}
	tmp := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(data, tmp.Interface()); err != nil {
		return false
	}
	rv.Elem().Set(tmp.Elem())
	return true
}
