package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
)

// The store enforces no schema and clients submit whatever fields their
// forms carry, so every payload model keeps the keys it does not declare in
// an inline Extra map and stores the document verbatim.

// extraFields returns the keys of data not named in known, or nil when the
// payload carries nothing beyond the declared fields.
func extraFields(data []byte, known ...string) (bson.M, error) {
	all := bson.M{}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// marshalWithExtra flattens extra back into the JSON encoding of v.
// Declared fields win on a key collision.
func marshalWithExtra(v any, extra bson.M) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return data, nil
	}

	merged := map[string]any{}
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}
