package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnwrapFirstOrValue normalizes the array-vs-object shape ambiguity of rpc
// results: a stored procedure declared RETURNS SETOF answers with an array
// even for single-row lookups, while scalar-returning procedures answer
// with a bare object. The first array element (or the value itself) is
// decoded into dest. The boolean reports whether a value was present at
// all; null and empty-array results decode nothing and return false.
func UnwrapFirstOrValue(raw json.RawMessage, dest any) (bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false, nil
	}
	if trimmed[0] == '[' {
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return false, &Error{Message: fmt.Sprintf("decode rpc array: %v", err)}
		}
		if len(elems) == 0 {
			return false, nil
		}
		trimmed = elems[0]
	}
	if err := json.Unmarshal(trimmed, dest); err != nil {
		return false, &Error{Message: fmt.Sprintf("decode rpc value: %v", err)}
	}
	return true, nil
}

// DecodeRows decodes an rpc result that is expected to be an array of rows.
// A null result decodes as an empty slice rather than an error.
func DecodeRows[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}
	var rows []T
	if err := json.Unmarshal(trimmed, &rows); err != nil {
		return nil, &Error{Message: fmt.Sprintf("decode rpc rows: %v", err)}
	}
	return rows, nil
}
