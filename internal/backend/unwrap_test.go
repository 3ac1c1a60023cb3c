package backend

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID string `json:"id"`
}

func TestUnwrapFirstOrValue(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantOK bool
		wantID string
	}{
		{"bare object", `{"id":"a"}`, true, "a"},
		{"single element array", `[{"id":"a"}]`, true, "a"},
		{"multi element array takes first", `[{"id":"a"},{"id":"b"}]`, true, "a"},
		{"empty array", `[]`, false, ""},
		{"null", `null`, false, ""},
		{"empty body", ``, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dest record
			ok, err := UnwrapFirstOrValue(json.RawMessage(tt.raw), &dest)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, dest.ID)
		})
	}
}

func TestUnwrapFirstOrValue_Garbage(t *testing.T) {
	var dest record
	_, err := UnwrapFirstOrValue(json.RawMessage(`{{`), &dest)
	require.Error(t, err)
}

func TestDecodeRows(t *testing.T) {
	rows, err := DecodeRows[record](json.RawMessage(`[{"id":"a"},{"id":"b"}]`))
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = DecodeRows[record](json.RawMessage(`null`))
	require.NoError(t, err)
	require.NotNil(t, rows)
	assert.Empty(t, rows)

	_, err = DecodeRows[record](json.RawMessage(`{"id":"a"}`))
	require.Error(t, err)
}
