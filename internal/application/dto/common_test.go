package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OnKodr-dev/inventory-app/internal/application/dto"
)

func TestNumberText(t *testing.T) {
	cases := map[string]string{
		`{"minStock": 12.5}`:  "12.5",
		`{"minStock": "7"}`:   "7",
		`{"minStock": "abc"}`: "abc",
		`{"minStock": null}`:  "",
		`{"minStock": true}`:  "",
		`{}`:                  "",
	}
	for body, want := range cases {
		var req dto.CreateItemRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)
		assert.Equal(t, want, req.MinStock.String(), body)
	}
}
