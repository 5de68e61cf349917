package docs_test

import (
	"encoding/json"
	"testing"

	_ "professionals-api/docs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocument(t *testing.T) {
	raw, err := swag.ReadDoc("swagger")
	require.NoError(t, err)

	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	for path, method := range map[string]string{
		"/health":                         "get",
		"/auth/login":                     "post",
		"/offers":                         "get",
		"/companies/{slug}":               "get",
		"/companies/{slug}/hr-contacts":   "get",
		"/my-company/offers/{id}/publish": "post",
		"/applications":                   "post",
		"/bookmarks/toggle":               "post",
		"/search/autocomplete":            "get",
	} {
		assert.Contains(t, doc.Paths[path], method, "%s %s", method, path)
	}
	assert.Contains(t, doc.Definitions, "models.JobOfferListing")
	assert.Contains(t, doc.Definitions, "dto.OfferRequest")
}
