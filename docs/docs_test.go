package docs_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/lucrare/gestao-api/docs"
)

func TestSwaggerRegistrado(t *testing.T) {
	docs.SwaggerInfo.Version = "9.9.9"
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	info := doc["info"].(map[string]interface{})
	assert.Equal(t, "9.9.9", info["version"])

	paths := doc["paths"].(map[string]interface{})
	for _, p := range []string{"/api/auth/login", "/api/customers/{id}", "/api/comments/{id}", "/api/users/{id}", "/health"} {
		assert.Contains(t, paths, p)
	}
}

func TestSwaggerJSONCoincideConRutas(t *testing.T) {
	raw, err := os.ReadFile("swagger.json")
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))

	embedded, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)
	var reg map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(embedded), &reg))

	assert.Equal(t, doc["paths"], reg["paths"])
}
