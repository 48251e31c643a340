package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateEndpoints(t *testing.T) {
	env := setupTestEnv(t)

	w, resp := env.do(t, http.MethodGet, "/templates", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, resp)
	assert.Equal(t, "classic", data["default"])
	assert.Len(t, data["templates"], 3)

	_, resp = env.do(t, http.MethodGet, "/templates/cafe", "", nil)
	cafe := dataMap(t, resp)
	assert.Equal(t, "cafe", cafe["id"])
	assert.Len(t, cafe["buckets"], 3)
	assert.NotContains(t, cafe, "Renderer")

	w, resp = env.do(t, http.MethodGet, "/templates/neon", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "classic", dataMap(t, resp)["id"])
}

func TestPingAndMetrics(t *testing.T) {
	env := setupTestEnv(t)
	env.seed(t)
	env.do(t, http.MethodGet, "/menus/bean-there/render", "", nil)

	w, _ := env.do(t, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = env.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "menu_renders_total")
	assert.Contains(t, w.Body.String(), "menu_render_duration_seconds")
}
