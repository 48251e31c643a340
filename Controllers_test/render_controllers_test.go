package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bucketKeys(t *testing.T, data map[string]interface{}) []string {
	t.Helper()
	model := data["model"].(map[string]interface{})
	keys := []string{}
	for _, b := range model["buckets"].([]interface{}) {
		keys = append(keys, b.(map[string]interface{})["key"].(string))
	}
	return keys
}

func TestRenderMenu(t *testing.T) {
	env := setupTestEnv(t)
	env.seed(t)

	w, resp := env.do(t, http.MethodGet, "/menus/bean-there/render?lang=ar", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := dataMap(t, resp)
	assert.Equal(t, "cafe", data["template"])
	assert.Equal(t, "live", data["mode"])
	assert.Equal(t, []string{"coffee", "juice", "2"}, bucketKeys(t, data))

	model := data["model"].(map[string]interface{})
	assert.Equal(t, "ar", model["locale"])
	items := model["items"].([]interface{})
	first := items[0].(map[string]interface{})
	assert.Equal(t, "كابتشينو", first["name"])
	second := items[1].(map[string]interface{})
	assert.Equal(t, 75.0, second["price"])
	assert.NotContains(t, second, "original_price")

	tree := data["tree"].(map[string]interface{})
	assert.Equal(t, "page", tree["kind"])
	assert.Equal(t, "rtl", tree["attrs"].(map[string]interface{})["dir"])
}

func TestRenderMenu_TemplateOverrideAndUnknown(t *testing.T) {
	env := setupTestEnv(t)
	env.seed(t)

	_, resp := env.do(t, http.MethodGet, "/menus/bean-there/render?template=classic", "", nil)
	data := dataMap(t, resp)
	assert.Equal(t, "classic", data["template"])
	assert.Equal(t, []string{"1", "2", "cold"}, bucketKeys(t, data))

	_, resp = env.do(t, http.MethodGet, "/menus/bean-there/render?template=neon", "", nil)
	assert.Equal(t, "classic", dataMap(t, resp)["template"])

	w, _ := env.do(t, http.MethodGet, "/menus/ghost/render", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPreviewMenu(t *testing.T) {
	env := setupTestEnv(t)
	env.seed(t)
	free := tokenFor(t, "free")

	body := map[string]interface{}{
		"template": "classic",
		"draft":    map[string]interface{}{"primary_color": "#abcdef"},
	}
	w, resp := env.do(t, http.MethodPost, "/admin/menus/bean-there/preview", free, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := dataMap(t, resp)
	assert.Equal(t, "preview", data["mode"])
	tokens := data["tokens"].(map[string]interface{})
	assert.Equal(t, "#abcdef", tokens["primary_color"])

	// nothing was saved
	_, resp = env.do(t, http.MethodGet, "/menus/bean-there/render?template=classic", "", nil)
	live := dataMap(t, resp)["tokens"].(map[string]interface{})
	assert.Equal(t, "#c0392b", live["primary_color"])

	w, _ = env.do(t, http.MethodPost, "/admin/menus/bean-there/preview", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
