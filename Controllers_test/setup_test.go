package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/menu-studio/database"
	"github.com/yeremiapane/menu-studio/models"
	"github.com/yeremiapane/menu-studio/router"
	"github.com/yeremiapane/menu-studio/utils"
)

type testEnv struct {
	DB     *gorm.DB
	Redis  *miniredis.Miniredis
	Router *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	utils.SetJWTSecret("controllers-test-secret")

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	r := router.SetupRouter(db, rdb, router.Options{DefaultLocale: "en"})
	return &testEnv{DB: db, Redis: mr, Router: r}
}

func fp(v float64) *float64 { return &v }

func up(v uint) *uint { return &v }

func seedSnapshot() models.Snapshot {
	return models.Snapshot{
		Menu: &models.Menu{
			Slug:     "bean-there",
			Name:     models.Localized{"en": "Bean There", "ar": "كنا هناك"},
			Theme:    "cafe",
			Active:   true,
			Currency: "USD",
		},
		Categories: []models.Category{
			{ID: 1, Name: models.Localized{"en": "Hot drinks", "ar": "مشروبات ساخنة"}, SortOrder: 1, Active: true},
			{ID: 2, Name: models.Localized{"en": "Bakery"}, SortOrder: 2, Active: true},
		},
		Items: []models.Item{
			{ID: 1, Name: models.Localized{"en": "Cappuccino", "ar": "كابتشينو"}, Price: 4, CategoryID: up(1), Available: true},
			{ID: 2, Name: models.Localized{"en": "Croissant"}, OriginalPrice: fp(100), DiscountPercent: fp(25), CategoryID: up(2), Available: true},
			{ID: 3, Name: models.Localized{"en": "Lemonade"}, Price: 3, CategoryLabel: "Cold", Available: true},
		},
		Branches: []models.Branch{{Name: "Downtown", Address: "1 Main St"}},
	}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, utils.JSONResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)

	var resp utils.JSONResponse
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

func tokenFor(t *testing.T, plan string) string {
	t.Helper()
	return tokenForUser(t, 1, plan)
}

func tokenForUser(t *testing.T, userID uint, plan string) string {
	t.Helper()
	tok, err := utils.GenerateToken(userID, "owner", plan)
	require.NoError(t, err)
	return tok
}

// seed imports the sample snapshot through the API.
func (e *testEnv) seed(t *testing.T) {
	t.Helper()
	w, _ := e.do(t, http.MethodPut, "/admin/menus/snapshot", tokenFor(t, "pro"), seedSnapshot())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

// dataMap re-decodes the envelope data into a generic map.
func dataMap(t *testing.T, resp utils.JSONResponse) map[string]interface{} {
	t.Helper()
	m, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "data is %T", resp.Data)
	return m
}
