package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-site/config"
	"github.com/yeremiapane/restaurant-site/database"
	"github.com/yeremiapane/restaurant-site/router"
	"github.com/yeremiapane/restaurant-site/storage"
	"github.com/yeremiapane/restaurant-site/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	utils.InitLogger("error", "text")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestEndToEndIntegration walks the main flow:
// 1. staff account signs up and is made admin out of band
// 2. admin signs in and adds a dish
// 3. a visitor sees it on the menu and books a table
// 4. admin confirms the booking
func TestEndToEndIntegration(t *testing.T) {
	db, r := setupTestApp(t)

	token := signUpAdminTest(t, r, db)
	createDishTest(t, r, token)
	reservationID := bookTableTest(t, r)
	confirmReservationTest(t, r, token, reservationID)
}

func setupTestApp(t *testing.T) (*gorm.DB, *gin.Engine) {
	cfg := &config.Config{
		DBDriver:       "sqlite",
		DBDSN:          ":memory:",
		JWTSecret:      "integration-secret-0123",
		SessionTTL:     time.Hour,
		SessionCookie:  "session_token",
		PublicBaseURL:  "http://localhost:8080",
		StorageBackend: "noop",
		AuthRateBurst:  10,
		AuthRateWindow: time.Minute,
	}

	db, err := config.InitDB(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	bucket, err := storage.New(cfg.StorageBackend, cfg.StorageDir, cfg.PublicBaseURL, storage.MenuImagesBucket)
	require.NoError(t, err)

	r := router.SetupRouter(router.Deps{
		DB:          db,
		Config:      cfg,
		Revocations: utils.NewMemoryRevocationStore(),
		Bucket:      bucket,
		HashCost:    bcrypt.MinCost,
	})
	return db, r
}

type apiResponse struct {
	Status   bool            `json:"status"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	Redirect string          `json:"redirect"`
}

func call(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) (int, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

func signUpAdminTest(t *testing.T, r *gin.Engine, db *gorm.DB) string {
	creds := map[string]string{"email": "gerant@example.com", "password": "secret123"}

	code, _ := call(t, r, http.MethodPost, "/api/auth/signup", creds, "")
	require.Equal(t, http.StatusCreated, code)

	// a fresh account has no role yet
	code, resp := call(t, r, http.MethodPost, "/api/auth/signin", creds, "")
	require.Equal(t, http.StatusOK, code)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	code, _ = call(t, r, http.MethodGet, "/api/admin/access", nil, data.Token)
	require.Equal(t, http.StatusForbidden, code)

	require.NoError(t, database.GrantAdmin(context.Background(), db, creds["email"]))

	// the same session is admin on the next request
	code, _ = call(t, r, http.MethodGet, "/api/admin/access", nil, data.Token)
	require.Equal(t, http.StatusOK, code)
	return data.Token
}

func createDishTest(t *testing.T, r *gin.Engine, token string) {
	dish := map[string]string{
		"name":        "Pastilla au poulet",
		"description": "Feuilleté sucré salé",
		"price":       "95",
		"category":    "Plats Principaux",
	}
	code, resp := call(t, r, http.MethodPost, "/api/admin/menu", dish, token)
	require.Equal(t, http.StatusCreated, code, resp.Message)

	code, resp = call(t, r, http.MethodGet, "/api/menu", nil, "")
	require.Equal(t, http.StatusOK, code)
	var menu struct {
		Items []struct {
			Name       string `json:"name"`
			PriceLabel string `json:"price_label"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &menu))
	require.Len(t, menu.Items, 1)
	assert.Equal(t, "Pastilla au poulet", menu.Items[0].Name)
	assert.Equal(t, "95,00 DH", menu.Items[0].PriceLabel)
}

func bookTableTest(t *testing.T, r *gin.Engine) string {
	booking := map[string]string{
		"name":             "Amina",
		"email":            "amina@example.com",
		"phone":            "+212612345678",
		"date":             "2026-11-02",
		"time":             "20:00",
		"guests":           "4",
		"special_requests": "Anniversaire",
	}
	code, resp := call(t, r, http.MethodPost, "/api/reservations", booking, "")
	require.Equal(t, http.StatusCreated, code, resp.Message)

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.Equal(t, "pending", created.Status)
	return created.ID
}

func confirmReservationTest(t *testing.T, r *gin.Engine, token, id string) {
	code, resp := call(t, r, http.MethodPatch, "/api/admin/reservations/"+id+"/status", map[string]string{"status": "confirmed"}, token)
	require.Equal(t, http.StatusOK, code, resp.Message)

	var list []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, "confirmed", list[0].Status)
}

func TestEveryStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var ticks atomic.Int32
	done := make(chan struct{})
	go func() {
		every(ctx, time.Millisecond, func(time.Time) { ticks.Add(1) })
		close(done)
	}()

	require.Eventually(t, func() bool { return ticks.Load() > 0 }, time.Second, time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("every did not return after cancel")
	}
}
