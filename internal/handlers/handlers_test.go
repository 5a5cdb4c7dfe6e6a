package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"detailing-app-server/internal/config"
	"detailing-app-server/internal/middleware"
	"detailing-app-server/internal/models"
	"detailing-app-server/internal/routes"
)

// envelope mirrors utils.ResponseData for decoding test responses.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := models.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := &config.Config{
		Port:           "0",
		Environment:    "development",
		SessionTTLDays: 7,
	}

	router := gin.New()
	routes.SetupRoutes(router, db, cfg)

	t.Cleanup(func() { sqlDB.Close() })
	return router, db
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("failed to decode data %q: %v", string(env.Data), err)
	}
}

// seedAdmin inserts an admin user directly into the database.
func seedAdmin(t *testing.T, db *gorm.DB, email, password string) models.User {
	t.Helper()
	user := models.User{Email: email}
	if err := user.SetPassword(password); err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// login seeds an admin, performs a login request and returns the session cookie.
func login(t *testing.T, router *gin.Engine, db *gorm.DB) *http.Cookie {
	t.Helper()
	seedAdmin(t, db, "admin@example.com", "mysecretpassword")

	w := doRequest(t, router, http.MethodPost, "/api/login", map[string]string{
		"email":    "admin@example.com",
		"password": "mysecretpassword",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie returned from login")
	return nil
}

// createCustomer inserts a customer through the API and returns its decoded form.
func createCustomer(t *testing.T, router *gin.Engine, cookie *http.Cookie, body map[string]string) models.Customer {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/customers", body, cookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("create customer failed with status %d: %s", w.Code, w.Body.String())
	}
	var customer models.Customer
	decodeData(t, w, &customer)
	return customer
}
