package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kader009/foodlane-server/models"
	"github.com/kader009/foodlane-server/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.Order{},
		&models.Payment{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func TestLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	users := services.NewUserService(db)
	if err := users.Register(&models.User{Email: "buyer@example.com", Password: "correcthorse"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	r := gin.New()
	r.POST("/login", NewAuthController(users).Login)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"unknown email", `{"email":"ghost@example.com","password":"whatever"}`, http.StatusNotFound},
		{"wrong password", `{"email":"buyer@example.com","password":"nope-nope"}`, http.StatusUnauthorized},
		{"malformed body", `{"email":"not-an-email"}`, http.StatusBadRequest},
		{"correct credentials", `{"email":"buyer@example.com","password":"correcthorse"}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}

			// every path writes exactly one JSON document
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not a single JSON document: %v", err)
			}

			if tt.wantStatus == http.StatusOK {
				if body["token"] == "" || body["token"] == nil {
					t.Error("successful login carries no token")
				}
				user, ok := body["user"].(map[string]any)
				if !ok {
					t.Fatalf("successful login carries no user: %v", body)
				}
				if _, leaked := user["password"]; leaked {
					t.Error("login response leaks the password field")
				}
			} else if _, hasErr := body["error"]; !hasErr {
				t.Errorf("failure response has no error field: %v", body)
			}
		})
	}
}
