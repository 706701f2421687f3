package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	testJWTSecret  = "handler-test-secret"
	testBcryptCost = 4 // min cost, keeps the suite fast
)

// newTestEnv builds a throwaway SQLite database and an API-only router
// matching the wiring in internal/router.
func newTestEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate database: %v", err)
	}

	r := gin.New()
	api := r.Group("/api")

	authHandler := NewAuthHandler(db, testJWTSecret, 168, testBcryptCost)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(testJWTSecret, db),
		middleware.ActivityMiddleware(db),
	)

	protected.GET("/me", GetMe)

	taskHandler := NewTaskHandler(db)
	protected.POST("/tasks", taskHandler.CreateTask)
	protected.GET("/tasks", taskHandler.ListTasks)
	protected.GET("/tasks/:id", taskHandler.GetTask)
	protected.PUT("/tasks/:id", taskHandler.UpdateTask)
	protected.DELETE("/tasks/:id", taskHandler.DeleteTask)

	protected.POST("/profile", UpdateProfile(db))
	protected.POST("/profile/password", ChangePassword(db, testBcryptCost))

	exportHandler := NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	activityHandler := NewActivityHandler(db, 50)
	protected.GET("/activity", activityHandler.ListActivity)

	return r, db
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// doJSON performs a request against the test router. token may be empty.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w, env
}

// registerAndLogin creates a user and returns its token.
func registerAndLogin(t *testing.T, r *gin.Engine, name, email, password string) string {
	t.Helper()

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": password,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status = %d, body = %s", email, w.Code, w.Body.String())
	}

	w, env := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": email, "password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status = %d, body = %s", email, w.Code, w.Body.String())
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode login data: %v", err)
	}
	if data.Token == "" {
		t.Fatal("login returned an empty token")
	}
	return data.Token
}
