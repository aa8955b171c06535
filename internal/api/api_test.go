package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fitcoach/fitness-platform/internal/repository/sqlite"
	"fitcoach/fitness-platform/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-key-for-api-tests"

// setupTestRouter builds the full stack against a throwaway SQLite file.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlite.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	trainerRepo := sqlite.NewTrainerRepository(db)
	clientRepo := sqlite.NewClientRepository(db)

	authService := service.NewAuthService(trainerRepo, testJWTSecret, "HS256", 30*time.Minute)
	trainerService := service.NewTrainerService(trainerRepo)
	clientService := service.NewClientService(clientRepo)

	router := gin.New()
	SetupRoutes(router, authService, trainerService, clientService)
	return router
}

// doJSON performs a request with a JSON body and optional bearer token.
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(encoded)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerTrainer registers a trainer and asserts success.
func registerTrainer(t *testing.T, router *gin.Engine, name, email, password string) TrainerResponse {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/trainers", "", RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp TrainerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// loginTrainer performs the form-encoded login flow and returns the token.
func loginTrainer(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}
