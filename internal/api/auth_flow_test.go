package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "running")
}

func TestRegisterLoginProfileFlow(t *testing.T) {
	router := setupTestRouter(t)

	trainer := registerTrainer(t, router, "Elena", "e@x.com", "password123")
	assert.Equal(t, "Elena", trainer.Name)
	assert.Equal(t, "e@x.com", trainer.Email)
	assert.Equal(t, "free", trainer.SubscriptionPlan)
	assert.True(t, trainer.IsActive)
	assert.NotZero(t, trainer.ID)

	token := loginTrainer(t, router, "e@x.com", "password123")

	w := doJSON(t, router, http.MethodGet, "/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Elena")
}

func TestRegisterNeverReturnsPasswordHash(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/trainers", "", RegisterRequest{
		Name:     "Marta",
		Email:    "marta@x.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "password")

	listed := doJSON(t, router, http.MethodGet, "/trainers", "", nil)
	require.Equal(t, http.StatusOK, listed.Code)
	assert.NotContains(t, listed.Body.String(), "password")
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	router := setupTestRouter(t)

	registerTrainer(t, router, "First", "dup@x.com", "password123")

	w := doJSON(t, router, http.MethodPost, "/trainers", "", RegisterRequest{
		Name:     "Second",
		Email:    "dup@x.com",
		Password: "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	router := setupTestRouter(t)

	// Malformed email
	w := doJSON(t, router, http.MethodPost, "/trainers", "", RegisterRequest{
		Name:     "Bad",
		Email:    "not-an-email",
		Password: "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Password too short
	w = doJSON(t, router, http.MethodPost, "/trainers", "", RegisterRequest{
		Name:     "Bad",
		Email:    "short@x.com",
		Password: "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginFailures(t *testing.T) {
	router := setupTestRouter(t)
	registerTrainer(t, router, "Elena", "e@x.com", "password123")

	cases := []struct {
		name     string
		username string
		password string
		wantMsg  string
	}{
		{"wrong password", "e@x.com", "wrongpass", "invalid password"},
		{"unknown email", "nobody@x.com", "password123", "invalid email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := url.Values{}
			form.Set("username", tc.username)
			form.Set("password", tc.password)

			req, err := http.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantMsg)
		})
	}
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	router := setupTestRouter(t)

	// Missing header
	w := doJSON(t, router, http.MethodGet, "/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	w = doJSON(t, router, http.MethodGet, "/profile", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")

	// Wrong scheme
	req, err := http.NewRequest(http.MethodGet, "/profile", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTrainerPagination(t *testing.T) {
	router := setupTestRouter(t)

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com", "e@x.com"} {
		registerTrainer(t, router, "Trainer "+email, email, "password123")
	}

	// Second page of two
	w := doJSON(t, router, http.MethodGet, "/trainers?page=2&size=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page TrainerListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.Size)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "c@x.com", page.Items[0].Email)
	assert.Equal(t, "d@x.com", page.Items[1].Email)

	// Page past the end is empty but keeps the total
	w = doJSON(t, router, http.MethodGet, "/trainers?page=4&size=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(5), page.Total)
	assert.Empty(t, page.Items)

	// Out-of-bounds size is rejected
	w = doJSON(t, router, http.MethodGet, "/trainers?page=1&size=500", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/trainers?page=0&size=2", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
