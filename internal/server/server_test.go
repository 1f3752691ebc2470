package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"minecoin/internal/config"
	"minecoin/internal/notify"
	"minecoin/internal/repository"
	"minecoin/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := notify.NewHub()
	repos := repository.NewLocalRepositories(store.NewMemoryStore(), hub)
	services := InitServices(config.New(), repos)

	watcher := notify.NewPushWatcher(hub, services.Txs.PendingCount)
	watcher.Start()
	t.Cleanup(watcher.Stop)

	return setupRouter(InitHandlers(services, watcher), services)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Session-Token", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func login(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w, out := doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())
	data := out["data"].(map[string]any)
	return data["token"].(string)
}

func TestAPI_SignupApprovalAndBuy(t *testing.T) {
	r := newTestRouter(t)

	// Public signup.
	w, out := doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{
		"username": "alice", "password": "secret", "name": "Alice Kim",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	aliceID := out["data"].(map[string]any)["id"].(string)

	// Pending accounts cannot log in.
	w, _ = doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"username": "alice", "password": "secret",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Seed admin approves.
	adminToken := login(t, r, "coinmaster", "1234")
	w, _ = doJSON(t, r, http.MethodPatch, "/api/users/"+aliceID+"/status", adminToken, gin.H{
		"status": "APPROVED",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Alice buys 3 coins; any client-sent price fields are ignored.
	aliceToken := login(t, r, "alice", "secret")
	w, out = doJSON(t, r, http.MethodPost, "/api/transactions/buy", aliceToken, gin.H{
		"amount": 3, "priceAtPurchase": 1, "totalCost": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	tx := out["data"].(map[string]any)
	assert.Equal(t, float64(10000), tx["priceAtPurchase"])
	assert.Equal(t, float64(30000), tx["totalCost"])
	assert.Equal(t, "PENDING", tx["status"])

	// Alice sees her order; admins see the full list.
	w, out = doJSON(t, r, http.MethodGet, "/api/transactions/mine", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, out["data"].([]any), 1)

	w, _ = doJSON(t, r, http.MethodGet, "/api/transactions", aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, out = doJSON(t, r, http.MethodGet, "/api/transactions", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, out["data"].([]any), 1)
}

func TestAPI_RoleGates(t *testing.T) {
	r := newTestRouter(t)

	adminToken := login(t, r, "coinmaster", "1234")
	masterToken := login(t, r, "master", "master1234")

	// Admin creates an order owner and an order to operate on.
	w, out := doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{
		"username": "bob", "password": "pw", "name": "Bob",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	bobID := out["data"].(map[string]any)["id"].(string)
	w, _ = doJSON(t, r, http.MethodPatch, "/api/users/"+bobID+"/status", adminToken, gin.H{"status": "APPROVED"})
	require.Equal(t, http.StatusOK, w.Code)

	bobToken := login(t, r, "bob", "pw")
	w, out = doJSON(t, r, http.MethodPost, "/api/transactions/buy", bobToken, gin.H{"amount": 1})
	require.Equal(t, http.StatusCreated, w.Code)
	txID := out["data"].(map[string]any)["id"].(string)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/transactions/"+txID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Restore is a MASTER-only route.
	w, _ = doJSON(t, r, http.MethodPost, "/api/transactions/"+txID+"/restore", adminToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = doJSON(t, r, http.MethodPost, "/api/transactions/"+txID+"/restore", masterToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Resets are MASTER-only too.
	w, _ = doJSON(t, r, http.MethodPost, "/api/admin/reset-user-data", adminToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, out = doJSON(t, r, http.MethodPost, "/api/admin/reset-user-data", masterToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := out["data"].(map[string]any)
	assert.Equal(t, float64(2), summary["deletedUsers"]) // bob + seed admin
	assert.Equal(t, float64(1), summary["deletedTransactions"])

	// The admin's session now resolves to a deleted account.
	w, _ = doJSON(t, r, http.MethodGet, "/api/me", adminToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_PublicContent(t *testing.T) {
	r := newTestRouter(t)

	w, out := doJSON(t, r, http.MethodGet, "/api/config", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cfg := out["data"].(map[string]any)
	assert.Equal(t, float64(10000), cfg["coinPrice"])

	w, out = doJSON(t, r, http.MethodGet, "/api/news", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, out["data"].([]any), 1)

	// Settings writes require an admin session.
	w, _ = doJSON(t, r, http.MethodPatch, "/api/config", "", gin.H{"coinPrice": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
