package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pkruglov/notesync/internal/config"
	"github.com/pkruglov/notesync/internal/devstore"
	"github.com/pkruglov/notesync/internal/logger"
	"github.com/pkruglov/notesync/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		HTTPAddress:  ":0",
		TokenSignKey: "test-secret",
		TokenIssuer:  "notesync-devstore",
	}
}

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	return NewHandler(devstore.New(), testServerConfig(), logger.Nop()).Init()
}

func mintTestToken(t *testing.T, account string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("notesync-devstore", account, time.Hour, "test-secret")
	require.NoError(t, err)
	return token
}

func authedRequest(t *testing.T, method, target, token string, body []byte) *http.Request {
	t.Helper()
	r := httptest.NewRequest(method, target, bytes.NewReader(body))
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}

// ── POST /api/token ──────────────────────────────────────────────────────────

func TestMintToken(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/token", bytes.NewReader([]byte(`{"account":"acct-1"}`))))

	require.Equal(t, http.StatusOK, w.Code)

	var response mintTokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)

	account, err := utils.ValidateAndParseJWTToken(response.Token, "test-secret", "notesync-devstore")
	require.NoError(t, err)
	assert.Equal(t, "acct-1", account)
}

func TestMintToken_BadRequests(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing account", body: `{}`},
		{name: "empty account", body: `{"account":""}`},
		{name: "not json", body: `account=acct-1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/token", bytes.NewReader([]byte(tt.body))))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

// ── /api/files round trip ────────────────────────────────────────────────────

func TestFiles_WriteListRead(t *testing.T) {
	router := newTestRouter(t)
	token := mintTestToken(t, "acct-1")
	payload := []byte(`{"id":"rec-1","kind":"note"}`)

	// upload under an escaped name
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPut, "/api/files/note%2Frec-1.json", token, payload))
	require.Equal(t, http.StatusOK, w.Code)

	var uploaded fileInfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &uploaded))
	assert.Equal(t, "note/rec-1.json", uploaded.Name)
	assert.Equal(t, int64(1), uploaded.Version)
	require.NotEmpty(t, uploaded.ID)

	// the listing shows it
	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/files?scope=note", token, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var listing fileListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Len(t, listing.Files, 1)
	assert.Equal(t, uploaded.ID, listing.Files[0].ID)
	require.NotEmpty(t, listing.ChangeToken)

	// and the object reads back byte for byte
	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/files/"+uploaded.ID, token, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, payload, w.Body.Bytes())
}

func TestFiles_IncrementalListing(t *testing.T) {
	router := newTestRouter(t)
	token := mintTestToken(t, "acct-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPut, "/api/files/note%2Frec-1.json", token, []byte(`{}`)))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/files?scope=note", token, nil))
	var listing fileListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))

	// nothing changed since the cursor
	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/files?scope=note&since="+listing.ChangeToken, token, nil))
	var incremental fileListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &incremental))
	assert.Empty(t, incremental.Files)
}

func TestFiles_ReadUnknownID(t *testing.T) {
	router := newTestRouter(t)
	token := mintTestToken(t, "acct-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/files/no-such-object", token, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFiles_AccountsAreIsolated(t *testing.T) {
	router := newTestRouter(t)
	first := mintTestToken(t, "acct-1")
	second := mintTestToken(t, "acct-2")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPut, "/api/files/note%2Fsecret.json", first, []byte(`{"private":true}`)))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/files?scope=note", second, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var listing fileListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Empty(t, listing.Files, "another account must not see the object")
}
