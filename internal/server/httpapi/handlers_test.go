package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakeboard/stakeboard/internal/agents"
	"github.com/stakeboard/stakeboard/internal/common"
	"github.com/stakeboard/stakeboard/internal/server/auth"
	"github.com/stakeboard/stakeboard/internal/server/models"
	"github.com/stakeboard/stakeboard/internal/server/services"
)

// fakeAuthService keeps accounts in memory and mints real tokens so the
// router tests can exercise RequireAuth end to end.
type fakeAuthService struct {
	accounts map[string]struct {
		id       string
		username string
		password string
	}
	failWith error
}

func newFakeAuthService() *fakeAuthService {
	return &fakeAuthService{accounts: map[string]struct {
		id       string
		username string
		password string
	}{}}
}

func (f *fakeAuthService) Signup(_ context.Context, email, password, username string) (*services.AuthResult, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	email = services.NormalizeEmail(email)
	if _, ok := f.accounts[email]; ok {
		return nil, common.ErrorAlreadyRegistered
	}
	id := "user-" + email
	f.accounts[email] = struct {
		id       string
		username string
		password string
	}{id: id, username: username, password: password}

	token, err := auth.GenerateToken(id, username, testSecret, time.Hour)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &services.AuthResult{Token: token, Username: username}, nil
}

func (f *fakeAuthService) Login(_ context.Context, email, password string) (*services.AuthResult, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	acc, ok := f.accounts[services.NormalizeEmail(email)]
	if !ok || acc.password != password {
		return nil, common.ErrorInvalidCredentials
	}
	token, err := auth.GenerateToken(acc.id, acc.username, testSecret, time.Hour)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &services.AuthResult{Token: token, Username: acc.username}, nil
}

type fakeStatusService struct {
	checks   []*models.StatusCheck
	failWith error
}

func (f *fakeStatusService) Create(_ context.Context, clientName string) (*models.StatusCheck, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	check := &models.StatusCheck{
		ID:         "check-1",
		ClientName: clientName,
		Timestamp:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.checks = append([]*models.StatusCheck{check}, f.checks...)
	return check, nil
}

func (f *fakeStatusService) List(_ context.Context) ([]*models.StatusCheck, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.checks, nil
}

func newTestRouter(t *testing.T) (*fakeAuthService, *fakeStatusService, http.Handler) {
	t.Helper()

	authSvc := newFakeAuthService()
	statusSvc := &fakeStatusService{}
	h := NewHandlers(
		authSvc,
		statusSvc,
		services.NewStakingService(),
		agents.NewRegistry(agents.NewEchoCompleter()),
		testLogger(),
	)
	return authSvc, statusSvc, NewRouter(h, testSecret)
}

func doJSON(t *testing.T, r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoot(t *testing.T) {
	_, _, r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Hello World"}`, w.Body.String())
}

func TestSignup_Success(t *testing.T) {
	_, _, r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup",
		`{"email": "Alice@Example.com", "password": "pw123456", "username": "alice"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "alice", resp.Username)
	assert.Empty(t, resp.Error)

	claims, err := auth.ParseToken(resp.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestSignup_DuplicateEmailInBand(t *testing.T) {
	_, _, r := newTestRouter(t)

	body := `{"email": "a@b.c", "password": "pw123456", "username": "alice"}`
	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", body, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/signup", body, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Email already registered", resp.Error)
	assert.Empty(t, resp.Token)
}

func TestSignup_InvalidBody(t *testing.T) {
	_, _, r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", `{"email": "a@b.c"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail": "Invalid request body"}`, w.Body.String())
}

func TestSignup_InternalFaultStaysGeneric(t *testing.T) {
	authSvc, _, r := newTestRouter(t)
	authSvc.failWith = common.ErrorInternal

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup",
		`{"email": "a@b.c", "password": "pw123456", "username": "alice"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Internal server error", resp.Error)
}

func TestLogin_WrongPasswordInBand(t *testing.T) {
	_, _, r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/auth/signup",
		`{"email": "a@b.c", "password": "pw123456", "username": "alice"}`, "")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email": "a@b.c", "password": "wrong"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid email or password", resp.Error)
}

func TestChat_Echo(t *testing.T) {
	_, _, r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/chat", `{"message": "hi there"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Echo: hi there", resp.Response)
	assert.Equal(t, "chat", resp.AgentType)
	assert.Contains(t, resp.Capabilities, "general_conversation")
}

func TestChat_UnknownAgentType(t *testing.T) {
	_, _, r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/chat",
		`{"message": "hi", "agent_type": "oracle"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["detail"], "oracle")
}

func TestSearch_WrapsQuery(t *testing.T) {
	_, _, r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/search", `{"query": "go generics"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp searchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "go generics", resp.Query)
	assert.Contains(t, resp.Summary, "go generics")
}

func TestAgentCapabilities(t *testing.T) {
	_, _, r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/agents/capabilities", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success      bool                `json:"success"`
		Capabilities map[string][]string `json:"capabilities"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Capabilities["search_agent"], "web_search")
	assert.Contains(t, resp.Capabilities["chat_agent"], "general_conversation")
}

func TestStatusChecks_CreateAndList(t *testing.T) {
	_, _, r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/status", `{"client_name": "web"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var check models.StatusCheck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &check))
	assert.Equal(t, "web", check.ClientName)
	assert.NotEmpty(t, check.ID)

	// the listing is a bare JSON array
	w = doJSON(t, r, http.MethodGet, "/api/status", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []*models.StatusCheck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "web", list[0].ClientName)
}

func TestStatusChecks_EmptyListIsArray(t *testing.T) {
	_, _, r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/status", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestStatusChecks_StoreFault(t *testing.T) {
	_, statusSvc, r := newTestRouter(t)
	statusSvc.failWith = common.ErrorInternal

	w := doJSON(t, r, http.MethodPost, "/api/status", `{"client_name": "web"}`, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail": "Internal server error"}`, w.Body.String())
}

// Full flow: signup, fail a login, succeed a login, then hit a protected
// endpoint with and without the token.
func TestAuthFlow_EndToEnd(t *testing.T) {
	_, _, r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup",
		`{"email": "bob@example.com", "password": "secret99", "username": "bob"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email": "bob@example.com", "password": "nope"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var failed authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &failed))
	require.False(t, failed.Success)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email": "bob@example.com", "password": "secret99"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var ok authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ok))
	require.True(t, ok.Success)
	require.NotEmpty(t, ok.Token)

	w = doJSON(t, r, http.MethodGet, "/api/staking/overview", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/staking/overview", "", ok.Token)
	require.Equal(t, http.StatusOK, w.Code)

	var overview struct {
		Success bool                    `json:"success"`
		Data    *models.StakingOverview `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
	assert.True(t, overview.Success)
	assert.Equal(t, 5, overview.Data.TotalAssets)
}

func TestStakingAssets_RequiresAuthAndReturnsPortfolio(t *testing.T) {
	_, _, r := newTestRouter(t)

	token, err := auth.GenerateToken("u-42", "carol", testSecret, time.Hour)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/staking/assets", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                   `json:"success"`
		Data    []*models.StakingAsset `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 5)
	for _, a := range resp.Data {
		assert.Equal(t, "u-42", a.UserID)
	}
}

func TestStakingRewardsHistory_DaysParam(t *testing.T) {
	_, _, r := newTestRouter(t)

	token, err := auth.GenerateToken("u-1", "alice", testSecret, time.Hour)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/staking/rewards-history?days=7", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                        `json:"success"`
		Data    []*models.RewardHistoryEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 7)

	w = doJSON(t, r, http.MethodGet, "/api/staking/rewards-history?days=bogus", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 30)
}

func TestStakingPerformance(t *testing.T) {
	_, _, r := newTestRouter(t)

	token, err := auth.GenerateToken("u-1", "alice", testSecret, time.Hour)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/staking/performance?days=14", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                       `json:"success"`
		Data    []*models.PerformancePoint `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 14)
}
