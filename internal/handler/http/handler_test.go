package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/mock"
	"github.com/MKhiriev/go-game-keeper/internal/service"
	"github.com/MKhiriev/go-game-keeper/internal/utils"
	"github.com/MKhiriev/go-game-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUserID = "0192a1b2-c3d4-7e5f-8a6b-7c8d9e0f1a2b"
	testToken  = "valid-token"
	testKey    = "test-hash-key"
)

// testServices: набор моков сервисного слоя для одного теста.
type testServices struct {
	auth   *mock.MockAuthService
	rel    *mock.MockRelationshipService
	groups *mock.MockGroupService
	sync   *mock.MockRemoteSyncService
	info   *mock.MockAppInfoService
}

func newTestRouter(t *testing.T, hashKey string) (http.Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := testServices{
		auth:   mock.NewMockAuthService(ctrl),
		rel:    mock.NewMockRelationshipService(ctrl),
		groups: mock.NewMockGroupService(ctrl),
		sync:   mock.NewMockRemoteSyncService(ctrl),
		info:   mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:         mocks.auth,
		RelationshipService: mocks.rel,
		GroupService:        mocks.groups,
		RemoteSyncService:   mocks.sync,
		AppInfoService:      mocks.info,
	}

	return NewHandler(services, hashKey, logger.Nop()).Init(), mocks
}

// authorized makes testToken resolve to testUserID.
func (m testServices) authorized() {
	m.auth.EXPECT().
		ParseToken(gomock.Any(), testToken).
		Return(models.Token{UserID: testUserID}, nil).
		AnyTimes()
}

type requestOption func(r *http.Request)

func withBearer(token string) requestOption {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func withHeader(key, value string) requestOption {
	return func(r *http.Request) { r.Header.Set(key, value) }
}

func encodeBody(t *testing.T, body any) []byte {
	t.Helper()
	if body == nil {
		return nil
	}
	if raw, ok := body.([]byte); ok {
		return raw
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return raw
}

func doRequest(t *testing.T, h http.Handler, method, target string, body any, opts ...requestOption) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewReader(encodeBody(t, body)))
	req.Header.Set("Content-Type", "application/json")
	for _, opt := range opts {
		opt(req)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func gzipped(t *testing.T, raw []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func bodyText(rr *httptest.ResponseRecorder) string {
	return string(bytes.TrimSpace(rr.Body.Bytes()))
}

func decodeResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v))
	return v
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, "", log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.False(t, h.hasher.Enabled())
	assert.True(t, NewHandler(svc, testKey, log).hasher.Enabled())
}

// ─────────────────────────────────────────────
// Init: регистрация маршрутов
// ─────────────────────────────────────────────

func TestInit_PublicRoutes(t *testing.T) {
	router, mocks := newTestRouter(t, "")
	mocks.info.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rr := doRequest(t, router, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	rr = doRequest(t, router, http.MethodGet, "/api/version", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())
}

// Защищённые маршруты без токена отвечают 401, а не 404: маршрут существует.
func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/me/code"},
		{http.MethodGet, "/api/sync/games/changes"},
		{http.MethodPost, "/api/sync/games/push"},
		{http.MethodPost, "/api/sync/sessions/delete"},
		{http.MethodPost, "/api/friends/invite"},
		{http.MethodPost, "/api/friends/accept"},
		{http.MethodPost, "/api/friends/reject"},
		{http.MethodPost, "/api/friends/remove"},
		{http.MethodPost, "/api/groups"},
		{http.MethodPost, "/api/groups/g1/invite"},
		{http.MethodPost, "/api/groups/g1/accept"},
		{http.MethodPost, "/api/groups/g1/reject"},
		{http.MethodPost, "/api/groups/g1/leave"},
	}

	router, _ := newTestRouter(t, "")
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rr := doRequest(t, router, rt.method, rt.path, nil)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestInit_WrongMethodIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t, "")

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/auth/login"},
		{http.MethodDelete, "/ping"},
		{http.MethodPut, "/api/sync/games/push"},
		{http.MethodGet, "/api/groups/g1/leave"},
	} {
		rr := doRequest(t, router, tc.method, tc.path, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestInit_UnknownPath(t *testing.T) {
	router, _ := newTestRouter(t, "")

	rr := doRequest(t, router, http.MethodGet, "/api/nothing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_RespondsWithTraceID(t *testing.T) {
	router, _ := newTestRouter(t, "")

	rr := doRequest(t, router, http.MethodGet, "/ping", nil, withHeader(traceIDHeader, "trace-42"))
	assert.Equal(t, "trace-42", rr.Header().Get(traceIDHeader))
}

func TestInit_CompressesResponses(t *testing.T) {
	router, _ := newTestRouter(t, "")

	rr := doRequest(t, router, http.MethodGet, "/ping", nil, withHeader("Accept-Encoding", "gzip"))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(plain))
}

// userFromContext is a tiny handler used by middleware tests.
func userFromContext(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	_, _ = w.Write([]byte(userID))
}
