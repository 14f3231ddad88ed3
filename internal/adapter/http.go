package adapter

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/config"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/utils"
	"github.com/MKhiriev/go-game-keeper/models"
	"github.com/go-resty/resty/v2"
)

// HashHeader carries the hex HMAC-SHA256 of the uncompressed request body.
const HashHeader = "HashSHA256"

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the request timeout. Request
// bodies are gzip-compressed and signed with appCfg.HashKey when a key is set.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher: utils.NewHasher(appCfg.HashKey),
		now:    time.Now,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [AuthClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [AuthClient].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [AuthClient]. It POSTs the credentials to
// POST /api/auth/register and keeps the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

// Login implements [AuthClient]. It POSTs the credentials to
// POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Session, error) {
	var registered models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&registered).
		Post(path)
	if err != nil {
		return models.Session{}, mapTransportError(path, err)
	}
	if err = mapHTTPError(resp, ""); err != nil {
		return models.Session{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	userID := registered.UserID
	if userID == "" {
		if userID, err = utils.ParseUserIDFromJWT(token); err != nil {
			return models.Session{}, fmt.Errorf("%s parse user id: %w", path, err)
		}
	}

	h.SetToken(token)
	return models.Session{
		UserID:   userID,
		Login:    user.Login,
		Token:    token,
		LoggedAt: h.now().UTC(),
	}, nil
}

// FriendCode implements [AuthClient]. GET /api/me/code.
func (h *httpServerAdapter) FriendCode(ctx context.Context) (models.FriendCodeResponse, error) {
	var code models.FriendCodeResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&code).
		Get("/api/me/code")
	if err != nil {
		return code, mapTransportError("friend code request", err)
	}

	return code, mapHTTPError(resp, "")
}

// Push implements [RemoteStore]. The payload is sent to
// POST /api/sync/{domain}/push together with the local version and
// timestamp. A 4xx answer is returned as [*RejectedError] carrying the
// record id.
func (h *httpServerAdapter) Push(ctx context.Context, domain models.Domain, ownerID string, record models.Record) (models.PushResponse, error) {
	body := models.PushRequest{
		ID:             record.ID,
		Payload:        record.Payload,
		Version:        record.Version,
		UpdatedAtLocal: record.UpdatedAtLocal.UTC(),
	}

	return h.write(ctx, syncPath(domain, "push"), ownerID, record.ID, body)
}

// PushDelete implements [RemoteStore]. POST /api/sync/{domain}/delete.
func (h *httpServerAdapter) PushDelete(ctx context.Context, domain models.Domain, ownerID, id string) (models.PushResponse, error) {
	return h.write(ctx, syncPath(domain, "delete"), ownerID, id, models.DeleteRequest{ID: id})
}

func (h *httpServerAdapter) write(ctx context.Context, path, ownerID, id string, body any) (models.PushResponse, error) {
	var ack models.PushResponse

	req, err := h.signedRequest(ctx, body)
	if err != nil {
		return ack, err
	}

	resp, err := req.
		SetQueryParam("owner_id", ownerID).
		SetResult(&ack).
		Post(path)
	if err != nil {
		return ack, mapTransportError(path, err)
	}
	if err = mapHTTPError(resp, id); err != nil {
		h.logger.Debug().
			Str("func", "*httpServerAdapter.write").
			Str("path", path).
			Str("id", id).
			Int("status", resp.StatusCode()).
			Msg("server refused write")
		return ack, err
	}

	return ack, nil
}

// PullChangedSince implements [RemoteStore].
// GET /api/sync/{domain}/changes?since=RFC3339Nano.
func (h *httpServerAdapter) PullChangedSince(ctx context.Context, domain models.Domain, ownerID string, since *time.Time) ([]models.RemoteChange, error) {
	path := syncPath(domain, "changes")

	req := h.authedRequest(ctx).SetQueryParam("owner_id", ownerID)
	if since != nil {
		req.SetQueryParam("since", since.UTC().Format(time.RFC3339Nano))
	}

	var changes models.ChangesResponse
	resp, err := req.SetResult(&changes).Get(path)
	if err != nil {
		return nil, mapTransportError(path, err)
	}
	if err = mapHTTPError(resp, ""); err != nil {
		return nil, err
	}

	if changes.Length != len(changes.Changes) {
		return nil, fmt.Errorf("%w: %s: truncated body: expected %d changes, got %d",
			ErrTransientNetwork, path, changes.Length, len(changes.Changes))
	}

	return changes.Changes, nil
}

// SendInviteByCode implements [RelationshipClient]. POST /api/friends/invite.
func (h *httpServerAdapter) SendInviteByCode(ctx context.Context, req models.SendInviteRequest) (models.InviteResult, error) {
	var result models.InviteResult
	err := h.call(ctx, "/api/friends/invite", req, &result)
	return result, err
}

// Accept implements [RelationshipClient]. POST /api/friends/accept.
func (h *httpServerAdapter) Accept(ctx context.Context, friendUID string) error {
	return h.call(ctx, "/api/friends/accept", models.CounterpartRequest{FriendUID: friendUID}, &models.OKResponse{})
}

// Reject implements [RelationshipClient]. POST /api/friends/reject.
func (h *httpServerAdapter) Reject(ctx context.Context, friendUID string) error {
	return h.call(ctx, "/api/friends/reject", models.CounterpartRequest{FriendUID: friendUID}, &models.OKResponse{})
}

// Remove implements [RelationshipClient]. POST /api/friends/remove.
func (h *httpServerAdapter) Remove(ctx context.Context, friendUID string) error {
	return h.call(ctx, "/api/friends/remove", models.CounterpartRequest{FriendUID: friendUID}, &models.OKResponse{})
}

// CreateGroup implements [RelationshipClient]. POST /api/groups.
func (h *httpServerAdapter) CreateGroup(ctx context.Context, req models.CreateGroupRequest) (models.Group, error) {
	var group models.Group
	err := h.call(ctx, "/api/groups", req, &group)
	return group, err
}

// InviteToGroup implements [RelationshipClient]. POST /api/groups/{groupID}/invite.
func (h *httpServerAdapter) InviteToGroup(ctx context.Context, req models.GroupInviteRequest) error {
	return h.call(ctx, groupPath(req.GroupID, "invite"), req, &models.OKResponse{})
}

// AcceptGroupInvite implements [RelationshipClient].
func (h *httpServerAdapter) AcceptGroupInvite(ctx context.Context, groupID string) error {
	return h.call(ctx, groupPath(groupID, "accept"), models.GroupRequest{GroupID: groupID}, &models.OKResponse{})
}

// RejectGroupInvite implements [RelationshipClient].
func (h *httpServerAdapter) RejectGroupInvite(ctx context.Context, groupID string) error {
	return h.call(ctx, groupPath(groupID, "reject"), models.GroupRequest{GroupID: groupID}, &models.OKResponse{})
}

// LeaveGroup implements [RelationshipClient].
func (h *httpServerAdapter) LeaveGroup(ctx context.Context, groupID string) error {
	return h.call(ctx, groupPath(groupID, "leave"), models.GroupRequest{GroupID: groupID}, &models.OKResponse{})
}

// Ping implements [ReachabilityChecker]. GET /ping.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/ping")
	if err != nil {
		return mapTransportError("ping", err)
	}
	return mapHTTPError(resp, "")
}

func (h *httpServerAdapter) call(ctx context.Context, path string, body, result any) error {
	req, err := h.signedRequest(ctx, body)
	if err != nil {
		return err
	}

	resp, err := req.SetResult(result).Post(path)
	if err != nil {
		return mapTransportError(path, err)
	}

	return mapHTTPError(resp, "")
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// signedRequest marshals body, signs the plain JSON and attaches it gzip
// compressed.
func (h *httpServerAdapter) signedRequest(ctx context.Context, body any) (*resty.Request, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	compressed, err := gzipBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("compress request body: %w", err)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Content-Encoding", "gzip").
		SetBody(compressed)
	if h.hasher.Enabled() {
		req.SetHeader(HashHeader, h.hasher.SumHex(raw))
	}

	return req, nil
}

func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func syncPath(domain models.Domain, action string) string {
	return "/api/sync/" + url.PathEscape(domain.String()) + "/" + action
}

func groupPath(groupID, action string) string {
	return "/api/groups/" + url.PathEscape(groupID) + "/" + action
}
