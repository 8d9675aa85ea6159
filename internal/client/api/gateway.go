package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/forumcli/internal/common"
	"github.com/dmitrijs2005/forumcli/internal/logging"
)

// Gateway implements Client over HTTP. A cookie jar is attached so a
// session cookie set by the backend out-of-band keeps working alongside
// header-based auth.
type Gateway struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

func NewGateway(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) (*Gateway, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout, Jar: jar},
		tokens:  tokens,
		log:     log,
	}, nil
}

// do performs one request and classifies the response into a Result.
// The session token, when present, is carried both as a bearer token and an
// X-Session-Id header; the backend picks whichever it understands.
func (g *Gateway) do(ctx context.Context, method, path string, body any) (Result, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return Result{}, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := g.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("X-Session-Id", token)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		g.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return Result{}, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	result := Result{Status: resp.StatusCode}
	if len(raw) > 0 {
		if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
			result.JSON = raw
		} else {
			result.Text = strings.TrimSpace(string(raw))
		}
	}

	g.log.Debug(ctx, "request done", "method", method, "path", path, "status", result.Status)
	return result, nil
}

func (g *Gateway) Signup(ctx context.Context, req SignupRequest) (Result, error) {
	return g.do(ctx, http.MethodPost, "/auth/signup", req)
}

func (g *Gateway) Login(ctx context.Context, req LoginRequest) (Result, error) {
	return g.do(ctx, http.MethodPost, "/auth/login", req)
}

func (g *Gateway) Logout(ctx context.Context) (Result, error) {
	return g.do(ctx, http.MethodPost, "/auth/logout", nil)
}

func (g *Gateway) UpdateUser(ctx context.Context, req UpdateUserRequest) (Result, error) {
	return g.do(ctx, http.MethodPost, "/users/update", req)
}

func (g *Gateway) FetchTopics(ctx context.Context) (Result, error) {
	return g.do(ctx, http.MethodGet, "/topics", nil)
}

func (g *Gateway) FetchTopicDetail(ctx context.Context, id int64) (Result, error) {
	return g.do(ctx, http.MethodGet, fmt.Sprintf("/topic/%d", id), nil)
}

func (g *Gateway) CreateTopic(ctx context.Context, req CreateTopicRequest) (Result, error) {
	return g.do(ctx, http.MethodPost, "/topics", req)
}

func (g *Gateway) CloseTopic(ctx context.Context, id int64) (Result, error) {
	return g.do(ctx, http.MethodPost, fmt.Sprintf("/topics/%d/close", id), nil)
}

func (g *Gateway) PostComment(ctx context.Context, id int64, req CommentRequest) (Result, error) {
	return g.do(ctx, http.MethodPost, fmt.Sprintf("/topics/%d/comments", id), req)
}
