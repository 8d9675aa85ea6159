// Package api is the request gateway: a thin, typed wrapper per backend
// operation over a single normalized HTTP call. Non-2xx responses are
// returned as data for the caller to interpret; only transport failures
// surface as errors.
package api

import "context"

// TokenSource supplies the current session token. An empty string means
// no session; the gateway then sends no auth headers.
type TokenSource interface {
	Token() string
}

// Client is the backend surface the rest of the client consumes. None of
// the operations retry.
type Client interface {
	Signup(ctx context.Context, req SignupRequest) (Result, error)
	Login(ctx context.Context, req LoginRequest) (Result, error)
	Logout(ctx context.Context) (Result, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (Result, error)
	FetchTopics(ctx context.Context) (Result, error)
	FetchTopicDetail(ctx context.Context, id int64) (Result, error)
	CreateTopic(ctx context.Context, req CreateTopicRequest) (Result, error)
	CloseTopic(ctx context.Context, id int64) (Result, error)
	PostComment(ctx context.Context, id int64, req CommentRequest) (Result, error)
}
