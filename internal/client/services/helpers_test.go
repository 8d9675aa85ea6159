package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/dmitrijs2005/forumcli/internal/client/api"
	"github.com/dmitrijs2005/forumcli/internal/client/models"
	"github.com/dmitrijs2005/forumcli/internal/client/session"
	"github.com/dmitrijs2005/forumcli/internal/client/topics"
	"github.com/dmitrijs2005/forumcli/internal/logging"
)

func jsonResult(status int, body string) api.Result {
	return api.Result{Status: status, JSON: json.RawMessage(body)}
}

// fakeClient is a programmable api.Client that records every call. Hooks
// left nil yield an empty 200 response.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	onSignup           func(api.SignupRequest) (api.Result, error)
	onLogin            func(api.LoginRequest) (api.Result, error)
	onLogout           func() (api.Result, error)
	onUpdateUser       func(api.UpdateUserRequest) (api.Result, error)
	onFetchTopics      func() (api.Result, error)
	onFetchTopicDetail func(id int64) (api.Result, error)
	onCreateTopic      func(api.CreateTopicRequest) (api.Result, error)
	onCloseTopic       func(id int64) (api.Result, error)
	onPostComment      func(id int64, req api.CommentRequest) (api.Result, error)
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeClient) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeClient) Signup(ctx context.Context, req api.SignupRequest) (api.Result, error) {
	f.record("signup")
	if f.onSignup != nil {
		return f.onSignup(req)
	}
	return api.Result{Status: 200}, nil
}

func (f *fakeClient) Login(ctx context.Context, req api.LoginRequest) (api.Result, error) {
	f.record("login")
	if f.onLogin != nil {
		return f.onLogin(req)
	}
	return api.Result{Status: 200}, nil
}

func (f *fakeClient) Logout(ctx context.Context) (api.Result, error) {
	f.record("logout")
	if f.onLogout != nil {
		return f.onLogout()
	}
	return api.Result{Status: 200}, nil
}

func (f *fakeClient) UpdateUser(ctx context.Context, req api.UpdateUserRequest) (api.Result, error) {
	f.record("update")
	if f.onUpdateUser != nil {
		return f.onUpdateUser(req)
	}
	return api.Result{Status: 200}, nil
}

func (f *fakeClient) FetchTopics(ctx context.Context) (api.Result, error) {
	f.record("topics")
	if f.onFetchTopics != nil {
		return f.onFetchTopics()
	}
	return api.Result{Status: 200}, nil
}

func (f *fakeClient) FetchTopicDetail(ctx context.Context, id int64) (api.Result, error) {
	f.record("detail")
	if f.onFetchTopicDetail != nil {
		return f.onFetchTopicDetail(id)
	}
	return api.Result{Status: 200}, nil
}

func (f *fakeClient) CreateTopic(ctx context.Context, req api.CreateTopicRequest) (api.Result, error) {
	f.record("create")
	if f.onCreateTopic != nil {
		return f.onCreateTopic(req)
	}
	return api.Result{Status: 200}, nil
}

func (f *fakeClient) CloseTopic(ctx context.Context, id int64) (api.Result, error) {
	f.record("close")
	if f.onCloseTopic != nil {
		return f.onCloseTopic(id)
	}
	return api.Result{Status: 200}, nil
}

func (f *fakeClient) PostComment(ctx context.Context, id int64, req api.CommentRequest) (api.Result, error) {
	f.record("comment")
	if f.onPostComment != nil {
		return f.onPostComment(id, req)
	}
	return api.Result{Status: 200}, nil
}

// memRepo is an in-memory localstate.Repository.
type memRepo struct {
	data map[string][]byte
}

func newMemRepo() *memRepo {
	return &memRepo{data: make(map[string][]byte)}
}

func (m *memRepo) Get(ctx context.Context, key string) ([]byte, error) { return m.data[key], nil }
func (m *memRepo) Set(ctx context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}
func (m *memRepo) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}
func (m *memRepo) DeleteMany(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}
func (m *memRepo) Clear(ctx context.Context) error {
	m.data = make(map[string][]byte)
	return nil
}

func newSessionStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(context.Background(), newMemRepo(), logging.NewNopLogger())
}

func loggedInStore(t *testing.T) *session.Store {
	t.Helper()
	ctx := context.Background()
	store := newSessionStore(t)
	store.SetToken(ctx, "s1")
	store.SetCurrentUser(ctx, &models.UserProfile{Name: "Alice", Email: "alice@example.org"})
	return store
}

func newForum(t *testing.T, client api.Client, store *session.Store) (TopicService, *topics.Cache) {
	t.Helper()
	cache := topics.NewCache()
	svc := NewTopicService(client, cache, store, logging.NewNopLogger())
	return svc, cache
}
