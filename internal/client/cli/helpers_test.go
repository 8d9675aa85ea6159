package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/forumcli/internal/client/models"
	"github.com/dmitrijs2005/forumcli/internal/client/session"
	"github.com/dmitrijs2005/forumcli/internal/logging"
)

type memRepo struct {
	data map[string][]byte
}

func newMemRepo() *memRepo { return &memRepo{data: make(map[string][]byte)} }

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

// fakeAuth is a programmable services.AuthService.
type fakeAuth struct {
	calls []string

	signupFn func(email, password, confirm string) (string, error)
	loginFn  func(email, password string) (models.UserProfile, error)
	updateFn func(name, password, confirm string) (models.UserProfile, error)
}

func (f *fakeAuth) Signup(ctx context.Context, email, password, confirm string) (string, error) {
	f.calls = append(f.calls, "signup")
	if f.signupFn != nil {
		return f.signupFn(email, password, confirm)
	}
	return "ok", nil
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (models.UserProfile, error) {
	f.calls = append(f.calls, "login")
	if f.loginFn != nil {
		return f.loginFn(email, password)
	}
	return models.UserProfile{Name: "Alice"}, nil
}

func (f *fakeAuth) Logout(ctx context.Context) {
	f.calls = append(f.calls, "logout")
}

func (f *fakeAuth) UpdateProfile(ctx context.Context, name, password, confirm string) (models.UserProfile, error) {
	f.calls = append(f.calls, "update")
	if f.updateFn != nil {
		return f.updateFn(name, password, confirm)
	}
	return models.UserProfile{Name: name}, nil
}

// fakeForum is a programmable services.TopicService.
type fakeForum struct {
	calls []string

	refreshErr error
	topicsFn   func(query string) []models.Topic
	getFn      func(id int64) (models.Topic, bool)
	openFn     func(id int64) (models.Topic, error)
	createFn   func(title, description string) (models.Topic, error)
	closeFn    func(id int64) (models.Topic, error)
	commentFn  func(id int64, content string) (models.Comment, error)
	canClose   bool
}

func (f *fakeForum) Refresh(ctx context.Context) error {
	f.calls = append(f.calls, "refresh")
	return f.refreshErr
}

func (f *fakeForum) Topics(query string) []models.Topic {
	if f.topicsFn != nil {
		return f.topicsFn(query)
	}
	return nil
}

func (f *fakeForum) Get(id int64) (models.Topic, bool) {
	if f.getFn != nil {
		return f.getFn(id)
	}
	return models.Topic{}, false
}

func (f *fakeForum) Open(ctx context.Context, id int64) (models.Topic, error) {
	f.calls = append(f.calls, "open")
	if f.openFn != nil {
		return f.openFn(id)
	}
	return models.Topic{ID: id}, nil
}

func (f *fakeForum) Create(ctx context.Context, title, description string) (models.Topic, error) {
	f.calls = append(f.calls, "create")
	if f.createFn != nil {
		return f.createFn(title, description)
	}
	return models.Topic{ID: 1, Title: title, Description: description}, nil
}

func (f *fakeForum) Close(ctx context.Context, id int64) (models.Topic, error) {
	f.calls = append(f.calls, "close")
	if f.closeFn != nil {
		return f.closeFn(id)
	}
	return models.Topic{ID: id, Closed: true}, nil
}

func (f *fakeForum) Comment(ctx context.Context, id int64, content string) (models.Comment, error) {
	f.calls = append(f.calls, "comment")
	if f.commentFn != nil {
		return f.commentFn(id, content)
	}
	return models.Comment{Body: content}, nil
}

func (f *fakeForum) CanClose(topic models.Topic) bool { return f.canClose }

type testApp struct {
	app   *App
	auth  *fakeAuth
	forum *fakeForum
	out   *bytes.Buffer
}

func newTestApp(t *testing.T, loggedIn bool) *testApp {
	t.Helper()
	ctx := context.Background()

	store := session.NewStore(ctx, newMemRepo(), logging.NewNopLogger())
	if loggedIn {
		store.SetToken(ctx, "s1")
		store.SetCurrentUser(ctx, &models.UserProfile{Name: "Alice", Email: "alice@example.org"})
	}

	auth := &fakeAuth{}
	forum := &fakeForum{}
	out := &bytes.Buffer{}

	return &testApp{
		app: &App{
			session: store,
			auth:    auth,
			forum:   forum,
			log:     logging.NewNopLogger(),
			view:    ViewHome,
			banner:  newToastBanner(time.Minute),
			reader:  bufio.NewReader(strings.NewReader("")),
			out:     out,
		},
		auth:  auth,
		forum: forum,
		out:   out,
	}
}

// stubInputs replaces the prompt seams for the duration of the test. Each
// slice is consumed in order; running out of answers fails the test.
func stubInputs(t *testing.T, texts []string, passwords []string, multilines []string) {
	t.Helper()

	origText, origPassword, origMultiline := getSimpleText, getPassword, getMultiline
	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline = origText, origPassword, origMultiline
	})

	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		if len(texts) == 0 {
			t.Fatalf("unexpected text prompt %q", prompt)
		}
		answer := texts[0]
		texts = texts[1:]
		return answer, nil
	}

	getPassword = func(w io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			t.Fatal("unexpected password prompt")
		}
		answer := passwords[0]
		passwords = passwords[1:]
		return []byte(answer), nil
	}

	getMultiline = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		if len(multilines) == 0 {
			t.Fatalf("unexpected multiline prompt %q", prompt)
		}
		answer := multilines[0]
		multilines = multilines[1:]
		return answer, nil
	}
}
