// Package services contains the application services sitting between the
// view layer and the request gateway: authentication flows and topic
// operations, including the cache bookkeeping around them.
package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/forumcli/internal/client/api"
	"github.com/dmitrijs2005/forumcli/internal/client/models"
	"github.com/dmitrijs2005/forumcli/internal/client/session"
	"github.com/dmitrijs2005/forumcli/internal/logging"
)

// AuthService defines the account flows of the client.
//
// Contract:
//   - Signup: create an account; returns the confirmation message to show.
//   - Login: authenticate, store the session token and profile.
//   - Logout: best-effort backend call; local state is cleared regardless.
//   - UpdateProfile: change username and optionally the password.
//
// Validation failures are reported before any request is issued.
type AuthService interface {
	Signup(ctx context.Context, email, password, confirm string) (string, error)
	Login(ctx context.Context, email, password string) (models.UserProfile, error)
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, name, password, confirm string) (models.UserProfile, error)
}

type authService struct {
	api     api.Client
	session *session.Store
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given gateway and
// session store.
func NewAuthService(apiClient api.Client, sess *session.Store, log logging.Logger) AuthService {
	return &authService{api: apiClient, session: sess, log: log}
}

func (a *authService) Signup(ctx context.Context, email, password, confirm string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", validationError("Please enter an email and a password.")
	}
	if password != confirm {
		return "", validationError("The passwords do not match.")
	}

	res, err := a.api.Signup(ctx, api.SignupRequest{Email: email, Password: password})
	if err != nil {
		a.log.Warn(ctx, "signup request failed", "error", err)
		return "", networkError()
	}

	if _, ok := api.DecodeAuth(res); !ok {
		return "", remoteError(res, "Signup failed.")
	}

	return "A verification email has been sent to your address.", nil
}

func (a *authService) Login(ctx context.Context, email, password string) (models.UserProfile, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.UserProfile{}, validationError("Please enter an email and a password.")
	}

	res, err := a.api.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		a.log.Warn(ctx, "login request failed", "error", err)
		return models.UserProfile{}, networkError()
	}

	resp, ok := api.DecodeAuth(res)
	if !ok {
		// A failed login must not leave a stale token or profile behind.
		a.session.Clear(ctx)
		return models.UserProfile{}, remoteError(res, "Login failed.")
	}

	name := email
	userEmail := email
	if resp.User != nil {
		if resp.User.Username != "" {
			name = resp.User.Username
		} else if resp.User.Email != "" {
			name = resp.User.Email
		}
		if resp.User.Email != "" {
			userEmail = resp.User.Email
		}
	}

	profile := models.UserProfile{Name: name, Email: userEmail}
	a.session.SetToken(ctx, resp.SessionID)
	a.session.SetCurrentUser(ctx, &profile)

	a.log.Info(ctx, "logged in", "user", name)
	return profile, nil
}

func (a *authService) Logout(ctx context.Context) {
	// Network errors are ignored on purpose: local state is cleared either way.
	if _, err := a.api.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout request failed", "error", err)
	}
	a.session.Clear(ctx)
}

func (a *authService) UpdateProfile(ctx context.Context, name, password, confirm string) (models.UserProfile, error) {
	user := a.session.CurrentUser()
	if user == nil {
		return models.UserProfile{}, remoteError(api.Result{Status: 401}, "")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return models.UserProfile{}, validationError("The username cannot be empty.")
	}
	if (password != "" || confirm != "") && password != confirm {
		return models.UserProfile{}, validationError("The passwords do not match.")
	}

	req := api.UpdateUserRequest{Email: user.Email, Username: name}
	if password != "" {
		req.Password = password
	}

	res, err := a.api.UpdateUser(ctx, req)
	if err != nil {
		a.log.Warn(ctx, "update request failed", "error", err)
		return models.UserProfile{}, networkError()
	}

	resp, ok := api.DecodeAuth(res)
	if !ok {
		return models.UserProfile{}, remoteError(res, "Update failed.")
	}

	updatedName := name
	updatedEmail := user.Email
	if resp.User != nil {
		if resp.User.Username != "" {
			updatedName = resp.User.Username
		}
		if resp.User.Email != "" {
			updatedEmail = resp.User.Email
		}
	}

	profile := models.UserProfile{Name: updatedName, Email: updatedEmail}
	a.session.SetCurrentUser(ctx, &profile)
	return profile, nil
}
