// Package view holds the state machines behind the terminal client screens.
// Views keep no state across mounts; each mount re-reads from the API.
package view

import (
	"context"
	"errors"
	"strings"

	"github.com/bipbipboopboop/ielts-progressor/internal/client"
)

// ErrInvalidTransition is returned when an action is not allowed in the
// current state.
var ErrInvalidTransition = errors.New("action not allowed in current state")

// LoginState is a state of the Login view.
type LoginState int

const (
	LoginUnauthenticated LoginState = iota
	LoginAuthenticating
	LoginAuthenticated
	LoginFailed
)

func (s LoginState) String() string {
	switch s {
	case LoginUnauthenticated:
		return "unauthenticated"
	case LoginAuthenticating:
		return "authenticating"
	case LoginAuthenticated:
		return "authenticated"
	case LoginFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type authAPI interface {
	Login(ctx context.Context, email, password string) (*client.Identity, error)
	Register(ctx context.Context, email, password, displayName string) (*client.Identity, error)
}

// Login signs a user in, or registers them first.
type Login struct {
	api      authAPI
	state    LoginState
	identity *client.Identity
	err      error
}

// NewLogin returns a Login view in the unauthenticated state.
func NewLogin(api authAPI) *Login {
	return &Login{api: api}
}

// State returns the current state.
func (v *Login) State() LoginState { return v.state }

// Identity returns the signed-in identity once authenticated.
func (v *Login) Identity() *client.Identity { return v.identity }

// Err returns the failure that moved the view to LoginFailed.
func (v *Login) Err() error { return v.err }

// SignIn authenticates with email and password.
func (v *Login) SignIn(ctx context.Context, email, password string) error {
	return v.authenticate(func() (*client.Identity, error) {
		return v.api.Login(ctx, strings.TrimSpace(email), password)
	})
}

// SignUp registers a new identity and signs in as it.
func (v *Login) SignUp(ctx context.Context, email, password, displayName string) error {
	return v.authenticate(func() (*client.Identity, error) {
		return v.api.Register(ctx, strings.TrimSpace(email), password, strings.TrimSpace(displayName))
	})
}

func (v *Login) authenticate(fn func() (*client.Identity, error)) error {
	if v.state == LoginAuthenticating || v.state == LoginAuthenticated {
		return ErrInvalidTransition
	}

	v.state = LoginAuthenticating
	v.err = nil

	id, err := fn()
	if err != nil {
		v.state = LoginFailed
		v.err = err
		return err
	}

	v.identity = id
	v.state = LoginAuthenticated
	return nil
}
