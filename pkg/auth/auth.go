// Package auth defines the authentication surface the application
// consumes. The actual OIDC redirect flow lives outside this module; the
// core only needs session state and bearer tokens.
package auth

import (
	"context"
	"errors"
)

// ErrNotSignedIn is returned by token lookups when no session is active.
var ErrNotSignedIn = errors.New("auth: not signed in")

// TokenSource supplies access tokens for gateway calls. It is the minimal
// capability the storage layer depends on.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Provider is the full session surface consumed by the application shell.
// A non-nil Err is fatal to the session: a stale or invalid session cannot
// be repaired client-side, so the policy is to sign out rather than retry.
type Provider interface {
	TokenSource
	IsAuthenticated() bool
	IsLoading() bool
	Err() error
	SignIn(ctx context.Context) error
	SignOut(ctx context.Context) error
}

// StaticProvider is a Provider backed by a fixed token. It serves the CLI
// (where the token arrives via config) and tests.
type StaticProvider struct {
	token    string
	signedIn bool
	err      error
}

// NewStatic returns a signed-in provider carrying the given token. An
// empty token yields a signed-out provider.
func NewStatic(token string) *StaticProvider {
	return &StaticProvider{token: token, signedIn: token != ""}
}

func (p *StaticProvider) IsAuthenticated() bool { return p.signedIn }
func (p *StaticProvider) IsLoading() bool       { return false }
func (p *StaticProvider) Err() error            { return p.err }

// Token returns the configured token while signed in.
func (p *StaticProvider) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !p.signedIn || p.token == "" {
		return "", ErrNotSignedIn
	}
	return p.token, nil
}

func (p *StaticProvider) SignIn(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.token == "" {
		return ErrNotSignedIn
	}
	p.signedIn = true
	return nil
}

func (p *StaticProvider) SignOut(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.signedIn = false
	p.err = nil
	return nil
}

// Fail marks the provider as errored, simulating a broken session in
// tests.
func (p *StaticProvider) Fail(err error) {
	p.err = err
}
