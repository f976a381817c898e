package adapter

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

// StaticTokenProvider serves a pre-provisioned bearer credential. Token
// acquisition and refresh live in the external auth collaborator; this shim
// only hands the engine whatever that collaborator last supplied. An empty
// token means "no authenticated session" and makes the engine skip sync
// passes.
type StaticTokenProvider struct {
	mu    sync.RWMutex
	token string
}

// NewStaticTokenProvider returns a provider initialised with token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: strings.TrimSpace(token)}
}

// Token implements [TokenProvider].
func (p *StaticTokenProvider) Token(_ context.Context) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.token, nil
}

// SetToken replaces the stored credential; the auth collaborator calls this
// after a refresh. An empty value revokes the session.
func (p *StaticTokenProvider) SetToken(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = strings.TrimSpace(token)
}

// ParseSubject extracts the "sub" claim from a JWT bearer token without
// verifying its signature. Verification belongs to the store; the client
// only uses the subject for diagnostics.
func ParseSubject(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	return claims.GetSubject()
}
