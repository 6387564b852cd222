package auth

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Kariqs/carta-vendor-portal/models"
)

// ProfileFetcher loads the vendor record for the current token.
type ProfileFetcher interface {
	GetProfile(ctx context.Context) (*models.VendorProfile, error)
}

// Manager drives the session through LoggedOut -> LoggedIn -> LoggedOut.
type Manager struct {
	provider IdentityProvider
	profiles ProfileFetcher
	session  *Session
}

func NewManager(provider IdentityProvider, profiles ProfileFetcher, session *Session) *Manager {
	return &Manager{provider: provider, profiles: profiles, session: session}
}

func (m *Manager) Session() *Session {
	return m.session
}

// Authenticate stores the provider's token on success. Nothing is cached on
// failure, and a previous session is left alone.
func (m *Manager) Authenticate(ctx context.Context, username, password string) error {
	token, err := m.provider.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return err
		}
		if !errors.Is(err, ErrAuthProvider) {
			err = fmt.Errorf("%v: %w", err, ErrAuthProvider)
		}
		log.Println("Login failed:", err)
		return err
	}
	if token == "" {
		return fmt.Errorf("empty token returned: %w", ErrAuthProvider)
	}
	m.session.setToken(token)
	return nil
}

// LoadProfile returns the cached profile, fetching it once per session. A
// failed fetch logs the vendor out.
func (m *Manager) LoadProfile(ctx context.Context) (*models.VendorProfile, error) {
	if p := m.session.Profile(); p != nil {
		return p, nil
	}
	token := m.session.Token()
	if token == "" {
		return nil, fmt.Errorf("not logged in: %w", ErrProfileUnavailable)
	}

	profile, err := m.profiles.GetProfile(ctx)
	if err == nil && (profile == nil || profile.ID == "") {
		err = errors.New("backend returned an empty vendor record")
	}
	if err != nil {
		log.Println("Could not fetch vendor profile:", err)
		m.session.clearIf(token)
		return nil, fmt.Errorf("%v: %w", err, ErrProfileUnavailable)
	}
	if !m.session.setProfile(token, profile) {
		return nil, fmt.Errorf("session ended while loading profile: %w", ErrProfileUnavailable)
	}
	p := *profile
	return &p, nil
}

func (m *Manager) Logout() {
	m.session.clear()
}
