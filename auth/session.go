package auth

import (
	"sync"

	"github.com/Kariqs/carta-vendor-portal/models"
)

// Session is the process-wide vendor session. Only Manager writes to it.
type Session struct {
	mu      sync.RWMutex
	token   string
	profile *models.VendorProfile
}

func NewSession() *Session {
	return &Session{}
}

// Token implements backend.TokenSource.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Profile returns a copy of the cached profile, or nil.
func (s *Session) Profile() *models.VendorProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

func (s *Session) setToken(token string) {
	s.mu.Lock()
	s.token = token
	s.profile = nil
	s.mu.Unlock()
}

// setProfile caches p unless the session was cleared while it was fetched
// with the given token.
func (s *Session) setProfile(token string, p *models.VendorProfile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" || s.token != token {
		return false
	}
	s.profile = p
	return true
}

func (s *Session) clear() {
	s.mu.Lock()
	s.token = ""
	s.profile = nil
	s.mu.Unlock()
}

// clearIf ends the session only if it still belongs to token.
func (s *Session) clearIf(token string) {
	s.mu.Lock()
	if s.token == token {
		s.token = ""
		s.profile = nil
	}
	s.mu.Unlock()
}
