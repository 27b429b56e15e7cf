// Package sessions maintains the single source of truth for "who is the
// current user" and "what is their profile" for the lifetime of a session.
package sessions

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/recipehub/recipehub/internal/logger"
	"github.com/recipehub/recipehub/internal/models"
	"github.com/recipehub/recipehub/internal/services"
)

// Authenticator authenticates credentials and issues a session token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (uuid.UUID, string, error)
}

// ProfileReader resolves a profile by its identity key.
type ProfileReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProfileDB, error)
}

// ProfileWriter updates a profile's display fields.
type ProfileWriter interface {
	Update(ctx context.Context, id uuid.UUID, username, fullName string) (*models.ProfileDB, error)
}

// TokenStore persists live session tokens. Get returns uuid.Nil without
// error for unknown or expired tokens.
type TokenStore interface {
	Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	Get(ctx context.Context, token string) (uuid.UUID, error)
	Delete(ctx context.Context, token string) error
}

// Notifier delivers authentication-state events pushed by the auth layer.
type Notifier interface {
	Publish(e services.Event)
	Subscribe() (<-chan services.Event, func())
}

// Manager is the process-wide identity/session context. It holds, per
// signed-in identity, the profile record fetched at sign-in, and keeps it
// consistent with the store by reacting to pushed auth-state events.
//
// Invariant: a held profile's ID always equals the identity it is held
// under; the manager re-fetches on every identity change to keep it so.
type Manager struct {
	mu   sync.RWMutex
	held map[uuid.UUID]*models.ProfileDB

	auth     Authenticator
	profiles ProfileReader
	writer   ProfileWriter
	store    TokenStore
	notifier Notifier
	ttl      time.Duration

	unsubscribe func()
	done        chan struct{}
}

// NewManager creates a Manager and subscribes it to auth-state events.
// Call Close to unsubscribe and stop the event loop.
func NewManager(auth Authenticator, profiles ProfileReader, writer ProfileWriter, store TokenStore, notifier Notifier, ttl time.Duration) *Manager {
	m := &Manager{
		held:     make(map[uuid.UUID]*models.ProfileDB),
		auth:     auth,
		profiles: profiles,
		writer:   writer,
		store:    store,
		notifier: notifier,
		ttl:      ttl,
		done:     make(chan struct{}),
	}

	events, unsubscribe := notifier.Subscribe()
	m.unsubscribe = unsubscribe
	go m.watch(events)

	return m
}

// Close unsubscribes from auth-state events and stops the event loop.
func (m *Manager) Close() {
	m.unsubscribe()
	<-m.done
}

// watch consumes pushed auth-state events until the subscription closes.
func (m *Manager) watch(events <-chan services.Event) {
	defer close(m.done)

	for e := range events {
		switch e.Kind {
		case services.EventSignedOut:
			m.mu.Lock()
			delete(m.held, e.UserID)
			m.mu.Unlock()
		case services.EventSignedIn, services.EventProfileChanged:
			m.refresh(e.UserID)
		}
	}
}

// refresh re-resolves the held profile for an identity the manager is
// tracking. Identities with no held state are ignored.
func (m *Manager) refresh(userID uuid.UUID) {
	m.mu.RLock()
	_, tracked := m.held[userID]
	m.mu.RUnlock()
	if !tracked {
		return
	}

	profile, err := m.profiles.GetByID(context.Background(), userID)
	if err != nil {
		logger.Log.Errorw("failed to refresh held profile", "user_id", userID, "err", err)
		return
	}

	m.mu.Lock()
	m.held[userID] = profile
	m.mu.Unlock()
}

// SignIn authenticates the credentials, records the session token and
// fetches the identity's profile. On failure no state is mutated.
func (m *Manager) SignIn(ctx context.Context, email, password string) (string, error) {
	userID, token, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return "", err
	}

	if err := m.store.Save(ctx, token, userID, m.ttl); err != nil {
		logger.Log.Errorw("failed to persist session", "user_id", userID, "err", err)
		return "", err
	}

	profile, err := m.profiles.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to fetch profile at sign-in", "user_id", userID, "err", err)
		// The session is live; the profile will be re-resolved on demand.
		profile = nil
	}

	m.mu.Lock()
	m.held[userID] = profile
	m.mu.Unlock()

	return token, nil
}

// SignOut clears the held identity and profile and revokes the session
// token. Idempotent: signing out an already-dead token is a no-op.
func (m *Manager) SignOut(ctx context.Context, token string) error {
	userID, err := m.store.Get(ctx, token)
	if err != nil {
		return err
	}
	if userID == uuid.Nil {
		return nil
	}

	if err := m.store.Delete(ctx, token); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.held, userID)
	m.mu.Unlock()

	return nil
}

// Current resolves the token to its identity and held profile.
// Returns uuid.Nil and no error when the token has no live session.
func (m *Manager) Current(ctx context.Context, token string) (uuid.UUID, *models.ProfileDB, error) {
	userID, err := m.store.Get(ctx, token)
	if err != nil {
		return uuid.Nil, nil, err
	}
	if userID == uuid.Nil {
		return uuid.Nil, nil, nil
	}

	m.mu.RLock()
	profile, ok := m.held[userID]
	m.mu.RUnlock()
	if ok && profile != nil {
		return userID, profile, nil
	}

	// Session restored from the store (e.g. after a restart): re-establish
	// the held profile for the identity.
	profile, err = m.profiles.GetByID(ctx, userID)
	if err != nil {
		return uuid.Nil, nil, err
	}

	m.mu.Lock()
	m.held[userID] = profile
	m.mu.Unlock()

	return userID, profile, nil
}

// UpdateProfile validates the display fields and issues an update keyed by
// the token's identity. On success the held profile is replaced with the
// updated record and a profile-changed event is published.
func (m *Manager) UpdateProfile(ctx context.Context, token, username, fullName string) (*models.ProfileDB, error) {
	userID, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if userID == uuid.Nil {
		return nil, services.ErrUnauthenticated
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, services.NewValidationError("Username is required")
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, services.NewValidationError("Full name is required")
	}

	profile, err := m.writer.Update(ctx, userID, username, fullName)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return nil, err
		}
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return nil, services.ErrSubmission
	}

	m.mu.Lock()
	m.held[userID] = profile
	m.mu.Unlock()

	m.notifier.Publish(services.Event{Kind: services.EventProfileChanged, UserID: userID})

	return profile, nil
}
