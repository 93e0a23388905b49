package sessions

import (
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/app/models"
	"citabot-service/internal/app/services/core/permissions"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/exceptions"
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// State is the observable session state. After every transition
// IsAuthenticated == (User != nil); IsLoading is true only while a login or
// auth check is in flight.
type State struct {
	User            *models.UserProfile
	IsAuthenticated bool
	IsLoading       bool
	Err             string
}

// Store is the single source of truth for "who is logged in". Operations
// are serialized on one mutex so the state always reflects the most
// recently completed call; the 401 refresh-and-retry policy belongs to the
// AuthGateway, never here. Construct one instance per process (or per test).
type Store struct {
	mu        sync.Mutex
	gateway   contracts.AuthGateway
	stateRepo contracts.SessionStateRepository
	log       *zap.Logger

	state        State
	version      uint64
	evalVersion  uint64
	eval         *permissions.Evaluator
	bootstrapped bool
}

// NewSessionStore rehydrates the persisted {user, isAuthenticated} subset
// when a state repository is given; IsLoading and Err always start at their
// zero values. stateRepo may be nil for a purely in-memory store.
func NewSessionStore(gateway contracts.AuthGateway, stateRepo contracts.SessionStateRepository, log *zap.Logger) *Store {
	s := &Store{
		gateway:   gateway,
		stateRepo: stateRepo,
		log:       log,
	}
	if stateRepo != nil {
		user, isAuthenticated, err := stateRepo.Load()
		if err != nil {
			log.Warn("sessionStore failed to load persisted state", zap.Error(err))
		} else if isAuthenticated && user != nil {
			s.setUserLocked(user)
		}
	}
	return s
}

// Login replaces the session wholesale on success. On failure it clears any
// previously authenticated state and surfaces the server's message; a failed
// login must never leave a stale session behind.
func (s *Store) Login(ctx context.Context, identifier, secret string) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsLoading = true
	defer func() { s.state.IsLoading = false }()

	user, err := s.gateway.Login(ctx, identifier, secret)
	if err != nil {
		s.setUserLocked(nil)
		s.state.Err = clientMessage(err)
		s.persistLocked()
		return nil, err
	}

	s.setUserLocked(user)
	s.state.Err = ""
	s.persistLocked()
	return user, nil
}

// CheckAuth is the silent background check: any failure just means "not
// logged in" and leaves Err untouched.
func (s *Store) CheckAuth(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsLoading = true
	defer func() { s.state.IsLoading = false }()

	user, err := s.gateway.Me(ctx)
	if err != nil || user == nil {
		s.setUserLocked(nil)
		s.persistLocked()
		return false
	}

	s.setUserLocked(user)
	s.persistLocked()
	return true
}

// EnsureChecked runs CheckAuth at most once per store lifetime; later calls
// report the current state. This is the bootstrap guard.
func (s *Store) EnsureChecked(ctx context.Context) bool {
	s.mu.Lock()
	done := s.bootstrapped
	s.bootstrapped = true
	authenticated := s.state.IsAuthenticated
	s.mu.Unlock()

	if done {
		return authenticated
	}
	return s.CheckAuth(ctx)
}

// Logout is unconditionally effective on the client: the server call is
// best-effort and its failure is logged, never surfaced.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.gateway.Logout(ctx); err != nil {
		s.log.Warn("sessionStore logout call failed, clearing local state anyway", zap.Error(err))
	}

	s.setUserLocked(nil)
	s.state.Err = ""
	s.persistLocked()
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Err = ""
}

func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setUserLocked(nil)
	s.state.Err = ""
	s.bootstrapped = false
	s.persistLocked()
}

// State returns a snapshot copy.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Evaluator returns the permission bundle for the current user, rebuilt only
// when the profile has changed since the last call. Nil while logged out.
func (s *Store) Evaluator() *permissions.Evaluator {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return nil
	}
	if s.eval == nil || s.evalVersion != s.version {
		s.eval = permissions.NewEvaluator(s.state.User)
		s.evalVersion = s.version
	}
	return s.eval
}

func (s *Store) setUserLocked(user *models.UserProfile) {
	s.state.User = user
	s.state.IsAuthenticated = user != nil
	s.version++
	if user == nil {
		s.eval = nil
	}
}

func (s *Store) persistLocked() {
	if s.stateRepo == nil {
		return
	}
	var err error
	if s.state.User == nil {
		err = s.stateRepo.Clear()
	} else {
		err = s.stateRepo.Save(s.state.User, s.state.IsAuthenticated)
	}
	if err != nil {
		s.log.Warn("sessionStore failed to persist state", zap.Error(err))
	}
}

func clientMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.ClientMessage != "" {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrongWithApp
}
