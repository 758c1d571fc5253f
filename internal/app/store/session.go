package store

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"projectmanager/internal/adapter/api/dto"
	"projectmanager/internal/adapter/api/mapper"
	"projectmanager/internal/core/domain"
	"projectmanager/internal/core/ports"
)

// Persisted session keys. All three are written together on login and
// removed together on logout; a resumed session requires all of them.
const (
	KeyToken    = "jwt_token"
	KeyUserID   = "current_user_id"
	KeyUserData = "current_user_data"
)

const tokenTTL = 24 * time.Hour

// SessionStore is the single source of truth for who is logged in.
// Lookup and transport failures collapse into nil results plus a log
// line; callers branch on nil versus value, never on error shapes.
type SessionStore struct {
	client ports.RemoteClient
	vault  ports.KeyValue
	secret []byte

	mu            sync.Mutex
	authenticated bool
	current       *domain.User
	observers     []func(*domain.User)
}

// NewSessionStore restores any persisted session. A snapshot that fails
// to parse is never trusted: it is logged and the whole session is torn
// down, persisted keys included.
func NewSessionStore(client ports.RemoteClient, vault ports.KeyValue, secret string) *SessionStore {
	s := &SessionStore{
		client: client,
		vault:  vault,
		secret: []byte(secret),
	}
	s.restore()
	return s
}

func (s *SessionStore) restore() {
	token, hasToken := s.vault.Get(KeyToken)
	data, hasData := s.vault.Get(KeyUserData)
	if !hasToken || !hasData || token == "" {
		return
	}

	user, ok := parseSnapshot(data)
	if !ok {
		zap.L().Warn("corrupted session snapshot, logging out")
		s.Logout()
		return
	}

	s.mu.Lock()
	s.authenticated = true
	s.current = &user
	s.mu.Unlock()
}

// Login looks the user up by credentials. Exactly one match yields a
// session; zero matches and transport failures both yield nil, which
// the caller reads as "invalid credentials".
func (s *SessionStore) Login(ctx context.Context, credentials domain.Credentials) *domain.LoginResult {
	query := url.Values{}
	query.Set("email", credentials.Email)
	query.Set("password", credentials.Password)

	var items []dto.UserItem
	if err := s.client.Get(ctx, "users?"+query.Encode(), &items); err != nil {
		zap.L().Error("login request failed", zap.Error(err))
		s.setIdentity(false, nil)
		return nil
	}

	if len(items) == 0 {
		return nil
	}

	item := items[0]
	token, err := s.issueToken(item.ID)
	if err != nil {
		zap.L().Error("failed to issue session token", zap.Error(err))
		return nil
	}

	snapshot, err := json.Marshal(item)
	if err != nil {
		zap.L().Error("failed to encode user snapshot", zap.Error(err))
		return nil
	}

	if err := s.vault.Set(map[string]string{
		KeyToken:    token,
		KeyUserID:   item.ID,
		KeyUserData: string(snapshot),
	}); err != nil {
		zap.L().Warn("failed to persist session", zap.Error(err))
	}

	user := mapper.ToUser(item)
	s.setIdentity(true, &user)
	return &domain.LoginResult{Token: token, UserID: item.ID}
}

// Logout clears the persisted keys and the in-memory identity. Safe to
// call when already logged out.
func (s *SessionStore) Logout() {
	if err := s.vault.Remove(KeyToken, KeyUserID, KeyUserData); err != nil {
		zap.L().Warn("failed to clear persisted session", zap.Error(err))
	}
	s.setIdentity(false, nil)
}

// CheckAuth re-derives the authenticated flag from the persisted token.
// An absent, invalid, or expired token tears the session down. A valid
// token with no in-memory user reloads it from the persisted snapshot.
func (s *SessionStore) CheckAuth() bool {
	token, ok := s.vault.Get(KeyToken)
	if !ok || token == "" {
		s.setIdentity(false, nil)
		return false
	}

	if err := s.verifyToken(token); err != nil {
		zap.L().Warn("session token rejected", zap.Error(err))
		s.Logout()
		return false
	}

	s.mu.Lock()
	hasUser := s.current != nil
	s.mu.Unlock()

	if !hasUser {
		data, ok := s.vault.Get(KeyUserData)
		if !ok {
			s.Logout()
			return false
		}

		user, parsed := parseSnapshot(data)
		if !parsed {
			zap.L().Warn("corrupted session snapshot, logging out")
			s.Logout()
			return false
		}
		s.setIdentity(true, &user)
		return true
	}

	s.setIdentity(true, s.CurrentUser())
	return true
}

// FetchCurrentUser refetches the user record and replaces the identity.
// A missing user or a failed request ends the session: it cannot exist
// without a resolvable user.
func (s *SessionStore) FetchCurrentUser(ctx context.Context, userID string) {
	var item dto.UserItem
	if err := s.client.Get(ctx, "users/"+userID, &item); err != nil {
		zap.L().Error("failed to fetch current user", zap.String("user_id", userID), zap.Error(err))
		s.Logout()
		return
	}

	if item.ID == "" {
		s.Logout()
		return
	}

	user := mapper.ToUser(item)
	s.setIdentity(true, &user)
}

// Register creates a new user record. It does not touch session state;
// a nil return means the registration did not go through.
func (s *SessionStore) Register(ctx context.Context, registration domain.Registration) *domain.User {
	var item dto.UserItem
	if err := s.client.Post(ctx, "users", mapper.ToRegisterRequest(registration), &item); err != nil {
		zap.L().Error("registration failed", zap.Error(err))
		return nil
	}

	user := mapper.ToUser(item)
	return &user
}

func (s *SessionStore) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

func (s *SessionStore) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// SubscribeIdentity registers an observer of identity changes. The
// observer receives the new user, or nil when the session ends. It is
// not invoked for no-op transitions.
func (s *SessionStore) SubscribeIdentity(fn func(*domain.User)) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *SessionStore) setIdentity(authenticated bool, user *domain.User) {
	s.mu.Lock()
	if s.authenticated == authenticated && sameIdentity(s.current, user) {
		s.mu.Unlock()
		return
	}

	s.authenticated = authenticated
	s.current = user

	observers := make([]func(*domain.User), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		if user == nil {
			fn(nil)
		} else {
			value := *user
			fn(&value)
		}
	}
}

func sameIdentity(a, b *domain.User) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (s *SessionStore) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *SessionStore) verifyToken(token string) error {
	_, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	return err
}

func parseSnapshot(data string) (domain.User, bool) {
	var item dto.UserItem
	if err := json.Unmarshal([]byte(data), &item); err != nil {
		return domain.User{}, false
	}
	if item.ID == "" {
		return domain.User{}, false
	}
	return mapper.ToUser(item), true
}
