package client

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
)

// Credentials is the persisted authentication state: the bearer token and the
// id of the signed-in user.
type Credentials struct {
	Token  string `json:"token"`
	UserID uint   `json:"user_id"`
}

// CredentialStore persists credentials between runs. The browser app kept
// these in local storage; a CLI keeps them in a file, tests in memory.
type CredentialStore interface {
	Load() (Credentials, error)
	Save(Credentials) error
	Clear() error
}

// MemoryStore keeps credentials for the lifetime of the process
type MemoryStore struct {
	mu    sync.Mutex
	creds Credentials
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds, nil
}

func (s *MemoryStore) Save(creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = creds
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = Credentials{}
	return nil
}

// FileStore keeps credentials in a JSON file
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (Credentials, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Credentials{}, nil
	}
	if err != nil {
		return Credentials{}, err
	}
	var creds Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

func (s *FileStore) Save(creds Credentials) error {
	raw, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Session is the single injected authentication object. Components ask it
// whether a user is signed in instead of reading shared storage themselves.
type Session struct {
	mu    sync.RWMutex
	store CredentialStore
	creds Credentials
}

// NewSession creates a session backed by the given store, restoring any
// previously saved credentials.
func NewSession(store CredentialStore) (*Session, error) {
	creds, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Session{store: store, creds: creds}, nil
}

// IsAuthenticated reports whether a user is signed in
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.Token != ""
}

// UserID returns the signed-in user's id, zero when signed out
func (s *Session) UserID() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.UserID
}

// Token returns the bearer token, empty when signed out
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.Token
}

func (s *Session) begin(creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(creds); err != nil {
		return err
	}
	s.creds = creds
	return nil
}

// Logout clears the session and its persisted credentials
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.creds = Credentials{}
	return nil
}

// LoginResponse is the auth payload returned by the server
type LoginResponse struct {
	Token  string `json:"token"`
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
}

// Login authenticates and stores the returned credentials in the session.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.postJSON(ctx, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if err := c.session.begin(Credentials{Token: resp.Token, UserID: resp.UserID}); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account. The caller still logs in afterwards.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	return c.postJSON(ctx, "/api/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, nil)
}

// RequestPasswordReset asks the server to mail a reset link
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	return c.postJSON(ctx, "/api/auth/forgetpassword", map[string]string{
		"email": email,
	}, nil)
}

// ResetPassword redeems a mailed token for a new password
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	return c.postJSON(ctx, "/api/auth/resetpassword", map[string]string{
		"token":    token,
		"password": password,
	}, nil)
}

// Logout clears the client's session
func (c *Client) Logout() error {
	return c.session.Logout()
}
