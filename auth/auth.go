// Package auth gates the mutating commands behind a login, the way the
// legacy application did: a shared admin credential, checked locally, with
// the logged-in state kept between invocations.
//
// The session is a signed JWT in a file next to the books. The signing key
// is generated on first use and never leaves the data directory, so a
// session file copied to another machine is worthless there.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrBadCredentials is returned when the username or password is wrong.
var ErrBadCredentials = errors.New("wrong username or password")

// ErrNoSession is returned when no valid login session exists.
var ErrNoSession = errors.New("not logged in, run 'kira login' first")

// defaultUser and defaultPasswordHash are the out-of-the-box credential
// (admin / admin123), active until a password file is written. The hash is
// the hex SHA-256 the legacy application stored.
const (
	defaultUser         = "admin"
	defaultPasswordHash = "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9"
)

// sessionTTL is how long a login stays valid.
const sessionTTL = 24 * time.Hour

// VerifyPassword checks a credential pair. When a password file exists at
// 'passwdPath' it is authoritative; otherwise the built-in default
// credential applies.
func VerifyPassword(passwdPath, user, password string) error {
	raw, err := os.ReadFile(passwdPath)
	if errors.Is(err, fs.ErrNotExist) {
		sum := sha256.Sum256([]byte(password))
		got := hex.EncodeToString(sum[:])
		if subtle.ConstantTimeCompare([]byte(user), []byte(defaultUser)) == 1 &&
			subtle.ConstantTimeCompare([]byte(got), []byte(defaultPasswordHash)) == 1 {
			return nil
		}
		return ErrBadCredentials
	}
	if err != nil {
		return fmt.Errorf("could not read password file: %w", err)
	}

	for _, line := range strings.Split(string(raw), "\n") {
		name, hash, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok || name != user {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil {
			return nil
		}
		return ErrBadCredentials
	}
	return ErrBadCredentials
}

// SetPassword writes the password file with a single credential, replacing
// whatever was there. Once the file exists the default credential stops
// working.
func SetPassword(passwdPath, user, password string) error {
	if user == "" || password == "" {
		return errors.New("username and password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(passwdPath), 0o755); err != nil {
		return fmt.Errorf("could not create password file directory: %w", err)
	}
	line := fmt.Sprintf("%s:%s\n", user, hash)
	if err := os.WriteFile(passwdPath, []byte(line), 0o600); err != nil {
		return fmt.Errorf("could not write password file: %w", err)
	}
	return nil
}

// Sessions manages the login session file.
type Sessions struct {
	// SessionFile holds the signed session token.
	SessionFile string
	// KeyFile holds the signing key, generated on first login.
	KeyFile string

	now func() time.Time // injected for tests
}

// NewSessions returns a session manager keeping the session at
// 'sessionFile', with the signing key next to it.
func NewSessions(sessionFile string) *Sessions {
	return &Sessions{
		SessionFile: sessionFile,
		KeyFile:     filepath.Join(filepath.Dir(sessionFile), ".session-key"),
		now:         time.Now,
	}
}

// Login opens a session for the user after the credential has been
// verified elsewhere.
func (s *Sessions) Login(user string) error {
	key, err := s.signingKey()
	if err != nil {
		return err
	}
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
	})
	signed, err := token.SignedString(key)
	if err != nil {
		return fmt.Errorf("could not sign session token: %w", err)
	}
	if err := os.WriteFile(s.SessionFile, []byte(signed), 0o600); err != nil {
		return fmt.Errorf("could not write session file: %w", err)
	}
	return nil
}

// Current returns the logged-in username, or ErrNoSession when the session
// file is absent, tampered with, or expired.
func (s *Sessions) Current() (string, error) {
	raw, err := os.ReadFile(s.SessionFile)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("could not read session file: %w", err)
	}
	key, err := s.signingKey()
	if err != nil {
		return "", err
	}

	var claims jwt.RegisteredClaims
	_, err = jwt.ParseWithClaims(string(raw), &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return key, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoSession, err)
	}
	return claims.Subject, nil
}

// Logout removes the session file. Logging out twice is fine.
func (s *Sessions) Logout() error {
	err := os.Remove(s.SessionFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// signingKey loads the signing key, generating and persisting a fresh one
// on first use.
func (s *Sessions) signingKey() ([]byte, error) {
	raw, err := os.ReadFile(s.KeyFile)
	if err == nil {
		return raw, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not read session key: %w", err)
	}

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("could not generate session key: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.KeyFile), 0o755); err != nil {
		return nil, fmt.Errorf("could not create session key directory: %w", err)
	}
	if err := os.WriteFile(s.KeyFile, key, 0o600); err != nil {
		return nil, fmt.Errorf("could not write session key: %w", err)
	}
	return key, nil
}
