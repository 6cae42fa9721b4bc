package services

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// The two fixed roles. Each owns a disjoint subset of the review fields.
const (
	RoleAdmin    = "admin"
	RoleReviewer = "reviewer"
)

// CredentialVerifier resolves a username/password pair to a role. Keeping
// this behind an interface keeps the handlers free of embedded secrets.
type CredentialVerifier interface {
	Verify(username, password string) (role string, ok bool)
}

// Credential is one entry of the fixed login table.
type Credential struct {
	Username string
	Password string
	Role     string
}

type staticUser struct {
	hash []byte
	role string
}

// StaticVerifier checks credentials against an in-memory table. Passwords
// are bcrypt-hashed at construction so plaintext never outlives startup.
type StaticVerifier struct {
	users map[string]staticUser
}

// NewStaticVerifier builds a verifier from the given credential table.
func NewStaticVerifier(creds []Credential) (*StaticVerifier, error) {
	users := make(map[string]staticUser, len(creds))
	for _, cred := range creds {
		if cred.Username == "" || cred.Password == "" {
			return nil, fmt.Errorf("credential for role %q is incomplete", cred.Role)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(cred.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		users[cred.Username] = staticUser{hash: hash, role: cred.Role}
	}
	return &StaticVerifier{users: users}, nil
}

// Verify implements CredentialVerifier.
func (v *StaticVerifier) Verify(username, password string) (string, bool) {
	user, ok := v.users[username]
	if !ok {
		return "", false
	}
	if bcrypt.CompareHashAndPassword(user.hash, []byte(password)) != nil {
		return "", false
	}
	return user.role, true
}

// NewVerifierFromEnv builds the demo credential table from environment
// variables, with the development defaults the prototype shipped with.
func NewVerifierFromEnv() (*StaticVerifier, error) {
	return NewStaticVerifier([]Credential{
		{
			Username: envOr("ADMIN_USERNAME", "admin"),
			Password: envOr("ADMIN_PASSWORD", "admin123"),
			Role:     RoleAdmin,
		},
		{
			Username: envOr("REVIEWER_USERNAME", "approver"),
			Password: envOr("REVIEWER_PASSWORD", "approver123"),
			Role:     RoleReviewer,
		},
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
