package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers expired, malformed, or otherwise unverifiable
// tokens, including refresh tokens presented where an access token is
// expected and vice versa.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the decoded identity carried by a verified token.
type Claims struct {
	UserID string
	Email  string
}

// TokenManager signs and verifies HS256 bearer tokens. It is immutable and
// safe for concurrent use.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager creates a TokenManager. The secret must be non-empty.
func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// AccessTTL returns the access token lifetime.
func (tm *TokenManager) AccessTTL() time.Duration {
	return tm.accessTTL
}

// IssueAccess signs a short-lived access token with sub and email claims.
func (tm *TokenManager) IssueAccess(userID, email string) (string, error) {
	return tm.sign(jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   time.Now().Add(tm.accessTTL).Unix(),
	})
}

// IssueRefresh signs a long-lived refresh token, marked with a type claim
// so it cannot be used as an access token.
func (tm *TokenManager) IssueRefresh(userID, email string) (string, error) {
	return tm.sign(jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"type":  "refresh",
		"exp":   time.Now().Add(tm.refreshTTL).Unix(),
	})
}

// VerifyAccess validates an access token and returns its claims.
func (tm *TokenManager) VerifyAccess(token string) (*Claims, error) {
	claims, tokenType, err := tm.verify(token)
	if err != nil {
		return nil, err
	}
	if tokenType == "refresh" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// VerifyRefresh validates a refresh token and returns its claims.
func (tm *TokenManager) VerifyRefresh(token string) (*Claims, error) {
	claims, tokenType, err := tm.verify(token)
	if err != nil {
		return nil, err
	}
	if tokenType != "refresh" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (tm *TokenManager) sign(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (tm *TokenManager) verify(token string) (*Claims, string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return tm.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, "", ErrInvalidToken
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, "", ErrInvalidToken
	}
	sub, _ := mc["sub"].(string)
	email, _ := mc["email"].(string)
	if sub == "" || email == "" {
		return nil, "", ErrInvalidToken
	}
	tokenType, _ := mc["type"].(string)

	return &Claims{UserID: sub, Email: email}, tokenType, nil
}
