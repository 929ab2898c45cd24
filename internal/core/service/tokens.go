package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/repairdesk/support-api/internal/core/domain"
	"github.com/repairdesk/support-api/internal/core/ports"
)

// ClaimUserID is the only custom claim carried by access and refresh tokens.
const ClaimUserID = "id"

const (
	defaultLoginTTL   = time.Hour
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// TokenConfig holds the signing secrets and lifetimes for issued tokens.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	LoginTTL      time.Duration
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// TokenIssuer signs and verifies HS256 tokens.
type TokenIssuer struct {
	cfg TokenConfig
}

func NewTokenIssuer(cfg TokenConfig) *TokenIssuer {
	if cfg.LoginTTL <= 0 {
		cfg.LoginTTL = defaultLoginTTL
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = defaultAccessTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = defaultRefreshTTL
	}
	return &TokenIssuer{cfg: cfg}
}

// LoginToken is the access token handed out by a password login.
func (t *TokenIssuer) LoginToken(userID string) (string, error) {
	return sign(userID, t.cfg.AccessSecret, t.cfg.LoginTTL)
}

// GenerateTokens issues a short-lived access token and a long-lived refresh token.
func (t *TokenIssuer) GenerateTokens(userID string) (*ports.TokenPair, error) {
	access, err := sign(userID, t.cfg.AccessSecret, t.cfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := sign(userID, t.cfg.RefreshSecret, t.cfg.RefreshTTL)
	if err != nil {
		return nil, err
	}
	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyRefreshToken returns the user id of a valid refresh token. Every
// failure collapses to domain.ErrInvalidRefreshToken.
func (t *TokenIssuer) VerifyRefreshToken(token string) (string, error) {
	id, err := ParseUserID(token, t.cfg.RefreshSecret)
	if err != nil {
		return "", domain.ErrInvalidRefreshToken
	}
	return id, nil
}

// ParseUserID verifies an HS256 token against secret and extracts its id claim.
func ParseUserID(token, secret string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return "", fmt.Errorf("parse token: %w", err)
	}

	id, _ := claims[ClaimUserID].(string)
	if id == "" {
		return "", fmt.Errorf("parse token: %w", jwt.ErrTokenInvalidClaims)
	}
	return id, nil
}

func sign(userID, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		ClaimUserID: userID,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
