package auth

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

type Config struct {
	AccessSecret    string        `yaml:"accessSecret" envconfig:"JWT_SECRET"`
	RefreshSecret   string        `yaml:"refreshSecret" envconfig:"JWT_REFRESH_SECRET"`
	AccessLifetime  time.Duration `yaml:"accessLifetime" envconfig:"JWT_LIFETIME" default:"15m"`
	RefreshLifetime time.Duration `yaml:"refreshLifetime" envconfig:"JWT_REFRESH_LIFETIME" default:"168h"`
}

// Claims carries the acting admin's identity in both token kinds.
type Claims struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and verifies access and refresh tokens.
// The two kinds are signed with independent secrets: a token of one
// kind never verifies as the other.
type TokenManager struct {
	cfg Config
}

func NewTokenManager(cfg Config) *TokenManager {
	return &TokenManager{cfg: cfg}
}

func (tm *TokenManager) NewAccessToken(userID, firstName, lastName string) (string, error) {
	return tm.sign(userID, firstName, lastName, tm.cfg.AccessSecret, tm.cfg.AccessLifetime)
}

func (tm *TokenManager) NewRefreshToken(userID, firstName, lastName string) (string, error) {
	return tm.sign(userID, firstName, lastName, tm.cfg.RefreshSecret, tm.cfg.RefreshLifetime)
}

func (tm *TokenManager) ParseAccessToken(token string) (*Claims, error) {
	return tm.parse(token, tm.cfg.AccessSecret)
}

func (tm *TokenManager) ParseRefreshToken(token string) (*Claims, error) {
	return tm.parse(token, tm.cfg.RefreshSecret)
}

func (tm *TokenManager) sign(userID, firstName, lastName, secret string, lifetime time.Duration) (string, error) {
	claims := &Claims{
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func (tm *TokenManager) parse(tokenStr, secret string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
