package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Role string

const (
	RoleStudent Role = "Student"
	RoleStaff   Role = "Staff"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleStaff
}

// Actor is the authenticated user an operation is attributed to.
type Actor struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the actor may manage inventory and void transactions.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleStaff
}

type Config struct {
	Secret        string        `envconfig:"JWT_SECRET"`
	TokenTTL      time.Duration `envconfig:"JWT_TTL" default:"24h"`
	AdminPassword string        `envconfig:"ADMIN_PASSWORD"`
}

const minSecretLen = 16

var ErrWeakSecret = errors.Errorf("JWT_SECRET must be at least %d characters", minSecretLen)

// Validate refuses configs whose tokens could be forged or never expire.
func (c Config) Validate() error {
	if len(c.Secret) < minSecretLen {
		return ErrWeakSecret
	}
	if c.TokenTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	return nil
}

var (
	ErrNoActor      = errors.New("no authenticated user")
	ErrInvalidToken = errors.New("invalid token")
)

type contextKey int

const actorKey contextKey = iota + 1

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

func ActorFromContext(ctx context.Context) (Actor, error) {
	a, ok := ctx.Value(actorKey).(Actor)
	if !ok {
		return Actor{}, ErrNoActor
	}
	return a, nil
}

type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs an HS256 session token for the actor.
func (m *TokenManager) Issue(a Actor) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(a.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Username: a.Username,
		Role:     a.Role,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}
	return token, exp, nil
}

func (m *TokenManager) Parse(tokenStr string) (Actor, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil || !token.Valid {
		return Actor{}, ErrInvalidToken
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return Actor{}, ErrInvalidToken
	}
	return Actor{UserID: id, Username: claims.Username, Role: claims.Role}, nil
}
