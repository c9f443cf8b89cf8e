package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"carbooking/internal/domain"
	"carbooking/internal/repositories"
	"carbooking/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const DefaultTokenTTL = time.Hour

// Claims is the payload of an admin bearer token.
type Claims struct {
	AdminID int64 `json:"admin_id"`
	jwt.RegisteredClaims
}

type AuthService struct {
	Admins repositories.AdminRepository
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
	Log    *slog.Logger
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s AuthService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultTokenTTL
}

// Login checks the credentials and returns a signed token for the admin.
func (s AuthService) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.Admins.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.StorageError{Op: "find admin", Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	now := s.now()
	claims := Claims{
		AdminID: admin.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(admin.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl())),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	utils.LogEvent(ctx, s.Log, "auth", "login", "admin logged in", "admin_id", admin.ID)
	return token, nil
}

// Verify validates a raw bearer token and returns the admin it was issued to.
func (s AuthService) Verify(token string) (domain.RequestContext, error) {
	if token == "" {
		return domain.RequestContext{}, domain.ErrMissingToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return domain.RequestContext{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.AdminID <= 0 {
		return domain.RequestContext{}, domain.ErrInvalidToken
	}
	return domain.RequestContext{AdminID: domain.ID(claims.AdminID)}, nil
}

// SeedAdmin creates the admin account unless one with that username already
// exists. It reports whether a row was created.
func (s AuthService) SeedAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, domain.ValidationError{Field: "admin", Msg: "username dan password wajib diisi"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.Admins.InsertIfAbsent(ctx, username, string(hash))
	if err != nil {
		return false, domain.StorageError{Op: "seed admin", Err: err}
	}
	if created {
		utils.LogEvent(ctx, s.Log, "auth", "seed_admin", "admin account created", "username", username)
	}
	return created, nil
}
