package service

import (
	"context"
	"errors"
	"time"

	"fitcoach/fitness-platform/internal/domain"
	"fitcoach/fitness-platform/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrEmailAlreadyExists = errors.New("trainer with this email already exists")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrHashingFailed      = errors.New("failed to hash password")
	ErrTokenGeneration    = errors.New("failed to generate authentication token")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidTokenClaims = errors.New("invalid token payload")
	ErrTrainerNotFound    = errors.New("user not found")
)

// AuthService handles registration, credential checks, token issuance and
// the per-request resolution of a bearer token back to a Trainer.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.Trainer, error)
	Login(ctx context.Context, email, password string) (token string, err error)
	IssueToken(trainer *domain.Trainer) (string, error)
	ResolveTrainer(ctx context.Context, token string) (*domain.Trainer, error)
}

// authService implements the AuthService interface.
type authService struct {
	trainerRepo   repository.TrainerRepository
	jwtSecret     string
	jwtMethod     *jwt.SigningMethodHMAC
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService. The algorithm
// must name an HMAC signing method (HS256/HS384/HS512); anything else is
// a configuration error caught at startup, not per request.
func NewAuthService(trainerRepo repository.TrainerRepository, jwtSecret, jwtAlgorithm string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	method, ok := jwt.GetSigningMethod(jwtAlgorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		panic("JWT algorithm must be an HMAC method: " + jwtAlgorithm)
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 30 * time.Minute
	}
	return &authService{
		trainerRepo:   trainerRepo,
		jwtSecret:     jwtSecret,
		jwtMethod:     method,
		jwtExpiration: jwtExpiration,
	}
}

// Register handles new trainer registration.
func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.Trainer, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password cannot be empty")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	trainer := &domain.Trainer{
		Name:             name,
		Email:            email,
		PasswordHash:     string(hashedPassword),
		SubscriptionPlan: "free",
		IsActive:         true,
		// ID and CreatedAt are set by the repository layer.
	}

	// The unique index on email is the source of truth for duplicates, so
	// there is no separate existence check to race against.
	if err := s.trainerRepo.Create(ctx, trainer); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return trainer, nil
}

// Login checks credentials and returns a signed bearer token. Unknown
// email and wrong password surface as distinct errors; both map to 401
// at the HTTP layer.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrInvalidEmail
	}

	trainer, err := s.trainerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidEmail
		}
		return "", err
	}

	// A malformed stored hash also fails the comparison, so corrupt
	// credentials fail closed rather than open.
	if err := bcrypt.CompareHashAndPassword([]byte(trainer.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}

	token, err := s.IssueToken(trainer)
	if err != nil {
		return "", ErrTokenGeneration
	}
	return token, nil
}

// IssueToken creates a new signed JWT whose subject is the trainer's
// email, expiring after the configured TTL.
func (s *authService) IssueToken(trainer *domain.Trainer) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   trainer.Email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
	}

	token := jwt.NewWithClaims(s.jwtMethod, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}
	return signedToken, nil
}

// decodeToken verifies the signature and expiry of a bearer token and
// returns its claims. Any parse failure collapses to ErrInvalidToken; the
// caller never learns whether the signature, shape or expiry was at fault.
func (s *authService) decodeToken(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	// The library treats a missing exp claim as valid; every token this
	// service issues is time-bound, so one without an expiry is malformed.
	if claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ResolveTrainer turns a bearer token into the full owning Trainer
// record. It is recomputed on every protected request; nothing is cached
// between calls, so expiry is purely a function of the token TTL.
func (s *authService) ResolveTrainer(ctx context.Context, tokenString string) (*domain.Trainer, error) {
	claims, err := s.decodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Subject == "" {
		return nil, ErrInvalidTokenClaims
	}

	trainer, err := s.trainerRepo.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	return trainer, nil
}
