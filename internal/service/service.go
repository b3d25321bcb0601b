package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/growai/fincoach/internal/cache"
	"github.com/growai/fincoach/internal/config"
	"github.com/growai/fincoach/internal/generator"
	"github.com/growai/fincoach/internal/integrations/gemini"
	"github.com/growai/fincoach/internal/models"
	"github.com/growai/fincoach/internal/repository"
	"github.com/growai/fincoach/internal/utils/email"
)

// ErrUserExists is returned when registering an already-taken email.
var ErrUserExists = errors.New("user already exists")

// ErrInvalidCredentials is returned on a failed login.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Advisor answers chat questions with financial context. Satisfied by
// *gemini.Advisor; mocked in tests.
type Advisor interface {
	Advise(ctx context.Context, fc gemini.FinancialContext, message string) (string, error)
}

// Service handles business logic
type Service struct {
	repo    *repository.Repository
	gen     *generator.Generator
	cache   *cache.SnapshotCache
	advisor Advisor
	mailer  *email.Sender
	log     *logrus.Logger
	config  *config.Config
}

// NewService initializes a new service. advisor may be nil, in which case
// chat always answers with the local fallback reply.
func NewService(repo *repository.Repository, gen *generator.Generator, snapCache *cache.SnapshotCache,
	advisor Advisor, mailer *email.Sender, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{
		repo:    repo,
		gen:     gen,
		cache:   snapCache,
		advisor: advisor,
		mailer:  mailer,
		log:     log,
		config:  cfg,
	}
}

// Register creates a new user with hashed password and sends the welcome
// email best-effort.
func (s *Service) Register(username, email, password string) (*models.User, error) {
	if _, err := s.repo.FindUserByEmail(email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		go func() {
			if err := s.mailer.SendWelcome(user.Email, user.Username); err != nil {
				s.log.Warnf("Welcome email for %s failed: %v", user.Email, err)
			}
		}()
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}
