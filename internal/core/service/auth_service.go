package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/esatic/assignment-app/internal/core/domain"
	"github.com/esatic/assignment-app/internal/core/ports"
)

// AuthService implements registration and login with JWT issuance.
type AuthService struct {
	users     ports.UserRepository
	proj      *projector
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	classes ports.ClassRepository,
	subjects ports.SubjectRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		proj:      newProjector(users, subjects, classes, log),
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Register creates a new account. Username and email must be unique; the
// role defaults to STUDENT when omitted.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := domain.Role(in.Role)
	if in.Role == "" {
		role = domain.RoleStudent
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	if taken, err := s.users.ExistsByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrUsernameTaken
	}
	if taken, err := s.users.ExistsByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		s.log.Error().Err(err).Str("username", in.Username).Msg("failed to register user")
		return nil, err
	}

	token, err := s.generateToken(saved)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", saved.ID).Str("role", string(saved.Role)).Msg("user registered")

	return &ports.AuthResult{Token: token, User: *s.proj.userView(ctx, saved)}, nil
}

// Login checks the credentials and returns a fresh token plus the user view.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{Token: token, User: *s.proj.userView(ctx, user)}, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
