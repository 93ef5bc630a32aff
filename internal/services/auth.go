package services

import (
	"errors"
	"time"

	"github.com/K-Mohan-coder/QuizAppz/internal/models"
	"github.com/K-Mohan-coder/QuizAppz/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Principal is the request-scoped identity resolved from a validated token.
// It is passed into services by parameter; nothing reads ambient auth state.
type Principal struct {
	Username      string
	Role          models.Role
	Authenticated bool
}

// Anonymous is the principal used when no valid token accompanies a request.
var Anonymous = Principal{}

type AuthService struct {
	users     repository.UserRepository
	jwtSecret []byte
}

func NewAuthService(users repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: []byte(jwtSecret)}
}

func (s *AuthService) Register(username, password, role string) (*models.User, error) {
	parsedRole, err := models.ParseRole(role)
	if err != nil {
		return nil, err
	}

	taken, err := s.users.ExistsByUsername(username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         parsedRole,
	}
	if err := s.users.Save(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) Login(username, password string) (string, Principal, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return "", Anonymous, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", Anonymous, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user.Username, user.Role)
	if err != nil {
		return "", Anonymous, err
	}

	return token, Principal{Username: user.Username, Role: user.Role, Authenticated: true}, nil
}

func (s *AuthService) GenerateToken(username string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"role":     string(role),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) (Principal, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return Anonymous, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Anonymous, ErrInvalidToken
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return Anonymous, ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return Anonymous, ErrInvalidToken
	}
	role, err := models.ParseRole(roleStr)
	if err != nil {
		return Anonymous, ErrInvalidToken
	}

	return Principal{Username: username, Role: role, Authenticated: true}, nil
}

// Destination maps a role to its post-login dashboard route. The role enum
// is closed, so the switch is exhaustive.
func Destination(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "/admin/dashboard"
	default:
		return "/participant/dashboard"
	}
}
