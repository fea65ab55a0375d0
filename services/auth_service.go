package services

import (
	"errors"
	"strings"
	"time"

	"pos-backend/entity"
	"pos-backend/repository"
	"pos-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	Users     *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(users *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Users: users, jwtSecret: secret, jwtTTL: ttl}
}

type LoginRes struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

func (s *AuthService) Login(username, password string) (*LoginRes, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	user, err := s.Users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.Users.TouchLastLogin(user.ID); err != nil {
		return nil, err
	}
	// audit only; a failed log line must not block the login
	_ = s.Users.LogActivity(user.ID, "login", "User logged in")

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, err
	}
	return &LoginRes{Token: token, User: *user}, nil
}

func (s *AuthService) Logout(userID uint) {
	_ = s.Users.LogActivity(userID, "logout", "User logged out")
}
