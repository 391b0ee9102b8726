package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/devboardhq/devboard/internal/auth"
	"github.com/devboardhq/devboard/internal/dtos"
	"github.com/devboardhq/devboard/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Work factor 12: slow enough to resist offline brute force.
const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type UserService struct {
	DB     *gorm.DB
	Tokens *auth.TokenManager
}

func NewUserService(db *gorm.DB, tokens *auth.TokenManager) *UserService {
	return &UserService{DB: db, Tokens: tokens}
}

func (s *UserService) Register(req *dtos.RegisterRequest) (*dtos.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	if len(name) < 2 {
		return nil, invalid("Name must be at least 2 characters long")
	}
	if len(name) > 50 {
		return nil, invalid("Name must be at most 50 characters long")
	}
	if !emailPattern.MatchString(email) {
		return nil, invalid("Please provide a valid email address")
	}
	if len(req.Password) < 6 {
		return nil, invalid("Password must be at least 6 characters long")
	}
	if !models.ValidRole(role) {
		return nil, invalid("Invalid role specified")
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, conflict("User with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		// Unique index closes the race between the count above and the insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("User with this email already exists")
		}
		return nil, err
	}

	return s.authResponse(&user)
}

func (s *UserService) Login(req *dtos.LoginRequest) (*dtos.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailPattern.MatchString(email) {
		return nil, invalid("Please provide a valid email address")
	}

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Never reveal whether the email or the password was wrong.
			return nil, unauthorized("Invalid email or password")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, unauthorized("Invalid email or password")
	}

	return s.authResponse(&user)
}

func (s *UserService) authResponse(user *models.User) (*dtos.AuthResponse, error) {
	token, err := s.Tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &dtos.AuthResponse{
		Token: token,
		User: dtos.UserInfo{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}
