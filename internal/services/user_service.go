// internal/services/user_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/variant-catalog/internal/config"
	"github.com/javajoker/variant-catalog/internal/models"
	"github.com/javajoker/variant-catalog/internal/utils"
)

const defaultAccessTokenTTL = 24 * time.Hour

var userSortFields = []string{"id", "created_at", "username", "email"}

type UserService struct {
	db  *gorm.DB
	cfg config.JWTConfig
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin viewer"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
}

type UserPage struct {
	Data       []models.User
	Count      int64
	TotalPages int
	Page       int
	PageSize   int
}

func NewUserService(db *gorm.DB, cfg config.JWTConfig) *UserService {
	return &UserService{
		db:  db,
		cfg: cfg,
	}
}

func (s *UserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := utils.ValidateStruct(req); err != nil {
		return nil, invalidInput("validation failed: %v", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	}
	if user.Role == "" {
		user.Role = utils.RoleViewer
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("username or email already taken")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User created")
	return user, nil
}

// EnsureUser creates the account unless one with the same username exists.
func (s *UserService) EnsureUser(ctx context.Context, req *CreateUserRequest) (*models.User, error) {
	var existing models.User
	err := s.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(req.Username)).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return s.CreateUser(ctx, req)
}

func (s *UserService) ListUsers(ctx context.Context, params utils.PaginationParams) (*UserPage, error) {
	if params.Page < 1 || params.PageSize < 1 {
		return nil, invalidInput("page and pageSize must be positive integers")
	}
	if utils.OffsetOverflows(params.Page, params.PageSize) {
		return nil, invalidInput("page is out of range")
	}

	query := s.db.WithContext(ctx).Model(&models.User{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	query = utils.ApplySort(query, params, userSortFields)
	query = utils.ApplyPagination(query, params)

	users := []models.User{}
	if err := query.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	return &UserPage{
		Data:       users,
		Count:      total,
		TotalPages: utils.TotalPages(total, params.PageSize),
		Page:       params.Page,
		PageSize:   params.PageSize,
	}, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userNotFound(userID)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

// Login checks the credentials and issues an access token carrying the
// user's role. Unknown users and wrong passwords fail the same way.
func (s *UserService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, invalidInput("validation failed: %v", err)
	}

	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(req.Username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, unauthorized("invalid username or password")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, unauthorized("invalid username or password")
	}

	now := time.Now()
	if err := s.db.WithContext(ctx).Model(&user).Update("last_login_at", now).Error; err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Warn("Failed to record last login")
	}

	ttl := time.Duration(s.cfg.AccessTokenTTL) * time.Hour
	if ttl <= 0 {
		ttl = defaultAccessTokenTTL
	}

	token, err := utils.GenerateJWT(user.Username, user.Role, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	logrus.WithField("user_id", user.ID).Info("User logged in")
	return &AuthResponse{
		User:        &user,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}
