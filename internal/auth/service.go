package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ymestates/realty/internal/database/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTeamCode    = errors.New("invalid team code")
	ErrPendingApproval    = errors.New("account pending approval")
)

type Service struct {
	db       *gorm.DB
	jwt      *JWTService
	teamCode string
}

func NewService(db *gorm.DB, jwt *JWTService, teamCode string) *Service {
	return &Service{db: db, jwt: jwt, teamCode: teamCode}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
	Role     string // defaults to "user"; "team" requires TeamCode
	TeamCode string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	role := input.Role
	if role == "" {
		role = models.RoleUser
	}
	// Admin accounts are provisioned out of band, never self-registered.
	if role == models.RoleAdmin {
		role = models.RoleUser
	}

	approved := true
	if role == models.RoleTeam {
		if s.teamCode == "" || input.TeamCode != s.teamCode {
			return nil, ErrInvalidTeamCode
		}
		// Team accounts wait for an admin to approve them.
		approved = false
	}

	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return nil, ErrUserExists
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Address:      input.Address,
		Role:         role,
		IsApproved:   approved,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: &user}, nil
}

func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	var user models.User
	if err := s.db.WithContext(ctx).
		Where("email = ?", input.Email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Google-only accounts have no password hash.
	if user.PasswordHash == "" || !CheckPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if user.Role == models.RoleTeam && !user.IsApproved {
		return nil, ErrPendingApproval
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: &user}, nil
}

func (s *Service) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
