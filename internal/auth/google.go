package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/ymestates/realty/internal/database/models"
	"github.com/ymestates/realty/pkg/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
	"gorm.io/gorm"
)

var (
	ErrGoogleNotConfigured = errors.New("google oauth is not configured")
	ErrIdentityIncomplete  = errors.New("provider returned no email")
)

// GoogleService bridges Google sign-in to local user records. A callback
// resolves to an existing account by Google ID, links by email, or creates a
// fresh role=user account.
type GoogleService struct {
	db    *gorm.DB
	jwt   *JWTService
	oauth *oauth2.Config
}

func NewGoogleService(db *gorm.DB, jwt *JWTService, cfg config.GoogleConfig) *GoogleService {
	s := &GoogleService{db: db, jwt: jwt}
	if cfg.ClientID != "" && cfg.ClientSecret != "" {
		s.oauth = &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		}
	}
	return s
}

func (s *GoogleService) Enabled() bool {
	return s.oauth != nil
}

func (s *GoogleService) AuthURL(state string) (string, error) {
	if s.oauth == nil {
		return "", ErrGoogleNotConfigured
	}
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

func (s *GoogleService) HandleCallback(ctx context.Context, code string) (*AuthResponse, error) {
	if s.oauth == nil {
		return nil, ErrGoogleNotConfigured
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging oauth code: %w", err)
	}

	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(s.oauth.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("creating userinfo client: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetching userinfo: %w", err)
	}
	if info.Email == "" {
		return nil, ErrIdentityIncomplete
	}

	user, err := s.resolveUser(ctx, info.Id, info.Email, info.Name, info.Picture)
	if err != nil {
		return nil, err
	}

	jwtToken, err := s.jwt.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: jwtToken, User: user}, nil
}

// resolveUser implements the link-or-create flow: Google ID match wins, an
// email match links the Google identity to the existing account (role and
// approval state untouched), and no match creates a plain user account.
func (s *GoogleService) resolveUser(ctx context.Context, googleID, email, name, picture string) (*models.User, error) {
	var user models.User

	err := s.db.WithContext(ctx).Where("google_id = ?", googleID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == nil {
		user.GoogleID = googleID
		if picture != "" {
			user.Picture = picture
		}
		if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{
		Name:       name,
		Email:      email,
		Picture:    picture,
		GoogleID:   googleID,
		Role:       models.RoleUser,
		IsApproved: true,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
