package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"gorm.io/datatypes"

	"github.com/freddykhant/northstar/internal/auth"
	"github.com/freddykhant/northstar/internal/config"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

const (
	AccessTokenDuration  = 15 * time.Minute
	RefreshTokenDuration = 7 * 24 * time.Hour
)

var ErrInvalidAuthCode = errors.New("invalid authorization code")

type googleProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type LoginResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
}

type UserService interface {
	LoginWithGoogle(ctx context.Context, code string) (*LoginResult, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*LoginResult, error)
	GetUser(ctx context.Context) (*User, error)
}

type userService struct {
	repo        UserRepository
	oauthConfig *oauth2.Config
}

func NewService(repo UserRepository, oauthConfig *oauth2.Config) UserService {
	return &userService{repo: repo, oauthConfig: oauthConfig}
}

// LoginWithGoogle exchanges the authorization code, finds or creates the
// matching user, and issues the session token pair.
func (s *userService) LoginWithGoogle(ctx context.Context, code string) (*LoginResult, error) {
	log := config.WithContext(ctx)

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Google code exchange failed")
		return nil, ErrInvalidAuthCode
	}

	profile, raw, err := s.fetchProfile(ctx, token)
	if err != nil {
		log.WithError(err).Error("Failed to fetch Google profile")
		return nil, err
	}

	u, err := s.repo.FindByGoogleID(profile.ID)
	switch {
	case err == nil:
		u.Email = profile.Email
		u.Name = profile.Name
		u.Picture = profile.Picture
		u.Profile = raw
		if token.RefreshToken != "" {
			encrypted, err := config.Encrypt(token.RefreshToken)
			if err != nil {
				return nil, fmt.Errorf("failed to encrypt refresh token: %w", err)
			}
			u.RefreshToken = encrypted
		}
		if err := s.repo.Update(u); err != nil {
			log.WithError(err).Error("Failed to update user on login")
			return nil, err
		}
	case errors.Is(err, ErrUserNotFound):
		u = &User{
			GoogleID: profile.ID,
			Email:    profile.Email,
			Name:     profile.Name,
			Picture:  profile.Picture,
			Profile:  raw,
		}
		if token.RefreshToken != "" {
			encrypted, err := config.Encrypt(token.RefreshToken)
			if err != nil {
				return nil, fmt.Errorf("failed to encrypt refresh token: %w", err)
			}
			u.RefreshToken = encrypted
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Failed to create user on first login")
			return nil, err
		}
		log.WithField("user_id", u.ID).Info("New user registered")
	default:
		return nil, err
	}

	return s.issueTokens(u)
}

func (s *userService) RefreshTokens(ctx context.Context, refreshToken string) (*LoginResult, error) {
	log := config.WithContext(ctx)

	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil {
		log.WithError(err).Warn("Invalid refresh token")
		return nil, err
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(u)
}

func (s *userService) GetUser(ctx context.Context) (*User, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	return s.repo.FindByID(id)
}

func (s *userService) issueTokens(u *User) (*LoginResult, error) {
	access, err := auth.GenerateJWT(u.ID.String(), "user", AccessTokenDuration)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.GenerateJWT(u.ID.String(), "user", RefreshTokenDuration)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: u, AccessToken: access, RefreshToken: refresh}, nil
}

func (s *userService) fetchProfile(ctx context.Context, token *oauth2.Token) (*googleProfile, datatypes.JSON, error) {
	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode != 200 {
		return nil, nil, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var profile googleProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, nil, err
	}
	if profile.ID == "" {
		return nil, nil, errors.New("userinfo response missing id")
	}
	return &profile, datatypes.JSON(raw), nil
}
