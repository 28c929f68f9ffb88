package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BluezConcepts/API-backend/internal/shared/config"
	"github.com/BluezConcepts/API-backend/internal/shared/constants"
	"github.com/BluezConcepts/API-backend/internal/users"
	"github.com/BluezConcepts/API-backend/pkg/cache"
	"github.com/BluezConcepts/API-backend/pkg/logger"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIncorrectPassword  = errors.New("current password is incorrect")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidToken       = errors.New("invalid token")
)

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *ChangePasswordRequest) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error)
	ValidateToken(tokenString string) (*JWTClaims, error)
}

type service struct {
	repo   Repository
	cache  cache.Service
	config *config.Config
	log    *logger.Logger
	cost   int
}

func NewService(repo Repository, cacheService cache.Service, cfg *config.Config) Service {
	return &service{
		repo:   repo,
		cache:  cacheService,
		config: cfg,
		log:    logger.GetDefault(),
		cost:   bcrypt.DefaultCost,
	}
}

func (s *service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, err
	}

	user := &users.User{
		Name:           strings.TrimSpace(req.Name),
		Email:          email,
		Password:       string(hashedPassword),
		IsOwner:        req.IsOwner,
		PhoneNumber:    req.PhoneNumber,
		ProfilePicture: req.ProfilePicture,
	}
	if user.PhoneNumber == "" {
		user.PhoneNumber = users.DefaultPhoneNumber
	}
	if user.ProfilePicture == "" {
		user.ProfilePicture = users.DefaultProfilePicture
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.log.LogAuthSuccess(ctx, user.ID.String(), "register")

	return s.authResponse(user)
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.log.LogAuthFailure(ctx, "unknown email", req.Email)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.log.LogAuthFailure(ctx, "wrong password", req.Email)
		return nil, ErrInvalidCredentials
	}

	s.log.LogAuthSuccess(ctx, user.ID.String(), "password")
	return s.authResponse(user)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.validateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != tokenTypeRefresh {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	// the account may have been removed since the token was issued
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	return s.generateTokenPair(user)
}

func (s *service) ChangePassword(ctx context.Context, userID uuid.UUID, req *ChangePasswordRequest) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		s.log.LogAuthFailure(ctx, "password change with wrong current password", user.Email)
		return ErrIncorrectPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.cost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateUserPassword(ctx, userID, string(hashedPassword)); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, constants.BuildUserProfileKey(userID.String())); err != nil {
		s.log.WarnContext(ctx, "failed to drop cached profile", "user_id", userID.String(), "error", err)
	}
	return nil
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	var out UserResponse
	err := s.cache.GetOrSet(ctx, constants.BuildUserProfileKey(userID.String()), constants.TTL_USER_PROFILE, func() (interface{}, error) {
		user, err := s.repo.GetUserByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return toUserResponse(user), nil
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) ValidateToken(tokenString string) (*JWTClaims, error) {
	return s.validateToken(tokenString)
}

func (s *service) authResponse(user *users.User) (*AuthResponse, error) {
	tokenPair, err := s.generateTokenPair(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		User:         toUserResponse(user),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

func (s *service) generateTokenPair(user *users.User) (*TokenPair, error) {
	now := time.Now()

	accessToken, err := s.signToken(user, tokenTypeAccess, now, s.config.JWT.JWTExpiresIn)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.signToken(user, tokenTypeRefresh, now, s.config.JWT.RefreshExpiresIn)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.config.JWT.JWTExpiresIn.Seconds()),
	}, nil
}

func (s *service) signToken(user *users.User, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := JWTClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   string(user.Role()),
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.JWT.Secret))
}

func (s *service) validateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.JWT.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
