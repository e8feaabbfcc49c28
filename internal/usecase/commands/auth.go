package commands

import (
	"context"

	"quoteshare/internal/infra"
	"quoteshare/internal/pkg/errs"
	"quoteshare/internal/pkg/jwt"
	"quoteshare/internal/pkg/password"
	"quoteshare/internal/usecase/queries"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthUserReader is the slice of user storage that authentication needs.
type AuthUserReader interface {
	FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error)
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*queries.AuthorizedUserView, *TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	users      AuthUserReader
	jwtService *jwt.Service
}

func NewAuthCommands(users AuthUserReader, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*queries.AuthorizedUserView, *TokenPair, error) {
	user, passwordHash, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := password.ComparePassword(passwordHash, plainPassword); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := a.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	accessToken, err := a.jwtService.GenerateAccessToken(claims.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	newRefreshToken, err := a.jwtService.GenerateRefreshToken(claims.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

func (a *authCommandsImpl) issueTokens(user *queries.AuthorizedUserView) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
