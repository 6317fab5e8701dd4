// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/course-cms/internal/config"
	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/internal/store"
	"github.com/MKhiriev/course-cms/internal/utils"
	"github.com/MKhiriev/course-cms/internal/validators"
	"github.com/MKhiriev/course-cms/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, the JWT token
// lifecycle and the role check of the access gate.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock used for issuing and validating tokens.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// SignUp creates an ordinary account from the whitelisted sign-up fields.
// The role is always RoleOrdinary and the sex is left unspecified.
//
// Returns the persisted user or:
//   - a validators.ValidationErrors listing every broken field constraint.
//   - store.ErrAlreadyExists if the email or username is taken.
func (a *authService) SignUp(ctx context.Context, request models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user := models.User{
		Email:    request.Email,
		Username: request.Username,
		Nickname: request.Nickname,
		Sex:      models.SexUnspecified,
		Role:     models.RoleOrdinary,
	}

	if err := validators.Join(validators.ValidateUser(user), validators.ValidatePassword(request.Password)); err != nil {
		log.Debug().Err(err).Str("func", "*authService.SignUp").Msg("invalid sign up data")
		return models.User{}, err
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Msg("password hashing failed")
		return models.User{}, err
	}
	user.PasswordHash = hash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// SignIn authenticates by email or username and issues a token.
//
// Returns the token or:
//   - ErrInvalidDataProvided if the login or password is empty.
//   - store.ErrUserNotFound if no account matches the login.
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) SignIn(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	user, err := a.authenticate(ctx, credentials)
	if err != nil {
		return models.Token{}, err
	}

	return a.CreateToken(ctx, user)
}

// AdminSignIn is SignIn for the admin area: an account without the
// administrator role gets ErrForbidden and no token.
func (a *authService) AdminSignIn(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	user, err := a.authenticate(ctx, credentials)
	if err != nil {
		return models.Token{}, err
	}

	if !user.IsAdministrator() {
		logger.FromContext(ctx).Warn().Int64("user_id", user.ID).Msg("admin sign in by ordinary user")
		return models.Token{}, ErrForbidden
	}

	return a.CreateToken(ctx, user)
}

func (a *authService) authenticate(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Login == "" {
		return models.User{}, fmt.Errorf("%w: login is required", ErrInvalidDataProvided)
	}
	if credentials.Password == "" {
		return models.User{}, fmt.Errorf("%w: password is required", ErrInvalidDataProvided)
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, credentials.Login)
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !utils.CheckPassword(credentials.Password, foundUser.PasswordHash) {
		log.Warn().Int64("id", foundUser.ID).Str("login", credentials.Login).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// An expired token yields ErrTokenIsExpired. Every other failure (bad
// signature, wrong issuer or algorithm, malformed input) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now())
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authorize resolves tokenString to the user it was issued for.
//
// Returns ErrAuthenticationRequired for an empty token, the ParseToken error
// for an invalid one, ErrIdentityNoLongerExists when the user is gone and
// ErrForbidden when required is RoleAdministrator and the user is not one.
func (a *authService) Authorize(ctx context.Context, tokenString string, required models.Role) (models.User, error) {
	if tokenString == "" {
		return models.User{}, ErrAuthenticationRequired
	}

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, ErrIdentityNoLongerExists
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error loading token owner: %w", err)
	}

	if required == models.RoleAdministrator && !user.IsAdministrator() {
		return models.User{}, ErrForbidden
	}

	return user, nil
}
