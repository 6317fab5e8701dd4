// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/internal/store"
	"github.com/MKhiriev/course-cms/internal/utils"
	"github.com/MKhiriev/course-cms/internal/validators"
	"github.com/MKhiriev/course-cms/models"
)

// userService manages accounts: admin CRUD (without deletion) and the
// self-service profile and account updates.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewEntityValidator(),
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context, params url.Values) (models.Page[models.User], error) {
	return paginate(ctx, usersSpec, params, s.userRepository.ListUsers)
}

// CreateUser creates an account from the admin whitelist. The password is
// required. Sex defaults to unspecified.
func (s *userService) CreateUser(ctx context.Context, draft models.UserDraft) (models.User, error) {
	user := models.User{Sex: models.SexUnspecified, Role: models.RoleOrdinary}
	draft.Apply(&user)

	password := ""
	if draft.Password != nil {
		password = *draft.Password
	}

	if err := validators.Join(s.validator.Validate(ctx, user), validators.ValidatePassword(password)); err != nil {
		return models.User{}, err
	}

	if err := s.setPassword(&user, password); err != nil {
		return models.User{}, err
	}

	return s.userRepository.CreateUser(ctx, user)
}

// UpdateUser applies the admin whitelist. A nil password keeps the current
// hash.
func (s *userService) UpdateUser(ctx context.Context, id int64, draft models.UserDraft) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	draft.Apply(&user)

	var passwordErr error
	if draft.Password != nil {
		passwordErr = validators.ValidatePassword(*draft.Password)
	}
	if err = validators.Join(s.validator.Validate(ctx, user), passwordErr); err != nil {
		return models.User{}, err
	}

	if draft.Password != nil {
		if err = s.setPassword(&user, *draft.Password); err != nil {
			return models.User{}, err
		}
	}

	return s.userRepository.UpdateUser(ctx, user)
}

// UpdateProfile changes the public profile fields of actor.
func (s *userService) UpdateProfile(ctx context.Context, actor models.User, draft models.ProfileDraft) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, actor.ID)
	if err != nil {
		return models.User{}, err
	}
	draft.Apply(&user)

	if err = s.validator.Validate(ctx, user, validators.FieldNickname, validators.FieldSex, validators.FieldAvatar); err != nil {
		return models.User{}, err
	}

	return s.userRepository.UpdateUser(ctx, user)
}

// UpdateAccount changes the email, username or password of actor after
// checking the current password. A new password must be confirmed.
func (s *userService) UpdateAccount(ctx context.Context, actor models.User, draft models.AccountDraft) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, actor.ID)
	if err != nil {
		return models.User{}, err
	}

	if draft.CurrentPassword == "" {
		return models.User{}, fmt.Errorf("%w: current password is required", ErrInvalidDataProvided)
	}
	if !utils.CheckPassword(draft.CurrentPassword, user.PasswordHash) {
		log.Warn().Int64("user_id", user.ID).Msg("account update with wrong current password")
		return models.User{}, ErrWrongPassword
	}

	models.UserDraft{Email: draft.Email, Username: draft.Username}.Apply(&user)

	var passwordErr error
	if draft.Password != nil {
		passwordErr = validators.ValidatePassword(*draft.Password)
		if draft.PasswordConfirmation == nil || *draft.PasswordConfirmation != *draft.Password {
			passwordErr = validators.Join(passwordErr,
				validators.NewValidationError(validators.FieldConfirmation, "password confirmation does not match"))
		}
	}
	if err = validators.Join(s.validator.Validate(ctx, user, validators.FieldEmail, validators.FieldUsername), passwordErr); err != nil {
		return models.User{}, err
	}

	if draft.Password != nil {
		if err = s.setPassword(&user, *draft.Password); err != nil {
			return models.User{}, err
		}
	}

	return s.userRepository.UpdateUser(ctx, user)
}

// EnsureAdministrator makes sure an administrator account with email
// exists. An existing account with that email is promoted when needed; its
// password is left unchanged.
func (s *userService) EnsureAdministrator(ctx context.Context, email, password string) error {
	log := logger.FromContext(ctx)

	existing, err := s.userRepository.FindUserByLogin(ctx, email)
	switch {
	case err == nil:
		if existing.IsAdministrator() {
			return nil
		}
		existing.Role = models.RoleAdministrator
		if _, err = s.userRepository.UpdateUser(ctx, existing); err != nil {
			return fmt.Errorf("error promoting administrator: %w", err)
		}
		log.Info().Int64("user_id", existing.ID).Msg("existing user promoted to administrator")
		return nil
	case !errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("error looking up administrator: %w", err)
	}

	role := models.RoleAdministrator
	username := "admin"
	admin, err := s.CreateUser(ctx, models.UserDraft{
		Email:    &email,
		Username: &username,
		Nickname: &username,
		Password: &password,
		Role:     &role,
	})
	if err != nil {
		return fmt.Errorf("error creating administrator: %w", err)
	}

	log.Info().Int64("user_id", admin.ID).Str("email", admin.Email).Msg("administrator created")
	return nil
}

func (s *userService) setPassword(user *models.User, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return nil
}
