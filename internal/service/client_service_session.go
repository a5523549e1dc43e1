// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/doin-client/internal/adapter"
	"github.com/MKhiriev/doin-client/internal/logger"
	"github.com/MKhiriev/doin-client/internal/observable"
	"github.com/MKhiriev/doin-client/internal/store"
	"github.com/MKhiriev/doin-client/internal/utils"
	"github.com/MKhiriev/doin-client/internal/validators"
	"github.com/MKhiriev/doin-client/models"
)

type sessionService struct {
	auth      adapter.AuthAdapter
	users     adapter.UserAdapter
	repo      store.SessionRepository
	validator validators.Validator
	logger    *logger.Logger
	now       func() time.Time

	mu       sync.RWMutex
	token    string
	rejected map[string]struct{}

	profile *observable.Value[*models.UserProfile]
}

func NewSessionService(auth adapter.AuthAdapter, users adapter.UserAdapter, repo store.SessionRepository, log *logger.Logger) SessionService {
	return &sessionService{
		auth:      auth,
		users:     users,
		repo:      repo,
		validator: validators.NewAuthFormValidator(),
		logger:    log,
		now:       time.Now,
		rejected:  make(map[string]struct{}),
		profile:   observable.NewValue[*models.UserProfile](nil),
	}
}

func (s *sessionService) Login(ctx context.Context, credentials models.Credentials) (models.UserProfile, error) {
	if err := s.validator.Validate(ctx, credentials); err != nil {
		return models.UserProfile{}, err
	}

	token, err := s.auth.Login(ctx, credentials)
	if err != nil {
		s.logger.Debug().Err(err).Str("username", credentials.Username).Msg("login refused")
		return models.UserProfile{}, mapLoginError(err)
	}

	// the new token is only used for this request until the session is committed
	profile, err := s.users.GetByUsername(utils.WithToken(ctx, token), credentials.Username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", credentials.Username).Msg("failed to fetch profile after login")
		return models.UserProfile{}, fmt.Errorf("%w: fetch profile: %w", ErrUnexpected, err)
	}

	if err = s.repo.Save(ctx, token, profile); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist session")
		return models.UserProfile{}, fmt.Errorf("%w: persist session: %w", ErrUnexpected, err)
	}

	s.mu.Lock()
	s.token = token
	s.rejected = make(map[string]struct{})
	s.mu.Unlock()

	published := profile
	s.profile.Set(&published)
	s.logger.Info().Int64("user_id", profile.ID).Msg("signed in")

	return profile, nil
}

func (s *sessionService) Register(ctx context.Context, data models.RegistrationData) error {
	if err := s.validator.Validate(ctx, data); err != nil {
		return err
	}

	if err := s.auth.Register(ctx, data); err != nil {
		return mapFormError(err, ErrUsernameTaken)
	}
	return nil
}

func (s *sessionService) ForgotPassword(ctx context.Context, data models.ForgotPasswordData) error {
	if err := s.validator.Validate(ctx, data); err != nil {
		return err
	}

	if err := s.auth.ForgotPassword(ctx, data); err != nil {
		return mapFormError(err, ErrBadAnswer)
	}
	return nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.rejected = make(map[string]struct{})
	s.mu.Unlock()

	s.profile.Set(nil)

	if err := s.repo.Clear(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear stored session")
		return fmt.Errorf("clear stored session: %w", err)
	}
	return nil
}

func (s *sessionService) Token(ctx context.Context) string {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	if token != "" {
		return token
	}

	stored, err := s.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			s.logger.Warn().Err(err).Msg("failed to read stored token")
		}
		return ""
	}
	return stored.Token
}

func (s *sessionService) IsExpired(token string) bool {
	return utils.IsTokenExpired(token, s.now())
}

func (s *sessionService) ValidateToken(ctx context.Context, token string) models.ValidateResult {
	if token == "" {
		return models.ValidateResult{Message: "no token"}
	}

	result, err := s.auth.ValidateToken(ctx, token)
	if err != nil {
		s.logger.Warn().Err(err).Msg("token validation failed")
		return models.ValidateResult{Message: err.Error()}
	}
	return result
}

func (s *sessionService) Restore(ctx context.Context) error {
	stored, err := s.repo.Load(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	s.mu.Lock()
	s.token = stored.Token
	s.mu.Unlock()

	s.profile.Set(stored.Profile)
	return nil
}

func (s *sessionService) RefreshProfile(ctx context.Context) (models.UserProfile, error) {
	current := s.CurrentUser()
	token := s.Token(ctx)
	if current == nil || token == "" {
		return models.UserProfile{}, ErrNotAuthenticated
	}

	profile, err := s.users.GetByUsername(ctx, current.Username)
	if err != nil {
		return models.UserProfile{}, mapAdapterError(fmt.Errorf("refresh profile: %w", err))
	}

	if err = s.repo.Save(ctx, token, profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("persist refreshed profile: %w", err)
	}

	published := profile
	s.profile.Set(&published)
	return profile, nil
}

func (s *sessionService) CurrentUser() *models.UserProfile {
	return s.profile.Get()
}

func (s *sessionService) Subscribe(fn func(*models.UserProfile)) (unsubscribe func()) {
	return s.profile.Subscribe(fn)
}

func (s *sessionService) MarkRejected(token string) {
	if token == "" {
		return
	}
	s.mu.Lock()
	s.rejected[token] = struct{}{}
	s.mu.Unlock()
}

func (s *sessionService) IsRejected(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rejected[token]
	return ok
}
