package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/adapter"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/network"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/store"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/utils"
	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

type sessionService struct {
	settings store.SettingsRepository
	remote   adapter.RemoteSyncClient
	clock    network.Clock
	logger   *logger.Logger
}

// NewSessionService returns the session store backed by settings.
func NewSessionService(settings store.SettingsRepository, remote adapter.RemoteSyncClient, clock network.Clock, logger *logger.Logger) SessionService {
	return &sessionService{settings: settings, remote: remote, clock: clock, logger: logger}
}

func (s *sessionService) Current(ctx context.Context) (models.Session, error) {
	token, err := s.settings.GetSetting(ctx, store.SettingSessionToken)
	if errors.Is(err, store.ErrSettingNotFound) {
		return models.Session{}, models.ErrNoSession
	}
	if err != nil {
		return models.Session{}, mapStoreError(err)
	}

	return models.ParseSession(token)
}

func (s *sessionService) Activate(ctx context.Context) (models.Session, error) {
	session, err := s.Current(ctx)
	if errors.Is(err, ErrStorageFailure) {
		return models.Session{}, err
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if !session.Valid(s.clock.Now()) {
		return models.Session{}, fmt.Errorf("%w: session expired at %s", ErrUnauthorized, session.ExpiresAt)
	}

	s.remote.SetToken(session.String())
	return session, nil
}

func (s *sessionService) Set(ctx context.Context, token string) (models.Session, error) {
	token = strings.TrimSpace(token)
	if bearer, err := utils.ParseBearerToken(token); err == nil {
		token = bearer
	}

	session, err := models.ParseSession(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	if err = s.settings.SetSetting(ctx, store.SettingSessionToken, session.String()); err != nil {
		return models.Session{}, mapStoreError(err)
	}
	s.remote.SetToken(session.String())

	s.logger.Info().Str("func", "sessionService.Set").Str("subject", session.Subject).Msg("session stored")
	return session, nil
}

func (s *sessionService) Clear(ctx context.Context) error {
	if err := s.settings.DeleteSetting(ctx, store.SettingSessionToken); err != nil {
		return mapStoreError(err)
	}
	s.remote.SetToken("")
	return nil
}

type deviceIdentity struct {
	settings   store.SettingsRepository
	configured string
	generator  *utils.UUIDGenerator
}

// NewDeviceIdentity resolves the device id from configured when non-empty,
// else from settings.
func NewDeviceIdentity(settings store.SettingsRepository, configured string, generator *utils.UUIDGenerator) DeviceIdentity {
	return &deviceIdentity{settings: settings, configured: strings.TrimSpace(configured), generator: generator}
}

func (d *deviceIdentity) DeviceID(ctx context.Context) (string, error) {
	if d.configured != "" {
		return d.configured, nil
	}

	id, err := d.settings.GetSetting(ctx, store.SettingDeviceID)
	if err == nil && id != "" {
		return id, nil
	}
	if err != nil && !errors.Is(err, store.ErrSettingNotFound) {
		return "", mapStoreError(err)
	}

	id = d.generator.Generate()
	if err = d.settings.SetSetting(ctx, store.SettingDeviceID, id); err != nil {
		return "", mapStoreError(err)
	}
	return id, nil
}
