// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/doin-client/internal/logger"
	"github.com/MKhiriev/doin-client/models"
)

const sessionTable = "session_kv"

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) Save(ctx context.Context, token string, profile models.UserProfile) error {
	log := s.logger

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	deleteQuery, deleteArgs, err := builder.Delete(sessionTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insertQuery, insertArgs, err := builder.Insert(sessionTable).
		Columns("key", "value").
		Values(KeyAuthToken, token).
		Values(KeyCurrentUser, string(profileJSON)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Save").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", "sessionRepository.Save").Msg("failed to clear previous session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		log.Err(err).Str("func", "sessionRepository.Save").Msg("failed to insert session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sessionRepository.Save").Msg("failed to commit session")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (s *sessionRepository) Load(ctx context.Context) (models.StoredSession, error) {
	log := s.logger

	query, args, err := builder.Select("key", "value").
		From(sessionTable).
		Where(sq.Eq{"key": []string{KeyAuthToken, KeyCurrentUser}}).
		ToSql()
	if err != nil {
		return models.StoredSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Load").Msg("failed to query session")
		return models.StoredSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string, 2)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return models.StoredSession{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		values[key] = value
	}
	if err = rows.Err(); err != nil {
		return models.StoredSession{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	token := values[KeyAuthToken]
	if token == "" {
		return models.StoredSession{}, ErrSessionNotFound
	}

	session := models.StoredSession{Token: token}
	if raw, ok := values[KeyCurrentUser]; ok && raw != "" {
		var profile models.UserProfile
		if err = json.Unmarshal([]byte(raw), &profile); err != nil {
			log.Warn().Err(err).Str("func", "sessionRepository.Load").Msg("stored profile is unreadable")
			return models.StoredSession{}, fmt.Errorf("%w: %w", ErrCorruptedSession, err)
		}
		session.Profile = &profile
	}

	return session, nil
}

func (s *sessionRepository) Clear(ctx context.Context) error {
	query, args, err := builder.Delete(sessionTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sessionRepository.Clear").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
