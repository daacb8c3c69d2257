package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/masjid-suite/hub/internal/model"
)

func (s *pgStore) CreateUser(email, hashedPassword string, name, phone *string) (int, error) {
	var id int
	err := s.db.Get(&id, `
		INSERT INTO users (email, hashed_password, name, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING id;`,
		email, hashedPassword, name, phone,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create user")
		return 0, err
	}
	return id, nil
}

func (s *pgStore) GetUserByEmail(email string) (*model.User, error) {
	var u model.User
	err := s.db.Get(&u, `
		SELECT id, email, hashed_password, name, phone, created_at, updated_at
		FROM users
		WHERE email = $1;`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to get user by email")
		return nil, err
	}
	return &u, nil
}

func (s *pgStore) GetUserByID(id int) (*model.User, error) {
	var u model.User
	err := s.db.Get(&u, `
		SELECT id, email, hashed_password, name, phone, created_at, updated_at
		FROM users
		WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("user_id", id).Msg("failed to get user by id")
		return nil, err
	}
	return &u, nil
}

func (s *pgStore) UpdateUserProfile(id int, email string, name, phone *string) error {
	_, err := s.db.Exec(`
		UPDATE users
		SET email = $2,
		name = COALESCE($3, name),
		phone = COALESCE($4, phone),
		updated_at = now()
		WHERE id = $1;`,
		id, email, name, phone,
	)
	if err != nil {
		log.Error().Err(err).Int("user_id", id).Msg("failed to update user profile")
	}
	return err
}
