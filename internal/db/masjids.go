package db

import (
	"github.com/rs/zerolog/log"

	"github.com/masjid-suite/hub/internal/model"
)

const masjidColumns = `
	id, name, registration_number, address_line, city, state, postcode,
	jakim_zone, created_by, created_at, updated_at`

func (s *pgStore) CreateMasjid(m model.Masjid) (model.Masjid, error) {
	var out model.Masjid
	err := s.db.Get(&out, `
		INSERT INTO masjids
		(name, registration_number, address_line, city, state, postcode, jakim_zone, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
		RETURNING `+masjidColumns+`;`,
		m.Name, m.RegistrationNumber, m.AddressLine, m.City, m.State, m.Postcode, m.JakimZone, m.CreatedBy,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create masjid")
		return model.Masjid{}, err
	}
	return out, nil
}

func (s *pgStore) GetMasjidByID(id int) (model.Masjid, error) {
	var m model.Masjid
	err := s.db.Get(&m, `SELECT `+masjidColumns+` FROM masjids WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("masjid_id", id).Msg("failed to get masjid by id")
	}
	return m, err
}

func (s *pgStore) ListMasjids() ([]model.Masjid, error) {
	var out []model.Masjid
	if err := s.db.Select(&out, `SELECT `+masjidColumns+` FROM masjids ORDER BY id;`); err != nil {
		log.Error().Err(err).Msg("failed to list masjids")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdateMasjid(id int, name, jakimZone *string) error {
	_, err := s.db.Exec(`
		UPDATE masjids
		SET name = COALESCE($2, name),
		jakim_zone = COALESCE($3, jakim_zone),
		updated_at = now()
		WHERE id = $1;`,
		id, name, jakimZone,
	)
	if err != nil {
		log.Error().Err(err).Int("masjid_id", id).Msg("failed to update masjid")
	}
	return err
}

func (s *pgStore) AddMasjidAdmin(masjidID, userID int) error {
	_, err := s.db.Exec(`
		INSERT INTO masjid_admins (masjid_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING;`,
		masjidID, userID,
	)
	if err != nil {
		log.Error().Err(err).Int("masjid_id", masjidID).Int("user_id", userID).Msg("failed to add masjid admin")
	}
	return err
}

func (s *pgStore) IsMasjidAdmin(userID, masjidID int) (bool, error) {
	var isAdmin bool
	err := s.db.Get(&isAdmin, `
		SELECT EXISTS (
			SELECT 1 FROM masjid_admins
			WHERE user_id = $1 AND masjid_id = $2
		);`, userID, masjidID)
	if err != nil {
		log.Error().Err(err).Int("user_id", userID).Int("masjid_id", masjidID).Msg("failed to check masjid admin")
		return false, err
	}
	return isAdmin, nil
}
