package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/vakit/internal/model"
)

const uniqueViolation = "23505"

const screenColumns = `id, device_id, name, city, latitude, longitude, utc_offset_minutes, method, paired, created_at, updated_at`

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *pgStore) ListScreens(ctx context.Context) ([]model.Screen, error) {
	var screens []model.Screen
	err := s.db.SelectContext(ctx, &screens, `
		SELECT `+screenColumns+`
		FROM screens
		ORDER BY id
		`)
	if err != nil {
		log.Error().Err(err).Msg("failed to list screens")
	}
	return screens, err
}

func (s *pgStore) ListPairedScreens(ctx context.Context) ([]model.Screen, error) {
	var screens []model.Screen
	err := s.db.SelectContext(ctx, &screens, `
		SELECT `+screenColumns+`
		FROM screens
		WHERE paired AND device_id IS NOT NULL
		ORDER BY id
		`)
	if err != nil {
		log.Error().Err(err).Msg("failed to list paired screens")
	}
	return screens, err
}

func (s *pgStore) GetScreenByID(ctx context.Context, id int) (model.Screen, error) {
	var screen model.Screen
	err := s.db.GetContext(ctx, &screen, `
		SELECT `+screenColumns+`
		FROM screens
		WHERE id = $1
		`, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Int("id", id).Msg("failed to get screen by id")
	}
	return screen, notFound(err)
}

func (s *pgStore) GetScreenByDeviceID(ctx context.Context, deviceID string) (model.Screen, error) {
	var screen model.Screen
	err := s.db.GetContext(ctx, &screen, `
		SELECT `+screenColumns+`
		FROM screens
		WHERE device_id = $1
		`, deviceID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Str("deviceID", deviceID).Msg("failed to get screen by device id")
	}
	return screen, notFound(err)
}

func (s *pgStore) IsDevicePaired(ctx context.Context, deviceID string) (bool, error) {
	var isPaired bool
	err := s.db.GetContext(ctx, &isPaired, `
		SELECT paired
		FROM screens
		WHERE device_id = $1
		`, deviceID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return isPaired, err
}

func (s *pgStore) CreateScreen(ctx context.Context, in model.Screen) (model.Screen, error) {
	var out model.Screen
	q := `
	INSERT INTO screens (name, city, latitude, longitude, utc_offset_minutes, method, paired, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, false, now(), now())
	RETURNING ` + screenColumns
	if err := s.db.GetContext(ctx, &out, q, in.Name, in.City, in.Latitude, in.Longitude, in.UTCOffsetMinutes, in.Method); err != nil {
		log.Error().Err(err).Msg("failed to create screen")
		return model.Screen{}, err
	}
	return out, nil
}

func (s *pgStore) UpdateScreen(ctx context.Context, id int, f ScreenFields) (model.Screen, error) {
	var out model.Screen
	err := s.db.GetContext(ctx, &out, `
		UPDATE screens
		SET name = COALESCE($2, name),
		city = COALESCE($3, city),
		latitude = COALESCE($4, latitude),
		longitude = COALESCE($5, longitude),
		utc_offset_minutes = COALESCE($6, utc_offset_minutes),
		method = COALESCE($7, method),
		updated_at = now()
		WHERE id = $1
		RETURNING `+screenColumns,
		id, f.Name, f.City, f.Latitude, f.Longitude, f.UTCOffsetMinutes, f.Method)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Int("id", id).Msg("failed to update screen")
	}
	return out, notFound(err)
}

// PairScreen binds deviceID to the screen. A device can be bound to at most
// one screen; the unique index on device_id enforces it.
func (s *pgStore) PairScreen(ctx context.Context, id int, deviceID string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE screens
		SET device_id = $2,
		paired = TRUE,
		updated_at = now()
		WHERE id = $1
		`, id, deviceID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDeviceTaken
	}
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to pair screen")
		return err
	}
	return expectOneRow(res)
}

func (s *pgStore) DeleteScreen(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM screens WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to delete screen")
		return err
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
