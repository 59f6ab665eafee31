// exposes a Store interface that is passed to API calls w/ param requirements
package db

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/Nixie-Tech-LLC/vakit/internal/model"
)

// ErrNotFound is returned when a screen lookup matches no rows.
var ErrNotFound = errors.New("not found")

// ErrDeviceTaken is returned when pairing a device already bound to
// another screen.
var ErrDeviceTaken = errors.New("device is already paired to another screen")

// ScreenFields are the operator editable columns of a screen. Nil pointers
// leave the stored value unchanged on update.
type ScreenFields struct {
	Name             *string
	City             *string
	Latitude         *float64
	Longitude        *float64
	UTCOffsetMinutes *float64
	Method           *string
}

type Store interface {
	ListScreens(ctx context.Context) ([]model.Screen, error)
	ListPairedScreens(ctx context.Context) ([]model.Screen, error)
	GetScreenByID(ctx context.Context, id int) (model.Screen, error)
	GetScreenByDeviceID(ctx context.Context, deviceID string) (model.Screen, error)
	IsDevicePaired(ctx context.Context, deviceID string) (bool, error)
	CreateScreen(ctx context.Context, s model.Screen) (model.Screen, error)
	UpdateScreen(ctx context.Context, id int, f ScreenFields) (model.Screen, error)
	PairScreen(ctx context.Context, id int, deviceID string) error
	DeleteScreen(ctx context.Context, id int) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(conn *sqlx.DB) Store {
	return &pgStore{db: conn}
}
