package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// PairingTTL bounds how long a code shown on a TV stays redeemable.
const PairingTTL = 10 * time.Minute

const pairingPrefix = "pairing:"

// ErrUnknownCode is returned when a pairing code was never registered or
// has expired.
var ErrUnknownCode = errors.New("unknown or expired pairing code")

func NewClient(address, username, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     address,
		Username: username,
		Password: password,
		DB:       0,
	})
}

// PairingCodes maps the short codes shown on unpaired screens to device ids.
type PairingCodes struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewPairingCodes(rdb *redis.Client) *PairingCodes {
	return &PairingCodes{rdb: rdb, ttl: PairingTTL}
}

// Register stores code for deviceID, replacing any earlier registration.
func (p *PairingCodes) Register(ctx context.Context, code, deviceID string) error {
	if err := p.rdb.Set(ctx, pairingPrefix+code, deviceID, p.ttl).Err(); err != nil {
		log.Error().Err(err).Str("code", code).Msg("failed to store pairing code")
		return fmt.Errorf("store pairing code: %w", err)
	}
	return nil
}

// Redeem returns the device id for code and deletes the code, so each code
// pairs exactly one screen.
func (p *PairingCodes) Redeem(ctx context.Context, code string) (string, error) {
	deviceID, err := p.rdb.GetDel(ctx, pairingPrefix+code).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrUnknownCode
	}
	if err != nil {
		return "", fmt.Errorf("redeem pairing code: %w", err)
	}
	return deviceID, nil
}

func (p *PairingCodes) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}
