package packets

import "github.com/Nixie-Tech-LLC/vakit/internal/athan"

// RESPONSES FOR /api/tv/*

type RegisterPairingCodeResponse struct {
	DeviceID  string `json:"device_id"`
	ExpiresIn int    `json:"expires_in"` // seconds
}

type DeviceTimesResponse struct {
	DeviceID string      `json:"device_id"`
	Date     string      `json:"date"`
	Method   string      `json:"method"`
	Times    athan.Times `json:"times"`
}
