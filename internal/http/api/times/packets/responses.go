package packets

import "github.com/Nixie-Tech-LLC/vakit/internal/athan"

type ServiceResponse struct {
	Service  string `json:"service"`
	Docs     string `json:"docs"`
	Endpoint string `json:"endpoint"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type CalendarDay struct {
	Date  string      `json:"date"`
	Times athan.Times `json:"times"`
}

type CalendarResponse struct {
	Days []CalendarDay `json:"days"`
}
