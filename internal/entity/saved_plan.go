package entity

import "time"

type SavedPlan struct {
	ID        string    `json:"id"`
	Profile   Profile   `json:"profile"`
	Plan      Plan      `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SavePlanRequest struct {
	Profile Profile `json:"profile"`
	Plan    Plan    `json:"plan"`
}
