package repository

import (
	"encoding/json"
	"fmt"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func marshalPlan(plan *entity.SavedPlan) (profileJSON, planJSON []byte, err error) {
	profileJSON, err = json.Marshal(plan.Profile)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal profile: %w", err)
	}
	planJSON, err = json.Marshal(plan.Plan)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal plan: %w", err)
	}
	return profileJSON, planJSON, nil
}

func scanPlan(row pgx.Row) (*entity.SavedPlan, error) {
	var (
		id          uuid.UUID
		profileJSON []byte
		planJSON    []byte
		result      entity.SavedPlan
	)

	if err := row.Scan(&id, &profileJSON, &planJSON, &result.CreatedAt, &result.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(profileJSON, &result.Profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	if err := json.Unmarshal(planJSON, &result.Plan); err != nil {
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}

	result.ID = id.String()
	return &result, nil
}
