package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	createPlanQuery = `INSERT INTO saved_plans (id, profile, plan, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, profile, plan, created_at, updated_at`

	getPlanQuery = `SELECT id, profile, plan, created_at, updated_at FROM saved_plans WHERE id = $1`

	listPlansQuery = `SELECT id, profile, plan, created_at, updated_at FROM saved_plans
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	deletePlanQuery = `DELETE FROM saved_plans WHERE id = $1`
)

// PlanPostgres implements PlanRepository using PostgreSQL
type PlanPostgres struct {
	db *pgxpool.Pool
}

func NewPlanPostgres(db *pgxpool.Pool) *PlanPostgres {
	return &PlanPostgres{db: db}
}

func (r *PlanPostgres) Create(ctx context.Context, plan entity.SavedPlan) (*entity.SavedPlan, error) {
	planID, err := parseID(plan.ID)
	if err != nil {
		return nil, err
	}

	profileJSON, planJSON, err := marshalPlan(&plan)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, createPlanQuery, planID, profileJSON, planJSON, plan.CreatedAt, plan.UpdatedAt)
	result, err := scanPlan(row)
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}

	return result, nil
}

func (r *PlanPostgres) Get(ctx context.Context, id string) (*entity.SavedPlan, error) {
	planID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	result, err := scanPlan(r.db.QueryRow(ctx, getPlanQuery, planID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrPlanNotFound
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}

	return result, nil
}

func (r *PlanPostgres) List(ctx context.Context, skip, limit int) ([]*entity.SavedPlan, error) {
	rows, err := r.db.Query(ctx, listPlansQuery, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	plans := make([]*entity.SavedPlan, 0, limit)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	return plans, nil
}

func (r *PlanPostgres) Delete(ctx context.Context, id string) error {
	planID, err := parseID(id)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, deletePlanQuery, planID)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrPlanNotFound
	}

	return nil
}

func parseID(id string) (uuid.UUID, error) {
	planID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: plan id %q", entity.ErrInvalidParameter, id)
	}
	return planID, nil
}
