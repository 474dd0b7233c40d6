package comparisons

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"plancompare-backend/internal/catalog"
	"plancompare-backend/internal/recommend"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const comparisonColumns = `id, user_id, category, profile, recommendations, plan_count, created_at`

// Create inserts a new comparison.
func (r *PGRepo) Create(ctx context.Context, c Comparison) error {
	const query = `
INSERT INTO comparisons (` + comparisonColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	profilePayload, err := json.Marshal(c.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	recsPayload, err := json.Marshal(c.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		string(c.Category),
		profilePayload,
		recsPayload,
		c.PlanCount,
		c.CreatedAt,
	)
	return err
}

// GetByID fetches a comparison.
func (r *PGRepo) GetByID(ctx context.Context, id uuid.UUID) (Comparison, error) {
	query := `
SELECT ` + comparisonColumns + `
FROM comparisons
WHERE id = $1`

	c, err := scanComparison(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Comparison{}, ErrNotFound
		}
		return Comparison{}, err
	}
	return c, nil
}

// ListByUser returns the newest comparisons of a user.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit int) ([]Comparison, error) {
	query := `
SELECT ` + comparisonColumns + `
FROM comparisons
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Comparison{}
	for rows.Next() {
		c, err := scanComparison(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComparison(row rowScanner) (Comparison, error) {
	var (
		c        Comparison
		category string
		prof     []byte
		recs     []byte
	)
	if err := row.Scan(&c.ID, &c.UserID, &category, &prof, &recs, &c.PlanCount, &c.CreatedAt); err != nil {
		return Comparison{}, err
	}
	c.Category = catalog.Category(category)
	if len(prof) > 0 {
		if err := json.Unmarshal(prof, &c.Profile); err != nil {
			return Comparison{}, fmt.Errorf("comparison %s profile: %w", c.ID, err)
		}
	}
	if len(recs) > 0 {
		if err := json.Unmarshal(recs, &c.Recommendations); err != nil {
			return Comparison{}, fmt.Errorf("comparison %s recommendations: %w", c.ID, err)
		}
	}
	if c.Recommendations == nil {
		c.Recommendations = []recommend.Recommendation{}
	}
	return c, nil
}
