package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const planColumns = `id, company, plan_name, category, price_kind, price_value, intro_price, intro_months, features, download_speed, upload_speed, data_amount, commitment, channels`

// List returns the plans of a category ordered as they were imported.
func (r *PGRepo) List(ctx context.Context, category Category) ([]PlanRecord, error) {
	query := `
SELECT ` + planColumns + `
FROM plans
WHERE category = $1
ORDER BY sort_order ASC, id ASC`

	rows, err := r.DB.QueryContext(ctx, query, string(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []PlanRecord{}
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, plan)
	}
	return out, rows.Err()
}

// GetByID fetches a single plan.
func (r *PGRepo) GetByID(ctx context.Context, id string) (PlanRecord, error) {
	query := `
SELECT ` + planColumns + `
FROM plans
WHERE id = $1
LIMIT 1`

	plan, err := scanPlan(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PlanRecord{}, ErrNotFound
		}
		return PlanRecord{}, err
	}
	return plan, nil
}

// Upsert inserts or updates plans inside one transaction. Feed order becomes sort_order.
func (r *PGRepo) Upsert(ctx context.Context, plans []PlanRecord) error {
	const query = `
INSERT INTO plans (
    id, company, plan_name, category, price_kind, price_value, intro_price, intro_months,
    features, download_speed, upload_speed, data_amount, commitment, channels, sort_order, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
ON CONFLICT (id) DO UPDATE SET
    company = EXCLUDED.company,
    plan_name = EXCLUDED.plan_name,
    category = EXCLUDED.category,
    price_kind = EXCLUDED.price_kind,
    price_value = EXCLUDED.price_value,
    intro_price = EXCLUDED.intro_price,
    intro_months = EXCLUDED.intro_months,
    features = EXCLUDED.features,
    download_speed = EXCLUDED.download_speed,
    upload_speed = EXCLUDED.upload_speed,
    data_amount = EXCLUDED.data_amount,
    commitment = EXCLUDED.commitment,
    channels = EXCLUDED.channels,
    sort_order = EXCLUDED.sort_order,
    updated_at = EXCLUDED.updated_at`

	if len(plans) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	for i, p := range plans {
		features, err := json.Marshal(nonNilStrings(p.Features))
		if err != nil {
			return fmt.Errorf("marshal features for %s: %w", p.ID, err)
		}
		var intro sql.NullFloat64
		if p.IntroPrice != nil {
			intro = sql.NullFloat64{Float64: *p.IntroPrice, Valid: true}
		}
		if _, err := tx.ExecContext(
			ctx,
			query,
			p.ID,
			p.Company,
			p.PlanName,
			string(p.Category),
			p.Price.Kind().String(),
			p.Price.Value(),
			intro,
			p.IntroMonths,
			features,
			p.DownloadSpeed,
			p.UploadSpeed,
			p.DataAmount,
			p.Commitment,
			p.Channels,
			i,
			now,
		); err != nil {
			return fmt.Errorf("upsert plan %s: %w", p.ID, err)
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (PlanRecord, error) {
	var (
		plan      PlanRecord
		category  string
		priceKind string
		price     float64
		intro     sql.NullFloat64
		features  []byte
		download  sql.NullString
		upload    sql.NullString
		data      sql.NullString
		commit    sql.NullString
	)
	if err := row.Scan(
		&plan.ID,
		&plan.Company,
		&plan.PlanName,
		&category,
		&priceKind,
		&price,
		&intro,
		&plan.IntroMonths,
		&features,
		&download,
		&upload,
		&data,
		&commit,
		&plan.Channels,
	); err != nil {
		return PlanRecord{}, err
	}

	plan.Category = Category(category)
	kind, err := ParsePriceKind(priceKind)
	if err != nil {
		return PlanRecord{}, fmt.Errorf("plan %s: %w", plan.ID, err)
	}
	switch kind {
	case PriceDiscountPercent:
		plan.Price = DiscountPercent(price)
	default:
		plan.Price = AbsolutePrice(price)
	}
	if intro.Valid {
		v := intro.Float64
		plan.IntroPrice = &v
	}
	if len(features) > 0 {
		if err := json.Unmarshal(features, &plan.Features); err != nil {
			return PlanRecord{}, fmt.Errorf("plan %s features: %w", plan.ID, err)
		}
	}
	plan.DownloadSpeed = download.String
	plan.UploadSpeed = upload.String
	plan.DataAmount = data.String
	plan.Commitment = commit.String
	return plan, nil
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

var _ Repo = (*PGRepo)(nil)
