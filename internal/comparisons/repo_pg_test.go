package comparisons

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"plancompare-backend/internal/catalog"
	"plancompare-backend/internal/profile"
	"plancompare-backend/internal/recommend"
)

var comparisonColumnNames = []string{"id", "user_id", "category", "profile", "recommendations", "plan_count", "created_at"}

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func TestPGRepoCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	c := Comparison{
		ID:              uuid.New(),
		UserID:          "guest:abc",
		Category:        catalog.CategoryTV,
		Profile:         profile.UserProfile{MonthlyBudget: 100},
		Recommendations: []recommend.Recommendation{{PlanID: "tv-1", PersonalizedScore: 70}},
		PlanCount:       3,
		CreatedAt:       time.Now().UTC(),
	}

	mock.ExpectExec(`INSERT INTO comparisons`).
		WithArgs(c.ID, c.UserID, "tv", sqlmock.AnyArg(), sqlmock.AnyArg(), 3, c.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	prof, _ := json.Marshal(profile.UserProfile{FamilySize: 4, MonthlyBudget: 200})
	recs, _ := json.Marshal([]recommend.Recommendation{{PlanID: "cell-1", PersonalizedScore: 81}})

	mock.ExpectQuery(`SELECT .* FROM comparisons\s+WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(comparisonColumnNames).AddRow(id.String(), "u1", "cellular", prof, recs, 4, created))

	c, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if c.Category != catalog.CategoryCellular || c.Profile.FamilySize != 4 || c.PlanCount != 4 {
		t.Fatalf("unexpected comparison %+v", c)
	}
	if len(c.Recommendations) != 1 || c.Recommendations[0].PlanID != "cell-1" {
		t.Fatalf("unexpected recommendations %+v", c.Recommendations)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT .* FROM comparisons`).WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByID(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListByUser(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()
	rows := sqlmock.NewRows(comparisonColumnNames).
		AddRow(uuid.NewString(), "u1", "tv", []byte(`{}`), []byte(`[]`), 3, now).
		AddRow(uuid.NewString(), "u1", "internet", []byte(`{}`), nil, 4, now.Add(-time.Hour))
	mock.ExpectQuery(`SELECT .* FROM comparisons\s+WHERE user_id = \$1\s+ORDER BY created_at DESC\s+LIMIT \$2`).
		WithArgs("u1", 10).
		WillReturnRows(rows)

	items, err := repo.ListByUser(context.Background(), "u1", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[1].Recommendations == nil {
		t.Fatalf("expected empty recommendations slice for NULL payload")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
