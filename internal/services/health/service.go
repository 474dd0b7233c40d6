package health

import (
	"context"
	"time"

	"plancompare-backend/internal/catalog"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Status is the health payload.
type Status struct {
	OK       bool           `json:"ok"`
	Database string         `json:"database"`
	Plans    map[string]int `json:"plans"`
}

// Service encapsulates health-related checks.
type Service struct {
	DB      Pinger
	Catalog catalog.Repo
}

// NewService constructs a new health service. db may be nil when running on memory repos.
func NewService(db Pinger, plans catalog.Repo) *Service {
	return &Service{DB: db, Catalog: plans}
}

// Status reports database reachability and the number of plans per category.
func (s *Service) Status(ctx context.Context) Status {
	st := Status{OK: true, Database: "memory", Plans: map[string]int{}}

	if s.DB != nil {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := s.DB.PingContext(pingCtx); err != nil {
			st.OK = false
			st.Database = "unreachable"
			return st
		}
		st.Database = "up"
	}

	if s.Catalog != nil {
		for _, cat := range catalog.Categories {
			plans, err := s.Catalog.List(ctx, cat)
			if err != nil {
				st.OK = false
				return st
			}
			st.Plans[string(cat)] = len(plans)
		}
	}
	return st
}
