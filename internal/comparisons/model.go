package comparisons

import (
	"time"

	"github.com/google/uuid"

	"plancompare-backend/internal/catalog"
	"plancompare-backend/internal/profile"
	"plancompare-backend/internal/recommend"
)

// Comparison is one persisted ranking run for a user.
type Comparison struct {
	ID              uuid.UUID
	UserID          string
	Category        catalog.Category
	Profile         profile.UserProfile
	Recommendations []recommend.Recommendation
	// PlanCount is how many plans were evaluated, before truncation.
	PlanCount int
	CreatedAt time.Time
}
