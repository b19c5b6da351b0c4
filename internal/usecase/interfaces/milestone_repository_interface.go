package interfaces

import (
	"context"

	"agency_crm/internal/domain/entities"
)

// IMilestoneRepository abstracts milestone reads scoped to a company.

type IMilestoneRepository interface {
	ListSelectedByCompanyID(ctx context.Context, companyID string, limit int) ([]entities.Milestone, error)
}
