package appraisals

import (
	"context"

	"github.com/google/uuid"

	"github.com/curiolabs/curio/internal/workflow"
	"github.com/curiolabs/curio/pkg/pagination"
)

// System defines the public contract for appraisal domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Appraisal], error)

	Find(ctx context.Context, id uuid.UUID) (*Appraisal, error)
	Appraise(ctx context.Context, cmd AppraiseCommand, progress workflow.ProgressFunc) (*Appraisal, error)
	AppraiseAdditional(ctx context.Context, id uuid.UUID, cmd AdditionalCommand) (*Appraisal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
