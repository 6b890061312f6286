package interfaces

import (
	"context"
	"shop_manager/internal/domain/entities"
)

// ITaskRepository abstracts persistence for follow-up tasks. The document
// mutator only ever creates tasks or rewrites title/description; deletion
// belongs to the task screens.
type ITaskRepository interface {
	Create(ctx context.Context, t entities.Task) (entities.Task, error)
	UpdateTitleDescription(ctx context.Context, id uint, title, description string) error
}
