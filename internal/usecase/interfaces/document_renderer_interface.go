package interfaces

import (
	"context"

	"adspace_ops/internal/domain/entities"
)

// IDocumentRenderer abstracts the external PDF rendering service. The
// service owns all layout; this side's contract ends at supplying a
// correct line-item/total model.
type IDocumentRenderer interface {
	Render(ctx context.Context, model entities.DocumentModel) ([]byte, error)
}
