package drugservice

import "github.com/tripsit/tripsit-api/internal/domain"

var (
	ErrDrugNotFound         = domain.NewNotFound("drug not found")
	ErrDrugNameNotFound     = domain.NewNotFound("drug name not found")
	ErrArticleNotFound      = domain.NewNotFound("drug article not found")
	ErrVariantNotFound      = domain.NewNotFound("drug variant not found")
	ErrRoaNotFound          = domain.NewNotFound("drug variant roa not found")
	ErrCategoryNotFound     = domain.NewNotFound("drug category not found")
	ErrAlreadyAssociated    = domain.NewConflict("Association already exists")
	ErrDuplicateCategory    = domain.NewConflict("a drug category with this name and type already exists")
	ErrUnknownUpdatingActor = domain.NewValidationError("lastUpdatedBy", "referenced user does not exist")
)
