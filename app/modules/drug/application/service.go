package drugservice

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	drugdomain "github.com/tripsit/tripsit-api/app/modules/drug/domain"
	drugdb "github.com/tripsit/tripsit-api/app/modules/drug/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/db/bundb"
	"github.com/tripsit/tripsit-api/internal/domain"
	"github.com/tripsit/tripsit-api/internal/observability/metrics"
	"github.com/tripsit/tripsit-api/internal/operation"
	"github.com/tripsit/tripsit-api/internal/results"
	"github.com/tripsit/tripsit-api/internal/sanitize"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "DrugService"

// DrugService implements Service.
type DrugService struct {
	repo   drugdb.Repository
	logger *slog.Logger
	runner *operation.Runner
}

func NewDrugService(
	repo drugdb.Repository,
	logger *slog.Logger,
	m metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *DrugService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DrugService{
		repo:   repo,
		logger: logger,
		runner: operation.NewRunner(serviceName, logger, m, tracer, db),
	}
}

type drugResult = results.OperationResult[*drugdb.Drug, error]

// constraintFailure maps a foreign key violation raised by a write to the
// matching domain failure. Other errors map to nil.
func constraintFailure(err error) error {
	constraint, ok := bundb.ForeignKeyViolation(err)
	if !ok {
		return nil
	}
	switch {
	case strings.Contains(constraint, "last_updated_by"), strings.Contains(constraint, "last_modified_by"),
		strings.Contains(constraint, "posted_by"):
		return ErrUnknownUpdatingActor
	case strings.Contains(constraint, "drug_variant_id"):
		return ErrVariantNotFound
	case strings.Contains(constraint, "drug_category_id"):
		return ErrCategoryNotFound
	default:
		return ErrDrugNotFound
	}
}

// CreateDrug inserts a drug and its default name in one transaction.
func (s *DrugService) CreateDrug(ctx context.Context, in CreateDrugInput) (*drugdb.Drug, error) {
	return operation.Run(s.runner, ctx, "CreateDrug", in.DefaultName,
		func(ctx context.Context, db bun.IDB) (drugResult, error) {
			return s.createDrugLogic(ctx, db, in)
		})
}

func (s *DrugService) createDrugLogic(ctx context.Context, db bun.IDB, in CreateDrugInput) (drugResult, error) {
	if !in.NameType.IsValid() {
		return results.FailureResult[*drugdb.Drug, error](domain.Invalidf("nameType", "unknown drug name type %q", in.NameType)), nil
	}
	name := sanitize.Plain(in.DefaultName)
	if name == "" {
		return results.FailureResult[*drugdb.Drug, error](domain.NewValidationError("defaultName", "default name is required")), nil
	}
	if in.LastUpdatedBy == uuid.Nil {
		return results.FailureResult[*drugdb.Drug, error](domain.NewValidationError("lastUpdatedBy", "acting user is required")), nil
	}

	drug := &drugdb.Drug{
		Summary:              sanitize.Rich(in.Summary),
		PsychonautWikiURL:    in.PsychonautWikiURL,
		ErowidExperiencesURL: in.ErowidExperiencesURL,
		LastUpdatedBy:        in.LastUpdatedBy,
	}
	if err := s.repo.CreateDrug(ctx, db, drug); err != nil {
		if failure := constraintFailure(err); failure != nil {
			return results.FailureResult[*drugdb.Drug, error](failure), nil
		}
		return drugResult{}, err
	}

	defaultName := &drugdb.DrugName{
		DrugID:    drug.ID,
		Name:      name,
		IsDefault: true,
		Type:      in.NameType,
	}
	if err := s.repo.CreateName(ctx, db, defaultName); err != nil {
		return drugResult{}, err
	}
	return s.loadDrug(ctx, db, drug.ID)
}

// GetDrug returns a drug with names, articles, variants and ROAs.
func (s *DrugService) GetDrug(ctx context.Context, id uuid.UUID) (*drugdb.Drug, error) {
	return operation.Run(s.runner, ctx, "GetDrug", id.String(),
		func(ctx context.Context, db bun.IDB) (drugResult, error) {
			return s.loadDrug(ctx, db, id)
		})
}

func (s *DrugService) loadDrug(ctx context.Context, db bun.IDB, id uuid.UUID) (drugResult, error) {
	drug, err := s.repo.GetDrug(ctx, db, id)
	if err != nil {
		if errors.Is(err, drugdb.ErrNotFound) {
			return results.FailureResult[*drugdb.Drug, error](ErrDrugNotFound), nil
		}
		return drugResult{}, err
	}
	return results.SuccessResult[*drugdb.Drug, error](drug), nil
}

// ListDrugs pages through drugs in creation order. A name filter that matches
// nothing yields an empty slice.
func (s *DrugService) ListDrugs(ctx context.Context, filter drugdb.DrugFilter) ([]*drugdb.Drug, error) {
	return operation.Run(s.runner, ctx, "ListDrugs", "",
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]*drugdb.Drug, error], error) {
			if filter.Offset < 0 || filter.Limit < 0 {
				return results.FailureResult[[]*drugdb.Drug, error](
					domain.NewValidationError("offset", "offset and limit cannot be negative")), nil
			}
			drugs, err := s.repo.ListDrugs(ctx, db, filter)
			if err != nil {
				return results.OperationResult[[]*drugdb.Drug, error]{}, err
			}
			if drugs == nil {
				drugs = []*drugdb.Drug{}
			}
			return results.SuccessResult[[]*drugdb.Drug, error](drugs), nil
		})
}

func (s *DrugService) UpdateDrug(ctx context.Context, id uuid.UUID, in DrugUpdate) (*drugdb.Drug, error) {
	return operation.Run(s.runner, ctx, "UpdateDrug", id.String(),
		func(ctx context.Context, db bun.IDB) (drugResult, error) {
			drug, err := s.repo.GetDrugForUpdate(ctx, db, id)
			if err != nil {
				if errors.Is(err, drugdb.ErrNotFound) {
					return results.FailureResult[*drugdb.Drug, error](ErrDrugNotFound), nil
				}
				return drugResult{}, err
			}

			if in.Summary != nil {
				drug.Summary = sanitize.Rich(in.Summary)
			}
			if in.PsychonautWikiURL != nil {
				drug.PsychonautWikiURL = in.PsychonautWikiURL
			}
			if in.ErowidExperiencesURL != nil {
				drug.ErowidExperiencesURL = in.ErowidExperiencesURL
			}
			if in.LastUpdatedBy != uuid.Nil {
				drug.LastUpdatedBy = in.LastUpdatedBy
			}

			if err := s.repo.UpdateDrug(ctx, db, drug); err != nil {
				if failure := constraintFailure(err); failure != nil {
					return results.FailureResult[*drugdb.Drug, error](failure), nil
				}
				return drugResult{}, err
			}
			return s.loadDrug(ctx, db, id)
		})
}

// DeleteDrug removes a drug and everything it owns.
func (s *DrugService) DeleteDrug(ctx context.Context, id uuid.UUID) error {
	_, err := operation.Run(s.runner, ctx, "DeleteDrug", id.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
			return deleted(s.repo.DeleteDrug(ctx, db, id), ErrDrugNotFound)
		})
	return err
}

// deleted turns a repository delete result into an operation result, mapping
// zero affected rows to notFound.
func deleted(err error, notFound error) (results.OperationResult[struct{}, error], error) {
	if err != nil {
		if errors.Is(err, drugdb.ErrNoRowsAffected) {
			return results.FailureResult[struct{}, error](notFound), nil
		}
		return results.OperationResult[struct{}, error]{}, err
	}
	return results.SuccessResult[struct{}, error](struct{}{}), nil
}

func nameDefaults(names []*drugdb.DrugName) []drugdomain.NameDefault {
	out := make([]drugdomain.NameDefault, len(names))
	for i, n := range names {
		out[i] = drugdomain.NameDefault{ID: n.ID, IsDefault: n.IsDefault}
	}
	return out
}
