package drugservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	drugdb "github.com/tripsit/tripsit-api/app/modules/drug/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/db/bundb"
	"github.com/tripsit/tripsit-api/internal/domain"
	"github.com/tripsit/tripsit-api/internal/operation"
	"github.com/tripsit/tripsit-api/internal/results"
	"github.com/tripsit/tripsit-api/internal/sanitize"
	"github.com/uptrace/bun"
)

type categoryResult = results.OperationResult[*drugdb.DrugCategory, error]

func (s *DrugService) CreateDrugCategory(ctx context.Context, in CreateCategoryInput) (*drugdb.DrugCategory, error) {
	return operation.Run(s.runner, ctx, "CreateDrugCategory", in.Name,
		func(ctx context.Context, db bun.IDB) (categoryResult, error) {
			if !in.Type.IsValid() {
				return results.FailureResult[*drugdb.DrugCategory, error](domain.Invalidf("type", "unknown drug category type %q", in.Type)), nil
			}
			name := sanitize.Plain(in.Name)
			if name == "" {
				return results.FailureResult[*drugdb.DrugCategory, error](domain.NewValidationError("name", "name is required")), nil
			}

			category := &drugdb.DrugCategory{Name: name, Type: in.Type}
			if err := s.repo.CreateCategory(ctx, db, category); err != nil {
				if _, ok := bundb.UniqueViolation(err); ok {
					return results.FailureResult[*drugdb.DrugCategory, error](ErrDuplicateCategory), nil
				}
				return categoryResult{}, err
			}
			return results.SuccessResult[*drugdb.DrugCategory, error](category), nil
		})
}

func (s *DrugService) GetDrugCategory(ctx context.Context, id uuid.UUID) (*drugdb.DrugCategory, error) {
	return operation.Run(s.runner, ctx, "GetDrugCategory", id.String(),
		func(ctx context.Context, db bun.IDB) (categoryResult, error) {
			category, err := s.repo.GetCategory(ctx, db, id)
			if err != nil {
				if errors.Is(err, drugdb.ErrNotFound) {
					return results.FailureResult[*drugdb.DrugCategory, error](ErrCategoryNotFound), nil
				}
				return categoryResult{}, err
			}
			return results.SuccessResult[*drugdb.DrugCategory, error](category), nil
		})
}

// ListDrugCategories lists every category by name.
func (s *DrugService) ListDrugCategories(ctx context.Context) ([]*drugdb.DrugCategory, error) {
	return operation.Run(s.runner, ctx, "ListDrugCategories", "",
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]*drugdb.DrugCategory, error], error) {
			categories, err := s.repo.ListCategories(ctx, db)
			if err != nil {
				return results.OperationResult[[]*drugdb.DrugCategory, error]{}, err
			}
			if categories == nil {
				categories = []*drugdb.DrugCategory{}
			}
			return results.SuccessResult[[]*drugdb.DrugCategory, error](categories), nil
		})
}

// DeleteDrugCategory removes the category and its associations. The drugs stay.
func (s *DrugService) DeleteDrugCategory(ctx context.Context, id uuid.UUID) error {
	_, err := operation.Run(s.runner, ctx, "DeleteDrugCategory", id.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
			return deleted(s.repo.DeleteCategory(ctx, db, id), ErrCategoryNotFound)
		})
	return err
}

func (s *DrugService) ListCategoryDrugs(ctx context.Context, categoryID uuid.UUID) ([]*drugdb.Drug, error) {
	return operation.Run(s.runner, ctx, "ListCategoryDrugs", categoryID.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]*drugdb.Drug, error], error) {
			if _, err := s.repo.GetCategory(ctx, db, categoryID); err != nil {
				if errors.Is(err, drugdb.ErrNotFound) {
					return results.FailureResult[[]*drugdb.Drug, error](ErrCategoryNotFound), nil
				}
				return results.OperationResult[[]*drugdb.Drug, error]{}, err
			}
			drugs, err := s.repo.ListCategoryDrugs(ctx, db, categoryID)
			if err != nil {
				return results.OperationResult[[]*drugdb.Drug, error]{}, err
			}
			if drugs == nil {
				drugs = []*drugdb.Drug{}
			}
			return results.SuccessResult[[]*drugdb.Drug, error](drugs), nil
		})
}

// AssociateDrugWithCategory links the pair and returns the drug. Linking an
// already linked pair is a conflict.
func (s *DrugService) AssociateDrugWithCategory(ctx context.Context, drugID, categoryID uuid.UUID) (*drugdb.Drug, error) {
	return operation.Run(s.runner, ctx, "AssociateDrugWithCategory", drugID.String(),
		func(ctx context.Context, db bun.IDB) (drugResult, error) {
			if res, err := s.requirePair(ctx, db, drugID, categoryID); err != nil || res.IsFailure() {
				return res, err
			}

			exists, err := s.repo.AssociationExists(ctx, db, drugID, categoryID)
			if err != nil {
				return drugResult{}, err
			}
			if exists {
				return results.FailureResult[*drugdb.Drug, error](ErrAlreadyAssociated), nil
			}

			if err := s.repo.Associate(ctx, db, drugID, categoryID); err != nil {
				if _, ok := bundb.UniqueViolation(err); ok {
					return results.FailureResult[*drugdb.Drug, error](ErrAlreadyAssociated), nil
				}
				if failure := constraintFailure(err); failure != nil {
					return results.FailureResult[*drugdb.Drug, error](failure), nil
				}
				return drugResult{}, err
			}
			return s.loadDrug(ctx, db, drugID)
		})
}

// DisassociateDrugFromCategory unlinks the pair if linked and returns the drug.
func (s *DrugService) DisassociateDrugFromCategory(ctx context.Context, drugID, categoryID uuid.UUID) (*drugdb.Drug, error) {
	return operation.Run(s.runner, ctx, "DisassociateDrugFromCategory", drugID.String(),
		func(ctx context.Context, db bun.IDB) (drugResult, error) {
			exists, err := s.repo.DrugExists(ctx, db, drugID)
			if err != nil {
				return drugResult{}, err
			}
			if !exists {
				return results.FailureResult[*drugdb.Drug, error](ErrDrugNotFound), nil
			}
			if err := s.repo.Disassociate(ctx, db, drugID, categoryID); err != nil {
				return drugResult{}, err
			}
			return s.loadDrug(ctx, db, drugID)
		})
}

// requirePair fails unless both the drug and the category exist.
func (s *DrugService) requirePair(ctx context.Context, db bun.IDB, drugID, categoryID uuid.UUID) (drugResult, error) {
	exists, err := s.repo.DrugExists(ctx, db, drugID)
	if err != nil {
		return drugResult{}, err
	}
	if !exists {
		return results.FailureResult[*drugdb.Drug, error](ErrDrugNotFound), nil
	}
	if _, err := s.repo.GetCategory(ctx, db, categoryID); err != nil {
		if errors.Is(err, drugdb.ErrNotFound) {
			return results.FailureResult[*drugdb.Drug, error](ErrCategoryNotFound), nil
		}
		return drugResult{}, err
	}
	return drugResult{}, nil
}
