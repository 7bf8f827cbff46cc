package drugservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	drugdomain "github.com/tripsit/tripsit-api/app/modules/drug/domain"
	drugdb "github.com/tripsit/tripsit-api/app/modules/drug/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/domain"
	"github.com/tripsit/tripsit-api/internal/operation"
	"github.com/tripsit/tripsit-api/internal/results"
	"github.com/tripsit/tripsit-api/internal/sanitize"
	"github.com/uptrace/bun"
)

type nameResult = results.OperationResult[*drugdb.DrugName, error]
type namesResult = results.OperationResult[[]*drugdb.DrugName, error]

// CreateDrugName adds a name. With IsDefault set it also becomes the drug's
// only default.
func (s *DrugService) CreateDrugName(ctx context.Context, in CreateDrugNameInput) (*drugdb.DrugName, error) {
	return operation.Run(s.runner, ctx, "CreateDrugName", in.DrugID.String(),
		func(ctx context.Context, db bun.IDB) (nameResult, error) {
			if !in.Type.IsValid() {
				return results.FailureResult[*drugdb.DrugName, error](domain.Invalidf("type", "unknown drug name type %q", in.Type)), nil
			}
			value := sanitize.Plain(in.Name)
			if value == "" {
				return results.FailureResult[*drugdb.DrugName, error](domain.NewValidationError("name", "name is required")), nil
			}

			if _, err := s.repo.GetDrugForUpdate(ctx, db, in.DrugID); err != nil {
				if errors.Is(err, drugdb.ErrNotFound) {
					return results.FailureResult[*drugdb.DrugName, error](ErrDrugNotFound), nil
				}
				return nameResult{}, err
			}

			name := &drugdb.DrugName{DrugID: in.DrugID, Name: value, Type: in.Type}
			if err := s.repo.CreateName(ctx, db, name); err != nil {
				return nameResult{}, err
			}
			if !in.IsDefault {
				return results.SuccessResult[*drugdb.DrugName, error](name), nil
			}

			res, err := s.setDefaultLogic(ctx, db, name)
			if err != nil || res.IsFailure() {
				return results.OperationResult[*drugdb.DrugName, error]{Failure: res.Failure}, err
			}
			name.IsDefault = true
			return results.SuccessResult[*drugdb.DrugName, error](name), nil
		})
}

func (s *DrugService) UpdateDrugName(ctx context.Context, id uuid.UUID, in DrugNameUpdate) (*drugdb.DrugName, error) {
	return operation.Run(s.runner, ctx, "UpdateDrugName", id.String(),
		func(ctx context.Context, db bun.IDB) (nameResult, error) {
			name, err := s.repo.GetName(ctx, db, id)
			if err != nil {
				if errors.Is(err, drugdb.ErrNotFound) {
					return results.FailureResult[*drugdb.DrugName, error](ErrDrugNameNotFound), nil
				}
				return nameResult{}, err
			}

			if in.Name != nil {
				value := sanitize.Plain(*in.Name)
				if value == "" {
					return results.FailureResult[*drugdb.DrugName, error](domain.NewValidationError("name", "name is required")), nil
				}
				name.Name = value
			}
			if in.Type != nil {
				if !in.Type.IsValid() {
					return results.FailureResult[*drugdb.DrugName, error](domain.Invalidf("type", "unknown drug name type %q", *in.Type)), nil
				}
				name.Type = *in.Type
			}

			if err := s.repo.UpdateName(ctx, db, name); err != nil {
				if errors.Is(err, drugdb.ErrNoRowsAffected) {
					return results.FailureResult[*drugdb.DrugName, error](ErrDrugNameNotFound), nil
				}
				return nameResult{}, err
			}
			return results.SuccessResult[*drugdb.DrugName, error](name), nil
		})
}

// SetDefaultDrugName makes the name the only default of its drug and returns
// every name of that drug.
func (s *DrugService) SetDefaultDrugName(ctx context.Context, id uuid.UUID) ([]*drugdb.DrugName, error) {
	return operation.Run(s.runner, ctx, "SetDefaultDrugName", id.String(),
		func(ctx context.Context, db bun.IDB) (namesResult, error) {
			name, err := s.repo.GetName(ctx, db, id)
			if err != nil {
				if errors.Is(err, drugdb.ErrNotFound) {
					return results.FailureResult[[]*drugdb.DrugName, error](ErrDrugNameNotFound), nil
				}
				return namesResult{}, err
			}
			return s.setDefaultLogic(ctx, db, name)
		})
}

// setDefaultLogic flips the defaults under a row lock on the drug, then checks
// the written set before the transaction commits.
func (s *DrugService) setDefaultLogic(ctx context.Context, db bun.IDB, name *drugdb.DrugName) (namesResult, error) {
	if _, err := s.repo.GetDrugForUpdate(ctx, db, name.DrugID); err != nil {
		if errors.Is(err, drugdb.ErrNotFound) {
			return results.FailureResult[[]*drugdb.DrugName, error](ErrDrugNotFound), nil
		}
		return namesResult{}, err
	}
	if err := s.repo.SetDefaultName(ctx, db, name.DrugID, name.ID); err != nil {
		return namesResult{}, err
	}

	names, err := s.repo.ListNames(ctx, db, name.DrugID)
	if err != nil {
		return namesResult{}, err
	}
	if err := drugdomain.ValidateSingleDefault(nameDefaults(names)); err != nil {
		return results.FailureResult[[]*drugdb.DrugName, error](err), nil
	}
	return results.SuccessResult[[]*drugdb.DrugName, error](names), nil
}

// DeleteDrugName removes a name. Removing the default leaves the drug without
// one until another name is made default.
func (s *DrugService) DeleteDrugName(ctx context.Context, id uuid.UUID) error {
	_, err := operation.Run(s.runner, ctx, "DeleteDrugName", id.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
			return deleted(s.repo.DeleteName(ctx, db, id), ErrDrugNameNotFound)
		})
	return err
}
