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

type variantResult = results.OperationResult[*drugdb.DrugVariant, error]
type roaResult = results.OperationResult[*drugdb.DrugVariantRoa, error]

func (s *DrugService) CreateDrugVariant(ctx context.Context, in CreateVariantInput) (*drugdb.DrugVariant, error) {
	return operation.Run(s.runner, ctx, "CreateDrugVariant", in.DrugID.String(),
		func(ctx context.Context, db bun.IDB) (variantResult, error) {
			if in.LastUpdatedBy == uuid.Nil {
				return results.FailureResult[*drugdb.DrugVariant, error](domain.NewValidationError("lastUpdatedBy", "acting user is required")), nil
			}
			variant := &drugdb.DrugVariant{
				DrugID:        in.DrugID,
				Name:          sanitize.PlainPtr(in.Name),
				Description:   sanitize.Rich(in.Description),
				IsDefault:     in.IsDefault,
				LastUpdatedBy: in.LastUpdatedBy,
			}
			if err := s.repo.CreateVariant(ctx, db, variant); err != nil {
				if failure := constraintFailure(err); failure != nil {
					return results.FailureResult[*drugdb.DrugVariant, error](failure), nil
				}
				return variantResult{}, err
			}
			return results.SuccessResult[*drugdb.DrugVariant, error](variant), nil
		})
}

func (s *DrugService) UpdateDrugVariant(ctx context.Context, id uuid.UUID, in VariantUpdate) (*drugdb.DrugVariant, error) {
	return operation.Run(s.runner, ctx, "UpdateDrugVariant", id.String(),
		func(ctx context.Context, db bun.IDB) (variantResult, error) {
			variant, err := s.repo.GetVariant(ctx, db, id)
			if err != nil {
				if errors.Is(err, drugdb.ErrNotFound) {
					return results.FailureResult[*drugdb.DrugVariant, error](ErrVariantNotFound), nil
				}
				return variantResult{}, err
			}

			if in.Name != nil {
				variant.Name = sanitize.PlainPtr(in.Name)
			}
			if in.Description != nil {
				variant.Description = sanitize.Rich(in.Description)
			}
			if in.IsDefault != nil {
				variant.IsDefault = *in.IsDefault
			}
			if in.LastUpdatedBy != uuid.Nil {
				variant.LastUpdatedBy = in.LastUpdatedBy
			}

			if err := s.repo.UpdateVariant(ctx, db, variant); err != nil {
				if errors.Is(err, drugdb.ErrNoRowsAffected) {
					return results.FailureResult[*drugdb.DrugVariant, error](ErrVariantNotFound), nil
				}
				if failure := constraintFailure(err); failure != nil {
					return results.FailureResult[*drugdb.DrugVariant, error](failure), nil
				}
				return variantResult{}, err
			}
			return results.SuccessResult[*drugdb.DrugVariant, error](variant), nil
		})
}

// DeleteDrugVariant removes the variant and its ROAs.
func (s *DrugService) DeleteDrugVariant(ctx context.Context, id uuid.UUID) error {
	_, err := operation.Run(s.runner, ctx, "DeleteDrugVariant", id.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
			return deleted(s.repo.DeleteVariant(ctx, db, id), ErrVariantNotFound)
		})
	return err
}

// CreateDrugVariantRoa records doses and durations for one route of a variant.
func (s *DrugService) CreateDrugVariantRoa(ctx context.Context, in CreateRoaInput) (*drugdb.DrugVariantRoa, error) {
	return operation.Run(s.runner, ctx, "CreateDrugVariantRoa", in.DrugVariantID.String(),
		func(ctx context.Context, db bun.IDB) (roaResult, error) {
			if !in.Route.IsValid() {
				return results.FailureResult[*drugdb.DrugVariantRoa, error](domain.Invalidf("route", "unknown route %q", in.Route)), nil
			}
			roa := &drugdb.DrugVariantRoa{DrugVariantID: in.DrugVariantID, Route: in.Route}
			applyRoaValues(roa, in.RoaValues)
			if err := validateRoa(roa); err != nil {
				return results.FailureResult[*drugdb.DrugVariantRoa, error](err), nil
			}

			if err := s.repo.CreateRoa(ctx, db, roa); err != nil {
				if failure := constraintFailure(err); failure != nil {
					return results.FailureResult[*drugdb.DrugVariantRoa, error](failure), nil
				}
				return roaResult{}, err
			}
			return results.SuccessResult[*drugdb.DrugVariantRoa, error](roa), nil
		})
}

// UpdateDrugVariantRoa merges the patch over the stored row and validates the
// merged ranges, so a new min is checked against the stored max.
func (s *DrugService) UpdateDrugVariantRoa(ctx context.Context, id uuid.UUID, in RoaUpdate) (*drugdb.DrugVariantRoa, error) {
	return operation.Run(s.runner, ctx, "UpdateDrugVariantRoa", id.String(),
		func(ctx context.Context, db bun.IDB) (roaResult, error) {
			roa, err := s.repo.GetRoa(ctx, db, id)
			if err != nil {
				if errors.Is(err, drugdb.ErrNotFound) {
					return results.FailureResult[*drugdb.DrugVariantRoa, error](ErrRoaNotFound), nil
				}
				return roaResult{}, err
			}

			if in.Route != nil {
				if !in.Route.IsValid() {
					return results.FailureResult[*drugdb.DrugVariantRoa, error](domain.Invalidf("route", "unknown route %q", *in.Route)), nil
				}
				roa.Route = *in.Route
			}
			applyRoaValues(roa, in.RoaValues)
			if err := validateRoa(roa); err != nil {
				return results.FailureResult[*drugdb.DrugVariantRoa, error](err), nil
			}

			if err := s.repo.UpdateRoa(ctx, db, roa); err != nil {
				if errors.Is(err, drugdb.ErrNoRowsAffected) {
					return results.FailureResult[*drugdb.DrugVariantRoa, error](ErrRoaNotFound), nil
				}
				return roaResult{}, err
			}
			return results.SuccessResult[*drugdb.DrugVariantRoa, error](roa), nil
		})
}

func (s *DrugService) DeleteDrugVariantRoa(ctx context.Context, id uuid.UUID) error {
	_, err := operation.Run(s.runner, ctx, "DeleteDrugVariantRoa", id.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
			return deleted(s.repo.DeleteRoa(ctx, db, id), ErrRoaNotFound)
		})
	return err
}

func validateRoa(roa *drugdb.DrugVariantRoa) error {
	if err := drugdomain.ValidateDoses(roa.Doses()); err != nil {
		return err
	}
	return drugdomain.ValidateRoaRanges(roa.Ranges()...)
}

// applyRoaValues copies every non-nil value onto roa.
func applyRoaValues(roa *drugdb.DrugVariantRoa, v RoaValues) {
	set := func(dst **float64, src *float64) {
		if src != nil {
			*dst = src
		}
	}
	set(&roa.DoseThreshold, v.DoseThreshold)
	set(&roa.DoseLight, v.DoseLight)
	set(&roa.DoseCommon, v.DoseCommon)
	set(&roa.DoseStrong, v.DoseStrong)
	set(&roa.DoseHeavy, v.DoseHeavy)
	if v.DoseWarning != nil {
		roa.DoseWarning = v.DoseWarning
	}

	set(&roa.DurationTotalMin, v.DurationTotalMin)
	set(&roa.DurationTotalMax, v.DurationTotalMax)
	set(&roa.DurationOnsetMin, v.DurationOnsetMin)
	set(&roa.DurationOnsetMax, v.DurationOnsetMax)
	set(&roa.DurationComeupMin, v.DurationComeupMin)
	set(&roa.DurationComeupMax, v.DurationComeupMax)
	set(&roa.DurationPeakMin, v.DurationPeakMin)
	set(&roa.DurationPeakMax, v.DurationPeakMax)
	set(&roa.DurationOffsetMin, v.DurationOffsetMin)
	set(&roa.DurationOffsetMax, v.DurationOffsetMax)
	set(&roa.DurationAfterEffectsMin, v.DurationAfterEffectsMin)
	set(&roa.DurationAfterEffectsMax, v.DurationAfterEffectsMax)
}
