package userservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	userdomain "github.com/tripsit/tripsit-api/app/modules/user/domain"
	userdb "github.com/tripsit/tripsit-api/app/modules/user/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/operation"
	"github.com/tripsit/tripsit-api/internal/results"
	"github.com/uptrace/bun"
)

type experienceResult = results.OperationResult[*userdb.UserExperience, error]

// CreateUserExperience adds a leveling record. The user row is locked so that
// two concurrent creates for the same type cannot both pass the check.
func (s *UserService) CreateUserExperience(ctx context.Context, in CreateExperienceInput) (*userdb.UserExperience, error) {
	return operation.Run(s.runner, ctx, "CreateUserExperience", in.UserID.String(),
		func(ctx context.Context, db bun.IDB) (experienceResult, error) {
			if _, err := s.repo.LockUser(ctx, db, in.UserID); err != nil {
				if errors.Is(err, userdb.ErrNotFound) {
					return results.FailureResult[*userdb.UserExperience](ErrUserNotFound), nil
				}
				return experienceResult{}, err
			}

			existing, err := s.repo.ExperienceTypesForUser(ctx, db, in.UserID)
			if err != nil {
				return experienceResult{}, err
			}
			if err := userdomain.ValidateNewExperience(existing, in.Type); err != nil {
				return results.FailureResult[*userdb.UserExperience](err), nil
			}

			exp := &userdb.UserExperience{
				UserID:             in.UserID,
				Type:               in.Type,
				Level:              in.Level,
				LevelPoints:        in.LevelPoints,
				TotalPoints:        in.TotalPoints,
				LastMessageChannel: in.LastMessageChannel,
				Mee6Converted:      in.Mee6Converted,
			}
			if in.LastMessageAt != nil {
				exp.LastMessageAt = *in.LastMessageAt
			}
			if err := s.repo.CreateExperience(ctx, db, exp); err != nil {
				return experienceResult{}, err
			}
			return results.SuccessResult[*userdb.UserExperience, error](exp), nil
		})
}

func (s *UserService) ListUserExperience(ctx context.Context, userID uuid.UUID) ([]*userdb.UserExperience, error) {
	return operation.Run(s.runner, ctx, "ListUserExperience", userID.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]*userdb.UserExperience, error], error) {
			exists, err := s.repo.UserExists(ctx, db, userID)
			if err != nil {
				return results.OperationResult[[]*userdb.UserExperience, error]{}, err
			}
			if !exists {
				return results.FailureResult[[]*userdb.UserExperience](ErrUserNotFound), nil
			}
			rows, err := s.repo.ListExperience(ctx, db, userID)
			if err != nil {
				return results.OperationResult[[]*userdb.UserExperience, error]{}, err
			}
			if rows == nil {
				rows = []*userdb.UserExperience{}
			}
			return results.SuccessResult[[]*userdb.UserExperience, error](rows), nil
		})
}

func (s *UserService) UpdateUserExperience(ctx context.Context, id uuid.UUID, in ExperienceUpdate) (*userdb.UserExperience, error) {
	return operation.Run(s.runner, ctx, "UpdateUserExperience", id.String(),
		func(ctx context.Context, db bun.IDB) (experienceResult, error) {
			for field, v := range map[string]*int{"level": in.Level, "levelPoints": in.LevelPoints, "totalPoints": in.TotalPoints} {
				if v == nil {
					continue
				}
				if err := userdomain.ValidateCounter(field, *v); err != nil {
					return results.FailureResult[*userdb.UserExperience](err), nil
				}
			}

			err := s.repo.UpdateExperience(ctx, db, id, &userdb.ExperienceUpdateFields{
				Level:              in.Level,
				LevelPoints:        in.LevelPoints,
				TotalPoints:        in.TotalPoints,
				LastMessageAt:      in.LastMessageAt,
				LastMessageChannel: in.LastMessageChannel,
				Mee6Converted:      in.Mee6Converted,
			})
			if err != nil {
				if errors.Is(err, userdb.ErrNoRowsAffected) {
					return results.FailureResult[*userdb.UserExperience](ErrExperienceNotFound), nil
				}
				return experienceResult{}, err
			}

			exp, err := s.repo.GetExperience(ctx, db, id)
			if err != nil {
				if errors.Is(err, userdb.ErrNotFound) {
					return results.FailureResult[*userdb.UserExperience](ErrExperienceNotFound), nil
				}
				return experienceResult{}, err
			}
			return results.SuccessResult[*userdb.UserExperience, error](exp), nil
		})
}
