package userservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	userdomain "github.com/tripsit/tripsit-api/app/modules/user/domain"
	userdb "github.com/tripsit/tripsit-api/app/modules/user/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/db/bundb"
	"github.com/tripsit/tripsit-api/internal/domain"
	"github.com/tripsit/tripsit-api/internal/operation"
	"github.com/tripsit/tripsit-api/internal/results"
	"github.com/uptrace/bun"
)

type actionResult = results.OperationResult[*userdb.UserAction, error]

// CreateUserAction records a moderation action. The ban-evasion rule is checked
// before anything is written.
func (s *UserService) CreateUserAction(ctx context.Context, in CreateActionInput) (*userdb.UserAction, error) {
	return operation.Run(s.runner, ctx, "CreateUserAction", in.UserID.String(),
		func(ctx context.Context, db bun.IDB) (actionResult, error) {
			return s.createUserActionLogic(ctx, db, in)
		})
}

func (s *UserService) createUserActionLogic(ctx context.Context, db bun.IDB, in CreateActionInput) (actionResult, error) {
	if err := userdomain.ValidateAction(in.Type, in.BanEvasionRelatedUser, in.Description, in.InternalNote); err != nil {
		return results.FailureResult[*userdb.UserAction](err), nil
	}
	if in.CreatedBy == uuid.Nil {
		return results.FailureResult[*userdb.UserAction, error](domain.NewValidationError("createdBy", "acting user is required")), nil
	}

	exists, err := s.repo.UserExists(ctx, db, in.UserID)
	if err != nil {
		return actionResult{}, err
	}
	if !exists {
		return results.FailureResult[*userdb.UserAction](ErrUserNotFound), nil
	}

	action := &userdb.UserAction{
		UserID:                in.UserID,
		Type:                  in.Type,
		BanEvasionRelatedUser: in.BanEvasionRelatedUser,
		Description:           in.Description,
		InternalNote:          in.InternalNote,
		ExpiresAt:             in.ExpiresAt,
		CreatedBy:             in.CreatedBy,
	}
	if err := s.repo.CreateAction(ctx, db, action); err != nil {
		if _, ok := bundb.ForeignKeyViolation(err); ok {
			return results.FailureResult[*userdb.UserAction, error](
				domain.NewValidationError("createdBy", "referenced user does not exist")), nil
		}
		return actionResult{}, err
	}
	return results.SuccessResult[*userdb.UserAction, error](action), nil
}

func (s *UserService) GetUserAction(ctx context.Context, id uuid.UUID) (*userdb.UserAction, error) {
	return operation.Run(s.runner, ctx, "GetUserAction", id.String(),
		func(ctx context.Context, db bun.IDB) (actionResult, error) {
			return s.loadAction(ctx, db, id)
		})
}

func (s *UserService) loadAction(ctx context.Context, db bun.IDB, id uuid.UUID) (actionResult, error) {
	action, err := s.repo.GetAction(ctx, db, id)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[*userdb.UserAction](ErrActionNotFound), nil
		}
		return actionResult{}, err
	}
	return results.SuccessResult[*userdb.UserAction, error](action), nil
}

// ListUserActions returns a user's actions newest first. Repealed actions are
// only included on request.
func (s *UserService) ListUserActions(ctx context.Context, userID uuid.UUID, includeRepealed bool) ([]*userdb.UserAction, error) {
	return operation.Run(s.runner, ctx, "ListUserActions", userID.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]*userdb.UserAction, error], error) {
			exists, err := s.repo.UserExists(ctx, db, userID)
			if err != nil {
				return results.OperationResult[[]*userdb.UserAction, error]{}, err
			}
			if !exists {
				return results.FailureResult[[]*userdb.UserAction](ErrUserNotFound), nil
			}
			actions, err := s.repo.ListActions(ctx, db, userID, includeRepealed)
			if err != nil {
				return results.OperationResult[[]*userdb.UserAction, error]{}, err
			}
			if actions == nil {
				actions = []*userdb.UserAction{}
			}
			return results.SuccessResult[[]*userdb.UserAction, error](actions), nil
		})
}

func (s *UserService) UpdateUserAction(ctx context.Context, id uuid.UUID, in ActionUpdate) (*userdb.UserAction, error) {
	return operation.Run(s.runner, ctx, "UpdateUserAction", id.String(),
		func(ctx context.Context, db bun.IDB) (actionResult, error) {
			if in.Description != nil && *in.Description == "" {
				return results.FailureResult[*userdb.UserAction, error](domain.NewValidationError("description", "description is required")), nil
			}
			if in.InternalNote != nil && *in.InternalNote == "" {
				return results.FailureResult[*userdb.UserAction, error](domain.NewValidationError("internalNote", "internal note is required")), nil
			}

			err := s.repo.UpdateAction(ctx, db, id, &userdb.ActionUpdateFields{
				Description:  in.Description,
				InternalNote: in.InternalNote,
				ExpiresAt:    in.ExpiresAt,
			})
			if err != nil {
				if errors.Is(err, userdb.ErrNoRowsAffected) {
					return results.FailureResult[*userdb.UserAction](ErrActionNotFound), nil
				}
				return actionResult{}, err
			}
			return s.loadAction(ctx, db, id)
		})
}

// RepealUserAction marks an action repealed by the given user. The row is
// locked first so two concurrent repeals cannot both succeed; the second one
// gets ErrAlreadyRepealed.
func (s *UserService) RepealUserAction(ctx context.Context, id, repealedBy uuid.UUID) (*userdb.UserAction, error) {
	return operation.Run(s.runner, ctx, "RepealUserAction", id.String(),
		func(ctx context.Context, db bun.IDB) (actionResult, error) {
			action, err := s.repo.GetActionForUpdate(ctx, db, id)
			if err != nil {
				if errors.Is(err, userdb.ErrNotFound) {
					return results.FailureResult[*userdb.UserAction](ErrActionNotFound), nil
				}
				return actionResult{}, err
			}
			if action.IsRepealed() {
				return results.FailureResult[*userdb.UserAction](ErrAlreadyRepealed), nil
			}

			if err := s.repo.RepealAction(ctx, db, id, repealedBy, s.now().UTC()); err != nil {
				if _, ok := bundb.ForeignKeyViolation(err); ok {
					return results.FailureResult[*userdb.UserAction, error](
						domain.NewValidationError("repealedBy", "referenced user does not exist")), nil
				}
				return actionResult{}, err
			}
			return s.loadAction(ctx, db, id)
		})
}

// DeleteUserAction hard-deletes an action.
func (s *UserService) DeleteUserAction(ctx context.Context, id uuid.UUID) error {
	_, err := operation.Run(s.runner, ctx, "DeleteUserAction", id.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
			if err := s.repo.DeleteAction(ctx, db, id); err != nil {
				if errors.Is(err, userdb.ErrNoRowsAffected) {
					return results.FailureResult[struct{}](ErrActionNotFound), nil
				}
				return results.OperationResult[struct{}, error]{}, err
			}
			return results.SuccessResult[struct{}, error](struct{}{}), nil
		})
	return err
}
