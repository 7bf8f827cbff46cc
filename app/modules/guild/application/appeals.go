package guildservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	guilddomain "github.com/tripsit/tripsit-api/app/modules/guild/domain"
	guilddb "github.com/tripsit/tripsit-api/app/modules/guild/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/domain"
	"github.com/tripsit/tripsit-api/internal/operation"
	"github.com/tripsit/tripsit-api/internal/results"
	"github.com/tripsit/tripsit-api/internal/sanitize"
	"github.com/uptrace/bun"
)

type appealResult = results.OperationResult[*guilddb.Appeal, error]

// CreateAppeal opens an appeal for a user against a guild.
func (s *GuildService) CreateAppeal(ctx context.Context, in CreateAppealInput) (*guilddb.Appeal, error) {
	return operation.Run(s.runner, ctx, "CreateAppeal", in.GuildID,
		func(ctx context.Context, db bun.IDB) (appealResult, error) {
			if err := guilddomain.ValidateSnowflake("guildId", in.GuildID); err != nil {
				return results.FailureResult[*guilddb.Appeal, error](err), nil
			}
			if in.UserID == uuid.Nil {
				return results.FailureResult[*guilddb.Appeal, error](domain.NewValidationError("userId", "user is required")), nil
			}

			appeal := &guilddb.Appeal{
				GuildID:  in.GuildID,
				UserID:   in.UserID,
				Reason:   sanitize.Plain(in.Reason),
				Solution: sanitize.Plain(in.Solution),
				Future:   sanitize.Plain(in.Future),
				Status:   guilddomain.AppealOpen,
			}
			if in.Extra != nil {
				extra := sanitize.Plain(*in.Extra)
				appeal.Extra = &extra
			}
			for _, f := range []struct{ field, value string }{
				{"reason", appeal.Reason},
				{"solution", appeal.Solution},
				{"future", appeal.Future},
			} {
				if f.value == "" {
					return results.FailureResult[*guilddb.Appeal, error](domain.NewValidationError(f.field, f.field+" is required")), nil
				}
			}

			if err := s.repo.CreateAppeal(ctx, db, appeal); err != nil {
				if failure := guildFailure(err); failure != nil {
					return results.FailureResult[*guilddb.Appeal, error](failure), nil
				}
				return appealResult{}, err
			}
			return results.SuccessResult[*guilddb.Appeal, error](appeal), nil
		})
}

func (s *GuildService) GetAppeal(ctx context.Context, id uuid.UUID) (*guilddb.Appeal, error) {
	return operation.Run(s.runner, ctx, "GetAppeal", id.String(),
		func(ctx context.Context, db bun.IDB) (appealResult, error) {
			return s.loadAppeal(ctx, db, id, false)
		})
}

func (s *GuildService) loadAppeal(ctx context.Context, db bun.IDB, id uuid.UUID, lock bool) (appealResult, error) {
	var (
		appeal *guilddb.Appeal
		err    error
	)
	if lock {
		appeal, err = s.repo.GetAppealForUpdate(ctx, db, id)
	} else {
		appeal, err = s.repo.GetAppeal(ctx, db, id)
	}
	if err != nil {
		if errors.Is(err, guilddb.ErrNotFound) {
			return results.FailureResult[*guilddb.Appeal, error](ErrAppealNotFound), nil
		}
		return appealResult{}, err
	}
	return results.SuccessResult[*guilddb.Appeal, error](appeal), nil
}

// ListAppeals returns a guild's appeals newest first, optionally for one user.
func (s *GuildService) ListAppeals(ctx context.Context, filter guilddb.AppealFilter) ([]*guilddb.Appeal, error) {
	return operation.Run(s.runner, ctx, "ListAppeals", filter.GuildID,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]*guilddb.Appeal, error], error) {
			if err := guilddomain.ValidateSnowflake("guildId", filter.GuildID); err != nil {
				return results.FailureResult[[]*guilddb.Appeal, error](err), nil
			}
			appeals, err := s.repo.ListAppeals(ctx, db, filter)
			if err != nil {
				return results.OperationResult[[]*guilddb.Appeal, error]{}, err
			}
			if appeals == nil {
				appeals = []*guilddb.Appeal{}
			}
			return results.SuccessResult[[]*guilddb.Appeal, error](appeals), nil
		})
}

// MarkAppealReminded stamps the time moderators were last nudged. Decided
// appeals need no reminder.
func (s *GuildService) MarkAppealReminded(ctx context.Context, id uuid.UUID) (*guilddb.Appeal, error) {
	return operation.Run(s.runner, ctx, "MarkAppealReminded", id.String(),
		func(ctx context.Context, db bun.IDB) (appealResult, error) {
			res, err := s.loadAppeal(ctx, db, id, true)
			if err != nil || res.IsFailure() {
				return res, err
			}
			appeal := *res.Success
			if appeal.Status.IsDecision() {
				return results.FailureResult[*guilddb.Appeal, error](ErrAppealAlreadyDecided), nil
			}

			at := s.now()
			if err := s.repo.MarkAppealReminded(ctx, db, id, at); err != nil {
				if errors.Is(err, guilddb.ErrNoRowsAffected) {
					return results.FailureResult[*guilddb.Appeal, error](ErrAppealNotFound), nil
				}
				return appealResult{}, err
			}
			appeal.RemindedAt = &at
			return results.SuccessResult[*guilddb.Appeal, error](appeal), nil
		})
}

// DecideAppeal closes an open appeal as ACCEPTED or DENIED and stamps
// decided_at in the same write.
func (s *GuildService) DecideAppeal(ctx context.Context, id uuid.UUID, status guilddomain.AppealStatus) (*guilddb.Appeal, error) {
	return operation.Run(s.runner, ctx, "DecideAppeal", id.String(),
		func(ctx context.Context, db bun.IDB) (appealResult, error) {
			if !status.IsDecision() {
				return results.FailureResult[*guilddb.Appeal, error](
					domain.Invalidf("status", "appeal can only be decided as %s or %s", guilddomain.AppealAccepted, guilddomain.AppealDenied)), nil
			}
			res, err := s.loadAppeal(ctx, db, id, true)
			if err != nil || res.IsFailure() {
				return res, err
			}
			appeal := *res.Success
			if appeal.Status != guilddomain.AppealOpen {
				return results.FailureResult[*guilddb.Appeal, error](ErrAppealAlreadyDecided), nil
			}

			at := s.now()
			if err := s.repo.DecideAppeal(ctx, db, id, status, at); err != nil {
				if errors.Is(err, guilddb.ErrNoRowsAffected) {
					return results.FailureResult[*guilddb.Appeal, error](ErrAppealNotFound), nil
				}
				return appealResult{}, err
			}
			appeal.Status = status
			appeal.DecidedAt = &at
			return results.SuccessResult[*guilddb.Appeal, error](appeal), nil
		})
}
