package guildservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	guilddomain "github.com/tripsit/tripsit-api/app/modules/guild/domain"
	guilddb "github.com/tripsit/tripsit-api/app/modules/guild/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/db/bundb"
	"github.com/tripsit/tripsit-api/internal/domain"
	"github.com/tripsit/tripsit-api/internal/operation"
	"github.com/tripsit/tripsit-api/internal/results"
	"github.com/uptrace/bun"
)

type bridgeResult = results.OperationResult[*guilddb.Bridge, error]

// CreateBridge links an internal channel to an external one. A bridge starts
// PENDING unless a status is given.
func (s *GuildService) CreateBridge(ctx context.Context, in CreateBridgeInput) (*guilddb.Bridge, error) {
	return operation.Run(s.runner, ctx, "CreateBridge", in.InternalChannel,
		func(ctx context.Context, db bun.IDB) (bridgeResult, error) {
			if err := firstInvalid(
				guilddomain.ValidateSnowflake("internalChannel", in.InternalChannel),
				guilddomain.ValidateSnowflake("externalGuild", in.ExternalGuild),
				guilddomain.ValidateSnowflake("externalChannel", in.ExternalChannel),
			); err != nil {
				return results.FailureResult[*guilddb.Bridge, error](err), nil
			}
			if in.InternalChannel == in.ExternalChannel {
				return results.FailureResult[*guilddb.Bridge, error](
					domain.NewValidationError("externalChannel", "a channel cannot be bridged to itself")), nil
			}
			status := in.Status
			if status == "" {
				status = guilddomain.BridgePending
			}
			if !status.IsValid() {
				return results.FailureResult[*guilddb.Bridge, error](domain.Invalidf("status", "unknown bridge status %q", status)), nil
			}

			bridge := &guilddb.Bridge{
				InternalChannel: in.InternalChannel,
				InternalWebhook: in.InternalWebhook,
				Status:          status,
				ExternalGuild:   in.ExternalGuild,
				ExternalChannel: in.ExternalChannel,
				ExternalWebhook: in.ExternalWebhook,
			}
			if err := s.repo.CreateBridge(ctx, db, bridge); err != nil {
				if _, ok := bundb.UniqueViolation(err); ok {
					return results.FailureResult[*guilddb.Bridge, error](ErrUniqueConstraintViolation), nil
				}
				return bridgeResult{}, err
			}
			return results.SuccessResult[*guilddb.Bridge, error](bridge), nil
		})
}

func (s *GuildService) GetBridge(ctx context.Context, id uuid.UUID) (*guilddb.Bridge, error) {
	return operation.Run(s.runner, ctx, "GetBridge", id.String(),
		func(ctx context.Context, db bun.IDB) (bridgeResult, error) {
			return s.loadBridge(ctx, db, id)
		})
}

func (s *GuildService) loadBridge(ctx context.Context, db bun.IDB, id uuid.UUID) (bridgeResult, error) {
	bridge, err := s.repo.GetBridge(ctx, db, id)
	if err != nil {
		if errors.Is(err, guilddb.ErrNotFound) {
			return results.FailureResult[*guilddb.Bridge, error](ErrBridgeNotFound), nil
		}
		return bridgeResult{}, err
	}
	return results.SuccessResult[*guilddb.Bridge, error](bridge), nil
}

// ListBridges returns every bridge touching channel on either side.
func (s *GuildService) ListBridges(ctx context.Context, channel string) ([]*guilddb.Bridge, error) {
	return operation.Run(s.runner, ctx, "ListBridges", channel,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]*guilddb.Bridge, error], error) {
			if err := guilddomain.ValidateSnowflake("channel", channel); err != nil {
				return results.FailureResult[[]*guilddb.Bridge, error](err), nil
			}
			bridges, err := s.repo.ListBridges(ctx, db, channel)
			if err != nil {
				return results.OperationResult[[]*guilddb.Bridge, error]{}, err
			}
			if bridges == nil {
				bridges = []*guilddb.Bridge{}
			}
			return results.SuccessResult[[]*guilddb.Bridge, error](bridges), nil
		})
}

// SetBridgeStatus moves a bridge to any known status.
func (s *GuildService) SetBridgeStatus(ctx context.Context, id uuid.UUID, status guilddomain.BridgeStatus) (*guilddb.Bridge, error) {
	return operation.Run(s.runner, ctx, "SetBridgeStatus", id.String(),
		func(ctx context.Context, db bun.IDB) (bridgeResult, error) {
			if !status.IsValid() {
				return results.FailureResult[*guilddb.Bridge, error](domain.Invalidf("status", "unknown bridge status %q", status)), nil
			}
			if err := s.repo.SetBridgeStatus(ctx, db, id, status); err != nil {
				if errors.Is(err, guilddb.ErrNoRowsAffected) {
					return results.FailureResult[*guilddb.Bridge, error](ErrBridgeNotFound), nil
				}
				return bridgeResult{}, err
			}
			return s.loadBridge(ctx, db, id)
		})
}

func (s *GuildService) DeleteBridge(ctx context.Context, id uuid.UUID) error {
	_, err := operation.Run(s.runner, ctx, "DeleteBridge", id.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
			return deleted(s.repo.DeleteBridge(ctx, db, id), ErrBridgeNotFound)
		})
	return err
}
