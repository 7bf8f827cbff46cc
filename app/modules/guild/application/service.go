package guildservice

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	guilddomain "github.com/tripsit/tripsit-api/app/modules/guild/domain"
	guilddb "github.com/tripsit/tripsit-api/app/modules/guild/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/db/bundb"
	"github.com/tripsit/tripsit-api/internal/feeds"
	"github.com/tripsit/tripsit-api/internal/observability/metrics"
	"github.com/tripsit/tripsit-api/internal/operation"
	"github.com/tripsit/tripsit-api/internal/results"
	"github.com/tripsit/tripsit-api/internal/sanitize"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "GuildService"

// FeedSource reports the newest item of a feed.
type FeedSource interface {
	Latest(ctx context.Context, url string) (*feeds.Summary, error)
}

// GuildService implements Service.
type GuildService struct {
	repo   guilddb.Repository
	feeds  FeedSource
	logger *slog.Logger
	runner *operation.Runner
	now    func() time.Time
}

func NewGuildService(
	repo guilddb.Repository,
	feedSource FeedSource,
	logger *slog.Logger,
	m metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *GuildService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GuildService{
		repo:   repo,
		feeds:  feedSource,
		logger: logger,
		runner: operation.NewRunner(serviceName, logger, m, tracer, db),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

type guildResult = results.OperationResult[*guilddb.Guild, error]

// firstInvalid returns the first non-nil validation error.
func firstInvalid(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func optionalSnowflake(field string, id *string) error {
	if id == nil {
		return nil
	}
	return guilddomain.ValidateSnowflake(field, *id)
}

// guildFailure maps a foreign key violation to the missing parent. Other
// errors map to nil.
func guildFailure(err error) error {
	constraint, ok := bundb.ForeignKeyViolation(err)
	if !ok {
		return nil
	}
	if strings.Contains(constraint, "user_id") {
		return ErrAppealUserNotFound
	}
	return ErrGuildNotFound
}

func deleted(err error, notFound error) (results.OperationResult[struct{}, error], error) {
	if err != nil {
		if errors.Is(err, guilddb.ErrNoRowsAffected) {
			return results.FailureResult[struct{}, error](notFound), nil
		}
		return results.OperationResult[struct{}, error]{}, err
	}
	return results.SuccessResult[struct{}, error](struct{}{}), nil
}

// UpsertGuild registers a guild the bots joined, or overwrites its settings.
func (s *GuildService) UpsertGuild(ctx context.Context, in UpsertGuildInput) (*guilddb.Guild, error) {
	return operation.Run(s.runner, ctx, "UpsertGuild", in.ID,
		func(ctx context.Context, db bun.IDB) (guildResult, error) {
			if err := firstInvalid(
				guilddomain.ValidateSnowflake("id", in.ID),
				optionalSnowflake("coopModRoomId", in.CoopModRoomID),
				optionalSnowflake("modRoomId", in.ModRoomID),
				optionalSnowflake("modLogRoomId", in.ModLogRoomID),
				optionalSnowflake("modHelpdeskRoomId", in.ModHelpdeskRoomID),
				optionalSnowflake("modRoleId", in.ModRoleID),
				optionalSnowflake("teamRoleId", in.TeamRoleID),
			); err != nil {
				return results.FailureResult[*guilddb.Guild, error](err), nil
			}

			guild := &guilddb.Guild{
				ID:                in.ID,
				DiscordBotBan:     in.DiscordBotBan,
				Partner:           in.Partner,
				Supporter:         in.Supporter,
				CoopModRoomID:     in.CoopModRoomID,
				ModRoomID:         in.ModRoomID,
				ModLogRoomID:      in.ModLogRoomID,
				ModHelpdeskRoomID: in.ModHelpdeskRoomID,
				ModRoleID:         in.ModRoleID,
				TeamRoleID:        in.TeamRoleID,
			}
			if err := s.repo.UpsertGuild(ctx, db, guild); err != nil {
				return guildResult{}, err
			}
			return results.SuccessResult[*guilddb.Guild, error](guild), nil
		})
}

func (s *GuildService) GetGuild(ctx context.Context, id string) (*guilddb.Guild, error) {
	return operation.Run(s.runner, ctx, "GetGuild", id,
		func(ctx context.Context, db bun.IDB) (guildResult, error) {
			return s.loadGuild(ctx, db, id)
		})
}

func (s *GuildService) loadGuild(ctx context.Context, db bun.IDB, id string) (guildResult, error) {
	guild, err := s.repo.GetGuild(ctx, db, id)
	if err != nil {
		if errors.Is(err, guilddb.ErrNotFound) {
			return results.FailureResult[*guilddb.Guild, error](ErrGuildNotFound), nil
		}
		return guildResult{}, err
	}
	return results.SuccessResult[*guilddb.Guild, error](guild), nil
}

// UpdateGuild applies the set fields. An empty update returns the guild as is.
func (s *GuildService) UpdateGuild(ctx context.Context, id string, in GuildUpdate) (*guilddb.Guild, error) {
	return operation.Run(s.runner, ctx, "UpdateGuild", id,
		func(ctx context.Context, db bun.IDB) (guildResult, error) {
			if err := firstInvalid(
				optionalSnowflake("coopModRoomId", in.CoopModRoomID),
				optionalSnowflake("modRoomId", in.ModRoomID),
				optionalSnowflake("modLogRoomId", in.ModLogRoomID),
				optionalSnowflake("modHelpdeskRoomId", in.ModHelpdeskRoomID),
				optionalSnowflake("modRoleId", in.ModRoleID),
				optionalSnowflake("teamRoleId", in.TeamRoleID),
			); err != nil {
				return results.FailureResult[*guilddb.Guild, error](err), nil
			}

			updates := &guilddb.GuildUpdateFields{
				DiscordBotBan:     in.DiscordBotBan,
				Partner:           in.Partner,
				Supporter:         in.Supporter,
				CoopModRoomID:     in.CoopModRoomID,
				ModRoomID:         in.ModRoomID,
				ModLogRoomID:      in.ModLogRoomID,
				ModHelpdeskRoomID: in.ModHelpdeskRoomID,
				ModRoleID:         in.ModRoleID,
				TeamRoleID:        in.TeamRoleID,
			}
			if !updates.IsEmpty() {
				if err := s.repo.UpdateGuild(ctx, db, id, updates); err != nil {
					if errors.Is(err, guilddb.ErrNoRowsAffected) {
						return results.FailureResult[*guilddb.Guild, error](ErrGuildNotFound), nil
					}
					return guildResult{}, err
				}
			}
			return s.loadGuild(ctx, db, id)
		})
}

func (s *GuildService) ListGuilds(ctx context.Context) ([]*guilddb.Guild, error) {
	return operation.Run(s.runner, ctx, "ListGuilds", "",
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]*guilddb.Guild, error], error) {
			guilds, err := s.repo.ListGuilds(ctx, db)
			if err != nil {
				return results.OperationResult[[]*guilddb.Guild, error]{}, err
			}
			if guilds == nil {
				guilds = []*guilddb.Guild{}
			}
			return results.SuccessResult[[]*guilddb.Guild, error](guilds), nil
		})
}

func (s *GuildService) CreateReactionRole(ctx context.Context, in CreateReactionRoleInput) (*guilddb.ReactionRole, error) {
	return operation.Run(s.runner, ctx, "CreateReactionRole", in.GuildID,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[*guilddb.ReactionRole, error], error) {
			if err := firstInvalid(
				guilddomain.ValidateSnowflake("guildId", in.GuildID),
				guilddomain.ValidateSnowflake("channelId", in.ChannelID),
				guilddomain.ValidateSnowflake("messageId", in.MessageID),
				guilddomain.ValidateSnowflake("roleId", in.RoleID),
			); err != nil {
				return results.FailureResult[*guilddb.ReactionRole, error](err), nil
			}

			role := &guilddb.ReactionRole{
				GuildID:    in.GuildID,
				Name:       sanitize.Plain(in.Name),
				ChannelID:  in.ChannelID,
				MessageID:  in.MessageID,
				ReactionID: strings.TrimSpace(in.ReactionID),
				RoleID:     in.RoleID,
			}
			if err := s.repo.CreateReactionRole(ctx, db, role); err != nil {
				if failure := guildFailure(err); failure != nil {
					return results.FailureResult[*guilddb.ReactionRole, error](failure), nil
				}
				return results.OperationResult[*guilddb.ReactionRole, error]{}, err
			}
			return results.SuccessResult[*guilddb.ReactionRole, error](role), nil
		})
}

// ListReactionRoles fails with ErrGuildNotFound for an unknown guild.
func (s *GuildService) ListReactionRoles(ctx context.Context, guildID string) ([]*guilddb.ReactionRole, error) {
	return operation.Run(s.runner, ctx, "ListReactionRoles", guildID,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]*guilddb.ReactionRole, error], error) {
			failure, err := s.requireGuild(ctx, db, guildID)
			if err != nil {
				return results.OperationResult[[]*guilddb.ReactionRole, error]{}, err
			}
			if failure != nil {
				return results.FailureResult[[]*guilddb.ReactionRole, error](failure), nil
			}
			roles, err := s.repo.ListReactionRoles(ctx, db, guildID)
			if err != nil {
				return results.OperationResult[[]*guilddb.ReactionRole, error]{}, err
			}
			if roles == nil {
				roles = []*guilddb.ReactionRole{}
			}
			return results.SuccessResult[[]*guilddb.ReactionRole, error](roles), nil
		})
}

func (s *GuildService) DeleteReactionRole(ctx context.Context, id uuid.UUID) error {
	_, err := operation.Run(s.runner, ctx, "DeleteReactionRole", id.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
			return deleted(s.repo.DeleteReactionRole(ctx, db, id), ErrReactionRoleNotFound)
		})
	return err
}

// requireGuild returns ErrGuildNotFound as a failure when the guild is missing.
func (s *GuildService) requireGuild(ctx context.Context, db bun.IDB, guildID string) (failure error, err error) {
	ok, err := s.repo.GuildExists(ctx, db, guildID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return ErrGuildNotFound, nil
	}
	return nil, nil
}
