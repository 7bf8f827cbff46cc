package guilddb

import (
	"context"
	"time"

	"github.com/google/uuid"
	guilddomain "github.com/tripsit/tripsit-api/app/modules/guild/domain"
	"github.com/uptrace/bun"
)

// Repository persists guilds and the registries scoped to them.
//
// Error semantics:
//   - ErrNotFound: keyed lookup found nothing
//   - ErrNoRowsAffected: UPDATE/DELETE matched no rows
//   - Other errors: infrastructure failures and constraint violations, wrapped
type Repository interface {
	// UpsertGuild inserts the guild or overwrites every column but joined_at.
	UpsertGuild(ctx context.Context, db bun.IDB, guild *Guild) error
	GetGuild(ctx context.Context, db bun.IDB, id string) (*Guild, error)
	GuildExists(ctx context.Context, db bun.IDB, id string) (bool, error)
	ListGuilds(ctx context.Context, db bun.IDB) ([]*Guild, error)
	UpdateGuild(ctx context.Context, db bun.IDB, id string, updates *GuildUpdateFields) error

	CreateReactionRole(ctx context.Context, db bun.IDB, role *ReactionRole) error
	ListReactionRoles(ctx context.Context, db bun.IDB, guildID string) ([]*ReactionRole, error)
	DeleteReactionRole(ctx context.Context, db bun.IDB, id uuid.UUID) error

	CreateGuildRss(ctx context.Context, db bun.IDB, rss *GuildRss) error
	GetGuildRss(ctx context.Context, db bun.IDB, id uuid.UUID) (*GuildRss, error)
	ListGuildRss(ctx context.Context, db bun.IDB, guildID string) ([]*GuildRss, error)
	UpdateLastPostID(ctx context.Context, db bun.IDB, id uuid.UUID, lastPostID string) error
	DeleteGuildRss(ctx context.Context, db bun.IDB, id uuid.UUID) error

	CreateBridge(ctx context.Context, db bun.IDB, bridge *Bridge) error
	GetBridge(ctx context.Context, db bun.IDB, id uuid.UUID) (*Bridge, error)
	// ListBridges returns bridges with channel on either side.
	ListBridges(ctx context.Context, db bun.IDB, channel string) ([]*Bridge, error)
	SetBridgeStatus(ctx context.Context, db bun.IDB, id uuid.UUID, status guilddomain.BridgeStatus) error
	DeleteBridge(ctx context.Context, db bun.IDB, id uuid.UUID) error

	CreateAppeal(ctx context.Context, db bun.IDB, appeal *Appeal) error
	GetAppeal(ctx context.Context, db bun.IDB, id uuid.UUID) (*Appeal, error)
	GetAppealForUpdate(ctx context.Context, db bun.IDB, id uuid.UUID) (*Appeal, error)
	ListAppeals(ctx context.Context, db bun.IDB, filter AppealFilter) ([]*Appeal, error)
	MarkAppealReminded(ctx context.Context, db bun.IDB, id uuid.UUID, at time.Time) error
	DecideAppeal(ctx context.Context, db bun.IDB, id uuid.UUID, status guilddomain.AppealStatus, at time.Time) error
}
