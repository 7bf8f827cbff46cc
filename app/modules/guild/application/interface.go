package guildservice

import (
	"context"

	"github.com/google/uuid"
	guilddomain "github.com/tripsit/tripsit-api/app/modules/guild/domain"
	guilddb "github.com/tripsit/tripsit-api/app/modules/guild/infrastructure/repositories"
)

// Service manages Discord guilds and the registries hanging off them.
type Service interface {
	UpsertGuild(ctx context.Context, in UpsertGuildInput) (*guilddb.Guild, error)
	GetGuild(ctx context.Context, id string) (*guilddb.Guild, error)
	UpdateGuild(ctx context.Context, id string, in GuildUpdate) (*guilddb.Guild, error)
	ListGuilds(ctx context.Context) ([]*guilddb.Guild, error)

	CreateReactionRole(ctx context.Context, in CreateReactionRoleInput) (*guilddb.ReactionRole, error)
	ListReactionRoles(ctx context.Context, guildID string) ([]*guilddb.ReactionRole, error)
	DeleteReactionRole(ctx context.Context, id uuid.UUID) error

	CreateGuildRss(ctx context.Context, in CreateGuildRssInput) (*guilddb.GuildRss, error)
	ListGuildRss(ctx context.Context, guildID string) ([]*guilddb.GuildRss, error)
	RefreshGuildRss(ctx context.Context, id uuid.UUID) (*guilddb.GuildRss, error)
	DeleteGuildRss(ctx context.Context, id uuid.UUID) error

	CreateBridge(ctx context.Context, in CreateBridgeInput) (*guilddb.Bridge, error)
	GetBridge(ctx context.Context, id uuid.UUID) (*guilddb.Bridge, error)
	ListBridges(ctx context.Context, channel string) ([]*guilddb.Bridge, error)
	SetBridgeStatus(ctx context.Context, id uuid.UUID, status guilddomain.BridgeStatus) (*guilddb.Bridge, error)
	DeleteBridge(ctx context.Context, id uuid.UUID) error

	CreateAppeal(ctx context.Context, in CreateAppealInput) (*guilddb.Appeal, error)
	GetAppeal(ctx context.Context, id uuid.UUID) (*guilddb.Appeal, error)
	ListAppeals(ctx context.Context, filter guilddb.AppealFilter) ([]*guilddb.Appeal, error)
	MarkAppealReminded(ctx context.Context, id uuid.UUID) (*guilddb.Appeal, error)
	DecideAppeal(ctx context.Context, id uuid.UUID, status guilddomain.AppealStatus) (*guilddb.Appeal, error)
}

// UpsertGuildInput registers a guild or overwrites its settings.
type UpsertGuildInput struct {
	ID                string  `json:"id" validate:"required,numeric,max=20"`
	DiscordBotBan     bool    `json:"discordBotBan"`
	Partner           bool    `json:"partner"`
	Supporter         bool    `json:"supporter"`
	CoopModRoomID     *string `json:"coopModRoomId" validate:"omitempty,numeric,max=20"`
	ModRoomID         *string `json:"modRoomId" validate:"omitempty,numeric,max=20"`
	ModLogRoomID      *string `json:"modLogRoomId" validate:"omitempty,numeric,max=20"`
	ModHelpdeskRoomID *string `json:"modHelpdeskRoomId" validate:"omitempty,numeric,max=20"`
	ModRoleID         *string `json:"modRoleId" validate:"omitempty,numeric,max=20"`
	TeamRoleID        *string `json:"teamRoleId" validate:"omitempty,numeric,max=20"`
}

type GuildUpdate struct {
	DiscordBotBan     *bool   `json:"discordBotBan"`
	Partner           *bool   `json:"partner"`
	Supporter         *bool   `json:"supporter"`
	CoopModRoomID     *string `json:"coopModRoomId" validate:"omitempty,numeric,max=20"`
	ModRoomID         *string `json:"modRoomId" validate:"omitempty,numeric,max=20"`
	ModLogRoomID      *string `json:"modLogRoomId" validate:"omitempty,numeric,max=20"`
	ModHelpdeskRoomID *string `json:"modHelpdeskRoomId" validate:"omitempty,numeric,max=20"`
	ModRoleID         *string `json:"modRoleId" validate:"omitempty,numeric,max=20"`
	TeamRoleID        *string `json:"teamRoleId" validate:"omitempty,numeric,max=20"`
}

type CreateReactionRoleInput struct {
	GuildID    string `json:"guildId" validate:"required"`
	Name       string `json:"name" validate:"required,max=100"`
	ChannelID  string `json:"channelId" validate:"required"`
	MessageID  string `json:"messageId" validate:"required"`
	ReactionID string `json:"reactionId" validate:"required,max=100"`
	RoleID     string `json:"roleId" validate:"required"`
}

type CreateGuildRssInput struct {
	GuildID     string `json:"guildId" validate:"required"`
	URL         string `json:"url" validate:"required,url,max=2048"`
	Destination string `json:"destination" validate:"required"`
}

type CreateBridgeInput struct {
	InternalChannel string                   `json:"internalChannel" validate:"required"`
	InternalWebhook string                   `json:"internalWebhook" validate:"required,url"`
	Status          guilddomain.BridgeStatus `json:"status"`
	ExternalGuild   string                   `json:"externalGuild" validate:"required"`
	ExternalChannel string                   `json:"externalChannel" validate:"required"`
	ExternalWebhook *string                  `json:"externalWebhook" validate:"omitempty,url"`
}

type CreateAppealInput struct {
	GuildID  string    `json:"guildId" validate:"required"`
	UserID   uuid.UUID `json:"userId" validate:"required"`
	Reason   string    `json:"reason" validate:"required,max=2000"`
	Solution string    `json:"solution" validate:"required,max=2000"`
	Future   string    `json:"future" validate:"required,max=2000"`
	Extra    *string   `json:"extra" validate:"omitempty,max=2000"`
}
