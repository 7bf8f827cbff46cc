package guilddb

import (
	"time"

	"github.com/google/uuid"
	guilddomain "github.com/tripsit/tripsit-api/app/modules/guild/domain"
	"github.com/uptrace/bun"
)

// Guild is a Discord server the bots are in. Its id is the Discord snowflake.
type Guild struct {
	bun.BaseModel `bun:"table:discord_guilds,alias:g"`

	ID                string    `bun:"id,pk,type:varchar(20)" json:"id"`
	DiscordBotBan     bool      `bun:"discord_bot_ban,notnull" json:"discordBotBan"`
	Partner           bool      `bun:"partner,notnull" json:"partner"`
	Supporter         bool      `bun:"supporter,notnull" json:"supporter"`
	CoopModRoomID     *string   `bun:"coop_mod_room_id,type:varchar(20)" json:"coopModRoomId,omitempty"`
	ModRoomID         *string   `bun:"mod_room_id,type:varchar(20)" json:"modRoomId,omitempty"`
	ModLogRoomID      *string   `bun:"mod_log_room_id,type:varchar(20)" json:"modLogRoomId,omitempty"`
	ModHelpdeskRoomID *string   `bun:"mod_helpdesk_room_id,type:varchar(20)" json:"modHelpdeskRoomId,omitempty"`
	ModRoleID         *string   `bun:"mod_role_id,type:varchar(20)" json:"modRoleId,omitempty"`
	TeamRoleID        *string   `bun:"team_role_id,type:varchar(20)" json:"teamRoleId,omitempty"`
	JoinedAt          time.Time `bun:"joined_at,nullzero,notnull,default:current_timestamp" json:"joinedAt"`
	UpdatedAt         time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}

// GuildUpdateFields is a partial update. Nil fields are left alone.
type GuildUpdateFields struct {
	DiscordBotBan     *bool
	Partner           *bool
	Supporter         *bool
	CoopModRoomID     *string
	ModRoomID         *string
	ModLogRoomID      *string
	ModHelpdeskRoomID *string
	ModRoleID         *string
	TeamRoleID        *string
}

// IsEmpty reports whether any fields are set for update.
func (u *GuildUpdateFields) IsEmpty() bool {
	if u == nil {
		return true
	}
	return u.DiscordBotBan == nil &&
		u.Partner == nil &&
		u.Supporter == nil &&
		u.CoopModRoomID == nil &&
		u.ModRoomID == nil &&
		u.ModLogRoomID == nil &&
		u.ModHelpdeskRoomID == nil &&
		u.ModRoleID == nil &&
		u.TeamRoleID == nil
}

// ReactionRole grants RoleID to members reacting with ReactionID on a message.
type ReactionRole struct {
	bun.BaseModel `bun:"table:reaction_roles,alias:rr"`

	ID         uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	GuildID    string    `bun:"guild_id,notnull,type:varchar(20)" json:"guildId"`
	Name       string    `bun:"name,notnull" json:"name"`
	ChannelID  string    `bun:"channel_id,notnull,type:varchar(20)" json:"channelId"`
	MessageID  string    `bun:"message_id,notnull,type:varchar(20)" json:"messageId"`
	ReactionID string    `bun:"reaction_id,notnull" json:"reactionId"`
	RoleID     string    `bun:"role_id,notnull,type:varchar(20)" json:"roleId"`
	CreatedAt  time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
}

// GuildRss is a feed watched for a guild. LastPostID is the newest item seen.
type GuildRss struct {
	bun.BaseModel `bun:"table:guild_rss,alias:gr"`

	ID          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	GuildID     string    `bun:"guild_id,notnull,type:varchar(20)" json:"guildId"`
	URL         string    `bun:"url,notnull" json:"url"`
	LastPostID  string    `bun:"last_post_id,notnull" json:"lastPostId"`
	Destination string    `bun:"destination,notnull,type:varchar(20)" json:"destination"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
}

// Bridge relays one internal channel to one external channel.
type Bridge struct {
	bun.BaseModel `bun:"table:bridges,alias:b"`

	ID              uuid.UUID                `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	InternalChannel string                   `bun:"internal_channel,notnull,type:varchar(20)" json:"internalChannel"`
	InternalWebhook string                   `bun:"internal_webhook,notnull" json:"internalWebhook"`
	Status          guilddomain.BridgeStatus `bun:"status,notnull" json:"status"`
	ExternalGuild   string                   `bun:"external_guild,notnull,type:varchar(20)" json:"externalGuild"`
	ExternalChannel string                   `bun:"external_channel,notnull,type:varchar(20)" json:"externalChannel"`
	ExternalWebhook *string                  `bun:"external_webhook" json:"externalWebhook,omitempty"`
	CreatedAt       time.Time                `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
}

// Appeal is a banned user's request to a guild's moderators.
type Appeal struct {
	bun.BaseModel `bun:"table:appeals,alias:a"`

	ID         uuid.UUID                `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	GuildID    string                   `bun:"guild_id,notnull,type:varchar(20)" json:"guildId"`
	UserID     uuid.UUID                `bun:"user_id,notnull,type:uuid" json:"userId"`
	Reason     string                   `bun:"reason,notnull" json:"reason"`
	Solution   string                   `bun:"solution,notnull" json:"solution"`
	Future     string                   `bun:"future,notnull" json:"future"`
	Extra      *string                  `bun:"extra" json:"extra,omitempty"`
	Status     guilddomain.AppealStatus `bun:"status,notnull" json:"status"`
	CreatedAt  time.Time                `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	RemindedAt *time.Time               `bun:"reminded_at" json:"remindedAt,omitempty"`
	DecidedAt  *time.Time               `bun:"decided_at" json:"decidedAt,omitempty"`
}

// AppealFilter narrows ListAppeals to a guild and optionally one user.
type AppealFilter struct {
	GuildID string
	UserID  *uuid.UUID
}
