package userdb

import (
	"time"

	"github.com/google/uuid"
	userdomain "github.com/tripsit/tripsit-api/app/modules/user/domain"
	"github.com/uptrace/bun"
)

// User is the identity aggregate. Every external identifier is independently
// unique when present.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID             uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Email          *string    `bun:"email" json:"email,omitempty"`
	Username       *string    `bun:"username" json:"username,omitempty"`
	DisplayName    *string    `bun:"display_name" json:"displayName,omitempty"`
	PasswordHash   *string    `bun:"password_hash" json:"-"`
	DiscordID      *string    `bun:"discord_id" json:"discordId,omitempty"`
	IRCID          *string    `bun:"irc_id" json:"ircId,omitempty"`
	MatrixID       *string    `bun:"matrix_id" json:"matrixId,omitempty"`
	LastFMUsername *string    `bun:"lastfm_username" json:"lastfmUsername,omitempty"`
	ModThreadID    *string    `bun:"mod_thread_id" json:"modThreadId,omitempty"`
	Timezone       *string    `bun:"timezone" json:"timezone,omitempty"`
	Birthday       *time.Time `bun:"birthday" json:"birthday,omitempty"`
	KarmaGiven     int        `bun:"karma_given,notnull" json:"karmaGiven"`
	KarmaReceived  int        `bun:"karma_received,notnull" json:"karmaReceived"`
	SparklePoints  int        `bun:"sparkle_points,notnull" json:"sparklePoints"`
	DiscordBotBan  bool       `bun:"discord_bot_ban,notnull" json:"discordBotBan"`
	TicketBan      bool       `bun:"ticket_ban,notnull" json:"ticketBan"`
	Partner        bool       `bun:"partner,notnull" json:"partner"`
	Supporter      bool       `bun:"supporter,notnull" json:"supporter"`
	LastSeen       time.Time  `bun:"last_seen,notnull,default:current_timestamp" json:"lastSeen"`
	JoinedAt       time.Time  `bun:"joined_at,notnull,default:current_timestamp" json:"joinedAt"`
}

// UserAction is one moderation log entry against a user.
type UserAction struct {
	bun.BaseModel `bun:"table:user_actions,alias:ua"`

	ID                    uuid.UUID             `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserID                uuid.UUID             `bun:"user_id,type:uuid,notnull" json:"userId"`
	Type                  userdomain.ActionType `bun:"type,notnull" json:"type"`
	BanEvasionRelatedUser *uuid.UUID            `bun:"ban_evasion_related_user,type:uuid" json:"banEvasionRelatedUser,omitempty"`
	Description           string                `bun:"description,notnull" json:"description"`
	InternalNote          string                `bun:"internal_note,notnull" json:"internalNote"`
	ExpiresAt             *time.Time            `bun:"expires_at" json:"expiresAt,omitempty"`
	RepealedBy            *uuid.UUID            `bun:"repealed_by,type:uuid" json:"repealedBy,omitempty"`
	RepealedAt            *time.Time            `bun:"repealed_at" json:"repealedAt,omitempty"`
	CreatedBy             uuid.UUID             `bun:"created_by,type:uuid,notnull" json:"createdBy"`
	CreatedAt             time.Time             `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
}

// IsRepealed reports whether the action has been repealed.
func (a *UserAction) IsRepealed() bool {
	return a.RepealedAt != nil
}

// UserTicket is a support ticket backed by a chat thread.
type UserTicket struct {
	bun.BaseModel `bun:"table:user_tickets,alias:ut"`

	ID             uuid.UUID               `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID               `bun:"user_id,type:uuid,notnull" json:"userId"`
	Description    string                  `bun:"description,notnull" json:"description"`
	Type           *userdomain.TicketType  `bun:"type" json:"type,omitempty"`
	Status         userdomain.TicketStatus `bun:"status,notnull,default:'OPEN'" json:"status"`
	ThreadID       string                  `bun:"thread_id,notnull" json:"threadId"`
	FirstMessageID string                  `bun:"first_message_id,notnull" json:"firstMessageId"`
	ClosedBy       *uuid.UUID              `bun:"closed_by,type:uuid" json:"closedBy,omitempty"`
	ClosedAt       *time.Time              `bun:"closed_at" json:"closedAt,omitempty"`
	ReopenedBy     *uuid.UUID              `bun:"reopened_by,type:uuid" json:"reopenedBy,omitempty"`
	ReopenedAt     *time.Time              `bun:"reopened_at" json:"reopenedAt,omitempty"`
	ArchivedAt     *time.Time              `bun:"archived_at" json:"archivedAt,omitempty"`
	CreatedAt      time.Time               `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
}

// UserExperience is a per-user, per-type leveling record.
type UserExperience struct {
	bun.BaseModel `bun:"table:user_experience,alias:ux"`

	ID                 uuid.UUID                 `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserID             uuid.UUID                 `bun:"user_id,type:uuid,notnull" json:"userId"`
	Type               userdomain.ExperienceType `bun:"type,notnull" json:"type"`
	Level              int                       `bun:"level,notnull" json:"level"`
	LevelPoints        int                       `bun:"level_points,notnull" json:"levelPoints"`
	TotalPoints        int                       `bun:"total_points,notnull" json:"totalPoints"`
	LastMessageAt      time.Time                 `bun:"last_message_at,notnull,default:current_timestamp" json:"lastMessageAt"`
	LastMessageChannel string                    `bun:"last_message_channel,notnull" json:"lastMessageChannel"`
	Mee6Converted      bool                      `bun:"mee6_converted,notnull" json:"mee6Converted"`
	CreatedAt          time.Time                 `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
}
