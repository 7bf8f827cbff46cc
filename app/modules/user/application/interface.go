package userservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	userdomain "github.com/tripsit/tripsit-api/app/modules/user/domain"
	userdb "github.com/tripsit/tripsit-api/app/modules/user/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/discord"
)

// Service is the identity and moderation API.
type Service interface {
	CreateUser(ctx context.Context, in CreateUserInput) (*userdb.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*userdb.User, error)
	FindUsers(ctx context.Context, filter userdb.UserFilter) ([]*userdb.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, in UserUpdate) (*userdb.User, error)
	GetDiscordProfile(ctx context.Context, id uuid.UUID) (*discord.Profile, error)

	CreateUserAction(ctx context.Context, in CreateActionInput) (*userdb.UserAction, error)
	GetUserAction(ctx context.Context, id uuid.UUID) (*userdb.UserAction, error)
	ListUserActions(ctx context.Context, userID uuid.UUID, includeRepealed bool) ([]*userdb.UserAction, error)
	UpdateUserAction(ctx context.Context, id uuid.UUID, in ActionUpdate) (*userdb.UserAction, error)
	RepealUserAction(ctx context.Context, id, repealedBy uuid.UUID) (*userdb.UserAction, error)
	DeleteUserAction(ctx context.Context, id uuid.UUID) error

	CreateUserTicket(ctx context.Context, in CreateTicketInput) (*userdb.UserTicket, error)
	GetUserTicket(ctx context.Context, id uuid.UUID) (*userdb.UserTicket, error)
	ListUserTickets(ctx context.Context, userID uuid.UUID) ([]*userdb.UserTicket, error)
	UpdateUserTicket(ctx context.Context, id uuid.UUID, in TicketUpdate) (*userdb.UserTicket, error)
	DeleteUserTicket(ctx context.Context, id uuid.UUID) error

	CreateUserExperience(ctx context.Context, in CreateExperienceInput) (*userdb.UserExperience, error)
	ListUserExperience(ctx context.Context, userID uuid.UUID) ([]*userdb.UserExperience, error)
	UpdateUserExperience(ctx context.Context, id uuid.UUID, in ExperienceUpdate) (*userdb.UserExperience, error)
}

// ProfileLookup resolves a Discord id to public profile fields.
type ProfileLookup interface {
	LookupUser(ctx context.Context, discordID string) (*discord.Profile, error)
}

type CreateUserInput struct {
	Email          *string    `json:"email" validate:"omitempty,email"`
	Username       *string    `json:"username" validate:"omitempty,min=1,max=100"`
	DisplayName    *string    `json:"displayName" validate:"omitempty,max=100"`
	Password       *string    `json:"password" validate:"omitempty,min=8,max=72"`
	DiscordID      *string    `json:"discordId" validate:"omitempty,numeric"`
	IRCID          *string    `json:"ircId"`
	MatrixID       *string    `json:"matrixId"`
	LastFMUsername *string    `json:"lastfmUsername"`
	Timezone       *string    `json:"timezone"`
	Birthday       *time.Time `json:"birthday"`
}

// UserUpdate is a partial update; nil fields are left unchanged.
type UserUpdate struct {
	Email          *string    `json:"email" validate:"omitempty,email"`
	Username       *string    `json:"username" validate:"omitempty,min=1,max=100"`
	DisplayName    *string    `json:"displayName" validate:"omitempty,max=100"`
	Password       *string    `json:"password" validate:"omitempty,min=8,max=72"`
	DiscordID      *string    `json:"discordId" validate:"omitempty,numeric"`
	IRCID          *string    `json:"ircId"`
	MatrixID       *string    `json:"matrixId"`
	LastFMUsername *string    `json:"lastfmUsername"`
	ModThreadID    *string    `json:"modThreadId"`
	Timezone       *string    `json:"timezone"`
	Birthday       *time.Time `json:"birthday"`
	KarmaGiven     *int       `json:"karmaGiven"`
	KarmaReceived  *int       `json:"karmaReceived"`
	SparklePoints  *int       `json:"sparklePoints"`
	DiscordBotBan  *bool      `json:"discordBotBan"`
	TicketBan      *bool      `json:"ticketBan"`
	Partner        *bool      `json:"partner"`
	Supporter      *bool      `json:"supporter"`
	LastSeen       *time.Time `json:"lastSeen"`
}

type CreateActionInput struct {
	UserID                uuid.UUID             `json:"userId" validate:"required"`
	Type                  userdomain.ActionType `json:"type" validate:"required"`
	BanEvasionRelatedUser *uuid.UUID            `json:"banEvasionRelatedUser"`
	Description           string                `json:"description" validate:"required"`
	InternalNote          string                `json:"internalNote" validate:"required"`
	ExpiresAt             *time.Time            `json:"expiresAt"`
	CreatedBy             uuid.UUID             `json:"-"`
}

type ActionUpdate struct {
	Description  *string    `json:"description" validate:"omitempty,min=1"`
	InternalNote *string    `json:"internalNote" validate:"omitempty,min=1"`
	ExpiresAt    *time.Time `json:"expiresAt"`
}

type CreateTicketInput struct {
	UserID         uuid.UUID              `json:"userId" validate:"required"`
	Description    string                 `json:"description" validate:"required"`
	Type           *userdomain.TicketType `json:"type"`
	ThreadID       string                 `json:"threadId" validate:"required"`
	FirstMessageID string                 `json:"firstMessageId" validate:"required"`
}

// TicketUpdate changes a ticket. ActorID is recorded as closer or reopener
// when the status crosses between open and closed states.
type TicketUpdate struct {
	Description    *string                  `json:"description"`
	Type           *userdomain.TicketType   `json:"type"`
	Status         *userdomain.TicketStatus `json:"status"`
	ThreadID       *string                  `json:"threadId"`
	FirstMessageID *string                  `json:"firstMessageId"`
	ArchivedAt     *time.Time               `json:"archivedAt"`
	ActorID        *uuid.UUID               `json:"-"`
}

type CreateExperienceInput struct {
	UserID             uuid.UUID                 `json:"userId" validate:"required"`
	Type               userdomain.ExperienceType `json:"type" validate:"required"`
	Level              int                       `json:"level" validate:"gte=0"`
	LevelPoints        int                       `json:"levelPoints" validate:"gte=0"`
	TotalPoints        int                       `json:"totalPoints" validate:"gte=0"`
	LastMessageAt      *time.Time                `json:"lastMessageAt"`
	LastMessageChannel string                    `json:"lastMessageChannel" validate:"required"`
	Mee6Converted      bool                      `json:"mee6Converted"`
}

type ExperienceUpdate struct {
	Level              *int       `json:"level" validate:"omitempty,gte=0"`
	LevelPoints        *int       `json:"levelPoints" validate:"omitempty,gte=0"`
	TotalPoints        *int       `json:"totalPoints" validate:"omitempty,gte=0"`
	LastMessageAt      *time.Time `json:"lastMessageAt"`
	LastMessageChannel *string    `json:"lastMessageChannel"`
	Mee6Converted      *bool      `json:"mee6Converted"`
}
