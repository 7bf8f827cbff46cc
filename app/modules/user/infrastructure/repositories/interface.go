package userdb

import (
	"context"
	"time"

	"github.com/google/uuid"
	userdomain "github.com/tripsit/tripsit-api/app/modules/user/domain"
	"github.com/uptrace/bun"
)

// UserFilter narrows FindUsers. Set identity fields are ANDed together; with
// none set the filter pages through every user.
type UserFilter struct {
	Email          *string
	Username       *string
	DiscordID      *string
	IRCID          *string
	MatrixID       *string
	LastFMUsername *string
	Offset         int
	Limit          int
}

// UserUpdateFields holds a partial user update. Nil means "leave unchanged".
// An empty identity (Email, Username, DiscordID, IRCID, MatrixID,
// LastFMUsername) clears the column to NULL.
type UserUpdateFields struct {
	Email          *string
	Username       *string
	DisplayName    *string
	PasswordHash   *string
	DiscordID      *string
	IRCID          *string
	MatrixID       *string
	LastFMUsername *string
	ModThreadID    *string
	Timezone       *string
	Birthday       *time.Time
	KarmaGiven     *int
	KarmaReceived  *int
	SparklePoints  *int
	DiscordBotBan  *bool
	TicketBan      *bool
	Partner        *bool
	Supporter      *bool
	LastSeen       *time.Time
}

// IsEmpty reports whether no field is set.
func (u *UserUpdateFields) IsEmpty() bool {
	if u == nil {
		return true
	}
	return u.Email == nil && u.Username == nil && u.DisplayName == nil && u.PasswordHash == nil &&
		u.DiscordID == nil && u.IRCID == nil && u.MatrixID == nil && u.LastFMUsername == nil &&
		u.ModThreadID == nil && u.Timezone == nil && u.Birthday == nil &&
		u.KarmaGiven == nil && u.KarmaReceived == nil && u.SparklePoints == nil &&
		u.DiscordBotBan == nil && u.TicketBan == nil && u.Partner == nil && u.Supporter == nil &&
		u.LastSeen == nil
}

// ActionUpdateFields holds the editable parts of a moderation action.
type ActionUpdateFields struct {
	Description  *string
	InternalNote *string
	ExpiresAt    *time.Time
}

func (u *ActionUpdateFields) IsEmpty() bool {
	return u == nil || (u.Description == nil && u.InternalNote == nil && u.ExpiresAt == nil)
}

// TicketUpdateFields holds a partial ticket update. ClearClosed nulls
// closed_by/closed_at when a ticket is reopened.
type TicketUpdateFields struct {
	Description    *string
	Type           *userdomain.TicketType
	Status         *userdomain.TicketStatus
	ThreadID       *string
	FirstMessageID *string
	ClosedBy       *uuid.UUID
	ClosedAt       *time.Time
	ClearClosed    bool
	ReopenedBy     *uuid.UUID
	ReopenedAt     *time.Time
	ArchivedAt     *time.Time
}

func (u *TicketUpdateFields) IsEmpty() bool {
	if u == nil {
		return true
	}
	return u.Description == nil && u.Type == nil && u.Status == nil && u.ThreadID == nil &&
		u.FirstMessageID == nil && u.ClosedBy == nil && u.ClosedAt == nil && !u.ClearClosed &&
		u.ReopenedBy == nil && u.ReopenedAt == nil && u.ArchivedAt == nil
}

// ExperienceUpdateFields holds a partial leveling update.
type ExperienceUpdateFields struct {
	Level              *int
	LevelPoints        *int
	TotalPoints        *int
	LastMessageAt      *time.Time
	LastMessageChannel *string
	Mee6Converted      *bool
}

func (u *ExperienceUpdateFields) IsEmpty() bool {
	if u == nil {
		return true
	}
	return u.Level == nil && u.LevelPoints == nil && u.TotalPoints == nil &&
		u.LastMessageAt == nil && u.LastMessageChannel == nil && u.Mee6Converted == nil
}

// Repository defines persistence for users and their moderation records.
//
// Error semantics:
//   - ErrNotFound: Get* found no row
//   - ErrNoRowsAffected: UPDATE/DELETE matched no row
//   - other errors: infrastructure failures, including unique violations
//     which callers classify with bundb.UniqueViolation
type Repository interface {
	// Users
	CreateUser(ctx context.Context, db bun.IDB, user *User) error
	GetUser(ctx context.Context, db bun.IDB, id uuid.UUID) (*User, error)
	UserExists(ctx context.Context, db bun.IDB, id uuid.UUID) (bool, error)
	LockUser(ctx context.Context, db bun.IDB, id uuid.UUID) (*User, error)
	FindUsers(ctx context.Context, db bun.IDB, filter UserFilter) ([]*User, error)
	UpdateUser(ctx context.Context, db bun.IDB, id uuid.UUID, updates *UserUpdateFields) error

	// Moderation actions
	CreateAction(ctx context.Context, db bun.IDB, action *UserAction) error
	GetAction(ctx context.Context, db bun.IDB, id uuid.UUID) (*UserAction, error)
	GetActionForUpdate(ctx context.Context, db bun.IDB, id uuid.UUID) (*UserAction, error)
	ListActions(ctx context.Context, db bun.IDB, userID uuid.UUID, includeRepealed bool) ([]*UserAction, error)
	UpdateAction(ctx context.Context, db bun.IDB, id uuid.UUID, updates *ActionUpdateFields) error
	RepealAction(ctx context.Context, db bun.IDB, id, repealedBy uuid.UUID, at time.Time) error
	DeleteAction(ctx context.Context, db bun.IDB, id uuid.UUID) error

	// Tickets
	CreateTicket(ctx context.Context, db bun.IDB, ticket *UserTicket) error
	GetTicket(ctx context.Context, db bun.IDB, id uuid.UUID) (*UserTicket, error)
	ListTickets(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]*UserTicket, error)
	UpdateTicket(ctx context.Context, db bun.IDB, id uuid.UUID, updates *TicketUpdateFields) error
	DeleteTicket(ctx context.Context, db bun.IDB, id uuid.UUID) error

	// Experience
	CreateExperience(ctx context.Context, db bun.IDB, exp *UserExperience) error
	GetExperience(ctx context.Context, db bun.IDB, id uuid.UUID) (*UserExperience, error)
	ListExperience(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]*UserExperience, error)
	ExperienceTypesForUser(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]userdomain.ExperienceType, error)
	UpdateExperience(ctx context.Context, db bun.IDB, id uuid.UUID, updates *ExperienceUpdateFields) error
}
