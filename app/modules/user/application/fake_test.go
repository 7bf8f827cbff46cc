package userservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	userdomain "github.com/tripsit/tripsit-api/app/modules/user/domain"
	userdb "github.com/tripsit/tripsit-api/app/modules/user/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/discord"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake User Repo
// ------------------------

type FakeUserRepo struct {
	trace []string

	CreateUserFunc             func(ctx context.Context, db bun.IDB, user *userdb.User) error
	GetUserFunc                func(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.User, error)
	UserExistsFunc             func(ctx context.Context, db bun.IDB, id uuid.UUID) (bool, error)
	LockUserFunc               func(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.User, error)
	FindUsersFunc              func(ctx context.Context, db bun.IDB, filter userdb.UserFilter) ([]*userdb.User, error)
	UpdateUserFunc             func(ctx context.Context, db bun.IDB, id uuid.UUID, updates *userdb.UserUpdateFields) error
	CreateActionFunc           func(ctx context.Context, db bun.IDB, action *userdb.UserAction) error
	GetActionFunc              func(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.UserAction, error)
	GetActionForUpdateFunc     func(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.UserAction, error)
	ListActionsFunc            func(ctx context.Context, db bun.IDB, userID uuid.UUID, includeRepealed bool) ([]*userdb.UserAction, error)
	UpdateActionFunc           func(ctx context.Context, db bun.IDB, id uuid.UUID, updates *userdb.ActionUpdateFields) error
	RepealActionFunc           func(ctx context.Context, db bun.IDB, id, repealedBy uuid.UUID, at time.Time) error
	DeleteActionFunc           func(ctx context.Context, db bun.IDB, id uuid.UUID) error
	CreateTicketFunc           func(ctx context.Context, db bun.IDB, ticket *userdb.UserTicket) error
	GetTicketFunc              func(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.UserTicket, error)
	ListTicketsFunc            func(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]*userdb.UserTicket, error)
	UpdateTicketFunc           func(ctx context.Context, db bun.IDB, id uuid.UUID, updates *userdb.TicketUpdateFields) error
	DeleteTicketFunc           func(ctx context.Context, db bun.IDB, id uuid.UUID) error
	CreateExperienceFunc       func(ctx context.Context, db bun.IDB, exp *userdb.UserExperience) error
	GetExperienceFunc          func(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.UserExperience, error)
	ListExperienceFunc         func(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]*userdb.UserExperience, error)
	ExperienceTypesForUserFunc func(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]userdomain.ExperienceType, error)
	UpdateExperienceFunc       func(ctx context.Context, db bun.IDB, id uuid.UUID, updates *userdb.ExperienceUpdateFields) error
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{trace: []string{}}
}

func (f *FakeUserRepo) record(step string) {
	f.trace = append(f.trace, step)
}

// --- Repository Interface Implementation ---

func (f *FakeUserRepo) CreateUser(ctx context.Context, db bun.IDB, user *userdb.User) error {
	f.record("CreateUser")
	if f.CreateUserFunc != nil {
		return f.CreateUserFunc(ctx, db, user)
	}
	return nil
}

func (f *FakeUserRepo) GetUser(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.User, error) {
	f.record("GetUser")
	if f.GetUserFunc != nil {
		return f.GetUserFunc(ctx, db, id)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserRepo) UserExists(ctx context.Context, db bun.IDB, id uuid.UUID) (bool, error) {
	f.record("UserExists")
	if f.UserExistsFunc != nil {
		return f.UserExistsFunc(ctx, db, id)
	}
	return false, nil
}

func (f *FakeUserRepo) LockUser(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.User, error) {
	f.record("LockUser")
	if f.LockUserFunc != nil {
		return f.LockUserFunc(ctx, db, id)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserRepo) FindUsers(ctx context.Context, db bun.IDB, filter userdb.UserFilter) ([]*userdb.User, error) {
	f.record("FindUsers")
	if f.FindUsersFunc != nil {
		return f.FindUsersFunc(ctx, db, filter)
	}
	return nil, nil
}

func (f *FakeUserRepo) UpdateUser(ctx context.Context, db bun.IDB, id uuid.UUID, updates *userdb.UserUpdateFields) error {
	f.record("UpdateUser")
	if f.UpdateUserFunc != nil {
		return f.UpdateUserFunc(ctx, db, id, updates)
	}
	return nil
}

func (f *FakeUserRepo) CreateAction(ctx context.Context, db bun.IDB, action *userdb.UserAction) error {
	f.record("CreateAction")
	if f.CreateActionFunc != nil {
		return f.CreateActionFunc(ctx, db, action)
	}
	return nil
}

func (f *FakeUserRepo) GetAction(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.UserAction, error) {
	f.record("GetAction")
	if f.GetActionFunc != nil {
		return f.GetActionFunc(ctx, db, id)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserRepo) GetActionForUpdate(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.UserAction, error) {
	f.record("GetActionForUpdate")
	if f.GetActionForUpdateFunc != nil {
		return f.GetActionForUpdateFunc(ctx, db, id)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserRepo) ListActions(ctx context.Context, db bun.IDB, userID uuid.UUID, includeRepealed bool) ([]*userdb.UserAction, error) {
	f.record("ListActions")
	if f.ListActionsFunc != nil {
		return f.ListActionsFunc(ctx, db, userID, includeRepealed)
	}
	return nil, nil
}

func (f *FakeUserRepo) UpdateAction(ctx context.Context, db bun.IDB, id uuid.UUID, updates *userdb.ActionUpdateFields) error {
	f.record("UpdateAction")
	if f.UpdateActionFunc != nil {
		return f.UpdateActionFunc(ctx, db, id, updates)
	}
	return nil
}

func (f *FakeUserRepo) RepealAction(ctx context.Context, db bun.IDB, id, repealedBy uuid.UUID, at time.Time) error {
	f.record("RepealAction")
	if f.RepealActionFunc != nil {
		return f.RepealActionFunc(ctx, db, id, repealedBy, at)
	}
	return nil
}

func (f *FakeUserRepo) DeleteAction(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("DeleteAction")
	if f.DeleteActionFunc != nil {
		return f.DeleteActionFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeUserRepo) CreateTicket(ctx context.Context, db bun.IDB, ticket *userdb.UserTicket) error {
	f.record("CreateTicket")
	if f.CreateTicketFunc != nil {
		return f.CreateTicketFunc(ctx, db, ticket)
	}
	return nil
}

func (f *FakeUserRepo) GetTicket(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.UserTicket, error) {
	f.record("GetTicket")
	if f.GetTicketFunc != nil {
		return f.GetTicketFunc(ctx, db, id)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserRepo) ListTickets(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]*userdb.UserTicket, error) {
	f.record("ListTickets")
	if f.ListTicketsFunc != nil {
		return f.ListTicketsFunc(ctx, db, userID)
	}
	return nil, nil
}

func (f *FakeUserRepo) UpdateTicket(ctx context.Context, db bun.IDB, id uuid.UUID, updates *userdb.TicketUpdateFields) error {
	f.record("UpdateTicket")
	if f.UpdateTicketFunc != nil {
		return f.UpdateTicketFunc(ctx, db, id, updates)
	}
	return nil
}

func (f *FakeUserRepo) DeleteTicket(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("DeleteTicket")
	if f.DeleteTicketFunc != nil {
		return f.DeleteTicketFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeUserRepo) CreateExperience(ctx context.Context, db bun.IDB, exp *userdb.UserExperience) error {
	f.record("CreateExperience")
	if f.CreateExperienceFunc != nil {
		return f.CreateExperienceFunc(ctx, db, exp)
	}
	return nil
}

func (f *FakeUserRepo) GetExperience(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.UserExperience, error) {
	f.record("GetExperience")
	if f.GetExperienceFunc != nil {
		return f.GetExperienceFunc(ctx, db, id)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserRepo) ListExperience(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]*userdb.UserExperience, error) {
	f.record("ListExperience")
	if f.ListExperienceFunc != nil {
		return f.ListExperienceFunc(ctx, db, userID)
	}
	return nil, nil
}

func (f *FakeUserRepo) ExperienceTypesForUser(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]userdomain.ExperienceType, error) {
	f.record("ExperienceTypesForUser")
	if f.ExperienceTypesForUserFunc != nil {
		return f.ExperienceTypesForUserFunc(ctx, db, userID)
	}
	return nil, nil
}

func (f *FakeUserRepo) UpdateExperience(ctx context.Context, db bun.IDB, id uuid.UUID, updates *userdb.ExperienceUpdateFields) error {
	f.record("UpdateExperience")
	if f.UpdateExperienceFunc != nil {
		return f.UpdateExperienceFunc(ctx, db, id, updates)
	}
	return nil
}

// --- Accessors for assertions ---

func (f *FakeUserRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ userdb.Repository = (*FakeUserRepo)(nil)

// ------------------------
// Fake Profile Lookup
// ------------------------

type FakeProfileLookup struct {
	LookupUserFunc func(ctx context.Context, discordID string) (*discord.Profile, error)
}

func (f *FakeProfileLookup) LookupUser(ctx context.Context, discordID string) (*discord.Profile, error) {
	if f.LookupUserFunc != nil {
		return f.LookupUserFunc(ctx, discordID)
	}
	return &discord.Profile{ID: discordID}, nil
}

var _ ProfileLookup = (*FakeProfileLookup)(nil)
