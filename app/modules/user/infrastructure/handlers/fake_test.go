package userhandlers

import (
	"context"

	"github.com/google/uuid"
	userservice "github.com/tripsit/tripsit-api/app/modules/user/application"
	userdb "github.com/tripsit/tripsit-api/app/modules/user/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/discord"
)

// FakeUserService is a programmable userservice.Service. Unset hooks return
// zero values.
type FakeUserService struct {
	CreateUserFunc           func(ctx context.Context, in userservice.CreateUserInput) (*userdb.User, error)
	GetUserFunc              func(ctx context.Context, id uuid.UUID) (*userdb.User, error)
	FindUsersFunc            func(ctx context.Context, filter userdb.UserFilter) ([]*userdb.User, error)
	UpdateUserFunc           func(ctx context.Context, id uuid.UUID, in userservice.UserUpdate) (*userdb.User, error)
	GetDiscordProfileFunc    func(ctx context.Context, id uuid.UUID) (*discord.Profile, error)
	CreateUserActionFunc     func(ctx context.Context, in userservice.CreateActionInput) (*userdb.UserAction, error)
	GetUserActionFunc        func(ctx context.Context, id uuid.UUID) (*userdb.UserAction, error)
	ListUserActionsFunc      func(ctx context.Context, userID uuid.UUID, includeRepealed bool) ([]*userdb.UserAction, error)
	UpdateUserActionFunc     func(ctx context.Context, id uuid.UUID, in userservice.ActionUpdate) (*userdb.UserAction, error)
	RepealUserActionFunc     func(ctx context.Context, id, repealedBy uuid.UUID) (*userdb.UserAction, error)
	DeleteUserActionFunc     func(ctx context.Context, id uuid.UUID) error
	CreateUserTicketFunc     func(ctx context.Context, in userservice.CreateTicketInput) (*userdb.UserTicket, error)
	GetUserTicketFunc        func(ctx context.Context, id uuid.UUID) (*userdb.UserTicket, error)
	ListUserTicketsFunc      func(ctx context.Context, userID uuid.UUID) ([]*userdb.UserTicket, error)
	UpdateUserTicketFunc     func(ctx context.Context, id uuid.UUID, in userservice.TicketUpdate) (*userdb.UserTicket, error)
	DeleteUserTicketFunc     func(ctx context.Context, id uuid.UUID) error
	CreateUserExperienceFunc func(ctx context.Context, in userservice.CreateExperienceInput) (*userdb.UserExperience, error)
	ListUserExperienceFunc   func(ctx context.Context, userID uuid.UUID) ([]*userdb.UserExperience, error)
	UpdateUserExperienceFunc func(ctx context.Context, id uuid.UUID, in userservice.ExperienceUpdate) (*userdb.UserExperience, error)
}

var _ userservice.Service = (*FakeUserService)(nil)

func (f *FakeUserService) CreateUser(ctx context.Context, in userservice.CreateUserInput) (*userdb.User, error) {
	if f.CreateUserFunc != nil {
		return f.CreateUserFunc(ctx, in)
	}
	return nil, nil
}

func (f *FakeUserService) GetUser(ctx context.Context, id uuid.UUID) (*userdb.User, error) {
	if f.GetUserFunc != nil {
		return f.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (f *FakeUserService) FindUsers(ctx context.Context, filter userdb.UserFilter) ([]*userdb.User, error) {
	if f.FindUsersFunc != nil {
		return f.FindUsersFunc(ctx, filter)
	}
	return nil, nil
}

func (f *FakeUserService) UpdateUser(ctx context.Context, id uuid.UUID, in userservice.UserUpdate) (*userdb.User, error) {
	if f.UpdateUserFunc != nil {
		return f.UpdateUserFunc(ctx, id, in)
	}
	return nil, nil
}

func (f *FakeUserService) GetDiscordProfile(ctx context.Context, id uuid.UUID) (*discord.Profile, error) {
	if f.GetDiscordProfileFunc != nil {
		return f.GetDiscordProfileFunc(ctx, id)
	}
	return nil, nil
}

func (f *FakeUserService) CreateUserAction(ctx context.Context, in userservice.CreateActionInput) (*userdb.UserAction, error) {
	if f.CreateUserActionFunc != nil {
		return f.CreateUserActionFunc(ctx, in)
	}
	return nil, nil
}

func (f *FakeUserService) GetUserAction(ctx context.Context, id uuid.UUID) (*userdb.UserAction, error) {
	if f.GetUserActionFunc != nil {
		return f.GetUserActionFunc(ctx, id)
	}
	return nil, nil
}

func (f *FakeUserService) ListUserActions(ctx context.Context, userID uuid.UUID, includeRepealed bool) ([]*userdb.UserAction, error) {
	if f.ListUserActionsFunc != nil {
		return f.ListUserActionsFunc(ctx, userID, includeRepealed)
	}
	return nil, nil
}

func (f *FakeUserService) UpdateUserAction(ctx context.Context, id uuid.UUID, in userservice.ActionUpdate) (*userdb.UserAction, error) {
	if f.UpdateUserActionFunc != nil {
		return f.UpdateUserActionFunc(ctx, id, in)
	}
	return nil, nil
}

func (f *FakeUserService) RepealUserAction(ctx context.Context, id, repealedBy uuid.UUID) (*userdb.UserAction, error) {
	if f.RepealUserActionFunc != nil {
		return f.RepealUserActionFunc(ctx, id, repealedBy)
	}
	return nil, nil
}

func (f *FakeUserService) DeleteUserAction(ctx context.Context, id uuid.UUID) error {
	if f.DeleteUserActionFunc != nil {
		return f.DeleteUserActionFunc(ctx, id)
	}
	return nil
}

func (f *FakeUserService) CreateUserTicket(ctx context.Context, in userservice.CreateTicketInput) (*userdb.UserTicket, error) {
	if f.CreateUserTicketFunc != nil {
		return f.CreateUserTicketFunc(ctx, in)
	}
	return nil, nil
}

func (f *FakeUserService) GetUserTicket(ctx context.Context, id uuid.UUID) (*userdb.UserTicket, error) {
	if f.GetUserTicketFunc != nil {
		return f.GetUserTicketFunc(ctx, id)
	}
	return nil, nil
}

func (f *FakeUserService) ListUserTickets(ctx context.Context, userID uuid.UUID) ([]*userdb.UserTicket, error) {
	if f.ListUserTicketsFunc != nil {
		return f.ListUserTicketsFunc(ctx, userID)
	}
	return nil, nil
}

func (f *FakeUserService) UpdateUserTicket(ctx context.Context, id uuid.UUID, in userservice.TicketUpdate) (*userdb.UserTicket, error) {
	if f.UpdateUserTicketFunc != nil {
		return f.UpdateUserTicketFunc(ctx, id, in)
	}
	return nil, nil
}

func (f *FakeUserService) DeleteUserTicket(ctx context.Context, id uuid.UUID) error {
	if f.DeleteUserTicketFunc != nil {
		return f.DeleteUserTicketFunc(ctx, id)
	}
	return nil
}

func (f *FakeUserService) CreateUserExperience(ctx context.Context, in userservice.CreateExperienceInput) (*userdb.UserExperience, error) {
	if f.CreateUserExperienceFunc != nil {
		return f.CreateUserExperienceFunc(ctx, in)
	}
	return nil, nil
}

func (f *FakeUserService) ListUserExperience(ctx context.Context, userID uuid.UUID) ([]*userdb.UserExperience, error) {
	if f.ListUserExperienceFunc != nil {
		return f.ListUserExperienceFunc(ctx, userID)
	}
	return nil, nil
}

func (f *FakeUserService) UpdateUserExperience(ctx context.Context, id uuid.UUID, in userservice.ExperienceUpdate) (*userdb.UserExperience, error) {
	if f.UpdateUserExperienceFunc != nil {
		return f.UpdateUserExperienceFunc(ctx, id, in)
	}
	return nil, nil
}
