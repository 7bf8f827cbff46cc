package guildhandlers

import (
	"context"

	"github.com/google/uuid"
	guildservice "github.com/tripsit/tripsit-api/app/modules/guild/application"
	guilddomain "github.com/tripsit/tripsit-api/app/modules/guild/domain"
	guilddb "github.com/tripsit/tripsit-api/app/modules/guild/infrastructure/repositories"
)

type FakeGuildService struct {
	trace []string

	UpsertGuildFunc        func(ctx context.Context, in guildservice.UpsertGuildInput) (*guilddb.Guild, error)
	GetGuildFunc           func(ctx context.Context, id string) (*guilddb.Guild, error)
	UpdateGuildFunc        func(ctx context.Context, id string, in guildservice.GuildUpdate) (*guilddb.Guild, error)
	ListGuildsFunc         func(ctx context.Context) ([]*guilddb.Guild, error)
	CreateReactionRoleFunc func(ctx context.Context, in guildservice.CreateReactionRoleInput) (*guilddb.ReactionRole, error)
	ListReactionRolesFunc  func(ctx context.Context, guildID string) ([]*guilddb.ReactionRole, error)
	DeleteReactionRoleFunc func(ctx context.Context, id uuid.UUID) error
	CreateGuildRssFunc     func(ctx context.Context, in guildservice.CreateGuildRssInput) (*guilddb.GuildRss, error)
	ListGuildRssFunc       func(ctx context.Context, guildID string) ([]*guilddb.GuildRss, error)
	RefreshGuildRssFunc    func(ctx context.Context, id uuid.UUID) (*guilddb.GuildRss, error)
	DeleteGuildRssFunc     func(ctx context.Context, id uuid.UUID) error
	CreateBridgeFunc       func(ctx context.Context, in guildservice.CreateBridgeInput) (*guilddb.Bridge, error)
	GetBridgeFunc          func(ctx context.Context, id uuid.UUID) (*guilddb.Bridge, error)
	ListBridgesFunc        func(ctx context.Context, channel string) ([]*guilddb.Bridge, error)
	SetBridgeStatusFunc    func(ctx context.Context, id uuid.UUID, status guilddomain.BridgeStatus) (*guilddb.Bridge, error)
	DeleteBridgeFunc       func(ctx context.Context, id uuid.UUID) error
	CreateAppealFunc       func(ctx context.Context, in guildservice.CreateAppealInput) (*guilddb.Appeal, error)
	GetAppealFunc          func(ctx context.Context, id uuid.UUID) (*guilddb.Appeal, error)
	ListAppealsFunc        func(ctx context.Context, filter guilddb.AppealFilter) ([]*guilddb.Appeal, error)
	MarkAppealRemindedFunc func(ctx context.Context, id uuid.UUID) (*guilddb.Appeal, error)
	DecideAppealFunc       func(ctx context.Context, id uuid.UUID, status guilddomain.AppealStatus) (*guilddb.Appeal, error)
}

func NewFakeGuildService() *FakeGuildService {
	return &FakeGuildService{trace: []string{}}
}

func (f *FakeGuildService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeGuildService) Trace() []string {
	return f.trace
}

func (f *FakeGuildService) UpsertGuild(ctx context.Context, in guildservice.UpsertGuildInput) (*guilddb.Guild, error) {
	f.record("UpsertGuild")
	if f.UpsertGuildFunc != nil {
		return f.UpsertGuildFunc(ctx, in)
	}
	return &guilddb.Guild{}, nil
}

func (f *FakeGuildService) GetGuild(ctx context.Context, id string) (*guilddb.Guild, error) {
	f.record("GetGuild")
	if f.GetGuildFunc != nil {
		return f.GetGuildFunc(ctx, id)
	}
	return &guilddb.Guild{}, nil
}

func (f *FakeGuildService) UpdateGuild(ctx context.Context, id string, in guildservice.GuildUpdate) (*guilddb.Guild, error) {
	f.record("UpdateGuild")
	if f.UpdateGuildFunc != nil {
		return f.UpdateGuildFunc(ctx, id, in)
	}
	return &guilddb.Guild{}, nil
}

func (f *FakeGuildService) ListGuilds(ctx context.Context) ([]*guilddb.Guild, error) {
	f.record("ListGuilds")
	if f.ListGuildsFunc != nil {
		return f.ListGuildsFunc(ctx)
	}
	return nil, nil
}

func (f *FakeGuildService) CreateReactionRole(ctx context.Context, in guildservice.CreateReactionRoleInput) (*guilddb.ReactionRole, error) {
	f.record("CreateReactionRole")
	if f.CreateReactionRoleFunc != nil {
		return f.CreateReactionRoleFunc(ctx, in)
	}
	return &guilddb.ReactionRole{}, nil
}

func (f *FakeGuildService) ListReactionRoles(ctx context.Context, guildID string) ([]*guilddb.ReactionRole, error) {
	f.record("ListReactionRoles")
	if f.ListReactionRolesFunc != nil {
		return f.ListReactionRolesFunc(ctx, guildID)
	}
	return nil, nil
}

func (f *FakeGuildService) DeleteReactionRole(ctx context.Context, id uuid.UUID) error {
	f.record("DeleteReactionRole")
	if f.DeleteReactionRoleFunc != nil {
		return f.DeleteReactionRoleFunc(ctx, id)
	}
	return nil
}

func (f *FakeGuildService) CreateGuildRss(ctx context.Context, in guildservice.CreateGuildRssInput) (*guilddb.GuildRss, error) {
	f.record("CreateGuildRss")
	if f.CreateGuildRssFunc != nil {
		return f.CreateGuildRssFunc(ctx, in)
	}
	return &guilddb.GuildRss{}, nil
}

func (f *FakeGuildService) ListGuildRss(ctx context.Context, guildID string) ([]*guilddb.GuildRss, error) {
	f.record("ListGuildRss")
	if f.ListGuildRssFunc != nil {
		return f.ListGuildRssFunc(ctx, guildID)
	}
	return nil, nil
}

func (f *FakeGuildService) RefreshGuildRss(ctx context.Context, id uuid.UUID) (*guilddb.GuildRss, error) {
	f.record("RefreshGuildRss")
	if f.RefreshGuildRssFunc != nil {
		return f.RefreshGuildRssFunc(ctx, id)
	}
	return &guilddb.GuildRss{}, nil
}

func (f *FakeGuildService) DeleteGuildRss(ctx context.Context, id uuid.UUID) error {
	f.record("DeleteGuildRss")
	if f.DeleteGuildRssFunc != nil {
		return f.DeleteGuildRssFunc(ctx, id)
	}
	return nil
}

func (f *FakeGuildService) CreateBridge(ctx context.Context, in guildservice.CreateBridgeInput) (*guilddb.Bridge, error) {
	f.record("CreateBridge")
	if f.CreateBridgeFunc != nil {
		return f.CreateBridgeFunc(ctx, in)
	}
	return &guilddb.Bridge{}, nil
}

func (f *FakeGuildService) GetBridge(ctx context.Context, id uuid.UUID) (*guilddb.Bridge, error) {
	f.record("GetBridge")
	if f.GetBridgeFunc != nil {
		return f.GetBridgeFunc(ctx, id)
	}
	return &guilddb.Bridge{}, nil
}

func (f *FakeGuildService) ListBridges(ctx context.Context, channel string) ([]*guilddb.Bridge, error) {
	f.record("ListBridges")
	if f.ListBridgesFunc != nil {
		return f.ListBridgesFunc(ctx, channel)
	}
	return nil, nil
}

func (f *FakeGuildService) SetBridgeStatus(ctx context.Context, id uuid.UUID, status guilddomain.BridgeStatus) (*guilddb.Bridge, error) {
	f.record("SetBridgeStatus")
	if f.SetBridgeStatusFunc != nil {
		return f.SetBridgeStatusFunc(ctx, id, status)
	}
	return &guilddb.Bridge{}, nil
}

func (f *FakeGuildService) DeleteBridge(ctx context.Context, id uuid.UUID) error {
	f.record("DeleteBridge")
	if f.DeleteBridgeFunc != nil {
		return f.DeleteBridgeFunc(ctx, id)
	}
	return nil
}

func (f *FakeGuildService) CreateAppeal(ctx context.Context, in guildservice.CreateAppealInput) (*guilddb.Appeal, error) {
	f.record("CreateAppeal")
	if f.CreateAppealFunc != nil {
		return f.CreateAppealFunc(ctx, in)
	}
	return &guilddb.Appeal{}, nil
}

func (f *FakeGuildService) GetAppeal(ctx context.Context, id uuid.UUID) (*guilddb.Appeal, error) {
	f.record("GetAppeal")
	if f.GetAppealFunc != nil {
		return f.GetAppealFunc(ctx, id)
	}
	return &guilddb.Appeal{}, nil
}

func (f *FakeGuildService) ListAppeals(ctx context.Context, filter guilddb.AppealFilter) ([]*guilddb.Appeal, error) {
	f.record("ListAppeals")
	if f.ListAppealsFunc != nil {
		return f.ListAppealsFunc(ctx, filter)
	}
	return nil, nil
}

func (f *FakeGuildService) MarkAppealReminded(ctx context.Context, id uuid.UUID) (*guilddb.Appeal, error) {
	f.record("MarkAppealReminded")
	if f.MarkAppealRemindedFunc != nil {
		return f.MarkAppealRemindedFunc(ctx, id)
	}
	return &guilddb.Appeal{}, nil
}

func (f *FakeGuildService) DecideAppeal(ctx context.Context, id uuid.UUID, status guilddomain.AppealStatus) (*guilddb.Appeal, error) {
	f.record("DecideAppeal")
	if f.DecideAppealFunc != nil {
		return f.DecideAppealFunc(ctx, id, status)
	}
	return &guilddb.Appeal{}, nil
}

var _ guildservice.Service = (*FakeGuildService)(nil)
