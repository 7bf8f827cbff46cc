package guildservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	guilddomain "github.com/tripsit/tripsit-api/app/modules/guild/domain"
	guilddb "github.com/tripsit/tripsit-api/app/modules/guild/infrastructure/repositories"
	"github.com/uptrace/bun"
)

type FakeGuildRepo struct {
	trace []string

	UpsertGuildFunc        func(ctx context.Context, db bun.IDB, guild *guilddb.Guild) error
	GetGuildFunc           func(ctx context.Context, db bun.IDB, id string) (*guilddb.Guild, error)
	GuildExistsFunc        func(ctx context.Context, db bun.IDB, id string) (bool, error)
	ListGuildsFunc         func(ctx context.Context, db bun.IDB) ([]*guilddb.Guild, error)
	UpdateGuildFunc        func(ctx context.Context, db bun.IDB, id string, updates *guilddb.GuildUpdateFields) error
	CreateReactionRoleFunc func(ctx context.Context, db bun.IDB, role *guilddb.ReactionRole) error
	ListReactionRolesFunc  func(ctx context.Context, db bun.IDB, guildID string) ([]*guilddb.ReactionRole, error)
	DeleteReactionRoleFunc func(ctx context.Context, db bun.IDB, id uuid.UUID) error
	CreateGuildRssFunc     func(ctx context.Context, db bun.IDB, rss *guilddb.GuildRss) error
	GetGuildRssFunc        func(ctx context.Context, db bun.IDB, id uuid.UUID) (*guilddb.GuildRss, error)
	ListGuildRssFunc       func(ctx context.Context, db bun.IDB, guildID string) ([]*guilddb.GuildRss, error)
	UpdateLastPostIDFunc   func(ctx context.Context, db bun.IDB, id uuid.UUID, lastPostID string) error
	DeleteGuildRssFunc     func(ctx context.Context, db bun.IDB, id uuid.UUID) error
	CreateBridgeFunc       func(ctx context.Context, db bun.IDB, bridge *guilddb.Bridge) error
	GetBridgeFunc          func(ctx context.Context, db bun.IDB, id uuid.UUID) (*guilddb.Bridge, error)
	ListBridgesFunc        func(ctx context.Context, db bun.IDB, channel string) ([]*guilddb.Bridge, error)
	SetBridgeStatusFunc    func(ctx context.Context, db bun.IDB, id uuid.UUID, status guilddomain.BridgeStatus) error
	DeleteBridgeFunc       func(ctx context.Context, db bun.IDB, id uuid.UUID) error
	CreateAppealFunc       func(ctx context.Context, db bun.IDB, appeal *guilddb.Appeal) error
	GetAppealFunc          func(ctx context.Context, db bun.IDB, id uuid.UUID) (*guilddb.Appeal, error)
	GetAppealForUpdateFunc func(ctx context.Context, db bun.IDB, id uuid.UUID) (*guilddb.Appeal, error)
	ListAppealsFunc        func(ctx context.Context, db bun.IDB, filter guilddb.AppealFilter) ([]*guilddb.Appeal, error)
	MarkAppealRemindedFunc func(ctx context.Context, db bun.IDB, id uuid.UUID, at time.Time) error
	DecideAppealFunc       func(ctx context.Context, db bun.IDB, id uuid.UUID, status guilddomain.AppealStatus, at time.Time) error
}

func NewFakeGuildRepo() *FakeGuildRepo {
	return &FakeGuildRepo{trace: []string{}}
}

func (f *FakeGuildRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeGuildRepo) Trace() []string {
	return f.trace
}

func (f *FakeGuildRepo) UpsertGuild(ctx context.Context, db bun.IDB, guild *guilddb.Guild) error {
	f.record("UpsertGuild")
	if f.UpsertGuildFunc != nil {
		return f.UpsertGuildFunc(ctx, db, guild)
	}
	return nil
}

func (f *FakeGuildRepo) GetGuild(ctx context.Context, db bun.IDB, id string) (*guilddb.Guild, error) {
	f.record("GetGuild")
	if f.GetGuildFunc != nil {
		return f.GetGuildFunc(ctx, db, id)
	}
	return nil, guilddb.ErrNotFound
}

func (f *FakeGuildRepo) GuildExists(ctx context.Context, db bun.IDB, id string) (bool, error) {
	f.record("GuildExists")
	if f.GuildExistsFunc != nil {
		return f.GuildExistsFunc(ctx, db, id)
	}
	return false, nil
}

func (f *FakeGuildRepo) ListGuilds(ctx context.Context, db bun.IDB) ([]*guilddb.Guild, error) {
	f.record("ListGuilds")
	if f.ListGuildsFunc != nil {
		return f.ListGuildsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeGuildRepo) UpdateGuild(ctx context.Context, db bun.IDB, id string, updates *guilddb.GuildUpdateFields) error {
	f.record("UpdateGuild")
	if f.UpdateGuildFunc != nil {
		return f.UpdateGuildFunc(ctx, db, id, updates)
	}
	return nil
}

func (f *FakeGuildRepo) CreateReactionRole(ctx context.Context, db bun.IDB, role *guilddb.ReactionRole) error {
	f.record("CreateReactionRole")
	if f.CreateReactionRoleFunc != nil {
		return f.CreateReactionRoleFunc(ctx, db, role)
	}
	return nil
}

func (f *FakeGuildRepo) ListReactionRoles(ctx context.Context, db bun.IDB, guildID string) ([]*guilddb.ReactionRole, error) {
	f.record("ListReactionRoles")
	if f.ListReactionRolesFunc != nil {
		return f.ListReactionRolesFunc(ctx, db, guildID)
	}
	return nil, nil
}

func (f *FakeGuildRepo) DeleteReactionRole(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("DeleteReactionRole")
	if f.DeleteReactionRoleFunc != nil {
		return f.DeleteReactionRoleFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeGuildRepo) CreateGuildRss(ctx context.Context, db bun.IDB, rss *guilddb.GuildRss) error {
	f.record("CreateGuildRss")
	if f.CreateGuildRssFunc != nil {
		return f.CreateGuildRssFunc(ctx, db, rss)
	}
	return nil
}

func (f *FakeGuildRepo) GetGuildRss(ctx context.Context, db bun.IDB, id uuid.UUID) (*guilddb.GuildRss, error) {
	f.record("GetGuildRss")
	if f.GetGuildRssFunc != nil {
		return f.GetGuildRssFunc(ctx, db, id)
	}
	return nil, guilddb.ErrNotFound
}

func (f *FakeGuildRepo) ListGuildRss(ctx context.Context, db bun.IDB, guildID string) ([]*guilddb.GuildRss, error) {
	f.record("ListGuildRss")
	if f.ListGuildRssFunc != nil {
		return f.ListGuildRssFunc(ctx, db, guildID)
	}
	return nil, nil
}

func (f *FakeGuildRepo) UpdateLastPostID(ctx context.Context, db bun.IDB, id uuid.UUID, lastPostID string) error {
	f.record("UpdateLastPostID")
	if f.UpdateLastPostIDFunc != nil {
		return f.UpdateLastPostIDFunc(ctx, db, id, lastPostID)
	}
	return nil
}

func (f *FakeGuildRepo) DeleteGuildRss(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("DeleteGuildRss")
	if f.DeleteGuildRssFunc != nil {
		return f.DeleteGuildRssFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeGuildRepo) CreateBridge(ctx context.Context, db bun.IDB, bridge *guilddb.Bridge) error {
	f.record("CreateBridge")
	if f.CreateBridgeFunc != nil {
		return f.CreateBridgeFunc(ctx, db, bridge)
	}
	return nil
}

func (f *FakeGuildRepo) GetBridge(ctx context.Context, db bun.IDB, id uuid.UUID) (*guilddb.Bridge, error) {
	f.record("GetBridge")
	if f.GetBridgeFunc != nil {
		return f.GetBridgeFunc(ctx, db, id)
	}
	return nil, guilddb.ErrNotFound
}

func (f *FakeGuildRepo) ListBridges(ctx context.Context, db bun.IDB, channel string) ([]*guilddb.Bridge, error) {
	f.record("ListBridges")
	if f.ListBridgesFunc != nil {
		return f.ListBridgesFunc(ctx, db, channel)
	}
	return nil, nil
}

func (f *FakeGuildRepo) SetBridgeStatus(ctx context.Context, db bun.IDB, id uuid.UUID, status guilddomain.BridgeStatus) error {
	f.record("SetBridgeStatus")
	if f.SetBridgeStatusFunc != nil {
		return f.SetBridgeStatusFunc(ctx, db, id, status)
	}
	return nil
}

func (f *FakeGuildRepo) DeleteBridge(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("DeleteBridge")
	if f.DeleteBridgeFunc != nil {
		return f.DeleteBridgeFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeGuildRepo) CreateAppeal(ctx context.Context, db bun.IDB, appeal *guilddb.Appeal) error {
	f.record("CreateAppeal")
	if f.CreateAppealFunc != nil {
		return f.CreateAppealFunc(ctx, db, appeal)
	}
	return nil
}

func (f *FakeGuildRepo) GetAppeal(ctx context.Context, db bun.IDB, id uuid.UUID) (*guilddb.Appeal, error) {
	f.record("GetAppeal")
	if f.GetAppealFunc != nil {
		return f.GetAppealFunc(ctx, db, id)
	}
	return nil, guilddb.ErrNotFound
}

func (f *FakeGuildRepo) GetAppealForUpdate(ctx context.Context, db bun.IDB, id uuid.UUID) (*guilddb.Appeal, error) {
	f.record("GetAppealForUpdate")
	if f.GetAppealForUpdateFunc != nil {
		return f.GetAppealForUpdateFunc(ctx, db, id)
	}
	return nil, guilddb.ErrNotFound
}

func (f *FakeGuildRepo) ListAppeals(ctx context.Context, db bun.IDB, filter guilddb.AppealFilter) ([]*guilddb.Appeal, error) {
	f.record("ListAppeals")
	if f.ListAppealsFunc != nil {
		return f.ListAppealsFunc(ctx, db, filter)
	}
	return nil, nil
}

func (f *FakeGuildRepo) MarkAppealReminded(ctx context.Context, db bun.IDB, id uuid.UUID, at time.Time) error {
	f.record("MarkAppealReminded")
	if f.MarkAppealRemindedFunc != nil {
		return f.MarkAppealRemindedFunc(ctx, db, id, at)
	}
	return nil
}

func (f *FakeGuildRepo) DecideAppeal(ctx context.Context, db bun.IDB, id uuid.UUID, status guilddomain.AppealStatus, at time.Time) error {
	f.record("DecideAppeal")
	if f.DecideAppealFunc != nil {
		return f.DecideAppealFunc(ctx, db, id, status, at)
	}
	return nil
}

var _ guilddb.Repository = (*FakeGuildRepo)(nil)
