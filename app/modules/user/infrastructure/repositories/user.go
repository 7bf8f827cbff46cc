package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// Impl implements Repository with bun.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a user repository. The handle is used whenever a
// method receives a nil db.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func pageSize(limit int) int {
	switch {
	case limit <= 0:
		return defaultPageSize
	case limit > maxPageSize:
		return maxPageSize
	default:
		return limit
	}
}

// CreateUser inserts a user and scans generated columns back into it.
func (r *Impl) CreateUser(ctx context.Context, db bun.IDB, user *User) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(user).Returning("*").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *Impl) GetUser(ctx context.Context, db bun.IDB, id uuid.UUID) (*User, error) {
	db = r.resolveDB(db)
	user := new(User)
	err := db.NewSelect().Model(user).Where("u.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// LockUser reads a user with FOR UPDATE, serialising writers that depend on
// the user's current state.
func (r *Impl) LockUser(ctx context.Context, db bun.IDB, id uuid.UUID) (*User, error) {
	db = r.resolveDB(db)
	user := new(User)
	err := db.NewSelect().Model(user).Where("u.id = ?", id).For("UPDATE").Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock user: %w", err)
	}
	return user, nil
}

func (r *Impl) UserExists(ctx context.Context, db bun.IDB, id uuid.UUID) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().Model((*User)(nil)).Where("u.id = ?", id).Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return exists, nil
}

// FindUsers matches identity fields exactly, except email which is compared
// case-insensitively. Results are ordered by join time then id.
func (r *Impl) FindUsers(ctx context.Context, db bun.IDB, filter UserFilter) ([]*User, error) {
	db = r.resolveDB(db)
	var users []*User
	q := db.NewSelect().Model(&users)

	if filter.Email != nil {
		q = q.Where("LOWER(u.email) = LOWER(?)", *filter.Email)
	}
	if filter.Username != nil {
		q = q.Where("u.username = ?", *filter.Username)
	}
	if filter.DiscordID != nil {
		q = q.Where("u.discord_id = ?", *filter.DiscordID)
	}
	if filter.IRCID != nil {
		q = q.Where("u.irc_id = ?", *filter.IRCID)
	}
	if filter.MatrixID != nil {
		q = q.Where("u.matrix_id = ?", *filter.MatrixID)
	}
	if filter.LastFMUsername != nil {
		q = q.Where("u.lastfm_username = ?", *filter.LastFMUsername)
	}

	err := q.OrderExpr("u.joined_at ASC, u.id ASC").
		Offset(max(filter.Offset, 0)).
		Limit(pageSize(filter.Limit)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	return users, nil
}

// UpdateUser applies the non-nil fields of updates.
func (r *Impl) UpdateUser(ctx context.Context, db bun.IDB, id uuid.UUID, updates *UserUpdateFields) error {
	if updates.IsEmpty() {
		return nil
	}
	db = r.resolveDB(db)

	q := db.NewUpdate().Model((*User)(nil)).Where("id = ?", id)
	set := func(col string, v any) { q = q.Set("? = ?", bun.Ident(col), v) }

	if updates.Email != nil {
		set("email", nullIfEmpty(*updates.Email))
	}
	if updates.Username != nil {
		set("username", nullIfEmpty(*updates.Username))
	}
	if updates.DisplayName != nil {
		set("display_name", *updates.DisplayName)
	}
	if updates.PasswordHash != nil {
		set("password_hash", *updates.PasswordHash)
	}
	if updates.DiscordID != nil {
		set("discord_id", nullIfEmpty(*updates.DiscordID))
	}
	if updates.IRCID != nil {
		set("irc_id", nullIfEmpty(*updates.IRCID))
	}
	if updates.MatrixID != nil {
		set("matrix_id", nullIfEmpty(*updates.MatrixID))
	}
	if updates.LastFMUsername != nil {
		set("lastfm_username", nullIfEmpty(*updates.LastFMUsername))
	}
	if updates.ModThreadID != nil {
		set("mod_thread_id", *updates.ModThreadID)
	}
	if updates.Timezone != nil {
		set("timezone", *updates.Timezone)
	}
	if updates.Birthday != nil {
		set("birthday", *updates.Birthday)
	}
	if updates.KarmaGiven != nil {
		set("karma_given", *updates.KarmaGiven)
	}
	if updates.KarmaReceived != nil {
		set("karma_received", *updates.KarmaReceived)
	}
	if updates.SparklePoints != nil {
		set("sparkle_points", *updates.SparklePoints)
	}
	if updates.DiscordBotBan != nil {
		set("discord_bot_ban", *updates.DiscordBotBan)
	}
	if updates.TicketBan != nil {
		set("ticket_ban", *updates.TicketBan)
	}
	if updates.Partner != nil {
		set("partner", *updates.Partner)
	}
	if updates.Supporter != nil {
		set("supporter", *updates.Supporter)
	}
	if updates.LastSeen != nil {
		set("last_seen", *updates.LastSeen)
	}

	return execAffecting(ctx, q, "update user")
}

// execAffecting runs a statement and maps zero affected rows to ErrNoRowsAffected.
func execAffecting(ctx context.Context, q interface {
	Exec(ctx context.Context, dest ...interface{}) (sql.Result, error)
}, what string) error {
	res, err := q.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", what, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for %s: %w", what, err)
	}
	if n == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// nullIfEmpty writes a blank identity as NULL.
func nullIfEmpty(v string) any {
	if v == "" {
		return nil
	}
	return v
}
