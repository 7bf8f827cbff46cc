package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func (r *Impl) CreateTicket(ctx context.Context, db bun.IDB, ticket *UserTicket) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(ticket).Returning("*").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create user ticket: %w", err)
	}
	return nil
}

func (r *Impl) GetTicket(ctx context.Context, db bun.IDB, id uuid.UUID) (*UserTicket, error) {
	db = r.resolveDB(db)
	ticket := new(UserTicket)
	if err := db.NewSelect().Model(ticket).Where("ut.id = ?", id).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user ticket: %w", err)
	}
	return ticket, nil
}

func (r *Impl) ListTickets(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]*UserTicket, error) {
	db = r.resolveDB(db)
	var tickets []*UserTicket
	err := db.NewSelect().Model(&tickets).
		Where("ut.user_id = ?", userID).
		OrderExpr("ut.created_at DESC, ut.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list user tickets: %w", err)
	}
	return tickets, nil
}

func (r *Impl) UpdateTicket(ctx context.Context, db bun.IDB, id uuid.UUID, updates *TicketUpdateFields) error {
	if updates.IsEmpty() {
		return nil
	}
	db = r.resolveDB(db)
	q := db.NewUpdate().Model((*UserTicket)(nil)).Where("id = ?", id)

	if updates.Description != nil {
		q = q.Set("description = ?", *updates.Description)
	}
	if updates.Type != nil {
		q = q.Set("type = ?", *updates.Type)
	}
	if updates.Status != nil {
		q = q.Set("status = ?", *updates.Status)
	}
	if updates.ThreadID != nil {
		q = q.Set("thread_id = ?", *updates.ThreadID)
	}
	if updates.FirstMessageID != nil {
		q = q.Set("first_message_id = ?", *updates.FirstMessageID)
	}
	if updates.ClearClosed {
		q = q.Set("closed_by = NULL").Set("closed_at = NULL")
	} else {
		if updates.ClosedBy != nil {
			q = q.Set("closed_by = ?", *updates.ClosedBy)
		}
		if updates.ClosedAt != nil {
			q = q.Set("closed_at = ?", *updates.ClosedAt)
		}
	}
	if updates.ReopenedBy != nil {
		q = q.Set("reopened_by = ?", *updates.ReopenedBy)
	}
	if updates.ReopenedAt != nil {
		q = q.Set("reopened_at = ?", *updates.ReopenedAt)
	}
	if updates.ArchivedAt != nil {
		q = q.Set("archived_at = ?", *updates.ArchivedAt)
	}

	return execAffecting(ctx, q, "update user ticket")
}

func (r *Impl) DeleteTicket(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)
	q := db.NewDelete().Model((*UserTicket)(nil)).Where("id = ?", id)
	return execAffecting(ctx, q, "delete user ticket")
}
