package userservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	userdomain "github.com/tripsit/tripsit-api/app/modules/user/domain"
	userdb "github.com/tripsit/tripsit-api/app/modules/user/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/domain"
	"github.com/tripsit/tripsit-api/internal/operation"
	"github.com/tripsit/tripsit-api/internal/results"
	"github.com/uptrace/bun"
)

type ticketResult = results.OperationResult[*userdb.UserTicket, error]

// CreateUserTicket opens a ticket. Ticket-banned users are refused.
func (s *UserService) CreateUserTicket(ctx context.Context, in CreateTicketInput) (*userdb.UserTicket, error) {
	return operation.Run(s.runner, ctx, "CreateUserTicket", in.UserID.String(),
		func(ctx context.Context, db bun.IDB) (ticketResult, error) {
			if in.Type != nil && !in.Type.IsValid() {
				return results.FailureResult[*userdb.UserTicket, error](domain.Invalidf("type", "unknown ticket type %q", *in.Type)), nil
			}

			user, err := s.repo.GetUser(ctx, db, in.UserID)
			if err != nil {
				if errors.Is(err, userdb.ErrNotFound) {
					return results.FailureResult[*userdb.UserTicket](ErrUserNotFound), nil
				}
				return ticketResult{}, err
			}
			if err := userdomain.ValidateTicketAllowed(user.TicketBan); err != nil {
				return results.FailureResult[*userdb.UserTicket](err), nil
			}

			ticket := &userdb.UserTicket{
				UserID:         in.UserID,
				Description:    in.Description,
				Type:           in.Type,
				Status:         userdomain.TicketOpen,
				ThreadID:       in.ThreadID,
				FirstMessageID: in.FirstMessageID,
			}
			if err := s.repo.CreateTicket(ctx, db, ticket); err != nil {
				return ticketResult{}, err
			}
			return results.SuccessResult[*userdb.UserTicket, error](ticket), nil
		})
}

func (s *UserService) GetUserTicket(ctx context.Context, id uuid.UUID) (*userdb.UserTicket, error) {
	return operation.Run(s.runner, ctx, "GetUserTicket", id.String(),
		func(ctx context.Context, db bun.IDB) (ticketResult, error) {
			return s.loadTicket(ctx, db, id)
		})
}

func (s *UserService) loadTicket(ctx context.Context, db bun.IDB, id uuid.UUID) (ticketResult, error) {
	ticket, err := s.repo.GetTicket(ctx, db, id)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[*userdb.UserTicket](ErrTicketNotFound), nil
		}
		return ticketResult{}, err
	}
	return results.SuccessResult[*userdb.UserTicket, error](ticket), nil
}

func (s *UserService) ListUserTickets(ctx context.Context, userID uuid.UUID) ([]*userdb.UserTicket, error) {
	return operation.Run(s.runner, ctx, "ListUserTickets", userID.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]*userdb.UserTicket, error], error) {
			exists, err := s.repo.UserExists(ctx, db, userID)
			if err != nil {
				return results.OperationResult[[]*userdb.UserTicket, error]{}, err
			}
			if !exists {
				return results.FailureResult[[]*userdb.UserTicket](ErrUserNotFound), nil
			}
			tickets, err := s.repo.ListTickets(ctx, db, userID)
			if err != nil {
				return results.OperationResult[[]*userdb.UserTicket, error]{}, err
			}
			if tickets == nil {
				tickets = []*userdb.UserTicket{}
			}
			return results.SuccessResult[[]*userdb.UserTicket, error](tickets), nil
		})
}

// UpdateUserTicket applies a partial update and returns the stored ticket.
// Moving into CLOSED or RESOLVED stamps closed_at; moving back out clears it
// and stamps reopened_at.
func (s *UserService) UpdateUserTicket(ctx context.Context, id uuid.UUID, in TicketUpdate) (*userdb.UserTicket, error) {
	return operation.Run(s.runner, ctx, "UpdateUserTicket", id.String(),
		func(ctx context.Context, db bun.IDB) (ticketResult, error) {
			return s.updateUserTicketLogic(ctx, db, id, in)
		})
}

func (s *UserService) updateUserTicketLogic(ctx context.Context, db bun.IDB, id uuid.UUID, in TicketUpdate) (ticketResult, error) {
	if in.Status != nil && !in.Status.IsValid() {
		return results.FailureResult[*userdb.UserTicket, error](domain.Invalidf("status", "unknown ticket status %q", *in.Status)), nil
	}
	if in.Type != nil && !in.Type.IsValid() {
		return results.FailureResult[*userdb.UserTicket, error](domain.Invalidf("type", "unknown ticket type %q", *in.Type)), nil
	}

	current, err := s.repo.GetTicket(ctx, db, id)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[*userdb.UserTicket](ErrTicketNotFound), nil
		}
		return ticketResult{}, err
	}

	fields := &userdb.TicketUpdateFields{
		Description:    in.Description,
		Type:           in.Type,
		Status:         in.Status,
		ThreadID:       in.ThreadID,
		FirstMessageID: in.FirstMessageID,
		ArchivedAt:     in.ArchivedAt,
	}
	if in.Status != nil {
		now := s.now().UTC()
		switch {
		case in.Status.IsClosed() && !current.Status.IsClosed():
			fields.ClosedAt = &now
			fields.ClosedBy = in.ActorID
		case !in.Status.IsClosed() && current.Status.IsClosed():
			fields.ClearClosed = true
			fields.ReopenedAt = &now
			fields.ReopenedBy = in.ActorID
		}
	}

	if err := s.repo.UpdateTicket(ctx, db, id, fields); err != nil {
		if errors.Is(err, userdb.ErrNoRowsAffected) {
			return results.FailureResult[*userdb.UserTicket](ErrTicketNotFound), nil
		}
		return ticketResult{}, err
	}
	return s.loadTicket(ctx, db, id)
}

func (s *UserService) DeleteUserTicket(ctx context.Context, id uuid.UUID) error {
	_, err := operation.Run(s.runner, ctx, "DeleteUserTicket", id.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
			if err := s.repo.DeleteTicket(ctx, db, id); err != nil {
				if errors.Is(err, userdb.ErrNoRowsAffected) {
					return results.FailureResult[struct{}](ErrTicketNotFound), nil
				}
				return results.OperationResult[struct{}, error]{}, err
			}
			return results.SuccessResult[struct{}, error](struct{}{}), nil
		})
	return err
}
