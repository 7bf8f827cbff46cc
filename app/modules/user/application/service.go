package userservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	userdomain "github.com/tripsit/tripsit-api/app/modules/user/domain"
	userdb "github.com/tripsit/tripsit-api/app/modules/user/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/db/bundb"
	"github.com/tripsit/tripsit-api/internal/discord"
	"github.com/tripsit/tripsit-api/internal/domain"
	"github.com/tripsit/tripsit-api/internal/observability/attr"
	"github.com/tripsit/tripsit-api/internal/observability/metrics"
	"github.com/tripsit/tripsit-api/internal/operation"
	"github.com/tripsit/tripsit-api/internal/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"
)

const serviceName = "UserService"

// UserService implements Service.
type UserService struct {
	repo     userdb.Repository
	profiles ProfileLookup
	logger   *slog.Logger
	runner   *operation.Runner
	now      func() time.Time
	hashCost int
}

// NewUserService creates a UserService. profiles may be nil when no Discord
// token is configured; GetDiscordProfile then reports discord.ErrNotConfigured.
func NewUserService(
	repo userdb.Repository,
	profiles ProfileLookup,
	logger *slog.Logger,
	m metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		repo:     repo,
		profiles: profiles,
		logger:   logger,
		runner:   operation.NewRunner(serviceName, logger, m, tracer, db),
		now:      time.Now,
		hashCost: bcrypt.DefaultCost,
	}
}

type userResult = results.OperationResult[*userdb.User, error]

// CreateUser registers a user. All identity fields are optional; a password,
// when given, is stored as a bcrypt hash.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*userdb.User, error) {
	return operation.Run(s.runner, ctx, "CreateUser", derefOr(in.Email, derefOr(in.DiscordID, "")),
		func(ctx context.Context, db bun.IDB) (userResult, error) {
			return s.createUserLogic(ctx, db, in)
		})
}

func (s *UserService) createUserLogic(ctx context.Context, db bun.IDB, in CreateUserInput) (userResult, error) {
	if in.Timezone != nil {
		if err := userdomain.ValidateTimezone(*in.Timezone); err != nil {
			return results.FailureResult[*userdb.User](err), nil
		}
	}

	user := &userdb.User{
		Email:          identity(in.Email),
		Username:       identity(in.Username),
		DisplayName:    in.DisplayName,
		DiscordID:      identity(in.DiscordID),
		IRCID:          identity(in.IRCID),
		MatrixID:       identity(in.MatrixID),
		LastFMUsername: identity(in.LastFMUsername),
		Timezone:       in.Timezone,
		Birthday:       in.Birthday,
	}
	if in.Password != nil {
		hash, err := s.hashPassword(*in.Password)
		if err != nil {
			return userResult{}, err
		}
		user.PasswordHash = &hash
	}

	if err := s.repo.CreateUser(ctx, db, user); err != nil {
		if constraint, ok := bundb.UniqueViolation(err); ok {
			return results.FailureResult[*userdb.User, error](duplicateIdentity(constraint)), nil
		}
		return userResult{}, err
	}
	return results.SuccessResult[*userdb.User, error](user), nil
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*userdb.User, error) {
	return operation.Run(s.runner, ctx, "GetUser", id.String(),
		func(ctx context.Context, db bun.IDB) (userResult, error) {
			return s.loadUser(ctx, db, id)
		})
}

func (s *UserService) loadUser(ctx context.Context, db bun.IDB, id uuid.UUID) (userResult, error) {
	user, err := s.repo.GetUser(ctx, db, id)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[*userdb.User](ErrUserNotFound), nil
		}
		return userResult{}, err
	}
	return results.SuccessResult[*userdb.User, error](user), nil
}

// FindUsers searches by identity fields. No match is an empty slice.
func (s *UserService) FindUsers(ctx context.Context, filter userdb.UserFilter) ([]*userdb.User, error) {
	return operation.Run(s.runner, ctx, "FindUsers", "",
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]*userdb.User, error], error) {
			users, err := s.repo.FindUsers(ctx, db, filter)
			if err != nil {
				return results.OperationResult[[]*userdb.User, error]{}, err
			}
			if users == nil {
				users = []*userdb.User{}
			}
			return results.SuccessResult[[]*userdb.User, error](users), nil
		})
}

func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, in UserUpdate) (*userdb.User, error) {
	return operation.Run(s.runner, ctx, "UpdateUser", id.String(),
		func(ctx context.Context, db bun.IDB) (userResult, error) {
			return s.updateUserLogic(ctx, db, id, in)
		})
}

func (s *UserService) updateUserLogic(ctx context.Context, db bun.IDB, id uuid.UUID, in UserUpdate) (userResult, error) {
	if in.Timezone != nil {
		if err := userdomain.ValidateTimezone(*in.Timezone); err != nil {
			return results.FailureResult[*userdb.User](err), nil
		}
	}
	for field, v := range map[string]*int{
		"karmaGiven":    in.KarmaGiven,
		"karmaReceived": in.KarmaReceived,
		"sparklePoints": in.SparklePoints,
	} {
		if v == nil {
			continue
		}
		if err := userdomain.ValidateCounter(field, *v); err != nil {
			return results.FailureResult[*userdb.User](err), nil
		}
	}

	fields := &userdb.UserUpdateFields{
		Email:          clearable(in.Email),
		Username:       clearable(in.Username),
		DisplayName:    in.DisplayName,
		DiscordID:      clearable(in.DiscordID),
		IRCID:          clearable(in.IRCID),
		MatrixID:       clearable(in.MatrixID),
		LastFMUsername: clearable(in.LastFMUsername),
		ModThreadID:    in.ModThreadID,
		Timezone:       in.Timezone,
		Birthday:       in.Birthday,
		KarmaGiven:     in.KarmaGiven,
		KarmaReceived:  in.KarmaReceived,
		SparklePoints:  in.SparklePoints,
		DiscordBotBan:  in.DiscordBotBan,
		TicketBan:      in.TicketBan,
		Partner:        in.Partner,
		Supporter:      in.Supporter,
		LastSeen:       in.LastSeen,
	}
	if in.Password != nil {
		hash, err := s.hashPassword(*in.Password)
		if err != nil {
			return userResult{}, err
		}
		fields.PasswordHash = &hash
	}

	if err := s.repo.UpdateUser(ctx, db, id, fields); err != nil {
		if errors.Is(err, userdb.ErrNoRowsAffected) {
			return results.FailureResult[*userdb.User](ErrUserNotFound), nil
		}
		if constraint, ok := bundb.UniqueViolation(err); ok {
			return results.FailureResult[*userdb.User, error](duplicateIdentity(constraint)), nil
		}
		return userResult{}, err
	}
	return s.loadUser(ctx, db, id)
}

// GetDiscordProfile resolves the user's linked Discord account. The network
// call happens after the read transaction has ended.
func (s *UserService) GetDiscordProfile(ctx context.Context, id uuid.UUID) (*discord.Profile, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.DiscordID == nil || *user.DiscordID == "" {
		return nil, ErrNoDiscordAccount
	}
	if s.profiles == nil {
		return nil, discord.ErrNotConfigured
	}

	profile, err := s.profiles.LookupUser(ctx, *user.DiscordID)
	if err != nil {
		s.logger.WarnContext(ctx, "Discord profile lookup failed",
			attr.ExtractCorrelationID(ctx),
			attr.UUID("user_id", id),
			attr.Error(err),
		)
		if errors.Is(err, discord.ErrUnknownUser) {
			return nil, domain.NewNotFound("discord user not found")
		}
		return nil, fmt.Errorf("GetDiscordProfile: %w", err)
	}
	return profile, nil
}

func (s *UserService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// identity trims an identity value. Blank means the user has none.
func identity(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

// clearable trims an identity value for an update, keeping blank as the
// request to clear it.
func clearable(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}

func derefOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
