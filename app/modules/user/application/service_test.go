package userservice

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	userdomain "github.com/tripsit/tripsit-api/app/modules/user/domain"
	userdb "github.com/tripsit/tripsit-api/app/modules/user/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/discord"
	"github.com/tripsit/tripsit-api/internal/domain"
	"github.com/tripsit/tripsit-api/internal/observability/metrics"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo *FakeUserRepo, profiles ProfileLookup) *UserService {
	svc := NewUserService(
		repo,
		profiles,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics.NewNoop(),
		noop.NewTracerProvider().Tracer("test"),
		nil,
	)
	svc.now = func() time.Time { return fixedNow }
	svc.hashCost = bcrypt.MinCost
	return svc
}

func ptr[T any](v T) *T { return &v }

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name           string
		input          CreateUserInput
		setupRepo      func(*FakeUserRepo)
		wantErr        error
		wantField      string
		wantValidation bool
		verify         func(t *testing.T, u *userdb.User)
	}{
		{
			name:  "hashes password",
			input: CreateUserInput{Email: ptr("sam@example.org"), Password: ptr("correct horse")},
			setupRepo: func(f *FakeUserRepo) {
				f.CreateUserFunc = func(ctx context.Context, db bun.IDB, user *userdb.User) error {
					user.ID = uuid.New()
					return nil
				}
			},
			verify: func(t *testing.T, u *userdb.User) {
				require.NotNil(t, u.PasswordHash)
				assert.NotEqual(t, "correct horse", *u.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte("correct horse")))
			},
		},
		{
			name:  "duplicate email",
			input: CreateUserInput{Email: ptr("sam@example.org")},
			setupRepo: func(f *FakeUserRepo) {
				f.CreateUserFunc = func(ctx context.Context, db bun.IDB, user *userdb.User) error {
					return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
				}
			},
			wantErr:   ErrDuplicateIdentity,
			wantField: "email",
		},
		{
			name:  "duplicate discord id",
			input: CreateUserInput{DiscordID: ptr("177537158419054592")},
			setupRepo: func(f *FakeUserRepo) {
				f.CreateUserFunc = func(ctx context.Context, db bun.IDB, user *userdb.User) error {
					return &pgconn.PgError{Code: "23505", ConstraintName: "users_discord_id_key"}
				}
			},
			wantErr:   ErrDuplicateIdentity,
			wantField: "discordId",
		},
		{
			name: "blank identities are unset",
			input: CreateUserInput{
				Email:          ptr(""),
				Username:       ptr("  "),
				DiscordID:      ptr(""),
				IRCID:          ptr(""),
				MatrixID:       ptr(" "),
				LastFMUsername: ptr(""),
				DisplayName:    ptr("Sam"),
			},
			setupRepo: func(f *FakeUserRepo) {},
			verify: func(t *testing.T, u *userdb.User) {
				assert.Nil(t, u.Email)
				assert.Nil(t, u.Username)
				assert.Nil(t, u.DiscordID)
				assert.Nil(t, u.IRCID)
				assert.Nil(t, u.MatrixID)
				assert.Nil(t, u.LastFMUsername)
				require.NotNil(t, u.DisplayName)
				assert.Equal(t, "Sam", *u.DisplayName)
			},
		},
		{
			name:      "identities are trimmed",
			input:     CreateUserInput{IRCID: ptr(" moonbeam "), LastFMUsername: ptr("moonbeam\t")},
			setupRepo: func(f *FakeUserRepo) {},
			verify: func(t *testing.T, u *userdb.User) {
				require.NotNil(t, u.IRCID)
				assert.Equal(t, "moonbeam", *u.IRCID)
				require.NotNil(t, u.LastFMUsername)
				assert.Equal(t, "moonbeam", *u.LastFMUsername)
			},
		},
		{
			name:           "bad timezone never reaches storage",
			input:          CreateUserInput{Timezone: ptr("Nowhere/Special")},
			setupRepo:      func(f *FakeUserRepo) {},
			wantValidation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeUserRepo()
			tt.setupRepo(repo)
			svc := newTestService(repo, nil)

			got, err := svc.CreateUser(context.Background(), tt.input)

			if tt.wantValidation {
				require.Error(t, err)
				assert.True(t, domain.IsValidationError(err))
				assert.Empty(t, repo.Trace())
				return
			}
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrConflict)
				var dup *DuplicateIdentityError
				require.ErrorAs(t, err, &dup)
				assert.Equal(t, tt.wantField, dup.Field)
				return
			}
			require.NoError(t, err)
			tt.verify(t, got)
		})
	}
}

func TestCreateUserInfrastructureError(t *testing.T) {
	repo := NewFakeUserRepo()
	repo.CreateUserFunc = func(ctx context.Context, db bun.IDB, user *userdb.User) error {
		return errors.New("connection refused")
	}
	_, err := newTestService(repo, nil).CreateUser(context.Background(), CreateUserInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CreateUser: connection refused")
}

func TestUpdateUser(t *testing.T) {
	id := uuid.New()

	t.Run("rejects negative karma", func(t *testing.T) {
		repo := NewFakeUserRepo()
		_, err := newTestService(repo, nil).UpdateUser(context.Background(), id, UserUpdate{KarmaGiven: ptr(-1)})
		assert.True(t, domain.IsValidationError(err))
		assert.Empty(t, repo.Trace())
	})

	t.Run("missing user", func(t *testing.T) {
		repo := NewFakeUserRepo()
		repo.UpdateUserFunc = func(ctx context.Context, db bun.IDB, uid uuid.UUID, updates *userdb.UserUpdateFields) error {
			return userdb.ErrNoRowsAffected
		}
		_, err := newTestService(repo, nil).UpdateUser(context.Background(), id, UserUpdate{Partner: ptr(true)})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("blank identity clears and others stay unset", func(t *testing.T) {
		repo := NewFakeUserRepo()
		var applied *userdb.UserUpdateFields
		repo.UpdateUserFunc = func(ctx context.Context, db bun.IDB, uid uuid.UUID, updates *userdb.UserUpdateFields) error {
			applied = updates
			return nil
		}
		_, err := newTestService(repo, nil).UpdateUser(context.Background(), id, UserUpdate{IRCID: ptr("  "), Email: ptr(" sam@example.org ")})
		require.NoError(t, err)
		require.NotNil(t, applied.IRCID)
		assert.Empty(t, *applied.IRCID)
		require.NotNil(t, applied.Email)
		assert.Equal(t, "sam@example.org", *applied.Email)
		assert.Nil(t, applied.LastFMUsername)
		assert.Nil(t, applied.DiscordID)
	})

	t.Run("re-reads after update", func(t *testing.T) {
		repo := NewFakeUserRepo()
		var applied *userdb.UserUpdateFields
		repo.UpdateUserFunc = func(ctx context.Context, db bun.IDB, uid uuid.UUID, updates *userdb.UserUpdateFields) error {
			applied = updates
			return nil
		}
		repo.GetUserFunc = func(ctx context.Context, db bun.IDB, uid uuid.UUID) (*userdb.User, error) {
			return &userdb.User{ID: uid, Partner: true}, nil
		}
		got, err := newTestService(repo, nil).UpdateUser(context.Background(), id, UserUpdate{Partner: ptr(true), Password: ptr("hunter22hunter")})
		require.NoError(t, err)
		assert.True(t, got.Partner)
		require.NotNil(t, applied.PasswordHash)
		assert.Equal(t, []string{"UpdateUser", "GetUser"}, repo.Trace())
	})
}

func TestGetDiscordProfile(t *testing.T) {
	id := uuid.New()

	t.Run("no linked account", func(t *testing.T) {
		repo := NewFakeUserRepo()
		repo.GetUserFunc = func(ctx context.Context, db bun.IDB, uid uuid.UUID) (*userdb.User, error) {
			return &userdb.User{ID: uid}, nil
		}
		_, err := newTestService(repo, &FakeProfileLookup{}).GetDiscordProfile(context.Background(), id)
		assert.ErrorIs(t, err, ErrNoDiscordAccount)
	})

	t.Run("resolves profile", func(t *testing.T) {
		repo := NewFakeUserRepo()
		repo.GetUserFunc = func(ctx context.Context, db bun.IDB, uid uuid.UUID) (*userdb.User, error) {
			return &userdb.User{ID: uid, DiscordID: ptr("177537158419054592")}, nil
		}
		lookup := &FakeProfileLookup{LookupUserFunc: func(ctx context.Context, discordID string) (*discord.Profile, error) {
			return &discord.Profile{ID: discordID, Username: "moonbear"}, nil
		}}
		p, err := newTestService(repo, lookup).GetDiscordProfile(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "moonbear", p.Username)
	})

	t.Run("unknown discord user", func(t *testing.T) {
		repo := NewFakeUserRepo()
		repo.GetUserFunc = func(ctx context.Context, db bun.IDB, uid uuid.UUID) (*userdb.User, error) {
			return &userdb.User{ID: uid, DiscordID: ptr("177537158419054592")}, nil
		}
		lookup := &FakeProfileLookup{LookupUserFunc: func(ctx context.Context, discordID string) (*discord.Profile, error) {
			return nil, discord.ErrUnknownUser
		}}
		_, err := newTestService(repo, lookup).GetDiscordProfile(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("no client configured", func(t *testing.T) {
		repo := NewFakeUserRepo()
		repo.GetUserFunc = func(ctx context.Context, db bun.IDB, uid uuid.UUID) (*userdb.User, error) {
			return &userdb.User{ID: uid, DiscordID: ptr("177537158419054592")}, nil
		}
		_, err := newTestService(repo, nil).GetDiscordProfile(context.Background(), id)
		assert.ErrorIs(t, err, discord.ErrNotConfigured)
	})
}

func TestCreateUserAction(t *testing.T) {
	target, actor, related := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name      string
		input     CreateActionInput
		setupRepo func(*FakeUserRepo)
		wantErr   string
		wantTrace []string
	}{
		{
			name: "related user on a note is rejected before any read",
			input: CreateActionInput{
				UserID: target, Type: userdomain.ActionNote, BanEvasionRelatedUser: &related,
				Description: "d", InternalNote: "n", CreatedBy: actor,
			},
			setupRepo: func(f *FakeUserRepo) {},
			wantErr:   "Cannot set related ban evasion user if type is not BAN_EVASION",
			wantTrace: []string{},
		},
		{
			name: "ban evasion keeps related user",
			input: CreateActionInput{
				UserID: target, Type: userdomain.ActionBanEvasion, BanEvasionRelatedUser: &related,
				Description: "alt account", InternalNote: "same ip", CreatedBy: actor,
			},
			setupRepo: func(f *FakeUserRepo) {
				f.UserExistsFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (bool, error) { return true, nil }
			},
			wantTrace: []string{"UserExists", "CreateAction"},
		},
		{
			name: "unknown target",
			input: CreateActionInput{
				UserID: target, Type: userdomain.ActionWarning, Description: "d", InternalNote: "n", CreatedBy: actor,
			},
			setupRepo: func(f *FakeUserRepo) {},
			wantErr:   "user not found",
			wantTrace: []string{"UserExists"},
		},
		{
			name: "missing actor",
			input: CreateActionInput{
				UserID: target, Type: userdomain.ActionWarning, Description: "d", InternalNote: "n",
			},
			setupRepo: func(f *FakeUserRepo) {},
			wantErr:   "acting user is required",
			wantTrace: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeUserRepo()
			tt.setupRepo(repo)

			got, err := newTestService(repo, nil).CreateUserAction(context.Background(), tt.input)
			assert.Equal(t, tt.wantTrace, repo.Trace())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got.BanEvasionRelatedUser)
			assert.Equal(t, related, *got.BanEvasionRelatedUser)
		})
	}
}

func TestRepealUserAction(t *testing.T) {
	id, actor := uuid.New(), uuid.New()

	t.Run("sets both repeal fields", func(t *testing.T) {
		repo := NewFakeUserRepo()
		repo.GetActionForUpdateFunc = func(ctx context.Context, db bun.IDB, aid uuid.UUID) (*userdb.UserAction, error) {
			return &userdb.UserAction{ID: aid}, nil
		}
		var gotBy uuid.UUID
		var gotAt time.Time
		repo.RepealActionFunc = func(ctx context.Context, db bun.IDB, aid, by uuid.UUID, at time.Time) error {
			gotBy, gotAt = by, at
			return nil
		}
		repo.GetActionFunc = func(ctx context.Context, db bun.IDB, aid uuid.UUID) (*userdb.UserAction, error) {
			return &userdb.UserAction{ID: aid, RepealedBy: &gotBy, RepealedAt: &gotAt}, nil
		}

		got, err := newTestService(repo, nil).RepealUserAction(context.Background(), id, actor)
		require.NoError(t, err)
		assert.Equal(t, actor, gotBy)
		assert.Equal(t, fixedNow, gotAt)
		assert.True(t, got.IsRepealed())
		assert.Equal(t, []string{"GetActionForUpdate", "RepealAction", "GetAction"}, repo.Trace())
	})

	t.Run("second repeal is rejected", func(t *testing.T) {
		repo := NewFakeUserRepo()
		repo.GetActionForUpdateFunc = func(ctx context.Context, db bun.IDB, aid uuid.UUID) (*userdb.UserAction, error) {
			at := fixedNow.Add(-time.Hour)
			return &userdb.UserAction{ID: aid, RepealedBy: &actor, RepealedAt: &at}, nil
		}
		_, err := newTestService(repo, nil).RepealUserAction(context.Background(), id, actor)
		assert.ErrorIs(t, err, ErrAlreadyRepealed)
		assert.Equal(t, []string{"GetActionForUpdate"}, repo.Trace())
	})

	t.Run("missing action", func(t *testing.T) {
		_, err := newTestService(NewFakeUserRepo(), nil).RepealUserAction(context.Background(), id, actor)
		assert.ErrorIs(t, err, ErrActionNotFound)
	})
}

func TestDeleteUserAction(t *testing.T) {
	repo := NewFakeUserRepo()
	repo.DeleteActionFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) error {
		return userdb.ErrNoRowsAffected
	}
	err := newTestService(repo, nil).DeleteUserAction(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrActionNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListUserActionsUnknownUser(t *testing.T) {
	repo := NewFakeUserRepo()
	_, err := newTestService(repo, nil).ListUserActions(context.Background(), uuid.New(), false)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, []string{"UserExists"}, repo.Trace())
}

func TestCreateUserTicket(t *testing.T) {
	userID := uuid.New()

	t.Run("ticket banned user", func(t *testing.T) {
		repo := NewFakeUserRepo()
		repo.GetUserFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.User, error) {
			return &userdb.User{ID: id, TicketBan: true}, nil
		}
		_, err := newTestService(repo, nil).CreateUserTicket(context.Background(), CreateTicketInput{
			UserID: userID, Description: "help", ThreadID: "1", FirstMessageID: "2",
		})
		assert.True(t, domain.IsValidationError(err))
		assert.Equal(t, []string{"GetUser"}, repo.Trace())
	})

	t.Run("opens ticket", func(t *testing.T) {
		repo := NewFakeUserRepo()
		repo.GetUserFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.User, error) {
			return &userdb.User{ID: id}, nil
		}
		got, err := newTestService(repo, nil).CreateUserTicket(context.Background(), CreateTicketInput{
			UserID: userID, Description: "help", Type: ptr(userdomain.TicketTripsit), ThreadID: "1", FirstMessageID: "2",
		})
		require.NoError(t, err)
		assert.Equal(t, userdomain.TicketOpen, got.Status)
	})
}

func TestUpdateUserTicketStatusTransitions(t *testing.T) {
	id, actor := uuid.New(), uuid.New()
	closedAt := fixedNow.Add(-time.Hour)

	tests := []struct {
		name    string
		current userdomain.TicketStatus
		next    userdomain.TicketStatus
		verify  func(t *testing.T, f *userdb.TicketUpdateFields)
	}{
		{
			name:    "closing stamps closed_at",
			current: userdomain.TicketOpen,
			next:    userdomain.TicketClosed,
			verify: func(t *testing.T, f *userdb.TicketUpdateFields) {
				require.NotNil(t, f.ClosedAt)
				assert.Equal(t, fixedNow, *f.ClosedAt)
				assert.Equal(t, &actor, f.ClosedBy)
				assert.False(t, f.ClearClosed)
			},
		},
		{
			name:    "resolving counts as closing",
			current: userdomain.TicketPaused,
			next:    userdomain.TicketResolved,
			verify: func(t *testing.T, f *userdb.TicketUpdateFields) {
				assert.NotNil(t, f.ClosedAt)
			},
		},
		{
			name:    "reopening clears closed fields",
			current: userdomain.TicketClosed,
			next:    userdomain.TicketOpen,
			verify: func(t *testing.T, f *userdb.TicketUpdateFields) {
				assert.True(t, f.ClearClosed)
				require.NotNil(t, f.ReopenedAt)
				assert.Equal(t, &actor, f.ReopenedBy)
			},
		},
		{
			name:    "open to paused leaves closed fields alone",
			current: userdomain.TicketOpen,
			next:    userdomain.TicketPaused,
			verify: func(t *testing.T, f *userdb.TicketUpdateFields) {
				assert.Nil(t, f.ClosedAt)
				assert.False(t, f.ClearClosed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeUserRepo()
			repo.GetTicketFunc = func(ctx context.Context, db bun.IDB, tid uuid.UUID) (*userdb.UserTicket, error) {
				tk := &userdb.UserTicket{ID: tid, Status: tt.current}
				if tt.current.IsClosed() {
					tk.ClosedAt = &closedAt
				}
				return tk, nil
			}
			var applied *userdb.TicketUpdateFields
			repo.UpdateTicketFunc = func(ctx context.Context, db bun.IDB, tid uuid.UUID, updates *userdb.TicketUpdateFields) error {
				applied = updates
				return nil
			}

			_, err := newTestService(repo, nil).UpdateUserTicket(context.Background(), id, TicketUpdate{Status: ptr(tt.next), ActorID: &actor})
			require.NoError(t, err)
			require.NotNil(t, applied)
			tt.verify(t, applied)
		})
	}
}

func TestUpdateUserTicketRejectsUnknownStatus(t *testing.T) {
	repo := NewFakeUserRepo()
	_, err := newTestService(repo, nil).UpdateUserTicket(context.Background(), uuid.New(), TicketUpdate{Status: ptr(userdomain.TicketStatus("DONE"))})
	assert.True(t, domain.IsValidationError(err))
	assert.Empty(t, repo.Trace())
}

func TestCreateUserExperience(t *testing.T) {
	userID := uuid.New()

	t.Run("duplicate type", func(t *testing.T) {
		repo := NewFakeUserRepo()
		repo.LockUserFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.User, error) {
			return &userdb.User{ID: id}, nil
		}
		repo.ExperienceTypesForUserFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) ([]userdomain.ExperienceType, error) {
			return []userdomain.ExperienceType{userdomain.ExperienceGeneral}, nil
		}
		_, err := newTestService(repo, nil).CreateUserExperience(context.Background(), CreateExperienceInput{
			UserID: userID, Type: userdomain.ExperienceGeneral, LastMessageChannel: "123",
		})
		assert.ErrorIs(t, err, ErrDuplicateExperience)
		assert.Equal(t, []string{"LockUser", "ExperienceTypesForUser"}, repo.Trace())
	})

	t.Run("new type", func(t *testing.T) {
		repo := NewFakeUserRepo()
		repo.LockUserFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (*userdb.User, error) {
			return &userdb.User{ID: id}, nil
		}
		got, err := newTestService(repo, nil).CreateUserExperience(context.Background(), CreateExperienceInput{
			UserID: userID, Type: userdomain.ExperienceTeam, Level: 3, LastMessageChannel: "123",
		})
		require.NoError(t, err)
		assert.Equal(t, 3, got.Level)
		assert.Equal(t, []string{"LockUser", "ExperienceTypesForUser", "CreateExperience"}, repo.Trace())
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := newTestService(NewFakeUserRepo(), nil).CreateUserExperience(context.Background(), CreateExperienceInput{
			UserID: userID, Type: userdomain.ExperienceTeam, LastMessageChannel: "123",
		})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
