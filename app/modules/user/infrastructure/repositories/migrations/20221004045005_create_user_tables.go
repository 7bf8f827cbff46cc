package usermigrations

import (
	"context"
	"fmt"

	userdomain "github.com/tripsit/tripsit-api/app/modules/user/domain"
	"github.com/tripsit/tripsit-api/internal/ledger"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating user tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if err := ledger.CreateEnum(ctx, tx, "user_action_type", userdomain.Strings(userdomain.ActionTypes)...); err != nil {
				return err
			}
			if err := ledger.CreateEnum(ctx, tx, "ticket_type", userdomain.Strings(userdomain.TicketTypes)...); err != nil {
				return err
			}
			if err := ledger.CreateEnum(ctx, tx, "ticket_status", "OPEN", "CLOSED", "BLOCKED", "PAUSED"); err != nil {
				return err
			}
			if err := ledger.CreateEnum(ctx, tx, "experience_type", userdomain.Strings(userdomain.ExperienceTypes)...); err != nil {
				return err
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS users (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					email TEXT,
					username TEXT,
					display_name TEXT,
					password_hash TEXT,
					discord_id TEXT,
					irc_id TEXT,
					matrix_id TEXT,
					lastfm_username TEXT,
					mod_thread_id TEXT,
					timezone TEXT,
					birthday TIMESTAMPTZ,
					karma_given INTEGER NOT NULL DEFAULT 0 CHECK (karma_given >= 0),
					karma_received INTEGER NOT NULL DEFAULT 0 CHECK (karma_received >= 0),
					sparkle_points INTEGER NOT NULL DEFAULT 0 CHECK (sparkle_points >= 0),
					discord_bot_ban BOOLEAN NOT NULL DEFAULT FALSE,
					ticket_ban BOOLEAN NOT NULL DEFAULT FALSE,
					partner BOOLEAN NOT NULL DEFAULT FALSE,
					supporter BOOLEAN NOT NULL DEFAULT FALSE,
					last_seen TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT users_email_key UNIQUE (email),
					CONSTRAINT users_username_key UNIQUE (username),
					CONSTRAINT users_discord_id_key UNIQUE (discord_id),
					CONSTRAINT users_irc_id_key UNIQUE (irc_id),
					CONSTRAINT users_matrix_id_key UNIQUE (matrix_id),
					CONSTRAINT users_lastfm_username_key UNIQUE (lastfm_username)
				);
			`); err != nil {
				return fmt.Errorf("failed to create users table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS user_actions (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					user_id UUID NOT NULL REFERENCES users(id),
					type user_action_type NOT NULL,
					ban_evasion_related_user UUID REFERENCES users(id),
					description TEXT NOT NULL,
					internal_note TEXT NOT NULL,
					expires_at TIMESTAMPTZ,
					repealed_by UUID REFERENCES users(id),
					repealed_at TIMESTAMPTZ,
					created_by UUID NOT NULL REFERENCES users(id),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT user_actions_repeal_pair CHECK ((repealed_by IS NULL) = (repealed_at IS NULL))
				);
				CREATE INDEX IF NOT EXISTS idx_user_actions_user_id ON user_actions(user_id);
			`); err != nil {
				return fmt.Errorf("failed to create user_actions table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS user_tickets (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					user_id UUID NOT NULL REFERENCES users(id),
					description TEXT NOT NULL,
					type ticket_type,
					status ticket_status NOT NULL DEFAULT 'OPEN',
					thread_id TEXT NOT NULL,
					first_message_id TEXT NOT NULL,
					closed_by UUID REFERENCES users(id),
					closed_at TIMESTAMPTZ,
					reopened_by UUID REFERENCES users(id),
					reopened_at TIMESTAMPTZ,
					archived_at TIMESTAMPTZ,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_user_tickets_user_id ON user_tickets(user_id);
			`); err != nil {
				return fmt.Errorf("failed to create user_tickets table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS user_experience (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					user_id UUID NOT NULL REFERENCES users(id),
					type experience_type NOT NULL,
					level INTEGER NOT NULL DEFAULT 0,
					level_points INTEGER NOT NULL DEFAULT 0,
					total_points INTEGER NOT NULL DEFAULT 0,
					last_message_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					last_message_channel TEXT NOT NULL,
					mee6_converted BOOLEAN NOT NULL DEFAULT FALSE,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_user_experience_user_type ON user_experience(user_id, type);
			`); err != nil {
				return fmt.Errorf("failed to create user_experience table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping user tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DROP TABLE IF EXISTS user_experience;
				DROP TABLE IF EXISTS user_tickets;
				DROP TABLE IF EXISTS user_actions;
				DROP TABLE IF EXISTS users;
			`); err != nil {
				return fmt.Errorf("failed to drop user tables: %w", err)
			}
			for _, name := range []string{"experience_type", "ticket_status", "ticket_type", "user_action_type"} {
				if err := ledger.DropEnum(ctx, tx, name); err != nil {
					return err
				}
			}
			return nil
		})
	})
}
