package guildservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	guilddomain "github.com/tripsit/tripsit-api/app/modules/guild/domain"
	guilddb "github.com/tripsit/tripsit-api/app/modules/guild/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/domain"
	"github.com/tripsit/tripsit-api/internal/feeds"
	"github.com/tripsit/tripsit-api/internal/operation"
	"github.com/tripsit/tripsit-api/internal/results"
	"github.com/uptrace/bun"
)

type rssResult = results.OperationResult[*guilddb.GuildRss, error]

// fetchLatest reads the feed and turns unreachable or empty feeds into a
// validation failure on url.
func (s *GuildService) fetchLatest(ctx context.Context, url string) (results.OperationResult[string, error], error) {
	summary, err := s.feeds.Latest(ctx, url)
	if err != nil {
		if errors.Is(err, feeds.ErrEmptyFeed) {
			return results.FailureResult[string, error](domain.NewValidationError("url", "feed has no items")), nil
		}
		if ctx.Err() != nil {
			return results.OperationResult[string, error]{}, ctx.Err()
		}
		return results.FailureResult[string, error](domain.Invalidf("url", "feed could not be read: %v", err)), nil
	}
	return results.SuccessResult[string, error](summary.LatestItemID), nil
}

// CreateGuildRss fetches the feed once to prove it parses and seeds
// last_post_id with its newest item, so only later posts are announced.
func (s *GuildService) CreateGuildRss(ctx context.Context, in CreateGuildRssInput) (*guilddb.GuildRss, error) {
	return operation.RunPrepared(s.runner, ctx, "CreateGuildRss", in.GuildID,
		func(ctx context.Context) (results.OperationResult[string, error], error) {
			if err := firstInvalid(
				guilddomain.ValidateSnowflake("guildId", in.GuildID),
				guilddomain.ValidateSnowflake("destination", in.Destination),
			); err != nil {
				return results.FailureResult[string, error](err), nil
			}
			return s.fetchLatest(ctx, in.URL)
		},
		func(ctx context.Context, db bun.IDB, latest string) (rssResult, error) {
			rss := &guilddb.GuildRss{
				GuildID:     in.GuildID,
				URL:         in.URL,
				LastPostID:  latest,
				Destination: in.Destination,
			}
			if err := s.repo.CreateGuildRss(ctx, db, rss); err != nil {
				if failure := guildFailure(err); failure != nil {
					return results.FailureResult[*guilddb.GuildRss, error](failure), nil
				}
				return rssResult{}, err
			}
			return results.SuccessResult[*guilddb.GuildRss, error](rss), nil
		})
}

func (s *GuildService) ListGuildRss(ctx context.Context, guildID string) ([]*guilddb.GuildRss, error) {
	return operation.Run(s.runner, ctx, "ListGuildRss", guildID,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]*guilddb.GuildRss, error], error) {
			failure, err := s.requireGuild(ctx, db, guildID)
			if err != nil {
				return results.OperationResult[[]*guilddb.GuildRss, error]{}, err
			}
			if failure != nil {
				return results.FailureResult[[]*guilddb.GuildRss, error](failure), nil
			}
			entries, err := s.repo.ListGuildRss(ctx, db, guildID)
			if err != nil {
				return results.OperationResult[[]*guilddb.GuildRss, error]{}, err
			}
			if entries == nil {
				entries = []*guilddb.GuildRss{}
			}
			return results.SuccessResult[[]*guilddb.GuildRss, error](entries), nil
		})
}

type refreshed struct {
	entry  *guilddb.GuildRss
	latest string
}

// RefreshGuildRss re-reads the feed and records its newest item. The lookup
// and fetch run before the write transaction opens.
func (s *GuildService) RefreshGuildRss(ctx context.Context, id uuid.UUID) (*guilddb.GuildRss, error) {
	return operation.RunPrepared(s.runner, ctx, "RefreshGuildRss", id.String(),
		func(ctx context.Context) (results.OperationResult[refreshed, error], error) {
			entry, err := s.repo.GetGuildRss(ctx, nil, id)
			if err != nil {
				if errors.Is(err, guilddb.ErrNotFound) {
					return results.FailureResult[refreshed, error](ErrGuildRssNotFound), nil
				}
				return results.OperationResult[refreshed, error]{}, err
			}
			latest, err := s.fetchLatest(ctx, entry.URL)
			if err != nil {
				return results.OperationResult[refreshed, error]{}, err
			}
			if latest.IsFailure() {
				return results.FailureResult[refreshed, error](*latest.Failure), nil
			}
			return results.SuccessResult[refreshed, error](refreshed{entry: entry, latest: *latest.Success}), nil
		},
		func(ctx context.Context, db bun.IDB, r refreshed) (rssResult, error) {
			if r.latest == r.entry.LastPostID {
				return results.SuccessResult[*guilddb.GuildRss, error](r.entry), nil
			}
			if err := s.repo.UpdateLastPostID(ctx, db, id, r.latest); err != nil {
				if errors.Is(err, guilddb.ErrNoRowsAffected) {
					return results.FailureResult[*guilddb.GuildRss, error](ErrGuildRssNotFound), nil
				}
				return rssResult{}, err
			}
			r.entry.LastPostID = r.latest
			return results.SuccessResult[*guilddb.GuildRss, error](r.entry), nil
		})
}

func (s *GuildService) DeleteGuildRss(ctx context.Context, id uuid.UUID) error {
	_, err := operation.Run(s.runner, ctx, "DeleteGuildRss", id.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
			return deleted(s.repo.DeleteGuildRss(ctx, db, id), ErrGuildRssNotFound)
		})
	return err
}
