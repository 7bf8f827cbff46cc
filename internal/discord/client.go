// Package discord resolves Discord user ids to public profile fields.
package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/bwmarrin/snowflake"
	"github.com/patrickmn/go-cache"
	"github.com/tripsit/tripsit-api/internal/observability/attr"
)

var (
	ErrInvalidID     = errors.New("discord: invalid user id")
	ErrUnknownUser   = errors.New("discord: unknown user")
	ErrNotConfigured = errors.New("discord: client not configured")
)

// Profile is the subset of a Discord user the API exposes.
type Profile struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"globalName,omitempty"`
	AvatarURL  string `json:"avatarUrl"`
	Bot        bool   `json:"bot"`
}

// UserFetcher is the slice of *discordgo.Session the client needs.
type UserFetcher interface {
	User(userID string, options ...discordgo.RequestOption) (*discordgo.User, error)
}

// Client looks users up over the Discord REST API and caches the answers.
type Client struct {
	fetcher UserFetcher
	cache   *cache.Cache
	logger  *slog.Logger
}

// New opens a bot-token REST session. No gateway connection is made.
func New(token string, ttl time.Duration, logger *slog.Logger) (*Client, error) {
	if token == "" {
		return nil, ErrNotConfigured
	}
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord: create session: %w", err)
	}
	return NewWithFetcher(session, ttl, logger), nil
}

// NewWithFetcher builds a client over any UserFetcher.
func NewWithFetcher(f UserFetcher, ttl time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Client{
		fetcher: f,
		cache:   cache.New(ttl, 2*ttl),
		logger:  logger,
	}
}

// LookupUser returns the profile of a Discord user.
func (c *Client) LookupUser(ctx context.Context, discordID string) (*Profile, error) {
	if _, err := snowflake.ParseString(discordID); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, discordID)
	}

	if cached, ok := c.cache.Get(discordID); ok {
		return cached.(*Profile), nil
	}

	u, err := c.fetcher.User(discordID, discordgo.WithContext(ctx))
	if err != nil {
		var restErr *discordgo.RESTError
		if errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound {
			return nil, ErrUnknownUser
		}
		c.logger.WarnContext(ctx, "Discord user lookup failed",
			attr.ExtractCorrelationID(ctx),
			attr.String("discord_id", discordID),
			attr.Error(err),
		)
		return nil, fmt.Errorf("discord: lookup user: %w", err)
	}

	p := &Profile{
		ID:         u.ID,
		Username:   u.Username,
		GlobalName: u.GlobalName,
		AvatarURL:  u.AvatarURL("256"),
		Bot:        u.Bot,
	}
	c.cache.SetDefault(discordID, p)
	return p, nil
}
