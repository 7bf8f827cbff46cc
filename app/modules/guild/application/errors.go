package guildservice

import "github.com/tripsit/tripsit-api/internal/domain"

var (
	ErrGuildNotFound             = domain.NewNotFound("guild not found")
	ErrReactionRoleNotFound      = domain.NewNotFound("reaction role not found")
	ErrGuildRssNotFound          = domain.NewNotFound("guild rss feed not found")
	ErrBridgeNotFound            = domain.NewNotFound("bridge not found")
	ErrAppealNotFound            = domain.NewNotFound("appeal not found")
	ErrAppealUserNotFound        = domain.NewNotFound("user not found")
	ErrUniqueConstraintViolation = domain.NewConflict("a bridge between these channels already exists")
	ErrAppealAlreadyDecided      = domain.NewConflict("appeal has already been decided")
)
