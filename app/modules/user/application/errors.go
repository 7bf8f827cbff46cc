package userservice

import (
	"fmt"

	userdomain "github.com/tripsit/tripsit-api/app/modules/user/domain"
	"github.com/tripsit/tripsit-api/internal/domain"
)

var (
	ErrUserNotFound        = domain.NewNotFound("user not found")
	ErrActionNotFound      = domain.NewNotFound("user action not found")
	ErrTicketNotFound      = domain.NewNotFound("user ticket not found")
	ErrExperienceNotFound  = domain.NewNotFound("user experience not found")
	ErrNoDiscordAccount    = domain.NewNotFound("user has no linked discord account")
	ErrAlreadyRepealed     = domain.NewConflict("user action already repealed")
	ErrDuplicateIdentity   = domain.NewConflict("duplicate identity")
	ErrDuplicateExperience = userdomain.ErrDuplicateExperience
)

// DuplicateIdentityError names the identity field that is already taken.
type DuplicateIdentityError struct {
	Field string
}

func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("a user with this %s already exists", e.Field)
}

func (e *DuplicateIdentityError) Unwrap() error { return ErrDuplicateIdentity }

// identityConstraints maps unique constraint names on users to field names.
var identityConstraints = map[string]string{
	"users_email_key":           "email",
	"users_username_key":        "username",
	"users_discord_id_key":      "discordId",
	"users_irc_id_key":          "ircId",
	"users_matrix_id_key":       "matrixId",
	"users_lastfm_username_key": "lastfmUsername",
}

func duplicateIdentity(constraint string) *DuplicateIdentityError {
	field, ok := identityConstraints[constraint]
	if !ok {
		field = "identity"
	}
	return &DuplicateIdentityError{Field: field}
}
