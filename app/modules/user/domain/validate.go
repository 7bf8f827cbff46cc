// Package userdomain holds the identity and moderation rules that storage does
// not enforce on its own.
package userdomain

import (
	"time"

	"github.com/google/uuid"
	"github.com/tripsit/tripsit-api/internal/domain"
)

// ErrDuplicateExperience is returned when a user already has a row of the
// requested experience type.
var ErrDuplicateExperience = domain.NewConflict("user already has experience of this type")

// BanEvasionMessage is returned verbatim when a related user is set on an
// action that is not a ban evasion.
const BanEvasionMessage = "Cannot set related ban evasion user if type is not BAN_EVASION"

// ValidateBanEvasion allows a related user only on BAN_EVASION actions.
func ValidateBanEvasion(t ActionType, relatedUser *uuid.UUID) error {
	if relatedUser != nil && t != ActionBanEvasion {
		return domain.NewValidationError("banEvasionRelatedUser", BanEvasionMessage)
	}
	return nil
}

// ValidateAction checks a new action before it is written.
func ValidateAction(t ActionType, relatedUser *uuid.UUID, description, internalNote string) error {
	if !t.IsValid() {
		return domain.Invalidf("type", "unknown user action type %q", t)
	}
	if err := ValidateBanEvasion(t, relatedUser); err != nil {
		return err
	}
	if description == "" {
		return domain.NewValidationError("description", "description is required")
	}
	if internalNote == "" {
		return domain.NewValidationError("internalNote", "internal note is required")
	}
	return nil
}

// ValidateTimezone accepts IANA zone names.
func ValidateTimezone(tz string) error {
	if tz == "" {
		return nil
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return domain.Invalidf("timezone", "unknown timezone %q", tz)
	}
	return nil
}

// ValidateCounter rejects negative karma and sparkle values.
func ValidateCounter(field string, v int) error {
	if v < 0 {
		return domain.Invalidf(field, "%s cannot be negative", field)
	}
	return nil
}

// ValidateTicketAllowed blocks ticket creation for ticket-banned users.
func ValidateTicketAllowed(ticketBanned bool) error {
	if ticketBanned {
		return domain.NewValidationError("userId", "user is banned from creating tickets")
	}
	return nil
}

// ValidateNewExperience enforces one experience row per (user, type).
func ValidateNewExperience(existing []ExperienceType, t ExperienceType) error {
	if !t.IsValid() {
		return domain.Invalidf("type", "unknown experience type %q", t)
	}
	for _, e := range existing {
		if e == t {
			return ErrDuplicateExperience
		}
	}
	return nil
}
