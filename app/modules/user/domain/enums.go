package userdomain

import (
	"strings"

	"github.com/tripsit/tripsit-api/internal/domain"
)

// ActionType classifies a moderation log entry.
type ActionType string

const (
	ActionNote          ActionType = "NOTE"
	ActionWarning       ActionType = "WARNING"
	ActionFullBan       ActionType = "FULL_BAN"
	ActionTicketBan     ActionType = "TICKET_BAN"
	ActionDiscordBotBan ActionType = "DISCORD_BOT_BAN"
	ActionBanEvasion    ActionType = "BAN_EVASION"
	ActionUnderban      ActionType = "UNDERBAN"
	ActionTimeout       ActionType = "TIMEOUT"
	ActionReport        ActionType = "REPORT"
	ActionKick          ActionType = "KICK"
)

// ActionTypes lists every member in schema order.
var ActionTypes = []ActionType{
	ActionNote, ActionWarning, ActionFullBan, ActionTicketBan, ActionDiscordBotBan,
	ActionBanEvasion, ActionUnderban, ActionTimeout, ActionReport, ActionKick,
}

func (t ActionType) IsValid() bool {
	switch t {
	case ActionNote, ActionWarning, ActionFullBan, ActionTicketBan, ActionDiscordBotBan,
		ActionBanEvasion, ActionUnderban, ActionTimeout, ActionReport, ActionKick:
		return true
	default:
		return false
	}
}

func (t ActionType) String() string { return string(t) }

// ParseActionType accepts any letter case.
func ParseActionType(s string) (ActionType, error) {
	t := ActionType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", domain.Invalidf("type", "unknown user action type %q", s)
	}
	return t, nil
}

// TicketType classifies a support ticket.
type TicketType string

const (
	TicketAppeal   TicketType = "APPEAL"
	TicketTripsit  TicketType = "TRIPSIT"
	TicketTech     TicketType = "TECH"
	TicketFeedback TicketType = "FEEDBACK"
)

var TicketTypes = []TicketType{TicketAppeal, TicketTripsit, TicketTech, TicketFeedback}

func (t TicketType) IsValid() bool {
	switch t {
	case TicketAppeal, TicketTripsit, TicketTech, TicketFeedback:
		return true
	default:
		return false
	}
}

func (t TicketType) String() string { return string(t) }

func ParseTicketType(s string) (TicketType, error) {
	t := TicketType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", domain.Invalidf("type", "unknown ticket type %q", s)
	}
	return t, nil
}

// TicketStatus is the lifecycle state of a ticket. Transitions are not
// constrained; any member may follow any other.
type TicketStatus string

const (
	TicketOpen     TicketStatus = "OPEN"
	TicketClosed   TicketStatus = "CLOSED"
	TicketBlocked  TicketStatus = "BLOCKED"
	TicketPaused   TicketStatus = "PAUSED"
	TicketResolved TicketStatus = "RESOLVED"
)

var TicketStatuses = []TicketStatus{TicketOpen, TicketClosed, TicketBlocked, TicketPaused, TicketResolved}

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketOpen, TicketClosed, TicketBlocked, TicketPaused, TicketResolved:
		return true
	default:
		return false
	}
}

// IsClosed reports whether the status ends the ticket's active life.
func (s TicketStatus) IsClosed() bool {
	return s == TicketClosed || s == TicketResolved
}

func (s TicketStatus) String() string { return string(s) }

func ParseTicketStatus(s string) (TicketStatus, error) {
	st := TicketStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", domain.Invalidf("status", "unknown ticket status %q", s)
	}
	return st, nil
}

// ExperienceType is the track a leveling record counts toward.
type ExperienceType string

const (
	ExperienceTotal      ExperienceType = "TOTAL"
	ExperienceGeneral    ExperienceType = "GENERAL"
	ExperienceTripsitter ExperienceType = "TRIPSITTER"
	ExperienceDeveloper  ExperienceType = "DEVELOPER"
	ExperienceTeam       ExperienceType = "TEAM"
	ExperienceIgnored    ExperienceType = "IGNORED"
)

var ExperienceTypes = []ExperienceType{
	ExperienceTotal, ExperienceGeneral, ExperienceTripsitter, ExperienceDeveloper, ExperienceTeam, ExperienceIgnored,
}

func (t ExperienceType) IsValid() bool {
	switch t {
	case ExperienceTotal, ExperienceGeneral, ExperienceTripsitter, ExperienceDeveloper, ExperienceTeam, ExperienceIgnored:
		return true
	default:
		return false
	}
}

func (t ExperienceType) String() string { return string(t) }

func ParseExperienceType(s string) (ExperienceType, error) {
	t := ExperienceType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", domain.Invalidf("type", "unknown experience type %q", s)
	}
	return t, nil
}

// Strings converts enum members to their wire form, e.g. for CREATE TYPE.
func Strings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
