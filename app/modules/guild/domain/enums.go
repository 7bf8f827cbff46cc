// Package guilddomain holds the guild and bridge enums and id rules.
package guilddomain

import (
	"strings"

	"github.com/tripsit/tripsit-api/internal/domain"
)

// BridgeStatus is the relay state of a bridge. Operators move bridges between
// states freely; only membership is checked.
type BridgeStatus string

const (
	BridgePending BridgeStatus = "PENDING"
	BridgeActive  BridgeStatus = "ACTIVE"
	BridgePaused  BridgeStatus = "PAUSED"
)

var BridgeStatuses = []BridgeStatus{BridgePending, BridgeActive, BridgePaused}

func (s BridgeStatus) IsValid() bool {
	switch s {
	case BridgePending, BridgeActive, BridgePaused:
		return true
	default:
		return false
	}
}

func (s BridgeStatus) String() string { return string(s) }

func ParseBridgeStatus(s string) (BridgeStatus, error) {
	v := BridgeStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !v.IsValid() {
		return "", domain.Invalidf("status", "unknown bridge status %q", s)
	}
	return v, nil
}

// AppealStatus starts at OPEN and ends at ACCEPTED or DENIED.
type AppealStatus string

const (
	AppealOpen     AppealStatus = "OPEN"
	AppealAccepted AppealStatus = "ACCEPTED"
	AppealDenied   AppealStatus = "DENIED"
)

var AppealStatuses = []AppealStatus{AppealOpen, AppealAccepted, AppealDenied}

func (s AppealStatus) IsValid() bool {
	switch s {
	case AppealOpen, AppealAccepted, AppealDenied:
		return true
	default:
		return false
	}
}

// IsDecision reports whether s closes an appeal.
func (s AppealStatus) IsDecision() bool {
	return s == AppealAccepted || s == AppealDenied
}

func (s AppealStatus) String() string { return string(s) }

func ParseAppealStatus(s string) (AppealStatus, error) {
	v := AppealStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !v.IsValid() {
		return "", domain.Invalidf("status", "unknown appeal status %q", s)
	}
	return v, nil
}

// Strings converts enum members for CREATE TYPE statements.
func Strings[T ~string](members []T) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = string(m)
	}
	return out
}
