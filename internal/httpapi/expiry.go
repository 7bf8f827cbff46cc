package httpapi

import (
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/tripsit/tripsit-api/internal/domain"
)

var expiryParser = newExpiryParser()

func newExpiryParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// ParseExpiry turns an RFC 3339 timestamp or a phrase such as "in 3 days"
// into a UTC time after now.
func ParseExpiry(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, domain.NewValidationError("expiresIn", "expiry is empty")
	}

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return future(t, now)
	}

	r, err := expiryParser.Parse(strings.ToLower(input), now)
	if err != nil || r == nil {
		return time.Time{}, domain.Invalidf("expiresIn", "could not understand expiry %q", input)
	}
	return future(r.Time, now)
}

func future(t, now time.Time) (time.Time, error) {
	if !t.After(now) {
		return time.Time{}, domain.NewValidationError("expiresIn", "expiry must be in the future")
	}
	return t.UTC(), nil
}
