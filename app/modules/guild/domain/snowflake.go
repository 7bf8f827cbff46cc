package guilddomain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/tripsit/tripsit-api/internal/domain"
)

// discordEpoch is 2015-01-01T00:00:00Z in milliseconds.
const discordEpoch int64 = 1420070400000

// ValidateSnowflake checks that id is a Discord snowflake: a positive decimal
// integer whose timestamp is not in the future.
func ValidateSnowflake(field, id string) error {
	if id == "" {
		return domain.Invalidf(field, "%s is required", field)
	}
	sf, err := snowflake.ParseString(id)
	if err != nil || sf.Int64() <= 0 {
		return domain.Invalidf(field, "%s must be a Discord snowflake", field)
	}
	if SnowflakeTime(sf).After(time.Now().Add(time.Minute)) {
		return domain.Invalidf(field, "%s must be a Discord snowflake", field)
	}
	return nil
}

// SnowflakeTime returns the creation time encoded in a Discord snowflake.
func SnowflakeTime(id snowflake.ID) time.Time {
	ms := (id.Int64() >> 22) + discordEpoch
	return time.UnixMilli(ms).UTC()
}
