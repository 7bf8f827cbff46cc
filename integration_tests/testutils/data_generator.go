package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	drugservice "github.com/tripsit/tripsit-api/app/modules/drug/application"
	drugdomain "github.com/tripsit/tripsit-api/app/modules/drug/domain"
	guildservice "github.com/tripsit/tripsit-api/app/modules/guild/application"
	userservice "github.com/tripsit/tripsit-api/app/modules/user/application"
)

// TestDataGenerator builds service inputs filled with fake but valid data.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  uint64
}

// NewTestDataGenerator seeds from the clock unless a seed is given.
func NewTestDataGenerator(seed ...uint64) *TestDataGenerator {
	s := uint64(time.Now().UnixNano())
	if len(seed) > 0 {
		s = seed[0]
	}
	return &TestDataGenerator{faker: gofakeit.New(s), seed: s}
}

func (g *TestDataGenerator) Seed() uint64 { return g.seed }

// Snowflake returns an 18 digit Discord id from 2015-2016.
func (g *TestDataGenerator) Snowflake() string {
	return "1" + g.faker.Numerify("#################")
}

func (g *TestDataGenerator) Sentence() string {
	return g.faker.Sentence(g.faker.Number(3, 8))
}

// UserInput fills every identity field so uniqueness checks have something
// to collide on.
func (g *TestDataGenerator) UserInput() userservice.CreateUserInput {
	email := g.faker.Email()
	username := g.faker.Username() + g.faker.Numerify("####")
	display := g.faker.Name()
	discordID := g.Snowflake()
	irc := g.faker.Username() + g.faker.Numerify("###")
	matrix := "@" + g.faker.Username() + g.faker.Numerify("###") + ":tripsit.me"
	return userservice.CreateUserInput{
		Email:       &email,
		Username:    &username,
		DisplayName: &display,
		DiscordID:   &discordID,
		IRCID:       &irc,
		MatrixID:    &matrix,
	}
}

func (g *TestDataGenerator) DrugInput() drugservice.CreateDrugInput {
	summary := g.Sentence()
	return drugservice.CreateDrugInput{
		DefaultName: g.faker.Word() + g.faker.Numerify("###"),
		NameType:    drugdomain.NameCommon,
		Summary:     &summary,
	}
}

func (g *TestDataGenerator) GuildInput() guildservice.UpsertGuildInput {
	modRoom := g.Snowflake()
	return guildservice.UpsertGuildInput{
		ID:        g.Snowflake(),
		ModRoomID: &modRoom,
	}
}

func (g *TestDataGenerator) BridgeInput() guildservice.CreateBridgeInput {
	return guildservice.CreateBridgeInput{
		InternalChannel: g.Snowflake(),
		InternalWebhook: "https://discord.com/api/webhooks/" + g.Snowflake() + "/" + g.faker.LetterN(32),
		ExternalGuild:   g.Snowflake(),
		ExternalChannel: g.Snowflake(),
	}
}
