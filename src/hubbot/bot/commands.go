package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	CommandStart      = "start"
	CommandTrends     = "trends"
	CommandVote       = "vote"
	CommandPromote    = "promote"
	CommandWallets    = "wallets"
	CommandServices   = "services"
	CommandAddProject = "addproject"
)

var commandDefinitions = map[string]*discordgo.ApplicationCommand{
	CommandStart: {
		Name:        CommandStart,
		Description: "Show the promotion hub menu",
	},
	CommandTrends: {
		Name:        CommandTrends,
		Description: "Show the top 5 cryptocurrencies with 24h price change",
	},
	CommandVote: {
		Name:        CommandVote,
		Description: "Vote for community Web3 projects",
	},
	CommandPromote: {
		Name:        CommandPromote,
		Description: "Offer a service for admin review",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "description",
				Description: "Describe your service (skips the category menu)",
				Required:    false,
			},
		},
	},
	CommandWallets: {
		Name:        CommandWallets,
		Description: "Show verified wallet addresses",
	},
	CommandServices: {
		Name:        CommandServices,
		Description: "Browse active service offerings",
	},
	CommandAddProject: {
		Name:        CommandAddProject,
		Description: "Add a project to the voting list (admins only)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Project name",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "description",
				Description: "Short project description",
				Required:    false,
			},
		},
	},
}

var commandOrder = []string{
	CommandStart,
	CommandTrends,
	CommandVote,
	CommandPromote,
	CommandWallets,
	CommandServices,
	CommandAddProject,
}

// registerSlashCommands registers all known commands for the guild. An
// already-registered command is not an error.
func registerSlashCommands(s *discordgo.Session, guildID string) error {
	var failures []string
	for _, name := range commandOrder {
		definition := commandDefinitions[name]
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, definition)
		if err != nil {
			if isDuplicateCommandError(err) {
				log.Printf("bot: slash command %q already registered", name)
				continue
			}
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
			log.Printf("bot: failed to register command %q: %v", name, err)
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("slash command registration errors: %s", strings.Join(failures, "; "))
	}
	return nil
}

func isDuplicateCommandError(err error) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		if strings.Contains(strings.ToLower(restErr.Message.Message), "already exists") {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "50035") && strings.Contains(msg, "already exists")
}
