package bot

import (
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/promo-labs/web3-promo-hub/src/hubbot/components/market"
	"github.com/promo-labs/web3-promo-hub/src/hubbot/components/services"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	pendingTTL      = 15 * time.Minute
	cleanupInterval = 5 * time.Minute
)

type Config struct {
	Token        string
	GuildID      string
	AdminIDs     []string
	CoinGeckoURL string
	DB           *gorm.DB
	Redis        *redis.Client
}

type Bot struct {
	session *discordgo.Session
	db      *gorm.DB
	rdb     *redis.Client
	config  Config
	market  *market.Client
	pending *services.PendingStore
}

func New(config Config) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		session: dg,
		db:      config.DB,
		rdb:     config.Redis,
		config:  config,
		market:  market.NewClient(config.CoinGeckoURL),
		pending: services.NewPendingStore(pendingTTL),
	}
	bot.pending.StartCleanup(cleanupInterval)

	dg.AddHandler(bot.handleReady)
	dg.AddHandler(bot.handleInteractionCreate)
	dg.AddHandler(bot.handleMessageCreate)

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsDirectMessages

	return bot, nil
}

func (b *Bot) Start() error {
	return b.session.Open()
}

func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) handleReady(s *discordgo.Session, event *discordgo.Ready) {
	log.Printf("bot: logged in as %s", event.User.Username)

	if err := registerSlashCommands(s, b.config.GuildID); err != nil {
		log.Printf("bot: slash command registration: %v", err)
	}
}

func (b *Bot) isAdmin(userID string) bool {
	for _, id := range b.config.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// messenger adapts the Discord session to the services.Messenger interface.
type messenger struct {
	s *discordgo.Session
}

func (m messenger) DirectMessage(userID, content string) error {
	channel, err := m.s.UserChannelCreate(userID)
	if err != nil {
		return err
	}
	_, err = m.s.ChannelMessageSend(channel.ID, content)
	return err
}
