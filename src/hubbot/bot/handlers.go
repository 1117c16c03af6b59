package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/promo-labs/web3-promo-hub/src/hubbot/components/callback"
	"github.com/promo-labs/web3-promo-hub/src/hubbot/components/market"
	"github.com/promo-labs/web3-promo-hub/src/hubbot/components/services"
	"github.com/promo-labs/web3-promo-hub/src/hubbot/components/voting"
	"github.com/promo-labs/web3-promo-hub/src/hubbot/components/wallets"
	"github.com/promo-labs/web3-promo-hub/src/shared/data"
	"github.com/promo-labs/web3-promo-hub/src/shared/types"
)

const welcomeText = "🌐 Web3 Promotion Hub\n\n" +
	"1. Vote for projects ↗️\n" +
	"2. Check crypto trends 📊\n" +
	"3. Offer/find services 💼\n" +
	"4. View official wallets 🔐\n\n" +
	"Choose an option:"

func (b *Bot) handleInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleSlashCommand(s, i)
	case discordgo.InteractionMessageComponent:
		b.handleComponent(s, i)
	}
}

func (b *Bot) handleSlashCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case CommandStart:
		b.respondStart(s, i)
	case CommandTrends:
		b.respondTrends(s, i)
	case CommandVote:
		b.respondVoteMenu(s, i)
	case CommandPromote:
		b.respondPromote(s, i)
	case CommandWallets:
		b.respondWallets(s, i)
	case CommandServices:
		b.respondFindServices(s, i)
	case CommandAddProject:
		b.respondAddProject(s, i)
	}
}

func (b *Bot) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	action, err := callback.Parse(i.MessageComponentData().CustomID)
	if err != nil {
		log.Printf("bot: rejected component interaction: %v", err)
		respondEphemeral(s, i, "⚠️ That button is no longer supported.")
		return
	}

	switch action.Kind {
	case callback.KindCastVote:
		b.respondCastVote(s, i, action.ProjectID)
	case callback.KindPickCategory:
		b.respondPickCategory(s, i, action.Category)
	case callback.KindServiceMenu:
		b.respondServiceMenu(s, i)
	case callback.KindVoteMenu:
		b.respondVoteMenu(s, i)
	case callback.KindTrends:
		b.respondTrends(s, i)
	case callback.KindWallets:
		b.respondWallets(s, i)
	case callback.KindFindServices:
		b.respondFindServices(s, i)
	}
}

// handleMessageCreate captures the free-text description after a category
// was picked. Every other plain message is ignored.
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.Author.ID == s.State.User.ID {
		return
	}
	if strings.TrimSpace(m.Content) == "" {
		return
	}

	category, ok := b.pending.Take(m.Author.ID)
	if !ok {
		return
	}

	svc, err := services.Submit(b.db, m.Author.ID, category, m.Content)
	if err != nil {
		log.Printf("bot: service submission failed for %s: %v", m.Author.ID, err)
		s.ChannelMessageSend(m.ChannelID, "⚠️ Failed to submit your service. Please try again.")
		return
	}

	b.afterSubmit(s, svc)
	s.ChannelMessageSend(m.ChannelID, "✅ Service submitted to admins!")
}

func (b *Bot) respondStart(s *discordgo.Session, i *discordgo.InteractionCreate) {
	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "📊 Vote Projects", Style: discordgo.PrimaryButton, CustomID: "vote_menu"},
			discordgo.Button{Label: "📈 Market Trends", Style: discordgo.PrimaryButton, CustomID: "trends"},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "🛍️ Offer Services", Style: discordgo.SecondaryButton, CustomID: "service_menu"},
			discordgo.Button{Label: "🔍 Find Services", Style: discordgo.SecondaryButton, CustomID: "find_services"},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "🔑 Wallet Addresses", Style: discordgo.SecondaryButton, CustomID: "wallets"},
		}},
	}

	respondWithComponents(s, i, welcomeText, components)
}

func (b *Bot) respondTrends(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coins, err := b.market.TopMovers(ctx)
	if err != nil {
		log.Printf("bot: trends fetch failed: %v", err)
		respond(s, i, market.FallbackText)
		return
	}
	respond(s, i, market.FormatTrends(coins))
}

func (b *Bot) respondVoteMenu(s *discordgo.Session, i *discordgo.InteractionCreate) {
	projects, err := voting.Top(b.db, 10)
	if err != nil {
		log.Printf("bot: load projects failed: %v", err)
		respond(s, i, "⚠️ Failed to load projects. Please try again.")
		return
	}

	if len(projects) == 0 {
		respond(s, i, "📭 No projects available for voting yet!\nAdmins can add projects with /addproject")
		return
	}

	var rows []discordgo.MessageComponent
	var currentRow []discordgo.MessageComponent
	for _, project := range projects {
		button := discordgo.Button{
			Label:    fmt.Sprintf("%s (👍 %d)", project.Name, project.Votes),
			Style:    discordgo.SecondaryButton,
			CustomID: callback.VoteID(project.ID),
		}
		currentRow = append(currentRow, button)
		if len(currentRow) == 2 {
			rows = append(rows, discordgo.ActionsRow{Components: currentRow})
			currentRow = nil
		}
	}
	if len(currentRow) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: currentRow})
	}

	respondWithComponents(s, i, "🗳️ Vote for Web3 Projects\nCommunity-ranked top 10:", rows)
}

func (b *Bot) respondCastVote(s *discordgo.Session, i *discordgo.InteractionCreate, projectID uint64) {
	userID := interactionUserID(i)
	if userID == "" {
		return
	}

	err := voting.Cast(b.db, userID, projectID)
	switch {
	case err == nil:
		b.publishEvent(map[string]interface{}{
			"kind":    "vote",
			"user":    userID,
			"project": projectID,
			"time":    time.Now().Unix(),
		})
		respondEphemeral(s, i, "✅ Your vote has been counted! Project ranking updated.")
	case errors.Is(err, voting.ErrAlreadyVoted):
		respondEphemeral(s, i, "⚠️ You've already voted for this project!")
	default:
		log.Printf("bot: vote processing error: %v", err)
		respondEphemeral(s, i, "⚠️ Failed to process your vote. Please try again.")
	}
}

func (b *Bot) respondServiceMenu(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var rows []discordgo.MessageComponent
	var currentRow []discordgo.MessageComponent
	for _, category := range services.CategoryOrder {
		button := discordgo.Button{
			Label:    services.Label(category),
			Style:    discordgo.SecondaryButton,
			CustomID: callback.CategoryID(category),
		}
		currentRow = append(currentRow, button)
		if len(currentRow) == 2 {
			rows = append(rows, discordgo.ActionsRow{Components: currentRow})
			currentRow = nil
		}
	}
	if len(currentRow) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: currentRow})
	}

	respondWithComponents(s, i, "🎯 Select your service type:", rows)
}

func (b *Bot) respondPickCategory(s *discordgo.Session, i *discordgo.InteractionCreate, category string) {
	if !services.ValidCategory(category) {
		log.Printf("bot: rejected unknown service category %q", category)
		respondEphemeral(s, i, "⚠️ Unknown service category.")
		return
	}

	userID := interactionUserID(i)
	if userID == "" {
		return
	}
	b.pending.Set(userID, category)

	respond(s, i, fmt.Sprintf(
		"✍️ Describe your %s:\n\n"+
			"Example: \"I provide Twitter shilling for new NFT projects with 10K+ follower network\"\n\n"+
			"Type your description now:",
		services.Label(category),
	))
}

func (b *Bot) respondPromote(s *discordgo.Session, i *discordgo.InteractionCreate) {
	description := ""
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "description" {
			description = strings.TrimSpace(opt.StringValue())
		}
	}

	if description == "" {
		b.respondServiceMenu(s, i)
		return
	}

	userID := interactionUserID(i)
	if userID == "" {
		return
	}

	svc, err := services.Submit(b.db, userID, services.CategoryCustom, description)
	if err != nil {
		log.Printf("bot: service submission failed for %s: %v", userID, err)
		respondEphemeral(s, i, "⚠️ Failed to submit your service. Please try again.")
		return
	}

	b.afterSubmit(s, svc)
	respond(s, i, "✅ Service submitted to admins!")
}

func (b *Bot) respondWallets(s *discordgo.Session, i *discordgo.InteractionCreate) {
	list, err := wallets.All(b.db)
	if err != nil {
		log.Printf("bot: load wallets failed: %v", err)
		respond(s, i, "⚠️ Failed to load wallets. Please try again.")
		return
	}
	respond(s, i, wallets.Format(list))
}

func (b *Bot) respondFindServices(s *discordgo.Session, i *discordgo.InteractionCreate) {
	list, err := services.FindActive(b.db, 10)
	if err != nil {
		log.Printf("bot: load services failed: %v", err)
		respond(s, i, "⚠️ Failed to load services. Please try again.")
		return
	}
	respond(s, i, services.FormatListing(list))
}

func (b *Bot) respondAddProject(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)
	if !b.isAdmin(userID) {
		respondEphemeral(s, i, "⚠️ Only admins can add projects.")
		return
	}

	var name, description string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "name":
			name = strings.TrimSpace(opt.StringValue())
		case "description":
			description = strings.TrimSpace(opt.StringValue())
		}
	}
	if name == "" {
		respondEphemeral(s, i, "⚠️ Project name is required.")
		return
	}

	project := types.Project{Name: name, Description: description, SubmittedBy: userID}
	if err := b.db.Create(&project).Error; err != nil {
		log.Printf("bot: add project failed: %v", err)
		respondEphemeral(s, i, "⚠️ Failed to add the project. Please try again.")
		return
	}

	respond(s, i, fmt.Sprintf("✅ Project %q added to the voting list.", name))
}

// afterSubmit runs the post-insert side effects of a service submission:
// admin DM fan-out and the optional event publish. Neither can undo the
// insert.
func (b *Bot) afterSubmit(s *discordgo.Session, svc types.Service) {
	services.NotifyAdmins(messenger{s: s}, b.config.AdminIDs, svc)
	b.publishEvent(map[string]interface{}{
		"kind":     "service",
		"user":     svc.UserID,
		"category": svc.Category,
		"id":       svc.ID,
		"time":     time.Now().Unix(),
	})
}

func (b *Bot) publishEvent(payload map[string]interface{}) {
	if b.rdb == nil {
		return
	}
	if err := data.PublishEvent(context.Background(), b.rdb, payload); err != nil {
		log.Printf("bot: event publish failed: %v", err)
	}
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		log.Printf("bot: interaction respond failed: %v", err)
	}
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("bot: interaction respond failed: %v", err)
	}
}

func respondWithComponents(s *discordgo.Session, i *discordgo.InteractionCreate, content string, components []discordgo.MessageComponent) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: components,
		},
	})
	if err != nil {
		log.Printf("bot: interaction respond failed: %v", err)
	}
}
