package services

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/bwmarrin/discordgo"
	"umbaer-craft-backend/internal/discord"
	"umbaer-craft-backend/internal/models"
	"umbaer-craft-backend/internal/storage"
)

// Platform is the slice of the chat platform the ticket flow needs: guild
// lookup, best-effort user lookup, channel creation with permission
// overwrites, and message send with attachments. Any platform offering these
// can stand in; tests use a fake.
type Platform interface {
	Ready() bool
	BotUser() *discordgo.User
	Guild(id string) (*discordgo.Guild, error)
	ResolveUser(handle string) discord.UserResolution
	CreateChannel(guildID, name, parentID string, overwrites []*discordgo.PermissionOverwrite) (*discordgo.Channel, error)
	SendMessage(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error)
}

// TicketError is a fatal failure of one pipeline step. Kind is one of the
// models.ErrKind* values; Message is safe to return to the caller.
type TicketError struct {
	Kind    string
	Message string
	Err     error
}

func (e *TicketError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *TicketError) Unwrap() error { return e.Err }

// TicketResult reports a fully opened ticket.
type TicketResult struct {
	ChannelID string
	// Resolved is true when the contact handle resolved to an account that
	// was mentioned and granted channel access.
	Resolved bool
}

// TicketService turns one order submission into one ticket channel plus one
// summary message. It holds no per-request state.
type TicketService struct {
	platform   Platform
	guildID    string
	categoryID string
}

func NewTicketService(platform Platform, guildID, categoryID string) *TicketService {
	return &TicketService{
		platform:   platform,
		guildID:    guildID,
		categoryID: categoryID,
	}
}

// Ready is nil-safe so an unconfigured service simply reports not ready.
func (s *TicketService) Ready() bool {
	return s != nil && s.platform != nil && s.platform.Ready()
}

// OpenTicket runs the pipeline: resolve guild, derive channel name, attempt
// user resolution (best-effort), create the private channel, send the
// summary with attachments. Every failure except user resolution is fatal
// and typed. A channel created before a failed send is left in place.
func (s *TicketService) OpenTicket(sub models.OrderSubmission, uploads []storage.SavedFile) (*TicketResult, error) {
	guild, err := s.platform.Guild(s.guildID)
	if err != nil {
		return nil, &TicketError{
			Kind:    models.ErrKindGuild,
			Message: fmt.Sprintf("Guild not found: %s", s.guildID),
			Err:     err,
		}
	}

	channelName := discord.TicketChannelName(sub.Name)

	res := s.platform.ResolveUser(sub.DiscordID)
	switch res.State {
	case discord.ResolutionResolved:
		log.Printf("Resolved customer %s to %s", sub.DiscordID, res.User.String())
	case discord.ResolutionUnresolved:
		log.Printf("Contact handle %q is not a numeric ID, keeping it as a display tag", sub.DiscordID)
	case discord.ResolutionFailed:
		log.Printf("Warning: could not fetch user %s: %v", sub.DiscordID, res.Err)
	}

	channel, err := s.platform.CreateChannel(guild.ID, channelName, s.categoryID, s.buildOverwrites(guild, res))
	if err != nil {
		return nil, &TicketError{
			Kind:    models.ErrKindChannel,
			Message: fmt.Sprintf("Failed to create channel %s", channelName),
			Err:     err,
		}
	}
	log.Printf("Channel created: %s (%s)", channel.Name, channel.ID)

	msg, closeFiles, err := buildOrderMessage(sub, res, channel.ID, uploads)
	if err != nil {
		return nil, &TicketError{
			Kind:    models.ErrKindSend,
			Message: "Failed to attach order files",
			Err:     err,
		}
	}
	defer closeFiles()

	if _, err := s.platform.SendMessage(channel.ID, msg); err != nil {
		return nil, &TicketError{
			Kind:    models.ErrKindSend,
			Message: "Failed to send order summary",
			Err:     err,
		}
	}

	return &TicketResult{ChannelID: channel.ID, Resolved: res.Resolved()}, nil
}

// buildOverwrites hides the ticket from @everyone, lets the bot in, and, when
// the customer account resolved, lets the customer in too.
func (s *TicketService) buildOverwrites(guild *discordgo.Guild, res discord.UserResolution) []*discordgo.PermissionOverwrite {
	overwrites := []*discordgo.PermissionOverwrite{
		{
			ID:   guild.ID, // @everyone shares the guild ID
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
	}
	if bot := s.platform.BotUser(); bot != nil {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    bot.ID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages,
		})
	}
	if res.Resolved() {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    res.User.ID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages | discordgo.PermissionReadMessageHistory,
		})
	}
	return overwrites
}

func buildOrderMessage(sub models.OrderSubmission, res discord.UserResolution, channelID string, uploads []storage.SavedFile) (*discordgo.MessageSend, func(), error) {
	customer := sub.DiscordID
	if res.Resolved() {
		customer = res.User.Username
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🛍️ New Order Ticket",
		Description: fmt.Sprintf("Channel for order: **%s**", sub.Name),
		Color:       0xffaa00,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👤 Customer", Value: orDash(fmt.Sprintf("%s (%s)", sub.Name, customer)), Inline: true},
			{Name: "💰 Price", Value: orDash(sub.Price), Inline: true},
			{Name: "💳 Payment", Value: orDash(sub.PaymentMethod), Inline: true},
			{Name: "📦 Service", Value: orDash(sub.Scale), Inline: true},
			{Name: "🧩 Part", Value: orDash(sub.Part), Inline: true},
			{Name: "🆔 Channel", Value: fmt.Sprintf("<#%s>", channelID), Inline: true},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "Umbaer Craft System"},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	files := make([]*discordgo.File, 0, len(uploads))
	var opened []io.Closer
	closeFiles := func() {
		for _, f := range opened {
			f.Close()
		}
	}
	for _, upload := range uploads {
		f, err := os.Open(upload.Path)
		if err != nil {
			closeFiles()
			return nil, nil, fmt.Errorf("open attachment %q: %w", upload.Name, err)
		}
		opened = append(opened, f)
		files = append(files, &discordgo.File{Name: upload.Name, Reader: f})
	}

	msg := &discordgo.MessageSend{
		Content: fmt.Sprintf("สวัสดีครับ %s ! ขอบคุณที่สั่งซื้อสินค้ากับเรา Admin จะรีบติดต่อกลับให้เร็วที่สุดครับ", res.Mention()),
		Embeds:  []*discordgo.MessageEmbed{embed},
		Files:   files,
	}
	return msg, closeFiles, nil
}

// orDash keeps embed field values non-empty; Discord rejects empty ones.
func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
