package discord

import (
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Client wraps a single long-lived gateway session. It is created once at
// startup and shared by every request; discordgo serializes REST calls
// internally, so concurrent submissions need no extra coordination here.
type Client struct {
	session *discordgo.Session

	readyOnce sync.Once
	ready     chan struct{}
}

func NewClient(token string) (*Client, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	c := &Client{
		session: session,
		ready:   make(chan struct{}),
	}
	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		c.readyOnce.Do(func() { close(c.ready) })
		log.Printf("Discord bot logged in as %s", r.User.String())
	})

	return c, nil
}

func (c *Client) Open() error {
	return c.session.Open()
}

func (c *Client) Close() error {
	return c.session.Close()
}

// Ready reports whether the gateway handshake has completed. Requests
// arriving earlier must fail fast rather than use an unauthenticated session.
func (c *Client) Ready() bool {
	select {
	case <-c.ready:
		return true
	default:
		return false
	}
}

// BotUser returns the authenticated bot account, or nil before readiness.
func (c *Client) BotUser() *discordgo.User {
	if !c.Ready() {
		return nil
	}
	if self := c.session.State.User; self != nil {
		return self
	}
	return nil
}

func (c *Client) Guild(id string) (*discordgo.Guild, error) {
	return c.session.Guild(id)
}

// ResolveUser attempts to turn a contact handle into a platform account.
// See resolve.go for the outcome contract.
func (c *Client) ResolveUser(handle string) UserResolution {
	return resolveUser(handle, c.session.User)
}

func (c *Client) CreateChannel(guildID, name, parentID string, overwrites []*discordgo.PermissionOverwrite) (*discordgo.Channel, error) {
	return c.session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             parentID,
		PermissionOverwrites: overwrites,
	})
}

func (c *Client) SendMessage(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	return c.session.ChannelMessageSendComplex(channelID, msg)
}
