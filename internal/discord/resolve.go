package discord

import (
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ResolutionState classifies the outcome of a contact-handle lookup. The
// lookup is best-effort by contract: neither Unresolved nor Failed may fail
// an order, they only degrade the ticket to a generic mention.
type ResolutionState int

const (
	// ResolutionResolved means the handle was a snowflake and the account
	// was fetched.
	ResolutionResolved ResolutionState = iota
	// ResolutionUnresolved means the handle is not snowflake-shaped and is
	// kept as an opaque display tag. No lookup was attempted.
	ResolutionUnresolved
	// ResolutionFailed means the lookup was attempted and errored (unknown
	// user, API failure).
	ResolutionFailed
)

type UserResolution struct {
	State ResolutionState
	User  *discordgo.User
	Err   error
}

func (r UserResolution) Resolved() bool {
	return r.State == ResolutionResolved && r.User != nil
}

// Mention returns the greeting mention for the resolved account, or the
// generic @here broadcast when no account is available.
func (r UserResolution) Mention() string {
	if r.Resolved() {
		return r.User.Mention()
	}
	return "@here"
}

var snowflakePattern = regexp.MustCompile(`^\d+$`)

// IsSnowflake reports whether a handle looks like a numeric platform ID.
func IsSnowflake(handle string) bool {
	return snowflakePattern.MatchString(handle)
}

func resolveUser(handle string, fetch func(id string, options ...discordgo.RequestOption) (*discordgo.User, error)) UserResolution {
	handle = strings.TrimSpace(handle)
	if !IsSnowflake(handle) {
		return UserResolution{State: ResolutionUnresolved}
	}
	user, err := fetch(handle)
	if err != nil {
		return UserResolution{State: ResolutionFailed, Err: err}
	}
	return UserResolution{State: ResolutionResolved, User: user}
}
