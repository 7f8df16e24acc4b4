package discord

import (
	"regexp"
	"strings"
)

// unsafeChannelRunes matches everything outside the latin-alphanumeric and
// Thai ranges. gosimple/slug is not used here on purpose: it transliterates
// Thai, while ticket names must keep the customer's script verbatim.
var unsafeChannelRunes = regexp.MustCompile(`[^a-zA-Z0-9ก-๙]`)

// TicketChannelName derives the ticket channel name from a customer name:
// disallowed runes become dashes, the result is lower-cased and wrapped in
// the ticket naming convention. An empty name gets a placeholder so channel
// creation never receives an empty string.
func TicketChannelName(customerName string) string {
	safe := unsafeChannelRunes.ReplaceAllString(customerName, "-")
	safe = strings.ToLower(safe)
	if customerName == "" {
		safe = "unknown"
	}
	return "ticket-" + safe + "-website"
}
