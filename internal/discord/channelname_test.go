package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketChannelName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Somchai", "ticket-somchai-website"},
		{"Som Chai", "ticket-som-chai-website"},
		{"MC_Player!99", "ticket-mc-player-99-website"},
		{"สมชาย", "ticket-สมชาย-website"},
		{"สมชาย ใจดี", "ticket-สมชาย-ใจดี-website"},
		{"@@@", "ticket-----website"},
		{"", "ticket-unknown-website"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, TicketChannelName(tc.name), "input %q", tc.name)
	}
}
