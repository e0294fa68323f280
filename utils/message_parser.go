package utils

import (
	"fmt"
	"regexp"
)

var messageLinkRe = regexp.MustCompile(`https://(?:\w+\.)?discord\.com/channels/(\d+)/(\d+)/(\d+)`)

// ParseMessageLink splits a Discord message link into its guild, channel
// and message ids.
func ParseMessageLink(link string) (guildID, channelID, messageID string, err error) {
	m := messageLinkRe.FindStringSubmatch(link)
	if m == nil {
		return "", "", "", fmt.Errorf("%q is not a message link", link)
	}
	return m[1], m[2], m[3], nil
}

// MessageLink builds the canonical link for a message.
func MessageLink(guildID, channelID, messageID string) string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guildID, channelID, messageID)
}
