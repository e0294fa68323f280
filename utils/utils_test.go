package utils

import (
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"

	"trial-bot/guilds"
)

func TestParseMessageLink(t *testing.T) {
	guildID, channelID, messageID, err := ParseMessageLink("https://discord.com/channels/1/22/333")
	if err != nil {
		t.Fatalf("ParseMessageLink: %v", err)
	}
	if guildID != "1" || channelID != "22" || messageID != "333" {
		t.Errorf("got %s/%s/%s", guildID, channelID, messageID)
	}

	if _, _, _, err := ParseMessageLink("not a link"); err == nil {
		t.Error("expected error for junk input")
	}
	if _, _, _, err := ParseMessageLink("https://ptb.discord.com/channels/1/22/333"); err != nil {
		t.Errorf("ptb link rejected: %v", err)
	}
}

func TestMessageLinkRoundTrip(t *testing.T) {
	link := MessageLink("1", "22", "333")
	g, c, m, err := ParseMessageLink(link)
	if err != nil || g != "1" || c != "22" || m != "333" {
		t.Errorf("round trip = %s/%s/%s, %v", g, c, m, err)
	}
}

func TestLockMessageSerializes(t *testing.T) {
	const workers = 16
	counter := 0
	var wg sync.WaitGroup
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := LockMessage("msg-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()
	if counter != workers {
		t.Errorf("counter = %d, want %d", counter, workers)
	}
}

func TestLockMessageIndependentMessages(t *testing.T) {
	unlock1 := LockMessage("msg-a")
	defer unlock1()
	// A different message must not block.
	done := make(chan struct{})
	go func() {
		unlock2 := LockMessage("msg-b")
		unlock2()
		close(done)
	}()
	<-done
}

func TestHasAnyRole(t *testing.T) {
	member := &discordgo.Member{Roles: []string{"10", "20"}}
	tier := []guilds.RoleRef{"<@&30>", "<@&20>"}
	if !HasAnyRole(member, tier) {
		t.Error("member holds role 20, want true")
	}
	if HasAnyRole(member, []guilds.RoleRef{"<@&30>"}) {
		t.Error("member lacks role 30, want false")
	}
	if HasAnyRole(nil, tier) {
		t.Error("nil member, want false")
	}
}
