// Package guilds holds the static per-guild role and channel tables. Values
// are fixed per deployment and validated once at startup, so a missing entry
// is a boot error instead of an empty mention leaking into an API call.
package guilds

import (
	"fmt"
	"strings"
)

// RoleRef is a role mention of the form <@&123456789>.
type RoleRef string

// ID strips the mention wrapper and returns the raw role id.
func (r RoleRef) ID() string {
	s := strings.TrimSuffix(strings.TrimPrefix(string(r), "<@&"), ">")
	return s
}

func (r RoleRef) Mention() string { return string(r) }

// TagKey identifies a trialed role a trialee can earn.
type TagKey string

const (
	TagMagicMT    TagKey = "magicMT"
	TagMagicBase  TagKey = "magicBase"
	TagRangeMT    TagKey = "rangeMT"
	TagRangeBase  TagKey = "rangeBase"
	TagChinner    TagKey = "chinner"
	TagMrMT       TagKey = "mrMT"
	TagMrHammer   TagKey = "mrHammer"
	TagMrBase     TagKey = "mrBase"
	TagNecroBase  TagKey = "necroBase"
	TagNecroHammer TagKey = "necroHammer"
	TagNecroMT    TagKey = "necroMT"
)

// TagOptions drives the slash-command choice list, in display order.
var TagOptions = []struct {
	Label string
	Key   TagKey
}{
	{"Magic Minion Tank", TagMagicMT},
	{"Magic Base", TagMagicBase},
	{"Range Minion Tank", TagRangeMT},
	{"Range Base", TagRangeBase},
	{"Range Hammer", TagChinner},
	{"Magic/Range Minion Tank", TagMrMT},
	{"Magic/Range Hammer", TagMrHammer},
	{"Magic/Range Base", TagMrBase},
	{"Necromancy Base", TagNecroBase},
	{"Necromancy Hammer", TagNecroHammer},
	{"Necromancy Minion Tank", TagNecroMT},
}

// Label returns the display name of a tag.
func (k TagKey) Label() string {
	for _, opt := range TagOptions {
		if opt.Key == k {
			return opt.Label
		}
	}
	return string(k)
}

// Slot returns the roster slot a trialee holding this tag is pre-filled
// into on a fresh trial card, or "" when the tag has no fixed slot.
func (k TagKey) Slot() string {
	switch k {
	case TagMagicBase, TagRangeBase, TagMrBase, TagNecroBase:
		return "Base"
	case TagMagicMT, TagRangeMT, TagMrMT, TagNecroMT:
		return "Glacies"
	case TagChinner, TagMrHammer, TagNecroHammer:
		return "Hammer"
	}
	return ""
}

// CosmeticKey identifies an achievement role managed by assign-cosmetic.
type CosmeticKey string

const (
	CosmeticKC10k          CosmeticKey = "kc10k"
	CosmeticKC20k          CosmeticKey = "kc20k"
	CosmeticKC30k          CosmeticKey = "kc30k"
	CosmeticKC40k          CosmeticKey = "kc40k"
	CosmeticKC50k          CosmeticKey = "kc50k"
	CosmeticKC60k          CosmeticKey = "kc60k"
	CosmeticKC70k          CosmeticKey = "kc70k"
	CosmeticKC80k          CosmeticKey = "kc80k"
	CosmeticKC90k          CosmeticKey = "kc90k"
	CosmeticKC100k         CosmeticKey = "kc100k"
	CosmeticOfThePraesul   CosmeticKey = "ofThePraesul"
	CosmeticGoldenPraesul  CosmeticKey = "goldenPraesul"
)

// CosmeticOptions drives the assign-cosmetic choice list.
var CosmeticOptions = []struct {
	Label string
	Key   CosmeticKey
}{
	{"10k KC", CosmeticKC10k},
	{"20k KC", CosmeticKC20k},
	{"30k KC", CosmeticKC30k},
	{"40k KC", CosmeticKC40k},
	{"50k KC", CosmeticKC50k},
	{"60k KC", CosmeticKC60k},
	{"70k KC", CosmeticKC70k},
	{"80k KC", CosmeticKC80k},
	{"90k KC", CosmeticKC90k},
	{"100k KC", CosmeticKC100k},
	{"of the Praesul", CosmeticOfThePraesul},
	{"Golden Praesul", CosmeticGoldenPraesul},
}

// Label returns the display name of a cosmetic role.
func (k CosmeticKey) Label() string {
	for _, opt := range CosmeticOptions {
		if opt.Key == k {
			return opt.Label
		}
	}
	return string(k)
}

// Hierarchies are ordered low to high. Holding a later entry satisfies any
// requirement gated on an earlier one, and granting a later entry removes
// every earlier entry the member holds.
var Hierarchies = map[string][]CosmeticKey{
	"killCount": {
		CosmeticKC10k, CosmeticKC20k, CosmeticKC30k, CosmeticKC40k,
		CosmeticKC50k, CosmeticKC60k, CosmeticKC70k, CosmeticKC80k,
		CosmeticKC90k, CosmeticKC100k,
	},
	"collectionLog": {CosmeticOfThePraesul, CosmeticGoldenPraesul},
}

// HierarchyOf returns the hierarchy name and position of a cosmetic key, or
// ok=false when the key belongs to no ordered list.
func HierarchyOf(k CosmeticKey) (name string, index int, ok bool) {
	for n, list := range Hierarchies {
		for i, entry := range list {
			if entry == k {
				return n, i, true
			}
		}
	}
	return "", 0, false
}

// Roles is the closed set of roles the bot touches in one guild.
type Roles struct {
	TrialHost          RoleRef
	Organizer          RoleRef
	Admin              RoleRef
	Owner              RoleRef
	Trialee            RoleRef
	TrialeeTeacher     RoleRef
	TrialTeam          RoleRef
	TrialTeamProbation RoleRef
	ApplicationTeam    RoleRef
	SevenMan           RoleRef

	Tags      map[TagKey]RoleRef
	Cosmetics map[CosmeticKey]RoleRef
}

// HostTier is the role set allowed to drive a trial's lifecycle.
func (r Roles) HostTier() []RoleRef {
	return []RoleRef{r.TrialHost, r.Organizer, r.Admin, r.Owner}
}

// RosterTier is the role set allowed to self-assign onto a roster.
func (r Roles) RosterTier() []RoleRef {
	return []RoleRef{r.TrialTeamProbation, r.TrialTeam, r.Organizer, r.Admin}
}

// ResolveTier is the role set allowed to pass or fail a trialee.
func (r Roles) ResolveTier() []RoleRef {
	return []RoleRef{r.TrialeeTeacher, r.TrialHost, r.Organizer, r.Admin, r.Owner}
}

// RejectTier is the role set allowed to reject a prior role grant.
func (r Roles) RejectTier() []RoleRef {
	return []RoleRef{r.Organizer, r.Admin, r.Owner}
}

// TagByRoleID resolves a raw role id back to its tag key.
func (r Roles) TagByRoleID(roleID string) (TagKey, bool) {
	for key, ref := range r.Tags {
		if ref.ID() == roleID {
			return key, true
		}
	}
	return "", false
}

// CosmeticByRoleID resolves a raw role id back to its cosmetic key.
func (r Roles) CosmeticByRoleID(roleID string) (CosmeticKey, bool) {
	for key, ref := range r.Cosmetics {
		if ref.ID() == roleID {
			return key, true
		}
	}
	return "", false
}

// Channels is the closed set of channels the bot posts into in one guild.
type Channels struct {
	AchievementsAndLogs string
	BotRoleLog          string
	NAMock              string
	NATrial             string
	EUMock              string
	EUTrial             string
	MockResult          string
	TrialResult         string
}

// Profile bundles one guild's tables.
type Profile struct {
	GuildID  string
	Roles    Roles
	Channels Channels
}

// Resolve returns the profile for a guild, or ok=false for guilds the bot
// has no tables for. Callers must treat absence as "feature unavailable".
func Resolve(guildID string) (*Profile, bool) {
	p, ok := profiles[guildID]
	return p, ok
}

// GuildIDs lists every configured guild.
func GuildIDs() []string {
	ids := make([]string, 0, len(profiles))
	for id := range profiles {
		ids = append(ids, id)
	}
	return ids
}

// Validate checks every profile for missing entries. Called once at boot.
func Validate() error {
	for id, p := range profiles {
		if err := p.validate(); err != nil {
			return fmt.Errorf("guild %s: %w", id, err)
		}
	}
	return nil
}

func (p *Profile) validate() error {
	named := map[string]RoleRef{
		"trialHost":          p.Roles.TrialHost,
		"organizer":          p.Roles.Organizer,
		"admin":              p.Roles.Admin,
		"owner":              p.Roles.Owner,
		"trialee":            p.Roles.Trialee,
		"trialeeTeacher":     p.Roles.TrialeeTeacher,
		"trialTeam":          p.Roles.TrialTeam,
		"trialTeamProbation": p.Roles.TrialTeamProbation,
		"applicationTeam":    p.Roles.ApplicationTeam,
		"sevenMan":           p.Roles.SevenMan,
	}
	for name, ref := range named {
		if ref.ID() == "" {
			return fmt.Errorf("role %s is not configured", name)
		}
	}
	for _, opt := range TagOptions {
		if p.Roles.Tags[opt.Key].ID() == "" {
			return fmt.Errorf("tag role %s is not configured", opt.Key)
		}
	}
	for _, opt := range CosmeticOptions {
		if p.Roles.Cosmetics[opt.Key].ID() == "" {
			return fmt.Errorf("cosmetic role %s is not configured", opt.Key)
		}
	}
	ch := map[string]string{
		"achievementsAndLogs": p.Channels.AchievementsAndLogs,
		"botRoleLog":          p.Channels.BotRoleLog,
		"naMock":              p.Channels.NAMock,
		"naTrial":             p.Channels.NATrial,
		"euMock":              p.Channels.EUMock,
		"euTrial":             p.Channels.EUTrial,
		"mockResult":          p.Channels.MockResult,
		"trialResult":         p.Channels.TrialResult,
	}
	for name, id := range ch {
		if id == "" {
			return fmt.Errorf("channel %s is not configured", name)
		}
	}
	return nil
}
