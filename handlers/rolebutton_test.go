package handlers

import (
	"testing"

	"trial-bot/guilds"
)

func TestParseRoleButton(t *testing.T) {
	for _, tc := range []struct {
		customID string
		wantErr  bool
		reqs     int
	}{
		{"123456789012345678", false, 0},
		{"123456789012345678;987654321098765432", false, 1},
		{"123456789012345678;kc50k", false, 1},
		{"123456789012345678;kc50k;987654321098765432", false, 2},
		{"startTrial", true, 0},
		{"selectBase", true, 0},
		{"", true, 0},
		{"123456789012345678;", true, 0},
		{"123456789012345678;notakey", true, 0},
	} {
		button, err := parseRoleButton(tc.customID)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseRoleButton(%q) succeeded, want error", tc.customID)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseRoleButton(%q): %v", tc.customID, err)
			continue
		}
		if len(button.requirements) != tc.reqs {
			t.Errorf("parseRoleButton(%q) requirements = %d, want %d", tc.customID, len(button.requirements), tc.reqs)
		}
	}
}

func TestRequirementSatisfaction(t *testing.T) {
	cosmetics := make(map[guilds.CosmeticKey]guilds.RoleRef)
	for n, opt := range guilds.CosmeticOptions {
		cosmetics[opt.Key] = guilds.RoleRef("<@&" + string(rune('a'+n)) + ">")
	}
	roles := guilds.Roles{Cosmetics: cosmetics}
	id := func(k guilds.CosmeticKey) string { return cosmetics[k].ID() }

	for _, tc := range []struct {
		name string
		req  requirement
		held []string
		want bool
	}{
		{"exact role held", requirement{roleID: "42"}, []string{"41", "42"}, true},
		{"exact role missing", requirement{roleID: "42"}, []string{"41"}, false},
		{"cosmetic held exactly", requirement{cosmetic: guilds.CosmeticKC50k}, []string{id(guilds.CosmeticKC50k)}, true},
		{"higher entry satisfies", requirement{cosmetic: guilds.CosmeticKC50k}, []string{id(guilds.CosmeticKC80k)}, true},
		{"lower entry does not", requirement{cosmetic: guilds.CosmeticKC50k}, []string{id(guilds.CosmeticKC30k)}, false},
		{"other hierarchy does not", requirement{cosmetic: guilds.CosmeticKC50k}, []string{id(guilds.CosmeticGoldenPraesul)}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.req.satisfiedBy(roles, tc.held); got != tc.want {
				t.Errorf("satisfiedBy = %v, want %v", got, tc.want)
			}
		})
	}

	button := &roleButton{
		roleID:       "100",
		requirements: []requirement{{roleID: "42"}, {cosmetic: guilds.CosmeticKC50k}},
	}
	if !button.satisfiedBy(roles, []string{"42", id(guilds.CosmeticKC90k)}) {
		t.Error("both checks met, want satisfied")
	}
	if !button.satisfiedBy(roles, []string{"42"}) {
		t.Error("role check met, want satisfied")
	}
	if !button.satisfiedBy(roles, []string{id(guilds.CosmeticKC90k)}) {
		t.Error("cosmetic check met, want satisfied")
	}
	if button.satisfiedBy(roles, []string{"41"}) {
		t.Error("no check met, want unsatisfied")
	}

	open := &roleButton{roleID: "100"}
	if !open.satisfiedBy(roles, nil) {
		t.Error("button without checks, want satisfied")
	}
}
