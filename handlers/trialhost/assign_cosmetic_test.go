package trialhost

import (
	"testing"

	"trial-bot/guilds"
)

func testRoles() guilds.Roles {
	cosmetics := make(map[guilds.CosmeticKey]guilds.RoleRef)
	for n, opt := range guilds.CosmeticOptions {
		cosmetics[opt.Key] = guilds.RoleRef("<@&" + string(rune('a'+n)) + ">")
	}
	return guilds.Roles{Cosmetics: cosmetics}
}

func TestCosmeticPlanCascade(t *testing.T) {
	roles := testRoles()
	id := func(k guilds.CosmeticKey) string { return roles.Cosmetics[k].ID() }

	for _, tc := range []struct {
		name       string
		held       []string
		target     guilds.CosmeticKey
		wantAdd    string
		wantRemove []string
		wantErr    bool
	}{
		{
			name:    "fresh grant",
			held:    nil,
			target:  guilds.CosmeticKC10k,
			wantAdd: id(guilds.CosmeticKC10k),
		},
		{
			name:       "upgrade removes lower entries",
			held:       []string{id(guilds.CosmeticKC10k), id(guilds.CosmeticKC30k)},
			target:     guilds.CosmeticKC50k,
			wantAdd:    id(guilds.CosmeticKC50k),
			wantRemove: []string{id(guilds.CosmeticKC10k), id(guilds.CosmeticKC30k)},
		},
		{
			name:    "already at target",
			held:    []string{id(guilds.CosmeticKC50k)},
			target:  guilds.CosmeticKC50k,
			wantErr: true,
		},
		{
			name:    "already above target",
			held:    []string{id(guilds.CosmeticKC100k)},
			target:  guilds.CosmeticKC50k,
			wantErr: true,
		},
		{
			name:       "hierarchies are independent",
			held:       []string{id(guilds.CosmeticKC100k)},
			target:     guilds.CosmeticOfThePraesul,
			wantAdd:    id(guilds.CosmeticOfThePraesul),
			wantRemove: nil,
		},
		{
			name:       "collection log upgrade",
			held:       []string{id(guilds.CosmeticOfThePraesul)},
			target:     guilds.CosmeticGoldenPraesul,
			wantAdd:    id(guilds.CosmeticGoldenPraesul),
			wantRemove: []string{id(guilds.CosmeticOfThePraesul)},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			add, remove, err := cosmeticPlan(roles, tc.held, tc.target)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("cosmeticPlan: %v", err)
			}
			if add != tc.wantAdd {
				t.Errorf("add = %q, want %q", add, tc.wantAdd)
			}
			if len(remove) != len(tc.wantRemove) {
				t.Fatalf("remove = %v, want %v", remove, tc.wantRemove)
			}
			for n := range remove {
				if remove[n] != tc.wantRemove[n] {
					t.Errorf("remove[%d] = %q, want %q", n, remove[n], tc.wantRemove[n])
				}
			}
		})
	}
}

func TestCosmeticPlanUnknownRole(t *testing.T) {
	if _, _, err := cosmeticPlan(guilds.Roles{}, nil, guilds.CosmeticKC10k); err == nil {
		t.Error("expected error for missing cosmetic table")
	}
}
