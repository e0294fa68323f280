package guilds

import "testing"

func TestValidateShippedTables(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestResolve(t *testing.T) {
	for _, id := range GuildIDs() {
		p, ok := Resolve(id)
		if !ok || p == nil {
			t.Fatalf("Resolve(%s) failed", id)
		}
		if p.GuildID != id {
			t.Errorf("Resolve(%s).GuildID = %s", id, p.GuildID)
		}
	}
	if _, ok := Resolve("0"); ok {
		t.Error("Resolve of unknown guild succeeded")
	}
}

func TestValidateRejectsMissingEntries(t *testing.T) {
	p, _ := Resolve(GuildIDs()[0])
	broken := *p
	broken.Roles.Tags = map[TagKey]RoleRef{}
	if err := broken.validate(); err == nil {
		t.Error("validate accepted a profile with no tag roles")
	}

	broken = *p
	broken.Channels.TrialResult = ""
	if err := broken.validate(); err == nil {
		t.Error("validate accepted a profile with a missing channel")
	}
}

func TestRoleRefID(t *testing.T) {
	if got := RoleRef("<@&123>").ID(); got != "123" {
		t.Errorf("ID() = %q", got)
	}
	if got := RoleRef("").ID(); got != "" {
		t.Errorf("ID() of empty ref = %q", got)
	}
}

func TestTagSlots(t *testing.T) {
	for _, tc := range []struct {
		key  TagKey
		slot string
	}{
		{TagMagicBase, "Base"},
		{TagMrBase, "Base"},
		{TagNecroBase, "Base"},
		{TagMagicMT, "Glacies"},
		{TagRangeMT, "Glacies"},
		{TagMrMT, "Glacies"},
		{TagNecroMT, "Glacies"},
		{TagChinner, "Hammer"},
		{TagMrHammer, "Hammer"},
		{TagNecroHammer, "Hammer"},
		{TagRangeBase, "Base"},
	} {
		if got := tc.key.Slot(); got != tc.slot {
			t.Errorf("%s.Slot() = %q, want %q", tc.key, got, tc.slot)
		}
	}
}

func TestHierarchyOf(t *testing.T) {
	name, index, ok := HierarchyOf(CosmeticKC50k)
	if !ok || name != "killCount" || index != 4 {
		t.Errorf("HierarchyOf(kc50k) = %s, %d, %v", name, index, ok)
	}
	name, index, ok = HierarchyOf(CosmeticGoldenPraesul)
	if !ok || name != "collectionLog" || index != 1 {
		t.Errorf("HierarchyOf(goldenPraesul) = %s, %d, %v", name, index, ok)
	}
}

func TestTagByRoleID(t *testing.T) {
	p, _ := Resolve(GuildIDs()[0])
	for key, ref := range p.Roles.Tags {
		got, ok := p.Roles.TagByRoleID(ref.ID())
		if !ok || got != key {
			t.Errorf("TagByRoleID(%s) = %s, %v", ref.ID(), got, ok)
		}
	}
	if _, ok := p.Roles.TagByRoleID("0"); ok {
		t.Error("TagByRoleID of unknown id succeeded")
	}
}
