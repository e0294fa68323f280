// Package trialcard implements the trial-card protocol: the encoding of one
// trial's full lifecycle state inside a single Discord embed, and the
// transition rules that operate on it. The embed is the only representation
// of a live trial; nothing is persisted until the trial resolves.
package trialcard

import "time"

// Kind distinguishes mock trials (no role side effects) from real ones.
type Kind int

const (
	KindMock Kind = iota
	KindReal
)

func (k Kind) String() string {
	if k == KindReal {
		return "Real Trial"
	}
	return "Mock Trial"
}

// Region selects the target channel and the default scheduling time.
type Region int

const (
	RegionNA Region = iota
	RegionEU
)

func (r Region) String() string {
	if r == RegionEU {
		return "Europe"
	}
	return "North America"
}

// State is the card lifecycle. Open is initial; Disbanded, Passed and
// Failed are terminal.
type State int

const (
	StateOpen State = iota
	StateStarted
	StateDisbanded
	StatePassed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStarted:
		return "Started"
	case StateDisbanded:
		return "Disbanded"
	case StatePassed:
		return "Passed"
	case StateFailed:
		return "Failed"
	}
	return "Open"
}

func (s State) Terminal() bool {
	return s == StateDisbanded || s == StatePassed || s == StateFailed
}

// TeamSize is the fixed roster size of every trial.
const TeamSize = 7

// SlotNames is the fixed roster order. Render emits one embed field per
// entry and Parse reads them back by position.
var SlotNames = [TeamSize]string{"Base", "Umbra", "Glacies", "Cruor", "Fumus", "Hammer", "Free"}

// SlotIndex maps a slot name to its roster position.
func SlotIndex(name string) (int, bool) {
	for i, n := range SlotNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// Slot is one roster position. Note carries the parenthesised sub-state
// shown next to the mention ("Trialee", "Probation", "Filler", ...).
type Slot struct {
	UserID string
	Note   string
}

func (s Slot) Empty() bool { return s.UserID == "" }

// NoteTrialee marks the slot pre-filled with the trialee themselves. Slots
// carrying it are excluded from participation records at resolution.
const NoteTrialee = "Trialee"

// NoteProbation marks a probation trial-team member on the roster.
const NoteProbation = "Probation"

// Card is the decoded trial state.
type Card struct {
	State   State
	Host    string // user id
	Trialee string // user id
	RoleID  string // tag role id the trialee is trying to earn
	Kind    Kind
	Region  Region

	// GameTime is the raw scheduled time, wire format "2006-01-02 15:04"
	// in game time (UTC). Unix is the same instant as epoch seconds, used
	// for the localized and relative display timestamps.
	GameTime string
	Unix     int64

	StartedAt int64 // epoch seconds, 0 until started
	ClosedAt  int64 // epoch seconds, 0 until disbanded or resolved

	Slots [TeamSize]Slot
}

// New builds an open card. The trialee pre-fills tagSlot when the requested
// tag implies a fixed roster position.
func New(host, trialee, roleID string, kind Kind, region Region, gameTime time.Time, tagSlot string) *Card {
	c := &Card{
		State:    StateOpen,
		Host:     host,
		Trialee:  trialee,
		RoleID:   roleID,
		Kind:     kind,
		Region:   region,
		GameTime: FormatGameTime(gameTime),
		Unix:     gameTime.Unix(),
	}
	if i, ok := SlotIndex(tagSlot); ok {
		c.Slots[i] = Slot{UserID: trialee, Note: NoteTrialee}
	}
	return c
}

// FilledCount returns the number of non-empty roster slots.
func (c *Card) FilledCount() int {
	n := 0
	for _, s := range c.Slots {
		if !s.Empty() {
			n++
		}
	}
	return n
}

// TeamFull reports whether no slot holds the empty marker.
func (c *Card) TeamFull() bool { return c.FilledCount() == TeamSize }

// SlotOf returns the roster position a user currently occupies.
func (c *Card) SlotOf(userID string) (int, bool) {
	for i, s := range c.Slots {
		if s.UserID == userID {
			return i, true
		}
	}
	return 0, false
}

// Participation is one persisted roster row at resolution time.
type Participation struct {
	UserID string
	Slot   string
}

// Participants lists every filled slot except the trialee's own, in roster
// order. These become the participation records when the trial resolves.
func (c *Card) Participants() []Participation {
	var out []Participation
	for i, s := range c.Slots {
		if s.Empty() || s.Note == NoteTrialee {
			continue
		}
		out = append(out, Participation{UserID: s.UserID, Slot: SlotNames[i]})
	}
	return out
}
