package trialcard

import "errors"

var (
	ErrUnknownSlot    = errors.New("unknown team slot")
	ErrSlotTaken      = errors.New("slot is already taken")
	ErrAlreadySigned  = errors.New("already signed up for this trial")
	ErrNotSigned      = errors.New("not signed up for this trial")
	ErrTeamNotFull    = errors.New("team is not full")
	ErrAlreadyStarted = errors.New("trial has already started")
	ErrNotStarted     = errors.New("trial has not started")
	ErrTrialClosed    = errors.New("trial is closed")
)

// editable gates every roster and metadata mutation. Once a trial starts
// the card is frozen except for resolution, and terminal cards never
// change again.
func (c *Card) editable() error {
	switch c.State {
	case StateOpen:
		return nil
	case StateStarted:
		return ErrAlreadyStarted
	default:
		return ErrTrialClosed
	}
}

// AssignSelf puts a user into the named slot. A user holds at most one
// slot per card, so signing a second slot is rejected rather than moved.
func (c *Card) AssignSelf(userID, slotName, note string) error {
	if err := c.editable(); err != nil {
		return err
	}
	i, ok := SlotIndex(slotName)
	if !ok {
		return ErrUnknownSlot
	}
	if !c.Slots[i].Empty() {
		if c.Slots[i].UserID == userID {
			return ErrAlreadySigned
		}
		return ErrSlotTaken
	}
	if _, taken := c.SlotOf(userID); taken {
		return ErrAlreadySigned
	}
	c.Slots[i] = Slot{UserID: userID, Note: note}
	return nil
}

// UnassignSelf removes the user from whichever slot they hold.
func (c *Card) UnassignSelf(userID string) error {
	if err := c.editable(); err != nil {
		return err
	}
	i, ok := c.SlotOf(userID)
	if !ok {
		return ErrNotSigned
	}
	c.Slots[i] = Slot{}
	return nil
}

// SetSlot force-writes a slot on behalf of the host, clearing any other
// slot the user already holds. An empty userID empties the slot.
func (c *Card) SetSlot(slotName, userID, note string) error {
	if err := c.editable(); err != nil {
		return err
	}
	i, ok := SlotIndex(slotName)
	if !ok {
		return ErrUnknownSlot
	}
	if userID == "" {
		c.Slots[i] = Slot{}
		return nil
	}
	if j, taken := c.SlotOf(userID); taken && j != i {
		c.Slots[j] = Slot{}
	}
	c.Slots[i] = Slot{UserID: userID, Note: note}
	return nil
}

// SetHost reassigns the hosting user.
func (c *Card) SetHost(userID string) error {
	if err := c.editable(); err != nil {
		return err
	}
	c.Host = userID
	return nil
}

// SetTag changes the tag under trial. The roleID is the raw snowflake.
func (c *Card) SetTag(roleID string) error {
	if err := c.editable(); err != nil {
		return err
	}
	c.RoleID = roleID
	return nil
}

// Reschedule moves the trial to a new game time.
func (c *Card) Reschedule(gameTime string, unix int64) error {
	if err := c.editable(); err != nil {
		return err
	}
	c.GameTime = gameTime
	c.Unix = unix
	return nil
}

// Start moves an open, fully staffed card to the started state.
func (c *Card) Start(now int64) error {
	switch c.State {
	case StateStarted:
		return ErrAlreadyStarted
	case StateDisbanded, StatePassed, StateFailed:
		return ErrTrialClosed
	}
	if !c.TeamFull() {
		return ErrTeamNotFull
	}
	c.State = StateStarted
	c.StartedAt = now
	return nil
}

// Disband cancels a trial that has not yet been resolved.
func (c *Card) Disband(now int64) error {
	if c.State.Terminal() {
		return ErrTrialClosed
	}
	c.State = StateDisbanded
	c.ClosedAt = now
	return nil
}

// Resolve records the outcome of a started trial. Exactly one resolution
// can ever succeed on a card.
func (c *Card) Resolve(passed bool, now int64) error {
	switch c.State {
	case StateOpen:
		return ErrNotStarted
	case StateDisbanded, StatePassed, StateFailed:
		return ErrTrialClosed
	}
	if passed {
		c.State = StatePassed
	} else {
		c.State = StateFailed
	}
	c.ClosedAt = now
	return nil
}
