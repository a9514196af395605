package model

// CardStack is an ordered sequence of cards. Insertion order is the visual
// stacking order: the last card is the topmost one. After construction the
// only mutation is removal, so a removed card never comes back.
type CardStack struct {
	cards     []*Card
	listeners []func()
}

// NewCardStack creates a stack populated with the given cards in order
func NewCardStack(cards ...*Card) *CardStack {
	s := &CardStack{cards: make([]*Card, 0, len(cards))}
	for _, c := range cards {
		if c != nil {
			s.cards = append(s.cards, c)
		}
	}
	return s
}

// Len returns the number of cards left
func (s *CardStack) Len() int {
	return len(s.cards)
}

// IsEmpty returns true if every card has been removed
func (s *CardStack) IsEmpty() bool {
	return len(s.cards) == 0
}

// Top returns the topmost card, or nil for an empty stack
func (s *CardStack) Top() *Card {
	if len(s.cards) == 0 {
		return nil
	}
	return s.cards[len(s.cards)-1]
}

// IsTop reports whether the card with the given id is the topmost one
func (s *CardStack) IsTop(id string) bool {
	top := s.Top()
	return top != nil && top.ID() == id
}

// Contains reports whether a card with the given id is still in the stack
func (s *CardStack) Contains(id string) bool {
	return s.indexOf(id) >= 0
}

// Cards returns a copy of the cards in stacking order (bottom first)
func (s *CardStack) Cards() []*Card {
	out := make([]*Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// RemoveCard deletes the card with the given id and keeps the relative order
// of the remaining cards. Removing an absent id is a no-op and returns false.
func (s *CardStack) RemoveCard(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	copy(s.cards[idx:], s.cards[idx+1:])
	s.cards[len(s.cards)-1] = nil
	s.cards = s.cards[:len(s.cards)-1]

	for _, l := range s.listeners {
		l()
	}
	return true
}

// AddListener registers a function called after every successful removal
func (s *CardStack) AddListener(l func()) {
	if l != nil {
		s.listeners = append(s.listeners, l)
	}
}

func (s *CardStack) indexOf(id string) int {
	for i, c := range s.cards {
		if c.ID() == id {
			return i
		}
	}
	return -1
}
