package domain

import "time"

// Message belongs to the conversation between two party identifiers.
// Conversations are derived by filtering on the unordered pair, there is
// no separate conversation entity.
type Message struct {
	ID         string
	SenderID   string
	ReceiverID string
	Text       string
	SentAt     time.Time
	IsRead     bool
	BookingID  *string
}

// InvolvedWith returns true if the message belongs to the given party
func (m *Message) InvolvedWith(partyID string) bool {
	return m.SenderID == partyID || m.ReceiverID == partyID
}

// PartnerOf returns the counterpart identifier for the given party
func (m *Message) PartnerOf(partyID string) string {
	if m.SenderID == partyID {
		return m.ReceiverID
	}
	return m.SenderID
}
