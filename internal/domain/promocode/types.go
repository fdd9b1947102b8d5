package promocode

// Kind distinguishes the two offer families a code can belong to.
type Kind string

const (
	KindDiscount Kind = "discount"
	KindGiveaway Kind = "giveaway"
)

// Status of a code entry. Statuses only ever advance; a redeemed or settled
// code never reverts.
type Status string

const (
	StatusStandard        Status = "standard"
	StatusAwaitingBooking Status = "awaiting_booking"
	StatusPending         Status = "pending"
	StatusRedeemed        Status = "redeemed"
	StatusWinner          Status = "winner"
	StatusLoser           Status = "loser"
)

// statusRank orders statuses along their lifecycle. Advancing to an equal or
// lower rank is rejected.
var statusRank = map[Status]int{
	StatusStandard:        0,
	StatusAwaitingBooking: 0,
	StatusPending:         1,
	StatusRedeemed:        2,
	StatusWinner:          2,
	StatusLoser:           2,
}

func (s Status) Terminal() bool {
	return s == StatusRedeemed || s == StatusWinner || s == StatusLoser
}

func (s Status) canAdvanceTo(next Status) bool {
	cur, ok := statusRank[s]
	if !ok {
		return false
	}
	nxt, ok := statusRank[next]
	if !ok {
		return false
	}
	return nxt > cur
}
