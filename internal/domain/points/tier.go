package points

// Tier is a named reward level derived from the running balance.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

type Threshold struct {
	Tier      Tier
	MinPoints int
}

// DefaultThresholds is ordered ascending by MinPoints. The first entry is
// the floor tier every profile starts in.
var DefaultThresholds = []Threshold{
	{TierBronze, 0},
	{TierSilver, 200},
	{TierGold, 500},
	{TierPlatinum, 1000},
}

// TierFor keeps the last threshold not exceeding balance.
func TierFor(balance int, thresholds []Threshold) Tier {
	tier := thresholds[0].Tier
	for _, t := range thresholds {
		if balance < t.MinPoints {
			break
		}
		tier = t.Tier
	}
	return tier
}

// NewBalance applies a signed delta with a zero floor.
func NewBalance(old, delta int) int {
	n := old + delta
	if n < 0 {
		return 0
	}
	return n
}

func (t Tier) String() string { return string(t) }
