package service

type rankThreshold struct {
	MinPoints int
	Name      string
}

// Ascending by MinPoints; the first entry must start at zero.
var rankTable = []rankThreshold{
	{MinPoints: 0, Name: "The Obedient Repeater"},
	{MinPoints: 16, Name: "Keeper of Minor Repeats"},
	{MinPoints: 26, Name: "The Shivering Repeat Adept"},
	{MinPoints: 41, Name: "Repeater of the Shattered Cycle"},
	{MinPoints: 50, Name: "Harrowed Apostle of Repeat"},
	{MinPoints: 70, Name: "The Tarnished Repeater"},
}

var DefaultRank = RankFor(0)

// RankTier returns index of the highest threshold not above points.
// Negative points fall into the lowest tier.
func RankTier(points int) int {
	tier := 0
	for i, r := range rankTable {
		if points >= r.MinPoints {
			tier = i
		}
	}
	return tier
}

func RankFor(points int) string {
	return rankTable[RankTier(points)].Name
}
