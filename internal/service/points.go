package service

const (
	CreateBasePoints  = 2
	RepeatBonusPoints = 5
	CompletionPenalty = -5
)

// ApplyDelta adds delta to current total, flooring the result at zero.
func ApplyDelta(current, delta int) int {
	return max(0, current+delta)
}

func CreationDelta(isRepeat bool) int {
	if isRepeat {
		return CreateBasePoints + RepeatBonusPoints
	}
	return CreateBasePoints
}
