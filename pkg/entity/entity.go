package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the single points holder. RankName is always derived from TotalPoints.
type User struct {
	ID          uuid.UUID `json:"user_id"`
	TotalPoints int       `json:"total_points"`
	RankName    string    `json:"rank_name"`
}

type Task struct {
	ID          uuid.UUID `json:"task_id"`
	Description string    `json:"description"`
	IsRepeat    bool      `json:"is_repeat"`
	IsComplete  bool      `json:"is_complete"`
	CreatedAt   time.Time `json:"created_at"`
}
