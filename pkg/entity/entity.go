package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActionType is the category of learning activity that can feed challenge progress
type ActionType string

const (
	ActionLessonCompleted ActionType = "lesson_completed"
	ActionQuizCompleted   ActionType = "quiz_completed"
	ActionQuizPerfect     ActionType = "quiz_perfect"
	ActionAIQuestion      ActionType = "ai_question"
	ActionTimeSpent       ActionType = "time_spent"
	ActionReviewCompleted ActionType = "review_completed"
)

type Parent struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Child struct {
	ID        uuid.UUID `json:"id"`
	ParentID  uuid.UUID `json:"parent_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ChallengeDefinition is one catalog entry. TargetValue is a count, or minutes
// for time_spent challenges
type ChallengeDefinition struct {
	Title        string     `json:"title"`
	ActionType   ActionType `json:"action_type"`
	TargetValue  int        `json:"target_value"`
	RewardPoints int        `json:"reward_points"`
}

// ChallengeInstance is one assigned challenge for one child on one calendar day.
// Slot is the catalog slot the bound definition came from, unique per (child, day)
type ChallengeInstance struct {
	ID           uuid.UUID  `json:"id"`
	ChildID      uuid.UUID  `json:"child_id"`
	Day          time.Time  `json:"day"`
	Slot         int        `json:"slot"`
	Title        string     `json:"title"`
	ActionType   ActionType `json:"action_type"`
	TargetValue  int        `json:"target_value"`
	CurrentValue int        `json:"current_value"`
	RewardPoints int        `json:"reward_points"`
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type DaySummary struct {
	Day          time.Time `json:"day"`
	Assigned     int       `json:"assigned"`
	Completed    int       `json:"completed"`
	PointsEarned int       `json:"points_earned"`
}

type HistorySummary struct {
	ChildID        uuid.UUID    `json:"child_id"`
	Days           int          `json:"days"`
	DaySummaries   []DaySummary `json:"day_summaries"`
	Streak         int          `json:"streak"`
	TotalPoints    int          `json:"total_points"`
	CompletionRate float64      `json:"completion_rate"`
}
