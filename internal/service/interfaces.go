package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lumipath/challenges/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateChildRequest struct {
	Name string `validate:"required,min=1,max=100"`
}

// ProgressRequest is one inbound learning event. QuizScore accompanies
// quiz-typed events only
type ProgressRequest struct {
	ActionType entity.ActionType `validate:"required,action_type"`
	Value      int               `validate:"min=1"`
	QuizScore  *int              `validate:"omitempty,min=0,max=100"`
}

type ProgressResult struct {
	CompletedNow       []entity.ChallengeInstance `json:"completed_now"`
	TotalPointsAwarded int                        `json:"total_points_awarded"`
}

type ParentServiceI interface {
	// Validates parent's credentials, creates new row in database. Returns parent's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.Parent, error)
	// Compares given credentials. If ok, gives back parent's data with ID
	Login(ctx context.Context, name, password string) (*entity.Parent, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Parent, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type ChildrenServiceI interface {
	// Validates and creates a child under parentID
	CreateChild(ctx context.Context, parentID uuid.UUID, req *CreateChildRequest) (*entity.Child, error)
	// Lists children of parentID
	GetParentChildren(ctx context.Context, parentID uuid.UUID) ([]*entity.Child, error)
	// Returns child only when owned by parentID
	GetChild(ctx context.Context, childID, parentID uuid.UUID) (*entity.Child, error)
	DeleteChild(ctx context.Context, childID, parentID uuid.UUID) error
}

type ChallengesServiceI interface {
	// Guarantees the catalog-prescribed set exists for (child, day) and
	// returns it in slot order. Idempotent, safe under concurrent calls
	EnsureChallenges(ctx context.Context, childID uuid.UUID, day time.Time) ([]entity.ChallengeInstance, error)
	// Today's view for an owned child, creating instances if absent
	GetTodayChallenges(ctx context.Context, childID, parentID uuid.UUID) ([]entity.ChallengeInstance, error)
	// Applies one progress event to today's matching challenges and reports
	// completions that happened in this call
	RecordProgress(ctx context.Context, childID, parentID uuid.UUID, req *ProgressRequest) (*ProgressResult, error)
	// Read-only summary over a trailing window of days clamped to [1, 30]
	GetHistory(ctx context.Context, childID, parentID uuid.UUID, days int) (*entity.HistorySummary, error)
}
