package service

import (
	"hash/fnv"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lumipath/challenges/pkg/entity"
)

// Catalog holds the configured challenge slots. Each slot carries one or more
// definition variants; which variant a child gets on a given day is decided by
// deterministic rotation, so repeated calls for the same (child, day) always
// produce the same set
type Catalog struct {
	slots [][]entity.ChallengeDefinition
}

func NewCatalog(slots [][]entity.ChallengeDefinition) *Catalog {
	if len(slots) == 0 {
		log.Fatal("catalog requires at least one slot")
	}
	for _, variants := range slots {
		if len(variants) == 0 {
			log.Fatal("catalog slot requires at least one definition")
		}
	}
	return &Catalog{
		slots: slots,
	}
}

func DefaultCatalog() *Catalog {
	return NewCatalog([][]entity.ChallengeDefinition{
		{
			{Title: "Finish a lesson", ActionType: entity.ActionLessonCompleted, TargetValue: 1, RewardPoints: 10},
			{Title: "Review a topic", ActionType: entity.ActionReviewCompleted, TargetValue: 1, RewardPoints: 10},
		},
		{
			{Title: "Complete a quiz", ActionType: entity.ActionQuizCompleted, TargetValue: 1, RewardPoints: 15},
			{Title: "Ace a quiz", ActionType: entity.ActionQuizPerfect, TargetValue: 1, RewardPoints: 25},
		},
		{
			{Title: "Learn for 15 minutes", ActionType: entity.ActionTimeSpent, TargetValue: 15, RewardPoints: 20},
		},
		{
			{Title: "Ask the tutor 3 questions", ActionType: entity.ActionAIQuestion, TargetValue: 3, RewardPoints: 15},
			{Title: "Learn for 30 minutes", ActionType: entity.ActionTimeSpent, TargetValue: 30, RewardPoints: 30},
		},
	})
}

func (c *Catalog) Size() int {
	return len(c.slots)
}

func (c *Catalog) SlotVariants(slot int) []entity.ChallengeDefinition {
	return c.slots[slot]
}

// DailySet returns the definitions to assign for (child, day), indexed by slot
func (c *Catalog) DailySet(childID uuid.UUID, day time.Time) []entity.ChallengeDefinition {
	h := fnv.New64a()
	h.Write(childID[:])
	h.Write([]byte(day.Format(time.DateOnly)))
	seed := h.Sum64()
	defs := make([]entity.ChallengeDefinition, len(c.slots))
	for i, variants := range c.slots {
		defs[i] = variants[(seed+uint64(i))%uint64(len(variants))]
	}
	return defs
}
