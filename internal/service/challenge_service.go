package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/lumipath/challenges/internal/error_values"
	"github.com/lumipath/challenges/internal/repository"
	"github.com/lumipath/challenges/pkg/entity"
)

const (
	minHistoryDays = 1
	maxHistoryDays = 30
)

type ChallengeService struct {
	childrenRepo   repository.ChildrenRepositoryI
	challengesRepo repository.ChallengesRepositoryI
	catalog        *Catalog
	loc            *time.Location
}

func NewChallengeService(childrenRepo repository.ChildrenRepositoryI, challengesRepo repository.ChallengesRepositoryI, catalog *Catalog, loc *time.Location) *ChallengeService {
	if childrenRepo == nil || challengesRepo == nil {
		log.Fatal("on challenge service provided nil repos")
	}
	if catalog == nil {
		log.Fatal("on challenge service provided nil catalog")
	}
	if loc == nil {
		log.Fatal("on challenge service provided nil reference location")
	}
	return &ChallengeService{
		childrenRepo:   childrenRepo,
		challengesRepo: challengesRepo,
		catalog:        catalog,
		loc:            loc,
	}
}

// today resolves the current calendar day in the reference timezone. The
// returned value is a date key, midnight UTC, matching the DATE column
func (cs *ChallengeService) today() time.Time {
	now := time.Now().In(cs.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func dayKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (cs *ChallengeService) EnsureChallenges(ctx context.Context, childID uuid.UUID, day time.Time) ([]entity.ChallengeInstance, error) {
	_, err := cs.childrenRepo.GetByID(ctx, childID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChildNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	day = dayKey(day)
	existing, err := cs.challengesRepo.GetByChildAndDay(ctx, childID, day)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if len(existing) >= cs.catalog.Size() {
		return existing, nil
	}
	assigned := make(map[int]bool, len(existing))
	for _, inst := range existing {
		assigned[inst.Slot] = true
	}
	for slot, def := range cs.catalog.DailySet(childID, day) {
		if assigned[slot] {
			continue
		}
		err = cs.challengesRepo.CreateIfAbsent(ctx, &entity.ChallengeInstance{
			ChildID:      childID,
			Day:          day,
			Slot:         slot,
			Title:        def.Title,
			ActionType:   def.ActionType,
			TargetValue:  def.TargetValue,
			RewardPoints: def.RewardPoints,
		})
		if err != nil {
			if errors.Is(err, errorvalues.ErrChildNotFound) {
				return nil, err
			}
			return nil, errors.New("repository error: " + err.Error())
		}
	}
	instances, err := cs.challengesRepo.GetByChildAndDay(ctx, childID, day)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return instances, nil
}

func (cs *ChallengeService) GetTodayChallenges(ctx context.Context, childID, parentID uuid.UUID) ([]entity.ChallengeInstance, error) {
	if err := cs.verifyOwner(ctx, childID, parentID); err != nil {
		return nil, err
	}
	return cs.EnsureChallenges(ctx, childID, cs.today())
}

func (cs *ChallengeService) RecordProgress(ctx context.Context, childID, parentID uuid.UUID, req *ProgressRequest) (*ProgressResult, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			return nil, errors.Join(errorvalues.ErrValidation, validationError)
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	if err := cs.verifyOwner(ctx, childID, parentID); err != nil {
		return nil, err
	}
	day := cs.today()
	_, err = cs.EnsureChallenges(ctx, childID, day)
	if err != nil {
		return nil, err
	}
	result := &ProgressResult{
		CompletedNow: make([]entity.ChallengeInstance, 0, 1),
	}
	// A quiz_perfect event only counts when the score really is perfect,
	// regardless of what the caller claims
	if req.ActionType == entity.ActionQuizPerfect && (req.QuizScore == nil || *req.QuizScore != 100) {
		return result, nil
	}
	touched, err := cs.challengesRepo.IncrementProgress(ctx, childID, day, req.ActionType, req.Value)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	for _, inst := range touched {
		if inst.Completed {
			result.CompletedNow = append(result.CompletedNow, inst)
			result.TotalPointsAwarded += inst.RewardPoints
		}
	}
	return result, nil
}

func (cs *ChallengeService) GetHistory(ctx context.Context, childID, parentID uuid.UUID, days int) (*entity.HistorySummary, error) {
	if err := cs.verifyOwner(ctx, childID, parentID); err != nil {
		return nil, err
	}
	if days < minHistoryDays {
		days = minHistoryDays
	}
	if days > maxHistoryDays {
		days = maxHistoryDays
	}
	to := cs.today()
	from := to.AddDate(0, 0, -(days - 1))
	instances, err := cs.challengesRepo.GetByChildAndDateRange(ctx, childID, from, to)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	summary := &entity.HistorySummary{
		ChildID:      childID,
		Days:         days,
		DaySummaries: make([]entity.DaySummary, 0, days),
	}
	perDay := make(map[time.Time]*entity.DaySummary, days)
	assignedTotal, completedTotal := 0, 0
	for _, inst := range instances {
		day := dayKey(inst.Day)
		ds, ok := perDay[day]
		if !ok {
			ds = &entity.DaySummary{Day: day}
			perDay[day] = ds
		}
		ds.Assigned++
		assignedTotal++
		if inst.Completed {
			ds.Completed++
			ds.PointsEarned += inst.RewardPoints
			completedTotal++
			summary.TotalPoints += inst.RewardPoints
		}
	}
	for cur := from; !cur.After(to); cur = cur.AddDate(0, 0, 1) {
		if ds, ok := perDay[cur]; ok {
			summary.DaySummaries = append(summary.DaySummaries, *ds)
		}
	}
	if assignedTotal > 0 {
		summary.CompletionRate = float64(completedTotal) / float64(assignedTotal)
	}
	summary.Streak = streak(perDay)
	return summary, nil
}

// streak walks backward from the latest day that has data, counting
// consecutive days with at least one completion. A missing day or a day
// without completions breaks the walk
func streak(perDay map[time.Time]*entity.DaySummary) int {
	if len(perDay) == 0 {
		return 0
	}
	var latest time.Time
	for day := range perDay {
		if day.After(latest) {
			latest = day
		}
	}
	count := 0
	for cur := latest; ; cur = cur.AddDate(0, 0, -1) {
		ds, ok := perDay[cur]
		if !ok || ds.Completed == 0 {
			break
		}
		count++
	}
	return count
}

func (cs *ChallengeService) verifyOwner(ctx context.Context, childID, parentID uuid.UUID) error {
	child, err := cs.childrenRepo.GetByID(ctx, childID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChildNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	if child.ParentID != parentID {
		return errorvalues.ErrWrongOwner
	}
	return nil
}
