package repository_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/lumipath/challenges/internal/repository"
	"github.com/lumipath/challenges/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupChallengesTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_parent"),
		postgres.WithDatabase("lumipath"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}

	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}

func seedChild(t *testing.T, cfg repository.DBConfig) uuid.UUID {
	ctx := context.Background()
	parentsRepo := repository.NewParentsRepo(cfg)
	err := parentsRepo.Create(ctx, &entity.Parent{
		Name:         "integration_parent",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	parent, err := parentsRepo.FindByName(ctx, "integration_parent")
	require.NoError(t, err)
	childrenRepo := repository.NewChildrenRepo(cfg)
	childID, err := childrenRepo.Create(ctx, &entity.Child{
		ParentID: parent.ID,
		Name:     "Alex",
	})
	require.NoError(t, err)
	return childID
}

func TestChallengesIntegrational(t *testing.T) {
	cfg := setupChallengesTestDB(t)
	childID := seedChild(t, cfg)
	challengesRepo := repository.NewChallengesRepo(cfg)
	ctx := context.Background()
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	t.Run("concurrent assignment creates no duplicates", func(t *testing.T) {
		inst := entity.ChallengeInstance{
			ChildID:      childID,
			Day:          day,
			Slot:         0,
			Title:        "Ask the tutor 3 questions",
			ActionType:   entity.ActionAIQuestion,
			TargetValue:  3,
			RewardPoints: 15,
		}
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, challengesRepo.CreateIfAbsent(ctx, &inst))
			}()
		}
		wg.Wait()
		instances, err := challengesRepo.GetByChildAndDay(ctx, childID, day)
		require.NoError(t, err)
		require.Len(t, instances, 1)
		assert.Equal(t, 0, instances[0].CurrentValue)
		assert.False(t, instances[0].Completed)
	})

	t.Run("one event moves both time slots atomically", func(t *testing.T) {
		for slot, target := range map[int]int{1: 15, 2: 30} {
			err := challengesRepo.CreateIfAbsent(ctx, &entity.ChallengeInstance{
				ChildID:      childID,
				Day:          day,
				Slot:         slot,
				Title:        "Learn",
				ActionType:   entity.ActionTimeSpent,
				TargetValue:  target,
				RewardPoints: target,
			})
			require.NoError(t, err)
		}
		touched, err := challengesRepo.IncrementProgress(ctx, childID, day, entity.ActionTimeSpent, 20)
		require.NoError(t, err)
		require.Len(t, touched, 2)
		completed := 0
		for _, inst := range touched {
			assert.Equal(t, 20, inst.CurrentValue)
			if inst.Completed {
				completed++
				assert.Equal(t, 15, inst.TargetValue)
				assert.NotNil(t, inst.CompletedAt)
			}
		}
		assert.Equal(t, 1, completed)
	})

	t.Run("concurrent events complete a challenge exactly once", func(t *testing.T) {
		err := challengesRepo.CreateIfAbsent(ctx, &entity.ChallengeInstance{
			ChildID:      childID,
			Day:          day,
			Slot:         3,
			Title:        "Review 5 topics",
			ActionType:   entity.ActionReviewCompleted,
			TargetValue:  5,
			RewardPoints: 25,
		})
		require.NoError(t, err)
		var (
			wg          sync.WaitGroup
			mu          sync.Mutex
			completions int
		)
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				touched, err := challengesRepo.IncrementProgress(ctx, childID, day, entity.ActionReviewCompleted, 1)
				assert.NoError(t, err)
				for _, inst := range touched {
					if inst.Completed {
						mu.Lock()
						completions++
						mu.Unlock()
					}
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, completions)
		instances, err := challengesRepo.GetByChildAndDay(ctx, childID, day)
		require.NoError(t, err)
		for _, inst := range instances {
			if inst.Slot == 3 {
				assert.Equal(t, 5, inst.CurrentValue)
				assert.True(t, inst.Completed)
			}
		}
	})

	t.Run("completed challenge ignores further events", func(t *testing.T) {
		touched, err := challengesRepo.IncrementProgress(ctx, childID, day, entity.ActionReviewCompleted, 1)
		require.NoError(t, err)
		assert.Len(t, touched, 0)
	})
}
