package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/lumipath/challenges/internal/error_values"
	"github.com/lumipath/challenges/pkg/cleanup"
	"github.com/lumipath/challenges/pkg/entity"
)

type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepo(cfg DBConfig) *ChallengesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for challengesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing challengesRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ChallengesRepository{
		conn: pool,
	}
}

func NewChallengesRepoWithConn(conn PgConnection) *ChallengesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	return &ChallengesRepository{
		conn: conn,
	}
}

// CreateIfAbsent relies on the unique index on (child_id, day, slot). Two
// concurrent assigners insert the same deterministic row, the loser's insert
// becomes a no-op instead of a duplicate
func (chr *ChallengesRepository) CreateIfAbsent(ctx context.Context, inst *entity.ChallengeInstance) error {
	_, err := chr.conn.Exec(
		ctx,
		`INSERT INTO daily_challenges (child_id, day, slot, title, action_type, target_value, reward_points)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (child_id, day, slot) DO NOTHING;`,
		inst.ChildID,
		inst.Day,
		inst.Slot,
		inst.Title,
		inst.ActionType,
		inst.TargetValue,
		inst.RewardPoints,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrChildNotFound
			// Unique violation outside the conflict target, treated as already assigned
			case "23505":
				return nil
			}
		}
		return errors.New("assigning challenge error: " + err.Error())
	}
	return nil
}

func (chr *ChallengesRepository) GetByChildAndDay(ctx context.Context, childID uuid.UUID, day time.Time) ([]entity.ChallengeInstance, error) {
	rows, err := chr.conn.Query(
		ctx,
		`SELECT id, child_id, day, slot, title, action_type, target_value, current_value, reward_points, completed, completed_at, created_at
		FROM daily_challenges WHERE child_id = $1 AND day = $2 ORDER BY slot;`,
		childID,
		day,
	)
	if err != nil {
		return nil, errors.New("getting challenges for day error: " + err.Error())
	}
	return scanChallengeRows(rows)
}

func (chr *ChallengesRepository) GetByChildAndDateRange(ctx context.Context, childID uuid.UUID, from, to time.Time) ([]entity.ChallengeInstance, error) {
	rows, err := chr.conn.Query(
		ctx,
		`SELECT id, child_id, day, slot, title, action_type, target_value, current_value, reward_points, completed, completed_at, created_at
		FROM daily_challenges WHERE child_id = $1 AND day >= $2 AND day <= $3 ORDER BY day, slot;`,
		childID,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting challenges for period error: " + err.Error())
	}
	return scanChallengeRows(rows)
}

// IncrementProgress applies one progress event to every open matching slot in
// a single statement, so either all affected slots move or none do, and the
// completed = FALSE guard makes each completion transition happen exactly once
// even under concurrent events
func (chr *ChallengesRepository) IncrementProgress(ctx context.Context, childID uuid.UUID, day time.Time, action entity.ActionType, delta int) ([]entity.ChallengeInstance, error) {
	rows, err := chr.conn.Query(
		ctx,
		`UPDATE daily_challenges
		SET current_value = current_value + $4,
			completed = current_value + $4 >= target_value,
			completed_at = CASE WHEN current_value + $4 >= target_value THEN NOW() ELSE completed_at END
		WHERE child_id = $1 AND day = $2 AND action_type = $3 AND completed = FALSE
		RETURNING id, child_id, day, slot, title, action_type, target_value, current_value, reward_points, completed, completed_at, created_at;`,
		childID,
		day,
		action,
		delta,
	)
	if err != nil {
		return nil, errors.New("incrementing challenge progress error: " + err.Error())
	}
	return scanChallengeRows(rows)
}

func scanChallengeRows(rows pgx.Rows) ([]entity.ChallengeInstance, error) {
	defer rows.Close()
	result := make([]entity.ChallengeInstance, 0, 4)
	for rows.Next() {
		inst := entity.ChallengeInstance{}
		err := rows.Scan(
			&inst.ID,
			&inst.ChildID,
			&inst.Day,
			&inst.Slot,
			&inst.Title,
			&inst.ActionType,
			&inst.TargetValue,
			&inst.CurrentValue,
			&inst.RewardPoints,
			&inst.Completed,
			&inst.CompletedAt,
			&inst.CreatedAt,
		)
		if err != nil {
			return nil, errors.New("challenge row parsing error: " + err.Error())
		}
		result = append(result, inst)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected challenge rows error: " + rows.Err().Error())
	}
	return result, nil
}
