package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lumipath/challenges/pkg/entity"
)

type ParentsRepositoryI interface {
	// Creates new parent account in database
	Create(ctx context.Context, parent *entity.Parent) error
	// Looks up parent by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.Parent, error)
	// Looks up parent by id. Can be used for authorization middleware
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Parent, error)
	// Updates parent's info
	Update(ctx context.Context, parent *entity.Parent) error
	// Deletes parent account
	Delete(ctx context.Context, id uuid.UUID) error
}

type ChildrenRepositoryI interface {
	// Creates new child under a parent. Only ParentID and Name are necessary
	Create(ctx context.Context, child *entity.Child) (uuid.UUID, error)
	// Searches child with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Child, error)
	// Lists children owned by parent
	GetByParentID(ctx context.Context, parentID uuid.UUID) ([]*entity.Child, error)
	// Deletes child with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type ChallengesRepositoryI interface {
	// Inserts an assigned challenge unless the (child, day, slot) row already
	// exists. Concurrent duplicate calls are safe, a conflict is not an error
	CreateIfAbsent(ctx context.Context, inst *entity.ChallengeInstance) error
	// Provides all challenges assigned to child on a calendar day, slot order
	GetByChildAndDay(ctx context.Context, childID uuid.UUID, day time.Time) ([]entity.ChallengeInstance, error)
	// Provides challenges of child for a period, both bounds inclusive
	GetByChildAndDateRange(ctx context.Context, childID uuid.UUID, from, to time.Time) ([]entity.ChallengeInstance, error)
	// Adds delta to every non-completed challenge of child on day bound to
	// action, flipping completed where the target is reached. Runs as a single
	// statement so all matching slots move together. Returns the touched rows
	IncrementProgress(ctx context.Context, childID uuid.UUID, day time.Time, action entity.ActionType, delta int) ([]entity.ChallengeInstance, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
