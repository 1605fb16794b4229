package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/lumipath/challenges/internal/error_values"
	"github.com/lumipath/challenges/pkg/cleanup"
	"github.com/lumipath/challenges/pkg/entity"
)

type ChildrenRepository struct {
	conn PgConnection
}

func NewChildrenRepo(cfg DBConfig) *ChildrenRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for childrenRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for childrenRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing childrenRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ChildrenRepository{
		conn: pool,
	}
}

func NewChildrenRepoWithConn(conn PgConnection) *ChildrenRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for childrenRepo: " + err.Error())
	}
	return &ChildrenRepository{
		conn: conn,
	}
}

func (cr *ChildrenRepository) Create(ctx context.Context, child *entity.Child) (uuid.UUID, error) {
	row := cr.conn.QueryRow(
		ctx,
		`INSERT INTO children (parent_id, name) VALUES ($1, $2) RETURNING id;`,
		child.ParentID,
		child.Name,
	)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrParentNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating child db error: " + err.Error())
	}
	return id, nil
}

func (cr *ChildrenRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Child, error) {
	var child entity.Child
	child.ID = id
	row := cr.conn.QueryRow(ctx, `SELECT parent_id, name, created_at FROM children WHERE id = $1;`, id)
	if err := row.Scan(&child.ParentID, &child.Name, &child.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChildNotFound
		}
		return nil, errors.New("getting child by id error: " + err.Error())
	}
	return &child, nil
}

func (cr *ChildrenRepository) GetByParentID(ctx context.Context, parentID uuid.UUID) ([]*entity.Child, error) {
	children := make([]*entity.Child, 0)
	rows, err := cr.conn.Query(ctx, `SELECT id, parent_id, name, created_at
		FROM children WHERE parent_id = $1 ORDER BY created_at;`, parentID)
	if err != nil {
		return nil, errors.New("getting children by parent id error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		c := entity.Child{}
		err = rows.Scan(&c.ID, &c.ParentID, &c.Name, &c.CreatedAt)
		if err != nil {
			return nil, errors.New("child row parsing error: " + err.Error())
		}
		children = append(children, &c)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning children: " + rows.Err().Error())
	}
	return children, nil
}

func (cr *ChildrenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := cr.conn.Exec(ctx, `DELETE FROM children WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting child: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrChildNotFound
	}
	return nil
}
