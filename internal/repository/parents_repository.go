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

type ParentsRepository struct {
	conn PgConnection
}

func NewParentsRepo(cfg DBConfig) *ParentsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for parentsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for parentsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing parentsRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ParentsRepository{
		conn: pool,
	}
}

func NewParentsRepoWithConn(conn PgConnection) *ParentsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for parentsRepo: " + err.Error())
	}
	return &ParentsRepository{
		conn: conn,
	}
}

func (pr *ParentsRepository) Create(ctx context.Context, parent *entity.Parent) error {
	_, err := pr.conn.Exec(
		ctx,
		`INSERT INTO parents (name, password_hash) VALUES ($1, $2);`,
		parent.Name,
		parent.PasswordHash,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrParentExists
			}
		}
		return errors.New("creating parent db error: " + err.Error())
	}
	return nil
}

func (pr *ParentsRepository) FindByName(ctx context.Context, name string) (*entity.Parent, error) {
	var parent entity.Parent
	row := pr.conn.QueryRow(ctx, `SELECT id, name, password_hash FROM parents WHERE name = $1;`, name)
	if err := row.Scan(&parent.ID, &parent.Name, &parent.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrParentNotFound
		}
		return nil, errors.New("getting parent by name error: " + err.Error())
	}
	return &parent, nil
}

func (pr *ParentsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Parent, error) {
	var parent entity.Parent
	row := pr.conn.QueryRow(ctx, `SELECT id, name, password_hash FROM parents WHERE id = $1;`, id)
	if err := row.Scan(&parent.ID, &parent.Name, &parent.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrParentNotFound
		}
		return nil, errors.New("getting parent by id error: " + err.Error())
	}
	return &parent, nil
}

func (pr *ParentsRepository) Update(ctx context.Context, parent *entity.Parent) error {
	ct, err := pr.conn.Exec(ctx, `UPDATE parents SET name = $1, password_hash = $2 WHERE id = $3;`,
		parent.Name, parent.PasswordHash, parent.ID,
	)
	if err != nil {
		return errors.New("error updating parent: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrParentNotFound
	}
	return nil
}

func (pr *ParentsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := pr.conn.Exec(ctx, `DELETE FROM parents WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting parent: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrParentNotFound
	}
	return nil
}
