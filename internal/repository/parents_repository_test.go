package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/lumipath/challenges/internal/error_values"
	"github.com/lumipath/challenges/internal/repository"
	"github.com/lumipath/challenges/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreateParent(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	parent := entity.Parent{
		Name:         "test_parent",
		PasswordHash: "test_password_hash",
	}
	query := regexp.QuoteMeta(`INSERT INTO parents (name, password_hash) VALUES ($1, $2);`)
	ctx := context.Background()
	repo := repository.NewParentsRepoWithConn(conn)
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(parent.Name, parent.PasswordHash).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.Create(ctx, &parent)
		assert.NoError(t, err)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(parent.Name, parent.PasswordHash).WillReturnError(&pgconn.PgError{
			Code: "23505",
		})
		err := repo.Create(ctx, &parent)
		assert.ErrorIs(t, err, errorvalues.ErrParentExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(parent.Name, parent.PasswordHash).WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &parent)
		assert.Error(t, err)
	})
}

func TestFindParentByName(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewParentsRepoWithConn(conn)
	parent := entity.Parent{
		ID:           uuid.New(),
		Name:         "test_parent",
		PasswordHash: "test_password_hash",
	}
	query := regexp.QuoteMeta(`SELECT id, name, password_hash FROM parents WHERE name = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(parent.Name).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "password_hash"}).AddRow(parent.ID, parent.Name, parent.PasswordHash))
		result, err := repo.FindByName(ctx, parent.Name)
		assert.NoError(t, err)
		assert.Equal(t, parent, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(parent.Name).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByName(ctx, parent.Name)
		assert.ErrorIs(t, err, errorvalues.ErrParentNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(parent.Name).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByName(ctx, parent.Name)
		assert.Error(t, err)
	})
}

func TestFindParentByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewParentsRepoWithConn(conn)
	parent := entity.Parent{
		ID:           uuid.New(),
		Name:         "test_parent",
		PasswordHash: "test_password_hash",
	}
	query := regexp.QuoteMeta(`SELECT id, name, password_hash FROM parents WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(parent.ID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "password_hash"}).AddRow(parent.ID, parent.Name, parent.PasswordHash))
		result, err := repo.FindByID(ctx, parent.ID)
		assert.NoError(t, err)
		assert.Equal(t, parent, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(parent.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, parent.ID)
		assert.ErrorIs(t, err, errorvalues.ErrParentNotFound)
	})
}

func TestUpdateParent(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewParentsRepoWithConn(conn)
	parent := entity.Parent{
		ID:           uuid.New(),
		Name:         "test_parent",
		PasswordHash: "test_password_hash",
	}
	query := regexp.QuoteMeta(`UPDATE parents SET name = $1, password_hash = $2 WHERE id = $3;`)
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(parent.Name, parent.PasswordHash, parent.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Update(ctx, &parent)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(parent.Name, parent.PasswordHash, parent.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Update(ctx, &parent)
		assert.ErrorIs(t, err, errorvalues.ErrParentNotFound)
	})
}

func TestDeleteParent(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewParentsRepoWithConn(conn)
	id := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM parents WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrParentNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(id).
			WillReturnError(errors.New("db error"))
		err := repo.Delete(ctx, id)
		assert.Error(t, err)
	})
}
