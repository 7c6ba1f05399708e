package todo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrNotFound = errors.New("todo not found")

type Store interface {
	Create(ctx context.Context, todo Todo) error
	List(ctx context.Context, offset, limit int64) ([]Todo, error)
	Update(ctx context.Context, input UpdateInput) error
	Delete(ctx context.Context, id string) error
}

// Querier is the subset of *pgxpool.Pool used by the store. Each call
// checks a connection out of the pool and hands it back once the statement
// (or, for Query, the rows) is done.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const (
	insertSQL = `insert into todo (id, description, completed) values ($1, $2, $3)`
	listSQL   = `select id, description, completed from todo offset $1 limit $2`
	updateSQL = `update todo set description = coalesce($2, description), completed = coalesce($3, completed) where id = $1`
	deleteSQL = `delete from todo where id = $1`
)

type postgresStore struct {
	db Querier
}

func NewPostgresStore(db Querier) Store {
	return &postgresStore{db: db}
}

func (s *postgresStore) Create(ctx context.Context, todo Todo) error {
	_, err := s.db.Exec(ctx, insertSQL, todo.ID, todo.Description, todo.Completed)
	return err
}

func (s *postgresStore) List(ctx context.Context, offset, limit int64) ([]Todo, error) {
	rows, err := s.db.Query(ctx, listSQL, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []Todo{}
	for rows.Next() {
		var todo Todo
		if err := rows.Scan(&todo.ID, &todo.Description, &todo.Completed); err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}

func (s *postgresStore) Update(ctx context.Context, input UpdateInput) error {
	tag, err := s.db.Exec(ctx, updateSQL, input.ID, input.Description, input.Completed)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *postgresStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, deleteSQL, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
