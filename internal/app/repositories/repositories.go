package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/memitrading/memi/internal/db"
	"github.com/memitrading/memi/internal/pkg/apperrors"
	"github.com/memitrading/memi/internal/pkg/logger"
)

// ErrNotFound is returned when a row with the requested id does not exist
var ErrNotFound = apperrors.ErrResourceNotFound

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	ServiceRepository     *ServiceRepository
	AboutRepository       *AboutRepository
	StatRepository        *StatRepository
	AppFeatureRepository  *AppFeatureRepository
	CourseRepository      *CourseRepository
	NewsRepository        *NewsRepository
	EventRepository       *EventRepository
	TeamMemberRepository  *TeamMemberRepository
	FaqRepository         *FaqRepository
	EnrollmentRepository  *EnrollmentRepository
	TestimonialRepository *TestimonialRepository
	AppShowcaseRepository *AppShowcaseRepository
}

// NewRepositories initializes all repositories on a pool
func NewRepositories(pool db.TxBeginner) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(pool),
		ServiceRepository:     NewServiceRepository(pool),
		AboutRepository:       NewAboutRepository(pool),
		StatRepository:        NewStatRepository(pool),
		AppFeatureRepository:  NewAppFeatureRepository(pool),
		CourseRepository:      NewCourseRepository(pool),
		NewsRepository:        NewNewsRepository(pool),
		EventRepository:       NewEventRepository(pool),
		TeamMemberRepository:  NewTeamMemberRepository(pool),
		FaqRepository:         NewFaqRepository(pool),
		EnrollmentRepository:  NewEnrollmentRepository(pool),
		TestimonialRepository: NewTestimonialRepository(pool),
		AppShowcaseRepository: NewAppShowcaseRepository(pool),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// table implements the list/get/insert/update/delete/count statements shared by
// the content repositories. Entity repositories wrap it with typed methods.
type table[T any] struct {
	db      db.DBTX
	sb      squirrel.StatementBuilderType
	name    string
	columns []string
	orderBy []string
	scan    func(rowScanner) (*T, error)
}

func newTable[T any](conn db.DBTX, name string, columns []string, orderBy []string, scan func(rowScanner) (*T, error)) *table[T] {
	return &table[T]{
		db:      conn,
		sb:      statementBuilder(),
		name:    name,
		columns: columns,
		orderBy: orderBy,
		scan:    scan,
	}
}

// with returns a copy of t bound to conn, typically a transaction
func (t *table[T]) with(conn db.DBTX) *table[T] {
	c := *t
	c.db = conn
	return &c
}

func (t *table[T]) list(ctx context.Context, where interface{}) ([]*T, error) {
	q := t.sb.Select(t.columns...).From(t.name)
	if where != nil {
		q = q.Where(where)
	}
	sql, args, err := q.OrderBy(t.orderBy...).ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error building list SQL")
		return nil, fmt.Errorf("failed to build list %s query: %w", t.name, err)
	}

	rows, err := t.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error executing list query")
		return nil, fmt.Errorf("error querying %s: %w", t.name, err)
	}
	defer rows.Close()

	items := []*T{}
	for rows.Next() {
		item, err := t.scan(rows)
		if err != nil {
			logger.Error().Err(err).Str("table", t.name).Msg("Error scanning row")
			return nil, fmt.Errorf("error scanning %s row: %w", t.name, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error iterating rows")
		return nil, fmt.Errorf("error iterating %s rows: %w", t.name, err)
	}

	return items, nil
}

func (t *table[T]) get(ctx context.Context, id int64) (*T, error) {
	sql, args, err := t.sb.Select(t.columns...).
		From(t.name).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error building get by ID SQL")
		return nil, fmt.Errorf("failed to build get %s query: %w", t.name, err)
	}

	item, err := t.scan(t.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("table", t.name).Int64("id", id).Msg("Error getting row by ID")
		return nil, fmt.Errorf("error getting %s by ID: %w", t.name, err)
	}
	return item, nil
}

func (t *table[T]) insert(ctx context.Context, values map[string]interface{}) (*T, error) {
	sql, args, err := t.sb.Insert(t.name).
		SetMap(values).
		Suffix(t.returning()).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error building insert SQL")
		return nil, fmt.Errorf("failed to build insert %s query: %w", t.name, err)
	}

	item, err := t.scan(t.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error executing insert query")
		return nil, fmt.Errorf("error creating %s row: %w", t.name, err)
	}
	return item, nil
}

// update applies the given columns and always stamps updated_at
func (t *table[T]) update(ctx context.Context, id int64, fields map[string]interface{}) (*T, error) {
	set := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		set[k] = v
	}
	set["updated_at"] = squirrel.Expr("NOW()")

	sql, args, err := t.sb.Update(t.name).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix(t.returning()).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error building update SQL")
		return nil, fmt.Errorf("failed to build update %s query: %w", t.name, err)
	}

	item, err := t.scan(t.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("table", t.name).Int64("id", id).Msg("Error executing update query")
		return nil, fmt.Errorf("error updating %s row: %w", t.name, err)
	}
	return item, nil
}

func (t *table[T]) delete(ctx context.Context, id int64) error {
	sql, args, err := t.sb.Delete(t.name).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error building delete SQL")
		return fmt.Errorf("failed to build delete %s query: %w", t.name, err)
	}

	tag, err := t.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Int64("id", id).Msg("Error executing delete query")
		return fmt.Errorf("error deleting %s row: %w", t.name, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (t *table[T]) count(ctx context.Context, where interface{}) (int64, error) {
	q := t.sb.Select("COUNT(*)").From(t.name)
	if where != nil {
		q = q.Where(where)
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count %s query: %w", t.name, err)
	}

	var n int64
	if err := t.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error counting rows")
		return 0, fmt.Errorf("error counting %s: %w", t.name, err)
	}
	return n, nil
}

func (t *table[T]) returning() string {
	return "RETURNING " + strings.Join(t.columns, ", ")
}

// emptyIfNil keeps NOT NULL array columns from receiving SQL NULL
func emptyIfNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
