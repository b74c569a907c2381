package rules

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/dbmetrics"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/psqlbuilder"
)

const table = "pricing_rules"

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const pgUniqueViolation = "23505"

var columns = []string{
	"id",
	"space_type",
	"space_id",
	"minimum_stay_days",
	"day_count",
	"pool_strategy",
	"member_free_pool_guests",
	"guest_min_billable_age",
	"created_at",
	"updated_at",
}

// Repository репозиторий правил расчета стоимости
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новые правила
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, rules *domain.PricingRules) (*domain.PricingRules, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"space_type",
			"space_id",
			"minimum_stay_days",
			"day_count",
			"pool_strategy",
			"member_free_pool_guests",
			"guest_min_billable_age",
		).
		Values(
			spaceTypeValue(rules.SpaceType),
			rules.SpaceID,
			rules.MinimumStayDays,
			string(rules.DayCount),
			string(rules.PoolStrategy),
			rules.MemberFreePoolGuests,
			rules.GuestMinBillableAge,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rules.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateRules
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rules.CreatedAt = createdAt.Time
	rules.UpdatedAt = updatedAt.Time

	return rules, nil
}

// GetByID получает правила по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PricingRules, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rules, err := scanRules(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRulesNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rules: %v", ErrScanRow, err)
	}

	return rules, nil
}

// GetByKey получает правила ровно для указанного ключа
// spaceType и spaceID = nil означают NULL в соответствующей колонке
func (r *Repository) GetByKey(ctx context.Context, spaceType *domain.SpaceType, spaceID *int64) (*domain.PricingRules, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(keyFilter(spaceType, spaceID)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	rules, err := scanRules(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRulesNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan rules: %v", ErrScanRow, err)
	}

	return rules, nil
}

// GetRulesWithHierarchy получает правила с учетом иерархии приоритетов
// Приоритет применения:
// 1. Правила конкретного пространства (space_id)
// 2. Правила для всех пространств этого типа (space_type)
// 3. Глобальные правила (NULL, NULL)
//
// Если правила не найдены ни на одном уровне, возвращает ErrRulesNotFound
func (r *Repository) GetRulesWithHierarchy(ctx context.Context, spaceID *int64, spaceType domain.SpaceType) (*domain.PricingRules, error) {
	// 1. Пространство
	if spaceID != nil {
		rules, err := r.GetByKey(ctx, &spaceType, spaceID)
		if err == nil {
			return rules, nil
		}
		if err != ErrRulesNotFound {
			return nil, fmt.Errorf("%w: GetRulesWithHierarchy - level 1 (space): %v", ErrExecQuery, err)
		}
	}

	// 2. Тип пространства
	rules, err := r.GetByKey(ctx, &spaceType, nil)
	if err == nil {
		return rules, nil
	}
	if err != ErrRulesNotFound {
		return nil, fmt.Errorf("%w: GetRulesWithHierarchy - level 2 (space type): %v", ErrExecQuery, err)
	}

	// 3. Глобальные
	rules, err = r.GetByKey(ctx, nil, nil)
	if err == nil {
		return rules, nil
	}
	if err != ErrRulesNotFound {
		return nil, fmt.Errorf("%w: GetRulesWithHierarchy - level 3 (global): %v", ErrExecQuery, err)
	}

	return nil, ErrRulesNotFound
}

// GetAll получает все правила, глобальные первыми
func (r *Repository) GetAll(ctx context.Context) ([]*domain.PricingRules, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("space_type ASC NULLS FIRST, space_id ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.PricingRules, 0)

	for rows.Next() {
		rules, err := scanRules(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		result = append(result, rules)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Update обновляет значения правил (ключ space_type/space_id не меняется)
func (r *Repository) Update(ctx context.Context, id int64, rules *domain.PricingRules) (*domain.PricingRules, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("minimum_stay_days", rules.MinimumStayDays).
		Set("day_count", string(rules.DayCount)).
		Set("pool_strategy", string(rules.PoolStrategy)).
		Set("member_free_pool_guests", rules.MemberFreePoolGuests).
		Set("guest_min_billable_age", rules.GuestMinBillableAge).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrRulesNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rules.ID = id
	rules.CreatedAt = createdAt.Time
	rules.UpdatedAt = updatedAt.Time

	return rules, nil
}

// Delete удаляет правила
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRulesNotFound
	}

	return nil
}

// Helper methods

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRules(row rowScanner) (*domain.PricingRules, error) {
	var (
		rules                domain.PricingRules
		spaceType            sql.NullString
		spaceID              sql.NullInt64
		dayCount, strategy   string
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&rules.ID,
		&spaceType,
		&spaceID,
		&rules.MinimumStayDays,
		&dayCount,
		&strategy,
		&rules.MemberFreePoolGuests,
		&rules.GuestMinBillableAge,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if spaceType.Valid {
		t := domain.SpaceType(spaceType.String)
		rules.SpaceType = &t
	}
	if spaceID.Valid {
		id := spaceID.Int64
		rules.SpaceID = &id
	}
	rules.DayCount = domain.DayCountConvention(dayCount)
	rules.PoolStrategy = domain.PoolStrategy(strategy)
	rules.CreatedAt = createdAt.Time
	rules.UpdatedAt = updatedAt.Time

	return &rules, nil
}

// keyFilter фильтр по ключу (NULL или конкретное значение в каждой колонке)
func keyFilter(spaceType *domain.SpaceType, spaceID *int64) squirrel.Eq {
	filter := squirrel.Eq{"space_type": nil, "space_id": nil}
	if spaceType != nil {
		filter["space_type"] = string(*spaceType)
	}
	if spaceID != nil {
		filter["space_id"] = *spaceID
	}
	return filter
}

func spaceTypeValue(t *domain.SpaceType) interface{} {
	if t == nil {
		return nil
	}
	return string(*t)
}
