package blocked_period

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий блокировок времени, выставленных бизнесом
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBusinessAndDate получает блокировки бизнеса на дату
// При указанном StaffName возвращаются блокировки сотрудника и блокировки без сотрудника
// IncludeInactive для блокировок не используется
func (r *Repository) GetByBusinessAndDate(ctx context.Context, filter domain.BookingsFilter) ([]domain.BlockedPeriod, error) {
	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	periods := make([]domain.BlockedPeriod, 0)
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			return nil, err
		}
		periods = append(periods, period)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessAndDate - rows error: %v", ErrScanRow, err)
	}

	return periods, nil
}

func buildListQuery(filter domain.BookingsFilter) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"business_id",
		"block_date",
		"start_time",
		"end_time",
		"staff_name",
		"reason",
	).
		From("blocked_periods").
		Where(squirrel.Eq{"business_id": filter.BusinessID}).
		Where(squirrel.Eq{"block_date": filter.Date.Format(domain.DateFormat)})

	if filter.StaffName != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"staff_name": nil},
			squirrel.Eq{"staff_name": ""},
			squirrel.Eq{"staff_name": *filter.StaffName},
		})
	}

	return selectBuilder.OrderBy("start_time ASC").ToSql()
}

func scanPeriod(rows *sql.Rows) (domain.BlockedPeriod, error) {
	var period domain.BlockedPeriod

	err := rows.Scan(
		&period.ID,
		&period.BusinessID,
		&period.Date,
		&period.StartTime,
		&period.EndTime,
		&period.StaffName,
		&period.Reason,
	)
	if err != nil {
		return domain.BlockedPeriod{}, fmt.Errorf("%w: scanPeriod - scan row: %v", ErrScanRow, err)
	}

	return period, nil
}
