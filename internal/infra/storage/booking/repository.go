package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения бронирований
// Бронирования создаются BookingService, здесь они только читаются для расчета доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBusinessAndDate получает бронирования бизнеса на дату
// Поддерживает фильтрацию по:
// - Сотруднику (StaffName) - записи этого сотрудника и записи без сотрудника
// - Включению отмененных бронирований (IncludeInactive)
//
// Примеры использования:
//
// 1. Все занимающие время бронирования на дату:
//    filter := domain.BookingsFilter{BusinessID: 7, Date: date}
//
// 2. Бронирования, относящиеся к сотруднику Ana:
//    filter := domain.BookingsFilter{BusinessID: 7, Date: date, StaffName: ptr.Ptr("Ana")}
func (r *Repository) GetByBusinessAndDate(ctx context.Context, filter domain.BookingsFilter) ([]domain.ExistingBooking, error) {
	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

func buildListQuery(filter domain.BookingsFilter) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"business_id",
		"booking_date",
		"start_time",
		"duration_minutes",
		"staff_name",
		"status",
	).
		From("bookings").
		Where(squirrel.Eq{"business_id": filter.BusinessID}).
		Where(squirrel.Eq{"booking_date": filter.Date.Format(domain.DateFormat)})

	// Записи без сотрудника занимают время всех сотрудников
	if filter.StaffName != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"staff_name": nil},
			squirrel.Eq{"staff_name": ""},
			squirrel.Eq{"staff_name": *filter.StaffName},
		})
	}

	if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Expr("status <> ALL(?)", pq.Array(inactiveStatusStrings)))
	}

	return selectBuilder.OrderBy("start_time ASC").ToSql()
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]domain.ExistingBooking, error) {
	bookings := make([]domain.ExistingBooking, 0)

	for rows.Next() {
		var booking domain.ExistingBooking

		err := rows.Scan(
			&booking.ID,
			&booking.BusinessID,
			&booking.Date,
			&booking.StartTime,
			&booking.DurationMinutes,
			&booking.StaffName,
			&booking.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
