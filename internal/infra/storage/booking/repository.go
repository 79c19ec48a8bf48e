package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	"github.com/m04kA/SMC-BookingAvailability/pkg/psqlbuilder"
)

const tableName = "bookings"

// Порядок колонок совпадает в SELECT и INSERT
var columns = []string{
	"id",
	"position",
	"booking_date",
	"service_id",
	"service_name",
	"client_name",
	"client_phone",
	"client_email",
	"client_address",
	"notes",
	"status",
	"whatsapp_sent",
	"created_at",
	"confirmed_at",
}

// Repository хранит набор бронирований в таблице PostgreSQL
// Save заменяет содержимое таблицы целиком внутри одной транзакции
type Repository struct {
	db DB
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// Load читает все бронирования в порядке создания
func (r *Repository) Load(ctx context.Context) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Save заменяет набор бронирований: DELETE всех строк и один INSERT с новым набором
// При любой ошибке транзакция откатывается и в таблице остаётся прежний набор
func (r *Repository) Save(ctx context.Context, bookings []*domain.Booking) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: Save - begin: %v", ErrTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	deleteQuery, deleteArgs, err := psqlbuilder.Delete(tableName).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Save - execute delete: %v", ErrExecQuery, err)
	}

	if len(bookings) > 0 {
		insert := psqlbuilder.Insert(tableName).Columns(columns...)
		position := 0
		for _, b := range bookings {
			if b == nil {
				continue
			}
			insert = insert.Values(
				b.ID,
				position,
				b.Date,
				b.ServiceID,
				b.ServiceName,
				b.ClientName,
				b.ClientPhone,
				b.ClientEmail,
				b.ClientAddress,
				b.Notes,
				string(b.Status),
				b.WhatsappSent,
				b.CreatedAt,
				b.ConfirmedAt,
			)
			position++
		}

		insertQuery, insertArgs, buildErr := insert.ToSql()
		if buildErr != nil {
			err = buildErr
			return fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, buildErr)
		}
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("%w: Save - execute insert: %v", ErrExecQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: Save - commit: %v", ErrTransaction, err)
	}
	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var (
			booking     domain.Booking
			position    int
			status      string
			email       sql.NullString
			notes       sql.NullString
			confirmedAt sql.NullTime
		)

		err := rows.Scan(
			&booking.ID,
			&position,
			&booking.Date,
			&booking.ServiceID,
			&booking.ServiceName,
			&booking.ClientName,
			&booking.ClientPhone,
			&email,
			&booking.ClientAddress,
			&notes,
			&status,
			&booking.WhatsappSent,
			&booking.CreatedAt,
			&confirmedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		parsed, ok := domain.ParseBookingStatus(status)
		if !ok {
			return nil, fmt.Errorf("%w: scanBookings - booking %s has status %q", ErrInvalidStatus, booking.ID, status)
		}
		booking.Status = parsed
		booking.Date = domain.DateOnly(booking.Date)

		if email.Valid {
			booking.ClientEmail = &email.String
		}
		if notes.Valid {
			booking.Notes = &notes.String
		}
		if confirmedAt.Valid {
			booking.ConfirmedAt = &confirmedAt.Time
		}

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
