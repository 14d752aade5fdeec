package area

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения площадок и их окон доступности
// Площадки авторизуются внешним CRUD слоем, отсюда они read-only
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает площадку вместе с окнами доступности и требованиями
// Если в контексте передана активная транзакция, использует её -
// create_booking читает площадку внутри сериализуемой границы
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Area, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"label",
		"building_id",
		"required_requestor",
		"required_form_id",
		"created_at",
		"updated_at",
	).
		From("areas").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var area domain.Area
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&area.ID,
		&area.Name,
		&area.Label,
		&area.BuildingID,
		&area.Required.Requestor,
		&area.Required.FormID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAreaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan area: %v", ErrScanRow, err)
	}

	area.CreatedAt = createdAt.Time
	area.UpdatedAt = updatedAt.Time

	windows, err := r.getWindows(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	area.Reserve = windows

	staff, err := r.getRequiredStaff(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	area.Required.Staff = staff

	return &area, nil
}

// getWindows загружает окна доступности площадки в порядке объявления
func (r *Repository) getWindows(ctx context.Context, executor DBExecutor, areaID int64) ([]domain.AvailabilityWindow, error) {
	query, args, err := psqlbuilder.Select(
		"interval_minutes",
		"max_slots",
		"start_time",
		"stop_time",
		"all_day",
		"week",
	).
		From("area_windows").
		Where(squirrel.Eq{"area_id": areaID}).
		OrderBy("position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getWindows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getWindows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]domain.AvailabilityWindow, 0)
	for rows.Next() {
		var w domain.AvailabilityWindow
		var start, stop sql.NullTime

		if err := rows.Scan(
			&w.IntervalMinutes,
			&w.MaxSlots,
			&start,
			&stop,
			&w.AllDay,
			&w.Week,
		); err != nil {
			return nil, fmt.Errorf("%w: getWindows - scan window: %v", ErrScanRow, err)
		}

		w.Start = start.Time
		w.Stop = stop.Time
		windows = append(windows, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

// getRequiredStaff загружает группы персонала, чьё одобрение требует площадка
func (r *Repository) getRequiredStaff(ctx context.Context, executor DBExecutor, areaID int64) ([]string, error) {
	query, args, err := psqlbuilder.Select("group_name").
		From("area_required_staff").
		Where(squirrel.Eq{"area_id": areaID}).
		OrderBy("group_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getRequiredStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getRequiredStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	groups := make([]string, 0)
	for rows.Next() {
		var group string
		if err := rows.Scan(&group); err != nil {
			return nil, fmt.Errorf("%w: getRequiredStaff - scan group: %v", ErrScanRow, err)
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getRequiredStaff - rows error: %v", ErrScanRow, err)
	}

	return groups, nil
}
