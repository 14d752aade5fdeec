package task

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// taskColumns колонки основной таблицы tasks
var taskColumns = []string{
	"id",
	"vid",
	"area_id",
	"type",
	"state",
	"desc_msg",
	"desc_create_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
// Журнал состояний хранится как text[] в основной строке; слоты, участники и
// цепочка эскалации - в дочерних таблицах с колонкой position для порядка
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование вместе с дочерними строками
// Вызывается только из create_booking usecase внутри сериализуемой транзакции -
// создание в обход транзакционной границы ломает гарантию от двойного бронирования
func (r *Repository) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tasks").
		Columns("vid", "area_id", "type", "state", "desc_msg", "desc_create_at").
		Values(
			t.VID,
			t.AreaID,
			t.Type,
			pq.Array(statesToStrings(t.State)),
			descMsg(t.Desc),
			descCreateAt(t.Desc),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	if err := r.insertReserve(ctx, executor, t.ID, t.Reserve); err != nil {
		return nil, err
	}
	if err := r.insertRequestors(ctx, executor, t.ID, t.Requestor); err != nil {
		return nil, err
	}
	if err := r.insertStaff(ctx, executor, t.ID, t.Staff); err != nil {
		return nil, err
	}

	return t, nil
}

// GetByID получает бронирование по ID вместе с дочерними строками
// Внутри транзакции основная строка блокируется (FOR UPDATE) - все переходы
// state machine выполняют read-modify-write под этой блокировкой
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan task: %v", ErrScanRow, err)
	}

	if err := r.loadChildren(ctx, executor, []*domain.Task{t}); err != nil {
		return nil, err
	}

	return t, nil
}

// GetByVID получает бронирование по человекочитаемому коду
func (r *Repository) GetByVID(ctx context.Context, vid string) (*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"vid": vid}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVID - scan task: %v", ErrScanRow, err)
	}

	if err := r.loadChildren(ctx, executor, []*domain.Task{t}); err != nil {
		return nil, err
	}

	return t, nil
}

// GetReserveByArea получает все зарезервированные слоты площадки
// Используется валидатором при создании бронирования; внутри транзакции
// строки tasks блокируются, чтобы конкурирующее создание дождалось коммита
func (r *Repository) GetReserveByArea(ctx context.Context, areaID int64) ([]domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"r.start_at",
		"r.stop_at",
		"r.all_day",
	).
		From("task_reserve r").
		Join("tasks t ON t.id = r.task_id").
		Where(squirrel.Eq{"t.area_id": areaID}).
		OrderBy("r.task_id ASC, r.position ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF t")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetReserveByArea - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetReserveByArea - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.TimeSlot, 0)
	for rows.Next() {
		var slot domain.TimeSlot
		if err := rows.Scan(&slot.Start, &slot.Stop, &slot.AllDay); err != nil {
			return nil, fmt.Errorf("%w: GetReserveByArea - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetReserveByArea - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// Update сохраняет изменяемые части бронирования: журнал состояний,
// подтверждения участников, цепочку эскалации и аудит-комментарий
// Слоты и состав участников после создания не меняются
func (r *Repository) Update(ctx context.Context, t *domain.Task) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tasks").
		Set("state", pq.Array(statesToStrings(t.State))).
		Set("desc_msg", descMsg(t.Desc)).
		Set("desc_create_at", descCreateAt(t.Desc)).
		Set("updated_at", t.UpdatedAt).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTaskNotFound
	}

	if err := r.deleteChildren(ctx, executor, "task_requestor", t.ID); err != nil {
		return err
	}
	if err := r.insertRequestors(ctx, executor, t.ID, t.Requestor); err != nil {
		return err
	}

	if err := r.deleteChildren(ctx, executor, "task_staff", t.ID); err != nil {
		return err
	}
	if err := r.insertStaff(ctx, executor, t.ID, t.Staff); err != nil {
		return err
	}

	return nil
}

// GetByUsername получает бронирования, в которых участвует username
// Сортировка - сначала новые
func (r *Repository) GetByUsername(ctx context.Context, username string) ([]*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(prefixedTaskColumns()...).
		From("tasks t").
		Join("task_requestor q ON q.task_id = t.id").
		Where(squirrel.Eq{"q.username": username}).
		OrderBy("t.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadChildren(ctx, executor, tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

// GetLatestByUsername получает последнее бронирование пользователя,
// у которого ещё не прошёл хотя бы один слот
func (r *Repository) GetLatestByUsername(ctx context.Context, username string, now time.Time) (*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(prefixedTaskColumns()...).
		From("tasks t").
		Join("task_requestor q ON q.task_id = t.id").
		Where(squirrel.Eq{"q.username": username}).
		Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM task_reserve r WHERE r.task_id = t.id AND r.stop_at >= ?)",
			now,
		)).
		OrderBy("t.created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestByUsername - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestByUsername - scan task: %v", ErrScanRow, err)
	}

	if err := r.loadChildren(ctx, executor, []*domain.Task{t}); err != nil {
		return nil, err
	}

	return t, nil
}

// ListByCurrentState получает бронирования, чьё текущее состояние
// (последний элемент журнала) входит в states, с пагинацией
// Возвращает страницу и общее количество подходящих бронирований
func (r *Repository) ListByCurrentState(ctx context.Context, states []domain.TaskState, offset, limit uint64) ([]*domain.Task, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	currentStateFilter := squirrel.Expr(
		"state[cardinality(state)] = ANY(?)",
		pq.Array(statesToStrings(states)),
	)

	query, args, err := psqlbuilder.Select(taskColumns...).
		From("tasks").
		Where(currentStateFilter).
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListByCurrentState - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListByCurrentState - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, 0, err
	}

	if err := r.loadChildren(ctx, executor, tasks); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").
		From("tasks").
		Where(currentStateFilter).
		ToSql()

	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListByCurrentState - build count query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("%w: ListByCurrentState - scan count: %v", ErrScanRow, err)
	}

	return tasks, count, nil
}

// Вспомогательные методы

func (r *Repository) insertReserve(ctx context.Context, executor DBExecutor, taskID int64, reserve []domain.TimeSlot) error {
	if len(reserve) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("task_reserve").
		Columns("task_id", "position", "start_at", "stop_at", "all_day")
	for i, slot := range reserve {
		insertBuilder = insertBuilder.Values(taskID, i, slot.Start, slot.Stop, slot.AllDay)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertReserve - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertReserve - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) insertRequestors(ctx context.Context, executor DBExecutor, taskID int64, requestors []domain.Requestor) error {
	if len(requestors) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("task_requestor").
		Columns("task_id", "position", "username", "confirm")
	for i, req := range requestors {
		insertBuilder = insertBuilder.Values(taskID, i, req.Username, req.Confirm)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertRequestors - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertRequestors - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) insertStaff(ctx context.Context, executor DBExecutor, taskID int64, staff []domain.StaffRequested) error {
	if len(staff) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("task_staff").
		Columns("task_id", "position", "group_name", "approve")
	for i, s := range staff {
		insertBuilder = insertBuilder.Values(taskID, i, s.Group, s.Approve)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertStaff - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertStaff - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) deleteChildren(ctx context.Context, executor DBExecutor, table string, taskID int64) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"task_id": taskID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: deleteChildren - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: deleteChildren - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// loadChildren загружает слоты, участников и цепочку эскалации для набора бронирований
func (r *Repository) loadChildren(ctx context.Context, executor DBExecutor, tasks []*domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.Task, len(tasks))
	ids := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
		ids = append(ids, t.ID)
	}

	if err := r.loadReserve(ctx, executor, byID, ids); err != nil {
		return err
	}
	if err := r.loadRequestors(ctx, executor, byID, ids); err != nil {
		return err
	}
	if err := r.loadStaff(ctx, executor, byID, ids); err != nil {
		return err
	}
	return nil
}

func (r *Repository) loadReserve(ctx context.Context, executor DBExecutor, byID map[int64]*domain.Task, ids []int64) error {
	query, args, err := psqlbuilder.Select("task_id", "start_at", "stop_at", "all_day").
		From("task_reserve").
		Where(squirrel.Eq{"task_id": ids}).
		OrderBy("task_id ASC, position ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadReserve - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadReserve - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var taskID int64
		var slot domain.TimeSlot
		if err := rows.Scan(&taskID, &slot.Start, &slot.Stop, &slot.AllDay); err != nil {
			return fmt.Errorf("%w: loadReserve - scan slot: %v", ErrScanRow, err)
		}
		if t, ok := byID[taskID]; ok {
			t.Reserve = append(t.Reserve, slot)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadReserve - rows error: %v", ErrScanRow, err)
	}
	return nil
}

func (r *Repository) loadRequestors(ctx context.Context, executor DBExecutor, byID map[int64]*domain.Task, ids []int64) error {
	query, args, err := psqlbuilder.Select("task_id", "username", "confirm").
		From("task_requestor").
		Where(squirrel.Eq{"task_id": ids}).
		OrderBy("task_id ASC, position ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadRequestors - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadRequestors - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var taskID int64
		var req domain.Requestor
		if err := rows.Scan(&taskID, &req.Username, &req.Confirm); err != nil {
			return fmt.Errorf("%w: loadRequestors - scan requestor: %v", ErrScanRow, err)
		}
		if t, ok := byID[taskID]; ok {
			t.Requestor = append(t.Requestor, req)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadRequestors - rows error: %v", ErrScanRow, err)
	}
	return nil
}

func (r *Repository) loadStaff(ctx context.Context, executor DBExecutor, byID map[int64]*domain.Task, ids []int64) error {
	query, args, err := psqlbuilder.Select("task_id", "group_name", "approve").
		From("task_staff").
		Where(squirrel.Eq{"task_id": ids}).
		OrderBy("task_id ASC, position ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var taskID int64
		var s domain.StaffRequested
		if err := rows.Scan(&taskID, &s.Group, &s.Approve); err != nil {
			return fmt.Errorf("%w: loadStaff - scan staff: %v", ErrScanRow, err)
		}
		if t, ok := byID[taskID]; ok {
			t.Staff = append(t.Staff, s)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadStaff - rows error: %v", ErrScanRow, err)
	}
	return nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanTask сканирует основную строку бронирования
func scanTask(row scanner) (*domain.Task, error) {
	var t domain.Task
	var states []string
	var descMsg sql.NullString
	var descCreateAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.VID,
		&t.AreaID,
		&t.Type,
		pq.Array(&states),
		&descMsg,
		&descCreateAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.State = statesFromStrings(states)
	if descMsg.Valid {
		t.Desc = &domain.Desc{Msg: descMsg.String, CreateAt: descCreateAt.Time}
	}
	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}

// scanTasks сканирует результаты запроса в слайс бронирований (без дочерних строк)
func scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0)

	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTasks - scan row: %v", ErrScanRow, err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTasks - rows error: %v", ErrScanRow, err)
	}

	return tasks, nil
}

func prefixedTaskColumns() []string {
	cols := make([]string, len(taskColumns))
	for i, c := range taskColumns {
		cols[i] = "t." + c
	}
	return cols
}

func statesToStrings(states []domain.TaskState) []string {
	result := make([]string, len(states))
	for i, s := range states {
		result[i] = string(s)
	}
	return result
}

func statesFromStrings(states []string) []domain.TaskState {
	result := make([]domain.TaskState, len(states))
	for i, s := range states {
		result[i] = domain.TaskState(s)
	}
	return result
}

func descMsg(d *domain.Desc) interface{} {
	if d == nil {
		return nil
	}
	return d.Msg
}

func descCreateAt(d *domain.Desc) interface{} {
	if d == nil {
		return nil
	}
	return d.CreateAt
}
