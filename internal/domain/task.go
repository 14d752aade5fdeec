package domain

import (
	"strings"
	"time"
)

// TaskState токен жизненного цикла бронирования
type TaskState string

const (
	StateWait      TaskState = "wait"
	StateRequested TaskState = "requested"
	StateAccept    TaskState = "accept"
	StateReject    TaskState = "reject"
	StateDrop      TaskState = "drop"
	StateForward   TaskState = "forward"
	StateResend    TaskState = "resend"
)

// Valid возвращает true, если токен состояния известен
func (s TaskState) Valid() bool {
	switch s {
	case StateWait, StateRequested, StateAccept, StateReject, StateDrop, StateForward, StateResend:
		return true
	default:
		return false
	}
}

// Наборы состояний для staff-дашборда
var (
	// PendingStates бронирования, ожидающие действий
	PendingStates = []TaskState{StateWait, StateRequested, StateForward, StateResend}

	// AcceptedStates подтвержденные бронирования
	AcceptedStates = []TaskState{StateAccept}

	// RejectedStates отклоненные бронирования
	RejectedStates = []TaskState{StateReject, StateResend}

	// DroppedStates отмененные бронирования
	DroppedStates = []TaskState{StateDrop}
)

// Requestor участник бронирования
// Порядок значим: участник с индексом 0 - владелец, остальные ждут подтверждения
type Requestor struct {
	Username string
	Confirm  bool
}

// StaffRequested одна ступень цепочки эскалации персонала
type StaffRequested struct {
	Group   string
	Approve bool
}

// Desc свободный аудит-комментарий с меткой времени
type Desc struct {
	Msg      string
	CreateAt time.Time
}

// Task бронирование площадки
// State - append-only журнал: токены только добавляются, текущее состояние - последний
type Task struct {
	ID        int64
	VID       string // человекочитаемый код бронирования
	AreaID    int64
	Type      TaskType
	Reserve   []TimeSlot
	Requestor []Requestor
	State     []TaskState
	Staff     []StaffRequested
	Desc      *Desc
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CurrentState возвращает текущее состояние - последний токен журнала
func (t *Task) CurrentState() TaskState {
	if len(t.State) == 0 {
		return ""
	}
	return t.State[len(t.State)-1]
}

// AppendState добавляет токен в журнал состояний
func (t *Task) AppendState(state TaskState) {
	t.State = append(t.State, state)
}

// Owner возвращает имя владельца - участника с индексом 0
func (t *Task) Owner() string {
	if len(t.Requestor) == 0 {
		return ""
	}
	return t.Requestor[0].Username
}

// HasRequestor возвращает true, если username - участник бронирования
func (t *Task) HasRequestor(username string) bool {
	for _, r := range t.Requestor {
		if r.Username == username {
			return true
		}
	}
	return false
}

// ConfirmRequestor выставляет подтверждение участнику
// Возвращает false, если username не участвует в бронировании
func (t *Task) ConfirmRequestor(username string) bool {
	for i := range t.Requestor {
		if t.Requestor[i].Username == username {
			t.Requestor[i].Confirm = true
			return true
		}
	}
	return false
}

// AllConfirmed возвращает true, когда все участники подтвердили бронирование
func (t *Task) AllConfirmed() bool {
	for _, r := range t.Requestor {
		if !r.Confirm {
			return false
		}
	}
	return true
}

// CurrentStaffGroup возвращает группу последней ступени эскалации
func (t *Task) CurrentStaffGroup() (string, bool) {
	if len(t.Staff) == 0 {
		return "", false
	}
	return t.Staff[len(t.Staff)-1].Group, true
}

// AddNote добавляет аудит-комментарий
// Существующее сообщение сохраняется: новое дописывается с новой строки,
// метка времени обновляется
func (t *Task) AddNote(msg string, now time.Time) {
	if msg == "" {
		return
	}
	if t.Desc == nil {
		t.Desc = &Desc{Msg: msg, CreateAt: now}
		return
	}
	t.Desc.Msg = strings.TrimRight(t.Desc.Msg, "\n") + "\n" + msg
	t.Desc.CreateAt = now
}
