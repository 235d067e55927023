package model

import (
	"time"

	"github.com/google/uuid"
)

// SpinState Состояние колеса
type SpinState string

const (
	SpinStateIdle     SpinState = "idle"
	SpinStateSpinning SpinState = "spinning"
	SpinStateSettled  SpinState = "settled"
)

// SpinOutcome - результат одного спина.
// Создается в момент старта и больше не меняется
type SpinOutcome struct {
	ID          uuid.UUID
	UserID      string
	Winner      Item
	WinnerIndex int
	StartAngle  float64 // Угол покоя перед стартом, приведенный к [0, 360)
	TargetAngle float64 // Итоговый угол: полные обороты + смещение сектора
	StartedAt   time.Time
	Duration    time.Duration
}

// WheelSnapshot Наблюдаемое состояние колеса для UI
type WheelSnapshot struct {
	State      SpinState
	Angle      float64
	Slice      int   // Индекс сектора под стрелкой, -1 если колесо пустое
	Winner     *Item // Только после остановки
	Outcome    *SpinOutcome
	Candidates []Item
}
