package wheel

import "time"

type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SpinResponse Метаданные спина. Winner пустой, пока колесо крутится
type SpinResponse struct {
	SpinID      string    `json:"spin_id"`
	StartAngle  float64   `json:"start_angle"`  // Угол, с которого стартует анимация
	TargetAngle float64   `json:"target_angle"` // Угол остановки
	StartedAt   time.Time `json:"started_at"`
	DurationMS  int64     `json:"duration_ms"`
	Winner      *Item     `json:"winner,omitempty"`
}

type SnapshotResponse struct {
	State      string        `json:"state"` // idle | spinning | settled
	Angle      float64       `json:"angle"`
	Slice      int           `json:"slice"` // Сектор под стрелкой, -1 для пустого колеса
	Winner     *Item         `json:"winner,omitempty"`
	Spin       *SpinResponse `json:"spin,omitempty"`
	Candidates []Item        `json:"candidates"`
}

// Frame Кадр стрима колеса
type Frame struct {
	State  string  `json:"state"`
	Angle  float64 `json:"angle"`
	Slice  int     `json:"slice"` // Сектор под стрелкой
	SpinID string  `json:"spin_id,omitempty"`
	Winner *Item   `json:"winner,omitempty"`
}
