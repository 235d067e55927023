package model

import "time"

// HistoryRecord - запись истории спинов, хранится во внешнем хранилище
type HistoryRecord struct {
	ID         string
	UserID     string
	FoodID     string
	RecordedAt time.Time
}
