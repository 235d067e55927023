package wheel

import "time"

// Clock - источник времени для анимации, подменяется в тестах
type Clock interface {
	Now() time.Time
	// AfterFunc вызывает f в отдельной горутине через d
	AfterFunc(d time.Duration, f func()) Timer
}

type Timer interface {
	Stop() bool
}

type realClock struct{}

// RealClock Clock на основе пакета time
func RealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
