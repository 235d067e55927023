package wheel

import (
	"fmt"
	"food_wheel/internal/model"
	"math"
)

const fullCircle = 360.0

// SliceAngle Ширина одного сектора в градусах
func SliceAngle(count int) float64 {
	return fullCircle / float64(count)
}

// TargetAngle Итоговый угол поворота колеса по часовой стрелке,
// при котором центр сектора winningIndex оказывается под стрелкой (угол 0).
// Результат = fullTurns*360 + (360 - центр сектора) mod 360
func TargetAngle(count, winningIndex, fullTurns int) (float64, error) {
	if count < model.MinCandidates {
		return 0, fmt.Errorf("%w: count %d", model.ErrInvalidGeometry, count)
	}
	if winningIndex < 0 || winningIndex >= count {
		return 0, fmt.Errorf("%w: index %d outside [0, %d)", model.ErrInvalidGeometry, winningIndex, count)
	}
	if fullTurns < 0 {
		return 0, fmt.Errorf("%w: negative full turns %d", model.ErrInvalidGeometry, fullTurns)
	}

	slice := SliceAngle(count)
	center := float64(winningIndex)*slice + slice/2
	offset := NormalizeAngle(fullCircle - center)

	return float64(fullTurns)*fullCircle + offset, nil
}

// SliceAt Возвращает индекс сектора под стрелкой при повороте колеса на angle
func SliceAt(count int, angle float64) int {
	if count <= 0 {
		return -1
	}
	local := NormalizeAngle(-angle)
	idx := int(math.Floor(local / SliceAngle(count)))
	if idx >= count {
		idx = count - 1
	}
	return idx
}

// NormalizeAngle приводит угол к [0, 360)
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, fullCircle)
	if a < 0 {
		a += fullCircle
	}
	if a >= fullCircle {
		a = 0
	}
	return a
}
