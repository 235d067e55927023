package wheel

// EaseOutCubic 1-(1-p)^3: монотонно растет и замедляется к концу
func EaseOutCubic(p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	}
	inv := 1 - p
	return 1 - inv*inv*inv
}

// AngleAt Угол колеса на доле progress анимации от start до target
func AngleAt(start, target, progress float64) float64 {
	if progress >= 1 {
		return target
	}
	return start + (target-start)*EaseOutCubic(progress)
}
