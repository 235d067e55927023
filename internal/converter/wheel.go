package converter

import (
	"food_wheel/internal/api/dto/wheel"
	"food_wheel/internal/model"
)

func ToItem(item model.Item) wheel.Item {
	return wheel.Item{
		ID:   item.ID,
		Name: item.Name,
	}
}

// ToSpinResponse Победитель попадает в ответ только при reveal
func ToSpinResponse(outcome model.SpinOutcome, reveal bool) wheel.SpinResponse {
	out := wheel.SpinResponse{
		SpinID:      outcome.ID.String(),
		StartAngle:  outcome.StartAngle,
		TargetAngle: outcome.TargetAngle,
		StartedAt:   outcome.StartedAt,
		DurationMS:  outcome.Duration.Milliseconds(),
	}
	if reveal {
		winner := ToItem(outcome.Winner)
		out.Winner = &winner
	}
	return out
}

func ToSnapshotResponse(snap model.WheelSnapshot) wheel.SnapshotResponse {
	out := wheel.SnapshotResponse{
		State:      string(snap.State),
		Angle:      snap.Angle,
		Slice:      snap.Slice,
		Candidates: make([]wheel.Item, len(snap.Candidates)),
	}
	for i, c := range snap.Candidates {
		out.Candidates[i] = ToItem(c)
	}
	if snap.Winner != nil {
		winner := ToItem(*snap.Winner)
		out.Winner = &winner
	}
	if snap.Outcome != nil {
		spin := ToSpinResponse(*snap.Outcome, snap.State == model.SpinStateSettled)
		out.Spin = &spin
	}
	return out
}

func ToFrame(snap model.WheelSnapshot) wheel.Frame {
	out := wheel.Frame{
		State: string(snap.State),
		Angle: snap.Angle,
		Slice: snap.Slice,
	}
	if snap.Outcome != nil {
		out.SpinID = snap.Outcome.ID.String()
	}
	if snap.Winner != nil {
		winner := ToItem(*snap.Winner)
		out.Winner = &winner
	}
	return out
}
