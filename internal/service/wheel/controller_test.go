package wheel

import (
	"errors"
	"food_wheel/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testDuration = 4000 * time.Millisecond

func newTestController(t *testing.T, set model.CandidateSet, rng RNG, reporter HistoryReporter) (*Controller, *fakeClock, *syncBuffer) {
	t.Helper()
	clock := newFakeClock()
	logger, buf := newTestLogger()
	ctrl := NewController("user-1", set, Options{
		FullTurns: 5,
		Duration:  testDuration,
		RNG:       rng,
		Clock:     clock,
		Reporter:  reporter,
		Logger:    logger,
	})
	return ctrl, clock, buf
}

func TestController_FullCycle(t *testing.T) {
	reporter := &mockReporter{}
	reporter.On("Record", mock.Anything, "user-1", "id-A").Return(nil).Once()

	ctrl, clock, _ := newTestController(t, candidates("A", "B"), fixedRNG{val: 0}, reporter)
	assert.Equal(t, model.SpinStateIdle, ctrl.State())

	outcome, err := ctrl.Start()
	require.NoError(t, err)
	assert.Equal(t, model.SpinStateSpinning, ctrl.State())
	assert.Equal(t, "id-A", outcome.Winner.ID)
	assert.Equal(t, 0, outcome.WinnerIndex)
	assert.InDelta(t, 2070.0, outcome.TargetAngle, 1e-9)
	assert.Equal(t, 0.0, outcome.StartAngle)

	_, revealed := ctrl.Winner()
	assert.False(t, revealed, "winner stays hidden while spinning")
	assert.Nil(t, ctrl.Snapshot().Winner)

	clock.Advance(testDuration / 2)
	assert.Equal(t, model.SpinStateSpinning, ctrl.State())
	mid := ctrl.Angle()
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 2070.0)

	clock.Advance(testDuration / 2)
	ctrl.WaitReports()

	assert.Equal(t, model.SpinStateSettled, ctrl.State())
	assert.Equal(t, 2070.0, ctrl.Angle())
	winner, ok := ctrl.Winner()
	require.True(t, ok)
	assert.Equal(t, "A", winner.Name)
	assert.Equal(t, outcome.WinnerIndex, ctrl.Snapshot().Slice, "pointer rests on the winner")

	reporter.AssertExpectations(t)
}

func TestController_ScenarioB(t *testing.T) {
	ctrl, _, _ := newTestController(t, candidates("A", "B", "C", "D"), fixedRNG{val: 2}, nil)

	outcome, err := ctrl.Start()
	require.NoError(t, err)
	assert.Equal(t, "C", outcome.Winner.Name)
	assert.InDelta(t, 1935.0, outcome.TargetAngle, 1e-9)
}

func TestController_StartWhileSpinning(t *testing.T) {
	ctrl, clock, _ := newTestController(t, candidates("A", "B", "C"), fixedRNG{val: 1}, nil)

	first, err := ctrl.Start()
	require.NoError(t, err)

	clock.Advance(time.Second)
	for range 3 {
		_, err = ctrl.Start()
		assert.ErrorIs(t, err, model.ErrAlreadySpinning)
	}

	snap := ctrl.Snapshot()
	assert.Equal(t, model.SpinStateSpinning, snap.State)
	require.NotNil(t, snap.Outcome)
	assert.Equal(t, first, *snap.Outcome, "in-flight outcome must stay untouched")
}

func TestController_InsufficientCandidates(t *testing.T) {
	rng := &countingRNG{next: fixedRNG{val: 0}}
	ctrl, _, _ := newTestController(t, candidates("A"), rng, nil)

	_, err := ctrl.Start()
	assert.ErrorIs(t, err, model.ErrInsufficientCandidates)
	assert.Equal(t, model.SpinStateIdle, ctrl.State())
	assert.Nil(t, ctrl.Snapshot().Outcome)
	assert.Zero(t, rng.calls)
}

func TestController_DuplicateCandidates(t *testing.T) {
	set := model.CandidateSet{{ID: "x", Name: "A"}, {ID: "x", Name: "B"}}
	ctrl, _, _ := newTestController(t, set, fixedRNG{val: 0}, nil)

	_, err := ctrl.Start()
	assert.ErrorIs(t, err, model.ErrDuplicateCandidate)
	assert.Equal(t, model.SpinStateIdle, ctrl.State())
}

func TestController_HistoryFailureStillSettles(t *testing.T) {
	reporter := &mockReporter{}
	reporter.On("Record", mock.Anything, "user-1", "id-B").
		Return(errors.New("connection refused")).Once()

	ctrl, clock, logs := newTestController(t, candidates("A", "B"), fixedRNG{val: 1}, reporter)

	_, err := ctrl.Start()
	require.NoError(t, err)
	clock.Advance(testDuration)
	ctrl.WaitReports()

	assert.Equal(t, model.SpinStateSettled, ctrl.State())
	winner, ok := ctrl.Winner()
	require.True(t, ok)
	assert.Equal(t, "B", winner.Name)

	assert.Contains(t, logs.String(), "history write failed")
	assert.Contains(t, logs.String(), "connection refused")
	reporter.AssertNumberOfCalls(t, "Record", 1)
}

func TestController_SecondSpinStartsFromRestingAngle(t *testing.T) {
	reporter := &mockReporter{}
	reporter.On("Record", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	set := candidates("A", "B", "C", "D")
	ctrl, clock, _ := newTestController(t, set, fixedRNG{val: 2}, reporter)

	_, err := ctrl.Start()
	require.NoError(t, err)
	clock.Advance(testDuration)
	require.Equal(t, model.SpinStateSettled, ctrl.State())

	second, err := ctrl.Start()
	require.NoError(t, err)
	assert.InDelta(t, 135.0, second.StartAngle, 1e-9)
	assert.Greater(t, second.TargetAngle, second.StartAngle)

	prev := ctrl.Angle()
	assert.InDelta(t, 135.0, prev, 1e-9)
	for range 40 {
		clock.Advance(testDuration / 40)
		a := ctrl.Angle()
		assert.GreaterOrEqual(t, a, prev, "wheel must never reverse")
		prev = a
	}
	assert.Equal(t, second.TargetAngle, ctrl.Angle())
	assert.Equal(t, second.WinnerIndex, ctrl.Snapshot().Slice)

	ctrl.WaitReports()
	reporter.AssertNumberOfCalls(t, "Record", 2)
}

func TestController_StaleSettleIgnored(t *testing.T) {
	reporter := &mockReporter{}
	reporter.On("Record", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	ctrl, clock, _ := newTestController(t, candidates("A", "B"), fixedRNG{val: 0}, reporter)

	first, err := ctrl.Start()
	require.NoError(t, err)
	clock.Advance(testDuration)
	ctrl.WaitReports()

	second, err := ctrl.Start()
	require.NoError(t, err)

	ctrl.settle(first)
	assert.Equal(t, model.SpinStateSpinning, ctrl.State())
	assert.Equal(t, second.ID, ctrl.Snapshot().Outcome.ID)
	reporter.AssertNumberOfCalls(t, "Record", 1)
}

func TestController_SetCandidates(t *testing.T) {
	ctrl, clock, _ := newTestController(t, candidates("A", "B"), fixedRNG{val: 0}, nil)

	require.NoError(t, ctrl.SetCandidates(candidates("A")), "short lists are accepted, Start rejects them")
	assert.Error(t, ctrl.SetCandidates(model.CandidateSet{{ID: "x"}, {ID: "x"}}))

	require.NoError(t, ctrl.SetCandidates(candidates("A", "B", "C")))
	_, err := ctrl.Start()
	require.NoError(t, err)

	assert.ErrorIs(t, ctrl.SetCandidates(candidates("D", "E")), model.ErrAlreadySpinning)
	assert.Len(t, ctrl.Snapshot().Candidates, 3)

	clock.Advance(testDuration)
	require.NoError(t, ctrl.SetCandidates(candidates("D", "E")))
}

func TestController_CandidatesAreCopied(t *testing.T) {
	set := candidates("A", "B")
	ctrl, _, _ := newTestController(t, set, fixedRNG{val: 0}, nil)

	set[0].Name = "changed"
	assert.Equal(t, "A", ctrl.Snapshot().Candidates[0].Name)
}

func TestController_Subscribe(t *testing.T) {
	ctrl, clock, _ := newTestController(t, candidates("A", "B"), fixedRNG{val: 1}, nil)

	ch, cancel := ctrl.Subscribe()
	defer cancel()

	_, err := ctrl.Start()
	require.NoError(t, err)
	clock.Advance(testDuration)

	spinning := <-ch
	assert.Equal(t, model.SpinStateSpinning, spinning.State)
	assert.Nil(t, spinning.Winner)

	settled := <-ch
	assert.Equal(t, model.SpinStateSettled, settled.State)
	require.NotNil(t, settled.Winner)
	assert.Equal(t, "B", settled.Winner.Name)

	cancel()
	_, open := <-ch
	assert.False(t, open)
	cancel()
}

func TestController_SpinningPublishedBeforeSettled(t *testing.T) {
	logger, _ := newTestLogger()

	for range 50 {
		ctrl := NewController("user-1", candidates("A", "B"), Options{
			FullTurns: 1,
			Duration:  time.Nanosecond,
			RNG:       fixedRNG{val: 0},
			Clock:     RealClock(),
			Logger:    logger,
		})
		ch, cancel := ctrl.Subscribe()

		_, err := ctrl.Start()
		require.NoError(t, err)
		ctrl.WaitReports()

		first := <-ch
		second := <-ch
		assert.Equal(t, model.SpinStateSpinning, first.State)
		assert.Equal(t, model.SpinStateSettled, second.State)
		cancel()
	}
}

func TestController_WaitReportsCoversInFlightSpin(t *testing.T) {
	reporter := &mockReporter{}
	reporter.On("Record", mock.Anything, "user-1", "id-A").Return(nil).Once()

	ctrl, clock, _ := newTestController(t, candidates("A", "B"), fixedRNG{val: 0}, reporter)

	_, err := ctrl.Start()
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		ctrl.WaitReports()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("WaitReports returned while the wheel was still spinning")
	case <-time.After(20 * time.Millisecond):
	}

	clock.Advance(testDuration)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("WaitReports did not return after settle")
	}
	reporter.AssertExpectations(t)
}

func TestController_SliceOfEmptyWheel(t *testing.T) {
	ctrl, _, _ := newTestController(t, nil, fixedRNG{}, nil)
	assert.Equal(t, -1, ctrl.Snapshot().Slice)
}
