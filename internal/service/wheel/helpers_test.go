package wheel

import (
	"bytes"
	"context"
	"food_wheel/internal/model"
	"log/slog"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

// fakeClock срабатывает только по Advance, в горутине теста
type fakeClock struct {
	mtx    sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped && !t.fired
	t.stopped = true
	return wasActive
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	t := &fakeTimer{at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mtx.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.at.After(c.now) {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mtx.Unlock()

	for _, t := range due {
		t.f()
	}
}

// fixedRNG всегда возвращает один и тот же индекс
type fixedRNG struct{ val int }

func (r fixedRNG) IntN(n int) int { return r.val % n }

// countingRNG считает вызовы
type countingRNG struct {
	calls int
	next  RNG
}

func (r *countingRNG) IntN(n int) int {
	r.calls++
	return r.next.IntN(n)
}

type mockReporter struct {
	mock.Mock
}

func (m *mockReporter) Record(ctx context.Context, userID, foodID string) error {
	args := m.Called(ctx, userID, foodID)
	return args.Error(0)
}

// syncBuffer - буфер для логов, в который пишут из фоновых горутин
type syncBuffer struct {
	mtx sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return b.buf.String()
}

func newTestLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func candidates(names ...string) model.CandidateSet {
	out := make(model.CandidateSet, len(names))
	for i, n := range names {
		out[i] = model.Item{ID: "id-" + n, Name: n}
	}
	return out
}

type fakeFoodRepo struct {
	mtx   sync.Mutex
	foods map[string][]model.Food
	err   error
	calls int
}

func (r *fakeFoodRepo) ListByUser(_ context.Context, userID string) ([]model.Food, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return append([]model.Food(nil), r.foods[userID]...), nil
}

func (r *fakeFoodRepo) Create(_ context.Context, food *model.Food) (string, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.foods[food.UserID] = append(r.foods[food.UserID], *food)
	return food.ID, nil
}

func (r *fakeFoodRepo) Delete(_ context.Context, id string) error {
	return nil
}

type fakeHistoryRepo struct {
	mtx     sync.Mutex
	records []model.HistoryRecord
	err     error
}

func (r *fakeHistoryRepo) Append(_ context.Context, userID, foodID string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, model.HistoryRecord{UserID: userID, FoodID: foodID})
	return nil
}

func (r *fakeHistoryRepo) ListByUser(_ context.Context, userID string) ([]model.HistoryRecord, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	var out []model.HistoryRecord
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}
