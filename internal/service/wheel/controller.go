package wheel

import (
	"context"
	"food_wheel/internal/model"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const subscriberBuffer = 8

// Options Параметры контроллера колеса
type Options struct {
	FullTurns int
	Duration  time.Duration
	RNG       RNG
	Clock     Clock
	Reporter  HistoryReporter // nil - история не пишется
	Logger    *slog.Logger
}

// Controller владеет состоянием одного колеса: Idle -> Spinning -> Settled.
// Победитель выбирается при старте, раскрывается после остановки
type Controller struct {
	userID    string
	fullTurns int
	duration  time.Duration
	rng       RNG
	clock     Clock
	reporter  HistoryReporter
	logger    *slog.Logger

	mtx        sync.Mutex
	candidates model.CandidateSet
	state      model.SpinState
	restAngle  float64
	outcome    *model.SpinOutcome

	subs      map[int]chan model.WheelSnapshot
	nextSubID int

	reports sync.WaitGroup
}

func NewController(userID string, candidates model.CandidateSet, opts Options) *Controller {
	if opts.RNG == nil {
		opts.RNG = MathRNG{}
	}
	if opts.Clock == nil {
		opts.Clock = RealClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Controller{
		userID:     userID,
		fullTurns:  opts.FullTurns,
		duration:   opts.Duration,
		rng:        opts.RNG,
		clock:      opts.Clock,
		reporter:   opts.Reporter,
		logger:     opts.Logger.With("user_id", userID),
		candidates: candidates.Clone(),
		state:      model.SpinStateIdle,
		subs:       make(map[int]chan model.WheelSnapshot),
	}
}

// Start запускает спин. Возвращает model.ErrAlreadySpinning во время вращения
// и model.ErrInsufficientCandidates, если кандидатов меньше двух.
// Управление возвращается сразу, остановка приходит через Clock.AfterFunc
func (c *Controller) Start() (model.SpinOutcome, error) {
	c.mtx.Lock()

	if c.state == model.SpinStateSpinning {
		c.mtx.Unlock()
		return model.SpinOutcome{}, model.ErrAlreadySpinning
	}

	if err := c.candidates.Validate(); err != nil {
		c.mtx.Unlock()
		return model.SpinOutcome{}, err
	}

	winner, idx, err := Select(c.candidates, c.rng)
	if err != nil {
		c.mtx.Unlock()
		return model.SpinOutcome{}, err
	}

	target, err := TargetAngle(len(c.candidates), idx, c.fullTurns)
	if err != nil {
		c.mtx.Unlock()
		return model.SpinOutcome{}, err
	}

	// Стартуем с угла покоя по модулю 360: цель всегда больше, колесо не крутится назад
	outcome := model.SpinOutcome{
		ID:          uuid.New(),
		UserID:      c.userID,
		Winner:      winner,
		WinnerIndex: idx,
		StartAngle:  NormalizeAngle(c.restAngle),
		TargetAngle: target,
		StartedAt:   c.clock.Now(),
		Duration:    c.duration,
	}
	c.outcome = &outcome
	c.state = model.SpinStateSpinning
	// Спин учитывается в reports с момента старта: WaitReports ждет и незавершенные анимации
	c.reports.Add(1)
	snap := c.snapshotLocked()
	c.mtx.Unlock()

	c.logger.Debug("spin started",
		"spin_id", outcome.ID,
		"candidates", len(snap.Candidates),
		"target_angle", outcome.TargetAngle,
	)
	// Кадр Spinning уходит подписчикам до запуска таймера, иначе Settled может его обогнать
	c.publish(snap)

	c.clock.AfterFunc(c.duration, func() { c.finish(outcome) })

	return outcome, nil
}

// finish Срабатывание таймера спина. Снимает отметку из reports ровно один раз
func (c *Controller) finish(outcome model.SpinOutcome) {
	if !c.settle(outcome) {
		c.reports.Done()
		return
	}
	c.report(outcome)
}

// settle Завершение анимации. Срабатывания от старых спинов игнорируются
func (c *Controller) settle(outcome model.SpinOutcome) bool {
	c.mtx.Lock()
	if c.state != model.SpinStateSpinning || c.outcome == nil || c.outcome.ID != outcome.ID {
		c.mtx.Unlock()
		return false
	}
	c.state = model.SpinStateSettled
	c.restAngle = outcome.TargetAngle
	snap := c.snapshotLocked()
	c.mtx.Unlock()

	c.logger.Info("spin settled",
		"spin_id", outcome.ID,
		"food_id", outcome.Winner.ID,
		"food", outcome.Winner.Name,
	)
	c.publish(snap)
	return true
}

// report Пишет историю в фоне один раз. Ошибку только логируем.
// Отметку спина в reports снимает по завершении записи
func (c *Controller) report(outcome model.SpinOutcome) {
	if c.reporter == nil {
		c.reports.Done()
		return
	}

	go func() {
		defer c.reports.Done()

		err := c.reporter.Record(context.Background(), outcome.UserID, outcome.Winner.ID)
		if err != nil {
			c.logger.Error("history write failed",
				"spin_id", outcome.ID,
				"food_id", outcome.Winner.ID,
				"error", err,
			)
			return
		}
		c.logger.Debug("history recorded", "spin_id", outcome.ID)
	}()
}

// WaitReports ждет остановки начатых спинов и их записей истории
func (c *Controller) WaitReports() {
	c.reports.Wait()
}

// SetCandidates Заменяет набор кандидатов. Во время вращения запрещено
func (c *Controller) SetCandidates(candidates model.CandidateSet) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.state == model.SpinStateSpinning {
		return model.ErrAlreadySpinning
	}
	// Меньше двух допустимо: Start вернет ошибку
	if len(candidates) >= model.MinCandidates {
		if err := candidates.Validate(); err != nil {
			return err
		}
	}

	c.candidates = candidates.Clone()
	return nil
}

func (c *Controller) State() model.SpinState {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.state
}

// Angle Текущий угол колеса для отрисовки
func (c *Controller) Angle() float64 {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.angleLocked()
}

// Winner Победитель, только когда колесо остановилось
func (c *Controller) Winner() (model.Item, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if c.state != model.SpinStateSettled || c.outcome == nil {
		return model.Item{}, false
	}
	return c.outcome.Winner, true
}

func (c *Controller) Snapshot() model.WheelSnapshot {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.snapshotLocked()
}

// Subscribe Канал получает снимок на каждом переходе состояния.
// Медленный подписчик пропускает снимки. cancel закрывает канал
func (c *Controller) Subscribe() (<-chan model.WheelSnapshot, func()) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	id := c.nextSubID
	c.nextSubID++
	ch := make(chan model.WheelSnapshot, subscriberBuffer)
	c.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mtx.Lock()
			defer c.mtx.Unlock()
			delete(c.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (c *Controller) publish(snap model.WheelSnapshot) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	for _, ch := range c.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}

func (c *Controller) angleLocked() float64 {
	if c.state != model.SpinStateSpinning || c.outcome == nil {
		return c.restAngle
	}
	elapsed := c.clock.Now().Sub(c.outcome.StartedAt)
	if c.outcome.Duration <= 0 || elapsed >= c.outcome.Duration {
		return c.outcome.TargetAngle
	}
	progress := float64(elapsed) / float64(c.outcome.Duration)
	return AngleAt(c.outcome.StartAngle, c.outcome.TargetAngle, progress)
}

func (c *Controller) snapshotLocked() model.WheelSnapshot {
	angle := c.angleLocked()
	snap := model.WheelSnapshot{
		State:      c.state,
		Angle:      angle,
		Slice:      SliceAt(len(c.candidates), angle),
		Candidates: c.candidates.Clone(),
	}
	if c.outcome != nil {
		outcome := *c.outcome
		snap.Outcome = &outcome
		if c.state == model.SpinStateSettled {
			winner := outcome.Winner
			snap.Winner = &winner
		}
	}
	return snap
}
