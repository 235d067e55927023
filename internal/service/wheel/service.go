package wheel

import (
	"context"
	"fmt"
	"food_wheel/internal/config"
	"food_wheel/internal/model"
	"food_wheel/internal/repository"
	"food_wheel/internal/service"
	"log/slog"
	"sync"
	"time"
)

type serv struct {
	cfg         config.WheelConfig
	foodRepo    repository.FoodRepository
	historyRepo repository.HistoryRepository
	reporter    HistoryReporter
	rng         RNG
	clock       Clock
	logger      *slog.Logger

	mtx    sync.Mutex
	wheels map[string]*Controller
}

// ServiceOption Настройка сервиса колеса (подмена часов и генератора в тестах)
type ServiceOption func(*serv)

func WithClock(clock Clock) ServiceOption {
	return func(s *serv) { s.clock = clock }
}

func WithRNG(rng RNG) ServiceOption {
	return func(s *serv) { s.rng = rng }
}

// NewWheelService Сервис колес: одно колесо на пользователя
func NewWheelService(
	cfg config.WheelConfig,
	foodRepo repository.FoodRepository,
	historyRepo repository.HistoryRepository,
	logger *slog.Logger,
	opts ...ServiceOption,
) service.WheelService {
	s := &serv{
		cfg:         cfg,
		foodRepo:    foodRepo,
		historyRepo: historyRepo,
		reporter:    NewHistoryReporter(historyRepo),
		clock:       RealClock(),
		logger:      logger,
		wheels:      make(map[string]*Controller),
	}
	if cfg.RNG() == config.RNGCrypto {
		s.rng = CryptoRNG{}
	} else {
		s.rng = MathRNG{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Spin Перечитывает список еды и запускает колесо пользователя
func (s *serv) Spin(ctx context.Context, userID string) (*model.SpinOutcome, error) {
	ctrl, created, err := s.wheel(ctx, userID)
	if err != nil {
		return nil, err
	}

	if ctrl.State() == model.SpinStateSpinning {
		return nil, model.ErrAlreadySpinning
	}
	// Только что созданное колесо уже собрано из свежего списка
	if !created {
		if err := s.refresh(ctx, ctrl, userID); err != nil {
			return nil, err
		}
	}

	outcome, err := ctrl.Start()
	if err != nil {
		return nil, err
	}
	return &outcome, nil
}

func (s *serv) State(ctx context.Context, userID string) (*model.WheelSnapshot, error) {
	ctrl, _, err := s.wheel(ctx, userID)
	if err != nil {
		return nil, err
	}
	snap := ctrl.Snapshot()
	return &snap, nil
}

// Reload Перечитывает кандидатов из хранилища. Во время вращения - model.ErrAlreadySpinning
func (s *serv) Reload(ctx context.Context, userID string) (*model.WheelSnapshot, error) {
	ctrl, created, err := s.wheel(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !created {
		if err := s.refresh(ctx, ctrl, userID); err != nil {
			return nil, err
		}
	}
	snap := ctrl.Snapshot()
	return &snap, nil
}

func (s *serv) Subscribe(ctx context.Context, userID string) (<-chan model.WheelSnapshot, func(), error) {
	ctrl, _, err := s.wheel(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	ch, cancel := ctrl.Subscribe()
	return ch, cancel, nil
}

func (s *serv) History(ctx context.Context, userID string) ([]model.HistoryRecord, error) {
	records, err := s.historyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return records, nil
}

// FrameInterval Интервал между кадрами стрима
func (s *serv) FrameInterval() time.Duration {
	return time.Second / time.Duration(s.cfg.FrameRate())
}

// Shutdown ждет остановки начатых спинов и записи их истории или отмены ctx
func (s *serv) Shutdown(ctx context.Context) error {
	s.mtx.Lock()
	wheels := make([]*Controller, 0, len(s.wheels))
	for _, w := range s.wheels {
		wheels = append(wheels, w)
	}
	s.mtx.Unlock()

	done := make(chan struct{})
	go func() {
		for _, w := range wheels {
			w.WaitReports()
		}
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// wheel Возвращает колесо пользователя, при первом обращении создает его из списка еды.
// created - колесо собрано в этом вызове
func (s *serv) wheel(ctx context.Context, userID string) (*Controller, bool, error) {
	if userID == "" {
		return nil, false, fmt.Errorf("%w: empty user id", model.ErrUnauthorized)
	}

	s.mtx.Lock()
	ctrl, ok := s.wheels[userID]
	s.mtx.Unlock()
	if ok {
		return ctrl, false, nil
	}

	foods, err := s.foodRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, false, fmt.Errorf("list foods: %w", err)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()
	// Пока читали список, колесо мог создать параллельный запрос
	if ctrl, ok := s.wheels[userID]; ok {
		return ctrl, false, nil
	}
	ctrl = NewController(userID, model.FoodsToCandidates(foods), Options{
		FullTurns: s.cfg.FullTurns(),
		Duration:  s.cfg.SpinDuration(),
		RNG:       s.rng,
		Clock:     s.clock,
		Reporter:  s.reporter,
		Logger:    s.logger,
	})
	s.wheels[userID] = ctrl
	return ctrl, true, nil
}

func (s *serv) refresh(ctx context.Context, ctrl *Controller, userID string) error {
	foods, err := s.foodRepo.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("list foods: %w", err)
	}
	return ctrl.SetCandidates(model.FoodsToCandidates(foods))
}
