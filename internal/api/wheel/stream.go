package wheel

import (
	"context"
	"errors"
	"food_wheel/internal/api"
	"food_wheel/internal/converter"
	"food_wheel/internal/model"
	"net/http"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const writeTimeout = 5 * time.Second

// Stream websocket с кадрами колеса: кадр на каждый переход состояния
// и кадры с частотой FrameInterval, пока колесо крутится
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.RequireUser(w, r)
	if !ok {
		return
	}

	// Подписываемся до апгрейда: ошибка хранилища еще уходит обычным ответом
	updates, cancel, err := h.serv.Subscribe(r.Context(), userID)
	if err != nil {
		api.WriteServiceError(w, r, h.logger, err)
		return
	}
	defer cancel()

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.logger.WarnContext(r.Context(), "websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	// Клиент ничего не шлет, CloseRead отменит ctx при закрытии соединения
	ctx := conn.CloseRead(r.Context())

	err = h.stream(ctx, conn, userID, updates)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		conn.Close(websocket.StatusNormalClosure, "")
	case websocket.CloseStatus(err) != -1:
	default:
		h.logger.WarnContext(r.Context(), "wheel stream stopped", "user_id", userID, "error", err)
		conn.Close(websocket.StatusInternalError, "stream failed")
	}
}

func (h *Handler) stream(ctx context.Context, conn *websocket.Conn, userID string, updates <-chan model.WheelSnapshot) error {
	snap, err := h.serv.State(ctx, userID)
	if err != nil {
		return err
	}
	if err := writeFrame(ctx, conn, *snap); err != nil {
		return err
	}
	spinning := snap.State == model.SpinStateSpinning

	ticker := time.NewTicker(h.serv.FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if err := writeFrame(ctx, conn, update); err != nil {
				return err
			}
			spinning = update.State == model.SpinStateSpinning

		case <-ticker.C:
			if !spinning {
				continue
			}
			snap, err := h.serv.State(ctx, userID)
			if err != nil {
				return err
			}
			// Переход в Settled придет отдельным кадром из updates
			if snap.State != model.SpinStateSpinning {
				continue
			}
			if err := writeFrame(ctx, conn, *snap); err != nil {
				return err
			}
		}
	}
}

func writeFrame(ctx context.Context, conn *websocket.Conn, snap model.WheelSnapshot) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, converter.ToFrame(snap))
}
