package hospitalizations

import (
	"context"
	"sync"
	"time"

	"pet-hospitalization/internal/platform/logger"
)

// LateWatcher recorre periódicamente las internaciones activas:
// extiende el horizonte de dosis, cuenta items late y avisa una vez por item.
type LateWatcher struct {
	svc      *Service
	notifier LateNotifier // opcional
	log      logger.Logger

	mu       sync.Mutex
	notified map[string]struct{}
}

func NewLateWatcher(svc *Service, notifier LateNotifier) *LateWatcher {
	return &LateWatcher{
		svc:      svc,
		notifier: notifier,
		log:      svc.log.With(map[string]any{"component": "late-watcher"}),
		notified: make(map[string]struct{}),
	}
}

type TickResult struct {
	Stays     int
	Generated int
	Late      int
	Notified  int
}

// Run bloquea hasta que ctx se cancele. Un tick fallido no corta el loop.
func (w *LateWatcher) Run(ctx context.Context, every time.Duration) error {
	if every <= 0 {
		every = time.Minute
	}
	t := time.NewTicker(every)
	defer t.Stop()

	for {
		if _, err := w.Tick(ctx); err != nil && ctx.Err() == nil {
			w.log.Error("late watcher tick", map[string]any{"error": err.Error()})
		}
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

// Tick hace una pasada. Los errores por internación se loguean y se sigue con la próxima.
func (w *LateWatcher) Tick(ctx context.Context) (TickResult, error) {
	stays, err := w.svc.ListStays(ctx, StayFilter{Status: StayStatusActive})
	if err != nil {
		return TickResult{}, err
	}

	res := TickResult{Stays: len(stays)}
	current := make(map[string]struct{})
	var fresh []LateItem

	w.mu.Lock()
	previous := w.notified
	w.mu.Unlock()

	for _, h := range stays {
		n, err := w.svc.ExtendSchedules(ctx, h.ID)
		if err != nil {
			w.log.Warn("extend schedules", map[string]any{"stay_id": h.ID, "error": err.Error()})
		}
		res.Generated += n

		board, err := w.svc.ListForStay(ctx, h.ID, time.Time{})
		if err != nil {
			w.log.Warn("late scan", map[string]any{"stay_id": h.ID, "error": err.Error()})
			continue
		}
		for _, item := range board.LateItems() {
			key := string(item.Kind) + ":" + item.ItemID
			current[key] = struct{}{}
			if _, ok := previous[key]; !ok {
				fresh = append(fresh, item)
			}
		}
	}
	res.Late = len(current)
	w.svc.metrics.SetLateItems(res.Late)

	// items que dejaron de estar late salen del set; así no crece sin límite
	w.mu.Lock()
	w.notified = current
	w.mu.Unlock()

	for _, item := range fresh {
		if w.notifier == nil {
			break
		}
		err := w.notifier.NotifyLate(ctx, item)
		w.svc.metrics.LateNotification(err == nil)
		if err != nil {
			w.log.Warn("late notification failed", map[string]any{"item_id": item.ItemID, "stay_id": item.StayID, "error": err.Error()})
			// se reintenta en el próximo tick
			w.mu.Lock()
			delete(w.notified, string(item.Kind)+":"+item.ItemID)
			w.mu.Unlock()
			continue
		}
		res.Notified++
	}

	if len(fresh) > 0 {
		w.log.Info("late items detected", map[string]any{"new": len(fresh), "late": res.Late})
	}
	return res, nil
}
