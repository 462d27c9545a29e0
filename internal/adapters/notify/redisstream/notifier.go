package redisstream

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"pet-hospitalization/internal/domain/hospitalizations"
)

const DefaultStream = "hospitalization:late"

// Notifier publica items atrasados en un Redis Stream (XADD).
// Los consumidores (pantalla de enfermería, pager) leen con XREAD/XREADGROUP.
type Notifier struct {
	client *redis.Client
	stream string
	maxLen int64
}

// New: stream vacío usa DefaultStream. maxLen > 0 recorta el stream (aproximado).
func New(client *redis.Client, stream string, maxLen int64) *Notifier {
	stream = strings.TrimSpace(stream)
	if stream == "" {
		stream = DefaultStream
	}
	return &Notifier{client: client, stream: stream, maxLen: maxLen}
}

// NewFromAddr crea el cliente y verifica la conexión con PING.
func NewFromAddr(ctx context.Context, addr, password string, db int, stream string) (*Notifier, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return New(client, stream, 10_000), nil
}

type lateMessage struct {
	Kind           string    `json:"kind"`
	ItemID         string    `json:"item_id"`
	StayID         string    `json:"stay_id"`
	PrescriptionID string    `json:"prescription_id,omitempty"`
	BoxID          string    `json:"box_id,omitempty"`
	Title          string    `json:"title"`
	ScheduledAt    time.Time `json:"scheduled_at"`
	DetectedAt     time.Time `json:"detected_at"`
}

func (n *Notifier) NotifyLate(ctx context.Context, item hospitalizations.LateItem) error {
	data, err := json.Marshal(lateMessage{
		Kind:           string(item.Kind),
		ItemID:         item.ItemID,
		StayID:         item.StayID,
		PrescriptionID: item.PrescriptionID,
		BoxID:          item.BoxID,
		Title:          item.Title,
		ScheduledAt:    item.ScheduledAt.UTC(),
		DetectedAt:     item.DetectedAt.UTC(),
	})
	if err != nil {
		return err
	}

	args := &redis.XAddArgs{
		Stream: n.stream,
		Values: map[string]interface{}{
			"type":      "item.late",
			"stay_id":   item.StayID,
			"data":      string(data),
			"timestamp": item.DetectedAt.Unix(),
		},
	}
	if n.maxLen > 0 {
		args.MaxLen = n.maxLen
		args.Approx = true
	}

	if err := n.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("xadd %s: %w", n.stream, err)
	}
	return nil
}

func (n *Notifier) Close() error {
	return n.client.Close()
}
