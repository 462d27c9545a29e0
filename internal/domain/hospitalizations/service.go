package hospitalizations

import (
	"context"
	"errors"
	"time"

	"pet-hospitalization/internal/domain/boxes"
	"pet-hospitalization/internal/platform/keylock"
	"pet-hospitalization/internal/platform/logger"
	"pet-hospitalization/internal/platform/metrics"
)

const (
	DefaultHorizon   = 7 * 24 * time.Hour
	DefaultLateGrace = 30 * time.Minute
)

type Options struct {
	Boxes     BoxClaimer // requerido
	Directory Directory  // opcional
	Logger    logger.Logger
	Metrics   *metrics.Metrics

	// Horizon: hasta dónde se materializan dosis de prescripciones sin fecha de fin.
	Horizon time.Duration
	// LateGrace: tolerancia antes de marcar un item como late.
	LateGrace time.Duration
}

// Service coordina el ciclo de vida de la internación, las prescripciones,
// la generación de dosis y el seguimiento de administraciones y checklist.
// Todas las mutaciones de una internación se serializan por stay id.
type Service struct {
	stays           StayRepository
	prescriptions   PrescriptionRepository
	administrations AdministrationRepository
	checklist       ChecklistRepository

	boxes     BoxClaimer
	directory Directory

	locks   *keylock.Locker
	log     logger.Logger
	metrics *metrics.Metrics

	horizon time.Duration
	grace   time.Duration
	now     func() time.Time
}

func NewService(repos Repositories, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	horizon := opts.Horizon
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	grace := opts.LateGrace
	if grace <= 0 {
		grace = DefaultLateGrace
	}

	return &Service{
		stays:           repos.Stays,
		prescriptions:   repos.Prescriptions,
		administrations: repos.Administrations,
		checklist:       repos.Checklist,
		boxes:           opts.Boxes,
		directory:       opts.Directory,
		locks:           keylock.New(),
		log:             log.With(map[string]any{"component": "hospitalizations"}),
		metrics:         opts.Metrics,
		horizon:         horizon,
		grace:           grace,
		now:             time.Now,
	}
}

func (s *Service) LateGrace() time.Duration { return s.grace }

func (s *Service) Horizon() time.Duration { return s.horizon }

// claimBox traduce errores del registro de boxes a la taxonomía del dominio.
func (s *Service) claimBox(ctx context.Context, boxID, stayID string) error {
	if s.boxes == nil {
		return &StorageError{Op: "claim box", Err: errors.New("box registry not configured")}
	}
	err := s.boxes.Claim(ctx, boxID, stayID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, boxes.ErrOccupied):
		return &ConflictError{Resource: "box", ID: boxID, Reason: "occupied by another stay"}
	case errors.Is(err, boxes.ErrInactive):
		return &ConflictError{Resource: "box", ID: boxID, Reason: "box is inactive"}
	case errors.Is(err, boxes.ErrNotFound):
		return invalid("box_id", "unknown box")
	case errors.Is(err, boxes.ErrInvalidInput):
		return invalid("box_id", "required")
	default:
		return &StorageError{Op: "claim box", Err: err}
	}
}

func (s *Service) releaseBox(ctx context.Context, boxID, stayID string) error {
	if boxID == "" || s.boxes == nil {
		return nil
	}
	if err := s.boxes.Release(ctx, boxID, stayID); err != nil {
		return &StorageError{Op: "release box", Err: err}
	}
	return nil
}

func (s *Service) checkPet(ctx context.Context, petID, clientID string) error {
	if s.directory == nil {
		return nil
	}
	err := s.directory.CheckPet(ctx, petID, clientID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUnknownReference):
		return invalid("pet_id", "unknown pet for client")
	default:
		return &StorageError{Op: "lookup pet", Err: err}
	}
}

func (s *Service) checkStaff(ctx context.Context, field, staffID string) error {
	if s.directory == nil || staffID == "" || staffID == SystemActor {
		return nil
	}
	err := s.directory.CheckStaff(ctx, staffID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUnknownReference):
		return invalid(field, "unknown staff member")
	default:
		return &StorageError{Op: "lookup staff", Err: err}
	}
}
