package boxes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("box not found")
	ErrOccupied     = errors.New("box occupied")
	ErrInactive     = errors.New("box inactive")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name        string
	Description string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Box, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Box{}, ErrInvalidInput
	}

	now := s.now()
	b := Box{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return Box{}, err
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Box, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Box{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Box, error) {
	return s.repo.List(ctx, filter)
}

// Deactivate da de baja el box (no se borra). Falla con ErrOccupied si hay un stay adentro.
func (s *Service) Deactivate(ctx context.Context, id string) (Box, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Box{}, ErrInvalidInput
	}
	if err := s.repo.Deactivate(ctx, id, s.now()); err != nil {
		return Box{}, err
	}
	return s.repo.GetByID(ctx, id)
}

// Claim toma el box para stayID (compare-and-set sobre el ocupante).
func (s *Service) Claim(ctx context.Context, boxID, stayID string) error {
	boxID = strings.TrimSpace(boxID)
	stayID = strings.TrimSpace(stayID)
	if boxID == "" || stayID == "" {
		return ErrInvalidInput
	}
	return s.repo.Claim(ctx, boxID, stayID, s.now())
}

// Release libera el box si stayID sigue siendo el ocupante. Idempotente.
func (s *Service) Release(ctx context.Context, boxID, stayID string) error {
	boxID = strings.TrimSpace(boxID)
	stayID = strings.TrimSpace(stayID)
	if boxID == "" || stayID == "" {
		return ErrInvalidInput
	}
	return s.repo.Release(ctx, boxID, stayID, s.now())
}
