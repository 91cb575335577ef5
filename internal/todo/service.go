package todo

import (
	"context"

	"github.com/google/uuid"
)

// CreateInput carries the fields for a new task.
type CreateInput struct {
	Title       string
	Description string
}

// UpdateInput carries optional fields for a partial update. Nil fields are
// left unchanged.
type UpdateInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// Service handles task business logic, always scoped to one owner.
type Service struct {
	repo Repository
}

// NewService builds Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new task for the owner.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, input CreateInput) (*Task, error) {
	task := &Task{
		Title:       input.Title,
		Description: input.Description,
		UserID:      ownerID,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// List returns the owner's tasks, newest first.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]Task, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Get returns one task owned by the caller.
func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Task, error) {
	return s.repo.FindByOwner(ctx, ownerID, id)
}

// Update applies a partial update to one task owned by the caller. A single
// read-then-write; no transaction spans records.
func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateInput) (*Task, error) {
	task, err := s.repo.FindByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes one task owned by the caller.
func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.Delete(ctx, ownerID, id)
}
