package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/cats"
)

var (
	ErrNotFound = errors.New("not found")
)

type catRepo struct {
	mu       sync.RWMutex
	byID     map[string]cats.CatProfile
	routines map[string]cats.CareRoutine
}

func NewCatRepo() cats.Repository {
	return &catRepo{
		byID:     make(map[string]cats.CatProfile),
		routines: make(map[string]cats.CareRoutine),
	}
}

func (r *catRepo) Create(ctx context.Context, c cats.CatProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("cat id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("cat already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *catRepo) Update(ctx context.Context, c cats.CatProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("cat id required")
	}
	if _, exists := r.byID[c.ID]; !exists {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *catRepo) GetByID(ctx context.Context, id string) (cats.CatProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return cats.CatProfile{}, ErrNotFound
	}
	return c, nil
}

func (r *catRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]cats.CatProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]cats.CatProfile, 0)
	for _, c := range r.byID {
		if c.OwnerUserID == ownerUserID {
			out = append(out, c)
		}
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *catRepo) SaveRoutine(ctx context.Context, catID string, routine cats.CareRoutine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[catID]; !exists {
		return ErrNotFound
	}
	r.routines[catID] = routine
	return nil
}

func (r *catRepo) GetRoutine(ctx context.Context, catID string) (cats.CareRoutine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	routine, ok := r.routines[catID]
	if !ok {
		return cats.CareRoutine{}, ErrNotFound
	}
	return routine, nil
}
