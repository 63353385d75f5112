package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/cpr_dispatch/internal/models"
)

// MemoryRequestRepository хранит реестр в памяти процесса.
// Все изменения идут под одной блокировкой, наружу отдаются только копии.
type MemoryRequestRepository struct {
	mu       sync.RWMutex
	requests []*models.EmergencyRequest
	index    map[string]int
	now      func() time.Time
}

func NewMemoryRequestRepository() *MemoryRequestRepository {
	return &MemoryRequestRepository{
		index: make(map[string]int),
		now:   time.Now,
	}
}

// List возвращает копии запросов в порядке добавления
func (r *MemoryRequestRepository) List(_ context.Context) ([]*models.EmergencyRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reqs := make([]*models.EmergencyRequest, 0, len(r.requests))
	for _, req := range r.requests {
		reqs = append(reqs, req.Clone())
	}
	return reqs, nil
}

// GetByID возвращает копию запроса
func (r *MemoryRequestRepository) GetByID(_ context.Context, id string) (*models.EmergencyRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("request with id %s: %w", id, models.ErrNotFound)
	}
	return r.requests[i].Clone(), nil
}

// Create добавляет запрос в конец реестра
func (r *MemoryRequestRepository) Create(_ context.Context, req *models.EmergencyRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[req.ID]; exists {
		return fmt.Errorf("request with id %s already exists", req.ID)
	}

	createdAt := r.now()
	if n := len(r.requests); n > 0 && createdAt.Before(r.requests[n-1].CreatedAt) {
		createdAt = r.requests[n-1].CreatedAt
	}
	req.CreatedAt = createdAt
	req.UpdatedAt = createdAt

	r.append(req.Clone())
	return nil
}

// Accept атомарно добавляет ETA к запросу
func (r *MemoryRequestRepository) Accept(_ context.Context, id string, etaMinutes int) (*models.EmergencyRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("request with id %s not found for accept: %w", id, models.ErrNotFound)
	}
	r.requests[i].Accept(etaMinutes, r.now())
	return r.requests[i].Clone(), nil
}

// Seed добавляет начальные запросы, пропуская уже существующие id.
// Метки времени берутся из seed, порядок добавления сохраняется.
func (r *MemoryRequestRepository) Seed(_ context.Context, reqs []*models.EmergencyRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, req := range reqs {
		if _, exists := r.index[req.ID]; exists {
			continue
		}
		r.append(req.Clone())
	}
	return nil
}

func (r *MemoryRequestRepository) append(req *models.EmergencyRequest) {
	if req.AcceptedETAs == nil {
		req.AcceptedETAs = []string{}
	}
	r.index[req.ID] = len(r.requests)
	r.requests = append(r.requests, req)
}
