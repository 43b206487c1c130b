package memory

import (
	"context"
	"sync"
	"time"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

// PanelRepo keeps panel access passwords in memory.
type PanelRepo struct {
	mu        sync.RWMutex
	passwords map[domain.PanelType]domain.PanelPassword
}

func NewPanelRepo() *PanelRepo {
	return &PanelRepo{passwords: make(map[domain.PanelType]domain.PanelPassword)}
}

func (r *PanelRepo) Get(_ context.Context, t domain.PanelType) (domain.PanelPassword, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.passwords[t]
	if !ok {
		return domain.PanelPassword{}, domain.ErrPanelPasswordNotFound()
	}
	return p, nil
}

func (r *PanelRepo) Set(_ context.Context, t domain.PanelType, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.passwords[t] = domain.PanelPassword{
		PanelType: t,
		Password:  password,
		UpdatedAt: time.Now().UTC(),
	}
	return nil
}
