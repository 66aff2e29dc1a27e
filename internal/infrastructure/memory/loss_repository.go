package memory

import (
	"strings"

	"github.com/jhoicas/Estacion-api/internal/domain/entity"
	"github.com/jhoicas/Estacion-api/internal/domain/repository"
)

var _ repository.LossRepository = (*LossRepo)(nil)

// LossRepo implementación en memoria de LossRepository.
// Solo append: no existe mutador de estado para pérdidas.
type LossRepo struct {
	store *Store
}

// NewLossRepository construye el adaptador sobre el Store compartido.
func NewLossRepository(store *Store) *LossRepo {
	return &LossRepo{store: store}
}

// Create agrega una pérdida.
func (r *LossRepo) Create(record *entity.LossRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c := *record
	r.store.losses = append(r.store.losses, &c)
	return nil
}

// GetByID busca por id. Devuelve (nil, nil) si no existe.
func (r *LossRepo) GetByID(id string) (*entity.LossRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, l := range r.store.losses {
		if l.ID == id {
			c := *l
			return &c, nil
		}
	}
	return nil, nil
}

// ListByMonth devuelve las pérdidas cuyo Date empieza por month (YYYY-MM).
func (r *LossRepo) ListByMonth(month string) ([]*entity.LossRecord, error) {
	return r.filter(func(l *entity.LossRecord) bool { return strings.HasPrefix(l.Date, month) })
}

// List devuelve todas las pérdidas.
func (r *LossRepo) List() ([]*entity.LossRecord, error) {
	return r.filter(func(*entity.LossRecord) bool { return true })
}

func (r *LossRepo) filter(keep func(*entity.LossRecord) bool) ([]*entity.LossRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.LossRecord, 0)
	for _, l := range r.store.losses {
		if keep(l) {
			c := *l
			out = append(out, &c)
		}
	}
	return out, nil
}
