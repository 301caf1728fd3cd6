// Package memory implementa los puertos de persistencia en memoria.
// Se usa con STORAGE=memory (demo local) y en tests de casos de uso y handlers.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/jhoicas/fishstock-api/internal/application/usecase"
	"github.com/jhoicas/fishstock-api/internal/domain"
	"github.com/jhoicas/fishstock-api/internal/domain/entity"
	"github.com/jhoicas/fishstock-api/internal/domain/repository"
)

var (
	_ repository.StockPurchaseRepository = (*PurchaseRepo)(nil)
	_ repository.StockLeftRepository     = (*StockLeftRepo)(nil)
	_ repository.UserRepository          = (*UserRepo)(nil)
	_ usecase.TxRunner                   = (*Store)(nil)
)

type state struct {
	purchases []*entity.StockPurchase // orden de inserción
	stockLeft []*entity.StockLeftEntry
	users     []*entity.User
}

func (s state) clone() state {
	return state{
		purchases: append([]*entity.StockPurchase(nil), s.purchases...),
		stockLeft: append([]*entity.StockLeftEntry(nil), s.stockLeft...),
		users:     append([]*entity.User(nil), s.users...),
	}
}

// Store datos en memoria compartidos por los repositorios.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	data state
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{}
}

// Purchases repositorio de compras sobre el store.
func (s *Store) Purchases() *PurchaseRepo { return &PurchaseRepo{s: s} }

// StockLeft repositorio de cierres sobre el store.
func (s *Store) StockLeft() *StockLeftRepo { return &StockLeftRepo{s: s} }

// Users repositorio de usuarios sobre el store.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Run ejecuta fn de forma serializada entre transacciones; si fn falla se restaura el estado previo.
// Escrituras fuera de Run concurrentes con un rollback se pierden.
func (s *Store) Run(_ context.Context, fn func(
	purchases repository.StockPurchaseRepository,
	stockLeft repository.StockLeftRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	saved := s.data.clone()
	s.mu.RUnlock()

	if err := fn(s.Purchases(), s.StockLeft()); err != nil {
		s.mu.Lock()
		s.data = saved
		s.mu.Unlock()
		return err
	}
	return nil
}

// PurchaseRepo compras en memoria.
type PurchaseRepo struct{ s *Store }

func copyPurchase(p *entity.StockPurchase) *entity.StockPurchase {
	c := *p
	return &c
}

func (r *PurchaseRepo) Create(_ context.Context, p *entity.StockPurchase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.data.purchases {
		if x.ID() == p.ID() {
			return domain.ErrDuplicate
		}
	}
	r.s.data.purchases = append(r.s.data.purchases, copyPurchase(p))
	return nil
}

func (r *PurchaseRepo) GetByID(_ context.Context, id string) (*entity.StockPurchase, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, x := range r.s.data.purchases {
		if x.ID() == id {
			return copyPurchase(x), nil
		}
	}
	return nil, nil
}

// List más recientes primero (orden inverso de inserción).
func (r *PurchaseRepo) List(_ context.Context, f repository.PurchaseFilter) ([]*entity.StockPurchase, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []*entity.StockPurchase{}
	for i := len(r.s.data.purchases) - 1; i >= 0; i-- {
		p := r.s.data.purchases[i]
		if f.Date != "" && p.Date() != f.Date {
			continue
		}
		if f.Time != "" && p.Time() != f.Time {
			continue
		}
		out = append(out, copyPurchase(p))
	}
	return out, nil
}

func (r *PurchaseRepo) Update(_ context.Context, p *entity.StockPurchase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, x := range r.s.data.purchases {
		if x.ID() == p.ID() {
			r.s.data.purchases[i] = copyPurchase(p)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *PurchaseRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, x := range r.s.data.purchases {
		if x.ID() == id {
			r.s.data.purchases = append(r.s.data.purchases[:i:i], r.s.data.purchases[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *PurchaseRepo) DeleteAll(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := int64(len(r.s.data.purchases))
	r.s.data.purchases = nil
	return n, nil
}

// StockLeftRepo cierres en memoria con unicidad (fecha, ítem normalizado).
type StockLeftRepo struct{ s *Store }

func (r *StockLeftRepo) Create(_ context.Context, e *entity.StockLeftEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.data.stockLeft {
		if x.ID() == e.ID() || (x.Date() == e.Date() && x.ItemKey() == e.ItemKey()) {
			return domain.ErrDuplicate
		}
	}
	c := *e
	r.s.data.stockLeft = append(r.s.data.stockLeft, &c)
	return nil
}

func (r *StockLeftRepo) List(_ context.Context, date string) ([]*entity.StockLeftEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []*entity.StockLeftEntry{}
	for i := len(r.s.data.stockLeft) - 1; i >= 0; i-- {
		e := r.s.data.stockLeft[i]
		if date != "" && e.Date() != date {
			continue
		}
		c := *e
		out = append(out, &c)
	}
	return out, nil
}

func (r *StockLeftRepo) DeleteAll(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := int64(len(r.s.data.stockLeft))
	r.s.data.stockLeft = nil
	return n, nil
}

// UserRepo usuarios en memoria.
type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.data.users {
		if strings.EqualFold(x.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	c := *u
	r.s.data.users = append(r.s.data.users, &c)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id }), nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) }), nil
}

func (r *UserRepo) find(match func(*entity.User) bool) *entity.User {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.data.users {
		if match(u) {
			c := *u
			return &c
		}
	}
	return nil
}

func (r *UserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.User
	for i := len(r.s.data.users) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		c := *r.s.data.users[i]
		out = append(out, &c)
	}
	return out, nil
}
