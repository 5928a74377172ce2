// Package memory holds process-local implementations of the storage ports.
// Every read and write copies, so callers never share state with the store.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"wallet-governance/internal/core/domain"

	"github.com/google/uuid"
)

// --- Wallets ---

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	mu      sync.RWMutex
	wallets map[string]*domain.Wallet
	members map[string][]domain.Member
}

// NewWalletRepo creates an empty WalletRepo.
func NewWalletRepo() *WalletRepo {
	return &WalletRepo{
		wallets: make(map[string]*domain.Wallet),
		members: make(map[string][]domain.Member),
	}
}

func (r *WalletRepo) Create(_ context.Context, w *domain.Wallet, members []domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wallets[w.ID]; ok {
		return fmt.Errorf("wallet %s already exists", w.ID)
	}
	r.wallets[w.ID] = copyWallet(w)
	list := make([]domain.Member, 0, len(members))
	for _, m := range members {
		m.WalletID = w.ID
		list = append(list, copyMember(m))
	}
	r.members[w.ID] = list
	return nil
}

func (r *WalletRepo) GetByID(_ context.Context, id string) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	return copyWallet(w), nil
}

func (r *WalletRepo) UpdateSpendingPolicy(_ context.Context, walletID string, policy *domain.SpendingPolicy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	w.SpendingPolicy = copySpending(policy)
	w.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *WalletRepo) UpdateServerKeyPolicy(_ context.Context, walletID string, policy *domain.ServerKeyPolicy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	w.ServerKeyPolicy = copyServerKey(policy)
	w.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *WalletRepo) GetMember(_ context.Context, walletID, userID string) (*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.members[walletID] {
		if m.UserID == userID {
			c := copyMember(m)
			return &c, nil
		}
	}
	return nil, nil
}

func (r *WalletRepo) ListMembers(_ context.Context, walletID string) ([]domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src := r.members[walletID]
	out := make([]domain.Member, 0, len(src))
	for _, m := range src {
		out = append(out, copyMember(m))
	}
	return out, nil
}

func (r *WalletRepo) UpdateMemberSpendingPolicy(_ context.Context, walletID, userID string, policy *domain.SpendingPolicy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.members[walletID]
	for i := range list {
		if list[i].UserID == userID {
			list[i].SpendingPolicy = copySpending(policy)
			return nil
		}
	}
	return fmt.Errorf("member not found: %s/%s", walletID, userID)
}

// --- Dummy transactions ---

// DummyTransactionRepo implements ports.DummyTransactionRepository.
type DummyTransactionRepo struct {
	mu  sync.RWMutex
	txs map[uuid.UUID]*domain.DummyTransaction
}

// NewDummyTransactionRepo creates an empty DummyTransactionRepo.
func NewDummyTransactionRepo() *DummyTransactionRepo {
	return &DummyTransactionRepo{txs: make(map[uuid.UUID]*domain.DummyTransaction)}
}

func (r *DummyTransactionRepo) Create(_ context.Context, tx *domain.DummyTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.txs[tx.ID]; ok {
		return fmt.Errorf("dummy transaction %s already exists", tx.ID)
	}
	r.txs[tx.ID] = copyDummyTx(tx)
	return nil
}

func (r *DummyTransactionRepo) Update(_ context.Context, tx *domain.DummyTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.txs[tx.ID]; !ok {
		return fmt.Errorf("dummy transaction not found: %s", tx.ID)
	}
	r.txs[tx.ID] = copyDummyTx(tx)
	return nil
}

func (r *DummyTransactionRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.DummyTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tx, ok := r.txs[id]
	if !ok {
		return nil, nil
	}
	return copyDummyTx(tx), nil
}

func (r *DummyTransactionRepo) ListByWallet(_ context.Context, walletID string, status *domain.DummyTransactionStatus) ([]domain.DummyTransaction, error) {
	return r.filter(func(tx *domain.DummyTransaction) bool {
		return tx.WalletID == walletID && (status == nil || tx.Status == *status)
	}), nil
}

func (r *DummyTransactionRepo) ListPendingBefore(_ context.Context, cutoff time.Time) ([]domain.DummyTransaction, error) {
	return r.filter(func(tx *domain.DummyTransaction) bool {
		return tx.Status == domain.DummyTxPendingSignatures && tx.CreatedAt.Before(cutoff)
	}), nil
}

func (r *DummyTransactionRepo) filter(keep func(*domain.DummyTransaction) bool) []domain.DummyTransaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.DummyTransaction
	for _, tx := range r.txs {
		if keep(tx) {
			out = append(out, *copyDummyTx(tx))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// --- Key health ---

// KeyHealthRepo implements ports.KeyHealthRepository.
type KeyHealthRepo struct {
	mu   sync.RWMutex
	keys map[string]map[string]domain.KeyHealthStatus
}

// NewKeyHealthRepo creates an empty KeyHealthRepo.
func NewKeyHealthRepo() *KeyHealthRepo {
	return &KeyHealthRepo{keys: make(map[string]map[string]domain.KeyHealthStatus)}
}

func (r *KeyHealthRepo) Upsert(_ context.Context, s domain.KeyHealthStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.keys[s.WalletID]
	if !ok {
		m = make(map[string]domain.KeyHealthStatus)
		r.keys[s.WalletID] = m
	}
	m[s.XFP] = s
	return nil
}

func (r *KeyHealthRepo) ListByWallet(_ context.Context, walletID string) ([]domain.KeyHealthStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.KeyHealthStatus, 0, len(r.keys[walletID]))
	for _, s := range r.keys[walletID] {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].XFP < out[j].XFP })
	return out, nil
}

func (r *KeyHealthRepo) DeleteByWallet(_ context.Context, walletID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.keys, walletID)
	return nil
}

// --- Inheritance plans ---

// InheritancePlanRepo implements ports.InheritancePlanRepository.
type InheritancePlanRepo struct {
	mu    sync.RWMutex
	plans map[string]domain.InheritancePlan
}

// NewInheritancePlanRepo creates an empty InheritancePlanRepo.
func NewInheritancePlanRepo() *InheritancePlanRepo {
	return &InheritancePlanRepo{plans: make(map[string]domain.InheritancePlan)}
}

func (r *InheritancePlanRepo) Get(_ context.Context, walletID string) (*domain.InheritancePlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plans[walletID]
	if !ok {
		return nil, nil
	}
	p.Terms = copyTerms(p.Terms)
	return &p, nil
}

func (r *InheritancePlanRepo) Save(_ context.Context, p *domain.InheritancePlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *p
	c.Terms = copyTerms(p.Terms)
	r.plans[p.WalletID] = c
	return nil
}

// --- Handled events ---

// HandledEventStore implements ports.HandledEventStore.
type HandledEventStore struct {
	mu     sync.Mutex
	events map[string]domain.HandledEvent
}

// NewHandledEventStore creates an empty HandledEventStore.
func NewHandledEventStore() *HandledEventStore {
	return &HandledEventStore{events: make(map[string]domain.HandledEvent)}
}

func (s *HandledEventStore) IsHandled(_ context.Context, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.events[eventID]
	return ok, nil
}

func (s *HandledEventStore) MarkHandled(_ context.Context, ev domain.HandledEvent) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[ev.EventID]; ok {
		return false, nil
	}
	s.events[ev.EventID] = ev
	return true, nil
}

// Len returns the number of recorded events.
func (s *HandledEventStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// --- copies ---

func copyWallet(w *domain.Wallet) *domain.Wallet {
	c := *w
	c.SpendingPolicy = copySpending(w.SpendingPolicy)
	c.ServerKeyPolicy = copyServerKey(w.ServerKeyPolicy)
	return &c
}

func copyMember(m domain.Member) domain.Member {
	m.XFPs = append([]string(nil), m.XFPs...)
	m.SpendingPolicy = copySpending(m.SpendingPolicy)
	return m
}

func copySpending(p *domain.SpendingPolicy) *domain.SpendingPolicy {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func copyServerKey(p *domain.ServerKeyPolicy) *domain.ServerKeyPolicy {
	if p == nil {
		return nil
	}
	c := *p
	c.SpendingLimit = copySpending(p.SpendingLimit)
	return &c
}

func copyDummyTx(tx *domain.DummyTransaction) *domain.DummyTransaction {
	c := *tx
	c.Signatures = append([]domain.Signature(nil), tx.Signatures...)
	c.BroadcastRequestedAt = copyTime(tx.BroadcastRequestedAt)
	c.ExecutedAt = copyTime(tx.ExecutedAt)
	c.CancelledAt = copyTime(tx.CancelledAt)
	return &c
}

func copyTerms(t domain.InheritanceTerms) domain.InheritanceTerms {
	t.Draft.Signers = append([]string(nil), t.Draft.Signers...)
	if t.Draft.ReplaceWallet != nil {
		s := *t.Draft.ReplaceWallet
		t.Draft.ReplaceWallet = &s
	}
	return t
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
