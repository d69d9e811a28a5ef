package inventory

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/OnKodr-dev/inventory-app/internal/domain"
	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
	"github.com/OnKodr-dev/inventory-app/internal/domain/seed"
)

// LedgerState estado lógico del libro completo.
type LedgerState string

const (
	LedgerSeeded   LedgerState = "seeded"
	LedgerModified LedgerState = "modified"
)

// MovementInput datos de un movimiento nuevo. El libro no valida tipo ni cantidad.
type MovementInput struct {
	ItemID string
	Type   entity.MovementType
	Qty    decimal.Decimal
	Note   string
}

// LedgerService único dueño del libro de movimientos. Es un almacén estructural, no una
// puerta de reglas de negocio: acepta cualquier movimiento con ItemID.
type LedgerService struct {
	mu        sync.RWMutex
	movements []entity.Movement // más reciente primero
	state     LedgerState
	snaps     LedgerSnapshots
	ids       IDGenerator
	clock     Clock
	log       zerolog.Logger
	obs       MutationObserver
}

// NewLedgerService construye el libro con el historial semilla. obs puede ser nil.
func NewLedgerService(snaps LedgerSnapshots, ids IDGenerator, clock Clock, log zerolog.Logger, obs MutationObserver) *LedgerService {
	if obs == nil {
		obs = nopObserver{}
	}
	return &LedgerService{
		movements: seed.Movements(),
		state:     LedgerSeeded,
		snaps:     snaps,
		ids:       ids,
		clock:     clock,
		log:       log,
		obs:       obs,
	}
}

// Load reemplaza el estado con la instantánea guardada o con la semilla.
// Devuelve true si se usó la instantánea.
func (s *LedgerService) Load(ctx context.Context) bool {
	d := s.snaps.LoadLedger(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.UseDefault {
		s.movements = seed.Movements()
		s.state = LedgerSeeded
		return false
	}
	s.movements = d.Data
	s.state = LedgerModified
	return true
}

// Movements devuelve una copia del libro en orden canónico (más reciente primero).
func (s *LedgerService) Movements() []entity.Movement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Movement, len(s.movements))
	copy(out, s.movements)
	return out
}

// HasMovements indica si algún movimiento referencia el artículo.
func (s *LedgerService) HasMovements(itemID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.movements {
		if m.ItemID == itemID {
			return true
		}
	}
	return false
}

// State devuelve seeded o modified.
func (s *LedgerService) State() LedgerState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// AddMovement asigna ID y CreatedAt y antepone el movimiento. Solo exige ItemID
// (ErrEmptyField); tipo y cantidad se guardan tal cual.
func (s *LedgerService) AddMovement(ctx context.Context, in MovementInput) (entity.Movement, error) {
	itemID := strings.TrimSpace(in.ItemID)
	if itemID == "" {
		s.obs.MutationDone("add_movement", domain.ErrEmptyField)
		return entity.Movement{}, domain.ErrEmptyField
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := entity.Movement{
		ID:        s.ids.NewID(),
		ItemID:    itemID,
		Type:      in.Type,
		Qty:       in.Qty,
		Note:      strings.TrimSpace(in.Note),
		CreatedAt: s.clock.Now(),
	}
	s.movements = append([]entity.Movement{m}, s.movements...)
	s.state = LedgerModified
	s.snaps.SaveLedger(ctx, s.movements)
	s.obs.MutationDone("add_movement", nil)
	s.log.Info().
		Str("movement_id", m.ID).
		Str("item_id", m.ItemID).
		Str("type", string(m.Type)).
		Str("qty", m.Qty.String()).
		Msg("movimiento registrado")
	return m, nil
}

// ResetLedger vuelve a la semilla y borra la instantánea guardada.
func (s *LedgerService) ResetLedger(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movements = seed.Movements()
	s.state = LedgerSeeded
	s.snaps.ClearLedger(ctx)
	s.obs.MutationDone("reset_ledger", nil)
}

// ReplaceLedger sobrescribe el libro. Un nil se ignora en silencio (applied=false).
func (s *LedgerService) ReplaceLedger(ctx context.Context, movements []entity.Movement) (applied bool) {
	if movements == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movements = make([]entity.Movement, len(movements))
	copy(s.movements, movements)
	s.state = LedgerModified
	s.snaps.SaveLedger(ctx, s.movements)
	s.obs.MutationDone("replace_ledger", nil)
	return true
}
