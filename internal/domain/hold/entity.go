package hold

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptySessionID    = errors.New("session id cannot be empty")
	ErrSessionIDTooLong  = errors.New("session id is too long (max 128 characters)")
	ErrNoItems           = errors.New("hold must contain at least one item")
	ErrDuplicateResource = errors.New("duplicate resource in item list")
	ErrNilResource       = errors.New("resource id cannot be nil")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrNoExpiry          = errors.New("hold must carry an expiry")
)

const MaxSessionIDLength = 128

// Item is a single claimed line inside a hold. It is a value, not an
// independently owned entity; it only exists as part of a Hold.
type Item struct {
	resourceID  uuid.UUID
	quantity    int64
	displayName string
	displaySKU  string
}

func NewItem(resourceID uuid.UUID, quantity int64, displayName, displaySKU string) (Item, error) {
	if resourceID == uuid.Nil {
		return Item{}, ErrNilResource
	}
	if quantity <= 0 {
		return Item{}, ErrInvalidQuantity
	}
	return Item{
		resourceID:  resourceID,
		quantity:    quantity,
		displayName: strings.TrimSpace(displayName),
		displaySKU:  strings.TrimSpace(displaySKU),
	}, nil
}

func (i Item) ResourceID() uuid.UUID { return i.resourceID }
func (i Item) Quantity() int64       { return i.quantity }
func (i Item) DisplayName() string   { return i.displayName }
func (i Item) DisplaySKU() string    { return i.displaySKU }

// Hold is the per-checkout-session claim against finite capacity. A hold is
// created or replaced wholesale per reserve call and destroyed on release,
// confirm, or expiry. Every hold carries an expiry; none exists without one.
type Hold struct {
	sessionID string
	items     map[uuid.UUID]Item
	expiresAt time.Time
}

func NewHold(sessionID string, items []Item, expiresAt time.Time) (*Hold, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}
	if len(sessionID) > MaxSessionIDLength {
		return nil, ErrSessionIDTooLong
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if expiresAt.IsZero() {
		return nil, ErrNoExpiry
	}

	byResource := make(map[uuid.UUID]Item, len(items))
	for _, item := range items {
		if item.quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if _, exists := byResource[item.resourceID]; exists {
			return nil, ErrDuplicateResource
		}
		byResource[item.resourceID] = item
	}

	return &Hold{
		sessionID: sessionID,
		items:     byResource,
		expiresAt: expiresAt,
	}, nil
}

func ReconstructHold(sessionID string, items []Item, expiresAt time.Time) *Hold {
	byResource := make(map[uuid.UUID]Item, len(items))
	for _, item := range items {
		byResource[item.resourceID] = item
	}
	return &Hold{
		sessionID: sessionID,
		items:     byResource,
		expiresAt: expiresAt,
	}
}

func (h *Hold) SessionID() string    { return h.sessionID }
func (h *Hold) ExpiresAt() time.Time { return h.expiresAt }

func (h *Hold) Active(now time.Time) bool {
	return now.Before(h.expiresAt)
}

func (h *Hold) Item(resourceID uuid.UUID) (Item, bool) {
	item, ok := h.items[resourceID]
	return item, ok
}

func (h *Hold) Quantity(resourceID uuid.UUID) int64 {
	return h.items[resourceID].quantity
}

// Items returns the lines ordered by resource id so iteration is deterministic.
func (h *Hold) Items() []Item {
	items := make([]Item, 0, len(h.items))
	for _, item := range h.items {
		items = append(items, item)
	}
	sort.Slice(items, func(a, b int) bool {
		return items[a].resourceID.String() < items[b].resourceID.String()
	})
	return items
}

func (h *Hold) ResourceIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(h.items))
	for id := range h.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool {
		return ids[a].String() < ids[b].String()
	})
	return ids
}
