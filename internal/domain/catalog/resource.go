package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrNegativeCapacity    = errors.New("capacity cannot be negative")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
)

const MaxResourceNameLength = 255

// Resource is the catalog collaborator's answer for one reservable resource.
// Unbounded marks a make-to-order resource: it is never constrained by
// on-hand inventory for reservation purposes.
type Resource struct {
	id        uuid.UUID
	tenantID  uuid.UUID
	name      string
	sku       string
	maxUnits  int64
	unbounded bool
}

func NewResource(id, tenantID uuid.UUID, name, sku string, maxUnits int64, unbounded bool) (*Resource, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return nil, ErrResourceNameTooLong
	}
	if maxUnits < 0 {
		return nil, ErrNegativeCapacity
	}

	return &Resource{
		id:        id,
		tenantID:  tenantID,
		name:      name,
		sku:       strings.TrimSpace(sku),
		maxUnits:  maxUnits,
		unbounded: unbounded,
	}, nil
}

// Accommodates reports whether reserving quantity more units on top of the
// already-reserved total stays within capacity.
func (r *Resource) Accommodates(reserved, quantity int64) bool {
	if r.unbounded {
		return true
	}
	return reserved+quantity <= r.maxUnits
}

// Headroom is the capacity still unclaimed given the reserved total,
// clamped at zero. Meaningless for unbounded resources.
func (r *Resource) Headroom(reserved int64) int64 {
	if r.unbounded {
		return 0
	}
	if reserved >= r.maxUnits {
		return 0
	}
	return r.maxUnits - reserved
}

func (r *Resource) ID() uuid.UUID       { return r.id }
func (r *Resource) TenantID() uuid.UUID { return r.tenantID }
func (r *Resource) Name() string        { return r.name }
func (r *Resource) SKU() string         { return r.sku }
func (r *Resource) MaxUnits() int64     { return r.maxUnits }
func (r *Resource) Unbounded() bool     { return r.unbounded }
