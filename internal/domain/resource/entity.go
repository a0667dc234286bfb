package resource

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxResourceNameLength = 200
	MaxTimeUnits          = 1000
	MaxCapacityTotal      = 1_000_000
)

type Resource struct {
	id            uuid.UUID
	kind          Kind
	name          string
	ownerID       uuid.UUID
	capacityTotal int
	timeUnits     []string
	createdAt     time.Time
}

func NewResource(id uuid.UUID, kind Kind, name string, ownerID uuid.UUID, capacityTotal int, timeUnits []string, now time.Time) (*Resource, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}

	name = strings.TrimSpace(name)
	if err := validateResourceName(name); err != nil {
		return nil, err
	}

	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}

	if capacityTotal <= 0 || capacityTotal > MaxCapacityTotal {
		return nil, ErrInvalidCapacity
	}

	units, err := normalizeTimeUnits(timeUnits)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Resource{
		id:            id,
		kind:          kind,
		name:          name,
		ownerID:       ownerID,
		capacityTotal: capacityTotal,
		timeUnits:     units,
		createdAt:     now,
	}, nil
}

// ReconstructResource rebuilds a persisted resource without re-running validation.
func ReconstructResource(id uuid.UUID, kind Kind, name string, ownerID uuid.UUID, capacityTotal int, timeUnits []string, createdAt time.Time) *Resource {
	return &Resource{
		id:            id,
		kind:          kind,
		name:          name,
		ownerID:       ownerID,
		capacityTotal: capacityTotal,
		timeUnits:     timeUnits,
		createdAt:     createdAt,
	}
}

// CheckRequest validates a booking request against this resource's declared
// time units and capacity. It never looks at consumed capacity.
func (r *Resource) CheckRequest(timeUnit string, quantity int) error {
	if quantity <= 0 || quantity > r.capacityTotal {
		return ErrInvalidQuantity
	}
	if !r.Offers(timeUnit) {
		return ErrInvalidTimeUnit
	}
	return nil
}

// Offers reports whether timeUnit is bookable. A resource without declared
// time units only offers Anytime.
func (r *Resource) Offers(timeUnit string) bool {
	if len(r.timeUnits) == 0 {
		return timeUnit == Anytime
	}
	for _, u := range r.timeUnits {
		if u == timeUnit {
			return true
		}
	}
	return false
}

func (r *Resource) IsOwnedBy(userID uuid.UUID) bool {
	return r.ownerID == userID
}

func validateResourceName(name string) error {
	if name == "" {
		return ErrEmptyResourceName
	}
	if utf8.RuneCountInString(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func normalizeTimeUnits(in []string) ([]string, error) {
	if len(in) > MaxTimeUnits {
		return nil, ErrTooManyTimeUnits
	}

	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, raw := range in {
		u, err := ParseTimeUnit(strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		if _, dup := seen[u]; dup {
			return nil, ErrDuplicateTimeUnit
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out, nil
}

func (r *Resource) ID() uuid.UUID        { return r.id }
func (r *Resource) Kind() Kind           { return r.kind }
func (r *Resource) Name() string         { return r.name }
func (r *Resource) OwnerID() uuid.UUID   { return r.ownerID }
func (r *Resource) CapacityTotal() int   { return r.capacityTotal }
func (r *Resource) TimeUnits() []string  { return append([]string(nil), r.timeUnits...) }
func (r *Resource) CreatedAt() time.Time { return r.createdAt }
