package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated operator of the system.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Despacho represents one processed customs clearance document.
type Despacho struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	Reference      string         `db:"reference" json:"reference"`
	DespachoNumber string         `db:"despacho_number" json:"despacho_number"`
	Currency       string         `db:"currency" json:"currency"`
	GlobalFob      *float64       `db:"global_fob" json:"global_fob"`
	SaleCondition  *string        `db:"sale_condition" json:"sale_condition"`
	RawText        string         `db:"raw_text" json:"-"`
	CreatedBy      uuid.UUID      `db:"created_by" json:"created_by"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
	Items          []DespachoItem `db:"-" json:"items,omitempty"`
	Vendors        []string       `db:"-" json:"vendors,omitempty"`
}

// DespachoItem is one declared tariff-position entry, principal or sub-item.
// FobAmount and Provider stay nil when the extractor could not resolve them;
// those records are surfaced for manual correction rather than guessed.
type DespachoItem struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	DespachoID     uuid.UUID  `db:"despacho_id" json:"despacho_id"`
	DespachoNumber string     `db:"despacho_number" json:"despacho_number"`
	Posicion       string     `db:"posicion" json:"posicion"`
	Currency       string     `db:"currency" json:"currency"`
	FobAmount      *float64   `db:"fob_amount" json:"fob_amount"`
	Provider       *string    `db:"provider" json:"provider"`
	IsSubItem      bool       `db:"is_sub_item" json:"is_sub_item"`
	HasSubItems    bool       `db:"has_sub_items" json:"has_sub_items"`
	ItemNumber     string     `db:"item_number" json:"item_number"`
	ParentItem     *string    `db:"parent_item" json:"parent_item"`
	CorrectedBy    *uuid.UUID `db:"corrected_by" json:"corrected_by"`
	NeedsReview    bool       `db:"-" json:"needs_review"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// RecomputeReview refreshes the derived NeedsReview flag. A record needs
// manual completion when its amount or provider is unresolved. Principals
// that own sub-items are excluded: their own amounts are not authoritative.
func (i *DespachoItem) RecomputeReview() {
	if !i.IsSubItem && i.HasSubItems {
		i.NeedsReview = false
		return
	}
	i.NeedsReview = i.FobAmount == nil || i.Provider == nil || *i.Provider == ""
}

// CountsTowardTotal reports whether the record participates in FOB
// aggregation. Sub-items count; principals count only when they own no
// sub-items, so a parent is never summed alongside its children.
func (i *DespachoItem) CountsTowardTotal() bool {
	if i.IsSubItem {
		return true
	}
	return !i.HasSubItems
}

// BKCode is one 8-digit capital-goods tariff code from the maintained list.
type BKCode struct {
	Code       string    `db:"code" json:"code"`
	ReplacedAt time.Time `db:"replaced_at" json:"replaced_at"`
}

// Supplier is a known canonical provider name used to seed mapping choices.
type Supplier struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
