package order

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ecomshop/shop-api/internal/product"
)

// OrderTimeLayout is the wire format of order dates.
const OrderTimeLayout = "2006-01-02T15:04:05.000Z"

// accepted input layouts, tried in order
var orderTimeInputLayouts = []string{
	OrderTimeLayout,
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
}

// OrderTime is an order date on the wire. It is always written in UTC with
// millisecond precision.
type OrderTime struct {
	time.Time
}

func NewOrderTime(t time.Time) *OrderTime {
	return &OrderTime{Time: t}
}

func (t OrderTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(OrderTimeLayout))
}

func (t *OrderTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("dateCommande must be a string: %w", err)
	}
	// blank is reported as a missing date, not a format error
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parsed, err := ParseOrderTime(raw)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// ParseOrderTime accepts ISO-8601 date-times with or without milliseconds
// and zone. Values without zone are read as UTC.
func ParseOrderTime(raw string) (time.Time, error) {
	for _, layout := range orderTimeInputLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid dateCommande %q", raw)
}

// OrderDTO is the wire shape of an order (commande).
type OrderDTO struct {
	ID          *uint32    `json:"id"`
	OrderDate   *OrderTime `json:"dateCommande"`
	Status      string     `json:"statut"`
	MemberID    *uint32    `json:"adherentId" binding:"omitempty,gt=0"`
	ProductIDs  []uint32   `json:"produitIds"`
	TotalAmount *float64   `json:"montantTotal" binding:"omitempty,gte=0"`
}

// Response is an order as returned by the API: the transfer object plus the
// resolved products in line order.
type Response struct {
	OrderDTO
	Products []product.Response `json:"produits"`
}
