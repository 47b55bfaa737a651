package endpoint

import (
	"strconv"
	"time"

	"github.com/amirasaad/dodopayments-go/pkg/payment"
)

// Param is one named request parameter. Parameters whose name matches a
// placeholder in the operation path fill it; the rest go to the query
// string, skipping empty values.
type Param struct {
	Name  string
	Value string
}

// Params is implemented by every operation's parameter type.
type Params interface {
	Parameters() []Param
}

// NoParams is used by operations that take no parameters.
type NoParams struct{}

func (NoParams) Parameters() []Param { return nil }

type RetrieveCheckoutSessionParams struct {
	ID string
}

func (p RetrieveCheckoutSessionParams) Parameters() []Param {
	return []Param{{Name: "id", Value: p.ID}}
}

type RetrievePaymentParams struct {
	PaymentID string
}

func (p RetrievePaymentParams) Parameters() []Param {
	return []Param{{Name: "payment_id", Value: p.PaymentID}}
}

// ListPaymentsParams filters GET /payments. Zero values are left out.
type ListPaymentsParams struct {
	Status       payment.IntentStatus
	CustomerID   string
	CreatedAtGte time.Time
	CreatedAtLte time.Time
	PageSize     int
	PageNumber   int
}

func (p ListPaymentsParams) Parameters() []Param {
	return []Param{
		{Name: "status", Value: p.Status.String()},
		{Name: "customer_id", Value: p.CustomerID},
		{Name: "created_at_gte", Value: formatTime(p.CreatedAtGte)},
		{Name: "created_at_lte", Value: formatTime(p.CreatedAtLte)},
		{Name: "page_size", Value: formatInt(p.PageSize)},
		{Name: "page_number", Value: formatInt(p.PageNumber)},
	}
}

// RawParams is an untyped parameter list, used by the CLI.
type RawParams []Param

func (p RawParams) Parameters() []Param { return p }

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
