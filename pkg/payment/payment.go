// Package payment holds the payment resource returned by the payments
// endpoints and the intent status shared with checkout sessions.
package payment

import (
	"time"

	"github.com/amirasaad/dodopayments-go/pkg/envelope"
	"github.com/amirasaad/dodopayments-go/pkg/money"
)

var (
	customerIDField    = envelope.Required[string]("customer_id")
	customerEmailField = envelope.Required[string]("email")
	customerNameField  = envelope.Required[string]("name")

	customerLimitedDetailsSchema = envelope.NewSchema(
		"CustomerLimitedDetails",
		customerIDField,
		customerEmailField,
		customerNameField,
	)
)

// CustomerLimitedDetails identifies the customer a payment belongs to.
type CustomerLimitedDetails struct {
	fields envelope.Envelope
}

// NewCustomerLimitedDetails creates customer details with every required field set.
func NewCustomerLimitedDetails(customerID, email, name string) *CustomerLimitedDetails {
	c := &CustomerLimitedDetails{}
	return c.SetCustomerID(customerID).SetEmail(email).SetName(name)
}

func (c *CustomerLimitedDetails) CustomerID() (string, bool) { return customerIDField.Get(&c.fields) }
func (c *CustomerLimitedDetails) Email() (string, bool) { return customerEmailField.Get(&c.fields) }
func (c *CustomerLimitedDetails) Name() (string, bool) { return customerNameField.Get(&c.fields) }

func (c *CustomerLimitedDetails) SetCustomerID(v string) *CustomerLimitedDetails {
	customerIDField.Set(&c.fields, v)
	return c
}

func (c *CustomerLimitedDetails) SetEmail(v string) *CustomerLimitedDetails {
	customerEmailField.Set(&c.fields, v)
	return c
}

func (c *CustomerLimitedDetails) SetName(v string) *CustomerLimitedDetails {
	customerNameField.Set(&c.fields, v)
	return c
}

func (c *CustomerLimitedDetails) Envelope() *envelope.Envelope { return &c.fields }
func (c *CustomerLimitedDetails) Schema() *envelope.Schema { return customerLimitedDetailsSchema }

// Validate reports each of customer_id, email and name that is absent or null.
func (c *CustomerLimitedDetails) Validate() error {
	return customerLimitedDetailsSchema.Validate(&c.fields)
}

// Clone returns a deep copy of the customer details.
func (c *CustomerLimitedDetails) Clone() *CustomerLimitedDetails {
	return &CustomerLimitedDetails{fields: *c.fields.Clone()}
}

func (c *CustomerLimitedDetails) Equal(other *CustomerLimitedDetails) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.fields.Equal(&other.fields)
}

func (c CustomerLimitedDetails) MarshalJSON() ([]byte, error) {
	return c.fields.MarshalJSON()
}

func (c *CustomerLimitedDetails) UnmarshalJSON(data []byte) error {
	return customerLimitedDetailsSchema.Decode(data, &c.fields)
}

var (
	paymentIDField         = envelope.Required[string]("payment_id")
	businessIDField        = envelope.Required[string]("business_id")
	totalAmountField       = envelope.Required[money.Amount]("total_amount")
	currencyField          = envelope.Required[money.Currency]("currency")
	createdAtField         = envelope.Required[time.Time]("created_at")
	statusField            = envelope.Optional[IntentStatus]("status")
	customerField          = envelope.Optional[CustomerLimitedDetails]("customer")
	checkoutSessionIDField = envelope.Optional[string]("checkout_session_id")
	paymentMethodField     = envelope.Optional[string]("payment_method")
	taxField               = envelope.Optional[money.Amount]("tax")
	metadataField          = envelope.Optional[map[string]string]("metadata")

	paymentSchema = envelope.NewSchema(
		"Payment",
		paymentIDField,
		businessIDField,
		totalAmountField,
		currencyField,
		createdAtField,
		statusField,
		customerField,
		checkoutSessionIDField,
		paymentMethodField,
		taxField,
		metadataField,
	)
)

// Payment is a payment as returned by GET /payments/{payment_id}.
type Payment struct {
	fields envelope.Envelope
}

// New creates a payment with every required field set.
func New(paymentID, businessID string, totalAmount money.Amount, currency money.Currency, createdAt time.Time) *Payment {
	p := &Payment{}
	return p.SetPaymentID(paymentID).
		SetBusinessID(businessID).
		SetTotalAmount(totalAmount).
		SetCurrency(currency).
		SetCreatedAt(createdAt)
}

func (p *Payment) PaymentID() (string, bool) { return paymentIDField.Get(&p.fields) }
func (p *Payment) BusinessID() (string, bool) { return businessIDField.Get(&p.fields) }
func (p *Payment) TotalAmount() (money.Amount, bool) { return totalAmountField.Get(&p.fields) }
func (p *Payment) Currency() (money.Currency, bool) { return currencyField.Get(&p.fields) }
func (p *Payment) CreatedAt() (time.Time, bool) { return createdAtField.Get(&p.fields) }
func (p *Payment) Status() (IntentStatus, bool) { return statusField.Get(&p.fields) }
func (p *Payment) CheckoutSessionID() (string, bool) { return checkoutSessionIDField.Get(&p.fields) }
func (p *Payment) PaymentMethod() (string, bool) { return paymentMethodField.Get(&p.fields) }
func (p *Payment) Tax() (money.Amount, bool) { return taxField.Get(&p.fields) }
func (p *Payment) Metadata() (map[string]string, bool) { return metadataField.Get(&p.fields) }

// Customer returns a copy of the customer details.
func (p *Payment) Customer() (*CustomerLimitedDetails, bool) {
	c, ok := customerField.Get(&p.fields)
	if !ok {
		return nil, false
	}
	return &c, true
}

func (p *Payment) SetPaymentID(v string) *Payment {
	paymentIDField.Set(&p.fields, v)
	return p
}

func (p *Payment) SetBusinessID(v string) *Payment {
	businessIDField.Set(&p.fields, v)
	return p
}

func (p *Payment) SetTotalAmount(v money.Amount) *Payment {
	totalAmountField.Set(&p.fields, v)
	return p
}

func (p *Payment) SetCurrency(v money.Currency) *Payment {
	currencyField.Set(&p.fields, v)
	return p
}

// SetCreatedAt stores v in UTC.
func (p *Payment) SetCreatedAt(v time.Time) *Payment {
	createdAtField.Set(&p.fields, v.UTC())
	return p
}

func (p *Payment) SetStatus(v IntentStatus) *Payment {
	statusField.Set(&p.fields, v)
	return p
}

func (p *Payment) SetStatusNull() *Payment {
	statusField.SetNull(&p.fields)
	return p
}

// SetCustomer stores a copy of v. A nil customer is sent as null.
func (p *Payment) SetCustomer(v *CustomerLimitedDetails) *Payment {
	if v == nil {
		return p.SetCustomerNull()
	}
	customerField.Set(&p.fields, *v)
	return p
}

func (p *Payment) SetCustomerNull() *Payment {
	customerField.SetNull(&p.fields)
	return p
}

func (p *Payment) SetCheckoutSessionID(v string) *Payment {
	checkoutSessionIDField.Set(&p.fields, v)
	return p
}

func (p *Payment) SetCheckoutSessionIDNull() *Payment {
	checkoutSessionIDField.SetNull(&p.fields)
	return p
}

func (p *Payment) SetPaymentMethod(v string) *Payment {
	paymentMethodField.Set(&p.fields, v)
	return p
}

func (p *Payment) SetTax(v money.Amount) *Payment {
	taxField.Set(&p.fields, v)
	return p
}

func (p *Payment) SetTaxNull() *Payment {
	taxField.SetNull(&p.fields)
	return p
}

// SetMetadata stores a copy of v. A nil map is sent as null.
func (p *Payment) SetMetadata(v map[string]string) *Payment {
	metadataField.Set(&p.fields, v)
	return p
}

// DisplayTotal renders the total in major units, e.g. "10.50 USD".
func (p *Payment) DisplayTotal() (string, bool) {
	amount, ok := p.TotalAmount()
	if !ok {
		return "", false
	}
	currency, ok := p.Currency()
	if !ok {
		return "", false
	}
	s, err := money.FormatMinor(amount, currency)
	if err != nil {
		return "", false
	}
	return s, true
}

func (p *Payment) Envelope() *envelope.Envelope { return &p.fields }
func (p *Payment) Schema() *envelope.Schema { return paymentSchema }

// Validate checks the payment and its customer details for missing required fields.
func (p *Payment) Validate() error {
	report := paymentSchema.Report(&p.fields)
	if customer, ok := p.Customer(); ok {
		report.Nest("customer", customer.Validate())
	}
	return report.Err()
}

// Clone returns a deep copy of the payment, customer details included.
func (p *Payment) Clone() *Payment {
	return &Payment{fields: *p.fields.Clone()}
}

// Equal reports whether both payments hold the same fields in any order,
// comparing numbers by value.
func (p *Payment) Equal(other *Payment) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.fields.Equal(&other.fields)
}

func (p Payment) MarshalJSON() ([]byte, error) {
	return p.fields.MarshalJSON()
}

func (p *Payment) UnmarshalJSON(data []byte) error {
	return paymentSchema.Decode(data, &p.fields)
}
