package checkout

import (
	"github.com/amirasaad/dodopayments-go/pkg/envelope"
	"github.com/amirasaad/dodopayments-go/pkg/money"
)

var (
	addressCountryField = envelope.Required[money.CountryCode]("country")
	addressCityField    = envelope.Optional[string]("city")
	addressStateField   = envelope.Optional[string]("state")
	addressStreetField  = envelope.Optional[string]("street")
	addressZipcodeField = envelope.Optional[string]("zipcode")

	billingAddressSchema = envelope.NewSchema(
		"BillingAddress",
		addressCountryField,
		addressCityField,
		addressStateField,
		addressStreetField,
		addressZipcodeField,
	)
)

// BillingAddress is the customer's billing address. Only the country is
// required; the hosted checkout collects the rest when missing.
type BillingAddress struct {
	fields envelope.Envelope
}

// NewBillingAddress creates an address with only the country set.
func NewBillingAddress(country money.CountryCode) *BillingAddress {
	a := &BillingAddress{}
	return a.SetCountry(country)
}

func (a *BillingAddress) Country() (money.CountryCode, bool) { return addressCountryField.Get(&a.fields) }
func (a *BillingAddress) City() (string, bool) { return addressCityField.Get(&a.fields) }
func (a *BillingAddress) State() (string, bool) { return addressStateField.Get(&a.fields) }
func (a *BillingAddress) Street() (string, bool) { return addressStreetField.Get(&a.fields) }
func (a *BillingAddress) Zipcode() (string, bool) { return addressZipcodeField.Get(&a.fields) }

func (a *BillingAddress) SetCountry(v money.CountryCode) *BillingAddress {
	addressCountryField.Set(&a.fields, v)
	return a
}

func (a *BillingAddress) SetCity(v string) *BillingAddress {
	addressCityField.Set(&a.fields, v)
	return a
}

func (a *BillingAddress) SetState(v string) *BillingAddress {
	addressStateField.Set(&a.fields, v)
	return a
}

func (a *BillingAddress) SetStreet(v string) *BillingAddress {
	addressStreetField.Set(&a.fields, v)
	return a
}

func (a *BillingAddress) SetZipcode(v string) *BillingAddress {
	addressZipcodeField.Set(&a.fields, v)
	return a
}

func (a *BillingAddress) Envelope() *envelope.Envelope { return &a.fields }
func (a *BillingAddress) Schema() *envelope.Schema { return billingAddressSchema }

// Validate reports country when it is absent or null.
func (a *BillingAddress) Validate() error {
	return billingAddressSchema.Validate(&a.fields)
}

// Clone returns a deep copy of the address.
func (a *BillingAddress) Clone() *BillingAddress {
	return &BillingAddress{fields: *a.fields.Clone()}
}

func (a *BillingAddress) Equal(other *BillingAddress) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.fields.Equal(&other.fields)
}

func (a BillingAddress) MarshalJSON() ([]byte, error) {
	return a.fields.MarshalJSON()
}

func (a *BillingAddress) UnmarshalJSON(data []byte) error {
	return billingAddressSchema.Decode(data, &a.fields)
}

var (
	customerIDField    = envelope.Optional[string]("customer_id")
	customerEmailField = envelope.Optional[string]("email")
	customerNameField  = envelope.Optional[string]("name")
	customerPhoneField = envelope.Optional[string]("phone_number")

	customerRequestSchema = envelope.NewSchema(
		"CustomerRequest",
		customerIDField,
		customerEmailField,
		customerNameField,
		customerPhoneField,
	)
)

// CustomerRequest either attaches an existing customer by id or describes a
// new one by email. One of customer_id or email must be present.
type CustomerRequest struct {
	fields envelope.Envelope
}

// ExistingCustomer references a customer that already exists.
func ExistingCustomer(customerID string) *CustomerRequest {
	c := &CustomerRequest{}
	return c.SetCustomerID(customerID)
}

// NewCustomer describes a customer to create during checkout.
func NewCustomer(email string) *CustomerRequest {
	c := &CustomerRequest{}
	return c.SetEmail(email)
}

func (c *CustomerRequest) CustomerID() (string, bool) { return customerIDField.Get(&c.fields) }
func (c *CustomerRequest) Email() (string, bool) { return customerEmailField.Get(&c.fields) }
func (c *CustomerRequest) Name() (string, bool) { return customerNameField.Get(&c.fields) }
func (c *CustomerRequest) PhoneNumber() (string, bool) { return customerPhoneField.Get(&c.fields) }

func (c *CustomerRequest) SetCustomerID(v string) *CustomerRequest {
	customerIDField.Set(&c.fields, v)
	return c
}

func (c *CustomerRequest) SetEmail(v string) *CustomerRequest {
	customerEmailField.Set(&c.fields, v)
	return c
}

func (c *CustomerRequest) SetName(v string) *CustomerRequest {
	customerNameField.Set(&c.fields, v)
	return c
}

func (c *CustomerRequest) SetPhoneNumber(v string) *CustomerRequest {
	customerPhoneField.Set(&c.fields, v)
	return c
}

func (c *CustomerRequest) SetPhoneNumberNull() *CustomerRequest {
	customerPhoneField.SetNull(&c.fields)
	return c
}

func (c *CustomerRequest) Envelope() *envelope.Envelope { return &c.fields }
func (c *CustomerRequest) Schema() *envelope.Schema { return customerRequestSchema }

// Validate requires one of customer_id or email. Missing both is reported
// as the single alternative "customer_id|email".
func (c *CustomerRequest) Validate() error {
	report := customerRequestSchema.Report(&c.fields)
	if customerIDField.State(&c.fields) != envelope.Present &&
		customerEmailField.State(&c.fields) != envelope.Present {
		report.Missing = append(report.Missing, "customer_id|email")
	}
	return report.Err()
}

// Clone returns a deep copy of the customer.
func (c *CustomerRequest) Clone() *CustomerRequest {
	return &CustomerRequest{fields: *c.fields.Clone()}
}

// Equal reports whether both customers hold the same fields. Two nil
// customers are equal.
func (c *CustomerRequest) Equal(other *CustomerRequest) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.fields.Equal(&other.fields)
}

func (c CustomerRequest) MarshalJSON() ([]byte, error) {
	return c.fields.MarshalJSON()
}

func (c *CustomerRequest) UnmarshalJSON(data []byte) error {
	return customerRequestSchema.Decode(data, &c.fields)
}
