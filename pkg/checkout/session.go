// Package checkout holds the checkout session models: the create request,
// the create response and the session status returned on retrieval.
package checkout

import (
	"fmt"
	"time"

	"github.com/amirasaad/dodopayments-go/pkg/envelope"
	"github.com/amirasaad/dodopayments-go/pkg/money"
	"github.com/amirasaad/dodopayments-go/pkg/payment"
)

var (
	productCartField             = envelope.Required[[]*ProductItemReq]("product_cart")
	allowedPaymentMethodsField   = envelope.Optional[[]string]("allowed_payment_method_types")
	billingAddressField          = envelope.Optional[BillingAddress]("billing_address")
	billingCurrencyField         = envelope.Optional[money.Currency]("billing_currency")
	confirmField                 = envelope.Optional[bool]("confirm")
	customerField                = envelope.Optional[CustomerRequest]("customer")
	customizationField           = envelope.Optional[Customization]("customization")
	discountCodeField            = envelope.Optional[string]("discount_code")
	metadataField                = envelope.Optional[map[string]string]("metadata")
	returnURLField               = envelope.Optional[string]("return_url")
	showSavedPaymentMethodsField = envelope.Optional[bool]("show_saved_payment_methods")

	checkoutSessionRequestSchema = envelope.NewSchema(
		"CheckoutSessionRequest",
		productCartField,
		allowedPaymentMethodsField,
		billingAddressField,
		billingCurrencyField,
		confirmField,
		customerField,
		customizationField,
		discountCodeField,
		metadataField,
		returnURLField,
		showSavedPaymentMethodsField,
	)
)

// CheckoutSessionRequest is the body of POST /checkouts.
type CheckoutSessionRequest struct {
	fields envelope.Envelope
}

// NewCheckoutSessionRequest creates a request for the given cart. A nil item
// is sent as a null cart entry and fails Validate.
func NewCheckoutSessionRequest(items ...*ProductItemReq) *CheckoutSessionRequest {
	r := &CheckoutSessionRequest{}
	return r.SetProductCart(items...)
}

// ProductCart returns a fresh copy of the cart. A null entry comes back as a
// nil element.
func (r *CheckoutSessionRequest) ProductCart() ([]*ProductItemReq, bool) {
	return productCartField.Get(&r.fields)
}

func (r *CheckoutSessionRequest) AllowedPaymentMethodTypes() ([]string, bool) {
	return allowedPaymentMethodsField.Get(&r.fields)
}

// BillingAddress returns a copy of the billing address, or false when it is
// absent or null.
func (r *CheckoutSessionRequest) BillingAddress() (*BillingAddress, bool) {
	a, ok := billingAddressField.Get(&r.fields)
	if !ok {
		return nil, false
	}
	return &a, true
}

func (r *CheckoutSessionRequest) BillingCurrency() (money.Currency, bool) {
	return billingCurrencyField.Get(&r.fields)
}

func (r *CheckoutSessionRequest) Confirm() (bool, bool) { return confirmField.Get(&r.fields) }

// Customer returns a copy of the customer, or false when it is absent or null.
func (r *CheckoutSessionRequest) Customer() (*CustomerRequest, bool) {
	c, ok := customerField.Get(&r.fields)
	if !ok {
		return nil, false
	}
	return &c, true
}

func (r *CheckoutSessionRequest) Customization() (*Customization, bool) {
	c, ok := customizationField.Get(&r.fields)
	if !ok {
		return nil, false
	}
	return &c, true
}

func (r *CheckoutSessionRequest) DiscountCode() (string, bool) { return discountCodeField.Get(&r.fields) }
func (r *CheckoutSessionRequest) Metadata() (map[string]string, bool) { return metadataField.Get(&r.fields) }
func (r *CheckoutSessionRequest) ReturnURL() (string, bool) { return returnURLField.Get(&r.fields) }

func (r *CheckoutSessionRequest) ShowSavedPaymentMethods() (bool, bool) {
	return showSavedPaymentMethodsField.Get(&r.fields)
}

// SetProductCart replaces the cart. The items are encoded immediately, so
// later changes to them do not reach r. Nil items are sent as null entries.
func (r *CheckoutSessionRequest) SetProductCart(items ...*ProductItemReq) *CheckoutSessionRequest {
	if items == nil {
		items = []*ProductItemReq{}
	}
	productCartField.Set(&r.fields, items)
	return r
}

// SetAllowedPaymentMethodTypes restricts the payment methods offered on the
// hosted page. Called with no arguments it sends an empty array.
func (r *CheckoutSessionRequest) SetAllowedPaymentMethodTypes(types ...string) *CheckoutSessionRequest {
	if types == nil {
		types = []string{}
	}
	allowedPaymentMethodsField.Set(&r.fields, types)
	return r
}

func (r *CheckoutSessionRequest) SetAllowedPaymentMethodTypesNull() *CheckoutSessionRequest {
	allowedPaymentMethodsField.SetNull(&r.fields)
	return r
}

// SetBillingAddress stores a copy of v. A nil address is sent as null.
func (r *CheckoutSessionRequest) SetBillingAddress(v *BillingAddress) *CheckoutSessionRequest {
	if v == nil {
		return r.SetBillingAddressNull()
	}
	billingAddressField.Set(&r.fields, *v)
	return r
}

func (r *CheckoutSessionRequest) SetBillingAddressNull() *CheckoutSessionRequest {
	billingAddressField.SetNull(&r.fields)
	return r
}

func (r *CheckoutSessionRequest) SetBillingCurrency(v money.Currency) *CheckoutSessionRequest {
	billingCurrencyField.Set(&r.fields, v)
	return r
}

func (r *CheckoutSessionRequest) SetBillingCurrencyNull() *CheckoutSessionRequest {
	billingCurrencyField.SetNull(&r.fields)
	return r
}

func (r *CheckoutSessionRequest) SetConfirm(v bool) *CheckoutSessionRequest {
	confirmField.Set(&r.fields, v)
	return r
}

// SetCustomer stores a copy of v. A nil customer is sent as null.
func (r *CheckoutSessionRequest) SetCustomer(v *CustomerRequest) *CheckoutSessionRequest {
	if v == nil {
		return r.SetCustomerNull()
	}
	customerField.Set(&r.fields, *v)
	return r
}

func (r *CheckoutSessionRequest) SetCustomerNull() *CheckoutSessionRequest {
	customerField.SetNull(&r.fields)
	return r
}

// SetCustomization stores a copy of v. A nil customization is sent as null.
func (r *CheckoutSessionRequest) SetCustomization(v *Customization) *CheckoutSessionRequest {
	if v == nil {
		return r.SetCustomizationNull()
	}
	customizationField.Set(&r.fields, *v)
	return r
}

func (r *CheckoutSessionRequest) SetCustomizationNull() *CheckoutSessionRequest {
	customizationField.SetNull(&r.fields)
	return r
}

func (r *CheckoutSessionRequest) SetDiscountCode(v string) *CheckoutSessionRequest {
	discountCodeField.Set(&r.fields, v)
	return r
}

func (r *CheckoutSessionRequest) SetDiscountCodeNull() *CheckoutSessionRequest {
	discountCodeField.SetNull(&r.fields)
	return r
}

// SetMetadata stores a copy of v. A nil map is sent as null.
func (r *CheckoutSessionRequest) SetMetadata(v map[string]string) *CheckoutSessionRequest {
	metadataField.Set(&r.fields, v)
	return r
}

func (r *CheckoutSessionRequest) SetMetadataNull() *CheckoutSessionRequest {
	metadataField.SetNull(&r.fields)
	return r
}

func (r *CheckoutSessionRequest) SetReturnURL(v string) *CheckoutSessionRequest {
	returnURLField.Set(&r.fields, v)
	return r
}

func (r *CheckoutSessionRequest) SetReturnURLNull() *CheckoutSessionRequest {
	returnURLField.SetNull(&r.fields)
	return r
}

func (r *CheckoutSessionRequest) SetShowSavedPaymentMethods(v bool) *CheckoutSessionRequest {
	showSavedPaymentMethodsField.Set(&r.fields, v)
	return r
}

func (r *CheckoutSessionRequest) Envelope() *envelope.Envelope { return &r.fields }
func (r *CheckoutSessionRequest) Schema() *envelope.Schema { return checkoutSessionRequestSchema }

// Validate reports every missing required field of the request and of its
// nested line items, addons, billing address and customer in one error.
func (r *CheckoutSessionRequest) Validate() error {
	report := checkoutSessionRequestSchema.Report(&r.fields)
	cart, _ := r.ProductCart()
	for i, item := range cart {
		path := fmt.Sprintf("product_cart[%d]", i)
		if item == nil {
			report.Missing = append(report.Missing, path)
			continue
		}
		report.Nest(path, item.Validate())
	}
	if address, ok := r.BillingAddress(); ok {
		report.Nest("billing_address", address.Validate())
	}
	if customer, ok := r.Customer(); ok {
		report.Nest("customer", customer.Validate())
	}
	return report.Err()
}

// Clone returns a deep copy of the request, nested models included.
func (r *CheckoutSessionRequest) Clone() *CheckoutSessionRequest {
	return &CheckoutSessionRequest{fields: *r.fields.Clone()}
}

// Equal reports whether both requests hold the same fields in any order,
// comparing numbers by value.
func (r *CheckoutSessionRequest) Equal(other *CheckoutSessionRequest) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.fields.Equal(&other.fields)
}

func (r CheckoutSessionRequest) MarshalJSON() ([]byte, error) {
	return r.fields.MarshalJSON()
}

func (r *CheckoutSessionRequest) UnmarshalJSON(data []byte) error {
	return checkoutSessionRequestSchema.Decode(data, &r.fields)
}

var (
	sessionIDField   = envelope.Required[string]("session_id")
	checkoutURLField = envelope.Optional[string]("checkout_url")

	checkoutSessionResponseSchema = envelope.NewSchema(
		"CheckoutSessionResponse",
		sessionIDField,
		checkoutURLField,
	)
)

// CheckoutSessionResponse is returned by POST /checkouts. CheckoutURL is
// null until the hosted page is ready.
type CheckoutSessionResponse struct {
	fields envelope.Envelope
}

// NewCheckoutSessionResponse creates a response carrying sessionID.
func NewCheckoutSessionResponse(sessionID string) *CheckoutSessionResponse {
	r := &CheckoutSessionResponse{}
	return r.SetSessionID(sessionID)
}

func (r *CheckoutSessionResponse) SessionID() (string, bool) { return sessionIDField.Get(&r.fields) }
func (r *CheckoutSessionResponse) CheckoutURL() (string, bool) { return checkoutURLField.Get(&r.fields) }

func (r *CheckoutSessionResponse) SetSessionID(v string) *CheckoutSessionResponse {
	sessionIDField.Set(&r.fields, v)
	return r
}

func (r *CheckoutSessionResponse) SetCheckoutURL(v string) *CheckoutSessionResponse {
	checkoutURLField.Set(&r.fields, v)
	return r
}

func (r *CheckoutSessionResponse) SetCheckoutURLNull() *CheckoutSessionResponse {
	checkoutURLField.SetNull(&r.fields)
	return r
}

func (r *CheckoutSessionResponse) Envelope() *envelope.Envelope { return &r.fields }
func (r *CheckoutSessionResponse) Schema() *envelope.Schema { return checkoutSessionResponseSchema }

// Validate reports session_id when it is absent or null.
func (r *CheckoutSessionResponse) Validate() error {
	return checkoutSessionResponseSchema.Validate(&r.fields)
}

func (r *CheckoutSessionResponse) Clone() *CheckoutSessionResponse {
	return &CheckoutSessionResponse{fields: *r.fields.Clone()}
}

func (r *CheckoutSessionResponse) Equal(other *CheckoutSessionResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.fields.Equal(&other.fields)
}

func (r CheckoutSessionResponse) MarshalJSON() ([]byte, error) {
	return r.fields.MarshalJSON()
}

func (r *CheckoutSessionResponse) UnmarshalJSON(data []byte) error {
	return checkoutSessionResponseSchema.Decode(data, &r.fields)
}

var (
	statusIDField            = envelope.Required[string]("id")
	statusCreatedAtField     = envelope.Required[time.Time]("created_at")
	statusCustomerEmailField = envelope.Optional[string]("customer_email")
	statusCustomerNameField  = envelope.Optional[string]("customer_name")
	statusPaymentIDField     = envelope.Optional[string]("payment_id")
	statusPaymentStatusField = envelope.Optional[payment.IntentStatus]("payment_status")

	checkoutSessionStatusSchema = envelope.NewSchema(
		"CheckoutSessionStatus",
		statusIDField,
		statusCreatedAtField,
		statusCustomerEmailField,
		statusCustomerNameField,
		statusPaymentIDField,
		statusPaymentStatusField,
	)
)

// CheckoutSessionStatus is returned by GET /checkouts/{id}. The payment
// fields stay null until the customer pays.
type CheckoutSessionStatus struct {
	fields envelope.Envelope
}

// NewCheckoutSessionStatus creates a status with its required fields set.
// createdAt is stored in UTC.
func NewCheckoutSessionStatus(id string, createdAt time.Time) *CheckoutSessionStatus {
	s := &CheckoutSessionStatus{}
	return s.SetID(id).SetCreatedAt(createdAt)
}

func (s *CheckoutSessionStatus) ID() (string, bool) { return statusIDField.Get(&s.fields) }
func (s *CheckoutSessionStatus) CreatedAt() (time.Time, bool) { return statusCreatedAtField.Get(&s.fields) }
func (s *CheckoutSessionStatus) CustomerEmail() (string, bool) { return statusCustomerEmailField.Get(&s.fields) }
func (s *CheckoutSessionStatus) CustomerName() (string, bool) { return statusCustomerNameField.Get(&s.fields) }
func (s *CheckoutSessionStatus) PaymentID() (string, bool) { return statusPaymentIDField.Get(&s.fields) }

func (s *CheckoutSessionStatus) PaymentStatus() (payment.IntentStatus, bool) {
	return statusPaymentStatusField.Get(&s.fields)
}

// IsPaid reports whether the session's payment succeeded.
func (s *CheckoutSessionStatus) IsPaid() bool {
	status, ok := s.PaymentStatus()
	return ok && status == payment.IntentSucceeded
}

func (s *CheckoutSessionStatus) SetID(v string) *CheckoutSessionStatus {
	statusIDField.Set(&s.fields, v)
	return s
}

func (s *CheckoutSessionStatus) SetCreatedAt(v time.Time) *CheckoutSessionStatus {
	statusCreatedAtField.Set(&s.fields, v.UTC())
	return s
}

func (s *CheckoutSessionStatus) SetCustomerEmail(v string) *CheckoutSessionStatus {
	statusCustomerEmailField.Set(&s.fields, v)
	return s
}

func (s *CheckoutSessionStatus) SetCustomerEmailNull() *CheckoutSessionStatus {
	statusCustomerEmailField.SetNull(&s.fields)
	return s
}

func (s *CheckoutSessionStatus) SetCustomerName(v string) *CheckoutSessionStatus {
	statusCustomerNameField.Set(&s.fields, v)
	return s
}

func (s *CheckoutSessionStatus) SetCustomerNameNull() *CheckoutSessionStatus {
	statusCustomerNameField.SetNull(&s.fields)
	return s
}

func (s *CheckoutSessionStatus) SetPaymentID(v string) *CheckoutSessionStatus {
	statusPaymentIDField.Set(&s.fields, v)
	return s
}

func (s *CheckoutSessionStatus) SetPaymentIDNull() *CheckoutSessionStatus {
	statusPaymentIDField.SetNull(&s.fields)
	return s
}

func (s *CheckoutSessionStatus) SetPaymentStatus(v payment.IntentStatus) *CheckoutSessionStatus {
	statusPaymentStatusField.Set(&s.fields, v)
	return s
}

func (s *CheckoutSessionStatus) SetPaymentStatusNull() *CheckoutSessionStatus {
	statusPaymentStatusField.SetNull(&s.fields)
	return s
}

func (s *CheckoutSessionStatus) Envelope() *envelope.Envelope { return &s.fields }
func (s *CheckoutSessionStatus) Schema() *envelope.Schema { return checkoutSessionStatusSchema }

// Validate reports id and created_at when they are absent or null.
func (s *CheckoutSessionStatus) Validate() error {
	return checkoutSessionStatusSchema.Validate(&s.fields)
}

// Clone returns a deep copy of the status.
func (s *CheckoutSessionStatus) Clone() *CheckoutSessionStatus {
	return &CheckoutSessionStatus{fields: *s.fields.Clone()}
}

func (s *CheckoutSessionStatus) Equal(other *CheckoutSessionStatus) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.fields.Equal(&other.fields)
}

func (s CheckoutSessionStatus) MarshalJSON() ([]byte, error) {
	return s.fields.MarshalJSON()
}

func (s *CheckoutSessionStatus) UnmarshalJSON(data []byte) error {
	return checkoutSessionStatusSchema.Decode(data, &s.fields)
}
