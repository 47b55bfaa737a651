package payment_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/amirasaad/dodopayments-go/pkg/envelope"
	"github.com/amirasaad/dodopayments-go/pkg/money"
	"github.com/amirasaad/dodopayments-go/pkg/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const paymentJSON = `{
	"payment_id": "pay_123",
	"business_id": "bus_1",
	"total_amount": 1050,
	"currency": "USD",
	"created_at": "2025-01-15T10:30:00Z",
	"status": "succeeded",
	"customer": {"customer_id": "cus_1", "email": "jane@example.com", "name": "Jane"},
	"checkout_session_id": null,
	"tax": 50,
	"metadata": {"order": "42"},
	"refunds": []
}`

func TestPayment_Decode(t *testing.T) {
	var p payment.Payment
	require.NoError(t, json.Unmarshal([]byte(paymentJSON), &p))
	require.NoError(t, p.Validate())

	id, ok := p.PaymentID()
	require.True(t, ok)
	assert.Equal(t, "pay_123", id)

	created, ok := p.CreatedAt()
	require.True(t, ok)
	assert.True(t, created.Equal(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)))

	status, ok := p.Status()
	require.True(t, ok)
	assert.Equal(t, payment.IntentSucceeded, status)

	customer, ok := p.Customer()
	require.True(t, ok)
	email, _ := customer.Email()
	assert.Equal(t, "jane@example.com", email)

	_, ok = p.CheckoutSessionID()
	assert.False(t, ok)
	assert.Equal(t, envelope.Null, p.Envelope().State("checkout_session_id"))
	assert.Equal(t, envelope.Absent, p.Envelope().State("payment_method"))

	total, ok := p.DisplayTotal()
	require.True(t, ok)
	assert.Equal(t, "10.50 USD", total)

	assert.Equal(t, []string{"refunds"}, p.Schema().Unknown(p.Envelope()))
}

func TestPayment_RoundTripKeepsEveryKey(t *testing.T) {
	var p payment.Payment
	require.NoError(t, json.Unmarshal([]byte(paymentJSON), &p))

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, paymentJSON, string(data))

	var again payment.Payment
	require.NoError(t, json.Unmarshal(data, &again))
	assert.True(t, p.Equal(&again))
}

func TestPayment_Validate(t *testing.T) {
	created := time.Date(2025, 1, 15, 10, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))

	tests := []struct {
		name    string
		payment func() *payment.Payment
		wantErr string
	}{
		{
			name: "complete",
			payment: func() *payment.Payment {
				return payment.New("pay_1", "bus_1", 100, money.EUR, created)
			},
		},
		{
			name:    "empty",
			payment: func() *payment.Payment { return &payment.Payment{} },
			wantErr: "Payment: missing required fields: payment_id, business_id, total_amount, currency, created_at",
		},
		{
			name: "incomplete customer",
			payment: func() *payment.Payment {
				return payment.New("pay_1", "bus_1", 100, money.EUR, created).
					SetCustomer((&payment.CustomerLimitedDetails{}).SetCustomerID("cus_1"))
			},
			wantErr: "Payment: missing required fields: customer.email, customer.name",
		},
		{
			name: "null status is allowed",
			payment: func() *payment.Payment {
				return payment.New("pay_1", "bus_1", 100, money.EUR, created).SetStatusNull().SetTaxNull()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payment().Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
			assert.ErrorIs(t, err, envelope.ErrValidation)
		})
	}
}

func TestPayment_CreatedAtStoredAsUTC(t *testing.T) {
	local := time.Date(2025, 1, 15, 16, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
	p := payment.New("pay_1", "bus_1", 100, money.INR, local)

	assert.Equal(t, "2025-01-15T10:30:00Z", p.Envelope().Lookup("created_at").String())
}

func TestPayment_DisplayTotal(t *testing.T) {
	tests := []struct {
		name string
		p    *payment.Payment
		want string
		ok   bool
	}{
		{"yen", payment.New("p", "b", 5000, money.JPY, time.Now()), "5000 JPY", true},
		{"dinar", payment.New("p", "b", 1500, money.KWD, time.Now()), "1.500 KWD", true},
		{"missing currency", (&payment.Payment{}).SetTotalAmount(10), "", false},
		{"bad currency", payment.New("p", "b", 10, money.Currency("dollars"), time.Now()), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.p.DisplayTotal()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPayment_Clone(t *testing.T) {
	orig := payment.New("pay_1", "bus_1", 100, money.USD, time.Now()).
		SetMetadata(map[string]string{"a": "1"})
	clone := orig.Clone()
	clone.SetStatus(payment.IntentFailed).SetMetadata(map[string]string{"a": "2"})

	_, ok := orig.Status()
	assert.False(t, ok)
	meta, _ := orig.Metadata()
	assert.Equal(t, "1", meta["a"])
}

func TestPayment_NilArgumentsStoreNull(t *testing.T) {
	p := payment.New("pay_1", "bus_1", 100, money.USD, time.Now())
	require.NotPanics(t, func() { p.SetCustomer(nil).SetMetadata(nil) })

	assert.Equal(t, envelope.Null, p.Envelope().State("customer"))
	assert.Equal(t, envelope.Null, p.Envelope().State("metadata"))
	_, ok := p.Customer()
	assert.False(t, ok)
	assert.NoError(t, p.Validate())
}

func TestPayment_EqualNil(t *testing.T) {
	p := payment.New("pay_1", "bus_1", 100, money.USD, time.Now())
	assert.False(t, p.Equal(nil))
	assert.False(t, payment.NewCustomerLimitedDetails("cus_1", "a@b.c", "A").Equal(nil))

	var none *payment.Payment
	assert.True(t, none.Equal(nil))
}

func TestIntentStatus(t *testing.T) {
	tests := []struct {
		status   payment.IntentStatus
		known    bool
		terminal bool
	}{
		{payment.IntentSucceeded, true, true},
		{payment.IntentFailed, true, true},
		{payment.IntentCancelled, true, true},
		{payment.IntentProcessing, true, false},
		{payment.IntentRequiresCapture, true, false},
		{payment.IntentPartiallyCapturedAndCapturable, true, false},
		{payment.IntentStatus("disputed"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.known, tt.status.IsKnown())
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
		})
	}
}
