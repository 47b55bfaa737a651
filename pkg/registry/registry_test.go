package registry

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/amirasaad/dodopayments-go/pkg/checkout"
	"github.com/amirasaad/dodopayments-go/pkg/envelope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseFactory() Model { return &checkout.CheckoutSessionResponse{} }

func TestNewRegistry(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	registry := New()
	assert.NotNil(registry)
	assert.Equal(0, registry.Count())
	assert.Empty(registry.Names())
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	registry := New()
	assert.NoError(registry.Register("CheckoutSessionResponse", responseFactory))
	assert.True(registry.IsRegistered("CheckoutSessionResponse"))

	// Duplicate names are rejected
	err := registry.Register("CheckoutSessionResponse", responseFactory)
	assert.True(errors.Is(err, ErrAlreadyRegistered))

	assert.Error(registry.Register("", responseFactory))
	assert.Error(registry.Register("Nil", nil))
	assert.Equal(1, registry.Count())
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	t.Parallel()

	registry := New()
	registry.MustRegister("A", responseFactory)
	assert.Panics(t, func() { registry.MustRegister("A", responseFactory) })
}

func TestRegistry_New(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	registry := New()
	registry.MustRegister("CheckoutSessionResponse", responseFactory)

	first, err := registry.New("CheckoutSessionResponse")
	assert.NoError(err)
	second, err := registry.New("CheckoutSessionResponse")
	assert.NoError(err)
	assert.NotSame(first, second, "every call returns a fresh model")
	assert.Equal(0, first.Envelope().Len())

	_, err = registry.New("Refund")
	assert.True(errors.Is(err, ErrNotFound))
}

func TestRegistry_Unregister(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	registry := New()
	registry.MustRegister("A", responseFactory)

	assert.True(registry.Unregister("A"))
	assert.False(registry.Unregister("A"))
	assert.False(registry.IsRegistered("A"))
}

func TestRegistry_Decode(t *testing.T) {
	t.Parallel()

	registry := New()
	registry.MustRegister("CheckoutSessionResponse", responseFactory)

	m, err := registry.Decode("CheckoutSessionResponse", []byte(`{"session_id":"s","checkout_url":null}`))
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, envelope.Null, m.Envelope().State("checkout_url"))

	resp, ok := m.(*checkout.CheckoutSessionResponse)
	require.True(t, ok)
	id, _ := resp.SessionID()
	assert.Equal(t, "s", id)

	_, err = registry.Decode("CheckoutSessionResponse", []byte(`[1,2]`))
	assert.ErrorIs(t, err, envelope.ErrMalformed)

	_, err = registry.Decode("Missing", []byte(`{}`))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := New()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("model-%d", i)
			assert.NoError(t, registry.Register(name, responseFactory))
			_, err := registry.New(name)
			assert.NoError(t, err)
			_ = registry.Names()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 20, registry.Count())
}

func TestDefault(t *testing.T) {
	t.Parallel()

	registry := Default()
	assert.NotSame(t, registry, Default())
	assert.Equal(t, []string{
		"AttachAddonReq",
		"BillingAddress",
		"CheckoutSessionRequest",
		"CheckoutSessionResponse",
		"CheckoutSessionStatus",
		"CustomerLimitedDetails",
		"CustomerRequest",
		"Customization",
		"Payment",
		"ProductItemReq",
	}, registry.Names())

	for _, name := range registry.Names() {
		m, err := registry.New(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.Schema().Name(), "registry name matches schema name")
	}
}

func TestDefault_IsNotShared(t *testing.T) {
	t.Parallel()

	mine := Default()
	require.True(t, mine.Unregister("Payment"))
	require.NoError(t, mine.Register("Refund", responseFactory))

	fresh := Default()
	assert.True(t, fresh.IsRegistered("Payment"))
	assert.False(t, fresh.IsRegistered("Refund"))
	assert.Equal(t, mine.Count(), fresh.Count())
}
