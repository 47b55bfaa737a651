package registry

import (
	"github.com/amirasaad/dodopayments-go/pkg/checkout"
	"github.com/amirasaad/dodopayments-go/pkg/payment"
)

// Default returns a new registry of every checkout and payment model, keyed
// by type name. Each call builds its own registry, so callers may register or
// unregister models without affecting one another.
func Default() *Registry {
	r := New()
	r.MustRegister("AttachAddonReq", func() Model { return &checkout.AttachAddonReq{} })
	r.MustRegister("BillingAddress", func() Model { return &checkout.BillingAddress{} })
	r.MustRegister("CheckoutSessionRequest", func() Model { return &checkout.CheckoutSessionRequest{} })
	r.MustRegister("CheckoutSessionResponse", func() Model { return &checkout.CheckoutSessionResponse{} })
	r.MustRegister("CheckoutSessionStatus", func() Model { return &checkout.CheckoutSessionStatus{} })
	r.MustRegister("CustomerLimitedDetails", func() Model { return &payment.CustomerLimitedDetails{} })
	r.MustRegister("CustomerRequest", func() Model { return &checkout.CustomerRequest{} })
	r.MustRegister("Customization", func() Model { return &checkout.Customization{} })
	r.MustRegister("Payment", func() Model { return &payment.Payment{} })
	r.MustRegister("ProductItemReq", func() Model { return &checkout.ProductItemReq{} })
	return r
}
