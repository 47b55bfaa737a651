package checkout

import (
	"fmt"

	"github.com/amirasaad/dodopayments-go/pkg/envelope"
	"github.com/amirasaad/dodopayments-go/pkg/money"
)

var (
	addonIDField       = envelope.Required[string]("addon_id")
	addonQuantityField = envelope.Required[int]("quantity")

	attachAddonReqSchema = envelope.NewSchema("AttachAddonReq", addonIDField, addonQuantityField)
)

// AttachAddonReq attaches an addon to a product line item.
type AttachAddonReq struct {
	fields envelope.Envelope
}

// NewAttachAddonReq creates an addon attachment with both required fields set.
func NewAttachAddonReq(addonID string, quantity int) *AttachAddonReq {
	a := &AttachAddonReq{}
	return a.SetAddonID(addonID).SetQuantity(quantity)
}

func (a *AttachAddonReq) AddonID() (string, bool) { return addonIDField.Get(&a.fields) }
func (a *AttachAddonReq) Quantity() (int, bool) { return addonQuantityField.Get(&a.fields) }

// SetAddonID sets the addon to attach.
func (a *AttachAddonReq) SetAddonID(v string) *AttachAddonReq {
	addonIDField.Set(&a.fields, v)
	return a
}

// SetQuantity sets how many units of the addon to attach. Zero is a valid
// quantity and is sent as-is.
func (a *AttachAddonReq) SetQuantity(v int) *AttachAddonReq {
	addonQuantityField.Set(&a.fields, v)
	return a
}

func (a *AttachAddonReq) Envelope() *envelope.Envelope { return &a.fields }
func (a *AttachAddonReq) Schema() *envelope.Schema { return attachAddonReqSchema }

// Validate reports addon_id and quantity when they are absent or null.
func (a *AttachAddonReq) Validate() error {
	return attachAddonReqSchema.Validate(&a.fields)
}

// Clone returns a deep copy that shares no storage with a.
func (a *AttachAddonReq) Clone() *AttachAddonReq {
	return &AttachAddonReq{fields: *a.fields.Clone()}
}

// Equal reports whether both attachments hold the same fields. Two nil
// attachments are equal; a nil and a non-nil one are not.
func (a *AttachAddonReq) Equal(other *AttachAddonReq) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.fields.Equal(&other.fields)
}

func (a AttachAddonReq) MarshalJSON() ([]byte, error) {
	return a.fields.MarshalJSON()
}

func (a *AttachAddonReq) UnmarshalJSON(data []byte) error {
	return attachAddonReqSchema.Decode(data, &a.fields)
}

var (
	productIDField       = envelope.Required[string]("product_id")
	productQuantityField = envelope.Required[int]("quantity")
	productAddonsField   = envelope.Optional[[]*AttachAddonReq]("addons")
	productAmountField   = envelope.Optional[money.Amount]("amount")

	productItemReqSchema = envelope.NewSchema(
		"ProductItemReq",
		productIDField,
		productQuantityField,
		productAddonsField,
		productAmountField,
	)
)

// ProductItemReq is one line of a checkout product cart.
//
// Amount is only honoured for pay-what-you-want products and is expressed in
// the smallest currency unit.
type ProductItemReq struct {
	fields envelope.Envelope
}

// NewProductItemReq creates a line item with both required fields set.
func NewProductItemReq(productID string, quantity int) *ProductItemReq {
	p := &ProductItemReq{}
	return p.SetProductID(productID).SetQuantity(quantity)
}

func (p *ProductItemReq) ProductID() (string, bool) { return productIDField.Get(&p.fields) }
func (p *ProductItemReq) Quantity() (int, bool) { return productQuantityField.Get(&p.fields) }
func (p *ProductItemReq) Amount() (money.Amount, bool) { return productAmountField.Get(&p.fields) }

// Addons returns a fresh copy of the attached addons. A null entry in the
// array comes back as a nil element.
func (p *ProductItemReq) Addons() ([]*AttachAddonReq, bool) {
	return productAddonsField.Get(&p.fields)
}

func (p *ProductItemReq) SetProductID(v string) *ProductItemReq {
	productIDField.Set(&p.fields, v)
	return p
}

func (p *ProductItemReq) SetQuantity(v int) *ProductItemReq {
	productQuantityField.Set(&p.fields, v)
	return p
}

// SetAddons replaces the attached addons. Called with no arguments it sends
// an empty array; nil entries are sent as null elements.
func (p *ProductItemReq) SetAddons(addons ...*AttachAddonReq) *ProductItemReq {
	if addons == nil {
		addons = []*AttachAddonReq{}
	}
	productAddonsField.Set(&p.fields, addons)
	return p
}

func (p *ProductItemReq) SetAddonsNull() *ProductItemReq {
	productAddonsField.SetNull(&p.fields)
	return p
}

// SetAmount sets the pay-what-you-want price in the smallest currency unit.
func (p *ProductItemReq) SetAmount(v money.Amount) *ProductItemReq {
	productAmountField.Set(&p.fields, v)
	return p
}

func (p *ProductItemReq) SetAmountNull() *ProductItemReq {
	productAmountField.SetNull(&p.fields)
	return p
}

func (p *ProductItemReq) Envelope() *envelope.Envelope { return &p.fields }
func (p *ProductItemReq) Schema() *envelope.Schema { return productItemReqSchema }

// Validate checks the line item and each attached addon. A null addon entry
// is reported by its index.
func (p *ProductItemReq) Validate() error {
	report := productItemReqSchema.Report(&p.fields)
	addons, _ := p.Addons()
	for i, addon := range addons {
		path := fmt.Sprintf("addons[%d]", i)
		if addon == nil {
			report.Missing = append(report.Missing, path)
			continue
		}
		report.Nest(path, addon.Validate())
	}
	return report.Err()
}

// Clone returns a deep copy, addons included.
func (p *ProductItemReq) Clone() *ProductItemReq {
	return &ProductItemReq{fields: *p.fields.Clone()}
}

// Equal reports whether both line items hold the same fields. Two nil items
// are equal; a nil and a non-nil one are not.
func (p *ProductItemReq) Equal(other *ProductItemReq) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.fields.Equal(&other.fields)
}

func (p ProductItemReq) MarshalJSON() ([]byte, error) {
	return p.fields.MarshalJSON()
}

func (p *ProductItemReq) UnmarshalJSON(data []byte) error {
	return productItemReqSchema.Decode(data, &p.fields)
}
