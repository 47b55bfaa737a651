package checkout

import "github.com/amirasaad/dodopayments-go/pkg/envelope"

// Theme selects the hosted checkout colour scheme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// IsKnown reports whether t is one of the documented themes.
func (t Theme) IsKnown() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

var (
	themeField            = envelope.Optional[Theme]("theme")
	showOrderDetailsField = envelope.Optional[bool]("show_order_details")
	showOnDemandTagField  = envelope.Optional[bool]("show_on_demand_tag")

	customizationSchema = envelope.NewSchema(
		"Customization",
		themeField,
		showOrderDetailsField,
		showOnDemandTagField,
	)
)

// Customization tweaks the hosted checkout page.
type Customization struct {
	fields envelope.Envelope
}

func (c *Customization) Theme() (Theme, bool) { return themeField.Get(&c.fields) }
func (c *Customization) ShowOrderDetails() (bool, bool) { return showOrderDetailsField.Get(&c.fields) }
func (c *Customization) ShowOnDemandTag() (bool, bool) { return showOnDemandTagField.Get(&c.fields) }

func (c *Customization) SetTheme(v Theme) *Customization {
	themeField.Set(&c.fields, v)
	return c
}

func (c *Customization) SetShowOrderDetails(v bool) *Customization {
	showOrderDetailsField.Set(&c.fields, v)
	return c
}

func (c *Customization) SetShowOnDemandTag(v bool) *Customization {
	showOnDemandTagField.Set(&c.fields, v)
	return c
}

func (c *Customization) Envelope() *envelope.Envelope { return &c.fields }
func (c *Customization) Schema() *envelope.Schema { return customizationSchema }

// Validate always succeeds; every customization field is optional.
func (c *Customization) Validate() error {
	return customizationSchema.Validate(&c.fields)
}

// Clone returns a deep copy of the customization.
func (c *Customization) Clone() *Customization {
	return &Customization{fields: *c.fields.Clone()}
}

func (c *Customization) Equal(other *Customization) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.fields.Equal(&other.fields)
}

func (c Customization) MarshalJSON() ([]byte, error) {
	return c.fields.MarshalJSON()
}

func (c *Customization) UnmarshalJSON(data []byte) error {
	return customizationSchema.Decode(data, &c.fields)
}
