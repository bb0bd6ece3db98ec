// Package domain contains the data structures of the dealer reporting domain
package domain

// Dealer is one row of the bulk sales report. Report rows are immutable once
// loaded; every user-visible change goes through a DealerOverride instead.
type Dealer struct {
	CustomerName  string   `json:"customer_name"`
	Sales         float64  `json:"sales"`
	TotalSales    float64  `json:"total_sales,omitempty"`
	BillingState  string   `json:"billing_state,omitempty"`
	ShippingState string   `json:"shipping_state,omitempty"`
	BillingCity   string   `json:"billing_city,omitempty"`
	ShippingCity  string   `json:"shipping_city,omitempty"`
	BillingZip    string   `json:"billing_zipcode,omitempty"`
	ShippingZip   string   `json:"shipping_zipcode,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	District      string   `json:"district,omitempty"`
}

// StateHint returns the raw state text for this dealer, preferring the
// billing address, before any normalization.
func (d Dealer) StateHint() string {
	if d.BillingState != "" {
		return d.BillingState
	}
	return d.ShippingState
}

// ZipHint returns the zip used for district resolution, preferring billing.
func (d Dealer) ZipHint() string {
	if d.BillingZip != "" {
		return d.BillingZip
	}
	return d.ShippingZip
}

// Clone returns a deep copy so a snapshot cannot alias the live record.
func (d Dealer) Clone() Dealer {
	c := d
	if d.Categories != nil {
		c.Categories = append([]string(nil), d.Categories...)
	}
	return c
}

// DealerOverride is a sparse set of user edits keyed by customer name. Only
// non-nil fields are considered overridden; the override never carries the
// customer name itself because that is the natural key.
type DealerOverride struct {
	Sales         *float64 `json:"sales,omitempty" validate:"omitempty,gte=0"`
	BillingState  *string  `json:"billing_state,omitempty"`
	ShippingState *string  `json:"shipping_state,omitempty"`
	BillingCity   *string  `json:"billing_city,omitempty"`
	ShippingCity  *string  `json:"shipping_city,omitempty"`
	BillingZip    *string  `json:"billing_zipcode,omitempty" validate:"omitempty,numeric,len=6"`
	ShippingZip   *string  `json:"shipping_zipcode,omitempty" validate:"omitempty,numeric,len=6"`
	Categories    []string `json:"categories,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	District      *string  `json:"district,omitempty"`
}

// IsEmpty reports whether the override carries no edits at all.
func (o DealerOverride) IsEmpty() bool {
	return o.Sales == nil &&
		o.BillingState == nil &&
		o.ShippingState == nil &&
		o.BillingCity == nil &&
		o.ShippingCity == nil &&
		o.BillingZip == nil &&
		o.ShippingZip == nil &&
		o.Categories == nil &&
		o.Phone == nil &&
		o.District == nil
}

// Merge combines two overrides, with fields from other taking precedence.
func (o DealerOverride) Merge(other DealerOverride) DealerOverride {
	merged := o
	if other.Sales != nil {
		merged.Sales = other.Sales
	}
	if other.BillingState != nil {
		merged.BillingState = other.BillingState
	}
	if other.ShippingState != nil {
		merged.ShippingState = other.ShippingState
	}
	if other.BillingCity != nil {
		merged.BillingCity = other.BillingCity
	}
	if other.ShippingCity != nil {
		merged.ShippingCity = other.ShippingCity
	}
	if other.BillingZip != nil {
		merged.BillingZip = other.BillingZip
	}
	if other.ShippingZip != nil {
		merged.ShippingZip = other.ShippingZip
	}
	if other.Categories != nil {
		merged.Categories = other.Categories
	}
	if other.Phone != nil {
		merged.Phone = other.Phone
	}
	if other.District != nil {
		merged.District = other.District
	}
	return merged
}

// Apply overlays the override onto a dealer record, field by field. Listing
// the fields explicitly keeps internal bookkeeping out of the merge.
func (o DealerOverride) Apply(d Dealer) Dealer {
	out := d.Clone()
	if o.Sales != nil {
		out.Sales = *o.Sales
		out.TotalSales = *o.Sales
	}
	if o.BillingState != nil {
		out.BillingState = *o.BillingState
	}
	if o.ShippingState != nil {
		out.ShippingState = *o.ShippingState
	}
	if o.BillingCity != nil {
		out.BillingCity = *o.BillingCity
	}
	if o.ShippingCity != nil {
		out.ShippingCity = *o.ShippingCity
	}
	if o.BillingZip != nil {
		out.BillingZip = *o.BillingZip
	}
	if o.ShippingZip != nil {
		out.ShippingZip = *o.ShippingZip
	}
	if o.Categories != nil {
		out.Categories = append([]string(nil), o.Categories...)
	}
	if o.Phone != nil {
		out.Phone = *o.Phone
	}
	if o.District != nil {
		out.District = *o.District
	}
	return out
}

// MergedDealer is a report row after consolidation and override overlay.
// When HasOverride is true, OriginalData holds a snapshot of the record
// before the overlay so edits can be diffed and reverted.
type MergedDealer struct {
	Dealer
	HasOverride  bool    `json:"has_override"`
	OriginalData *Dealer `json:"original_data,omitempty"`
}

// OverriddenFields lists the field names whose merged value differs from the
// pre-override snapshot.
func (m MergedDealer) OverriddenFields() []string {
	if !m.HasOverride || m.OriginalData == nil {
		return nil
	}

	orig := *m.OriginalData
	fields := make([]string, 0, 4)

	if m.Sales != orig.Sales {
		fields = append(fields, "sales")
	}
	if m.BillingState != orig.BillingState {
		fields = append(fields, "billing_state")
	}
	if m.ShippingState != orig.ShippingState {
		fields = append(fields, "shipping_state")
	}
	if m.BillingCity != orig.BillingCity {
		fields = append(fields, "billing_city")
	}
	if m.ShippingCity != orig.ShippingCity {
		fields = append(fields, "shipping_city")
	}
	if m.BillingZip != orig.BillingZip {
		fields = append(fields, "billing_zipcode")
	}
	if m.ShippingZip != orig.ShippingZip {
		fields = append(fields, "shipping_zipcode")
	}
	if m.Phone != orig.Phone {
		fields = append(fields, "phone")
	}
	if m.District != orig.District {
		fields = append(fields, "district")
	}

	return fields
}
