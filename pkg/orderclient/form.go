// Package orderclient is the order-form side of the shop: it holds the form
// state, computes the estimated price from the fixed table, validates the
// required fields and submits one multipart request to the intake endpoint.
package orderclient

import (
	"fmt"
	"strings"

	"umbaer-craft-backend/internal/pricing"
)

// MaxReferenceImages caps reference attachments; extras are silently
// ignored no matter how they are added.
const MaxReferenceImages = 5

// Attachment is one image to include in the submission.
type Attachment struct {
	Name    string
	Content []byte
}

// Form accumulates one order. Zero value is usable.
type Form struct {
	Name          string
	DiscordID     string
	ServiceTier   string
	Scale         string
	Part          string
	PaymentMethod string

	proof      *Attachment
	references []Attachment
}

// SetServiceTier switches tiers. The figura tier takes over scale and part
// (flat-priced custom model); any other tier drops a scale that it does not
// offer, forcing the user to pick again.
func (f *Form) SetServiceTier(tier string) {
	f.ServiceTier = tier
	if tier == pricing.ScaleFigura {
		f.Scale = pricing.ScaleFigura
		f.Part = ""
		return
	}
	if f.Scale == pricing.ScaleFigura || !pricing.AllowedScale(tier, f.Scale) {
		f.Scale = ""
	}
}

// AddReferences appends reference images up to the cap and returns how many
// were accepted.
func (f *Form) AddReferences(atts ...Attachment) int {
	accepted := 0
	for _, att := range atts {
		if len(f.references) >= MaxReferenceImages {
			break
		}
		f.references = append(f.references, att)
		accepted++
	}
	return accepted
}

// References returns the currently attached reference images.
func (f *Form) References() []Attachment {
	return f.references
}

// SetPaymentProof attaches the payment slip image.
func (f *Form) SetPaymentProof(att Attachment) {
	f.proof = &att
}

// EstimatedPrice computes the price preview from the fixed table. The price
// is never user-supplied.
func (f *Form) EstimatedPrice() int {
	if f.ServiceTier == pricing.ScaleFigura || f.Scale == pricing.ScaleFigura {
		return pricing.FiguraPrice
	}
	part := f.Part
	if part == "" {
		part = pricing.PartFull
	}
	return pricing.ComputePrice(f.Scale, part)
}

// Summary returns the display labels shown on the confirmation dialog.
func (f *Form) Summary() (service, part, price string) {
	if f.Scale == pricing.ScaleFigura {
		return pricing.ScaleName(f.Scale), "Custom 3D", fmt.Sprintf("฿%d", f.EstimatedPrice())
	}
	return pricing.ScaleName(f.Scale), pricing.PartName(f.submittedPart()), fmt.Sprintf("฿%d", f.EstimatedPrice())
}

// FieldError reports one invalid field so callers can render per-field
// feedback.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates every invalid field of one submission attempt.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// Validate checks the required fields. Whitespace-only values count as
// empty. A submission is not sendable until the payment method and the
// payment proof are both set.
func (f *Form) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(f.DiscordID) == "" {
		errs = append(errs, FieldError{Field: "discordId", Message: "required"})
	}
	if f.ServiceTier != pricing.ScaleFigura && strings.TrimSpace(f.Scale) == "" {
		errs = append(errs, FieldError{Field: "scale", Message: "required"})
	}
	if strings.TrimSpace(f.PaymentMethod) == "" {
		errs = append(errs, FieldError{Field: "paymentMethod", Message: "required"})
	}
	if f.proof == nil {
		errs = append(errs, FieldError{Field: "slip", Message: "payment proof image is required"})
	}
	return errs
}

// Reset discards all submission state, previews included.
func (f *Form) Reset() {
	*f = Form{}
}

// submittedPart is the part value placed on the wire: "-" for a custom
// model, "full" when left empty.
func (f *Form) submittedPart() string {
	if f.Scale == pricing.ScaleFigura {
		return "-"
	}
	if f.Part == "" {
		return pricing.PartFull
	}
	return f.Part
}
