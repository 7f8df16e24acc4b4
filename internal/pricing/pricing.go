package pricing

// Scale identifiers accepted by the order form. ScaleFigura is the
// custom-model marker: it bypasses the (scale, part) table entirely.
const (
	ScaleFigura = "figura"

	PartFull = "full"
	PartHead = "head"
	PartBody = "body"
)

const (
	// FiguraPrice is the flat price for a custom Figura model commission.
	FiguraPrice = 100
	// DefaultPrice is returned for any (scale, part) pair missing from the
	// table. This is a documented fallback, not an error.
	DefaultPrice = 30
)

// prices maps scale -> part -> THB amount.
var prices = map[string]map[string]int{
	"64":   {PartFull: 30, PartHead: 15, PartBody: 15},
	"128":  {PartFull: 40, PartHead: 20, PartBody: 20},
	"512":  {PartFull: 140, PartHead: 70, PartBody: 70},
	"1024": {PartFull: 200, PartHead: 110, PartBody: 110},
	"2048": {PartFull: 280, PartHead: 150, PartBody: 150},
	ScaleFigura: {PartFull: FiguraPrice, PartHead: FiguraPrice, PartBody: FiguraPrice},
}

// tierScales maps a service tier to the scales it offers. The figura tier
// offers none: it is flat-priced and skips scale selection.
var tierScales = map[string][]string{
	"standard": {"64", "128"},
	"hd":       {"256", "512"},
	"ultra-hd": {"1024", "2048"},
	ScaleFigura: {},
}

// ComputePrice returns the price for a (scale, part) pair. The figura marker
// always yields the flat price regardless of part.
func ComputePrice(scale, part string) int {
	if scale == ScaleFigura {
		return FiguraPrice
	}
	if parts, ok := prices[scale]; ok {
		if price, ok := parts[part]; ok {
			return price
		}
	}
	return DefaultPrice
}

// TierScales returns the scales offered by a service tier, or nil for an
// unknown tier.
func TierScales(tier string) []string {
	scales, ok := tierScales[tier]
	if !ok {
		return nil
	}
	return scales
}

// AllowedScale reports whether a scale may be selected under a service tier.
func AllowedScale(tier, scale string) bool {
	for _, s := range TierScales(tier) {
		if s == scale {
			return true
		}
	}
	return false
}

var scaleNames = map[string]string{
	"64":        "64x64",
	"128":       "128x128",
	"512":       "512x512",
	"1024":      "1024x1024",
	"2048":      "2048x2048",
	ScaleFigura: "Figura Model",
}

var partNames = map[string]string{
	PartFull: "ทั้งตัว",
	PartHead: "หัว",
	PartBody: "ตัว",
	"-":      "-",
}

var methodNames = map[string]string{
	"promptpay": "PromptPay",
	"bank":      "โอนผ่านธนาคาร",
	"truemoney": "True Money Wallet",
}

// ScaleName returns the display label for a scale, falling back to the raw
// value when unknown.
func ScaleName(scale string) string {
	if name, ok := scaleNames[scale]; ok {
		return name
	}
	return scale
}

// PartName returns the display label for a part, falling back to the raw
// value when unknown.
func PartName(part string) string {
	if name, ok := partNames[part]; ok {
		return name
	}
	return part
}

// MethodName returns the display label for a payment method, falling back to
// the raw value when unknown.
func MethodName(method string) string {
	if name, ok := methodNames[method]; ok {
		return name
	}
	return method
}
