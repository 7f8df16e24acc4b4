package models

// OrderSubmission is the text portion of one multipart order request. It
// lives only for the duration of the request; nothing is persisted.
type OrderSubmission struct {
	// Name is the customer display name.
	Name string
	// DiscordID is the contact handle: either a numeric snowflake that can
	// be resolved to an account, or an opaque display tag.
	DiscordID string
	// Scale is the resolution bucket, or "figura" for a custom model.
	Scale string
	// Part is which portion of the skin is commissioned (full/head/body).
	Part string
	// Price is the client-computed amount, passed through verbatim into the
	// ticket summary.
	Price string
	// PaymentMethod is the payment channel chosen at confirmation time.
	PaymentMethod string
}
