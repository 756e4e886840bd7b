package events

// Topic constants for events emitted by the pricing engine.
const (
	TopicPricingCompleted = "pricing.completed"
	TopicVoucherRejected  = "voucher.rejected"
)

// DefaultTopics returns the canonical list of topics notifiers may receive.
func DefaultTopics() []string {
	return []string{
		TopicPricingCompleted,
		TopicVoucherRejected,
	}
}
