package nsq

// Topics published by the marketplace API.
const (
	TopicCreditApplied        = "credits.applied"
	TopicNewsletterSubscribed = "newsletter.subscribed"
)
