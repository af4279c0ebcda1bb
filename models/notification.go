package models

// NotificationKind distinguishes the outbound email variants.
type NotificationKind string

const (
	NotificationCustomer NotificationKind = "customer"
	NotificationOperator NotificationKind = "operator"
	NotificationContact  NotificationKind = "contact"
)

// NotificationMessage is an outbound transactional email. It is never persisted.
type NotificationMessage struct {
	Kind     NotificationKind
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
}
