package notifier_port

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=notifier_port.go -destination=../../mocks/mock_notifier_port.go -package=mocks

// NotifierPort hands a drained outbox event to the real-time delivery
// collaborator. Delivery semantics beyond at-least-once are its problem.
type NotifierPort interface {
	Deliver(ctx context.Context, eventType string, payload []byte) error
}
