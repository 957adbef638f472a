//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"time"
)

// Message is a broker-agnostic envelope for an outgoing notification.
type Message struct {
	ID        string
	Type      string
	Timestamp time.Time
	Body      []byte
}

// Publisher delivers messages to interested parties outside the process.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}
