package testutil

import (
	"context"
)

// MockEngineCaller records forwarded payloads and fails on demand.
type MockEngineCaller struct {
	ForwardedEvents [][]byte
	Err             error
}

func (m *MockEngineCaller) ForwardEvents(ctx context.Context, events []byte) error {
	m.ForwardedEvents = append(m.ForwardedEvents, append([]byte{}, events...))
	return m.Err
}
