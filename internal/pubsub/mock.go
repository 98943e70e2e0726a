package pubsub

import (
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// MockClient is a mock implementation of the PubSubClient interface.
type MockClient struct {
	mu sync.Mutex

	SendMessageFunc  func(topic string, data any) error
	SendMessageCalls []SendMessageCall

	projectID string
}

type SendMessageCall struct {
	Topic string
	Data  any
}

// NewMock creates a new mock instance.
func NewMock(projectID string) *MockClient {
	return &MockClient{projectID: projectID}
}

func (m *MockClient) SendMessage(topic string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMessageCalls = append(m.SendMessageCalls, SendMessageCall{Topic: topic, Data: data})
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(topic, data)
	}
	return nil
}

func (m *MockClient) ProcessMessage(data []byte, returnValue any) error {
	return msgpack.Unmarshal(data, returnValue)
}
