package ports

// Event est un événement de lecture diffusé aux observateurs (SSE).
type Event struct {
	Topic   string
	Payload []byte
}

type EventBus interface {
	Publish(topic string, payload []byte)
	Subscribe() (ch <-chan Event, cancel func())
}
