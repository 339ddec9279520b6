// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронный диспетчер событий. Доставка происходит в том же
// кадре, в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам. Список копируется, чтобы
// подписчик мог отписаться прямо из OnEvent.
func (d *Dispatcher) Dispatch(event Event) {
	listeners, exists := d.listeners[event.Type]
	if !exists {
		return
	}
	snapshot := make([]Listener, len(listeners))
	copy(snapshot, listeners)
	for _, listener := range snapshot {
		listener.OnEvent(event)
	}
}
