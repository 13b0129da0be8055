package session

import (
	"sync"
	"time"
)

// Notices хранит последнее уведомление для UI.
// Реализует submit_booking.Notifier; предупреждения о выборе публикует Session.Tap.
type Notices struct {
	timeProvider TimeProvider

	mu   sync.Mutex
	last *Notice
}

// NewNotices создает пустую доску уведомлений
func NewNotices() *Notices {
	return &Notices{timeProvider: &RealTimeProvider{}}
}

// Success сохраняет сообщение об успехе
func (n *Notices) Success(message string) {
	n.post(NoticeSuccess, message)
}

// Failure сохраняет сообщение об ошибке
func (n *Notices) Failure(message string) {
	n.post(NoticeError, message)
}

// Warning сохраняет предупреждение
func (n *Notices) Warning(message string) {
	n.post(NoticeWarning, message)
}

// Take возвращает последнее уведомление и очищает его
func (n *Notices) Take() *Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	last := n.last
	n.last = nil
	return last
}

func (n *Notices) post(kind NoticeKind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.last = &Notice{Kind: kind, Message: message, At: n.now()}
}

func (n *Notices) now() time.Time {
	if n.timeProvider == nil {
		return time.Now()
	}
	return n.timeProvider.Now()
}
