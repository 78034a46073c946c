package entity

import (
	"time"
)

type NoticeLevel string

const (
	NoticeLevelSuccess NoticeLevel = "success"
	NoticeLevelError   NoticeLevel = "error"
)

// Notice is one transient user-facing notification. At most one notice
// is active at a time; a new one replaces whatever is shown.
type Notice struct {
	Level     NoticeLevel `json:"level"`
	Message   string      `json:"message"`
	CreatedAt time.Time   `json:"created_at"`
}

// NoticeEvent is the message published to the notification queue for
// the downstream consumer.
type NoticeEvent struct {
	UserID  int64       `json:"user_id"`
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
	Source  string      `json:"source"`
	SentAt  time.Time   `json:"sent_at"`
}
