package ui

import (
	"log"
	"sync"
)

// Level classifies a notification. Info notifications respect the
// use_notifications setting; warnings and errors are always shown.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// NotificationManager handles showing notifications across platforms.
type NotificationManager struct {
	useNotifications bool
	appName          string
	notify           func(title, message string) error
}

// NewNotificationManager creates a new notification manager.
func NewNotificationManager(useNotifications bool, appName string) *NotificationManager {
	n := &NotificationManager{
		useNotifications: useNotifications,
		appName:          appName,
	}
	n.notify = n.platformNotify
	return n
}

// Show displays a desktop notification at the given level.
func (n *NotificationManager) Show(level Level, title, message string) {
	log.Printf("Notification [%s] %s: %s", level, title, message)
	if level == LevelInfo && !n.useNotifications {
		return
	}
	if err := n.notify(title, message); err != nil {
		log.Printf("Error showing notification: %v", err)
	}
}

var (
	globalMu                  sync.RWMutex
	globalNotificationManager *NotificationManager
)

// InitGlobalNotifications initializes the global notification manager.
func InitGlobalNotifications(useNotifications bool, appName string) {
	globalMu.Lock()
	globalNotificationManager = NewNotificationManager(useNotifications, appName)
	globalMu.Unlock()
}

// ShowAdminNotification shows a notification through the global manager,
// or only logs it when the manager is not initialized.
func ShowAdminNotification(level Level, title, message string) {
	globalMu.RLock()
	n := globalNotificationManager
	globalMu.RUnlock()

	if n == nil {
		log.Printf("Notification not shown (manager not initialized) [%s] %s: %s", level, title, message)
		return
	}
	n.Show(level, title, message)
}
