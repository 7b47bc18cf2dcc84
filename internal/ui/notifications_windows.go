//go:build windows

package ui

import (
	"log"
	"strings"

	"github.com/go-toast/toast"
)

func (n *NotificationManager) platformNotify(title, message string) error {
	notification := toast.Notification{
		AppID:   n.appName,
		Title:   title,
		Message: message,
	}

	if err := notification.Push(); err != nil {
		if strings.Contains(err.Error(), "notification platform is unavailable") {
			log.Println("Toast notification failed: platform unavailable (notifications might be disabled in Windows Settings).")
		}
		return err
	}
	return nil
}
