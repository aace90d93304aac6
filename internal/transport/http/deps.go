package http

import (
	"github.com/chatwith-notifications/internal/application/notification"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	NotificationRepo notification.Repository
}
