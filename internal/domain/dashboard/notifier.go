package dashboard

// Category classifies a notification for the surface that renders it.
type Category string

const (
	// CategoryInfo is a neutral status update.
	CategoryInfo Category = "info"
	// CategoryValidation marks input rejected before any network call.
	CategoryValidation Category = "validation"
	// CategoryRemote marks a failed call to a remote service.
	CategoryRemote Category = "remote"
	// CategoryPermission marks a denied or unsupported device capability.
	CategoryPermission Category = "permission"
)

// Notifier receives user-visible notifications, the toast analogue of the
// workflow. Implementations must not block.
type Notifier interface {
	Notify(category Category, message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(category Category, message string)

func (f NotifierFunc) Notify(category Category, message string) { f(category, message) }

// NopNotifier discards every notification.
type NopNotifier struct{}

func (NopNotifier) Notify(Category, string) {}
