package models

type ToastType string

const (
	ToastError   ToastType = "error"
	ToastSuccess ToastType = "success"
	ToastInfo    ToastType = "info"
)

// ToastMessage is a transient user notification. The view layer drops it
// after a fixed display duration.
type ToastMessage struct {
	Type    ToastType
	Message string
}
