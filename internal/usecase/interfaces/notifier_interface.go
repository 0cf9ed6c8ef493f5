package interfaces

//go:generate mockgen -source=notifier_interface.go -destination=mocks/mock_notifier.go -package=mocks

// INotifier receives the user-visible messages the coordinator produces
// (fetch/cancel/payment outcomes, informational hints). Implementations relay
// them to whatever surface the deployment uses; the default just logs.
//
// Detail may be empty. Neither method is allowed to block.
type INotifier interface {
	Info(message, detail string)
	Success(message, detail string)
	Warning(message, detail string)
	Error(message, detail string)
}
