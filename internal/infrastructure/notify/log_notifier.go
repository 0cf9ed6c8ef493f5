package notify

import (
	"log"

	"github.com/vixinox/ecommerce-application-sub000/internal/usecase/interfaces"
)

// LogNotifier writes coordinator notifications to the process log. Deployments
// with a real toast/push channel substitute their own INotifier.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func NewLogNotifier() LogNotifier {
	return LogNotifier{}
}

func (LogNotifier) Info(message, detail string) {
	log.Printf("[pending][notify] info msg=%q detail=%q", message, detail)
}

func (LogNotifier) Success(message, detail string) {
	log.Printf("[pending][notify] success msg=%q detail=%q", message, detail)
}

func (LogNotifier) Warning(message, detail string) {
	log.Printf("[pending][notify] warning msg=%q detail=%q", message, detail)
}

func (LogNotifier) Error(message, detail string) {
	log.Printf("[pending][notify] error msg=%q detail=%q", message, detail)
}
