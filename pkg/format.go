package pkg

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vixinox/ecommerce-application-sub000/internal/domain/entities"
)

const (
	DefaultCurrency = "CNY"
	DefaultLocale   = "zh-CN"
)

// FormatPrice renders a monetary amount with the currency's symbol under the
// given locale. Negative amounts are clamped to zero; empty code/locale fall
// back to the storefront defaults.
func FormatPrice(amount float64, currencyCode, locale string) string {
	if amount < 0 {
		amount = 0
	}
	if currencyCode == "" {
		currencyCode = DefaultCurrency
	}
	if locale == "" {
		locale = DefaultLocale
	}

	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return fmt.Sprintf("%s %.2f", currencyCode, amount)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.SimplifiedChinese
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(amount)))
}

// FormatTimeRemaining renders a countdown in m:ss, clamping negatives to 0:00.
func FormatTimeRemaining(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// PaymentProgress returns the share (0 to 100) of the payment window an order
// still has left, for the list view's progress bars.
func PaymentProgress(po entities.PendingOrder) float64 {
	if po.InitialDuration <= 0 {
		return 0
	}
	progress := float64(po.TimeRemaining) / float64(po.InitialDuration) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
