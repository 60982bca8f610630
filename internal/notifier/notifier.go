package notifier

import (
	"log"

	config "github.com/wamisho-d/ecommerece/configs"
	"github.com/wamisho-d/ecommerece/internal/models"
)

// Notifier sends order confirmations over SMS and email. Both channels are
// best effort: failures are logged and never surfaced to the customer.
type Notifier struct {
	sms   config.AfricaTalkingConfig
	email config.EmailConfig
}

func New(sms config.AfricaTalkingConfig, email config.EmailConfig) *Notifier {
	return &Notifier{sms: sms, email: email}
}

// OrderPlaced fires the confirmation messages in the background so the
// response to the customer is not held up by external gateways.
func (n *Notifier) OrderPlaced(customer models.Customer, orderID uint, totalAmount float64) {

	go func() {
		if err := n.SendSMS(customer.PhoneNumber, orderID, totalAmount); err != nil {
			log.Printf("Failed to send SMS for order %d to %s: %v", orderID, customer.PhoneNumber, err)
		}
	}()

	go func() {
		if err := n.SendEmail(customer.Email, customer.Name, orderID, totalAmount); err != nil {
			log.Printf("Failed to send email for order %d to %s: %v", orderID, customer.Email, err)
		}
	}()
}
