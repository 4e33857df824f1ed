package notification

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

type EmailNotificator struct {
	// SMTP / mail provider wiring goes here
}

func (en *EmailNotificator) Send(n *DeliveryNotification) error {
	log.Info().Msg(fmt.Sprintf("Sent an email notification %q to user %s", n.Title, n.UserID))
	return nil
}

func (en *EmailNotificator) Channel() Channel {
	return Email
}
