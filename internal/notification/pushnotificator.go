package notification

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

type PushNotificator struct {
	// device token lookup / FCM client wiring goes here
}

func (pn *PushNotificator) Send(n *DeliveryNotification) error {
	log.Info().Msg(fmt.Sprintf("Sent a push notification %q to user %s", n.Title, n.UserID))
	return nil
}

func (pn *PushNotificator) Channel() Channel {
	return Push
}
