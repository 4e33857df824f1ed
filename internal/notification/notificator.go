package notification

type Channel int8

const (
	Push Channel = iota
	Email
)

func (c Channel) String() string {
	switch c {
	case Push:
		return "push"
	case Email:
		return "email"
	}
	return "unknown"
}

type Notificator interface {
	Send(n *DeliveryNotification) error
	Channel() Channel
}

// DelegatingNotificator fans a reminder out to every configured channel.
type DelegatingNotificator struct {
	Notificators []Notificator
}

func (dn *DelegatingNotificator) DelegateNotification(n *DeliveryNotification) error {
	var firstErr error
	for _, nt := range dn.Notificators {
		if err := nt.Send(n); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
