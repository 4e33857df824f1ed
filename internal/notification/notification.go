package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Type int8

const (
	Reminder24h Type = iota
	Reminder1h
	Reminder15m
)

var ErrNoSuchType = fmt.Errorf("no such notification type exists")

// offsets holds the lead time before the meeting for each reminder, longest
// first so the planned instants come out ordered.
var offsets = []struct {
	t    Type
	lead time.Duration
}{
	{Reminder24h, 1440 * time.Minute},
	{Reminder1h, 60 * time.Minute},
	{Reminder15m, 15 * time.Minute},
}

func (t Type) String() string {
	switch t {
	case Reminder24h:
		return "reminder_24h"
	case Reminder1h:
		return "reminder_1h"
	case Reminder15m:
		return "reminder_15m"
	}
	return "unknown"
}

func toNotificationType(s string) (Type, error) {
	switch s {
	case "reminder_24h":
		return Reminder24h, nil
	case "reminder_1h":
		return Reminder1h, nil
	case "reminder_15m":
		return Reminder15m, nil
	default:
		return -1, ErrNoSuchType
	}
}

const fallbackPartnerName = "your coffee chat partner"

func reminderTitle(t Type) string {
	switch t {
	case Reminder24h:
		return "Coffee chat tomorrow"
	case Reminder1h:
		return "Coffee chat in 1 hour"
	case Reminder15m:
		return "Coffee chat in 15 minutes"
	}
	return "Coffee chat reminder"
}

func reminderBody(t Type, partnerName, cafeName, startTime string) string {
	if partnerName == "" {
		partnerName = fallbackPartnerName
	}
	switch t {
	case Reminder24h:
		return fmt.Sprintf("You are meeting %s tomorrow at %s, %s.", partnerName, startTime, cafeName)
	case Reminder1h:
		return fmt.Sprintf("Your coffee chat with %s starts at %s, %s.", partnerName, startTime, cafeName)
	case Reminder15m:
		return fmt.Sprintf("%s is waiting soon at %s. See you there!", partnerName, cafeName)
	}
	return fmt.Sprintf("Upcoming coffee chat with %s at %s.", partnerName, cafeName)
}

// DeliveryNotification is the payload handed from the dispatcher to the
// delivery workers over the wire.
type DeliveryNotification struct {
	ID      uuid.UUID `json:"id"`
	MatchID uuid.UUID `json:"match_id"`
	UserID  uuid.UUID `json:"user_id"`
	Type    string    `json:"type"`
	Title   string    `json:"title"`
	Body    string    `json:"body"`
}
