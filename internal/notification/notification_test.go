package notification

import (
	"encoding/json"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Notification type", func() {

	var (
		name         string
		err          error
		actualType   Type
		expectedType Type
	)

	JustBeforeEach(func() {
		actualType, err = toNotificationType(name)
	})

	Context("24h reminder", func() {
		BeforeEach(func() {
			name = "reminder_24h"
			expectedType = Reminder24h
		})

		It("should have no err and be converted", func() {
			Expect(actualType).To(Equal(expectedType))
			Expect(err).To(BeNil())
		})
	})

	Context("1h reminder", func() {
		BeforeEach(func() {
			name = "reminder_1h"
			expectedType = Reminder1h
		})

		It("should have no err and be converted", func() {
			Expect(actualType).To(Equal(expectedType))
			Expect(err).To(BeNil())
		})
	})

	Context("15m reminder", func() {
		BeforeEach(func() {
			name = "reminder_15m"
			expectedType = Reminder15m
		})

		It("should have no err and be converted", func() {
			Expect(actualType).To(Equal(expectedType))
			Expect(err).To(BeNil())
		})
	})

	Context("unknown type", func() {
		BeforeEach(func() {
			name = "reminder_5m"
			expectedType = -1
		})

		It("should fail the conversion", func() {
			Expect(actualType).To(Equal(expectedType))
			Expect(err).To(Equal(ErrNoSuchType))
		})
	})

	Context("round trip", func() {
		It("should stringify every known type back to its name", func() {
			for _, o := range offsets {
				parsed, errParse := toNotificationType(o.t.String())
				Expect(errParse).To(BeNil())
				Expect(parsed).To(Equal(o.t))
			}
		})
	})

})

var _ = Describe("Delivery payload decoding", func() {

	It("accepts a payload carrying a known reminder type", func() {
		id := uuid.New()
		b, err := json.Marshal(&DeliveryNotification{
			ID:      id,
			MatchID: uuid.New(),
			UserID:  uuid.New(),
			Type:    Reminder1h.String(),
			Title:   "Coffee chat in 1 hour",
			Body:    "body",
		})
		Expect(err).To(BeNil())

		dn, err := decodeDelivery(b)
		Expect(err).To(BeNil())
		Expect(dn.ID).To(Equal(id))
	})

	It("rejects a payload with an unknown type", func() {
		b, err := json.Marshal(&DeliveryNotification{
			ID:   uuid.New(),
			Type: "reminder_5m",
		})
		Expect(err).To(BeNil())

		_, err = decodeDelivery(b)
		Expect(err).To(MatchError(ErrNoSuchType))
	})

	It("rejects garbage bytes", func() {
		_, err := decodeDelivery([]byte("{not json"))
		Expect(err).NotTo(BeNil())
	})

})
