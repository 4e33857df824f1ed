package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/beanmeet/beanmeet-api/internal/storage"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// flakyUpcomingStore fails the list call with the queued errors before
// serving the configured matches, recording every insert.
type flakyUpcomingStore struct {
	listErrs []error
	matches  []*storage.Match
	inserted []*storage.Notification
}

func (f *flakyUpcomingStore) ListConfirmedByDates(_ context.Context, _ []string) ([]*storage.Match, error) {
	if len(f.listErrs) > 0 {
		err := f.listErrs[0]
		f.listErrs = f.listErrs[1:]
		return nil, err
	}
	return f.matches, nil
}

func (f *flakyUpcomingStore) InsertNotification(_ context.Context, n *storage.Notification) error {
	f.inserted = append(f.inserted, n)
	return nil
}

var _ = Describe("Upcoming poll window", func() {

	var (
		windowStart time.Time
		windowEnd   time.Time
	)

	BeforeEach(func() {
		windowStart = time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
		windowEnd = windowStart.Add(30 * time.Minute)
	})

	It("excludes the left edge", func() {
		Expect(inWindow(windowStart, windowStart, windowEnd)).To(BeFalse())
	})

	It("includes the right edge", func() {
		Expect(inWindow(windowEnd, windowStart, windowEnd)).To(BeTrue())
	})

	It("includes instants inside", func() {
		Expect(inWindow(windowStart.Add(time.Minute), windowStart, windowEnd)).To(BeTrue())
	})

	It("excludes instants outside", func() {
		Expect(inWindow(windowEnd.Add(time.Second), windowStart, windowEnd)).To(BeFalse())
		Expect(inWindow(windowStart.Add(-time.Second), windowStart, windowEnd)).To(BeFalse())
	})

	It("covers every start time across two adjacent windows exactly once", func() {
		next := windowEnd.Add(30 * time.Minute)
		for m := 1; m <= 60; m++ {
			at := windowStart.Add(time.Duration(m) * time.Minute)
			first := inWindow(at, windowStart, windowEnd)
			second := inWindow(at, windowEnd, next)
			Expect(first != second).To(BeTrue(), "minute %d should fall in exactly one window", m)
		}
	})

})

var _ = Describe("Upcoming poll recovery", func() {

	var (
		base  time.Time
		store *flakyUpcomingStore
		us    *UpcomingService
	)

	BeforeEach(func() {
		base = time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
		store = &flakyUpcomingStore{
			listErrs: []error{fmt.Errorf("db unavailable")},
			matches: []*storage.Match{
				{
					ID:          uuid.New(),
					UserA:       uuid.New(),
					UserB:       uuid.New(),
					MeetingDate: "2026-09-10",
					StartTime:   "15:15",
					Status:      "confirmed",
				},
			},
		}
		us = &UpcomingService{
			store:        store,
			fallbackZone: time.UTC,
			lead:         3 * time.Hour,
			interval:     30 * time.Minute,
			lastTick:     base,
		}
	})

	It("sweeps a window lost to a transient list error into the next tick", func() {
		// the match at 15:15 falls inside the first tick's window
		us.runOnce(context.Background(), base.Add(30*time.Minute))
		Expect(store.inserted).To(BeEmpty())

		us.runOnce(context.Background(), base.Add(60*time.Minute))
		Expect(store.inserted).To(HaveLen(2))
	})

	It("does not announce the recovered match a second time", func() {
		us.runOnce(context.Background(), base.Add(30*time.Minute))
		us.runOnce(context.Background(), base.Add(60*time.Minute))
		us.runOnce(context.Background(), base.Add(90*time.Minute))
		Expect(store.inserted).To(HaveLen(2))
	})

})

var _ = Describe("Candidate dates", func() {

	It("spans the day before and after the window end", func() {
		dates := candidateDates(time.Date(2026, 9, 10, 23, 30, 0, 0, time.UTC))
		Expect(dates).To(Equal([]string{"2026-09-09", "2026-09-10", "2026-09-11"}))
	})

})

var _ = Describe("Cafe name", func() {

	It("strips the extra payload after the delimiter", func() {
		Expect(CafeName("Blue Bottle Gangnam|37.4979,127.0276|extra")).To(Equal("Blue Bottle Gangnam"))
	})

	It("passes plain names through", func() {
		Expect(CafeName("Blue Bottle Gangnam")).To(Equal("Blue Bottle Gangnam"))
	})

	It("handles empty locations", func() {
		Expect(CafeName("")).To(Equal(""))
	})

})
