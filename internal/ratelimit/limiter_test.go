package ratelimit_test

import (
	"context"
	"fmt"
	"time"

	"github.com/beanmeet/beanmeet-api/internal/ratelimit"
	"github.com/beanmeet/beanmeet-api/internal/ratelimit/ratelimitmocks"
	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Fixed window limiter", func() {

	var (
		ctrl      *gomock.Controller
		mockStore *ratelimitmocks.MockCounterStore
		limiter   *ratelimit.Limiter
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockStore = ratelimitmocks.NewMockCounterStore(ctrl)
		limiter = ratelimit.NewLimiter(mockStore, 30, time.Minute)
	})

	It("allows callers under the cap", func() {
		mockStore.EXPECT().Incr(gomock.Any(), gomock.Any(), time.Minute).Return(int64(1), nil).Times(1)

		allowed, err := limiter.Allow(context.Background(), "10.0.0.1")
		Expect(err).To(BeNil())
		Expect(allowed).To(BeTrue())
	})

	It("allows the caller sitting exactly on the cap", func() {
		mockStore.EXPECT().Incr(gomock.Any(), gomock.Any(), time.Minute).Return(int64(30), nil).Times(1)

		allowed, err := limiter.Allow(context.Background(), "10.0.0.1")
		Expect(err).To(BeNil())
		Expect(allowed).To(BeTrue())
	})

	It("rejects callers over the cap", func() {
		mockStore.EXPECT().Incr(gomock.Any(), gomock.Any(), time.Minute).Return(int64(31), nil).Times(1)

		allowed, err := limiter.Allow(context.Background(), "10.0.0.1")
		Expect(err).To(BeNil())
		Expect(allowed).To(BeFalse())
	})

	It("opens the gate when the counter store fails", func() {
		mockStore.EXPECT().Incr(gomock.Any(), gomock.Any(), time.Minute).
			Return(int64(0), fmt.Errorf("redis is down")).Times(1)

		allowed, err := limiter.Allow(context.Background(), "10.0.0.1")
		Expect(err).To(HaveOccurred())
		Expect(allowed).To(BeTrue())
	})

	It("clamps sub-second windows to one second", func() {
		limiter = ratelimit.NewLimiter(mockStore, 30, 100*time.Millisecond)
		mockStore.EXPECT().Incr(gomock.Any(), gomock.Any(), time.Second).Return(int64(1), nil).Times(1)

		allowed, err := limiter.Allow(context.Background(), "10.0.0.1")
		Expect(err).To(BeNil())
		Expect(allowed).To(BeTrue())
	})

	It("keys counters by caller", func() {
		var keys []string
		mockStore.EXPECT().Incr(gomock.Any(), gomock.Any(), time.Minute).
			DoAndReturn(func(_ context.Context, key string, _ time.Duration) (int64, error) {
				keys = append(keys, key)
				return 1, nil
			}).Times(2)

		_, _ = limiter.Allow(context.Background(), "10.0.0.1")
		_, _ = limiter.Allow(context.Background(), "10.0.0.2")
		Expect(keys[0]).NotTo(Equal(keys[1]))
		Expect(keys[0]).To(ContainSubstring("10.0.0.1"))
	})

})
