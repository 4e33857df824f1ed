package places_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/beanmeet/beanmeet-api/internal/places"
	"github.com/beanmeet/beanmeet-api/internal/places/placesmocks"
	"github.com/golang/mock/gomock"
	"github.com/julienschmidt/httprouter"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Places endpoint", func() {

	var (
		endpoint  *places.Endpoint
		mockedSvc *placesmocks.MockAutocompleter
		ctrl      *gomock.Controller
		router    *httprouter.Router
		rr        *httptest.ResponseRecorder
		target    string
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockedSvc = placesmocks.NewMockAutocompleter(ctrl)
		endpoint = places.NewEndpoint(mockedSvc)

		router = httprouter.New()
		router.GET("/api/places/autocomplete", endpoint.Autocomplete)
	})

	JustBeforeEach(func() {
		req, _ := http.NewRequest("GET", target, nil)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)
	})

	Context("happy path, 200", func() {
		BeforeEach(func() {
			mockedSvc.EXPECT().Autocomplete(gomock.Any(), "blue bottle").
				Return([]places.Prediction{{Description: "Blue Bottle Gangnam", PlaceID: "p1"}}, nil).Times(1)
			target = "/api/places/autocomplete?input=blue+bottle"
		})

		It("should return the predictions", func() {
			Expect(rr.Code).To(Equal(http.StatusOK))
			Expect(rr.Body.String()).To(ContainSubstring("Blue Bottle Gangnam"))
		})
	})

	Context("empty input, 400", func() {
		BeforeEach(func() {
			mockedSvc.EXPECT().Autocomplete(gomock.Any(), gomock.Any()).Times(0)
			target = "/api/places/autocomplete"
		})

		It("should return 400", func() {
			Expect(rr.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("upstream failure, 502", func() {
		BeforeEach(func() {
			mockedSvc.EXPECT().Autocomplete(gomock.Any(), "blue bottle").
				Return(nil, fmt.Errorf("%w: REQUEST_DENIED", places.ErrUpstream)).Times(1)
			target = "/api/places/autocomplete?input=blue+bottle"
		})

		It("should return 502", func() {
			Expect(rr.Code).To(Equal(http.StatusBadGateway))
		})
	})

	Context("no matches, 200 with empty list", func() {
		BeforeEach(func() {
			mockedSvc.EXPECT().Autocomplete(gomock.Any(), "zzzz").Return(nil, nil).Times(1)
			target = "/api/places/autocomplete?input=zzzz"
		})

		It("should return an empty predictions array", func() {
			Expect(rr.Code).To(Equal(http.StatusOK))
			Expect(rr.Body.String()).To(ContainSubstring(`"predictions":[]`))
		})
	})

})
