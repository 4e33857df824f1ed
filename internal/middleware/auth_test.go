package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/beanmeet/beanmeet-api/internal/auth"
	"github.com/beanmeet/beanmeet-api/internal/middleware"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RequireAuth", func() {

	var (
		tokenSvc   auth.TokenService
		router     *httprouter.Router
		rr         *httptest.ResponseRecorder
		seenUserID string
	)

	BeforeEach(func() {
		tokenSvc = auth.NewJWTService("test-secret", time.Hour)
		seenUserID = ""

		router = httprouter.New()
		router.GET("/protected", middleware.RequireAuth(tokenSvc,
			func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
				seenUserID, _ = middleware.UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))
	})

	It("passes a valid bearer token through and exposes the user id", func() {
		userID := uuid.New().String()
		token, err := tokenSvc.GenerateToken(userID, "jane@example.com")
		Expect(err).To(BeNil())

		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		Expect(rr.Code).To(Equal(http.StatusOK))
		Expect(seenUserID).To(Equal(userID))
	})

	It("rejects a missing header", func() {
		req, _ := http.NewRequest("GET", "/protected", nil)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		Expect(rr.Code).To(Equal(http.StatusUnauthorized))
	})

	It("rejects a token signed with another secret", func() {
		other := auth.NewJWTService("other-secret", time.Hour)
		token, err := other.GenerateToken(uuid.New().String(), "jane@example.com")
		Expect(err).To(BeNil())

		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		Expect(rr.Code).To(Equal(http.StatusUnauthorized))
	})

})
