package auth_test

import (
	"context"
	"time"

	"github.com/beanmeet/beanmeet-api/internal/auth"
	"github.com/beanmeet/beanmeet-api/internal/auth/authmocks"
	"github.com/beanmeet/beanmeet-api/internal/storage"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Auth service", func() {

	var (
		ctrl      *gomock.Controller
		mockStore *authmocks.MockUserStore
		svc       *auth.Service
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockStore = authmocks.NewMockUserStore(ctrl)
		svc = auth.NewService(mockStore, auth.NewJWTService("test-secret", time.Hour))
	})

	Context("registration", func() {
		It("creates a user with a hashed password", func() {
			var inserted *storage.User
			mockStore.EXPECT().InsertUserOnConflictNothing(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, u *storage.User) (int64, error) {
					inserted = u
					return 1, nil
				}).Times(1)

			user, err := svc.Register(context.Background(), "jane@example.com", "s3cretpass", "Jane")
			Expect(err).To(BeNil())
			Expect(user.Email).To(Equal("jane@example.com"))
			Expect(inserted.PasswordHash).NotTo(Equal("s3cretpass"))
			Expect(bcrypt.CompareHashAndPassword([]byte(inserted.PasswordHash), []byte("s3cretpass"))).To(Succeed())
		})

		It("rejects a malformed email", func() {
			mockStore.EXPECT().InsertUserOnConflictNothing(gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.Register(context.Background(), "not-an-email", "s3cretpass", "Jane")
			Expect(err).To(MatchError(auth.ErrInvalidInput))
		})

		It("rejects a short password", func() {
			mockStore.EXPECT().InsertUserOnConflictNothing(gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.Register(context.Background(), "jane@example.com", "short", "Jane")
			Expect(err).To(MatchError(auth.ErrInvalidInput))
		})

		It("maps a duplicate email to a conflict", func() {
			mockStore.EXPECT().InsertUserOnConflictNothing(gomock.Any(), gomock.Any()).Return(int64(0), nil).Times(1)

			_, err := svc.Register(context.Background(), "jane@example.com", "s3cretpass", "Jane")
			Expect(err).To(Equal(auth.ErrConflict))
		})
	})

	Context("login", func() {
		var stored *storage.User

		BeforeEach(func() {
			hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
			Expect(err).To(BeNil())
			stored = &storage.User{
				ID:           uuid.New(),
				Email:        "jane@example.com",
				PasswordHash: string(hash),
				DisplayName:  pgtype.Text{String: "Jane", Status: pgtype.Present},
			}
		})

		It("returns a token for valid credentials", func() {
			mockStore.EXPECT().GetUserByEmail(gomock.Any(), "jane@example.com").Return(stored, nil).Times(1)

			user, token, err := svc.Login(context.Background(), "jane@example.com", "s3cretpass")
			Expect(err).To(BeNil())
			Expect(user.DisplayName).To(Equal("Jane"))
			Expect(token).NotTo(BeEmpty())

			subject, err := auth.NewJWTService("test-secret", time.Hour).ValidateToken(token)
			Expect(err).To(BeNil())
			Expect(subject).To(Equal(stored.ID.String()))
		})

		It("rejects a wrong password", func() {
			mockStore.EXPECT().GetUserByEmail(gomock.Any(), "jane@example.com").Return(stored, nil).Times(1)

			_, _, err := svc.Login(context.Background(), "jane@example.com", "wrongpass")
			Expect(err).To(Equal(auth.ErrUnauthorized))
		})

		It("rejects an unknown user", func() {
			mockStore.EXPECT().GetUserByEmail(gomock.Any(), "nobody@example.com").Return(nil, pgx.ErrNoRows).Times(1)

			_, _, err := svc.Login(context.Background(), "nobody@example.com", "s3cretpass")
			Expect(err).To(Equal(auth.ErrUnauthorized))
		})
	})

})
