package verification_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"doctrack/internal/verification"
	verificationerrors "doctrack/internal/verification/errors"
	mock_verification "doctrack/internal/verification/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
}

func TestIssuer_Issue(t *testing.T) {
	ctx := context.Background()
	email := "jane@co.com"

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_verification.NewMockRepository(ctrl)
		issuer := verification.NewIssuerWithClock(mockRepo, fixedClock)

		var saved *verification.VerificationCode

		mockRepo.EXPECT().DeleteByEmail(gomock.Any(), email).Return(nil)
		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *verification.VerificationCode) error {
				saved = c
				return nil
			})

		code, err := issuer.Issue(ctx, email)

		assert.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)
		assert.Equal(t, email, saved.Email)
		assert.Equal(t, fixedClock().Add(verification.CodeTTL), saved.ExpiresAt)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.CodeHash), []byte(code)))
	})

	t.Run("replaces previous codes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_verification.NewMockRepository(ctrl)
		issuer := verification.NewIssuerWithClock(mockRepo, fixedClock)

		gomock.InOrder(
			mockRepo.EXPECT().DeleteByEmail(gomock.Any(), email).Return(nil),
			mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		)

		_, err := issuer.Issue(ctx, email)
		assert.NoError(t, err)
	})

	t.Run("persist error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_verification.NewMockRepository(ctrl)
		issuer := verification.NewIssuerWithClock(mockRepo, fixedClock)

		mockRepo.EXPECT().DeleteByEmail(gomock.Any(), email).Return(nil)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		code, err := issuer.Issue(ctx, email)

		assert.ErrorIs(t, err, verificationerrors.ErrCodeIssueFailed)
		assert.Empty(t, code)
	})
}

func TestIssuer_Verify(t *testing.T) {
	ctx := context.Background()
	email := "jane@co.com"

	hash, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	live := &verification.VerificationCode{
		Email:     email,
		CodeHash:  string(hash),
		ExpiresAt: fixedClock().Add(time.Hour),
	}

	t.Run("valid code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_verification.NewMockRepository(ctrl)
		issuer := verification.NewIssuerWithClock(mockRepo, fixedClock)

		mockRepo.EXPECT().FindLiveByEmail(gomock.Any(), email, fixedClock()).Return(live, nil)

		assert.NoError(t, issuer.Verify(ctx, email, "123456"))
	})

	t.Run("wrong code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_verification.NewMockRepository(ctrl)
		issuer := verification.NewIssuerWithClock(mockRepo, fixedClock)

		mockRepo.EXPECT().FindLiveByEmail(gomock.Any(), email, fixedClock()).Return(live, nil)

		err := issuer.Verify(ctx, email, "654321")
		assert.ErrorIs(t, err, verificationerrors.ErrCodeInvalidOrExpired)
	})

	t.Run("no live code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_verification.NewMockRepository(ctrl)
		issuer := verification.NewIssuerWithClock(mockRepo, fixedClock)

		mockRepo.EXPECT().
			FindLiveByEmail(gomock.Any(), email, fixedClock()).
			Return(nil, gorm.ErrRecordNotFound)

		err := issuer.Verify(ctx, email, "123456")
		assert.ErrorIs(t, err, verificationerrors.ErrCodeInvalidOrExpired)
	})

	t.Run("lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mock_verification.NewMockRepository(ctrl)
		issuer := verification.NewIssuerWithClock(mockRepo, fixedClock)

		mockRepo.EXPECT().
			FindLiveByEmail(gomock.Any(), email, fixedClock()).
			Return(nil, errors.New("db error"))

		err := issuer.Verify(ctx, email, "123456")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, verificationerrors.ErrCodeInvalidOrExpired)
	})
}

func TestIssuer_Revoke(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_verification.NewMockRepository(ctrl)
	issuer := verification.NewIssuer(mockRepo)

	mockRepo.EXPECT().DeleteByEmail(gomock.Any(), "jane@co.com").Return(nil)

	assert.NoError(t, issuer.Revoke(context.Background(), "jane@co.com"))
}
