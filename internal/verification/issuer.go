package verification

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"doctrack/internal/shared/contextutil"
	verificationerrors "doctrack/internal/verification/errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CodeTTL is how long an issued code stays valid.
const CodeTTL = 24 * time.Hour

//go:generate mockgen -source=issuer.go -destination=mock/issuer_mock.go -package=mock

// Issuer creates and checks verification codes. Issue replaces any prior
// codes for the email, so the newest code is always the only live one.
// Verify only validates; the caller revokes once the whole flow succeeds,
// so a failure later in the flow leaves the code usable for a retry.
type Issuer interface {
	Issue(ctx context.Context, email string) (string, error)
	Verify(ctx context.Context, email, code string) error
	Revoke(ctx context.Context, email string) error
}

type issuer struct {
	repo Repository
	now  func() time.Time
}

func NewIssuer(repo Repository) Issuer {
	return &issuer{repo: repo, now: time.Now}
}

// NewIssuerWithClock is for tests that need a fixed clock.
func NewIssuerWithClock(repo Repository, now func() time.Time) Issuer {
	return &issuer{repo: repo, now: now}
}

func (i *issuer) Issue(ctx context.Context, email string) (string, error) {
	l := contextutil.GetLogger(ctx, nil)

	code, err := generateCode()
	if err != nil {
		return "", verificationerrors.ErrCodeIssueFailed.WithCause(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", verificationerrors.ErrCodeIssueFailed.WithCause(err)
	}

	// Latest code wins: drop any earlier rows for the email before insert.
	if err := i.repo.DeleteByEmail(ctx, email); err != nil {
		l.Error("failed to clear previous verification codes", zap.String("email", email), zap.Error(err))
		return "", verificationerrors.ErrCodeIssueFailed.WithCause(err)
	}

	record := &VerificationCode{
		Email:     email,
		CodeHash:  string(hash),
		ExpiresAt: i.now().Add(CodeTTL),
	}

	if err := i.repo.Create(ctx, record); err != nil {
		l.Error("failed to persist verification code", zap.String("email", email), zap.Error(err))
		return "", verificationerrors.ErrCodeIssueFailed.WithCause(err)
	}

	return code, nil
}

func (i *issuer) Verify(ctx context.Context, email, code string) error {
	record, err := i.repo.FindLiveByEmail(ctx, email, i.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return verificationerrors.ErrCodeInvalidOrExpired
		}
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(record.CodeHash), []byte(code)) != nil {
		return verificationerrors.ErrCodeInvalidOrExpired
	}

	return nil
}

func (i *issuer) Revoke(ctx context.Context, email string) error {
	return i.repo.DeleteByEmail(ctx, email)
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
