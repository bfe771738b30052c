package adminauth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"leadhub-backend/internal/auth"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeAuthRepo struct {
	admins     map[string]Admin
	challenges map[string]OTPChallenge
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		admins:     map[string]Admin{},
		challenges: map[string]OTPChallenge{},
	}
}

func (f *fakeAuthRepo) FindAdminByEmail(ctx context.Context, email string) (Admin, error) {
	admin, ok := f.admins[email]
	if !ok {
		return Admin{}, mongo.ErrNoDocuments
	}
	return admin, nil
}

func (f *fakeAuthRepo) TouchLastLogin(ctx context.Context, email string, at time.Time) error {
	admin, ok := f.admins[email]
	if ok {
		admin.LastLogin = at
		f.admins[email] = admin
	}
	return nil
}

func (f *fakeAuthRepo) ReplaceChallenge(ctx context.Context, ch OTPChallenge) error {
	f.challenges[ch.Email] = ch
	return nil
}

func (f *fakeAuthRepo) FindChallenge(ctx context.Context, email string) (OTPChallenge, error) {
	ch, ok := f.challenges[email]
	if !ok {
		return OTPChallenge{}, mongo.ErrNoDocuments
	}
	return ch, nil
}

func (f *fakeAuthRepo) BumpAttempts(ctx context.Context, email string) (int, error) {
	ch, ok := f.challenges[email]
	if !ok {
		return 0, mongo.ErrNoDocuments
	}
	ch.Attempts++
	f.challenges[email] = ch
	return ch.Attempts, nil
}

func (f *fakeAuthRepo) DeleteChallenge(ctx context.Context, email string) error {
	delete(f.challenges, email)
	return nil
}

type captureMailer struct {
	lastEmail string
	lastCode  string
}

func (m *captureMailer) SendOTPEmail(ctx context.Context, toEmail, toName, code string, ttlMinutes int) (string, error) {
	m.lastEmail = toEmail
	m.lastCode = code
	return "message-id", nil
}

func newTestService(repo Repository, mailer OTPMailer) *Service {
	tokens := &auth.Manager{
		Secret:     []byte("test-secret"),
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
		Issuer:     "leadhub-backend",
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, tokens, mailer, log, 5*time.Minute)
}

const adminEmail = "ops@example.com"

func seedAdmin(repo *fakeAuthRepo) {
	repo.admins[adminEmail] = Admin{
		ID:       "64b2f0c8e4b0a1d2c3e4f5a6",
		Email:    adminEmail,
		FullName: "Ops Admin",
		Role:     "admin",
	}
}

func TestSendOTPUnknownEmail(t *testing.T) {
	svc := newTestService(newFakeAuthRepo(), &captureMailer{})
	err := svc.SendOTP(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, ErrUnknownAdmin)
}

func TestSendOTPStoresHashedCode(t *testing.T) {
	repo := newFakeAuthRepo()
	seedAdmin(repo)
	mailer := &captureMailer{}
	svc := newTestService(repo, mailer)

	require.NoError(t, svc.SendOTP(context.Background(), " Ops@Example.com "))

	require.Equal(t, adminEmail, mailer.lastEmail)
	require.Len(t, mailer.lastCode, 6)

	ch, ok := repo.challenges[adminEmail]
	require.True(t, ok)
	require.NotEqual(t, mailer.lastCode, ch.CodeHash)
	require.NoError(t, auth.CompareOTP(ch.CodeHash, mailer.lastCode))
	require.Equal(t, 0, ch.Attempts)
	require.True(t, ch.ExpiresAt.After(time.Now()))
}

func TestResendReplacesChallenge(t *testing.T) {
	repo := newFakeAuthRepo()
	seedAdmin(repo)
	mailer := &captureMailer{}
	svc := newTestService(repo, mailer)

	require.NoError(t, svc.SendOTP(context.Background(), adminEmail))
	firstCode := mailer.lastCode
	_, err := svc.VerifyOTP(context.Background(), adminEmail, "000000")
	require.ErrorIs(t, err, ErrWrongCode)

	require.NoError(t, svc.SendOTP(context.Background(), adminEmail))
	ch := repo.challenges[adminEmail]
	require.Equal(t, 0, ch.Attempts)

	if firstCode != mailer.lastCode {
		_, err = svc.VerifyOTP(context.Background(), adminEmail, firstCode)
		require.ErrorIs(t, err, ErrWrongCode)
	}
}

func TestVerifyOTPSuccessIssuesTokensAndConsumesChallenge(t *testing.T) {
	repo := newFakeAuthRepo()
	seedAdmin(repo)
	mailer := &captureMailer{}
	svc := newTestService(repo, mailer)

	require.NoError(t, svc.SendOTP(context.Background(), adminEmail))

	result, err := svc.VerifyOTP(context.Background(), adminEmail, mailer.lastCode)
	require.NoError(t, err)
	require.Equal(t, adminEmail, result.Admin.Email)
	require.NotEmpty(t, result.Tokens.AccessToken)
	require.NotEmpty(t, result.Tokens.RefreshToken)
	require.False(t, result.Admin.LastLogin.IsZero())

	// The challenge is single-use.
	_, err = svc.VerifyOTP(context.Background(), adminEmail, mailer.lastCode)
	require.ErrorIs(t, err, ErrNoChallenge)
}

func TestVerifyOTPMaxAttempts(t *testing.T) {
	repo := newFakeAuthRepo()
	seedAdmin(repo)
	mailer := &captureMailer{}
	svc := newTestService(repo, mailer)

	require.NoError(t, svc.SendOTP(context.Background(), adminEmail))

	for i := 0; i < maxAttempts-1; i++ {
		_, err := svc.VerifyOTP(context.Background(), adminEmail, "000000")
		require.ErrorIs(t, err, ErrWrongCode)
	}
	_, err := svc.VerifyOTP(context.Background(), adminEmail, "000000")
	require.ErrorIs(t, err, ErrTooManyAttempts)

	// Even the right code is refused once the challenge is burned.
	_, err = svc.VerifyOTP(context.Background(), adminEmail, mailer.lastCode)
	require.ErrorIs(t, err, ErrNoChallenge)
}

func TestVerifyOTPExpired(t *testing.T) {
	repo := newFakeAuthRepo()
	seedAdmin(repo)
	mailer := &captureMailer{}
	svc := newTestService(repo, mailer)

	require.NoError(t, svc.SendOTP(context.Background(), adminEmail))
	ch := repo.challenges[adminEmail]
	ch.ExpiresAt = time.Now().Add(-time.Minute)
	repo.challenges[adminEmail] = ch

	_, err := svc.VerifyOTP(context.Background(), adminEmail, mailer.lastCode)
	require.ErrorIs(t, err, ErrExpiredCode)
	require.NotContains(t, repo.challenges, adminEmail)
}

func TestProfile(t *testing.T) {
	repo := newFakeAuthRepo()
	seedAdmin(repo)
	svc := newTestService(repo, nil)

	admin, err := svc.Profile(context.Background(), "OPS@example.com")
	require.NoError(t, err)
	require.Equal(t, "Ops Admin", admin.FullName)

	_, err = svc.Profile(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, ErrUnknownAdmin)
}
