package adminauth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"leadhub-backend/internal/auth"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrUnknownAdmin    = errors.New("no admin account for this email")
	ErrNoChallenge     = errors.New("no pending code for this email, request a new one")
	ErrExpiredCode     = errors.New("code expired, request a new one")
	ErrWrongCode       = errors.New("incorrect code")
	ErrTooManyAttempts = errors.New("too many attempts, request a new code")
)

const maxAttempts = 5

// OTPMailer delivers the one-time code. A nil mailer means email is not
// configured; SendOTP still succeeds so local development works, and the
// code is logged instead.
type OTPMailer interface {
	SendOTPEmail(ctx context.Context, toEmail, toName, code string, ttlMinutes int) (string, error)
}

type Service struct {
	repo   Repository
	tokens *auth.Manager
	mailer OTPMailer
	log    *slog.Logger
	otpTTL time.Duration
}

func NewService(repo Repository, tokens *auth.Manager, mailer OTPMailer, log *slog.Logger, otpTTL time.Duration) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		mailer: mailer,
		log:    log,
		otpTTL: otpTTL,
	}
}

// SendOTP issues a fresh six-digit code for a known admin email. The code is
// bcrypt-hashed before it touches the database.
func (s *Service) SendOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	admin, err := s.repo.FindAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUnknownAdmin
		}
		return err
	}

	code, err := auth.GenerateOTP()
	if err != nil {
		return err
	}
	hash, err := auth.HashOTP(code)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err := s.repo.ReplaceChallenge(ctx, OTPChallenge{
		Email:     email,
		CodeHash:  hash,
		Attempts:  0,
		CreatedAt: now,
		ExpiresAt: now.Add(s.otpTTL),
	}); err != nil {
		return err
	}

	ttlMinutes := int(s.otpTTL.Minutes())
	if s.mailer == nil {
		s.log.Warn("otp mailer not configured, logging code",
			slog.String("email", email),
			slog.String("code", code),
		)
		return nil
	}
	if _, err := s.mailer.SendOTPEmail(ctx, email, admin.FullName, code, ttlMinutes); err != nil {
		return err
	}
	return nil
}

// VerifyOTP checks the submitted code against the pending challenge and, on
// success, consumes the challenge and issues a token pair.
func (s *Service) VerifyOTP(ctx context.Context, email, code string) (VerifyResult, error) {
	email = normalizeEmail(email)

	admin, err := s.repo.FindAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return VerifyResult{}, ErrUnknownAdmin
		}
		return VerifyResult{}, err
	}

	ch, err := s.repo.FindChallenge(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return VerifyResult{}, ErrNoChallenge
		}
		return VerifyResult{}, err
	}

	now := time.Now().UTC()
	if now.After(ch.ExpiresAt) {
		_ = s.repo.DeleteChallenge(ctx, email)
		return VerifyResult{}, ErrExpiredCode
	}
	if ch.Attempts >= maxAttempts {
		_ = s.repo.DeleteChallenge(ctx, email)
		return VerifyResult{}, ErrTooManyAttempts
	}

	if err := auth.CompareOTP(ch.CodeHash, code); err != nil {
		attempts, bumpErr := s.repo.BumpAttempts(ctx, email)
		if bumpErr == nil && attempts >= maxAttempts {
			_ = s.repo.DeleteChallenge(ctx, email)
			return VerifyResult{}, ErrTooManyAttempts
		}
		return VerifyResult{}, ErrWrongCode
	}

	if err := s.repo.DeleteChallenge(ctx, email); err != nil {
		return VerifyResult{}, err
	}
	if err := s.repo.TouchLastLogin(ctx, email, now); err != nil {
		s.log.Warn("verify otp: last login update failed", slog.String("error", err.Error()))
	}

	access, err := s.tokens.NewAccessToken(email, "admin")
	if err != nil {
		return VerifyResult{}, err
	}
	refresh, err := s.tokens.NewRefreshToken(email, "admin")
	if err != nil {
		return VerifyResult{}, err
	}

	admin.LastLogin = now
	return VerifyResult{
		Admin:  admin,
		Tokens: TokenPair{AccessToken: access, RefreshToken: refresh},
	}, nil
}

// Profile returns the account for an authenticated admin email.
func (s *Service) Profile(ctx context.Context, email string) (Admin, error) {
	admin, err := s.repo.FindAdminByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Admin{}, ErrUnknownAdmin
		}
		return Admin{}, err
	}
	return admin, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
