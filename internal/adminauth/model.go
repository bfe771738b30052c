package adminauth

import "time"

// Admin is an account allowed into the triage panel. Accounts are created by
// the seed command or by an operator directly in the database; there is no
// self-service signup.
type Admin struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Email     string    `bson:"email" json:"email"`
	FullName  string    `bson:"fullName" json:"fullName"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	LastLogin time.Time `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
}

// OTPChallenge is the pending one-time code for an admin email. One active
// challenge per email; re-sending replaces it. The collection carries a TTL
// index on expiresAt so stale challenges vanish on their own.
type OTPChallenge struct {
	Email     string    `bson:"email"`
	CodeHash  string    `bson:"codeHash"`
	Attempts  int       `bson:"attempts"`
	CreatedAt time.Time `bson:"createdAt"`
	ExpiresAt time.Time `bson:"expiresAt"`
}

type SendOTPPayload struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type VerifyOTPPayload struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type VerifyResult struct {
	Admin  Admin     `json:"admin"`
	Tokens TokenPair `json:"tokens"`
}
