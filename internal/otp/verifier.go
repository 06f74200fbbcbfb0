// Package otp holds the one-time passcode check that gates payroll approval.
// Code generation and delivery (SMS, authenticator app) live outside this
// service; only the stored expected code and the verification outcome are
// modeled here.
package otp

import "context"

//go:generate mockgen -source=verifier.go -destination=mock/verifier_mock.go -package=mock
type Verifier interface {
	// Verify reports whether presented matches the code issued for this
	// record and approver. A successful verification consumes the code.
	Verify(ctx context.Context, recordID, presented, approverID string) (bool, error)
}
