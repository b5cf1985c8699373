package engine

import "errors"

// Construction and restore errors. The ledger itself never fails at
// runtime: invalid amounts coerce to zero and non-positive payments are
// no-ops. Only malformed configuration is rejected.
var (
	// ErrInvalidInterestType is returned when a debt names an unknown
	// interest convention.
	ErrInvalidInterestType = errors.New("engine: unknown interest type")

	// ErrInvalidInterestMode is returned when the interest mode does not
	// match the interest type: daily debts need fixed or percentage, every
	// other type must leave the mode empty.
	ErrInvalidInterestMode = errors.New("engine: interest mode does not match interest type")

	// ErrInvalidPlan is returned when a debt names an unknown repayment plan.
	ErrInvalidPlan = errors.New("engine: unknown repayment plan")

	// ErrInvalidFrequency is returned when a cashflow item names an unknown
	// frequency.
	ErrInvalidFrequency = errors.New("engine: unknown cashflow frequency")

	// ErrEndBeforeStart is returned when a maturity date precedes the
	// start date.
	ErrEndBeforeStart = errors.New("engine: end date precedes start date")

	// ErrDebtNotFound is returned by portfolio lookups for unknown ids.
	ErrDebtNotFound = errors.New("engine: debt not found")

	// ErrPaymentNotFound is returned when a payment index is out of range.
	ErrPaymentNotFound = errors.New("engine: payment not found")
)
