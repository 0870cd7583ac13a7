package fixtures

import "github.com/shopspring/decimal"

// Defaults applied to employees created through self-registration. The
// admin path accepts explicit values instead.
var (
	DefaultPosition = "Staff"
	DefaultWageRate = decimal.NewFromInt(300000)
	DefaultStatus   = "active"

	// Password used when an admin attaches a login identity to an
	// employee without supplying one.
	DefaultPassword = "123456"
)
