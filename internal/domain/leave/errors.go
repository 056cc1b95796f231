package leave

import "errors"

var (
	ErrEntitlementNotFound = errors.New("leave entitlement not found")
	ErrInvalidFormula      = errors.New("invalid leave accrual formula")
)
