// Package utils provides small helpers shared across the transport layers:
// type-safe context keys, JSON response writing, and JWT token generation
// and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents key collisions with other packages
// that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// AccountCtxKey is the key under which the authenticated account identifier
// is stored in the request context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AccountCtxKey, "acct-1")
var AccountCtxKey = contextKey("account")

// GetAccountFromContext retrieves the authenticated account identifier from
// the context.
//
// Returns the account id and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetAccountFromContext(ctx context.Context) (string, bool) {
	account, ok := ctx.Value(AccountCtxKey).(string)
	return account, ok
}
