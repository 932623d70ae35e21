// Package repository contains the data-access layer over the MongoDB
// collections, separated from HTTP handlers. Each repository translates
// driver errors into the sentinel values below so handlers can map failures
// to status codes with errors.Is, without knowing anything about the driver.
package repository

import "errors"

// ErrEmailExists is returned when creating a user whose email is already
// taken. Handlers translate this into the signup conflict response.
var ErrEmailExists = errors.New("email already exists")

// Not-found sentinels, one per entity. They are also returned when a
// populated view cannot resolve a referenced record: a dangling reference
// fails the whole lookup rather than degrading to a partial response.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)
