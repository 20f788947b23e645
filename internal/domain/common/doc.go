// Package common holds what every domain package shares: sentinel errors,
// struct validation and list query parameters.
package common
