// Package validators holds custom go-playground/validator tags shared by the
// domain entities.
package validators
