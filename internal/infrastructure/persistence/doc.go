// Package persistence provides the GORM repositories of the portfolio
// entities. Every repository maps missing rows onto common.ErrNotFound and
// constraint violations onto common.ErrConflict, and logs its writes.
package persistence
