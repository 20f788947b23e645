// Package models contains the GORM database models of the portfolio entities.
// They are kept apart from the domain entities; ToDomain and FromDomain
// translate between both.
package models
