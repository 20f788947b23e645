// Package auth implements access tokens (HS256 JWT) and bcrypt password hashing.
package auth
