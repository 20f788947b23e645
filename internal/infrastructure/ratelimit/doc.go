// Package ratelimit provides per-client request limiters backed by process
// memory or Redis.
package ratelimit
