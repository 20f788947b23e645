// Package storage keeps uploaded files on the local disk and serves them
// under a public URL prefix.
package storage
