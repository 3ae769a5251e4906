// Package github loads question databases from a directory in a GitHub
// repository.
//
// Requests go through go-github with an optional static token and a
// RateLimiter that combines proactive throttling with the limits GitHub
// reports in response headers.
package github
