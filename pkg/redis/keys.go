// Package redis pins the key naming conventions shared by the rate limiter
// and the audit outbox, so nothing else in the tree builds Redis keys by hand.
package redis

import "fmt"

// RateLimitKey is the sliding-window set for one client IP.
func RateLimitKey(clientIP string) string {
	return fmt.Sprintf("workshop:rate_limit:ip:%s", clientIP)
}
