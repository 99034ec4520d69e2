// Package timeline splits dated items around a reference instant.
package timeline

import "time"

// Partition splits items into those starting before now and those starting at or
// after now. The input order is preserved in both halves.
func Partition[T any](items []T, now time.Time, startOf func(T) time.Time) (past, upcoming []T) {
	past = []T{}
	upcoming = []T{}

	for _, item := range items {
		if startOf(item).Before(now) {
			past = append(past, item)
		} else {
			upcoming = append(upcoming, item)
		}
	}

	return past, upcoming
}

// CountUpcoming returns how many items start at or after now.
func CountUpcoming[T any](items []T, now time.Time, startOf func(T) time.Time) int {
	count := 0

	for _, item := range items {
		if !startOf(item).Before(now) {
			count++
		}
	}

	return count
}
