// Package utils provides common utility functions for gear-tracker.
// It includes lenient type conversion for loosely typed API payloads and
// calendar-day helpers shared by the replay driver and the capture store.
package utils
