package utils

import (
	"errors"
	"time"
)

// EncodeDate packs a calendar date into the YYYYMMDD integer form used by the
// stored records, e.g. 2024-05-01 -> 20240501.
func EncodeDate(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// DecodeDate is the inverse of EncodeDate. It rejects integers that do not
// name a real calendar date (e.g. 20240230).
func DecodeDate(v int) (time.Time, error) {
	year := v / 10000
	month := v / 100 % 100
	day := v % 100

	if year < 1900 {
		return time.Time{}, errors.New("date out of range")
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow, so a round-trip mismatch means the
	// components were not a real date.
	if EncodeDate(t) != v {
		return time.Time{}, errors.New("not a valid calendar date")
	}
	return t, nil
}

// InFuture reports whether t falls on a later calendar day than now,
// ignoring the time of day.
func InFuture(t, now time.Time) bool {
	return EncodeDate(t) > EncodeDate(now)
}
