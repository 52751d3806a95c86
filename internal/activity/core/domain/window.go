package domain

import "time"

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// BuildDayBuckets returns days contiguous buckets, oldest first, the last one
// being the day that contains now. Days are calendar days in loc, so across a
// DST change a bucket spans 23h or 25h rather than 24h.
func BuildDayBuckets(now time.Time, days int, loc *time.Location) []DayBucket {
	if days <= 0 {
		return nil
	}
	today := StartOfDay(now, loc)

	buckets := make([]DayBucket, days)
	for i := range buckets {
		offset := i - (days - 1)
		start := time.Date(today.Year(), today.Month(), today.Day()+offset, 0, 0, 0, 0, loc)
		end := time.Date(today.Year(), today.Month(), today.Day()+offset+1, 0, 0, 0, 0, loc)
		buckets[i] = DayBucket{Start: start, End: end}
	}
	return buckets
}
