package sqlite

import "time"

func unixToUTC(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
