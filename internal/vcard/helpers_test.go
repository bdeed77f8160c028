package vcard

import "time"

func jan5() time.Time { return time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC) }
