package utils

import "time"

// Múi giờ mặc định của hệ thống rạp (ICT, UTC+7)
var ICT = time.FixedZone("ICT", 7*3600)

// ParseDate đọc chuỗi YYYY-MM-DD theo múi giờ ICT.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, ICT)
}

// ParseDateTime ghép ngày YYYY-MM-DD với giờ HH:MM theo múi giờ ICT.
func ParseDateTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, ICT)
}
