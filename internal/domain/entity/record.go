package entity

// Record is a remote-day assignment. Date is an ISO YYYY-MM-DD string and
// WeekDay is the localized label derived from it; the two are always written
// together and never allowed to drift.
type Record struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	Date    string `json:"date"`
	WeekDay string `json:"week_day"`
}
