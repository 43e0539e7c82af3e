package entity

// User is an employee that can be assigned one remote day per week. The
// docket is the employee identifier code; it is unique, as is the name.
type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Docket string `json:"docket"`
}

// UserWeekStatus pairs a user with whether they already have a record in the
// week under consideration. Used by the presentation layer to group and
// highlight users.
type UserWeekStatus struct {
	User       *User `json:"user"`
	Registered bool  `json:"registered"`
}
