package domain

// Weekday indexes, Monday = 0 .. Sunday = 6.
const (
	Monday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdayNames maps weekday indexes to the localized labels stored alongside
// each record for display.
var WeekdayNames = map[int]string{
	Monday:    "Lunes",
	Tuesday:   "Martes",
	Wednesday: "Miércoles",
	Thursday:  "Jueves",
	Friday:    "Viernes",
	Saturday:  "Sábado",
	Sunday:    "Domingo",
}

// WeekdayIndexes maps lowercased weekday labels back to their index. Accent
// variants are included so seed tooling accepts plain-ASCII input.
var WeekdayIndexes = map[string]int{
	"lunes":     Monday,
	"martes":    Tuesday,
	"miércoles": Wednesday,
	"miercoles": Wednesday,
	"jueves":    Thursday,
	"viernes":   Friday,
	"sábado":    Saturday,
	"sabado":    Saturday,
	"domingo":   Sunday,
}
