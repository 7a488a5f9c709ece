package models

const (
	Sunday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// WeekOrder is the order days are offered in the day selector.
var WeekOrder = [7]int{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func ValidDay(day int) bool {
	return day >= Sunday && day <= Saturday
}

func DayName(day int) string {
	if !ValidDay(day) {
		return "Unknown"
	}
	return dayNames[day]
}
