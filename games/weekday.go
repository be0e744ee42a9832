package games

// weekdays labels the day numbers of th165. Days past the first two weeks
// belong to the nightmare diary.
var weekdays = []struct {
	day   string
	label string
}{
	{"1", "Sunday"},
	{"2", "Monday"},
	{"3", "Tuesday"},
	{"4", "Wednesday"},
	{"5", "Thursday"},
	{"6", "Friday"},
	{"7", "Saturday"},
	{"8", "Second Sunday"},
	{"9", "Second Monday"},
	{"10", "Second Tuesday"},
	{"11", "Second Wednesday"},
	{"12", "Second Thursday"},
	{"13", "Second Friday"},
	{"14", "Second Saturday"},
	{"15", "Nightmare Sunday"},
	{"16", "Nightmare Monday"},
	{"17", "Nightmare Tuesday"},
	{"18", "Nightmare Wednesday"},
	{"19", "Nightmare Thursday"},
	{"20", "Nightmare Friday"},
	{"21", "Nightmare Saturday"},
	{"22", "Nightmare Diary"},
}

// Weekday returns the label for a raw day number, or day itself when the
// number is not in the table.
func Weekday(day string) string {
	for _, w := range weekdays {
		if w.day == day {
			return w.label
		}
	}
	return day
}
