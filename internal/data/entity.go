package data

// Department is an organisational unit shown in the entity list demo.
type Department struct {
	Name string
}

// Team is a group of people shown in the disabled item demo.
type Team struct {
	Name string
}

// Weekday is a day of the week, Monday first.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// String returns the English name of the day.
func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "Weekday(?)"
	}
	return weekdayNames[d]
}

// Weekdays returns every day from Monday to Sunday.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// Emotion is a mood with an icon, shown with custom option content.
type Emotion struct {
	Text string
	Icon Icon
}

// Emotions returns the moods offered by the custom options demo.
func Emotions() []Emotion {
	return []Emotion{
		{Text: "Good", Icon: IconThumbsUp},
		{Text: "Bad", Icon: IconThumbsDown},
		{Text: "Meh", Icon: IconMeh},
		{Text: "This is fine", Icon: IconFire},
	}
}

// Employee is the bean edited by the binder demo.
type Employee struct {
	Title string
}
