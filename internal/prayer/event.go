package prayer

// Event is one of the six daily times, in chronological order.
type Event int

const (
	Imsak  Event = iota // dawn twilight
	Gunes               // sunrise
	Ogle                // solar noon
	Ikindi              // afternoon
	Aksam               // sunset
	Yatsi               // night twilight

	eventCount = 6
)

// Events lists every event in chronological order.
var Events = [eventCount]Event{Imsak, Gunes, Ogle, Ikindi, Aksam, Yatsi}

var eventKeys = [eventCount]string{"imsak", "gunes", "ogle", "ikindi", "aksam", "yatsi"}

var eventNames = [eventCount]string{"Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha"}

// Key is the lower case Turkish name used on the wire.
func (e Event) Key() string {
	if e < 0 || e >= eventCount {
		return "unknown"
	}
	return eventKeys[e]
}

// Name is the English name shown on screens.
func (e Event) Name() string {
	if e < 0 || e >= eventCount {
		return "Unknown"
	}
	return eventNames[e]
}

func (e Event) String() string { return e.Key() }

// IsMorning reports whether the event precedes solar noon. It is a fixed
// property of the event and never inferred from the computed altitude.
func (e Event) IsMorning() bool {
	return e == Imsak || e == Gunes
}
