package booking

import (
	"math/rand"
	"regexp"
	"strconv"
)

// NumberPrefix starts every display number.
const NumberPrefix = "7790"

var numberPattern = regexp.MustCompile(`^7790[1-9][0-9]{5}$`)

// NumberGenerator produces appointment display numbers.
type NumberGenerator func() string

// NewAppointmentNumber returns "7790" followed by a random integer in
// [100000, 999999]. Numbers are for display and are not guaranteed unique.
func NewAppointmentNumber() string {
	return NumberPrefix + strconv.Itoa(100000+rand.Intn(900000))
}

// ValidAppointmentNumber reports whether s has the display number shape.
func ValidAppointmentNumber(s string) bool {
	return numberPattern.MatchString(s)
}
