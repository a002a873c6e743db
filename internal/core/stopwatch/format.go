package stopwatch

import (
	"fmt"
	"time"
)

// Reading is an elapsed time split into zero-padded display fields.
type Reading struct {
	Minutes string
	Seconds string
	// Millis holds hundredths of a second; the UI labels them milliseconds.
	Millis string
}

// Format splits elapsed time into minutes, seconds and hundredths.
func Format(elapsed time.Duration) Reading {
	if elapsed < 0 {
		elapsed = 0
	}
	millis := elapsed.Milliseconds()
	return Reading{
		Minutes: fmt.Sprintf("%02d", millis/1000/60),
		Seconds: fmt.Sprintf("%02d", (millis/1000)%60),
		Millis:  fmt.Sprintf("%02d", (millis/10)%100),
	}
}

// Text joins the fields as MM:SS, or MM:SS.mm when showMillis is set.
func (reading Reading) Text(showMillis bool) string {
	if showMillis {
		return reading.Minutes + ":" + reading.Seconds + "." + reading.Millis
	}
	return reading.Minutes + ":" + reading.Seconds
}

// StartLabel returns the primary control label for the toggle mode.
func StartLabel(state State) string {
	if state == StateRunning {
		return "Stop"
	}
	return "Start"
}
