package export

import "fmt"

// FormatDuration renders elapsed milliseconds as MM:SS.CC with
// centisecond precision. Minutes are not capped at 59, so long tasks
// render as e.g. 75:02.40.
func FormatDuration(ms int64) string {
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	centis := (ms % 1000) / 10
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, centis)
}
