package domain

import "strconv"

// TimerKey builds the composite timerData key "{rowId}-{columnIndex}".
func TimerKey(rowID string, col int) string {
	return rowID + "-" + strconv.Itoa(col)
}
