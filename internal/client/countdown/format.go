package countdown

import (
	"fmt"
	"strings"
	"time"
)

// FormatRemaining renders d as "HHh:MMm:SSs". Leading zero units are
// omitted; once a higher unit is shown, lower ones are kept and padded.
// Sub-second precision is truncated and negative input renders as "00s".
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var b strings.Builder
	if hours > 0 {
		fmt.Fprintf(&b, "%02dh:", hours)
	}
	if hours > 0 || minutes > 0 {
		fmt.Fprintf(&b, "%02dm:", minutes)
	}
	fmt.Fprintf(&b, "%02ds", seconds)
	return b.String()
}

// WaitMessage is the status line shown while posting is blocked.
func WaitMessage(remaining time.Duration) string {
	return fmt.Sprintf("You must wait %s to post again.", FormatRemaining(remaining))
}
