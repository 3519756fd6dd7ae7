package txt2md

import (
	"time"

	"github.com/alnah/go-txt2md/internal/dateutil"
)

// ResolveDate expands "auto" date values against t:
//   - "auto" gives YYYY-MM-DD
//   - "auto:FORMAT" uses tokens YYYY, YY, MMMM, MMM, MM, M, DD, D, dddd, ddd, HH, mm, ss
//   - "auto:PRESET" uses iso, european, us, long, full or datetime
//
// Any other value is returned unchanged.
func ResolveDate(value string, t time.Time) (string, error) {
	return dateutil.ResolveDate(value, t)
}
