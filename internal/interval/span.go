package interval

import (
	"fmt"
	"math"
	"time"

	"hotel-booking/internal/data/entity"
)

// Span is a half-open time interval [Start, End). Two spans that merely
// touch at an endpoint do not overlap.
type Span struct {
	Start time.Time
	End   time.Time
}

func NewSpan(start, end time.Time) (Span, error) {
	if !start.Before(end) {
		return Span{}, fmt.Errorf("checkin %s must be before checkout %s: %w",
			start.Format(time.RFC3339), end.Format(time.RFC3339), entity.ErrInvalidInterval)
	}
	return Span{Start: start, End: end}, nil
}

func (s Span) Overlaps(o Span) bool {
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}

// Nights is the stay length in billable nights: the duration rounded up
// to whole 24h periods, at least one.
func (s Span) Nights() int {
	nights := int(math.Ceil(s.End.Sub(s.Start).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

func (s Span) String() string {
	return fmt.Sprintf("[%s, %s)", s.Start.Format(time.RFC3339), s.End.Format(time.RFC3339))
}
