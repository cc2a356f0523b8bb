package payscale

import (
	"fmt"
	"strconv"
	"strings"
)

// Stage is one segment of a pre-2006 pay scale: pay runs from From to To in
// steps of Increment.
type Stage struct {
	From      int64
	To        int64
	Increment int64
}

// Scale is a parsed pre-2006 pay scale.
type Scale struct {
	Raw    string
	Start  int64
	Max    int64
	Stages []Stage
}

// Parse parses a scale string of the form "1200-30-1440-40-1800": alternating
// pay points and increments. A bare single figure is a fixed scale with no
// increments.
func Parse(raw string) (*Scale, error) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) == 0 || parts[0] == "" {
		return nil, fmt.Errorf("empty scale string")
	}
	if len(parts)%2 == 0 {
		return nil, fmt.Errorf("malformed scale %q: even number of segments", raw)
	}

	nums := make([]int64, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed scale %q: %w", raw, err)
		}
		nums[i] = n
	}

	s := &Scale{Raw: raw, Start: nums[0], Max: nums[len(nums)-1]}
	for i := 0; i+2 < len(nums); i += 2 {
		st := Stage{From: nums[i], To: nums[i+2], Increment: nums[i+1]}
		if st.To <= st.From || st.Increment <= 0 {
			return nil, fmt.Errorf("malformed scale %q: segment %d-%d-%d", raw, st.From, st.Increment, st.To)
		}
		s.Stages = append(s.Stages, st)
	}
	return s, nil
}

// MustParse is Parse for compile-time-known scale strings.
func MustParse(raw string) *Scale {
	s, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// Increment applies n annual increments to pay within the scale. At or above
// the scale maximum pay stays clamped. Pay between stage boundaries advances
// by the increment of the first stage whose upper bound exceeds it; pay past
// every stage advances by the final stage's increment until the cap.
func (s *Scale) Increment(pay int64, n int) int64 {
	for i := 0; i < n; i++ {
		if pay >= s.Max {
			return s.Max
		}
		pay += s.incrementAt(pay)
	}
	if pay > s.Max {
		pay = s.Max
	}
	return pay
}

func (s *Scale) incrementAt(pay int64) int64 {
	for _, st := range s.Stages {
		if st.To > pay {
			return st.Increment
		}
	}
	if len(s.Stages) == 0 {
		return 0
	}
	return s.Stages[len(s.Stages)-1].Increment
}

// FitNextHigher returns the lowest stage point of the scale strictly above
// pay, capped at the scale maximum. Pay below the scale floor fixes at the
// floor; pay at or above the maximum fixes at the maximum.
func (s *Scale) FitNextHigher(pay int64) int64 {
	if pay >= s.Max {
		return s.Max
	}
	if pay < s.Start {
		return s.Start
	}
	v := s.Start
	for v <= pay {
		step := s.incrementAt(v)
		if step == 0 {
			return s.Max
		}
		v += step
		if v >= s.Max {
			return s.Max
		}
	}
	return v
}
