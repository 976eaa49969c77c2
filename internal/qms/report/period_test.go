package report

import (
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	cases := map[string]Period{
		"last3months":  PeriodLast3Months,
		"last6months":  PeriodLast6Months,
		"thisyear":     PeriodThisYear,
		"last12months": PeriodLast12Months,
		"":             PeriodLast12Months,
		"LAST3MONTHS":  PeriodLast12Months,
		"garbage":      PeriodLast12Months,
	}
	for in, want := range cases {
		if got := ParsePeriod(in); got != want {
			t.Errorf("ParsePeriod(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolveLookback(t *testing.T) {
	r, label := PeriodLast3Months.Resolve(testNow)
	if !r.End.Equal(testNow) {
		t.Errorf("end = %v, want %v", r.End, testNow)
	}
	if want := testNow.AddDate(0, -3, 0); !r.Start.Equal(want) {
		t.Errorf("start = %v, want %v", r.Start, want)
	}
	if label != "Last 3 Months" {
		t.Errorf("label = %q", label)
	}
}

func TestResolveThisYearCalendarBounds(t *testing.T) {
	r, label := PeriodThisYear.Resolve(testNow)
	wantStart := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !r.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", r.Start, wantStart)
	}
	if want := wantStart.AddDate(1, 0, 0); !r.End.Equal(want) {
		t.Errorf("end = %v, want %v", r.End, want)
	}
	if label != "Year 2026" {
		t.Errorf("label = %q", label)
	}
}

func TestRangeHalfOpen(t *testing.T) {
	r, _ := PeriodThisYear.Resolve(testNow)
	if !r.Contains(r.Start) {
		t.Error("start must be inside the window")
	}
	if r.Contains(r.End) {
		t.Error("end must be outside the window")
	}
	if r.Contains(r.Start.Add(-time.Nanosecond)) {
		t.Error("instant before start must be outside")
	}
	if !r.Contains(r.End.Add(-time.Nanosecond)) {
		t.Error("instant just before end must be inside")
	}
}

func TestResolveUnknownFallsBack(t *testing.T) {
	got, gotLabel := Period("bogus").Resolve(testNow)
	want, wantLabel := PeriodLast12Months.Resolve(testNow)
	if !got.Start.Equal(want.Start) || !got.End.Equal(want.End) || gotLabel != wantLabel {
		t.Errorf("unknown period resolved to %v %q, want %v %q", got, gotLabel, want, wantLabel)
	}
}
