package fbwire

import "testing"

func TestEncodeDateEpoch(t *testing.T) {
	// Packed day zero is 1858-11-17.
	cal := StandardCalendar{}
	if got := cal.EncodeDate(Date{Year: 1858, Month: 11, Day: 17}); got != 0 {
		t.Errorf("EncodeDate(1858-11-17) = %d, want 0", got)
	}
	if got := cal.DecodeDate(0); got != (Date{Year: 1858, Month: 11, Day: 17}) {
		t.Errorf("DecodeDate(0) = %+v", got)
	}
}

func TestDateRoundTrip(t *testing.T) {
	cal := StandardCalendar{}
	dates := []Date{
		{1858, 11, 18},
		{1900, 1, 1},
		{1970, 1, 1},
		{2000, 2, 29},
		{2023, 12, 31},
		{2024, 2, 29},
		{1700, 3, 1},
	}

	for _, d := range dates {
		packed := cal.EncodeDate(d)
		if got := cal.DecodeDate(packed); got != d {
			t.Errorf("round trip %+v -> %d -> %+v", d, packed, got)
		}
	}
}

func TestDateOrdering(t *testing.T) {
	// Consecutive days pack to consecutive integers across a month boundary.
	cal := StandardCalendar{}
	jan31 := cal.EncodeDate(Date{2023, 1, 31})
	feb1 := cal.EncodeDate(Date{2023, 2, 1})
	if feb1 != jan31+1 {
		t.Errorf("2023-02-01 packs to %d, want %d", feb1, jan31+1)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	cal := StandardCalendar{}
	times := []TimeOfDay{
		{0, 0, 0, 0},
		{0, 0, 0, 1},
		{12, 30, 45, 5000},
		{23, 59, 59, 9999},
	}

	for _, tod := range times {
		packed := cal.EncodeTime(tod)
		if got := cal.DecodeTime(packed); got != tod {
			t.Errorf("round trip %+v -> %d -> %+v", tod, packed, got)
		}
	}
}

func TestEncodeTimeUnits(t *testing.T) {
	cal := StandardCalendar{}
	// One second past midnight is 10000 units.
	if got := cal.EncodeTime(TimeOfDay{Second: 1}); got != 10000 {
		t.Errorf("EncodeTime(00:00:01) = %d, want 10000", got)
	}
}
