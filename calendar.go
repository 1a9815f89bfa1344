package fbwire

// timeUnitsPerSecond is the resolution of packed time values.
const timeUnitsPerSecond = 10000

// StandardCalendar implements CalendarCodec with the engine's native
// packing: dates are days since 1858-11-17 (modified Julian day zero) and
// times are 1/10000ths of a second since midnight.
type StandardCalendar struct{}

// mjdOffset converts between a proleptic-Gregorian Julian day number and a
// modified Julian day.
const mjdOffset = 2400001

func (StandardCalendar) EncodeDate(d Date) int32 {
	a := (14 - d.Month) / 12
	y := d.Year + 4800 - a
	m := d.Month + 12*a - 3
	jdn := d.Day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	return int32(jdn - mjdOffset)
}

func (StandardCalendar) DecodeDate(packed int32) Date {
	a := int(packed) + mjdOffset + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153

	return Date{
		Year:  100*b + d - 4800 + m/10,
		Month: m + 3 - 12*(m/10),
		Day:   e - (153*m+2)/5 + 1,
	}
}

func (StandardCalendar) EncodeTime(t TimeOfDay) uint32 {
	seconds := t.Hour*3600 + t.Minute*60 + t.Second
	return uint32(seconds*timeUnitsPerSecond + t.Fractions)
}

func (StandardCalendar) DecodeTime(packed uint32) TimeOfDay {
	fractions := int(packed % timeUnitsPerSecond)
	seconds := int(packed / timeUnitsPerSecond)

	return TimeOfDay{
		Hour:      seconds / 3600,
		Minute:    seconds / 60 % 60,
		Second:    seconds % 60,
		Fractions: fractions,
	}
}
