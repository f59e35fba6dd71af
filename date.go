//
// chrono
// SPDX-License-Identifier: GPL-3.0
//

package chrono

import "fmt"

// Date is an immutable proleptic-Gregorian calendar date. Its zero value
// is ZeroDate, a sentinel representing "no date" rather than a valid
// 0000-00-00.
//
// Internally the day-of-month is stored in an encoded form: days
// 1..(daysInMonth-3) are stored as-is, but the final three days of every
// month are stored as -3, -2 and -1 (second-last, last-but-one, last).
// This lets month-anchored arithmetic ("add one month to the last day of
// January") land on the last day of the destination month regardless of
// that month's length, without special-casing every call site.
type Date struct {
	year   int
	month  int
	encDay int
	ordinal int64
}

// ZeroDate is the distinguished sentinel date outside the valid
// 0001-01-01..9999-12-31 range; it stringifies as "0000-00-00".
var ZeroDate = Date{}

// NewDate constructs a Date from a calendar year/month/day. day may be
// the public day-of-month (1..daysInMonth) or one of the "from end"
// references -1, -2, -3; both map to the same canonical encoded value.
// The special case year=month=day=0 returns ZeroDate.
func NewDate(year, month, day int) (Date, error) {
	if year == 0 && month == 0 && day == 0 {
		return ZeroDate, nil
	}
	if err := validateMonth(year, month); err != nil {
		return Date{}, err
	}
	encDay, err := normalizeDay(year, month, day)
	if err != nil {
		return Date{}, err
	}
	return Date{year: year, month: month, encDay: encDay, ordinal: calcOrdinal(year, month, encDay)}, nil
}

// DateFromOrdinal returns the Date corresponding to the proleptic
// Gregorian ordinal, where 0001-01-01 has ordinal 1 and 9999-12-31 has
// ordinal 3,652,059. Ordinal 0 returns ZeroDate.
func DateFromOrdinal(ordinal int64) (Date, error) {
	if ordinal == 0 {
		return ZeroDate, nil
	}
	if ordinal < 1 || ordinal > MaxOrdinal {
		return Date{}, newError(ErrOutOfRange, "Date.FromOrdinal", "ordinal out of range (1..%d)", MaxOrdinal)
	}
	year := 1
	remaining := ordinal
	for {
		diy := int64(DaysInYear(year))
		if remaining <= diy {
			break
		}
		remaining -= diy
		year++
	}
	month := 1
	for {
		dim := int64(DaysInMonth(year, month))
		if remaining <= dim {
			break
		}
		remaining -= dim
		month++
	}
	encDay, err := normalizeDay(year, month, int(remaining))
	if err != nil {
		return Date{}, err
	}
	return Date{year: year, month: month, encDay: encDay, ordinal: ordinal}, nil
}

// ParseDate parses the "YYYY-MM-DD" form. Any other shape fails with
// ErrNotSupported.
func ParseDate(s string) (Date, error) {
	var year, month, day int
	n, err := fmt.Sscanf(s, "%d-%d-%d", &year, &month, &day)
	if err != nil || n != 3 {
		return Date{}, newError(ErrNotSupported, "Date.Parse", "date string must be in format YYYY-MM-DD, got %q", s)
	}
	return NewDate(year, month, day)
}

// IsLeapYear reports whether year is a leap year in the proleptic
// Gregorian calendar.
func IsLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 != 0 {
		return true
	}
	return year%400 == 0
}

// DaysInYear returns 366 for a leap year, 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given proleptic
// Gregorian (year, month).
func DaysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

func validateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return newError(ErrOutOfRange, "Date", "year out of range (%d..%d)", MinYear, MaxYear)
	}
	return nil
}

func validateMonth(year, month int) error {
	if err := validateYear(year); err != nil {
		return err
	}
	if month < 1 || month > 12 {
		return newError(ErrOutOfRange, "Date", "month out of range (1..12)")
	}
	return nil
}

// normalizeDay coerces a public or "from end" day value into its
// canonical encoded form.
func normalizeDay(year, month, day int) (int, error) {
	dim := DaysInMonth(year, month)
	switch {
	case day == dim || day == -1:
		return -1, nil
	case day == dim-1 || day == -2:
		return -2, nil
	case day == dim-2 || day == -3:
		return -3, nil
	case day >= 1 && day <= dim-3:
		return day, nil
	default:
		return 0, newError(ErrOutOfRange, "Date", "day %d out of range (1..%d, -1, -2, -3)", day, dim)
	}
}

func calcOrdinal(year, month, encDay int) int64 {
	var ordinal int64
	if encDay >= 1 {
		ordinal = int64(encDay)
	} else {
		ordinal = int64(DaysInMonth(year, month) + encDay + 1)
	}
	for m := 1; m < month; m++ {
		ordinal += int64(DaysInMonth(year, m))
	}
	for y := 1; y < year; y++ {
		ordinal += int64(DaysInYear(y))
	}
	return ordinal
}

// Year returns the calendar year, 1..9999.
func (d Date) Year() int { return d.year }

// Month returns the calendar month, 1..12.
func (d Date) Month() int { return d.month }

// Day returns the public day-of-month, recovered from the internal
// encoded representation.
func (d Date) Day() int {
	if d.encDay == 0 {
		return 0
	}
	if d.encDay >= 1 {
		return d.encDay
	}
	return DaysInMonth(d.year, d.month) + d.encDay + 1
}

// Ordinal returns the day count since 0001-01-01 inclusive.
func (d Date) Ordinal() int64 { return d.ordinal }

// YearMonthDay returns the public (year, month, day) triple.
func (d Date) YearMonthDay() (int, int, int) {
	return d.year, d.month, d.Day()
}

func dayOfWeek(ordinal int64) int {
	return int((ordinal-1)%7) + 1
}

func isoWeek1(year int) (Date, error) {
	jan4, err := NewDate(year, 1, 4)
	if err != nil {
		return Date{}, err
	}
	shift, err := NewDuration(DurationComponents{Days: int64(1 - dayOfWeek(jan4.Ordinal()))})
	if err != nil {
		return Date{}, err
	}
	return jan4.Add(shift)
}

// YearWeekDay returns the ISO (year, week, weekday) triple; weekday 1 is
// Monday. The returned year may differ from d.Year() when d falls in the
// first or last ISO week of a calendar year.
func (d Date) YearWeekDay() (int, int, int, error) {
	ordinal := d.ordinal
	year := d.year

	dec29, err := NewDate(year, 12, 29)
	if err != nil {
		return 0, 0, 0, err
	}

	var week1 Date
	if ordinal >= dec29.Ordinal() {
		week1, err = isoWeek1(year + 1)
		if err != nil {
			return 0, 0, 0, err
		}
		if ordinal < week1.Ordinal() {
			week1, err = isoWeek1(year)
			if err != nil {
				return 0, 0, 0, err
			}
		} else {
			year++
		}
	} else {
		week1, err = isoWeek1(year)
		if err != nil {
			return 0, 0, 0, err
		}
		if ordinal < week1.Ordinal() {
			year--
			week1, err = isoWeek1(year)
			if err != nil {
				return 0, 0, 0, err
			}
		}
	}
	week := int((ordinal-week1.Ordinal())/7) + 1
	return year, week, dayOfWeek(ordinal), nil
}

// YearDay returns (year, ordinal position of d within that year), the
// latter starting at 1 for January 1st.
func (d Date) YearDay() (int, int, error) {
	jan1, err := NewDate(d.year, 1, 1)
	if err != nil {
		return 0, 0, err
	}
	return d.year, int(d.ordinal-jan1.Ordinal()) + 1, nil
}

// Add returns d plus a Duration whose seconds and subseconds are both
// zero; any other Duration fails with ErrInvalidOperation. Days are
// applied before months: adding "1 month, 1 day" to 1976-01-31 produces
// 1976-03-01, not 1976-03-02, because the day step lands on 1976-02-01
// first and the month step then advances to March.
func (d Date) Add(dur Duration) (Date, error) {
	if dur.Seconds != 0 || dur.subsecNanos != 0 {
		return Date{}, newError(ErrInvalidOperation, "Date.Add", "cannot add a Duration with seconds or subseconds to a Date")
	}
	if dur.Months == 0 && dur.Days == 0 {
		return d, nil
	}

	year, month, encDay, ordinal := d.year, d.month, d.encDay, d.ordinal

	if dur.Days != 0 {
		var err error
		year, month, encDay, ordinal, err = incrementDays(year, month, encDay, ordinal, dur.Days)
		if err != nil {
			return Date{}, err
		}
	}
	if dur.Months != 0 {
		year, month = incrementMonths(year, month, dur.Months)
	}
	if err := validateYear(year); err != nil {
		return Date{}, newError(ErrOutOfRange, "Date.Add", "result year out of range (%d..%d)", MinYear, MaxYear)
	}

	return Date{year: year, month: month, encDay: encDay, ordinal: calcOrdinal(year, month, encDay)}, nil
}

// Sub returns the Duration (days-only) between d and other: d - other.
func (d Date) Sub(other Date) Duration {
	dur, _ := NewDuration(DurationComponents{Days: d.ordinal - other.ordinal})
	return dur
}

func incrementDays(year, month, encDay int, ordinal, days int64) (int, int, int, int64, error) {
	if encDay >= 1 {
		newDay := int64(encDay) + days
		if newDay >= 1 && newDay <= 27 {
			return year, month, int(newDay), ordinal, nil
		}
	}
	nd, err := DateFromOrdinal(ordinal + days)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return nd.year, nd.month, nd.encDay, nd.ordinal, nil
}

func incrementMonths(year, month int, months int64) (int, int) {
	years, deltaMonths := symmetricDivmod(months, 12)
	year += int(years)
	month += int(deltaMonths)
	if month > 12 {
		year++
		month -= 12
	}
	if month < 1 {
		year--
		month += 12
	}
	return year, month
}

// Equal reports whether d and other denote the same ordinal.
func (d Date) Equal(other Date) bool { return d.ordinal == other.ordinal }

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.ordinal < other.ordinal }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.ordinal > other.ordinal }

// Replace returns a copy of d with the given fields overridden; a nil
// field keeps d's current value.
func (d Date) Replace(year, month, day *int) (Date, error) {
	y, m, dd := d.YearMonthDay()
	if year != nil {
		y = *year
	}
	if month != nil {
		m = *month
	}
	if day != nil {
		dd = *day
	}
	return NewDate(y, m, dd)
}

// String renders "%04d-%02d-%02d"; ZeroDate renders "0000-00-00".
func (d Date) String() string {
	if d == ZeroDate {
		return "0000-00-00"
	}
	y, m, day := d.YearMonthDay()
	return fmt.Sprintf("%04d-%02d-%02d", y, m, day)
}

// GoString renders the debug form "chrono.Date(year, month, day)", or
// "chrono.ZeroDate" for ZeroDate.
func (d Date) GoString() string {
	if d == ZeroDate {
		return "chrono.ZeroDate"
	}
	y, m, day := d.YearMonthDay()
	return fmt.Sprintf("chrono.Date(%d, %d, %d)", y, m, day)
}

// DateMin, DateMax and DateResolution are Date's terminal values.
var (
	DateMin        Date
	DateMax        Date
	DateResolution Duration
)

func init() {
	var err error
	DateMin, err = DateFromOrdinal(1)
	if err != nil {
		panic(err)
	}
	DateMax, err = DateFromOrdinal(MaxOrdinal)
	if err != nil {
		panic(err)
	}
	DateResolution, err = NewDuration(DurationComponents{Days: 1})
	if err != nil {
		panic(err)
	}
}
