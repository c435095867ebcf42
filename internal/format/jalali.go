package format

import (
	"fmt"
	"time"
)

var jalaliMonths = [12]string{
	"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
}

// tehran is the display zone for all dates. Iran dropped DST in 2022,
// so the fixed +03:30 fallback matches current wall time when the
// system zone database is unavailable.
var tehran = loadTehran()

func loadTehran() *time.Location {
	if loc, err := time.LoadLocation("Asia/Tehran"); err == nil {
		return loc
	}
	return time.FixedZone("Asia/Tehran", 3*3600+30*60)
}

// JalaliParts returns the Jalali year, month, and day of t in Tehran
// wall time, with ASCII digits and 2-digit month/day, the form used in
// spreadsheet exports.
func JalaliParts(t time.Time) (year, month, day string) {
	local := t.In(tehran)
	jy, jm, jd := gregorianToJalali(local.Year(), int(local.Month()), local.Day())
	return fmt.Sprintf("%d", jy), fmt.Sprintf("%02d", jm), fmt.Sprintf("%02d", jd)
}

// Clock returns the HH:MM wall time of t in Tehran with Persian digits.
func Clock(t time.Time) string {
	return PersianDigits(t.In(tehran).Format("15:04"))
}

// DateTime renders t as a long-form Jalali date with time, e.g.
// ۸ شهریور ۱۴۰۵، ۱۴:۳۵.
func DateTime(t time.Time) string {
	local := t.In(tehran)
	jy, jm, jd := gregorianToJalali(local.Year(), int(local.Month()), local.Day())
	s := fmt.Sprintf("%d %s %d، %s", jd, jalaliMonths[jm-1], jy, local.Format("15:04"))
	return PersianDigits(s)
}

// gregorianToJalali converts a Gregorian civil date to the Jalali
// calendar using the arithmetic 33-year cycle algorithm.
func gregorianToJalali(gy, gm, gd int) (jy, jm, jd int) {
	gdm := [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

	if gy > 1600 {
		jy = 979
		gy -= 1600
	} else {
		jy = 0
		gy -= 621
	}

	gy2 := gy
	if gm > 2 {
		gy2 = gy + 1
	}
	days := 365*gy + (gy2+3)/4 - (gy2+99)/100 + (gy2+399)/400 - 80 + gd + gdm[gm-1]

	jy += 33 * (days / 12053)
	days %= 12053
	jy += 4 * (days / 1461)
	days %= 1461
	if days > 365 {
		jy += (days - 1) / 365
		days = (days - 1) % 365
	}

	if days < 186 {
		jm = 1 + days/31
		jd = 1 + days%31
	} else {
		jm = 7 + (days-186)/30
		jd = 1 + (days-186)%30
	}
	return jy, jm, jd
}
