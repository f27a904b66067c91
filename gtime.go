/*------------------------------------------------------------------------------
* gtime.go : time and fixed-column number conversions for RINEX records
*
* notes  : epoch times cross the API as an extended GPS week number plus
*          seconds of week. Calendar conversions are only needed when lines
*          are parsed or printed. Navigation time tags keep their
*          system-specific second counts verbatim; only the calendar rendering
*          of a tag goes through these helpers.
*-----------------------------------------------------------------------------*/
package gorinex

import (
	"math"
	"strconv"
	"strings"
	"time"
)

type gtime struct {
	time int64   /* seconds since 1970-01-01 00:00:00 */
	sec  float64 /* fraction of second */
}

const secWeek = 604800.0

var gpst0 = []float64{1980, 1, 6, 0, 0, 0} /* GPS time reference epoch */

/* convert calendar day/time {y,m,d,h,min,s} to gtime --------------------------
* proper in 1970-2099, leap year if year%4==0 */
func epoch2Time(ep []float64) gtime {
	var (
		doy            = []int{1, 32, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}
		ret            gtime
		year, mon, day = int(ep[0]), int(ep[1]), int(ep[2])
	)
	if year < 1970 || 2099 < year || mon < 1 || 12 < mon {
		return ret
	}
	days := (year-1970)*365 + (year-1969)/4 + doy[mon-1] + day - 2
	if year%4 == 0 && mon >= 3 {
		days++
	}
	sec := int(math.Floor(ep[5]))
	ret.time = int64(days*86400 + int(ep[3])*3600 + int(ep[4])*60 + sec)
	ret.sec = ep[5] - float64(sec)
	return ret
}

/* convert gtime to calendar day/time ----------------------------------------*/
func time2Epoch(t gtime, ep []float64) {
	var mday = []int{ /* days per month over a 4-year cycle */
		31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31,
		31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31,
		31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31,
		31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	days := int(t.time / 86400)
	sec := int(t.time - int64(days*86400))
	day := days % 1461
	mon := 0
	for ; mon < 48; mon++ {
		if day >= mday[mon] {
			day -= mday[mon]
		} else {
			break
		}
	}
	ep[0] = float64(1970 + days/1461*4 + mon/12)
	ep[1] = float64(mon%12 + 1)
	ep[2] = float64(day + 1)
	ep[3] = float64(sec / 3600)
	ep[4] = float64(sec % 3600 / 60)
	ep[5] = float64(sec%60) + t.sec
}

/* gps week and tow to gtime -------------------------------------------------*/
func gpsT2Time(week int, sec float64) gtime {
	t := epoch2Time(gpst0)
	if sec < -1e9 || 1e9 < sec {
		sec = 0.0
	}
	t.time += int64(86400*7*week) + int64(sec)
	t.sec = sec - float64(int(sec))
	return t
}

/* gtime to gps week and tow -------------------------------------------------*/
func time2GpsT(t gtime) (week int, sec float64) {
	t0 := epoch2Time(gpst0)
	s := t.time - t0.time
	week = int(s / (86400 * 7))
	sec = float64(s-int64(week)*86400*7) + t.sec
	return week, sec
}

/* day of year (1-366) for a gps week/tow ------------------------------------*/
func dayOfYear(week int, tow float64) int {
	var ep [6]float64
	time2Epoch(gpsT2Time(week, tow), ep[:])
	t0 := epoch2Time([]float64{ep[0], 1, 1, 0, 0, 0})
	return int((gpsT2Time(week, tow).time-t0.time)/86400) + 1
}

/* substring (position i, width n) to number; legacy D/d exponents accepted.
* returns 0.0 on blank or malformed fields */
func str2Num(s string, i, n int) float64 {
	if i < 0 || len(s) <= i {
		return 0.0
	}
	if i+n > len(s) {
		s = s[i:]
	} else {
		s = s[i : i+n]
	}
	str := strings.NewReplacer("d", "E", "D", "E").Replace(s)
	str = strings.TrimSpace(str)
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0.0
	}
	return v
}

/* substring to int, 0 on blank or malformed ---------------------------------*/
func str2Int(s string, i, n int) int {
	return int(str2Num(s, i, n))
}

/* true if the substring holds only spaces (or lies past the end) ------------*/
func blankField(s string, i, n int) bool {
	if i >= len(s) {
		return true
	}
	if i+n > len(s) {
		n = len(s) - i
	}
	return len(strings.TrimSpace(s[i:i+n])) == 0
}

/* parse a RINEX date-time field starting at position i, width n.
* two-digit years are mapped to 1980-2079. returns ok=false on a field that
* does not hold six numbers */
func str2Time(s string, i, n int) (t gtime, ok bool) {
	var ep [6]float64
	if i < 0 || len(s) < i+n || n < 17 {
		return t, false
	}
	sub := s[i : i+n]
	fields := strings.Fields(strings.NewReplacer("D", "E", "d", "E").Replace(sub))
	if len(fields) < 6 {
		return t, false
	}
	for k := 0; k < 6; k++ {
		v, err := strconv.ParseFloat(fields[k], 64)
		if err != nil {
			return t, false
		}
		ep[k] = v
	}
	if ep[0] < 80.0 {
		ep[0] += 2000.0
	} else if ep[0] < 100.0 {
		ep[0] += 1900.0
	}
	return epoch2Time(ep[:]), true
}

/* file creation stamp for PGM / RUN BY / DATE (yyyymmdd hhmmss UTC) ---------*/
func runDate() string {
	return time.Now().UTC().Format("20060102 150405") + " UTC"
}
