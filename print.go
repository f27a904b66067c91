/*------------------------------------------------------------------------------
* print.go : RINEX header, observation epoch and navigation epoch emission
*
* notes  : header lines carry their value in columns 1-60 and the label text
*          in columns 61-80. Every line is built as a 60-column value string
*          and emitted through hdLine, so column layout stays in one place
*          per record kind. Navigation numeric fields use the legacy D
*          exponent letter.
*-----------------------------------------------------------------------------*/
package gorinex

import (
	"fmt"
	"io"
	"math"
	"strings"
)

/* format a navigation data field: fixed-point mantissa of n digits with the
* legacy D exponent, total width n+7 */
func navf(value float64, n int) string {
	e := math.Floor(math.Log10(math.Abs(value)) + 1.0)
	if math.Abs(value) < 1e-99 {
		e = 0.0
	}
	sign := " "
	if value < 0.0 {
		sign = "-"
	}
	return fmt.Sprintf(" %s.%0*.0f%s%+03.0f", sign, n,
		math.Abs(value)/math.Pow(10.0, e-float64(n)), "D", e)
}

/* emit one 80-column header line ---------------------------------------------*/
func hdLine(w io.Writer, value, label string) error {
	_, err := fmt.Fprintf(w, "%-60.60s%-20s\n", value, label)
	return err
}

/* one observable field: value F14.3 plus loss-of-lock and strength digits,
* blank when the digit is zero or the field is absent */
func obsField(present bool, value float64, lol, strg int) string {
	if !present {
		return strings.Repeat(" ", 16)
	}
	s := fmt.Sprintf("%14.3f", value)
	if lol > 0 {
		s += fmt.Sprintf("%1d", lol%10)
	} else {
		s += " "
	}
	if strg > 0 {
		s += fmt.Sprintf("%1d", strg%10)
	} else {
		s += " "
	}
	return s
}

/* PrintObsHeader emits the observation file header: labels holding data are
* printed in canonical declaration order; an obligatory label without data
* fails the print before anything is written. */
func (r *RinexData) PrintObsHeader(w io.Writer) error {
	return r.printHeader(w, obsMsk, obsObl)
}

/* PrintNavHeader emits the navigation file header under the same rules. ----*/
func (r *RinexData) PrintNavHeader(w io.Writer) error {
	return r.printHeader(w, navMsk, navObl)
}

func (r *RinexData) printHeader(w io.Writer, mask, obl int) error {
	var missing []string
	for i := range r.labels {
		ld := &r.labels[i]
		if !ld.inVersion(r.version) || ld.mask&mask != obl {
			continue
		}
		if !ld.hasData {
			missing = append(missing, ld.text)
		}
	}
	if len(missing) > 0 {
		for _, m := range missing {
			r.logger.Trace(LvlSevere, "%s is obligatory, but has not data", m)
		}
		return ErrNoObligData
	}
	for i := range r.labels {
		ld := &r.labels[i]
		if !ld.hasData || !ld.inVersion(r.version) || ld.mask&mask == 0 {
			continue
		}
		if err := r.printHdLineData(w, ld, mask); err != nil {
			return err
		}
	}
	return nil
}

/* emit the line (or lines) of one header record ------------------------------*/
func (r *RinexData) printHdLineData(w io.Writer, ld *labelData, mask int) error {
	switch ld.id {
	case VERSION:
		ftype, sys := "OBSERVATION DATA", sysDes(r.sysToPrt)
		if mask == navMsk {
			switch {
			case r.version == V304:
				ftype = "N: GNSS NAV DATA"
			case r.fileType == 'G':
				ftype, sys = "GLONASS NAV DATA", ""
			case r.fileType == 'H':
				ftype, sys = "GEO NAV MSG DATA", ""
			default:
				ftype, sys = "NAVIGATION DATA", ""
			}
		}
		return hdLine(w, fmt.Sprintf("%9.2f%11s%-20.20s%-20.20s", verNumber(r.version), "", ftype, sys), ld.text)
	case RUNBY:
		return hdLine(w, fmt.Sprintf("%-20.20s%-20.20s%-20.20s", r.pgm, r.runby, r.date), ld.text)
	case COMM:
		for _, c := range r.comments {
			if err := hdLine(w, c, ld.text); err != nil {
				return err
			}
		}
		return nil
	case MRKNAME:
		return hdLine(w, r.markerName, ld.text)
	case MRKNUMBER:
		return hdLine(w, fmt.Sprintf("%-20.20s", r.markerNumber), ld.text)
	case MRKTYPE:
		return hdLine(w, fmt.Sprintf("%-20.20s", r.markerType), ld.text)
	case AGENCY:
		return hdLine(w, fmt.Sprintf("%-20.20s%-40.40s", r.observer, r.agency), ld.text)
	case RECEIVER:
		return hdLine(w, fmt.Sprintf("%-20.20s%-20.20s%-20.20s", r.rxNumber, r.rxType, r.rxVersion), ld.text)
	case ANTTYPE:
		return hdLine(w, fmt.Sprintf("%-20.20s%-20.20s", r.antNumber, r.antType), ld.text)
	case APPXYZ:
		return hdLine(w, fmt.Sprintf("%14.4f%14.4f%14.4f", r.aproxX, r.aproxY, r.aproxZ), ld.text)
	case ANTHEN:
		return hdLine(w, fmt.Sprintf("%14.4f%14.4f%14.4f", r.antHigh, r.eccEast, r.eccNorth), ld.text)
	case ANTXYZ:
		return hdLine(w, fmt.Sprintf("%14.4f%14.4f%14.4f", r.antX, r.antY, r.antZ), ld.text)
	case ANTPHC:
		return hdLine(w, fmt.Sprintf("%c %-3.3s%9.4f%14.4f%14.4f", r.antPhSys, r.antPhCode,
			r.antPhNoX, r.antPhEoY, r.antPhUoZ), ld.text)
	case ANTBS:
		return hdLine(w, fmt.Sprintf("%14.4f%14.4f%14.4f", r.antBoreX, r.antBoreY, r.antBoreZ), ld.text)
	case ANTZDAZI:
		return hdLine(w, fmt.Sprintf("%14.4f", r.antZdAzi), ld.text)
	case ANTZDXYZ:
		return hdLine(w, fmt.Sprintf("%14.4f%14.4f%14.4f", r.antZdX, r.antZdY, r.antZdZ), ld.text)
	case COFM:
		return hdLine(w, fmt.Sprintf("%14.4f%14.4f%14.4f", r.centerX, r.centerY, r.centerZ), ld.text)
	case WVLEN:
		for _, f := range r.wvlenFactor {
			val := fmt.Sprintf("%6d%6d", f.l1, f.l2)
			if len(f.satNums) > 0 {
				val += fmt.Sprintf("%6d", len(f.satNums))
				for _, s := range f.satNums {
					val += fmt.Sprintf("   %3.3s", s)
				}
			}
			if err := hdLine(w, val, ld.text); err != nil {
				return err
			}
		}
		return nil
	case TOBS:
		return r.printObsTypesV2(w, ld.text)
	case SYS:
		return r.printObsTypesV3(w, ld.text)
	case SIGU:
		return hdLine(w, fmt.Sprintf("%-20.20s", r.signalUnit), ld.text)
	case INT:
		return hdLine(w, fmt.Sprintf("%10.3f", r.obsInterval), ld.text)
	case TOFO:
		return r.printTimeObs(w, ld.text, r.firstObsWeek, r.firstObsTOW)
	case TOLO:
		return r.printTimeObs(w, ld.text, r.lastObsWeek, r.lastObsTOW)
	case CLKOFFS:
		return hdLine(w, fmt.Sprintf("%6d", r.rcvClkOffs), ld.text)
	case DCBS, PCVS:
		list := r.dcbsApp
		if ld.id == PCVS {
			list = r.pcvsApp
		}
		for _, d := range list {
			if err := hdLine(w, fmt.Sprintf("%c %-17.17s %-40.40s",
				r.systems[d.sysIndex].system, d.corrProg, d.corrSource), ld.text); err != nil {
				return err
			}
		}
		return nil
	case SCALE:
		for _, s := range r.obsScaleFact {
			val := fmt.Sprintf("%c %4d", r.systems[s.sysIndex].system, s.factor)
			if len(s.obsType) > 0 {
				val += fmt.Sprintf("  %2d", len(s.obsType))
				for _, c := range s.obsType {
					val += fmt.Sprintf(" %3.3s", c)
				}
			}
			if err := hdLine(w, val, ld.text); err != nil {
				return err
			}
		}
		return nil
	case PHSH:
		for _, p := range r.phshCorrection {
			val := fmt.Sprintf("%c %3.3s %8.5f", r.systems[p.sysIndex].system, p.obsCode, p.correction)
			if len(p.obsSats) > 0 {
				val += fmt.Sprintf("  %2d", len(p.obsSats))
				for _, s := range p.obsSats {
					val += fmt.Sprintf(" %3.3s", s)
				}
			}
			if err := hdLine(w, val, ld.text); err != nil {
				return err
			}
		}
		return nil
	case GLSLT:
		n := len(r.gloSltFrq)
		for i := 0; i < n || i == 0; i += 8 {
			val := "   "
			if i == 0 {
				val = fmt.Sprintf("%3d", n)
			}
			for k := 0; k < 8 && i+k < n; k++ {
				val += fmt.Sprintf(" R%02d %2d", r.gloSltFrq[i+k].slot, r.gloSltFrq[i+k].frqNum)
			}
			if err := hdLine(w, val, ld.text); err != nil {
				return err
			}
		}
		return nil
	case GLPHS:
		val := ""
		for i := 0; i < 4; i++ {
			code, bias := "", 0.0
			if i < len(r.gloPhsBias) {
				code, bias = r.gloPhsBias[i].obsCode, r.gloPhsBias[i].bias
			}
			val += fmt.Sprintf(" %3.3s %8.3f", code, bias)
		}
		return hdLine(w, val, ld.text)
	case SATS:
		return hdLine(w, fmt.Sprintf("%6d", r.numOfSat), ld.text)
	case PRNOBS:
		for _, p := range r.prnObsNum {
			val := fmt.Sprintf("   %c%02d", p.sysPrn, p.satPrn)
			for _, n := range p.obsNum {
				val += fmt.Sprintf("%6d", n)
			}
			if err := hdLine(w, val, ld.text); err != nil {
				return err
			}
		}
		return nil
	case LEAP:
		if len(r.leapSecs) == 0 {
			return nil
		}
		l := r.leapSecs[0]
		if r.version == V210 {
			return hdLine(w, fmt.Sprintf("%6d", l.secs), ld.text)
		}
		sys := ""
		if l.sysID != 0 {
			sys = string(l.sysID)
		}
		return hdLine(w, fmt.Sprintf("%6d%6d%6d%6d%-3s", l.secs, l.deltaLSF, l.weekLSF, l.dayLSF, sys), ld.text)
	case IONA, IONB, IONC, DUTC, CORRT, GEOT, TIMC:
		return r.printCorrections(w, ld)
	case EOH:
		return hdLine(w, "", ld.text)
	}
	r.logger.Trace(LvlSevere, "internal error: invalid label id in printHdLineData=%d", ld.id)
	return ErrBadLabel
}

/* V210 # / TYPES OF OBSERV: the V2 translation of the printable codes of the
* first selected system, nine codes per line */
func (r *RinexData) printObsTypesV2(w io.Writer, label string) error {
	var codes []string
	for i := range r.systems {
		if !r.systems[i].selSystem {
			continue
		}
		for _, c := range r.systems[i].printableCodes() {
			if v2 := V3ToV2Obs(c); v2 != "" {
				codes = append(codes, v2)
			}
		}
		break
	}
	if len(codes) == 0 {
		r.logger.Trace(LvlSevere, "number of observation types not specified")
		return ErrNoObligData
	}
	val := fmt.Sprintf("%6d", len(codes))
	for i, c := range codes {
		if i > 0 && i%9 == 0 {
			if err := hdLine(w, val, label); err != nil {
				return err
			}
			val = "      "
		}
		val += fmt.Sprintf("%6s", c)
	}
	return hdLine(w, val, label)
}

/* V304 SYS / # / OBS TYPES: one record per selected system, thirteen codes
* per line, continuation lines indented */
func (r *RinexData) printObsTypesV3(w io.Writer, label string) error {
	for i := range r.systems {
		g := &r.systems[i]
		if !g.selSystem {
			continue
		}
		codes := g.printableCodes()
		if len(codes) == 0 {
			continue
		}
		val := fmt.Sprintf("%c  %3d", g.system, len(codes))
		for j, c := range codes {
			if j > 0 && j%13 == 0 {
				if err := hdLine(w, val, label); err != nil {
					return err
				}
				val = "      "
			}
			val += fmt.Sprintf(" %3.3s", c)
		}
		if err := hdLine(w, val, label); err != nil {
			return err
		}
	}
	return nil
}

func (r *RinexData) printTimeObs(w io.Writer, label string, week int, tow float64) error {
	var ep [6]float64
	time2Epoch(gpsT2Time(week, tow), ep[:])
	return hdLine(w, fmt.Sprintf("  %04.0f    %02.0f    %02.0f    %02.0f    %02.0f   %010.7f     %-12.12s",
		ep[0], ep[1], ep[2], ep[3], ep[4], ep[5], timeDes(r.obsTimeSys)), label)
}

/* emit the correction records belonging to one header label ------------------*/
func (r *RinexData) printCorrections(w io.Writer, ld *labelData) error {
	for _, c := range r.corrections {
		var owner LabelID
		switch {
		case isIonoCorrection(c.corrType):
			owner = IONC
		case isTimeCorrection(c.corrType):
			owner = TIMC
		default:
			owner = c.corrType
		}
		if owner != ld.id {
			continue
		}
		var val string
		switch ld.id {
		case IONA, IONB:
			val = "  "
			for i := 0; i < 4; i++ {
				val += " " + navf(c.values[i], 4)
			}
		case IONC:
			val = fmt.Sprintf("%-4.4s ", corrDesignator[c.corrType])
			for i := 0; i < 4; i++ {
				val += " " + navf(c.values[i], 4)
			}
		case DUTC:
			val = "   " + navf(c.values[0], 12) + navf(c.values[1], 12) +
				fmt.Sprintf("%9.0f%9.0f", c.values[2], c.values[3])
		case CORRT:
			val = fmt.Sprintf("%6.0f%6.0f%6.0f   ", c.values[0], c.values[1], c.values[2]) +
				navf(c.values[3], 12)
		case GEOT:
			val = "   " + navf(c.values[0], 12) + navf(c.values[1], 12) +
				fmt.Sprintf("%7.0f%5.0f", c.values[2], c.values[3])
		case TIMC:
			val = fmt.Sprintf("%-4.4s ", corrDesignator[c.corrType]) +
				navf(c.values[0], 10) + navf(c.values[1], 9) +
				fmt.Sprintf("%7.0f%5.0f", c.values[2], c.values[3])
		}
		if err := hdLine(w, val, ld.text); err != nil {
			return err
		}
	}
	return nil
}

/* PrintObsEpoch emits the current epoch: the epoch line with time, flag and
* satellite count or special record count, then one observable line set per
* satellite in canonical order (flags 0, 1, 6), or the freshly set header
* lines (flags 2-5). The caller is responsible for printing the header
* first; nothing here enforces the ordering. */
func (r *RinexData) PrintObsEpoch(w io.Writer) error {
	if r.epochWeek < 0 {
		r.logger.Trace(LvlSevere, "no epoch time set")
		return ErrNoEpoch
	}
	if r.epochFlag >= 2 && r.epochFlag <= 5 {
		return r.printObsEpochEvent(w)
	}
	r.sortObs()

	/* distinct satellites in canonical order */
	type satKey struct {
		sysIx, sat int
	}
	var sats []satKey
	for _, o := range r.epochObs {
		if len(sats) == 0 || sats[len(sats)-1] != (satKey{o.sysIndex, o.satellite}) {
			sats = append(sats, satKey{o.sysIndex, o.satellite})
		}
	}

	var ep [6]float64
	time2Epoch(gpsT2Time(r.epochWeek, r.epochTOW), ep[:])

	if r.version == V210 {
		line := fmt.Sprintf(" %02d %02.0f %02.0f %02.0f %02.0f %010.7f  %d%3d",
			int(ep[0])%100, ep[1], ep[2], ep[3], ep[4], ep[5], r.epochFlag, len(sats))
		for i, s := range sats {
			if i == 12 {
				break
			}
			line += fmt.Sprintf("%c%02d", r.systems[s.sysIx].system, s.sat)
		}
		if r.epochClkOffset != 0.0 {
			line = fmt.Sprintf("%-68.68s%12.9f", line, r.epochClkOffset)
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
		for i := 12; i < len(sats); i++ {
			if (i-12)%12 == 0 && i > 12 {
				if _, err := fmt.Fprintf(w, "\n"); err != nil {
					return err
				}
			}
			if (i-12)%12 == 0 {
				if _, err := fmt.Fprintf(w, "%32s", ""); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%c%02d", r.systems[sats[i].sysIx].system, sats[i].sat); err != nil {
				return err
			}
		}
		if len(sats) > 12 {
			if _, err := fmt.Fprintf(w, "\n"); err != nil {
				return err
			}
		}
	} else {
		line := fmt.Sprintf("> %04.0f %02.0f %02.0f %02.0f %02.0f %010.7f  %d%3d",
			ep[0], ep[1], ep[2], ep[3], ep[4], ep[5], r.epochFlag, len(sats))
		if r.epochClkOffset != 0.0 {
			line = fmt.Sprintf("%-41.41s%15.12f", line, r.epochClkOffset)
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}

	for _, s := range sats {
		if err := r.printSatObsValues(w, s.sysIx, s.sat); err != nil {
			return err
		}
	}
	return nil
}

/* one satellite's observable fields in the printable catalog order ----------*/
func (r *RinexData) printSatObsValues(w io.Writer, sysIx, sat int) error {
	g := &r.systems[sysIx]
	var line string
	if r.version == V304 {
		line = fmt.Sprintf("%c%02d", g.system, sat)
	}
	nprt := 0
	for obsIx := range g.obsTypes {
		if !g.obsTypes[obsIx].prt {
			continue
		}
		if r.version == V210 && nprt > 0 && nprt%5 == 0 {
			if _, err := fmt.Fprintf(w, "%s\n", strings.TrimRight(line, " ")); err != nil {
				return err
			}
			line = ""
		}
		field := obsField(false, 0, 0, 0)
		for _, o := range r.epochObs {
			if o.sysIndex == sysIx && o.satellite == sat && o.obsTypeIndex == obsIx {
				field = obsField(true, o.obsValue, o.lossOfLock, o.strength)
				break
			}
		}
		line += field
		nprt++
	}
	_, err := fmt.Fprintf(w, "%s\n", strings.TrimRight(line, " "))
	return err
}

/* special event epoch (flags 2-5): epoch line with the count of header lines
* carrying data, then those lines. ClearHeaderData beforehand makes this
* print only the records set for the event. */
func (r *RinexData) printObsEpochEvent(w io.Writer) error {
	var lines []*labelData
	for i := range r.labels {
		ld := &r.labels[i]
		if !ld.hasData || !ld.inVersion(r.version) || ld.mask&obsMsk == 0 {
			continue
		}
		if ld.id == VERSION || ld.id == EOH {
			continue
		}
		lines = append(lines, ld)
	}
	n := 0
	for _, ld := range lines {
		n += r.hdLineCount(ld)
	}
	var ep [6]float64
	time2Epoch(gpsT2Time(r.epochWeek, r.epochTOW), ep[:])
	var err error
	if r.version == V210 {
		_, err = fmt.Fprintf(w, " %02d %02.0f %02.0f %02.0f %02.0f %010.7f  %d%3d\n",
			int(ep[0])%100, ep[1], ep[2], ep[3], ep[4], ep[5], r.epochFlag, n)
	} else {
		_, err = fmt.Fprintf(w, "> %04.0f %02.0f %02.0f %02.0f %02.0f %010.7f  %d%3d\n",
			ep[0], ep[1], ep[2], ep[3], ep[4], ep[5], r.epochFlag, n)
	}
	if err != nil {
		return err
	}
	for _, ld := range lines {
		if err := r.printHdLineData(w, ld, obsMsk); err != nil {
			return err
		}
	}
	return nil
}

/* number of physical lines a header record will occupy ----------------------*/
func (r *RinexData) hdLineCount(ld *labelData) int {
	switch ld.id {
	case COMM:
		return len(r.comments)
	case WVLEN:
		return len(r.wvlenFactor)
	case DCBS:
		return len(r.dcbsApp)
	case PCVS:
		return len(r.pcvsApp)
	case SCALE:
		return len(r.obsScaleFact)
	case PHSH:
		return len(r.phshCorrection)
	case PRNOBS:
		return len(r.prnObsNum)
	}
	return 1
}

/* PrintObsEOF emits the closing comment record of an observation file. ------*/
func (r *RinexData) PrintObsEOF(w io.Writer) error {
	return hdLine(w, "END OF FILE", "COMMENT")
}

/* PrintNavEpochs emits one navigation block per retained record in canonical
* order: the satellite / time tag / clock line followed by the
* system-specific count of four-coefficient continuation lines. In V210 only
* records of the system matching the configured file type are printed. */
func (r *RinexData) PrintNavEpochs(w io.Writer) error {
	r.sortNav()
	for i := range r.epochNav {
		nv := &r.epochNav[i]
		if r.version == V210 && nv.systemID != v2NavSystem(r.fileType) {
			r.logger.Trace(LvlWarning, "ephemeris for sat %c%02d not printable in this V2.10 file type",
				nv.systemID, nv.satellite)
			continue
		}
		if err := r.printNavEpoch(w, nv); err != nil {
			return err
		}
	}
	return nil
}

/* satellite system a V210 navigation file type carries ----------------------*/
func v2NavSystem(ftype byte) byte {
	switch ftype {
	case 'G':
		return 'R'
	case 'H':
		return 'S'
	}
	return 'G'
}

/* broadcast orbit lines (including the clock line) per system ---------------*/
func boLines(sys byte) int {
	switch sys {
	case 'R', 'S', 'J':
		return 4
	}
	return 8
}

func (r *RinexData) printNavEpoch(w io.Writer, nv *satNavData) error {
	var ep [6]float64
	time2Epoch(tag2Time(nv.navTimeTag), ep[:])

	var line, sep string
	if r.version == V210 {
		sep = "   "
		line = fmt.Sprintf("%2d %02d %02.0f %02.0f %02.0f %02.0f %04.1f",
			nv.satellite, int(ep[0])%100, ep[1], ep[2], ep[3], ep[4], ep[5])
	} else {
		sep = "    "
		line = fmt.Sprintf("%c%02d %04.0f %02.0f %02.0f %02.0f %02.0f %02.0f",
			nv.systemID, nv.satellite, ep[0], ep[1], ep[2], ep[3], ep[4], ep[5])
	}
	line += navf(nv.broadcastOrbit[0][0], 12) + navf(nv.broadcastOrbit[0][1], 12) +
		navf(nv.broadcastOrbit[0][2], 12)
	if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
		return err
	}
	for ln := 1; ln < boLines(nv.systemID); ln++ {
		line = sep
		for c := 0; c < BOMaxCols; c++ {
			line += navf(nv.broadcastOrbit[ln][c], 12)
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

/* time tag (seconds since the GPS reference epoch) to gtime -----------------*/
func tag2Time(tTag float64) gtime {
	t := epoch2Time(gpst0)
	s := math.Floor(tTag)
	t.time += int64(s)
	t.sec = tTag - s
	return t
}

/* GetObsFileName synthesizes the conventional observation file name from the
* current epoch time: the V2 short station-day-session form, or the V3 long
* form with station, country and period fields. Fails when no epoch time has
* been set. */
func (r *RinexData) GetObsFileName(prefix, country string) (string, error) {
	return r.fileName(prefix, country, true)
}

/* GetNavFileName is the navigation file counterpart of GetObsFileName. ------*/
func (r *RinexData) GetNavFileName(prefix, country string) (string, error) {
	return r.fileName(prefix, country, false)
}

func (r *RinexData) fileName(prefix, country string, obs bool) (string, error) {
	if r.epochWeek < 0 {
		r.logger.Trace(LvlSevere, "output file name cannot be set")
		return "", ErrNoEpoch
	}
	if len(prefix) < 4 {
		prefix = (prefix + "XXXX")[:4]
	}
	prefix = strings.ToUpper(prefix[:4])
	var ep [6]float64
	time2Epoch(gpsT2Time(r.epochWeek, r.epochTOW), ep[:])
	doy := dayOfYear(r.epochWeek, r.epochTOW)
	if r.version == V210 {
		t := byte('O')
		if !obs {
			t = 'N'
			if r.fileType == 'G' || r.fileType == 'H' {
				t = r.fileType
			}
		}
		return fmt.Sprintf("%s%03d0.%02d%c", prefix, doy, int(ep[0])%100, t), nil
	}
	if country == "" {
		country = "---"
	}
	suffix := "MO"
	if obs {
		suffix = fmt.Sprintf("%s_%s", dataFrequency(r.obsInterval), suffix)
	} else {
		suffix = "MN"
	}
	return fmt.Sprintf("%s00%-3.3s_R_%04.0f%03d%02.0f%02.0f_%s_%s.rnx",
		prefix, country, ep[0], doy, ep[3], ep[4], r.filePeriod(), suffix), nil
}

/* file period field of the V3 long name, from the span between the first and
* last observation times when both are known */
func (r *RinexData) filePeriod() string {
	if !r.getLabelFlag(TOFO) || !r.getLabelFlag(TOLO) {
		return "01D"
	}
	span := float64(r.lastObsWeek-r.firstObsWeek)*secWeek + r.lastObsTOW - r.firstObsTOW
	switch {
	case span <= 0:
		return "01D"
	case span <= 900.0:
		return "15M"
	case span <= 3600.0:
		return "01H"
	}
	return "01D"
}

/* data frequency field of the V3 long observation name ----------------------*/
func dataFrequency(interval float64) string {
	switch {
	case interval >= 60.0:
		return fmt.Sprintf("%02.0fM", interval/60.0)
	case interval >= 1.0:
		return fmt.Sprintf("%02.0fS", interval)
	case interval > 0.0:
		return fmt.Sprintf("%02.0fZ", 1.0/interval)
	}
	return "30S"
}
