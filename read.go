/*------------------------------------------------------------------------------
* read.go : RINEX header, observation epoch and navigation epoch parsing
*
* notes  : the reader fills the same in-memory model the setters fill, from an
*          already open V2.10 or V3.04 file. The version of the input file is
*          taken from its version record and drives the epoch parsers; the
*          object's own version only matters again when printing. Malformed
*          lines fail their record, are reported through the logger and never
*          corrupt data already read.
*-----------------------------------------------------------------------------*/
package gorinex

import (
	"bufio"
	"io"
	"strings"
)

/* trimmed substring at position i, width n; tolerant of short lines */
func subStr(s string, i, n int) string {
	if i >= len(s) {
		return ""
	}
	if i+n > len(s) {
		n = len(s) - i
	}
	return strings.TrimSpace(s[i : i+n])
}

func charAt(s string, i int) byte {
	if i >= len(s) {
		return ' '
	}
	return s[i]
}

/* multi-line header records carry parse state between calls */
type readState struct {
	v2TypesLeft int      /* # / TYPES OF OBSERV codes still expected */
	v2Types     []string /* raw V2 codes collected so far */
	sysChar     byte     /* system of a pending SYS / # / OBS TYPES */
	sysLeft     int
	sysCodes    []string
	gloLeft     int /* GLONASS SLOT / FRQ # pairs still expected */
}

/* ReadRinexHeader consumes header lines up to and including END OF HEADER and
* stores every recognized record. Returns the label that ended the read: EOH
* on success, LASTONE when the file ended first. Unknown labels are reported
* and skipped. */
func (r *RinexData) ReadRinexHeader(rd *bufio.Reader) (LabelID, error) {
	var st readState
	for {
		line, err := rd.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if len(line) == 0 && err != nil {
			r.logger.Trace(LvlSevere, "unexpected end of file while reading header")
			return LASTONE, ErrBadFormat
		}
		label := ""
		if len(line) > 60 {
			label = line[60:]
		}
		id, _ := lookupLabel(label)
		if id == NOLABEL {
			r.logger.Trace(LvlWarning, "header label not identified: <%s>", label)
		} else if e := r.readHdLineData(line, id, &st); e != nil {
			r.logger.Trace(LvlWarning, "header line ignored: <%s>", label)
		}
		if id == EOH {
			return EOH, nil
		}
		if err != nil {
			r.logger.Trace(LvlSevere, "end of file before END OF HEADER")
			return LASTONE, ErrBadFormat
		}
	}
}

/* parse the value columns of one header line ---------------------------------*/
func (r *RinexData) readHdLineData(buff string, id LabelID, st *readState) error {
	switch id {
	case VERSION:
		if str2Num(buff, 0, 9) >= 3.0 {
			r.inFileVer = V304
		} else {
			r.inFileVer = V210
		}
		switch charAt(buff, 20) {
		case 'O':
			r.fileType = 'O'
		case 'N':
			r.fileType = 'N'
		case 'G':
			r.fileType = 'G'
		case 'H':
			r.fileType = 'H'
		default:
			r.logger.Trace(LvlWarning, "unknown file type in version record: %c", charAt(buff, 20))
		}
		sys := charAt(buff, 40)
		if sys == ' ' {
			sys = 'G'
		}
		if sysDes(sys) != "" {
			r.sysToPrt = sys
		}
		r.setLabelFlag(VERSION, true)
	case RUNBY:
		r.pgm = subStr(buff, 0, 20)
		r.runby = subStr(buff, 20, 20)
		r.date = subStr(buff, 40, 20)
		r.setLabelFlag(RUNBY, true)
	case COMM:
		if len(buff) > 60 {
			buff = buff[:60]
		}
		r.comments = append(r.comments, strings.TrimRight(buff, " "))
		r.setLabelFlag(COMM, true)
	case MRKNAME:
		r.markerName = subStr(buff, 0, 60)
		r.setLabelFlag(MRKNAME, true)
	case MRKNUMBER:
		r.markerNumber = subStr(buff, 0, 20)
		r.setLabelFlag(MRKNUMBER, true)
	case MRKTYPE:
		r.markerType = subStr(buff, 0, 20)
		r.setLabelFlag(MRKTYPE, true)
	case AGENCY:
		r.observer = subStr(buff, 0, 20)
		r.agency = subStr(buff, 20, 40)
		r.setLabelFlag(AGENCY, true)
	case RECEIVER:
		r.rxNumber = subStr(buff, 0, 20)
		r.rxType = subStr(buff, 20, 20)
		r.rxVersion = subStr(buff, 40, 20)
		r.setLabelFlag(RECEIVER, true)
	case ANTTYPE:
		r.antNumber = subStr(buff, 0, 20)
		r.antType = subStr(buff, 20, 20)
		r.setLabelFlag(ANTTYPE, true)
	case APPXYZ:
		r.aproxX, r.aproxY, r.aproxZ = str2Num(buff, 0, 14), str2Num(buff, 14, 14), str2Num(buff, 28, 14)
		r.setLabelFlag(APPXYZ, true)
	case ANTHEN:
		r.antHigh, r.eccEast, r.eccNorth = str2Num(buff, 0, 14), str2Num(buff, 14, 14), str2Num(buff, 28, 14)
		r.setLabelFlag(ANTHEN, true)
	case ANTXYZ:
		r.antX, r.antY, r.antZ = str2Num(buff, 0, 14), str2Num(buff, 14, 14), str2Num(buff, 28, 14)
		r.setLabelFlag(ANTXYZ, true)
	case ANTPHC:
		r.antPhSys = charAt(buff, 0)
		r.antPhCode = subStr(buff, 2, 3)
		r.antPhNoX = str2Num(buff, 5, 9)
		r.antPhEoY = str2Num(buff, 14, 14)
		r.antPhUoZ = str2Num(buff, 28, 14)
		r.setLabelFlag(ANTPHC, true)
	case ANTBS:
		r.antBoreX, r.antBoreY, r.antBoreZ = str2Num(buff, 0, 14), str2Num(buff, 14, 14), str2Num(buff, 28, 14)
		r.setLabelFlag(ANTBS, true)
	case ANTZDAZI:
		r.antZdAzi = str2Num(buff, 0, 14)
		r.setLabelFlag(ANTZDAZI, true)
	case ANTZDXYZ:
		r.antZdX, r.antZdY, r.antZdZ = str2Num(buff, 0, 14), str2Num(buff, 14, 14), str2Num(buff, 28, 14)
		r.setLabelFlag(ANTZDXYZ, true)
	case COFM:
		r.centerX, r.centerY, r.centerZ = str2Num(buff, 0, 14), str2Num(buff, 14, 14), str2Num(buff, 28, 14)
		r.setLabelFlag(COFM, true)
	case WVLEN:
		f := wvlnFactor{l1: str2Int(buff, 0, 6), l2: str2Int(buff, 6, 6)}
		n := str2Int(buff, 12, 6)
		for k := 0; k < n; k++ {
			if s := subStr(buff, 21+6*k, 3); s != "" {
				f.satNums = append(f.satNums, s)
			}
		}
		r.wvlenFactor = append(r.wvlenFactor, f)
		r.setLabelFlag(WVLEN, true)
	case TOBS:
		return r.readObsTypesV2(buff, st)
	case SYS:
		return r.readObsTypesV3(buff, st)
	case SIGU:
		r.signalUnit = subStr(buff, 0, 20)
		r.setLabelFlag(SIGU, true)
	case INT:
		r.obsInterval = str2Num(buff, 0, 10)
		r.setLabelFlag(INT, true)
	case TOFO, TOLO:
		t, ok := str2Time(buff, 0, 43)
		if !ok {
			r.logger.Trace(LvlSevere, "error reading date and time: <%s>", buff)
			return ErrBadFormat
		}
		week, tow := time2GpsT(t)
		if id == TOFO {
			r.firstObsWeek, r.firstObsTOW = week, tow
			r.obsTimeSys = timeSysID(subStr(buff, 48, 3))
		} else {
			r.lastObsWeek, r.lastObsTOW = week, tow
		}
		r.setLabelFlag(id, true)
	case CLKOFFS:
		r.rcvClkOffs = str2Int(buff, 0, 6)
		r.setLabelFlag(CLKOFFS, true)
	case DCBS, PCVS:
		rec := dcbsPcvsApp{
			sysIndex:   r.ensureInputSystem(charAt(buff, 0)),
			corrProg:   subStr(buff, 2, 17),
			corrSource: subStr(buff, 20, 40),
		}
		if rec.sysIndex < 0 {
			return ErrUnknownSys
		}
		if id == DCBS {
			r.dcbsApp = append(r.dcbsApp, rec)
		} else {
			r.pcvsApp = append(r.pcvsApp, rec)
		}
		r.setLabelFlag(id, true)
	case SCALE:
		ix := r.ensureInputSystem(charAt(buff, 0))
		if ix < 0 {
			return ErrUnknownSys
		}
		rec := oScaleFact{sysIndex: ix, factor: str2Int(buff, 2, 4)}
		n := str2Int(buff, 8, 2)
		for k := 0; k < n; k++ {
			if s := subStr(buff, 11+4*k, 3); s != "" {
				rec.obsType = append(rec.obsType, s)
			}
		}
		r.obsScaleFact = append(r.obsScaleFact, rec)
		r.setLabelFlag(SCALE, true)
	case PHSH:
		ix := r.ensureInputSystem(charAt(buff, 0))
		if ix < 0 {
			return ErrUnknownSys
		}
		rec := phshCorr{sysIndex: ix, obsCode: subStr(buff, 2, 3), correction: str2Num(buff, 6, 8)}
		n := str2Int(buff, 14, 4)
		for k := 0; k < n; k++ {
			if s := subStr(buff, 19+4*k, 3); s != "" {
				rec.obsSats = append(rec.obsSats, s)
			}
		}
		r.phshCorrection = append(r.phshCorrection, rec)
		r.setLabelFlag(PHSH, true)
	case GLSLT:
		if st.gloLeft == 0 {
			st.gloLeft = str2Int(buff, 0, 3)
		}
		for k := 0; k < 8 && st.gloLeft > 0; k++ {
			if blankField(buff, 3+7*k, 7) {
				break
			}
			r.gloSltFrq = append(r.gloSltFrq, gloSltFrq{
				slot:   str2Int(buff, 5+7*k, 2),
				frqNum: str2Int(buff, 8+7*k, 2),
			})
			st.gloLeft--
		}
		r.setLabelFlag(GLSLT, true)
	case GLPHS:
		for k := 0; k < 4; k++ {
			if code := subStr(buff, 1+13*k, 3); code != "" {
				r.gloPhsBias = append(r.gloPhsBias, gloPhsBias{code, str2Num(buff, 5+13*k, 8)})
			}
		}
		r.setLabelFlag(GLPHS, true)
	case SATS:
		r.numOfSat = str2Int(buff, 0, 6)
		r.setLabelFlag(SATS, true)
	case PRNOBS:
		rec := prnObsNum{sysPrn: charAt(buff, 3), satPrn: str2Int(buff, 4, 2)}
		for k := 0; k < 9 && !blankField(buff, 6+6*k, 6); k++ {
			rec.obsNum = append(rec.obsNum, str2Int(buff, 6+6*k, 6))
		}
		r.prnObsNum = append(r.prnObsNum, rec)
		r.setLabelFlag(PRNOBS, true)
	case LEAP:
		l := leapSecs{secs: str2Int(buff, 0, 6)}
		if r.inFileVer == V304 {
			l.deltaLSF = str2Int(buff, 6, 6)
			l.weekLSF = str2Int(buff, 12, 6)
			l.dayLSF = str2Int(buff, 18, 6)
			if s := subStr(buff, 24, 3); s != "" {
				l.sysID = s[0]
			}
		}
		r.leapSecs = append(r.leapSecs, l)
		r.setLabelFlag(LEAP, true)
	case IONA, IONB:
		c := correction{corrType: id}
		for k := 0; k < 4; k++ {
			c.values[k] = str2Num(buff, 2+12*k, 12)
		}
		r.corrections = append(r.corrections, c)
		r.setLabelFlag(id, true)
	case IONC:
		ct := corrByDesignator(subStr(buff, 0, 4))
		if !isIonoCorrection(ct) {
			r.logger.Trace(LvlSevere, "unknown iono correction type: <%s>", subStr(buff, 0, 4))
			return ErrBadFormat
		}
		c := correction{corrType: ct}
		for k := 0; k < 4; k++ {
			c.values[k] = str2Num(buff, 5+12*k, 12)
		}
		r.corrections = append(r.corrections, c)
		r.setLabelFlag(IONC, true)
	case DUTC:
		r.corrections = append(r.corrections, correction{corrType: DUTC, values: [6]float64{
			str2Num(buff, 3, 19), str2Num(buff, 22, 19), str2Num(buff, 41, 9), str2Num(buff, 50, 9)}})
		r.setLabelFlag(DUTC, true)
	case CORRT:
		r.corrections = append(r.corrections, correction{corrType: CORRT, values: [6]float64{
			str2Num(buff, 0, 6), str2Num(buff, 6, 6), str2Num(buff, 12, 6), str2Num(buff, 21, 19)}})
		r.setLabelFlag(CORRT, true)
	case GEOT:
		r.corrections = append(r.corrections, correction{corrType: GEOT, values: [6]float64{
			str2Num(buff, 3, 19), str2Num(buff, 22, 19), str2Num(buff, 41, 7), str2Num(buff, 48, 5)}})
		r.setLabelFlag(GEOT, true)
	case TIMC:
		ct := corrByDesignator(subStr(buff, 0, 4))
		if !isTimeCorrection(ct) {
			r.logger.Trace(LvlSevere, "unknown time correction type: <%s>", subStr(buff, 0, 4))
			return ErrBadFormat
		}
		r.corrections = append(r.corrections, correction{corrType: ct, values: [6]float64{
			str2Num(buff, 5, 17), str2Num(buff, 22, 16), str2Num(buff, 38, 7), str2Num(buff, 45, 5)}})
		r.setLabelFlag(TIMC, true)
	case EOH:
		r.setLabelFlag(EOH, true)
	}
	return nil
}

/* V210 # / TYPES OF OBSERV: nine codes per line, continuation lines repeat
* the label. The declared V2 codes apply to every system of the file; their
* V3 translations populate the catalog as systems appear. */
func (r *RinexData) readObsTypesV2(buff string, st *readState) error {
	if st.v2TypesLeft == 0 && len(st.v2Types) == 0 {
		st.v2TypesLeft = str2Int(buff, 0, 6)
		if st.v2TypesLeft <= 0 {
			r.logger.Trace(LvlSevere, "number of observable types not stated: <%s>", buff)
			return ErrBadFormat
		}
	}
	for k := 0; k < 9 && st.v2TypesLeft > 0; k++ {
		code := subStr(buff, 6+6*k, 6)
		if code == "" {
			break
		}
		st.v2Types = append(st.v2Types, code)
		st.v2TypesLeft--
	}
	if st.v2TypesLeft > 0 {
		return nil
	}
	if r.inObsTypes == nil {
		r.inObsTypes = make(map[byte][]string)
	}
	r.inObsTypes[0] = st.v2Types
	if r.sysToPrt != 'M' {
		r.ensureInputSystem(r.sysToPrt)
	}
	return nil
}

/* V304 SYS / # / OBS TYPES: thirteen codes per line, continuation lines have
* a blank system column */
func (r *RinexData) readObsTypesV3(buff string, st *readState) error {
	if charAt(buff, 0) != ' ' {
		st.sysChar = charAt(buff, 0)
		st.sysLeft = str2Int(buff, 3, 3)
		st.sysCodes = nil
		if st.sysLeft <= 0 {
			r.logger.Trace(LvlSevere, "number of observable types not stated: <%s>", buff)
			return ErrBadFormat
		}
	}
	for k := 0; k < 13 && st.sysLeft > 0; k++ {
		code := subStr(buff, 7+4*k, 3)
		if code == "" {
			break
		}
		st.sysCodes = append(st.sysCodes, code)
		st.sysLeft--
	}
	if st.sysLeft > 0 {
		return nil
	}
	if r.inObsTypes == nil {
		r.inObsTypes = make(map[byte][]string)
	}
	r.inObsTypes[st.sysChar] = st.sysCodes
	if sysDes(st.sysChar) == "" {
		r.logger.Trace(LvlWarning, "satellite system code unknown=%c", st.sysChar)
		return ErrUnknownSys
	}
	g := newGnssSystem(st.sysChar, st.sysCodes, r.version)
	if ix := r.sysIndex(st.sysChar); ix >= 0 {
		r.systems[ix] = g
	} else {
		r.systems = append(r.systems, g)
	}
	r.setCatalogFlag()
	return nil
}

/* register a system first seen in input data, deriving its observable codes
* from the declared input types, and return its catalog index */
func (r *RinexData) ensureInputSystem(sys byte) int {
	if ix := r.sysIndex(sys); ix >= 0 {
		return ix
	}
	if sysDes(sys) == "" {
		r.logger.Trace(LvlWarning, "satellite system code unknown=%c", sys)
		return -1
	}
	var codes []string
	if c, ok := r.inObsTypes[sys]; ok {
		codes = c
	} else if c, ok := r.inObsTypes[0]; ok {
		for _, v2 := range c {
			if v3 := V2ToV3Obs(v2); v3 != "" {
				codes = append(codes, v3)
			} else {
				r.logger.Trace(LvlWarning, "V2 observable type without translation: %s", v2)
			}
		}
	}
	r.systems = append(r.systems, newGnssSystem(sys, codes, r.version))
	r.setCatalogFlag()
	return len(r.systems) - 1
}

/* raise the catalog label of the configured output version ------------------*/
func (r *RinexData) setCatalogFlag() {
	if r.version == V210 {
		r.setLabelFlag(TOBS, true)
	} else {
		r.setLabelFlag(SYS, true)
	}
}

/* time system letter from its header description ----------------------------*/
func timeSysID(des string) byte {
	switch des {
	case "GLO":
		return 'R'
	case "GAL":
		return 'E'
	case "BDT":
		return 'C'
	case "QZS":
		return 'J'
	case "IRN":
		return 'I'
	}
	return 'G'
}

/* correction identifier from the designator of columns 1-4 ------------------*/
func corrByDesignator(des string) LabelID {
	for id, s := range corrDesignator {
		if s == des {
			return id
		}
	}
	return NOLABEL
}

/* ReadObsEpoch reads the next observation epoch from an input file whose
* header was already read: the epoch line, the satellite list and the
* per-satellite observable lines, stored through SetEpochTime and
* SaveObsData. A special event epoch (flags 2-5) instead reads the declared
* count of header lines. Returns the epoch flag; io.EOF cleanly ends the
* file. A malformed epoch is reported and skipped without touching epochs
* already delivered. */
func (r *RinexData) ReadObsEpoch(rd *bufio.Reader) (int, error) {
	if r.inFileVer == VTBD {
		r.logger.Trace(LvlSevere, "input file version not determined, header not read")
		return 0, ErrBadFormat
	}
	line, err := rd.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if len(line) == 0 && err != nil {
		return 0, io.EOF
	}
	if r.inFileVer == V304 {
		return r.readObsEpochV3(rd, line)
	}
	return r.readObsEpochV2(rd, line)
}

func (r *RinexData) readObsEpochV2(rd *bufio.Reader, line string) (int, error) {
	flag := str2Int(line, 26, 3)
	count := str2Int(line, 29, 3)
	t, ok := str2Time(line, 0, 26)
	if flag >= 2 && flag <= 5 {
		if blankField(line, 29, 3) || count <= 0 {
			r.logger.Trace(LvlSevere, "special record count missing in event epoch: <%s>", line)
			return flag, ErrBadFormat
		}
		return flag, r.readEpochEvent(rd, count, flag)
	}
	if !ok {
		r.logger.Trace(LvlSevere, "wrong observation epoch line: <%s>", line)
		return flag, ErrBadFormat
	}
	week, tow := time2GpsT(t)
	tag := r.SetEpochTime(week, tow, str2Num(line, 68, 12), flag)

	codes := r.inObsTypes[0]
	if len(codes) == 0 {
		r.logger.Trace(LvlSevere, "number of observable types not stated")
		return flag, ErrBadFormat
	}
	/* satellite list, twelve per line */
	type satID struct {
		sys byte
		prn int
	}
	sats := make([]satID, 0, count)
	for i := 0; i < count; i++ {
		if i > 0 && i%12 == 0 {
			next, e := rd.ReadString('\n')
			if e != nil && len(next) == 0 {
				r.logger.Trace(LvlSevere, "end of file inside epoch satellite list")
				return flag, ErrBadFormat
			}
			line = strings.TrimRight(next, "\r\n")
		}
		p := 32 + 3*(i%12)
		sys := charAt(line, p)
		if sys == ' ' {
			sys = 'G'
		}
		sats = append(sats, satID{sys, str2Int(line, p+1, 2)})
	}

	lastLineFields := (len(codes)-1)%5 + 1
	for _, s := range sats {
		r.ensureInputSystem(s.sys)
		var vline string
		for k, v2code := range codes {
			if k%5 == 0 {
				next, e := rd.ReadString('\n')
				if e != nil && len(next) == 0 {
					r.logger.Trace(LvlSevere, "end of file inside observation records")
					r.ClearObsData()
					return flag, ErrBadFormat
				}
				vline = strings.TrimRight(next, "\r\n")
			}
			f := 16 * (k % 5)
			if blankField(vline, f, 14) {
				continue
			}
			r.saveReadObs(s.sys, s.prn, V2ToV3Obs(v2code),
				str2Num(vline, f, 14), str2Int(vline, f+14, 1), str2Int(vline, f+15, 1), tag)
		}
		/* a populated field past the declared count means the header and the
		 * epoch disagree on the number of observable types */
		if !blankField(vline, 16*lastLineFields, 16) {
			r.logger.Trace(LvlSevere, "number of observable types mismatch: <%s>", vline)
			r.ClearObsData()
			return flag, ErrBadFormat
		}
	}
	return flag, nil
}

func (r *RinexData) readObsEpochV3(rd *bufio.Reader, line string) (int, error) {
	if charAt(line, 0) != '>' {
		r.logger.Trace(LvlSevere, "wrong observation epoch line: <%s>", line)
		return 0, ErrBadFormat
	}
	flag := str2Int(line, 31, 1)
	count := str2Int(line, 32, 3)
	if flag >= 2 && flag <= 5 {
		if blankField(line, 32, 3) || count <= 0 {
			r.logger.Trace(LvlSevere, "special record count missing in event epoch: <%s>", line)
			return flag, ErrBadFormat
		}
		return flag, r.readEpochEvent(rd, count, flag)
	}
	t, ok := str2Time(line, 1, 29)
	if !ok {
		r.logger.Trace(LvlSevere, "wrong observation epoch line: <%s>", line)
		return flag, ErrBadFormat
	}
	week, tow := time2GpsT(t)
	tag := r.SetEpochTime(week, tow, str2Num(line, 41, 15), flag)

	for i := 0; i < count; i++ {
		next, e := rd.ReadString('\n')
		if e != nil && len(next) == 0 {
			r.logger.Trace(LvlSevere, "end of file inside observation records")
			r.ClearObsData()
			return flag, ErrBadFormat
		}
		vline := strings.TrimRight(next, "\r\n")
		sys := charAt(vline, 0)
		prn := str2Int(vline, 1, 2)
		codes := r.inObsTypes[sys]
		if len(codes) == 0 {
			r.logger.Trace(LvlWarning, "satellite system not in SYS/TOBS records: %c", sys)
			continue
		}
		r.ensureInputSystem(sys)
		for k, code := range codes {
			f := 3 + 16*k
			if blankField(vline, f, 14) {
				continue
			}
			r.saveReadObs(sys, prn, code,
				str2Num(vline, f, 14), str2Int(vline, f+14, 1), str2Int(vline, f+15, 1), tag)
		}
	}
	return flag, nil
}

/* store one parsed observable; selection misses and range faults only skip
* the record */
func (r *RinexData) saveReadObs(sys byte, prn int, code string, value float64, lol, strg int, tag float64) {
	if code == "" {
		return
	}
	if err := r.SaveObsData(sys, prn, code, value, lol, strg, tag); err != nil &&
		err != ErrObsType && err != ErrRange {
		r.logger.Trace(LvlWarning, "observable not stored: %c%02d %s", sys, prn, code)
	}
}

/* special event epoch: read the declared count of header lines. A line that
* is no header record means the declared count and the records disagree, and
* fails the epoch; a new site occupation must carry a MARKER NAME record. */
func (r *RinexData) readEpochEvent(rd *bufio.Reader, count, flag int) error {
	var st readState
	marker := false
	for i := 0; i < count; i++ {
		line, err := rd.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if len(line) == 0 && err != nil {
			r.logger.Trace(LvlSevere, "end of file inside event epoch records")
			return ErrBadFormat
		}
		label := ""
		if len(line) > 60 {
			label = line[60:]
		}
		id, _ := lookupLabel(label)
		if id == NOLABEL {
			r.logger.Trace(LvlSevere, "special record count inconsistent, not a header line: <%s>", line)
			return ErrBadFormat
		}
		if id == MRKNAME {
			marker = true
		}
		if e := r.readHdLineData(line, id, &st); e != nil {
			r.logger.Trace(LvlWarning, "event record ignored: <%s>", label)
		}
	}
	if flag == 3 && !marker {
		r.logger.Trace(LvlSevere, "new site occupation event without MARKER NAME record")
		return ErrBadFormat
	}
	return nil
}

/* ReadNavEpoch reads the next navigation block: the satellite / time / clock
* line and the system-specific count of continuation lines, stored through
* SaveNavData. Navigation records accumulate across calls; only the epoch
* time advances. A block cut short by end of file fails rather than being
* zero-filled. */
func (r *RinexData) ReadNavEpoch(rd *bufio.Reader) error {
	if r.inFileVer == VTBD {
		r.logger.Trace(LvlSevere, "input file version not determined, header not read")
		return ErrBadFormat
	}
	line, err := rd.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if len(line) == 0 && err != nil {
		return io.EOF
	}
	var (
		sys               byte
		sat               int
		t                 gtime
		ok                bool
		firstOff, contOff int
	)
	if r.inFileVer == V304 {
		sys = charAt(line, 0)
		sat = str2Int(line, 1, 2)
		t, ok = str2Time(line, 3, 20)
		firstOff, contOff = 23, 4
	} else {
		sys = v2NavSystem(r.fileType)
		sat = str2Int(line, 0, 2)
		t, ok = str2Time(line, 2, 20)
		firstOff, contOff = 22, 3
	}
	if !ok || sat <= 0 || sysDes(sys) == "" {
		r.logger.Trace(LvlSevere, "wrong navigation epoch line: <%s>", line)
		return ErrBadFormat
	}
	var bo [BOMaxLins][BOMaxCols]float64
	for k := 0; k < 3; k++ {
		bo[0][k] = str2Num(line, firstOff+19*k, 19)
	}
	for ln := 1; ln < boLines(sys); ln++ {
		next, e := rd.ReadString('\n')
		cont := strings.TrimRight(next, "\r\n")
		if len(cont) == 0 && e != nil {
			r.logger.Trace(LvlSevere, "incomplete navigation record for sat %c%02d", sys, sat)
			return ErrBadFormat
		}
		for k := 0; k < BOMaxCols; k++ {
			bo[ln][k] = str2Num(cont, contOff+19*k, 19)
		}
	}
	week, tow := time2GpsT(t)
	tag := float64(week)*secWeek + tow
	r.epochWeek, r.epochTOW, r.epochTimeTag = week, tow, tow
	r.epochFlag = 0
	return r.SaveNavData(sys, sat, bo, tag)
}
