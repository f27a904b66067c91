/*------------------------------------------------------------------------------
* label.go : RINEX header label registry
*
* reference :
*     [1] W.Gurtner, RINEX: The Receiver Independent Exchange Format Version
*         2.10, Astronomical Institute, University of Berne, 2002
*     [2] RINEX The Receiver Independent Exchange Format Version 3.04,
*         IGS RINEX Working Group and RTCM-SC104, November 23, 2018
*
* notes  : every header record kind carries a tagged identifier, the canonical
*          label text of columns 61-80, the RINEX version it belongs to, and
*          an obligation mask per file kind. The full set is built once per
*          RinexData object; only the per-instance hasData flags mutate.
*-----------------------------------------------------------------------------*/
package gorinex

import "strings"

/* RINEX versions handled by this package */
type RnxVer int

const (
	V210 RnxVer = iota /* RINEX version 2.10 */
	V304               /* RINEX version 3.04 */
	VALL               /* labels valid in both versions */
	VTBD               /* version not determined */
)

/* header record label identifiers */
type LabelID int

const (
	NOLABEL   LabelID = iota /* no label recognized */
	VERSION                  /* RINEX VERSION / TYPE */
	RUNBY                    /* PGM / RUN BY / DATE */
	COMM                     /* COMMENT */
	MRKNAME                  /* MARKER NAME */
	MRKNUMBER                /* MARKER NUMBER */
	MRKTYPE                  /* MARKER TYPE (V304) */
	AGENCY                   /* OBSERVER / AGENCY */
	RECEIVER                 /* REC # / TYPE / VERS */
	ANTTYPE                  /* ANT # / TYPE */
	APPXYZ                   /* APPROX POSITION XYZ */
	ANTHEN                   /* ANTENNA: DELTA H/E/N */
	ANTXYZ                   /* ANTENNA: DELTA X/Y/Z (V304) */
	ANTPHC                   /* ANTENNA: PHASECENTER (V304) */
	ANTBS                    /* ANTENNA: B.SIGHT XYZ (V304) */
	ANTZDAZI                 /* ANTENNA: ZERODIR AZI (V304) */
	ANTZDXYZ                 /* ANTENNA: ZERODIR XYZ (V304) */
	COFM                     /* CENTER OF MASS: XYZ (V304) */
	WVLEN                    /* WAVELENGTH FACT L1/2 (V210) */
	TOBS                     /* # / TYPES OF OBSERV (V210) */
	SYS                      /* SYS / # / OBS TYPES (V304) */
	SIGU                     /* SIGNAL STRENGTH UNIT (V304) */
	INT                      /* INTERVAL */
	TOFO                     /* TIME OF FIRST OBS */
	TOLO                     /* TIME OF LAST OBS */
	CLKOFFS                  /* RCV CLOCK OFFS APPL */
	DCBS                     /* SYS / DCBS APPLIED (V304) */
	PCVS                     /* SYS / PCVS APPLIED (V304) */
	SCALE                    /* SYS / SCALE FACTOR (V304) */
	PHSH                     /* SYS / PHASE SHIFT (V304) */
	GLSLT                    /* GLONASS SLOT / FRQ # (V304) */
	GLPHS                    /* GLONASS COD/PHS/BIS (V304) */
	SATS                     /* # OF SATELLITES */
	PRNOBS                   /* PRN / # OF OBS */
	IONA                     /* ION ALPHA (GPS nav V210) */
	IONB                     /* ION BETA (GPS nav V210) */
	IONC                     /* IONOSPHERIC CORR (nav V304) */
	DUTC                     /* DELTA-UTC: A0,A1,T,W (GPS nav V210) */
	CORRT                    /* CORR TO SYSTEM TIME (GLONASS nav V210) */
	GEOT                     /* D-UTC A0,A1,T,W,S,U (GEO nav V210) */
	TIMC                     /* TIME SYSTEM CORR (nav V304) */
	LEAP                     /* LEAP SECONDS */
	EOH                      /* END OF HEADER */

	/* ionospheric correction designators (payload of IONC) */
	IONC_GAL
	IONC_GPSA
	IONC_GPSB
	IONC_QZSA
	IONC_QZSB
	IONC_BDSA
	IONC_BDSB
	IONC_IRNA
	IONC_IRNB
	/* time system correction designators (payload of TIMC) */
	TIMC_GPUT
	TIMC_GLUT
	TIMC_GAUT
	TIMC_BDUT
	TIMC_QZUT
	TIMC_IRUT
	TIMC_SBUT
	TIMC_GLGP
	TIMC_GAGP
	TIMC_QZGP
	TIMC_IRGP

	INFILEVER /* pseudolabel: version read from an input file */
	DONTMATCH /* label exists, but not in this RINEX version */
	LASTONE   /* end of label table; also EOF while reading */
)

/* obligation mask bits, one pair per file kind */
const (
	obsNap = 0x00 /* not applicable to observation files */
	obsObl = 0x01 /* obligatory in observation files */
	obsOpt = 0x02 /* optional in observation files */
	obsMsk = 0x03
	navNap = 0x00
	navObl = 0x04 /* obligatory in navigation files */
	navOpt = 0x08 /* optional in navigation files */
	navMsk = 0x0C
)

type labelData struct {
	id      LabelID
	text    string /* canonical text of columns 61-80 */
	ver     RnxVer /* version the label belongs to */
	mask    int    /* obligation bits */
	hasData bool
}

/* static template for the per-object label table; declaration order is the
* printing order of header lines */
var labelTemplate = []labelData{
	{id: VERSION, text: "RINEX VERSION / TYPE", ver: VALL, mask: obsObl | navObl},
	{id: RUNBY, text: "PGM / RUN BY / DATE", ver: VALL, mask: obsObl | navObl},
	{id: COMM, text: "COMMENT", ver: VALL, mask: obsOpt | navOpt},
	{id: MRKNAME, text: "MARKER NAME", ver: VALL, mask: obsObl | navNap},
	{id: MRKNUMBER, text: "MARKER NUMBER", ver: VALL, mask: obsOpt | navNap},
	{id: MRKTYPE, text: "MARKER TYPE", ver: V304, mask: obsObl | navNap},
	{id: AGENCY, text: "OBSERVER / AGENCY", ver: VALL, mask: obsObl | navNap},
	{id: RECEIVER, text: "REC # / TYPE / VERS", ver: VALL, mask: obsObl | navNap},
	{id: ANTTYPE, text: "ANT # / TYPE", ver: VALL, mask: obsObl | navNap},
	{id: APPXYZ, text: "APPROX POSITION XYZ", ver: VALL, mask: obsObl | navNap},
	{id: ANTHEN, text: "ANTENNA: DELTA H/E/N", ver: VALL, mask: obsObl | navNap},
	{id: ANTXYZ, text: "ANTENNA: DELTA X/Y/Z", ver: V304, mask: obsOpt | navNap},
	{id: ANTPHC, text: "ANTENNA: PHASECENTER", ver: V304, mask: obsOpt | navNap},
	{id: ANTBS, text: "ANTENNA: B.SIGHT XYZ", ver: V304, mask: obsOpt | navNap},
	{id: ANTZDAZI, text: "ANTENNA: ZERODIR AZI", ver: V304, mask: obsOpt | navNap},
	{id: ANTZDXYZ, text: "ANTENNA: ZERODIR XYZ", ver: V304, mask: obsOpt | navNap},
	{id: COFM, text: "CENTER OF MASS: XYZ", ver: V304, mask: obsOpt | navNap},
	{id: WVLEN, text: "WAVELENGTH FACT L1/2", ver: V210, mask: obsOpt | navNap},
	{id: TOBS, text: "# / TYPES OF OBSERV", ver: V210, mask: obsObl | navNap},
	{id: SYS, text: "SYS / # / OBS TYPES", ver: V304, mask: obsObl | navNap},
	{id: SIGU, text: "SIGNAL STRENGTH UNIT", ver: V304, mask: obsOpt | navNap},
	{id: INT, text: "INTERVAL", ver: VALL, mask: obsOpt | navNap},
	{id: TOFO, text: "TIME OF FIRST OBS", ver: VALL, mask: obsObl | navNap},
	{id: TOLO, text: "TIME OF LAST OBS", ver: VALL, mask: obsOpt | navNap},
	{id: CLKOFFS, text: "RCV CLOCK OFFS APPL", ver: VALL, mask: obsOpt | navNap},
	{id: DCBS, text: "SYS / DCBS APPLIED", ver: V304, mask: obsOpt | navNap},
	{id: PCVS, text: "SYS / PCVS APPLIED", ver: V304, mask: obsOpt | navNap},
	{id: SCALE, text: "SYS / SCALE FACTOR", ver: V304, mask: obsOpt | navNap},
	{id: PHSH, text: "SYS / PHASE SHIFT", ver: V304, mask: obsOpt | navNap},
	{id: GLSLT, text: "GLONASS SLOT / FRQ #", ver: V304, mask: obsOpt | navNap},
	{id: GLPHS, text: "GLONASS COD/PHS/BIS", ver: V304, mask: obsOpt | navNap},
	{id: SATS, text: "# OF SATELLITES", ver: VALL, mask: obsOpt | navOpt},
	{id: PRNOBS, text: "PRN / # OF OBS", ver: VALL, mask: obsOpt | navNap},
	{id: IONA, text: "ION ALPHA", ver: V210, mask: obsNap | navOpt},
	{id: IONB, text: "ION BETA", ver: V210, mask: obsNap | navOpt},
	{id: IONC, text: "IONOSPHERIC CORR", ver: V304, mask: obsNap | navOpt},
	{id: DUTC, text: "DELTA-UTC: A0,A1,T,W", ver: V210, mask: obsNap | navOpt},
	{id: CORRT, text: "CORR TO SYSTEM TIME", ver: V210, mask: obsNap | navOpt},
	{id: GEOT, text: "D-UTC A0,A1,T,W,S,U", ver: V210, mask: obsNap | navOpt},
	{id: TIMC, text: "TIME SYSTEM CORR", ver: V304, mask: obsNap | navOpt},
	{id: LEAP, text: "LEAP SECONDS", ver: VALL, mask: obsOpt | navOpt},
	{id: EOH, text: "END OF HEADER", ver: VALL, mask: obsObl | navObl},
}

/* correction designators as they appear in columns 1-4 of IONOSPHERIC CORR
* and TIME SYSTEM CORR records */
var corrDesignator = map[LabelID]string{
	IONC_GAL: "GAL", IONC_GPSA: "GPSA", IONC_GPSB: "GPSB",
	IONC_QZSA: "QZSA", IONC_QZSB: "QZSB", IONC_BDSA: "BDSA",
	IONC_BDSB: "BDSB", IONC_IRNA: "IRNA", IONC_IRNB: "IRNB",
	TIMC_GPUT: "GPUT", TIMC_GLUT: "GLUT", TIMC_GAUT: "GAUT",
	TIMC_BDUT: "BDUT", TIMC_QZUT: "QZUT", TIMC_IRUT: "IRUT",
	TIMC_SBUT: "SBUT", TIMC_GLGP: "GLGP", TIMC_GAGP: "GAGP",
	TIMC_QZGP: "QZGP", TIMC_IRGP: "IRGP",
}

func isIonoCorrection(id LabelID) bool { return id >= IONC_GAL && id <= IONC_IRNB }
func isTimeCorrection(id LabelID) bool { return id >= TIMC_GPUT && id <= TIMC_IRGP }

/* label valid in the given version ------------------------------------------*/
func (ld *labelData) inVersion(v RnxVer) bool {
	return ld.ver == VALL || ld.ver == v
}

func (r *RinexData) findLabel(id LabelID) *labelData {
	for i := range r.labels {
		if r.labels[i].id == id {
			return &r.labels[i]
		}
	}
	return nil
}

func (r *RinexData) setLabelFlag(id LabelID, val bool) {
	if ld := r.findLabel(id); ld != nil {
		ld.hasData = val
	}
}

func (r *RinexData) getLabelFlag(id LabelID) bool {
	ld := r.findLabel(id)
	return ld != nil && ld.hasData
}

/* LblToID resolves the label text of columns 61-80 to its identifier, scoped
* to the object's configured version: DONTMATCH is returned for a label that
* only exists in the other version, NOLABEL for unknown text. */
func (r *RinexData) LblToID(label string) LabelID {
	id, ld := lookupLabel(label)
	if ld == nil {
		return id
	}
	if !ld.inVersion(r.version) {
		return DONTMATCH
	}
	return id
}

/* unscoped lookup shared with the reader, which resolves against the input
* file version rather than the configured output version */
func lookupLabel(label string) (LabelID, *labelData) {
	label = strings.TrimRight(label, " \r\n")
	for i := range labelTemplate {
		if strings.HasPrefix(label, labelTemplate[i].text) {
			return labelTemplate[i].id, &labelTemplate[i]
		}
	}
	return NOLABEL, nil
}

/* IDToLbl is the inverse of LblToID; defined for every identifier. ----------*/
func (r *RinexData) IDToLbl(id LabelID) string {
	for i := range labelTemplate {
		if labelTemplate[i].id == id {
			return labelTemplate[i].text
		}
	}
	if s, ok := corrDesignator[id]; ok {
		return s
	}
	return ""
}

/* Get1stLabelID restarts the iteration over labels currently holding data and
* returns the first one, or LASTONE when none has data. */
func (r *RinexData) Get1stLabelID() LabelID {
	r.labelIdx = 0
	return r.GetNextLabelID()
}

/* GetNextLabelID continues the iteration started by Get1stLabelID. ----------*/
func (r *RinexData) GetNextLabelID() LabelID {
	for ; r.labelIdx < len(r.labels); r.labelIdx++ {
		if r.labels[r.labelIdx].hasData {
			id := r.labels[r.labelIdx].id
			r.labelIdx++
			return id
		}
	}
	return LASTONE
}

/* ClearHeaderData resets every hasData flag and the stored header values to
* their defaults. Epoch observation and navigation collections are retained.
* Meant to run before populating the header records of a special event epoch
* (flags 2-5), which reprints only the records freshly set afterwards. */
func (r *RinexData) ClearHeaderData() {
	for i := range r.labels {
		r.labels[i].hasData = false
	}
	r.comments = nil
	r.markerName, r.markerNumber, r.markerType = "", "", ""
	r.observer, r.agency = "", ""
	r.rxNumber, r.rxType, r.rxVersion = "", "", ""
	r.antNumber, r.antType = "", ""
	r.aproxX, r.aproxY, r.aproxZ = 0, 0, 0
	r.antHigh, r.eccEast, r.eccNorth = 0, 0, 0
	r.antX, r.antY, r.antZ = 0, 0, 0
	r.antPhSys, r.antPhCode = 0, ""
	r.antPhNoX, r.antPhEoY, r.antPhUoZ = 0, 0, 0
	r.antBoreX, r.antBoreY, r.antBoreZ = 0, 0, 0
	r.antZdAzi = 0
	r.antZdX, r.antZdY, r.antZdZ = 0, 0, 0
	r.centerX, r.centerY, r.centerZ = 0, 0, 0
	r.wvlenFactor = nil
	r.signalUnit = ""
	r.obsInterval = 0
	r.firstObsWeek, r.firstObsTOW, r.obsTimeSys = 0, 0, 0
	r.lastObsWeek, r.lastObsTOW = 0, 0
	r.rcvClkOffs = 0
	r.dcbsApp, r.pcvsApp = nil, nil
	r.obsScaleFact = nil
	r.phshCorrection = nil
	r.gloSltFrq = nil
	r.gloPhsBias = nil
	r.leapSecs = nil
	r.numOfSat = 0
	r.prnObsNum = nil
	r.corrections = nil
	r.systems = nil
}
