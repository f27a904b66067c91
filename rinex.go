/*------------------------------------------------------------------------------
* rinex.go : RinexData container for RINEX V2.10 / V3.04 file data
*
* notes  : a RinexData object holds header records, the current observation
*          epoch and satellite navigation ephemerides for one RINEX file, in
*          either direction: data accumulated through the setters is printed
*          as spec-compliant RINEX text, and existing files of either version
*          are read back into the same model for inspection, filtering or
*          re-emission in the other version.
*
*          the object is single-threaded: one instance per goroutine, or
*          external locking. All failures are reported through the logger and
*          an explicit error; none is fatal and none leaves a record half
*          written.
*-----------------------------------------------------------------------------*/
package gorinex

import "errors"

/* broadcast orbit matrix geometry */
const (
	BOMaxLins = 8 /* lines of four coefficients per navigation record */
	BOMaxCols = 4
)

/* observable value range fitting the F14.3 field */
const (
	MaxObsVal = 9999999999.999
	MinObsVal = -999999999.999
)

/* error taxonomy: schema mismatches, missing obligatory data, malformed
* input, structural errors. All are reported, never fatal. */
var (
	ErrBadLabel     = errors.New("label not valid for this method")
	ErrWrongVersion = errors.New("label cannot be used in this RINEX version")
	ErrNoObligData  = errors.New("obligatory header record has no data")
	ErrRange        = errors.New("observable value out of range")
	ErrUnknownSys   = errors.New("satellite system code unknown")
	ErrObsType      = errors.New("observable type not in SYS/TOBS records")
	ErrDuplicate    = errors.New("navigation record already exists")
	ErrBadFormat    = errors.New("wrong data format in line")
	ErrNoEpoch      = errors.New("no epoch time set")
	ErrBadFilter    = errors.New("invalid filter token")
)

type wvlnFactor struct {
	l1, l2  int
	satNums []string /* empty for the default factor record */
}

type dcbsPcvsApp struct {
	sysIndex   int
	corrProg   string
	corrSource string
}

type oScaleFact struct {
	sysIndex int
	factor   int
	obsType  []string /* empty: all observable types involved */
}

type phshCorr struct {
	sysIndex   int
	obsCode    string
	correction float64
	obsSats    []string /* empty: all satellites of the system */
}

type gloSltFrq struct {
	slot   int
	frqNum int /* -7..+6 */
}

type gloPhsBias struct {
	obsCode string
	bias    float64
}

type leapSecs struct {
	secs     int
	deltaLSF int
	weekLSF  int
	dayLSF   int
	sysID    byte
}

type prnObsNum struct {
	sysPrn byte
	satPrn int
	obsNum []int
}

/* ionospheric or time system correction record. values depend on the kind:
* iono: [0-3] parameters, [4] time mark, [5] source satellite;
* time: [0-1] a0/a1, [2] reference tow, [3] reference week, [4] UTC id,
*       [5] source satellite or provider */
type correction struct {
	corrType LabelID
	values   [6]float64
}

/* one observation: value of one observable for one satellite in the current
* epoch. Canonical order (system, satellite, observable) ascending. */
type satObsData struct {
	sysIndex     int
	satellite    int
	obsTypeIndex int
	obsValue     float64
	lossOfLock   int
	strength     int
}

/* one navigation record: broadcast orbit coefficients of one satellite with a
* system-specific time tag, preserved verbatim. Canonical order (time tag,
* system, satellite) ascending. */
type satNavData struct {
	navTimeTag     float64
	systemID       byte
	satellite      int
	broadcastOrbit [BOMaxLins][BOMaxCols]float64
}

type RinexData struct {
	labels   []labelData /* per-instance label registry */
	labelIdx int

	version   RnxVer /* version of the output file */
	inFileVer RnxVer /* version of the input file, when one was read */
	fileType  byte   /* O, N, G, H (V210); O, N (V304) */
	sysToPrt  byte   /* system of the version record (G,R,E,C,J,S,I,M) */

	pgm, runby, date string
	comments         []string
	markerName       string
	markerNumber     string
	markerType       string
	observer, agency string
	rxNumber         string
	rxType           string
	rxVersion        string
	antNumber        string
	antType          string

	aproxX, aproxY, aproxZ        float64
	antHigh, eccEast, eccNorth    float64
	antX, antY, antZ              float64
	antPhSys                      byte
	antPhCode                     string
	antPhNoX, antPhEoY, antPhUoZ  float64
	antBoreX, antBoreY, antBoreZ  float64
	antZdAzi                      float64
	antZdX, antZdY, antZdZ        float64
	centerX, centerY, centerZ     float64

	wvlenFactor []wvlnFactor
	systems     []gnssSystem /* the system / observable catalog */
	signalUnit  string
	obsInterval float64

	firstObsWeek int
	firstObsTOW  float64
	obsTimeSys   byte
	lastObsWeek  int
	lastObsTOW   float64
	rcvClkOffs   int

	dcbsApp        []dcbsPcvsApp
	pcvsApp        []dcbsPcvsApp
	obsScaleFact   []oScaleFact
	phshCorrection []phshCorr
	gloSltFrq      []gloSltFrq
	gloPhsBias     []gloPhsBias
	leapSecs       []leapSecs
	numOfSat       int
	prnObsNum      []prnObsNum
	corrections    []correction

	/* current epoch */
	epochWeek      int /* extended GPS week, -1 until SetEpochTime */
	epochTOW       float64
	epochClkOffset float64
	epochFlag      int
	epochTimeTag   float64
	epochObs       []satObsData
	epochNav       []satNavData

	/* declared observable order of an input file, per system */
	inObsTypes map[byte][]string

	filterSetted bool

	logger *Logger
}

/* NewRinexData creates a container that will print the given RINEX version.
* A nil logger installs a no-op sink owned by the object; a caller-supplied
* logger is borrowed and never closed. */
func NewRinexData(ver RnxVer, logger *Logger) *RinexData {
	r := &RinexData{
		version:   ver,
		inFileVer: VTBD,
		fileType:  'O',
		sysToPrt:  'M',
		epochWeek: -1,
		logger:    logger,
	}
	if r.logger == nil {
		r.logger = NewLogger(nil, 0)
	}
	r.labels = make([]labelData, len(labelTemplate))
	copy(r.labels, labelTemplate)
	r.setLabelFlag(VERSION, true)
	r.setLabelFlag(EOH, true)
	return r
}

/* NewRinexDataPgm additionally records the PGM / RUN BY / DATE data. --------*/
func NewRinexDataPgm(ver RnxVer, pgm, runby string, logger *Logger) *RinexData {
	r := NewRinexData(ver, logger)
	r.pgm, r.runby, r.date = pgm, runby, runDate()
	r.setLabelFlag(RUNBY, true)
	return r
}

/* Version returns the configured output version. ----------------------------*/
func (r *RinexData) Version() RnxVer { return r.version }

/* InFileVersion returns the version of the last file read, VTBD before any
* read (the INFILEVER pseudolabel of the original design). */
func (r *RinexData) InFileVersion() RnxVer { return r.inFileVer }

/* SetFileDataType states the file type of the version record: 'O' for
* observation, 'N' for navigation ('G' GLONASS nav, 'H' GEO nav in V210).
* sys selects the satellite system letter of the record ('M' for mixed). */
func (r *RinexData) SetFileDataType(ftype, sys byte) error {
	switch ftype {
	case 'O', 'N':
	case 'G', 'H':
		if r.version != V210 {
			r.logger.Trace(LvlSevere, "file type %c only valid in V2.10", ftype)
			return ErrWrongVersion
		}
	default:
		r.logger.Trace(LvlSevere, "unknown file type %c", ftype)
		return ErrBadFormat
	}
	if sysDes(sys) == "" {
		r.logger.Trace(LvlSevere, "satellite system code unknown=%c", sys)
		return ErrUnknownSys
	}
	r.fileType, r.sysToPrt = ftype, sys
	r.setLabelFlag(VERSION, true)
	return nil
}

/* version number of a RnxVer as printed in the version record ---------------*/
func verNumber(v RnxVer) float64 {
	if v == V210 {
		return 2.10
	}
	return 3.04
}
