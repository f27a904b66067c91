/*------------------------------------------------------------------------------
* header.go : typed storage for RINEX header records
*
* notes  : the original design dispatched on many overloaded setters/getters;
*          here each payload category has one set/get pair, and a static
*          check verifies the requested label belongs to the category and to
*          the configured version before any state is touched. A successful
*          set raises the label's hasData flag; gets never mutate flags.
*          Geometry records overwrite; the "SYS / ..." families append, since
*          RINEX allows several such lines per system.
*-----------------------------------------------------------------------------*/
package gorinex

/* verify rl is one of the valid labels for a category and usable in the
* configured version. Returns the registry entry or an error, state untouched */
func (r *RinexData) checkLabel(rl LabelID, valid ...LabelID) (*labelData, error) {
	ok := false
	for _, v := range valid {
		if rl == v {
			ok = true
			break
		}
	}
	if !ok {
		r.logger.Trace(LvlSevere, "%s: wrong label for this data (setHdLnData)", r.IDToLbl(rl))
		return nil, ErrBadLabel
	}
	ld := r.findLabel(rl)
	if ld == nil {
		r.logger.Trace(LvlSevere, "invalid label id=%d", rl)
		return nil, ErrBadLabel
	}
	if !ld.inVersion(r.version) {
		r.logger.Trace(LvlSevere, "%s cannot be used in this RINEX version", ld.text)
		return nil, ErrWrongVersion
	}
	return ld, nil
}

/* SetHdLnStr stores a string-shaped header record. Valid labels and their
* fields: RUNBY (program, run-by), COMM (comment), MRKNAME, MRKNUMBER,
* MRKTYPE, AGENCY (observer, agency), RECEIVER (number, type, version),
* ANTTYPE (number, type), SIGU (unit). Unused arguments are ignored. */
func (r *RinexData) SetHdLnStr(rl LabelID, a, b, c string) error {
	ld, err := r.checkLabel(rl, RUNBY, COMM, MRKNAME, MRKNUMBER, MRKTYPE,
		AGENCY, RECEIVER, ANTTYPE, SIGU)
	if err != nil {
		return err
	}
	switch rl {
	case RUNBY:
		r.pgm, r.runby, r.date = a, b, c
		if r.date == "" {
			r.date = runDate()
		}
	case COMM:
		r.comments = append(r.comments, a)
	case MRKNAME:
		r.markerName = a
	case MRKNUMBER:
		r.markerNumber = a
	case MRKTYPE:
		r.markerType = a
	case AGENCY:
		r.observer, r.agency = a, b
	case RECEIVER:
		r.rxNumber, r.rxType, r.rxVersion = a, b, c
	case ANTTYPE:
		r.antNumber, r.antType = a, b
	case SIGU:
		r.signalUnit = a
	}
	ld.hasData = true
	return nil
}

/* GetHdLnStr reads back a string-shaped record. ----------------------------*/
func (r *RinexData) GetHdLnStr(rl LabelID) (a, b, c string, err error) {
	if _, err = r.checkLabel(rl, RUNBY, COMM, MRKNAME, MRKNUMBER, MRKTYPE,
		AGENCY, RECEIVER, ANTTYPE, SIGU); err != nil {
		return
	}
	switch rl {
	case RUNBY:
		a, b, c = r.pgm, r.runby, r.date
	case COMM:
		if len(r.comments) > 0 {
			a = r.comments[0]
		}
	case MRKNAME:
		a = r.markerName
	case MRKNUMBER:
		a = r.markerNumber
	case MRKTYPE:
		a = r.markerType
	case AGENCY:
		a, b = r.observer, r.agency
	case RECEIVER:
		a, b, c = r.rxNumber, r.rxType, r.rxVersion
	case ANTTYPE:
		a, b = r.antNumber, r.antType
	case SIGU:
		a = r.signalUnit
	}
	return
}

/* SetHdLnDbl stores a numeric header record. Triples: APPXYZ, ANTHEN (h,e,n),
* ANTXYZ, ANTBS, ANTZDXYZ, COFM. Singles (a only): INT, ANTZDAZI. Setting a
* geometry record overwrites the previous triple. */
func (r *RinexData) SetHdLnDbl(rl LabelID, a, b, c float64) error {
	ld, err := r.checkLabel(rl, APPXYZ, ANTHEN, ANTXYZ, ANTBS, ANTZDXYZ, COFM,
		INT, ANTZDAZI)
	if err != nil {
		return err
	}
	switch rl {
	case APPXYZ:
		r.aproxX, r.aproxY, r.aproxZ = a, b, c
	case ANTHEN:
		r.antHigh, r.eccEast, r.eccNorth = a, b, c
	case ANTXYZ:
		r.antX, r.antY, r.antZ = a, b, c
	case ANTBS:
		r.antBoreX, r.antBoreY, r.antBoreZ = a, b, c
	case ANTZDXYZ:
		r.antZdX, r.antZdY, r.antZdZ = a, b, c
	case COFM:
		r.centerX, r.centerY, r.centerZ = a, b, c
	case INT:
		r.obsInterval = a
	case ANTZDAZI:
		r.antZdAzi = a
	}
	ld.hasData = true
	return nil
}

/* GetHdLnDbl reads back a numeric record. -----------------------------------*/
func (r *RinexData) GetHdLnDbl(rl LabelID) (a, b, c float64, err error) {
	if _, err = r.checkLabel(rl, APPXYZ, ANTHEN, ANTXYZ, ANTBS, ANTZDXYZ, COFM,
		INT, ANTZDAZI); err != nil {
		return
	}
	switch rl {
	case APPXYZ:
		a, b, c = r.aproxX, r.aproxY, r.aproxZ
	case ANTHEN:
		a, b, c = r.antHigh, r.eccEast, r.eccNorth
	case ANTXYZ:
		a, b, c = r.antX, r.antY, r.antZ
	case ANTBS:
		a, b, c = r.antBoreX, r.antBoreY, r.antBoreZ
	case ANTZDXYZ:
		a, b, c = r.antZdX, r.antZdY, r.antZdZ
	case COFM:
		a, b, c = r.centerX, r.centerY, r.centerZ
	case INT:
		a = r.obsInterval
	case ANTZDAZI:
		a = r.antZdAzi
	}
	return
}

/* SetHdLnSysObs registers a system and its selected observable codes for the
* observable catalog. rl is TOBS (V210) or SYS (V304); codes are always given
* in V3 3-character form. A repeated system replaces its entry. */
func (r *RinexData) SetHdLnSysObs(rl LabelID, sys byte, obsCodes []string) error {
	ld, err := r.checkLabel(rl, TOBS, SYS)
	if err != nil {
		return err
	}
	if sysDes(sys) == "" {
		r.logger.Trace(LvlSevere, "satellite system code unknown=%c", sys)
		return ErrUnknownSys
	}
	g := newGnssSystem(sys, obsCodes, r.version)
	if ix := r.sysIndex(sys); ix >= 0 {
		r.systems[ix] = g
	} else {
		r.systems = append(r.systems, g)
	}
	ld.hasData = true
	return nil
}

/* GetHdLnSysObs reads the catalog entry at index: its system and the
* selected observable codes in catalog order. */
func (r *RinexData) GetHdLnSysObs(rl LabelID, index int) (sys byte, obsCodes []string, err error) {
	if _, err = r.checkLabel(rl, TOBS, SYS); err != nil {
		return
	}
	if index < 0 || index >= len(r.systems) {
		return 0, nil, ErrBadLabel
	}
	g := &r.systems[index]
	sys = g.system
	for i := range g.obsTypes {
		if g.obsTypes[i].sel {
			obsCodes = append(obsCodes, g.obsTypes[i].id)
		}
	}
	return
}

/* SetHdLnAntPhc stores the V304 ANTENNA: PHASECENTER record. ----------------*/
func (r *RinexData) SetHdLnAntPhc(sys byte, code string, x, y, z float64) error {
	ld, err := r.checkLabel(ANTPHC, ANTPHC)
	if err != nil {
		return err
	}
	r.antPhSys, r.antPhCode = sys, code
	r.antPhNoX, r.antPhEoY, r.antPhUoZ = x, y, z
	ld.hasData = true
	return nil
}

func (r *RinexData) GetHdLnAntPhc() (sys byte, code string, x, y, z float64, err error) {
	if _, err = r.checkLabel(ANTPHC, ANTPHC); err != nil {
		return
	}
	return r.antPhSys, r.antPhCode, r.antPhNoX, r.antPhEoY, r.antPhUoZ, nil
}

/* SetHdLnWvln appends a V210 WAVELENGTH FACT L1/2 record; an empty satellite
* list states the default factors. */
func (r *RinexData) SetHdLnWvln(l1, l2 int, sats []string) error {
	ld, err := r.checkLabel(WVLEN, WVLEN)
	if err != nil {
		return err
	}
	r.wvlenFactor = append(r.wvlenFactor, wvlnFactor{l1: l1, l2: l2, satNums: sats})
	ld.hasData = true
	return nil
}

/* SetHdLnInt stores an integer record: CLKOFFS or SATS. ---------------------*/
func (r *RinexData) SetHdLnInt(rl LabelID, a int) error {
	ld, err := r.checkLabel(rl, CLKOFFS, SATS)
	if err != nil {
		return err
	}
	if rl == CLKOFFS {
		r.rcvClkOffs = a
	} else {
		r.numOfSat = a
	}
	ld.hasData = true
	return nil
}

func (r *RinexData) GetHdLnInt(rl LabelID) (int, error) {
	if _, err := r.checkLabel(rl, CLKOFFS, SATS); err != nil {
		return 0, err
	}
	if rl == CLKOFFS {
		return r.rcvClkOffs, nil
	}
	return r.numOfSat, nil
}

/* SetHdLnTimeObs stores TOFO or TOLO as extended week, tow and the letter of
* the time system the instants refer to. */
func (r *RinexData) SetHdLnTimeObs(rl LabelID, week int, tow float64, sys byte) error {
	ld, err := r.checkLabel(rl, TOFO, TOLO)
	if err != nil {
		return err
	}
	if rl == TOFO {
		r.firstObsWeek, r.firstObsTOW, r.obsTimeSys = week, tow, sys
	} else {
		r.lastObsWeek, r.lastObsTOW = week, tow
	}
	ld.hasData = true
	return nil
}

func (r *RinexData) GetHdLnTimeObs(rl LabelID) (week int, tow float64, sys byte, err error) {
	if _, err = r.checkLabel(rl, TOFO, TOLO); err != nil {
		return
	}
	if rl == TOFO {
		return r.firstObsWeek, r.firstObsTOW, r.obsTimeSys, nil
	}
	return r.lastObsWeek, r.lastObsTOW, r.obsTimeSys, nil
}

/* SetHdLnDcbsPcvs appends a SYS / DCBS APPLIED or SYS / PCVS APPLIED record.
* The system must already be in the catalog. */
func (r *RinexData) SetHdLnDcbsPcvs(rl LabelID, sys byte, prog, source string) error {
	ld, err := r.checkLabel(rl, DCBS, PCVS)
	if err != nil {
		return err
	}
	ix := r.sysIndex(sys)
	if ix < 0 {
		r.logger.Trace(LvlSevere, "%c NOT in SYS/TOBS records", sys)
		return ErrUnknownSys
	}
	rec := dcbsPcvsApp{sysIndex: ix, corrProg: prog, corrSource: source}
	if rl == DCBS {
		r.dcbsApp = append(r.dcbsApp, rec)
	} else {
		r.pcvsApp = append(r.pcvsApp, rec)
	}
	ld.hasData = true
	return nil
}

/* SetHdLnScale appends a SYS / SCALE FACTOR record; an empty code list means
* the factor applies to every observable type of the system. */
func (r *RinexData) SetHdLnScale(sys byte, factor int, obsCodes []string) error {
	ld, err := r.checkLabel(SCALE, SCALE)
	if err != nil {
		return err
	}
	ix := r.sysIndex(sys)
	if ix < 0 {
		r.logger.Trace(LvlSevere, "%c NOT in SYS/TOBS records", sys)
		return ErrUnknownSys
	}
	r.obsScaleFact = append(r.obsScaleFact, oScaleFact{sysIndex: ix, factor: factor, obsType: obsCodes})
	ld.hasData = true
	return nil
}

/* SetHdLnPhsh appends a SYS / PHASE SHIFT record; an empty satellite list
* means every satellite of the system is involved. */
func (r *RinexData) SetHdLnPhsh(sys byte, obsCode string, corr float64, sats []string) error {
	ld, err := r.checkLabel(PHSH, PHSH)
	if err != nil {
		return err
	}
	ix := r.sysIndex(sys)
	if ix < 0 {
		r.logger.Trace(LvlSevere, "%c NOT in SYS/TOBS records", sys)
		return ErrUnknownSys
	}
	r.phshCorrection = append(r.phshCorrection, phshCorr{sysIndex: ix, obsCode: obsCode, correction: corr, obsSats: sats})
	ld.hasData = true
	return nil
}

/* SetHdLnGloSlt appends one GLONASS slot / frequency number pair. -----------*/
func (r *RinexData) SetHdLnGloSlt(slot, frq int) error {
	ld, err := r.checkLabel(GLSLT, GLSLT)
	if err != nil {
		return err
	}
	if frq < -7 || frq > 6 {
		r.logger.Trace(LvlSevere, "GLONASS slot %d: no frequency number %d", slot, frq)
		return ErrBadFormat
	}
	r.gloSltFrq = append(r.gloSltFrq, gloSltFrq{slot: slot, frqNum: frq})
	ld.hasData = true
	return nil
}

/* SetHdLnGloPhs appends one GLONASS code phase bias correction. -------------*/
func (r *RinexData) SetHdLnGloPhs(obsCode string, bias float64) error {
	ld, err := r.checkLabel(GLPHS, GLPHS)
	if err != nil {
		return err
	}
	r.gloPhsBias = append(r.gloPhsBias, gloPhsBias{obsCode: obsCode, bias: bias})
	ld.hasData = true
	return nil
}

/* SetHdLnLeap stores the LEAP SECONDS record; delta, week, day and sys carry
* the V304 extension fields and are ignored when printing V210. */
func (r *RinexData) SetHdLnLeap(secs, delta, week, day int, sys byte) error {
	ld, err := r.checkLabel(LEAP, LEAP)
	if err != nil {
		return err
	}
	r.leapSecs = append(r.leapSecs, leapSecs{secs: secs, deltaLSF: delta, weekLSF: week, dayLSF: day, sysID: sys})
	ld.hasData = true
	return nil
}

func (r *RinexData) GetHdLnLeap() (secs, delta, week, day int, sys byte, err error) {
	if _, err = r.checkLabel(LEAP, LEAP); err != nil {
		return
	}
	if len(r.leapSecs) == 0 {
		err = ErrNoObligData
		return
	}
	l := r.leapSecs[0]
	return l.secs, l.deltaLSF, l.weekLSF, l.dayLSF, l.sysID, nil
}

/* SetHdLnPrnObs appends one PRN / # OF OBS record. --------------------------*/
func (r *RinexData) SetHdLnPrnObs(sys byte, prn int, counts []int) error {
	ld, err := r.checkLabel(PRNOBS, PRNOBS)
	if err != nil {
		return err
	}
	r.prnObsNum = append(r.prnObsNum, prnObsNum{sysPrn: sys, satPrn: prn, obsNum: counts})
	ld.hasData = true
	return nil
}

/* SetHdLnCorr appends an ionospheric or time system correction record.
* corr names the correction: IONA, IONB, DUTC, CORRT, GEOT in V210; one of
* the IONC_* / TIMC_* designators in V304. vals carries the up-to-4
* parameters, mark the time mark (iono) or reference week (time), source the
* satellite or provider identifier. Duplicates are stored as given. */
func (r *RinexData) SetHdLnCorr(corr LabelID, vals [4]float64, mark, source int) error {
	var rl LabelID
	switch {
	case isIonoCorrection(corr):
		rl = IONC
	case isTimeCorrection(corr):
		rl = TIMC
	case corr == IONA || corr == IONB || corr == DUTC || corr == CORRT || corr == GEOT:
		rl = corr
	default:
		r.logger.Trace(LvlSevere, "correction not specified: id=%d", corr)
		return ErrBadLabel
	}
	ld, err := r.checkLabel(rl, IONA, IONB, IONC, DUTC, CORRT, GEOT, TIMC)
	if err != nil {
		return err
	}
	c := correction{corrType: corr}
	copy(c.values[:4], vals[:])
	c.values[4] = float64(mark)
	c.values[5] = float64(source)
	r.corrections = append(r.corrections, c)
	ld.hasData = true
	return nil
}

/* GetHdLnCorr reads the correction record at index. -------------------------*/
func (r *RinexData) GetHdLnCorr(index int) (corr LabelID, vals [4]float64, mark, source int, err error) {
	if index < 0 || index >= len(r.corrections) {
		err = ErrBadLabel
		return
	}
	c := r.corrections[index]
	copy(vals[:], c.values[:4])
	return c.corrType, vals, int(c.values[4]), int(c.values[5]), nil
}
