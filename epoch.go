/*------------------------------------------------------------------------------
* epoch.go : current-epoch observation and navigation data
*-----------------------------------------------------------------------------*/
package gorinex

import "sort"

/* SetEpochTime replaces the current epoch: extended GPS week, bias-corrected
* seconds of week, receiver clock bias and the event flag (0 normal epoch,
* 2-5 special events carrying header records, 6 cycle slip). The prior
* epoch's observation and navigation record lists are cleared. Returns the
* time tag that identifies the new epoch. */
func (r *RinexData) SetEpochTime(week int, tow, bias float64, flag int) float64 {
	r.epochWeek = week
	r.epochTOW = tow
	r.epochClkOffset = bias
	r.epochFlag = flag
	r.epochTimeTag = tow
	r.epochObs = r.epochObs[:0]
	r.epochNav = r.epochNav[:0]
	return r.epochTimeTag
}

/* GetEpochTime reads back the current epoch parameters. ---------------------*/
func (r *RinexData) GetEpochTime() (week int, tow, bias float64, flag int) {
	return r.epochWeek, r.epochTOW, r.epochClkOffset, r.epochFlag
}

/* SaveObsData appends one observable to the current epoch: system letter,
* satellite PRN, V3 observable code, measured value, loss-of-lock and signal
* strength digits (0 prints blank), and the time tag of the fix the data
* belongs to. The call is all-or-nothing: an out-of-range value, an unknown
* system, an observable missing from the catalog or a tag not matching the
* current epoch stores nothing. */
func (r *RinexData) SaveObsData(sys byte, sat int, obsType string, value float64, lol, strg int, tTag float64) error {
	if value > MaxObsVal || value < MinObsVal {
		r.logger.Trace(LvlSevere, "observable %c%02d %s out of range: %f", sys, sat, obsType, value)
		return ErrRange
	}
	sysIx := r.sysIndex(sys)
	if sysIx < 0 {
		r.logger.Trace(LvlSevere, "satellite system code unknown=%c", sys)
		return ErrUnknownSys
	}
	obsIx := r.systems[sysIx].obsIndex(obsType)
	if obsIx < 0 || !r.systems[sysIx].obsTypes[obsIx].sel {
		r.logger.Trace(LvlWarning, "ignored observable in epoch, satellite, observable=%c%02d %s", sys, sat, obsType)
		return ErrObsType
	}
	if r.epochWeek < 0 || tTag != r.epochTimeTag {
		r.logger.Trace(LvlSevere, "epoch time tag mismatch: %f", tTag)
		return ErrNoEpoch
	}
	r.epochObs = append(r.epochObs, satObsData{
		sysIndex:     sysIx,
		satellite:    sat,
		obsTypeIndex: obsIx,
		obsValue:     value,
		lossOfLock:   lol,
		strength:     strg,
	})
	return nil
}

/* GetObsData reads the observation record at index, in the order records
* currently hold (canonical after filtering). */
func (r *RinexData) GetObsData(index int) (sys byte, sat int, obsType string, value float64, lol, strg int, err error) {
	if index < 0 || index >= len(r.epochObs) {
		err = ErrBadFormat
		return
	}
	o := r.epochObs[index]
	g := &r.systems[o.sysIndex]
	return g.system, o.satellite, g.obsTypes[o.obsTypeIndex].id, o.obsValue, o.lossOfLock, o.strength, nil
}

/* NObs returns the number of observation records in the current epoch. ------*/
func (r *RinexData) NObs() int { return len(r.epochObs) }

/* ClearObsData empties the current epoch observations. ----------------------*/
func (r *RinexData) ClearObsData() { r.epochObs = r.epochObs[:0] }

/* SaveNavData appends one navigation record: system letter, satellite PRN,
* broadcast orbit matrix (first line clock bias/drift/drift rate, then up to
* seven continuation lines of four coefficients) and the system-specific
* time tag, kept verbatim. A record already present for the same system,
* satellite and tag is rejected. */
func (r *RinexData) SaveNavData(sys byte, sat int, bo [BOMaxLins][BOMaxCols]float64, tTag float64) error {
	if sysDes(sys) == "" {
		r.logger.Trace(LvlSevere, "satellite system code unknown=%c", sys)
		return ErrUnknownSys
	}
	for i := range r.epochNav {
		if r.epochNav[i].systemID == sys && r.epochNav[i].satellite == sat &&
			r.epochNav[i].navTimeTag == tTag {
			r.logger.Trace(LvlWarning, "ephemeris for sat %c%02d time tag %f ALREADY EXIST", sys, sat, tTag)
			return ErrDuplicate
		}
	}
	r.epochNav = append(r.epochNav, satNavData{
		navTimeTag:     tTag,
		systemID:       sys,
		satellite:      sat,
		broadcastOrbit: bo,
	})
	r.logger.Trace(LvlFine, "ephemeris for sat %c%02d time tag %f SAVED", sys, sat, tTag)
	return nil
}

/* GetNavData reads the navigation record at index. --------------------------*/
func (r *RinexData) GetNavData(index int) (sys byte, sat int, bo [BOMaxLins][BOMaxCols]float64, tTag float64, err error) {
	if index < 0 || index >= len(r.epochNav) {
		err = ErrBadFormat
		return
	}
	n := r.epochNav[index]
	return n.systemID, n.satellite, n.broadcastOrbit, n.navTimeTag, nil
}

/* NNav returns the number of navigation records currently stored. -----------*/
func (r *RinexData) NNav() int { return len(r.epochNav) }

/* ClearNavData empties the stored navigation records. -----------------------*/
func (r *RinexData) ClearNavData() { r.epochNav = r.epochNav[:0] }

/* HasNavEpochs reports whether navigation data exist for the given system,
* used to decide which single-system V2.10 navigation files to emit. */
func (r *RinexData) HasNavEpochs(sys byte) bool {
	for i := range r.epochNav {
		if r.epochNav[i].systemID == sys {
			return true
		}
	}
	return false
}

/* canonical observation order: system index, satellite, observable index */
func (r *RinexData) sortObs() {
	sort.SliceStable(r.epochObs, func(i, j int) bool {
		a, b := r.epochObs[i], r.epochObs[j]
		if a.sysIndex != b.sysIndex {
			return a.sysIndex < b.sysIndex
		}
		if a.satellite != b.satellite {
			return a.satellite < b.satellite
		}
		return a.obsTypeIndex < b.obsTypeIndex
	})
}

/* canonical navigation order: time tag, system, satellite */
func (r *RinexData) sortNav() {
	sort.SliceStable(r.epochNav, func(i, j int) bool {
		a, b := r.epochNav[i], r.epochNav[j]
		if a.navTimeTag != b.navTimeTag {
			return a.navTimeTag < b.navTimeTag
		}
		if a.systemID != b.systemID {
			return a.systemID < b.systemID
		}
		return a.satellite < b.satellite
	})
}
