/*------------------------------------------------------------------------------
* filter.go : selection of systems, satellites and observables
*-----------------------------------------------------------------------------*/
package gorinex

import (
	"strconv"
	"strings"
)

/* SetFilter records the selection to apply to catalog and epoch data.
* selSat tokens are a system letter optionally followed by a PRN ("G" selects
* the whole system, "G05" one satellite); selObs tokens are an observable
* code optionally prefixed by its system ("GC1C", or "C1C" for every system).
* Empty lists leave the respective selection untouched (everything passes).
* Bad tokens fail the call without changing the recorded filter. */
func (r *RinexData) SetFilter(selSat, selObs []string) error {
	type satSel struct {
		sys byte
		prn int /* 0: whole system */
	}
	var (
		sats []satSel
		obs  [][2]string /* [sys or "", code] */
	)
	for _, tok := range selSat {
		tok = strings.TrimSpace(strings.ToUpper(tok))
		if len(tok) < 1 || sysDes(tok[0]) == "" {
			r.logger.Trace(LvlSevere, "invalid filter satellite token: %s", tok)
			return ErrBadFilter
		}
		s := satSel{sys: tok[0]}
		if len(tok) > 1 {
			prn, err := strconv.Atoi(strings.TrimSpace(tok[1:]))
			if err != nil || prn <= 0 {
				r.logger.Trace(LvlSevere, "wrong PRN in filter token: %s", tok)
				return ErrBadFilter
			}
			s.prn = prn
		}
		sats = append(sats, s)
	}
	for _, tok := range selObs {
		tok = strings.TrimSpace(strings.ToUpper(tok))
		switch len(tok) {
		case 3:
			obs = append(obs, [2]string{"", tok})
		case 4:
			if sysDes(tok[0]) == "" {
				r.logger.Trace(LvlSevere, "invalid filter observable token: %s", tok)
				return ErrBadFilter
			}
			obs = append(obs, [2]string{string(tok[0]), tok[1:]})
		default:
			r.logger.Trace(LvlSevere, "invalid filter observable token: %s", tok)
			return ErrBadFilter
		}
	}

	if len(sats) > 0 {
		for i := range r.systems {
			r.systems[i].selSystem = false
			r.systems[i].selSat = nil
		}
		for _, s := range sats {
			ix := r.sysIndex(s.sys)
			if ix < 0 {
				r.logger.Trace(LvlWarning, "filter system %c not in catalog", s.sys)
				continue
			}
			r.systems[ix].selSystem = true
			if s.prn > 0 {
				r.systems[ix].selSat = append(r.systems[ix].selSat, s.prn)
			}
		}
	}
	if len(obs) > 0 {
		for i := range r.systems {
			g := &r.systems[i]
			for j := range g.obsTypes {
				if !g.obsTypes[j].sel {
					continue
				}
				keep := false
				for _, o := range obs {
					if (o[0] == "" || o[0][0] == g.system) && o[1] == g.obsTypes[j].id {
						keep = true
						break
					}
				}
				g.obsTypes[j].sel = keep
				g.obsTypes[j].prt = keep && printableIn(g.obsTypes[j].id, r.version)
			}
		}
	}
	r.filterSetted = true
	return nil
}

/* FilterObsData prunes the current epoch observations: records of deselected
* systems, satellites outside the selection, or deselected observables are
* removed. With removeNotPrt, records selected but not printable in the
* configured version are dropped as well. The retained set is left in
* canonical order; the call is idempotent. Returns whether any record
* remains. */
func (r *RinexData) FilterObsData(removeNotPrt bool) bool {
	kept := r.epochObs[:0]
	for _, o := range r.epochObs {
		if !r.isSatSelected(o.sysIndex, o.satellite) {
			continue
		}
		meta := &r.systems[o.sysIndex].obsTypes[o.obsTypeIndex]
		if !meta.sel || (removeNotPrt && !meta.prt) {
			continue
		}
		kept = append(kept, o)
	}
	r.epochObs = kept
	r.sortObs()
	return len(r.epochObs) > 0
}

/* FilterNavData applies the satellite and system selection to the stored
* navigation records. Systems absent from the catalog pass unfiltered unless
* a filter was set, in which case only cataloged, selected systems remain.
* Returns whether any record remains. */
func (r *RinexData) FilterNavData() bool {
	kept := r.epochNav[:0]
	for _, n := range r.epochNav {
		ix := r.sysIndex(n.systemID)
		if ix < 0 {
			if r.filterSetted {
				continue
			}
			kept = append(kept, n)
			continue
		}
		if !r.isSatSelected(ix, n.satellite) {
			continue
		}
		kept = append(kept, n)
	}
	r.epochNav = kept
	r.sortNav()
	return len(r.epochNav) > 0
}
