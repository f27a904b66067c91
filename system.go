/*------------------------------------------------------------------------------
* system.go : GNSS system / observable catalog and V2<->V3 code translation
*-----------------------------------------------------------------------------*/
package gorinex

/* observable codes of RINEX V3.04 having an equivalent in V2.10. The two
* tables are parallel and one-to-one. */
var (
	v3ObsTypes = []string{"C1C", "L1C", "D1C", "S1C", "C1P", "C2P", "L2P", "D2P", "S2P"}
	v2ObsTypes = []string{"C1", "L1", "D1", "S1", "P1", "P2", "L2", "D2", "S2"}
)

/* V3ToV2Obs translates a 3-character V3 observable code to its 2-character
* V2 equivalent, or "" when none exists. */
func V3ToV2Obs(code string) string {
	for i := range v3ObsTypes {
		if v3ObsTypes[i] == code {
			return v2ObsTypes[i]
		}
	}
	return ""
}

/* V2ToV3Obs is the inverse of V3ToV2Obs. ------------------------------------*/
func V2ToV3Obs(code string) string {
	for i := range v2ObsTypes {
		if v2ObsTypes[i] == code {
			return v3ObsTypes[i]
		}
	}
	return ""
}

/* per-system descriptions used in header records */
type sysDescript struct {
	sysID   byte
	timeDes string /* time system description */
	sysDes  string /* description in the version record */
}

var sysDescriptions = []sysDescript{
	{'G', "GPS", "G: GPS"},
	{'R', "GLO", "R: GLONASS"},
	{'E', "GAL", "E: Galileo"},
	{'C', "BDT", "C: BeiDou"},
	{'J', "QZS", "J: QZSS"},
	{'S', "GPS", "S: SBAS Payload"},
	{'I', "IRN", "I: IRNSS"},
	{'M', "GPS", "M: Mixed"},
}

func sysDes(s byte) string {
	for i := range sysDescriptions {
		if sysDescriptions[i].sysID == s {
			return sysDescriptions[i].sysDes
		}
	}
	return ""
}

func timeDes(s byte) string {
	for i := range sysDescriptions {
		if sysDescriptions[i].sysID == s {
			return sysDescriptions[i].timeDes
		}
	}
	return "GPS"
}

/* one observable descriptor of a system catalog entry. sel states whether
* data for the code is accepted at all; prt whether the code is printed,
* that is, selected and representable in the configured output version. */
type obsMeta struct {
	id  string /* V3 observable code */
	sel bool
	prt bool
}

/* catalog entry for one GNSS system. An empty selSat list selects every
* satellite of the system. */
type gnssSystem struct {
	system    byte
	selSystem bool
	obsTypes  []obsMeta
	selSat    []int
}

/* insert a catalog entry: all V2-translatable codes are pre-populated as
* unselected and unprintable, the caller codes are then marked selected,
* appending descriptors for codes without a V2 equivalent. */
func newGnssSystem(sys byte, obsCodes []string, ver RnxVer) gnssSystem {
	g := gnssSystem{system: sys, selSystem: true}
	for _, c := range v3ObsTypes {
		g.obsTypes = append(g.obsTypes, obsMeta{id: c})
	}
	for _, c := range obsCodes {
		found := false
		for i := range g.obsTypes {
			if g.obsTypes[i].id == c {
				g.obsTypes[i].sel = true
				found = true
				break
			}
		}
		if !found {
			g.obsTypes = append(g.obsTypes, obsMeta{id: c, sel: true})
		}
	}
	for i := range g.obsTypes {
		g.obsTypes[i].prt = g.obsTypes[i].sel && printableIn(g.obsTypes[i].id, ver)
	}
	return g
}

/* a code is printable in V2.10 only when a V2 equivalent exists ------------*/
func printableIn(code string, ver RnxVer) bool {
	return ver != V210 || V3ToV2Obs(code) != ""
}

/* index of a system in the catalog, -1 when absent --------------------------*/
func (r *RinexData) sysIndex(sys byte) int {
	for i := range r.systems {
		if r.systems[i].system == sys {
			return i
		}
	}
	return -1
}

/* index of an observable code in a system's descriptor list ----------------*/
func (g *gnssSystem) obsIndex(code string) int {
	for i := range g.obsTypes {
		if g.obsTypes[i].id == code {
			return i
		}
	}
	return -1
}

/* isSatSelected: the system is selected and either no explicit satellite
* list exists or the satellite is in it */
func (r *RinexData) isSatSelected(sysIx, sat int) bool {
	if sysIx < 0 || sysIx >= len(r.systems) || !r.systems[sysIx].selSystem {
		return false
	}
	if len(r.systems[sysIx].selSat) == 0 {
		return true
	}
	for _, s := range r.systems[sysIx].selSat {
		if s == sat {
			return true
		}
	}
	return false
}

/* printable observable codes of a system, catalog order ---------------------*/
func (g *gnssSystem) printableCodes() []string {
	var codes []string
	for i := range g.obsTypes {
		if g.obsTypes[i].prt {
			codes = append(codes, g.obsTypes[i].id)
		}
	}
	return codes
}
