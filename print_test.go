/*------------------------------------------------------------------------------
* gorinex unit test driver : RINEX text emission
*-----------------------------------------------------------------------------*/
package gorinex_test

import (
	"bytes"
	"gorinex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

/* observation object with every obligatory V304 header record filled */
func fullObsObject(t *testing.T) *gorinex.RinexData {
	t.Helper()
	rnx := gorinex.NewRinexDataPgm(gorinex.V304, "utest", "gorinex", nil)
	for _, err := range []error{
		rnx.SetHdLnStr(gorinex.MRKNAME, "SITE1", "", ""),
		rnx.SetHdLnStr(gorinex.MRKTYPE, "GEODETIC", "", ""),
		rnx.SetHdLnStr(gorinex.AGENCY, "observer", "agency", ""),
		rnx.SetHdLnStr(gorinex.RECEIVER, "1", "RXTYPE", "1.0"),
		rnx.SetHdLnStr(gorinex.ANTTYPE, "2", "ANTTYPE", ""),
		rnx.SetHdLnDbl(gorinex.APPXYZ, 1, 2, 3),
		rnx.SetHdLnDbl(gorinex.ANTHEN, 0.1, 0, 0),
		rnx.SetHdLnSysObs(gorinex.SYS, 'G', []string{"C1C"}),
		rnx.SetHdLnTimeObs(gorinex.TOFO, 2000, 100.0, 'G'),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}
	return rnx
}

/* week 2000 / TOW 100 epoch with a single G05 pseudorange */
func Test_printutest1(t *testing.T) {
	assert := assert.New(t)
	rnx := fullObsObject(t)

	tag := rnx.SetEpochTime(2000, 100.0, 0.0, 0)
	assert.NoError(rnx.SaveObsData('G', 5, "C1C", 23000000.123, 0, 7, tag))

	var buf bytes.Buffer
	assert.NoError(rnx.PrintObsEpoch(&buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(lines, 2)
	assert.Equal("> 2018 05 06 00 01 40.0000000  0  1", lines[0])
	assert.Equal("G05  23000000.123 7", lines[1])
}

func Test_printutest2(t *testing.T) {
	assert := assert.New(t)

	/* every obligatory label must hold data before anything is written */
	empty := gorinex.NewRinexData(gorinex.V304, nil)
	var buf bytes.Buffer
	assert.ErrorIs(empty.PrintObsHeader(&buf), gorinex.ErrNoObligData)
	assert.Equal(0, buf.Len())

	rnx := fullObsObject(t)
	assert.NoError(rnx.PrintObsHeader(&buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for _, l := range lines {
		assert.Equal(80, len(l), l)
	}
	assert.Equal("RINEX VERSION / TYPE", strings.TrimRight(lines[0][60:], " "))
	assert.Equal("END OF HEADER", strings.TrimRight(lines[len(lines)-1][60:], " "))
	assert.Contains(buf.String(), "SYS / # / OBS TYPES")
	assert.Contains(buf.String(), "G    1 C1C")

	/* no epoch set: the epoch printer refuses */
	assert.ErrorIs(rnx.PrintObsEpoch(&buf), gorinex.ErrNoEpoch)
}

/* navigation blocks: line counts per system and the D exponent form */
func Test_printutest3(t *testing.T) {
	assert := assert.New(t)
	rnx := gorinex.NewRinexDataPgm(gorinex.V304, "utest", "gorinex", nil)
	rnx.SetEpochTime(2000, 100.0, 0.0, 0)

	var bo [gorinex.BOMaxLins][gorinex.BOMaxCols]float64
	bo[0][0] = 1.234567e-4
	bo[1][3] = -2.5
	tag := 2000*604800.0 + 100.0
	assert.NoError(rnx.SaveNavData('R', 3, bo, tag))
	assert.NoError(rnx.SaveNavData('G', 5, bo, tag))

	var buf bytes.Buffer
	assert.NoError(rnx.PrintNavHeader(&buf))
	assert.Contains(buf.String(), "N: GNSS NAV DATA")

	buf.Reset()
	assert.NoError(rnx.PrintNavEpochs(&buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(lines, 8+4)

	/* canonical order puts G before R at the same time tag */
	assert.True(strings.HasPrefix(lines[0], "G05 2018 05 06 00 01 40"))
	assert.Contains(lines[0], ".123456700000D-03")
	assert.Contains(lines[1], "-.250000000000D+01")
	assert.True(strings.HasPrefix(lines[8], "R03 2018 05 06 00 01 40"))
}

func Test_printutest4(t *testing.T) {
	assert := assert.New(t)
	v3 := gorinex.NewRinexData(gorinex.V304, nil)
	v2 := gorinex.NewRinexData(gorinex.V210, nil)

	_, err := v3.GetObsFileName("site", "")
	assert.ErrorIs(err, gorinex.ErrNoEpoch)

	v3.SetEpochTime(2000, 100.0, 0.0, 0)
	v2.SetEpochTime(2000, 100.0, 0.0, 0)

	/* period and data frequency fall back to placeholders until the header
	 * states the observation span and interval */
	name, err := v3.GetObsFileName("site", "")
	assert.NoError(err)
	assert.Equal("SITE00---_R_20181260001_01D_30S_MO.rnx", name)
	name, err = v3.GetNavFileName("site", "ESP")
	assert.NoError(err)
	assert.Equal("SITE00ESP_R_20181260001_01D_MN.rnx", name)

	assert.NoError(v3.SetHdLnDbl(gorinex.INT, 30.0, 0, 0))
	assert.NoError(v3.SetHdLnTimeObs(gorinex.TOFO, 2000, 100.0, 'G'))
	assert.NoError(v3.SetHdLnTimeObs(gorinex.TOLO, 2000, 700.0, 'G'))
	name, err = v3.GetObsFileName("site", "")
	assert.NoError(err)
	assert.Equal("SITE00---_R_20181260001_15M_30S_MO.rnx", name)

	name, err = v2.GetObsFileName("site", "")
	assert.NoError(err)
	assert.Equal("SITE1260.18O", name)
	name, err = v2.GetNavFileName("site", "")
	assert.NoError(err)
	assert.Equal("SITE1260.18N", name)
}
