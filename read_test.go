/*------------------------------------------------------------------------------
* gorinex unit test driver : RINEX text parsing
*-----------------------------------------------------------------------------*/
package gorinex_test

import (
	"bufio"
	"bytes"
	"fmt"
	"gorinex"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func hdrLine(value, label string) string {
	return fmt.Sprintf("%-60s%s\n", value, label)
}

func v2ObsHeader() string {
	return hdrLine("     2.10           OBSERVATION DATA    G: GPS", "RINEX VERSION / TYPE") +
		hdrLine("utest               gorinex             20180506 000000 UTC", "PGM / RUN BY / DATE") +
		hdrLine("SITE1", "MARKER NAME") +
		hdrLine("     2    C1    L1", "# / TYPES OF OBSERV") +
		hdrLine("", "END OF HEADER")
}

func Test_readutest1(t *testing.T) {
	assert := assert.New(t)
	src := v2ObsHeader() +
		" 18  5  6  0  1 40.0000000  0  1G05\n" +
		"  23000000.123 7       120.500 4\n"
	rnx := gorinex.NewRinexData(gorinex.V304, nil)
	rd := bufio.NewReader(strings.NewReader(src))

	lbl, err := rnx.ReadRinexHeader(rd)
	assert.NoError(err)
	assert.Equal(gorinex.EOH, lbl)
	assert.Equal(gorinex.V210, rnx.InFileVersion())
	name, _, _, err := rnx.GetHdLnStr(gorinex.MRKNAME)
	assert.NoError(err)
	assert.Equal("SITE1", name)

	flag, err := rnx.ReadObsEpoch(rd)
	assert.NoError(err)
	assert.Equal(0, flag)
	week, tow, _, _ := rnx.GetEpochTime()
	assert.Equal(2000, week)
	assert.Equal(100.0, tow)

	/* the V2 codes come back translated to their V3 form */
	assert.Equal(2, rnx.NObs())
	sys, sat, code, value, lol, strg, err := rnx.GetObsData(0)
	assert.NoError(err)
	assert.Equal(byte('G'), sys)
	assert.Equal(5, sat)
	assert.Equal("C1C", code)
	assert.Equal(23000000.123, value)
	assert.Equal(0, lol)
	assert.Equal(7, strg)
	_, _, code, value, _, strg, err = rnx.GetObsData(1)
	assert.NoError(err)
	assert.Equal("L1C", code)
	assert.Equal(120.5, value)
	assert.Equal(4, strg)

	_, err = rnx.ReadObsEpoch(rd)
	assert.Equal(io.EOF, err)
}

/* header declares 2 observable types, the epoch carries 3 per satellite */
func Test_readutest2(t *testing.T) {
	assert := assert.New(t)
	src := v2ObsHeader() +
		" 18  5  6  0  1 40.0000000  0  1G05\n" +
		"  23000000.123 7       120.500 4  23000000.123 7\n"
	rnx := gorinex.NewRinexData(gorinex.V304, nil)
	rd := bufio.NewReader(strings.NewReader(src))

	_, err := rnx.ReadRinexHeader(rd)
	assert.NoError(err)
	_, err = rnx.ReadObsEpoch(rd)
	assert.ErrorIs(err, gorinex.ErrBadFormat)
	assert.Equal(0, rnx.NObs())
}

/* print a V304 observation file and read it back */
func Test_readutest3(t *testing.T) {
	assert := assert.New(t)
	src := fullObsObject(t)
	tag := src.SetEpochTime(2000, 100.0, 0.5e-6, 0)
	assert.NoError(src.SaveObsData('G', 5, "C1C", 23000000.123, 0, 7, tag))

	var buf bytes.Buffer
	assert.NoError(src.PrintObsHeader(&buf))
	assert.NoError(src.PrintObsEpoch(&buf))

	dst := gorinex.NewRinexData(gorinex.V304, nil)
	rd := bufio.NewReader(&buf)
	lbl, err := dst.ReadRinexHeader(rd)
	assert.NoError(err)
	assert.Equal(gorinex.EOH, lbl)
	assert.Equal(gorinex.V304, dst.InFileVersion())

	sys, codes, err := dst.GetHdLnSysObs(gorinex.SYS, 0)
	assert.NoError(err)
	assert.Equal(byte('G'), sys)
	assert.Equal([]string{"C1C"}, codes)

	flag, err := dst.ReadObsEpoch(rd)
	assert.NoError(err)
	assert.Equal(0, flag)
	week, tow, _, _ := dst.GetEpochTime()
	assert.Equal(2000, week)
	assert.Equal(100.0, tow)
	assert.Equal(1, dst.NObs())
	_, sat, code, value, _, strg, err := dst.GetObsData(0)
	assert.NoError(err)
	assert.Equal(5, sat)
	assert.Equal("C1C", code)
	assert.Equal(23000000.123, value)
	assert.Equal(7, strg)

	_, err = dst.ReadObsEpoch(rd)
	assert.Equal(io.EOF, err)
}

/* print V304 navigation blocks and read them back */
func Test_readutest4(t *testing.T) {
	assert := assert.New(t)
	src := gorinex.NewRinexDataPgm(gorinex.V304, "utest", "gorinex", nil)
	src.SetEpochTime(2000, 100.0, 0.0, 0)

	var bo [gorinex.BOMaxLins][gorinex.BOMaxCols]float64
	bo[0][0] = 1.234567e-4
	bo[3][1] = 26559800.0
	tag := 2000*604800.0 + 100.0
	assert.NoError(src.SaveNavData('G', 5, bo, tag))
	assert.NoError(src.SaveNavData('R', 3, bo, tag))

	var buf bytes.Buffer
	assert.NoError(src.PrintNavHeader(&buf))
	assert.NoError(src.PrintNavEpochs(&buf))

	dst := gorinex.NewRinexData(gorinex.V304, nil)
	rd := bufio.NewReader(&buf)
	lbl, err := dst.ReadRinexHeader(rd)
	assert.NoError(err)
	assert.Equal(gorinex.EOH, lbl)

	assert.NoError(dst.ReadNavEpoch(rd))
	assert.NoError(dst.ReadNavEpoch(rd))
	assert.Equal(io.EOF, dst.ReadNavEpoch(rd))
	assert.Equal(2, dst.NNav())

	sys, sat, got, gotTag, err := dst.GetNavData(0)
	assert.NoError(err)
	assert.Equal(byte('G'), sys)
	assert.Equal(5, sat)
	assert.Equal(tag, gotTag)
	assert.InDelta(bo[0][0], got[0][0], 1e-15)
	assert.InDelta(bo[3][1], got[3][1], 1e-3)

	sys, _, _, _, err = dst.GetNavData(1)
	assert.NoError(err)
	assert.Equal(byte('R'), sys)
}

/* an incomplete navigation block fails instead of zero filling */
func Test_readutest5(t *testing.T) {
	assert := assert.New(t)
	src := hdrLine("     3.04           N: GNSS NAV DATA    M: Mixed", "RINEX VERSION / TYPE") +
		hdrLine("utest               gorinex             20180506 000000 UTC", "PGM / RUN BY / DATE") +
		hdrLine("", "END OF HEADER") +
		"G05 2018 05 06 00 01 40 .123456700000D-03 .000000000000D+00 .000000000000D+00\n" +
		"     .000000000000D+00 .000000000000D+00 .000000000000D+00 .000000000000D+00\n"
	rnx := gorinex.NewRinexData(gorinex.V304, nil)
	rd := bufio.NewReader(strings.NewReader(src))

	_, err := rnx.ReadRinexHeader(rd)
	assert.NoError(err)
	assert.ErrorIs(rnx.ReadNavEpoch(rd), gorinex.ErrBadFormat)
	assert.Equal(0, rnx.NNav())
}

/* V210 object with every obligatory header record filled */
func fullObsObjectV2(t *testing.T) *gorinex.RinexData {
	t.Helper()
	rnx := gorinex.NewRinexDataPgm(gorinex.V210, "utest", "gorinex", nil)
	for _, err := range []error{
		rnx.SetHdLnStr(gorinex.MRKNAME, "SITE1", "", ""),
		rnx.SetHdLnStr(gorinex.AGENCY, "observer", "agency", ""),
		rnx.SetHdLnStr(gorinex.RECEIVER, "1", "RXTYPE", "1.0"),
		rnx.SetHdLnStr(gorinex.ANTTYPE, "2", "ANTTYPE", ""),
		rnx.SetHdLnDbl(gorinex.APPXYZ, 1, 2, 3),
		rnx.SetHdLnDbl(gorinex.ANTHEN, 0.1, 0, 0),
		rnx.SetHdLnSysObs(gorinex.TOBS, 'G', []string{"C1C"}),
		rnx.SetHdLnTimeObs(gorinex.TOFO, 2000, 100.0, 'G'),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}
	return rnx
}

/* a V2 epoch with more than twelve satellites continues the satellite list
* on an indented line, and reads back complete */
func Test_readutest6(t *testing.T) {
	assert := assert.New(t)
	src := fullObsObjectV2(t)
	tag := src.SetEpochTime(2000, 100.0, 0.0, 0)
	for sat := 1; sat <= 14; sat++ {
		assert.NoError(src.SaveObsData('G', sat, "C1C", 20000000.0+float64(sat), 0, 0, tag))
	}

	var buf bytes.Buffer
	assert.NoError(src.PrintObsHeader(&buf))
	assert.NoError(src.PrintObsEpoch(&buf))
	assert.Contains(buf.String(), "\n"+strings.Repeat(" ", 32)+"G13G14\n")

	dst := gorinex.NewRinexData(gorinex.V210, nil)
	rd := bufio.NewReader(&buf)
	lbl, err := dst.ReadRinexHeader(rd)
	assert.NoError(err)
	assert.Equal(gorinex.EOH, lbl)

	flag, err := dst.ReadObsEpoch(rd)
	assert.NoError(err)
	assert.Equal(0, flag)
	assert.Equal(14, dst.NObs())
	for i := 0; i < dst.NObs(); i++ {
		_, sat, code, value, _, _, err := dst.GetObsData(i)
		assert.NoError(err)
		assert.Equal(i+1, sat)
		assert.Equal("C1C", code)
		assert.Equal(20000000.0+float64(sat), value)
	}
}

/* event epochs must declare a consistent special record count, and a new
* site occupation must carry a MARKER NAME record */
func Test_readutest7(t *testing.T) {
	assert := assert.New(t)

	/* blank count: the event fails instead of consuming nothing */
	src := v2ObsHeader() +
		" 18  5  6  0  2  0.0000000  3\n" +
		hdrLine("SITE2", "MARKER NAME") +
		" 18  5  6  0  1 40.0000000  0  1G05\n" +
		"  23000000.123 7       120.500 4\n"
	rnx := gorinex.NewRinexData(gorinex.V304, nil)
	rd := bufio.NewReader(strings.NewReader(src))
	_, err := rnx.ReadRinexHeader(rd)
	assert.NoError(err)
	flag, err := rnx.ReadObsEpoch(rd)
	assert.Equal(3, flag)
	assert.ErrorIs(err, gorinex.ErrBadFormat)

	/* a complete event updates the header and the next epoch parses */
	src = v2ObsHeader() +
		" 18  5  6  0  2  0.0000000  3  1\n" +
		hdrLine("SITE2", "MARKER NAME") +
		" 18  5  6  0  1 40.0000000  0  1G05\n" +
		"  23000000.123 7       120.500 4\n"
	rnx = gorinex.NewRinexData(gorinex.V304, nil)
	rd = bufio.NewReader(strings.NewReader(src))
	_, err = rnx.ReadRinexHeader(rd)
	assert.NoError(err)
	flag, err = rnx.ReadObsEpoch(rd)
	assert.NoError(err)
	assert.Equal(3, flag)
	name, _, _, err := rnx.GetHdLnStr(gorinex.MRKNAME)
	assert.NoError(err)
	assert.Equal("SITE2", name)
	flag, err = rnx.ReadObsEpoch(rd)
	assert.NoError(err)
	assert.Equal(0, flag)
	assert.Equal(2, rnx.NObs())

	/* a site occupation event without MARKER NAME fails */
	src = v2ObsHeader() +
		" 18  5  6  0  2  0.0000000  3  1\n" +
		hdrLine("antenna moved", "COMMENT")
	rnx = gorinex.NewRinexData(gorinex.V304, nil)
	rd = bufio.NewReader(strings.NewReader(src))
	_, err = rnx.ReadRinexHeader(rd)
	assert.NoError(err)
	_, err = rnx.ReadObsEpoch(rd)
	assert.ErrorIs(err, gorinex.ErrBadFormat)

	/* a non-header line inside the declared count is an inconsistency */
	src = v2ObsHeader() +
		" 18  5  6  0  2  0.0000000  4  2\n" +
		hdrLine("antenna moved", "COMMENT") +
		" 18  5  6  0  1 40.0000000  0  1G05\n"
	rnx = gorinex.NewRinexData(gorinex.V304, nil)
	rd = bufio.NewReader(strings.NewReader(src))
	_, err = rnx.ReadRinexHeader(rd)
	assert.NoError(err)
	_, err = rnx.ReadObsEpoch(rd)
	assert.ErrorIs(err, gorinex.ErrBadFormat)
}

/* epoch readers refuse input whose version record was never read */
func Test_readutest8(t *testing.T) {
	assert := assert.New(t)
	rnx := gorinex.NewRinexData(gorinex.V304, nil)
	assert.Equal(gorinex.VTBD, rnx.InFileVersion())

	rd := bufio.NewReader(strings.NewReader(" 18  5  6  0  1 40.0000000  0  1G05\n"))
	_, err := rnx.ReadObsEpoch(rd)
	assert.ErrorIs(err, gorinex.ErrBadFormat)
	assert.ErrorIs(rnx.ReadNavEpoch(rd), gorinex.ErrBadFormat)
}
