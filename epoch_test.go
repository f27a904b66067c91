/*------------------------------------------------------------------------------
* gorinex unit test driver : epoch observation and navigation storage
*-----------------------------------------------------------------------------*/
package gorinex_test

import (
	"gorinex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func obsObject(t *testing.T) *gorinex.RinexData {
	t.Helper()
	rnx := gorinex.NewRinexData(gorinex.V304, nil)
	if err := rnx.SetHdLnSysObs(gorinex.SYS, 'G', []string{"C1C", "L1C"}); err != nil {
		t.Fatal(err)
	}
	if err := rnx.SetHdLnSysObs(gorinex.SYS, 'R', []string{"C1C"}); err != nil {
		t.Fatal(err)
	}
	return rnx
}

func Test_epochutest1(t *testing.T) {
	assert := assert.New(t)
	rnx := obsObject(t)

	tag := rnx.SetEpochTime(2000, 100.0, 0.0, 0)
	assert.Equal(100.0, tag)
	week, tow, bias, flag := rnx.GetEpochTime()
	assert.Equal(2000, week)
	assert.Equal(100.0, tow)
	assert.Equal(0.0, bias)
	assert.Equal(0, flag)

	assert.NoError(rnx.SaveObsData('G', 5, "C1C", 23000000.123, 0, 7, tag))
	assert.Equal(1, rnx.NObs())

	/* out of range values store nothing */
	assert.ErrorIs(rnx.SaveObsData('G', 5, "L1C", 1e11, 0, 0, tag), gorinex.ErrRange)
	assert.ErrorIs(rnx.SaveObsData('G', 5, "L1C", -1e10, 0, 0, tag), gorinex.ErrRange)
	assert.Equal(1, rnx.NObs())

	/* unknown system, uncataloged observable, stale time tag */
	assert.ErrorIs(rnx.SaveObsData('X', 5, "C1C", 1.0, 0, 0, tag), gorinex.ErrUnknownSys)
	assert.ErrorIs(rnx.SaveObsData('G', 5, "C9X", 1.0, 0, 0, tag), gorinex.ErrObsType)
	assert.ErrorIs(rnx.SaveObsData('G', 5, "C1C", 1.0, 0, 0, tag+1.0), gorinex.ErrNoEpoch)
	assert.Equal(1, rnx.NObs())

	sys, sat, code, value, lol, strg, err := rnx.GetObsData(0)
	assert.NoError(err)
	assert.Equal(byte('G'), sys)
	assert.Equal(5, sat)
	assert.Equal("C1C", code)
	assert.Equal(23000000.123, value)
	assert.Equal(0, lol)
	assert.Equal(7, strg)

	/* a new epoch clears the record lists */
	rnx.SetEpochTime(2000, 130.0, 0.0, 0)
	assert.Equal(0, rnx.NObs())
}

/* canonical order after filtering: system index, satellite, observable */
func Test_epochutest2(t *testing.T) {
	assert := assert.New(t)
	rnx := obsObject(t)
	tag := rnx.SetEpochTime(2000, 100.0, 0.0, 0)

	assert.NoError(rnx.SaveObsData('R', 3, "C1C", 3.0, 0, 0, tag))
	assert.NoError(rnx.SaveObsData('G', 7, "L1C", 2.0, 0, 0, tag))
	assert.NoError(rnx.SaveObsData('G', 7, "C1C", 1.0, 0, 0, tag))
	assert.NoError(rnx.SaveObsData('G', 5, "C1C", 4.0, 0, 0, tag))

	assert.True(rnx.FilterObsData(false))
	var got []float64
	for i := 0; i < rnx.NObs(); i++ {
		_, _, _, v, _, _, err := rnx.GetObsData(i)
		assert.NoError(err)
		got = append(got, v)
	}
	assert.Equal([]float64{4.0, 1.0, 2.0, 3.0}, got)
}

func Test_epochutest3(t *testing.T) {
	assert := assert.New(t)
	rnx := gorinex.NewRinexData(gorinex.V304, nil)
	rnx.SetEpochTime(2000, 100.0, 0.0, 0)

	var bo [gorinex.BOMaxLins][gorinex.BOMaxCols]float64
	bo[0][0] = 1.0e-4
	bo[1][2] = 2.5

	tag := 2000*604800.0 + 100.0
	assert.NoError(rnx.SaveNavData('G', 5, bo, tag))
	assert.ErrorIs(rnx.SaveNavData('G', 5, bo, tag), gorinex.ErrDuplicate)
	assert.NoError(rnx.SaveNavData('G', 5, bo, tag+7200.0))
	assert.NoError(rnx.SaveNavData('R', 5, bo, tag))
	assert.ErrorIs(rnx.SaveNavData('X', 5, bo, tag), gorinex.ErrUnknownSys)
	assert.Equal(3, rnx.NNav())

	assert.True(rnx.HasNavEpochs('G'))
	assert.True(rnx.HasNavEpochs('R'))
	assert.False(rnx.HasNavEpochs('E'))

	sys, sat, got, gotTag, err := rnx.GetNavData(0)
	assert.NoError(err)
	assert.Equal(byte('G'), sys)
	assert.Equal(5, sat)
	assert.Equal(bo, got)
	assert.Equal(tag, gotTag)
}
