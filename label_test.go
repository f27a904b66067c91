/*------------------------------------------------------------------------------
* gorinex unit test driver : header label registry
*-----------------------------------------------------------------------------*/
package gorinex_test

import (
	"gorinex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_labelutest1(t *testing.T) {
	assert := assert.New(t)
	rnx := gorinex.NewRinexData(gorinex.V304, nil)

	assert.Equal(gorinex.MRKNAME, rnx.LblToID("MARKER NAME"))
	assert.Equal(gorinex.VERSION, rnx.LblToID("RINEX VERSION / TYPE"))
	assert.Equal(gorinex.SYS, rnx.LblToID("SYS / # / OBS TYPES"))
	assert.Equal(gorinex.NOLABEL, rnx.LblToID("NOT A RINEX LABEL"))

	/* a V210-only label seen by a V304 object exists but does not match */
	assert.Equal(gorinex.DONTMATCH, rnx.LblToID("# / TYPES OF OBSERV"))
	assert.Equal(gorinex.DONTMATCH, rnx.LblToID("WAVELENGTH FACT L1/2"))

	v2 := gorinex.NewRinexData(gorinex.V210, nil)
	assert.Equal(gorinex.TOBS, v2.LblToID("# / TYPES OF OBSERV"))
	assert.Equal(gorinex.DONTMATCH, v2.LblToID("SYS / # / OBS TYPES"))

	assert.Equal("MARKER NAME", rnx.IDToLbl(gorinex.MRKNAME))
	assert.Equal("END OF HEADER", rnx.IDToLbl(gorinex.EOH))
	assert.Equal("GPUT", rnx.IDToLbl(gorinex.TIMC_GPUT))
}

/* iteration over labels holding data, declaration order */
func Test_labelutest2(t *testing.T) {
	assert := assert.New(t)
	rnx := gorinex.NewRinexData(gorinex.V304, nil)

	/* a new object only holds the version record and the header end */
	assert.Equal(gorinex.VERSION, rnx.Get1stLabelID())
	assert.Equal(gorinex.EOH, rnx.GetNextLabelID())
	assert.Equal(gorinex.LASTONE, rnx.GetNextLabelID())

	assert.NoError(rnx.SetHdLnStr(gorinex.MRKNAME, "SITE1", "", ""))
	assert.Equal(gorinex.VERSION, rnx.Get1stLabelID())
	assert.Equal(gorinex.MRKNAME, rnx.GetNextLabelID())
	assert.Equal(gorinex.EOH, rnx.GetNextLabelID())

	rnx.ClearHeaderData()
	assert.Equal(gorinex.LASTONE, rnx.Get1stLabelID())
	a, _, _, err := rnx.GetHdLnStr(gorinex.MRKNAME)
	assert.NoError(err)
	assert.Equal("", a)
}
