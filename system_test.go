/*------------------------------------------------------------------------------
* gorinex unit test driver : observable code translation and catalog
*-----------------------------------------------------------------------------*/
package gorinex_test

import (
	"gorinex"
	"testing"

	"github.com/stretchr/testify/assert"
)

/* V3 -> V2 -> V3 translation is one-to-one over the translatable set */
func Test_systemutest1(t *testing.T) {
	assert := assert.New(t)
	v3codes := []string{"C1C", "L1C", "D1C", "S1C", "C1P", "C2P", "L2P", "D2P", "S2P"}
	for _, c := range v3codes {
		v2 := gorinex.V3ToV2Obs(c)
		assert.NotEqual("", v2, c)
		assert.Equal(c, gorinex.V2ToV3Obs(v2), c)
	}
	assert.Equal("C1", gorinex.V3ToV2Obs("C1C"))
	assert.Equal("P1", gorinex.V3ToV2Obs("C1P"))
	assert.Equal("", gorinex.V3ToV2Obs("C5Q"))
	assert.Equal("", gorinex.V2ToV3Obs("C5"))
}

/* catalog entries pre-populate the translatable codes; selected codes are
* reported back, codes without V2 equivalent stay unprintable in V210 */
func Test_systemutest2(t *testing.T) {
	assert := assert.New(t)
	rnx := gorinex.NewRinexData(gorinex.V304, nil)

	assert.NoError(rnx.SetHdLnSysObs(gorinex.SYS, 'G', []string{"C1C", "L1C", "C5Q"}))
	sys, codes, err := rnx.GetHdLnSysObs(gorinex.SYS, 0)
	assert.NoError(err)
	assert.Equal(byte('G'), sys)
	assert.Equal([]string{"C1C", "L1C", "C5Q"}, codes)

	assert.Error(rnx.SetHdLnSysObs(gorinex.SYS, 'X', []string{"C1C"}))
	assert.ErrorIs(rnx.SetHdLnSysObs(gorinex.TOBS, 'G', []string{"C1C"}), gorinex.ErrWrongVersion)

	v2 := gorinex.NewRinexData(gorinex.V210, nil)
	assert.ErrorIs(v2.SetHdLnSysObs(gorinex.SYS, 'G', []string{"C1C"}), gorinex.ErrWrongVersion)
	assert.NoError(v2.SetHdLnSysObs(gorinex.TOBS, 'G', []string{"C1C", "C5Q"}))
}
