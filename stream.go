/*------------------------------------------------------------------------------
* stream.go : input and output byte streams for RINEX data
*
* notes  : path syntax
*              serial://port[:brate]   receiver serial line
*              other                   local file path
*          serial input feeds the same readers that consume files, so a
*          receiver emitting RINEX text can be logged straight into a
*          RinexData object.
*-----------------------------------------------------------------------------*/
package gorinex

import (
	"io"
	"os"
	"strconv"
	"strings"

	serial "github.com/tarm/goserial"
)

const serialScheme = "serial://"

/* OpenStream opens the byte source named by path: a serial port when the
* serial:// scheme is present, a local file otherwise. */
func OpenStream(path string) (io.ReadCloser, error) {
	if strings.HasPrefix(path, serialScheme) {
		return openSerial(strings.TrimPrefix(path, serialScheme))
	}
	return os.Open(path)
}

/* OpenOutStream creates the output file for printed RINEX text. -------------*/
func OpenOutStream(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func openSerial(spec string) (io.ReadCloser, error) {
	fields := strings.Split(spec, ":")
	c := &serial.Config{Name: fields[0], Baud: 9600}
	if len(fields) > 1 {
		if b, err := strconv.Atoi(fields[1]); err == nil && b > 0 {
			c.Baud = b
		}
	}
	return serial.OpenPort(c)
}
