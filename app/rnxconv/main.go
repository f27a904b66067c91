/*------------------------------------------------------------------------------
* rnxconv : RINEX version converter and filter
*
*          reads a RINEX V2.10 or V3.04 observation or navigation file (or a
*          serial stream carrying RINEX text), optionally filters systems,
*          satellites and observables, and writes the data back in the
*          requested version.
*
* usage  : rnxconv [-o out] [-r {2,3}] [-s G,R05,...] [-t C1C,GC1C,...] input
*-----------------------------------------------------------------------------*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gorinex"
)

var rootCmd = &cobra.Command{
	Use:   "rnxconv [flags] input",
	Short: "Convert and filter RINEX observation and navigation files",
	Long: "rnxconv reads a RINEX V2.10 or V3.04 file, applies an optional\n" +
		"system / satellite / observable selection, and re-emits the data in\n" +
		"the requested version. Input may be a file path or serial://port.",
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringP("output", "o", "", "output file (default: conventional name from start epoch)")
	rootCmd.Flags().IntP("rnxver", "r", 3, "output RINEX version: 2 (V2.10) or 3 (V3.04)")
	rootCmd.Flags().StringP("satsys", "s", "", "satellite selection, comma separated (G, R05, ...)")
	rootCmd.Flags().StringP("obstype", "t", "", "observable selection, comma separated (C1C, GC1C, ...)")
	rootCmd.Flags().Bool("nav", false, "treat input as a navigation file")
	rootCmd.Flags().String("marker", "", "marker name for the output header")
	rootCmd.Flags().IntP("trace", "x", 0, "trace level (0: off, 4: max)")
	for _, f := range []string{"output", "rnxver", "satsys", "obstype", "nav", "marker", "trace"} {
		viper.BindPFlag(f, rootCmd.Flags().Lookup(f))
	}
}

func initConfig() {
	viper.SetConfigName(".rnxconv")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetEnvPrefix("RNXCONV")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func runConvert(cmd *cobra.Command, args []string) error {
	ver := gorinex.V304
	if viper.GetInt("rnxver") == 2 {
		ver = gorinex.V210
	}
	logger := gorinex.NewLogger(os.Stderr, viper.GetInt("trace"))
	rnx := gorinex.NewRinexDataPgm(ver, "rnxconv", "gorinex", logger)

	in, err := gorinex.OpenStream(args[0])
	if err != nil {
		return err
	}
	defer in.Close()
	rd := bufio.NewReader(in)

	if lbl, err := rnx.ReadRinexHeader(rd); lbl != gorinex.EOH {
		return fmt.Errorf("%s: header not complete: %w", args[0], err)
	}
	if m := viper.GetString("marker"); m != "" {
		rnx.SetHdLnStr(gorinex.MRKNAME, m, "", "")
	}
	if err := applyFilter(rnx); err != nil {
		return err
	}
	if viper.GetBool("nav") {
		return convertNav(rnx, rd)
	}
	return convertObs(rnx, rd)
}

func applyFilter(rnx *gorinex.RinexData) error {
	split := func(s string) []string {
		if s == "" {
			return nil
		}
		return strings.Split(s, ",")
	}
	sats, obs := split(viper.GetString("satsys")), split(viper.GetString("obstype"))
	if len(sats) == 0 && len(obs) == 0 {
		return nil
	}
	return rnx.SetFilter(sats, obs)
}

/* read all observation epochs, filter each and reprint it. The output file
* name derives from the first epoch, so the stream opens lazily. */
func convertObs(rnx *gorinex.RinexData, rd *bufio.Reader) error {
	var (
		out  io.WriteCloser
		name string
		w    *bufio.Writer
	)
	for {
		flag, err := rnx.ReadObsEpoch(rd)
		if err == io.EOF {
			break
		}
		if err != nil {
			continue /* malformed epoch already reported */
		}
		if w == nil {
			if out, name, err = outStream(rnx, true); err != nil {
				return err
			}
			defer out.Close()
			w = bufio.NewWriter(out)
			if err := rnx.PrintObsHeader(w); err != nil {
				return err
			}
		}
		if flag < 2 && !rnx.FilterObsData(true) {
			continue
		}
		if err := rnx.PrintObsEpoch(w); err != nil {
			return err
		}
	}
	if w == nil {
		return fmt.Errorf("no observation epochs in input")
	}
	rnx.PrintObsEOF(w)
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println(name)
	return nil
}

/* read all navigation blocks, then filter and print them as one batch -------*/
func convertNav(rnx *gorinex.RinexData, rd *bufio.Reader) error {
	for {
		err := rnx.ReadNavEpoch(rd)
		if err == io.EOF {
			break
		}
		if err != nil && rnx.NNav() == 0 {
			return err
		}
	}
	rnx.FilterNavData()

	out, name, err := outStream(rnx, false)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if err := rnx.PrintNavHeader(w); err != nil {
		return err
	}
	if err := rnx.PrintNavEpochs(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println(name)
	return nil
}

func outStream(rnx *gorinex.RinexData, obs bool) (io.WriteCloser, string, error) {
	name := viper.GetString("output")
	if name == "" {
		var err error
		if obs {
			name, err = rnx.GetObsFileName("CONV", "")
		} else {
			name, err = rnx.GetNavFileName("CONV", "")
		}
		if err != nil {
			return nil, "", err
		}
	}
	out, err := gorinex.OpenOutStream(name)
	return out, name, err
}
