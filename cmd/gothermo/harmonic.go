/*
 * harmonic.go, part of gothermo.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */


package main

import (
	"encoding/json"
	"math"
	"os"

	"github.com/cockroachdb/errors"
	thermo "github.com/rmera/gothermo"
	"github.com/rmera/gothermo/phf"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var harmonicCmd = &cobra.Command{
	Use:   "harmonic <file.phf>",
	Short: "Compute harmonic thermodynamic functions",
	Long: `harmonic computes the zero-point energy, vibrational internal energy, entropy,
heat capacity, and Helmholtz and Gibbs free energies from a phonon file, and writes
them as a plain-text report. Imaginary frequencies are discarded.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return bindFlags(cmd, "temperatures", "pressures", "supercell", "refine", "sum", "output", "json")
	},
	RunE: runHarmonic,
}

func init() {
	f := harmonicCmd.Flags()
	f.StringSlice("temperatures", []string{"298.15"}, "temperatures in K (comma-separated)")
	f.StringSlice("pressures", []string{"0"}, "pressures in GPa (comma-separated)")
	f.StringSlice("supercell", nil, "supercell expansion matrix of the phonon calculation: 1, 3 or 9 integers")
	f.Bool("refine", false, "refine the primitive cell (3D only). Requires a symmetry backend; the built-in one assumes P1, so the cell is not symmetrized")
	f.Bool("sum", true, "sum the contributions of all q-points")
	f.StringP("output", "o", "HA-thermodynamics.dat", "report file")
	f.String("json", "", "also write the results in JSON format to this file")
}

//options builds the calculation options from the configuration.
func options() (*thermo.Options, error) {
	o := thermo.DefaultOptions()
	temps, err := parseFloats(viper.GetStringSlice("temperatures"))
	if err != nil {
		return nil, errors.Wrap(err, "temperatures")
	}
	for _, t := range temps {
		if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, errors.Newf("temperatures must be finite and non-negative: %v", temps)
		}
	}
	o.Temperatures(temps...)
	press, err := parseFloats(viper.GetStringSlice("pressures"))
	if err != nil {
		return nil, errors.Wrap(err, "pressures")
	}
	for _, p := range press {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, errors.Newf("pressures must be finite: %v", press)
		}
	}
	o.Pressures(press...)
	smx, err := parseSupercell(viper.GetStringSlice("supercell"))
	if err != nil {
		return nil, err
	}
	o.Supercell(smx)
	o.Refine(viper.GetBool("refine"))
	o.Sum(viper.GetBool("sum"))
	return o, nil
}

func runHarmonic(_ *cobra.Command, args []string) error {
	o, err := options()
	if err != nil {
		return err
	}
	D, err := phf.Read(args[0])
	if err != nil {
		return errors.Wrapf(err, "reading %s", args[0])
	}
	H, err := thermo.FromOutput(D, o)
	if err != nil {
		return errors.Wrapf(err, "setting up the calculation from %s", args[0])
	}
	logger.Debugw("calculation loaded", "file", args[0], "qpoints", H.NQPoints(), "atoms", H.Structure().Len(), "volume", H.Volume())
	R, err := H.Thermodynamics(o.Sum())
	if err != nil {
		return err
	}
	for q, z := range R.ZeroPoint {
		logger.Debugw("zero point energy (kJ/mol)", "qpoint", R.QPoints[q], "zpe", z)
	}
	out := viper.GetString("output")
	if err := H.WriteReportFile(out); err != nil {
		return errors.Wrapf(err, "writing %s", out)
	}
	logger.Infow("results written", "file", out)
	if name := viper.GetString("json"); name != "" {
		j, err := json.MarshalIndent(R, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding results")
		}
		if err := os.WriteFile(name, j, 0644); err != nil {
			return errors.Wrapf(err, "writing %s", name)
		}
	}
	return nil
}
