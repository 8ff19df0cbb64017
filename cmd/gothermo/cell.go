/*
 * cell.go, part of gothermo.
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
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rmera/gothermo/cell"
	"github.com/rmera/gothermo/phf"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cellCmd = &cobra.Command{
	Use:   "cell <file.phf>",
	Short: "Recover the primitive cell of a supercell calculation",
	Long: `cell reads the calculation cell from a phonon file and reduces it to the primitive
cell, given the supercell expansion matrix. With --expand, the cell is expanded
instead. The origin of the resulting cell is at its geometric center.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return bindFlags(cmd, "supercell", "refine", "expand")
	},
	RunE: runCell,
}

func init() {
	f := cellCmd.Flags()
	f.StringSlice("supercell", nil, "supercell expansion matrix: 1, 3 or 9 integers")
	f.Bool("refine", false, "refine the resulting cell (3D only). Requires a symmetry backend; the built-in one assumes P1, so the cell is not symmetrized")
	f.Bool("expand", false, "expand the cell to the supercell instead of reducing it")
}

func runCell(cmd *cobra.Command, args []string) error {
	smx, err := parseSupercell(viper.GetStringSlice("supercell"))
	if err != nil {
		return err
	}
	r, err := phf.New(args[0])
	if err != nil {
		return errors.Wrapf(err, "reading %s", args[0])
	}
	s := r.Structure()
	r.Close()
	if viper.GetBool("expand") {
		s, err = cell.ExpandToSupercell(s, smx)
	} else {
		s, err = cell.ReduceToPrimitive(s, smx)
	}
	if err != nil {
		return err
	}
	if viper.GetBool("refine") {
		var sg int
		sg, s, err = cell.RefineGeometry(s, cell.P1{})
		if err != nil {
			return err
		}
		logger.Infow("geometry refined", "spacegroup", sg)
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	fmt.Fprintf(cmd.OutOrStdout(), "Volume: %.6f A^3, %d sites, charge %d\n", s.Volume(), s.Len(), s.Charge)
	return nil
}
