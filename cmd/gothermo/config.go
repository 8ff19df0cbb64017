/*
 * config.go, part of gothermo.
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
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rmera/gothermo/cell"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

//bindFlags binds the given flags of cmd to the viper keys of the same name.
//It is done when the command runs, as different commands share keys.
func bindFlags(cmd *cobra.Command, keys ...string) error {
	for _, k := range keys {
		if err := viper.BindPFlag(k, cmd.Flags().Lookup(k)); err != nil {
			return errors.Wrapf(err, "can't bind flag %s", k)
		}
	}
	return nil
}

func parseFloats(vals []string) ([]float64, error) {
	ret := make([]float64, 0, len(vals))
	for _, v := range vals {
		for _, f := range strings.Fields(strings.ReplaceAll(v, ",", " ")) {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid number %q", f)
			}
			ret = append(ret, x)
		}
	}
	return ret, nil
}

//parseSupercell reads an expansion matrix from 1 (n times the identity), 3 (diagonal)
//or 9 (full matrix, by rows) integers. No values means the identity.
func parseSupercell(vals []string) ([3][3]int, error) {
	smx := cell.Identity
	ints := make([]int, 0, 9)
	for _, v := range vals {
		for _, f := range strings.Fields(strings.ReplaceAll(v, ",", " ")) {
			n, err := strconv.Atoi(f)
			if err != nil {
				return smx, errors.Wrapf(err, "invalid supercell element %q", f)
			}
			ints = append(ints, n)
		}
	}
	switch len(ints) {
	case 0:
	case 1:
		smx = [3][3]int{{ints[0], 0, 0}, {0, ints[0], 0}, {0, 0, ints[0]}}
	case 3:
		smx = [3][3]int{{ints[0], 0, 0}, {0, ints[1], 0}, {0, 0, ints[2]}}
	case 9:
		for i := 0; i < 9; i++ {
			smx[i/3][i%3] = ints[i]
		}
	default:
		return smx, errors.Newf("the supercell matrix needs 1, 3 or 9 integers, got %d", len(ints))
	}
	return smx, nil
}
