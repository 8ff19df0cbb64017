/*
 * options.go, part of gothermo.
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

package thermo

import (
	"math"

	"github.com/rmera/gothermo/cell"
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

//Options for the harmonic thermodynamics calculations.
type Options struct {
	temperatures []float64
	pressures    []float64
	supercell    [3][3]int
	refine       bool
	sum          bool
	analyzer     cell.SymmetryAnalyzer
}

//Returns a Options with the default options.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.temperatures = []float64{298.15}
	ret.pressures = []float64{0}
	ret.supercell = cell.Identity
	ret.refine = false
	ret.sum = true
	ret.analyzer = cell.P1{}
	return ret
}

//Returns the temperatures (K) at which the thermodynamic functions are
//computed, and sets them to the values given, if they are all valid (finite
//and non-negative).
func (r *Options) Temperatures(temps ...float64) []float64 {
	ret := append([]float64(nil), r.temperatures...)
	if len(temps) == 0 {
		return ret
	}
	for _, v := range temps {
		if v < 0 || !finite(v) {
			return ret
		}
	}
	r.temperatures = append([]float64(nil), temps...)
	return ret
}

//Returns the pressures (GPa) for the Gibbs free energy, and sets them
//if any is given and all are finite.
func (r *Options) Pressures(press ...float64) []float64 {
	ret := append([]float64(nil), r.pressures...)
	if len(press) == 0 {
		return ret
	}
	for _, v := range press {
		if !finite(v) {
			return ret
		}
	}
	r.pressures = append([]float64(nil), press...)
	return ret
}

//Returns the supercell expansion matrix used in the phonon calculation,
//and sets it, if given. The identity means that no supercell was used.
func (r *Options) Supercell(smx ...[3][3]int) [3][3]int {
	ret := r.supercell
	if len(smx) > 0 {
		r.supercell = smx[0]
	}
	return ret
}

//Returns whether the geometry is to be refined (symmetrized), and sets
//the value, if given.
func (r *Options) Refine(refine ...bool) bool {
	ret := r.refine
	if len(refine) > 0 {
		r.refine = refine[0]
	}
	return ret
}

//Returns whether the contributions of all q-points are to be summed,
//and sets the value, if given.
func (r *Options) Sum(sum ...bool) bool {
	ret := r.sum
	if len(sum) > 0 {
		r.sum = sum[0]
	}
	return ret
}

//Returns the symmetry backend used to refine geometries, and sets it
//if a non-nil one is given.
func (r *Options) Analyzer(a ...cell.SymmetryAnalyzer) cell.SymmetryAnalyzer {
	ret := r.analyzer
	if len(a) > 0 && a[0] != nil {
		r.analyzer = a[0]
	}
	return ret
}
