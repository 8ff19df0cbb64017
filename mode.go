/*
 * mode.go, part of gothermo.
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
	"fmt"
	"math"

	v3 "github.com/rmera/gothermo/v3"
)

//the thermal properties of a mode at a given temperature.
type modeState struct {
	u  float64 //kJ/mol
	s  float64 //J/(mol*K)
	cv float64 //J/(mol*K)
}

//Mode is one vibrational mode at one q-point. It can hold several samples
//(i.e. the same mode at different volumes) but the thermodynamic functions
//are only defined for single-sample modes.
type Mode struct {
	rank   int
	freqs  []float64 //angular, rad/ps
	vols   []float64
	eigvec *v3.Matrix
	zpe    *float64
	cache  map[float64]modeState
}

//NewMode returns a mode with the given rank (from 1) and frequencies in THz,
//one per sample, calculated at the given volumes (A^3). An eigenvector can
//be given.
func NewMode(rank int, freqTHz, volumes []float64, eigvec ...*v3.Matrix) *Mode {
	M := new(Mode)
	M.rank = rank
	M.freqs = make([]float64, len(freqTHz))
	for i, v := range freqTHz {
		M.freqs[i] = v * THz2AngFreq
	}
	M.vols = append([]float64(nil), volumes...)
	if len(eigvec) > 0 {
		M.eigvec = eigvec[0]
	}
	return M
}

//Rank returns the rank of the mode, starting from 1.
func (M *Mode) Rank() int { return M.rank }

//Samples returns the number of calculations the mode has data for.
func (M *Mode) Samples() int { return len(M.freqs) }

//Frequencies returns the angular frequencies of the mode in rad/ps, one per sample.
func (M *Mode) Frequencies() []float64 { return M.freqs }

//Volumes returns the cell volumes, in A^3, of each sample.
func (M *Mode) Volumes() []float64 { return M.vols }

//Eigenvector returns the eigenvector of the mode, or nil if not set.
func (M *Mode) Eigenvector() *v3.Matrix { return M.eigvec }

//IsAcoustic returns true if the mode doesn't count as a vibration: a NaN (discarded
//imaginary) frequency, or one not larger than AcousticThreshold.
func (M *Mode) IsAcoustic() bool {
	if len(M.freqs) == 0 {
		return true
	}
	f := M.freqs[0]
	return math.IsNaN(f) || f <= AcousticThreshold
}

//Recompute discards all the cached values.
func (M *Mode) Recompute() {
	M.zpe = nil
	M.cache = nil
}

func (M *Mode) checkSingle(caller string) error {
	if len(M.freqs) != 1 {
		return newUsageError(fmt.Sprintf("mode %d: only defined for a single frequency calculation, got %d", M.rank, len(M.freqs)), caller)
	}
	return nil
}

//ZeroPointEnergy returns the zero-point energy of the mode in kJ/mol.
func (M *Mode) ZeroPointEnergy() (float64, error) {
	if err := M.checkSingle("ZeroPointEnergy"); err != nil {
		return 0, err
	}
	if M.zpe == nil {
		z := 0.5 * hbarOmega(M.freqs[0])
		M.zpe = &z
	}
	return *M.zpe, nil
}

//state returns the thermal properties of the mode at T (K), computing them if needed.
func (M *Mode) state(T float64, caller string) (modeState, error) {
	if err := M.checkSingle(caller); err != nil {
		return modeState{}, err
	}
	if st, ok := M.cache[T]; ok {
		return st, nil
	}
	zpe, _ := M.ZeroPointEnergy()
	st := modeState{u: zpe}
	if T != 0 {
		hw := hbarOmega(M.freqs[0])
		kt := kBT(T)
		x := hw / kt
		//e^-x rather than e^x, so large x gives zeros instead of Inf/Inf.
		em := math.Exp(-x)
		occ := em / (1 - em) //1/(e^x-1)
		st.u = zpe + hw*occ
		st.s = (x*occ - math.Log1p(-em)) * kt / T * 1000
		st.cv = hw * hw / (kt * T) * em / ((1 - em) * (1 - em)) * 1000
	}
	if M.cache == nil {
		M.cache = make(map[float64]modeState)
	}
	M.cache[T] = st
	return st, nil
}

//InternalEnergy returns the vibrational contribution to the internal energy at the
//temperature T (K), in kJ/mol. It includes the zero-point energy.
func (M *Mode) InternalEnergy(T float64) (float64, error) {
	st, err := M.state(T, "InternalEnergy")
	return st.u, err
}

//Entropy returns the entropy of the mode at T (K), in J/(mol*K).
func (M *Mode) Entropy(T float64) (float64, error) {
	st, err := M.state(T, "Entropy")
	return st.s, err
}

//HeatCapacity returns the constant-volume heat capacity of the mode at T (K), in J/(mol*K).
func (M *Mode) HeatCapacity(T float64) (float64, error) {
	st, err := M.state(T, "HeatCapacity")
	return st.cv, err
}
