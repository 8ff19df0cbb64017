/*
 * aggregate.go, part of gothermo.
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

	"gonum.org/v1/gonum/floats"
)

//SumZeroPoint returns the zero-point energy (kJ/mol) of each q-point, summed
//over its modes. Acoustic modes (see Mode.IsAcoustic) are skipped.
func SumZeroPoint(qpoints [][]*Mode) ([]float64, error) {
	ret := make([]float64, len(qpoints))
	for q, modes := range qpoints {
		zp := make([]float64, 0, len(modes))
		for _, m := range modes {
			if m.IsAcoustic() {
				continue
			}
			z, err := m.ZeroPointEnergy()
			if err != nil {
				return nil, decorate(err, fmt.Sprintf("SumZeroPoint: qpoint %d", q))
			}
			zp = append(zp, z)
		}
		ret[q] = floats.Sum(zp)
	}
	return ret, nil
}

//SumAtTemperature returns the internal energy (kJ/mol), entropy and heat capacity
//(J/(mol*K)) at T of each q-point, summed over its modes. Acoustic modes are skipped.
func SumAtTemperature(qpoints [][]*Mode, T float64) (U, S, Cv []float64, err error) {
	U = make([]float64, len(qpoints))
	S = make([]float64, len(qpoints))
	Cv = make([]float64, len(qpoints))
	for q, modes := range qpoints {
		u := make([]float64, 0, len(modes))
		s := make([]float64, 0, len(modes))
		cv := make([]float64, 0, len(modes))
		for _, m := range modes {
			if m.IsAcoustic() {
				continue
			}
			st, err := m.state(T, "SumAtTemperature")
			if err != nil {
				return nil, nil, nil, decorate(err, fmt.Sprintf("SumAtTemperature: qpoint %d", q))
			}
			u = append(u, st.u)
			s = append(s, st.s)
			cv = append(cv, st.cv)
		}
		U[q] = floats.Sum(u)
		S[q] = floats.Sum(s)
		Cv[q] = floats.Sum(cv)
	}
	return U, S, Cv, nil
}
