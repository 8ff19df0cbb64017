/*
 * results.go, part of gothermo.
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
	"encoding/json"

	"gonum.org/v1/gonum/mat"
)

//Results contains the harmonic thermodynamic functions over the q-point, temperature
//and pressure grid. Energies are in kJ/mol, entropies and heat capacities in J/(mol*K).
type Results struct {
	QPoints      [][3]float64
	Temperatures []float64
	Pressures    []float64
	ZeroPoint    []float64    //one per q-point
	U            *mat.Dense   //internal energy, q-points x temperatures
	S            *mat.Dense   //entropy
	Cv           *mat.Dense   //constant-volume heat capacity
	A            *mat.Dense   //Helmholtz free energy
	G            []*mat.Dense //Gibbs free energy, one temperatures x pressures matrix per q-point
}

//NQPoints returns the number of q-points in the results (1 if they were summed).
func (R *Results) NQPoints() int { return len(R.QPoints) }

func (R *Results) InternalEnergy(q, t int) float64 { return R.U.At(q, t) }

func (R *Results) Entropy(q, t int) float64 { return R.S.At(q, t) }

func (R *Results) HeatCapacity(q, t int) float64 { return R.Cv.At(q, t) }

func (R *Results) Helmholtz(q, t int) float64 { return R.A.At(q, t) }

func (R *Results) Gibbs(q, t, p int) float64 { return R.G[q].At(t, p) }

func denseRows(D *mat.Dense) [][]float64 {
	r, c := D.Dims()
	ret := make([][]float64, r)
	for i := range ret {
		ret[i] = mat.Row(make([]float64, c), i, D)
	}
	return ret
}

func (R *Results) MarshalJSON() ([]byte, error) {
	g := make([][][]float64, len(R.G))
	for i, v := range R.G {
		g[i] = denseRows(v)
	}
	j, err := json.Marshal(struct {
		QPoints      [][3]float64  `json:"qpoints"`
		Temperatures []float64     `json:"temperatures"`
		Pressures    []float64     `json:"pressures"`
		ZeroPoint    []float64     `json:"zero_point_energy"`
		U            [][]float64   `json:"internal_energy"`
		S            [][]float64   `json:"entropy"`
		Cv           [][]float64   `json:"heat_capacity"`
		A            [][]float64   `json:"helmholtz"`
		G            [][][]float64 `json:"gibbs"`
	}{
		QPoints:      R.QPoints,
		Temperatures: R.Temperatures,
		Pressures:    R.Pressures,
		ZeroPoint:    R.ZeroPoint,
		U:            denseRows(R.U),
		S:            denseRows(R.S),
		Cv:           denseRows(R.Cv),
		A:            denseRows(R.A),
		G:            g,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}
