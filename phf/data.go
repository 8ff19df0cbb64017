/*
 * data.go, part of gothermo.
 *
 * Copyright 2021 Raul Mera <rauldotmeraatusachdotcl>
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

package phf

import (
	"errors"
	"fmt"

	"github.com/rmera/gothermo/cell"
	v3 "github.com/rmera/gothermo/v3"
)

//Data is the whole content of a PHF file. It implements thermo.Output.
type Data struct {
	energies  []float64
	qpoints   [][3]float64
	freqs     [][]float64
	eigvecs   [][]*v3.Matrix
	structure *cell.Structure
}

//NewData returns a Data with the energies (kJ/mol) and structure of a calculation, and the
//frequencies (THz) at each of the q-points. eigvecs can be nil.
func NewData(energies []float64, s *cell.Structure, qpoints [][3]float64, freqs [][]float64, eigvecs [][]*v3.Matrix) (*Data, error) {
	if s == nil || len(energies) == 0 {
		return nil, &Error{"Energies and structure are required", "", []string{"NewData"}, true}
	}
	if len(qpoints) == 0 || len(freqs) != len(qpoints) || (eigvecs != nil && len(eigvecs) != len(qpoints)) {
		return nil, &Error{fmt.Sprintf("%d q-points, %d frequency sets, %d eigenvector sets", len(qpoints), len(freqs), len(eigvecs)), "", []string{"NewData"}, true}
	}
	for q, f := range freqs {
		if len(f) != len(freqs[0]) || len(f) == 0 {
			return nil, &Error{fmt.Sprintf("qpoint %d has %d modes, %d expected", q, len(f), len(freqs[0])), "", []string{"NewData"}, true}
		}
	}
	return &Data{energies: energies, qpoints: qpoints, freqs: freqs, eigvecs: eigvecs, structure: s}, nil
}

func (D *Data) Energies() ([]float64, error) { return D.energies, nil }

func (D *Data) QPoints() ([][3]float64, error) { return D.qpoints, nil }

func (D *Data) Frequencies() ([][]float64, error) { return D.freqs, nil }

//Eigenvectors returns nil if the file has no eigenvectors.
func (D *Data) Eigenvectors() ([][]*v3.Matrix, error) { return D.eigvecs, nil }

func (D *Data) Structure() (*cell.Structure, error) { return D.structure, nil }

//Read reads the whole PHF file name.
func Read(name string) (*Data, error) {
	r, err := New(name)
	if err != nil {
		return nil, decorate(err, "Read")
	}
	defer r.Close()
	D := &Data{energies: r.Energies(), structure: r.Structure()}
	haseig := false
	for {
		q, f, ev, err := r.Next()
		if err != nil {
			var last *LastBlockError
			if errors.As(err, &last) {
				break
			}
			return nil, decorate(err, "Read")
		}
		D.qpoints = append(D.qpoints, q)
		D.freqs = append(D.freqs, f)
		D.eigvecs = append(D.eigvecs, ev)
		if ev != nil {
			haseig = true
		}
	}
	if len(D.qpoints) == 0 {
		return nil, &Error{"No q-points in file", name, []string{"Read"}, true}
	}
	if !haseig {
		D.eigvecs = nil
	} else {
		for q, ev := range D.eigvecs {
			if ev == nil {
				D.eigvecs[q] = make([]*v3.Matrix, len(D.freqs[q]))
			}
		}
	}
	return D, nil
}

//Write writes the content of D to the PHF file name.
func Write(name string, D *Data) error {
	if D == nil || len(D.freqs) == 0 {
		return &Error{"No data to write", name, []string{"Write"}, true}
	}
	w, err := NewWriter(name, D.energies, D.structure, len(D.freqs[0]))
	if err != nil {
		return decorate(err, "Write")
	}
	for q, f := range D.freqs {
		var ev []*v3.Matrix
		if D.eigvecs != nil {
			ev = D.eigvecs[q]
		}
		if err := w.WNext(D.qpoints[q], f, ev); err != nil {
			w.Close()
			return decorate(err, "Write")
		}
	}
	return w.Close()
}
