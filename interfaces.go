/*
 * interfaces.go, part of gothermo.
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
	"github.com/rmera/gothermo/cell"
	v3 "github.com/rmera/gothermo/v3"
)

// Output is the parsed result of a periodic phonon calculation. It abstracts
// over the program (and the file format) that produced the data.
type Output interface {
	//Energies returns the total electronic energy (kJ/mol) of each calculated state.
	Energies() ([]float64, error)

	//QPoints returns the q-points sampled, in fractional reciprocal coordinates.
	QPoints() ([][3]float64, error)

	//Frequencies returns the phonon frequencies, in THz, for each q-point (first index)
	//and mode (second index). Imaginary frequencies are given as negative numbers.
	Frequencies() ([][]float64, error)

	//Eigenvectors returns the normal modes, one Matrix with natoms rows per q-point and mode.
	//It can return nil if the data source doesn't have them.
	Eigenvectors() ([][]*v3.Matrix, error)

	//Structure returns the cell used in the calculation, which can be a supercell.
	Structure() (*cell.Structure, error)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call adds the string to the "decoration" slice, and returns the resulting slice. An empty string just returns the current slice.
	Critical() bool
}
