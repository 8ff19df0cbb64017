/*
 * doc.go, part of gothermo.
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

/*Package phf implements the phonon file format, a small compressed text format for the results
of periodic harmonic phonon calculations: the calculation cell, its energy, and the frequencies
(and optionally eigenvectors) at each q-point. It is meant to be trivial to write from any
program's output, so the thermodynamics in gothermo don't depend on a particular parser.

The *Data type returned by Read implements thermo.Output.


******************** Format Specification   ***************************************************

A PHF file may only contain ASCII symbols.

A PHF file has a header starting in the first line, and ending with a line that starts with the
characters "**" followed by one or more spaces, and the number of atoms in the cell.

Each line of the header is a pair key=value. The following keys are required:

  energy=  the electronic energy of the cell in kJ/mol. More than one value, separated by
           spaces, can be given, for calculations with several states.
  lattice= 9 numbers, the lattice vectors a, b and c, in A, one after the other.
  pbc=     3 numbers, 1 or 0, for periodicity along a, b and c.
  nmodes=  the number of modes at each q-point.

The key "charge" (an integer) is optional. Other keys are ignored.

After the header, the file has one line per atom, with the atomic number and the 3 fractional
coordinates of the atom.

Then comes one block per q-point. Each block starts with a line with the character "q" followed by
the 3 fractional coordinates of the q-point in reciprocal space. Then comes one line per mode, with the
frequency in THz (negative for imaginary frequencies) optionally followed by the 3*natoms components of
the eigenvector, atom by atom. Each block ends with a line with the single character "*".

The compression is given by the last letter of the file name: 'z' means gzip, 'r' raw deflate,
't' no compression at all, anything else z-standard. The recommended extension is "phf"
(z-standard).

***************************************************************************************************/
package phf
