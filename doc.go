/*
 * doc.go, part of gothermo.
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
 */

/*Package thermo is the main package of the goThermo library. It derives harmonic
thermodynamic functions from periodic phonon calculations.


	**goThermo Capabilities**


    Zero-point energy, vibrational internal energy, entropy and constant-volume
	heat capacity for each vibrational mode, at any temperature.

    Sums over the modes of each q-point, skipping acoustic (and discarded
	imaginary) modes, and optionally over the whole Brillouin zone.

    Helmholtz free energy over a temperature grid, and Gibbs free energy
	over a temperature and pressure grid.

    Recovers the primitive cell from a supercell phonon calculation
	(package cell), and refines it through a pluggable symmetry backend.

    Reads and writes compressed phonon files (package phf), and writes
	plain-text reports of the results.

The calculation data is given to the Harmonic type either directly or through
the Output interface, which any parser can implement.

All energies are in kJ/mol (per cell), entropies and heat capacities in
J/(mol*K), frequencies in THz on input and rad/ps internally, volumes in A^3,
temperatures in K and pressures in GPa.

*/
package thermo
