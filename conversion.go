/*
 * conversion.go, part of gothermo.
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

import "math"

//This provides useful conversion factors and other constants

//Conversions
const (
	THz2AngFreq = 2 * math.Pi //THz to angular frequency in rad/ps
	EV2KJmol    = 96.485332
	KJmol2EV    = 1 / 96.485332
	H2KJmol     = 2625.500256 //Hartree to kJ/mol
	KJmol2H     = 1 / 2625.500256
	GPaA32KJmol = 0.602214 //GPa*A^3 to kJ/mol. Also A^3 to cm^3/mol
)

//Physical constants, scaled so energies come out in kJ/mol
const (
	Avogadro  = 6.022141    //x10^23
	Planck    = 6.626070e-2 //x10^-34 J*s, times 10^12 for frequencies in rad/ps
	Boltzmann = 1.380649e-3 //x10^-23 J/K, times 10^3 for kJ
)

//Others
const (
	AcousticThreshold = 1e-5 //modes at or below this angular frequency (rad/ps) are not vibrations
)

//hbarOmega returns hbar*omega in kJ/mol, for an angular frequency in rad/ps
func hbarOmega(omega float64) float64 {
	return omega * Avogadro * Planck / (2 * math.Pi)
}

//kBT returns k_B*T in kJ/mol
func kBT(T float64) float64 {
	return Boltzmann * Avogadro * T
}
