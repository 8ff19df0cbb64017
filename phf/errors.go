/*
 * errors.go, part of gothermo.
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

import "fmt"

//Errors

type decorator interface {
	Decorate(string) []string
}

//decorate adds the caller's name to err, if err supports it, and returns it.
func decorate(err error, caller string) error {
	if d, ok := err.(decorator); ok {
		d.Decorate(caller)
	}
	return err
}

//Error is the general structure for PHF file errors. It fullfills thermo.Error
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	return fmt.Sprintf("phf file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing handle was associated
func (err *Error) FileName() string { return err.filename }

//Format returns the format of the file (always "phf") associated to the error
func (err *Error) Format() string { return "phf" }

//Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

const (
	PhfUnIniRead  = "PHF object uninitialized to read"
	PhfUnIniWrite = "PHF object uninitialized to write"
	WrongFormat   = "Wrong format in the PHF file"
)

//LastBlockError is returned by PhfR.Next when there are no more q-points to read.
//It is not critical.
type LastBlockError struct {
	deco     []string
	fileName string
}

//NormalLastBlockTermination does nothing, it only distinguishes this error.
func (E *LastBlockError) NormalLastBlockTermination() {}

func (E *LastBlockError) FileName() string { return E.fileName }

func (E *LastBlockError) Error() string { return "EOF" }

func (E *LastBlockError) Critical() bool { return false }

func (E *LastBlockError) Format() string { return "phf" }

func (E *LastBlockError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newLastBlockError(filename string, caller string) *LastBlockError {
	e := new(LastBlockError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
