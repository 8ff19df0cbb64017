/*
 * errors.go, part of gothermo.
 *
 * Copyright 2021 Raul Mera <rmeraatusachdotcl>
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
 * */

package cell

import "fmt"

const appzero float64 = 0.000000000001

//Error is the general error for malformed lattices, coordinates or
//expansion matrices. It fullfills thermo.Error
type Error struct {
	message  string
	deco     []string
	critical bool
}

func newError(message string, caller string) *Error {
	return &Error{message, []string{caller}, true}
}

func (err *Error) Error() string {
	return fmt.Sprintf("cell: %s", err.message)
}

//Decorate adds the caller's information to the error and returns the
//decoration slice. An empty string only returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

//DomainError is returned when a geometric operation is not valid for the
//dimensionality of the given structure. There is no fallback for these.
type DomainError struct {
	message string
	dims    int
	deco    []string
}

func (err *DomainError) Error() string {
	return fmt.Sprintf("cell: %s (structure is %d-D)", err.message, err.dims)
}

func (err *DomainError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical is always true for a DomainError
func (err *DomainError) Critical() bool { return true }

//Dims returns the number of periodic dimensions of the offending structure.
func (err *DomainError) Dims() int { return err.dims }

type decorator interface {
	Decorate(string) []string
}

//decorate adds caller to err's decoration, if err supports it.
func decorate(err error, caller string) error {
	if d, ok := err.(decorator); ok {
		d.Decorate(caller)
	}
	return err
}
