/*
 * errors.go, part of gothermo.
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
	"errors"
	"fmt"
	"strings"
)

//UsageError is returned when an operation is requested on data that doesn't
//support it, or in the wrong order.
type UsageError struct {
	message string
	deco    []string
}

func newUsageError(message string, caller string) *UsageError {
	return &UsageError{message, []string{caller}}
}

func (err *UsageError) Error() string {
	return fmt.Sprintf("thermo: %s", err.message)
}

//Decorate adds dec to the error's call chain and returns the chain.
func (err *UsageError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical is always true for UsageErrors
func (err *UsageError) Critical() bool { return true }

//decorate adds caller to the decoration of err, if err is an Error.
func decorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
	}
	return err
}

//ErrorTrace returns the error message followed by the decoration chain of the
//first Error in err's tree, from the innermost call outwards.
func ErrorTrace(err error) string {
	var e Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	return fmt.Sprintf("%s [%s]", err.Error(), strings.Join(e.Decorate(""), " <- "))
}
