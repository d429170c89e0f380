/*
 * errors.go, part of gomm.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package mm

import "fmt"

// Kind classifies the failures the public API can report. Every error
// returned by this package carries exactly one Kind.
type Kind int

const (
	// InvalidArgument is a bad id, an out-of-range number or a
	// reference to something never defined.
	InvalidArgument Kind = iota
	// AlreadyDefined is an attempt to redefine a class, type or
	// bonded-parameter key that is already in use.
	AlreadyDefined
	// ParameterMissing means a bonded parameter required by the
	// molecule's topology was never defined. Reported at realize time.
	ParameterMissing
	// StructureConflict is an illegal cluster/body operation: placing
	// an atom twice, creating a containment cycle, and so on.
	StructureConflict
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case AlreadyDefined:
		return "AlreadyDefined"
	case ParameterMissing:
		return "ParameterMissing"
	case StructureConflict:
		return "StructureConflict"
	}
	return "UnknownKind"
}

// Error is the interface implemented by all errors this library
// produces. The Decorate method allows adding and retrieving info from
// the error, without changing its type or wrapping it around something
// else.
type Error interface {
	error
	Decorate(string) []string
	Kind() Kind
}

// CError is the concrete error of the mm package.
type CError struct {
	kind Kind
	msg  string
	deco []string
}

func (err *CError) Error() string { return fmt.Sprintf("%s: %s", err.kind, err.msg) }

// Kind returns the failure classification of the error.
func (err *CError) Kind() Kind { return err.kind }

// Decorate appends the name of the calling function (plus any extra
// info) to the error and returns the resulting decoration slice. An
// empty string only queries the current value.
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// errorf builds a *CError of the given kind, fmt-style.
func errorf(kind Kind, format string, args ...interface{}) *CError {
	return &CError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// errDecorate decorates err if it supports it and passes it along.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

// IsKind tells whether err is an mm error of the given kind.
func IsKind(err error, k Kind) bool {
	err2, ok := err.(Error)
	return ok && err2.Kind() == k
}
