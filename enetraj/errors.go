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

package enetraj

import "fmt"

// Error is the general structure for energy-trajectory errors.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("enetraj file %s error: %s", err.filename, err.message)
}

// Decorate returns the error's decoration with deco appended (an empty
// deco only queries it). The receiver is a copy, so the decoration
// stored in err itself is not changed.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the error.
func (err Error) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	WriterClosed = "Writer is closed or uninitialized"
	ReaderClosed = "Reader is closed or uninitialized"
)

// lastFrameError signals a normal end of the recording. It is not
// critical.
type lastFrameError struct {
	fileName string
}

// NormalLastFrameTermination does nothing; it marks the type so
// callers can filter the harmless end-of-recording case.
func (err lastFrameError) NormalLastFrameTermination() {}

func (err lastFrameError) FileName() string { return err.fileName }

func (err lastFrameError) Error() string { return "EOF" }

func (err lastFrameError) Critical() bool { return false }

func (err lastFrameError) Decorate(deco string) []string { return nil }

// LastFrame tells whether err just signals the normal end of a
// recording.
func LastFrame(err error) bool {
	_, ok := err.(interface{ NormalLastFrameTermination() })
	return ok
}
