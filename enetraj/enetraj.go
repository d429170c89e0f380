/*
 * enetraj.go, part of gomm.
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

//Package enetraj records the per-step output of a gomm force field
//(potential energy plus one spatial force per body) as a compressed
//text stream, one frame per dynamics step. It is meant for energy
//audits and regression runs, not as an interchange format.
//
//The compressor is picked from the file extension: .etz is gzip,
//.etr is raw flate, anything else z-standard.
package enetraj

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/gomm/spatial"
)

const flateLevel int = 9

// Writer records frames to a compressed file.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	nbodies   int
	filename  string
	writeable bool
}

// NewWriter creates a recording for the given number of bodies. The
// header map, if any, is stored as key=value lines before the body
// count.
func NewWriter(name string, nbodies int, header map[string]string) (*Writer, error) {
	if nbodies <= 0 {
		return nil, Error{fmt.Sprintf("%d bodies: need at least one", nbodies), name, []string{"NewWriter"}, true}
	}
	W := new(Writer)
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(name, ".etz"):
		W.h, err = gzip.NewWriterLevel(W.f, gzip.BestCompression)
	case strings.HasSuffix(name, ".etr"):
		W.h, err = flate.NewWriter(W.f, flateLevel)
	default:
		W.h, err = zstd.NewWriter(W.f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	if err != nil {
		W.f.Close()
		return nil, Error{"Can't set up compressor " + err.Error(), name, []string{"NewWriter"}, true}
	}
	for k, v := range header {
		fmt.Fprintf(W.h, "%s=%v\n", k, v)
	}
	fmt.Fprintf(W.h, "** %d\n", nbodies)
	W.nbodies = nbodies
	W.filename = name
	W.writeable = true
	return W, nil
}

// NBodies returns the number of bodies per frame.
func (W *Writer) NBodies() int { return W.nbodies }

// WNext writes one frame: the potential energy and the per-body
// spatial forces, which must be exactly NBodies long.
func (W *Writer) WNext(pe float64, forces []spatial.SpatialVec) error {
	if !W.writeable {
		return Error{WriterClosed, W.filename, []string{"WNext"}, true}
	}
	if len(forces) != W.nbodies {
		return Error{fmt.Sprintf("%d bodies given, but %d expected", len(forces), W.nbodies), W.filename, []string{"WNext"}, true}
	}
	fmt.Fprintf(W.h, "E %.10g\n", pe)
	for i, f := range forces {
		fmt.Fprintf(W.h, "%d %.10g %.10g %.10g %.10g %.10g %.10g\n", i,
			f.Torque.X, f.Torque.Y, f.Torque.Z, f.Force.X, f.Force.Y, f.Force.Z)
	}
	fmt.Fprintf(W.h, "*\n")
	return nil
}

// Close flushes and closes the recording. The Writer can not be used
// afterwards.
func (W *Writer) Close() {
	if W == nil || !W.writeable {
		return
	}
	W.h.Close()
	W.f.Close()
	W.writeable = false
}

// Reader plays a recording back.
type Reader struct {
	f        *os.File
	z        io.ReadCloser
	h        *bufio.Reader
	nbodies  int
	filename string
	readable bool
	header   map[string]string
}

// zstdql adapts *zstd.Decoder, whose Close returns nothing, to
// io.ReadCloser.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.closeql()
	return nil
}

// NewReader opens a recording and reads its header.
func NewReader(name string) (*Reader, error) {
	R := new(Reader)
	var err error
	R.f, err = os.Open(name)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(name, ".etz"):
		R.z, err = gzip.NewReader(R.f)
	case strings.HasSuffix(name, ".etr"):
		R.z = flate.NewReader(R.f)
	default:
		var d *zstd.Decoder
		d, err = zstd.NewReader(R.f)
		if err == nil {
			R.z = zstdql{closeql: d.Close, Decoder: d}
		}
	}
	if err != nil {
		R.f.Close()
		return nil, Error{"Can't set up decompressor " + err.Error(), name, []string{"NewReader"}, true}
	}
	R.h = bufio.NewReader(R.z)
	R.filename = name
	R.header = make(map[string]string)
	for {
		line, err := R.h.ReadString('\n')
		if err != nil {
			return nil, Error{"Header ended prematurely", name, []string{"NewReader"}, true}
		}
		line = strings.TrimSuffix(line, "\n")
		if strings.HasPrefix(line, "** ") {
			R.nbodies, err = strconv.Atoi(strings.TrimPrefix(line, "** "))
			if err != nil || R.nbodies <= 0 {
				return nil, Error{"Malformed body count " + line, name, []string{"NewReader"}, true}
			}
			break
		}
		if k, v, ok := strings.Cut(line, "="); ok {
			R.header[k] = v
		}
	}
	R.readable = true
	return R, nil
}

// NBodies returns the number of bodies per frame.
func (R *Reader) NBodies() int { return R.nbodies }

// Header returns the key=value pairs stored before the frames.
func (R *Reader) Header() map[string]string { return R.header }

// Next reads the next frame. At the end of the recording it returns
// an Error for which LastFrame is true.
func (R *Reader) Next() (pe float64, forces []spatial.SpatialVec, err error) {
	if !R.readable {
		return 0, nil, Error{ReaderClosed, R.filename, []string{"Next"}, true}
	}
	line, rerr := R.h.ReadString('\n')
	if rerr == io.EOF && line == "" {
		return 0, nil, lastFrameError{R.filename}
	}
	if rerr != nil {
		return 0, nil, Error{rerr.Error(), R.filename, []string{"Next"}, true}
	}
	line = strings.TrimSuffix(line, "\n")
	if !strings.HasPrefix(line, "E ") {
		return 0, nil, Error{"Malformed frame start " + line, R.filename, []string{"Next"}, true}
	}
	pe, err = strconv.ParseFloat(strings.TrimPrefix(line, "E "), 64)
	if err != nil {
		return 0, nil, Error{"Malformed energy " + line, R.filename, []string{"Next"}, true}
	}
	forces = make([]spatial.SpatialVec, R.nbodies)
	for i := 0; i < R.nbodies; i++ {
		line, rerr = R.h.ReadString('\n')
		if rerr != nil {
			return 0, nil, Error{"Frame ended prematurely", R.filename, []string{"Next"}, true}
		}
		fields := strings.Fields(line)
		if len(fields) != 7 {
			return 0, nil, Error{"Malformed body line " + line, R.filename, []string{"Next"}, true}
		}
		var vals [7]float64
		for j, fstr := range fields {
			vals[j], err = strconv.ParseFloat(fstr, 64)
			if err != nil {
				return 0, nil, Error{"Malformed number " + fstr, R.filename, []string{"Next"}, true}
			}
		}
		if int(vals[0]) != i {
			return 0, nil, Error{"Body lines out of order", R.filename, []string{"Next"}, true}
		}
		forces[i] = spatial.SpatialVec{
			Torque: spatial.Vec{X: vals[1], Y: vals[2], Z: vals[3]},
			Force:  spatial.Vec{X: vals[4], Y: vals[5], Z: vals[6]},
		}
	}
	line, rerr = R.h.ReadString('\n')
	if rerr != nil && rerr != io.EOF {
		return 0, nil, Error{rerr.Error(), R.filename, []string{"Next"}, true}
	}
	if strings.TrimSpace(line) != "*" {
		return 0, nil, Error{"Missing frame terminator", R.filename, []string{"Next"}, true}
	}
	return pe, forces, nil
}

// Close closes the recording. The Reader can not be used afterwards.
func (R *Reader) Close() {
	if R == nil || !R.readable {
		return
	}
	R.z.Close()
	R.f.Close()
	R.readable = false
}
