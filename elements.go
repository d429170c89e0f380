/*
 * elements.go, part of gomm.
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

// RGB is a display color with components in [0,1]. It is only
// decoration; nothing in the force computation reads it.
type RGB struct {
	R, G, B float64
}

// Default display colors.
var (
	Black   = RGB{0, 0, 0}
	Gray    = RGB{0.5, 0.5, 0.5}
	Red     = RGB{1, 0, 0}
	Green   = RGB{0, 1, 0}
	Blue    = RGB{0, 0, 1}
	Yellow  = RGB{1, 1, 0}
	Magenta = RGB{1, 0, 1}
	Cyan    = RGB{0, 1, 1}
	White   = RGB{1, 1, 1}
)

// Element holds the per-element data the force field needs: mass for
// the multibody side, symbol/name/color for dumps and decoration.
// Immutable after registration.
type Element struct {
	AtomicNumber int
	Symbol       string
	Name         string
	Mass         float64 //Da
	DefaultColor RGB
}

func (e *Element) isValid() bool { return e != nil && e.AtomicNumber > 0 && e.Mass > 0 }

// DefineElement registers an element under its atomic number. It fails
// with AlreadyDefined if the slot is in use, and with InvalidArgument
// on a nonpositive atomic number or mass.
func (F *ForceField) DefineElement(atomicNumber int, symbol, name string, mass float64) error {
	if atomicNumber <= 0 {
		return errorf(InvalidArgument, "atomic number %d: must be positive", atomicNumber)
	}
	if mass <= 0 {
		return errorf(InvalidArgument, "element %s mass %g: must be positive", symbol, mass)
	}
	for atomicNumber >= len(F.elements) {
		F.elements = append(F.elements, nil)
	}
	if F.elements[atomicNumber].isValid() {
		return errorf(AlreadyDefined, "element %d is already defined as %s", atomicNumber, F.elements[atomicNumber].Symbol)
	}
	F.elements[atomicNumber] = &Element{AtomicNumber: atomicNumber, Symbol: symbol, Name: name, Mass: mass}
	return nil
}

// SetElementColor sets the default display color for an element.
func (F *ForceField) SetElementColor(atomicNumber int, color RGB) error {
	if !F.isValidElement(atomicNumber) {
		return errorf(InvalidArgument, "element %d is not defined", atomicNumber)
	}
	F.elements[atomicNumber].DefaultColor = color
	return nil
}

// Masses from http://physics.nist.gov/constants (2002 CODATA), to the
// precision a classical force field cares about. Only elements that
// show up in the kind of systems this library targets are present;
// missing ones can be added with DefineElement.
var defaultElements = []Element{
	{1, "H", "Hydrogen", 1.008, Green},
	{2, "He", "Helium", 4.003, Gray},
	{3, "Li", "Lithium", 6.941, Gray},
	{6, "C", "Carbon", 12.011, Gray},
	{7, "N", "Nitrogen", 14.007, Blue},
	{8, "O", "Oxygen", 15.999, Red},
	{9, "F", "Fluorine", 18.998, Gray},
	{10, "Ne", "Neon", 20.180, Gray},
	{11, "Na", "Sodium", 22.990, Gray},
	{12, "Mg", "Magnesium", 24.305, Gray},
	{14, "Si", "Silicon", 28.086, Gray},
	{15, "P", "Phosphorus", 30.974, Magenta},
	{16, "S", "Sulphur", 32.066, Yellow},
	{17, "Cl", "Chlorine", 35.453, Gray},
	{18, "Ar", "Argon", 39.948, Gray},
	{19, "K", "Potassium", 39.098, Gray},
	{20, "Ca", "Calcium", 40.078, Gray},
	{26, "Fe", "Iron", 55.845, Gray},
	{29, "Cu", "Copper", 63.546, Gray},
	{30, "Zn", "Zinc", 65.390, Gray},
	{36, "Kr", "Krypton", 83.800, Gray},
	{47, "Ag", "Silver", 107.868, Gray},
	{53, "I", "Iodine", 126.904, Gray},
	{54, "Xe", "Xenon", 131.290, Gray},
	{79, "Au", "Gold", 196.967, Yellow},
	{92, "U", "Uranium", 238.029, Gray},
}

func (F *ForceField) loadDefaultElements() {
	for i := range defaultElements {
		e := defaultElements[i]
		for e.AtomicNumber >= len(F.elements) {
			F.elements = append(F.elements, nil)
		}
		F.elements[e.AtomicNumber] = &e
	}
}
