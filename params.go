/*
 * params.go, part of gomm.
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

import (
	"math"
)

// Internal units: length A, mass Da, time ps, charge e. That makes the
// energy unit Da-A^2/ps^2. Inputs in kcal/mol and degrees are converted
// on ingestion and never seen again.
const (
	// EnergyUnitsPerKcal converts kcal/mol to Da-A^2/ps^2. Exact.
	EnergyUnitsPerKcal = 418.4
	// RadiansPerDegree is pi/180.
	RadiansPerDegree = math.Pi / 180
	// CoulombFac is Coulomb's constant 1/(4*pi*e0) in units which
	// convert e^2/A to kcal/mol, times EnergyUnitsPerKcal. The
	// 332.06371 was calculated from the NIST physical constants
	// (2002 CODATA).
	CoulombFac = 332.06371 * EnergyUnitsPerKcal
)

// intPair, intTriple and intQuad key the bonded-parameter maps. They
// are canonicalized so that a parameter defined under a key matches
// both the key and its reversal.

// canonical is low,high
type intPair [2]int

func newIntPair(i, j int, canon bool) intPair {
	if canon && i > j {
		i, j = j, i
	}
	return intPair{i, j}
}

// canonical has 1st number <= last number; middle stays put
type intTriple [3]int

func newIntTriple(i, j, k int, canon bool) intTriple {
	if canon && i > k {
		i, k = k, i
	}
	return intTriple{i, j, k}
}

// canonical has 1st number <= last number; middle two swap
// if the outside ones do
type intQuad [4]int

func newIntQuad(i, j, k, l int, canon bool) intQuad {
	if canon && i > l {
		i, l = l, i
		j, k = k, j
	}
	return intQuad{i, j, k, l}
}

// AtomClass describes an atomic environment: element, expected
// valence, and the two Lennard-Jones parameters. After realize it also
// carries the combined vdW tables against all classes with ids >= its
// own: entry j-id of VdwDij/VdwEij holds Dij (=2*rmin, A) and Eij
// (energy units) for the pair (id, j). Asking the lower-numbered class
// halves the memory and fixes ownership of each pair.
type AtomClass struct {
	Id           int
	Name         string
	Element      int
	Valence      int     //# of direct bonds expected
	VdwRadius    float64 //ri, A
	VdwWellDepth float64 //ei, Da-A^2/ps^2

	VdwDij []float64
	VdwEij []float64
}

func (a *AtomClass) isValid() bool {
	return a != nil && a.Id >= 0 && a.Element > 0 && a.Valence >= 0 &&
		a.VdwRadius >= 0 && a.VdwWellDepth >= 0
}

func (a *AtomClass) invalidateTopologicalCache() {
	a.VdwDij = nil
	a.VdwEij = nil
}

// ChargedAtomType is an atom class plus a partial charge. Individual
// atoms refer to one of these.
type ChargedAtomType struct {
	Id            int
	Name          string
	AtomClass     int
	PartialCharge float64 //qi, in e
}

func (t *ChargedAtomType) isValid() bool { return t != nil && t.Id >= 0 && t.AtomClass >= 0 }

// BondStretch is the harmonic stretch term for a pair of atom classes:
// E = K*(d-D0)^2. Note there is no factor of 1/2; it is absorbed
// into K.
type BondStretch struct {
	K  float64 //energy units per A^2, i.e. Da/ps^2
	D0 float64 //distance at which force is 0, A
}

func (bs BondStretch) isValid() bool { return bs.K >= 0 && bs.D0 >= 0 }

// Energy returns the stretch energy at separation d (A), in internal
// units.
func (bs BondStretch) Energy(d float64) float64 {
	x := d - bs.D0
	return bs.K * x * x
}

// BondBend is the harmonic-on-angle bend term for a triple of atom
// classes: E = K*(theta-Theta0)^2, again with no 1/2 factor.
type BondBend struct {
	K      float64 //energy units per rad^2
	Theta0 float64 //unstressed angle, radians
}

func (bb BondBend) isValid() bool { return bb.K >= 0 && 0 <= bb.Theta0 && bb.Theta0 <= math.Pi }

// Energy returns the bend energy at angle theta (radians), in
// internal units.
func (bb BondBend) Energy(theta float64) float64 {
	x := theta - bb.Theta0
	return bb.K * x * x
}

// TorsionTerm is one Fourier term of a periodic torsion:
// E(theta) = Amplitude*(1 + cos(Periodicity*theta - Theta0)).
type TorsionTerm struct {
	Periodicity int     //1=360, 2=180, 3=120, etc.
	Amplitude   float64 //energy units
	Theta0      float64 //phase, radians
}

func (tt TorsionTerm) isValid() bool {
	return tt.Periodicity > 0 && tt.Amplitude >= 0 && -math.Pi < tt.Theta0 && tt.Theta0 <= math.Pi
}

// Energy returns the term's energy at torsion angle theta (radians).
func (tt TorsionTerm) Energy(theta float64) float64 {
	return tt.Amplitude * (1 + math.Cos(float64(tt.Periodicity)*theta-tt.Theta0))
}

// Torque returns the term's scalar torque about the bond axis at
// torsion angle theta.
func (tt TorsionTerm) Torque(theta float64) float64 {
	return float64(tt.Periodicity) * tt.Amplitude * math.Sin(float64(tt.Periodicity)*theta-tt.Theta0)
}

// BondTorsion is the Fourier sum for a quad of atom classes. Up to 6
// terms, each with a distinct periodicity.
type BondTorsion struct {
	Terms []TorsionTerm
}

func (bt BondTorsion) isValid() bool { return len(bt.Terms) > 0 }

// Energy returns the Fourier-sum energy at torsion angle theta
// (radians), in internal units.
func (bt BondTorsion) Energy(theta float64) float64 {
	var pe float64
	for _, t := range bt.Terms {
		pe += t.Energy(theta)
	}
	return pe
}

func (bt BondTorsion) hasTerm(n int) bool {
	for _, t := range bt.Terms {
		if t.Periodicity == n {
			return true
		}
	}
	return false
}

// VdwMixingRule selects the combining rule producing per-pair vdW
// parameters from per-atom-class ones. The library default, and the
// only one the runtime dynamics path is specified for, is
// Waldman-Hagler; the others are kept because they are well known and
// cheap to have, and the tests exercise them.
type VdwMixingRule int

const (
	// WaldmanHagler is the default rule. Ref: Waldman, M. & Hagler,
	// A.T., J. Comput. Chem. 14(9):1077 (1993).
	WaldmanHagler VdwMixingRule = iota
	// LorentzBerthelot is the most common rule (AMBER, CHARMM) and
	// also the worst one.
	LorentzBerthelot
	// Jorgensen is used in OPLS.
	Jorgensen
	// HalgrenHHG is used in MMFF and AMOEBA.
	HalgrenHHG
	// Kong combines the Tang-Toennies radius formula with the
	// Waldman-Hagler well depth. Ref: Kong, C.L., J. Chem. Phys.
	// 59(5):2464 (1973).
	Kong
)

func (r VdwMixingRule) String() string {
	switch r {
	case WaldmanHagler:
		return "WaldmanHagler"
	case LorentzBerthelot:
		return "LorentzBerthelot"
	case Jorgensen:
		return "Jorgensen"
	case HalgrenHHG:
		return "HalgrenHHG"
	case Kong:
		return "Kong"
	}
	return "UnknownRule"
}

func arithmeticMean(a, b float64) float64 { return 0.5 * (a + b) }
func geometricMean(a, b float64) float64  { return math.Sqrt(a * b) }
func harmonicMean(a, b float64) float64   { return (2 * a * b) / (a + b) }

// cubicMean = (a^3+b^3)/(a^2+b^2)
func cubicMean(a, b float64) float64 { return (a*a*a + b*b*b) / (a*a + b*b) }

// hhgMean is the harmonic mean of the harmonic and geometric means.
func hhgMean(a, b float64) float64 { return harmonicMean(harmonicMean(a, b), geometricMean(a, b)) }

const (
	oo6  = 1.0 / 6.0
	oo13 = 1.0 / 13.0
)

// combine mixes the per-class (ri,ei),(rj,ej) into the pair's (rmin,
// emin) according to the rule.
func (r VdwMixingRule) combine(ri, rj, ei, ej float64) (rmin, emin float64) {
	switch r {
	case LorentzBerthelot:
		return arithmeticMean(ri, rj), geometricMean(ei, ej)
	case Jorgensen:
		return geometricMean(ri, rj), geometricMean(ei, ej)
	case HalgrenHHG:
		return cubicMean(ri, rj), hhgMean(ei, ej)
	case Kong:
		ri3 := ri * ri * ri
		ri6 := ri3 * ri3
		ri12 := ri6 * ri6
		rj3 := rj * rj * rj
		rj6 := rj3 * rj3
		rj12 := rj6 * rj6
		er6 := geometricMean(ei*ri6, ej*rj6)
		eri1213 := math.Pow(ei*ri12, oo13)
		erj1213 := math.Pow(ej*rj12, oo13)
		er1213 := arithmeticMean(eri1213, erj1213)
		r6 := math.Pow(er1213, 13) / er6
		return math.Pow(r6, oo6), er6 / r6
	default: //WaldmanHagler
		ri3 := ri * ri * ri
		ri6 := ri3 * ri3
		rj3 := rj * rj * rj
		rj6 := rj3 * rj3
		er6 := geometricMean(ei*ri6, ej*rj6)
		r6 := arithmeticMean(ri6, rj6)
		return math.Pow(r6, oo6), er6 / r6
	}
}

// applyMixingRule produces the (Dij, Eij) pair table entries; Dij is
// the separation at the energy minimum, i.e. twice the combined
// radius.
func (F *ForceField) applyMixingRule(ri, rj, ei, ej float64) (dij, eij float64) {
	rmin, emin := F.mixingRule.combine(ri, rj, ei, ej)
	return 2 * rmin, emin
}

// DefineAtomClass defines atom class id with the given element (atomic
// number, which must already be registered), expected valence, vdW
// radius (A, radius at the energy minimum, not sigma) and well depth
// (kcal/mol). Duplicate ids fail with AlreadyDefined.
func (F *ForceField) DefineAtomClass(id int, name string, element, valence int, vdwRadius, vdwWellDepthInKcal float64) error {
	if id < 0 {
		return errorf(InvalidArgument, "atom class id %d: must be nonnegative", id)
	}
	if !F.isValidElement(element) {
		return errorf(InvalidArgument, "element %d: must be a registered atomic number", element)
	}
	if valence < 0 {
		return errorf(InvalidArgument, "expected valence %d: must be nonnegative", valence)
	}
	if !isFinite(vdwRadius) || vdwRadius < 0 {
		return errorf(InvalidArgument, "van der Waals radius %g: must be finite and nonnegative", vdwRadius)
	}
	if !isFinite(vdwWellDepthInKcal) || vdwWellDepthInKcal < 0 {
		return errorf(InvalidArgument, "van der Waals well depth %g: must be finite and nonnegative", vdwWellDepthInKcal)
	}
	for id >= len(F.atomClasses) {
		F.atomClasses = append(F.atomClasses, nil)
	}
	if F.atomClasses[id].isValid() {
		return errorf(AlreadyDefined, "atom class id %d is already in use for '%s'", id, F.atomClasses[id].Name)
	}
	F.atomClasses[id] = &AtomClass{
		Id:           id,
		Name:         name,
		Element:      element,
		Valence:      valence,
		VdwRadius:    vdwRadius,
		VdwWellDepth: vdwWellDepthInKcal * EnergyUnitsPerKcal,
	}
	return nil
}

// DefineChargedAtomType defines charged atom type id referring to an
// existing atom class, with the given partial charge (e, signed).
func (F *ForceField) DefineChargedAtomType(id int, name string, atomClass int, partialCharge float64) error {
	if id < 0 {
		return errorf(InvalidArgument, "charged atom type id %d: must be nonnegative", id)
	}
	if atomClass < 0 || !F.isValidAtomClass(atomClass) {
		return errorf(InvalidArgument, "atom class %d is undefined", atomClass)
	}
	if !isFinite(partialCharge) {
		return errorf(InvalidArgument, "partial charge %g: must be finite", partialCharge)
	}
	for id >= len(F.chargedAtomTypes) {
		F.chargedAtomTypes = append(F.chargedAtomTypes, nil)
	}
	if F.chargedAtomTypes[id].isValid() {
		return errorf(AlreadyDefined, "charged atom type id %d is already in use for '%s'", id, F.chargedAtomTypes[id].Name)
	}
	F.chargedAtomTypes[id] = &ChargedAtomType{Id: id, Name: name, AtomClass: atomClass, PartialCharge: partialCharge}
	return nil
}

// DefineBondStretch defines the harmonic stretch for the (class1,
// class2) pair, with stiffness in kcal/mol/A^2 and nominal length in
// A. The key is canonicalized, so the reversed pair resolves to the
// same parameter, and redefining either order fails.
func (F *ForceField) DefineBondStretch(class1, class2 int, stiffnessInKcalPerASq, nominalLengthInA float64) error {
	if !F.isValidAtomClass(class1) {
		return errorf(InvalidArgument, "atom class %d is undefined", class1)
	}
	if !F.isValidAtomClass(class2) {
		return errorf(InvalidArgument, "atom class %d is undefined", class2)
	}
	if !isFinite(stiffnessInKcalPerASq) || stiffnessInKcalPerASq < 0 {
		return errorf(InvalidArgument, "stretch stiffness %g: must be finite and nonnegative", stiffnessInKcalPerASq)
	}
	if !isFinite(nominalLengthInA) || nominalLengthInA < 0 {
		return errorf(InvalidArgument, "nominal length %g: must be finite and nonnegative", nominalLengthInA)
	}
	key := newIntPair(class1, class2, true)
	if _, ok := F.bondStretch[key]; ok {
		return errorf(AlreadyDefined, "stretch parameters for classes (%d,%d) are already defined", class1, class2)
	}
	F.bondStretch[key] = BondStretch{K: stiffnessInKcalPerASq * EnergyUnitsPerKcal, D0: nominalLengthInA}
	return nil
}

// DefineBondBend defines the harmonic bend for the (class1, class2,
// class3) triple, class2 central, with stiffness in kcal/mol/rad^2 and
// nominal angle in degrees, within [0,180].
func (F *ForceField) DefineBondBend(class1, class2, class3 int, stiffnessInKcalPerRadSq, nominalAngleInDegrees float64) error {
	for _, c := range []int{class1, class2, class3} {
		if !F.isValidAtomClass(c) {
			return errorf(InvalidArgument, "atom class %d is undefined", c)
		}
	}
	if !isFinite(stiffnessInKcalPerRadSq) || stiffnessInKcalPerRadSq < 0 {
		return errorf(InvalidArgument, "bend stiffness %g: must be finite and nonnegative", stiffnessInKcalPerRadSq)
	}
	if !isFinite(nominalAngleInDegrees) || nominalAngleInDegrees < 0 || nominalAngleInDegrees > 180 {
		return errorf(InvalidArgument, "nominal angle %g: must be between 0 and 180 degrees", nominalAngleInDegrees)
	}
	key := newIntTriple(class1, class2, class3, true)
	if _, ok := F.bondBend[key]; ok {
		return errorf(AlreadyDefined, "bend parameters for classes (%d,%d,%d) are already defined", class1, class2, class3)
	}
	F.bondBend[key] = BondBend{K: stiffnessInKcalPerRadSq * EnergyUnitsPerKcal, Theta0: nominalAngleInDegrees * RadiansPerDegree}
	return nil
}

// DefineBondTorsion defines a periodic torsion for the four classes,
// given as up to 6 terms of (periodicity, amplitude in kcal/mol, phase
// in degrees). Periodicities must be in 1..6 and distinct within the
// quad; amplitudes nonnegative; phases in [0,180]. At least one term
// is required.
func (F *ForceField) DefineBondTorsion(class1, class2, class3, class4 int, terms ...TorsionSpec) error {
	for _, c := range []int{class1, class2, class3, class4} {
		if !F.isValidAtomClass(c) {
			return errorf(InvalidArgument, "atom class %d is undefined", c)
		}
	}
	if len(terms) == 0 {
		return errorf(InvalidArgument, "at least one torsion term is required")
	}
	if len(terms) > 6 {
		return errorf(InvalidArgument, "%d torsion terms given: at most 6 are allowed", len(terms))
	}
	bt := BondTorsion{}
	for _, t := range terms {
		if t.Periodicity < 1 || t.Periodicity > 6 {
			return errorf(InvalidArgument, "torsion periodicity %d: must be between 1 and 6", t.Periodicity)
		}
		if !isFinite(t.AmplitudeInKcal) || t.AmplitudeInKcal < 0 {
			return errorf(InvalidArgument, "torsion amplitude %g: must be finite and nonnegative", t.AmplitudeInKcal)
		}
		if !isFinite(t.PhaseInDegrees) || t.PhaseInDegrees < 0 || t.PhaseInDegrees > 180 {
			return errorf(InvalidArgument, "torsion phase %g: must be between 0 and 180 degrees", t.PhaseInDegrees)
		}
		if bt.hasTerm(t.Periodicity) {
			return errorf(InvalidArgument, "torsion periodicity %d appears more than once", t.Periodicity)
		}
		bt.Terms = append(bt.Terms, TorsionTerm{
			Periodicity: t.Periodicity,
			Amplitude:   t.AmplitudeInKcal * EnergyUnitsPerKcal,
			Theta0:      t.PhaseInDegrees * RadiansPerDegree,
		})
	}
	key := newIntQuad(class1, class2, class3, class4, true)
	if _, ok := F.bondTorsion[key]; ok {
		return errorf(AlreadyDefined, "torsion parameters for classes (%d,%d,%d,%d) are already defined", class1, class2, class3, class4)
	}
	F.bondTorsion[key] = bt
	return nil
}

// TorsionSpec is one input term for DefineBondTorsion, still in user
// units.
type TorsionSpec struct {
	Periodicity     int
	AmplitudeInKcal float64
	PhaseInDegrees  float64
}

// BondStretchParams returns the stretch parameter stored for a class
// pair, in internal units. The key is canonicalized, so both orders
// work.
func (F *ForceField) BondStretchParams(class1, class2 int) (BondStretch, error) {
	bs, ok := F.getBondStretch(class1, class2)
	if !ok {
		return BondStretch{}, errorf(ParameterMissing, "no stretch parameters for atom classes (%d,%d)", class1, class2)
	}
	return bs, nil
}

// BondBendParams returns the bend parameter stored for a class triple
// (middle class central), in internal units.
func (F *ForceField) BondBendParams(class1, class2, class3 int) (BondBend, error) {
	bb, ok := F.getBondBend(class1, class2, class3)
	if !ok {
		return BondBend{}, errorf(ParameterMissing, "no bend parameters for atom classes (%d,%d,%d)", class1, class2, class3)
	}
	return bb, nil
}

// BondTorsionParams returns the torsion parameter stored for a class
// quad, in internal units. The returned value shares no storage with
// the table.
func (F *ForceField) BondTorsionParams(class1, class2, class3, class4 int) (BondTorsion, error) {
	bt, ok := F.getBondTorsion(class1, class2, class3, class4)
	if !ok {
		return BondTorsion{}, errorf(ParameterMissing, "no torsion parameters for atom classes (%d,%d,%d,%d)", class1, class2, class3, class4)
	}
	out := BondTorsion{Terms: make([]TorsionTerm, len(bt.Terms))}
	copy(out.Terms, bt.Terms)
	return out, nil
}

// AtomClassInfo returns a copy of the atom class record, without the
// realize-built pair tables.
func (F *ForceField) AtomClassInfo(id int) (AtomClass, error) {
	if !F.isValidAtomClass(id) {
		return AtomClass{}, errorf(InvalidArgument, "atom class %d is undefined", id)
	}
	c := *F.atomClasses[id]
	c.VdwDij = nil
	c.VdwEij = nil
	return c, nil
}

// ChargedAtomTypeInfo returns a copy of the charged atom type record.
func (F *ForceField) ChargedAtomTypeInfo(id int) (ChargedAtomType, error) {
	if !F.isValidChargedAtomType(id) {
		return ChargedAtomType{}, errorf(InvalidArgument, "charged atom type %d is undefined", id)
	}
	return *F.chargedAtomTypes[id], nil
}

// ElementInfo returns a copy of the element record for an atomic
// number.
func (F *ForceField) ElementInfo(atomicNumber int) (Element, error) {
	if !F.isValidElement(atomicNumber) {
		return Element{}, errorf(InvalidArgument, "element %d is not defined", atomicNumber)
	}
	return *F.elements[atomicNumber], nil
}

// getBondStretch retrieves the stretch parameter for a canonicalized
// class pair.
func (F *ForceField) getBondStretch(class1, class2 int) (BondStretch, bool) {
	bs, ok := F.bondStretch[newIntPair(class1, class2, true)]
	return bs, ok
}

func (F *ForceField) getBondBend(class1, class2, class3 int) (BondBend, bool) {
	bb, ok := F.bondBend[newIntTriple(class1, class2, class3, true)]
	return bb, ok
}

func (F *ForceField) getBondTorsion(class1, class2, class3, class4 int) (BondTorsion, bool) {
	bt, ok := F.bondTorsion[newIntQuad(class1, class2, class3, class4, true)]
	return bt, ok
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
