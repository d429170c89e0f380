/*
 * forcefield.go, part of gomm.
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
	"github.com/rmera/gomm/spatial"
)

// ForceField holds a complete classical force field plus the molecule
// it is applied to: parameter catalogs, atoms and bonds, the cluster
// arena and the bodies of the surrounding multibody system. It is
// built declaratively during a construction phase, compiled once with
// RealizeTopology, and then queried every dynamics step through
// AddInForcesAndEnergy.
//
// The type is not safe for concurrent use; after a successful realize
// the dynamics path only reads, so independent instances can be
// evaluated in parallel.
type ForceField struct {
	//molecule
	atoms    []*Atom
	bonds    []*Bond
	clusters []*Cluster
	//partitioning of atoms onto the matter subsystem's bodies; the
	//indices are body ids, and only bodies that own atoms have valid
	//entries.
	bodies []*Body

	//force field proper. Sparse, indexed by caller-chosen ids.
	elements         []*Element
	atomClasses      []*AtomClass
	chargedAtomTypes []*ChargedAtomType

	//these relate atom classes, not charged atom types
	bondStretch map[intPair]BondStretch
	bondBend    map[intTriple]BondBend
	bondTorsion map[intQuad]BondTorsion

	mixingRule VdwMixingRule

	//scale factors for nonbonded interactions between atoms k bonds
	//apart, when the path crosses a body boundary
	vdwScale12, coulombScale12 float64 //default 0,0
	vdwScale13, coulombScale13 float64 //default 0,0
	vdwScale14, coulombScale14 float64 //default 1,1
	vdwScale15, coulombScale15 float64 //default 1,1

	topologicalCacheValid bool
}

// New returns a ForceField ready for construction: default elements
// loaded, Waldman-Hagler mixing, default scale factors (0,0,1,1) and
// the reserved cluster 0 for free atoms and clusters.
func New() *ForceField {
	F := &ForceField{
		bondStretch: make(map[intPair]BondStretch),
		bondBend:    make(map[intTriple]BondBend),
		bondTorsion: make(map[intQuad]BondTorsion),
		mixingRule:  WaldmanHagler,
		vdwScale14:  1, coulombScale14: 1,
		vdwScale15: 1, coulombScale15: 1,
	}
	F.loadDefaultElements()
	gid := F.addCluster("free atoms and clusters")
	if gid != 0 {
		panic("cant happen: reserved cluster got a nonzero id")
	}
	return F
}

func (F *ForceField) isValidElement(atomicNumber int) bool {
	return 1 <= atomicNumber && atomicNumber < len(F.elements) && F.elements[atomicNumber].isValid()
}

func (F *ForceField) isValidAtom(id int) bool {
	return 0 <= id && id < len(F.atoms) && F.atoms[id].isValid()
}

func (F *ForceField) isValidBond(id int) bool {
	return 0 <= id && id < len(F.bonds) && F.bonds[id] != nil
}

func (F *ForceField) isValidCluster(id int) bool {
	return 0 <= id && id < len(F.clusters) && F.clusters[id].isValid()
}

func (F *ForceField) isValidBody(id int) bool {
	return 0 <= id && id < len(F.bodies) && F.bodies[id].isValid()
}

func (F *ForceField) isValidAtomClass(id int) bool {
	return 0 <= id && id < len(F.atomClasses) && F.atomClasses[id].isValid()
}

func (F *ForceField) isValidChargedAtomType(id int) bool {
	return 0 <= id && id < len(F.chargedAtomTypes) && F.chargedAtomTypes[id].isValid()
}

func (F *ForceField) addCluster(name string) int {
	id := len(F.clusters)
	F.clusters = append(F.clusters, &Cluster{id: id, name: name, bodyId: -1})
	return id
}

// invalidateTopologicalCache is the cheap mutation hook: it only drops
// the valid flag, and the full cache teardown happens at the next
// realize.
func (F *ForceField) invalidateTopologicalCache() {
	F.topologicalCacheValid = false
}

// SetVdwMixingRule selects the combining rule used to build the
// per-pair vdW tables at realize time.
func (F *ForceField) SetVdwMixingRule(rule VdwMixingRule) error {
	switch rule {
	case WaldmanHagler, LorentzBerthelot, Jorgensen, HalgrenHHG, Kong:
	default:
		return errorf(InvalidArgument, "unknown vdW mixing rule %d", rule)
	}
	F.mixingRule = rule
	F.invalidateTopologicalCache()
	return nil
}

// VdwMixingRule returns the combining rule in use.
func (F *ForceField) VdwMixingRule() VdwMixingRule { return F.mixingRule }

func checkScale(fac float64) error {
	if !isFinite(fac) || fac < 0 || fac > 1 {
		return errorf(InvalidArgument, "scale factor %g: must be between 0 and 1, inclusive", fac)
	}
	return nil
}

// SetVdw12ScaleFactor sets the van der Waals multiplier for atom pairs
// one bond apart (across a body boundary). The remaining setters do
// the same for the other separations and for Coulomb.
func (F *ForceField) SetVdw12ScaleFactor(fac float64) error {
	if err := checkScale(fac); err != nil {
		return errDecorate(err, "SetVdw12ScaleFactor")
	}
	F.vdwScale12 = fac
	return nil
}

func (F *ForceField) SetVdw13ScaleFactor(fac float64) error {
	if err := checkScale(fac); err != nil {
		return errDecorate(err, "SetVdw13ScaleFactor")
	}
	F.vdwScale13 = fac
	return nil
}

func (F *ForceField) SetVdw14ScaleFactor(fac float64) error {
	if err := checkScale(fac); err != nil {
		return errDecorate(err, "SetVdw14ScaleFactor")
	}
	F.vdwScale14 = fac
	return nil
}

func (F *ForceField) SetVdw15ScaleFactor(fac float64) error {
	if err := checkScale(fac); err != nil {
		return errDecorate(err, "SetVdw15ScaleFactor")
	}
	F.vdwScale15 = fac
	return nil
}

func (F *ForceField) SetCoulomb12ScaleFactor(fac float64) error {
	if err := checkScale(fac); err != nil {
		return errDecorate(err, "SetCoulomb12ScaleFactor")
	}
	F.coulombScale12 = fac
	return nil
}

func (F *ForceField) SetCoulomb13ScaleFactor(fac float64) error {
	if err := checkScale(fac); err != nil {
		return errDecorate(err, "SetCoulomb13ScaleFactor")
	}
	F.coulombScale13 = fac
	return nil
}

func (F *ForceField) SetCoulomb14ScaleFactor(fac float64) error {
	if err := checkScale(fac); err != nil {
		return errDecorate(err, "SetCoulomb14ScaleFactor")
	}
	F.coulombScale14 = fac
	return nil
}

func (F *ForceField) SetCoulomb15ScaleFactor(fac float64) error {
	if err := checkScale(fac); err != nil {
		return errDecorate(err, "SetCoulomb15ScaleFactor")
	}
	F.coulombScale15 = fac
	return nil
}

// CreateCluster creates a new, empty, unattached cluster and returns
// its id.
func (F *ForceField) CreateCluster(name string) int {
	return F.addCluster(name)
}

// PlaceAtomInCluster places an existing atom at a station in the
// cluster's frame.
func (F *ForceField) PlaceAtomInCluster(atomId, clusterId int, station spatial.Vec) error {
	if !F.isValidAtom(atomId) {
		return errorf(InvalidArgument, "atom %d is not valid", atomId)
	}
	if !F.isValidCluster(clusterId) {
		return errorf(InvalidArgument, "cluster %d is not valid", clusterId)
	}
	if err := F.placeAtom(F.clusters[clusterId], atomId, station); err != nil {
		return errDecorate(err, "PlaceAtomInCluster")
	}
	return nil
}

// PlaceClusterInCluster places child in parent, with the transform
// locating the child's frame in the parent frame: it takes child-frame
// coordinates to parent-frame coordinates.
func (F *ForceField) PlaceClusterInCluster(childClusterId, parentClusterId int, placement spatial.Transform) error {
	if !F.isValidCluster(childClusterId) {
		return errorf(InvalidArgument, "cluster %d is not valid", childClusterId)
	}
	if !F.isValidCluster(parentClusterId) {
		return errorf(InvalidArgument, "cluster %d is not valid", parentClusterId)
	}
	if err := F.placeCluster(F.clusters[parentClusterId], F.clusters[childClusterId], placement); err != nil {
		return errDecorate(err, "PlaceClusterInCluster")
	}
	return nil
}

// AttachClusterToBody fixes a cluster on a body of the multibody
// system, placed by the given transform in the body frame. Every atom
// the cluster transitively contains becomes an atom of that body.
func (F *ForceField) AttachClusterToBody(clusterId, bodyId int, placement spatial.Transform) error {
	if !F.isValidCluster(clusterId) {
		return errorf(InvalidArgument, "cluster %d is not valid", clusterId)
	}
	if bodyId < 0 {
		return errorf(InvalidArgument, "body id %d: must be nonnegative", bodyId)
	}
	F.ensureBodyEntryExists(bodyId)
	base := F.clusters[F.bodies[bodyId].clusterId]
	if err := F.placeCluster(base, F.clusters[clusterId], placement); err != nil {
		return errDecorate(err, "AttachClusterToBody")
	}
	return nil
}

// AttachAtomToBody fixes a single atom directly on a body at the given
// station in the body frame.
func (F *ForceField) AttachAtomToBody(atomId, bodyId int, station spatial.Vec) error {
	if !F.isValidAtom(atomId) {
		return errorf(InvalidArgument, "atom %d is not valid", atomId)
	}
	if bodyId < 0 {
		return errorf(InvalidArgument, "body id %d: must be nonnegative", bodyId)
	}
	F.ensureBodyEntryExists(bodyId)
	base := F.clusters[F.bodies[bodyId].clusterId]
	if err := F.placeAtom(base, atomId, station); err != nil {
		return errDecorate(err, "AttachAtomToBody")
	}
	return nil
}

//Queries. These are all cheap and valid at any time; the ones that
//depend on the topological cache say so.

// NAtoms returns the number of atoms added so far.
func (F *ForceField) NAtoms() int { return len(F.atoms) }

// NBonds returns the number of bonds added so far.
func (F *ForceField) NBonds() int { return len(F.bonds) }

// BondAtom returns one of the two atoms of a bond; which must be 0
// (lower id) or 1.
func (F *ForceField) BondAtom(bond, which int) (int, error) {
	if !F.isValidBond(bond) {
		return -1, errorf(InvalidArgument, "bond %d is not valid", bond)
	}
	if which != 0 && which != 1 {
		return -1, errorf(InvalidArgument, "bond end %d: must be 0 or 1", which)
	}
	return F.bonds[bond].atoms[which], nil
}

// chargedAtomTypeOf returns the charged type id of an atom; callers
// validate the atom id.
func (F *ForceField) chargedAtomTypeOf(atomId int) int {
	return F.atoms[atomId].chargedAtomType
}

// atomClassOf returns the atom class id of an atom.
func (F *ForceField) atomClassOf(atomId int) int {
	return F.chargedAtomTypes[F.chargedAtomTypeOf(atomId)].AtomClass
}

// AtomElement returns the atomic number of an atom.
func (F *ForceField) AtomElement(atomId int) (int, error) {
	if !F.isValidAtom(atomId) {
		return -1, errorf(InvalidArgument, "atom %d is not valid", atomId)
	}
	return F.atomClasses[F.atomClassOf(atomId)].Element, nil
}

// AtomMass returns the mass of an atom, in Da.
func (F *ForceField) AtomMass(atomId int) (float64, error) {
	if !F.isValidAtom(atomId) {
		return 0, errorf(InvalidArgument, "atom %d is not valid", atomId)
	}
	return F.massOf(atomId), nil
}

// AtomDefaultColor returns the display color of an atom's element.
func (F *ForceField) AtomDefaultColor(atomId int) (RGB, error) {
	if !F.isValidAtom(atomId) {
		return RGB{}, errorf(InvalidArgument, "atom %d is not valid", atomId)
	}
	return F.elements[F.atomClasses[F.atomClassOf(atomId)].Element].DefaultColor, nil
}

// AtomRadius returns the vdW radius of an atom's class, in A.
func (F *ForceField) AtomRadius(atomId int) (float64, error) {
	if !F.isValidAtom(atomId) {
		return 0, errorf(InvalidArgument, "atom %d is not valid", atomId)
	}
	return F.atomClasses[F.atomClassOf(atomId)].VdwRadius, nil
}

// AtomBody returns the body an atom is attached to. It fails if the
// atom was never attached.
func (F *ForceField) AtomBody(atomId int) (int, error) {
	if !F.isValidAtom(atomId) {
		return -1, errorf(InvalidArgument, "atom %d is not valid", atomId)
	}
	a := F.atoms[atomId]
	if !a.isAttachedToBody() {
		return -1, errorf(InvalidArgument, "atom %d is not attached to any body", atomId)
	}
	return a.bodyId, nil
}

// AtomStationOnBody returns the atom's station in its body's frame.
func (F *ForceField) AtomStationOnBody(atomId int) (spatial.Vec, error) {
	if !F.isValidAtom(atomId) {
		return spatial.Vec{}, errorf(InvalidArgument, "atom %d is not valid", atomId)
	}
	a := F.atoms[atomId]
	if !a.isAttachedToBody() {
		return spatial.Vec{}, errorf(InvalidArgument, "atom %d is not attached to any body", atomId)
	}
	return a.stationB, nil
}

// AtomStationInCluster returns the atom's station in the given
// cluster's frame, if the cluster transitively contains it.
func (F *ForceField) AtomStationInCluster(atomId, clusterId int) (spatial.Vec, error) {
	if !F.isValidAtom(atomId) {
		return spatial.Vec{}, errorf(InvalidArgument, "atom %d is not valid", atomId)
	}
	if !F.isValidCluster(clusterId) {
		return spatial.Vec{}, errorf(InvalidArgument, "cluster %d is not valid", clusterId)
	}
	c := F.clusters[clusterId]
	for _, ap := range c.allAtoms {
		if ap.AtomId == atomId {
			return ap.Station, nil
		}
	}
	return spatial.Vec{}, errorf(InvalidArgument, "cluster %d('%s') does not contain atom %d", clusterId, c.name, atomId)
}

// Bond12 returns a copy of an atom's direct bond list.
func (F *ForceField) Bond12(atomId int) ([]int, error) {
	if !F.isValidAtom(atomId) {
		return nil, errorf(InvalidArgument, "atom %d is not valid", atomId)
	}
	out := make([]int, len(F.atoms[atomId].bond12))
	copy(out, F.atoms[atomId].bond12)
	return out, nil
}
