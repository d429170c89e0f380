/*
 * cluster.go, part of gomm.
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
	"fmt"
	"sort"

	"github.com/rmera/gomm/spatial"
	"gonum.org/v1/gonum/mat"
)

// AtomPlacement is an atom id plus its station in some cluster or body
// frame.
type AtomPlacement struct {
	AtomId  int
	Station spatial.Vec
}

// ClusterPlacement is a cluster id plus the transform from the placing
// frame to the cluster's frame.
type ClusterPlacement struct {
	ClusterId int
	Placement spatial.Transform
}

// Cluster is a named rigid grouping of atoms and child clusters, each
// with a placement in the cluster's own frame. Clusters reference one
// another by id into the force field's arena; parent back-references
// avoid ownership cycles. Cluster 0 is reserved for free atoms and
// clusters.
type Cluster struct {
	id   int
	name string

	directAtoms    []AtomPlacement    //sorted by atom id
	directClusters []ClusterPlacement //sorted by cluster id

	//allAtoms is kept up to date as atoms and clusters are added: it
	//holds every transitively contained atom, with its station
	//expressed in this cluster's frame, sorted by atom id.
	allAtoms []AtomPlacement

	//immediate parents, if any. The body is not a parent cluster; it
	//is tracked separately below.
	parents []ClusterPlacement

	bodyId     int
	placementB spatial.Transform //cluster frame fixed in body bodyId
}

func (c *Cluster) isValid() bool          { return c != nil && c.id >= 0 }
func (c *Cluster) isAttachedToBody() bool { return c.bodyId >= 0 }
func (c *Cluster) isTopLevel() bool       { return len(c.parents) == 0 }

// Name returns the cluster's name.
func (c *Cluster) Name() string { return c.name }

func (c *Cluster) containsAtom(atomId int) bool {
	i := sort.Search(len(c.allAtoms), func(i int) bool { return c.allAtoms[i].AtomId >= atomId })
	return i < len(c.allAtoms) && c.allAtoms[i].AtomId == atomId
}

// insertAtomPlacement inserts ap in the id-sorted list, reporting
// false if the atom was already there.
func insertAtomPlacement(list []AtomPlacement, ap AtomPlacement) ([]AtomPlacement, bool) {
	i := sort.Search(len(list), func(i int) bool { return list[i].AtomId >= ap.AtomId })
	if i < len(list) && list[i].AtomId == ap.AtomId {
		return list, false
	}
	list = append(list, AtomPlacement{})
	copy(list[i+1:], list[i:])
	list[i] = ap
	return list, true
}

func insertClusterPlacement(list []ClusterPlacement, cp ClusterPlacement) ([]ClusterPlacement, bool) {
	i := sort.Search(len(list), func(i int) bool { return list[i].ClusterId >= cp.ClusterId })
	if i < len(list) && list[i].ClusterId == cp.ClusterId {
		return list, false
	}
	list = append(list, ClusterPlacement{})
	copy(list[i+1:], list[i:])
	list[i] = cp
	return list, true
}

// containsCluster walks the child tree looking for the given id.
func (F *ForceField) containsCluster(c *Cluster, clusterId int) bool {
	for _, cp := range c.directClusters {
		if cp.ClusterId == clusterId {
			return true
		}
		if F.containsCluster(F.clusters[cp.ClusterId], clusterId) {
			return true
		}
	}
	return false
}

// attachToBody marks the cluster as fixed on a body and stamps every
// directly contained atom and child cluster with its composed
// placement. Callers validate before calling; by the placement rules an
// already-attached atom or subcluster cannot be reached from an
// unattached cluster, so finding one here means the library itself is
// broken and we panic.
func (F *ForceField) attachToBody(c *Cluster, body int, xBR spatial.Transform) {
	if c.isAttachedToBody() {
		panic("gomm: attachToBody called on an attached cluster")
	}
	c.bodyId = body
	c.placementB = xBR
	for _, ap := range c.directAtoms {
		a := F.atoms[ap.AtomId]
		if a.isAttachedToBody() {
			panic("gomm: atom in an unattached cluster was already on a body")
		}
		a.attachToBody(body, xBR.Apply(ap.Station))
	}
	for _, cp := range c.directClusters {
		F.attachToBody(F.clusters[cp.ClusterId], body, xBR.Compose(cp.Placement))
	}
}

// placeAtom places an atom at a station in the cluster's frame. The
// atom must not already be attached to a body nor contained in the
// cluster; the cluster must be top level.
func (F *ForceField) placeAtom(c *Cluster, atomId int, station spatial.Vec) error {
	if !c.isTopLevel() {
		return errorf(StructureConflict, "cluster %d('%s') is not top level; placement into child clusters is not supported", c.id, c.name)
	}
	a := F.atoms[atomId]
	if a.isAttachedToBody() {
		return errorf(StructureConflict, "atom %d is already attached to body %d", atomId, a.bodyId)
	}
	if c.containsAtom(atomId) {
		return errorf(StructureConflict, "cluster %d('%s') already contains atom %d", c.id, c.name, atomId)
	}
	c.directAtoms, _ = insertAtomPlacement(c.directAtoms, AtomPlacement{atomId, station})
	c.allAtoms, _ = insertAtomPlacement(c.allAtoms, AtomPlacement{atomId, station})
	if c.isAttachedToBody() {
		a.attachToBody(c.bodyId, c.placementB.Apply(station))
	}
	F.invalidateTopologicalCache()
	return nil
}

// placeCluster places child in parent with the given transform from
// the parent frame to the child frame. The child must not be
// body-attached nor already contained; its atoms must be disjoint from
// the parent's; the parent must be top level. On success, all the
// child's atoms join the parent's allAtoms (transformed), the parent
// gains a child reference and the child a parent back-reference; if
// the parent is on a body the whole child subtree is attached too.
func (F *ForceField) placeCluster(parent, child *Cluster, placement spatial.Transform) error {
	if !parent.isTopLevel() {
		return errorf(StructureConflict, "cluster %d('%s') is not top level; placement into child clusters is not supported", parent.id, parent.name)
	}
	if child.isAttachedToBody() {
		return errorf(StructureConflict, "cluster %d('%s') is already attached to body %d", child.id, child.name, child.bodyId)
	}
	if parent.id == child.id || F.containsCluster(child, parent.id) || F.containsCluster(parent, child.id) {
		return errorf(StructureConflict, "placing cluster %d in cluster %d would create a containment cycle", child.id, parent.id)
	}
	//check disjointness before mutating anything
	for _, ap := range child.allAtoms {
		if parent.containsAtom(ap.AtomId) {
			return errorf(StructureConflict, "cluster %d('%s') already contains atom %d, also present in cluster %d('%s')",
				parent.id, parent.name, ap.AtomId, child.id, child.name)
		}
	}
	for _, ap := range child.allAtoms {
		parent.allAtoms, _ = insertAtomPlacement(parent.allAtoms,
			AtomPlacement{ap.AtomId, placement.Apply(ap.Station)})
	}
	parent.directClusters, _ = insertClusterPlacement(parent.directClusters, ClusterPlacement{child.id, placement})
	child.parents, _ = insertClusterPlacement(child.parents, ClusterPlacement{parent.id, placement})
	if parent.isAttachedToBody() {
		F.attachToBody(child, parent.bodyId, parent.placementB.Compose(placement))
	}
	F.invalidateTopologicalCache()
	return nil
}

// Body is a reference to the top-level cluster holding everything
// rigidly attached to one of the multibody system's bodies, plus a
// flat atom index built at realize time for fast per-step processing.
type Body struct {
	clusterId int

	//expansion of all atom placements, stations in the body frame,
	//sorted by atom id. Rebuilt by realize.
	allAtoms []AtomPlacement
}

func (b *Body) isValid() bool { return b != nil && b.clusterId >= 0 }

func (b *Body) invalidateTopologicalCache() { b.allAtoms = nil }

func (F *ForceField) realizeBody(b *Body) {
	c := F.clusters[b.clusterId]
	b.allAtoms = make([]AtomPlacement, len(c.allAtoms))
	copy(b.allAtoms, c.allAtoms)
}

// ensureBodyEntryExists creates the base cluster for a body the first
// time the body id shows up.
func (F *ForceField) ensureBodyEntryExists(body int) {
	for body >= len(F.bodies) {
		F.bodies = append(F.bodies, nil)
	}
	if F.bodies[body].isValid() {
		return
	}
	cid := F.addCluster(fmt.Sprintf("Body %d", body))
	F.clusters[cid].bodyId = body
	F.clusters[cid].placementB = spatial.IdentityTransform()
	F.bodies[body] = &Body{clusterId: cid}
}

// ClusterMassProperties computes the total mass, center of mass and
// inertia tensor (about the origin) of everything transitively
// contained in the cluster, expressed in the frame given by tr. The
// inertia is returned as a symmetric gonum matrix so callers can feed
// it straight into an eigendecomposition.
func (F *ForceField) ClusterMassProperties(clusterId int, tr spatial.Transform) (mass float64, com spatial.Vec, inertia *mat.SymDense, err error) {
	if !F.isValidCluster(clusterId) {
		return 0, spatial.Vec{}, nil, errorf(InvalidArgument, "cluster %d is not valid", clusterId)
	}
	c := F.clusters[clusterId]
	inertia = mat.NewSymDense(3, nil)
	for _, ap := range c.allAtoms {
		m := F.massOf(ap.AtomId)
		p := tr.Apply(ap.Station)
		mass += m
		com = com.Add(p.Scale(m))
		//I += m*(|p|^2 E - p p^T)
		pp := p.NormSq()
		inertia.SetSym(0, 0, inertia.At(0, 0)+m*(pp-p.X*p.X))
		inertia.SetSym(1, 1, inertia.At(1, 1)+m*(pp-p.Y*p.Y))
		inertia.SetSym(2, 2, inertia.At(2, 2)+m*(pp-p.Z*p.Z))
		inertia.SetSym(0, 1, inertia.At(0, 1)-m*p.X*p.Y)
		inertia.SetSym(0, 2, inertia.At(0, 2)-m*p.X*p.Z)
		inertia.SetSym(1, 2, inertia.At(1, 2)-m*p.Y*p.Z)
	}
	if mass > 0 {
		com = com.Scale(1 / mass)
	}
	return mass, com, inertia, nil
}

// PrincipalMoments returns the ascending principal moments of inertia
// of a cluster about the origin of the frame given by tr.
func (F *ForceField) PrincipalMoments(clusterId int, tr spatial.Transform) ([]float64, error) {
	_, _, inertia, err := F.ClusterMassProperties(clusterId, tr)
	if err != nil {
		return nil, errDecorate(err, "PrincipalMoments")
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(inertia, false); !ok {
		return nil, errorf(InvalidArgument, "inertia eigendecomposition failed for cluster %d", clusterId)
	}
	return eig.Values(nil), nil
}

func (F *ForceField) massOf(atomId int) float64 {
	cl := F.atomClasses[F.atomClassOf(atomId)]
	return F.elements[cl.Element].Mass
}
