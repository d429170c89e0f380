/*
 * graph.go, part of gomm.
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

//Package mmgraph exposes the covalent topology of a gomm force field
//as a gonum graph, so the whole graph ecosystem (searches, paths,
//communities) can be thrown at a molecule. Nodes are atom ids, edges
//are bonds.
package mmgraph

import (
	mm "github.com/rmera/gomm"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// Topology is an undirected gonum graph over the atoms and bonds of a
// force field. It is a snapshot: bonds added after construction are
// not seen.
type Topology struct {
	*simple.UndirectedGraph
}

// FromForceField builds the bond graph of F. Every atom becomes a
// node even if it has no bonds.
func FromForceField(F *mm.ForceField) (*Topology, error) {
	g := simple.NewUndirectedGraph()
	for i := 0; i < F.NAtoms(); i++ {
		g.AddNode(simple.Node(i))
	}
	for b := 0; b < F.NBonds(); b++ {
		a1, err := F.BondAtom(b, 0)
		if err != nil {
			return nil, err
		}
		a2, err := F.BondAtom(b, 1)
		if err != nil {
			return nil, err
		}
		g.SetEdge(simple.Edge{F: simple.Node(a1), T: simple.Node(a2)})
	}
	return &Topology{UndirectedGraph: g}, nil
}

// BondDistance returns the number of bonds in the shortest path
// between two atoms, or -1 if they are in different molecules. Two
// atoms k bonds apart are "1-(k+1) bonded" in force field speak.
func (T *Topology) BondDistance(atom1, atom2 int) int {
	if atom1 == atom2 {
		return 0
	}
	found := -1
	bf := traverse.BreadthFirst{}
	bf.Walk(T, simple.Node(atom1), func(n graph.Node, d int) bool {
		if n.ID() == int64(atom2) {
			found = d
			return true
		}
		return false
	})
	return found
}

// Fragment returns the ids of every atom connected to the given one
// through any chain of bonds, including itself.
func (T *Topology) Fragment(atom int) []int {
	var out []int
	bf := traverse.BreadthFirst{
		Visit: func(n graph.Node) { out = append(out, int(n.ID())) },
	}
	bf.Walk(T, simple.Node(atom), nil)
	return out
}
