/*
 * ffyaml.go, part of gomm.
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

//Package ffyaml loads and saves whole force-field parameter libraries
//as YAML: elements, atom classes, charged atom types, bonded
//parameters and scale factors, in the same user units the Define*
//calls take (kcal/mol, degrees). It only feeds the declarative API;
//nothing here touches the realize pipeline.
package ffyaml

import (
	"fmt"
	"os"

	mm "github.com/rmera/gomm"
	"gopkg.in/yaml.v3"
)

// Library is a full parameter set, in user units.
type Library struct {
	Elements         []ElementDef         `yaml:"elements,omitempty"`
	AtomClasses      []AtomClassDef       `yaml:"atom_classes"`
	ChargedAtomTypes []ChargedAtomTypeDef `yaml:"charged_atom_types"`
	BondStretches    []BondStretchDef     `yaml:"bond_stretches,omitempty"`
	BondBends        []BondBendDef        `yaml:"bond_bends,omitempty"`
	BondTorsions     []BondTorsionDef     `yaml:"bond_torsions,omitempty"`
	Scales           *ScalesDef           `yaml:"scales,omitempty"`
}

type ElementDef struct {
	AtomicNumber int     `yaml:"atomic_number"`
	Symbol       string  `yaml:"symbol"`
	Name         string  `yaml:"name"`
	Mass         float64 `yaml:"mass"`
}

type AtomClassDef struct {
	Id           int     `yaml:"id"`
	Name         string  `yaml:"name"`
	Element      int     `yaml:"element"`
	Valence      int     `yaml:"valence"`
	VdwRadius    float64 `yaml:"vdw_radius"`
	VdwWellDepth float64 `yaml:"vdw_well_depth"` //kcal/mol
}

type ChargedAtomTypeDef struct {
	Id            int     `yaml:"id"`
	Name          string  `yaml:"name"`
	AtomClass     int     `yaml:"atom_class"`
	PartialCharge float64 `yaml:"partial_charge"`
}

type BondStretchDef struct {
	Classes   [2]int  `yaml:"classes,flow"`
	Stiffness float64 `yaml:"stiffness"` //kcal/mol/A^2
	Length    float64 `yaml:"length"`    //A
}

type BondBendDef struct {
	Classes   [3]int  `yaml:"classes,flow"`
	Stiffness float64 `yaml:"stiffness"` //kcal/mol/rad^2
	Angle     float64 `yaml:"angle"`     //degrees
}

type BondTorsionDef struct {
	Classes [4]int           `yaml:"classes,flow"`
	Terms   []TorsionTermDef `yaml:"terms"`
}

type TorsionTermDef struct {
	Periodicity int     `yaml:"periodicity"`
	Amplitude   float64 `yaml:"amplitude"` //kcal/mol
	Phase       float64 `yaml:"phase"`     //degrees
}

// ScalesDef holds the 1-k nonbonded scale factors. Absent fields keep
// the force field's defaults.
type ScalesDef struct {
	Vdw12     *float64 `yaml:"vdw12,omitempty"`
	Vdw13     *float64 `yaml:"vdw13,omitempty"`
	Vdw14     *float64 `yaml:"vdw14,omitempty"`
	Vdw15     *float64 `yaml:"vdw15,omitempty"`
	Coulomb12 *float64 `yaml:"coulomb12,omitempty"`
	Coulomb13 *float64 `yaml:"coulomb13,omitempty"`
	Coulomb14 *float64 `yaml:"coulomb14,omitempty"`
	Coulomb15 *float64 `yaml:"coulomb15,omitempty"`
}

// Load reads a Library from a YAML file.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lib := new(Library)
	if err := yaml.Unmarshal(data, lib); err != nil {
		return nil, err
	}
	return lib, nil
}

// Save writes a Library to a YAML file.
func Save(path string, lib *Library) error {
	data, err := yaml.Marshal(lib)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply feeds the whole library into F through its declarative API,
// in dependency order. The first definition error aborts and is
// returned with enough context to find the offending entry.
func (lib *Library) Apply(F *mm.ForceField) error {
	for _, e := range lib.Elements {
		if err := F.DefineElement(e.AtomicNumber, e.Symbol, e.Name, e.Mass); err != nil {
			return fmt.Errorf("element %s: %w", e.Symbol, err)
		}
	}
	for _, c := range lib.AtomClasses {
		if err := F.DefineAtomClass(c.Id, c.Name, c.Element, c.Valence, c.VdwRadius, c.VdwWellDepth); err != nil {
			return fmt.Errorf("atom class %d(%s): %w", c.Id, c.Name, err)
		}
	}
	for _, t := range lib.ChargedAtomTypes {
		if err := F.DefineChargedAtomType(t.Id, t.Name, t.AtomClass, t.PartialCharge); err != nil {
			return fmt.Errorf("charged atom type %d(%s): %w", t.Id, t.Name, err)
		}
	}
	for _, s := range lib.BondStretches {
		if err := F.DefineBondStretch(s.Classes[0], s.Classes[1], s.Stiffness, s.Length); err != nil {
			return fmt.Errorf("stretch %v: %w", s.Classes, err)
		}
	}
	for _, b := range lib.BondBends {
		if err := F.DefineBondBend(b.Classes[0], b.Classes[1], b.Classes[2], b.Stiffness, b.Angle); err != nil {
			return fmt.Errorf("bend %v: %w", b.Classes, err)
		}
	}
	for _, t := range lib.BondTorsions {
		terms := make([]mm.TorsionSpec, len(t.Terms))
		for i, term := range t.Terms {
			terms[i] = mm.TorsionSpec{
				Periodicity:     term.Periodicity,
				AmplitudeInKcal: term.Amplitude,
				PhaseInDegrees:  term.Phase,
			}
		}
		if err := F.DefineBondTorsion(t.Classes[0], t.Classes[1], t.Classes[2], t.Classes[3], terms...); err != nil {
			return fmt.Errorf("torsion %v: %w", t.Classes, err)
		}
	}
	if lib.Scales != nil {
		if err := applyScales(F, lib.Scales); err != nil {
			return err
		}
	}
	return nil
}

func applyScales(F *mm.ForceField, s *ScalesDef) error {
	set := []struct {
		fac *float64
		fn  func(float64) error
	}{
		{s.Vdw12, F.SetVdw12ScaleFactor},
		{s.Vdw13, F.SetVdw13ScaleFactor},
		{s.Vdw14, F.SetVdw14ScaleFactor},
		{s.Vdw15, F.SetVdw15ScaleFactor},
		{s.Coulomb12, F.SetCoulomb12ScaleFactor},
		{s.Coulomb13, F.SetCoulomb13ScaleFactor},
		{s.Coulomb14, F.SetCoulomb14ScaleFactor},
		{s.Coulomb15, F.SetCoulomb15ScaleFactor},
	}
	for _, e := range set {
		if e.fac == nil {
			continue
		}
		if err := e.fn(*e.fac); err != nil {
			return err
		}
	}
	return nil
}
