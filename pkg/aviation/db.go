// pkg/aviation/db.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"embed"
	"fmt"
	"strings"

	"github.com/omareltomy/atc-ready/pkg/util"

	"github.com/davecgh/go-spew/spew"
)

//go:embed resources/*.json
var resourcesFS embed.FS

var DB *StaticDatabase

///////////////////////////////////////////////////////////////////////////
// StaticDatabase

type StaticDatabase struct {
	VFR      Catalog `json:"vfr"`
	IFR      Catalog `json:"ifr"`
	Military Catalog `json:"military"`

	Callsigns CallsignTables
}

// CallsignTables holds the raw material for the callsign grammars.
type CallsignTables struct {
	Military      []string       `json:"military"`
	Registrations []Registration `json:"registrations"`
	Airlines      []string       `json:"airlines"`
}

// Registration describes a country's civil aircraft registration
// scheme. For non-numeric schemes each template character selects a
// letter range: 'x' A-Z, 'p' A-P, 'w' A-W and 'k' K-Z. Anything else is
// copied through.
type Registration struct {
	Country  string `json:"country"`
	Prefix   string `json:"prefix"`
	Template string `json:"template,omitempty"`
	Numeric  bool   `json:"numeric,omitempty"`
	Weight   int    `json:"weight"`
}

func init() {
	db, err := parseDatabase(loadResource("aircraft.json"), loadResource("callsigns.json"))
	if err != nil {
		panic(err)
	}
	DB = db
}

func loadResource(name string) []byte {
	b, err := resourcesFS.ReadFile("resources/" + name)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}
	return b
}

func parseDatabase(aircraft, callsigns []byte) (*StaticDatabase, error) {
	db := &StaticDatabase{}
	if err := util.UnmarshalJSON(aircraft, db); err != nil {
		return nil, fmt.Errorf("aircraft.json: %w", err)
	}
	if err := util.UnmarshalJSON(callsigns, &db.Callsigns); err != nil {
		return nil, fmt.Errorf("callsigns.json: %w", err)
	}

	var e util.ErrorLogger
	db.Check(&e)
	if e.HaveErrors() {
		return nil, fmt.Errorf("invalid reference data:\n%s", e.String())
	}
	return db, nil
}

// Catalog returns the catalog for aircraft of the given rules and
// military status.
func (db *StaticDatabase) Catalog(rules FlightRules, military bool) Catalog {
	if military {
		return db.Military
	} else if rules == FlightRulesVFR {
		return db.VFR
	}
	return db.IFR
}

// Check validates the database, logging any problems to e.
func (db *StaticDatabase) Check(e *util.ErrorLogger) {
	defer e.CheckDepth(e.CurrentDepth())

	checkCatalog := func(name string, c Catalog, rules FlightRules) {
		e.Push("Catalog " + name)
		defer e.Pop()

		if len(c) == 0 {
			e.Error(ErrEmptyCatalog)
			return
		}

		seen := make(map[string]bool)
		for _, at := range c {
			e.Push("Aircraft " + at.ICAO)
			if at.Name == "" || at.ICAO == "" {
				e.ErrorString("missing name or ICAO designator")
			}
			if seen[at.ICAO] {
				e.ErrorString("repeated in catalog")
			}
			seen[at.ICAO] = true

			if at.Speed[0] < 35 || at.Speed[0] > at.Speed[1] {
				e.ErrorString("aircraft's speed specification is questionable: %s", spew.Sdump(at.Speed))
			}
			if at.Altitude[0] <= 0 || at.Altitude[0] > at.Altitude[1] {
				e.ErrorString("aircraft's altitude specification is questionable: %s", spew.Sdump(at.Altitude))
			}
			if rules == FlightRulesVFR && at.Altitude[1] > MaxVFRAltitude {
				e.ErrorString("ceiling %d is above the highest VFR altitude", at.Altitude[1])
			}
			e.Pop()
		}
	}

	checkCatalog("vfr", db.VFR, FlightRulesVFR)
	checkCatalog("ifr", db.IFR, FlightRulesIFR)
	// Military traffic is always VFR.
	checkCatalog("military", db.Military, FlightRulesVFR)

	e.Push("Callsigns")
	defer e.Pop()

	if len(db.Callsigns.Military) == 0 {
		e.ErrorString("no military callsigns")
	}
	for _, m := range db.Callsigns.Military {
		if m == "" || strings.ToUpper(m) != m {
			e.ErrorString("%q: military callsign base must be non-empty and upper case", m)
		}
	}
	if len(db.Callsigns.Airlines) == 0 {
		e.ErrorString("no airlines")
	}
	for _, al := range db.Callsigns.Airlines {
		if len(al) != 3 || strings.ToUpper(al) != al {
			e.ErrorString("%q: airline code must be three upper case letters", al)
		}
	}

	if len(db.Callsigns.Registrations) == 0 {
		e.ErrorString("no registrations")
	}
	numeric := 0
	for _, reg := range db.Callsigns.Registrations {
		e.Push("Registration " + reg.Prefix)
		if reg.Weight <= 0 {
			e.ErrorString("weight %d must be positive", reg.Weight)
		}
		if reg.Numeric {
			numeric++
			if reg.Template != "" {
				e.ErrorString("numeric registrations cannot have a template")
			}
		} else {
			if reg.Template == "" {
				e.ErrorString("missing template")
			}
			for _, ch := range reg.Template {
				if _, _, ok := templateRange(ch); !ok && !(ch >= 'A' && ch <= 'Z') && ch != '-' {
					e.ErrorString("%q: %v", ch, ErrUnknownRegistrationCh)
				}
			}
		}
		if strings.ContainsAny(reg.Prefix+reg.Template, "0123456789") {
			e.ErrorString("registration prefix and template must not contain digits")
		}
		e.Pop()
	}
	if numeric != 1 {
		e.ErrorString("expected exactly one numeric registration scheme, found %d", numeric)
	}
}
