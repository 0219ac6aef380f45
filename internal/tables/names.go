package tables

import (
	"fmt"

	"github.com/BartekS5/sde2csv/internal/etl"
	"github.com/BartekS5/sde2csv/pkg/models"
	"github.com/BartekS5/sde2csv/pkg/utils"
)

var invNamesTable = models.Table{
	Name:    "invNames",
	Columns: []string{"itemID", "itemName"},
}

// unknownSystem names celestials whose solar system cannot be resolved.
const unknownSystem = "Unknown"

// planetRef is what moon names need to know about the planet they orbit.
type planetRef struct {
	solarID        int64
	hasSolar       bool
	celestialIndex int64
}

// Lookup holds the solar system names and planet positions used to derive
// celestial names. It is built once per run and only read afterwards.
type Lookup struct {
	systems map[int64]string
	planets map[int64]planetRef
}

// BuildLookup reads solar systems first, then planets, since a planet may
// resolve its system through its orbit.
func BuildLookup(src etl.Source, lang string) (*Lookup, error) {
	lk := &Lookup{
		systems: make(map[int64]string),
		planets: make(map[int64]planetRef),
	}

	err := src.Each("mapSolarSystems", func(rec models.Record) error {
		if id, ok := rec.Int(models.KeyField); ok {
			lk.systems[id] = utils.FormatValue(utils.Localized(rec, "name", lang))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = src.Each("mapPlanets", func(rec models.Record) error {
		if id, ok := rec.Int(models.KeyField); ok {
			solarID, hasSolar := lk.planetSystem(rec)
			lk.planets[id] = planetRef{
				solarID:        solarID,
				hasSolar:       hasSolar,
				celestialIndex: rec.IntOr("celestialIndex", 0),
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lk, nil
}

// planetSystem resolves the solar system of a planet. Without an explicit
// solarSystemID the orbit target is taken when it is a known solar system id.
// That check only tests key membership, so overlapping ids across entity
// types would be misattributed.
func (lk *Lookup) planetSystem(rec models.Record) (int64, bool) {
	if id, ok := rec.Int("solarSystemID"); ok && id != 0 {
		return id, true
	}
	if orbit, ok := rec.Int("orbitID"); ok && orbit != 0 {
		if _, known := lk.systems[orbit]; known {
			return orbit, true
		}
	}
	return 0, false
}

// SystemName returns the name of a solar system, or "Unknown".
func (lk *Lookup) SystemName(id int64, ok bool) string {
	if !ok {
		return unknownSystem
	}
	if name, found := lk.systems[id]; found {
		return name
	}
	return unknownSystem
}

// PlanetName renders "<system> <numeral>".
func (lk *Lookup) PlanetName(rec models.Record) string {
	solarID, ok := lk.planetSystem(rec)
	return fmt.Sprintf("%s %s", lk.SystemName(solarID, ok), utils.Roman(rec.IntOr("celestialIndex", 0)))
}

// MoonName renders "<system> <planet numeral> - Moon <n>", dropping the
// numeral when the orbited planet is unknown.
func (lk *Lookup) MoonName(rec models.Record) string {
	solarID, ok := rec.Int("solarSystemID")
	system := lk.SystemName(solarID, ok)

	orbitIndex := "1"
	if rec.Has("orbitIndex") {
		orbitIndex = utils.FormatValue(rec.Get("orbitIndex"))
	}

	if orbit, ok := rec.Int("orbitID"); ok {
		if planet, found := lk.planets[orbit]; found {
			return fmt.Sprintf("%s %s - Moon %s", system, utils.Roman(planet.celestialIndex), orbitIndex)
		}
	}
	return fmt.Sprintf("%s - Moon %s", system, orbitIndex)
}

// StarName renders "<system> - Star".
func (lk *Lookup) StarName(rec models.Record) string {
	solarID, ok := rec.Int("solarSystemID")
	return lk.SystemName(solarID, ok) + " - Star"
}

// localizedNameSources contribute their own localized name verbatim, in this
// order, after the celestial names.
var localizedNameSources = []string{
	"mapRegions",
	"mapConstellations",
	"npcCorporations",
	"factions",
	"npcCharacters",
}

type nameSource struct {
	source string
	name   func(models.Record) interface{}
}

func buildInvNames(src etl.Source, lang string) ([]models.Row, error) {
	lk, err := BuildLookup(src, lang)
	if err != nil {
		return nil, err
	}

	var rows []models.Row
	emit := func(source string, name func(models.Record) interface{}) error {
		return src.Each(source, func(rec models.Record) error {
			rows = append(rows, models.Row{"itemID": rec.Key(), "itemName": name(rec)})
			return nil
		})
	}
	localized := func(rec models.Record) interface{} { return utils.Localized(rec, "name", lang) }

	steps := []nameSource{
		{"mapSolarSystems", localized},
		{"mapPlanets", func(rec models.Record) interface{} { return lk.PlanetName(rec) }},
		{"mapMoons", func(rec models.Record) interface{} { return lk.MoonName(rec) }},
		{"mapStars", func(rec models.Record) interface{} { return lk.StarName(rec) }},
	}
	for _, source := range localizedNameSources {
		steps = append(steps, nameSource{source, localized})
	}

	for _, s := range steps {
		if err := emit(s.source, s.name); err != nil {
			return nil, err
		}
	}
	return rows, nil
}
