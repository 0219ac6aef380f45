package tables

import (
	"testing"

	"github.com/BartekS5/sde2csv/internal/etl"
	"github.com/BartekS5/sde2csv/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvNamesJita(t *testing.T) {
	rows := build(t, buildInvNames, map[string][]string{
		"mapSolarSystems": {`{"_key": 30000142, "name": {"en": "Jita"}, "regionID": 10000002}`},
		"mapPlanets":      {`{"_key": 40009080, "solarSystemID": 30000142, "celestialIndex": 4, "typeID": 11}`},
		"mapMoons":        {`{"_key": 40009081, "solarSystemID": 30000142, "orbitID": 40009080, "orbitIndex": 1}`},
		"mapStars":        {`{"_key": 40009076, "solarSystemID": 30000142}`},
		"mapRegions":      {`{"_key": 10000002, "name": {"en": "The Forge"}}`},
		"factions":        {`{"_key": 500001, "name": {"en": "Caldari State"}}`},
	})

	assert.Equal(t, []string{"30000142", "40009080", "40009081", "40009076", "10000002", "500001"}, column(rows, "itemID"))
	assert.Equal(t, []string{"Jita", "Jita IV", "Jita IV - Moon 1", "Jita - Star", "The Forge", "Caldari State"}, column(rows, "itemName"))
}

func TestInvNamesFallbacks(t *testing.T) {
	rows := build(t, buildInvNames, map[string][]string{
		"mapSolarSystems": {`{"_key": 30000001, "name": {"en": "Tanoo"}}`},
		"mapPlanets": {
			// no solarSystemID: resolved through the orbit
			`{"_key": 40000002, "orbitID": 30000001, "celestialIndex": 1}`,
			// unresolvable system
			`{"_key": 40000003, "orbitID": 99, "celestialIndex": 21}`,
			`{"_key": 40000004, "solarSystemID": 30000001}`,
		},
		"mapMoons": {
			`{"_key": 40000010, "solarSystemID": 30000001, "orbitID": 55, "orbitIndex": 3}`,
			`{"_key": 40000011, "solarSystemID": 31999999, "orbitID": 40000002}`,
		},
		"mapStars": {`{"_key": 40000001}`},
	})

	assert.Equal(t, []string{
		"Tanoo",
		"Tanoo I",
		"Unknown 21",
		"Tanoo ",
		"Tanoo - Moon 3",
		"Unknown I - Moon 1",
		"Unknown - Star",
	}, column(rows, "itemName"))
}

func TestInvNamesMissingSources(t *testing.T) {
	rows := build(t, buildInvNames, map[string][]string{
		"npcCharacters": {`{"_key": 3004029, "name": {"en": "Sister Alitura"}}`},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "Sister Alitura", rows[0]["itemName"])
}

func TestLookupIsBuiltBeforeNames(t *testing.T) {
	quiet(t)
	src := etl.NewJSONLSource(sdeDir(t, map[string][]string{
		"mapSolarSystems": {`{"_key": 1, "name": {"en": "Alpha"}}`},
		"mapPlanets":      {`{"_key": 10, "solarSystemID": 1, "celestialIndex": 5}`},
	}))

	lk, err := BuildLookup(src, "en")
	require.NoError(t, err)

	assert.Equal(t, "Alpha", lk.SystemName(1, true))
	assert.Equal(t, "Unknown", lk.SystemName(2, true))
	assert.Equal(t, "Unknown", lk.SystemName(0, false))
	assert.Equal(t, "Alpha V - Moon 2", lk.MoonName(models.Record{
		"solarSystemID": 1, "orbitID": 10, "orbitIndex": 2,
	}))
}
