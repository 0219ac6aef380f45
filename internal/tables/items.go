package tables

import (
	"github.com/BartekS5/sde2csv/internal/etl"
	"github.com/BartekS5/sde2csv/pkg/models"
)

var invItemsTable = models.Table{
	Name:    "invItems",
	Columns: []string{"itemID", "typeID", "ownerID", "locationID", "flagID", "quantity"},
}

const (
	solarSystemTypeID = 5
	// EVE System owns every celestial.
	systemOwnerID = 1
	// quantity -1 marks an item that is not a stack.
	singletonQuantity = -1
)

// orZero reads field, defaulting to 0 when it is absent.
func orZero(field string) etl.Field {
	return func(rec models.Record) interface{} {
		if v := rec.Get(field); v != nil {
			return v
		}
		return 0
	}
}

func itemTransformer(typeID, ownerID, locationID etl.Field) *etl.Transformer {
	return etl.NewTransformer(invItemsTable, map[string]etl.Field{
		"itemID":     etl.Key(),
		"typeID":     typeID,
		"ownerID":    ownerID,
		"locationID": locationID,
		"flagID":     etl.Const(0),
		"quantity":   etl.Const(singletonQuantity),
	})
}

func buildInvItems(src etl.Source, _ string) ([]models.Row, error) {
	celestial := itemTransformer(orZero("typeID"), etl.Const(systemOwnerID), orZero("solarSystemID"))
	steps := []struct {
		source string
		t      *etl.Transformer
	}{
		{"mapSolarSystems", itemTransformer(etl.Const(solarSystemTypeID), etl.Const(systemOwnerID), orZero("regionID"))},
		{"mapPlanets", celestial},
		{"mapMoons", celestial},
		{"npcStations", itemTransformer(orZero("typeID"), orZero("ownerID"), orZero("solarSystemID"))},
	}

	var rows []models.Row
	for _, s := range steps {
		part, err := project(src, s.source, s.t, nil)
		if err != nil {
			return nil, err
		}
		rows = append(rows, part...)
	}
	return rows, nil
}
