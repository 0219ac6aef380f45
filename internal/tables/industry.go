package tables

import (
	"github.com/BartekS5/sde2csv/internal/etl"
	"github.com/BartekS5/sde2csv/pkg/models"
)

var (
	industryActivityTable = models.Table{
		Name:    "industryActivity",
		Columns: []string{"typeID", "activityID", "time"},
	}
	industryActivityMaterialsTable = models.Table{
		Name:    "industryActivityMaterials",
		Columns: []string{"typeID", "activityID", "materialTypeID", "quantity"},
	}
	industryActivityProductsTable = models.Table{
		Name:    "industryActivityProducts",
		Columns: []string{"typeID", "activityID", "productTypeID", "quantity"},
	}
)

type activityKind struct {
	name string
	id   int
}

// activityKinds maps blueprint activity names to legacy activity ids, in id
// order. Activities not listed here are dropped.
var activityKinds = []activityKind{
	{"manufacturing", 1},
	{"research_time", 3},
	{"research_material", 4},
	{"copying", 5},
	{"invention", 8},
	{"reaction", 11},
}

// blueprintID prefers blueprintTypeID and falls back to the record key.
// The legacy converter wrote an empty typeID instead; keep the fallback.
func blueprintID(rec models.Record) interface{} {
	if rec.Has("blueprintTypeID") {
		return rec.Get("blueprintTypeID")
	}
	return rec.Key()
}

// eachActivity calls fn for every known activity of every blueprint.
func eachActivity(src etl.Source, fn func(typeID interface{}, activityID int, activity models.Record)) error {
	return src.Each("blueprints", func(rec models.Record) error {
		activities := rec.Record("activities")
		if activities == nil {
			return nil
		}
		typeID := blueprintID(rec)
		for _, kind := range activityKinds {
			if activity := activities.Record(kind.name); activity != nil {
				fn(typeID, kind.id, activity)
			}
		}
		return nil
	})
}

func buildIndustryActivity(src etl.Source, _ string) ([]models.Row, error) {
	var rows []models.Row
	err := eachActivity(src, func(typeID interface{}, activityID int, activity models.Record) {
		if _, ok := activity["time"]; !ok {
			return
		}
		rows = append(rows, models.Row{
			"typeID":     typeID,
			"activityID": activityID,
			"time":       activity.Get("time"),
		})
	})
	return rows, err
}

// fanOut emits one row per entry of the activity list field, keyed by the
// entry's type id under idColumn.
func fanOut(field, idColumn string) buildFunc {
	return func(src etl.Source, _ string) ([]models.Row, error) {
		var rows []models.Row
		err := eachActivity(src, func(typeID interface{}, activityID int, activity models.Record) {
			for _, entry := range activity.Records(field) {
				rows = append(rows, models.Row{
					"typeID":     typeID,
					"activityID": activityID,
					idColumn:     entry.Get("typeID"),
					"quantity":   entry.Get("quantity"),
				})
			}
		})
		return rows, err
	}
}

var (
	buildIndustryActivityMaterials = fanOut("materials", "materialTypeID")
	buildIndustryActivityProducts  = fanOut("products", "productTypeID")
)
