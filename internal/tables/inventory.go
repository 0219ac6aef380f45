package tables

import (
	"github.com/BartekS5/sde2csv/internal/etl"
	"github.com/BartekS5/sde2csv/pkg/models"
)

var (
	invTypesTable = models.Table{
		Name: "invTypes",
		Columns: []string{
			"typeID", "groupID", "typeName", "description", "mass", "volume",
			"capacity", "portionSize", "raceID", "basePrice", "published",
			"marketGroupID", "iconID", "soundID", "graphicID",
		},
	}
	invGroupsTable = models.Table{
		Name: "invGroups",
		Columns: []string{
			"groupID", "categoryID", "groupName", "iconID", "useBasePrice",
			"anchored", "anchorable", "fittableNonSingleton", "published",
		},
	}
	invMetaGroupsTable = models.Table{
		Name:    "invMetaGroups",
		Columns: []string{"metaGroupID", "metaGroupName", "description", "iconID"},
	}
	invMetaTypesTable = models.Table{
		Name:    "invMetaTypes",
		Columns: []string{"typeID", "parentTypeID", "metaGroupID"},
	}
	invUniqueNamesTable = models.Table{
		Name:    "invUniqueNames",
		Columns: []string{"itemID", "itemName", "groupID"},
	}
)

// characterGroupID is the legacy "Character" inventory group.
const characterGroupID = 1

func buildInvTypes(src etl.Source, lang string) ([]models.Row, error) {
	t := etl.NewTransformer(invTypesTable, map[string]etl.Field{
		"typeID":        etl.Key(),
		"groupID":       etl.Direct("groupID"),
		"typeName":      etl.Localized("name", lang),
		"description":   etl.Localized("description", lang),
		"mass":          etl.Direct("mass"),
		"volume":        etl.Direct("volume"),
		"capacity":      etl.Direct("capacity"),
		"portionSize":   etl.Direct("portionSize"),
		"raceID":        etl.Direct("raceID"),
		"basePrice":     etl.Direct("basePrice"),
		"published":     etl.Flag("published"),
		"marketGroupID": etl.Direct("marketGroupID"),
		"iconID":        etl.Direct("iconID"),
		"soundID":       etl.Direct("soundID"),
		"graphicID":     etl.Direct("graphicID"),
	})
	return project(src, "types", t, nil)
}

func buildInvGroups(src etl.Source, lang string) ([]models.Row, error) {
	t := etl.NewTransformer(invGroupsTable, map[string]etl.Field{
		"groupID":              etl.Key(),
		"categoryID":           etl.Direct("categoryID"),
		"groupName":            etl.Localized("name", lang),
		"iconID":               etl.Direct("iconID"),
		"useBasePrice":         etl.Flag("useBasePrice"),
		"anchored":             etl.Flag("anchored"),
		"anchorable":           etl.Flag("anchorable"),
		"fittableNonSingleton": etl.Flag("fittableNonSingleton"),
		"published":            etl.Flag("published"),
	})
	return project(src, "groups", t, nil)
}

func buildInvMetaGroups(src etl.Source, lang string) ([]models.Row, error) {
	t := etl.NewTransformer(invMetaGroupsTable, map[string]etl.Field{
		"metaGroupID":   etl.Key(),
		"metaGroupName": etl.Localized("name", lang),
		"description":   etl.Localized("description", lang),
		"iconID":        etl.Direct("iconID"),
	})
	return project(src, "metaGroups", t, nil)
}

// buildInvMetaTypes only emits types that belong to a meta group.
func buildInvMetaTypes(src etl.Source, _ string) ([]models.Row, error) {
	t := etl.NewTransformer(invMetaTypesTable, map[string]etl.Field{
		"typeID":       etl.Key(),
		"parentTypeID": etl.Direct("variationParentTypeID"),
		"metaGroupID":  etl.Direct("metaGroupID"),
	})
	return project(src, "types", t, func(rec models.Record) bool {
		return rec.Has("metaGroupID")
	})
}

func buildInvUniqueNames(src etl.Source, lang string) ([]models.Row, error) {
	t := etl.NewTransformer(invUniqueNamesTable, map[string]etl.Field{
		"itemID":   etl.Key(),
		"itemName": etl.Localized("name", lang),
		"groupID":  etl.Const(characterGroupID),
	})
	return project(src, "npcCharacters", t, nil)
}
