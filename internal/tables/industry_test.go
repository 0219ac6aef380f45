package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var blueprintFixture = map[string][]string{
	"blueprints": {
		`{"_key": 681, "blueprintTypeID": 681, "activities": {` +
			`"manufacturing": {"time": 120, "materials": [{"typeID": 34, "quantity": 86}, {"typeID": 35, "quantity": 20}], "products": [{"typeID": 165, "quantity": 1}]},` +
			`"teleporting": {"time": 5, "materials": [{"typeID": 36, "quantity": 1}], "products": [{"typeID": 37, "quantity": 1}]}}}`,
	},
}

func TestIndustryFanOut(t *testing.T) {
	activity := build(t, buildIndustryActivity, blueprintFixture)
	require.Len(t, activity, 1)
	assert.Equal(t, []string{"681"}, column(activity, "typeID"))
	assert.Equal(t, []string{"1"}, column(activity, "activityID"))
	assert.Equal(t, []string{"120"}, column(activity, "time"))

	materials := build(t, buildIndustryActivityMaterials, blueprintFixture)
	require.Len(t, materials, 2)
	assert.Equal(t, []string{"681", "681"}, column(materials, "typeID"))
	assert.Equal(t, []string{"1", "1"}, column(materials, "activityID"))
	assert.Equal(t, []string{"34", "35"}, column(materials, "materialTypeID"))
	assert.Equal(t, []string{"86", "20"}, column(materials, "quantity"))

	products := build(t, buildIndustryActivityProducts, blueprintFixture)
	require.Len(t, products, 1)
	assert.Equal(t, []string{"681"}, column(products, "typeID"))
	assert.Equal(t, []string{"165"}, column(products, "productTypeID"))
	assert.Equal(t, []string{"1"}, column(products, "quantity"))
}

func TestIndustryActivityOrderAndTime(t *testing.T) {
	rows := build(t, buildIndustryActivity, map[string][]string{
		"blueprints": {
			`{"_key": 1000, "activities": {"invention": {"time": 63900}, "copying": {"time": 4800}, "research_material": {}, "manufacturing": {"time": 600}}}`,
			`{"_key": 1001}`,
		},
	})

	// research_material has no time; the record key stands in for blueprintTypeID
	assert.Equal(t, []string{"1", "5", "8"}, column(rows, "activityID"))
	assert.Equal(t, []string{"600", "4800", "63900"}, column(rows, "time"))
	assert.Equal(t, []string{"1000", "1000", "1000"}, column(rows, "typeID"))
}

func TestActivityKinds(t *testing.T) {
	ids := make(map[string]int, len(activityKinds))
	for _, k := range activityKinds {
		ids[k.name] = k.id
	}
	assert.Equal(t, map[string]int{
		"manufacturing":     1,
		"research_time":     3,
		"research_material": 4,
		"copying":           5,
		"invention":         8,
		"reaction":          11,
	}, ids)

	for i := 1; i < len(activityKinds); i++ {
		assert.Less(t, activityKinds[i-1].id, activityKinds[i].id)
	}
}
