package tables

type entry struct {
	name    string
	factory Factory
}

// registry lists every converter in default run order.
var registry = []entry{
	{invTypesTable.Name, newFactory(invTypesTable, buildInvTypes)},
	{invGroupsTable.Name, newFactory(invGroupsTable, buildInvGroups)},
	{invMetaGroupsTable.Name, newFactory(invMetaGroupsTable, buildInvMetaGroups)},
	{invMetaTypesTable.Name, newFactory(invMetaTypesTable, buildInvMetaTypes)},
	{industryActivityTable.Name, newFactory(industryActivityTable, buildIndustryActivity)},
	{industryActivityMaterialsTable.Name, newFactory(industryActivityMaterialsTable, buildIndustryActivityMaterials)},
	{industryActivityProductsTable.Name, newFactory(industryActivityProductsTable, buildIndustryActivityProducts)},
	{ramActivitiesTable.Name, newFactory(ramActivitiesTable, buildRamActivities)},
	{invFlagsTable.Name, newFactory(invFlagsTable, buildInvFlags)},
	{invUniqueNamesTable.Name, newFactory(invUniqueNamesTable, buildInvUniqueNames)},
	{invNamesTable.Name, newFactory(invNamesTable, buildInvNames)},
	{invItemsTable.Name, newFactory(invItemsTable, buildInvItems)},
}

// Names returns the registered table names in default order.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	return names
}

// FactoryFor returns the factory registered under name.
func FactoryFor(name string) (Factory, bool) {
	for _, e := range registry {
		if e.name == name {
			return e.factory, true
		}
	}
	return nil, false
}
