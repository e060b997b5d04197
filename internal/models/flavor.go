package models

type Flavor struct {
	Name      string
	Resources FlavorResources
}

type FlavorResources struct {
	CPU    int
	Memory int
}

var (
	HiveLiteExecutor = Flavor{Name: "hive-lite", Resources: FlavorResources{CPU: 2, Memory: 4}}
	HiveProdExecutor = Flavor{Name: "hive-prod", Resources: FlavorResources{CPU: 8, Memory: 32}}

	DataVizSmall  = Flavor{Name: "small", Resources: FlavorResources{CPU: 2, Memory: 8}}
	DataVizMedium = Flavor{Name: "medium", Resources: FlavorResources{CPU: 4, Memory: 16}}
	DataVizLarge  = Flavor{Name: "large", Resources: FlavorResources{CPU: 6, Memory: 24}}

	SessionXSmall = Flavor{Name: "xsmall", Resources: FlavorResources{CPU: 2, Memory: 4}}
	SessionSmall  = Flavor{Name: "small", Resources: FlavorResources{CPU: 4, Memory: 8}}
	SessionMedium = Flavor{Name: "medium", Resources: FlavorResources{CPU: 6, Memory: 16}}
)
