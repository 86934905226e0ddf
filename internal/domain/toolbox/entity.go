package toolbox

type Category string

const (
	CategoryLength      Category = "length"
	CategoryVolume      Category = "volume"
	CategoryWeight      Category = "weight"
	CategoryFlowrate    Category = "flowrate"
	CategoryTemperature Category = "temperature"
	CategoryPressure    Category = "pressure"
	CategoryDensity     Category = "density"
)

// Product selects the K0/K1 constants of the Table 54 thermal expansion coefficient.
type Product string

const (
	ProductLPG      Product = "LPG"
	ProductGasoline Product = "Gasoline"
	ProductJetFuel  Product = "JetFuel"
	ProductDiesel   Product = "Diesel"
	ProductLubeOils Product = "LubeOils"
)

type DisplacerUnit string

const (
	DisplacerMM      DisplacerUnit = "mm"
	DisplacerPercent DisplacerUnit = "%"
)
