package engine

// Factors is the emission factor table the engine is constructed with.
// It is injectable so tests can substitute factor sets; it is not exposed
// as user configuration.
type Factors struct {
	// Transport maps a transport mode to kgCO2 per km.
	Transport map[string]float64
	// Diet maps a diet type to kgCO2 per meal.
	Diet map[string]float64
	// EnergyPerKWh is kgCO2 per kWh of energy use.
	EnergyPerKWh float64
	// WastePerKg is kgCO2 per kg of waste.
	WastePerKg float64
}

// Transport mode keys in the factor table.
const (
	TransportCar   = "car"
	TransportBus   = "bus"
	TransportTrain = "train"
)

// Recognized diet types.
const (
	DietMeat  = "meat"
	DietVegan = "vegan"
	DietMixed = "mixed"
)

// DefaultFactors returns the fixed reference factor table, in kgCO2 per unit.
//
// The bus factor is 0.08, taken from the reference table literal; 0.05 is
// the train factor, which stays in the table even though no input field
// feeds it yet.
func DefaultFactors() Factors {
	return Factors{
		Transport: map[string]float64{
			TransportCar:   0.2,
			TransportBus:   0.08,
			TransportTrain: 0.05,
		},
		Diet: map[string]float64{
			DietMeat:  2.5,
			DietVegan: 1.0,
			DietMixed: 1.5,
		},
		EnergyPerKWh: 0.5,
		WastePerKg:   0.2,
	}
}

// DefaultBaseline returns the fixed reference per-category averages, in
// kgCO2, that batch totals are compared against. These are illustrative
// constants; callers may substitute a configured baseline.
func DefaultBaseline() Totals {
	return Totals{
		CategoryTransport: 50,
		CategoryDiet:      40,
		CategoryEnergy:    30,
		CategoryWaste:     20,
	}
}

// DefaultMonthlyGoalKg is the recorded monthly emission goal in kgCO2.
// It is reported alongside summaries but not enforced by any computation.
const DefaultMonthlyGoalKg = 1000.0
