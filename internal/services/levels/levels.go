package levels

// Level is a named tier on the points scale. It is always derived from points.
type Level string

const (
	EcoIniciante  Level = "Eco Iniciante"
	GuardiaoVerde Level = "Guardião Verde"
	DefensorVerde Level = "Defensor Verde"
	EcoMaster     Level = "Eco Master"
)

const (
	guardiaoMin = 500
	defensorMin = 1000
	masterMin   = 2000

	// shown once the top tier is reached; there is no level above Eco Master
	masterCeiling = 3000
)

func ForPoints(points int) Level {
	switch {
	case points >= masterMin:
		return EcoMaster
	case points >= defensorMin:
		return DefensorVerde
	case points >= guardiaoMin:
		return GuardiaoVerde
	default:
		return EcoIniciante
	}
}

// NextThreshold is informational only and never gates progression.
func NextThreshold(points int) int {
	if points < masterMin {
		return masterMin
	}
	return masterCeiling
}

func (l Level) String() string {
	return string(l)
}
