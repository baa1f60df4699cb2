package anomaly

import "github.com/fortis-br/integrity-engine/models"

// categoryPriority orders categories for the primary label when a vote
// trips more than one: DUPLICATE > GEOGRAPHIC > TEMPORAL > VERIFICATION.
var categoryPriority = []models.AnomalyCategory{
	models.CategoryDuplicate,
	models.CategoryGeographic,
	models.CategoryTemporal,
	models.CategoryVerification,
}

// Signals lists the categories a single vote fired.
func (f Features) Signals(zoneThreshold float64) []models.AnomalyCategory {
	var fired []models.AnomalyCategory
	if f.HasDuplicate {
		fired = append(fired, models.CategoryDuplicate)
	}
	if f.ZoneShare > zoneThreshold {
		fired = append(fired, models.CategoryGeographic)
	}
	if f.IsNight || f.OutsideWindow {
		fired = append(fired, models.CategoryTemporal)
	}
	if f.IsUnverified {
		fired = append(fired, models.CategoryVerification)
	}
	return fired
}

// Classify determines the primary category and severity for a vote that
// fired at least one signal. Duplicates are always HIGH; a night vote in
// an over-concentrated zone is HIGH; a single fired signal is MEDIUM;
// anything else is LOW.
func Classify(f Features, fired []models.AnomalyCategory, zoneThreshold float64) (models.AnomalyCategory, models.Severity) {
	primary := models.CategoryOther
	for _, c := range categoryPriority {
		if containsCategory(fired, c) {
			primary = c
			break
		}
	}

	var severity models.Severity
	switch {
	case containsCategory(fired, models.CategoryDuplicate):
		severity = models.SeverityHigh
	case f.IsNight && f.ZoneShare > zoneThreshold:
		severity = models.SeverityHigh
	case len(fired) == 1:
		severity = models.SeverityMedium
	default:
		severity = models.SeverityLow
	}

	return primary, severity
}

// RiskLevel maps a suspicion probability in [0,1] to a severity band.
func RiskLevel(probability float64) models.Severity {
	switch {
	case probability < 0.3:
		return models.SeverityLow
	case probability < 0.7:
		return models.SeverityMedium
	default:
		return models.SeverityHigh
	}
}

func containsCategory(cats []models.AnomalyCategory, c models.AnomalyCategory) bool {
	for _, have := range cats {
		if have == c {
			return true
		}
	}
	return false
}
