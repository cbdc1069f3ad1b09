package catalog

import "strings"

// Category groups exercises by the kind of session they belong to
type Category string

const (
	Push Category = "push"
	Pull Category = "pull"
	Legs Category = "legs"
)

// Definition is a single catalog entry. Names are unique; abbreviations may
// collide across entries (e.g. "BP" covers both bench press variants).
type Definition struct {
	Name         string
	Abbreviation string
	Category     Category
}

// List is the static exercise catalog. Declaration order matters: it is the
// tie-break order for abbreviation matches.
var List = []Definition{
	// push
	{Name: "Bench Press", Abbreviation: "BP", Category: Push},
	{Name: "Cable Lateral Raise", Abbreviation: "CLR", Category: Push},
	{Name: "Cable Flys", Abbreviation: "CF", Category: Push},
	{Name: "Decline Bench Press", Abbreviation: "DBP", Category: Push},
	{Name: "Dumbbell Bench Press", Abbreviation: "DBP", Category: Push},
	{Name: "Dumbbell Flys", Abbreviation: "DBF", Category: Push},
	{Name: "Dips", Abbreviation: "D", Category: Push},
	{Name: "Incline Dumbbell Press", Abbreviation: "IDP", Category: Push},
	{Name: "Incline Bench Press", Abbreviation: "IBP", Category: Push},
	{Name: "Lateral Raise", Abbreviation: "LR", Category: Push},
	{Name: "Overhead Press", Abbreviation: "OHP", Category: Push},
	{Name: "Push-ups", Abbreviation: "PU", Category: Push},
	{Name: "Triceps Pushdown", Abbreviation: "TPD", Category: Push},
	{Name: "Skullcrushers", Abbreviation: "SC", Category: Push},

	// pull
	{Name: "Barbell Row", Abbreviation: "BR", Category: Pull},
	{Name: "Back Row", Abbreviation: "BR", Category: Pull},
	{Name: "Bicep Curls", Abbreviation: "BC", Category: Pull},
	{Name: "Deadlift", Abbreviation: "DL", Category: Pull},
	{Name: "Face Pulls", Abbreviation: "FP", Category: Pull},
	{Name: "Hammer Curls", Abbreviation: "HC", Category: Pull},
	{Name: "Lat Pulldown", Abbreviation: "LP", Category: Pull},
	{Name: "Pull-ups", Abbreviation: "PLU", Category: Pull},
	{Name: "Seated Cable Row", Abbreviation: "SCR", Category: Pull},

	// legs
	{Name: "Bulgarian Split Squat", Abbreviation: "BSS", Category: Legs},
	{Name: "Calf Raise", Abbreviation: "CR", Category: Legs},
	{Name: "Hip Thrust", Abbreviation: "HT", Category: Legs},
	{Name: "Leg Extension", Abbreviation: "LE", Category: Legs},
	{Name: "Leg Press", Abbreviation: "LP", Category: Legs},
	{Name: "Leg Curl", Abbreviation: "LC", Category: Legs},
	{Name: "Romanian Deadlift", Abbreviation: "RDL", Category: Legs},
	{Name: "Squat", Abbreviation: "SQ", Category: Legs},
	{Name: "Split Squat", Abbreviation: "SQ", Category: Legs},
}

// Matches resolves typed abbreviation text into candidate exercise names.
// Empty input yields [""] ("no exercise chosen yet"). Text that matches no
// abbreviation is returned verbatim as a single custom exercise name.
// Otherwise all matching names are returned, entries of the preferred
// category first; within each partition catalog order is preserved.
func Matches(text string, preferred Category) []string {
	normalized := strings.ToUpper(strings.TrimSpace(text))
	if normalized == "" {
		return []string{""}
	}

	var preferredNames, otherNames []string
	for _, def := range List {
		if def.Abbreviation != normalized {
			continue
		}
		if preferred != "" && def.Category == preferred {
			preferredNames = append(preferredNames, def.Name)
		} else {
			otherNames = append(otherNames, def.Name)
		}
	}

	if len(preferredNames) == 0 && len(otherNames) == 0 {
		// No catalog match: treat the raw input as a custom exercise name
		return []string{text}
	}
	return append(preferredNames, otherNames...)
}

// Find looks up a catalog entry by exact exercise name
func Find(name string) (Definition, bool) {
	for _, def := range List {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}

// CategoryOf returns the category of a catalog exercise. Custom (uncataloged)
// names have no category.
func CategoryOf(name string) (Category, bool) {
	def, ok := Find(name)
	if !ok {
		return "", false
	}
	return def.Category, true
}
