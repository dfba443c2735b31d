// internal/scoring/tables.go
package scoring

// Keys in every table are normalized (trimmed, lowercase).

var relatedCategories = map[string][]string{
	"health & fitness":       {"personal care", "senior care"},
	"food & beverage":        {"retail"},
	"home services":          {"cleaning & maintenance"},
	"b2b services":           {"real estate"},
	"education":              {"pet services"},
	"senior care":            {"health & fitness", "home services"},
	"automotive":             {"home services"},
	"pet services":           {"education"},
	"real estate":            {"b2b services", "home services"},
	"retail":                 {"food & beverage"},
	"cleaning & maintenance": {"home services"},
	"personal care":          {"health & fitness"},
}

var (
	absenteeTags  = []string{"semi-absentee", "absentee", "manager-run", "passive", "executive-model"}
	handsOnTags   = []string{"owner-operator", "owner-operated", "hands-on", "operator"}
	scalableTags  = []string{"multi-unit", "area-developer", "area-development", "multi-territory", "scalable"}
	homeBasedTags = []string{"home-based", "home-office", "mobile", "low-overhead", "no-storefront"}

	storefrontTags = []string{"brick-and-mortar", "storefront", "retail-location"}
	officeTags     = []string{"office", "b2b", "brick-and-mortar", "storefront"}
	fieldTags      = []string{"mobile", "home-services", "field-based", "van-based"}
	staffTags      = []string{"manager-run", "multi-unit", "staff-intensive", "brick-and-mortar", "storefront"}
	soloTags       = []string{"home-based", "mobile", "solo", "low-overhead"}
	familyTags     = append(append([]string{}, handsOnTags...), homeBasedTags...)
)

var styleTags = map[string][]string{
	"semi-absentee":  absenteeTags,
	"owner-operator": handsOnTags,
	"multi-unit":     scalableTags,
	"home-based":     homeBasedTags,
}

// styleAffinity is a partial match between a declared style and franchise
// tags that are not an exact hit. Rules are checked in order.
type styleAffinity struct {
	style string
	tags  []string
	score int
}

var styleAffinities = []styleAffinity{
	{style: "semi-absentee", tags: []string{"multi-unit", "scalable", "area-developer"}, score: 55},
	{style: "multi-unit", tags: []string{"semi-absentee", "manager-run", "scalable"}, score: 55},
	{style: "home-based", tags: []string{"owner-operator", "owner-operated"}, score: 40},
	{style: "home-based", tags: storefrontTags, score: 5},
	{style: "semi-absentee", tags: []string{"owner-operator", "hands-on", "owner-operated"}, score: 15},
	{style: "owner-operator", tags: []string{"semi-absentee", "absentee", "passive"}, score: 15},
}

var modelTags = map[string][]string{
	"brick-and-mortar": {"brick-and-mortar", "storefront", "retail-location", "food-service"},
	"services":         {"service-based", "services", "home-services", "b2b"},
	"mobile":           {"mobile", "home-based", "van-based", "no-storefront"},
}

var creditFactors = map[string]float64{
	"750+":      1.0,
	"700-750":   0.85,
	"650-700":   0.6,
	"below-650": 0.3,
	"unsure":    0.7,
}

const unknownCredit = 0.7

var managementYearsScores = map[string]float64{
	"none": 0,
	"1-2":  0.25,
	"2-5":  0.5,
	"5-10": 0.8,
	"10+":  1.0,
}

var skillLevels = map[string]float64{
	"none":         0,
	"beginner":     0.35,
	"intermediate": 0.7,
	"advanced":     1.0,
}

var educationScores = map[string]float64{
	"no-degree":   0.4,
	"high-school": 0.5,
	"associates":  0.65,
	"bachelors":   0.85,
	"post-grad":   1.0,
}

var professionalCategories = map[string]bool{
	"b2b services": true,
	"real estate":  true,
	"education":    true,
}

var commitmentScores = map[string]float64{
	"ready":      1.0,
	"active":     0.8,
	"interested": 0.55,
	"dream":      0.3,
}

var durationScores = map[string]float64{
	"2+":           1.0,
	"1-2":          0.85,
	"6-12":         0.7,
	"under-6":      0.5,
	"just-started": 0.3,
}

var hoursRank = map[string]int{
	"under-40": 0,
	"40-50":    1,
	"50+":      2,
}

var growthLeadership = map[string]bool{"transformational": true, "democratic": true, "servant": true}

var controlLeadership = map[string]bool{"autocratic": true, "transactional": true}

// neutral is the 0-1 value used when an answer is missing or unknown.
const neutral = 0.5
