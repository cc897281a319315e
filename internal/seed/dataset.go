package seed

import domiv "github.com/roadsafe-cloud/roadsafe/internal/domain/intervention"

// demoDataset returns the minimal demo interventions inserted when the store
// is empty. Fresh slices on every call so callers can mutate safely.
func demoDataset() []domiv.Intervention {
	return []domiv.Intervention{
		{
			Name:               "Raised Pedestrian Crossing",
			Description:        "A raised table at pedestrian crossing that slows vehicles and improves visibility.",
			RoadTypes:          []string{"urban arterial", "urban collector", "local street"},
			Issues:             []string{"speeding", "pedestrian crashes"},
			Environments:       []string{"school zone", "market area", "midblock"},
			CostLevel:          "medium",
			Complexity:         "medium",
			SuitableSpeedRange: []int{20, 50},
			UrbanRural:         []string{"urban"},
			CoBenefits:         []string{"traffic calming", "accessibility"},
			References: []domiv.Reference{
				{
					Source: "WHO",
					Title:  "Pedestrian safety: a road safety manual",
					URL:    "https://www.who.int/publications/i/item/pedestrian-safety-a-road-safety-manual",
				},
				{
					Source: "FHWA",
					Title:  "Safety Effects of Marked vs. Unmarked Crosswalks",
					URL:    "https://safety.fhwa.dot.gov/",
				},
			},
			Tags: []string{"pedestrian", "crossing", "traffic calming"},
		},
		{
			Name:               "Rumble Strips (Shoulder/Centerline)",
			Description:        "Milled rumble strips alert drivers who drift from their lane, reducing run-off-road and head-on crashes.",
			RoadTypes:          []string{"rural highway", "rural arterial", "state highway", "national highway"},
			Issues:             []string{"run-off-road", "head-on"},
			Environments:       []string{"curve", "midblock"},
			CostLevel:          "low",
			Complexity:         "low",
			SuitableSpeedRange: []int{50, 110},
			UrbanRural:         []string{"rural"},
			CoBenefits:         []string{"fatigue management"},
			References: []domiv.Reference{
				{
					Source: "FHWA",
					Title:  "Rumble Strips and Rumble Stripes",
					URL:    "https://safety.fhwa.dot.gov/",
				},
				{
					Source: "PIARC",
					Title:  "Road Safety Manual",
				},
			},
			Tags: []string{"run-off-road", "lane departure"},
		},
		{
			Name:               "Roundabout Conversion",
			Description:        "Replace signalized or stop-controlled intersection with a roundabout to reduce severe angle crashes.",
			RoadTypes:          []string{"urban arterial", "rural arterial", "local street"},
			Issues:             []string{"intersection conflicts", "head-on"},
			Environments:       []string{"intersection"},
			CostLevel:          "high",
			Complexity:         "high",
			SuitableSpeedRange: []int{20, 60},
			UrbanRural:         []string{"urban", "rural"},
			CoBenefits:         []string{"emissions reduction", "traffic calming"},
			References: []domiv.Reference{
				{
					Source: "FHWA",
					Title:  "Roundabouts: An Informational Guide",
				},
				{
					Source: "IRC",
					Title:  "Guidelines for Traffic Management in Urban Areas",
				},
			},
			Tags: []string{"intersection", "conversion"},
		},
	}
}
