package catalog

import "everafter/internal/domain"

// Default returns the studio's built-in collections. Retainers are the fixed
// amounts charged by the intent-based checkout.
func Default() *Catalog {
	c, err := New(defaultPackages())
	if err != nil {
		panic(err)
	}
	return c
}

func defaultPackages() []domain.Package {
	return []domain.Package{
		{
			ID:          "essential",
			Name:        "Essential Collection",
			Price:       180000,
			Retainer:    18000,
			Coverage:    "4 hours",
			Turnaround:  "5–7 weeks",
			Description: "**4 hours** of wedding day coverage with guided posing and candid moments.",
			Includes: []string{
				"4 hours of wedding day coverage",
				"Guided posing, while capturing your candid moments",
				"Private online gallery for easy sharing and downloads",
				"250+ carefully edited images",
				"Sneak peeks within 3 days",
				"Full gallery delivered in 5–7 weeks",
			},
		},
		{
			ID:          "signature",
			Name:        "Signature Collection",
			Price:       260000,
			Retainer:    26000,
			Coverage:    "8 hours",
			Turnaround:  "5–7 weeks",
			Highlight:   "Most Booked",
			Description: "**8 hours** of coverage, from getting ready to the evening, plus a cinematic highlight film.",
			Includes: []string{
				"8 hours of coverage capturing your entire day",
				"Personalized timeline and pre-wedding consultation",
				"~400+ carefully edited images",
				"Sneak peeks within 3 days",
				"Full gallery delivered in 5–7 weeks",
				"2-minute cinematic highlight video",
			},
		},
		{
			ID:          "luxury",
			Name:        "Luxury Collection",
			Price:       340000,
			Retainer:    34000,
			Coverage:    "24 hours",
			Turnaround:  "5–7 weeks",
			Description: "**Full-day** coverage with a complimentary pre-wedding session and highlight film.",
			Includes: []string{
				"Full-day wedding coverage",
				"Personalized timeline planning and a pre-wedding consultation",
				"Complimentary 1-hour pre-wedding session with two outfits",
				"Private online gallery for easy sharing",
				"~600+ carefully edited images",
				"Sneak peeks within 48 hours",
				"Full gallery delivered in 5–7 weeks",
				"2-minute cinematic highlight video",
			},
		},
	}
}
