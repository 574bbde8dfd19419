package catalog

import "github.com/jsamuelsen11/donation-service/internal/domain/organization"

// Demo returns the demonstration dataset. IDs are left empty so they are
// derived from the names.
func Demo() []organization.Organization {
	return []organization.Organization{
		{
			Name:        "Clean Water Fund",
			Category:    organization.CategoryEnvironment,
			Description: "Builds and maintains wells and filtration systems in rural communities.",
			Location:    "Nairobi, Kenya",
		},
		{
			Name:        "Ocean Cleanup Collective",
			Category:    organization.CategoryEnvironment,
			Description: "Removes plastic from coastlines and funds river interceptors.",
			Location:    "Rotterdam, Netherlands",
		},
		{
			Name:        "Books for Every Child",
			Category:    organization.CategoryEducation,
			Description: "Stocks school libraries and runs after-school reading programs.",
			Location:    "Austin, Texas",
		},
		{
			Name:        "Code Forward",
			Category:    organization.CategoryEducation,
			Description: "Free programming bootcamps for first-generation students.",
			Location:    "Chicago, Illinois",
		},
		{
			Name:        "Community Health Partners",
			Category:    organization.CategoryHealth,
			Description: "Mobile clinics offering preventive care in underserved areas.",
			Location:    "Lima, Peru",
		},
		{
			Name:        "Paws & Whiskers Rescue",
			Category:    organization.CategoryAnimals,
			Description: "Shelters, treats and rehomes abandoned cats and dogs.",
			Location:    "Portland, Oregon",
		},
		{
			Name:        "Disaster Relief Network",
			Category:    organization.CategoryHumanitarian,
			Description: "Delivers food, water and shelter within 72 hours of a disaster.",
			Location:    "Manila, Philippines",
		},
		{
			Name:        "Neighborhood Arts Studio",
			Category:    organization.CategoryArts,
			Description: "Free music and painting classes for local youth.",
			Location:    "Detroit, Michigan",
		},
	}
}
