package seed

import "github.com/sikhaidindia/backend/internal/models"

// Campaigns are the launch campaign pages, featured campaign first.
var Campaigns = []models.Campaign{
	{
		Slug:             "punjab-floods-relief-2025",
		Title:            "Punjab Floods Relief Aid 2025",
		Subtitle:         "Standing with Punjab in Its Hour of Need",
		ShortDescription: "Emergency relief and long-term rehabilitation for families devastated by the 2025 Punjab floods: food, shelter, diesel for farmers, and home reconstruction.",
		FullDescription:  "When the 2025 floods submerged villages across Punjab, SikhAid teams were on the ground within days: rescue boats, langar kitchens, and medical camps first, then the longer work of rebuilding. The campaign funds diesel so farmers can clear damaged land before the next sowing season, rebuilds destroyed homes, replaces lost livestock, and restocks households that lost everything.",
		Image:            "https://i.ibb.co/9kkX22Tz/151.png",
		Category:         "Disaster Relief",
		Status:           models.CampaignOngoing,
		PublishStatus:    models.Published,
		ImpactStats: []models.ImpactStat{
			{Label: "Families Helped", Value: "5,000+", Icon: "🏠"},
			{Label: "Meals Served", Value: "250,000+", Icon: "🍽️"},
			{Label: "Homes Rebuilt", Value: "120+", Icon: "🔨"},
			{Label: "Villages Reached", Value: "80+", Icon: "🏘️"},
		},
		HowItWorks: []models.HowItWorksStep{
			{Step: 1, Title: "Rapid Response", Description: "Rescue, food and medical teams deploy to flood-hit villages within days."},
			{Step: 2, Title: "Relief Distribution", Description: "Rations, clean water, blankets and household essentials reach affected families."},
			{Step: 3, Title: "Livelihood Restoration", Description: "Diesel for land clearing, replacement livestock and seed support get farmers back on their feet."},
			{Step: 4, Title: "Rebuilding Homes", Description: "Destroyed homes are reconstructed with local labour and donated materials."},
		},
		PublishedAt: "2025-09-01T00:00:00Z",
	},
	{
		Slug:             "langar-aid",
		Title:            "Langar Aid",
		Subtitle:         "Nourishing Hope, One Meal at a Time",
		ShortDescription: "Our flagship initiative serving fresh, nutritious meals to vulnerable communities across India, twice daily, year-round.",
		FullDescription:  "SikhAid's flagship initiative runs twice daily year-round, serving fresh meals to vulnerable communities, homeless individuals, daily wage workers, and those hit by disasters. With 300+ volunteers and local kitchens, meals reach 20+ cities and 2,000+ villages. In 2023-24 alone, over 100,000 meals were served at just ₹60 per meal, continuing the Sikh tradition of langar: free community kitchens open to all regardless of background, caste, or creed.",
		Image:            "https://i.ibb.co/9kkX22Tz/151.png",
		Category:         "Food Security",
		Status:           models.CampaignOngoing,
		PublishStatus:    models.Published,
		ImpactStats: []models.ImpactStat{
			{Label: "Meals Served", Value: "100,000+", Icon: "🍽️"},
			{Label: "Great Volunteers", Value: "300+", Icon: "👥"},
			{Label: "Rural Hubs", Value: "200+", Icon: "🏘️"},
			{Label: "Cities Covered", Value: "20+", Icon: "🏙️"},
		},
		HowItWorks: []models.HowItWorksStep{
			{Step: 1, Title: "Community Kitchens", Description: "Establish local kitchen networks in vulnerable areas with trained volunteers and proper equipment."},
			{Step: 2, Title: "Fresh Meal Preparation", Description: "Prepare nutritious, hygienic meals twice daily using quality ingredients and strict food safety standards."},
			{Step: 3, Title: "Distribution Network", Description: "Dedicated teams distribute meals directly to homeless individuals, daily wage workers, and disaster-affected families."},
			{Step: 4, Title: "Community Impact", Description: "Monitor and evaluate impact while expanding reach to new locations based on need assessment."},
		},
		PublishedAt: "2025-01-05T00:00:00Z",
	},
	{
		Slug:             "no-spot",
		Title:            "No Spot",
		Subtitle:         "Championing Dignity and Hygiene for Women",
		ShortDescription: "Menstrual health education and free sanitary product distribution for women and girls in underserved communities.",
		FullDescription:  "No Spot tackles period poverty on two fronts: awareness sessions that break the silence around menstrual health in schools and villages, and steady distribution of free sanitary products so that hygiene never depends on a family's daily income. The campaign works through local women volunteers who keep the conversation going long after a distribution drive ends.",
		Image:            "https://i.ibb.co/9kkX22Tz/151.png",
		Category:         "Women's Health",
		Status:           models.CampaignOngoing,
		PublishStatus:    models.Published,
		ImpactStats: []models.ImpactStat{
			{Label: "Women Reached", Value: "25,000+", Icon: "👩"},
			{Label: "Schools Covered", Value: "150+", Icon: "🏫"},
			{Label: "Kits Distributed", Value: "60,000+", Icon: "📦"},
		},
		HowItWorks: []models.HowItWorksStep{
			{Step: 1, Title: "Awareness Sessions", Description: "Health educators run menstrual health workshops in schools and community centres."},
			{Step: 2, Title: "Kit Distribution", Description: "Free sanitary kits are distributed through schools and village health workers."},
			{Step: 3, Title: "Local Champions", Description: "Trained women volunteers sustain the program within their own communities."},
		},
		PublishedAt: "2025-01-03T00:00:00Z",
	},
	{
		Slug:             "winter-relief",
		Title:            "Winter Relief",
		Subtitle:         "Warmth for Those Who Sleep in the Cold",
		ShortDescription: "Blankets, warm clothing and hot meals for homeless people through north India's coldest months.",
		FullDescription:  "Each winter, SikhAid's night teams drive fixed routes through Delhi, Amritsar and Chandigarh distributing blankets, warm layers and hot tea to people sleeping in the open. The seasonal campaign runs from November through February, the months when exposure is deadliest.",
		Image:            "https://i.ibb.co/9kkX22Tz/151.png",
		Category:         "Seasonal Relief",
		Status:           models.CampaignSeasonal,
		PublishStatus:    models.Published,
		ImpactStats: []models.ImpactStat{
			{Label: "Blankets Distributed", Value: "40,000+", Icon: "🧣"},
			{Label: "Night Routes", Value: "12", Icon: "🚐"},
			{Label: "Cities", Value: "3", Icon: "🏙️"},
		},
		HowItWorks: []models.HowItWorksStep{
			{Step: 1, Title: "Route Mapping", Description: "Volunteers map where people actually sleep, beyond the reach of shelters."},
			{Step: 2, Title: "Night Distribution", Description: "Teams drive the routes nightly with blankets, clothing and hot food."},
		},
		PublishedAt: "2024-11-15T00:00:00Z",
	},
}
