// Package seed holds the static content the site launched with, imported
// once into Firestore by the migration CLI. Trimmed to the fields the
// backend persists; body copy is abridged.
package seed

import "github.com/sikhaidindia/backend/internal/models"

// Blogs are the launch blog posts. All were live on the static site, so
// they import as published with their original publish dates.
var Blogs = []models.Blog{
	{
		Slug:          "volunteers-stories-from-heart",
		Title:         "Meet Our Volunteers: Stories from the Heart of SikhAid",
		Excerpt:       "Behind every meal served and every family helped stands a volunteer. These are their stories.",
		Content:       "<p>Behind every SikhAid initiative stand hundreds of volunteers who give their time, energy and heart to serve communities in need. From college students spending weekends in community kitchens to retired professionals coordinating relief logistics, their stories show what seva means in practice.</p><p>This post introduces a few of the people who make the work possible, in their own words.</p>",
		Image:         "https://i.ibb.co/9kkX22Tz/151.png",
		Category:      "Volunteer Stories",
		Author:        "Meera Patel",
		PublishStatus: models.Published,
		ReadTime:      "6 min read",
		PublishedAt:   "2025-01-20T00:00:00Z",
	},
	{
		Slug:          "inside-community-kitchens-langar-aid",
		Title:         "Inside Our Community Kitchens: A Day with Langar Aid",
		Excerpt:       "From dawn preparations to evening distribution, follow a day in the life of a Langar Aid kitchen.",
		Content:       "<p>The day begins before sunrise. By 5am the first volunteers are washing vegetables and lighting stoves; by 8am the first of two daily meal runs is on the road. Langar Aid kitchens across twenty cities repeat this rhythm every single day of the year.</p><p>We followed the Ludhiana kitchen for a full day to document how a hundred thousand meals a year actually get made and served.</p>",
		Image:         "https://i.ibb.co/9kkX22Tz/151.png",
		Category:      "Food Security",
		Author:        "Rajesh Kumar",
		PublishStatus: models.Published,
		ReadTime:      "7 min read",
		PublishedAt:   "2025-01-18T00:00:00Z",
	},
	{
		Slug:          "educational-support-scholarships-changing-lives",
		Title:         "Educational Support: Scholarships Changing Lives in Odisha",
		Excerpt:       "How targeted scholarships are keeping first-generation learners in school across rural Odisha.",
		Content:       "<p>For families living on daily wages, a single school fee can be the difference between a child staying in class and joining the workforce. SikhAid's scholarship program in Odisha covers fees, books and uniforms for first-generation learners, with local volunteers mentoring each student through the school year.</p>",
		Image:         "https://i.ibb.co/9kkX22Tz/151.png",
		Category:      "Education",
		Author:        "Dr. Sunita Mohanty",
		PublishStatus: models.Published,
		ReadTime:      "8 min read",
		PublishedAt:   "2025-01-15T00:00:00Z",
	},
	{
		Slug:          "mobile-medical-camps-healthcare-remote-villages",
		Title:         "Mobile Medical Camps: Healthcare Reaching Remote Villages",
		Excerpt:       "Mobile medical units bring doctors, diagnostics and medicines to villages hours from the nearest hospital.",
		Content:       "<p>When the nearest hospital is four hours away, a fever becomes a gamble. SikhAid's mobile medical units carry a doctor, a nurse, basic diagnostics and a stocked pharmacy into villages that see no other regular healthcare, running scheduled monthly camps so that care is dependable rather than occasional.</p>",
		Image:         "https://i.ibb.co/9kkX22Tz/151.png",
		Category:      "Healthcare",
		Author:        "Dr. Rajesh Panda",
		PublishStatus: models.Published,
		ReadTime:      "9 min read",
		PublishedAt:   "2025-01-12T00:00:00Z",
	},
	{
		Slug:          "winter-relief-blanket-distribution-impact",
		Title:         "Winter Relief Impact: How Blanket Distribution Saves Lives",
		Excerpt:       "Each winter, exposure kills. A blanket handed out in November is a life not lost in January.",
		Content:       "<p>Every winter, north India's homeless population faces weeks of near-freezing nights. SikhAid's winter relief drives distribute blankets, warm clothing and hot meals along fixed night routes in Delhi, Amritsar and Chandigarh, reaching the people shelters miss.</p>",
		Image:         "https://i.ibb.co/9kkX22Tz/151.png",
		Category:      "Winter Relief",
		Author:        "Priya Sharma",
		PublishStatus: models.Published,
		ReadTime:      "8 min read",
		PublishedAt:   "2025-01-10T00:00:00Z",
	},
	{
		Slug:          "women-empowerment-no-spot-initiative-success",
		Title:         "Women's Empowerment: The Success of No Spot Initiative",
		Excerpt:       "Menstrual health education and free sanitary products are changing school attendance in rural Punjab.",
		Content:       "<p>The No Spot initiative pairs menstrual health education with free sanitary product distribution in schools and villages. Since launch, participating schools report measurably better attendance among adolescent girls, and village health workers report more women seeking care early.</p>",
		Image:         "https://i.ibb.co/9kkX22Tz/151.png",
		Category:      "Women's Health",
		Author:        "Kavita Singh",
		PublishStatus: models.Published,
		ReadTime:      "10 min read",
		PublishedAt:   "2025-01-08T00:00:00Z",
	},
}
