package seed

import "github.com/sikhaidindia/backend/internal/models"

// PressArticles is the launch press coverage, newest first.
var PressArticles = []models.PressItem{
	{
		Type:          models.PressArticle,
		Slug:          "harbhajan-singh-punjab-farmer-relief",
		Title:         "Harbhajan Singh Extends a Helping Hand To Sikh Aid to Support Punjab's Farmers",
		Description:   "Cricket legend Harbhajan Singh partners with Sikh Aid through his Tera Tera Foundation to provide diesel relief to Punjab's flood-affected farmers, helping them clear damaged lands and prepare for the next sowing season.",
		Link:          "https://english.newsnationtv.com/brand-stories/brand-stories-english/harbhajan-singh-sikh-aid-punjab-farmer-relief-2025-10565208",
		Image:         "https://img-cdn.publive.online/fit-in/1280x960/filters:format(webp)/newsnation-english/media/media_files/2025/10/15/harbhajan-singh-sikh-aid-punjab-farmers-2025-10-15-16-59-48.jpeg",
		PublishedDate: "2025-10-15",
		Category:      "Flood Relief",
		Tags:          []string{"harbhajan-singh", "punjab-farmers", "diesel-sewa", "flood-relief"},
		IsActive:      true,
	},
	{
		Type:          models.PressArticle,
		Slug:          "badshah-flood-victims-rebuild",
		Title:         "Badshah Partners with Sikh Aid to Help Punjab Flood Victims Rebuild Lives",
		Description:   "Rapper Badshah joins forces with Sikh Aid to rebuild homes and clear farmlands for Punjab flood victims, bringing hope and resources to families struggling to restart their lives after devastating floods.",
		Link:          "https://www.mynation.com/india-news/badshah-partners-with-sikh-aid-to-help-punjab-flood-victims-rebuild-lives-articleshow-9h0ol28",
		Image:         "PressImages/Article2.png",
		PublishedDate: "2025-10",
		Category:      "Flood Relief",
		Tags:          []string{"badshah", "home-reconstruction", "punjab-floods", "celebrity-support"},
		IsActive:      true,
	},
	{
		Type:          models.PressArticle,
		Slug:          "comprehensive-flood-relief-punjab",
		Title:         "Sikh Aid Leads Comprehensive Relief Efforts in Punjab's Flood-Affected Regions",
		Description:   "Sikh Aid launches a comprehensive rehabilitation program providing diesel to farmers, rebuilding homes, supplying buffaloes for livelihood restoration, and distributing essential household items to Punjab flood victims.",
		Link:          "https://filmibytes.com/sikh-aid-leads-comprehensive-relief-efforts-in-punjabs-flood-affected-regions",
		Image:         "https://filmibytes.com/uploads/images/202510/image_870x_68ef4d76351a0.jpg",
		PublishedDate: "2025-10",
		Category:      "Flood Relief",
		Tags:          []string{"punjab-floods", "comprehensive-relief", "livelihood-restoration", "disaster-response"},
		IsActive:      true,
	},
	{
		Type:          models.PressVideo,
		Title:         "Sikh Aid Flood Relief Ground Report",
		Description:   "On-the-ground coverage of Sikh Aid's langar kitchens and rescue operations in flood-affected Punjab villages.",
		YouTubeURL:    "https://www.youtube.com/watch?v=punjabrelief25",
		PublishedDate: "2025-09",
		Category:      "Flood Relief",
		Tags:          []string{"ground-report", "punjab-floods", "langar"},
		IsActive:      true,
	},
}
