package seed

import "github.com/sikhaidindia/backend/internal/models"

// Celebrities are the original static carousel cards.
var Celebrities = []models.CelebrityCard{
	{Name: "Banita Sandhu", Profession: "Actress", ImageURL: "/personalities/banita-sandhu.jpg", IsActive: true},
	{Name: "Harbhajan Singh", Profession: "Ex-Cricketer", ImageURL: "/personalities/harbhajan-singh.jpg", IsActive: true},
	{Name: "Rohanpreet Singh", Profession: "Singer", ImageURL: "/personalities/rohanpreet-singh.jpg", IsActive: true},
	{Name: "ProphC", Profession: "Singer", ImageURL: "/personalities/prophc.jpg", IsActive: true},
	{Name: "Jaspreet Singh", Profession: "Comedian", ImageURL: "/personalities/jaspreet-singh.jpg", IsActive: true},
}

// Testimonials are the original static carousel quotes, with placeholder
// avatars generated from initials.
var Testimonials = []models.Testimonial{
	{
		Name:        "Rajesh Kumar",
		Designation: "Beneficiary, Punjab",
		ImageURL:    "https://ui-avatars.com/api/?name=Rajesh+Kumar&size=200&background=3b82f6&color=fff&bold=true",
		Text:        "SikhAid saved our family during the floods. Their quick response and compassionate care gave us hope when we had lost everything.",
		IsActive:    true,
	},
	{
		Name:        "Priya Sharma",
		Designation: "Donor, Delhi",
		ImageURL:    "https://ui-avatars.com/api/?name=Priya+Sharma&size=200&background=10b981&color=fff&bold=true",
		Text:        "I have been donating to SikhAid for 2 years. Their transparency and direct impact on communities is remarkable.",
		IsActive:    true,
	},
	{
		Name:        "Dr. Amit Singh",
		Designation: "Medical Volunteer, Mumbai",
		ImageURL:    "https://ui-avatars.com/api/?name=Amit+Singh&size=200&background=8b5cf6&color=fff&bold=true",
		Text:        "As a medical volunteer with SikhAid, I have witnessed their incredible organizational skills and dedication to serving humanity.",
		IsActive:    true,
	},
	{
		Name:        "Sunita Devi",
		Designation: "Beneficiary, Odisha",
		ImageURL:    "https://ui-avatars.com/api/?name=Sunita+Devi&size=200&background=f97316&color=fff&bold=true",
		Text:        "The mobile medical units reached our remote village when no one else could. SikhAid truly serves with compassion.",
		IsActive:    true,
	},
	{
		Name:        "Manpreet Kaur",
		Designation: "Community Leader, Haryana",
		ImageURL:    "https://ui-avatars.com/api/?name=Manpreet+Kaur&size=200&background=14b8a6&color=fff&bold=true",
		Text:        "SikhAid helped rebuild our community after the cyclone. Their long-term support made all the difference.",
		IsActive:    true,
	},
	{
		Name:        "Ravi Patel",
		Designation: "Corporate Partner, Gujarat",
		ImageURL:    "https://ui-avatars.com/api/?name=Ravi+Patel&size=200&background=ef4444&color=fff&bold=true",
		Text:        "Working as a corporate partner with SikhAid has shown me what true humanitarian work looks like. Exceptional organization.",
		IsActive:    true,
	},
}
