package store

import (
	"time"

	"github.com/Govt-of-India/mla-portal/internal/models"
)

// Seed builds the static content the site ships with. Dates are anchored on
// now so the event calendar stays meaningful regardless of when the process
// starts. Collections are small by design; tens of items at most.
func timePtr(t time.Time) *time.Time { return &t }

func Seed(now time.Time) Data {
	day := 24 * time.Hour

	return Data{
		News: []models.News{
			{
				ID:          "news-1",
				TitleEn:     "New Road Construction Project Inaugurated",
				TitleHi:     "नई सड़क निर्माण परियोजना का उद्घाटन",
				ContentEn:   "A major road construction project connecting rural areas to the city center was inaugurated today. The project will benefit over 50,000 residents and reduce travel time significantly.",
				ContentHi:   "ग्रामीण क्षेत्रों को शहर के केंद्र से जोड़ने वाली एक प्रमुख सड़क निर्माण परियोजना का आज उद्घाटन किया गया। इस परियोजना से 50,000 से अधिक निवासियों को लाभ होगा।",
				Slug:        "new-road-construction-inaugurated",
				ImageURL:    "https://images.unsplash.com/photo-1545459720-aac8509eb02c?w=800",
				Published:   true,
				PublishedAt: timePtr(now.Add(-2 * day)),
				CreatedAt:   now.Add(-2 * day),
				UpdatedAt:   now.Add(-2 * day),
			},
			{
				ID:          "news-2",
				TitleEn:     "Free Health Camp Serves Over 2,000 Patients",
				TitleHi:     "निःशुल्क स्वास्थ्य शिविर में 2,000 से अधिक मरीजों की जांच",
				ContentEn:   "The three-day free health camp organised at the district hospital concluded with over 2,000 patients receiving checkups, medicines and specialist consultations at no cost.",
				ContentHi:   "जिला अस्पताल में आयोजित तीन दिवसीय निःशुल्क स्वास्थ्य शिविर में 2,000 से अधिक मरीजों की निःशुल्क जांच, दवा वितरण और विशेषज्ञ परामर्श के साथ समापन हुआ।",
				Slug:        "free-health-camp-2000-patients",
				ImageURL:    "https://images.unsplash.com/photo-1584982751601-97dcc096659c?w=800",
				Published:   true,
				PublishedAt: timePtr(now.Add(-7 * day)),
				CreatedAt:   now.Add(-7 * day),
				UpdatedAt:   now.Add(-7 * day),
			},
			{
				ID:          "news-3",
				TitleEn:     "Scholarship Scheme Extended to 500 More Students",
				TitleHi:     "छात्रवृत्ति योजना 500 और छात्रों तक बढ़ाई गई",
				ContentEn:   "The constituency scholarship scheme for meritorious students from economically weaker sections has been extended to cover 500 additional students this academic year.",
				ContentHi:   "आर्थिक रूप से कमजोर वर्गों के मेधावी छात्रों के लिए छात्रवृत्ति योजना इस शैक्षणिक वर्ष 500 अतिरिक्त छात्रों तक बढ़ा दी गई है।",
				Slug:        "scholarship-scheme-extended",
				Published:   true,
				PublishedAt: timePtr(now.Add(-14 * day)),
				CreatedAt:   now.Add(-14 * day),
				UpdatedAt:   now.Add(-14 * day),
			},
			{
				ID:        "news-4",
				TitleEn:   "Draft: Water Supply Upgrade Announcement",
				ContentEn: "Draft announcement for the upcoming water supply infrastructure upgrade across twelve villages.",
				Slug:      "water-supply-upgrade-draft",
				Published: false,
				CreatedAt: now.Add(-1 * day),
				UpdatedAt: now.Add(-1 * day),
			},
			{
				ID:        "news-5",
				TitleEn:   "Draft: Annual Report Summary",
				ContentEn: "Working draft of the annual constituency development report summary.",
				Slug:      "annual-report-summary-draft",
				Published: false,
				CreatedAt: now.Add(-3 * day),
				UpdatedAt: now.Add(-3 * day),
			},
		},

		Photos: []models.Photo{
			{
				ID:        "photo-1",
				TitleEn:   "Inauguration of the New Community Hall",
				TitleHi:   "नए सामुदायिक भवन का उद्घाटन",
				ImageURL:  "https://images.unsplash.com/photo-1511578314322-379afb476865?w=800",
				Category:  "events",
				Featured:  true,
				CreatedAt: now.Add(-1 * day),
				UpdatedAt: now.Add(-1 * day),
			},
			{
				ID:        "photo-2",
				TitleEn:   "Village Development Meeting",
				TitleHi:   "ग्राम विकास बैठक",
				ImageURL:  "https://images.unsplash.com/photo-1552664730-d307ca884978?w=800",
				Category:  "meetings",
				Featured:  true,
				CreatedAt: now.Add(-4 * day),
				UpdatedAt: now.Add(-4 * day),
			},
			{
				ID:        "photo-3",
				TitleEn:   "School Annual Day Celebration",
				TitleHi:   "विद्यालय वार्षिकोत्सव समारोह",
				ImageURL:  "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?w=800",
				Category:  "education",
				Featured:  true,
				CreatedAt: now.Add(-6 * day),
				UpdatedAt: now.Add(-6 * day),
			},
			{
				ID:        "photo-4",
				TitleEn:   "Tree Plantation Drive",
				TitleHi:   "वृक्षारोपण अभियान",
				ImageURL:  "https://images.unsplash.com/photo-1542601906990-b4d3fb778b09?w=800",
				Category:  "environment",
				Featured:  true,
				CreatedAt: now.Add(-10 * day),
				UpdatedAt: now.Add(-10 * day),
			},
			{
				ID:        "photo-5",
				TitleEn:   "Flood Relief Distribution",
				TitleHi:   "बाढ़ राहत सामग्री वितरण",
				ImageURL:  "https://images.unsplash.com/photo-1469571486292-0ba58a3f068b?w=800",
				Category:  "relief",
				Featured:  false,
				CreatedAt: now.Add(-20 * day),
				UpdatedAt: now.Add(-20 * day),
			},
			{
				ID:        "photo-6",
				TitleEn:   "Sports Tournament Prize Ceremony",
				ImageURL:  "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?w=800",
				Category:  "sports",
				Featured:  false,
				CreatedAt: now.Add(-30 * day),
				UpdatedAt: now.Add(-30 * day),
			},
		},

		Videos: []models.Video{
			{
				ID:           "video-1",
				TitleEn:      "Address on Rural Development",
				TitleHi:      "ग्रामीण विकास पर संबोधन",
				VideoURL:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
				ThumbnailURL: "https://images.unsplash.com/photo-1475721027785-f74eccf877e2?w=800",
				Category:     "speeches",
				Featured:     true,
				CreatedAt:    now.Add(-3 * day),
				UpdatedAt:    now.Add(-3 * day),
			},
			{
				ID:        "video-2",
				TitleEn:   "Assembly Session Highlights",
				TitleHi:   "विधानसभा सत्र की मुख्य बातें",
				VideoURL:  "https://www.youtube.com/watch?v=oHg5SJYRHA0",
				Category:  "assembly",
				Featured:  true,
				CreatedAt: now.Add(-9 * day),
				UpdatedAt: now.Add(-9 * day),
			},
			{
				ID:        "video-3",
				TitleEn:   "Interview: Vision for the Constituency",
				VideoURL:  "https://www.youtube.com/watch?v=ZZ5LpwO-An4",
				Category:  "interviews",
				Featured:  false,
				CreatedAt: now.Add(-15 * day),
				UpdatedAt: now.Add(-15 * day),
			},
		},

		Events: []models.Event{
			{
				ID:            "event-1",
				TitleEn:       "Public Grievance Redressal Camp",
				TitleHi:       "जन शिकायत निवारण शिविर",
				DescriptionEn: "Monthly camp where residents can submit grievances directly and track earlier complaints.",
				DescriptionHi: "मासिक शिविर जहाँ निवासी सीधे शिकायतें दर्ज करा सकते हैं और पुरानी शिकायतों की स्थिति जान सकते हैं।",
				Date:          now.Add(5 * day),
				Location:      "Constituency Office",
				Status:        models.EventUpcoming,
				CreatedAt:     now.Add(-8 * day),
				UpdatedAt:     now.Add(-8 * day),
			},
			{
				ID:            "event-2",
				TitleEn:       "Farmers' Assistance Workshop",
				TitleHi:       "किसान सहायता कार्यशाला",
				DescriptionEn: "Workshop on crop insurance enrolment and subsidy schemes for the rabi season.",
				DescriptionHi: "रबी सीजन के लिए फसल बीमा नामांकन और सब्सिडी योजनाओं पर कार्यशाला।",
				Date:          now.Add(12 * day),
				Location:      "Agricultural Market Yard",
				Status:        models.EventUpcoming,
				CreatedAt:     now.Add(-5 * day),
				UpdatedAt:     now.Add(-5 * day),
			},
			{
				ID:            "event-3",
				TitleEn:       "Youth Employment Fair",
				TitleHi:       "युवा रोजगार मेला",
				DescriptionEn: "Job fair with thirty participating employers across manufacturing and services.",
				DescriptionHi: "विनिर्माण और सेवा क्षेत्र के तीस नियोक्ताओं के साथ रोजगार मेला।",
				Date:          now.Add(-10 * day),
				Location:      "Town Hall Grounds",
				Status:        models.EventPast,
				CreatedAt:     now.Add(-40 * day),
				UpdatedAt:     now.Add(-9 * day),
			},
			{
				ID:            "event-4",
				TitleEn:       "River Cleanup Drive",
				DescriptionEn: "Community cleanup drive along the riverbank, postponed due to weather.",
				Date:          now.Add(2 * day),
				Location:      "Riverside Ghat",
				Status:        models.EventCancelled,
				CreatedAt:     now.Add(-12 * day),
				UpdatedAt:     now.Add(-2 * day),
			},
		},

		Achievements: []models.Achievement{
			{
				ID:            "achievement-1",
				TitleEn:       "100% Village Electrification",
				TitleHi:       "शत-प्रतिशत ग्राम विद्युतीकरण",
				DescriptionEn: "Every village in the constituency connected to the power grid.",
				DescriptionHi: "क्षेत्र का हर गाँव विद्युत ग्रिड से जुड़ा।",
				Year:          2023,
				Category:      "infrastructure",
				CreatedAt:     now.Add(-300 * day),
				UpdatedAt:     now.Add(-300 * day),
			},
			{
				ID:            "achievement-2",
				TitleEn:       "50 km of New Rural Roads",
				TitleHi:       "50 किमी नई ग्रामीण सड़कें",
				DescriptionEn: "Fifty kilometres of all-weather rural roads completed under the state scheme.",
				DescriptionHi: "राज्य योजना के अंतर्गत पचास किलोमीटर बारहमासी ग्रामीण सड़कें पूर्ण।",
				Year:          2024,
				Category:      "infrastructure",
				CreatedAt:     now.Add(-200 * day),
				UpdatedAt:     now.Add(-200 * day),
			},
			{
				ID:            "achievement-3",
				TitleEn:       "New Primary Health Centres",
				TitleHi:       "नए प्राथमिक स्वास्थ्य केंद्र",
				DescriptionEn: "Three primary health centres opened in underserved blocks.",
				DescriptionHi: "वंचित क्षेत्रों में तीन प्राथमिक स्वास्थ्य केंद्र खोले गए।",
				Year:          2024,
				Category:      "health",
				CreatedAt:     now.Add(-150 * day),
				UpdatedAt:     now.Add(-150 * day),
			},
			{
				ID:            "achievement-4",
				TitleEn:       "Digital Literacy for 10,000 Citizens",
				TitleHi:       "10,000 नागरिकों के लिए डिजिटल साक्षरता",
				DescriptionEn: "Ten thousand citizens trained under the digital literacy mission.",
				DescriptionHi: "डिजिटल साक्षरता मिशन के अंतर्गत दस हज़ार नागरिक प्रशिक्षित।",
				Year:          2022,
				Category:      "education",
				CreatedAt:     now.Add(-500 * day),
				UpdatedAt:     now.Add(-500 * day),
			},
			{
				ID:            "achievement-5",
				TitleEn:       "Clean Drinking Water Mission",
				TitleHi:       "स्वच्छ पेयजल मिशन",
				DescriptionEn: "Piped drinking water reached forty villages ahead of schedule.",
				DescriptionHi: "चालीस गाँवों तक समय से पहले नल का स्वच्छ पेयजल पहुँचा।",
				Year:          2025,
				Category:      "infrastructure",
				CreatedAt:     now.Add(-60 * day),
				UpdatedAt:     now.Add(-60 * day),
			},
			{
				ID:            "achievement-6",
				TitleEn:       "Women's Self-Help Group Expansion",
				TitleHi:       "महिला स्वयं सहायता समूह विस्तार",
				DescriptionEn: "Two hundred new self-help groups formed and linked to bank credit.",
				DescriptionHi: "दो सौ नए स्वयं सहायता समूह गठित और बैंक ऋण से जोड़े गए।",
				Year:          2023,
				Category:      "welfare",
				CreatedAt:     now.Add(-250 * day),
				UpdatedAt:     now.Add(-250 * day),
			},
		},
	}
}
