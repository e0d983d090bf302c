// Package i18n holds the English and Arabic string tables of the site
// chrome and the display-language preference handling.
package i18n

// Lang is a display language code.
type Lang string

const (
	// LangEnglish renders the site left-to-right in English.
	LangEnglish Lang = "en"
	// LangArabic renders the site right-to-left in Arabic.
	LangArabic Lang = "ar"

	// CookieKey is the fixed key the language preference is persisted
	// under. Read at startup of every request, written on every change.
	CookieKey = "preferred_language"

	// Default is used when no preference has been stored yet.
	Default = LangEnglish
)

// dictionaries maps language -> key -> translated string. Content
// entities carry their own bilingual columns; these tables cover the
// site chrome only.
var dictionaries = map[Lang]map[string]string{ //nolint:gochecknoglobals
	LangEnglish: {
		"nav.home":         "Home",
		"nav.services":     "Services",
		"nav.about":        "About Us",
		"nav.blog":         "Blog",
		"nav.contact":      "Contact",
		"home.hero":        "Forensic & Civil Protection Consulting",
		"home.services":    "Our Services",
		"home.testimonial": "What Our Clients Say",
		"home.certified":   "Certifications & Accreditations",
		"blog.readmore":    "Read more",
		"blog.minutes":     "min read",
		"contact.title":    "Get in Touch",
		"contact.name":     "Name",
		"contact.email":    "Email",
		"contact.subject":  "Subject",
		"contact.message":  "Message",
		"contact.send":     "Send Message",
		"contact.sent":     "Thank you, your message has been received.",
		"contact.failed":   "Your message could not be sent. Please try again.",
		"chat.fallback":    "Thank you for your message. Our team will get back to you shortly.",
	},
	LangArabic: {
		"nav.home":         "الرئيسية",
		"nav.services":     "خدماتنا",
		"nav.about":        "من نحن",
		"nav.blog":         "المدونة",
		"nav.contact":      "اتصل بنا",
		"home.hero":        "استشارات الأدلة الجنائية والحماية المدنية",
		"home.services":    "خدماتنا",
		"home.testimonial": "آراء عملائنا",
		"home.certified":   "الشهادات والاعتمادات",
		"blog.readmore":    "اقرأ المزيد",
		"blog.minutes":     "دقائق قراءة",
		"contact.title":    "تواصل معنا",
		"contact.name":     "الاسم",
		"contact.email":    "البريد الإلكتروني",
		"contact.subject":  "الموضوع",
		"contact.message":  "الرسالة",
		"contact.send":     "إرسال الرسالة",
		"contact.sent":     "شكراً لك، تم استلام رسالتك.",
		"contact.failed":   "تعذر إرسال رسالتك. يرجى المحاولة مرة أخرى.",
		"chat.fallback":    "شكراً لرسالتك. سيتواصل معك فريقنا قريباً.",
	},
}

// Parse returns the Lang for a stored preference value, falling back to
// the default for anything unknown.
func Parse(value string) Lang {
	if Lang(value) == LangArabic {
		return LangArabic
	}

	return Default
}

// T translates the key for the given language. Missing keys fall back to
// English, then to the key itself so broken translations stay visible.
func T(lang Lang, key string) string {
	if s, ok := dictionaries[lang][key]; ok {
		return s
	}

	if s, ok := dictionaries[Default][key]; ok {
		return s
	}

	return key
}

// Dir returns the document text direction of the language.
func Dir(lang Lang) string {
	if lang == LangArabic {
		return "rtl"
	}

	return "ltr"
}
