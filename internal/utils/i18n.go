package utils

// Server-side strings for the fixed keys the API emits directly: validation
// messages, wizard notices, and the instructions copy. Screen copy beyond
// these lives in the frontend.

var translations = map[string]map[string]string{
	"en": {
		"health.ok": "ok",

		"instructions.title": "Before you begin",
		"instructions.body":  "Read each situation and choose the option closest to what you would actually do. There are no right or wrong answers. Short feedback appears after every choice, and your overall result at the end.",

		"wizard.selection_required": "Please select an option before continuing.",
		"wizard.session_not_found":  "This session has expired or does not exist. Please start again.",

		"notice.sink_failed": "We could not save your submission right now. Your results are still shown below.",

		"cert.heading":    "Certificate of Completion",
		"cert.subheading": "Character Strengths Self-Assessment",
		"cert.awarded":    "This certificate is awarded to",
		"cert.age":        "Age",
		"cert.total":      "Overall Score",
		"cert.issued":     "Issued on",

		"validate.name.required":     "Please enter your name.",
		"validate.name.length":       "Name must be between 2 and 100 characters.",
		"validate.age.range":         "Age must be between 1 and 120.",
		"validate.gender.unknown":    "Please choose one of the listed gender options.",
		"validate.dial_code.invalid": "Enter a dialling code like +91.",
		"validate.mobile.invalid":    "Enter a valid mobile number (6 to 15 digits).",
		"validate.email.invalid":     "Enter a valid email address.",
		"validate.state.unknown":     "Please choose a state from the list.",
		"validate.district.required": "Please choose a district.",
		"validate.district.mismatch": "The chosen district does not belong to the selected state.",
	},
	"hi": {
		"health.ok": "ठीक है",

		"instructions.title": "शुरू करने से पहले",
		"instructions.body":  "हर परिस्थिति को पढ़ें और वह विकल्प चुनें जो आपके वास्तविक व्यवहार के सबसे करीब हो। कोई उत्तर सही या गलत नहीं है। हर चुनाव के बाद संक्षिप्त प्रतिक्रिया दिखेगी, और अंत में आपका समग्र परिणाम।",

		"wizard.selection_required": "आगे बढ़ने से पहले कृपया एक विकल्प चुनें।",
		"wizard.session_not_found":  "यह सत्र समाप्त हो चुका है या मौजूद नहीं है। कृपया फिर से शुरू करें।",

		"notice.sink_failed": "हम अभी आपका विवरण सहेज नहीं सके। आपके परिणाम नीचे दिखाए गए हैं।",

		"cert.heading":    "पूर्णता प्रमाणपत्र",
		"cert.subheading": "चरित्र शक्ति स्व-मूल्यांकन",
		"cert.awarded":    "यह प्रमाणपत्र प्रदान किया जाता है",
		"cert.age":        "आयु",
		"cert.total":      "कुल अंक",
		"cert.issued":     "जारी दिनांक",

		"validate.name.required":     "कृपया अपना नाम दर्ज करें।",
		"validate.name.length":       "नाम 2 से 100 अक्षरों के बीच होना चाहिए।",
		"validate.age.range":         "आयु 1 से 120 के बीच होनी चाहिए।",
		"validate.gender.unknown":    "कृपया सूची में दिए गए विकल्पों में से एक चुनें।",
		"validate.dial_code.invalid": "+91 जैसा डायलिंग कोड दर्ज करें।",
		"validate.mobile.invalid":    "मान्य मोबाइल नंबर दर्ज करें (6 से 15 अंक)।",
		"validate.email.invalid":     "मान्य ईमेल पता दर्ज करें।",
		"validate.state.unknown":     "कृपया सूची से राज्य चुनें।",
		"validate.district.required": "कृपया ज़िला चुनें।",
		"validate.district.mismatch": "चुना गया ज़िला चुने हुए राज्य का नहीं है।",
	},
}

// T returns the translated string for key in locale; falls back to English,
// then to the key itself.
func T(locale, key string) string {
	if m, ok := translations[locale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := translations["en"]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}
