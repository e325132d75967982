package catalog

// Per-(trait, score) feedback. Each slice may carry several equally valid
// phrasings; the engine picks one. The shipped content has a single variant
// per pair.
var defaultFeedback = map[Trait]map[int][]Text{
	TraitGratitude: {
		1: {{
			EN: "You may overlook the help you receive; pausing to acknowledge it can strengthen your bonds.",
			HI: "आप मिली हुई मदद को अनदेखा कर सकते हैं; उसे स्वीकार करने के लिए रुकना आपके रिश्तों को मज़बूत कर सकता है।",
		}},
		2: {{
			EN: "You notice kindness but hold back from expressing thanks; saying it aloud goes a long way.",
			HI: "आप दयालुता को महसूस करते हैं लेकिन धन्यवाद कहने से हिचकते हैं; इसे खुलकर कहना बहुत मायने रखता है।",
		}},
		3: {{
			EN: "You readily appreciate others, and your gratitude makes people feel valued.",
			HI: "आप दूसरों की सराहना सहजता से करते हैं, और आपकी कृतज्ञता लोगों को महत्त्वपूर्ण महसूस कराती है।",
		}},
	},
	TraitResilience: {
		1: {{
			EN: "Setbacks tend to weigh on you; treating them as lessons can make the next attempt easier.",
			HI: "असफलताएँ आप पर भारी पड़ती हैं; उन्हें सीख मानने से अगला प्रयास आसान हो सकता है।",
		}},
		2: {{
			EN: "You recover from disappointments with time; small steady routines can speed that recovery.",
			HI: "आप समय के साथ निराशाओं से उबर जाते हैं; छोटी-छोटी नियमित आदतें इस प्रक्रिया को तेज़ कर सकती हैं।",
		}},
		3: {{
			EN: "You bounce back quickly and turn setbacks into fuel for the next attempt.",
			HI: "आप जल्दी सँभल जाते हैं और असफलताओं को अगले प्रयास की प्रेरणा बना लेते हैं।",
		}},
	},
	TraitEmpathy: {
		1: {{
			EN: "Others' feelings may pass you by; slowing down to notice them can deepen your friendships.",
			HI: "दूसरों की भावनाएँ आपसे छूट सकती हैं; उन पर ध्यान देने के लिए थोड़ा ठहरना आपकी मित्रता को गहरा कर सकता है।",
		}},
		2: {{
			EN: "You sense how others feel but hesitate to act on it; a small gesture is often enough.",
			HI: "आप दूसरों की भावनाओं को समझते हैं लेकिन उन पर कदम उठाने में हिचकते हैं; एक छोटा-सा प्रयास अक्सर काफ़ी होता है।",
		}},
		3: {{
			EN: "You tune into others' feelings naturally, and people find comfort in your company.",
			HI: "आप सहज रूप से दूसरों की भावनाओं को समझ लेते हैं, और लोग आपके साथ सुकून पाते हैं।",
		}},
	},
	TraitSociability: {
		1: {{
			EN: "Large groups drain you; starting with one-to-one conversations can make socialising easier.",
			HI: "बड़े समूह आपको थका देते हैं; आमने-सामने की बातचीत से शुरुआत मेलजोल को आसान बना सकती है।",
		}},
		2: {{
			EN: "You are comfortable in familiar company; stretching a little beyond it can open new doors.",
			HI: "आप जाने-पहचाने लोगों के बीच सहज हैं; उससे थोड़ा आगे बढ़ना नए रास्ते खोल सकता है।",
		}},
		3: {{
			EN: "You enjoy meeting people, and your warmth makes gatherings livelier.",
			HI: "आपको लोगों से मिलना अच्छा लगता है, और आपकी आत्मीयता महफ़िलों में जान डाल देती है।",
		}},
	},
	TraitSocialCognition: {
		1: {{
			EN: "Unspoken cues often slip past you; watching how people react can sharpen your reading of situations.",
			HI: "अनकहे संकेत अक्सर आपसे छूट जाते हैं; लोगों की प्रतिक्रियाओं पर ध्यान देना परिस्थितियों की आपकी समझ को तेज़ कर सकता है।",
		}},
		2: {{
			EN: "You pick up on social signals but act on them cautiously; trusting your reading more will help.",
			HI: "आप सामाजिक संकेतों को पकड़ लेते हैं लेकिन सावधानी से कदम उठाते हैं; अपनी समझ पर अधिक भरोसा करना मददगार होगा।",
		}},
		3: {{
			EN: "You read the room quickly and often know what others need before they say it.",
			HI: "आप माहौल को तुरंत भाँप लेते हैं और अक्सर बिना कहे समझ जाते हैं कि दूसरों को क्या चाहिए।",
		}},
	},
	TraitCourage: {
		1: {{
			EN: "Speaking up feels risky to you; remember that small acts of courage count too.",
			HI: "आवाज़ उठाना आपको जोखिम भरा लगता है; याद रखें कि साहस के छोटे कदम भी मायने रखते हैं।",
		}},
		2: {{
			EN: "You stand up for what is right when the moment feels safe; practice will widen that comfort zone.",
			HI: "जब स्थिति सुरक्षित लगती है तब आप सही के पक्ष में खड़े होते हैं; अभ्यास इस दायरे को बढ़ाएगा।",
		}},
		3: {{
			EN: "You act on your convictions even when it is uncomfortable, and others draw strength from it.",
			HI: "आप असहज स्थिति में भी अपने विश्वास पर अमल करते हैं, और दूसरों को इससे हौसला मिलता है।",
		}},
	},
}

// Total-score buckets for the six-question schedule. Together they cover
// every total from 6 to 18.
var defaultBuckets = []Bucket{
	{
		Min: 6, Max: 9,
		Title: Text{EN: "Emerging Self-Awareness", HI: "उभरती आत्म-जागरूकता"},
		Body: Text{
			EN: "You are at the beginning of understanding your strengths. Small, deliberate steps in everyday situations will help each of these qualities grow.",
			HI: "आप अपनी शक्तियों को समझने की शुरुआत में हैं। रोज़मर्रा की परिस्थितियों में छोटे, सोचे-समझे कदम इन गुणों को बढ़ने में मदद करेंगे।",
		},
	},
	{
		Min: 10, Max: 14,
		Title: Text{EN: "Growing Strengths", HI: "बढ़ती शक्तियाँ"},
		Body: Text{
			EN: "You show a balanced mix of these qualities and apply them when situations call for it. With conscious practice they can become consistent habits.",
			HI: "आप इन गुणों का संतुलित मिश्रण दिखाते हैं और आवश्यकता पड़ने पर इन्हें अपनाते हैं। सजग अभ्यास से ये स्थायी आदतें बन सकती हैं।",
		},
	},
	{
		Min: 15, Max: 18,
		Title: Text{EN: "Flourishing Character", HI: "खिलता हुआ व्यक्तित्व"},
		Body: Text{
			EN: "These qualities come naturally to you and show consistently in how you treat people and face challenges. Keep nurturing them, and let others learn from your example.",
			HI: "ये गुण आपमें सहज रूप से हैं और लोगों के साथ आपके व्यवहार तथा चुनौतियों का सामना करने में लगातार दिखते हैं। इन्हें सँवारते रहें, और दूसरों को अपने उदाहरण से सीखने दें।",
		},
	},
}
