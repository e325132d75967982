package catalog

// Default returns the shipped six-question assessment. Questions appear in
// fixed order; options are listed the way they are presented, so scores are
// deliberately not in ascending order.
func Default() *Set {
	return &Set{
		Questions: defaultQuestions,
		Feedback:  defaultFeedback,
		Buckets:   defaultBuckets,
	}
}

var defaultQuestions = []Question{
	{
		ID:    1,
		Trait: TraitGratitude,
		Prompt: Text{
			EN: "A classmate stays back after school to help you finish a project you were struggling with. What do you do next?",
			HI: "एक सहपाठी स्कूल के बाद रुककर उस परियोजना को पूरा करने में आपकी मदद करता है जिसमें आपको कठिनाई हो रही थी। आप आगे क्या करते हैं?",
		},
		Options: [3]Option{
			{ID: "a", Score: 3, Label: Text{
				EN: "Thank them sincerely and look for a way to return the favour.",
				HI: "उन्हें दिल से धन्यवाद देते हैं और बदले में मदद करने का तरीका खोजते हैं।",
			}},
			{ID: "b", Score: 1, Label: Text{
				EN: "Feel relieved and move on without mentioning it.",
				HI: "राहत महसूस करते हैं और बिना कुछ कहे आगे बढ़ जाते हैं।",
			}},
			{ID: "c", Score: 2, Label: Text{
				EN: "Mention it casually the next time you meet them.",
				HI: "अगली बार मिलने पर यूँ ही इसका ज़िक्र कर देते हैं।",
			}},
		},
	},
	{
		ID:    2,
		Trait: TraitResilience,
		Prompt: Text{
			EN: "You prepare hard for a competition but do not win. How do you respond?",
			HI: "आप एक प्रतियोगिता के लिए कड़ी तैयारी करते हैं लेकिन जीत नहीं पाते। आप कैसे प्रतिक्रिया देते हैं?",
		},
		Options: [3]Option{
			{ID: "a", Score: 1, Label: Text{
				EN: "Decide that such competitions are not for you.",
				HI: "तय कर लेते हैं कि ऐसी प्रतियोगिताएँ आपके लिए नहीं हैं।",
			}},
			{ID: "b", Score: 3, Label: Text{
				EN: "Work out what went wrong and start preparing for the next one.",
				HI: "समझते हैं कि कहाँ चूक हुई और अगली प्रतियोगिता की तैयारी शुरू कर देते हैं।",
			}},
			{ID: "c", Score: 2, Label: Text{
				EN: "Feel low for a few days, then slowly try again.",
				HI: "कुछ दिन उदास रहते हैं, फिर धीरे-धीरे दोबारा कोशिश करते हैं।",
			}},
		},
	},
	{
		ID:    3,
		Trait: TraitEmpathy,
		Prompt: Text{
			EN: "A new student is sitting alone at lunch and looks upset. What do you do?",
			HI: "एक नया विद्यार्थी दोपहर के भोजन के समय अकेला बैठा है और उदास दिख रहा है। आप क्या करते हैं?",
		},
		Options: [3]Option{
			{ID: "a", Score: 2, Label: Text{
				EN: "Notice them, but stay with your own group.",
				HI: "उन पर ध्यान देते हैं, लेकिन अपने ही समूह के साथ रहते हैं।",
			}},
			{ID: "b", Score: 1, Label: Text{
				EN: "Carry on with your lunch; it is not your concern.",
				HI: "अपना भोजन जारी रखते हैं; यह आपकी चिंता का विषय नहीं है।",
			}},
			{ID: "c", Score: 3, Label: Text{
				EN: "Go and sit with them and ask how they are doing.",
				HI: "उनके पास जाकर बैठते हैं और उनका हाल पूछते हैं।",
			}},
		},
	},
	{
		ID:    4,
		Trait: TraitSociability,
		Prompt: Text{
			EN: "Your colony is organising a festival evening and needs volunteers to welcome guests. What do you do?",
			HI: "आपकी कॉलोनी एक उत्सव की शाम आयोजित कर रही है और अतिथियों के स्वागत के लिए स्वयंसेवकों की आवश्यकता है। आप क्या करते हैं?",
		},
		Options: [3]Option{
			{ID: "a", Score: 3, Label: Text{
				EN: "Volunteer happily; you enjoy meeting new people.",
				HI: "खुशी से स्वयंसेवा करते हैं; आपको नए लोगों से मिलना अच्छा लगता है।",
			}},
			{ID: "b", Score: 2, Label: Text{
				EN: "Help from the background where you do not have to talk much.",
				HI: "पीछे रहकर मदद करते हैं जहाँ अधिक बात नहीं करनी पड़े।",
			}},
			{ID: "c", Score: 1, Label: Text{
				EN: "Stay away; large gatherings are not for you.",
				HI: "दूर रहते हैं; बड़े आयोजन आपके लिए नहीं हैं।",
			}},
		},
	},
	{
		ID:    5,
		Trait: TraitSocialCognition,
		Prompt: Text{
			EN: "During a group discussion, two friends suddenly go quiet after disagreeing with each other. What do you do?",
			HI: "समूह चर्चा के दौरान, आपस में असहमति के बाद दो मित्र अचानक चुप हो जाते हैं। आप क्या करते हैं?",
		},
		Options: [3]Option{
			{ID: "a", Score: 1, Label: Text{
				EN: "Assume they are fine and continue the discussion.",
				HI: "मान लेते हैं कि सब ठीक है और चर्चा जारी रखते हैं।",
			}},
			{ID: "b", Score: 3, Label: Text{
				EN: "Sense the tension and gently steer the talk so both feel heard.",
				HI: "तनाव को भाँपते हैं और बातचीत को धीरे से ऐसा मोड़ देते हैं कि दोनों की बात सुनी जाए।",
			}},
			{ID: "c", Score: 2, Label: Text{
				EN: "Feel something is off, but wait for someone else to handle it.",
				HI: "महसूस करते हैं कि कुछ गड़बड़ है, लेकिन किसी और के संभालने की प्रतीक्षा करते हैं।",
			}},
		},
	},
	{
		ID:    6,
		Trait: TraitCourage,
		Prompt: Text{
			EN: "You see a younger student being teased by seniors in the corridor. What do you do?",
			HI: "आप गलियारे में देखते हैं कि वरिष्ठ छात्र एक छोटे विद्यार्थी को चिढ़ा रहे हैं। आप क्या करते हैं?",
		},
		Options: [3]Option{
			{ID: "a", Score: 1, Label: Text{
				EN: "Walk past quietly to avoid trouble.",
				HI: "परेशानी से बचने के लिए चुपचाप आगे बढ़ जाते हैं।",
			}},
			{ID: "b", Score: 2, Label: Text{
				EN: "Tell a friend about it later.",
				HI: "बाद में किसी मित्र को इसके बारे में बताते हैं।",
			}},
			{ID: "c", Score: 3, Label: Text{
				EN: "Step in politely and ask them to stop, or fetch a teacher.",
				HI: "विनम्रता से बीच में आकर उन्हें रोकते हैं, या शिक्षक को बुला लाते हैं।",
			}},
		},
	},
}
