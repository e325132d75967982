package geo

var states = []State{
	{
		Name: "Andaman and Nicobar Islands", NameHI: "अंडमान और निकोबार द्वीपसमूह",
		Districts: []string{"Nicobar", "North and Middle Andaman", "South Andaman"},
	},
	{
		Name: "Andhra Pradesh", NameHI: "आंध्र प्रदेश",
		Districts: []string{
			"Anantapur", "Chittoor", "East Godavari", "Guntur", "Kadapa", "Krishna", "Kurnool",
			"Nellore", "Prakasam", "Srikakulam", "Visakhapatnam", "Vizianagaram", "West Godavari",
		},
	},
	{
		Name: "Arunachal Pradesh", NameHI: "अरुणाचल प्रदेश",
		Districts: []string{
			"Anjaw", "Changlang", "Dibang Valley", "East Kameng", "East Siang", "Lohit",
			"Lower Dibang Valley", "Lower Subansiri", "Namsai", "Papum Pare", "Tawang",
			"Tirap", "Upper Siang", "Upper Subansiri", "West Kameng", "West Siang",
		},
	},
	{
		Name: "Assam", NameHI: "असम",
		Districts: []string{
			"Baksa", "Barpeta", "Bongaigaon", "Cachar", "Darrang", "Dhemaji", "Dhubri",
			"Dibrugarh", "Goalpara", "Golaghat", "Hailakandi", "Jorhat", "Kamrup",
			"Kamrup Metropolitan", "Karbi Anglong", "Karimganj", "Kokrajhar", "Lakhimpur",
			"Morigaon", "Nagaon", "Nalbari", "Sivasagar", "Sonitpur", "Tinsukia", "Udalguri",
		},
	},
	{
		Name: "Bihar", NameHI: "बिहार",
		Districts: []string{
			"Araria", "Arwal", "Aurangabad", "Banka", "Begusarai", "Bhagalpur", "Bhojpur",
			"Buxar", "Darbhanga", "East Champaran", "Gaya", "Gopalganj", "Jamui", "Jehanabad",
			"Kaimur", "Katihar", "Khagaria", "Kishanganj", "Lakhisarai", "Madhepura",
			"Madhubani", "Munger", "Muzaffarpur", "Nalanda", "Nawada", "Patna", "Purnia",
			"Rohtas", "Saharsa", "Samastipur", "Saran", "Sheikhpura", "Sheohar", "Sitamarhi",
			"Siwan", "Supaul", "Vaishali", "West Champaran",
		},
	},
	{
		Name: "Chandigarh", NameHI: "चंडीगढ़",
		Districts: []string{"Chandigarh"},
	},
	{
		Name: "Chhattisgarh", NameHI: "छत्तीसगढ़",
		Districts: []string{
			"Balod", "Baloda Bazar", "Balrampur", "Bastar", "Bemetara", "Bijapur", "Bilaspur",
			"Dantewada", "Dhamtari", "Durg", "Gariaband", "Janjgir-Champa", "Jashpur",
			"Kabirdham", "Kanker", "Kondagaon", "Korba", "Koriya", "Mahasamund", "Mungeli",
			"Narayanpur", "Raigarh", "Raipur", "Rajnandgaon", "Sukma", "Surajpur", "Surguja",
		},
	},
	{
		Name: "Dadra and Nagar Haveli and Daman and Diu", NameHI: "दादरा और नगर हवेली और दमन और दीव",
		Districts: []string{"Dadra and Nagar Haveli", "Daman", "Diu"},
	},
	{
		Name: "Delhi", NameHI: "दिल्ली",
		Districts: []string{
			"Central Delhi", "East Delhi", "New Delhi", "North Delhi", "North East Delhi",
			"North West Delhi", "Shahdara", "South Delhi", "South East Delhi",
			"South West Delhi", "West Delhi",
		},
	},
	{
		Name: "Goa", NameHI: "गोवा",
		Districts: []string{"North Goa", "South Goa"},
	},
	{
		Name: "Gujarat", NameHI: "गुजरात",
		Districts: []string{
			"Ahmedabad", "Amreli", "Anand", "Aravalli", "Banaskantha", "Bharuch", "Bhavnagar",
			"Botad", "Chhota Udaipur", "Dahod", "Dang", "Devbhoomi Dwarka", "Gandhinagar",
			"Gir Somnath", "Jamnagar", "Junagadh", "Kheda", "Kutch", "Mahisagar", "Mehsana",
			"Morbi", "Narmada", "Navsari", "Panchmahal", "Patan", "Porbandar", "Rajkot",
			"Sabarkantha", "Surat", "Surendranagar", "Tapi", "Vadodara", "Valsad",
		},
	},
	{
		Name: "Haryana", NameHI: "हरियाणा",
		Districts: []string{
			"Ambala", "Bhiwani", "Charkhi Dadri", "Faridabad", "Fatehabad", "Gurugram",
			"Hisar", "Jhajjar", "Jind", "Kaithal", "Karnal", "Kurukshetra", "Mahendragarh",
			"Nuh", "Palwal", "Panchkula", "Panipat", "Rewari", "Rohtak", "Sirsa", "Sonipat",
			"Yamunanagar",
		},
	},
	{
		Name: "Himachal Pradesh", NameHI: "हिमाचल प्रदेश",
		Districts: []string{
			"Bilaspur", "Chamba", "Hamirpur", "Kangra", "Kinnaur", "Kullu", "Lahaul and Spiti",
			"Mandi", "Shimla", "Sirmaur", "Solan", "Una",
		},
	},
	{
		Name: "Jammu and Kashmir", NameHI: "जम्मू और कश्मीर",
		Districts: []string{
			"Anantnag", "Bandipora", "Baramulla", "Budgam", "Doda", "Ganderbal", "Jammu",
			"Kathua", "Kishtwar", "Kulgam", "Kupwara", "Poonch", "Pulwama", "Rajouri",
			"Ramban", "Reasi", "Samba", "Shopian", "Srinagar", "Udhampur",
		},
	},
	{
		Name: "Jharkhand", NameHI: "झारखंड",
		Districts: []string{
			"Bokaro", "Chatra", "Deoghar", "Dhanbad", "Dumka", "East Singhbhum", "Garhwa",
			"Giridih", "Godda", "Gumla", "Hazaribagh", "Jamtara", "Khunti", "Koderma",
			"Latehar", "Lohardaga", "Pakur", "Palamu", "Ramgarh", "Ranchi", "Sahibganj",
			"Seraikela-Kharsawan", "Simdega", "West Singhbhum",
		},
	},
	{
		Name: "Karnataka", NameHI: "कर्नाटक",
		Districts: []string{
			"Bagalkot", "Ballari", "Belagavi", "Bengaluru Rural", "Bengaluru Urban", "Bidar",
			"Chamarajanagar", "Chikkaballapur", "Chikkamagaluru", "Chitradurga",
			"Dakshina Kannada", "Davanagere", "Dharwad", "Gadag", "Hassan", "Haveri",
			"Kalaburagi", "Kodagu", "Kolar", "Koppal", "Mandya", "Mysuru", "Raichur",
			"Ramanagara", "Shivamogga", "Tumakuru", "Udupi", "Uttara Kannada", "Vijayapura",
			"Yadgir",
		},
	},
	{
		Name: "Kerala", NameHI: "केरल",
		Districts: []string{
			"Alappuzha", "Ernakulam", "Idukki", "Kannur", "Kasaragod", "Kollam", "Kottayam",
			"Kozhikode", "Malappuram", "Palakkad", "Pathanamthitta", "Thiruvananthapuram",
			"Thrissur", "Wayanad",
		},
	},
	{
		Name: "Ladakh", NameHI: "लद्दाख",
		Districts: []string{"Kargil", "Leh"},
	},
	{
		Name: "Lakshadweep", NameHI: "लक्षद्वीप",
		Districts: []string{"Lakshadweep"},
	},
	{
		Name: "Madhya Pradesh", NameHI: "मध्य प्रदेश",
		Districts: []string{
			"Agar Malwa", "Alirajpur", "Anuppur", "Ashoknagar", "Balaghat", "Barwani", "Betul",
			"Bhind", "Bhopal", "Burhanpur", "Chhatarpur", "Chhindwara", "Damoh", "Datia",
			"Dewas", "Dhar", "Dindori", "Guna", "Gwalior", "Harda", "Hoshangabad", "Indore",
			"Jabalpur", "Jhabua", "Katni", "Khandwa", "Khargone", "Mandla", "Mandsaur",
			"Morena", "Narsinghpur", "Neemuch", "Panna", "Raisen", "Rajgarh", "Ratlam",
			"Rewa", "Sagar", "Satna", "Sehore", "Seoni", "Shahdol", "Shajapur", "Sheopur",
			"Shivpuri", "Sidhi", "Singrauli", "Tikamgarh", "Ujjain", "Umaria", "Vidisha",
		},
	},
	{
		Name: "Maharashtra", NameHI: "महाराष्ट्र",
		Districts: []string{
			"Ahmednagar", "Akola", "Amravati", "Aurangabad", "Beed", "Bhandara", "Buldhana",
			"Chandrapur", "Dhule", "Gadchiroli", "Gondia", "Hingoli", "Jalgaon", "Jalna",
			"Kolhapur", "Latur", "Mumbai City", "Mumbai Suburban", "Nagpur", "Nanded",
			"Nandurbar", "Nashik", "Osmanabad", "Palghar", "Parbhani", "Pune", "Raigad",
			"Ratnagiri", "Sangli", "Satara", "Sindhudurg", "Solapur", "Thane", "Wardha",
			"Washim", "Yavatmal",
		},
	},
	{
		Name: "Manipur", NameHI: "मणिपुर",
		Districts: []string{
			"Bishnupur", "Chandel", "Churachandpur", "Imphal East", "Imphal West", "Jiribam",
			"Kakching", "Kamjong", "Kangpokpi", "Noney", "Pherzawl", "Senapati", "Tamenglong",
			"Tengnoupal", "Thoubal", "Ukhrul",
		},
	},
	{
		Name: "Meghalaya", NameHI: "मेघालय",
		Districts: []string{
			"East Garo Hills", "East Jaintia Hills", "East Khasi Hills", "North Garo Hills",
			"Ri Bhoi", "South Garo Hills", "South West Garo Hills", "South West Khasi Hills",
			"West Garo Hills", "West Jaintia Hills", "West Khasi Hills",
		},
	},
	{
		Name: "Mizoram", NameHI: "मिज़ोरम",
		Districts: []string{
			"Aizawl", "Champhai", "Kolasib", "Lawngtlai", "Lunglei", "Mamit", "Saiha",
			"Serchhip",
		},
	},
	{
		Name: "Nagaland", NameHI: "नागालैंड",
		Districts: []string{
			"Dimapur", "Kiphire", "Kohima", "Longleng", "Mokokchung", "Mon", "Peren", "Phek",
			"Tuensang", "Wokha", "Zunheboto",
		},
	},
	{
		Name: "Odisha", NameHI: "ओडिशा",
		Districts: []string{
			"Angul", "Balangir", "Balasore", "Bargarh", "Bhadrak", "Boudh", "Cuttack",
			"Deogarh", "Dhenkanal", "Gajapati", "Ganjam", "Jagatsinghpur", "Jajpur",
			"Jharsuguda", "Kalahandi", "Kandhamal", "Kendrapara", "Kendujhar", "Khordha",
			"Koraput", "Malkangiri", "Mayurbhanj", "Nabarangpur", "Nayagarh", "Nuapada",
			"Puri", "Rayagada", "Sambalpur", "Subarnapur", "Sundargarh",
		},
	},
	{
		Name: "Puducherry", NameHI: "पुदुचेरी",
		Districts: []string{"Karaikal", "Mahe", "Puducherry", "Yanam"},
	},
	{
		Name: "Punjab", NameHI: "पंजाब",
		Districts: []string{
			"Amritsar", "Barnala", "Bathinda", "Faridkot", "Fatehgarh Sahib", "Fazilka",
			"Ferozepur", "Gurdaspur", "Hoshiarpur", "Jalandhar", "Kapurthala", "Ludhiana",
			"Mansa", "Moga", "Muktsar", "Pathankot", "Patiala", "Rupnagar",
			"Sahibzada Ajit Singh Nagar", "Sangrur", "Shaheed Bhagat Singh Nagar",
			"Tarn Taran",
		},
	},
	{
		Name: "Rajasthan", NameHI: "राजस्थान",
		Districts: []string{
			"Ajmer", "Alwar", "Banswara", "Baran", "Barmer", "Bharatpur", "Bhilwara",
			"Bikaner", "Bundi", "Chittorgarh", "Churu", "Dausa", "Dholpur", "Dungarpur",
			"Hanumangarh", "Jaipur", "Jaisalmer", "Jalore", "Jhalawar", "Jhunjhunu",
			"Jodhpur", "Karauli", "Kota", "Nagaur", "Pali", "Pratapgarh", "Rajsamand",
			"Sawai Madhopur", "Sikar", "Sirohi", "Sri Ganganagar", "Tonk", "Udaipur",
		},
	},
	{
		Name: "Sikkim", NameHI: "सिक्किम",
		Districts: []string{"East Sikkim", "North Sikkim", "South Sikkim", "West Sikkim"},
	},
	{
		Name: "Tamil Nadu", NameHI: "तमिलनाडु",
		Districts: []string{
			"Ariyalur", "Chengalpattu", "Chennai", "Coimbatore", "Cuddalore", "Dharmapuri",
			"Dindigul", "Erode", "Kallakurichi", "Kanchipuram", "Kanyakumari", "Karur",
			"Krishnagiri", "Madurai", "Nagapattinam", "Namakkal", "Nilgiris", "Perambalur",
			"Pudukkottai", "Ramanathapuram", "Ranipet", "Salem", "Sivaganga", "Tenkasi",
			"Thanjavur", "Theni", "Thoothukudi", "Tiruchirappalli", "Tirunelveli",
			"Tirupathur", "Tiruppur", "Tiruvallur", "Tiruvannamalai", "Tiruvarur", "Vellore",
			"Viluppuram", "Virudhunagar",
		},
	},
	{
		Name: "Telangana", NameHI: "तेलंगाना",
		Districts: []string{
			"Adilabad", "Bhadradri Kothagudem", "Hyderabad", "Jagtial", "Jangaon",
			"Jayashankar Bhupalpally", "Jogulamba Gadwal", "Kamareddy", "Karimnagar",
			"Khammam", "Mahabubabad", "Mahabubnagar", "Mancherial", "Medak",
			"Medchal-Malkajgiri", "Nagarkurnool", "Nalgonda", "Nirmal", "Nizamabad",
			"Peddapalli", "Rajanna Sircilla", "Rangareddy", "Sangareddy", "Siddipet",
			"Suryapet", "Vikarabad", "Wanaparthy", "Warangal Rural", "Warangal Urban",
			"Yadadri Bhuvanagiri",
		},
	},
	{
		Name: "Tripura", NameHI: "त्रिपुरा",
		Districts: []string{
			"Dhalai", "Gomati", "Khowai", "North Tripura", "Sepahijala", "South Tripura",
			"Unakoti", "West Tripura",
		},
	},
	{
		Name: "Uttar Pradesh", NameHI: "उत्तर प्रदेश",
		Districts: []string{
			"Agra", "Aligarh", "Ambedkar Nagar", "Amethi", "Amroha", "Auraiya", "Ayodhya",
			"Azamgarh", "Baghpat", "Bahraich", "Ballia", "Balrampur", "Banda", "Barabanki",
			"Bareilly", "Basti", "Bhadohi", "Bijnor", "Budaun", "Bulandshahr", "Chandauli",
			"Chitrakoot", "Deoria", "Etah", "Etawah", "Farrukhabad", "Fatehpur", "Firozabad",
			"Gautam Buddha Nagar", "Ghaziabad", "Ghazipur", "Gonda", "Gorakhpur", "Hamirpur",
			"Hapur", "Hardoi", "Hathras", "Jalaun", "Jaunpur", "Jhansi", "Kannauj",
			"Kanpur Dehat", "Kanpur Nagar", "Kasganj", "Kaushambi", "Kushinagar",
			"Lakhimpur Kheri", "Lalitpur", "Lucknow", "Maharajganj", "Mahoba", "Mainpuri",
			"Mathura", "Mau", "Meerut", "Mirzapur", "Moradabad", "Muzaffarnagar", "Pilibhit",
			"Pratapgarh", "Prayagraj", "Raebareli", "Rampur", "Saharanpur", "Sambhal",
			"Sant Kabir Nagar", "Shahjahanpur", "Shamli", "Shravasti", "Siddharthnagar",
			"Sitapur", "Sonbhadra", "Sultanpur", "Unnao", "Varanasi",
		},
	},
	{
		Name: "Uttarakhand", NameHI: "उत्तराखंड",
		Districts: []string{
			"Almora", "Bageshwar", "Chamoli", "Champawat", "Dehradun", "Haridwar", "Nainital",
			"Pauri Garhwal", "Pithoragarh", "Rudraprayag", "Tehri Garhwal",
			"Udham Singh Nagar", "Uttarkashi",
		},
	},
	{
		Name: "West Bengal", NameHI: "पश्चिम बंगाल",
		Districts: []string{
			"Alipurduar", "Bankura", "Birbhum", "Cooch Behar", "Dakshin Dinajpur",
			"Darjeeling", "Hooghly", "Howrah", "Jalpaiguri", "Jhargram", "Kalimpong",
			"Kolkata", "Malda", "Murshidabad", "Nadia", "North 24 Parganas",
			"Paschim Bardhaman", "Paschim Medinipur", "Purba Bardhaman", "Purba Medinipur",
			"Purulia", "South 24 Parganas", "Uttar Dinajpur",
		},
	},
}
