package normalizing

// UnknownRegion is the sentinel used when a record carries no state at all.
const UnknownRegion = "Unknown"

// CanonicalStates is the canonical list of Indian states and union
// territories that free-text state names are normalized onto.
var CanonicalStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh", "Goa", "Gujarat",
	"Haryana", "Himachal Pradesh", "Jammu and Kashmir", "Jharkhand", "Karnataka", "Kerala",
	"Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya", "Mizoram", "Nagaland", "Odisha",
	"Punjab", "Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh",
	"Uttarakhand", "West Bengal", "Andaman and Nicobar Islands", "Chandigarh",
	"Dadra and Nagar Haveli and Daman and Diu", "Delhi", "Lakshadweep", "Puducherry", "Ladakh",
}

// StateNamesByID maps ISO 3166-2 style region ids used by the map asset to
// canonical state names.
var StateNamesByID = map[string]string{
	"IN-AN": "Andaman and Nicobar Islands", "IN-AP": "Andhra Pradesh", "IN-AR": "Arunachal Pradesh",
	"IN-AS": "Assam", "IN-BR": "Bihar", "IN-CH": "Chandigarh", "IN-CT": "Chhattisgarh",
	"IN-DL": "Delhi", "IN-GA": "Goa", "IN-GJ": "Gujarat", "IN-HP": "Himachal Pradesh",
	"IN-HR": "Haryana", "IN-JH": "Jharkhand", "IN-JK": "Jammu and Kashmir", "IN-KA": "Karnataka",
	"IN-KL": "Kerala", "IN-LA": "Ladakh", "IN-LD": "Lakshadweep", "IN-MH": "Maharashtra",
	"IN-ML": "Meghalaya", "IN-MN": "Manipur", "IN-MP": "Madhya Pradesh", "IN-MZ": "Mizoram",
	"IN-NL": "Nagaland", "IN-OR": "Odisha", "IN-PB": "Punjab", "IN-PY": "Puducherry",
	"IN-RJ": "Rajasthan", "IN-SK": "Sikkim", "IN-TG": "Telangana", "IN-TN": "Tamil Nadu",
	"IN-TR": "Tripura", "IN-UP": "Uttar Pradesh", "IN-UT": "Uttarakhand", "IN-WB": "West Bengal",
}

// KeralaDistricts lists the valid district identifiers of the home state,
// used to validate district text from uploaded reports.
var KeralaDistricts = []string{
	"thiruvananthapuram", "kollam", "pathanamthitta", "alappuzha", "kottayam",
	"idukki", "ernakulam", "thrissur", "palakkad", "malappuram", "kozhikode",
	"wayanad", "kannur", "kasaragod",
}

// districtAliases maps historical and colonial-era city names onto their
// current district identifiers (Kerala legacy data).
var districtAliases = map[string]string{
	"trivandrum": "thiruvananthapuram",
	"calicut":    "kozhikode",
	"alleppey":   "alappuzha",
	"cochin":     "ernakulam",
	"kochi":      "ernakulam",
	"trichur":    "thrissur",
	"palghat":    "palakkad",
	"cannanore":  "kannur",
	"kasargod":   "kasaragod",
}
