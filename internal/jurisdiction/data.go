package jurisdiction

// locations is the static trade-adjacency dataset: jurisdiction code to
// display name, related jurisdiction codes, and shipping notes. Adjacency
// is directional; a neighbor list may reference codes that have no entry
// of their own. The dataset is authored externally and vendored here.
var locations = map[string]Location{
	"CN": {
		Country:   "China",
		Neighbors: []string{"CN", "HK", "MO", "TW", "KR", "JP", "VN", "MN", "KZ", "KG", "SG", "MY", "TH", "PH"},
		Notes:     "Major manufacturing hub, strong ties with HK/TW/MO",
	},
	"HK": {
		Country:   "Hong Kong",
		Neighbors: []string{"HK", "CN", "MO", "TW", "SG", "VN", "MY", "TH", "PH"},
		Notes:     "Major trading hub, closely tied to mainland China",
	},
	"MO": {
		Country:   "Macau",
		Neighbors: []string{"MO", "HK", "CN", "TW", "PH"},
		Notes:     "Special administrative region with strong CN/HK ties",
	},
	"KR": {
		Country:   "South Korea",
		Neighbors: []string{"KR", "JP", "CN", "TW", "HK", "VN", "SG"},
		Notes:     "Major manufacturing and technology hub",
	},
	"KP": {
		Country:   "North Korea",
		Neighbors: []string{"KP", "CN", "RU", "KR"},
		Notes:     "Limited international trade connections",
	},
	"JP": {
		Country:   "Japan",
		Neighbors: []string{"JP", "KR", "CN", "TW", "HK", "VN", "SG", "PH"},
		Notes:     "Major manufacturing and technology center",
	},
	"TW": {
		Country:   "Taiwan",
		Neighbors: []string{"TW", "CN", "HK", "JP", "PH", "VN", "SG"},
		Notes:     "Major technology manufacturing hub",
	},
	"MN": {
		Country:   "Mongolia",
		Neighbors: []string{"MN", "CN", "RU", "KZ"},
		Notes:     "Landlocked nation with strong ties to China and Russia",
	},
	"VN": {
		Country:   "Vietnam",
		Neighbors: []string{"VN", "CN", "LA", "KH", "TH", "MY", "SG", "ID", "PH"},
		Notes:     "Growing manufacturing hub",
	},
	"LA": {
		Country:   "Laos",
		Neighbors: []string{"LA", "VN", "KH", "TH", "CN", "MM"},
		Notes:     "Landlocked country with growing trade links",
	},
	"KH": {
		Country:   "Cambodia",
		Neighbors: []string{"KH", "TH", "VN", "LA", "MY", "SG"},
		Notes:     "Emerging manufacturing center",
	},
	"TH": {
		Country:   "Thailand",
		Neighbors: []string{"TH", "MY", "MM", "LA", "KH", "VN", "SG", "ID"},
		Notes:     "Major manufacturing base and logistics hub",
	},
	"MM": {
		Country:   "Myanmar",
		Neighbors: []string{"MM", "TH", "LA", "CN", "BD", "IN"},
		Notes:     "Strategic location between South and Southeast Asia",
	},
	"PH": {
		Country:   "Philippines",
		Neighbors: []string{"PH", "ID", "MY", "VN", "CN", "TW", "JP", "SG"},
		Notes:     "Major logistics hub",
	},
	"SG": {
		Country:   "Singapore",
		Neighbors: []string{"SG", "MY", "ID", "TH", "VN", "PH", "CN", "IN", "AE"},
		Notes:     "Major global trading hub",
	},
	"MY": {
		Country:   "Malaysia",
		Neighbors: []string{"MY", "SG", "ID", "TH", "BN", "PH", "VN"},
		Notes:     "Strategic shipping location",
	},
	"BN": {
		Country:   "Brunei",
		Neighbors: []string{"BN", "MY", "SG", "ID", "PH"},
		Notes:     "Oil and gas trading hub",
	},
	"ID": {
		Country:   "Indonesia",
		Neighbors: []string{"ID", "SG", "MY", "TH", "PH", "TL", "PG"},
		Notes:     "Major archipelagic shipping nation",
	},
	"TL": {
		Country:   "East Timor",
		Neighbors: []string{"TL", "ID", "AU"},
		Notes:     "Emerging economy with strong ties to Indonesia",
	},
	"IN": {
		Country:   "India",
		Neighbors: []string{"IN", "LK", "BD", "NP", "BT", "MM", "AE", "SG", "MY"},
		Notes:     "Major manufacturing hub with strong global trade",
	},
	"BD": {
		Country:   "Bangladesh",
		Neighbors: []string{"BD", "IN", "MM", "NP", "LK", "TH", "SG"},
		Notes:     "Major textile manufacturing hub",
	},
	"LK": {
		Country:   "Sri Lanka",
		Neighbors: []string{"LK", "IN", "SG", "MY", "AE", "MV"},
		Notes:     "Strategic shipping location",
	},
	"MV": {
		Country:   "Maldives",
		Neighbors: []string{"MV", "LK", "IN", "AE", "SG"},
		Notes:     "Indian Ocean trading point",
	},
	"NP": {
		Country:   "Nepal",
		Neighbors: []string{"NP", "IN", "CN", "BD", "BT"},
		Notes:     "Landlocked, dependent on Indian ports",
	},
	"BT": {
		Country:   "Bhutan",
		Neighbors: []string{"BT", "IN", "NP", "BD", "CN"},
		Notes:     "Landlocked, closely tied to Indian economy",
	},
	"PK": {
		Country:   "Pakistan",
		Neighbors: []string{"PK", "CN", "IN", "AF", "IR", "AE"},
		Notes:     "Strategic location between Middle East and South Asia",
	},
	"AF": {
		Country:   "Afghanistan",
		Neighbors: []string{"AF", "PK", "IR", "TM", "UZ", "TJ", "CN"},
		Notes:     "Landlocked, regional trade hub",
	},
	"KZ": {
		Country:   "Kazakhstan",
		Neighbors: []string{"KZ", "RU", "CN", "KG", "UZ", "TM"},
		Notes:     "Major transit country between Asia and Europe",
	},
	"UZ": {
		Country:   "Uzbekistan",
		Neighbors: []string{"UZ", "KZ", "KG", "TJ", "AF", "TM"},
		Notes:     "Growing manufacturing base",
	},
	"KG": {
		Country:   "Kyrgyzstan",
		Neighbors: []string{"KG", "KZ", "CN", "TJ", "UZ"},
		Notes:     "Key location on Belt and Road Initiative",
	},
	"TJ": {
		Country:   "Tajikistan",
		Neighbors: []string{"TJ", "UZ", "KG", "CN", "AF"},
		Notes:     "Emerging transit country",
	},
	"TM": {
		Country:   "Turkmenistan",
		Neighbors: []string{"TM", "UZ", "KZ", "IR", "AF"},
		Notes:     "Energy export hub",
	},
	"AE": {
		Country:   "United Arab Emirates",
		Neighbors: []string{"AE", "SA", "OM", "BH", "QA", "KW", "IR", "PK", "IN"},
		Notes:     "Major global trading hub, strong ties with Asia",
	},
	"SA": {
		Country:   "Saudi Arabia",
		Neighbors: []string{"SA", "AE", "BH", "KW", "QA", "OM", "YE", "JO", "IQ"},
		Notes:     "Major regional hub",
	},
	"IR": {
		Country:   "Iran",
		Neighbors: []string{"IR", "TR", "IQ", "TM", "AF", "PK", "AE"},
		Notes:     "Strategic location between Middle East and Asia",
	},
	"IQ": {
		Country:   "Iraq",
		Neighbors: []string{"IQ", "TR", "IR", "SY", "JO", "SA", "KW"},
		Notes:     "Regional trade center",
	},
	"JO": {
		Country:   "Jordan",
		Neighbors: []string{"JO", "SA", "IQ", "SY", "IL", "PS", "EG"},
		Notes:     "Strategic Middle East logistics hub",
	},
	"KW": {
		Country:   "Kuwait",
		Neighbors: []string{"KW", "SA", "IQ", "IR", "BH", "QA", "AE"},
		Notes:     "Oil export hub",
	},
	"BH": {
		Country:   "Bahrain",
		Neighbors: []string{"BH", "SA", "QA", "KW", "AE", "OM"},
		Notes:     "Financial and logistics center",
	},
	"QA": {
		Country:   "Qatar",
		Neighbors: []string{"QA", "SA", "BH", "AE", "KW", "OM"},
		Notes:     "Major LNG export hub",
	},
	"OM": {
		Country:   "Oman",
		Neighbors: []string{"OM", "AE", "SA", "YE", "IR"},
		Notes:     "Strategic shipping location",
	},
	"YE": {
		Country:   "Yemen",
		Neighbors: []string{"YE", "SA", "OM", "DJ", "ER"},
		Notes:     "Strategic location near shipping lanes",
	},
	"IL": {
		Country:   "Israel",
		Neighbors: []string{"IL", "EG", "JO", "LB", "CY", "TR", "GR"},
		Notes:     "Technology hub with Mediterranean trade",
	},
	"PS": {
		Country:   "Palestine",
		Neighbors: []string{"PS", "IL", "JO", "EG"},
		Notes:     "Trade dependent on neighboring countries",
	},
	"LB": {
		Country:   "Lebanon",
		Neighbors: []string{"LB", "SY", "IL", "CY", "TR"},
		Notes:     "Mediterranean trading center",
	},
	"SY": {
		Country:   "Syria",
		Neighbors: []string{"SY", "TR", "IQ", "JO", "LB"},
		Notes:     "Regional trade connections",
	},
	"EG": {
		Country:   "Egypt",
		Neighbors: []string{"EG", "LY", "SD", "IL", "SA", "JO", "GR", "IT"},
		Notes:     "Major Suez Canal shipping hub",
	},
	"LY": {
		Country:   "Libya",
		Neighbors: []string{"LY", "EG", "TN", "DZ", "TD", "SD"},
		Notes:     "North African trade center",
	},
	"TN": {
		Country:   "Tunisia",
		Neighbors: []string{"TN", "DZ", "LY", "IT", "MT"},
		Notes:     "Mediterranean trading hub",
	},
	"DZ": {
		Country:   "Algeria",
		Neighbors: []string{"DZ", "TN", "LY", "MA", "MR", "ML", "NE"},
		Notes:     "Major North African economy",
	},
	"MA": {
		Country:   "Morocco",
		Neighbors: []string{"MA", "DZ", "ES", "PT", "MR"},
		Notes:     "Gateway between Europe and Africa",
	},
	"SD": {
		Country:   "Sudan",
		Neighbors: []string{"SD", "EG", "LY", "TD", "SS", "ET", "ER"},
		Notes:     "Strategic location between North and East Africa",
	},
	"ET": {
		Country:   "Ethiopia",
		Neighbors: []string{"ET", "SD", "SS", "KE", "SO", "DJ", "ER"},
		Notes:     "Major East African economy",
	},
	"DJ": {
		Country:   "Djibouti",
		Neighbors: []string{"DJ", "ET", "ER", "SO", "YE"},
		Notes:     "Strategic shipping hub",
	},
	"ER": {
		Country:   "Eritrea",
		Neighbors: []string{"ER", "ET", "SD", "DJ"},
		Notes:     "Red Sea shipping access",
	},
	"SO": {
		Country:   "Somalia",
		Neighbors: []string{"SO", "ET", "DJ", "KE"},
		Notes:     "Strategic location near shipping lanes",
	},
	"KE": {
		Country:   "Kenya",
		Neighbors: []string{"KE", "TZ", "UG", "SS", "ET", "SO"},
		Notes:     "East African logistics hub",
	},
	"UG": {
		Country:   "Uganda",
		Neighbors: []string{"UG", "KE", "TZ", "RW", "SS", "CD"},
		Notes:     "East African trade center",
	},
	"TZ": {
		Country:   "Tanzania",
		Neighbors: []string{"TZ", "KE", "UG", "RW", "BI", "CD", "ZM", "MW", "MZ"},
		Notes:     "East African port hub",
	},
	"RW": {
		Country:   "Rwanda",
		Neighbors: []string{"RW", "UG", "TZ", "BI", "CD"},
		Notes:     "Growing East African trade center",
	},
	"BI": {
		Country:   "Burundi",
		Neighbors: []string{"BI", "RW", "TZ", "CD"},
		Notes:     "Emerging trade nation",
	},
	"NG": {
		Country:   "Nigeria",
		Neighbors: []string{"NG", "BJ", "NE", "CM", "GH", "CI"},
		Notes:     "Largest West African economy",
	},
	"GH": {
		Country:   "Ghana",
		Neighbors: []string{"GH", "CI", "BF", "TG", "NG"},
		Notes:     "Major West African port hub",
	},
	"CI": {
		Country:   "Ivory Coast",
		Neighbors: []string{"CI", "GH", "BF", "ML", "GN", "LR"},
		Notes:     "Major West African trade hub",
	},
	"SN": {
		Country:   "Senegal",
		Neighbors: []string{"SN", "MR", "ML", "GW", "GN", "GM"},
		Notes:     "West African maritime hub",
	},
	"ML": {
		Country:   "Mali",
		Neighbors: []string{"ML", "DZ", "NE", "BF", "CI", "GN", "SN", "MR"},
		Notes:     "Landlocked Sahel trade route",
	},
	"BF": {
		Country:   "Burkina Faso",
		Neighbors: []string{"BF", "ML", "NE", "BJ", "TG", "GH", "CI"},
		Notes:     "Landlocked with regional trade links",
	},
	"NE": {
		Country:   "Niger",
		Neighbors: []string{"NE", "DZ", "ML", "BF", "NG", "TD", "LY"},
		Notes:     "Sahel trade corridor",
	},
	"BJ": {
		Country:   "Benin",
		Neighbors: []string{"BJ", "NG", "NE", "BF", "TG"},
		Notes:     "West African coastal hub",
	},
	"TG": {
		Country:   "Togo",
		Neighbors: []string{"TG", "GH", "BF", "BJ"},
		Notes:     "Coastal trading nation",
	},
	"LR": {
		Country:   "Liberia",
		Neighbors: []string{"LR", "CI", "GN", "SL"},
		Notes:     "Historic maritime nation",
	},
	"SL": {
		Country:   "Sierra Leone",
		Neighbors: []string{"SL", "GN", "LR"},
		Notes:     "Coastal West African nation",
	},
	"GN": {
		Country:   "Guinea",
		Neighbors: []string{"GN", "SN", "ML", "CI", "LR", "SL", "GW"},
		Notes:     "Strategic location in West Africa",
	},
	"GW": {
		Country:   "Guinea-Bissau",
		Neighbors: []string{"GW", "SN", "GN"},
		Notes:     "Small coastal nation",
	},
	"GM": {
		Country:   "Gambia",
		Neighbors: []string{"GM", "SN"},
		Notes:     "Small West African trade point",
	},
	"CM": {
		Country:   "Cameroon",
		Neighbors: []string{"CM", "NG", "TD", "CF", "CG", "GA", "GQ"},
		Notes:     "Central African trade hub",
	},
	"TD": {
		Country:   "Chad",
		Neighbors: []string{"TD", "LY", "SD", "CF", "CM", "NG", "NE"},
		Notes:     "Landlocked central African nation",
	},
	"CF": {
		Country:   "Central African Republic",
		Neighbors: []string{"CF", "TD", "SD", "SS", "CD", "CG", "CM"},
		Notes:     "Landlocked with regional connections",
	},
	"CG": {
		Country:   "Republic of the Congo",
		Neighbors: []string{"CG", "CD", "CM", "GA", "AO", "CF"},
		Notes:     "Central African oil exporter",
	},
	"CD": {
		Country:   "Democratic Republic of the Congo",
		Neighbors: []string{"CD", "CG", "CF", "SS", "UG", "RW", "BI", "TZ", "ZM", "AO"},
		Notes:     "Large central African nation",
	},
	"GA": {
		Country:   "Gabon",
		Neighbors: []string{"GA", "CM", "GQ", "CG"},
		Notes:     "Oil-exporting nation",
	},
	"GQ": {
		Country:   "Equatorial Guinea",
		Neighbors: []string{"GQ", "CM", "GA"},
		Notes:     "Oil and gas exporter",
	},
	"ZA": {
		Country:   "South Africa",
		Neighbors: []string{"ZA", "NA", "BW", "ZW", "MZ", "SZ", "LS"},
		Notes:     "Major African economy and logistics hub",
	},
	"NA": {
		Country:   "Namibia",
		Neighbors: []string{"NA", "ZA", "BW", "ZM", "AO"},
		Notes:     "Southern African maritime access",
	},
	"BW": {
		Country:   "Botswana",
		Neighbors: []string{"BW", "ZA", "NA", "ZW"},
		Notes:     "Landlocked southern African nation",
	},
	"ZW": {
		Country:   "Zimbabwe",
		Neighbors: []string{"ZW", "ZA", "BW", "MZ", "ZM"},
		Notes:     "Southern African trade route",
	},
	"ZM": {
		Country:   "Zambia",
		Neighbors: []string{"ZM", "CD", "TZ", "MW", "MZ", "ZW", "BW", "NA", "AO"},
		Notes:     "Copper export hub",
	},
	"MZ": {
		Country:   "Mozambique",
		Neighbors: []string{"MZ", "TZ", "MW", "ZM", "ZW", "ZA", "SZ"},
		Notes:     "Indian Ocean gateway",
	},
	"AO": {
		Country:   "Angola",
		Neighbors: []string{"AO", "CD", "CG", "ZM", "NA"},
		Notes:     "Oil-exporting nation",
	},
	"MW": {
		Country:   "Malawi",
		Neighbors: []string{"MW", "TZ", "MZ", "ZM"},
		Notes:     "Landlocked nation",
	},
	"LS": {
		Country:   "Lesotho",
		Neighbors: []string{"LS", "ZA"},
		Notes:     "Landlocked within South Africa",
	},
	"SZ": {
		Country:   "Eswatini",
		Neighbors: []string{"SZ", "ZA", "MZ"},
		Notes:     "Small landlocked kingdom",
	},
	"US": {
		Country:   "United States",
		Neighbors: []string{"US", "CA", "MX", "BM", "BS", "CU", "DO", "JM", "PA"},
		Notes:     "Major global trading hub",
	},
	"CA": {
		Country:   "Canada",
		Neighbors: []string{"CA", "US", "GL", "IS"},
		Notes:     "Major trading partner with US",
	},
	"MX": {
		Country:   "Mexico",
		Neighbors: []string{"MX", "US", "GT", "BZ", "CU"},
		Notes:     "Major manufacturing hub",
	},
	"GT": {
		Country:   "Guatemala",
		Neighbors: []string{"GT", "MX", "BZ", "SV", "HN"},
		Notes:     "Central American trade center",
	},
	"BZ": {
		Country:   "Belize",
		Neighbors: []string{"BZ", "MX", "GT"},
		Notes:     "Caribbean coast access",
	},
	"SV": {
		Country:   "El Salvador",
		Neighbors: []string{"SV", "GT", "HN"},
		Notes:     "Pacific coast trade",
	},
	"HN": {
		Country:   "Honduras",
		Neighbors: []string{"HN", "GT", "SV", "NI"},
		Notes:     "Central American logistics",
	},
	"NI": {
		Country:   "Nicaragua",
		Neighbors: []string{"NI", "HN", "CR"},
		Notes:     "Central American shipping route",
	},
	"CR": {
		Country:   "Costa Rica",
		Neighbors: []string{"CR", "NI", "PA"},
		Notes:     "Central American hub",
	},
	"PA": {
		Country:   "Panama",
		Neighbors: []string{"PA", "CR", "CO"},
		Notes:     "Major global shipping hub",
	},
	"CU": {
		Country:   "Cuba",
		Neighbors: []string{"CU", "US", "MX", "BS", "JM", "HT"},
		Notes:     "Caribbean's largest island",
	},
	"JM": {
		Country:   "Jamaica",
		Neighbors: []string{"JM", "CU", "HT", "DO", "TC", "KY"},
		Notes:     "Caribbean logistics center",
	},
	"HT": {
		Country:   "Haiti",
		Neighbors: []string{"HT", "DO", "CU", "JM", "BS"},
		Notes:     "Western Hispaniola",
	},
	"DO": {
		Country:   "Dominican Republic",
		Neighbors: []string{"DO", "HT", "PR", "TC"},
		Notes:     "Eastern Hispaniola",
	},
	"BS": {
		Country:   "Bahamas",
		Neighbors: []string{"BS", "US", "CU", "TC"},
		Notes:     "Atlantic maritime hub",
	},
	"BB": {
		Country:   "Barbados",
		Neighbors: []string{"BB", "VC", "LC", "TT", "GD"},
		Notes:     "Eastern Caribbean hub",
	},
	"TT": {
		Country:   "Trinidad and Tobago",
		Neighbors: []string{"TT", "VE", "GY", "BB", "GD"},
		Notes:     "Southern Caribbean energy hub",
	},
	"CO": {
		Country:   "Colombia",
		Neighbors: []string{"CO", "PA", "VE", "BR", "PE", "EC"},
		Notes:     "Major Pacific-Caribbean access",
	},
	"VE": {
		Country:   "Venezuela",
		Neighbors: []string{"VE", "CO", "BR", "GY", "TT"},
		Notes:     "Caribbean coast nation",
	},
	"GY": {
		Country:   "Guyana",
		Neighbors: []string{"GY", "VE", "BR", "SR", "TT"},
		Notes:     "Emerging energy exporter",
	},
	"SR": {
		Country:   "Suriname",
		Neighbors: []string{"SR", "GY", "BR", "GF"},
		Notes:     "Northern South American coast",
	},
	"BR": {
		Country:   "Brazil",
		Neighbors: []string{"BR", "UY", "AR", "PY", "BO", "PE", "CO", "VE", "GY", "SR", "GF"},
		Notes:     "Largest South American economy",
	},
	"EC": {
		Country:   "Ecuador",
		Neighbors: []string{"EC", "CO", "PE"},
		Notes:     "Pacific coast exporter",
	},
	"PE": {
		Country:   "Peru",
		Neighbors: []string{"PE", "EC", "CO", "BR", "BO", "CL"},
		Notes:     "Pacific trade hub",
	},
	"BO": {
		Country:   "Bolivia",
		Neighbors: []string{"BO", "PE", "BR", "PY", "AR", "CL"},
		Notes:     "Landlocked with regional ties",
	},
	"PY": {
		Country:   "Paraguay",
		Neighbors: []string{"PY", "BO", "BR", "AR"},
		Notes:     "Landlocked with river access",
	},
	"UY": {
		Country:   "Uruguay",
		Neighbors: []string{"UY", "BR", "AR"},
		Notes:     "Southern cone trading nation",
	},
	"AR": {
		Country:   "Argentina",
		Neighbors: []string{"AR", "CL", "BO", "PY", "BR", "UY"},
		Notes:     "Major South American economy",
	},
	"CL": {
		Country:   "Chile",
		Neighbors: []string{"CL", "PE", "BO", "AR"},
		Notes:     "Pacific coast trading nation",
	},
	"GB": {
		Country:   "United Kingdom",
		Neighbors: []string{"GB", "IE", "FR", "NL", "BE", "DE", "NO"},
		Notes:     "Major trading nation",
	},
	"IE": {
		Country:   "Ireland",
		Neighbors: []string{"IE", "GB", "FR", "IS"},
		Notes:     "European island nation",
	},
	"FR": {
		Country:   "France",
		Neighbors: []string{"FR", "GB", "BE", "LU", "DE", "CH", "IT", "ES", "MC", "AD"},
		Notes:     "Major European economy",
	},
	"ES": {
		Country:   "Spain",
		Neighbors: []string{"ES", "FR", "PT", "AD", "MA", "DZ"},
		Notes:     "Iberian trading hub",
	},
	"PT": {
		Country:   "Portugal",
		Neighbors: []string{"PT", "ES", "MA"},
		Notes:     "Atlantic maritime nation",
	},
	"DE": {
		Country:   "Germany",
		Neighbors: []string{"DE", "NL", "BE", "LU", "FR", "CH", "AT", "CZ", "PL", "DK"},
		Notes:     "Major European manufacturing hub",
	},
	"IT": {
		Country:   "Italy",
		Neighbors: []string{"IT", "FR", "CH", "AT", "SI", "HR", "ME", "AL", "GR", "MT", "RO"},
		Notes:     "Mediterranean trading hub",
	},
	"CH": {
		Country:   "Switzerland",
		Neighbors: []string{"CH", "DE", "FR", "IT", "AT", "LI"},
		Notes:     "Central European logistics",
	},
	"AT": {
		Country:   "Austria",
		Neighbors: []string{"AT", "DE", "CZ", "SK", "HU", "SI", "IT", "CH", "LI"},
		Notes:     "Central European hub",
	},
	"PL": {
		Country:   "Poland",
		Neighbors: []string{"PL", "DE", "CZ", "SK", "UA", "BY", "LT"},
		Notes:     "Central European logistics hub",
	},
	"CZ": {
		Country:   "Czech Republic",
		Neighbors: []string{"CZ", "DE", "PL", "SK", "AT"},
		Notes:     "Central European manufacturing",
	},
	"SK": {
		Country:   "Slovakia",
		Neighbors: []string{"SK", "CZ", "PL", "UA", "HU", "AT"},
		Notes:     "Central European trade route",
	},
	"HU": {
		Country:   "Hungary",
		Neighbors: []string{"HU", "SK", "UA", "RO", "RS", "HR", "SI", "AT"},
		Notes:     "Central European logistics hub",
	},
	"RO": {
		Country:   "Romania",
		Neighbors: []string{"RO", "HU", "UA", "MD", "BG", "RS"},
		Notes:     "Black Sea access",
	},
	"BG": {
		Country:   "Bulgaria",
		Neighbors: []string{"BG", "RO", "RS", "MK", "GR", "TR"},
		Notes:     "Black Sea trading nation",
	},
	"RS": {
		Country:   "Serbia",
		Neighbors: []string{"RS", "HU", "RO", "BG", "MK", "XK", "ME", "BA", "HR"},
		Notes:     "Southeastern European crossroads",
	},
	"HR": {
		Country:   "Croatia",
		Neighbors: []string{"HR", "SI", "HU", "RS", "BA", "ME", "IT"},
		Notes:     "Adriatic shipping access",
	},
	"SI": {
		Country:   "Slovenia",
		Neighbors: []string{"SI", "IT", "AT", "HU", "HR"},
		Notes:     "Central European transit",
	},
	"BA": {
		Country:   "Bosnia and Herzegovina",
		Neighbors: []string{"BA", "HR", "RS", "ME"},
		Notes:     "Balkan trade route",
	},
	"ME": {
		Country:   "Montenegro",
		Neighbors: []string{"ME", "HR", "BA", "RS", "XK", "AL"},
		Notes:     "Adriatic coast access",
	},
	"XK": {
		Country:   "Kosovo",
		Neighbors: []string{"XK", "RS", "ME", "AL", "MK"},
		Notes:     "Balkan transit point",
	},
	"AL": {
		Country:   "Albania",
		Neighbors: []string{"AL", "ME", "XK", "MK", "GR"},
		Notes:     "Adriatic and Ionian seas access",
	},
	"MK": {
		Country:   "North Macedonia",
		Neighbors: []string{"MK", "BG", "GR", "AL", "XK", "RS"},
		Notes:     "Balkan crossroads",
	},
	"GR": {
		Country:   "Greece",
		Neighbors: []string{"GR", "AL", "MK", "BG", "TR", "IT", "CY"},
		Notes:     "Mediterranean shipping hub",
	},
	"CY": {
		Country:   "Cyprus",
		Neighbors: []string{"CY", "GR", "TR", "IL", "LB", "EG"},
		Notes:     "Mediterranean island hub",
	},
	"TR": {
		Country:   "Turkey",
		Neighbors: []string{"TR", "GR", "BG", "GE", "AM", "IR", "IQ", "SY"},
		Notes:     "Eurasian crossroads",
	},
	"AM": {
		Country:   "Armenia",
		Neighbors: []string{"AM", "GE", "TR", "IR", "AZ"},
		Notes:     "Caucasus trade route",
	},
	"GE": {
		Country:   "Georgia",
		Neighbors: []string{"GE", "RU", "TR", "AM", "AZ"},
		Notes:     "Black Sea gateway",
	},
	"AZ": {
		Country:   "Azerbaijan",
		Neighbors: []string{"AZ", "GE", "RU", "IR", "AM"},
		Notes:     "Caspian Sea energy hub",
	},
	"BY": {
		Country:   "Belarus",
		Neighbors: []string{"BY", "RU", "UA", "PL", "LT", "LV"},
		Notes:     "Eastern European transit",
	},
	"UA": {
		Country:   "Ukraine",
		Neighbors: []string{"UA", "BY", "RU", "MD", "RO", "HU", "SK", "PL"},
		Notes:     "Black Sea access",
	},
	"MD": {
		Country:   "Moldova",
		Neighbors: []string{"MD", "RO", "UA"},
		Notes:     "Eastern European transit",
	},
	"LT": {
		Country:   "Lithuania",
		Neighbors: []string{"LT", "LV", "BY", "PL", "RU"},
		Notes:     "Baltic region hub",
	},
	"LV": {
		Country:   "Latvia",
		Neighbors: []string{"LV", "EE", "LT", "BY", "RU"},
		Notes:     "Baltic shipping access",
	},
	"EE": {
		Country:   "Estonia",
		Neighbors: []string{"EE", "LV", "RU", "FI"},
		Notes:     "Baltic tech hub",
	},
	"FI": {
		Country:   "Finland",
		Neighbors: []string{"FI", "SE", "NO", "RU", "EE"},
		Notes:     "Northern European logistics",
	},
	"SE": {
		Country:   "Sweden",
		Neighbors: []string{"SE", "NO", "FI", "DK"},
		Notes:     "Scandinavian hub",
	},
	"NO": {
		Country:   "Norway",
		Neighbors: []string{"NO", "SE", "FI", "RU", "DK", "IS"},
		Notes:     "North Sea shipping",
	},
	"DK": {
		Country:   "Denmark",
		Neighbors: []string{"DK", "DE", "SE", "NO"},
		Notes:     "Baltic Sea gateway",
	},
	"IS": {
		Country:   "Iceland",
		Neighbors: []string{"IS", "NO", "GB", "IE"},
		Notes:     "North Atlantic hub",
	},
	"AU": {
		Country:   "Australia",
		Neighbors: []string{"AU", "ID", "PG", "NZ", "NC", "SB", "TL"},
		Notes:     "Major Oceanian hub",
	},
	"NZ": {
		Country:   "New Zealand",
		Neighbors: []string{"NZ", "AU", "FJ", "NC"},
		Notes:     "South Pacific hub",
	},
	"PG": {
		Country:   "Papua New Guinea",
		Neighbors: []string{"PG", "ID", "SB", "AU"},
		Notes:     "Pacific island nation",
	},
	"FJ": {
		Country:   "Fiji",
		Neighbors: []string{"FJ", "VU", "NC", "SB", "NZ"},
		Notes:     "South Pacific crossroads",
	},
	"SB": {
		Country:   "Solomon Islands",
		Neighbors: []string{"SB", "PG", "VU", "NC"},
		Notes:     "Pacific trade route",
	},
	"VU": {
		Country:   "Vanuatu",
		Neighbors: []string{"VU", "NC", "SB", "FJ"},
		Notes:     "Pacific shipping registry",
	},
	"NC": {
		Country:   "New Caledonia",
		Neighbors: []string{"NC", "VU", "SB", "AU", "NZ"},
		Notes:     "French Pacific territory",
	},
}
