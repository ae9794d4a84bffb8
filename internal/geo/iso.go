package geo

// countryISOOrder maps spreadsheet country names to ISO alpha-3 codes.
// Order matters for the substring stage: earlier entries win.
var countryISOOrder = []struct {
	name string
	iso  string
}{
	{"India", "IND"},
	{"China", "CHN"},
	{"United States", "USA"},
	{"USA", "USA"},
	{"United Kingdom", "GBR"},
	{"Germany", "DEU"},
	{"France", "FRA"},
	{"Italy", "ITA"},
	{"Japan", "JPN"},
	{"Canada", "CAN"},
	{"Australia", "AUS"},
	{"Brazil", "BRA"},
	{"Russia", "RUS"},
	{"South Korea", "KOR"},
	{"Korea, Republic of", "KOR"},
	{"Korea, Democratic People's Rep. of", "PRK"},
	{"North Korea", "PRK"},
	{"Spain", "ESP"},
	{"Mexico", "MEX"},
	{"Indonesia", "IDN"},
	{"Netherlands", "NLD"},
	{"Saudi Arabia", "SAU"},
	{"Turkey", "TUR"},
	{"Taiwan", "TWN"},
	{"Belgium", "BEL"},
	{"Switzerland", "CHE"},
	{"Ireland", "IRL"},
	{"Israel", "ISR"},
	{"Austria", "AUT"},
	{"Thailand", "THA"},
	{"Nigeria", "NGA"},
	{"Argentina", "ARG"},
	{"Egypt", "EGY"},
	{"South Africa", "ZAF"},
	{"Malaysia", "MYS"},
	{"Philippines", "PHL"},
	{"Bangladesh", "BGD"},
	{"Vietnam", "VNM"},
	{"Chile", "CHL"},
	{"Finland", "FIN"},
	{"Singapore", "SGP"},
	{"Denmark", "DNK"},
	{"Norway", "NOR"},
	{"New Zealand", "NZL"},
	{"United Arab Emirates", "ARE"},
	{"Portugal", "PRT"},
	{"Czech Republic", "CZE"},
	{"Romania", "ROU"},
	{"Poland", "POL"},
	{"Peru", "PER"},
	{"Greece", "GRC"},
	{"Iraq", "IRQ"},
	{"Qatar", "QAT"},
	{"Hungary", "HUN"},
	{"Kuwait", "KWT"},
	{"Ukraine", "UKR"},
	{"Morocco", "MAR"},
	{"Slovakia", "SVK"},
	{"Ecuador", "ECU"},
	{"Kenya", "KEN"},
	{"Ethiopia", "ETH"},
	{"Sri Lanka", "LKA"},
	{"Pakistan", "PAK"},
	{"Iran", "IRN"},
	{"Colombia", "COL"},
	{"Venezuela", "VEN"},
	{"Algeria", "DZA"},
	{"Sweden", "SWE"},
	{"Oman", "OMN"},
	{"Myanmar", "MMR"},
	{"Jordan", "JOR"},
	{"Tunisia", "TUN"},
	{"Ghana", "GHA"},
	{"Uruguay", "URY"},
	{"Slovenia", "SVN"},
	{"Lithuania", "LTU"},
	{"Croatia", "HRV"},
	{"Panama", "PAN"},
	{"Bulgaria", "BGR"},
	{"Costa Rica", "CRI"},
	{"Lebanon", "LBN"},
	{"Belarus", "BLR"},
	{"Serbia", "SRB"},
	{"Paraguay", "PRY"},
	{"Cambodia", "KHM"},
	{"Latvia", "LVA"},
	{"Estonia", "EST"},
	{"Mauritius", "MUS"},
	{"Cyprus", "CYP"},
	{"Luxembourg", "LUX"},
	{"Malta", "MLT"},
	{"Iceland", "ISL"},
	{"Bahrain", "BHR"},
	{"Mongolia", "MNG"},
	{"Brunei", "BRN"},
	{"Maldives", "MDV"},
	{"Bhutan", "BTN"},
	{"Afghanistan", "AFG"},
	{"Nepal", "NPL"},
	{"Armenia", "ARM"},
	{"Antarctica", "ATA"},
	{"Taiwan, Republic of China", "TWN"},
	{"Taiwan, Province of China", "TWN"},
	{"Russian Federation", "RUS"},
	{"Albania", "ALB"},
	{"American Samoa", "ASM"},
	{"Andorra", "AND"},
	{"Angola", "AGO"},
	{"Anguilla", "AIA"},
	{"Antigua and Barbuda", "ATG"},
	{"Aruba", "ABW"},
	{"Azerbaijan", "AZE"},
	{"Bahamas", "BHS"},
	{"Barbados", "BRB"},
	{"Belize", "BLZ"},
	{"Benin", "BEN"},
	{"Bermuda", "BMU"},
	{"Bolivia", "BOL"},
	{"Bosnia and Herzegovina", "BIH"},
	{"Botswana", "BWA"},
	{"Bouvet Island", "BVT"},
	{"British Indian Ocean Territory", "IOT"},
	{"Brunei Darussalam", "BRN"},
	{"Burkina Faso", "BFA"},
	{"Burundi", "BDI"},
	{"Cameroon", "CMR"},
	{"Cape Verde", "CPV"},
	{"Cayman Islands", "CYM"},
	{"Central African Republic", "CAF"},
	{"Chad", "TCD"},
	{"Christmas Island[Australia]", "CXR"},
	{"Cocos (Keeling) Islands", "CCK"},
	{"Comoros", "COM"},
	{"Congo", "COG"},
	{"Cook Islands", "COK"},
	{"Cote d'Ivoire", "CIV"},
	{"Cuba", "CUB"},
	{"Djibouti", "DJI"},
	{"Dominica", "DMA"},
	{"Dominican Republic", "DOM"},
	{"East Timor", "TLS"},
	{"El Salvador", "SLV"},
	{"Eritrea", "ERI"},
	{"European Union", "EUR"},
	{"Faeroe Islands", "FRO"},
	{"Fiji", "FJI"},
	{"French Guiana", "GUF"},
	{"French Southern Territories", "ATF"},
	{"Gabon", "GAB"},
	{"Georgia", "GEO"},
	{"Grenada", "GRD"},
	{"Guadeloupe", "GLP"},
	{"Guam", "GUM"},
	{"Guatemala", "GTM"},
	{"Guinea", "GIN"},
	{"Guinea-Bissau", "GNB"},
	{"Guyana", "GUY"},
	{"Haiti", "HTI"},
	{"Holy See (Vatican)", "VAT"},
	{"Honduras", "HND"},
	{"Hong Kong", "HKG"},
	{"Iran, Islamic Republic of", "IRN"},
	{"Isle of Man", "IMN"},
	{"Jamaica", "JAM"},
	{"Kazakstan", "KAZ"},
	{"Kiribati", "KIR"},
	{"Kosovo", "XKX"},
	{"Kyrgyzstan", "KGZ"},
	{"Lao People's Democratic Republic", "LAO"},
	{"Lesotho", "LSO"},
	{"Liberia", "LBR"},
	{"Libyan Arab Jamahiriya", "LBY"},
	{"Liechtenstein", "LIE"},
	{"Macau", "MAC"},
	{"Macedonia", "MKD"},
	{"Madagascar", "MDG"},
	{"Malawi", "MWI"},
	{"Mali", "MLI"},
	{"Marshall Islands", "MHL"},
	{"Mauritania", "MRT"},
	{"Micronesia, Federated States of", "FSM"},
	{"Midway Islands", "UMI"},
	{"Moldova", "MDA"},
	{"Monaco", "MCO"},
	{"Montenegro", "MNE"},
	{"Montserrat", "MSR"},
	{"Mozambique", "MOZ"},
	{"Namibia", "NAM"},
	{"Nauru", "NRU"},
	{"New Caledonia", "NCL"},
	{"Nicaragua", "NIC"},
	{"Niger", "NER"},
	{"Niue", "NIU"},
	{"Northern Mariana Islands", "MNP"},
	{"Papua New Guinea", "PNG"},
	{"Pitcairn", "PCN"},
	{"Puerto Rico", "PRI"},
	{"Republic of Moldova", "MDA"},
	{"Reunion", "REU"},
	{"Rwanda", "RWA"},
	{"Saint Helena", "SHN"},
	{"Saint Kitts and Nevis", "KNA"},
	{"Saint Lucia", "LCA"},
	{"Saint Vincent and the Grenadines", "VCT"},
	{"Samoa", "WSM"},
	{"San Marino", "SMR"},
	{"Sao Tome and Principe", "STP"},
	{"Senegal", "SEN"},
	{"Serbia (Europe)", "SRB"},
	{"Seychelles", "SYC"},
	{"Sierra Leone", "SLE"},
	{"Solomon Islands", "SLB"},
	{"Somalia", "SOM"},
	{"South Sudan", "SSD"},
	{"Sudan", "SDN"},
	{"Suriname", "SUR"},
	{"Swaziland", "SWZ"},
	{"Syrian Arab Republic", "SYR"},
	{"Tajikistan", "TJK"},
	{"Tanzania", "TZA"},
	{"The former Yugoslav Rep. Macedonia", "MKD"},
	{"Togo", "TGO"},
	{"Tokelau", "TKL"},
	{"Trinidad and Tobago", "TTO"},
	{"Turkmenistan", "TKM"},
	{"Turks and Caicos Islands", "TCA"},
	{"Uganda", "UGA"},
	{"United Republic of Tanzania", "TZA"},
	{"United States Virgin Islands", "VIR"},
	{"Uzbekistan", "UZB"},
	{"Vanuatu", "VUT"},
	{"Viet Nam", "VNM"},
	{"Wallis and Futuna Islands", "WLF"},
	{"Western Sahara", "ESH"},
	{"Yemen", "YEM"},
	{"Yugoslavia", "YUG"},
	{"Zaire", "ZAR"},
	{"Zambia", "ZMB"},
	{"Zimbabwe", "ZWE"},
}

// isoName maps ISO alpha-3 codes back to English country names.
var isoName = map[string]string{
	"IND": "India",
	"CHN": "China",
	"USA": "United States",
	"GBR": "United Kingdom",
	"DEU": "Germany",
	"FRA": "France",
	"ITA": "Italy",
	"JPN": "Japan",
	"CAN": "Canada",
	"AUS": "Australia",
	"BRA": "Brazil",
	"RUS": "Russia",
	"KOR": "South Korea",
	"PRK": "North Korea",
	"ESP": "Spain",
	"MEX": "Mexico",
	"IDN": "Indonesia",
	"NLD": "Netherlands",
	"SAU": "Saudi Arabia",
	"TUR": "Turkey",
	"TWN": "Taiwan",
	"BEL": "Belgium",
	"CHE": "Switzerland",
	"IRL": "Ireland",
	"ISR": "Israel",
	"AUT": "Austria",
	"THA": "Thailand",
	"NGA": "Nigeria",
	"ARG": "Argentina",
	"EGY": "Egypt",
	"ZAF": "South Africa",
	"MYS": "Malaysia",
	"PHL": "Philippines",
	"BGD": "Bangladesh",
	"VNM": "Vietnam",
	"CHL": "Chile",
	"FIN": "Finland",
	"SGP": "Singapore",
	"DNK": "Denmark",
	"NOR": "Norway",
	"NZL": "New Zealand",
	"ARE": "United Arab Emirates",
	"PRT": "Portugal",
	"CZE": "Czech Republic",
	"ROU": "Romania",
	"POL": "Poland",
	"PER": "Peru",
	"GRC": "Greece",
	"IRQ": "Iraq",
	"QAT": "Qatar",
	"HUN": "Hungary",
	"KWT": "Kuwait",
	"UKR": "Ukraine",
	"MAR": "Morocco",
	"SVK": "Slovakia",
	"ECU": "Ecuador",
	"KEN": "Kenya",
	"ETH": "Ethiopia",
	"LKA": "Sri Lanka",
	"PAK": "Pakistan",
	"IRN": "Iran",
	"COL": "Colombia",
	"VEN": "Venezuela",
	"DZA": "Algeria",
	"SWE": "Sweden",
	"OMN": "Oman",
	"MMR": "Myanmar",
	"JOR": "Jordan",
	"TUN": "Tunisia",
	"GHA": "Ghana",
	"URY": "Uruguay",
	"SVN": "Slovenia",
	"LTU": "Lithuania",
	"HRV": "Croatia",
	"PAN": "Panama",
	"BGR": "Bulgaria",
	"CRI": "Costa Rica",
	"LBN": "Lebanon",
	"BLR": "Belarus",
	"SRB": "Serbia",
	"PRY": "Paraguay",
	"KHM": "Cambodia",
	"LVA": "Latvia",
	"EST": "Estonia",
	"MUS": "Mauritius",
	"CYP": "Cyprus",
	"LUX": "Luxembourg",
	"MLT": "Malta",
	"ISL": "Iceland",
	"BHR": "Bahrain",
	"MNG": "Mongolia",
	"BRN": "Brunei",
	"MDV": "Maldives",
	"BTN": "Bhutan",
	"AFG": "Afghanistan",
	"NPL": "Nepal",
	"ARM": "Armenia",
	"ATA": "Antarctica",
	"ALB": "Albania",
	"ASM": "American Samoa",
	"AND": "Andorra",
	"AGO": "Angola",
	"AIA": "Anguilla",
	"ATG": "Antigua and Barbuda",
	"ABW": "Aruba",
	"AZE": "Azerbaijan",
	"BHS": "Bahamas",
	"BRB": "Barbados",
	"BLZ": "Belize",
	"BEN": "Benin",
	"BMU": "Bermuda",
	"BOL": "Bolivia",
	"BIH": "Bosnia and Herzegovina",
	"BWA": "Botswana",
	"BVT": "Bouvet Island",
	"IOT": "British Indian Ocean Territory",
	"BFA": "Burkina Faso",
	"BDI": "Burundi",
	"CMR": "Cameroon",
	"CPV": "Cape Verde",
	"CYM": "Cayman Islands",
	"CAF": "Central African Republic",
	"TCD": "Chad",
	"CXR": "Christmas Island",
	"CCK": "Cocos (Keeling) Islands",
	"COM": "Comoros",
	"COG": "Congo",
	"COK": "Cook Islands",
	"CIV": "Cote d'Ivoire",
	"CUB": "Cuba",
	"DJI": "Djibouti",
	"DMA": "Dominica",
	"DOM": "Dominican Republic",
	"TLS": "East Timor",
	"SLV": "El Salvador",
	"ERI": "Eritrea",
	"EUR": "European Union",
	"FRO": "Faeroe Islands",
	"FJI": "Fiji",
	"GUF": "French Guiana",
	"ATF": "French Southern Territories",
	"GAB": "Gabon",
	"GEO": "Georgia",
	"GRD": "Grenada",
	"GLP": "Guadeloupe",
	"GUM": "Guam",
	"GTM": "Guatemala",
	"GIN": "Guinea",
	"GNB": "Guinea-Bissau",
	"GUY": "Guyana",
	"HTI": "Haiti",
	"VAT": "Holy See (Vatican)",
	"HND": "Honduras",
	"HKG": "Hong Kong",
	"IMN": "Isle of Man",
	"JAM": "Jamaica",
	"KAZ": "Kazakhstan",
	"KIR": "Kiribati",
	"XKX": "Kosovo",
	"KGZ": "Kyrgyzstan",
	"LAO": "Lao People's Democratic Republic",
	"LSO": "Lesotho",
	"LBR": "Liberia",
	"LBY": "Libyan Arab Jamahiriya",
	"LIE": "Liechtenstein",
	"MAC": "Macau",
	"MKD": "Macedonia",
	"MDG": "Madagascar",
	"MWI": "Malawi",
	"MLI": "Mali",
	"MHL": "Marshall Islands",
	"MRT": "Mauritania",
	"FSM": "Micronesia, Federated States of",
	"UMI": "Midway Islands",
	"MDA": "Moldova",
	"MCO": "Monaco",
	"MNE": "Montenegro",
	"MSR": "Montserrat",
	"MOZ": "Mozambique",
	"NAM": "Namibia",
	"NRU": "Nauru",
	"NCL": "New Caledonia",
	"NIC": "Nicaragua",
	"NER": "Niger",
	"NIU": "Niue",
	"MNP": "Northern Mariana Islands",
	"PNG": "Papua New Guinea",
	"PCN": "Pitcairn",
	"PRI": "Puerto Rico",
	"REU": "Reunion",
	"RWA": "Rwanda",
	"SHN": "Saint Helena",
	"KNA": "Saint Kitts and Nevis",
	"LCA": "Saint Lucia",
	"VCT": "Saint Vincent and the Grenadines",
	"WSM": "Samoa",
	"SMR": "San Marino",
	"STP": "Sao Tome and Principe",
	"SEN": "Senegal",
	"SYC": "Seychelles",
	"SLE": "Sierra Leone",
	"SLB": "Solomon Islands",
	"SOM": "Somalia",
	"SSD": "South Sudan",
	"SDN": "Sudan",
	"SUR": "Suriname",
	"SWZ": "Swaziland",
	"SYR": "Syrian Arab Republic",
	"TJK": "Tajikistan",
	"TZA": "Tanzania",
	"TGO": "Togo",
	"TKL": "Tokelau",
	"TTO": "Trinidad and Tobago",
	"TKM": "Turkmenistan",
	"TCA": "Turks and Caicos Islands",
	"UGA": "Uganda",
	"VIR": "United States Virgin Islands",
	"UZB": "Uzbekistan",
	"VUT": "Vanuatu",
	"WLF": "Wallis and Futuna Islands",
	"ESH": "Western Sahara",
	"YEM": "Yemen",
	"YUG": "Yugoslavia",
	"ZAR": "Zaire",
	"ZMB": "Zambia",
	"ZWE": "Zimbabwe",
}
