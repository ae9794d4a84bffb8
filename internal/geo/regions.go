package geo

// regionTable buckets trading partners into world regions. Bucket
// order matters: the first matching bucket wins, so the US aliases in
// North America are checked before any looser word matching could
// claim them.
var regionTable = []struct {
	name    string
	members []string
}{
	{"South Asia", []string{
		"India", "Pakistan", "Bangladesh", "Sri Lanka", "Afghanistan", "Maldives", "Bhutan",
	}},
	{"East Asia", []string{
		"China", "Japan", "South Korea", "North Korea", "Korea, Republic of", "Korea, Democratic People's Rep. of",
		"Mongolia", "Taiwan", "Hong Kong", "Macau", "Taiwan, Republic of China", "Taiwan, Province of China",
	}},
	{"Southeast Asia", []string{
		"Thailand", "Vietnam", "Viet Nam", "Singapore", "Malaysia", "Indonesia", "Philippines", "Myanmar",
		"Cambodia", "Laos", "Lao People's Democratic Republic", "Brunei", "Brunei Darussalam", "Timor-Leste", "East Timor",
	}},
	{"Middle East", []string{
		"United Arab Emirates", "Saudi Arabia", "Iran", "Iran, Islamic Republic of", "Iraq", "Turkey", "Israel", "Jordan",
		"Lebanon", "Syria", "Syrian Arab Republic", "Kuwait", "Qatar", "Bahrain", "Oman", "Yemen",
	}},
	{"Europe", []string{
		"Germany", "United Kingdom", "France", "Italy", "Spain", "Netherlands", "Belgium",
		"Switzerland", "Austria", "Poland", "Czech Republic", "Hungary", "Sweden", "Denmark",
		"Norway", "Finland", "Russia", "Ukraine", "Romania", "Greece", "Portugal", "Ireland",
		"Cyprus", "Belarus", "Slovenia", "Lithuania", "Croatia", "Bulgaria", "Latvia", "Estonia",
		"Luxembourg", "Malta", "Iceland", "Serbia", "Armenia", "Russian Federation", "Albania",
		"Andorra", "Bosnia and Herzegovina", "Montenegro", "Macedonia", "The former Yugoslav Rep. Macedonia",
		"Moldova", "Republic of Moldova", "Kosovo", "Serbia (Europe)", "Liechtenstein", "Monaco",
		"San Marino", "Holy See (Vatican)", "Isle of Man", "Slovakia", "European Union", "Faeroe Islands",
		"Azerbaijan", "Georgia",
	}},
	{"North America", []string{
		"United States", "Canada", "Mexico", "USA", "US", "America", "Belize", "Guatemala", "Honduras",
		"El Salvador", "Nicaragua", "Costa Rica", "Panama", "Puerto Rico",
	}},
	{"South America", []string{
		"Brazil", "Argentina", "Chile", "Peru", "Colombia", "Venezuela", "Ecuador", "Bolivia",
		"Uruguay", "Paraguay", "Guyana", "Suriname", "French Guiana",
	}},
	{"Africa", []string{
		"South Africa", "Nigeria", "Egypt", "Kenya", "Morocco", "Algeria", "Tunisia", "Libya", "Libyan Arab Jamahiriya",
		"Ghana", "Ethiopia", "Tanzania", "United Republic of Tanzania", "Uganda", "Zimbabwe", "Zambia", "Botswana", "Mauritius",
		"Angola", "Benin", "Burkina Faso", "Burundi", "Cameroon", "Cape Verde", "Central African Republic", "Chad",
		"Comoros", "Congo", "Cote d'Ivoire", "Djibouti", "Eritrea", "Gabon", "Guinea", "Guinea-Bissau",
		"Lesotho", "Liberia", "Madagascar", "Malawi", "Mali", "Mauritania", "Mozambique", "Namibia",
		"Niger", "Rwanda", "Sao Tome and Principe", "Senegal", "Seychelles", "Sierra Leone", "Somalia",
		"South Sudan", "Sudan", "Swaziland", "Togo", "Western Sahara", "Zaire",
	}},
	{"Oceania", []string{
		"Australia", "New Zealand", "Fiji", "Papua New Guinea", "Solomon Islands", "Vanuatu",
		"Samoa", "Kiribati", "Marshall Islands", "Micronesia, Federated States of", "Nauru",
		"Cook Islands", "Niue", "Tokelau", "New Caledonia",
	}},
	{"Caribbean", []string{
		"Cuba", "Jamaica", "Haiti", "Dominican Republic", "Antigua and Barbuda", "Aruba", "Bahamas",
		"Barbados", "Bermuda", "Cayman Islands", "Dominica", "Grenada", "Guadeloupe", "Montserrat",
		"Saint Kitts and Nevis", "Saint Lucia", "Saint Vincent and the Grenadines", "Trinidad and Tobago",
		"Turks and Caicos Islands", "United States Virgin Islands", "Anguilla",
	}},
	{"Central Asia", []string{
		"Kazakstan", "Kyrgyzstan", "Tajikistan", "Turkmenistan", "Uzbekistan",
	}},
	{"Pacific", []string{
		"American Samoa", "Guam", "Northern Mariana Islands", "Midway Islands", "Pitcairn",
		"Wallis and Futuna Islands",
	}},
	{"Indian Ocean", []string{
		"Reunion", "French Southern Territories", "British Indian Ocean Territory",
		"Christmas Island[Australia]", "Cocos (Keeling) Islands",
	}},
	{"Atlantic", []string{
		"Saint Helena", "Bouvet Island",
	}},
	{"Antarctica", []string{
		"Antarctica",
	}},
	{"Historical", []string{
		"Yugoslavia", "Zaire",
	}},
}
