package geo

// countryCoords holds map marker coordinates (lat, lon) per country
// name as it appears in the spreadsheets. Exact-match lookups only.
var countryCoords = map[string][2]float64{
	"India":                              {20.5937, 78.9629},
	"China":                              {35.8617, 104.1954},
	"United States":                      {37.0902, -95.7129},
	"USA":                                {37.0902, -95.7129},
	"United Kingdom":                     {55.3781, -3.4360},
	"Germany":                            {51.1657, 10.4515},
	"France":                             {46.2276, 2.2137},
	"Italy":                              {41.8719, 12.5674},
	"Japan":                              {36.2048, 138.2529},
	"Canada":                             {56.1304, -106.3468},
	"Australia":                          {-25.2744, 133.7751},
	"Brazil":                             {-14.2350, -51.9253},
	"Russia":                             {61.5240, 105.3188},
	"South Korea":                        {35.9078, 127.7669},
	"Korea, Republic of":                 {35.9078, 127.7669},
	"Korea, Democratic People's Rep. of": {40.3399, 127.5101},
	"North Korea":                        {40.3399, 127.5101},
	"Spain":                              {40.4637, -3.7492},
	"Mexico":                             {23.6345, -102.5528},
	"Indonesia":                          {-0.7893, 113.9213},
	"Netherlands":                        {52.1326, 5.2913},
	"Saudi Arabia":                       {23.8859, 45.0792},
	"Turkey":                             {38.9637, 35.2433},
	"Taiwan":                             {23.6978, 120.9605},
	"Belgium":                            {50.5039, 4.4699},
	"Switzerland":                        {46.8182, 8.2275},
	"Ireland":                            {53.4129, -8.2439},
	"Israel":                             {31.0461, 34.8516},
	"Austria":                            {47.5162, 14.5501},
	"Thailand":                           {15.8700, 100.9925},
	"Nigeria":                            {9.0820, 8.6753},
	"Argentina":                          {-38.4161, -63.6167},
	"Bangladesh":                         {23.6850, 90.3563},
	"United Arab Emirates":               {23.4241, 53.8478},
	"Malaysia":                           {4.2105, 101.9758},
	"Singapore":                          {1.3521, 103.8198},
	"South Africa":                       {-30.5595, 22.9375},
	"Chile":                              {-35.6751, -71.5430},
	"Egypt":                              {26.0975, 30.0444},
	"Norway":                             {60.4720, 8.4689},
	"Finland":                            {61.9241, 25.7482},
	"Denmark":                            {56.2639, 9.5018},
	"Portugal":                           {39.3999, -8.2245},
	"Greece":                             {39.0742, 21.8243},
	"New Zealand":                        {-40.9006, 174.8860},
	"Czech Republic":                     {49.8175, 15.4730},
	"Hungary":                            {47.1625, 19.5033},
	"Poland":                             {51.9194, 19.1451},
	"Romania":                            {45.9432, 24.9668},
	"Sweden":                             {60.1282, 18.6435},
	"Ukraine":                            {48.3794, 31.1656},
	"Philippines":                        {12.8797, 121.7740},
	"Vietnam":                            {14.0583, 108.2772},
	"Morocco":                            {31.7917, -7.0926},
	"Kenya":                              {-0.0236, 37.9062},
	"Ethiopia":                           {9.1450, 40.4897},
	"Sri Lanka":                          {7.8731, 80.7718},
	"Pakistan":                           {30.3753, 69.3451},
	"Iran":                               {32.4279, 53.6880},
	"Colombia":                           {4.5709, -74.2973},
	"Venezuela":                          {6.4238, -66.5897},
	"Algeria":                            {28.0339, 1.6596},
	"Oman":                               {21.4735, 55.9754},
	"Myanmar":                            {21.9162, 95.9560},
	"Jordan":                             {30.5852, 36.2384},
	"Tunisia":                            {33.8869, 9.5375},
	"Ghana":                              {7.9465, -1.0232},
	"Uruguay":                            {-32.5228, -55.7658},
	"Slovenia":                           {46.1512, 14.9955},
	"Lithuania":                          {55.1694, 23.8813},
	"Croatia":                            {45.1000, 15.2000},
	"Panama":                             {8.5380, -80.7821},
	"Bulgaria":                           {42.7339, 25.4858},
	"Costa Rica":                         {9.7489, -83.7534},
	"Lebanon":                            {33.8547, 35.8623},
	"Belarus":                            {53.7098, 27.9534},
	"Serbia":                             {44.0165, 21.0059},
	"Paraguay":                           {-23.4425, -58.4438},
	"Cambodia":                           {12.5657, 104.9910},
	"Latvia":                             {56.8796, 24.6032},
	"Estonia":                            {58.5953, 25.0136},
	"Mauritius":                          {-20.3484, 57.5522},
	"Cyprus":                             {35.1264, 33.4299},
	"Luxembourg":                         {49.8153, 6.1296},
	"Malta":                              {35.9375, 14.3754},
	"Iceland":                            {64.9631, -19.0208},
	"Bahrain":                            {25.9304, 50.6378},
	"Mongolia":                           {47.0105, 106.9057},
	"Brunei":                             {4.5353, 114.7277},
	"Maldives":                           {3.2028, 73.2207},
	"Bhutan":                             {27.5142, 90.4336},
	"Afghanistan":                        {33.9391, 67.7100},
	"Nepal":                              {28.3949, 84.1240},
	"Armenia":                            {40.0691, 45.0382},
	"Antarctica":                         {-82.8628, 135.0000},
	"Taiwan, Republic of China":          {23.6978, 120.9605},
	"Taiwan, Province of China":          {23.6978, 120.9605},
	"Russian Federation":                 {61.5240, 105.3188},
	"Albania":                            {41.1533, 20.1683},
	"American Samoa":                     {-14.2710, -170.1322},
	"Andorra":                            {42.5462, 1.6016},
	"Angola":                             {-11.2027, 17.8739},
	"Anguilla":                           {18.2206, -63.0686},
	"Antigua and Barbuda":                {17.0608, -61.7964},
	"Aruba":                              {12.5211, -69.9683},
	"Azerbaijan":                         {40.1431, 47.5769},
	"Bahamas":                            {25.0343, -77.3963},
	"Barbados":                           {13.1939, -59.5432},
	"Belize":                             {17.1899, -88.4976},
	"Benin":                              {9.3077, 2.3158},
	"Bermuda":                            {32.3078, -64.7505},
	"Bolivia":                            {-16.2902, -63.5887},
	"Bosnia and Herzegovina":             {43.9159, 17.6791},
	"Botswana":                           {-22.3285, 24.6849},
	"Bouvet Island":                      {-54.4208, 3.3464},
	"British Indian Ocean Territory":     {-6.0000, 71.5000},
	"Brunei Darussalam":                  {4.5353, 114.7277},
	"Burkina Faso":                       {12.2383, -1.5616},
	"Burundi":                            {-3.3731, 29.9189},
	"Cameroon":                           {7.3697, 12.3547},
	"Cape Verde":                         {16.5388, -24.0132},
	"Cayman Islands":                     {19.3133, -81.2546},
	"Central African Republic":           {6.6111, 20.9394},
	"Chad":                               {15.4542, 18.7322},
	"Christmas Island[Australia]":        {-10.4475, 105.6904},
	"Cocos (Keeling) Islands":            {-12.1642, 96.8710},
	"Comoros":                            {-11.6455, 43.3333},
	"Congo":                              {-0.2280, 15.8277},
	"Cook Islands":                       {-21.2367, -159.7777},
	"Cote d'Ivoire":                      {7.5400, -5.5471},
	"Cuba":                               {21.5218, -77.7812},
	"Djibouti":                           {11.8251, 42.5903},
	"Dominica":                           {15.4150, -61.3710},
	"Dominican Republic":                 {18.7357, -70.1627},
	"East Timor":                         {-8.8742, 125.7275},
	"El Salvador":                        {13.7942, -88.8965},
	"Eritrea":                            {15.1794, 39.7823},
	"European Union":                     {54.5260, 15.2551},
	"Faeroe Islands":                     {61.8926, -6.9118},
	"Fiji":                               {-16.7784, 179.4144},
	"French Guiana":                      {3.9339, -53.1258},
	"French Southern Territories":        {-49.2804, 69.3486},
	"Gabon":                              {-0.8037, 11.6094},
	"Georgia":                            {42.3154, 43.3569},
	"Grenada":                            {12.1165, -61.6790},
	"Guadeloupe":                         {16.9950, -62.0674},
	"Guam":                               {13.4443, 144.7937},
	"Guatemala":                          {15.7835, -90.2308},
	"Guinea":                             {9.9456, -9.6966},
	"Guinea-Bissau":                      {11.8037, -15.1804},
	"Guyana":                             {4.8604, -58.9302},
	"Haiti":                              {18.9712, -72.2852},
	"Holy See (Vatican)":                 {41.9029, 12.4534},
	"Honduras":                           {15.2000, -86.2419},
	"Hong Kong":                          {22.3193, 114.1694},
	"Iran, Islamic Republic of":          {32.4279, 53.6880},
	"Isle of Man":                        {54.2361, -4.5481},
	"Jamaica":                            {18.1096, -77.2975},
	"Kazakstan":                          {48.0196, 66.9237},
	"Kiribati":                           {-3.3704, -168.7340},
	"Kosovo":                             {42.6026, 20.9030},
	"Kyrgyzstan":                         {41.2044, 74.7661},
	"Lao People's Democratic Republic":   {19.8563, 102.4955},
	"Lesotho":                            {-29.6100, 28.2336},
	"Liberia":                            {6.4281, -9.4295},
	"Libyan Arab Jamahiriya":             {26.3351, 17.2283},
	"Liechtenstein":                      {47.1660, 9.5554},
	"Macau":                              {22.1987, 113.5439},
	"Macedonia":                          {41.6086, 21.7453},
	"Madagascar":                         {-18.7669, 46.8691},
	"Malawi":                             {-13.2543, 34.3015},
	"Mali":                               {17.5707, -3.9962},
	"Marshall Islands":                   {7.1315, 171.1845},
	"Mauritania":                         {21.0079, -10.9408},
	"Micronesia, Federated States of":    {7.4256, 150.5508},
	"Midway Islands":                     {28.2072, -177.3735},
	"Moldova":                            {47.4116, 28.3699},
	"Monaco":                             {43.7384, 7.4246},
	"Montenegro":                         {42.7087, 19.3744},
	"Montserrat":                         {16.7425, -62.1874},
	"Mozambique":                         {-18.6657, 35.5296},
	"Namibia":                            {-22.9576, 18.4904},
	"Nauru":                              {-0.5228, 166.9315},
	"New Caledonia":                      {-20.9043, 165.6180},
	"Nicaragua":                          {12.8654, -85.2072},
	"Niger":                              {17.6078, 8.0817},
	"Niue":                               {-19.0544, -169.8672},
	"Northern Mariana Islands":           {17.3308, 145.3846},
	"Papua New Guinea":                   {-6.3150, 143.9555},
	"Pitcairn":                           {-24.7036, -127.4393},
	"Puerto Rico":                        {18.2208, -66.5901},
	"Republic of Moldova":                {47.4116, 28.3699},
	"Reunion":                            {-21.1151, 55.5364},
	"Rwanda":                             {-1.9403, 29.8739},
	"Saint Helena":                       {-24.1434, -10.0307},
	"Saint Kitts and Nevis":              {17.3578, -62.7830},
	"Saint Lucia":                        {13.9094, -60.9789},
	"Saint Vincent and the Grenadines":   {12.9843, -61.2872},
	"Samoa":                              {-13.7590, -172.1046},
	"San Marino":                         {43.9424, 12.4578},
	"Sao Tome and Principe":              {0.1864, 6.6131},
	"Senegal":                            {14.4974, -14.4524},
	"Serbia (Europe)":                    {44.0165, 21.0059},
	"Seychelles":                         {-4.6796, 55.4920},
	"Sierra Leone":                       {8.4606, -11.7799},
	"Solomon Islands":                    {-9.6457, 160.1562},
	"Somalia":                            {5.1521, 46.1996},
	"South Sudan":                        {6.8769, 31.3069},
	"Sudan":                              {12.8628, 30.2176},
	"Suriname":                           {3.9193, -56.0278},
	"Swaziland":                          {-26.5225, 31.4659},
	"Syrian Arab Republic":               {34.8021, 38.9968},
	"Tajikistan":                         {38.8610, 71.2761},
	"Tanzania":                           {-6.3690, 34.8888},
	"The former Yugoslav Rep. Macedonia": {41.6086, 21.7453},
	"Togo":                               {8.6195, 0.8248},
	"Tokelau":                            {-8.9676, -171.8554},
	"Trinidad and Tobago":                {10.6918, -61.2225},
	"Turkmenistan":                       {38.9697, 59.5563},
	"Turks and Caicos Islands":           {21.6940, -71.7979},
	"Uganda":                             {1.3733, 32.2903},
	"United Republic of Tanzania":        {-6.3690, 34.8888},
	"United States Virgin Islands":       {18.3358, -64.8963},
	"Uzbekistan":                         {41.3775, 64.5853},
	"Vanuatu":                            {-15.3767, 166.9592},
	"Viet Nam":                           {14.0583, 108.2772},
	"Wallis and Futuna Islands":          {-13.7687, -177.1562},
	"Western Sahara":                     {24.2155, -12.8858},
	"Yemen":                              {15.5527, 48.5164},
	"Yugoslavia":                         {44.0165, 21.0059},
	"Zaire":                              {-4.0383, 21.7587},
	"Zambia":                             {-13.1339, 27.8493},
	"Zimbabwe":                           {-19.0154, 29.1549},
}
