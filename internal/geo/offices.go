package geo

// officeCoords holds coordinates for Nepal's customs offices and
// border points. The case-insensitive substring stage in the resolver
// absorbs the lowercase and partial spellings seen in the sheets.
var officeCoords = map[string][2]float64{
	"Birgunj":                         {27.0067, 84.8728},
	"Biratnagar":                      {26.4525, 87.2718},
	"Bhairahawa":                      {27.5094, 83.4542},
	"Nepalgunj":                       {28.0504, 81.6176},
	"Kakarbhitta":                     {26.6520, 88.1439},
	"Kodari":                          {27.9667, 85.9167},
	"Rasuwa":                          {28.1636, 85.3228},
	"Tatopani":                        {27.9667, 85.9167},
	"Mahendranagar":                   {28.9644, 80.1847},
	"Dhangadhi":                       {28.6833, 80.5833},
	"Kanchanpur":                      {28.8417, 80.1556},
	"Janakpur":                        {26.7288, 85.9256},
	"Rajbiraj":                        {26.5423, 86.7378},
	"Siraha":                          {26.6586, 86.2106},
	"Gaur":                            {26.7667, 85.2667},
	"Jaleshwar":                       {26.6500, 85.8000},
	"Malangawa":                       {26.8500, 85.5667},
	"Raxaul":                          {26.9833, 84.8500},
	"Thankot":                         {27.6833, 85.2000},
	"Tribhuvan International Airport": {27.6966, 85.3591},
	"TI_AIRPORT":                      {27.6966, 85.3591},
	"TI AIRPORT":                      {27.6966, 85.3591},
	"Gautam Buddha Airport":           {27.5058, 83.4165},
	"Pokhara Airport":                 {28.2009, 83.9821},
	"Simara Airport":                  {27.1594, 84.9806},
	"Chandragadhi":                    {26.5631, 87.1789},
	"Jhapa":                           {26.6500, 87.9000},
	"Morang":                          {26.6500, 87.2000},
	"Sunsari":                         {26.6270, 87.1780},
	"Saptari":                         {26.6000, 86.9000},
	"Udayapur":                        {26.8500, 86.5500},
	"Khotang":                         {27.2000, 86.8000},
	"Bhojpur":                         {27.1667, 87.0500},
	"Dhankuta":                        {26.9833, 87.3333},
	"Terhathum":                       {27.1167, 87.4667},
	"Panchthar":                       {27.2000, 87.6000},
	"Ilam":                            {26.9000, 87.9000},
	"Taplejung":                       {27.3500, 87.6667},
	"Sankhuwasabha":                   {27.6000, 87.3000},
	"Solukhumbu":                      {27.7000, 86.7000},
	"Okhaldhunga":                     {27.3167, 86.5000},
	"Sarlahi":                         {26.9000, 85.5500},
	"Mahottari":                       {26.8000, 85.7500},
	"Dhanusa":                         {26.7500, 85.9500},
	"Bara":                            {27.0500, 84.9000},
	"Parsa":                           {27.1000, 84.9500},
	"Chitwan":                         {27.5833, 84.5000},
	"Makwanpur":                       {27.4333, 85.0333},
	"Lalitpur":                        {27.6667, 85.3333},
	"Bhaktapur":                       {27.6833, 85.4167},
	"Kathmandu":                       {27.7167, 85.3167},
	"Kavrepalanchok":                  {27.5833, 85.5667},
	"Sindhupalchok":                   {27.8333, 85.6833},
	"Dolakha":                         {27.6667, 86.1667},
	"Ramechhap":                       {27.3333, 86.0833},
	"Sindhuli":                        {27.2500, 85.9667},
	"Nuwakot":                         {27.9167, 85.1667},
	"Dhading":                         {27.8667, 84.9000},
	"Gorkha":                          {28.0000, 84.6167},
	"Lamjung":                         {28.2333, 84.3833},
	"Tanahun":                         {27.9167, 84.2500},
	"Syangja":                         {27.8667, 83.8667},
	"Kaski":                           {28.2000, 83.9833},
	"Manang":                          {28.6667, 84.0167},
	"Mustang":                         {28.9833, 83.8000},
	"Myagdi":                          {28.6000, 83.5667},
	"Parbat":                          {28.2333, 83.6833},
	"Baglung":                         {28.2667, 83.5833},
	"Gulmi":                           {28.0833, 83.2167},
	"Palpa":                           {27.8667, 83.5500},
	"Nawalparasi":                     {27.6167, 83.9167},
	"Rupandehi":                       {27.5833, 83.4500},
	"Kapilvastu":                      {27.5500, 83.0500},
	"Arghakhanchi":                    {27.9500, 83.1167},
	"Pyuthan":                         {28.1000, 82.8167},
	"Rolpa":                           {28.2833, 82.6167},
	"Rukum":                           {28.6000, 82.5500},
	"Salyan":                          {28.3833, 82.1667},
	"Dang":                            {28.0167, 82.3000},
	"Banke":                           {28.1500, 81.6167},
	"Bardiya":                         {28.3333, 81.4167},
	"Surkhet":                         {28.6000, 81.6167},
	"Dailekh":                         {28.8500, 81.7167},
	"Jajarkot":                        {28.7000, 82.1500},
	"Dolpa":                           {29.0000, 82.8167},
	"Jumla":                           {29.2667, 82.1667},
	"Kalikot":                         {29.1000, 81.2167},
	"Mugu":                            {29.6833, 82.0833},
	"Humla":                           {30.1167, 81.5167},
	"Bajura":                          {29.5500, 81.6667},
	"Bajhang":                         {29.5333, 81.2000},
	"Achham":                          {29.2667, 81.1333},
	"Doti":                            {29.2667, 80.9833},
	"Kailali":                         {28.4167, 80.7667},
	"Dadeldhura":                      {29.3000, 80.5833},
	"Baitadi":                         {29.5333, 80.4667},
	"Darchula":                        {29.8500, 80.5500},
	"Chobhar":                         {27.6167, 85.2667},
	"Maheshpaur":                      {26.8000, 85.1500},
	"Krishnanagar":                    {26.9000, 85.0500},
	"Pasupatinagar":                   {26.8000, 88.1000},
	"Sati":                            {28.4167, 80.7667},
	"Suthauli":                        {26.7500, 85.9000},
	"Thadhi":                          {26.8500, 85.8500},
	"Triveni":                         {27.4000, 83.5000},
	"Jaleshwor":                       {26.6500, 85.8000},
	"Bhadrapur":                       {26.5631, 87.8500},
}

// officeCoordsOrder fixes the scan order for the substring stage.
var officeCoordsOrder = []string{
	"Birgunj", "Biratnagar", "Bhairahawa", "Nepalgunj", "Kakarbhitta",
	"Kodari", "Rasuwa", "Tatopani", "Mahendranagar", "Dhangadhi",
	"Kanchanpur", "Janakpur", "Rajbiraj", "Siraha", "Gaur",
	"Jaleshwar", "Malangawa", "Raxaul", "Thankot",
	"Tribhuvan International Airport", "TI_AIRPORT", "TI AIRPORT",
	"Gautam Buddha Airport", "Pokhara Airport", "Simara Airport",
	"Chandragadhi", "Jhapa", "Morang", "Sunsari", "Saptari",
	"Udayapur", "Khotang", "Bhojpur", "Dhankuta", "Terhathum",
	"Panchthar", "Ilam", "Taplejung", "Sankhuwasabha", "Solukhumbu",
	"Okhaldhunga", "Sarlahi", "Mahottari", "Dhanusa", "Bara", "Parsa",
	"Chitwan", "Makwanpur", "Lalitpur", "Bhaktapur", "Kathmandu",
	"Kavrepalanchok", "Sindhupalchok", "Dolakha", "Ramechhap",
	"Sindhuli", "Nuwakot", "Dhading", "Gorkha", "Lamjung", "Tanahun",
	"Syangja", "Kaski", "Manang", "Mustang", "Myagdi", "Parbat",
	"Baglung", "Gulmi", "Palpa", "Nawalparasi", "Rupandehi",
	"Kapilvastu", "Arghakhanchi", "Pyuthan", "Rolpa", "Rukum",
	"Salyan", "Dang", "Banke", "Bardiya", "Surkhet", "Dailekh",
	"Jajarkot", "Dolpa", "Jumla", "Kalikot", "Mugu", "Humla",
	"Bajura", "Bajhang", "Achham", "Doti", "Kailali", "Dadeldhura",
	"Baitadi", "Darchula", "Chobhar", "Maheshpaur", "Krishnanagar",
	"Pasupatinagar", "Sati", "Suthauli", "Thadhi", "Triveni",
	"Jaleshwor", "Bhadrapur",
}
