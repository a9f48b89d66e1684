package geo

// cityRow is one gazetteer source entry. The rows below are consumed once by
// NewIndex and never referenced afterwards.
type cityRow struct {
	city       string
	state      string
	country    string
	lat        float64
	lon        float64
	population int
	metro      string
}

var usCities = []cityRow{
	// West Coast
	{"San Francisco", "CA", "USA", 37.7749, -122.4194, 875000, "San Francisco Bay Area"},
	{"Los Angeles", "CA", "USA", 34.0522, -118.2437, 4000000, "Los Angeles Metro"},
	{"San Diego", "CA", "USA", 32.7157, -117.1611, 1400000, "San Diego Metro"},
	{"Seattle", "WA", "USA", 47.6062, -122.3321, 750000, "Seattle Metro"},
	{"Portland", "OR", "USA", 45.5152, -122.6784, 650000, "Portland Metro"},
	{"San Jose", "CA", "USA", 37.3382, -121.8863, 1000000, "San Francisco Bay Area"},

	// East Coast
	{"New York", "NY", "USA", 40.7128, -74.0060, 8400000, "New York Metro"},
	{"Boston", "MA", "USA", 42.3601, -71.0589, 685000, "Boston Metro"},
	{"Washington", "DC", "USA", 38.9072, -77.0369, 700000, "Washington DC Metro"},
	{"Philadelphia", "PA", "USA", 39.9526, -75.1652, 1600000, "Philadelphia Metro"},
	{"Miami", "FL", "USA", 25.7617, -80.1918, 470000, "Miami Metro"},
	{"Atlanta", "GA", "USA", 33.7490, -84.3880, 500000, "Atlanta Metro"},

	// Central
	{"Chicago", "IL", "USA", 41.8781, -87.6298, 2700000, "Chicago Metro"},
	{"Dallas", "TX", "USA", 32.7767, -96.7970, 1300000, "Dallas-Fort Worth Metro"},
	{"Houston", "TX", "USA", 29.7604, -95.3698, 2300000, "Houston Metro"},
	{"Austin", "TX", "USA", 30.2672, -97.7431, 950000, "Austin Metro"},
	{"Denver", "CO", "USA", 39.7392, -104.9903, 715000, "Denver Metro"},
	{"Phoenix", "AZ", "USA", 33.4484, -112.0740, 1700000, "Phoenix Metro"},
	{"Las Vegas", "NV", "USA", 36.1699, -115.1398, 650000, "Las Vegas Metro"},
	{"Salt Lake City", "UT", "USA", 40.7608, -111.8910, 200000, "Salt Lake City Metro"},

	// Additional major cities
	{"Nashville", "TN", "USA", 36.1627, -86.7816, 695000, "Nashville Metro"},
	{"Orlando", "FL", "USA", 28.5383, -81.3792, 310000, "Orlando Metro"},
	{"Tampa", "FL", "USA", 27.9506, -82.4572, 385000, "Tampa Bay Metro"},
	{"Charlotte", "NC", "USA", 35.2271, -80.8431, 875000, "Charlotte Metro"},
	{"Raleigh", "NC", "USA", 35.7796, -78.6382, 470000, "Raleigh-Durham Metro"},
	{"Richmond", "VA", "USA", 37.5407, -77.4360, 230000, "Richmond Metro"},
	{"Baltimore", "MD", "USA", 39.2904, -76.6122, 585000, "Baltimore Metro"},
	{"Pittsburgh", "PA", "USA", 40.4406, -79.9959, 300000, "Pittsburgh Metro"},
	{"Cleveland", "OH", "USA", 41.4993, -81.6944, 385000, "Cleveland Metro"},
	{"Detroit", "MI", "USA", 42.3314, -83.0458, 670000, "Detroit Metro"},
	{"Columbus", "OH", "USA", 39.9612, -82.9988, 900000, "Columbus Metro"},
	{"Indianapolis", "IN", "USA", 39.7684, -86.1581, 875000, "Indianapolis Metro"},
	{"Milwaukee", "WI", "USA", 43.0389, -87.9065, 590000, "Milwaukee Metro"},
	{"Minneapolis", "MN", "USA", 44.9778, -93.2650, 430000, "Minneapolis-St. Paul Metro"},
	{"Kansas City", "MO", "USA", 39.0997, -94.5786, 495000, "Kansas City Metro"},
	{"St. Louis", "MO", "USA", 38.6270, -90.1994, 300000, "St. Louis Metro"},
	{"New Orleans", "LA", "USA", 29.9511, -90.0715, 390000, "New Orleans Metro"},
	{"San Antonio", "TX", "USA", 29.4241, -98.4936, 1500000, "San Antonio Metro"},
	{"Oklahoma City", "OK", "USA", 35.4676, -97.5164, 695000, "Oklahoma City Metro"},
	{"Tulsa", "OK", "USA", 36.1540, -95.9928, 415000, "Tulsa Metro"},
	{"Little Rock", "AR", "USA", 34.7465, -92.2896, 198000, "Little Rock Metro"},
	{"Memphis", "TN", "USA", 35.1495, -90.0490, 650000, "Memphis Metro"},
	{"Birmingham", "AL", "USA", 33.5186, -86.8104, 210000, "Birmingham Metro"},
	{"Jacksonville", "FL", "USA", 30.3322, -81.6557, 950000, "Jacksonville Metro"},
	{"Buffalo", "NY", "USA", 42.8864, -78.8784, 255000, "Buffalo Metro"},
	{"Rochester", "NY", "USA", 43.1566, -77.6088, 206000, "Rochester Metro"},
	{"Albany", "NY", "USA", 42.6526, -73.7562, 98000, "Albany Metro"},
	{"Providence", "RI", "USA", 41.8240, -71.4128, 180000, "Providence Metro"},
	{"Hartford", "CT", "USA", 41.7658, -72.6734, 122000, "Hartford Metro"},
	{"Bridgeport", "CT", "USA", 41.1865, -73.1952, 145000, "Bridgeport Metro"},
}

var internationalCities = []cityRow{
	{"Toronto", "ON", "Canada", 43.6532, -79.3832, 2930000, "Greater Toronto Area"},
	{"Vancouver", "BC", "Canada", 49.2827, -123.1207, 675000, "Metro Vancouver"},
	{"Montreal", "QC", "Canada", 45.5017, -73.5673, 1780000, "Montreal Metro"},
	{"London", "", "United Kingdom", 51.5074, -0.1278, 9000000, "Greater London"},
	{"Berlin", "", "Germany", 52.5200, 13.4050, 3700000, "Berlin Metro"},
	{"Paris", "", "France", 48.8566, 2.3522, 2100000, "Île-de-France"},
	{"Amsterdam", "", "Netherlands", 52.3676, 4.9041, 870000, "Amsterdam Metro"},
	{"Dublin", "", "Ireland", 53.3498, -6.2603, 555000, "Dublin Metro"},
	{"Sydney", "NSW", "Australia", -33.8688, 151.2093, 5300000, "Greater Sydney"},
	{"Melbourne", "VIC", "Australia", -37.8136, 144.9631, 5000000, "Greater Melbourne"},
	{"Tel Aviv", "", "Israel", 32.0853, 34.7818, 460000, "Tel Aviv Metro"},
	{"Tokyo", "", "Japan", 35.6762, 139.6503, 14000000, "Greater Tokyo"},
	{"Singapore", "", "Singapore", 1.3521, 103.8198, 5900000, "Singapore"},
	{"Hong Kong", "", "Hong Kong", 22.3193, 114.1694, 7500000, "Hong Kong"},
	{"Bangalore", "KA", "India", 12.9716, 77.5946, 8400000, "Bangalore Metro"},
	{"Mumbai", "MH", "India", 19.0760, 72.8777, 12400000, "Mumbai Metro"},
	{"Hyderabad", "TG", "India", 17.3850, 78.4867, 6900000, "Hyderabad Metro"},
	{"Pune", "MH", "India", 18.5204, 73.8567, 3100000, "Pune Metro"},
	{"Chennai", "TN", "India", 13.0827, 80.2707, 4600000, "Chennai Metro"},
}

// metroCities groups cities considered commute-equivalent.
var metroCities = map[string][]string{
	"San Francisco Bay Area": {
		"San Francisco", "San Jose", "Oakland", "Fremont", "Santa Clara",
		"Sunnyvale", "Hayward", "Concord", "Berkeley", "Richmond",
	},
	"Los Angeles Metro": {
		"Los Angeles", "Long Beach", "Anaheim", "Santa Ana", "Riverside",
		"San Bernardino", "Glendale", "Huntington Beach", "Irvine",
	},
	"New York Metro": {
		"New York", "Newark", "Jersey City", "Yonkers", "Paterson",
		"Elizabeth", "Bridgeport", "New Haven", "Stamford",
	},
	"Chicago Metro": {
		"Chicago", "Aurora", "Joliet", "Naperville", "Elgin", "Waukegan",
		"Cicero", "Hammond", "Gary", "Schaumburg",
	},
	"Dallas-Fort Worth Metro": {
		"Dallas", "Fort Worth", "Arlington", "Plano", "Garland", "Irving",
		"Grand Prairie", "McKinney", "Mesquite", "Carrollton",
	},
	"Houston Metro": {
		"Houston", "The Woodlands", "Sugar Land", "Conroe", "League City",
		"Baytown", "Missouri City", "Pearland", "Pasadena",
	},
	"Washington DC Metro": {
		"Washington", "Arlington", "Alexandria", "Rockville", "Bethesda",
		"Silver Spring", "Fairfax", "Gaithersburg", "Frederick",
	},
	"Boston Metro": {
		"Boston", "Cambridge", "Lowell", "Brockton", "Quincy", "Lynn",
		"Newton", "Lawrence", "Somerville", "Waltham",
	},
	"Philadelphia Metro": {
		"Philadelphia", "Allentown", "Reading", "Camden", "Wilmington",
		"Atlantic City", "Trenton", "Chester", "Bethlehem",
	},
	"Phoenix Metro": {
		"Phoenix", "Mesa", "Chandler", "Scottsdale", "Glendale", "Gilbert",
		"Tempe", "Peoria", "Surprise", "Avondale",
	},
}

// cityAliases lists common abbreviations and nicknames.
var cityAliases = map[string][]string{
	"San Francisco":  {"SF", "San Fran", "The City"},
	"New York":       {"NYC", "New York City", "Manhattan"},
	"Los Angeles":    {"LA", "Los Angeles"},
	"Washington":     {"DC", "Washington DC", "Washington D.C."},
	"Las Vegas":      {"Vegas"},
	"Salt Lake City": {"SLC"},
	"Kansas City":    {"KC"},
	"St. Louis":      {"Saint Louis"},
	"New Orleans":    {"NOLA"},
	"San Antonio":    {"SA"},
	"Oklahoma City":  {"OKC"},
}

// usStateAbbreviations maps full US state names to their two-letter codes.
var usStateAbbreviations = map[string]string{
	"Alabama": "AL", "Alaska": "AK", "Arizona": "AZ", "Arkansas": "AR", "California": "CA",
	"Colorado": "CO", "Connecticut": "CT", "Delaware": "DE", "Florida": "FL", "Georgia": "GA",
	"Hawaii": "HI", "Idaho": "ID", "Illinois": "IL", "Indiana": "IN", "Iowa": "IA",
	"Kansas": "KS", "Kentucky": "KY", "Louisiana": "LA", "Maine": "ME", "Maryland": "MD",
	"Massachusetts": "MA", "Michigan": "MI", "Minnesota": "MN", "Mississippi": "MS", "Missouri": "MO",
	"Montana": "MT", "Nebraska": "NE", "Nevada": "NV", "New Hampshire": "NH", "New Jersey": "NJ",
	"New Mexico": "NM", "New York": "NY", "North Carolina": "NC", "North Dakota": "ND", "Ohio": "OH",
	"Oklahoma": "OK", "Oregon": "OR", "Pennsylvania": "PA", "Rhode Island": "RI", "South Carolina": "SC",
	"South Dakota": "SD", "Tennessee": "TN", "Texas": "TX", "Utah": "UT", "Vermont": "VT",
	"Virginia": "VA", "Washington": "WA", "West Virginia": "WV", "Wisconsin": "WI", "Wyoming": "WY",
}

// countryAliases lists alternate names for countries in the gazetteer.
var countryAliases = map[string][]string{
	"USA":            {"United States", "US", "America", "United States of America"},
	"Canada":         {"CA", "CAN"},
	"United Kingdom": {"UK", "Britain", "Great Britain", "England"},
	"Germany":        {"DE", "Deutschland"},
	"France":         {"FR"},
	"Netherlands":    {"NL", "Holland"},
	"Australia":      {"AU", "AUS"},
	"India":          {"IN", "IND"},
	"Japan":          {"JP", "JPN"},
	"Singapore":      {"SG", "SGP"},
}
