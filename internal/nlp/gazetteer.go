package nlp

// places is the gazetteer used by RuleTagger for GPE spans.
var places = []string{
	// countries
	"Argentina", "Australia", "Austria", "Belgium", "Brazil", "Canada", "Chile", "China",
	"Colombia", "Czech Republic", "Denmark", "Egypt", "Estonia", "Finland", "France",
	"Germany", "Greece", "Hong Kong", "Hungary", "India", "Indonesia", "Ireland", "Israel",
	"Italy", "Japan", "Kenya", "Luxembourg", "Malaysia", "Mexico", "Netherlands",
	"New Zealand", "Nigeria", "Norway", "Pakistan", "Peru", "Philippines", "Poland",
	"Portugal", "Romania", "Saudi Arabia", "Singapore", "South Africa", "South Korea",
	"Spain", "Sweden", "Switzerland", "Taiwan", "Thailand", "Turkey", "UK", "Ukraine",
	"United Arab Emirates", "United Kingdom", "United States", "USA", "US", "Vietnam",
	// US states
	"California", "Colorado", "Florida", "Georgia", "Illinois", "Massachusetts",
	"New Jersey", "New York", "North Carolina", "Ohio", "Oregon", "Pennsylvania",
	"Texas", "Utah", "Virginia", "Washington",
	// cities
	"Amsterdam", "Atlanta", "Austin", "Bangalore", "Barcelona", "Beijing", "Berlin",
	"Boston", "Brussels", "Buenos Aires", "Cairo", "Cape Town", "Chicago", "Copenhagen",
	"Dallas", "Denver", "Dubai", "Dublin", "Edinburgh", "Frankfurt", "Hamburg", "Helsinki",
	"Houston", "Istanbul", "Jakarta", "Lagos", "Lisbon", "London", "Los Angeles", "Lyon",
	"Madrid", "Manchester", "Melbourne", "Miami", "Milan", "Montreal", "Mumbai", "Munich",
	"Nairobi", "New Delhi", "Oslo", "Paris", "Prague", "San Diego", "San Francisco",
	"San Jose", "Santiago", "Sao Paulo", "São Paulo", "Seattle", "Seoul", "Shanghai",
	"Stockholm", "Sydney", "Tallinn", "Tel Aviv", "Tokyo", "Toronto", "Vancouver",
	"Vienna", "Warsaw", "Zurich",
}

// orgSuffixes close an organization name in RuleTagger.
var orgSuffixes = []string{
	"Inc", "Incorporated", "Corp", "Corporation", "LLC", "LLP", "Ltd", "Limited",
	"GmbH", "AG", "SA", "SAS", "BV", "NV", "PLC", "Plc", "Co", "Company", "Group",
	"Holdings", "Partners", "Technologies", "Technology", "Labs", "Systems",
	"Software", "Solutions", "Bank", "Industries", "Enterprises", "Ventures",
	"Networks", "Analytics", "Robotics", "Studios", "Foundation",
}
