// internal/brands/data.go
package brands

// builtin maps each report category to the brand names it covers. The table
// is reference data: loaded once at startup and never mutated afterwards.
var builtin = map[string][]string{
	"fashion": {
		"Nike", "Adidas", "Puma", "Reebok", "Under Armour", "New Balance",
		"Converse", "Vans", "Levi's", "Zara", "H&M", "Mango", "ASOS",
		"Shein", "Boohoo", "Forever 21", "Urban Outfitters", "Myntra",
		"Ajio", "Gymshark", "Lululemon", "Crocs", "Skechers",
	},
	"electronics": {
		"Samsung", "Apple", "OnePlus", "Xiaomi", "Realme", "Sony", "LG",
		"Anker", "Belkin", "Logitech", "Razer", "Corsair", "JBL", "Bose",
		"GoPro", "DJI", "Dell", "Lenovo", "HP", "Croma", "Reliance Digital",
	},
	"food": {
		"Dominos", "Domino's", "Pizza Hut", "KFC", "McDonald's", "Starbucks",
		"Zomato", "Swiggy", "DoorDash", "Uber Eats", "Grubhub", "HelloFresh",
		"Blue Apron", "Home Chef", "Factor", "EveryPlate", "BigBasket",
	},
	"beauty": {
		"Nykaa", "Sephora", "Ulta Beauty", "Glossier", "Fenty Beauty",
		"Maybelline", "L'Oreal", "Revlon", "The Ordinary", "CeraVe",
		"Neutrogena", "Olay", "Clinique", "MAC Cosmetics", "Tarte",
	},
	"health": {
		"MyProtein", "Optimum Nutrition", "MuscleBlaze", "Dymatize",
		"HealthKart", "Nutrabay", "iHerb", "Vitacost", "GNC", "Bulk Powders",
		"Thrive Market", "Peloton", "Bowflex", "NordicTrack",
	},
	"home": {
		"IKEA", "Wayfair", "Pepperfry", "Urban Ladder", "Home Depot",
		"Lowe's", "Bed Bath & Beyond", "Dyson", "Philips Hue", "Wooden Street",
	},
	"hosting": {
		"Hostinger", "Bluehost", "GoDaddy", "Namecheap", "SiteGround",
		"DreamHost", "HostGator", "Cloudflare", "DigitalOcean", "Linode",
		"Vultr", "Kinsta", "WP Engine", "Cloudways", "Porkbun", "Netlify",
		"Vercel", "Heroku",
	},
	"software": {
		"Adobe", "Canva", "Figma", "Notion", "Grammarly", "Evernote",
		"Todoist", "Asana", "Trello", "ClickUp", "NordVPN", "ExpressVPN",
		"Surfshark", "CyberGhost", "ProtonVPN", "Malwarebytes", "Norton",
		"McAfee", "Bitdefender", "Dropbox", "Zoom", "Slack", "JetBrains",
	},
	"gaming": {
		"Steam", "Epic Games", "GOG", "Humble Bundle", "Xbox Game Pass",
		"PlayStation Plus", "Nintendo", "Twitch", "SteelSeries", "HyperX",
	},
	"travel": {
		"Booking.com", "Expedia", "Hotels.com", "Priceline", "Kayak",
		"Agoda", "MakeMyTrip", "Goibibo", "Cleartrip", "Yatra", "Airbnb",
		"Vrbo", "OYO", "Uber", "Ola", "Lyft", "Redbus",
	},
	"education": {
		"Udemy", "Coursera", "Skillshare", "MasterClass", "Pluralsight",
		"Codecademy", "DataCamp", "Brilliant", "Duolingo", "Babbel",
		"Rosetta Stone", "Domestika",
	},
	"finance": {
		"Coinbase", "Binance", "Kraken", "Robinhood", "Webull", "Acorns",
		"Paytm", "PhonePe", "Zerodha", "Groww", "Upstox",
	},
	"shopping": {
		"Amazon", "Flipkart", "eBay", "Walmart", "Target", "AliExpress",
		"Temu", "Etsy", "Meesho", "Snapdeal", "JioMart", "Tata CLiQ",
		"Rakuten", "Shopee", "Lazada", "Wish",
	},
	"streaming": {
		"Netflix", "Disney+", "Hulu", "HBO Max", "Paramount+", "Crunchyroll",
		"Spotify", "Apple Music", "Tidal", "Deezer", "Audible", "Hotstar",
	},
}

// Categories returns the fixed category set in stable order, including the
// "general" fallback used when no category can be inferred.
func Categories() []string {
	return []string{
		"beauty", "education", "electronics", "fashion", "finance", "food",
		"gaming", "general", "health", "home", "hosting", "shopping",
		"software", "streaming", "travel",
	}
}
