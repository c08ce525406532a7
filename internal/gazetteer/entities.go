package gazetteer

// Entity tables for fashion query understanding. Phrases are stored
// lower-cased; multi-word phrases are matched by the n-gram scanner in
// the query parser.

var brands = []string{
	// Luxury / designer
	"gucci", "prada", "louis vuitton", "lv", "chanel", "dior", "christian dior",
	"hermes", "balenciaga", "versace", "fendi", "givenchy", "burberry",
	"valentino", "dolce gabbana", "dolce & gabbana", "d&g", "armani", "giorgio armani",
	"emporio armani", "ysl", "saint laurent", "yves saint laurent", "bottega veneta",
	"celine", "loewe", "alexander mcqueen", "mcqueen", "stella mccartney",
	"marc jacobs", "tom ford", "off white", "off-white", "maison margiela", "margiela",
	"balmain", "lanvin", "moncler", "kenzo", "acne studios", "isabel marant",
	"jacquemus", "the row", "rick owens",

	// Sportswear / athletic
	"nike", "adidas", "puma", "reebok", "under armour", "new balance", "asics",
	"fila", "champion", "jordan", "air jordan", "converse", "vans", "skechers",
	"brooks", "saucony", "mizuno", "lululemon", "athleta", "gymshark",

	// Fast fashion
	"zara", "h&m", "hm", "uniqlo", "forever 21", "forever21", "topshop", "asos",
	"primark", "shein", "boohoo", "plt", "prettylittlething", "fashion nova",
	"fashionnova", "missguided", "nasty gal", "romwe", "mango", "bershka",
	"pull&bear", "stradivarius", "massimo dutti",

	// Contemporary / mid-range
	"coach", "michael kors", "mk", "kate spade", "tory burch", "ralph lauren",
	"polo ralph lauren", "tommy hilfiger", "calvin klein", "ck", "dkny",
	"guess", "lacoste", "hugo boss", "boss", "ted baker", "all saints",
	"theory", "club monaco", "banana republic", "j crew", "j.crew",
	"anthropologie", "free people", "urban outfitters", "uo",

	// Denim
	"levis", "levi's", "wrangler", "lee", "true religion", "seven for all mankind",
	"7 for all mankind", "ag jeans", "citizens of humanity", "paige", "mother",
	"frame", "hudson", "dl1961", "joes jeans", "joe's jeans", "diesel",

	// Outdoor / workwear
	"north face", "the north face", "patagonia", "columbia", "timberland",
	"carhartt", "dickies", "helly hansen", "arc'teryx", "arcteryx",
	"canada goose", "woolrich", "fjallraven",

	// Shoes
	"doc martens", "dr martens", "birkenstock", "crocs", "ugg", "uggs",
	"clarks", "steve madden", "sam edelman", "stuart weitzman", "jimmy choo",
	"christian louboutin", "louboutin", "manolo blahnik", "salvatore ferragamo",
	"ferragamo", "tod's", "tods", "cole haan", "ecco", "merrell",
	"golden goose", "common projects", "axel arigato",

	// Accessories / watches
	"ray ban", "ray-ban", "rayban", "oakley", "fossil", "swatch", "casio",
	"g-shock", "seiko", "tissot", "longines", "omega", "rolex", "tag heuer",
	"herschel", "tumi", "samsonite", "longchamp", "mcm",

	// Jewelry
	"pandora", "swarovski", "tiffany", "tiffany & co", "cartier", "bulgari",
	"david yurman", "kendra scott", "mejuri", "anna beck",

	// Streetwear
	"supreme", "bape", "a bathing ape", "stussy", "palace", "kith",
	"fear of god", "fog", "essentials", "yeezy", "travis scott", "golf wang",
	"anti social social club", "vlone", "heron preston", "ambush",
}

var brandAliases = map[string]string{
	"lv":             "louis vuitton",
	"hm":             "h&m",
	"ck":             "calvin klein",
	"mk":             "michael kors",
	"uo":             "urban outfitters",
	"fog":            "fear of god",
	"d&g":            "dolce & gabbana",
	"ysl":            "saint laurent",
	"mcqueen":        "alexander mcqueen",
	"margiela":       "maison margiela",
	"louboutin":      "christian louboutin",
	"dr martens":     "doc martens",
	"ray-ban":        "ray ban",
	"rayban":         "ray ban",
	"levis":          "levi's",
	"uggs":           "ugg",
	"the north face": "north face",
}

var colors = []string{
	// Basic
	"black", "white", "gray", "grey", "silver",
	"red", "blue", "green", "yellow", "orange", "purple", "pink",
	"brown", "beige", "tan", "cream", "ivory", "nude",

	// Blues
	"navy", "navy blue", "royal blue", "baby blue", "light blue", "dark blue",
	"sky blue", "teal", "turquoise", "aqua", "cobalt", "indigo",

	// Greens
	"olive", "sage", "mint", "emerald", "forest green", "dark green",
	"lime", "neon green", "seafoam", "hunter green", "khaki",

	// Reds / pinks
	"burgundy", "maroon", "wine", "crimson", "coral", "salmon", "rose",
	"blush", "hot pink", "fuchsia", "magenta", "mauve", "dusty rose",

	// Browns
	"camel", "cognac", "chocolate", "espresso", "rust", "terracotta",
	"taupe", "mocha", "chestnut", "sienna",

	// Purples
	"lavender", "lilac", "plum", "violet", "orchid",

	// Yellows / oranges
	"gold", "golden", "mustard", "amber", "peach", "apricot",

	// Multi / pattern
	"multi", "multicolor", "rainbow", "tie dye", "tie-dye",
	"camo", "camouflage", "leopard", "cheetah", "zebra", "snake",
	"floral", "striped", "plaid", "checkered", "polka dot",
}

var colorAliases = map[string]string{
	"grey":      "gray",
	"nude":      "beige",
	"navy blue": "navy",
	"camo":      "camouflage",
}

var categories = []string{
	// Tops
	"shirt", "shirts", "t-shirt", "tshirt", "t shirt", "tee", "tees",
	"blouse", "blouses", "top", "tops", "tank", "tank top", "tanktop",
	"sweater", "sweaters", "pullover", "cardigan", "hoodie", "hoodies",
	"sweatshirt", "sweatshirts", "polo", "polos", "henley",
	"crop top", "croptop", "bodysuit", "camisole", "cami",
	"turtleneck", "mock neck",

	// Bottoms
	"pants", "trousers", "jeans", "shorts", "skirt", "skirts",
	"leggings", "joggers", "sweatpants", "chinos", "khakis",
	"culottes", "palazzo", "cargo", "cargo pants",

	// Dresses
	"dress", "dresses", "maxi dress", "midi dress", "mini dress",
	"gown", "gowns", "romper", "jumpsuit", "jumpsuits", "playsuit",
	"sundress", "cocktail dress", "evening dress",

	// Outerwear
	// Fabric-led compounds ("leather jacket") stay out so the fabric is
	// scanned as a material and the bare noun as the category.
	"jacket", "jackets", "coat", "coats", "blazer", "blazers",
	"bomber", "bomber jacket",
	"parka", "puffer", "puffer jacket", "down jacket", "windbreaker",
	"trench", "trench coat", "peacoat", "overcoat", "cape", "poncho",
	"vest", "vests", "gilet",

	// Suits
	"suit", "suits", "tuxedo", "tux", "waistcoat",

	// Shoes
	"shoes", "shoe", "sneakers", "sneaker", "trainers", "kicks",
	"boots", "boot", "ankle boots", "booties", "chelsea boots",
	"heels", "high heels", "pumps", "stilettos", "wedges",
	"sandals", "sandal", "flip flops", "slides", "slippers",
	"loafers", "oxfords", "brogues", "derbys", "flats", "ballet flats",
	"mules", "clogs", "espadrilles", "platforms",
	"running shoes", "basketball shoes",

	// Bags
	"bag", "bags", "handbag", "handbags", "purse", "purses",
	"tote", "totes", "tote bag", "clutch", "clutches",
	"crossbody", "crossbody bag", "shoulder bag", "satchel",
	"backpack", "backpacks", "duffel", "duffle", "messenger bag",
	"fanny pack", "belt bag", "wallet", "wallets", "card holder",

	// Accessories
	"hat", "hats", "cap", "caps", "beanie", "beanies", "fedora",
	"scarf", "scarves", "belt", "belts", "tie", "ties", "bow tie",
	"sunglasses", "glasses", "eyewear",
	"watch", "watches", "jewelry", "necklace", "bracelet", "ring", "earrings",
	"gloves", "socks", "umbrella",

	// Underwear / loungewear
	"underwear", "boxers", "briefs", "bra", "bras", "lingerie",
	"pajamas", "pyjamas", "pjs", "robe", "loungewear",
	"swimsuit", "swimwear", "bikini", "one piece", "swim trunks",

	// Activewear
	"activewear", "sportswear",
	"sports bra", "yoga pants", "running shorts",
}

var categoryNormalization = map[string]string{
	"tshirt":   "t-shirt",
	"t shirt":  "t-shirt",
	"tee":      "t-shirt",
	"tees":     "t-shirt",
	"trainers": "sneakers",
	"kicks":    "sneakers",
	"purse":    "handbag",
	"purses":   "handbags",
	"pyjamas":  "pajamas",
	"pjs":      "pajamas",
}

var styles = []string{
	// Fit
	"slim", "slim fit", "skinny", "regular fit", "loose", "loose fit",
	"relaxed", "relaxed fit", "oversized", "fitted", "tailored",
	"straight fit", "straight leg", "bootcut", "wide leg", "flare",
	"cropped", "petite", "plus size",

	// Style types
	"casual", "formal", "smart casual", "business casual", "dressy",
	"sporty", "athletic", "bohemian", "boho", "vintage", "retro",
	"minimalist", "classic", "modern", "contemporary", "trendy",
	"streetwear", "street style", "preppy", "chic", "elegant",
	"romantic", "edgy", "punk", "goth", "gothic", "grunge",
	"y2k", "90s", "80s", "70s",

	// Descriptors
	"high waist", "high waisted", "high rise", "low rise", "mid rise",
	"long sleeve", "short sleeve", "sleeveless", "cap sleeve",
	"v neck", "v-neck", "crew neck", "round neck", "scoop neck",
	"button down", "button up", "zip up", "zip-up",
	"distressed", "ripped", "raw hem", "faded", "washed",
	"embroidered", "printed", "graphic",
}

var materials = []string{
	// Natural fabrics
	"cotton", "organic cotton", "linen", "silk", "wool",
	"cashmere", "merino", "merino wool", "alpaca", "mohair",
	"leather", "genuine leather", "real leather", "suede",
	"denim", "canvas", "tweed", "velvet", "satin", "chiffon",
	"lace", "crochet", "knit", "knitted", "woven",

	// Synthetic fabrics
	"polyester", "nylon", "spandex", "lycra", "elastane",
	"rayon", "viscose", "modal", "acrylic", "fleece", "jersey",
	"mesh", "microfiber",

	// Leather alternatives
	"faux leather", "vegan leather", "pleather", "pu leather",
	"faux suede", "faux fur",

	// Special
	"waterproof", "water resistant", "breathable", "stretch",
	"recycled", "sustainable",
}

var genders = []string{
	"women", "womens", "women's", "woman", "ladies", "female",
	"men", "mens", "men's", "man", "male", "guys",
	"unisex", "gender neutral",
	"kids", "children", "boys", "girls", "toddler", "baby", "infant",
	"teen", "teens", "junior", "juniors",
}

var genderNormalization = map[string]string{
	"womens":  "women",
	"women's": "women",
	"woman":   "women",
	"ladies":  "women",
	"female":  "women",
	"mens":    "men",
	"men's":   "men",
	"man":     "men",
	"male":    "men",
	"guys":    "men",
	"children": "kids",
	"boys":     "kids",
	"girls":    "kids",
	"teen":     "teens",
	"junior":   "juniors",
}

var occasions = []string{
	"wedding", "wedding guest", "bridal", "bridesmaid", "prom",
	"party", "cocktail", "night out", "date night", "club",
	"work", "office", "professional", "interview",
	"everyday", "weekend", "lounge",
	"vacation", "travel", "beach", "resort", "festival",
	"gym", "workout", "running", "yoga", "hiking", "outdoor",
	"black tie", "gala", "red carpet",
}

// priceModifiers signal price sensitivity without naming a figure. They
// feed intent classification rather than entity extraction.
var priceModifiers = []string{
	"cheap", "affordable", "budget", "inexpensive", "low cost",
	"sale", "discount", "discounted", "clearance", "outlet",
	"luxury", "premium", "high end", "designer", "expensive",
	"mid range", "mid-range", "moderate",
}
