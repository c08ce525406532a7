// Package taxonomy classifies product titles as fashion or non-fashion
// using a two-layer keyword filter loaded from a JSON asset.
package taxonomy

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
)

// Taxonomy holds the allow and block keyword sets. Read-only after Load,
// safe to share across concurrent requests.
type Taxonomy struct {
	fashionTerms    []string
	nonFashionTerms []string
}

type taxonomyFile struct {
	FashionTerms    []string `json:"fashion_terms"`
	NonFashionTerms []string `json:"non_fashion_terms"`
}

// Load reads the taxonomy JSON from path. A missing or malformed file
// degrades to the built-in keyword sets with a warning; Load never
// fails.
func Load(path string, debug bool) *Taxonomy {
	t, err := loadFile(path)
	if err != nil {
		log.Printf("[TAXONOMY] %v, using built-in fallback", err)
		t = &Taxonomy{
			fashionTerms:    defaultFashionTerms,
			nonFashionTerms: defaultNonFashionTerms,
		}
	}
	if debug {
		log.Printf("[TAXONOMY] loaded %d fashion, %d non-fashion terms",
			len(t.fashionTerms), len(t.nonFashionTerms))
	}
	return t
}

func loadFile(path string) (*Taxonomy, error) {
	if path == "" {
		return nil, fmt.Errorf("no taxonomy path configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading taxonomy file: %w", err)
	}
	var f taxonomyFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing taxonomy file: %w", err)
	}
	if len(f.FashionTerms) == 0 || len(f.NonFashionTerms) == 0 {
		return nil, fmt.Errorf("taxonomy file %s has empty term lists", path)
	}
	return &Taxonomy{
		fashionTerms:    lowerAll(f.FashionTerms),
		nonFashionTerms: lowerAll(f.NonFashionTerms),
	}, nil
}

// IsFashion applies the two-layer filter to a product title. The block
// list is checked first so a title matching both lists is still
// rejected; a title matching neither list is rejected as well, since
// the absence of any fashion signal means non-fashion.
func (t *Taxonomy) IsFashion(title string) bool {
	title = strings.ToLower(title)
	for _, kw := range t.nonFashionTerms {
		if strings.Contains(title, kw) {
			return false
		}
	}
	for _, kw := range t.fashionTerms {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

func lowerAll(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, s := range terms {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Built-in fallback sets, curated so the filter still behaves sanely
// without the JSON asset. Short block terms that are substrings of
// common fashion phrases ("water", "pearl") are deliberately absent.
var defaultFashionTerms = []string{
	// Clothing
	"dress", "blouse", "shirt", "tunic", "polo",
	"sweater", "cardigan", "hoodie", "sweatshirt", "pullover",
	"jacket", "coat", "blazer", "vest", "parka", "windbreaker",
	"trench", "bomber", "puffer", "overcoat",
	"jeans", "pants", "trouser", "legging", "jogger", "chino",
	"shorts", "skirt", "jumpsuit", "romper", "overalls",
	"suit", "tuxedo",
	"lingerie", "bra", "underwear", "boxers", "briefs",
	"swimsuit", "bikini", "swimwear",
	"pajama", "nightgown", "robe", "sleepwear",
	"activewear", "sportswear",
	// Footwear
	"shoe", "sneaker", "boot", "sandal", "heel", "pump",
	"loafer", "oxford", "mule", "slipper", "clog",
	"wedge", "stiletto", "footwear",
	// Bags
	"handbag", "purse", "tote", "clutch", "crossbody",
	"backpack", "satchel", "wallet", "duffel", "bag",
	// Jewelry and watches
	"necklace", "bracelet", "earring", "pendant",
	"choker", "bangle", "brooch",
	"watch", "wristwatch", "jewelry",
	// Eyewear and headwear
	"sunglasses", "eyeglasses", "aviator",
	"hat", "cap", "beanie", "beret", "fedora",
	// Scarves, belts
	"scarf", "shawl", "bandana", "belt", "necktie",
	// Fabrics
	"cotton", "silk", "linen", "cashmere", "wool", "denim",
	"leather", "suede", "satin", "chiffon", "velvet", "lace",
	"knitted", "tweed", "flannel", "corduroy",
	// Descriptors
	"outfit", "apparel", "clothing", "garment", "fashion",
	"menswear", "womenswear",
	// Multi-word
	"t-shirt", "tank top", "crop top", "bow tie", "flip flop",
	"slim fit", "plus size", "ankle boot",
	"shoulder bag", "denim jacket", "leather jacket",
}

var defaultNonFashionTerms = []string{
	// Food
	"cake", "cookie", "brownie", "candy",
	"recipe", "baking", "frosting", "donut", "pastry",
	"bread", "muffin", "cereal", "sauce", "syrup", "grocery",
	"juice", "smoothie", "yogurt", "cheese", "butter",
	"flour", "sugar", "honey",
	"apple", "tomato", "onion", "banana", "cherry",
	"mango", "strawberry", "blueberry", "grape",
	"lemon", "avocado", "potato", "carrot",
	// Kitchen
	"kitchen", "cookware", "bakeware", "utensil", "spatula",
	"skillet", "blender", "toaster", "microwave", "oven",
	"dishwasher", "dinnerware",
	// Electronics
	"laptop", "computer", "monitor", "keyboard", "printer",
	"router", "modem", "charger", "speaker", "headphone",
	"earbud", "tablet", "gaming", "console", "playstation",
	"xbox", "nintendo", "camera", "tripod", "drone",
	"bluetooth",
	// Toys and baby
	"lego", "puzzle", "stroller", "diaper", "pacifier",
	// Home and garden
	"furniture", "mattress", "curtain", "carpet",
	"candle", "planter", "garden", "lawn", "fertilizer",
	// Tools and cleaning
	"drill", "hammer", "wrench", "screwdriver",
	"vacuum", "broom", "detergent", "bleach",
	// Sports equipment
	"treadmill", "dumbbell", "barbell", "kettlebell",
	"basketball", "football", "baseball",
	// Health and office
	"vitamin", "supplement", "medicine", "thermometer",
	"textbook", "notebook", "stationery",
	// Pet and plumbing
	"aquarium", "fish tank", "dog food",
	"plumbing", "faucet", "toilet", "light bulb",
}
