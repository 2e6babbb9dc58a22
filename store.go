package main

// Rarity levels for cosmetic items
const (
	RarityCommon    = 0
	RarityRare      = 1
	RarityEpic      = 2
	RarityLegendary = 3
)

// ItemType distinguishes different cosmetic categories
const (
	ItemHat   = "hat"
	ItemTrail = "trail"
)

// StoreItem represents a purchasable cosmetic item
type StoreItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`    // "hat" or "trail"
	Rarity  int    `json:"rarity"`  // 0=common, 1=rare, 2=epic, 3=legendary
	Price   int    `json:"price"`   // in crowns
	Color1  string `json:"color1"`  // primary color (hex)
	Color2  string `json:"color2"`  // secondary color (hex)
	Preview string `json:"preview"` // description for UI
}

// StoreCatalog is the full list of purchasable items
var StoreCatalog = []StoreItem{
	// Hats - Common (50-100 crowns)
	{ID: "hat_beanie", Name: "Beanie", Type: ItemHat, Rarity: RarityCommon, Price: 50, Color1: "#cc3333", Color2: "#992222", Preview: "A cozy knitted beanie"},
	{ID: "hat_cap", Name: "Party Cap", Type: ItemHat, Rarity: RarityCommon, Price: 50, Color1: "#3388ff", Color2: "#1155cc", Preview: "Classic cone with a pompom"},
	{ID: "hat_leaf", Name: "Leaf Crown", Type: ItemHat, Rarity: RarityCommon, Price: 75, Color1: "#44bb44", Color2: "#228822", Preview: "Woven from fresh leaves"},
	{ID: "hat_straw", Name: "Straw Hat", Type: ItemHat, Rarity: RarityCommon, Price: 75, Color1: "#ddbb66", Color2: "#aa8833", Preview: "Summer on your head"},

	// Hats - Rare (150-250 crowns)
	{ID: "hat_tophat", Name: "Top Hat", Type: ItemHat, Rarity: RarityRare, Price: 150, Color1: "#222222", Color2: "#444444", Preview: "Fancy evening wear"},
	{ID: "hat_viking", Name: "Viking Helm", Type: ItemHat, Rarity: RarityRare, Price: 200, Color1: "#999999", Color2: "#bb9944", Preview: "Horns included"},
	{ID: "hat_pirate", Name: "Pirate Hat", Type: ItemHat, Rarity: RarityRare, Price: 200, Color1: "#331111", Color2: "#ffffff", Preview: "Skull and crossbones"},

	// Hats - Epic (400-600 crowns)
	{ID: "hat_wizard", Name: "Wizard Hat", Type: ItemHat, Rarity: RarityEpic, Price: 400, Color1: "#5533aa", Color2: "#ffdd44", Preview: "Star-spangled and pointy"},
	{ID: "hat_dragon", Name: "Dragon Hood", Type: ItemHat, Rarity: RarityEpic, Price: 500, Color1: "#aa2222", Color2: "#ff8800", Preview: "Scales and tiny wings"},

	// Hats - Legendary
	{ID: "hat_crown", Name: "Royal Crown", Type: ItemHat, Rarity: RarityLegendary, Price: 1000, Color1: "#ffcc00", Color2: "#ff4444", Preview: "For the true party monarch"},

	// Trail colors - Common
	{ID: "trail_ember", Name: "Ember Trail", Type: ItemTrail, Rarity: RarityCommon, Price: 75, Color1: "#ff4400", Color2: "#ffaa00", Preview: "Leaves glowing embers"},
	{ID: "trail_frost", Name: "Frost Trail", Type: ItemTrail, Rarity: RarityCommon, Price: 75, Color1: "#44aaff", Color2: "#88ddff", Preview: "Sparkling frost crystals"},

	// Trail colors - Rare
	{ID: "trail_neon", Name: "Neon Trail", Type: ItemTrail, Rarity: RarityRare, Price: 200, Color1: "#00ff88", Color2: "#00ffcc", Preview: "Bright neon glow"},
	{ID: "trail_candy", Name: "Candy Trail", Type: ItemTrail, Rarity: RarityRare, Price: 200, Color1: "#ff66aa", Color2: "#ffffff", Preview: "Peppermint swirls"},

	// Trail colors - Epic
	{ID: "trail_rainbow", Name: "Rainbow Trail", Type: ItemTrail, Rarity: RarityEpic, Price: 500, Color1: "#ff0000", Color2: "#0000ff", Preview: "Shifts through all colors"},
	{ID: "trail_star", Name: "Stardust Trail", Type: ItemTrail, Rarity: RarityEpic, Price: 500, Color1: "#ffcc00", Color2: "#ffffff", Preview: "Sparkling star particles"},

	// Trail colors - Legendary
	{ID: "trail_aurora", Name: "Aurora Trail", Type: ItemTrail, Rarity: RarityLegendary, Price: 1000, Color1: "#44ffaa", Color2: "#8844ff", Preview: "Northern lights in your wake"},
}

// StoreCatalogMap provides O(1) lookup by item ID
var StoreCatalogMap map[string]StoreItem

func init() {
	StoreCatalogMap = make(map[string]StoreItem, len(StoreCatalog))
	for _, item := range StoreCatalog {
		StoreCatalogMap[item.ID] = item
	}
}

// CrownsForGame returns the crowns earned for a finished game
func CrownsForGame(score int, won bool) int {
	crowns := 10 + score/5
	if won {
		crowns += 25
	}
	return crowns
}
