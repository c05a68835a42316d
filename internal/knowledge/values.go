package knowledge

var valueRanges = []ValueRange{
	{
		Domain:   DomainCeramics,
		ItemType: "vase art pottery",
		Low:      100,
		High:     3_000,
		Notes:    "Roseville mid-lines 150-800; Rookwood artist-signed pieces reach well above the band",
	},
	{
		Domain:   DomainCeramics,
		ItemType: "plate transferware",
		Low:      30,
		High:     400,
		Notes:    "Common Blue Willow at the low end; rare scenic patterns command the top",
	},
	{
		Domain:   DomainGlass,
		ItemType: "carnival glass bowl",
		Low:      40,
		High:     1_500,
		Notes:    "Marigold common; rare base colors in scarce patterns drive the top of the band",
	},
	{
		Domain:   DomainGlass,
		ItemType: "depression glass",
		Low:      10,
		High:     300,
		Notes:    "Pattern and color dependent; pink and green more sought than amber",
	},
	{
		Domain:   DomainSilver,
		ItemType: "flatware sterling",
		Low:      200,
		High:     5_000,
		Notes:    "Full services priced per piece plus pattern premium over melt",
	},
	{
		Domain:   DomainFurniture,
		ItemType: "chair mid-century",
		Low:      150,
		High:     8_000,
		Notes:    "Documented designer attribution multiplies value several times over",
	},
	{
		Domain:   DomainFurniture,
		ItemType: "dresser victorian",
		Low:      200,
		High:     2_500,
		Notes:    "Original finish and hardware at the top; refinished pieces discount steeply",
	},
	{
		Domain:   DomainWatches,
		ItemType: "wristwatch mechanical",
		Low:      100,
		High:     50_000,
		Notes:    "Brand, reference, and originality dominate; papers and box add 20-40%",
	},
	{
		Domain:   DomainClocks,
		ItemType: "mantel clock",
		Low:      75,
		High:     1_200,
		Notes:    "Running condition with original movement; marriage movements halve value",
	},
	{
		Domain:   DomainArt,
		ItemType: "print lithograph",
		Low:      50,
		High:     4_000,
		Notes:    "Pencil-signed limited editions by listed artists at the top",
	},
	{
		Domain:   DomainBooks,
		ItemType: "book first edition",
		Low:      25,
		High:     10_000,
		Notes:    "Dust jacket condition often worth more than the book itself",
	},
	{
		Domain:   DomainToys,
		ItemType: "tin litho wind-up",
		Low:      50,
		High:     2_000,
		Notes:    "Working mechanism and bright lithography required for the upper band",
	},
	{
		Domain:   DomainLighting,
		ItemType: "leaded glass lamp",
		Low:      300,
		High:     25_000,
		Notes:    "Signed Handel and Tiffany Studios far exceed the band; unsigned slag glass at the bottom",
	},
	{
		Domain:   DomainCoins,
		ItemType: "coin silver dollar",
		Low:      25,
		High:     5_000,
		Notes:    "Date, mint mark, and grade set price; key dates far above the band",
	},
	{
		Domain:   DomainTools,
		ItemType: "hand plane",
		Low:      20,
		High:     800,
		Notes:    "Type-study early Stanleys and rare sizes at the top; user-grade commons at the bottom",
	},
}

// ValueRanges returns the full value range table.
func ValueRanges() []ValueRange {
	return valueRanges
}
