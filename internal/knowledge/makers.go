package knowledge

var makerMarks = []MakerMark{
	{
		Maker:       "Roseville",
		Domain:      DomainCeramics,
		Description: "Raised or impressed 'Roseville' script, often with 'U.S.A.' and a shape/size number",
		Location:    "underside of base",
		Era:         "1890-1954",
		ValueTier:   QualityHigh,
	},
	{
		Maker:       "Rookwood",
		Domain:      DomainCeramics,
		Description: "Reversed-R monogram with flame points added per year after 1886, Roman numeral date below",
		Location:    "underside of base",
		Era:         "1880-1967",
		ValueTier:   QualityHigh,
	},
	{
		Maker:       "McCoy",
		Domain:      DomainCeramics,
		Description: "Incised 'McCoy' script, sometimes with 'USA'; many unmarked pieces exist",
		Location:    "underside of base",
		Era:         "1910-1990",
		ValueTier:   QualityMid,
	},
	{
		Maker:       "Weller",
		Domain:      DomainCeramics,
		Description: "Impressed block 'WELLER' or script signature depending on line and period",
		Location:    "underside of base",
		Era:         "1872-1948",
		ValueTier:   QualityMid,
	},
	{
		Maker:       "Meissen",
		Domain:      DomainCeramics,
		Description: "Crossed swords in underglaze blue; dots and slashes between the blades date specific periods",
		Location:    "underside, underglaze",
		Era:         "1720-present",
		ValueTier:   QualityMuseum,
	},
	{
		Maker:       "Wedgwood",
		Domain:      DomainCeramics,
		Description: "Impressed 'WEDGWOOD' (one word); 'Wedgwood & Co' and 'Wedgewood' spellings are other firms",
		Location:    "underside of base",
		Era:         "1759-present",
		ValueTier:   QualityHigh,
	},
	{
		Maker:       "Limoges",
		Domain:      DomainCeramics,
		Description: "Various factory marks including 'Limoges France'; a decorator mark may accompany the factory mark",
		Location:    "underside, overglaze and underglaze",
		Era:         "1771-present",
		ValueTier:   QualityMid,
	},
	{
		Maker:       "Fenton",
		Domain:      DomainGlass,
		Description: "Embossed oval 'Fenton' logo from 1970 on; earlier pieces carried only paper labels",
		Location:    "base",
		Era:         "1905-2011",
		ValueTier:   QualityMid,
	},
	{
		Maker:       "Lalique",
		Domain:      DomainGlass,
		Description: "'R. Lalique' engraved or molded before 1945, 'Lalique France' after; the R distinguishes pre-war work",
		Location:    "base or lower side",
		Era:         "1888-present",
		ValueTier:   QualityMuseum,
	},
	{
		Maker:       "Waterford",
		Domain:      DomainGlass,
		Description: "Acid-etched 'Waterford' seahorse or script on the base; older pieces marked 'WATERFORD' in Gothic",
		Location:    "base",
		Era:         "1783-present",
		ValueTier:   QualityHigh,
	},
	{
		Maker:       "Gorham",
		Domain:      DomainSilver,
		Description: "Lion-anchor-G trio for sterling; date symbols used 1868-1933",
		Location:    "underside or reverse",
		Era:         "1831-present",
		ValueTier:   QualityHigh,
	},
	{
		Maker:       "Tiffany & Co",
		Domain:      DomainSilver,
		Description: "'TIFFANY & CO.' with pattern and order numbers plus a director's letter for the period",
		Location:    "underside or reverse",
		Era:         "1837-present",
		ValueTier:   QualityMuseum,
	},
	{
		Maker:       "Georg Jensen",
		Domain:      DomainSilver,
		Description: "Dotted oval 'GEORG JENSEN' mark; earlier marks show 'GJ' initials with varying frames",
		Location:    "underside or reverse",
		Era:         "1904-present",
		ValueTier:   QualityMuseum,
	},
	{
		Maker:       "Stickley",
		Domain:      DomainFurniture,
		Description: "Red decal joiner's compass with 'Als ik kan' motto, or branded signature on later work",
		Location:    "inside drawer, stretcher, or rear panel",
		Era:         "1900-present",
		ValueTier:   QualityMuseum,
	},
	{
		Maker:       "Herman Miller",
		Domain:      DomainFurniture,
		Description: "Circular foil or embossed medallion label; earlier paper labels include designer attribution",
		Location:    "underside of seat or shell",
		Era:         "1923-present",
		ValueTier:   QualityHigh,
	},
	{
		Maker:       "Knoll",
		Domain:      DomainFurniture,
		Description: "'Knoll Associates' or 'Knoll International' label, often with designer name",
		Location:    "underside of frame",
		Era:         "1938-present",
		ValueTier:   QualityHigh,
	},
	{
		Maker:       "Drexel",
		Domain:      DomainFurniture,
		Description: "Stamped or paper 'Drexel' label with line name; 'Drexel Heritage' after 1968",
		Location:    "inside drawer or rear panel",
		Era:         "1903-present",
		ValueTier:   QualityMid,
	},
	{
		Maker:       "Rolex",
		Domain:      DomainWatches,
		Description: "Coronet on dial and crown; serial and reference numbers stamped between the lugs",
		Location:    "dial, crown, caseback, lugs",
		Era:         "1905-present",
		ValueTier:   QualityMuseum,
	},
	{
		Maker:       "Omega",
		Domain:      DomainWatches,
		Description: "Omega symbol on dial and movement; movement serial dates the piece",
		Location:    "dial, movement, caseback",
		Era:         "1848-present",
		ValueTier:   QualityHigh,
	},
	{
		Maker:       "Ansonia",
		Domain:      DomainClocks,
		Description: "'Ansonia Clock Co.' paper label or stamped backplate signature",
		Location:    "movement backplate or case interior",
		Era:         "1851-1929",
		ValueTier:   QualityMid,
	},
	{
		Maker:       "Seth Thomas",
		Domain:      DomainClocks,
		Description: "'Seth Thomas' stamped movement and paper case label; 'ST' in a diamond on later work",
		Location:    "movement and case interior",
		Era:         "1813-2009",
		ValueTier:   QualityMid,
	},
	{
		Maker:       "Tiffany Studios",
		Domain:      DomainLighting,
		Description: "'TIFFANY STUDIOS NEW YORK' stamped with a model number on base and shade rim",
		Location:    "base underside and shade rim",
		Era:         "1902-1932",
		ValueTier:   QualityMuseum,
	},
	{
		Maker:       "Handel",
		Domain:      DomainLighting,
		Description: "'HANDEL' impressed on base with cloth label; shades signed on the rim, often with artist initials",
		Location:    "base and shade rim",
		Era:         "1885-1936",
		ValueTier:   QualityHigh,
	},
	{
		Maker:       "Steiff",
		Domain:      DomainToys,
		Description: "'Knopf im Ohr' ear button, with yellow, white, or red tag depending on period",
		Location:    "left ear",
		Era:         "1880-present",
		ValueTier:   QualityHigh,
	},
	{
		Maker:       "Lionel",
		Domain:      DomainToys,
		Description: "'LIONEL' stamped or embossed on rolling stock with item number; boxes carry matching numbers",
		Location:    "underside or side frame",
		Era:         "1900-present",
		ValueTier:   QualityMid,
	},
	{
		Maker:       "Stanley",
		Domain:      DomainTools,
		Description: "'STANLEY' cast into plane beds with patent dates; 'Sweetheart' heart logo 1920-1935",
		Location:    "bed casting, lever cap, or iron",
		Era:         "1843-present",
		ValueTier:   QualityMid,
	},
	{
		Maker:       "Singer",
		Domain:      DomainTools,
		Description: "Brass serial-number badge; serial prefix dates the machine and factory",
		Location:    "front bed plate",
		Era:         "1851-present",
		ValueTier:   QualityLow,
	},
}

// MakerMarks returns the full maker mark table.
func MakerMarks() []MakerMark {
	return makerMarks
}
