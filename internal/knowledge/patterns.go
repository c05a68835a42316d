package knowledge

var identificationPatterns = []IdentificationPattern{
	{
		Domain:   DomainCeramics,
		ItemType: "vase art pottery",
		KeyFeatures: []string{
			"matte or high-gloss glaze consistent with one factory line",
			"hand-applied or molded floral/geometric decoration",
			"shape number matching factory catalogs",
		},
		CommonConfusion: "modern reproductions with too-bright glazes and crisp, shallow molds",
		Era:             "1890-1950",
	},
	{
		Domain:   DomainCeramics,
		ItemType: "plate transferware",
		KeyFeatures: []string{
			"transfer-printed scenic decoration with visible stipple under magnification",
			"backstamp naming pattern and maker",
			"even wear to glaze high points",
		},
		CommonConfusion: "20th-century reissues with photographic rather than stippled printing",
		Era:             "1820-1900",
	},
	{
		Domain:   DomainGlass,
		ItemType: "carnival glass bowl",
		KeyFeatures: []string{
			"iridescent sprayed-on finish over pressed pattern",
			"pattern and base color combination traceable to a known maker",
			"ground or collar base depending on maker",
		},
		CommonConfusion: "contemporary iridized glass marketed as antique carnival",
		Era:             "1907-1930",
	},
	{
		Domain:   DomainGlass,
		ItemType: "depression glass",
		KeyFeatures: []string{
			"machine-pressed repeating pattern in pink, green, amber, or clear",
			"mold seams and occasional bubbles or straw marks",
		},
		CommonConfusion: "reproductions in colors the original molds never ran",
		Era:             "1929-1941",
	},
	{
		Domain:   DomainSilver,
		ItemType: "flatware sterling",
		KeyFeatures: []string{
			"'STERLING' or '925' stamp on American pieces, hallmark sequence on British",
			"pattern name traceable in flatware references",
			"monogram style consistent with the period",
		},
		CommonConfusion: "silverplate marked with pseudo-hallmarks imitating sterling marks",
		Era:             "1850-present",
	},
	{
		Domain:   DomainFurniture,
		ItemType: "chair mid-century",
		KeyFeatures: []string{
			"molded plywood, fiberglass, or bent steel construction",
			"original shock mounts, glides, and label placement",
			"designer attribution via label or construction details",
		},
		CommonConfusion: "licensed reissues and unlicensed copies with different base metals and mounts",
		Era:             "1945-1970",
	},
	{
		Domain:   DomainFurniture,
		ItemType: "dresser victorian",
		KeyFeatures: []string{
			"hand-cut or early machine-cut dovetails",
			"secondary woods of pine or poplar with oxidized, unfinished interiors",
			"original finish showing alligatoring",
		},
		CommonConfusion: "marriage pieces combining components from different periods",
		Era:             "1840-1900",
	},
	{
		Domain:   DomainWatches,
		ItemType: "wristwatch mechanical",
		KeyFeatures: []string{
			"serial and reference numbers consistent across case, movement, and papers",
			"dial printing crisp under magnification",
			"movement finishing appropriate to the maker's grade",
		},
		CommonConfusion: "redialed examples and franken-watches assembled from mixed parts",
		Era:             "1920-1980",
	},
	{
		Domain:   DomainArt,
		ItemType: "print lithograph",
		KeyFeatures: []string{
			"plate impression or stone grain visible under raking light",
			"pencil signature and edition number in the margin",
			"paper aging consistent with stated date",
		},
		CommonConfusion: "photomechanical reproductions with halftone dot patterns",
		Era:             "1850-present",
	},
	{
		Domain:   DomainBooks,
		ItemType: "book first edition",
		KeyFeatures: []string{
			"edition statement or number line matching first-printing points",
			"binding and dust jacket consistent with publisher's first state",
		},
		CommonConfusion: "book club editions lacking price and with blind-stamped covers",
		Era:             "1800-present",
	},
	{
		Domain:   DomainToys,
		ItemType: "tin litho wind-up",
		KeyFeatures: []string{
			"lithographed decoration with period graphics and maker mark",
			"tab-and-slot construction, working clockwork",
		},
		CommonConfusion: "modern reproduction tin toys with bright inks and soldered seams",
		Era:             "1900-1960",
	},
	{
		Domain:   DomainCoins,
		ItemType: "coin silver dollar",
		KeyFeatures: []string{
			"correct weight and diameter for the issue",
			"mint mark position and date style matching references",
			"natural toning and wear consistent with grade",
		},
		CommonConfusion: "cast counterfeits with seam lines and soapy detail",
		Era:             "1794-1935",
	},
}

// IdentificationPatterns returns the full identification pattern table.
func IdentificationPatterns() []IdentificationPattern {
	return identificationPatterns
}
