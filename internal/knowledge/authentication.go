package knowledge

var authenticationCriteria = []AuthenticationCriteria{
	{
		Domain: DomainCeramics,
		Checkpoints: []AuthCheckpoint{
			{
				Name:        "mark consistency",
				Description: "Maker mark matches documented examples for the claimed period",
				PassIndicators: []string{
					"mark style, size, and placement match references",
					"underglaze marks sit beneath the glaze surface",
				},
				FailIndicators: []string{
					"mark style from the wrong period for the claimed date",
					"mark applied over the glaze on a piece claimed as underglaze-marked",
				},
				Weight: 9,
			},
			{
				Name:        "glaze and body",
				Description: "Glaze texture, crazing, and clay body color fit the factory and era",
				PassIndicators: []string{
					"natural fine crazing on pieces old enough to show it",
					"base clay color matching the factory's known body",
				},
				FailIndicators: []string{
					"artificially induced uniform crazing",
					"stark white modern clay on a piece claimed pre-1900",
				},
				Weight: 8,
			},
			{
				Name:           "wear patterns",
				Description:    "Base wear accumulates where the piece actually rests",
				PassIndicators: []string{"irregular wear confined to contact points"},
				FailIndicators: []string{
					"sandpaper-uniform scuffing across the whole base",
					"no wear at all on a heavily used form",
				},
				Weight: 6,
			},
		},
	},
	{
		Domain: DomainSilver,
		Checkpoints: []AuthCheckpoint{
			{
				Name:           "hallmark sequence",
				Description:    "Hallmarks form a coherent set for one assay office and date",
				PassIndicators: []string{"maker, standard, office, and date marks mutually consistent"},
				FailIndicators: []string{
					"marks from different offices or decades on one piece",
					"pseudo-hallmarks imitating British marks on plated goods",
				},
				Weight: 10,
			},
			{
				Name:           "construction",
				Description:    "Seams, joins, and gauge match period manufacturing",
				PassIndicators: []string{"hand-raised or seamed construction on early pieces"},
				FailIndicators: []string{"spun construction on a piece claimed as 18th century"},
				Weight:         7,
			},
			{
				Name:           "patina",
				Description:    "Oxidation sits in recesses and survives in protected areas",
				PassIndicators: []string{"dark oxidation deep in chasing and crevices"},
				FailIndicators: []string{"chemically blackened surface rubbed off high points uniformly"},
				Weight:         5,
			},
		},
	},
	{
		Domain: DomainFurniture,
		Checkpoints: []AuthCheckpoint{
			{
				Name:        "joinery",
				Description: "Joinery technique matches the claimed construction date",
				PassIndicators: []string{
					"irregular hand-cut dovetails before ~1860",
					"consistent machine-cut joinery after",
				},
				FailIndicators: []string{"uniform machine dovetails on a piece claimed as 18th century"},
				Weight:         9,
			},
			{
				Name:           "surface and finish",
				Description:    "Finish history is consistent with age and honest use",
				PassIndicators: []string{"alligatored shellac or varnish, waxy depth in recesses"},
				FailIndicators: []string{"polyurethane sheen, sprayed-on uniform 'antiquing'"},
				Weight:         7,
			},
			{
				Name:           "hardware evidence",
				Description:    "Hardware and its shadow marks agree",
				PassIndicators: []string{"single set of holes, hardware outline ghosted into patina"},
				FailIndicators: []string{"plugged extra holes, bright brass with no shadow"},
				Weight:         6,
			},
			{
				Name:           "secondary wood oxidation",
				Description:    "Unfinished interior surfaces oxidize over decades",
				PassIndicators: []string{"even gray-brown oxidation inside drawers and on backboards"},
				FailIndicators: []string{"raw pale wood stained dark only where visible"},
				Weight:         8,
			},
		},
	},
	{
		Domain: DomainWatches,
		Checkpoints: []AuthCheckpoint{
			{
				Name:           "serial agreement",
				Description:    "Case, movement, and dial numbers belong together",
				PassIndicators: []string{"serials date to the same production window"},
				FailIndicators: []string{"movement decades newer than its case"},
				Weight:         10,
			},
			{
				Name:           "dial originality",
				Description:    "Dial printing and lume match factory work",
				PassIndicators: []string{"crisp printing, even lume aging matching the hands"},
				FailIndicators: []string{"fuzzy reprinted text, bright lume on an aged dial"},
				Weight:         8,
			},
			{
				Name:           "movement finishing",
				Description:    "Finishing quality matches the maker's grade",
				PassIndicators: []string{"correct decoration, signed balance cock where expected"},
				FailIndicators: []string{"unsigned ebauche in a case bearing a luxury brand"},
				Weight:         9,
			},
		},
	},
	{
		Domain: DomainArt,
		Checkpoints: []AuthCheckpoint{
			{
				Name:           "medium verification",
				Description:    "The surface is what it claims to be",
				PassIndicators: []string{"brushwork relief on oils, plate mark on intaglio prints"},
				FailIndicators: []string{"halftone dots under magnification on a claimed original"},
				Weight:         9,
			},
			{
				Name:           "signature placement",
				Description:    "Signature medium and position match the artist's practice",
				PassIndicators: []string{"signature integrated with the work's surface and age"},
				FailIndicators: []string{"signature floating on top of varnish or printed in the image"},
				Weight:         7,
			},
			{
				Name:           "support aging",
				Description:    "Canvas, panel, or paper age matches the claimed date",
				PassIndicators: []string{"oxidized tacks, period stretcher, toned paper"},
				FailIndicators: []string{"staple-mounted modern canvas claimed as 19th century"},
				Weight:         6,
			},
		},
	},
	{
		Domain: DomainGeneral,
		Checkpoints: []AuthCheckpoint{
			{
				Name:           "material consistency",
				Description:    "Materials were available when the item was supposedly made",
				PassIndicators: []string{"materials and fasteners period-appropriate throughout"},
				FailIndicators: []string{"phillips screws or plastics on a piece claimed pre-1930"},
				Weight:         8,
			},
			{
				Name:           "honest wear",
				Description:    "Wear accumulates unevenly where hands and surfaces touch",
				PassIndicators: []string{"wear graded toward handling points"},
				FailIndicators: []string{"uniform distressing, artificially rounded edges everywhere"},
				Weight:         6,
			},
		},
	},
}

// AuthCriteria returns the authentication checklist table.
func AuthCriteria() []AuthenticationCriteria {
	return authenticationCriteria
}
