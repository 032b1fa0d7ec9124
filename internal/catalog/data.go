package catalog

import "github.com/se0sangh0/otaple/internal/spot"

// Spots is the curated dataset. IDs are unique and stable across releases;
// entries are grouped by city.
var Spots = []spot.Spot{
	{
		ID:        "tokyo-animate-ikebukuro",
		City:      "tokyo",
		Country:   "JP",
		Name:      "Animate Ikebukuro Main Store",
		Type:      spot.TypeStore,
		District:  "Ikebukuro",
		Tags:      []string{"anime", "goods", "figure", "manga"},
		Schedule:  spot.Schedule{Kind: spot.ScheduleAlways, Note: "permanent store"},
		Source:    "https://www.animate.co.jp/shop/ikebukuro/",
		MapsQuery: "Animate Ikebukuro Main Store",
	},
	{
		ID:        "tokyo-mandarake-complex",
		City:      "tokyo",
		Country:   "JP",
		Name:      "Mandarake Complex Akihabara",
		Type:      spot.TypeStore,
		District:  "Akihabara",
		Tags:      []string{"retro", "doujin", "figure", "anime"},
		Schedule:  spot.Schedule{Kind: spot.ScheduleAlways, Note: "permanent store"},
		Source:    "https://www.mandarake.co.jp/",
		MapsQuery: "Mandarake Complex Akihabara",
	},
	{
		ID:        "tokyo-radio-kaikan",
		City:      "tokyo",
		Country:   "JP",
		Name:      "Akihabara Radio Kaikan",
		Type:      spot.TypeStore,
		District:  "Akihabara",
		Tags:      []string{"figure", "model", "goods", "collectible"},
		Schedule:  spot.Schedule{Kind: spot.ScheduleAlways, Note: "permanent shopping complex"},
		Source:    "https://www.radio-kaikan.jp/",
		MapsQuery: "Akihabara Radio Kaikan",
	},
	{
		ID:        "tokyo-nakano-broadway",
		City:      "tokyo",
		Country:   "JP",
		Name:      "Nakano Broadway",
		Type:      spot.TypeComplex,
		District:  "Nakano",
		Tags:      []string{"retro", "figure", "idol", "anime"},
		Schedule:  spot.Schedule{Kind: spot.ScheduleAlways, Note: "permanent arcade mall"},
		Source:    "https://nakano-broadway.com/",
		MapsQuery: "Nakano Broadway",
	},
	{
		ID:        "tokyo-atre-akiba-collab",
		City:      "tokyo",
		Country:   "JP",
		Name:      "Atre Akihabara Collab Pop-up",
		Type:      spot.TypeCafe,
		District:  "Akihabara",
		Tags:      []string{"collab-cafe", "anime", "goods"},
		Schedule:  spot.Schedule{Kind: spot.ScheduleRolling, Note: "rotating collab events and pop-ups"},
		Source:    "https://www.atre.co.jp/store/akihabara",
		MapsQuery: "Atre Akihabara",
	},
	{
		ID:        "tokyo-animate-cafe-ikebukuro",
		City:      "tokyo",
		Country:   "JP",
		Name:      "Animate Cafe Ikebukuro",
		Type:      spot.TypeCafe,
		District:  "Ikebukuro",
		Tags:      []string{"collab-cafe", "anime", "reservation"},
		Schedule:  spot.Schedule{Kind: spot.ScheduleRolling, Note: "rotating per-title collabs"},
		Source:    "https://www.animatecafe.jp/",
		MapsQuery: "Animate Cafe Ikebukuro",
	},
	{
		ID:        "tokyo-gigo-3",
		City:      "tokyo",
		Country:   "JP",
		Name:      "GiGO Akihabara Building 3",
		Type:      spot.TypeStore,
		District:  "Akihabara",
		Tags:      []string{"arcade", "crane", "game"},
		Schedule:  spot.Schedule{Kind: spot.ScheduleAlways, Note: "permanent arcade"},
		Source:    "https://tempo.gendagigo.jp/am/akihabara03/",
		MapsQuery: "GiGO Akihabara 3",
	},
	{
		ID:       "tokyo-animejapan",
		City:     "tokyo",
		Country:  "JP",
		Name:     "AnimeJapan (annual)",
		Type:     spot.TypeEvent,
		District: "Ariake",
		Tags:     []string{"anime", "industry", "event"},
		Schedule: spot.Schedule{
			Kind:   spot.ScheduleRecurring,
			Months: []int{3},
			Note:   "usually held late March",
		},
		OfficialCheckRequired: true,
		Source:                "https://www.anime-japan.jp/",
		MapsQuery:             "Tokyo Big Sight",
	},
	{
		ID:       "tokyo-comiket",
		City:     "tokyo",
		Country:  "JP",
		Name:     "Comic Market (Comiket)",
		Type:     spot.TypeEvent,
		District: "Ariake",
		Tags:     []string{"doujin", "cosplay", "event"},
		Schedule: spot.Schedule{
			Kind:   spot.ScheduleRecurring,
			Months: []int{8, 12},
			Note:   "usually held twice a year, summer and winter",
		},
		OfficialCheckRequired: true,
		Source:                "https://www.comiket.co.jp/",
		MapsQuery:             "Tokyo Big Sight",
	},
	{
		ID:       "tokyo-jump-festa",
		City:     "tokyo",
		Country:  "JP",
		Name:     "Jump Festa (greater Tokyo)",
		Type:     spot.TypeEvent,
		District: "Makuhari",
		Tags:     []string{"anime", "manga", "event"},
		Schedule: spot.Schedule{
			Kind:   spot.ScheduleRecurring,
			Months: []int{12},
			Note:   "usually held every December",
		},
		OfficialCheckRequired: true,
		Source:                "https://www.jumpfesta.com/",
		MapsQuery:             "Makuhari Messe",
	},
	{
		ID:        "osaka-animate-nipponbashi",
		City:      "osaka",
		Country:   "JP",
		Name:      "Animate Osaka Nipponbashi",
		Type:      spot.TypeStore,
		District:  "Nipponbashi",
		Tags:      []string{"anime", "goods", "manga"},
		Schedule:  spot.Schedule{Kind: spot.ScheduleAlways, Note: "permanent store"},
		Source:    "https://www.animate.co.jp/shop/nipponbashi/",
		MapsQuery: "Animate Osaka Nipponbashi",
	},
	{
		ID:        "osaka-lashinbang",
		City:      "osaka",
		Country:   "JP",
		Name:      "Lashinbang Osaka Nipponbashi",
		Type:      spot.TypeStore,
		District:  "Nipponbashi",
		Tags:      []string{"used", "goods", "figure", "anime"},
		Schedule:  spot.Schedule{Kind: spot.ScheduleAlways, Note: "permanent store"},
		Source:    "https://www.lashinbang.com/",
		MapsQuery: "Lashinbang Osaka Nipponbashi",
	},
	{
		ID:        "osaka-dendentown",
		City:      "osaka",
		Country:   "JP",
		Name:      "Den Den Town",
		Type:      spot.TypeComplex,
		District:  "Nipponbashi",
		Tags:      []string{"figure", "retro", "game", "electronics"},
		Schedule:  spot.Schedule{Kind: spot.ScheduleAlways, Note: "permanent shopping district"},
		Source:    "https://www.denden-town.or.jp/",
		MapsQuery: "Den Den Town Osaka",
	},
	{
		ID:        "osaka-gigo-namba",
		City:      "osaka",
		Country:   "JP",
		Name:      "GiGO Namba Arcade",
		Type:      spot.TypeStore,
		District:  "Namba",
		Tags:      []string{"arcade", "game", "crane"},
		Schedule:  spot.Schedule{Kind: spot.ScheduleAlways, Note: "permanent arcade"},
		Source:    "https://tempo.gendagigo.jp/",
		MapsQuery: "GiGO Namba",
	},
	{
		ID:        "osaka-collabo-cafe-honpo",
		City:      "osaka",
		Country:   "JP",
		Name:      "Collabo Cafe Honpo (Osaka area)",
		Type:      spot.TypeCafe,
		District:  "Namba",
		Tags:      []string{"collab-cafe", "anime", "reservation"},
		Schedule:  spot.Schedule{Kind: spot.ScheduleRolling, Note: "rotating per-title collabs"},
		Source:    "https://collabocafe-honpo.co.jp/",
		MapsQuery: "Collabo Cafe Honpo Osaka",
	},
	{
		ID:       "osaka-street-festa",
		City:     "osaka",
		Country:  "JP",
		Name:     "Nipponbashi Street Festa",
		Type:     spot.TypeEvent,
		District: "Nipponbashi",
		Tags:     []string{"cosplay", "event", "anime"},
		Schedule: spot.Schedule{
			Kind:   spot.ScheduleRecurring,
			Months: []int{3},
			Note:   "usually held every spring",
		},
		OfficialCheckRequired: true,
		Source:                "https://www.denden-town.or.jp/street-festa/",
		MapsQuery:             "Nipponbashi Osaka",
	},
	{
		ID:        "seoul-animate-hongdae",
		City:      "seoul",
		Country:   "KR",
		Name:      "Animate Hongdae",
		Type:      spot.TypeStore,
		District:  "Hongdae",
		Tags:      []string{"anime", "goods", "manga"},
		Schedule:  spot.Schedule{Kind: spot.ScheduleAlways, Note: "permanent store"},
		Source:    "https://www.animate-onlineshop.co.kr/",
		MapsQuery: "Animate Hongdae Seoul",
	},
	{
		ID:        "seoul-aniplus-shop",
		City:      "seoul",
		Country:   "KR",
		Name:      "Aniplus Shop Hapjeong",
		Type:      spot.TypeStore,
		District:  "Hapjeong",
		Tags:      []string{"anime", "goods", "event"},
		Schedule:  spot.Schedule{Kind: spot.ScheduleAlways, Note: "permanent store plus pop-ups"},
		Source:    "https://www.aniplustv.com/",
		MapsQuery: "Aniplus Shop Hapjeong",
	},
	{
		ID:        "seoul-ak-plaza-collab",
		City:      "seoul",
		Country:   "KR",
		Name:      "AK& Hongdae Anime/Game Pop-up Zone",
		Type:      spot.TypeCafe,
		District:  "Hongdae",
		Tags:      []string{"collab-cafe", "pop-up", "anime", "game"},
		Schedule:  spot.Schedule{Kind: spot.ScheduleRolling, Note: "seasonal pop-up and collab rotation"},
		Source:    "https://www.akplaza.com/",
		MapsQuery: "AK PLAZA Hongdae",
	},
	{
		ID:        "seoul-yongsan-ipark",
		City:      "seoul",
		Country:   "KR",
		Name:      "Yongsan I'Park Mall Subculture Floor",
		Type:      spot.TypeComplex,
		District:  "Yongsan",
		Tags:      []string{"figure", "game", "goods"},
		Schedule:  spot.Schedule{Kind: spot.ScheduleAlways, Note: "permanent multi-store complex"},
		Source:    "https://www.hdc-iparkmall.com/",
		MapsQuery: "Yongsan I'Park Mall",
	},
	{
		ID:       "seoul-comic-world",
		City:     "seoul",
		Country:  "KR",
		Name:     "Comic World Seoul",
		Type:     spot.TypeEvent,
		District: "Convention",
		Tags:     []string{"doujin", "cosplay", "event"},
		Schedule: spot.Schedule{
			Kind:   spot.ScheduleRecurring,
			Months: []int{2, 7},
			Note:   "usually held around twice a year",
		},
		OfficialCheckRequired: true,
		Source:                "https://www.comicw.co.kr/",
		MapsQuery:             "SETEC",
	},
	{
		ID:       "seoul-illustar",
		City:     "seoul",
		Country:  "KR",
		Name:     "Illustar Fes",
		Type:     spot.TypeEvent,
		District: "Convention",
		Tags:     []string{"illustration", "doujin", "event"},
		Schedule: spot.Schedule{
			Kind:   spot.ScheduleRecurring,
			Months: []int{5, 11},
			Note:   "usually held around twice a year",
		},
		OfficialCheckRequired: true,
		Source:                "https://illustar.net/",
		MapsQuery:             "KINTEX",
	},
}
