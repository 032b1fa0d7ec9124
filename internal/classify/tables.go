package classify

// Sentinel values returned when classification cannot identify a specific
// franchise or venue.
const (
	// FranchiseUnknown marks items whose franchise could not be identified.
	FranchiseUnknown = "general/other"
	// GenericVenueSuffix ends the fallback venue hint "<destination> central area".
	GenericVenueSuffix = "central area"
	// DistrictFallback is returned when no district alias matches.
	DistrictFallback = "City Center"
	// GenreFallback is returned when no genre keyword matches.
	GenreFallback = "Subculture"
)

// aliasEntry maps a canonical name to the terms that identify it in text.
type aliasEntry struct {
	name  string
	terms []string
}

// cityDistricts lists the bare district names known per city, used as a last
// resort before the DistrictFallback.
var cityDistricts = map[string][]string{
	"tokyo": {"Akihabara", "Ikebukuro", "Nakano", "Shibuya", "Shinjuku", "Ariake", "Makuhari"},
	"osaka": {"Namba", "Nipponbashi", "Umeda", "Tennoji", "Dotonbori"},
	"seoul": {"Hongdae", "Hapjeong", "Yongsan", "Gangnam", "Seongsu", "Mapo", "Jamsil"},
}

// districtAliases maps city keys to district alias tables. Terms cover the
// romanized, Japanese, and Korean spellings that show up in syndicated feeds.
var districtAliases = map[string][]aliasEntry{
	"tokyo": {
		{name: "Akihabara", terms: []string{"akihabara", "秋葉原", "아키하바라"}},
		{name: "Ikebukuro", terms: []string{"ikebukuro", "池袋", "이케부쿠로"}},
		{name: "Nakano", terms: []string{"nakano", "中野", "나카노"}},
		{name: "Shibuya", terms: []string{"shibuya", "渋谷", "시부야"}},
		{name: "Shinjuku", terms: []string{"shinjuku", "新宿", "신주쿠"}},
		{name: "Ariake", terms: []string{"ariake", "有明", "아리아케"}},
		{name: "Makuhari", terms: []string{"makuhari", "幕張", "마쿠하리"}},
	},
	"osaka": {
		{name: "Namba", terms: []string{"namba", "難波", "난바"}},
		{name: "Nipponbashi", terms: []string{"nipponbashi", "日本橋", "닛폰바시"}},
		{name: "Umeda", terms: []string{"umeda", "梅田", "우메다"}},
		{name: "Tennoji", terms: []string{"tennoji", "天王寺", "텐노지"}},
		{name: "Dotonbori", terms: []string{"dotonbori", "道頓堀", "도톤보리"}},
	},
	"seoul": {
		{name: "Hongdae", terms: []string{"hongdae", "홍대"}},
		{name: "Hapjeong", terms: []string{"hapjeong", "합정"}},
		{name: "Yongsan", terms: []string{"yongsan", "용산"}},
		{name: "Gangnam", terms: []string{"gangnam", "강남"}},
		{name: "Seongsu", terms: []string{"seongsu", "성수"}},
		{name: "Mapo", terms: []string{"mapo", "마포"}},
		{name: "Jamsil", terms: []string{"jamsil", "잠실"}},
	},
}

// cityVenues maps city keys to well-known venue aliases.
var cityVenues = map[string][]aliasEntry{
	"tokyo": {
		{name: "Animate Cafe", terms: []string{"animate cafe", "애니메이트 카페"}},
		{name: "Atre Akihabara", terms: []string{"atre akihabara", "아트레 아키하바라"}},
		{name: "Akihabara", terms: []string{"akihabara", "秋葉原"}},
		{name: "Ikebukuro", terms: []string{"ikebukuro", "池袋", "이케부쿠로"}},
		{name: "Tokyo Big Sight", terms: []string{"tokyo big sight", "東京ビッグサイト"}},
	},
	"osaka": {
		{name: "Den Den Town", terms: []string{"den den town", "denden", "日本橋"}},
		{name: "Nipponbashi", terms: []string{"nipponbashi", "日本橋"}},
		{name: "Namba", terms: []string{"namba", "難波"}},
	},
	"seoul": {
		{name: "Hongdae", terms: []string{"홍대", "hongdae"}},
		{name: "Hapjeong", terms: []string{"합정", "hapjeong"}},
		{name: "Yongsan", terms: []string{"용산", "yongsan"}},
		{name: "Seongsu", terms: []string{"성수", "seongsu"}},
	},
}

// franchisePatterns maps known franchise names to identifying terms.
var franchisePatterns = []aliasEntry{
	{name: "Jujutsu Kaisen", terms: []string{"주술회전", "呪術廻戦", "jujutsu kaisen"}},
	{name: "Hololive", terms: []string{"홀로라이브", "ホロライブ", "hololive"}},
	{name: "Nijisanji", terms: []string{"니지산지", "にじさんじ", "nijisanji"}},
	{name: "Blue Archive", terms: []string{"블루 아카이브", "blue archive", "ブルーアーカイブ"}},
	{name: "Genshin Impact", terms: []string{"원신", "genshin", "原神"}},
	{name: "Honkai: Star Rail", terms: []string{"스타레일", "star rail", "崩壊:スターレイル"}},
	{name: "Demon Slayer", terms: []string{"귀멸의 칼날", "鬼滅の刃", "demon slayer"}},
	{name: "One Piece", terms: []string{"원피스", "one piece", "ワンピース"}},
	{name: "Haikyu!!", terms: []string{"하이큐", "haikyu", "ハイキュー"}},
	{name: "Detective Conan", terms: []string{"코난", "conan", "名探偵コナン"}},
	{name: "Project Sekai", terms: []string{"프로세카", "project sekai", "プロセカ"}},
	{name: "Love Live!", terms: []string{"러브라이브", "love live", "ラブライブ"}},
	{name: "BanG Dream!", terms: []string{"뱅드림", "bang dream", "バンドリ"}},
	{name: "The Idolmaster", terms: []string{"아이돌마스터", "idolmaster", "アイドルマスター"}},
	{name: "Pokemon", terms: []string{"포켓몬", "pokemon", "ポケモン"}},
}

// typeKeywords vote toward a spot type during classification.
var (
	eventKeywords = []string{"event", "festival", "フェス", "イベント", "행사", "전시", "comic", "comiket", "festa"}
	cafeKeywords  = []string{"cafe", "コラボカフェ", "카페", "협업카페", "콜라보"}
	storeKeywords = []string{"store", "shop", "goods", "매장", "팝업", "popup", "opening"}
)

// tagTable maps canonical tags to the keywords that imply them.
var tagTable = []struct {
	tag      string
	keywords []string
}{
	{"anime", []string{"anime", "애니", "アニメ"}},
	{"game", []string{"game", "게임", "ゲーム"}},
	{"manga", []string{"manga", "만화", "マンガ"}},
	{"figure", []string{"figure", "피규어", "フィギュア"}},
	{"goods", []string{"goods", "굿즈", "グッズ"}},
	{"collab-cafe", []string{"collab", "콜라보", "コラボ", "cafe", "카페"}},
	{"event", []string{"event", "행사", "イベント", "festival", "전시"}},
	{"cosplay", []string{"cosplay", "코스프레", "コスプレ"}},
	{"doujin", []string{"doujin", "동인", "同人"}},
}

// defaultTags apply when no tag keyword matches.
var defaultTags = []string{"anime", "event"}

// genreKeywords are checked in priority order: VTuber > Game > Manga > Anime.
var (
	vtuberKeywords = []string{"hololive", "ホロライブ", "nijisanji", "にじさんじ", "vtuber", "버튜버"}
	gameKeywords   = []string{"game", "ゲーム", "게임", "rpg", "gacha"}
	mangaKeywords  = []string{"manga", "マンガ", "만화", "comic"}
	animeKeywords  = []string{"anime", "アニメ", "애니"}
)
