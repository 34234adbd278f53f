package matching

// defaultSubstitutions 內建替代對照表，依偏好排序
var defaultSubstitutions = map[string][]string{
	"kipfilet":   {"varkenshaas", "tofu", "kalkoenfilet"},
	"room":       {"kokosmelk", "griekse yoghurt", "crème fraîche"},
	"slagroom":   {"kokosroom", "kookroom"},
	"boter":      {"margarine", "olijfolie", "kokosolie"},
	"melk":       {"havermelk", "sojamelk", "amandelmelk"},
	"ei":         {"appelmoes", "lijnzaad", "banaan"},
	"gehakt":     {"linzen", "tofu", "kipgehakt"},
	"rijst":      {"quinoa", "couscous", "bloemkoolrijst"},
	"pasta":      {"courgetti", "rijstnoedels", "glutenvrije pasta"},
	"bloem":      {"amandelmeel", "havermeel", "maizena"},
	"suiker":     {"honing", "ahornsiroop", "kokosbloesemsuiker"},
	"zalm":       {"forel", "makreel", "tofu"},
	"kaas":       {"edelgistvlokken", "vegan kaas"},
	"ui":         {"sjalot", "prei", "bosui"},
	"knoflook":   {"knoflookpoeder", "sjalot"},
	"citroen":    {"limoen", "witte wijnazijn"},
	"spinazie":   {"boerenkool", "snijbiet", "andijvie"},
	"aardappel":  {"zoete aardappel", "pastinaak", "knolselderij"},
	"yoghurt":    {"kwark", "skyr", "sojayoghurt"},
	"tomaat":     {"tomatenpuree", "paprika"},
	"biefstuk":   {"portobello", "seitan"},
	"mozzarella": {"burrata", "feta"},
}

// DefaultSubstitutionTable 回傳內建對照表的新副本
func DefaultSubstitutionTable() *SubstitutionTable {
	table, err := NewSubstitutionTable(defaultSubstitutions)
	if err != nil {
		// 內建資料固定，驗證失敗代表程式錯誤
		panic(err)
	}
	return table
}
