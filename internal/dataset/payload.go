package dataset

// HSK1Payload is the external HSK 1 vocabulary document: category key to
// entries. Unknown categories are ignored by the importer.
type HSK1Payload struct {
	Vocabulary map[string][]HSK1Entry `json:"hsk1_vocabulary"`
}

type HSK1Entry struct {
	Character   string `json:"character"`
	Pinyin      string `json:"pinyin"`
	Palladius   string `json:"palladius"`
	Translation string `json:"translation"`
}

// KangxiPayload is the external Kangxi radicals document: stroke-count bucket
// to entries.
type KangxiPayload struct {
	Radicals map[string][]KangxiEntry `json:"kangxi_radicals"`
}

type KangxiEntry struct {
	Radical string `json:"radical"`
	Pinyin  string `json:"pinyin"`
	Meaning string `json:"meaning"`
	Number  int    `json:"number"`
}
