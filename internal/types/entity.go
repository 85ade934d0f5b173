package types

// Entity labels produced by taggers. Other labels may appear and are ignored by the extractors.
const (
	LabelOrg    = "ORG"
	LabelGPE    = "GPE"
	LabelPerson = "PERSON"
)

// Entity is a typed span recognized in page text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}
