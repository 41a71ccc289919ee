package models

// CollectionSpec describes one owner-scoped, ordered sub-collection. The same
// synchronization logic serves every instance; only these parameters differ.
type CollectionSpec struct {
	Name       string // Firestore sub-collection under users/{owner}
	PayloadKey string // JSON body key carrying the replacement array
	OrderBy    string // field the canonical listing descends by
}

var (
	Articles        = CollectionSpec{Name: "articles", PayloadKey: "articles", OrderBy: "publicationDate"}
	Educations      = CollectionSpec{Name: "educations", PayloadKey: "educations", OrderBy: "graduationYear"}
	WorkExperiences = CollectionSpec{Name: "workExperiences", PayloadKey: "workExperiences", OrderBy: "startDate"}
)

// DocumentSpec describes a single-document resource stored once per owner.
type DocumentSpec struct {
	Collection string        // sub-collection holding the document
	DocID      string        // fixed document id within that collection
	Required   string        // field that must be present on every write
	Default    func() Record // returned when nothing is stored for the owner
}

var Professions = DocumentSpec{
	Collection: "professions",
	DocID:      "details",
	Required:   "title",
	Default: func() Record {
		return Record{
			"title":             "",
			"industry":          "",
			"yearsOfExperience": 0,
			"skills":            []any{},
		}
	},
}

// SocialPlatforms is the catalog served by the social-profiles listing.
// Connection state stays false until the OAuth flows exist.
func SocialPlatforms() []Record {
	return []Record{
		{"name": "LinkedIn", "connected": false},
		{"name": "Facebook", "connected": false},
		{"name": "Instagram", "connected": false},
		{"name": "X (Twitter)", "connected": false},
		{"name": "Pinterest", "connected": false},
		{"name": "GitHub", "connected": false},
		{"name": "YouTube", "connected": false},
	}
}
