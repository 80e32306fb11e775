package member

import (
	"strings"
	"time"

	"studio-admin/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ModuleName is the audit module and event collection for members
const ModuleName = "members"

// AccessFlag names one of the feature toggles on a member
type AccessFlag string

const (
	FlagPosterEditor      AccessFlag = "posterEditor"
	FlagCertificateEditor AccessFlag = "certificateEditor"
	FlagVisitingCard      AccessFlag = "visitingCard"
	FlagIDCard            AccessFlag = "idCard"
	FlagBgRemover         AccessFlag = "bgRemover"
	FlagImageEnhancer     AccessFlag = "imageEnhancer"
	FlagAssets            AccessFlag = "assets"
)

// AllFlags lists the access flags in display order
var AllFlags = []AccessFlag{
	FlagPosterEditor,
	FlagCertificateEditor,
	FlagVisitingCard,
	FlagIDCard,
	FlagBgRemover,
	FlagImageEnhancer,
	FlagAssets,
}

// ParseAccessFlag accepts only the seven known flag names
func ParseAccessFlag(name string) (AccessFlag, error) {
	switch AccessFlag(name) {
	case FlagPosterEditor, FlagCertificateEditor, FlagVisitingCard, FlagIDCard,
		FlagBgRemover, FlagImageEnhancer, FlagAssets:
		return AccessFlag(name), nil
	}
	return "", apperr.ErrInvalidFlag
}

// Label is the column title used by the export
func (f AccessFlag) Label() string {
	switch f {
	case FlagPosterEditor:
		return "Poster Editor"
	case FlagCertificateEditor:
		return "Certificate Editor"
	case FlagVisitingCard:
		return "Visiting Card"
	case FlagIDCard:
		return "ID Card"
	case FlagBgRemover:
		return "BG Remover"
	case FlagImageEnhancer:
		return "Image Enhancer"
	case FlagAssets:
		return "Assets"
	}
	return string(f)
}

// Access holds the independent feature toggles of a member
type Access struct {
	PosterEditor      bool `bson:"posterEditor" json:"posterEditor"`
	CertificateEditor bool `bson:"certificateEditor" json:"certificateEditor"`
	VisitingCard      bool `bson:"visitingCard" json:"visitingCard"`
	IDCard            bool `bson:"idCard" json:"idCard"`
	BgRemover         bool `bson:"bgRemover" json:"bgRemover"`
	ImageEnhancer     bool `bson:"imageEnhancer" json:"imageEnhancer"`
	Assets            bool `bson:"assets" json:"assets"`
}

// Get returns the value of flag
func (a Access) Get(flag AccessFlag) bool {
	switch flag {
	case FlagPosterEditor:
		return a.PosterEditor
	case FlagCertificateEditor:
		return a.CertificateEditor
	case FlagVisitingCard:
		return a.VisitingCard
	case FlagIDCard:
		return a.IDCard
	case FlagBgRemover:
		return a.BgRemover
	case FlagImageEnhancer:
		return a.ImageEnhancer
	case FlagAssets:
		return a.Assets
	}
	return false
}

// Set changes a single flag and leaves the others untouched
func (a *Access) Set(flag AccessFlag, value bool) {
	switch flag {
	case FlagPosterEditor:
		a.PosterEditor = value
	case FlagCertificateEditor:
		a.CertificateEditor = value
	case FlagVisitingCard:
		a.VisitingCard = value
	case FlagIDCard:
		a.IDCard = value
	case FlagBgRemover:
		a.BgRemover = value
	case FlagImageEnhancer:
		a.ImageEnhancer = value
	case FlagAssets:
		a.Assets = value
	}
}

// Member is a studio account managed from the dashboard.
// Password is stored and returned as plain text, matching the existing documents.
type Member struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username  string             `bson:"username" json:"username"`
	Password  string             `bson:"password" json:"password"`
	Access    Access             `bson:"access" json:"access"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MemberInput carries the writable fields of create and update
type MemberInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Access   Access `json:"access"`
}

// FilterMembers keeps members whose username contains term, ignoring case.
// An empty term keeps everyone; order is preserved.
func FilterMembers(members []Member, term string) []Member {
	term = strings.ToLower(term)
	if term == "" {
		return members
	}

	filtered := make([]Member, 0, len(members))
	for _, m := range members {
		if strings.Contains(strings.ToLower(m.Username), term) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
