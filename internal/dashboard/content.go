package dashboard

import "github.com/mtlprog/strokedash/internal/domain"

// Section declares one block of the page before any asset is loaded.
type Section struct {
	Kind     domain.BlockKind
	Level    int
	Text     string
	Language string
	Asset    string
	Caption  string
}

// Content is a fixed page definition.
type Content struct {
	Meta     domain.PageMeta
	Sections []Section
}

// Assets returns the image paths the page needs, in declaration order.
func (c Content) Assets() []string {
	var paths []string
	for _, s := range c.Sections {
		if s.Kind == domain.BlockKindImage {
			paths = append(paths, s.Asset)
		}
	}
	return paths
}

// Declares reports whether path is one of the page's images.
func (c Content) Declares(path string) bool {
	for _, p := range c.Assets() {
		if p == path {
			return true
		}
	}
	return false
}

// Stroke page asset paths, relative to the asset directory.
const (
	AssetConclusion = "conclusion.png"
	AssetOutput     = "output.png"
	AssetResult     = "result.png"
)

// ModelFeatures are the inputs the classifier was trained on.
var ModelFeatures = []string{
	"gender",
	"age",
	"ever_married",
	"work_type",
	"Residence_type",
	"avg_glucose_level",
}

const featuresParagraph = `We need "gender", "age", "ever_married", "work_type", "Residence_type", "avg_glucose_level"
these 6 features to predict. Use **Random Forest Classifier** model.`

const classifierSnippet = `classifier_rf = RandomForestClassifier(n_estimators = 100, random_state = 42)`

// StrokeContent returns the stroke prediction page.
func StrokeContent() Content {
	return Content{
		Meta: domain.PageMeta{
			Title:        "Stroke Prediction App",
			Icon:         "📊",
			SidebarState: domain.SidebarExpanded,
		},
		Sections: []Section{
			{Kind: domain.BlockKindHeading, Level: 1, Text: "Stroke Reasons"},
			{Kind: domain.BlockKindImage, Asset: AssetConclusion},
			{Kind: domain.BlockKindHeading, Level: 1, Text: "Stroke Prediction"},
			{Kind: domain.BlockKindImage, Asset: AssetOutput, Caption: "Correlation w.r.t stroke"},
			{Kind: domain.BlockKindParagraph, Text: featuresParagraph},
			{Kind: domain.BlockKindCode, Language: "python", Text: classifierSnippet},
			{Kind: domain.BlockKindImage, Asset: AssetResult},
		},
	}
}
