package models

// FeatureIcon describes one entry of the feature taxonomy the admin panel
// offers when tagging products.
type FeatureIcon struct {
	Icon   string   `json:"icon"`
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// FeatureIcons is the fixed feature taxonomy served to the admin panel.
var FeatureIcons = []FeatureIcon{
	{Icon: "🌶️", Label: "Acı Seviyesi", Values: []string{"Az Acılı", "Orta Acılı", "Çok Acılı"}},
	{Icon: "⚖️", Label: "Porsiyon", Values: []string{"Küçük", "Normal", "Büyük"}},
	{Icon: "🥩", Label: "Pişirme", Values: []string{"Az", "Orta", "İyi"}},
	{Icon: "🌱", Label: "Diyet", Values: []string{"Vejetaryen", "Vegan", "Glutensiz"}},
	{Icon: "🥄", Label: "Servis", Values: []string{"1 Kişilik", "2 Kişilik", "4 Kişilik"}},
	{Icon: "🔥", Label: "Kalori", Values: []string{"300-400", "400-600", "600+"}},
	{Icon: "⭐", Label: "Özellik", Values: []string{"Şefin Önerisi", "Yeni", "Popüler"}},
	{Icon: "🥜", Label: "Alerjen", Values: []string{"Gluten", "Fındık", "Süt"}},
	{Icon: "⏰", Label: "Hazırlama", Values: []string{"10-15 dk", "15-25 dk", "25+ dk"}},
	{Icon: "💯", Label: "Beğeni", Values: []string{"Trend", "En Çok Satan", "Favori"}},
}
