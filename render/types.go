package render

// RenderedPage is the public rendering output: a flat set of named HTML
// fragments the host shell embeds into its page template. Fragments carry no
// outer document structure of their own.
type RenderedPage struct {
	Meta      string `json:"meta"`
	Header    string `json:"header"`
	Subheader string `json:"subheader"`
	Title     string `json:"title"`
	ImageURL  string `json:"image_url"`
	Content   string `json:"content"`
	Footer    string `json:"footer"`
}

// AdminPanel is the admin rendering output embedded into the admin shell.
type AdminPanel struct {
	Header  string `json:"header"`
	Content string `json:"content"`
	Footer  string `json:"footer"`
}
