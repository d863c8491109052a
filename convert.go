package parasite

// Converter transforms HTML content into Markdown. Used by drivers that
// prefer markdown output over the raw extracted markup.
type Converter interface {
	Convert(html string) (string, error)
}
