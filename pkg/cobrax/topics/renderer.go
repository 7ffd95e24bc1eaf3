package topics

// Renderer turns raw topic content into what is printed. format is the
// topic file extension, ".md" or ".txt".
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics as written
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
