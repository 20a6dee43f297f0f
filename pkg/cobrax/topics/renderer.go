package topics

// Renderer turns the raw text of a topic file into what help prints.
// ext is the file extension including the dot, e.g. ".md".
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer prints topics exactly as written
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, _ string) string {
	return content
}
