// Package preview holds the image overlay state: the currently shown URL or
// nothing.
package preview

type Modal struct {
	url  string
	open bool
}

func (m *Modal) Open(url string) {
	m.url = url
	m.open = true
}

func (m *Modal) Close() {
	m.url = ""
	m.open = false
}

func (m *Modal) URL() (string, bool) {
	return m.url, m.open
}
