package render

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aouyang1/artgallery/gallery"
)

var sample = gallery.Artwork{
	Description: "A swirling night sky",
	Title:       "The Starry Night",
	Creator:     "Vincent van Gogh",
	CreatedAt:   "1889",
	Image:       "art_1.svg",
}

func TestBuild(t *testing.T) {
	v := Build(1, sample)
	require.Equal(t, 1, v.Selection)
	require.Equal(t, gallery.Size, v.Total)
	require.Equal(t, "art_1.svg", v.Image)
	require.Equal(t, "A swirling night sky", v.ImageAlt)
	require.Equal(t, "The Starry Night", v.Title)
	require.Equal(t, "Vincent van Gogh (1889)", v.Byline())
	require.Equal(t, " (1889)", v.DateSuffix())

	require.Len(t, v.Controls, 2)
	require.Equal(t, Control{Label: "Previous", Action: ActionPrevious, Enabled: true}, v.Controls[0])
	require.Equal(t, Control{Label: "Next", Action: ActionNext, Enabled: true}, v.Controls[1])
}

func TestCurrentFollowsScreen(t *testing.T) {
	c, err := gallery.LoadBundle()
	require.NoError(t, err)
	s := gallery.NewScreen(c)

	require.Equal(t, c.RecordFor(1).Title, Current(s).Title)
	s.Previous()
	v := Current(s)
	require.Equal(t, 5, v.Selection)
	require.Equal(t, c.RecordFor(5).Title, v.Title)
}

func TestURLs(t *testing.T) {
	require.Equal(t, "/artworks/3/image", ImageURL(3))
	require.Equal(t, "/screens/abc", ScreenURL("abc"))
	require.Equal(t, "/screens/abc/next", ActionURL("abc", ActionNext))
	require.Equal(t, "/screens/a%2Fb/previous", ActionURL("a/b", ActionPrevious))
}

func renderString(t *testing.T, render func(*strings.Builder) error) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, render(&b))
	return b.String()
}

func TestScreenHTML(t *testing.T) {
	v := Build(2, gallery.Artwork{
		Description: `Waves & "boats"`,
		Title:       "The <Great> Wave",
		Creator:     "Hokusai",
		CreatedAt:   "c. 1831",
		Image:       "art_2.svg",
	})
	html := renderString(t, func(b *strings.Builder) error {
		return Screen(v, "s-1").Render(context.Background(), b)
	})

	require.Contains(t, html, `id="screen"`)
	require.Contains(t, html, `data-selection="2"`)
	require.Contains(t, html, `src="/artworks/2/image"`)
	require.Contains(t, html, `alt="Waves &amp; &#34;boats&#34;"`)
	require.Contains(t, html, "The &lt;Great&gt; Wave")
	require.Contains(t, html, `<span class="creator">Hokusai</span> (c. 1831)`)
	require.Contains(t, html, `hx-post="/screens/s-1/previous"`)
	require.Contains(t, html, `hx-post="/screens/s-1/next"`)
	require.Less(t, strings.Index(html, ">Previous<"), strings.Index(html, ">Next<"))
	require.NotContains(t, html, "disabled")
}

func TestPageHTML(t *testing.T) {
	html := renderString(t, func(b *strings.Builder) error {
		return Page(Build(1, sample), "s-2").Render(context.Background(), b)
	})
	require.True(t, strings.HasPrefix(html, "<!doctype html>"))
	require.Contains(t, html, `<script src="`+htmxSrc+`"></script>`)
	require.Contains(t, html, ".art-frame {")
	require.Contains(t, html, `<body><main id="screen" data-screen="s-2"`)
	require.True(t, strings.HasSuffix(html, "</main></body></html>"))
}

func TestScreenHTMLEscapesScreenID(t *testing.T) {
	html := renderString(t, func(b *strings.Builder) error {
		return Screen(Build(1, sample), `x"><script>`).Render(context.Background(), b)
	})
	require.NotContains(t, html, "<script>")
	require.Contains(t, html, `data-screen="x&#34;&gt;&lt;script&gt;"`)
}
